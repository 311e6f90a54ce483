package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstr1/internal/domain"
	"gstr1/internal/repository/postgres"
)

var invoiceColumns = []string{
	"invoice_no", "posting_date", "company", "customer_name", "billing_address_gstin",
	"company_gstin", "place_of_supply", "gst_category", "gst_treatment", "is_reverse_charge",
	"is_export_with_gst", "is_return", "is_debit_note", "return_against", "item_code",
	"gst_hsn_code", "gst_rate", "taxable_value", "cgst_amount", "sgst_amount", "igst_amount",
	"cess_amount", "cess_non_advol_amount", "invoice_total", "returned_invoice_total",
}

func newRepo(t *testing.T) (*postgres.InvoiceRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return postgres.NewInvoiceRepo(sqlx.NewDb(db, "pgx")), mock
}

func julyFilters() *domain.OverviewFilters {
	return &domain.OverviewFilters{
		CompanyGSTIN: "24AAQCA8719H1ZC",
		From:         time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		To:           time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestInvoiceRepo_FetchInvoices(t *testing.T) {
	repo, mock := newRepo(t)
	filters := julyFilters()

	rows := sqlmock.NewRows(invoiceColumns).
		AddRow("SINV-1", "2024-07-02", "Test Company", "Acme", "24AABCT1332L1ZP",
			"24AAQCA8719H1ZC", "24-Gujarat", "Registered Regular", "Taxable", false,
			false, false, false, "", "ITEM-1",
			"8471", 18.0, 1000.0, 90.0, 90.0, 0.0,
			0.0, 0.0, 1180.0, 0.0).
		AddRow("SINV-2", "2024-07-03", "Test Company", "Walk-in", "",
			"24AAQCA8719H1ZC", "27-Maharashtra", "Unregistered", "Taxable", false,
			false, true, false, "SINV-0", "ITEM-2",
			"8471", 18.0, -500.0, 0.0, 0.0, -90.0,
			0.0, 0.0, -590.0, 300000.0)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE si.company_gstin = $1 AND si.posting_date BETWEEN $2 AND $3")).
		WithArgs(filters.CompanyGSTIN, filters.From, filters.To).
		WillReturnRows(rows)

	records, err := repo.FetchInvoices(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "SINV-1", records[0].InvoiceNo)
	assert.Equal(t, domain.GSTCategoryRegisteredRegular, records[0].GSTCategory)
	assert.InDelta(t, 1000, records[0].TaxableValue, 0.001)
	assert.True(t, records[1].IsReturn)
	assert.Equal(t, "SINV-0", records[1].ReturnAgainst)
	assert.InDelta(t, 300000, records[1].ReturnedInvoiceTotal, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_FetchInvoices_CompanyFilter(t *testing.T) {
	repo, mock := newRepo(t)
	filters := julyFilters()
	filters.Company = "Test Company"

	mock.ExpectQuery(regexp.QuoteMeta("AND si.company = $4")).
		WithArgs(filters.CompanyGSTIN, filters.From, filters.To, "Test Company").
		WillReturnRows(sqlmock.NewRows(invoiceColumns))

	records, err := repo.FetchInvoices(context.Background(), filters)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_FetchInvoices_QueryError(t *testing.T) {
	repo, mock := newRepo(t)
	dbErr := errors.New("connection reset")

	mock.ExpectQuery("SELECT").WillReturnError(dbErr)

	_, err := repo.FetchInvoices(context.Background(), julyFilters())
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "invoiceRepo.FetchInvoices")
}

func TestInvoiceRepo_InsertInvoices(t *testing.T) {
	repo, mock := newRepo(t)

	records := []domain.InvoiceRecord{
		{InvoiceNo: "SINV-1", PostingDate: "2024-07-02", CompanyGSTIN: "24AAQCA8719H1ZC", PlaceOfSupply: "24-Gujarat", ItemCode: "A"},
		{InvoiceNo: "SINV-1", PostingDate: "2024-07-02", CompanyGSTIN: "24AAQCA8719H1ZC", PlaceOfSupply: "24-Gujarat", ItemCode: "B"},
		{InvoiceNo: "SINV-2", PostingDate: "2024-07-03", CompanyGSTIN: "24AAQCA8719H1ZC", PlaceOfSupply: "24-Gujarat", ItemCode: "C"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sales_invoices")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sales_invoice_items WHERE invoice_no = $1")).
		WithArgs("SINV-1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sales_invoice_items")).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sales_invoice_items")).WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sales_invoices")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sales_invoice_items WHERE invoice_no = $1")).
		WithArgs("SINV-2").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sales_invoice_items")).WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	n, err := repo.InsertInvoices(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_InsertInvoices_RollsBackOnError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sales_invoices")).WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	_, err := repo.InsertInvoices(context.Background(), []domain.InvoiceRecord{{InvoiceNo: "SINV-1"}})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewInvoiceRepo(sqlx.NewDb(db, "pgx"))

	mock.ExpectPing()
	assert.NoError(t, repo.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
