package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gstr1/internal/domain"
)

// InvoiceRepo reads and writes sales-invoice rows in PostgreSQL. It implements
// both port.InvoiceSource and port.InvoiceStore.
type InvoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed invoice repository.
func NewInvoiceRepo(db *sqlx.DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

const selectInvoiceItems = `SELECT
	si.invoice_no,
	to_char(si.posting_date, 'YYYY-MM-DD') AS posting_date,
	si.company,
	si.customer_name,
	COALESCE(si.billing_address_gstin, '') AS billing_address_gstin,
	si.company_gstin,
	si.place_of_supply,
	si.gst_category,
	item.gst_treatment,
	si.is_reverse_charge,
	si.is_export_with_gst,
	si.is_return,
	si.is_debit_note,
	COALESCE(si.return_against, '') AS return_against,
	item.item_code,
	item.gst_hsn_code,
	item.gst_rate::float8 AS gst_rate,
	item.taxable_value::float8 AS taxable_value,
	item.cgst_amount::float8 AS cgst_amount,
	item.sgst_amount::float8 AS sgst_amount,
	item.igst_amount::float8 AS igst_amount,
	item.cess_amount::float8 AS cess_amount,
	item.cess_non_advol_amount::float8 AS cess_non_advol_amount,
	si.invoice_total::float8 AS invoice_total,
	COALESCE(ri.invoice_total, 0)::float8 AS returned_invoice_total
FROM sales_invoice_items item
JOIN sales_invoices si ON si.invoice_no = item.invoice_no
LEFT JOIN sales_invoices ri ON ri.invoice_no = si.return_against`

// buildInvoiceWhereClause constructs the WHERE clause for invoice item queries.
func buildInvoiceWhereClause(filters *domain.OverviewFilters) (clause string, args []interface{}) {
	args = []interface{}{filters.CompanyGSTIN, filters.From, filters.To}
	clause = "WHERE si.company_gstin = $1 AND si.posting_date BETWEEN $2 AND $3 AND si.docstatus = 1"
	if filters.Company != "" {
		clause += fmt.Sprintf(" AND si.company = $%d", len(args)+1)
		args = append(args, filters.Company)
	}
	return clause, args
}

// FetchInvoices returns the submitted invoice line items matching filters,
// ordered by posting date and invoice number.
func (r *InvoiceRepo) FetchInvoices(ctx context.Context, filters *domain.OverviewFilters) ([]domain.InvoiceRecord, error) {
	where, args := buildInvoiceWhereClause(filters)
	query := selectInvoiceItems + "\n" + where + "\nORDER BY si.posting_date, si.invoice_no, item.idx"

	records := make([]domain.InvoiceRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("invoiceRepo.FetchInvoices: %w", err)
	}
	return records, nil
}

// Ping checks that the database is reachable.
func (r *InvoiceRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

const upsertInvoiceHeader = `INSERT INTO sales_invoices (
	invoice_no, posting_date, company, customer_name, billing_address_gstin, company_gstin,
	place_of_supply, gst_category, is_reverse_charge, is_export_with_gst, is_return,
	is_debit_note, return_against, invoice_total, docstatus
) VALUES (
	:invoice_no, CAST(:posting_date AS date), :company, :customer_name, NULLIF(:billing_address_gstin, ''),
	:company_gstin, :place_of_supply, :gst_category, :is_reverse_charge, :is_export_with_gst,
	:is_return, :is_debit_note, NULLIF(:return_against, ''), :invoice_total, 1
)
ON CONFLICT (invoice_no) DO UPDATE SET
	posting_date = EXCLUDED.posting_date,
	company = EXCLUDED.company,
	customer_name = EXCLUDED.customer_name,
	billing_address_gstin = EXCLUDED.billing_address_gstin,
	company_gstin = EXCLUDED.company_gstin,
	place_of_supply = EXCLUDED.place_of_supply,
	gst_category = EXCLUDED.gst_category,
	is_reverse_charge = EXCLUDED.is_reverse_charge,
	is_export_with_gst = EXCLUDED.is_export_with_gst,
	is_return = EXCLUDED.is_return,
	is_debit_note = EXCLUDED.is_debit_note,
	return_against = EXCLUDED.return_against,
	invoice_total = EXCLUDED.invoice_total,
	updated_at = NOW()`

const insertInvoiceItem = `INSERT INTO sales_invoice_items (
	invoice_no, idx, item_code, gst_hsn_code, gst_treatment, gst_rate, taxable_value,
	cgst_amount, sgst_amount, igst_amount, cess_amount, cess_non_advol_amount
) VALUES (
	:invoice_no, :idx, :item_code, :gst_hsn_code, :gst_treatment, :gst_rate, :taxable_value,
	:cgst_amount, :sgst_amount, :igst_amount, :cess_amount, :cess_non_advol_amount
)`

type invoiceItemRow struct {
	domain.InvoiceRecord
	Idx int `db:"idx"`
}

// InsertInvoices replaces the stored line items of every invoice present in
// records, in a single transaction. Header fields are taken from the first row
// of each invoice. It returns the number of line items written.
func (r *InvoiceRepo) InsertInvoices(ctx context.Context, records []domain.InvoiceRecord) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.InsertInvoices: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	lineNo := make(map[string]int)
	written := 0
	for i := range records {
		rec := &records[i]
		if _, seen := lineNo[rec.InvoiceNo]; !seen {
			if _, err := tx.NamedExecContext(ctx, upsertInvoiceHeader, rec); err != nil {
				return 0, fmt.Errorf("invoiceRepo.InsertInvoices: header %s: %w", rec.InvoiceNo, err)
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM sales_invoice_items WHERE invoice_no = $1`, rec.InvoiceNo); err != nil {
				return 0, fmt.Errorf("invoiceRepo.InsertInvoices: clear items %s: %w", rec.InvoiceNo, err)
			}
		}
		lineNo[rec.InvoiceNo]++

		row := invoiceItemRow{InvoiceRecord: *rec, Idx: lineNo[rec.InvoiceNo]}
		if _, err := tx.NamedExecContext(ctx, insertInvoiceItem, row); err != nil {
			return 0, fmt.Errorf("invoiceRepo.InsertInvoices: item %s/%d: %w", rec.InvoiceNo, row.Idx, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("invoiceRepo.InsertInvoices: commit: %w", err)
	}
	return written, nil
}
