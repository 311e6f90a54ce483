package gstr1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstr1/internal/domain"
	"gstr1/internal/gstr1"
)

func rowFor(t *testing.T, rows []domain.SummaryRow, sub domain.InvoiceSubCategory) domain.SummaryRow {
	t.Helper()
	for _, r := range rows {
		if r.Description == sub {
			return r
		}
	}
	t.Fatalf("no summary row for %s", sub)
	return domain.SummaryRow{}
}

func TestOverview_EmptyInputSeedsAllSubCategories(t *testing.T) {
	rows := gstr1.Overview(nil)

	require.Len(t, rows, 14)
	assert.Equal(t, domain.SubCategoryB2BRegular, rows[0].Description)
	assert.Equal(t, domain.CategoryB2B, rows[0].InvoiceCategory)
	assert.Equal(t, domain.SubCategoryCDNUR, rows[13].Description)
	for _, r := range rows {
		assert.Zero(t, r.NoOfRecords)
		assert.Zero(t, r.TaxableValue)
	}
}

func TestOverview_Totals(t *testing.T) {
	first := b2bInvoice()
	second := b2bInvoice()
	second.InvoiceNo = "SINV-24-00002"
	second.TaxableValue = 5000
	second.CGSTAmount = 450
	second.SGSTAmount = 450
	second.CessAmount = 50
	second.CessNonAdvolAmount = 10
	second.ComputeTotals()

	export := exportInvoice(true)

	rows := gstr1.Overview([]domain.InvoiceRecord{*first, *second, *export})

	b2b := rowFor(t, rows, domain.SubCategoryB2BRegular)
	assert.Equal(t, 2, b2b.NoOfRecords)
	assert.InDelta(t, 15000, b2b.TaxableValue, 0.001)
	assert.InDelta(t, 1350, b2b.CGSTAmount, 0.001)
	assert.InDelta(t, 1350, b2b.SGSTAmount, 0.001)
	assert.InDelta(t, 60, b2b.TotalCessAmount, 0.001)
	assert.Zero(t, b2b.IGSTAmount)

	exp := rowFor(t, rows, domain.SubCategoryEXPWP)
	assert.Equal(t, 1, exp.NoOfRecords)
	assert.InDelta(t, 1800, exp.IGSTAmount, 0.001)

	assert.Zero(t, rowFor(t, rows, domain.SubCategoryEXPWOP).NoOfRecords)
}

func TestOverview_CountsMatchInput(t *testing.T) {
	records := []domain.InvoiceRecord{
		*b2bInvoice(), *b2cInvoice(100), *b2cInvoice(400000),
		*exportInvoice(false), *exportInvoice(true),
	}
	rows := gstr1.Overview(records)

	total := 0
	for _, r := range rows {
		total += r.NoOfRecords
	}
	assert.Equal(t, len(records), total)
}
