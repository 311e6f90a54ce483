package gstr1

import "gstr1/internal/domain"

// Overview classifies records and folds them into one summary row per
// sub-category. All 14 rows are returned, in return order, even when empty.
func Overview(records []domain.InvoiceRecord) []domain.SummaryRow {
	subs := domain.AllSubCategories()
	rows := make([]domain.SummaryRow, len(subs))
	index := make(map[domain.InvoiceSubCategory]int, len(subs))
	for i, sub := range subs {
		cat, _ := domain.CategoryOf(sub)
		rows[i] = domain.SummaryRow{InvoiceCategory: cat, Description: sub}
		index[sub] = i
	}

	for i := range records {
		inv := &records[i]
		_, sub := Classify(inv)
		row := &rows[index[sub]]
		row.NoOfRecords++
		row.TaxableValue += inv.TaxableValue
		row.IGSTAmount += inv.IGSTAmount
		row.CGSTAmount += inv.CGSTAmount
		row.SGSTAmount += inv.SGSTAmount
		row.TotalCessAmount += inv.TotalCessAmount
	}
	return rows
}
