// Package importer loads sales-invoice line items from ERP export files.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"gstr1/internal/domain"
)

// LoadFile reads rows from a .json or .xlsx export, chosen by extension.
func LoadFile(path string) ([]domain.InvoiceRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		return LoadJSON(f)
	case ".xlsx":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		return LoadWorkbook(f)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedInput, path)
	}
}

// LoadJSON decodes a JSON array of invoice rows.
func LoadJSON(r io.Reader) ([]domain.InvoiceRecord, error) {
	var records []domain.InvoiceRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedInput, err)
	}
	return records, nil
}

type cellSetter func(r *domain.InvoiceRecord, v string) error

func str(set func(r *domain.InvoiceRecord, v string)) cellSetter {
	return func(r *domain.InvoiceRecord, v string) error { set(r, v); return nil }
}

func boolean(set func(r *domain.InvoiceRecord, v bool)) cellSetter {
	return func(r *domain.InvoiceRecord, v string) error {
		b, err := parseBool(v)
		if err != nil {
			return err
		}
		set(r, b)
		return nil
	}
}

func amount(set func(r *domain.InvoiceRecord, v float64)) cellSetter {
	return func(r *domain.InvoiceRecord, v string) error {
		if v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", v)
		}
		set(r, f)
		return nil
	}
}

// columns maps workbook header names (the JSON field names) to setters.
var columns = map[string]cellSetter{
	"invoice_no": str(func(r *domain.InvoiceRecord, v string) { r.InvoiceNo = v }),
	"posting_date": func(r *domain.InvoiceRecord, v string) error {
		d, err := parseDate(v)
		if err != nil {
			return err
		}
		r.PostingDate = d
		return nil
	},
	"company":                str(func(r *domain.InvoiceRecord, v string) { r.Company = v }),
	"customer_name":          str(func(r *domain.InvoiceRecord, v string) { r.CustomerName = v }),
	"billing_address_gstin":  str(func(r *domain.InvoiceRecord, v string) { r.BillingAddressGSTIN = v }),
	"company_gstin":          str(func(r *domain.InvoiceRecord, v string) { r.CompanyGSTIN = v }),
	"place_of_supply":        str(func(r *domain.InvoiceRecord, v string) { r.PlaceOfSupply = v }),
	"gst_category":           str(func(r *domain.InvoiceRecord, v string) { r.GSTCategory = domain.GSTCategory(v) }),
	"gst_treatment":          str(func(r *domain.InvoiceRecord, v string) { r.GSTTreatment = domain.GSTTreatment(v) }),
	"is_reverse_charge":      boolean(func(r *domain.InvoiceRecord, v bool) { r.IsReverseCharge = v }),
	"is_export_with_gst":     boolean(func(r *domain.InvoiceRecord, v bool) { r.IsExportWithGST = v }),
	"is_return":              boolean(func(r *domain.InvoiceRecord, v bool) { r.IsReturn = v }),
	"is_debit_note":          boolean(func(r *domain.InvoiceRecord, v bool) { r.IsDebitNote = v }),
	"return_against":         str(func(r *domain.InvoiceRecord, v string) { r.ReturnAgainst = v }),
	"item_code":              str(func(r *domain.InvoiceRecord, v string) { r.ItemCode = v }),
	"gst_hsn_code":           str(func(r *domain.InvoiceRecord, v string) { r.GSTHSNCode = v }),
	"gst_rate":               amount(func(r *domain.InvoiceRecord, v float64) { r.GSTRate = v }),
	"taxable_value":          amount(func(r *domain.InvoiceRecord, v float64) { r.TaxableValue = v }),
	"cgst_amount":            amount(func(r *domain.InvoiceRecord, v float64) { r.CGSTAmount = v }),
	"sgst_amount":            amount(func(r *domain.InvoiceRecord, v float64) { r.SGSTAmount = v }),
	"igst_amount":            amount(func(r *domain.InvoiceRecord, v float64) { r.IGSTAmount = v }),
	"cess_amount":            amount(func(r *domain.InvoiceRecord, v float64) { r.CessAmount = v }),
	"cess_non_advol_amount":  amount(func(r *domain.InvoiceRecord, v float64) { r.CessNonAdvolAmount = v }),
	"invoice_total":          amount(func(r *domain.InvoiceRecord, v float64) { r.InvoiceTotal = v }),
	"returned_invoice_total": amount(func(r *domain.InvoiceRecord, v float64) { r.ReturnedInvoiceTotal = v }),
}

// LoadWorkbook reads the first sheet of f. Row 1 holds the column names; unknown
// columns are ignored and blank rows are skipped.
func LoadWorkbook(f *excelize.File) ([]domain.InvoiceRecord, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", domain.ErrUnsupportedInput, sheetName)
	}

	header := rows[0]
	hasInvoiceNo := false
	for _, h := range header {
		if normalizeHeader(h) == "invoice_no" {
			hasInvoiceNo = true
		}
	}
	if !hasInvoiceNo {
		return nil, fmt.Errorf("%w: sheet %q has no invoice_no column", domain.ErrUnsupportedInput, sheetName)
	}

	records := make([]domain.InvoiceRecord, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		var rec domain.InvoiceRecord
		for col, name := range header {
			set, ok := columns[normalizeHeader(name)]
			if !ok {
				continue
			}
			if err := set(&rec, strings.TrimSpace(cellVal(row, col))); err != nil {
				return nil, fmt.Errorf("%w: row %d, column %s: %v", domain.ErrMalformedInvoice, i+1, name, err)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func normalizeHeader(h string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "", "0", "false", "no", "n":
		return false, nil
	case "1", "true", "yes", "y":
		return true, nil
	default:
		return false, fmt.Errorf("not a yes/no value: %q", v)
	}
}

var dateLayouts = []string{domain.DateLayout, "02-01-2006", "02/01/2006"}

// parseDate normalises the date formats ERP exports use to YYYY-MM-DD.
func parseDate(v string) (string, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, v); err == nil {
			return d.Format(domain.DateLayout), nil
		}
	}
	return "", fmt.Errorf("not a date: %q", v)
}
