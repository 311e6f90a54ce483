package domain

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the wire format for posting dates and report filters.
const DateLayout = "2006-01-02"

// InvoiceRecord is one sales-invoice line item as supplied to the classifier.
type InvoiceRecord struct {
	InvoiceNo   string `json:"invoice_no" db:"invoice_no"`
	PostingDate string `json:"posting_date" db:"posting_date"`

	Company             string `json:"company" db:"company"`
	CustomerName        string `json:"customer_name" db:"customer_name"`
	BillingAddressGSTIN string `json:"billing_address_gstin" db:"billing_address_gstin"`
	CompanyGSTIN        string `json:"company_gstin" db:"company_gstin"`
	PlaceOfSupply       string `json:"place_of_supply" db:"place_of_supply"`

	GSTCategory     GSTCategory  `json:"gst_category" db:"gst_category"`
	GSTTreatment    GSTTreatment `json:"gst_treatment" db:"gst_treatment"`
	IsReverseCharge bool         `json:"is_reverse_charge" db:"is_reverse_charge"`
	IsExportWithGST bool         `json:"is_export_with_gst" db:"is_export_with_gst"`
	IsReturn        bool         `json:"is_return" db:"is_return"`
	IsDebitNote     bool         `json:"is_debit_note" db:"is_debit_note"`
	ReturnAgainst   string       `json:"return_against" db:"return_against"`

	ItemCode   string  `json:"item_code" db:"item_code"`
	GSTHSNCode string  `json:"gst_hsn_code" db:"gst_hsn_code"`
	GSTRate    float64 `json:"gst_rate" db:"gst_rate"`

	TaxableValue       float64 `json:"taxable_value" db:"taxable_value"`
	CGSTAmount         float64 `json:"cgst_amount" db:"cgst_amount"`
	SGSTAmount         float64 `json:"sgst_amount" db:"sgst_amount"`
	IGSTAmount         float64 `json:"igst_amount" db:"igst_amount"`
	CessAmount         float64 `json:"cess_amount" db:"cess_amount"`
	CessNonAdvolAmount float64 `json:"cess_non_advol_amount" db:"cess_non_advol_amount"`
	TotalCessAmount    float64 `json:"total_cess_amount" db:"-"`
	TotalTax           float64 `json:"total_tax" db:"-"`
	TotalAmount        float64 `json:"total_amount" db:"-"`

	InvoiceTotal         float64 `json:"invoice_total" db:"invoice_total"`
	ReturnedInvoiceTotal float64 `json:"returned_invoice_total" db:"returned_invoice_total"`

	InvoiceCategory    InvoiceCategory    `json:"invoice_category,omitempty" db:"-"`
	InvoiceSubCategory InvoiceSubCategory `json:"invoice_sub_category,omitempty" db:"-"`
}

// ComputeTotals fills the derived cess, tax and amount totals from the component
// amounts. Totals are rounded to paise so a value that adds up to B2CLimit
// compares equal to it.
func (r *InvoiceRecord) ComputeTotals() {
	r.TotalCessAmount = roundPaise(r.CessAmount + r.CessNonAdvolAmount)
	r.TotalTax = roundPaise(r.CGSTAmount + r.SGSTAmount + r.IGSTAmount + r.TotalCessAmount)
	r.TotalAmount = roundPaise(r.TaxableValue + r.TotalTax)
}

func roundPaise(v float64) float64 {
	return math.Round(v*100) / 100
}

// Validate checks the fields the classification rules cannot work without.
func (r *InvoiceRecord) Validate() error {
	switch {
	case r.InvoiceNo == "":
		return fmt.Errorf("%w: invoice_no is required", ErrMalformedInvoice)
	case len(r.CompanyGSTIN) < 2:
		return fmt.Errorf("%w: invoice %s: company_gstin is missing", ErrMalformedInvoice, r.InvoiceNo)
	case len(r.PlaceOfSupply) < 2:
		return fmt.Errorf("%w: invoice %s: place_of_supply is missing", ErrMalformedInvoice, r.InvoiceNo)
	}
	for name, v := range map[string]float64{
		"taxable_value": r.TaxableValue,
		"invoice_total": r.InvoiceTotal,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: invoice %s: %s is not a number", ErrMalformedInvoice, r.InvoiceNo, name)
		}
	}
	return nil
}

// SummaryRow holds the running totals of one sub-category in the overview.
type SummaryRow struct {
	InvoiceCategory InvoiceCategory    `json:"invoice_category"`
	Description     InvoiceSubCategory `json:"description"`
	NoOfRecords     int                `json:"no_of_records"`
	TaxableValue    float64            `json:"taxable_value"`
	IGSTAmount      float64            `json:"igst_amount"`
	CGSTAmount      float64            `json:"cgst_amount"`
	SGSTAmount      float64            `json:"sgst_amount"`
	TotalCessAmount float64            `json:"total_cess_amount"`
}

// OverviewFilters scopes an invoice fetch to a company GSTIN and posting-date range.
type OverviewFilters struct {
	Company      string    `json:"company"`
	CompanyGSTIN string    `json:"company_gstin"`
	From         time.Time `json:"from_date"`
	To           time.Time `json:"to_date"`
}

// Validate checks that the filters describe a usable date range for a GSTIN.
func (f *OverviewFilters) Validate() error {
	if f.CompanyGSTIN == "" {
		return fmt.Errorf("%w: company_gstin is required", ErrInvalidFilters)
	}
	if f.From.IsZero() || f.To.IsZero() {
		return fmt.Errorf("%w: from and to dates are required", ErrInvalidFilters)
	}
	if f.From.After(f.To) {
		return fmt.Errorf("%w: from date is after to date", ErrInvalidFilters)
	}
	return nil
}

// Matches reports whether r falls inside the filters. Rows with an unparseable
// posting date never match.
func (f *OverviewFilters) Matches(r *InvoiceRecord) bool {
	if r.CompanyGSTIN != f.CompanyGSTIN {
		return false
	}
	if f.Company != "" && r.Company != f.Company {
		return false
	}
	d, err := time.Parse(DateLayout, r.PostingDate)
	if err != nil {
		return false
	}
	return !d.Before(f.From) && !d.After(f.To)
}

// ListingColumn describes one column of a drill-down listing.
type ListingColumn struct {
	FieldName string `json:"fieldname"`
	Label     string `json:"label"`
	FieldType string `json:"fieldtype"`
}

// InvoiceListing is the drill-down view of one category or sub-category.
type InvoiceListing struct {
	Category    InvoiceCategory    `json:"invoice_category"`
	SubCategory InvoiceSubCategory `json:"invoice_sub_category,omitempty"`
	Columns     []ListingColumn    `json:"columns"`
	Invoices    []InvoiceRecord    `json:"invoices"`
}
