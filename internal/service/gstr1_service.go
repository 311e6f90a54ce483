package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"gstr1/internal/config"
	"gstr1/internal/domain"
	"gstr1/internal/gstr1"
	"gstr1/internal/port"
)

// GSTR1Service builds the GSTR-1 overview and drill-down listings for a
// company GSTIN and posting-date range.
type GSTR1Service interface {
	Overview(ctx context.Context, filters *domain.OverviewFilters) ([]domain.SummaryRow, error)
	FilteredInvoices(ctx context.Context, filters *domain.OverviewFilters, category, subCategory string) (*domain.InvoiceListing, error)
	ClassifiedInvoices(ctx context.Context, filters *domain.OverviewFilters) ([]domain.InvoiceRecord, error)
}

type gstr1Service struct {
	source port.InvoiceSource
	report config.ReportConfig
	log    zerolog.Logger
}

// NewGSTR1Service creates a new GSTR1Service implementation.
func NewGSTR1Service(source port.InvoiceSource, report config.ReportConfig, log zerolog.Logger) GSTR1Service {
	return &gstr1Service{
		source: source,
		report: report,
		log:    log.With().Str("component", "gstr1_service").Logger(),
	}
}

func (s *gstr1Service) Overview(ctx context.Context, filters *domain.OverviewFilters) ([]domain.SummaryRow, error) {
	records, err := s.load(ctx, filters)
	if err != nil {
		return nil, err
	}
	return gstr1.Overview(records), nil
}

func (s *gstr1Service) FilteredInvoices(
	ctx context.Context,
	filters *domain.OverviewFilters,
	category, subCategory string,
) (*domain.InvoiceListing, error) {
	cat, err := gstr1.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	sub, err := gstr1.ParseSubCategory(cat, subCategory)
	if err != nil {
		return nil, err
	}

	records, err := s.load(ctx, filters)
	if err != nil {
		return nil, err
	}
	invoices, err := gstr1.FilteredInvoices(records, cat, sub)
	if err != nil {
		return nil, err
	}

	return &domain.InvoiceListing{
		Category:    cat,
		SubCategory: sub,
		Columns:     s.listingColumns(cat, sub),
		Invoices:    invoices,
	}, nil
}

func (s *gstr1Service) ClassifiedInvoices(ctx context.Context, filters *domain.OverviewFilters) ([]domain.InvoiceRecord, error) {
	records, err := s.load(ctx, filters)
	if err != nil {
		return nil, err
	}
	return gstr1.AssignCategories(records), nil
}

// load fetches the rows for filters, rejects the batch on the first malformed
// row and fills the derived totals.
func (s *gstr1Service) load(ctx context.Context, filters *domain.OverviewFilters) ([]domain.InvoiceRecord, error) {
	if filters == nil {
		return nil, fmt.Errorf("%w: filters are required", domain.ErrInvalidFilters)
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	records, err := s.source.FetchInvoices(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("gstr1.load: %w", err)
	}

	for i := range records {
		if err := records[i].Validate(); err != nil {
			s.log.Warn().
				Str("company_gstin", filters.CompanyGSTIN).
				Int("row", i+1).
				Err(err).
				Msg("rejecting invoice batch")
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records[i].ComputeTotals()
	}

	s.log.Debug().
		Str("company_gstin", filters.CompanyGSTIN).
		Time("from", filters.From).
		Time("to", filters.To).
		Int("rows", len(records)).
		Msg("invoices loaded")
	return records, nil
}

var baseListingColumns = []domain.ListingColumn{
	{FieldName: "invoice_no", Label: "Invoice No", FieldType: "Link"},
	{FieldName: "posting_date", Label: "Posting Date", FieldType: "Date"},
	{FieldName: "customer_name", Label: "Customer Name", FieldType: "Data"},
	{FieldName: "billing_address_gstin", Label: "Billing Address GSTIN", FieldType: "Data"},
	{FieldName: "place_of_supply", Label: "Place of Supply", FieldType: "Data"},
	{FieldName: "invoice_sub_category", Label: "Invoice Sub Category", FieldType: "Data"},
	{FieldName: "taxable_value", Label: "Taxable Value", FieldType: "Currency"},
	{FieldName: "igst_amount", Label: "IGST Amount", FieldType: "Currency"},
	{FieldName: "cgst_amount", Label: "CGST Amount", FieldType: "Currency"},
	{FieldName: "sgst_amount", Label: "SGST Amount", FieldType: "Currency"},
	{FieldName: "total_cess_amount", Label: "Total Cess Amount", FieldType: "Currency"},
	{FieldName: "invoice_total", Label: "Invoice Total", FieldType: "Currency"},
}

// listingColumns picks the display columns for a drill-down. Report settings
// only add columns; they never change which rows are listed.
func (s *gstr1Service) listingColumns(cat domain.InvoiceCategory, sub domain.InvoiceSubCategory) []domain.ListingColumn {
	cols := make([]domain.ListingColumn, len(baseListingColumns), len(baseListingColumns)+2)
	copy(cols, baseListingColumns)

	if s.report.EnableReverseCharge && cat == domain.CategoryB2B {
		cols = append(cols, domain.ListingColumn{FieldName: "is_reverse_charge", Label: "Reverse Charge", FieldType: "Check"})
	}
	if s.report.EnableOverseas && exportSensitive(cat, sub) {
		cols = append(cols, domain.ListingColumn{FieldName: "is_export_with_gst", Label: "Is Export With GST", FieldType: "Check"})
	}
	return cols
}

func exportSensitive(cat domain.InvoiceCategory, sub domain.InvoiceSubCategory) bool {
	switch {
	case cat == domain.CategoryEXP:
		return true
	case cat == domain.CategoryB2B && (sub == "" || sub == domain.SubCategorySEZWP || sub == domain.SubCategorySEZWOP):
		return true
	default:
		return false
	}
}
