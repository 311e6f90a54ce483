package port

import (
	"context"

	"gstr1/internal/domain"
)

// InvoiceSource supplies sales-invoice line items for a company GSTIN and
// posting-date range. Rows are returned fully joined: the original invoice
// total is already set on credit and debit notes.
type InvoiceSource interface {
	FetchInvoices(ctx context.Context, filters *domain.OverviewFilters) ([]domain.InvoiceRecord, error)
	Ping(ctx context.Context) error
}

// InvoiceStore persists invoice rows loaded from an ERP export.
type InvoiceStore interface {
	InsertInvoices(ctx context.Context, records []domain.InvoiceRecord) (int, error)
}
