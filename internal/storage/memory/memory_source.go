package memory

import (
	"context"

	"gstr1/internal/domain"
)

// Source serves invoice rows held in memory, typically loaded from a file.
type Source struct {
	records []domain.InvoiceRecord
}

// NewSource creates a Source over records. The slice is copied.
func NewSource(records []domain.InvoiceRecord) *Source {
	cp := make([]domain.InvoiceRecord, len(records))
	copy(cp, records)
	return &Source{records: cp}
}

// FetchInvoices returns copies of the rows matching filters, in load order.
func (s *Source) FetchInvoices(ctx context.Context, filters *domain.OverviewFilters) ([]domain.InvoiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.InvoiceRecord, 0, len(s.records))
	for i := range s.records {
		if filters.Matches(&s.records[i]) {
			out = append(out, s.records[i])
		}
	}
	return out, nil
}

func (s *Source) Ping(ctx context.Context) error {
	return ctx.Err()
}
