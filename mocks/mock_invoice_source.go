package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstr1/internal/domain"
)

// MockInvoiceSource is a mock implementation of port.InvoiceSource.
type MockInvoiceSource struct {
	mock.Mock
}

func (m *MockInvoiceSource) FetchInvoices(ctx context.Context, filters *domain.OverviewFilters) ([]domain.InvoiceRecord, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceRecord), args.Error(1)
}

func (m *MockInvoiceSource) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
