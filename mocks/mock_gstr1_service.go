package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstr1/internal/domain"
)

// MockGSTR1Service is a mock implementation of service.GSTR1Service.
type MockGSTR1Service struct {
	mock.Mock
}

func (m *MockGSTR1Service) Overview(ctx context.Context, filters *domain.OverviewFilters) ([]domain.SummaryRow, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SummaryRow), args.Error(1)
}

func (m *MockGSTR1Service) FilteredInvoices(ctx context.Context, filters *domain.OverviewFilters, category, subCategory string) (*domain.InvoiceListing, error) {
	args := m.Called(ctx, filters, category, subCategory)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceListing), args.Error(1)
}

func (m *MockGSTR1Service) ClassifiedInvoices(ctx context.Context, filters *domain.OverviewFilters) ([]domain.InvoiceRecord, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceRecord), args.Error(1)
}
