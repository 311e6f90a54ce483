package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstr1/internal/domain"
	"gstr1/internal/handler"
	"gstr1/internal/middleware"
	"gstr1/internal/service"
	"gstr1/mocks"
)

const companyGSTIN = "24AAQCA8719H1ZC"

func init() {
	gin.SetMode(gin.TestMode)
}

func newGSTR1Handler() (*handler.GSTR1Handler, *mocks.MockGSTR1Service) {
	mockSvc := new(mocks.MockGSTR1Service)
	return handler.NewGSTR1Handler(mockSvc), mockSvc
}

func setClaims(c *gin.Context, role domain.UserRole, gstins ...string) {
	claims := &service.Claims{UserID: uuid.New(), Role: role, GSTINs: gstins}
	c.Set(middleware.ContextKeyRole, string(role))
	c.Set(middleware.ContextKeyClaims, claims)
}

func newRequest(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, target, http.NoBody)
	require.NoError(t, err)
	c.Request = req
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

var julyQuery = fmt.Sprintf("company_gstin=%s&from=2024-07-01&to=2024-07-31", companyGSTIN)

func matchesJuly(f *domain.OverviewFilters) bool {
	return f.CompanyGSTIN == companyGSTIN &&
		f.From.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)) &&
		f.To.Equal(time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC))
}

func TestGSTR1Handler_Overview_Success(t *testing.T) {
	h, mockSvc := newGSTR1Handler()

	rows := []domain.SummaryRow{{
		InvoiceCategory: domain.CategoryB2B,
		Description:     domain.SubCategoryB2BRegular,
		NoOfRecords:     1,
		TaxableValue:    1000,
	}}
	mockSvc.On("Overview", mock.Anything, mock.MatchedBy(matchesJuly)).Return(rows, nil)

	c, w := newRequest(t, "/api/v1/gstr1/overview?"+julyQuery)
	setClaims(c, domain.RoleAnalyst, companyGSTIN)

	h.Overview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestGSTR1Handler_Overview_AdminAnyGSTIN(t *testing.T) {
	h, mockSvc := newGSTR1Handler()
	mockSvc.On("Overview", mock.Anything, mock.Anything).Return([]domain.SummaryRow{}, nil)

	c, w := newRequest(t, "/api/v1/gstr1/overview?"+julyQuery)
	setClaims(c, domain.RoleAdmin)

	h.Overview(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGSTR1Handler_Overview_ForbiddenGSTIN(t *testing.T) {
	h, mockSvc := newGSTR1Handler()

	c, w := newRequest(t, "/api/v1/gstr1/overview?"+julyQuery)
	setClaims(c, domain.RoleAnalyst, "27AAACR5055K1Z5")

	h.Overview(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockSvc.AssertNotCalled(t, "Overview", mock.Anything, mock.Anything)
}

func TestGSTR1Handler_Overview_MissingAuth(t *testing.T) {
	h, _ := newGSTR1Handler()

	c, w := newRequest(t, "/api/v1/gstr1/overview?"+julyQuery)
	h.Overview(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGSTR1Handler_Overview_BadFilters(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing gstin", "from=2024-07-01&to=2024-07-31"},
		{"missing from", "company_gstin=" + companyGSTIN + "&to=2024-07-31"},
		{"bad to", "company_gstin=" + companyGSTIN + "&from=2024-07-01&to=31-07-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newGSTR1Handler()
			c, w := newRequest(t, "/api/v1/gstr1/overview?"+tt.query)
			setClaims(c, domain.RoleAdmin)

			h.Overview(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decode(t, w)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "INVALID_FILTERS", resp.Error.Code)
		})
	}
}

func TestGSTR1Handler_Overview_MalformedRow(t *testing.T) {
	h, mockSvc := newGSTR1Handler()
	mockSvc.On("Overview", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("row 3: %w: place_of_supply is missing", domain.ErrMalformedInvoice))

	c, w := newRequest(t, "/api/v1/gstr1/overview?"+julyQuery)
	setClaims(c, domain.RoleAdmin)

	h.Overview(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "MALFORMED_INVOICE", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "row 3")
}

func TestGSTR1Handler_Invoices_Success(t *testing.T) {
	h, mockSvc := newGSTR1Handler()

	listing := &domain.InvoiceListing{
		Category: domain.CategoryB2B,
		Invoices: []domain.InvoiceRecord{{InvoiceNo: "SINV-1"}, {InvoiceNo: "SINV-2"}},
	}
	mockSvc.On("FilteredInvoices", mock.Anything, mock.MatchedBy(matchesJuly), "B2B", "B2B Regular").
		Return(listing, nil)

	c, w := newRequest(t, "/api/v1/gstr1/invoices?"+julyQuery+"&category=B2B&sub_category=B2B+Regular")
	setClaims(c, domain.RoleAnalyst, companyGSTIN)

	h.Invoices(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Total)
	mockSvc.AssertExpectations(t)
}

func TestGSTR1Handler_Invoices_MissingCategory(t *testing.T) {
	h, mockSvc := newGSTR1Handler()

	c, w := newRequest(t, "/api/v1/gstr1/invoices?"+julyQuery)
	setClaims(c, domain.RoleAdmin)

	h.Invoices(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "FilteredInvoices", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGSTR1Handler_Invoices_UnknownCategory(t *testing.T) {
	h, mockSvc := newGSTR1Handler()
	mockSvc.On("FilteredInvoices", mock.Anything, mock.Anything, "B2X", "").
		Return(nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, "B2X"))

	c, w := newRequest(t, "/api/v1/gstr1/invoices?"+julyQuery+"&category=B2X")
	setClaims(c, domain.RoleAdmin)

	h.Invoices(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNKNOWN_CATEGORY", decode(t, w).Error.Code)
}

func TestGSTR1Handler_Classified_Success(t *testing.T) {
	h, mockSvc := newGSTR1Handler()
	records := []domain.InvoiceRecord{{
		InvoiceNo:          "SINV-1",
		InvoiceCategory:    domain.CategoryEXP,
		InvoiceSubCategory: domain.SubCategoryEXPWP,
	}}
	mockSvc.On("ClassifiedInvoices", mock.Anything, mock.MatchedBy(matchesJuly)).Return(records, nil)

	c, w := newRequest(t, "/api/v1/gstr1/classified?"+julyQuery)
	setClaims(c, domain.RoleAnalyst, companyGSTIN)

	h.Classified(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode(t, w).Meta.Total)
}

func TestGSTR1Handler_Classified_SourceFailure(t *testing.T) {
	h, mockSvc := newGSTR1Handler()
	mockSvc.On("ClassifiedInvoices", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	c, w := newRequest(t, "/api/v1/gstr1/classified?"+julyQuery)
	setClaims(c, domain.RoleAdmin)

	h.Classified(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, w).Error.Code)
}
