package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstr1/internal/domain"
	"gstr1/internal/handler"
	"gstr1/internal/router"
	"gstr1/internal/service"
	"gstr1/mocks"
)

func setup() (*gin.Engine, *mocks.MockAuthService, *mocks.MockGSTR1Service, *mocks.MockInvoiceSource) {
	gin.SetMode(gin.TestMode)
	authSvc := new(mocks.MockAuthService)
	gstr1Svc := new(mocks.MockGSTR1Service)
	source := new(mocks.MockInvoiceSource)

	r := router.Setup(zerolog.Nop(), []string{"http://localhost:3000"}, authSvc,
		handler.NewGSTR1Handler(gstr1Svc), handler.NewHealthHandler(source))
	return r, authSvc, gstr1Svc, source
}

func TestRouter_Healthz(t *testing.T) {
	r, _, _, _ := setup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_ReportRequiresToken(t *testing.T) {
	r, _, _, _ := setup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/gstr1/overview", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_OverviewWithToken(t *testing.T) {
	r, authSvc, gstr1Svc, _ := setup()

	authSvc.On("ValidateToken", "tok").Return(&service.Claims{Role: domain.RoleAdmin}, nil)
	gstr1Svc.On("Overview", mock.Anything, mock.Anything).Return([]domain.SummaryRow{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet,
		"/api/v1/gstr1/overview?company_gstin=24AAQCA8719H1ZC&from=2024-07-01&to=2024-07-31", http.NoBody)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	gstr1Svc.AssertExpectations(t)
}

func TestRouter_ReportRejectsUnknownRole(t *testing.T) {
	r, authSvc, gstr1Svc, _ := setup()

	authSvc.On("ValidateToken", "tok").Return(&service.Claims{Role: domain.UserRole("viewer")}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet,
		"/api/v1/gstr1/overview?company_gstin=24AAQCA8719H1ZC&from=2024-07-01&to=2024-07-31", http.NoBody)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	gstr1Svc.AssertNotCalled(t, "Overview", mock.Anything, mock.Anything)
}

func TestRouter_SwaggerDoc(t *testing.T) {
	r, _, _, _ := setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/gstr1/overview")
}
