package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gstr1/internal/domain"
	"gstr1/internal/middleware"
	"gstr1/internal/service"
)

// GSTR1Handler handles the GSTR-1 report endpoints.
type GSTR1Handler struct {
	gstr1Service service.GSTR1Service
}

// NewGSTR1Handler creates a new GSTR1Handler.
func NewGSTR1Handler(gstr1Service service.GSTR1Service) *GSTR1Handler {
	return &GSTR1Handler{gstr1Service: gstr1Service}
}

// parseOverviewFilters extracts the report filters from query params.
func parseOverviewFilters(c *gin.Context) (*domain.OverviewFilters, error) {
	filters := &domain.OverviewFilters{
		Company:      c.Query("company"),
		CompanyGSTIN: c.Query("company_gstin"),
	}
	if filters.CompanyGSTIN == "" {
		return nil, fmt.Errorf("%w: 'company_gstin' is required", domain.ErrInvalidFilters)
	}

	var err error
	if filters.From, err = parseDateParam(c, "from"); err != nil {
		return nil, err
	}
	if filters.To, err = parseDateParam(c, "to"); err != nil {
		return nil, err
	}
	return filters, nil
}

func parseDateParam(c *gin.Context, name string) (time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return time.Time{}, fmt.Errorf("%w: '%s' is required", domain.ErrInvalidFilters, name)
	}
	t, err := time.Parse(domain.DateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid '%s' date: must be YYYY-MM-DD", domain.ErrInvalidFilters, name)
	}
	return t, nil
}

// authorizedFilters parses the filters and checks that the caller may report
// on the requested GSTIN. It writes the error response itself and returns
// false when the request cannot proceed.
func authorizedFilters(c *gin.Context) (*domain.OverviewFilters, bool) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context")
		return nil, false
	}

	filters, err := parseOverviewFilters(c)
	if err != nil {
		HandleError(c, err)
		return nil, false
	}

	if !claims.CanAccessGSTIN(filters.CompanyGSTIN) {
		RespondError(c, http.StatusForbidden, "FORBIDDEN", "not allowed to report on this GSTIN")
		return nil, false
	}
	return filters, true
}

// Overview handles GET /api/v1/gstr1/overview
// @Summary      GSTR-1 overview
// @Description  Returns one summary row per GSTR-1 sub-category with record counts and tax totals
// @Tags         gstr1
// @Produce      json
// @Param        company_gstin query string true "Company GSTIN"
// @Param        from query string true "Start posting date (YYYY-MM-DD)"
// @Param        to query string true "End posting date (YYYY-MM-DD)"
// @Param        company query string false "Company name"
// @Success      200 {object} APIResponse{data=[]domain.SummaryRow}
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Failure      403 {object} APIResponse
// @Failure      422 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /gstr1/overview [get]
func (h *GSTR1Handler) Overview(c *gin.Context) {
	filters, ok := authorizedFilters(c)
	if !ok {
		return
	}

	rows, err := h.gstr1Service.Overview(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// Invoices handles GET /api/v1/gstr1/invoices
// @Summary      GSTR-1 drill-down
// @Description  Lists the invoice rows of one category, optionally narrowed to a sub-category
// @Tags         gstr1
// @Produce      json
// @Param        company_gstin query string true "Company GSTIN"
// @Param        from query string true "Start posting date (YYYY-MM-DD)"
// @Param        to query string true "End posting date (YYYY-MM-DD)"
// @Param        company query string false "Company name"
// @Param        category query string true "Category label or code (B2B, EXP, B2CL, B2CS, NIL_EXEMPT, CDNR, CDNUR)"
// @Param        sub_category query string false "Sub-category label"
// @Success      200 {object} APIResponse{data=domain.InvoiceListing,meta=Meta}
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Failure      403 {object} APIResponse
// @Failure      422 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /gstr1/invoices [get]
func (h *GSTR1Handler) Invoices(c *gin.Context) {
	filters, ok := authorizedFilters(c)
	if !ok {
		return
	}

	category := c.Query("category")
	if category == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "'category' is required")
		return
	}

	listing, err := h.gstr1Service.FilteredInvoices(c.Request.Context(), filters, category, c.Query("sub_category"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondWithTotal(c, listing, len(listing.Invoices))
}

// Classified handles GET /api/v1/gstr1/classified
// @Summary      Classified invoice rows
// @Description  Returns every invoice row in the period annotated with its category and sub-category
// @Tags         gstr1
// @Produce      json
// @Param        company_gstin query string true "Company GSTIN"
// @Param        from query string true "Start posting date (YYYY-MM-DD)"
// @Param        to query string true "End posting date (YYYY-MM-DD)"
// @Param        company query string false "Company name"
// @Success      200 {object} APIResponse{data=[]domain.InvoiceRecord,meta=Meta}
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Failure      403 {object} APIResponse
// @Failure      422 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /gstr1/classified [get]
func (h *GSTR1Handler) Classified(c *gin.Context) {
	filters, ok := authorizedFilters(c)
	if !ok {
		return
	}

	records, err := h.gstr1Service.ClassifiedInvoices(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondWithTotal(c, records, len(records))
}
