package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dashboard"
	"github.com/bakersinn/despatch-dashboard/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetOptions returns the filter picker values and defaults
	GetOptions(w http.ResponseWriter, r *http.Request)
	// GetDashboard returns all three pages for the selection
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetSummary returns KPI cards, product mix, SKU bars and the area table
	GetSummary(w http.ResponseWriter, r *http.Request)
	// GetBread returns the bread SKU breakdown
	GetBread(w http.ResponseWriter, r *http.Request)
	// GetBiscuits returns biscuit SKUs and loading compliance
	GetBiscuits(w http.ResponseWriter, r *http.Request)
	// Export downloads the selection as an xlsx workbook
	Export(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// parseSelection reads mode, date, month, routes and areas from the query.
// routes and areas repeat once per value; a single value may also list
// several labels separated by commas. An absent key selects everything;
// a present but empty key selects nothing.
func parseSelection(r *http.Request) dashboard.SelectionRequest {
	q := r.URL.Query()
	return dashboard.SelectionRequest{
		Mode:   q.Get("mode"),
		Date:   q.Get("date"),  // format: YYYY-MM-DD, default: today
		Month:  q.Get("month"), // default: first month in the date index
		Routes: queryList(q, "routes"),
		Areas:  queryList(q, "areas"),
	}
}

func queryList(q url.Values, key string) []string {
	raw, ok := q[key]
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// GetOptions handles GET /dashboard/options
func (h *dashboardHandlerImpl) GetOptions(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Options(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetView(r.Context(), parseSelection(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSummary handles GET /dashboard/summary
func (h *dashboardHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetSummary(r.Context(), parseSelection(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetBread handles GET /dashboard/bread
func (h *dashboardHandlerImpl) GetBread(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetBread(r.Context(), parseSelection(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetBiscuits handles GET /dashboard/biscuits
func (h *dashboardHandlerImpl) GetBiscuits(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetBiscuits(r.Context(), parseSelection(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export handles GET /dashboard/export
func (h *dashboardHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.dashboardService.Export(r.Context(), parseSelection(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Filename, file.ContentType, file.Content)
}
