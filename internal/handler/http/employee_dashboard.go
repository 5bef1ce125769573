package http

import (
	"net/http"

	empDashboard "github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee_dashboard"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/handler/http/response"
)

type EmployeeDashboardHandler interface {
	// GetTiles returns the dashboard tiles for the authenticated user
	GetTiles(w http.ResponseWriter, r *http.Request)
}

type employeeDashboardHandlerImpl struct {
	service empDashboard.EmployeeDashboardService
}

func NewEmployeeDashboardHandler(service empDashboard.EmployeeDashboardService) EmployeeDashboardHandler {
	return &employeeDashboardHandlerImpl{service: service}
}

// GetTiles handles GET /dashboard/tiles
// Query params (all optional):
//   - start_date: YYYY-MM-DD (default: first day of current month)
//   - end_date: YYYY-MM-DD (default: start_date + 1 month - 1 day)
//   - filter_date: YYYY-MM-DD, day of the manager figures (default: today)
//   - assignee: user ID, manager task list only
//   - deadline: YYYY-MM-DD, tasks due on or after
//   - status: task stage ID
func (h *employeeDashboardHandlerImpl) GetTiles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := empDashboard.TilesFilter{
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
		FilterDate: query.Get("filter_date"),
		Assignee:   query.Get("assignee"),
		Deadline:   query.Get("deadline"),
		Status:     query.Get("status"),
	}

	result, err := h.service.GetTilesData(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
