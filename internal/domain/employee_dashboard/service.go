package employee_dashboard

import "context"

// EmployeeDashboardService defines the interface for employee dashboard operations
type EmployeeDashboardService interface {
	// GetTilesData returns the dashboard payload for the authenticated caller.
	// Data failures yield EmptyTiles() rather than an error; only invalid
	// filters and missing identity are reported as errors.
	GetTilesData(ctx context.Context, filter TilesFilter) (*TilesResponse, error)
}
