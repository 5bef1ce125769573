package employee_dashboard

import (
	"context"
	"time"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/i18n"
	"github.com/shopspring/decimal"
)

// EmployeeDashboardRepository defines the read queries behind the tiles payload.
// Time ranges are half-open [from, to); date ranges are inclusive.
type EmployeeDashboardRepository interface {
	// GetEmployeeByUserID returns the first active employee linked to the user
	GetEmployeeByUserID(ctx context.Context, userID string) (*EmployeeData, error)

	// GetHierarchy returns the employee, every subordinate below it and its direct manager
	GetHierarchy(ctx context.Context, employeeID string) ([]HierarchyData, error)

	// GetAttendances returns attendances whose check-in falls in [from, to)
	GetAttendances(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceData, error)

	// GetOngoingCheckIn returns the latest check-in without a check-out, nil when none
	GetOngoingCheckIn(ctx context.Context, employeeID string) (*time.Time, error)

	// SumValidatedLeaveDays sums validated leave days overlapping [from, to]
	SumValidatedLeaveDays(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error)

	// CountPendingLeaves counts leaves waiting for approval
	CountPendingLeaves(ctx context.Context, employeeID string) (int64, error)

	// ListUserTasks returns active tasks assigned to the user
	ListUserTasks(ctx context.Context, userID string, filter TaskFilter) ([]TaskData, error)

	// GetUserProjectTaskCounts returns project and task counts for the user
	GetUserProjectTaskCounts(ctx context.Context, userID string) (*ProjectTaskCountData, error)

	// ListAssignees returns active users assigned to at least one task, ordered by name
	ListAssignees(ctx context.Context) ([]AssigneeData, error)

	// ListStages returns active task stages ordered by id
	ListStages(ctx context.Context) ([]StageData, error)

	// CountAttendanceByGender counts distinct employees checked in during [from, to), keyed by gender
	CountAttendanceByGender(ctx context.Context, from, to time.Time) (map[string]int64, error)

	// SumLeaveDaysByGender sums validated leave days covering day, keyed by gender
	SumLeaveDaysByGender(ctx context.Context, day time.Time) (map[string]decimal.Decimal, error)

	// GetCompanyProjectTaskCounts returns company-wide project and task counts
	GetCompanyProjectTaskCounts(ctx context.Context) (*ProjectTaskCountData, error)

	// ListTasks returns all active tasks with assignee names
	ListTasks(ctx context.Context, filter TaskFilter) ([]TaskData, error)
}

// EmployeeData contains the employee row with job and department names
type EmployeeData struct {
	ID             string
	UserID         *string
	ParentID       *string
	Name           string
	Gender         string
	WorkEmail      *string
	WorkPhone      *string
	JobName        i18n.Translations
	DepartmentName i18n.Translations
	AvatarPath     *string
	TotalOvertime  decimal.Decimal
}

// HierarchyData is one employee of the org chart query
type HierarchyData struct {
	ID         string
	ParentID   *string
	Name       string
	JobName    i18n.Translations
	AvatarPath *string
}

// AttendanceData is one check-in/check-out pair
type AttendanceData struct {
	CheckIn     time.Time
	CheckOut    *time.Time
	WorkedHours decimal.Decimal
}

// TaskFilter narrows task listings; nil fields are not applied
type TaskFilter struct {
	AssigneeID *string
	Deadline   *time.Time // date_deadline on or after
	StageID    *string
}

// TaskData contains a task with its project and stage names
type TaskData struct {
	ID          string
	ProjectName i18n.Translations
	Name        string
	Deadline    *time.Time
	StageName   i18n.Translations
	Assignees   []string
}

// ProjectTaskCountData contains raw project/task counts
type ProjectTaskCountData struct {
	Projects          int64
	Tasks             int64
	RemainingProjects int64 // status other than done, or no status
	RemainingTasks    int64 // stage not folded, or no stage
}

type AssigneeData struct {
	ID   string
	Name string
}

type StageData struct {
	ID   string
	Name i18n.Translations
}
