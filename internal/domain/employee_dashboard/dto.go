package employee_dashboard

import (
	"time"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/validator"
)

// ========== REQUEST ==========

// TilesFilter carries the optional query parameters of the tiles endpoint.
// Dates use "YYYY-MM-DD"; Assignee is a user ID and Status a task stage ID.
type TilesFilter struct {
	StartDate  string
	EndDate    string
	FilterDate string
	Assignee   string
	Deadline   string
	Status     string
}

func (f *TilesFilter) Validate() error {
	var errs validator.ValidationErrors

	errs.OptionalDate("start_date", f.StartDate)
	errs.OptionalDate("end_date", f.EndDate)
	errs.OptionalDate("filter_date", f.FilterDate)
	errs.OptionalDate("deadline", f.Deadline)
	errs.OptionalUUID("assignee", f.Assignee, "user")
	errs.OptionalUUID("status", f.Status, "stage")

	start, startOK := validator.IsValidDate(f.StartDate)
	end, endOK := validator.IsValidDate(f.EndDate)
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	return errs.Err()
}

// ========== COMBINED TILES PAYLOAD ==========

// TilesResponse is the whole dashboard payload. Exactly one of EmployeeTiles
// or ManagerTiles is set; their fields are inlined into the JSON object.
type TilesResponse struct {
	IsManager         bool            `json:"is_manager"`
	FilterPeriod      string          `json:"filter_period,omitempty"`
	EmployeeHierarchy []HierarchyNode `json:"employee_hierarchy,omitempty"`
	Assignees         []FilterOption  `json:"assignees"`
	Statuses          []FilterOption  `json:"statuses"`

	*EmployeeTiles
	*ManagerTiles
}

// EmptyTiles is returned when the caller has no employee record or when
// assembling the payload failed.
func EmptyTiles() *TilesResponse {
	return &TilesResponse{
		IsManager: false,
		Assignees: []FilterOption{},
		Statuses:  []FilterOption{},
		EmployeeTiles: &EmployeeTiles{
			ProjectTasks: []ProjectTask{},
		},
	}
}

// ========== EMPLOYEE TILES ==========

// EmployeeTiles holds the individual contributor's own figures
type EmployeeTiles struct {
	MyAttendance              float64           `json:"my_attendance"`                // worked hours in range
	HoursToday                float64           `json:"hours_today"`                  // worked hours checked in today
	HoursPreviouslyToday      float64           `json:"hours_previously_today"`       // always 0
	LastAttendanceWorkedHours float64           `json:"last_attendance_worked_hours"` // open session so far
	TotalOvertime             float64           `json:"total_overtime"`
	TotalDaysPresent          int               `json:"total_days_present"`
	TotalLeavesTaken          float64           `json:"total_leaves_taken"` // current calendar month
	LeavesThisMonth           float64           `json:"leaves_this_month"`  // selected range
	PendingLeavesCount        int64             `json:"pending_leaves_count"`
	ProjectTasks              []ProjectTask     `json:"project_tasks"`
	ProjectTaskCount          *ProjectTaskCount `json:"project_task_count,omitempty"`
	PersonalDetails           *PersonalDetails  `json:"personal_details,omitempty"`
}

type ProjectTaskCount struct {
	ProjectCount          int64 `json:"project_count"`
	TaskCount             int64 `json:"task_count"`
	RemainingProjectCount int64 `json:"remaining_project_count"`
	RemainingTaskCount    int64 `json:"remaining_task_count"`
}

type PersonalDetails struct {
	EmployeeName       string `json:"employee_name"`
	EmployeeEmail      string `json:"employee_email"`
	EmployeePhone      string `json:"employee_phone"`
	EmployeeJob        string `json:"employee_job"`
	EmployeeDepartment string `json:"employee_department"`
	EmployeeImage      string `json:"employee_image"` // avatar URL
}

// ProjectTask is one row of the task table
type ProjectTask struct {
	ID       string `json:"id"`
	Name     string `json:"name"` // project name, "No Project" when unset
	TaskName string `json:"task_name"`
	Deadline string `json:"deadline"` // Format: "2006-01-02", empty when unset
	Stage    string `json:"stage"`    // "No Stage" when unset
}

// ========== MANAGER TILES ==========

// ManagerTiles holds company-wide figures for a single day plus the task list
type ManagerTiles struct {
	ManagerAttendance   AttendanceByGender  `json:"manager_attendance"`
	ManagerLeaves       LeaveByGender       `json:"manager_leaves"`
	ManagerProjectCount ManagerProjectCount `json:"manager_project_count"`
	ManagerProjects     []ManagerTask       `json:"manager_projects"`
	FilterStartDate     time.Time           `json:"filter_start_date"`
	FilterEndDate       time.Time           `json:"filter_end_date"`
}

// AttendanceByGender counts distinct employees who checked in
type AttendanceByGender struct {
	Total int64 `json:"total"`
	Men   int64 `json:"men"`
	Women int64 `json:"women"`
}

// LeaveByGender sums validated leave days
type LeaveByGender struct {
	Total float64 `json:"total"`
	Men   float64 `json:"men"`
	Women float64 `json:"women"`
}

type ManagerProjectCount struct {
	TotalProjects     int64 `json:"total_projects"`
	TotalTasks        int64 `json:"total_tasks"`
	RemainingProjects int64 `json:"remaining_projects"`
	RemainingTasks    int64 `json:"remaining_tasks"`
}

type ManagerTask struct {
	ProjectTask
	Assignees []string `json:"assignees"`
}

// ========== SHARED ==========

// HierarchyNode is one box of the org chart; PID is null for the root
type HierarchyNode struct {
	ID    string  `json:"id"`
	PID   *string `json:"pid"`
	Name  string  `json:"name"`
	Title string  `json:"title"`
	Img   string  `json:"img"`
}

// FilterOption feeds the assignee and status dropdowns
type FilterOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
