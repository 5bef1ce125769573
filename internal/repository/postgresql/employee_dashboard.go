package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	empDashboard "github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee_dashboard"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// maxHierarchyDepth bounds the recursive subordinate walk
const maxHierarchyDepth = 64

type employeeDashboardRepositoryImpl struct {
	db      database.Querier
	metrics *metrics.Metrics
}

func NewEmployeeDashboardRepository(db database.Querier, m *metrics.Metrics) empDashboard.EmployeeDashboardRepository {
	return &employeeDashboardRepositoryImpl{db: db, metrics: m}
}

// GetEmployeeByUserID returns the first active employee linked to the user (single query)
func (r *employeeDashboardRepositoryImpl) GetEmployeeByUserID(ctx context.Context, userID string) (*empDashboard.EmployeeData, error) {
	defer r.metrics.ObserveQuery("employee", time.Now())

	query := `
		SELECT
			e.id, e.user_id, e.parent_id, e.name, COALESCE(e.gender, ''),
			e.work_email, e.work_phone, j.name, d.name, e.avatar_path,
			COALESCE(e.total_overtime, 0)
		FROM employees e
		LEFT JOIN jobs j ON e.job_id = j.id
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE e.user_id = $1 AND e.active = TRUE
		ORDER BY e.name, e.id
		LIMIT 1
	`

	var data empDashboard.EmployeeData
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&data.ID, &data.UserID, &data.ParentID, &data.Name, &data.Gender,
		&data.WorkEmail, &data.WorkPhone, &data.JobName, &data.DepartmentName, &data.AvatarPath,
		&data.TotalOvertime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, empDashboard.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee for user %s: %w", userID, err)
	}
	return &data, nil
}

// GetHierarchy returns the employee subtree plus its direct manager
func (r *employeeDashboardRepositoryImpl) GetHierarchy(ctx context.Context, employeeID string) ([]empDashboard.HierarchyData, error) {
	defer r.metrics.ObserveQuery("hierarchy", time.Now())

	query := `
		WITH RECURSIVE subordinates AS (
			SELECT e.id, e.parent_id, e.name, e.job_id, e.avatar_path, 0 AS depth
			FROM employees e
			WHERE e.id = $1
			UNION ALL
			SELECT c.id, c.parent_id, c.name, c.job_id, c.avatar_path, s.depth + 1
			FROM employees c
			JOIN subordinates s ON c.parent_id = s.id
			WHERE c.active = TRUE AND s.depth < $2
		)
		SELECT s.id, s.parent_id, s.name, j.name, s.avatar_path
		FROM subordinates s
		LEFT JOIN jobs j ON s.job_id = j.id
		UNION ALL
		SELECT m.id, m.parent_id, m.name, j.name, m.avatar_path
		FROM employees e
		JOIN employees m ON e.parent_id = m.id
		LEFT JOIN jobs j ON m.job_id = j.id
		WHERE e.id = $1
	`

	rows, err := r.db.Query(ctx, query, employeeID, maxHierarchyDepth)
	if err != nil {
		return nil, fmt.Errorf("failed to get hierarchy: %w", err)
	}
	defer rows.Close()

	var result []empDashboard.HierarchyData
	for rows.Next() {
		var item empDashboard.HierarchyData
		if err := rows.Scan(&item.ID, &item.ParentID, &item.Name, &item.JobName, &item.AvatarPath); err != nil {
			return nil, fmt.Errorf("failed to scan hierarchy row: %w", err)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetAttendances returns attendance rows with check-in in [from, to)
func (r *employeeDashboardRepositoryImpl) GetAttendances(ctx context.Context, employeeID string, from, to time.Time) ([]empDashboard.AttendanceData, error) {
	defer r.metrics.ObserveQuery("attendance_records", time.Now())

	query := `
		SELECT check_in, check_out, COALESCE(worked_hours, 0)
		FROM attendances
		WHERE employee_id = $1
		AND check_in >= $2 AND check_in < $3
		ORDER BY check_in
	`

	rows, err := r.db.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendances: %w", err)
	}
	defer rows.Close()

	var result []empDashboard.AttendanceData
	for rows.Next() {
		var item empDashboard.AttendanceData
		if err := rows.Scan(&item.CheckIn, &item.CheckOut, &item.WorkedHours); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetOngoingCheckIn returns the latest open check-in, nil when the employee is checked out
func (r *employeeDashboardRepositoryImpl) GetOngoingCheckIn(ctx context.Context, employeeID string) (*time.Time, error) {
	defer r.metrics.ObserveQuery("attendance_ongoing", time.Now())

	query := `
		SELECT check_in
		FROM attendances
		WHERE employee_id = $1
		AND check_in IS NOT NULL
		AND check_out IS NULL
		ORDER BY check_in DESC
		LIMIT 1
	`

	var checkIn time.Time
	err := r.db.QueryRow(ctx, query, employeeID).Scan(&checkIn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ongoing attendance: %w", err)
	}
	return &checkIn, nil
}

// SumValidatedLeaveDays sums validated leave days overlapping [from, to]
func (r *employeeDashboardRepositoryImpl) SumValidatedLeaveDays(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error) {
	defer r.metrics.ObserveQuery("leave_days", time.Now())

	query := `
		SELECT COALESCE(SUM(number_of_days), 0)
		FROM leaves
		WHERE employee_id = $1
		AND state = 'validate'
		AND request_date_to >= $2
		AND request_date_from <= $3
	`

	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, employeeID, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum leave days: %w", err)
	}
	return total, nil
}

// CountPendingLeaves counts leaves in confirm or validate1 state
func (r *employeeDashboardRepositoryImpl) CountPendingLeaves(ctx context.Context, employeeID string) (int64, error) {
	defer r.metrics.ObserveQuery("leave_pending", time.Now())

	query := `
		SELECT COUNT(*)
		FROM leaves
		WHERE employee_id = $1
		AND state IN ('confirm', 'validate1')
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return count, nil
}

// ListUserTasks returns active tasks assigned to the user
func (r *employeeDashboardRepositoryImpl) ListUserTasks(ctx context.Context, userID string, filter empDashboard.TaskFilter) ([]empDashboard.TaskData, error) {
	defer r.metrics.ObserveQuery("user_tasks", time.Now())

	conditions := []string{"ta.user_id = $1", "t.active = TRUE"}
	args := []interface{}{userID}
	conditions, args = appendTaskConditions(conditions, args, filter)

	query := fmt.Sprintf(`
		SELECT t.id, p.name, t.name, t.date_deadline, s.name
		FROM task_assignees ta
		JOIN tasks t ON ta.task_id = t.id
		LEFT JOIN projects p ON t.project_id = p.id
		LEFT JOIN task_stages s ON t.stage_id = s.id
		WHERE %s
		ORDER BY t.date_deadline ASC NULLS LAST, t.priority DESC NULLS LAST, t.id
	`, strings.Join(conditions, " AND "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}
	defer rows.Close()

	var result []empDashboard.TaskData
	for rows.Next() {
		var item empDashboard.TaskData
		if err := rows.Scan(&item.ID, &item.ProjectName, &item.Name, &item.Deadline, &item.StageName); err != nil {
			return nil, fmt.Errorf("failed to scan user task: %w", err)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetUserProjectTaskCounts returns managed project and assigned task counts (single query)
func (r *employeeDashboardRepositoryImpl) GetUserProjectTaskCounts(ctx context.Context, userID string) (*empDashboard.ProjectTaskCountData, error) {
	defer r.metrics.ObserveQuery("user_project_counts", time.Now())

	query := `
		SELECT
			(SELECT COUNT(*) FROM projects
				WHERE user_id = $1 AND active = TRUE) as projects,
			(SELECT COUNT(*) FROM task_assignees ta
				JOIN tasks t ON ta.task_id = t.id
				WHERE ta.user_id = $1 AND t.active = TRUE) as tasks,
			(SELECT COUNT(*) FROM projects
				WHERE user_id = $1 AND active = TRUE
				AND last_update_status IS DISTINCT FROM 'done') as remaining_projects,
			(SELECT COUNT(*) FROM task_assignees ta
				JOIN tasks t ON ta.task_id = t.id
				LEFT JOIN task_stages s ON t.stage_id = s.id
				WHERE ta.user_id = $1 AND t.active = TRUE
				AND COALESCE(s.fold, FALSE) = FALSE) as remaining_tasks
	`

	var data empDashboard.ProjectTaskCountData
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&data.Projects, &data.Tasks, &data.RemainingProjects, &data.RemainingTasks,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get user project counts: %w", err)
	}
	return &data, nil
}

// ListAssignees returns active users with at least one task assignment
func (r *employeeDashboardRepositoryImpl) ListAssignees(ctx context.Context) ([]empDashboard.AssigneeData, error) {
	defer r.metrics.ObserveQuery("assignees", time.Now())

	query := `
		SELECT DISTINCT u.id, u.name
		FROM users u
		JOIN task_assignees ta ON ta.user_id = u.id
		WHERE u.active = TRUE
		ORDER BY u.name, u.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignees: %w", err)
	}
	defer rows.Close()

	var result []empDashboard.AssigneeData
	for rows.Next() {
		var item empDashboard.AssigneeData
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("failed to scan assignee: %w", err)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// ListStages returns active task stages ordered by id
func (r *employeeDashboardRepositoryImpl) ListStages(ctx context.Context) ([]empDashboard.StageData, error) {
	defer r.metrics.ObserveQuery("stages", time.Now())

	query := `
		SELECT id, name
		FROM task_stages
		WHERE active = TRUE
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	defer rows.Close()

	var result []empDashboard.StageData
	for rows.Next() {
		var item empDashboard.StageData
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("failed to scan stage: %w", err)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// CountAttendanceByGender counts distinct employees checked in during [from, to)
func (r *employeeDashboardRepositoryImpl) CountAttendanceByGender(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	defer r.metrics.ObserveQuery("manager_attendance", time.Now())

	query := `
		SELECT COALESCE(e.gender, ''), COUNT(DISTINCT a.employee_id)
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.check_in >= $1 AND a.check_in < $2
		GROUP BY e.gender
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by gender: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var (
			gender string
			count  int64
		)
		if err := rows.Scan(&gender, &count); err != nil {
			return nil, fmt.Errorf("failed to scan attendance count: %w", err)
		}
		result[gender] += count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// SumLeaveDaysByGender sums validated leave days covering day
func (r *employeeDashboardRepositoryImpl) SumLeaveDaysByGender(ctx context.Context, day time.Time) (map[string]decimal.Decimal, error) {
	defer r.metrics.ObserveQuery("manager_leaves", time.Now())

	query := `
		SELECT COALESCE(e.gender, ''), COALESCE(SUM(l.number_of_days), 0)
		FROM leaves l
		JOIN employees e ON l.employee_id = e.id
		WHERE l.request_date_from <= $1
		AND l.request_date_to >= $1
		AND l.state = 'validate'
		GROUP BY e.gender
	`

	rows, err := r.db.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to sum leave days by gender: %w", err)
	}
	defer rows.Close()

	result := make(map[string]decimal.Decimal)
	for rows.Next() {
		var (
			gender string
			days   decimal.Decimal
		)
		if err := rows.Scan(&gender, &days); err != nil {
			return nil, fmt.Errorf("failed to scan leave days: %w", err)
		}
		result[gender] = result[gender].Add(days)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetCompanyProjectTaskCounts returns company-wide project and task counts (single query)
func (r *employeeDashboardRepositoryImpl) GetCompanyProjectTaskCounts(ctx context.Context) (*empDashboard.ProjectTaskCountData, error) {
	defer r.metrics.ObserveQuery("manager_project_counts", time.Now())

	query := `
		SELECT
			(SELECT COUNT(*) FROM projects WHERE active = TRUE) as projects,
			(SELECT COUNT(*) FROM tasks WHERE active = TRUE) as tasks,
			(SELECT COUNT(*) FROM projects
				WHERE active = TRUE
				AND last_update_status IS DISTINCT FROM 'done') as remaining_projects,
			(SELECT COUNT(*) FROM tasks t
				LEFT JOIN task_stages s ON t.stage_id = s.id
				WHERE t.active = TRUE
				AND COALESCE(s.fold, FALSE) = FALSE) as remaining_tasks
	`

	var data empDashboard.ProjectTaskCountData
	err := r.db.QueryRow(ctx, query).Scan(
		&data.Projects, &data.Tasks, &data.RemainingProjects, &data.RemainingTasks,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get company project counts: %w", err)
	}
	return &data, nil
}

// ListTasks returns all active tasks with their assignee names
func (r *employeeDashboardRepositoryImpl) ListTasks(ctx context.Context, filter empDashboard.TaskFilter) ([]empDashboard.TaskData, error) {
	defer r.metrics.ObserveQuery("manager_tasks", time.Now())

	conditions := []string{"t.active = TRUE"}
	conditions, args := appendTaskConditions(conditions, nil, filter)

	query := fmt.Sprintf(`
		SELECT
			t.id, p.name, t.name, t.date_deadline, s.name,
			COALESCE(ARRAY_AGG(u.name ORDER BY u.name) FILTER (WHERE u.name IS NOT NULL), '{}')
		FROM tasks t
		LEFT JOIN projects p ON t.project_id = p.id
		LEFT JOIN task_stages s ON t.stage_id = s.id
		LEFT JOIN task_assignees ta ON ta.task_id = t.id
		LEFT JOIN users u ON ta.user_id = u.id
		WHERE %s
		GROUP BY t.id, p.name, t.name, t.date_deadline, s.name, t.priority
		ORDER BY t.date_deadline ASC NULLS LAST, t.priority DESC NULLS LAST, t.id
	`, strings.Join(conditions, " AND "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var result []empDashboard.TaskData
	for rows.Next() {
		var item empDashboard.TaskData
		if err := rows.Scan(&item.ID, &item.ProjectName, &item.Name, &item.Deadline, &item.StageName, &item.Assignees); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// appendTaskConditions adds the optional task filters as numbered placeholders.
// The assignee filter is an EXISTS so the aggregated assignee list stays complete.
func appendTaskConditions(conditions []string, args []interface{}, filter empDashboard.TaskFilter) ([]string, []interface{}) {
	argIdx := len(args) + 1

	if filter.AssigneeID != nil {
		conditions = append(conditions, fmt.Sprintf("EXISTS (SELECT 1 FROM task_assignees fa WHERE fa.task_id = t.id AND fa.user_id = $%d)", argIdx))
		args = append(args, *filter.AssigneeID)
		argIdx++
	}
	if filter.Deadline != nil {
		conditions = append(conditions, fmt.Sprintf("t.date_deadline >= $%d", argIdx))
		args = append(args, *filter.Deadline)
		argIdx++
	}
	if filter.StageID != nil {
		conditions = append(conditions, fmt.Sprintf("t.stage_id = $%d", argIdx))
		args = append(args, *filter.StageID)
	}

	return conditions, args
}
