package employee_dashboard

import (
	"context"
	"time"

	empDashboard "github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee_dashboard"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetEmployeeByUserID(ctx context.Context, userID string) (*empDashboard.EmployeeData, error) {
	args := m.Called(ctx, userID)
	emp, _ := args.Get(0).(*empDashboard.EmployeeData)
	return emp, args.Error(1)
}

func (m *mockRepository) GetHierarchy(ctx context.Context, employeeID string) ([]empDashboard.HierarchyData, error) {
	args := m.Called(ctx, employeeID)
	rows, _ := args.Get(0).([]empDashboard.HierarchyData)
	return rows, args.Error(1)
}

func (m *mockRepository) GetAttendances(ctx context.Context, employeeID string, from, to time.Time) ([]empDashboard.AttendanceData, error) {
	args := m.Called(ctx, employeeID, from, to)
	rows, _ := args.Get(0).([]empDashboard.AttendanceData)
	return rows, args.Error(1)
}

func (m *mockRepository) GetOngoingCheckIn(ctx context.Context, employeeID string) (*time.Time, error) {
	args := m.Called(ctx, employeeID)
	checkIn, _ := args.Get(0).(*time.Time)
	return checkIn, args.Error(1)
}

func (m *mockRepository) SumValidatedLeaveDays(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, employeeID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockRepository) CountPendingLeaves(ctx context.Context, employeeID string) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) ListUserTasks(ctx context.Context, userID string, filter empDashboard.TaskFilter) ([]empDashboard.TaskData, error) {
	args := m.Called(ctx, userID, filter)
	rows, _ := args.Get(0).([]empDashboard.TaskData)
	return rows, args.Error(1)
}

func (m *mockRepository) GetUserProjectTaskCounts(ctx context.Context, userID string) (*empDashboard.ProjectTaskCountData, error) {
	args := m.Called(ctx, userID)
	counts, _ := args.Get(0).(*empDashboard.ProjectTaskCountData)
	return counts, args.Error(1)
}

func (m *mockRepository) ListAssignees(ctx context.Context) ([]empDashboard.AssigneeData, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]empDashboard.AssigneeData)
	return rows, args.Error(1)
}

func (m *mockRepository) ListStages(ctx context.Context) ([]empDashboard.StageData, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]empDashboard.StageData)
	return rows, args.Error(1)
}

func (m *mockRepository) CountAttendanceByGender(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	args := m.Called(ctx, from, to)
	counts, _ := args.Get(0).(map[string]int64)
	return counts, args.Error(1)
}

func (m *mockRepository) SumLeaveDaysByGender(ctx context.Context, day time.Time) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, day)
	days, _ := args.Get(0).(map[string]decimal.Decimal)
	return days, args.Error(1)
}

func (m *mockRepository) GetCompanyProjectTaskCounts(ctx context.Context) (*empDashboard.ProjectTaskCountData, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(*empDashboard.ProjectTaskCountData)
	return counts, args.Error(1)
}

func (m *mockRepository) ListTasks(ctx context.Context, filter empDashboard.TaskFilter) ([]empDashboard.TaskData, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]empDashboard.TaskData)
	return rows, args.Error(1)
}
