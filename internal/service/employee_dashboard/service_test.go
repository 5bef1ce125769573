package employee_dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/auth"
	empDashboard "github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee_dashboard"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/i18n"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const (
	stageNewID   = "0195a3c1-0000-7000-8000-0000000000a1"
	stageDoneID  = "0195a3c1-0000-7000-8000-0000000000a2"
	stageNew2ID  = "0195a3c1-0000-7000-8000-0000000000a3"
	assigneeUser = "0195a3c1-0000-7000-8000-0000000000b1"
)

var fixedNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func newTestService(t *testing.T, repo *mockRepository) (*EmployeeDashboardServiceImpl, *metrics.Metrics) {
	t.Helper()
	return newTestServiceIn(t, repo, time.UTC, fixedNow)
}

func newTestServiceIn(t *testing.T, repo *mockRepository, loc *time.Location, now time.Time) (*EmployeeDashboardServiceImpl, *metrics.Metrics) {
	t.Helper()
	avatars, err := storage.NewLocalStorage(t.TempDir(), "/avatars", "/static/default_avatar.png")
	require.NoError(t, err)

	m := metrics.NewMetrics(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewEmployeeDashboardService(repo, avatars, m, logger, Settings{
		Location:        loc,
		DefaultLanguage: language.AmericanEnglish,
	})
	svc.now = func() time.Time { return now }
	return svc, m
}

func callerContext(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	tokens := jwt.NewJWTService("test-secret")
	token, _, err := tokens.GenerateAccessToken(userID, nil, role, time.Hour)
	require.NoError(t, err)
	parsed, err := tokens.JWTAuth().Decode(token)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), parsed, nil)
}

func rinaEmployee() *empDashboard.EmployeeData {
	return &empDashboard.EmployeeData{
		ID:             "e1",
		UserID:         strPtr("user-1"),
		ParentID:       strPtr("m1"),
		Name:           "Rina",
		Gender:         "female",
		WorkEmail:      strPtr("rina@example.com"),
		JobName:        i18n.Translations{"en_US": "Developer", "id_ID": "Pengembang"},
		DepartmentName: i18n.Translations{"en_US": "Engineering"},
		AvatarPath:     strPtr("rina.png"),
		TotalOvertime:  decimal.RequireFromString("4.5"),
	}
}

func TestGetTilesData_Employee(t *testing.T) {
	repo := new(mockRepository)
	svc, m := newTestService(t, repo)
	ctx := callerContext(t, "user-1", user.RoleEmployee)

	filter := empDashboard.TilesFilter{
		StartDate: "2025-02-15",
		Deadline:  "2025-03-01",
		Status:    stageNewID,
		Assignee:  assigneeUser, // ignored for employees
	}
	deadline := date(2025, 3, 1)
	taskDeadline := date(2025, 3, 20)

	repo.On("GetEmployeeByUserID", mock.Anything, "user-1").Return(rinaEmployee(), nil).Once()
	repo.On("GetHierarchy", mock.Anything, "e1").Return([]empDashboard.HierarchyData{
		{ID: "e1", ParentID: strPtr("m1"), Name: "Rina", JobName: i18n.Translations{"en_US": "Developer"}, AvatarPath: strPtr("rina.png")},
		{ID: "c2", ParentID: strPtr("e1"), Name: "Budi"},
		{ID: "c1", ParentID: strPtr("e1"), Name: "Andi"},
		{ID: "g1", ParentID: strPtr("c1"), Name: "Citra"},
		{ID: "m1", Name: "Sari"},
	}, nil).Once()
	repo.On("ListStages", mock.Anything).Return([]empDashboard.StageData{
		{ID: stageNewID, Name: i18n.Translations{"en_US": "New"}},
		{ID: stageDoneID, Name: i18n.Translations{"en_US": "Done"}},
		{ID: stageNew2ID, Name: i18n.Translations{"en_US": "New"}},
	}, nil).Once()
	repo.On("GetAttendances", mock.Anything, "e1", date(2025, 2, 15), date(2025, 3, 15)).Return([]empDashboard.AttendanceData{
		{CheckIn: time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC), WorkedHours: decimal.NewFromInt(8)},
		{CheckIn: time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC), WorkedHours: decimal.RequireFromString("1.5")},
		{CheckIn: time.Date(2025, 3, 14, 6, 0, 0, 0, time.UTC), WorkedHours: decimal.NewFromInt(2)},
	}, nil).Once()
	repo.On("GetOngoingCheckIn", mock.Anything, "e1").Return(timePtr(time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)), nil).Once()
	repo.On("SumValidatedLeaveDays", mock.Anything, "e1", date(2025, 3, 1), date(2025, 3, 31)).Return(decimal.NewFromInt(1), nil).Once()
	repo.On("SumValidatedLeaveDays", mock.Anything, "e1", date(2025, 2, 15), date(2025, 3, 14)).Return(decimal.RequireFromString("2.5"), nil).Once()
	repo.On("CountPendingLeaves", mock.Anything, "e1").Return(int64(2), nil).Once()
	repo.On("ListUserTasks", mock.Anything, "user-1", empDashboard.TaskFilter{
		Deadline: &deadline,
		StageID:  strPtr(stageNewID),
	}).Return([]empDashboard.TaskData{
		{ID: "t1", ProjectName: i18n.Translations{"en_US": "Website"}, Name: "Landing page", Deadline: &taskDeadline, StageName: i18n.Translations{"en_US": "New"}},
		{ID: "t2", Name: "Inbox zero"},
	}, nil).Once()
	repo.On("GetUserProjectTaskCounts", mock.Anything, "user-1").Return(&empDashboard.ProjectTaskCountData{
		Projects: 2, Tasks: 5, RemainingProjects: 1, RemainingTasks: 3,
	}, nil).Once()

	resp, err := svc.GetTilesData(ctx, filter)
	require.NoError(t, err)

	assert.False(t, resp.IsManager)
	assert.Equal(t, "2025-02-15 to 2025-03-14", resp.FilterPeriod)
	assert.Nil(t, resp.ManagerTiles)
	assert.Equal(t, []empDashboard.FilterOption{}, resp.Assignees)
	assert.Equal(t, []empDashboard.FilterOption{
		{ID: stageDoneID, Name: "Done"},
		{ID: stageNewID, Name: "New"},
	}, resp.Statuses)

	tiles := resp.EmployeeTiles
	require.NotNil(t, tiles)
	assert.InDelta(t, 11.5, tiles.MyAttendance, 1e-9)
	assert.InDelta(t, 2.0, tiles.HoursToday, 1e-9)
	assert.Zero(t, tiles.HoursPreviouslyToday)
	assert.InDelta(t, 2.0, tiles.LastAttendanceWorkedHours, 1e-9)
	assert.InDelta(t, 4.5, tiles.TotalOvertime, 1e-9)
	assert.Equal(t, 2, tiles.TotalDaysPresent)
	assert.InDelta(t, 1.0, tiles.TotalLeavesTaken, 1e-9)
	assert.InDelta(t, 2.5, tiles.LeavesThisMonth, 1e-9)
	assert.Equal(t, int64(2), tiles.PendingLeavesCount)

	assert.Equal(t, []empDashboard.ProjectTask{
		{ID: "t1", Name: "Website", TaskName: "Landing page", Deadline: "2025-03-20", Stage: "New"},
		{ID: "t2", Name: "No Project", TaskName: "Inbox zero", Deadline: "", Stage: "No Stage"},
	}, tiles.ProjectTasks)
	assert.Equal(t, &empDashboard.ProjectTaskCount{
		ProjectCount: 2, TaskCount: 5, RemainingProjectCount: 1, RemainingTaskCount: 3,
	}, tiles.ProjectTaskCount)
	assert.Equal(t, &empDashboard.PersonalDetails{
		EmployeeName:       "Rina",
		EmployeeEmail:      "rina@example.com",
		EmployeePhone:      "",
		EmployeeJob:        "Developer",
		EmployeeDepartment: "Engineering",
		EmployeeImage:      "/avatars/rina.png",
	}, tiles.PersonalDetails)

	require.Len(t, resp.EmployeeHierarchy, 5)
	var order []string
	for _, node := range resp.EmployeeHierarchy {
		order = append(order, node.ID)
	}
	assert.Equal(t, []string{"m1", "e1", "c1", "g1", "c2"}, order)
	assert.Nil(t, resp.EmployeeHierarchy[0].PID)
	assert.Equal(t, "Manager", resp.EmployeeHierarchy[0].Title)
	assert.Equal(t, "/static/default_avatar.png", resp.EmployeeHierarchy[0].Img)
	assert.Equal(t, "m1", *resp.EmployeeHierarchy[1].PID)
	assert.Equal(t, "Developer", resp.EmployeeHierarchy[1].Title)
	assert.Equal(t, "c1", *resp.EmployeeHierarchy[3].PID)
	assert.Equal(t, "Employee", resp.EmployeeHierarchy[4].Title)

	assert.InDelta(t, 1, testutil.ToFloat64(m.DashboardBuilds.WithLabelValues("employee")), 0)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "ListAssignees", mock.Anything)
}

func TestGetTilesData_Manager(t *testing.T) {
	repo := new(mockRepository)
	svc, m := newTestService(t, repo)
	ctx := i18n.WithLanguage(callerContext(t, "user-9", user.RoleManager), language.Indonesian)

	boss := &empDashboard.EmployeeData{
		ID:      "e9",
		UserID:  strPtr("user-9"),
		Name:    "Dewi",
		JobName: i18n.Translations{"en_US": "HR Manager", "id_ID": "Manajer SDM"},
	}

	repo.On("GetEmployeeByUserID", mock.Anything, "user-9").Return(boss, nil).Once()
	repo.On("GetHierarchy", mock.Anything, "e9").Return([]empDashboard.HierarchyData{
		{ID: "e9", Name: "Dewi", JobName: boss.JobName},
	}, nil).Once()
	repo.On("ListStages", mock.Anything).Return([]empDashboard.StageData(nil), nil).Once()
	repo.On("ListAssignees", mock.Anything).Return([]empDashboard.AssigneeData{
		{ID: assigneeUser, Name: "Andi"},
	}, nil).Once()
	repo.On("CountAttendanceByGender", mock.Anything, date(2025, 3, 10), date(2025, 3, 11)).Return(map[string]int64{
		"male": 3, "female": 2, "other": 1,
	}, nil).Once()
	repo.On("SumLeaveDaysByGender", mock.Anything, date(2025, 3, 10)).Return(map[string]decimal.Decimal{
		"male":   decimal.NewFromInt(1),
		"female": decimal.RequireFromString("0.5"),
		"other":  decimal.NewFromInt(2),
	}, nil).Once()
	repo.On("GetCompanyProjectTaskCounts", mock.Anything).Return(&empDashboard.ProjectTaskCountData{
		Projects: 5, Tasks: 20, RemainingProjects: 4, RemainingTasks: 12,
	}, nil).Once()
	repo.On("ListTasks", mock.Anything, empDashboard.TaskFilter{AssigneeID: strPtr(assigneeUser)}).Return([]empDashboard.TaskData{
		{ID: "t1", ProjectName: i18n.Translations{"en_US": "Website", "id_ID": "Situs Web"}, Name: "Landing page", Assignees: []string{"Andi", "Budi"}},
		{ID: "t2", Name: "Orphan task"},
	}, nil).Once()

	resp, err := svc.GetTilesData(ctx, empDashboard.TilesFilter{FilterDate: "2025-03-10", Assignee: assigneeUser})
	require.NoError(t, err)

	assert.True(t, resp.IsManager)
	assert.Nil(t, resp.EmployeeTiles)
	assert.Equal(t, []empDashboard.FilterOption{{ID: assigneeUser, Name: "Andi"}}, resp.Assignees)
	assert.Equal(t, []empDashboard.FilterOption{}, resp.Statuses)

	require.Len(t, resp.EmployeeHierarchy, 1)
	assert.Nil(t, resp.EmployeeHierarchy[0].PID)
	assert.Equal(t, "Manajer SDM", resp.EmployeeHierarchy[0].Title)

	tiles := resp.ManagerTiles
	require.NotNil(t, tiles)
	assert.Equal(t, empDashboard.AttendanceByGender{Total: 6, Men: 3, Women: 2}, tiles.ManagerAttendance)
	assert.InDelta(t, 3.5, tiles.ManagerLeaves.Total, 1e-9)
	assert.InDelta(t, 1.0, tiles.ManagerLeaves.Men, 1e-9)
	assert.InDelta(t, 0.5, tiles.ManagerLeaves.Women, 1e-9)
	assert.GreaterOrEqual(t, tiles.ManagerLeaves.Total, tiles.ManagerLeaves.Men+tiles.ManagerLeaves.Women)
	assert.Equal(t, empDashboard.ManagerProjectCount{TotalProjects: 5, TotalTasks: 20, RemainingProjects: 4, RemainingTasks: 12}, tiles.ManagerProjectCount)
	assert.Equal(t, date(2025, 3, 10), tiles.FilterStartDate)
	assert.Equal(t, date(2025, 3, 11).Add(-time.Microsecond), tiles.FilterEndDate)

	require.Len(t, tiles.ManagerProjects, 2)
	assert.Equal(t, "Situs Web", tiles.ManagerProjects[0].Name)
	assert.Equal(t, []string{"Andi", "Budi"}, tiles.ManagerProjects[0].Assignees)
	assert.Equal(t, "No Project", tiles.ManagerProjects[1].Name)
	assert.Equal(t, []string{}, tiles.ManagerProjects[1].Assignees)

	assert.InDelta(t, 1, testutil.ToFloat64(m.DashboardBuilds.WithLabelValues("manager")), 0)
	repo.AssertExpectations(t)
}

func TestGetTilesData_EmployeeWithoutUserSkipsTasks(t *testing.T) {
	repo := new(mockRepository)
	svc, _ := newTestService(t, repo)
	ctx := callerContext(t, "user-1", user.RoleEmployee)

	emp := rinaEmployee()
	emp.UserID = nil
	emp.ParentID = nil

	repo.On("GetEmployeeByUserID", mock.Anything, "user-1").Return(emp, nil).Once()
	repo.On("GetHierarchy", mock.Anything, "e1").Return([]empDashboard.HierarchyData(nil), nil).Once()
	repo.On("ListStages", mock.Anything).Return([]empDashboard.StageData(nil), nil).Once()
	repo.On("GetAttendances", mock.Anything, "e1", mock.Anything, mock.Anything).Return([]empDashboard.AttendanceData(nil), nil).Once()
	repo.On("GetOngoingCheckIn", mock.Anything, "e1").Return(nil, nil).Once()
	repo.On("SumValidatedLeaveDays", mock.Anything, "e1", mock.Anything, mock.Anything).Return(decimal.Zero, nil).Twice()
	repo.On("CountPendingLeaves", mock.Anything, "e1").Return(int64(0), nil).Once()

	resp, err := svc.GetTilesData(ctx, empDashboard.TilesFilter{})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01 to 2025-03-31", resp.FilterPeriod)
	assert.Equal(t, []empDashboard.ProjectTask{}, resp.ProjectTasks)
	assert.Equal(t, &empDashboard.ProjectTaskCount{}, resp.ProjectTaskCount)
	assert.Zero(t, resp.LastAttendanceWorkedHours)

	require.Len(t, resp.EmployeeHierarchy, 1)
	assert.Equal(t, "e1", resp.EmployeeHierarchy[0].ID)
	assert.Equal(t, "Developer", resp.EmployeeHierarchy[0].Title)

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "ListUserTasks", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "GetUserProjectTaskCounts", mock.Anything, mock.Anything)
}

func TestGetTilesData_NoEmployee(t *testing.T) {
	repo := new(mockRepository)
	svc, m := newTestService(t, repo)
	ctx := callerContext(t, "user-404", user.RoleManager)

	repo.On("GetEmployeeByUserID", mock.Anything, "user-404").Return(nil, empDashboard.ErrEmployeeNotFound).Once()

	resp, err := svc.GetTilesData(ctx, empDashboard.TilesFilter{})
	require.NoError(t, err)

	assert.Equal(t, empDashboard.EmptyTiles(), resp)
	assert.InDelta(t, 1, testutil.ToFloat64(m.DashboardBuilds.WithLabelValues("empty")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.DashboardFallback), 0)
	repo.AssertExpectations(t)
}

func TestGetTilesData_FailureFallsBackToEmpty(t *testing.T) {
	repo := new(mockRepository)
	svc, m := newTestService(t, repo)
	ctx := callerContext(t, "user-1", user.RoleEmployee)

	repo.On("GetEmployeeByUserID", mock.Anything, "user-1").Return(rinaEmployee(), nil).Once()
	repo.On("ListStages", mock.Anything).Return(nil, errors.New("relation \"task_stages\" does not exist")).Once()

	// The remaining sections run concurrently and may or may not start before cancellation.
	repo.On("GetHierarchy", mock.Anything, mock.Anything).Return([]empDashboard.HierarchyData(nil), nil).Maybe()
	repo.On("GetAttendances", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]empDashboard.AttendanceData(nil), nil).Maybe()
	repo.On("GetOngoingCheckIn", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	repo.On("SumValidatedLeaveDays", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, nil).Maybe()
	repo.On("CountPendingLeaves", mock.Anything, mock.Anything).Return(int64(0), nil).Maybe()
	repo.On("ListUserTasks", mock.Anything, mock.Anything, mock.Anything).Return([]empDashboard.TaskData(nil), nil).Maybe()
	repo.On("GetUserProjectTaskCounts", mock.Anything, mock.Anything).Return(&empDashboard.ProjectTaskCountData{}, nil).Maybe()

	resp, err := svc.GetTilesData(ctx, empDashboard.TilesFilter{})
	require.NoError(t, err)

	assert.Equal(t, empDashboard.EmptyTiles(), resp)
	assert.InDelta(t, 1, testutil.ToFloat64(m.DashboardFallback), 0)
	repo.AssertExpectations(t)
}

func TestGetTilesData_InvalidFilterFallsBackToEmpty(t *testing.T) {
	repo := new(mockRepository)
	svc, m := newTestService(t, repo)
	ctx := callerContext(t, "user-1", user.RoleEmployee)

	resp, err := svc.GetTilesData(ctx, empDashboard.TilesFilter{StartDate: "garbage", Status: "done"})
	require.NoError(t, err)

	assert.Equal(t, empDashboard.EmptyTiles(), resp)
	assert.InDelta(t, 1, testutil.ToFloat64(m.DashboardFallback), 0)
	repo.AssertNotCalled(t, "GetEmployeeByUserID", mock.Anything, mock.Anything)
}

func TestGetTilesData_EmployeeCheckInsUseUTCDates(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	repo := new(mockRepository)
	// 17:00 on 2025-03-14 in Jakarta, still 2025-03-14 in UTC.
	svc, _ := newTestServiceIn(t, repo, jakarta, fixedNow)
	ctx := callerContext(t, "user-1", user.RoleEmployee)

	repo.On("GetEmployeeByUserID", mock.Anything, "user-1").Return(rinaEmployee(), nil).Once()
	repo.On("GetHierarchy", mock.Anything, "e1").Return([]empDashboard.HierarchyData(nil), nil).Once()
	repo.On("ListStages", mock.Anything).Return([]empDashboard.StageData(nil), nil).Once()
	repo.On("GetAttendances", mock.Anything, "e1", date(2025, 3, 1), date(2025, 4, 1)).Return([]empDashboard.AttendanceData{
		// 03:00 on 2025-03-14 in Jakarta, but the UTC date is 2025-03-13.
		{CheckIn: time.Date(2025, 3, 13, 20, 0, 0, 0, time.UTC), WorkedHours: decimal.NewFromInt(3)},
		{CheckIn: time.Date(2025, 3, 14, 2, 0, 0, 0, time.UTC), WorkedHours: decimal.NewFromInt(2)},
	}, nil).Once()
	repo.On("GetOngoingCheckIn", mock.Anything, "e1").Return(nil, nil).Once()
	repo.On("SumValidatedLeaveDays", mock.Anything, "e1", date(2025, 3, 1), date(2025, 3, 31)).Return(decimal.Zero, nil).Twice()
	repo.On("CountPendingLeaves", mock.Anything, "e1").Return(int64(0), nil).Once()
	repo.On("ListUserTasks", mock.Anything, "user-1", empDashboard.TaskFilter{}).Return([]empDashboard.TaskData(nil), nil).Once()
	repo.On("GetUserProjectTaskCounts", mock.Anything, "user-1").Return(&empDashboard.ProjectTaskCountData{}, nil).Once()

	resp, err := svc.GetTilesData(ctx, empDashboard.TilesFilter{})
	require.NoError(t, err)

	require.NotNil(t, resp.EmployeeTiles)
	assert.InDelta(t, 5, resp.MyAttendance, 1e-9)
	assert.InDelta(t, 2, resp.HoursToday, 1e-9)
	assert.Equal(t, 2, resp.TotalDaysPresent)
	repo.AssertExpectations(t)
}

func TestGetTilesData_ManagerDayFollowsConfiguredToday(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	repo := new(mockRepository)
	// Already 2025-03-14 in Jakarta while UTC is still on 2025-03-13.
	svc, _ := newTestServiceIn(t, repo, jakarta, time.Date(2025, 3, 13, 20, 0, 0, 0, time.UTC))
	ctx := callerContext(t, "user-9", user.RoleManager)

	repo.On("GetEmployeeByUserID", mock.Anything, "user-9").Return(&empDashboard.EmployeeData{ID: "e9", UserID: strPtr("user-9"), Name: "Dewi"}, nil).Once()
	repo.On("GetHierarchy", mock.Anything, "e9").Return([]empDashboard.HierarchyData(nil), nil).Once()
	repo.On("ListStages", mock.Anything).Return([]empDashboard.StageData(nil), nil).Once()
	repo.On("ListAssignees", mock.Anything).Return([]empDashboard.AssigneeData(nil), nil).Once()
	repo.On("CountAttendanceByGender", mock.Anything, date(2025, 3, 14), date(2025, 3, 15)).Return(map[string]int64{"male": 1}, nil).Once()
	repo.On("SumLeaveDaysByGender", mock.Anything, date(2025, 3, 14)).Return(map[string]decimal.Decimal{}, nil).Once()
	repo.On("GetCompanyProjectTaskCounts", mock.Anything).Return(&empDashboard.ProjectTaskCountData{}, nil).Once()
	repo.On("ListTasks", mock.Anything, empDashboard.TaskFilter{}).Return([]empDashboard.TaskData(nil), nil).Once()

	resp, err := svc.GetTilesData(ctx, empDashboard.TilesFilter{})
	require.NoError(t, err)

	require.NotNil(t, resp.ManagerTiles)
	assert.Equal(t, "2025-03-01 to 2025-03-31", resp.FilterPeriod)
	assert.Equal(t, date(2025, 3, 14), resp.FilterStartDate)
	assert.Equal(t, date(2025, 3, 15).Add(-time.Microsecond), resp.FilterEndDate)
	assert.Equal(t, int64(1), resp.ManagerAttendance.Total)
	repo.AssertExpectations(t)
}

func TestGetTilesData_Unauthenticated(t *testing.T) {
	repo := new(mockRepository)
	svc, _ := newTestService(t, repo)

	_, err := svc.GetTilesData(context.Background(), empDashboard.TilesFilter{})

	require.ErrorIs(t, err, auth.ErrInvalidToken)
	repo.AssertNotCalled(t, "GetEmployeeByUserID", mock.Anything, mock.Anything)
}
