package employee_dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	empDashboard "github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee_dashboard"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/lib/logger/sl"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/i18n"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/storage"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

const (
	noProjectName = "No Project"
	noStageName   = "No Stage"

	genderMale   = "male"
	genderFemale = "female"
)

// Settings holds the zone that decides which calendar day is "today" and the
// fallback language for translated names. Check-ins are bucketed by UTC date.
type Settings struct {
	Location        *time.Location
	DefaultLanguage language.Tag
}

type EmployeeDashboardServiceImpl struct {
	repo     empDashboard.EmployeeDashboardRepository
	avatars  storage.AvatarStorage
	metrics  *metrics.Metrics
	logger   *slog.Logger
	settings Settings
	tracer   trace.Tracer
	now      func() time.Time
}

func NewEmployeeDashboardService(
	repo empDashboard.EmployeeDashboardRepository,
	avatars storage.AvatarStorage,
	m *metrics.Metrics,
	logger *slog.Logger,
	settings Settings,
) *EmployeeDashboardServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.DefaultLanguage == language.Und {
		settings.DefaultLanguage = language.AmericanEnglish
	}
	return &EmployeeDashboardServiceImpl{
		repo:     repo,
		avatars:  avatars,
		metrics:  m,
		logger:   logger,
		settings: settings,
		tracer:   otel.Tracer("github.com/cmlabs-hris/employee-dashboard-go/internal/service/employee_dashboard"),
		now:      time.Now,
	}
}

// GetTilesData returns the dashboard payload for the caller in ctx. Only a
// missing or unusable identity is an error; anything else, malformed filters
// included, degrades to the empty payload.
func (s *EmployeeDashboardServiceImpl) GetTilesData(ctx context.Context, filter empDashboard.TilesFilter) (*empDashboard.TilesResponse, error) {
	ctx, span := s.tracer.Start(ctx, "EmployeeDashboard.GetTilesData")
	defer span.End()

	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("user.id", caller.UserID),
		attribute.Bool("dashboard.is_manager", caller.IsManager()),
	)

	if err := filter.Validate(); err != nil {
		return s.fallback(ctx, span, caller, fmt.Errorf("invalid filter: %w", err)), nil
	}

	resp, err := s.buildTiles(ctx, caller, filter)
	if err != nil {
		if errors.Is(err, empDashboard.ErrEmployeeNotFound) {
			s.metrics.Build("empty")
			return empDashboard.EmptyTiles(), nil
		}

		return s.fallback(ctx, span, caller, err), nil
	}

	if resp.IsManager {
		s.metrics.Build("manager")
	} else {
		s.metrics.Build("employee")
	}
	return resp, nil
}

// fallback records err and hands back the zeroed payload.
func (s *EmployeeDashboardServiceImpl) fallback(ctx context.Context, span trace.Span, caller user.Caller, err error) *empDashboard.TilesResponse {
	s.logger.ErrorContext(ctx, "failed to assemble dashboard tiles",
		slog.String("user_id", caller.UserID),
		sl.Err(err),
	)
	span.RecordError(err)
	span.SetStatus(codes.Error, "dashboard tiles fallback")
	s.metrics.Fallback()
	return empDashboard.EmptyTiles()
}

func (s *EmployeeDashboardServiceImpl) buildTiles(ctx context.Context, caller user.Caller, filter empDashboard.TilesFilter) (*empDashboard.TilesResponse, error) {
	employee, err := s.repo.GetEmployeeByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.settings.Location)
	dates, err := ResolveDateRange(filter, now)
	if err != nil {
		return nil, err
	}

	lang := i18n.FromContext(ctx, s.settings.DefaultLanguage)
	isManager := caller.IsManager()

	resp := &empDashboard.TilesResponse{
		IsManager:    isManager,
		FilterPeriod: dates.Period(),
		Assignees:    []empDashboard.FilterOption{},
		Statuses:     []empDashboard.FilterOption{},
	}

	taskFilter := empDashboard.TaskFilter{
		Deadline: parseOptionalDate(filter.Deadline),
	}
	if filter.Status != "" {
		status := filter.Status
		taskFilter.StageID = &status
	}

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Employee Hierarchy
	g.Go(func() error {
		rows, err := s.repo.GetHierarchy(gCtx, employee.ID)
		if err != nil {
			return err
		}
		resp.EmployeeHierarchy = s.flattenHierarchy(lang, employee, rows)
		return nil
	})

	// 2. Statuses
	g.Go(func() error {
		stages, err := s.repo.ListStages(gCtx)
		if err != nil {
			return err
		}
		resp.Statuses = s.statusOptions(lang, stages)
		return nil
	})

	if isManager {
		if filter.Assignee != "" {
			assignee := filter.Assignee
			taskFilter.AssigneeID = &assignee
		}

		// 3. Assignees
		g.Go(func() error {
			assignees, err := s.repo.ListAssignees(gCtx)
			if err != nil {
				return err
			}
			options := make([]empDashboard.FilterOption, 0, len(assignees))
			for _, a := range assignees {
				options = append(options, empDashboard.FilterOption{ID: a.ID, Name: a.Name})
			}
			resp.Assignees = options
			return nil
		})

		resp.ManagerTiles = &empDashboard.ManagerTiles{}
		s.collectManagerTiles(gCtx, g, lang, dates.FilterDate, taskFilter, resp.ManagerTiles)
	} else {
		resp.EmployeeTiles = &empDashboard.EmployeeTiles{}
		s.collectEmployeeTiles(gCtx, g, lang, now, employee, dates, taskFilter, resp.EmployeeTiles)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return resp, nil
}

// collectEmployeeTiles schedules the individual contributor's sections on g.
// Each goroutine writes disjoint fields of tiles.
func (s *EmployeeDashboardServiceImpl) collectEmployeeTiles(
	ctx context.Context,
	g *errgroup.Group,
	lang language.Tag,
	now time.Time,
	employee *empDashboard.EmployeeData,
	dates DateRange,
	taskFilter empDashboard.TaskFilter,
	tiles *empDashboard.EmployeeTiles,
) {
	today := civilDate(now)

	tiles.TotalOvertime = employee.TotalOvertime.InexactFloat64()
	tiles.PersonalDetails = s.personalDetails(lang, employee)
	tiles.ProjectTasks = []empDashboard.ProjectTask{}
	tiles.ProjectTaskCount = &empDashboard.ProjectTaskCount{}

	// Attendance in range
	g.Go(func() error {
		from := dates.Start
		to := dates.End.AddDate(0, 0, 1)
		records, err := s.repo.GetAttendances(ctx, employee.ID, from, to)
		if err != nil {
			return err
		}

		total := decimal.Zero
		todayTotal := decimal.Zero
		days := make(map[time.Time]struct{})
		for _, rec := range records {
			checkInDate := civilDate(rec.CheckIn.UTC())
			total = total.Add(rec.WorkedHours)
			if checkInDate.Equal(today) {
				todayTotal = todayTotal.Add(rec.WorkedHours)
			}
			days[checkInDate] = struct{}{}
		}

		tiles.MyAttendance = total.InexactFloat64()
		tiles.HoursToday = todayTotal.InexactFloat64()
		tiles.HoursPreviouslyToday = 0
		tiles.TotalDaysPresent = len(days)
		return nil
	})

	// Ongoing session
	g.Go(func() error {
		checkIn, err := s.repo.GetOngoingCheckIn(ctx, employee.ID)
		if err != nil {
			return err
		}
		if checkIn != nil {
			if elapsed := now.Sub(*checkIn); elapsed > 0 {
				tiles.LastAttendanceWorkedHours = elapsed.Hours()
			}
		}
		return nil
	})

	// Leaves: current calendar month, selected range, pending
	g.Go(func() error {
		monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, -1)
		taken, err := s.repo.SumValidatedLeaveDays(ctx, employee.ID, monthStart, monthEnd)
		if err != nil {
			return err
		}
		tiles.TotalLeavesTaken = taken.InexactFloat64()
		return nil
	})
	g.Go(func() error {
		inRange, err := s.repo.SumValidatedLeaveDays(ctx, employee.ID, dates.Start, dates.End)
		if err != nil {
			return err
		}
		tiles.LeavesThisMonth = inRange.InexactFloat64()
		return nil
	})
	g.Go(func() error {
		pending, err := s.repo.CountPendingLeaves(ctx, employee.ID)
		if err != nil {
			return err
		}
		tiles.PendingLeavesCount = pending
		return nil
	})

	if employee.UserID == nil {
		return
	}
	userID := *employee.UserID

	// Tasks
	g.Go(func() error {
		tasks, err := s.repo.ListUserTasks(ctx, userID, taskFilter)
		if err != nil {
			return err
		}
		for _, t := range tasks {
			tiles.ProjectTasks = append(tiles.ProjectTasks, s.projectTask(lang, t))
		}
		return nil
	})

	// Task counts
	g.Go(func() error {
		counts, err := s.repo.GetUserProjectTaskCounts(ctx, userID)
		if err != nil {
			return err
		}
		tiles.ProjectTaskCount = &empDashboard.ProjectTaskCount{
			ProjectCount:          counts.Projects,
			TaskCount:             counts.Tasks,
			RemainingProjectCount: counts.RemainingProjects,
			RemainingTaskCount:    counts.RemainingTasks,
		}
		return nil
	})
}

// collectManagerTiles schedules the company-wide sections for a single day on g.
func (s *EmployeeDashboardServiceImpl) collectManagerTiles(
	ctx context.Context,
	g *errgroup.Group,
	lang language.Tag,
	day time.Time,
	taskFilter empDashboard.TaskFilter,
	tiles *empDashboard.ManagerTiles,
) {
	dayStart := day
	dayEnd := dayStart.AddDate(0, 0, 1)

	tiles.FilterStartDate = dayStart
	tiles.FilterEndDate = dayEnd.Add(-time.Microsecond)
	tiles.ManagerProjects = []empDashboard.ManagerTask{}

	// Attendance by gender
	g.Go(func() error {
		counts, err := s.repo.CountAttendanceByGender(ctx, dayStart, dayEnd)
		if err != nil {
			return err
		}
		var total int64
		for _, c := range counts {
			total += c
		}
		tiles.ManagerAttendance = empDashboard.AttendanceByGender{
			Total: total,
			Men:   counts[genderMale],
			Women: counts[genderFemale],
		}
		return nil
	})

	// Leaves by gender
	g.Go(func() error {
		days, err := s.repo.SumLeaveDaysByGender(ctx, day)
		if err != nil {
			return err
		}
		total := decimal.Zero
		for _, d := range days {
			total = total.Add(d)
		}
		tiles.ManagerLeaves = empDashboard.LeaveByGender{
			Total: total.InexactFloat64(),
			Men:   days[genderMale].InexactFloat64(),
			Women: days[genderFemale].InexactFloat64(),
		}
		return nil
	})

	// Project & task counts
	g.Go(func() error {
		counts, err := s.repo.GetCompanyProjectTaskCounts(ctx)
		if err != nil {
			return err
		}
		tiles.ManagerProjectCount = empDashboard.ManagerProjectCount{
			TotalProjects:     counts.Projects,
			TotalTasks:        counts.Tasks,
			RemainingProjects: counts.RemainingProjects,
			RemainingTasks:    counts.RemainingTasks,
		}
		return nil
	})

	// Task list
	g.Go(func() error {
		tasks, err := s.repo.ListTasks(ctx, taskFilter)
		if err != nil {
			return err
		}
		for _, t := range tasks {
			assignees := t.Assignees
			if assignees == nil {
				assignees = []string{}
			}
			tiles.ManagerProjects = append(tiles.ManagerProjects, empDashboard.ManagerTask{
				ProjectTask: s.projectTask(lang, t),
				Assignees:   assignees,
			})
		}
		return nil
	})
}

func (s *EmployeeDashboardServiceImpl) projectTask(lang language.Tag, t empDashboard.TaskData) empDashboard.ProjectTask {
	project := t.ProjectName.Resolve(lang, s.settings.DefaultLanguage)
	if project == "" {
		project = noProjectName
	}
	stage := t.StageName.Resolve(lang, s.settings.DefaultLanguage)
	if stage == "" {
		stage = noStageName
	}

	var deadline string
	if t.Deadline != nil {
		deadline = t.Deadline.Format(dateLayout)
	}

	return empDashboard.ProjectTask{
		ID:       t.ID,
		Name:     project,
		TaskName: t.Name,
		Deadline: deadline,
		Stage:    stage,
	}
}

func (s *EmployeeDashboardServiceImpl) personalDetails(lang language.Tag, e *empDashboard.EmployeeData) *empDashboard.PersonalDetails {
	return &empDashboard.PersonalDetails{
		EmployeeName:       e.Name,
		EmployeeEmail:      derefString(e.WorkEmail),
		EmployeePhone:      derefString(e.WorkPhone),
		EmployeeJob:        e.JobName.Resolve(lang, s.settings.DefaultLanguage),
		EmployeeDepartment: e.DepartmentName.Resolve(lang, s.settings.DefaultLanguage),
		EmployeeImage:      s.avatars.URL(derefString(e.AvatarPath)),
	}
}

// statusOptions keeps one stage per translated name (lowest id first in
// stages wins) and sorts the result by name.
func (s *EmployeeDashboardServiceImpl) statusOptions(lang language.Tag, stages []empDashboard.StageData) []empDashboard.FilterOption {
	seen := make(map[string]bool, len(stages))
	options := make([]empDashboard.FilterOption, 0, len(stages))
	for _, stage := range stages {
		name := stage.Name.Resolve(lang, s.settings.DefaultLanguage)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		options = append(options, empDashboard.FilterOption{ID: stage.ID, Name: name})
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Name < options[j].Name
	})
	return options
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
