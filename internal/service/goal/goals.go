package goal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/learnquest-backend/internal/calendar"
	"github.com/heartmarshall/learnquest-backend/internal/domain"
	"github.com/heartmarshall/learnquest-backend/pkg/ctxutil"
)

// GetWeeklyXP returns the xp earned per day of the selected week.
func (s *Service) GetWeeklyXP(ctx context.Context, input WeeklyXPInput) (*WeeklyXP, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ref := s.now()
	if input.WeekStart != nil {
		ref = *input.WeekStart
	}
	start, end := calendar.WeekBounds(ref)

	daily, err := s.activities.DailyXP(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("goal.GetWeeklyXP: %w", err)
	}

	return weekly(start, end, daily), nil
}

func weekly(start, end time.Time, daily []domain.DayXP) *WeeklyXP {
	out := &WeeklyXP{WeekStart: start, WeekEnd: end, Days: make(map[string]int, 7)}
	for _, d := range calendar.Days(start, end) {
		out.Days[calendar.DayKey(d)] = 0
	}
	for _, d := range daily {
		key := calendar.DayKey(d.Day)
		if _, ok := out.Days[key]; !ok {
			continue
		}
		out.Days[key] += d.XP
		out.Total += d.XP
	}
	return out
}

// GetStreakCalendar returns every UTC day, as YYYY-MM-DD, on which the
// authenticated user recorded at least one activity, ascending.
func (s *Service) GetStreakCalendar(ctx context.Context) ([]string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	days, err := s.activities.ActiveDays(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("goal.GetStreakCalendar: %w", err)
	}

	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, calendar.DayKey(d))
	}
	return out, nil
}

// GetGoalStatus aggregates today's and this week's activity into goal flags.
// It only reads.
func (s *Service) GetGoalStatus(ctx context.Context) (*GoalStatus, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now().UTC()
	dayStart, dayEnd := calendar.DayStart(now), calendar.NextDayStart(now)
	weekStart, weekEnd := calendar.WeekBounds(now)

	var (
		user  *domain.User
		today map[domain.ActivityType]int
		daily []domain.DayXP
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.GetByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		today, err = s.activities.CountByType(gctx, userID, dayStart, dayEnd)
		return err
	})
	g.Go(func() error {
		var err error
		daily, err = s.activities.DailyXP(gctx, userID, weekStart, weekEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("goal.GetGoalStatus: %w", err)
	}

	week := weekly(weekStart, weekEnd, daily)
	todayKey := calendar.DayKey(now)

	return &GoalStatus{
		Day:                todayKey,
		WeekStart:          weekStart,
		WeekEnd:            weekEnd,
		CheckedInToday:     today[domain.ActivityTypeCheckIn] > 0,
		QuizToday:          today[domain.ActivityTypeQuiz] > 0,
		SimulationToday:    today[domain.ActivityTypeAudit]+today[domain.ActivityTypeTax] > 0,
		CaseLawToday:       today[domain.ActivityTypeCaseLaw] > 0,
		XPToday:            week.Days[todayKey],
		WeeklyXP:           week.Total,
		WeeklyXPTarget:     s.cfg.WeeklyXPTarget,
		WeeklyTargetHit:    s.cfg.WeeklyXPTarget > 0 && week.Total >= s.cfg.WeeklyXPTarget,
		ActiveDaysThisWeek: len(daily),
		CurrentStreak:      user.Streak,
	}, nil
}
