package goal

import "time"

// CheckInResult is the outcome of CheckIn.
type CheckInResult struct {
	StreakUpdated bool
	CurrentStreak int
	XPEarned      int
	NewBadges     []string
}

// WeeklyXPInput selects the week to report. A nil WeekStart means the
// current week; any day inside a week selects that week.
type WeeklyXPInput struct {
	WeekStart *time.Time
}

// WeeklyXP is the per-day xp of one week. Days holds every day of the week,
// keyed YYYY-MM-DD, zero-filled.
type WeeklyXP struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Days      map[string]int
	Total     int
}

// GoalStatus summarises today's and this week's goals.
type GoalStatus struct {
	Day                string
	WeekStart          time.Time
	WeekEnd            time.Time
	CheckedInToday     bool
	QuizToday          bool
	SimulationToday    bool
	CaseLawToday       bool
	XPToday            int
	WeeklyXP           int
	WeeklyXPTarget     int
	WeeklyTargetHit    bool
	ActiveDaysThisWeek int
	CurrentStreak      int
}
