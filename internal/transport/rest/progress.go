package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/learnquest-backend/internal/calendar"
	"github.com/heartmarshall/learnquest-backend/internal/domain"
	"github.com/heartmarshall/learnquest-backend/internal/service/accuracy"
	"github.com/heartmarshall/learnquest-backend/internal/service/goal"
	"github.com/heartmarshall/learnquest-backend/internal/service/progress"
)

//go:generate moq -out progress_service_mock_test.go -pkg rest . progressService
//go:generate moq -out goal_service_mock_test.go -pkg rest . goalService
//go:generate moq -out accuracy_service_mock_test.go -pkg rest . accuracyService

type progressService interface {
	RecordActivity(ctx context.Context, input progress.RecordActivityInput) (*progress.RecordActivityResult, error)
	AddXP(ctx context.Context, input progress.AddXPInput) (*progress.AddXPResult, error)
	GetProgress(ctx context.Context) (*progress.Progress, error)
}

type goalService interface {
	CheckIn(ctx context.Context) (*goal.CheckInResult, error)
	GetWeeklyXP(ctx context.Context, input goal.WeeklyXPInput) (*goal.WeeklyXP, error)
	GetStreakCalendar(ctx context.Context) ([]string, error)
	GetGoalStatus(ctx context.Context) (*goal.GoalStatus, error)
}

type accuracyService interface {
	UpdateAccuracy(ctx context.Context, input accuracy.UpdateAccuracyInput) (*accuracy.AccuracyResult, error)
	GetAccuracy(ctx context.Context) (*accuracy.Overview, error)
}

// ProgressHandler serves the progression REST endpoints.
type ProgressHandler struct {
	progress progressService
	goals    goalService
	accuracy accuracyService
	log      *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(p progressService, g goalService, a accuracyService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{
		progress: p,
		goals:    g,
		accuracy: a,
		log:      logger.With("handler", "progress"),
	}
}

// ---------------------------------------------------------------------------
// Requests / responses
// ---------------------------------------------------------------------------

type recordActivityRequest struct {
	ActivityType string `json:"activityType"`
	ReferenceID  string `json:"referenceId"`
	Score        *int   `json:"score"`
}

type recordActivityResponse struct {
	ActivityID           string   `json:"activityId"`
	XPEarned             int      `json:"xpEarned"`
	TotalXP              int      `json:"totalXp"`
	Streak               int      `json:"streak"`
	NewBadges            []string `json:"newBadges"`
	SimulationsCompleted int      `json:"simulationsCompleted"`
}

type addXPRequest struct {
	Amount int    `json:"amount"`
	Source string `json:"source"`
}

type addXPResponse struct {
	ActivityID   string   `json:"activityId"`
	ActivityType string   `json:"activityType"`
	XPEarned     int      `json:"xpEarned"`
	TotalXP      int      `json:"totalXp"`
	Streak       int      `json:"streak"`
	NewBadges    []string `json:"newBadges"`
	Duplicate    bool     `json:"duplicate"`
}

type checkInResponse struct {
	StreakUpdated bool     `json:"streakUpdated"`
	CurrentStreak int      `json:"currentStreak"`
	XPEarned      int      `json:"xpEarned"`
	NewBadges     []string `json:"newBadges"`
}

type weeklyXPResponse struct {
	WeekStart string         `json:"weekStart"`
	WeekEnd   string         `json:"weekEnd"`
	Days      map[string]int `json:"days"`
	Total     int            `json:"total"`
}

type streakCalendarResponse struct {
	Days []string `json:"days"`
}

type goalStatusResponse struct {
	Day                string `json:"day"`
	WeekStart          string `json:"weekStart"`
	WeekEnd            string `json:"weekEnd"`
	CheckedInToday     bool   `json:"checkedInToday"`
	QuizToday          bool   `json:"quizToday"`
	SimulationToday    bool   `json:"simulationToday"`
	CaseLawToday       bool   `json:"caseLawToday"`
	XPToday            int    `json:"xpToday"`
	WeeklyXP           int    `json:"weeklyXp"`
	WeeklyXPTarget     int    `json:"weeklyXpTarget"`
	WeeklyTargetHit    bool   `json:"weeklyTargetHit"`
	ActiveDaysThisWeek int    `json:"activeDaysThisWeek"`
	CurrentStreak      int    `json:"currentStreak"`
}

type updateAccuracyRequest struct {
	IsCorrect *bool  `json:"isCorrect"`
	Subject   string `json:"subject"`
}

type counterResponse struct {
	CorrectAnswers int `json:"correctAnswers"`
	TotalQuestions int `json:"totalQuestions"`
	Percent        int `json:"percent"`
}

type subjectCounterResponse struct {
	Subject string `json:"subject"`
	counterResponse
}

type updateAccuracyResponse struct {
	counterResponse
	Subject *subjectCounterResponse `json:"subjectAccuracy,omitempty"`
}

type accuracyOverviewResponse struct {
	Global   counterResponse          `json:"global"`
	Subjects []subjectCounterResponse `json:"subjects"`
}

type levelResponse struct {
	Level         int `json:"level"`
	XPToNextLevel int `json:"xpToNextLevel"`
	LevelStartXP  int `json:"levelStartXp"`
	NextLevelXP   int `json:"nextLevelXp"`
}

type badgeResponse struct {
	Name     string    `json:"name"`
	EarnedAt time.Time `json:"earnedAt"`
}

type progressResponse struct {
	UserID               string          `json:"userId"`
	XP                   int             `json:"xp"`
	Level                levelResponse   `json:"level"`
	Streak               int             `json:"streak"`
	LastActivityAt       *time.Time      `json:"lastActivityAt"`
	CompletedSimulations int             `json:"completedSimulations"`
	Badges               []badgeResponse `json:"badges"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// RecordActivity handles POST /api/activities.
func (h *ProgressHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	var req recordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.progress.RecordActivity(r.Context(), progress.RecordActivityInput{
		ActivityType: domain.ActivityType(req.ActivityType),
		ReferenceID:  req.ReferenceID,
		Score:        req.Score,
	})
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	resp := recordActivityResponse{
		XPEarned:             result.XPEarned,
		TotalXP:              result.TotalXP,
		Streak:               result.Streak,
		NewBadges:            nonNil(result.NewBadges),
		SimulationsCompleted: result.SimulationsCompleted,
	}
	if result.Activity != nil {
		resp.ActivityID = result.Activity.ID.String()
	}
	writeJSON(w, http.StatusCreated, resp)
}

// AddXP handles POST /api/xp. The Idempotency-Key header reaches the
// service through the request context.
func (h *ProgressHandler) AddXP(w http.ResponseWriter, r *http.Request) {
	var req addXPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.progress.AddXP(r.Context(), progress.AddXPInput{
		Amount: req.Amount,
		Source: req.Source,
	})
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	resp := addXPResponse{
		NewBadges: nonNil(result.NewBadges),
		Duplicate: result.Duplicate,
	}
	if result.Activity != nil {
		resp.ActivityID = result.Activity.ID.String()
		resp.ActivityType = result.Activity.Type.String()
		resp.XPEarned = result.Activity.XPEarned
	}
	if result.User != nil {
		resp.TotalXP = result.User.XP
		resp.Streak = result.User.Streak
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

// CheckIn handles POST /api/checkin.
func (h *ProgressHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.goals.CheckIn(r.Context())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, checkInResponse{
		StreakUpdated: result.StreakUpdated,
		CurrentStreak: result.CurrentStreak,
		XPEarned:      result.XPEarned,
		NewBadges:     nonNil(result.NewBadges),
	})
}

// WeeklyXP handles GET /api/goals/weekly-xp?weekStart=YYYY-MM-DD.
func (h *ProgressHandler) WeeklyXP(w http.ResponseWriter, r *http.Request) {
	var input goal.WeeklyXPInput
	if raw := r.URL.Query().Get("weekStart"); raw != "" {
		day, err := calendar.ParseDay(raw)
		if err != nil {
			writeDomainError(h.log, w, r, domain.NewValidationError("weekStart", "must be YYYY-MM-DD"))
			return
		}
		input.WeekStart = &day
	}

	result, err := h.goals.GetWeeklyXP(r.Context(), input)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, weeklyXPResponse{
		WeekStart: calendar.DayKey(result.WeekStart),
		WeekEnd:   calendar.DayKey(result.WeekEnd),
		Days:      result.Days,
		Total:     result.Total,
	})
}

// StreakCalendar handles GET /api/goals/streak-calendar.
func (h *ProgressHandler) StreakCalendar(w http.ResponseWriter, r *http.Request) {
	days, err := h.goals.GetStreakCalendar(r.Context())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, streakCalendarResponse{Days: nonNil(days)})
}

// GoalStatus handles GET /api/goals/status.
func (h *ProgressHandler) GoalStatus(w http.ResponseWriter, r *http.Request) {
	s, err := h.goals.GetGoalStatus(r.Context())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goalStatusResponse{
		Day:                s.Day,
		WeekStart:          calendar.DayKey(s.WeekStart),
		WeekEnd:            calendar.DayKey(s.WeekEnd),
		CheckedInToday:     s.CheckedInToday,
		QuizToday:          s.QuizToday,
		SimulationToday:    s.SimulationToday,
		CaseLawToday:       s.CaseLawToday,
		XPToday:            s.XPToday,
		WeeklyXP:           s.WeeklyXP,
		WeeklyXPTarget:     s.WeeklyXPTarget,
		WeeklyTargetHit:    s.WeeklyTargetHit,
		ActiveDaysThisWeek: s.ActiveDaysThisWeek,
		CurrentStreak:      s.CurrentStreak,
	})
}

// UpdateAccuracy handles POST /api/accuracy.
func (h *ProgressHandler) UpdateAccuracy(w http.ResponseWriter, r *http.Request) {
	var req updateAccuracyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.IsCorrect == nil {
		writeDomainError(h.log, w, r, domain.NewValidationError("isCorrect", "required"))
		return
	}

	result, err := h.accuracy.UpdateAccuracy(r.Context(), accuracy.UpdateAccuracyInput{
		IsCorrect: *req.IsCorrect,
		Subject:   domain.Subject(req.Subject),
	})
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	resp := updateAccuracyResponse{counterResponse: toCounterResponse(result.Counter)}
	if result.Subject != nil {
		sub := toSubjectCounterResponse(*result.Subject)
		resp.Subject = &sub
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetAccuracy handles GET /api/accuracy.
func (h *ProgressHandler) GetAccuracy(w http.ResponseWriter, r *http.Request) {
	result, err := h.accuracy.GetAccuracy(r.Context())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	resp := accuracyOverviewResponse{
		Global:   toCounterResponse(result.Global),
		Subjects: make([]subjectCounterResponse, 0, len(result.Subjects)),
	}
	for _, s := range result.Subjects {
		resp.Subjects = append(resp.Subjects, toSubjectCounterResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetProgress handles GET /api/progress.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	p, err := h.progress.GetProgress(r.Context())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	resp := progressResponse{
		UserID: p.UserID.String(),
		XP:     p.XP,
		Level: levelResponse{
			Level:         p.Level.Level,
			XPToNextLevel: p.Level.XPToNextLevel,
			LevelStartXP:  p.Level.LevelStartXP,
			NextLevelXP:   p.Level.NextLevelXP,
		},
		Streak:               p.Streak,
		LastActivityAt:       p.LastActivityAt,
		CompletedSimulations: p.CompletedSimulations,
		Badges:               make([]badgeResponse, 0, len(p.Badges)),
	}
	for _, b := range p.Badges {
		resp.Badges = append(resp.Badges, badgeResponse{Name: b.Name, EarnedAt: b.EarnedAt})
	}
	writeJSON(w, http.StatusOK, resp)
}

func toCounterResponse(c accuracy.Counter) counterResponse {
	return counterResponse{CorrectAnswers: c.CorrectAnswers, TotalQuestions: c.TotalQuestions, Percent: c.Percent}
}

func toSubjectCounterResponse(s accuracy.SubjectCounter) subjectCounterResponse {
	return subjectCounterResponse{Subject: s.Subject.String(), counterResponse: toCounterResponse(s.Counter)}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
