package rest

import "net/http"

// Register mounts the progression endpoints on mux.
func (h *ProgressHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/activities", h.RecordActivity)
	mux.HandleFunc("POST /api/xp", h.AddXP)
	mux.HandleFunc("POST /api/checkin", h.CheckIn)
	mux.HandleFunc("GET /api/goals/weekly-xp", h.WeeklyXP)
	mux.HandleFunc("GET /api/goals/streak-calendar", h.StreakCalendar)
	mux.HandleFunc("GET /api/goals/status", h.GoalStatus)
	mux.HandleFunc("POST /api/accuracy", h.UpdateAccuracy)
	mux.HandleFunc("GET /api/accuracy", h.GetAccuracy)
	mux.HandleFunc("GET /api/progress", h.GetProgress)
}

// Register mounts the probes on mux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Live)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("GET /health", h.Health)
}
