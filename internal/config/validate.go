package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Progression.validate(); err != nil {
		return fmt.Errorf("progression: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be > 0 (got %d)", c.RateLimit.RequestsPerMin)
	}

	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}
	return nil
}

func (p *ProgressionConfig) validate() error {
	if p.QuizXP < 0 {
		return fmt.Errorf("quiz_xp must be >= 0 (got %d)", p.QuizXP)
	}
	if p.CheckInXP < 0 {
		return fmt.Errorf("checkin_xp must be >= 0 (got %d)", p.CheckInXP)
	}
	if p.DedupWindow < 0 {
		return fmt.Errorf("dedup_window must be >= 0 (got %v)", p.DedupWindow)
	}
	if p.WeeklyXPTarget < 0 {
		return fmt.Errorf("weekly_xp_target must be >= 0 (got %d)", p.WeeklyXPTarget)
	}

	thresholds, err := domain.ParseBadgeThresholds(p.BadgeThresholdsRaw)
	if err != nil {
		return fmt.Errorf("badge_thresholds: %w", err)
	}
	if len(thresholds) == 0 {
		thresholds = domain.DefaultBadgeThresholds
	}
	p.BadgeThresholds = thresholds

	return nil
}
