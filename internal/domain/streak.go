package domain

import (
	"time"

	"github.com/heartmarshall/learnquest-backend/internal/calendar"
)

// NextStreak computes the streak after an activity at now, comparing UTC
// calendar days with the previous activity.
func NextStreak(current int, lastActivity *time.Time, now time.Time) int {
	if lastActivity == nil {
		return 1
	}

	switch gap := calendar.DaysBetween(*lastActivity, now); {
	case gap <= 0:
		// Same day, or a last activity ahead of now from clock skew; neither
		// starts a new day, so the streak holds.
		if current < 1 {
			return 1
		}
		return current
	case gap == 1:
		return current + 1
	default:
		return 1
	}
}
