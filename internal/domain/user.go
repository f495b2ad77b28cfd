package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the progression view of an application user. Identity and
// profile fields are owned by the signup flow; the ledger only mutates the
// counters below.
type User struct {
	ID                   uuid.UUID
	Email                string
	DisplayName          string
	XP                   int
	Streak               int
	LastActivityAt       *time.Time
	CompletedSimulations int
	Answers              AnswerCounter
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ProgressUpdate is the set of changes applied to a user after one XP grant.
type ProgressUpdate struct {
	XPDelta             int
	Streak              int
	LastActivityAt      time.Time
	SimulationCompleted bool
}

// CheckInParams drives the conditional check-in update.
type CheckInParams struct {
	Now            time.Time
	DayStart       time.Time
	YesterdayStart time.Time
	RewardXP       int
}

// XPDrift is a user whose stored XP disagrees with the activity log.
type XPDrift struct {
	UserID     uuid.UUID
	StoredXP   int
	LedgerXP   int
	Activities int
}

// Difference returns stored minus ledger XP.
func (d XPDrift) Difference() int {
	return d.StoredXP - d.LedgerXP
}
