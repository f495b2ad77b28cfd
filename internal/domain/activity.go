package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is an immutable entry of the XP ledger.
type Activity struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Type           ActivityType
	ReferenceID    string
	XPEarned       int
	Score          *int
	IdempotencyKey *string
	CreatedAt      time.Time
}

// ContentRef is what the content catalog knows about a referenced item.
type ContentRef struct {
	Kind        ActivityType
	ReferenceID string
	Title       string
	IsActive    bool
	XPReward    int
}

// DayXP is the XP earned on one UTC calendar day.
type DayXP struct {
	Day time.Time
	XP  int
}
