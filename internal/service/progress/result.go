package progress

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

// RecordActivityResult is the outcome of RecordActivity.
type RecordActivityResult struct {
	Activity             *domain.Activity
	XPEarned             int
	TotalXP              int
	Streak               int
	NewBadges            []string
	SimulationsCompleted int
}

// AddXPResult is the outcome of AddXP. When Duplicate is true nothing was
// written and Activity is the previously recorded delivery.
type AddXPResult struct {
	User      *domain.User
	Activity  *domain.Activity
	NewBadges []string
	Duplicate bool
}

// Progress is the read model of a user's progression.
type Progress struct {
	UserID               uuid.UUID
	XP                   int
	Level                domain.LevelInfo
	Streak               int
	LastActivityAt       *time.Time
	CompletedSimulations int
	Badges               []domain.OwnedBadge
}
