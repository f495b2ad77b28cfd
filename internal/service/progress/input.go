package progress

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
	"github.com/heartmarshall/learnquest-backend/internal/validate"
)

// RecordActivityInput holds parameters for recording a catalog or quiz activity.
type RecordActivityInput struct {
	ActivityType domain.ActivityType `field:"activity_type" validate:"required"`
	ReferenceID  string              `field:"reference_id" validate:"required"`
	Score        *int                `field:"score" validate:"omitempty,gte=0,lte=100"`
}

// Validate validates the record activity input.
func (i RecordActivityInput) Validate() error {
	i.ReferenceID = strings.TrimSpace(i.ReferenceID)
	if err := validate.Struct(i); err != nil {
		return err
	}
	if !i.ActivityType.IsValid() {
		return fmt.Errorf("%s: %w", i.ActivityType, domain.ErrUnsupportedActivityType)
	}
	return nil
}

// AddXPInput holds parameters for crediting a free-form xp event.
type AddXPInput struct {
	Amount int    `field:"amount" validate:"gte=0,lte=100000"`
	Source string `field:"source" validate:"required"`
	// IdempotencyKey identifies the logical event. Empty falls back to the
	// time-window duplicate heuristic.
	IdempotencyKey string `field:"idempotency_key" validate:"omitempty,max=200"`
}

// Validate validates the add xp input.
func (i AddXPInput) Validate() error {
	i.Source = strings.TrimSpace(i.Source)
	return validate.Struct(i)
}
