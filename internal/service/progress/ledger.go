package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

// entry is one xp grant about to be appended to the ledger.
type entry struct {
	kind           domain.ActivityType
	referenceID    string
	xp             int
	score          *int
	idempotencyKey *string
}

// appendEntry performs the write half shared by RecordActivity and AddXP:
// insert the activity, move xp/streak/simulations on the locked user row,
// then evaluate badges against the new total. Must run inside a transaction
// that already holds the user row lock.
func (s *Service) appendEntry(ctx context.Context, user *domain.User, e entry, now time.Time) (*domain.Activity, *domain.User, []string, error) {
	activity, err := s.activities.Create(ctx, &domain.Activity{
		UserID:         user.ID,
		Type:           e.kind,
		ReferenceID:    e.referenceID,
		XPEarned:       e.xp,
		Score:          e.score,
		IdempotencyKey: e.idempotencyKey,
		CreatedAt:      now,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create activity: %w", err)
	}

	updated, err := s.users.ApplyProgress(ctx, user.ID, domain.ProgressUpdate{
		XPDelta:             e.xp,
		Streak:              domain.NextStreak(user.Streak, user.LastActivityAt, now),
		LastActivityAt:      now,
		SimulationCompleted: e.kind.CountsAsSimulation(),
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("apply progress: %w", err)
	}

	newBadges, err := s.badges.Evaluate(ctx, user.ID, updated.XP)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("evaluate badges: %w", err)
	}

	return activity, updated, newBadges, nil
}
