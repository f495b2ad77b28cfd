package progress

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
	"github.com/heartmarshall/learnquest-backend/pkg/ctxutil"
)

// RecordActivity credits a quiz or a catalog item (audit, tax, caselaw) to
// the authenticated user. Everything happens in one transaction: on any
// error no activity, xp, streak or badge change survives.
func (s *Service) RecordActivity(ctx context.Context, input RecordActivityInput) (*RecordActivityResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	kind := input.ActivityType
	switch kind.RewardSource() {
	case domain.RewardFixed, domain.RewardCatalog:
	default:
		return nil, fmt.Errorf("progress.RecordActivity: %s: %w", kind, domain.ErrUnsupportedActivityType)
	}
	referenceID := strings.TrimSpace(input.ReferenceID)

	var result *RecordActivityResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.users.GetForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		xp, err := s.reward(ctx, kind, referenceID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		activity, updated, newBadges, err := s.appendEntry(ctx, user, entry{
			kind:        kind,
			referenceID: referenceID,
			xp:          xp,
			score:       input.Score,
		}, now)
		if err != nil {
			return err
		}

		result = &RecordActivityResult{
			Activity:             activity,
			XPEarned:             xp,
			TotalXP:              updated.XP,
			Streak:               updated.Streak,
			NewBadges:            newBadges,
			SimulationsCompleted: updated.CompletedSimulations,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("progress.RecordActivity: %w", err)
	}

	s.metrics.ActivityRecorded(kind, result.XPEarned)
	s.log.InfoContext(ctx, "activity recorded",
		slog.String("user_id", userID.String()),
		slog.String("activity_type", kind.String()),
		slog.Int("xp_earned", result.XPEarned),
		slog.Int("total_xp", result.TotalXP),
		slog.Int("streak", result.Streak))

	return result, nil
}

// reward resolves the xp of an activity. Catalog items must exist and be active.
func (s *Service) reward(ctx context.Context, kind domain.ActivityType, referenceID string) (int, error) {
	if kind.RewardSource() == domain.RewardFixed {
		return s.cfg.QuizXP, nil
	}

	ref, err := s.content.Resolve(ctx, kind, referenceID)
	if err != nil {
		return 0, fmt.Errorf("resolve %s %q: %w", kind, referenceID, err)
	}
	if !ref.IsActive {
		return 0, fmt.Errorf("%s %q is inactive: %w", kind, referenceID, domain.ErrInvalidReference)
	}
	return ref.XPReward, nil
}
