package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
	"github.com/heartmarshall/learnquest-backend/pkg/ctxutil"
)

// Duplicate match labels, also used as metric label values.
const (
	matchIdempotencyKey = "idempotency_key"
	matchWindow         = "window"
)

// AddXP credits a free-form xp event, such as a solved live challenge.
//
// A delivery is a duplicate when an activity with the same idempotency key
// exists for the user or, without a key, when an activity with the same
// truncated source label and amount was written within Config.DedupWindow.
// Duplicates write nothing and return the earlier activity. The check runs
// after the user row is locked, so concurrent deliveries of one event see
// each other.
func (s *Service) AddXP(ctx context.Context, input AddXPInput) (*AddXPResult, error) {
	if input.IdempotencyKey == "" {
		input.IdempotencyKey = ctxutil.IdempotencyKeyFromCtx(ctx)
	}
	input.IdempotencyKey = strings.TrimSpace(input.IdempotencyKey)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	source := domain.TruncateReference(input.Source)
	kind := domain.ActivityTypeFromSource(source)

	var result *AddXPResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.users.GetForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		now := s.now().UTC()

		prev, match, err := s.findDuplicate(ctx, userID, source, input, now)
		if err != nil {
			return err
		}
		if prev != nil {
			s.metrics.DuplicateXP(match)
			s.log.WarnContext(ctx, "duplicate xp delivery ignored",
				slog.String("user_id", userID.String()),
				slog.String("activity_id", prev.ID.String()),
				slog.String("match", match))
			result = &AddXPResult{User: user, Activity: prev, Duplicate: true}
			return nil
		}

		var key *string
		if input.IdempotencyKey != "" {
			key = &input.IdempotencyKey
		}

		activity, updated, newBadges, err := s.appendEntry(ctx, user, entry{
			kind:           kind,
			referenceID:    source,
			xp:             input.Amount,
			idempotencyKey: key,
		}, now)
		if err != nil {
			return err
		}

		result = &AddXPResult{User: updated, Activity: activity, NewBadges: newBadges}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("progress.AddXP: %w", err)
	}

	if !result.Duplicate {
		s.metrics.ActivityRecorded(kind, input.Amount)
		s.log.InfoContext(ctx, "xp added",
			slog.String("user_id", userID.String()),
			slog.String("activity_type", kind.String()),
			slog.Int("amount", input.Amount),
			slog.Int("total_xp", result.User.XP))
	}

	return result, nil
}

// findDuplicate returns the earlier delivery of the same event, if any, and
// which rule matched it.
func (s *Service) findDuplicate(ctx context.Context, userID uuid.UUID, source string, input AddXPInput, now time.Time) (*domain.Activity, string, error) {
	if input.IdempotencyKey != "" {
		prev, err := s.activities.GetByIdempotencyKey(ctx, userID, input.IdempotencyKey)
		switch {
		case err == nil:
			return prev, matchIdempotencyKey, nil
		case errors.Is(err, domain.ErrNotFound):
			return nil, "", nil
		default:
			return nil, "", fmt.Errorf("lookup idempotency key: %w", err)
		}
	}

	if s.cfg.DedupWindow <= 0 {
		return nil, "", nil
	}

	prev, err := s.activities.FindRecentDuplicate(ctx, userID, source, input.Amount, now.Add(-s.cfg.DedupWindow))
	switch {
	case err == nil:
		return prev, matchWindow, nil
	case errors.Is(err, domain.ErrNotFound):
		return nil, "", nil
	default:
		return nil, "", fmt.Errorf("lookup recent duplicate: %w", err)
	}
}
