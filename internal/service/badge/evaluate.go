package badge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

// Evaluate grants every badge earned at totalXP that the user does not hold
// yet and returns the names granted by this call, in threshold order.
//
// A badge missing from the catalog is skipped with a warning. A badge that
// another writer granted first is not reported as new.
func (e *Evaluator) Evaluate(ctx context.Context, userID uuid.UUID, totalXP int) ([]string, error) {
	earned := EarnedNames(e.thresholds, totalXP)
	if len(earned) == 0 {
		return nil, nil
	}

	owned, err := e.badges.ListOwnedNames(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("badge.Evaluate: list owned: %w", err)
	}
	have := make(map[string]struct{}, len(owned))
	for _, name := range owned {
		have[name] = struct{}{}
	}

	var granted []string
	for _, name := range earned {
		if _, ok := have[name]; ok {
			continue
		}

		def, err := e.badges.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				e.log.WarnContext(ctx, "badge missing from catalog",
					slog.String("user_id", userID.String()),
					slog.String("badge", name),
					slog.Any("error", domain.ErrBadgeCatalogMiss))
				continue
			}
			return nil, fmt.Errorf("badge.Evaluate: find %q: %w", name, err)
		}

		isNew, err := e.badges.Award(ctx, userID, def.ID)
		if err != nil {
			return nil, fmt.Errorf("badge.Evaluate: award %q: %w", name, err)
		}
		if isNew {
			granted = append(granted, name)
		}
	}

	if len(granted) > 0 {
		e.metrics.BadgesAwarded(len(granted))
		e.log.InfoContext(ctx, "badges awarded",
			slog.String("user_id", userID.String()),
			slog.Int("total_xp", totalXP),
			slog.Any("badges", granted))
	}

	return granted, nil
}
