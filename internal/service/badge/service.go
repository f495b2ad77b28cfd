// Package badge decides which badges a user's xp total qualifies for and
// grants the missing ones.
package badge

import (
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

//go:generate moq -out badge_repo_mock_test.go -pkg badge . badgeRepo

// badgeRepo defines the badge catalog and ownership operations the evaluator needs.
type badgeRepo interface {
	ListOwnedNames(ctx context.Context, userID uuid.UUID) ([]string, error)
	FindByName(ctx context.Context, name string) (*domain.BadgeDefinition, error)
	Award(ctx context.Context, userID, badgeID uuid.UUID) (bool, error)
	CatalogNames(ctx context.Context, names []string) ([]string, error)
}

type badgeMetrics interface {
	BadgesAwarded(n int)
}

// Evaluator grants xp-threshold badges. It holds no transaction of its own:
// called with a context carrying a transaction, every read and award joins it.
type Evaluator struct {
	log        *slog.Logger
	badges     badgeRepo
	thresholds []domain.BadgeThreshold
	metrics    badgeMetrics
}

// NewEvaluator creates an Evaluator. thresholds are copied and sorted by xp.
func NewEvaluator(logger *slog.Logger, badges badgeRepo, thresholds []domain.BadgeThreshold, metrics badgeMetrics) *Evaluator {
	sorted := slices.Clone(thresholds)
	slices.SortStableFunc(sorted, func(a, b domain.BadgeThreshold) int {
		return a.XPThreshold - b.XPThreshold
	})

	return &Evaluator{
		log:        logger.With("service", "badge"),
		badges:     badges,
		thresholds: sorted,
		metrics:    metrics,
	}
}

// EarnedNames returns the names of every badge whose threshold is at or
// below totalXP. thresholds must be sorted ascending.
func EarnedNames(thresholds []domain.BadgeThreshold, totalXP int) []string {
	var names []string
	for _, t := range thresholds {
		if t.XPThreshold > totalXP {
			break
		}
		names = append(names, t.Name)
	}
	return names
}
