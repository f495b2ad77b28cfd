// Package goal implements the daily check-in and the day/week goal reads.
package goal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg goal . userRepo
//go:generate moq -out activity_repo_mock_test.go -pkg goal . activityRepo
//go:generate moq -out badge_evaluator_mock_test.go -pkg goal . badgeEvaluator
//go:generate moq -out tx_manager_mock_test.go -pkg goal . txManager

// userRepo defines the user repository interface needed by the goal service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CheckIn(ctx context.Context, id uuid.UUID, p domain.CheckInParams) (bool, error)
}

// activityRepo defines the ledger reads and the check-in append.
type activityRepo interface {
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	DailyXP(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DayXP, error)
	ActiveDays(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
	CountByType(ctx context.Context, userID uuid.UUID, from, to time.Time) (map[domain.ActivityType]int, error)
}

// badgeEvaluator grants badges inside the caller's transaction.
type badgeEvaluator interface {
	Evaluate(ctx context.Context, userID uuid.UUID, totalXP int) ([]string, error)
}

// txManager defines the transaction manager interface needed by the goal service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type goalMetrics interface {
	CheckIn(outcome domain.CheckInOutcome)
	ActivityRecorded(kind domain.ActivityType, xp int)
}

// Config holds the goal knobs.
type Config struct {
	// CheckInXP is credited once per UTC day by CheckIn.
	CheckInXP int
	// WeeklyXPTarget is the xp a user aims for per Sunday-to-Saturday week.
	WeeklyXPTarget int
}

// Service implements check-in and goal tracking.
type Service struct {
	log        *slog.Logger
	users      userRepo
	activities activityRepo
	badges     badgeEvaluator
	tx         txManager
	metrics    goalMetrics
	cfg        Config
	now        func() time.Time
}

// NewService creates a new goal service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	activities activityRepo,
	badges badgeEvaluator,
	tx txManager,
	metrics goalMetrics,
	cfg Config,
) *Service {
	return &Service{
		log:        logger.With("service", "goal"),
		users:      users,
		activities: activities,
		badges:     badges,
		tx:         tx,
		metrics:    metrics,
		cfg:        cfg,
		now:        time.Now,
	}
}
