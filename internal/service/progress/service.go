// Package progress owns the xp ledger: recording catalog activities,
// crediting free-form xp events, and reading a user's progression.
package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg progress . userRepo
//go:generate moq -out activity_repo_mock_test.go -pkg progress . activityRepo
//go:generate moq -out content_resolver_mock_test.go -pkg progress . contentResolver
//go:generate moq -out badge_evaluator_mock_test.go -pkg progress . badgeEvaluator
//go:generate moq -out badge_lister_mock_test.go -pkg progress . badgeLister
//go:generate moq -out tx_manager_mock_test.go -pkg progress . txManager

// userRepo defines the user repository interface needed by the progress service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ApplyProgress(ctx context.Context, id uuid.UUID, upd domain.ProgressUpdate) (*domain.User, error)
}

// activityRepo defines the ledger operations needed by the progress service.
type activityRepo interface {
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	GetByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*domain.Activity, error)
	FindRecentDuplicate(ctx context.Context, userID uuid.UUID, referenceID string, xp int, since time.Time) (*domain.Activity, error)
}

// contentResolver resolves catalog references for audit, tax and caselaw.
type contentResolver interface {
	Resolve(ctx context.Context, kind domain.ActivityType, referenceID string) (*domain.ContentRef, error)
}

// badgeEvaluator grants badges inside the caller's transaction.
type badgeEvaluator interface {
	Evaluate(ctx context.Context, userID uuid.UUID, totalXP int) ([]string, error)
}

// badgeLister reads the badges a user holds.
type badgeLister interface {
	ListOwned(ctx context.Context, userID uuid.UUID) ([]domain.OwnedBadge, error)
}

// txManager defines the transaction manager interface needed by the progress service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type progressMetrics interface {
	ActivityRecorded(kind domain.ActivityType, xp int)
	DuplicateXP(match string)
}

// Config holds the reward knobs of the ledger.
type Config struct {
	// QuizXP is the fixed reward of a quiz activity.
	QuizXP int
	// DedupWindow is how far back AddXP looks for a duplicate delivery when
	// the caller supplied no idempotency key.
	DedupWindow time.Duration
}

// Service implements the activity recorder and the xp event ledger.
type Service struct {
	log        *slog.Logger
	users      userRepo
	activities activityRepo
	content    contentResolver
	badges     badgeEvaluator
	owned      badgeLister
	tx         txManager
	metrics    progressMetrics
	cfg        Config
	now        func() time.Time
}

// NewService creates a new progress service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	activities activityRepo,
	content contentResolver,
	badges badgeEvaluator,
	owned badgeLister,
	tx txManager,
	metrics progressMetrics,
	cfg Config,
) *Service {
	return &Service{
		log:        logger.With("service", "progress"),
		users:      users,
		activities: activities,
		content:    content,
		badges:     badges,
		owned:      owned,
		tx:         tx,
		metrics:    metrics,
		cfg:        cfg,
		now:        time.Now,
	}
}
