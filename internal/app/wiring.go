package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/learnquest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/learnquest-backend/internal/adapter/postgres/activity"
	badgerepo "github.com/heartmarshall/learnquest-backend/internal/adapter/postgres/badge"
	"github.com/heartmarshall/learnquest-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/learnquest-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/learnquest-backend/internal/config"
	"github.com/heartmarshall/learnquest-backend/internal/metrics"
	"github.com/heartmarshall/learnquest-backend/internal/service/accuracy"
	"github.com/heartmarshall/learnquest-backend/internal/service/badge"
	"github.com/heartmarshall/learnquest-backend/internal/service/goal"
	"github.com/heartmarshall/learnquest-backend/internal/service/progress"
	"github.com/heartmarshall/learnquest-backend/internal/transport/middleware"
	"github.com/heartmarshall/learnquest-backend/internal/transport/rest"
)

// Services holds the wired progression services.
type Services struct {
	Progress *progress.Service
	Goals    *goal.Service
	Accuracy *accuracy.Service
	Badges   *badge.Evaluator
}

// NewServices builds repositories and services over one pool.
func NewServices(logger *slog.Logger, pool *pgxpool.Pool, cfg config.ProgressionConfig, m *metrics.Metrics) *Services {
	users := user.New(pool)
	activities := activity.New(pool)
	badges := badgerepo.New(pool)
	content := catalog.New(pool)
	tx := postgres.NewTxManager(pool)

	evaluator := badge.NewEvaluator(logger, badges, cfg.BadgeThresholds, m)

	return &Services{
		Progress: progress.NewService(logger, users, activities, content, evaluator, badges, tx, m, progress.Config{
			QuizXP:      cfg.QuizXP,
			DedupWindow: cfg.DedupWindow,
		}),
		Goals: goal.NewService(logger, users, activities, evaluator, tx, m, goal.Config{
			CheckInXP:      cfg.CheckInXP,
			WeeklyXPTarget: cfg.WeeklyXPTarget,
		}),
		Accuracy: accuracy.NewService(logger, users, tx),
		Badges:   evaluator,
	}
}

// HealthChecks probes the database (critical) and the badge catalog, which
// only degrades the service: a missing badge is skipped at award time.
func HealthChecks(pool *pgxpool.Pool, s *Services) []rest.HealthCheck {
	return []rest.HealthCheck{
		{Name: "database", Critical: true, Probe: pool.Ping},
		{Name: "badge_catalog", Probe: s.Badges.CheckCatalog},
	}
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps is everything NewRouter mounts.
type RouterDeps struct {
	Logger    *slog.Logger
	Services  *Services
	Checks    []rest.HealthCheck
	Tokens    tokenValidator
	Metrics   *metrics.Metrics
	CORS      config.CORSConfig
	Limiter   *middleware.RateLimiter
	RateLimit int
}

// NewRouter mounts the API, the probes and /metrics behind the middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	rest.NewHealthHandler(BuildVersion(), d.Checks...).Register(mux)
	mux.Handle("GET /metrics", d.Metrics.Handler())

	api := http.NewServeMux()
	rest.NewProgressHandler(d.Services.Progress, d.Services.Goals, d.Services.Accuracy, d.Logger).Register(api)

	mux.Handle("/api/", middleware.Chain(
		middleware.Auth(d.Tokens),
		d.Limiter.Limit(d.RateLimit),
		middleware.IdempotencyKey(),
	)(api))

	return middleware.Chain(
		middleware.Recovery(d.Logger, d.Metrics),
		middleware.RequestID(),
		middleware.Logger(d.Logger, d.Metrics),
		middleware.CORS(d.CORS),
	)(mux)
}
