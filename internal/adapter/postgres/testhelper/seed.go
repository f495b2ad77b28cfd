package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UserOption adjusts the progression state of a seeded user.
type UserOption func(*domain.User)

// WithXP sets the starting xp.
func WithXP(xp int) UserOption {
	return func(u *domain.User) { u.XP = xp }
}

// WithStreak sets the streak and the timestamp of the last counted activity.
func WithStreak(streak int, last time.Time) UserOption {
	return func(u *domain.User) {
		u.Streak = streak
		l := last.UTC().Truncate(time.Microsecond)
		u.LastActivityAt = &l
	}
}

// WithAnswers sets the global answer counters.
func WithAnswers(correct, total int) UserOption {
	return func(u *domain.User) {
		u.Answers = domain.AnswerCounter{CorrectAnswers: correct, TotalQuestions: total}
	}
}

// SeedUser creates a user with zeroed progression unless opts say otherwise.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, opts ...UserOption) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		Email:       "learner-" + suffix + "@example.com",
		DisplayName: "Learner " + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(&user)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, display_name, xp, streak, last_activity_date,
		                    correct_answers, total_questions, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID, user.Email, user.DisplayName, user.XP, user.Streak, user.LastActivityAt,
		user.Answers.CorrectAnswers, user.Answers.TotalQuestions, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedActivity inserts a ledger row without touching users.xp. Callers that
// need users.xp to match the ledger must keep both in step themselves.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, kind domain.ActivityType, xp int, createdAt time.Time) domain.Activity {
	t.Helper()
	ctx := context.Background()

	a := domain.Activity{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        kind,
		ReferenceID: "seed-" + uniqueSuffix(),
		XPEarned:    xp,
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO activities (id, user_id, activity_type, reference_id, xp_earned, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.UserID, string(a.Type), a.ReferenceID, a.XPEarned, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity insert: %v", err)
	}

	return a
}

// SeedContent inserts a catalog item for one of the catalog-backed activity
// types and returns its reference.
func SeedContent(t *testing.T, pool *pgxpool.Pool, kind domain.ActivityType, xpReward int, active bool) domain.ContentRef {
	t.Helper()
	ctx := context.Background()

	var table string
	switch kind {
	case domain.ActivityTypeAudit:
		table = "audit_cases"
	case domain.ActivityTypeTax:
		table = "tax_simulations"
	case domain.ActivityTypeCaseLaw:
		table = "caselaw_items"
	default:
		t.Fatalf("testhelper: SeedContent: %s has no catalog", kind)
	}

	ref := domain.ContentRef{
		Kind:        kind,
		ReferenceID: string(kind) + "-" + uniqueSuffix(),
		Title:       "Seeded " + string(kind),
		IsActive:    active,
		XPReward:    xpReward,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO `+table+` (id, title, is_active, xp_reward) VALUES ($1, $2, $3, $4)`,
		ref.ReferenceID, ref.Title, ref.IsActive, ref.XPReward,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContent insert %s: %v", table, err)
	}

	return ref
}

// SeedBadge creates a badge definition with a unique name. The migration
// already seeds the default catalog; use this for isolated threshold tests.
func SeedBadge(t *testing.T, pool *pgxpool.Pool, threshold int) domain.BadgeDefinition {
	t.Helper()
	ctx := context.Background()

	b := domain.BadgeDefinition{
		ID:          uuid.New(),
		Name:        "Badge " + uniqueSuffix(),
		Description: "seeded",
		XPThreshold: threshold,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO badge_definitions (id, name, description, xp_threshold) VALUES ($1, $2, $3, $4)`,
		b.ID, b.Name, b.Description, b.XPThreshold,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBadge insert: %v", err)
	}

	return b
}
