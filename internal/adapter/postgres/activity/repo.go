// Package activity implements the append-only activity ledger.
package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/learnquest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

// IdempotencyKeyConstraint is the partial unique index backing AddXP keys.
const IdempotencyKeyConstraint = "activities_user_idempotency_key_uniq"

var activityColumns = []string{
	"id", "user_id", "activity_type", "reference_id", "xp_earned", "score",
	"idempotency_key", "created_at",
}

// utcDay buckets created_at by UTC calendar day.
const utcDay = "(created_at AT TIME ZONE 'UTC')::date"

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type activityRow struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	ActivityType   string    `db:"activity_type"`
	ReferenceID    string    `db:"reference_id"`
	XPEarned       int       `db:"xp_earned"`
	Score          *int      `db:"score"`
	IdempotencyKey *string   `db:"idempotency_key"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r activityRow) toDomain() *domain.Activity {
	return &domain.Activity{
		ID:             r.ID,
		UserID:         r.UserID,
		Type:           domain.ActivityType(r.ActivityType),
		ReferenceID:    r.ReferenceID,
		XPEarned:       r.XPEarned,
		Score:          r.Score,
		IdempotencyKey: r.IdempotencyKey,
		CreatedAt:      r.CreatedAt.UTC(),
	}
}

func (r *Repo) getOne(ctx context.Context, b sq.Sqlizer, id any) (*domain.Activity, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build activity query: %w", err)
	}

	var row activityRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}
	return row.toDomain(), nil
}

// Create appends an activity row. ReferenceID is truncated to the column
// width; a zero CreatedAt defaults to now().
func (r *Repo) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	var createdAt any = sq.Expr("now()")
	if !a.CreatedAt.IsZero() {
		createdAt = a.CreatedAt.UTC()
	}

	return r.getOne(ctx, postgres.Builder().
		Insert("activities").
		Columns(activityColumns...).
		Values(id, a.UserID, string(a.Type), domain.TruncateReference(a.ReferenceID),
			a.XPEarned, a.Score, a.IdempotencyKey, createdAt).
		Suffix("RETURNING "+strings.Join(activityColumns, ", ")), id)
}

// GetByIdempotencyKey returns the activity recorded for (userID, key), or
// domain.ErrNotFound.
func (r *Repo) GetByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*domain.Activity, error) {
	return r.getOne(ctx, postgres.Builder().
		Select(activityColumns...).
		From("activities").
		Where(sq.Eq{"user_id": userID, "idempotency_key": key}), key)
}

// FindRecentDuplicate returns the newest activity of the user with the same
// reference and xp created at or after since, or domain.ErrNotFound.
func (r *Repo) FindRecentDuplicate(ctx context.Context, userID uuid.UUID, referenceID string, xp int, since time.Time) (*domain.Activity, error) {
	return r.getOne(ctx, postgres.Builder().
		Select(activityColumns...).
		From("activities").
		Where(sq.Eq{
			"user_id":      userID,
			"reference_id": domain.TruncateReference(referenceID),
			"xp_earned":    xp,
		}).
		Where(sq.GtOrEq{"created_at": since.UTC()}).
		OrderBy("created_at DESC").
		Limit(1), referenceID)
}

type dayRow struct {
	Day time.Time `db:"day"`
	XP  int       `db:"xp"`
}

// DailyXP sums xp_earned per UTC day in [from, to). Days without activity
// are omitted.
func (r *Repo) DailyXP(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DayXP, error) {
	query, args, err := postgres.Builder().
		Select(utcDay+" AS day", "COALESCE(SUM(xp_earned), 0)::int AS xp").
		From("activities").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": from.UTC()}).
		Where(sq.Lt{"created_at": to.UTC()}).
		GroupBy("day").
		OrderBy("day").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build daily xp query: %w", err)
	}

	var rows []dayRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", userID)
	}

	out := make([]domain.DayXP, 0, len(rows))
	for _, row := range rows {
		d := row.Day
		out = append(out, domain.DayXP{
			Day: time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
			XP:  row.XP,
		})
	}
	return out, nil
}

// ActiveDays returns every UTC day on which the user has at least one
// activity, ascending.
func (r *Repo) ActiveDays(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	query, args, err := postgres.Builder().
		Select(utcDay + " AS day").
		Distinct().
		From("activities").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("day").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build active days query: %w", err)
	}

	var days []time.Time
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &days, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", userID)
	}
	for i, d := range days {
		days[i] = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	return days, nil
}

type typeCountRow struct {
	ActivityType string `db:"activity_type"`
	N            int    `db:"n"`
}

// CountByType counts the user's activities per type in [from, to).
func (r *Repo) CountByType(ctx context.Context, userID uuid.UUID, from, to time.Time) (map[domain.ActivityType]int, error) {
	query, args, err := postgres.Builder().
		Select("activity_type", "count(*)::int AS n").
		From("activities").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": from.UTC()}).
		Where(sq.Lt{"created_at": to.UTC()}).
		GroupBy("activity_type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by type query: %w", err)
	}

	var rows []typeCountRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", userID)
	}

	out := make(map[domain.ActivityType]int, len(rows))
	for _, row := range rows {
		out[domain.ActivityType(row.ActivityType)] = row.N
	}
	return out, nil
}

type driftRow struct {
	UserID     uuid.UUID `db:"user_id"`
	StoredXP   int       `db:"stored_xp"`
	LedgerXP   int       `db:"ledger_xp"`
	Activities int       `db:"activities"`
}

// FindXPDrift lists users whose stored xp differs from the sum of their
// ledger, ordered by the size of the difference.
func (r *Repo) FindXPDrift(ctx context.Context, limit uint64) ([]domain.XPDrift, error) {
	b := postgres.Builder().
		Select("u.id AS user_id", "u.xp AS stored_xp",
			"COALESCE(l.ledger_xp, 0) AS ledger_xp", "COALESCE(l.activities, 0) AS activities").
		From("users u").
		LeftJoin(`(SELECT user_id, SUM(xp_earned)::int AS ledger_xp, count(*)::int AS activities
			FROM activities GROUP BY user_id) l ON l.user_id = u.id`).
		Where("u.xp <> COALESCE(l.ledger_xp, 0)").
		OrderBy("abs(u.xp - COALESCE(l.ledger_xp, 0)) DESC", "u.id")
	if limit > 0 {
		b = b.Limit(limit)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build drift query: %w", err)
	}

	var rows []driftRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", "drift")
	}

	out := make([]domain.XPDrift, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.XPDrift(row))
	}
	return out, nil
}
