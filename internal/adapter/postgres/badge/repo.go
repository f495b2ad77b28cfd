// Package badge implements the badge catalog and the user_badges ownership
// table.
package badge

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/learnquest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

// Repo provides badge persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new badge repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type definitionRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	XPThreshold int       `db:"xp_threshold"`
}

// FindByName looks a badge up in the catalog. Returns domain.ErrNotFound
// when no definition carries that name.
func (r *Repo) FindByName(ctx context.Context, name string) (*domain.BadgeDefinition, error) {
	query, args, err := postgres.Builder().
		Select("id", "name", "description", "xp_threshold").
		From("badge_definitions").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build badge query: %w", err)
	}

	var row definitionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "badge", name)
	}
	d := domain.BadgeDefinition(row)
	return &d, nil
}

// ListOwnedNames returns the names of the badges the user holds.
func (r *Repo) ListOwnedNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query, args, err := postgres.Builder().
		Select("b.name").
		From("user_badges ub").
		Join("badge_definitions b ON b.id = ub.badge_id").
		Where(sq.Eq{"ub.user_id": userID}).
		OrderBy("b.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build owned names query: %w", err)
	}

	var names []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &names, query, args...); err != nil {
		return nil, postgres.MapError(err, "user_badges", userID)
	}
	return names, nil
}

// CatalogNames returns which of names exist in the badge catalog.
func (r *Repo) CatalogNames(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	query, args, err := postgres.Builder().
		Select("name").
		From("badge_definitions").
		Where(sq.Eq{"name": names}).
		OrderBy("xp_threshold", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build catalog names query: %w", err)
	}

	var found []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &found, query, args...); err != nil {
		return nil, postgres.MapError(err, "badge", names)
	}
	return found, nil
}

type ownedRow struct {
	BadgeID  uuid.UUID `db:"badge_id"`
	Name     string    `db:"name"`
	EarnedAt time.Time `db:"earned_at"`
}

// ListOwned returns the user's badges in the order they were earned.
func (r *Repo) ListOwned(ctx context.Context, userID uuid.UUID) ([]domain.OwnedBadge, error) {
	query, args, err := postgres.Builder().
		Select("ub.badge_id", "b.name", "ub.earned_at").
		From("user_badges ub").
		Join("badge_definitions b ON b.id = ub.badge_id").
		Where(sq.Eq{"ub.user_id": userID}).
		OrderBy("ub.earned_at", "b.xp_threshold").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build owned badges query: %w", err)
	}

	var rows []ownedRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user_badges", userID)
	}

	out := make([]domain.OwnedBadge, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.OwnedBadge{BadgeID: row.BadgeID, Name: row.Name, EarnedAt: row.EarnedAt.UTC()})
	}
	return out, nil
}

// Award grants the badge to the user. It reports false, without error, when
// the user already held it: the primary key on (user_id, badge_id) makes
// concurrent awards collapse to one row.
func (r *Repo) Award(ctx context.Context, userID, badgeID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Insert("user_badges").
		Columns("user_id", "badge_id").
		Values(userID, badgeID).
		Suffix("ON CONFLICT (user_id, badge_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build award insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "user_badges", badgeID)
	}
	return tag.RowsAffected() == 1, nil
}
