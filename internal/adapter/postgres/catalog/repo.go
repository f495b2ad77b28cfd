// Package catalog resolves references to reviewed content (audit cases, tax
// simulations, case-law items) and their configured xp reward.
package catalog

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/learnquest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

var tables = map[domain.ActivityType]string{
	domain.ActivityTypeAudit:   "audit_cases",
	domain.ActivityTypeTax:     "tax_simulations",
	domain.ActivityTypeCaseLaw: "caselaw_items",
}

// Repo reads the catalog tables.
type Repo struct {
	db postgres.Querier
}

// New creates a new catalog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type contentRow struct {
	ID       string `db:"id"`
	Title    string `db:"title"`
	IsActive bool   `db:"is_active"`
	XPReward int    `db:"xp_reward"`
}

// Resolve looks referenceID up in the catalog table of kind. A kind without
// a catalog or an unknown id yields domain.ErrInvalidReference. Inactive
// items are returned with IsActive=false; callers decide what that means.
func (r *Repo) Resolve(ctx context.Context, kind domain.ActivityType, referenceID string) (*domain.ContentRef, error) {
	table, ok := tables[kind]
	if !ok {
		return nil, fmt.Errorf("%s has no catalog: %w", kind, domain.ErrInvalidReference)
	}

	query, args, err := postgres.Builder().
		Select("id", "title", "is_active", "xp_reward").
		From(table).
		Where(sq.Eq{"id": referenceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build catalog query: %w", err)
	}

	var row contentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		err = postgres.MapError(err, table, referenceID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%s %q: %w", kind, referenceID, domain.ErrInvalidReference)
		}
		return nil, err
	}

	return &domain.ContentRef{
		Kind:        kind,
		ReferenceID: row.ID,
		Title:       row.Title,
		IsActive:    row.IsActive,
		XPReward:    row.XPReward,
	}, nil
}
