package badge

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
)

// CheckCatalog verifies that every configured threshold names a badge that
// exists in the catalog. Missing names are returned wrapped in
// domain.ErrBadgeCatalogMiss.
func (e *Evaluator) CheckCatalog(ctx context.Context) error {
	want := make([]string, 0, len(e.thresholds))
	for _, t := range e.thresholds {
		want = append(want, t.Name)
	}

	found, err := e.badges.CatalogNames(ctx, want)
	if err != nil {
		return fmt.Errorf("badge.CheckCatalog: %w", err)
	}

	var missing []string
	for _, name := range want {
		if !slices.Contains(found, name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("badge.CheckCatalog: %s: %w", strings.Join(missing, ", "), domain.ErrBadgeCatalogMiss)
	}
	return nil
}
