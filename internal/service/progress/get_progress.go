package progress

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
	"github.com/heartmarshall/learnquest-backend/pkg/ctxutil"
)

// GetProgress returns the authenticated user's xp, level, streak and badges.
func (s *Service) GetProgress(ctx context.Context) (*Progress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		user   *domain.User
		badges []domain.OwnedBadge
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.GetByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		badges, err = s.owned.ListOwned(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("progress.GetProgress: %w", err)
	}

	if badges == nil {
		badges = []domain.OwnedBadge{}
	}

	return &Progress{
		UserID:               user.ID,
		XP:                   user.XP,
		Level:                domain.LevelFor(user.XP),
		Streak:               user.Streak,
		LastActivityAt:       user.LastActivityAt,
		CompletedSimulations: user.CompletedSimulations,
		Badges:               badges,
	}, nil
}
