package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/learnquest-backend/internal/calendar"
	"github.com/heartmarshall/learnquest-backend/internal/domain"
	"github.com/heartmarshall/learnquest-backend/pkg/ctxutil"
)

// CheckIn records the authenticated user's daily check-in.
//
// The streak moves through one conditional UPDATE that only matches while
// the user has no activity today. Exactly one of any number of concurrent
// calls on the same UTC day sees a changed row; that call appends the
// checkin activity and evaluates badges. Every other call reports
// StreakUpdated=false with the current streak.
func (s *Service) CheckIn(ctx context.Context) (*CheckInResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now().UTC()
	params := domain.CheckInParams{
		Now:            now,
		DayStart:       calendar.DayStart(now),
		YesterdayStart: calendar.YesterdayStart(now),
		RewardXP:       s.cfg.CheckInXP,
	}

	var result *CheckInResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		won, err := s.users.CheckIn(ctx, userID, params)
		if err != nil {
			return fmt.Errorf("conditional update: %w", err)
		}

		if !won {
			// Also the path for an unknown user: the re-read reports ErrNotFound.
			user, err := s.users.GetByID(ctx, userID)
			if err != nil {
				return fmt.Errorf("re-read user: %w", err)
			}
			result = &CheckInResult{StreakUpdated: false, CurrentStreak: user.Streak, NewBadges: []string{}}
			return nil
		}

		if _, err := s.activities.Create(ctx, &domain.Activity{
			UserID:      userID,
			Type:        domain.ActivityTypeCheckIn,
			ReferenceID: "daily-checkin:" + calendar.DayKey(now),
			XPEarned:    s.cfg.CheckInXP,
			CreatedAt:   now,
		}); err != nil {
			return fmt.Errorf("create checkin activity: %w", err)
		}

		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("read user: %w", err)
		}

		newBadges, err := s.badges.Evaluate(ctx, userID, user.XP)
		if err != nil {
			return fmt.Errorf("evaluate badges: %w", err)
		}
		if newBadges == nil {
			newBadges = []string{}
		}

		result = &CheckInResult{
			StreakUpdated: true,
			CurrentStreak: user.Streak,
			XPEarned:      s.cfg.CheckInXP,
			NewBadges:     newBadges,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("goal.CheckIn: %w", err)
	}

	if result.StreakUpdated {
		s.metrics.CheckIn(domain.CheckInWon)
		s.metrics.ActivityRecorded(domain.ActivityTypeCheckIn, result.XPEarned)
		s.log.InfoContext(ctx, "checked in",
			slog.String("user_id", userID.String()),
			slog.Int("streak", result.CurrentStreak))
	} else {
		s.metrics.CheckIn(domain.CheckInLost)
	}

	return result, nil
}
