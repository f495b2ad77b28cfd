// Package accuracy tracks answer correctness globally and per subject.
package accuracy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnquest-backend/internal/domain"
	"github.com/heartmarshall/learnquest-backend/pkg/ctxutil"
)

//go:generate moq -out counter_repo_mock_test.go -pkg accuracy . counterRepo
//go:generate moq -out tx_manager_mock_test.go -pkg accuracy . txManager

type counterRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	IncrementAccuracy(ctx context.Context, id uuid.UUID, correct bool) (domain.AnswerCounter, error)
	IncrementSubjectAccuracy(ctx context.Context, id uuid.UUID, subject domain.Subject, correct bool) (domain.AnswerCounter, error)
	ListSubjectAccuracy(ctx context.Context, id uuid.UUID) ([]domain.SubjectAccuracy, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the accuracy tracker.
type Service struct {
	log      *slog.Logger
	counters counterRepo
	tx       txManager
}

// NewService creates a new accuracy service instance.
func NewService(logger *slog.Logger, counters counterRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "accuracy"),
		counters: counters,
		tx:       tx,
	}
}

// UpdateAccuracyInput records one answered question.
type UpdateAccuracyInput struct {
	IsCorrect bool
	// Subject is optional; empty updates the global counter only.
	Subject domain.Subject
}

// Validate validates the update accuracy input.
func (i UpdateAccuracyInput) Validate() error {
	if i.Subject != "" && !i.Subject.IsValid() {
		return domain.NewValidationError("subject", "unknown subject")
	}
	return nil
}

// Counter is an answer counter with its rounded percentage.
type Counter struct {
	CorrectAnswers int
	TotalQuestions int
	Percent        int
}

func counterOf(c domain.AnswerCounter) Counter {
	return Counter{CorrectAnswers: c.CorrectAnswers, TotalQuestions: c.TotalQuestions, Percent: c.Percent()}
}

// SubjectCounter is the counter of one subject.
type SubjectCounter struct {
	Subject domain.Subject
	Counter
}

// AccuracyResult is the state after UpdateAccuracy. Subject is set only
// when the input named one.
type AccuracyResult struct {
	Counter
	Subject *SubjectCounter
}

// Overview is the full accuracy read model.
type Overview struct {
	Global   Counter
	Subjects []SubjectCounter
}

// UpdateAccuracy increments the global counter and, when a subject is
// given, the subject counter. Both increments commit together.
func (s *Service) UpdateAccuracy(ctx context.Context, input UpdateAccuracyInput) (*AccuracyResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Subject = domain.NormalizeSubject(string(input.Subject))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result AccuracyResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		global, err := s.counters.IncrementAccuracy(ctx, userID, input.IsCorrect)
		if err != nil {
			return fmt.Errorf("increment global: %w", err)
		}
		result.Counter = counterOf(global)

		if input.Subject == "" {
			return nil
		}

		sub, err := s.counters.IncrementSubjectAccuracy(ctx, userID, input.Subject, input.IsCorrect)
		if err != nil {
			return fmt.Errorf("increment subject: %w", err)
		}
		result.Subject = &SubjectCounter{Subject: input.Subject, Counter: counterOf(sub)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("accuracy.UpdateAccuracy: %w", err)
	}

	s.log.DebugContext(ctx, "accuracy updated",
		slog.String("user_id", userID.String()),
		slog.Bool("correct", input.IsCorrect),
		slog.String("subject", input.Subject.String()))

	return &result, nil
}

// GetAccuracy returns the global counter and every subject counter the user has.
func (s *Service) GetAccuracy(ctx context.Context) (*Overview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.counters.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("accuracy.GetAccuracy: %w", err)
	}

	subjects, err := s.counters.ListSubjectAccuracy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("accuracy.GetAccuracy: %w", err)
	}

	out := &Overview{
		Global:   counterOf(user.Answers),
		Subjects: make([]SubjectCounter, 0, len(subjects)),
	}
	for _, sa := range subjects {
		out.Subjects = append(out.Subjects, SubjectCounter{Subject: sa.Subject, Counter: counterOf(sa.AnswerCounter)})
	}
	return out, nil
}
