// Package user implements the progression side of the users table:
// xp, streak, simulations and answer counters.
package user

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

var userColumns = []string{
	"id", "email", "display_name", "xp", "streak", "last_activity_date",
	"completed_simulations", "correct_answers", "total_questions",
	"created_at", "updated_at",
}

var returningUser = "RETURNING " + strings.Join(userColumns, ", ")

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository. db is usually a *pgxpool.Pool; a
// transaction carried in the context takes precedence.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID                   uuid.UUID  `db:"id"`
	Email                string     `db:"email"`
	DisplayName          string     `db:"display_name"`
	XP                   int        `db:"xp"`
	Streak               int        `db:"streak"`
	LastActivityDate     *time.Time `db:"last_activity_date"`
	CompletedSimulations int        `db:"completed_simulations"`
	CorrectAnswers       int        `db:"correct_answers"`
	TotalQuestions       int        `db:"total_questions"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	u := &domain.User{
		ID:                   r.ID,
		Email:                r.Email,
		DisplayName:          r.DisplayName,
		XP:                   r.XP,
		Streak:               r.Streak,
		CompletedSimulations: r.CompletedSimulations,
		Answers: domain.AnswerCounter{
			CorrectAnswers: r.CorrectAnswers,
			TotalQuestions: r.TotalQuestions,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.LastActivityDate != nil {
		t := r.LastActivityDate.UTC()
		u.LastActivityAt = &t
	}
	return u
}

func (r *Repo) get(ctx context.Context, b sq.Sqlizer, id uuid.UUID) (*domain.User, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.get(ctx, postgres.Builder().
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}), id)
}

// GetForUpdate re-reads the user row and locks it until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.get(ctx, postgres.Builder().
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE"), id)
}

// Create inserts a new user with zeroed progression.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return r.get(ctx, postgres.Builder().
		Insert("users").
		Columns("id", "email", "display_name").
		Values(id, u.Email, u.DisplayName).
		Suffix(returningUser), id)
}

// ApplyProgress adds upd.XPDelta to xp, stores the new streak and activity
// timestamp, and bumps completed_simulations when the activity counts.
func (r *Repo) ApplyProgress(ctx context.Context, id uuid.UUID, upd domain.ProgressUpdate) (*domain.User, error) {
	sims := 0
	if upd.SimulationCompleted {
		sims = 1
	}

	return r.get(ctx, postgres.Builder().
		Update("users").
		Set("xp", sq.Expr("xp + ?", upd.XPDelta)).
		Set("streak", upd.Streak).
		Set("last_activity_date", upd.LastActivityAt.UTC()).
		Set("completed_simulations", sq.Expr("completed_simulations + ?", sims)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningUser), id)
}

// CheckIn performs the once-per-day streak update as a single conditional
// statement. It reports whether this call changed the row; concurrent
// callers for the same day see exactly one true.
func (r *Repo) CheckIn(ctx context.Context, id uuid.UUID, p domain.CheckInParams) (bool, error) {
	query, args, err := postgres.Builder().
		Update("users").
		Set("streak", sq.Expr("CASE WHEN last_activity_date >= ? THEN streak + 1 ELSE 1 END", p.YesterdayStart.UTC())).
		Set("xp", sq.Expr("xp + ?", p.RewardXP)).
		Set("last_activity_date", p.Now.UTC()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Or{
			sq.Lt{"last_activity_date": p.DayStart.UTC()},
			sq.Eq{"last_activity_date": nil},
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build check-in update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "user", id)
	}
	return tag.RowsAffected() == 1, nil
}

// IncrementAccuracy bumps the global answer counters in one statement and
// returns their new values.
func (r *Repo) IncrementAccuracy(ctx context.Context, id uuid.UUID, correct bool) (domain.AnswerCounter, error) {
	query, args, err := postgres.Builder().
		Update("users").
		Set("correct_answers", sq.Expr("correct_answers + ?", boolToInt(correct))).
		Set("total_questions", sq.Expr("total_questions + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING correct_answers, total_questions").
		ToSql()
	if err != nil {
		return domain.AnswerCounter{}, fmt.Errorf("build accuracy update: %w", err)
	}

	var c domain.AnswerCounter
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&c.CorrectAnswers, &c.TotalQuestions)
	if err != nil {
		return domain.AnswerCounter{}, postgres.MapError(err, "user", id)
	}
	return c, nil
}

// IncrementSubjectAccuracy upserts the per-subject counter row.
func (r *Repo) IncrementSubjectAccuracy(ctx context.Context, id uuid.UUID, subject domain.Subject, correct bool) (domain.AnswerCounter, error) {
	query, args, err := postgres.Builder().
		Insert("user_subject_stats").
		Columns("user_id", "subject", "correct_answers", "total_questions").
		Values(id, string(subject), boolToInt(correct), 1).
		Suffix(`ON CONFLICT (user_id, subject) DO UPDATE SET
			correct_answers = user_subject_stats.correct_answers + EXCLUDED.correct_answers,
			total_questions = user_subject_stats.total_questions + 1,
			updated_at = now()
		RETURNING correct_answers, total_questions`).
		ToSql()
	if err != nil {
		return domain.AnswerCounter{}, fmt.Errorf("build subject accuracy upsert: %w", err)
	}

	var c domain.AnswerCounter
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&c.CorrectAnswers, &c.TotalQuestions)
	if err != nil {
		return domain.AnswerCounter{}, postgres.MapError(err, "user_subject_stats", id)
	}
	return c, nil
}

type subjectRow struct {
	Subject        string `db:"subject"`
	CorrectAnswers int    `db:"correct_answers"`
	TotalQuestions int    `db:"total_questions"`
}

// ListSubjectAccuracy returns the per-subject counters the user has, ordered
// by subject.
func (r *Repo) ListSubjectAccuracy(ctx context.Context, id uuid.UUID) ([]domain.SubjectAccuracy, error) {
	query, args, err := postgres.Builder().
		Select("subject", "correct_answers", "total_questions").
		From("user_subject_stats").
		Where(sq.Eq{"user_id": id}).
		OrderBy("subject").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build subject accuracy query: %w", err)
	}

	var rows []subjectRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user_subject_stats", id)
	}

	out := make([]domain.SubjectAccuracy, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.SubjectAccuracy{
			Subject: domain.Subject(row.Subject),
			AnswerCounter: domain.AnswerCounter{
				CorrectAnswers: row.CorrectAnswers,
				TotalQuestions: row.TotalQuestions,
			},
		})
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
