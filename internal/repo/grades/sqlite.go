package grades

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/directdev/portal/internal/common"
	"github.com/directdev/portal/internal/dbx"
	"github.com/directdev/portal/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Replace(ctx context.Context, grade *models.Grade) error {
	// The credit row carries the term of the payload it arrived with.
	credit := grade.Credit
	credit.Term = grade.Term

	if err := r.replaceGradings(ctx, grade.Gradings); err != nil {
		return err
	}
	if err := r.replaceScores(ctx, grade.Scores); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO grade_credit (term, earned, attempted, grade_point) VALUES (?, ?, ?, ?)
		ON CONFLICT(term) DO UPDATE SET earned = excluded.earned,
			attempted = excluded.attempted,
			grade_point = excluded.grade_point
	`, credit.Term, credit.Earned, credit.Attempted, credit.GradePoint)
	if err != nil {
		return fmt.Errorf("failed to upsert credit: %w", err)
	}
	return nil
}

// replaceGradings deletes and reinserts the gradings table. An empty input
// is a no-op: the previous generation stays.
func (r *SQLiteRepository) replaceGradings(ctx context.Context, gradings []models.Grading) error {
	if len(gradings) == 0 {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM gradings`); err != nil {
		return fmt.Errorf("failed to clear gradings: %w", err)
	}
	for _, g := range gradings {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO gradings (course_id, assessment, weight) VALUES (?, ?, ?)`,
			g.CourseID, g.Assessment, g.Weight)
		if err != nil {
			return fmt.Errorf("failed to insert grading: %w", err)
		}
	}
	return nil
}

func (r *SQLiteRepository) replaceScores(ctx context.Context, scores []models.Score) error {
	if len(scores) == 0 {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scores`); err != nil {
		return fmt.Errorf("failed to clear scores: %w", err)
	}
	for _, s := range scores {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO scores (course_id, assessment, score) VALUES (?, ?, ?)`,
			s.CourseID, s.Assessment, s.Score)
		if err != nil {
			return fmt.Errorf("failed to insert score: %w", err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Credit(ctx context.Context, term string) (*models.Credit, error) {
	credit := &models.Credit{}
	err := r.db.QueryRowContext(ctx,
		`SELECT term, earned, attempted, grade_point FROM grade_credit WHERE term = ?`, term,
	).Scan(&credit.Term, &credit.Earned, &credit.Attempted, &credit.GradePoint)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credit for term %s: %w", term, err)
	}
	return credit, nil
}
