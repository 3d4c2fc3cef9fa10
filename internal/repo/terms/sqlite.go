package terms

import (
	"context"
	"fmt"

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

func (r *SQLiteRepository) Upsert(ctx context.Context, terms []*models.Term) error {
	query := `INSERT INTO terms (value, description) VALUES (?, ?)
		ON CONFLICT(value) DO UPDATE SET description = excluded.description`
	for _, term := range terms {
		if _, err := r.db.ExecContext(ctx, query, term.Value, term.Description); err != nil {
			return fmt.Errorf("failed to upsert term %d: %w", term.Value, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Term, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT value, description FROM terms ORDER BY value DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select terms: %w", err)
	}
	defer rows.Close()

	var result []*models.Term
	for rows.Next() {
		term := &models.Term{}
		if err := rows.Scan(&term.Value, &term.Description); err != nil {
			return nil, err
		}
		result = append(result, term)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
