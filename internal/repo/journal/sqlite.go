package journal

import (
	"context"
	"fmt"

	"github.com/directdev/portal/internal/dbx"
	"github.com/directdev/portal/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
// The full-replace methods are meant to run inside one dbx.WithTx scope.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	for _, table := range []string{"journal", "exams", "finances", "sessions"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) InsertRecords(ctx context.Context, exams []*models.Exam, finances []*models.Finance, sessions []*models.Session) error {
	for _, e := range exams {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO exams (date, course_id, course_name, room, type, time) VALUES (?, ?, ?, ?, ?, ?)`,
			e.Date, e.CourseID, e.CourseName, e.Room, e.Type, e.Time)
		if err != nil {
			return fmt.Errorf("failed to insert exam: %w", err)
		}
	}
	for _, f := range finances {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO finances (due_date, amount, description) VALUES (?, ?, ?)`,
			f.DueDate, f.Amount, f.Description)
		if err != nil {
			return fmt.Errorf("failed to insert finance item: %w", err)
		}
	}
	for _, s := range sessions {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO sessions (date, course_id, course_name, room, start_time, end_time) VALUES (?, ?, ?, ?, ?, ?)`,
			s.Date, s.CourseID, s.CourseName, s.Room, s.StartTime, s.EndTime)
		if err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}
	}
	return nil
}

func (r *SQLiteRepository) InsertEntries(ctx context.Context, entries []*models.JournalEntry) error {
	for _, entry := range entries {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO journal (id) VALUES (?)`, entry.ID); err != nil {
			return fmt.Errorf("failed to insert journal entry %s: %w", entry.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) ListEntries(ctx context.Context) ([]*models.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM journal ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to select journal: %w", err)
	}
	defer rows.Close()

	var entries []*models.JournalEntry
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		entries = append(entries, models.NewJournalEntry(id))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	exams, err := r.examsByDate(ctx)
	if err != nil {
		return nil, err
	}
	finances, err := r.financesByDate(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := r.sessionsByDate(ctx)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		entry.Exams = exams[entry.ID]
		entry.Finances = finances[entry.ID]
		entry.Sessions = sessions[entry.ID]
	}
	return entries, nil
}

func (r *SQLiteRepository) examsByDate(ctx context.Context) (map[string][]*models.Exam, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date, course_id, course_name, room, type, time FROM exams ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select exams: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]*models.Exam)
	for rows.Next() {
		e := &models.Exam{}
		if err := rows.Scan(&e.Date, &e.CourseID, &e.CourseName, &e.Room, &e.Type, &e.Time); err != nil {
			return nil, err
		}
		result[e.Date] = append(result[e.Date], e)
	}
	return result, rows.Err()
}

func (r *SQLiteRepository) financesByDate(ctx context.Context) (map[string][]*models.Finance, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT due_date, amount, description FROM finances ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select finances: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]*models.Finance)
	for rows.Next() {
		f := &models.Finance{}
		if err := rows.Scan(&f.DueDate, &f.Amount, &f.Description); err != nil {
			return nil, err
		}
		result[f.DueDate] = append(result[f.DueDate], f)
	}
	return result, rows.Err()
}

func (r *SQLiteRepository) sessionsByDate(ctx context.Context) (map[string][]*models.Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date, course_id, course_name, room, start_time, end_time FROM sessions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select sessions: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]*models.Session)
	for rows.Next() {
		s := &models.Session{}
		if err := rows.Scan(&s.Date, &s.CourseID, &s.CourseName, &s.Room, &s.StartTime, &s.EndTime); err != nil {
			return nil, err
		}
		result[s.Date] = append(result[s.Date], s)
	}
	return result, rows.Err()
}
