// Package journal persists the merged journal: the leaf exam/finance/session
// records plus the date-keyed index over them. Each sync cycle fully
// replaces the previous generation; there is no incremental diffing.
package journal

import (
	"context"

	"github.com/directdev/portal/internal/models"
)

type Repository interface {
	// DeleteAll removes the journal index and every exam, finance and
	// session record of the previous generation.
	DeleteAll(ctx context.Context) error

	// InsertRecords persists the leaf records. It must run before
	// InsertEntries so the index never references missing records.
	InsertRecords(ctx context.Context, exams []*models.Exam, finances []*models.Finance, sessions []*models.Session) error

	// InsertEntries persists the journal index rows in merge order.
	InsertEntries(ctx context.Context, entries []*models.JournalEntry) error

	// ListEntries reads the index back in insertion order, attaching every
	// record whose date equals the entry id.
	ListEntries(ctx context.Context) ([]*models.JournalEntry, error)
}
