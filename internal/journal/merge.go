// Package journal merges exam, finance and session records into the
// date-keyed entries the journal screen displays.
package journal

import (
	"time"

	"github.com/directdev/portal/internal/models"
)

// keyLayout is the canonical 10-character date key every entry is keyed by.
const keyLayout = "2006-01-02"

// DateKey normalizes a raw record date to the canonical key: anything past
// the date portion (a time suffix, a timezone) is dropped and the remainder
// is re-rendered through the canonical layout. Unparseable input is returned
// truncated as-is so a malformed record keys its own entry instead of
// aborting the merge.
func DateKey(raw string) string {
	s := raw
	if len(s) > len(keyLayout) {
		s = s[:len(keyLayout)]
	}
	t, err := time.Parse(keyLayout, s)
	if err != nil {
		return s
	}
	return t.Format(keyLayout)
}

// Merge builds one journal entry per source record and then cross-populates
// every entry with all records sharing its date.
//
// The entry list is deliberately not deduplicated: when an exam, a finance
// item and a session all fall on the same date, three entries with that id
// are produced, each carrying the full record sets for the date. The
// journal display groups by id, so duplicate ids collapse there.
//
// The correlation pass compares each record's raw date against the entry id,
// so only records whose dates are already canonical attach to entries. Cost
// is O(n·(s+f+e)); record counts here are a few terms' worth.
func Merge(exams []*models.Exam, finances []*models.Finance, sessions []*models.Session) []*models.JournalEntry {
	entries := make([]*models.JournalEntry, 0, len(finances)+len(exams)+len(sessions))

	for _, f := range finances {
		entries = append(entries, models.NewJournalEntry(DateKey(f.DueDate)))
	}
	for _, e := range exams {
		entries = append(entries, models.NewJournalEntry(DateKey(e.Date)))
	}
	for _, s := range sessions {
		entries = append(entries, models.NewJournalEntry(DateKey(s.Date)))
	}

	for _, entry := range entries {
		for _, s := range sessions {
			if entry.ID == s.Date {
				entry.Sessions = append(entry.Sessions, s)
			}
		}
		for _, f := range finances {
			if entry.ID == f.DueDate {
				entry.Finances = append(entry.Finances, f)
			}
		}
		for _, e := range exams {
			if entry.ID == e.Date {
				entry.Exams = append(entry.Exams, e)
			}
		}
	}

	return entries
}
