package models

// JournalEntry is the merged per-date view. ID is the canonical 10-character
// date key (yyyy-MM-dd) derived from whichever source record produced the
// entry. The three slices hold back-references to every record whose date
// equals ID; more than one entry may carry the same ID when several source
// collections contributed a record for that date.
type JournalEntry struct {
	ID       string
	Sessions []*Session
	Finances []*Finance
	Exams    []*Exam
}

// NewJournalEntry returns an entry keyed by the given canonical date.
func NewJournalEntry(id string) *JournalEntry {
	return &JournalEntry{ID: id}
}
