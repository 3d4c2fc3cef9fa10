package journal

import (
	"testing"

	"github.com/directdev/portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_SingleFinance(t *testing.T) {
	finances := []*models.Finance{{DueDate: "2024-03-10", Amount: 500}}

	entries := Merge(nil, finances, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "2024-03-10", entries[0].ID)
	assert.Len(t, entries[0].Finances, 1)
	assert.Empty(t, entries[0].Sessions)
	assert.Empty(t, entries[0].Exams)
}

func TestMerge_SameDateProducesDuplicateEntries(t *testing.T) {
	finances := []*models.Finance{{DueDate: "2024-03-10", Amount: 500}}
	exams := []*models.Exam{{Date: "2024-03-10", CourseID: "COMP6047"}}

	entries := Merge(exams, finances, nil)

	// One entry per source record, no dedup by date.
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "2024-03-10", entry.ID)
		assert.Len(t, entry.Finances, 1, "each duplicate is cross-populated with the finance item")
		assert.Len(t, entry.Exams, 1, "each duplicate is cross-populated with the exam")
		assert.Empty(t, entry.Sessions)
	}
}

func TestMerge_ThreeSourcesSameDate(t *testing.T) {
	finances := []*models.Finance{{DueDate: "2024-03-10"}}
	exams := []*models.Exam{{Date: "2024-03-10"}}
	sessions := []*models.Session{{Date: "2024-03-10"}}

	entries := Merge(exams, finances, sessions)

	require.Len(t, entries, 3)
	for _, entry := range entries {
		assert.Equal(t, "2024-03-10", entry.ID)
		assert.Len(t, entry.Sessions, 1)
		assert.Len(t, entry.Finances, 1)
		assert.Len(t, entry.Exams, 1)
	}
}

func TestMerge_DistinctDatesStaySeparate(t *testing.T) {
	finances := []*models.Finance{{DueDate: "2024-03-10"}}
	sessions := []*models.Session{
		{Date: "2024-03-11", CourseID: "MATH6025"},
		{Date: "2024-03-11", CourseID: "COMP6047"},
	}

	entries := Merge(nil, finances, sessions)

	require.Len(t, entries, 3)

	assert.Equal(t, "2024-03-10", entries[0].ID)
	assert.Len(t, entries[0].Finances, 1)
	assert.Empty(t, entries[0].Sessions)

	// Both session-derived entries collect both sessions for their date.
	for _, entry := range entries[1:] {
		assert.Equal(t, "2024-03-11", entry.ID)
		assert.Len(t, entry.Sessions, 2)
		assert.Empty(t, entry.Finances)
	}
}

func TestMerge_EntryOrderIsFinanceExamSession(t *testing.T) {
	finances := []*models.Finance{{DueDate: "2024-01-01"}}
	exams := []*models.Exam{{Date: "2024-01-02"}}
	sessions := []*models.Session{{Date: "2024-01-03"}}

	entries := Merge(exams, finances, sessions)

	require.Len(t, entries, 3)
	assert.Equal(t, "2024-01-01", entries[0].ID)
	assert.Equal(t, "2024-01-02", entries[1].ID)
	assert.Equal(t, "2024-01-03", entries[2].ID)
}

func TestMerge_Empty(t *testing.T) {
	assert.Empty(t, Merge(nil, nil, nil))
}

func TestDateKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "canonical date", raw: "2024-03-10", want: "2024-03-10"},
		{name: "time suffix dropped", raw: "2024-03-10 08:20:00", want: "2024-03-10"},
		{name: "iso timestamp", raw: "2024-03-10T08:20:00Z", want: "2024-03-10"},
		{name: "unparseable kept truncated", raw: "not-a-date-at-all", want: "not-a-date"},
		{name: "short garbage kept", raw: "???", want: "???"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateKey(tt.raw))
		})
	}
}

// A record whose raw date carries a time suffix keys an entry but does not
// attach to it: correlation compares raw dates against canonical ids.
func TestMerge_NonCanonicalDateDoesNotCorrelate(t *testing.T) {
	exams := []*models.Exam{{Date: "2024-03-10 08:20:00"}}

	entries := Merge(exams, nil, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "2024-03-10", entries[0].ID)
	assert.Empty(t, entries[0].Exams)
}
