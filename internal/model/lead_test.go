package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProcessedFlag(t *testing.T) {
	tests := []struct {
		cell string
		want bool
	}{
		{"true", true},
		{"True", true},
		{"TRUE", true},
		{"yes", true},
		{"YES", true},
		{"1", true},
		{" true ", true},
		{"", false},
		{"false", false},
		{"no", false},
		{"0", false},
		{"done", false},
		{"truey", false},
	}

	for _, tc := range tests {
		t.Run(tc.cell, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseProcessedFlag(tc.cell))
		})
	}
}

func TestInputRecordValid(t *testing.T) {
	assert.True(t, InputRecord{CompanyName: "Acme", URL: "acme.com"}.Valid())
	assert.False(t, InputRecord{CompanyName: "", URL: "acme.com"}.Valid())
	assert.False(t, InputRecord{CompanyName: "Acme", URL: "   "}.Valid())
	assert.False(t, InputRecord{}.Valid())
}

func TestCandidateProfileRow(t *testing.T) {
	c := CandidateProfile{
		Source:         SourceSearchEngine,
		Company:        "Acme",
		CompanyURL:     "acme.com",
		Name:           "Jane Doe",
		Email:          "jane@acme.com",
		EmailAddedDate: "2026-08-29",
		Position:       "Marketing Manager",
		ProfileLink:    "https://www.linkedin.com/in/janedoe",
	}

	row := c.Row()
	assert.Len(t, row, len(OutputHeader))
	assert.Equal(t, []string{
		"SearchEngine",
		"Acme",
		"acme.com",
		"Jane Doe",
		"jane@acme.com",
		"2026-08-29",
		"Marketing Manager",
		"https://www.linkedin.com/in/janedoe",
	}, row)
}

func TestRows(t *testing.T) {
	batch := []CandidateProfile{
		{Source: SourceSearchEngine, Name: "A"},
		{Source: SourceDomainDirectory, Name: "B"},
	}
	rows := Rows(batch)
	assert.Len(t, rows, 2)
	assert.Equal(t, "SearchEngine", rows[0][0])
	assert.Equal(t, "DomainDirectory", rows[1][0])
}

func TestRunSummaryRecord(t *testing.T) {
	var s RunSummary
	s.Record(RowSkipped)
	s.Record(RowSkippedNoData)
	s.Record(RowSaved)
	s.Record(RowSavedMarkFailed)

	assert.Equal(t, 4, s.Companies)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 1, s.SkippedNoData)
	assert.Equal(t, 2, s.Saved)
	assert.Equal(t, 1, s.MarkFailures)
}
