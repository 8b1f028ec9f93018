package model

import "strings"

// Source identifies which lookup produced a candidate.
type Source string

const (
	// SourceSearchEngine marks candidates discovered via profile search.
	SourceSearchEngine Source = "SearchEngine"
	// SourceDomainDirectory marks candidates from the domain-directory fallback.
	SourceDomainDirectory Source = "DomainDirectory"
)

// truthyFlags are the accepted spellings of a processed input row.
var truthyFlags = map[string]bool{"true": true, "yes": true, "1": true}

// InputRecord is one company row from the input worksheet.
type InputRecord struct {
	CompanyName string
	URL         string
	Processed   bool
	SheetRow    int // 1-based spreadsheet row, header included
}

// Valid reports whether the record carries enough data to be enriched.
func (r InputRecord) Valid() bool {
	return strings.TrimSpace(r.CompanyName) != "" && strings.TrimSpace(r.URL) != ""
}

// ParseProcessedFlag interprets the Processed cell of an input row.
// Any of "true", "yes", "1" (case-insensitive, trimmed) counts as processed.
func ParseProcessedFlag(cell string) bool {
	return truthyFlags[strings.ToLower(strings.TrimSpace(cell))]
}

// CandidateProfile is a discovered person potentially associated with a
// target company, with or without a resolved email. Immutable once its row
// has been appended to the output worksheet.
type CandidateProfile struct {
	Source         Source
	Company        string
	CompanyURL     string
	Name           string
	Email          string
	EmailAddedDate string // YYYY-MM-DD, empty until an email is resolved
	Position       string
	ProfileLink    string
}

// OutputHeader is the fixed output worksheet column order.
var OutputHeader = []string{
	"Source",
	"Company",
	"URL",
	"Name",
	"Email",
	"Date Email was added",
	"Position",
	"Linkedin",
}

// Row flattens the candidate into the output column order.
func (c CandidateProfile) Row() []string {
	return []string{
		string(c.Source),
		c.Company,
		c.CompanyURL,
		c.Name,
		c.Email,
		c.EmailAddedDate,
		c.Position,
		c.ProfileLink,
	}
}

// Rows flattens a candidate batch for a single append call.
func Rows(candidates []CandidateProfile) [][]string {
	rows := make([][]string, len(candidates))
	for i, c := range candidates {
		rows[i] = c.Row()
	}
	return rows
}
