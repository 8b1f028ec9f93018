package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    []string
	}{
		{
			name:    "no duplicates",
			headers: []string{"companyName", "URL", "Processed"},
			want:    []string{"companyName", "URL", "Processed"},
		},
		{
			name:    "duplicates get numeric suffixes",
			headers: []string{"URL", "URL", "URL"},
			want:    []string{"URL", "URL_1", "URL_2"},
		},
		{
			name:    "mixed",
			headers: []string{"Name", "URL", "Name", "URL"},
			want:    []string{"Name", "URL", "Name_1", "URL_1"},
		},
		{
			name:    "empty headers deduped too",
			headers: []string{"", "", "Name"},
			want:    []string{"", "_1", "Name"},
		},
		{
			name:    "empty slice",
			headers: []string{},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DedupeHeaders(tc.headers))
		})
	}
}

func TestNew(t *testing.T) {
	tbl := New([][]string{
		{"companyName", "URL", "Processed"},
		{"Acme", "acme.com", ""},
		{"Globex", "globex.com", "true"},
	})

	assert.Equal(t, []string{"companyName", "URL", "Processed"}, tbl.Headers)
	assert.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Acme", tbl.Get(0, "companyName"))
	assert.Equal(t, "true", tbl.Get(1, "Processed"))
}

func TestNewEmpty(t *testing.T) {
	tbl := New(nil)
	assert.Empty(t, tbl.Headers)
	assert.Empty(t, tbl.Rows)
	assert.Equal(t, -1, tbl.FindColumn("anything"))
}

func TestFindColumn(t *testing.T) {
	tbl := New([][]string{{"A", "B", "A"}})
	assert.Equal(t, 0, tbl.FindColumn("A"))
	assert.Equal(t, 1, tbl.FindColumn("B"))
	assert.Equal(t, 2, tbl.FindColumn("A_1"))
	assert.Equal(t, -1, tbl.FindColumn("C"))
}

func TestGetRaggedRow(t *testing.T) {
	tbl := New([][]string{
		{"companyName", "URL", "Processed"},
		{"Acme"}, // short row: no URL or Processed cells
	})
	assert.Equal(t, "Acme", tbl.Get(0, "companyName"))
	assert.Equal(t, "", tbl.Get(0, "URL"))
	assert.Equal(t, "", tbl.Get(0, "Processed"))
	assert.Equal(t, "", tbl.Get(5, "companyName"))
}

func TestSheetRow(t *testing.T) {
	tbl := New([][]string{{"A"}, {"x"}, {"y"}})
	assert.Equal(t, 2, tbl.SheetRow(0))
	assert.Equal(t, 3, tbl.SheetRow(1))
}
