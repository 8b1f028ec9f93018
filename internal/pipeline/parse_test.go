package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantName     string
		wantPosition string
	}{
		{
			name:         "pipe LinkedIn suffix",
			raw:          "Jane Doe - Marketing Manager | LinkedIn",
			wantName:     "Jane Doe",
			wantPosition: "Marketing Manager",
		},
		{
			name:         "no hyphen",
			raw:          "Solo Name",
			wantName:     "Solo Name",
			wantPosition: "",
		},
		{
			name:         "en dash separator",
			raw:          "Jane Doe – SEO Manager | LinkedIn",
			wantName:     "Jane Doe",
			wantPosition: "SEO Manager",
		},
		{
			name:         "em dash separator",
			raw:          "Jane Doe — Editor in Chief | LinkedIn",
			wantName:     "Jane Doe",
			wantPosition: "Editor in Chief",
		},
		{
			name:         "hyphen LinkedIn suffix",
			raw:          "Jane Doe - Marketing Manager - LinkedIn",
			wantName:     "Jane Doe",
			wantPosition: "Marketing Manager",
		},
		{
			name:         "suffix tail after marker stripped",
			raw:          "Jane Doe - SEO Manager | LinkedIn · Acme Corp",
			wantName:     "Jane Doe",
			wantPosition: "SEO Manager",
		},
		{
			name:         "no suffix",
			raw:          "Jane Doe - Head of Content",
			wantName:     "Jane Doe",
			wantPosition: "Head of Content",
		},
		{
			name:         "lowercase linkedin not stripped",
			raw:          "Jane Doe - Growth at linkedin",
			wantName:     "Jane Doe",
			wantPosition: "Growth at linkedin",
		},
		{
			name:         "empty title",
			raw:          "",
			wantName:     "",
			wantPosition: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			name, position := ParseTitle(tc.raw)
			assert.Equal(t, tc.wantName, name)
			assert.Equal(t, tc.wantPosition, position)
		})
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		full      string
		wantFirst string
		wantLast  string
	}{
		{"first and last", "Jane Doe", "Jane", "Doe"},
		{"middle name uses last token", "Jane Q Public", "Jane", "Public"},
		{"single token", "Madonna", "Madonna", ""},
		{"single-char last name discarded", "Jane D", "Jane", ""},
		{"dotted initial kept", "Jane D.", "Jane", "D."},
		{"extra whitespace", "  Jane   Doe  ", "Jane", "Doe"},
		{"empty", "", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			first, last := SplitName(tc.full)
			assert.Equal(t, tc.wantFirst, first)
			assert.Equal(t, tc.wantLast, last)
		})
	}
}
