package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// dashNormalizer folds en and em dashes into plain hyphens before splitting.
var dashNormalizer = strings.NewReplacer("–", "-", "—", "-")

// linkedInSuffix matches the trailing "| LinkedIn ..." or "- LinkedIn ..."
// marker on a search-result title. The "LinkedIn" literal is case-sensitive.
var linkedInSuffix = regexp.MustCompile(`(\||-)?\s*LinkedIn.*`)

// ParseTitle splits a raw search-result title into a person's name and
// position. A title with no hyphen yields an empty position.
func ParseTitle(raw string) (name, position string) {
	parts := strings.SplitN(dashNormalizer.Replace(raw), "-", 2)
	name = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		position = strings.TrimSpace(linkedInSuffix.ReplaceAllString(parts[1], ""))
	}
	return name, position
}

// SplitName derives first and last name tokens for an email lookup. A last
// name of a single character is an initial and is discarded; a single-token
// name becomes the first name with no last name.
func SplitName(full string) (first, last string) {
	tokens := strings.Fields(full)
	switch {
	case len(tokens) >= 2:
		first, last = tokens[0], tokens[len(tokens)-1]
		if utf8.RuneCountInString(last) <= 1 {
			last = ""
		}
	case len(tokens) == 1:
		first = tokens[0]
	}
	return first, last
}
