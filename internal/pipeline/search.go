package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/lead-hunter/internal/model"
	"github.com/sells-group/lead-hunter/pkg/serper"
)

// excludedSegments are URL path segments that mark a hit as a job listing,
// feed post, or company page rather than a personal profile.
var excludedSegments = map[string]bool{
	"jobs":    true,
	"posts":   true,
	"company": true,
}

// ProfileSearch discovers candidate profiles for a company via web search.
type ProfileSearch struct {
	client     serper.Client
	titles     []string
	maxResults int
	perPage    int
	maxPages   int
}

// NewProfileSearch creates a ProfileSearch over the given search client and
// job-title allowlist.
func NewProfileSearch(client serper.Client, titles []string, maxResults, perPage, maxPages int) *ProfileSearch {
	return &ProfileSearch{
		client:     client,
		titles:     titles,
		maxResults: maxResults,
		perPage:    perPage,
		maxPages:   maxPages,
	}
}

// Search queries for personal profile pages matching the company and any of
// the target job titles, capped at maxResults qualifying candidates.
//
// Pages are fetched in order and the walk stops at the first page that
// yields at least one qualifying hit; a failed page is logged and counts as
// zero results for that page.
func (s *ProfileSearch) Search(ctx context.Context, companyName, companyURL string) ([]model.CandidateProfile, error) {
	log := zap.L().With(zap.String("company", companyName))
	query := s.buildQuery(companyName)

	var candidates []model.CandidateProfile
	for page := 1; page <= s.maxPages; page++ {
		resp, err := s.client.Search(ctx, serper.SearchRequest{
			Query: query,
			Num:   s.perPage,
			Page:  page,
		})
		if err != nil {
			log.Warn("search: page failed", zap.Int("page", page), zap.Error(err))
			continue
		}

		for _, hit := range resp.Organic {
			if !s.qualifies(hit, companyName, companyURL) {
				continue
			}
			name, position := ParseTitle(hit.Title)
			candidates = append(candidates, model.CandidateProfile{
				Source:      model.SourceSearchEngine,
				Company:     companyName,
				CompanyURL:  companyURL,
				Name:        name,
				Position:    position,
				ProfileLink: hit.Link,
			})
		}

		if len(candidates) > 0 {
			break
		}
	}

	if len(candidates) > s.maxResults {
		candidates = candidates[:s.maxResults]
	}
	return candidates, nil
}

// buildQuery restricts the search to profile pages, ORs the quoted job
// titles, and requires the company name.
func (s *ProfileSearch) buildQuery(companyName string) string {
	quoted := make([]string, len(s.titles))
	for i, t := range s.titles {
		quoted[i] = `"` + t + `"`
	}
	return fmt.Sprintf(`site:linkedin.com/in (%s) "%s"`, strings.Join(quoted, " OR "), companyName)
}

// qualifies keeps a hit only if the link is a personal profile page and the
// snippet mentions the company by name or URL.
func (s *ProfileSearch) qualifies(hit serper.OrganicResult, companyName, companyURL string) bool {
	if !isProfileLink(hit.Link) {
		return false
	}
	snippet := strings.ToLower(hit.Snippet)
	return strings.Contains(snippet, strings.ToLower(companyName)) ||
		strings.Contains(snippet, strings.ToLower(companyURL))
}

// isProfileLink checks the link by path segments, not substrings: the first
// segment must be "in" with a profile slug after it, and no segment may
// indicate a job listing, feed post, or company page.
func isProfileLink(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host != "linkedin.com" && !strings.HasSuffix(host, ".linkedin.com") {
		return false
	}

	segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	if len(segments) < 2 || segments[0] != "in" {
		return false
	}
	for _, seg := range segments {
		if excludedSegments[strings.ToLower(seg)] {
			return false
		}
	}
	return true
}
