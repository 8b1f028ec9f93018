package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/lead-hunter/internal/model"
	"github.com/sells-group/lead-hunter/pkg/hunter"
)

const dateLayout = "2006-01-02"

// Enricher resolves professional emails through the email-intelligence API.
type Enricher struct {
	client hunter.Client
	now    func() time.Time
}

// NewEnricher creates an Enricher over the given Hunter client.
func NewEnricher(client hunter.Client) *Enricher {
	return &Enricher{client: client, now: time.Now}
}

// ResolveByName looks up a single professional email for a person at the
// given domain. An empty email with a nil error means the service found
// none; a non-nil error means the call itself failed.
func (e *Enricher) ResolveByName(ctx context.Context, personName, domain string) (string, error) {
	first, last := SplitName(personName)
	if first == "" {
		return "", nil
	}

	resp, err := e.client.FindEmail(ctx, hunter.FindEmailRequest{
		Domain:    domain,
		FirstName: first,
		LastName:  last,
	})
	if err != nil {
		return "", eris.Wrap(err, "enrich: find email")
	}
	return resp.Data.Email, nil
}

// DomainContacts retrieves up to limit known contacts for the domain and
// maps them to candidates tagged DomainDirectory. The company field carries
// the domain reported by the service, and the email-added date is set only
// when a contact has an email.
func (e *Enricher) DomainContacts(ctx context.Context, domain string, limit int) ([]model.CandidateProfile, error) {
	resp, err := e.client.DomainSearch(ctx, domain, limit)
	if err != nil {
		return nil, eris.Wrap(err, "enrich: domain search")
	}

	emails := resp.Data.Emails
	if limit > 0 && len(emails) > limit {
		emails = emails[:limit]
	}

	contacts := make([]model.CandidateProfile, 0, len(emails))
	for _, em := range emails {
		c := model.CandidateProfile{
			Source:      model.SourceDomainDirectory,
			Company:     resp.Data.Domain,
			CompanyURL:  domain,
			Name:        strings.TrimSpace(em.FirstName + " " + em.LastName),
			Email:       em.Value,
			Position:    em.Position,
			ProfileLink: em.LinkedIn,
		}
		if c.Email != "" {
			c.EmailAddedDate = e.now().Format(dateLayout)
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}
