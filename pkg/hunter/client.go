// Package hunter provides a client for the Hunter.io email intelligence API.
package hunter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.hunter.io/v2"

// Client performs Hunter.io lookups.
type Client interface {
	// FindEmail resolves a single professional email from a name and domain.
	FindEmail(ctx context.Context, req FindEmailRequest) (*FindEmailResponse, error)
	// DomainSearch lists known contacts for a domain, up to limit.
	DomainSearch(ctx context.Context, domain string, limit int) (*DomainSearchResponse, error)
}

// FindEmailRequest identifies the person to look up. LastName may be empty.
type FindEmailRequest struct {
	Domain    string
	FirstName string
	LastName  string
}

// FindEmailResponse is the parsed GET /email-finder response.
type FindEmailResponse struct {
	Data FindEmailData `json:"data"`
}

// FindEmailData holds the resolved email, empty when Hunter found none.
type FindEmailData struct {
	Email string `json:"email"`
	Score int    `json:"score"`
}

// DomainSearchResponse is the parsed GET /domain-search response.
type DomainSearchResponse struct {
	Data DomainSearchData `json:"data"`
}

// DomainSearchData holds the organization's known contacts.
type DomainSearchData struct {
	Domain string  `json:"domain"`
	Emails []Email `json:"emails"`
}

// Email is a single contact from a domain search.
type Email struct {
	Value     string `json:"value"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	LinkedIn  string `json:"linkedin"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit sets the requests-per-second limit for API calls.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Hunter.io API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(10, 1),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) FindEmail(ctx context.Context, req FindEmailRequest) (*FindEmailResponse, error) {
	params := url.Values{}
	params.Set("domain", req.Domain)
	params.Set("first_name", req.FirstName)
	if req.LastName != "" {
		params.Set("last_name", req.LastName)
	}

	var result FindEmailResponse
	if err := c.get(ctx, "/email-finder", params, &result); err != nil {
		return nil, eris.Wrap(err, "hunter: email finder")
	}
	return &result, nil
}

func (c *httpClient) DomainSearch(ctx context.Context, domain string, limit int) (*DomainSearchResponse, error) {
	params := url.Values{}
	params.Set("domain", domain)
	params.Set("limit", strconv.Itoa(limit))

	var result DomainSearchResponse
	if err := c.get(ctx, "/domain-search", params, &result); err != nil {
		return nil, eris.Wrap(err, "hunter: domain search")
	}
	return &result, nil
}

func (c *httpClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "rate limit wait")
	}

	params.Set("api_key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return eris.Wrap(err, "create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "read response")
	}

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrap(err, "unmarshal response")
	}
	return nil
}
