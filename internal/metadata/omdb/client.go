package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// PosterUnavailable is the provider sentinel for "no image".
const PosterUnavailable = "N/A"

// Details is the raw provider payload for one movie. It is kept generic so
// the full response round-trips to disk unchanged, with typed accessors for
// the fields the pipeline reads.
type Details map[string]any

// Found reports whether the provider matched the queried title.
func (d Details) Found() bool { return d.stringField("Response") == "True" }

// Title returns the provider's title for the match.
func (d Details) Title() string { return d.stringField("Title") }

// Year returns the release year, or "" when absent.
func (d Details) Year() string { return d.stringField("Year") }

// Poster returns the poster image URL, or "" when absent or the provider
// sentinel for no image.
func (d Details) Poster() string {
	poster := d.stringField("Poster")
	if poster == PosterUnavailable {
		return ""
	}
	return poster
}

// Genres splits the comma-separated Genre field, primary genre first.
func (d Details) Genres() []string {
	raw := d.stringField("Genre")
	if raw == "" || raw == "N/A" {
		return nil
	}
	parts := strings.Split(raw, ",")
	genres := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			genres = append(genres, part)
		}
	}
	return genres
}

func (d Details) stringField(key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

// Client provides title lookups against an OMDb-compatible API.
type Client struct {
	apiKey      string
	baseURL     string
	httpClient  *http.Client
	maxAttempts int
	retryDelay  time.Duration
	backoffUnit time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client. Inject the run-wide
// shared client here so all outbound traffic uses one session.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRetrySchedule overrides the flat delay applied after a rejected
// response and the unit used for exponential backoff after transport
// failures. Tests shrink these to keep runs fast.
func WithRetrySchedule(retryDelay, backoffUnit time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = retryDelay
		c.backoffUnit = backoffUnit
	}
}

// New creates an OMDb client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("omdb base url required")
	}
	client := &Client{
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		maxAttempts: 3,
		retryDelay:  time.Second,
		backoffUnit: time.Second,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Lookup queries the provider by title. Up to three attempts are made: a
// rejected or unmatched response waits the flat retry delay, a transport
// failure backs off exponentially (2^attempt units). After exhausting the
// budget Lookup returns (nil, nil) — absent metadata is a normal outcome,
// not an error. The error return is reserved for invalid input and context
// cancellation.
func (c *Client) Lookup(ctx context.Context, title string) (Details, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return nil, fmt.Errorf("parse omdb url: %w", err)
	}
	params := url.Values{}
	params.Set("t", title)
	params.Set("apikey", c.apiKey)
	endpoint.RawQuery = params.Encode()

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Transport failure: exponential backoff before the next try.
			if waitErr := sleep(ctx, c.backoffUnit<<attempt); waitErr != nil {
				return nil, waitErr
			}
			continue
		}

		details, ok := decodeMatch(resp)
		if ok {
			return details, nil
		}
		if waitErr := sleep(ctx, c.retryDelay); waitErr != nil {
			return nil, waitErr
		}
	}
	return nil, nil
}

func decodeMatch(resp *http.Response) (Details, bool) {
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, false
	}
	var payload Details
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, false
	}
	if !payload.Found() {
		return nil, false
	}
	return payload, true
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
