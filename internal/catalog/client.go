// Package catalog talks to the external card-data source: the card API for
// sets and per-set card listings, and the data host for booster-structure
// documents. Services consume the Provider interface so pool generation
// stays testable without network access.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/benson/poolbuilder/internal/domain"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/time/rate"
)

// Provider is the catalog capability consumed by the pool pipeline.
type Provider interface {
	Sets(ctx context.Context) ([]domain.Set, error)
	SetCards(ctx context.Context, code string) ([]domain.Card, error)
	// BoosterDefinition returns (nil, nil) when the set has no structured
	// definition; callers fall back to legacy generation.
	BoosterDefinition(ctx context.Context, code string) (*domain.BoosterDefinition, error)
}

const (
	// The card API asks for 50-100ms between requests.
	requestInterval = 100 * time.Millisecond

	defaultMaxRetries = 3
	defaultRetryDelay = 2 * time.Second

	cacheSize = 16
)

// Client fetches catalog data over HTTP. Responses are cached per set code;
// requests are rate limited and retried on 429.
type Client struct {
	apiBase    string
	dataBase   string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
	retryDelay time.Duration

	cards *lru.Cache
	defs  *lru.Cache
	sets  *lru.Cache
}

// NewClient builds a catalog client for the given API and data base URLs.
func NewClient(apiBase, dataBase string) *Client {
	cards, _ := lru.New(cacheSize)
	defs, _ := lru.New(cacheSize)
	sets, _ := lru.New(1)
	return &Client{
		apiBase:  apiBase,
		dataBase: dataBase,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter:    rate.NewLimiter(rate.Every(requestInterval), 1),
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		cards:      cards,
		defs:       defs,
		sets:       sets,
	}
}

// WithRetry overrides the 429 retry policy (the pre-generation job uses a
// longer delay than interactive callers).
func (c *Client) WithRetry(maxRetries int, delay time.Duration) *Client {
	c.maxRetries = maxRetries
	c.retryDelay = delay
	return c
}

type setsResponse struct {
	Data []struct {
		Code       string `json:"code"`
		Name       string `json:"name"`
		ReleasedAt string `json:"released_at"`
	} `json:"data"`
}

func (c *Client) Sets(ctx context.Context) ([]domain.Set, error) {
	if cached, ok := c.sets.Get("sets"); ok {
		return cached.([]domain.Set), nil
	}

	var resp setsResponse
	if err := c.getJSON(ctx, c.apiBase+"/sets", &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch sets: %w", err)
	}

	sets := make([]domain.Set, 0, len(resp.Data))
	for _, s := range resp.Data {
		released, err := time.Parse("2006-01-02", s.ReleasedAt)
		if err != nil {
			continue
		}
		sets = append(sets, domain.Set{Code: s.Code, Name: s.Name, ReleasedAt: released})
	}

	c.sets.Add("sets", sets)
	return sets, nil
}

type cardPage struct {
	Data     []domain.Card `json:"data"`
	HasMore  bool          `json:"has_more"`
	NextPage string        `json:"next_page"`
}

func (c *Client) SetCards(ctx context.Context, code string) ([]domain.Card, error) {
	if cached, ok := c.cards.Get(code); ok {
		return cached.([]domain.Card), nil
	}

	pageURL := fmt.Sprintf("%s/cards/search?order=set&unique=prints&q=%s",
		c.apiBase, url.QueryEscape("e:"+code))

	var cards []domain.Card
	for pageURL != "" {
		var page cardPage
		if err := c.getJSON(ctx, pageURL, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch cards for set %s: %w", code, err)
		}
		cards = append(cards, page.Data...)

		pageURL = ""
		if page.HasMore {
			pageURL = page.NextPage
		}
	}

	c.cards.Add(code, cards)
	return cards, nil
}

func (c *Client) BoosterDefinition(ctx context.Context, code string) (*domain.BoosterDefinition, error) {
	if cached, ok := c.defs.Get(code); ok {
		return cached.(*domain.BoosterDefinition), nil
	}

	defURL := fmt.Sprintf("%s/boosters/%s.json", c.dataBase, code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, defURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booster definition for %s: %w", code, err)
	}
	defer resp.Body.Close()

	// Sets without a structured definition are served by the legacy path.
	if resp.StatusCode == http.StatusNotFound {
		c.defs.Add(code, (*domain.BoosterDefinition)(nil))
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("booster definition for %s: unexpected status %d", code, resp.StatusCode)
	}

	var def domain.BoosterDefinition
	if err := json.NewDecoder(resp.Body).Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to decode booster definition for %s: %w", code, err)
	}
	if def.SetCode == "" {
		def.SetCode = code
	}

	c.defs.Add(code, &def)
	return &def, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// do issues a rate-limited request, retrying on 429 up to the configured
// bound. Any other failure propagates to the caller immediately.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		resp.Body.Close()

		if attempt >= c.maxRetries {
			return nil, fmt.Errorf("rate limited after %d attempts: %s", attempt+1, req.URL)
		}

		select {
		case <-time.After(c.retryDelay):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}
}
