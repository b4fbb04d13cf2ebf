package countries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/HIDORAKAI002/flagbot/internal/models"
	"github.com/HIDORAKAI002/flagbot/internal/rng"
)

// Route inside the restcountries API returning only the fields we consume
const routeAll = "/v3.1/all?fields=name,flags,population"

// ErrNoCountry is returned when no country satisfies the difficulty tier
var ErrNoCountry = errors.New("no country available for difficulty")

// Config holds configuration for the restcountries client
type Config struct {
	// BaseURL of the restcountries deployment
	BaseURL string

	// Timeout for a single fetch
	Timeout time.Duration

	// CacheTTL is how long the downloaded country list is reused
	CacheTTL time.Duration

	// Roller picks the random country
	Roller *rng.Roller

	// Optional HTTP client override for testing
	HTTPClient *http.Client
}

// Client fetches quiz items from the restcountries API
type Client struct {
	baseURL    string
	cacheTTL   time.Duration
	roller     *rng.Roller
	httpClient *http.Client

	mu        sync.Mutex
	cached    []models.Country
	fetchedAt time.Time
}

// countryPayload matches the restcountries v3.1 wire format
type countryPayload struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Flags struct {
		PNG string `json:"png"`
	} `json:"flags"`
	Population int64 `json:"population"`
}

// NewClient creates a new restcountries client
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		cacheTTL:   cacheTTL,
		roller:     cfg.Roller,
		httpClient: httpClient,
	}, nil
}

// Fetch returns a random country meeting the difficulty's population threshold
func (c *Client) Fetch(ctx context.Context, difficulty models.Difficulty) (*models.Country, error) {
	all, err := c.countries(ctx)
	if err != nil {
		return nil, err
	}

	minPopulation := difficulty.MinPopulation()
	eligible := make([]models.Country, 0, len(all))
	for _, country := range all {
		if country.Population >= minPopulation {
			eligible = append(eligible, country)
		}
	}

	if len(eligible) == 0 {
		return nil, ErrNoCountry
	}

	picked := eligible[c.roller.IntBetween(0, len(eligible)-1)]
	log.Debug().
		Str("country", picked.Name).
		Str("difficulty", string(difficulty)).
		Msg("picked quiz country")

	return &picked, nil
}

// countries returns the cached country list, downloading it when stale
func (c *Client) countries(ctx context.Context) ([]models.Country, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && time.Since(c.fetchedAt) < c.cacheTTL {
		return c.cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+routeAll, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build countries request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch countries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("countries request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read countries response: %w", err)
	}

	var payload []countryPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode countries response: %w", err)
	}

	countries := make([]models.Country, 0, len(payload))
	for _, p := range payload {
		if p.Name.Common == "" || p.Flags.PNG == "" {
			continue
		}
		countries = append(countries, models.Country{
			Name:       p.Name.Common,
			FlagURL:    p.Flags.PNG,
			Population: p.Population,
		})
	}

	c.cached = countries
	c.fetchedAt = time.Now()
	log.Debug().Int("count", len(countries)).Msg("refreshed country list")

	return countries, nil
}
