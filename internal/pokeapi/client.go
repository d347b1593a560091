// Package pokeapi is the client for the public PokeAPI REST service. It
// converts the API's JSON into the typed records in package creature and
// validates them at the boundary.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/arcanaland/pokecard/internal"
	"github.com/arcanaland/pokecard/internal/creature"
	"github.com/arcanaland/pokecard/internal/validator"
)

const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	DefaultUserAgent = "pokecard"

	// catalogLimit is large enough to enumerate every entry in one page.
	catalogLimit = 10000
)

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	Logger     *zap.Logger
}

// Client issues exactly one request per call. It has no cache and never
// retries; failures surface to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     *zap.Logger
}

func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
		userAgent:  cfg.UserAgent,
		logger:     cfg.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(c.baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	return c, nil
}

// FetchAllNames lists every canonical name in API enumeration order.
func (c *Client) FetchAllNames(ctx context.Context) ([]string, error) {
	endpoint := fmt.Sprintf("%s/pokemon?limit=%d", c.baseURL, catalogLimit)

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, internal.NewSourceUnavailableError("listing names", err)
	}
	if !isSuccess(status) {
		return nil, internal.NewSourceUnavailableError("listing names", statusError(endpoint, status))
	}

	var list resourceList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, internal.NewSourceUnavailableError("decoding name list", err)
	}

	return resourceNames(&list), nil
}

// FetchByName returns the attribute record for name and its species record.
// A non-success status for the record itself is a not-found error; the
// species is nil when the record carries no species reference.
func (c *Client) FetchByName(ctx context.Context, name string) (*creature.Record, *creature.Species, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, nil, internal.NewMissingParamError("FetchByName.name")
	}

	rec, err := c.fetchPokemon(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	if rec.SpeciesURL == "" {
		return rec, nil, nil
	}

	sp, err := c.fetchSpecies(ctx, rec.SpeciesURL)
	if err != nil {
		return nil, nil, err
	}

	return rec, sp, nil
}

// FetchNameByID returns the canonical name of the entry with the given id.
func (c *Client) FetchNameByID(ctx context.Context, id int) (string, error) {
	if id <= 0 {
		return "", internal.NewMissingParamError("FetchNameByID.id")
	}

	rec, err := c.fetchPokemon(ctx, strconv.Itoa(id))
	if err != nil {
		return "", err
	}

	return rec.Name, nil
}

// FetchSprite downloads the raw bytes behind a sprite URL.
func (c *Client) FetchSprite(ctx context.Context, spriteURL string) ([]byte, error) {
	if spriteURL == "" {
		return nil, internal.NewMissingParamError("FetchSprite.url")
	}

	body, status, err := c.get(ctx, spriteURL)
	if err != nil {
		return nil, internal.NewSourceUnavailableError("fetching sprite", err)
	}
	if !isSuccess(status) {
		return nil, internal.NewSourceUnavailableError("fetching sprite", statusError(spriteURL, status))
	}

	return body, nil
}

// FetchRecord returns the attribute record for name without validating it,
// so callers can inspect every problem a malformed record has. Transport and
// status failures map as in FetchByName; undecodable JSON is malformed.
func (c *Client) FetchRecord(ctx context.Context, name string) (*creature.Record, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, internal.NewMissingParamError("FetchRecord.name")
	}
	return c.decodePokemon(ctx, name)
}

func (c *Client) fetchPokemon(ctx context.Context, key string) (*creature.Record, error) {
	rec, err := c.decodePokemon(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := validator.Check(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *Client) decodePokemon(ctx context.Context, key string) (*creature.Record, error) {
	endpoint := fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(key))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, internal.NewSourceUnavailableError("fetching "+key, err)
	}
	if !isSuccess(status) {
		return nil, internal.NewNotFoundError(fmt.Sprintf("%s (status %d)", key, status))
	}

	var p pokemon
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, internal.NewMalformedRecordError(fmt.Sprintf("decoding %s: %v", key, err))
	}

	return apiPokemonToRecord(&p), nil
}

func (c *Client) fetchSpecies(ctx context.Context, speciesURL string) (*creature.Species, error) {
	body, status, err := c.get(ctx, speciesURL)
	if err != nil {
		return nil, internal.NewSourceUnavailableError("fetching species", err)
	}
	if !isSuccess(status) {
		return nil, internal.NewSourceUnavailableError("fetching species", statusError(speciesURL, status))
	}

	var s species
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, internal.NewMalformedRecordError(fmt.Sprintf("decoding species: %v", err))
	}

	return apiSpeciesToSpecies(&s), nil
}

// get performs a single GET and returns the body and status code. Only
// transport failures are returned as errors.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("pokeapi request", zap.String("url", endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("pokeapi response",
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)))

	return body, resp.StatusCode, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func statusError(endpoint string, status int) error {
	return fmt.Errorf("GET %s: unexpected status %d", endpoint, status)
}
