// Package pokeapi is a small client for the public PokeAPI REST service
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when PokeAPI answers 404
var ErrNotFound = errors.New("pokeapi: resource not found")

// Client calls PokeAPI over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new PokeAPI client; every call is bounded by timeout
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// ListPokemon fetches a page of the Pokemon index
func (c *Client) ListPokemon(ctx context.Context, offset, limit int) (*ResourceList, error) {
	path := "/pokemon?offset=" + strconv.Itoa(offset) + "&limit=" + strconv.Itoa(limit)
	var list ResourceList
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetGeneration fetches a generation with its species references
func (c *Client) GetGeneration(ctx context.Context, gen int) (*Generation, error) {
	var generation Generation
	if err := c.get(ctx, "/generation/"+strconv.Itoa(gen), &generation); err != nil {
		return nil, err
	}
	return &generation, nil
}

// GetPokemon fetches a single Pokemon
func (c *Client) GetPokemon(ctx context.Context, id int) (*Pokemon, error) {
	var pokemon Pokemon
	if err := c.get(ctx, "/pokemon/"+strconv.Itoa(id), &pokemon); err != nil {
		return nil, err
	}
	return &pokemon, nil
}

// GetSpecies fetches a single Pokemon species
func (c *Client) GetSpecies(ctx context.Context, id int) (*Species, error) {
	var species Species
	if err := c.get(ctx, "/pokemon-species/"+strconv.Itoa(id), &species); err != nil {
		return nil, err
	}
	return &species, nil
}

// GetPokemonWithSpecies fetches a Pokemon and its species concurrently.
// The first failure cancels the other request.
func (c *Client) GetPokemonWithSpecies(ctx context.Context, id int) (*Pokemon, *Species, error) {
	var (
		pokemon *Pokemon
		species *Species
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.GetPokemon(gctx, id)
		pokemon = p
		return err
	})
	g.Go(func() error {
		s, err := c.GetSpecies(gctx, id)
		species = s
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return pokemon, species, nil
}

// get performs a GET request against baseURL+path and decodes the JSON body into out
func (c *Client) get(ctx context.Context, path string, out any) error {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pokeapi request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("pokeapi call",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("pokeapi request %s failed: %s; body: %s", path, resp.Status, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode pokeapi response %s: %w", path, err)
	}
	return nil
}
