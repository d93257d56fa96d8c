// Package chain implements an ordered fallback over HTTP JSON providers.
// Each provider gets exactly one attempt under a bounded timeout; the first
// one that answers with a usable result wins, and when none do the caller's
// fallback value is returned.
package chain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds a single provider attempt.
const DefaultTimeout = 5 * time.Second

// maxBodyBytes caps how much of a provider response is read.
const maxBodyBytes = 1 << 20

// ErrEmptyResult is returned by parsers when a response decoded cleanly but
// held nothing usable.
var ErrEmptyResult = errors.New("empty result")

// StatusError reports a non-2xx provider response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Parser turns a raw provider response body into the target shape.
type Parser[T any] interface {
	Parse(body []byte) (T, error)
}

// Provider is one upstream source in a chain.
type Provider[T any] struct {
	Name   string
	URL    string
	Parser Parser[T]
}

func (p Provider[T]) validate() error {
	if p.Name == "" {
		return errors.New("chain: provider name is required")
	}
	if p.Parser == nil {
		return fmt.Errorf("chain: provider %s has no parser", p.Name)
	}
	u, err := url.Parse(p.URL)
	if err != nil {
		return fmt.Errorf("chain: provider %s: invalid url: %w", p.Name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("chain: provider %s: unsupported url scheme %q", p.Name, u.Scheme)
	}
	return nil
}

// Result is the outcome of a chain run.
type Result[T any] struct {
	Value T
	// Provider is the name of the provider that answered; empty on fallback.
	Provider string
	Fallback bool
}

// Chain tries its providers in order.
type Chain[T any] struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
	providers  []Provider[T]
}

// New validates the providers and builds a chain. A nil client or logger
// falls back to the package defaults; a non-positive timeout becomes
// DefaultTimeout. An empty provider list is allowed and always yields the
// fallback.
func New[T any](httpClient *http.Client, logger *slog.Logger, timeout time.Duration, providers ...Provider[T]) (*Chain[T], error) {
	for _, p := range providers {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Chain[T]{
		httpClient: httpClient,
		logger:     logger,
		timeout:    timeout,
		providers:  providers,
	}, nil
}

// Fetch returns the first provider result that parses, or fallback.
func (c *Chain[T]) Fetch(ctx context.Context, fallback T) Result[T] {
	for _, p := range c.providers {
		v, err := c.attempt(ctx, p)
		if err != nil {
			c.logger.Warn("provider failed", "provider", p.Name, "error", err)
			continue
		}
		c.logger.Debug("provider answered", "provider", p.Name)
		return Result[T]{Value: v, Provider: p.Name}
	}
	return Result[T]{Value: fallback, Fallback: true}
}

func (c *Chain[T]) attempt(ctx context.Context, p Provider[T]) (T, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return zero, fmt.Errorf("%s: build request: %w", p.Name, err)
	}
	req.Header.Set("Accept", "application/json")

	// #nosec G107 -- URL comes from validated provider configuration
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s: request failed: %w", p.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, fmt.Errorf("%s: %w", p.Name, &StatusError{StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return zero, fmt.Errorf("%s: read body: %w", p.Name, err)
	}

	v, err := p.Parser.Parse(body)
	if err != nil {
		return zero, fmt.Errorf("%s: parse: %w", p.Name, err)
	}
	return v, nil
}
