// Package palette builds a three-color background from The Color API,
// seeded with a random bright color, with a seed-only fallback.
package palette

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ewilliams-labs/moodboard/internal/adapters/chain"
	"github.com/ewilliams-labs/moodboard/internal/core/domain"
	"github.com/ewilliams-labs/moodboard/internal/core/ports"
)

// Seeds are the bright colors a scheme is generated from. They double as the
// fallback palette.
var Seeds = [...]string{
	"FF69B4", "FFD700", "00FA9A", "FF4500", "00FFFF",
	"FF6347", "9370DB", "20B2AA", "FF1493", "32CD32",
}

// Config holds the provider endpoint.
type Config struct {
	ColorAPIURL string
}

// Source is the color chain.
type Source struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
	baseURL    string
	pick       chain.IntN
}

var _ ports.PaletteSource = (*Source)(nil)

// Option customises a Source.
type Option func(*Source)

// WithPicker overrides every random choice: the seed, the scheme sample and
// the fallback sample.
func WithPicker(pick chain.IntN) Option {
	return func(s *Source) { s.pick = pick }
}

// NewSource validates the endpoint against every seed.
func NewSource(httpClient *http.Client, logger *slog.Logger, timeout time.Duration, cfg Config, opts ...Option) (*Source, error) {
	if logger == nil {
		logger = slog.Default()
	}
	base := cfg.ColorAPIURL
	if strings.TrimSpace(base) == "" {
		base = DefaultColorAPIURL
	}
	s := &Source{
		httpClient: httpClient,
		logger:     logger,
		timeout:    timeout,
		baseURL:    base,
		pick:       chain.RandomIntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, seed := range Seeds {
		if _, err := s.chainFor(seed); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Palette returns three colors from the scheme API or three distinct seeds.
func (s *Source) Palette(ctx context.Context) domain.ColorSet {
	seed := Seeds[s.pick.OrDefault()(len(Seeds))]
	c, err := s.chainFor(seed)
	if err != nil {
		// NewSource already built a chain for every seed.
		panic(err)
	}

	res := c.Fetch(ctx, s.fallback())
	if res.Fallback {
		s.logger.Warn("color provider failed, using fallback colors", "colors", res.Value[:])
		return res.Value
	}
	s.logger.Info("got colors", "provider", res.Provider, "seed", seed, "colors", res.Value[:])
	return res.Value
}

// fallback draws three distinct seeds.
func (s *Source) fallback() domain.ColorSet {
	var set domain.ColorSet
	for i, idx := range chain.Sample(s.pick, len(Seeds), len(set)) {
		set[i] = "#" + Seeds[idx]
	}
	return set
}

func (s *Source) chainFor(seed string) (*chain.Chain[domain.ColorSet], error) {
	u, err := schemeURL(s.baseURL, seed)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	c, err := chain.New(s.httpClient, s.logger, s.timeout,
		chain.Provider[domain.ColorSet]{Name: colorAPIName, URL: u, Parser: schemeParser{pick: s.pick}},
	)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	return c, nil
}
