// Package music picks a track for a mood from Jamendo, then Deezer, falling
// back to a static placeholder per mood.
package music

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

// Config holds the provider endpoints and credentials.
type Config struct {
	JamendoURL      string
	JamendoClientID string
	DeezerURL       string
}

// Source is the music chain. Provider URLs depend on the mood, so a chain is
// built per call; all of its inputs are validated up front in NewSource.
type Source struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
	cfg        Config
	pick       chain.IntN
}

var _ ports.TrackSource = (*Source)(nil)

// Option customises a Source.
type Option func(*Source)

// WithPicker overrides how a track is chosen among a provider's results.
func WithPicker(pick chain.IntN) Option {
	return func(s *Source) { s.pick = pick }
}

// NewSource validates the configuration by building a chain for every mood.
func NewSource(httpClient *http.Client, logger *slog.Logger, timeout time.Duration, cfg Config, opts ...Option) (*Source, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(cfg.JamendoURL) == "" {
		cfg.JamendoURL = DefaultJamendoURL
	}
	if strings.TrimSpace(cfg.JamendoClientID) == "" {
		cfg.JamendoClientID = DefaultJamendoClientID
	}
	if strings.TrimSpace(cfg.DeezerURL) == "" {
		cfg.DeezerURL = DefaultDeezerURL
	}

	s := &Source{
		httpClient: httpClient,
		logger:     logger,
		timeout:    timeout,
		cfg:        cfg,
		pick:       chain.RandomIntN,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, m := range domain.Moods() {
		if _, err := s.chainFor(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// TrackForMood returns a provider track or FallbackTrack(mood).
func (s *Source) TrackForMood(ctx context.Context, mood domain.Mood) domain.Track {
	if !mood.Valid() {
		mood = domain.DefaultMood
	}
	c, err := s.chainFor(mood)
	if err != nil {
		// NewSource already built this chain once.
		panic(err)
	}

	res := c.Fetch(ctx, FallbackTrack(mood))
	if res.Fallback {
		s.logger.Warn("all music providers failed, using fallback track", "mood", mood)
		return res.Value
	}
	s.logger.Info("got track", "provider", res.Provider, "title", res.Value.Title, "artist", res.Value.Artist)
	return res.Value
}

func (s *Source) chainFor(mood domain.Mood) (*chain.Chain[domain.Track], error) {
	jURL, err := jamendoURL(s.cfg.JamendoURL, s.cfg.JamendoClientID, mood)
	if err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}
	dURL, err := deezerURL(s.cfg.DeezerURL, mood)
	if err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}
	c, err := chain.New(s.httpClient, s.logger, s.timeout,
		chain.Provider[domain.Track]{Name: jamendoSource, URL: jURL, Parser: jamendoParser{mood: mood, pick: s.pick}},
		chain.Provider[domain.Track]{Name: deezerSource, URL: dURL, Parser: deezerParser{mood: mood, pick: s.pick}},
	)
	if err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}
	return c, nil
}
