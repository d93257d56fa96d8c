package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ewilliams-labs/moodboard/internal/adapters/music"
	"github.com/ewilliams-labs/moodboard/internal/adapters/palette"
	"github.com/ewilliams-labs/moodboard/internal/adapters/quotes"
	"github.com/ewilliams-labs/moodboard/internal/config"
	"github.com/ewilliams-labs/moodboard/internal/core/services"
)

// newLogger builds the process logger at the configured level.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// newOrchestrator wires the three provider chains into the core service.
// This is where the concrete adapters meet the ports.
func newOrchestrator(cfg config.Config, logger *slog.Logger) (*services.Orchestrator, error) {
	// The chains apply their own per-attempt timeout.
	httpClient := &http.Client{}

	qs, err := quotes.NewSource(httpClient, logger, cfg.ProviderTimeout, cfg.QuotesConfig())
	if err != nil {
		return nil, fmt.Errorf("wire quotes: %w", err)
	}
	ms, err := music.NewSource(httpClient, logger, cfg.ProviderTimeout, cfg.MusicConfig())
	if err != nil {
		return nil, fmt.Errorf("wire music: %w", err)
	}
	ps, err := palette.NewSource(httpClient, logger, cfg.ProviderTimeout, cfg.PaletteConfig())
	if err != nil {
		return nil, fmt.Errorf("wire palette: %w", err)
	}
	return services.NewOrchestrator(qs, ms, ps, logger), nil
}
