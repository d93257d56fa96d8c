package services

import (
	"context"
	"log/slog"

	"github.com/ewilliams-labs/moodboard/internal/core/domain"
	"github.com/ewilliams-labs/moodboard/internal/core/ports"
)

// Orchestrator coordinates the quote, music and palette sources.
type Orchestrator struct {
	quotes   ports.QuoteSource
	tracks   ports.TrackSource
	palettes ports.PaletteSource
	logger   *slog.Logger
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator(quotes ports.QuoteSource, tracks ports.TrackSource, palettes ports.PaletteSource, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		quotes:   quotes,
		tracks:   tracks,
		palettes: palettes,
		logger:   logger,
	}
}

// Generate builds one moodboard. The steps run in order because the track
// depends on the mood, which depends on the quote. It never fails: each
// source substitutes its own fallback.
func (o *Orchestrator) Generate(ctx context.Context) domain.Moodboard {
	// 1. Quote
	quote := o.quotes.RandomQuote(ctx)
	o.logger.Info("quote", "text", prefix(quote.Text, 50), "author", quote.Author)

	// 2. Mood (pure domain logic)
	mood := domain.Classify(quote.Text)
	o.logger.Info("detected mood", "mood", mood)

	// 3. Track for the mood
	track := o.tracks.TrackForMood(ctx, mood)
	o.logger.Info("music", "title", track.Title, "artist", track.Artist, "source", track.Source)

	// 4. Colors
	colors := o.palettes.Palette(ctx)
	o.logger.Info("colors", "colors", colors[:])

	return domain.NewMoodboard(quote, mood, track, colors)
}

// Classify exposes the classifier with its per-mood scores.
func (o *Orchestrator) Classify(text string) (domain.Mood, [domain.MoodCount]int) {
	return domain.Classify(text), domain.Scores(text)
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
