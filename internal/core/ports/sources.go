package ports

import (
	"context"

	"github.com/ewilliams-labs/moodboard/internal/core/domain"
)

// The sources below never fail: when every upstream provider is unavailable
// they return their static fallback instead of an error.

// QuoteSource yields a random quote.
type QuoteSource interface {
	RandomQuote(ctx context.Context) domain.Quote
}

// TrackSource yields a track matching the given mood.
type TrackSource interface {
	TrackForMood(ctx context.Context, mood domain.Mood) domain.Track
}

// PaletteSource yields an ordered set of background colors.
type PaletteSource interface {
	Palette(ctx context.Context) domain.ColorSet
}
