package services

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ewilliams-labs/moodboard/internal/adapters/music"
	"github.com/ewilliams-labs/moodboard/internal/adapters/palette"
	"github.com/ewilliams-labs/moodboard/internal/adapters/quotes"
	"github.com/ewilliams-labs/moodboard/internal/core/domain"
)

type mockQuotes struct {
	quote domain.Quote
}

func (m *mockQuotes) RandomQuote(ctx context.Context) domain.Quote {
	return m.quote
}

type mockTracks struct {
	gotMood domain.Mood
	called  bool
}

func (m *mockTracks) TrackForMood(ctx context.Context, mood domain.Mood) domain.Track {
	m.called = true
	m.gotMood = mood
	return music.FallbackTrack(mood)
}

type mockPalettes struct {
	colors domain.ColorSet
}

func (m *mockPalettes) Palette(ctx context.Context) domain.ColorSet {
	return m.colors
}

// TestOrchestrator_Generate verifies the mood flows from quote to track.
func TestOrchestrator_Generate(t *testing.T) {
	tests := []struct {
		name      string
		quote     domain.Quote
		wantMood  domain.Mood
		wantLabel string
	}{
		{
			name:      "mixed keywords",
			quote:     domain.Quote{Text: "Never give up, believe in yourself and rise above every struggle", Author: "Anon"},
			wantMood:  domain.Inspirational,
			wantLabel: "Inspirational",
		},
		{
			name:      "calm quote",
			quote:     domain.Quote{Text: "Peace comes from within.", Author: "Buddha"},
			wantMood:  domain.Calm,
			wantLabel: "Calm",
		},
		{
			name:      "empty quote text",
			quote:     domain.Quote{Text: "", Author: ""},
			wantMood:  domain.Inspirational,
			wantLabel: "Inspirational",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tracks := &mockTracks{}
			colors := domain.ColorSet{"#FF69B4", "#FFD700", "#00FA9A"}
			o := NewOrchestrator(&mockQuotes{quote: tc.quote}, tracks, &mockPalettes{colors: colors}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

			mb := o.Generate(context.Background())

			if !tracks.called || tracks.gotMood != tc.wantMood {
				t.Fatalf("expected track lookup for %s, got %s (called=%v)", tc.wantMood, tracks.gotMood, tracks.called)
			}
			if mb.Mood != tc.wantMood || mb.MoodLabel != tc.wantLabel {
				t.Fatalf("mood mismatch: got %s/%q", mb.Mood, mb.MoodLabel)
			}
			if mb.QuoteText != tc.quote.Text || mb.Author != tc.quote.Author {
				t.Fatalf("quote mismatch: %+v", mb)
			}
			if mb.GradientSpec != "linear-gradient(135deg, #FF69B4, #FFD700, #00FA9A)" {
				t.Fatalf("unexpected gradient: %q", mb.GradientSpec)
			}
			if mb.Track.Mood != tc.wantMood {
				t.Fatalf("track mood mismatch: %s", mb.Track.Mood)
			}
		})
	}
}

// TestOrchestrator_GenerateWithProvidersDown wires the real sources against
// providers that all fail and checks every field still has a usable value.
func TestOrchestrator_GenerateWithProvidersDown(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	timeout := time.Second

	qs, err := quotes.NewSource(nil, logger, timeout, quotes.Config{ZenQuotesURL: down.URL, QuotableURL: down.URL})
	if err != nil {
		t.Fatalf("quotes: %v", err)
	}
	ms, err := music.NewSource(nil, logger, timeout, music.Config{JamendoURL: down.URL, DeezerURL: down.URL})
	if err != nil {
		t.Fatalf("music: %v", err)
	}
	ps, err := palette.NewSource(nil, logger, timeout, palette.Config{ColorAPIURL: down.URL})
	if err != nil {
		t.Fatalf("palette: %v", err)
	}

	mb := NewOrchestrator(qs, ms, ps, logger).Generate(context.Background())

	if mb.QuoteText != domain.DefaultQuote.Text || mb.Author != domain.DefaultQuote.Author {
		t.Fatalf("expected default quote, got %q by %q", mb.QuoteText, mb.Author)
	}
	// "Every moment is a fresh beginning." has no keywords.
	if mb.Mood != domain.Inspirational {
		t.Fatalf("expected inspirational, got %s", mb.Mood)
	}
	if mb.Track.Title != "Uplifting Sounds" || mb.Track.Playable() {
		t.Fatalf("expected fallback track, got %+v", mb.Track)
	}
	for _, c := range mb.Colors {
		if len(c) != 7 || c[0] != '#' {
			t.Fatalf("bad fallback color %q", c)
		}
	}
	if !bytes.Contains(logs.Bytes(), []byte("level=ERROR")) {
		t.Fatalf("expected quote exhaustion to log at error level, logs:\n%s", logs.String())
	}
}

func TestOrchestrator_EmptyQuoteStillProducesFallbacks(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer down.Close()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ms, err := music.NewSource(nil, logger, time.Second, music.Config{JamendoURL: down.URL, DeezerURL: down.URL})
	if err != nil {
		t.Fatalf("music: %v", err)
	}
	ps, err := palette.NewSource(nil, logger, time.Second, palette.Config{ColorAPIURL: down.URL})
	if err != nil {
		t.Fatalf("palette: %v", err)
	}

	mb := NewOrchestrator(&mockQuotes{}, ms, ps, logger).Generate(context.Background())

	if mb.Mood != domain.Inspirational {
		t.Fatalf("expected inspirational, got %s", mb.Mood)
	}
	if mb.Track.Title == "" || mb.Track.Artist == "" {
		t.Fatalf("expected non-empty fallback track, got %+v", mb.Track)
	}
	for _, c := range mb.Colors {
		if c == "" {
			t.Fatalf("expected three fallback colors, got %v", mb.Colors)
		}
	}
}

func TestOrchestrator_GenerateLogsEachStep(t *testing.T) {
	var logs bytes.Buffer
	quote := domain.Quote{Text: "Peace comes from within.", Author: "Buddha"}
	colors := domain.ColorSet{"#FF69B4", "#FFD700", "#00FA9A"}
	o := NewOrchestrator(&mockQuotes{quote: quote}, &mockTracks{}, &mockPalettes{colors: colors}, slog.New(slog.NewTextHandler(&logs, nil)))

	o.Generate(context.Background())

	for _, want := range []string{
		`msg=quote text="Peace comes from within." author=Buddha`,
		`msg="detected mood" mood=calm`,
		`msg=music title="Peaceful Moments" artist="Various Artists" source=Fallback`,
		`msg=colors colors="[#FF69B4 #FFD700 #00FA9A]"`,
	} {
		if !strings.Contains(logs.String(), want) {
			t.Fatalf("expected log line containing %q, got:\n%s", want, logs.String())
		}
	}
}

func TestPrefix(t *testing.T) {
	if got := prefix("short", 50); got != "short" {
		t.Fatalf("prefix kept %q", got)
	}
	if got := prefix("abcdef", 3); got != "abc..." {
		t.Fatalf("prefix truncated to %q", got)
	}
}

func TestOrchestrator_Classify(t *testing.T) {
	o := NewOrchestrator(nil, nil, nil, nil)
	mood, scores := o.Classify("Work hard in the dark")
	if mood != domain.Motivated {
		t.Fatalf("expected motivated, got %s", mood)
	}
	if scores[domain.Motivated] != 2 || scores[domain.Sad] != 1 {
		t.Fatalf("unexpected scores %v", scores)
	}
}
