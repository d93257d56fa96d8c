// Package quotes fetches a random quote from ZenQuotes, then Quotable,
// falling back to domain.DefaultQuote.
package quotes

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ewilliams-labs/moodboard/internal/adapters/chain"
	"github.com/ewilliams-labs/moodboard/internal/core/domain"
	"github.com/ewilliams-labs/moodboard/internal/core/ports"
)

const (
	DefaultZenQuotesURL = "https://zenquotes.io"
	DefaultQuotableURL  = "https://api.quotable.io"

	unknownAuthor = "Unknown"
)

// Config holds the provider base URLs.
type Config struct {
	ZenQuotesURL string
	QuotableURL  string
}

// Source is the quote chain.
type Source struct {
	chain  *chain.Chain[domain.Quote]
	logger *slog.Logger
}

var _ ports.QuoteSource = (*Source)(nil)

// NewSource wires the ZenQuotes and Quotable providers in that order.
func NewSource(httpClient *http.Client, logger *slog.Logger, timeout time.Duration, cfg Config) (*Source, error) {
	if logger == nil {
		logger = slog.Default()
	}
	zenURL, err := url.JoinPath(orDefault(cfg.ZenQuotesURL, DefaultZenQuotesURL), "api", "random")
	if err != nil {
		return nil, fmt.Errorf("quotes: zenquotes url: %w", err)
	}
	quotableURL, err := url.JoinPath(orDefault(cfg.QuotableURL, DefaultQuotableURL), "random")
	if err != nil {
		return nil, fmt.Errorf("quotes: quotable url: %w", err)
	}

	c, err := chain.New(httpClient, logger, timeout,
		chain.Provider[domain.Quote]{Name: "ZenQuotes", URL: zenURL, Parser: zenQuotesParser{}},
		chain.Provider[domain.Quote]{Name: "Quotable", URL: quotableURL, Parser: quotableParser{}},
	)
	if err != nil {
		return nil, fmt.Errorf("quotes: %w", err)
	}
	return &Source{chain: c, logger: logger}, nil
}

// RandomQuote returns a provider quote or domain.DefaultQuote.
func (s *Source) RandomQuote(ctx context.Context) domain.Quote {
	res := s.chain.Fetch(ctx, domain.DefaultQuote)
	if res.Fallback {
		s.logger.Error("all quote providers failed, using default quote")
		return res.Value
	}
	s.logger.Info("got quote", "provider", res.Provider, "text", truncate(res.Value.Text, 50))
	return res.Value
}

func newQuote(text, author string) domain.Quote {
	author = strings.TrimSpace(author)
	if author == "" {
		author = unknownAuthor
	}
	return domain.Quote{Text: strings.TrimSpace(text), Author: author}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
