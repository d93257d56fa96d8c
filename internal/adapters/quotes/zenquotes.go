package quotes

import (
	"encoding/json"
	"strings"

	"github.com/ewilliams-labs/moodboard/internal/adapters/chain"
	"github.com/ewilliams-labs/moodboard/internal/core/domain"
)

// zenQuote is one element of the ZenQuotes /api/random array.
type zenQuote struct {
	Q string `json:"q"`
	A string `json:"a"`
}

type zenQuotesParser struct{}

func (zenQuotesParser) Parse(body []byte) (domain.Quote, error) {
	var items []zenQuote
	if err := json.Unmarshal(body, &items); err != nil {
		return domain.Quote{}, err
	}
	if len(items) == 0 || strings.TrimSpace(items[0].Q) == "" {
		return domain.Quote{}, chain.ErrEmptyResult
	}
	return newQuote(items[0].Q, items[0].A), nil
}
