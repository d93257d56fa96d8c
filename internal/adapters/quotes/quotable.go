package quotes

import (
	"encoding/json"
	"strings"

	"github.com/ewilliams-labs/moodboard/internal/adapters/chain"
	"github.com/ewilliams-labs/moodboard/internal/core/domain"
)

type quotableQuote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

type quotableParser struct{}

func (quotableParser) Parse(body []byte) (domain.Quote, error) {
	var q quotableQuote
	if err := json.Unmarshal(body, &q); err != nil {
		return domain.Quote{}, err
	}
	if strings.TrimSpace(q.Content) == "" {
		return domain.Quote{}, chain.ErrEmptyResult
	}
	return newQuote(q.Content, q.Author), nil
}
