package palette

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ewilliams-labs/moodboard/internal/adapters/chain"
	"github.com/ewilliams-labs/moodboard/internal/core/domain"
)

const (
	DefaultColorAPIURL = "https://www.thecolorapi.com"

	colorAPIName = "TheColorAPI"
	schemeMode   = "analogic"
	schemeCount  = 5
)

type colorAPIResponse struct {
	Colors []struct {
		Hex struct {
			Value string `json:"value"`
		} `json:"hex"`
	} `json:"colors"`
}

func schemeURL(base, seed string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("color api: invalid base url: %w", err)
	}
	u = u.JoinPath("scheme")
	q := u.Query()
	q.Set("hex", seed)
	q.Set("mode", schemeMode)
	q.Set("count", fmt.Sprint(schemeCount))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// schemeParser samples three colors from a scheme response.
type schemeParser struct {
	pick chain.IntN
}

func (p schemeParser) Parse(body []byte) (domain.ColorSet, error) {
	var resp colorAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.ColorSet{}, err
	}
	if len(resp.Colors) == 0 {
		return domain.ColorSet{}, chain.ErrEmptyResult
	}

	// Repeated values would give a gradient with identical stops.
	colors := make([]string, 0, len(resp.Colors))
	seen := make(map[string]bool, len(resp.Colors))
	for _, c := range resp.Colors {
		hex, err := normalizeHex(c.Hex.Value)
		if err != nil {
			return domain.ColorSet{}, err
		}
		if seen[hex] {
			continue
		}
		seen[hex] = true
		colors = append(colors, hex)
	}

	var set domain.ColorSet
	if len(colors) < len(set) {
		return domain.ColorSet{}, fmt.Errorf("need %d distinct colors, got %d", len(set), len(colors))
	}
	for i, idx := range chain.Sample(p.pick, len(colors), len(set)) {
		set[i] = colors[idx]
	}
	return set, nil
}

// hexPattern is the only accepted shape; colorful.Hex alone tolerates short
// and trailing input.
var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// normalizeHex validates a color and formats it as "#RRGGBB".
func normalizeHex(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !hexPattern.MatchString(s) {
		return "", fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}
	return strings.ToUpper(c.Hex()), nil
}
