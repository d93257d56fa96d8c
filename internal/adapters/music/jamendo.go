package music

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/ewilliams-labs/moodboard/internal/adapters/chain"
	"github.com/ewilliams-labs/moodboard/internal/core/domain"
)

const (
	DefaultJamendoURL      = "https://api.jamendo.com"
	DefaultJamendoClientID = "56d30c95"

	jamendoSource = "Jamendo"
)

type jamendoTrack struct {
	Name       string `json:"name"`
	ArtistName string `json:"artist_name"`
	Audio      string `json:"audio"`
	Duration   int    `json:"duration"`
}

type jamendoResponse struct {
	Headers struct {
		Status       string `json:"status"`
		ErrorMessage string `json:"error_message"`
	} `json:"headers"`
	Results []jamendoTrack `json:"results"`
}

func jamendoURL(base, clientID string, mood domain.Mood) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("jamendo: invalid base url: %w", err)
	}
	u = u.JoinPath("v3.0", "tracks/")
	q := u.Query()
	q.Set("client_id", clientID)
	q.Set("format", "json")
	q.Set("limit", "10")
	q.Set("tags", jamendoTags[mood])
	q.Set("include", "musicinfo")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

type jamendoParser struct {
	mood domain.Mood
	pick chain.IntN
}

func (p jamendoParser) Parse(body []byte) (domain.Track, error) {
	var resp jamendoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Track{}, err
	}
	if resp.Headers.Status != "" && resp.Headers.Status != "success" {
		return domain.Track{}, fmt.Errorf("api status %q: %s", resp.Headers.Status, resp.Headers.ErrorMessage)
	}
	usable := make([]jamendoTrack, 0, len(resp.Results))
	for _, t := range resp.Results {
		if strings.TrimSpace(t.Name) != "" {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return domain.Track{}, chain.ErrEmptyResult
	}
	t := usable[p.pick.OrDefault()(len(usable))]
	return domain.Track{
		Title:    t.Name,
		Artist:   t.ArtistName,
		AudioURL: t.Audio,
		Duration: t.Duration,
		Mood:     p.mood,
		Source:   jamendoSource,
	}, nil
}
