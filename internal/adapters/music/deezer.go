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
	DefaultDeezerURL = "https://api.deezer.com"

	deezerSource = "Deezer"
)

type deezerTrack struct {
	Title    string `json:"title"`
	Preview  string `json:"preview"`
	Duration int    `json:"duration"`
	Artist   struct {
		Name string `json:"name"`
	} `json:"artist"`
}

type deezerResponse struct {
	Data  []deezerTrack `json:"data"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func deezerURL(base string, mood domain.Mood) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("deezer: invalid base url: %w", err)
	}
	u = u.JoinPath("search")
	q := u.Query()
	q.Set("q", deezerQueries[mood])
	q.Set("limit", "10")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

type deezerParser struct {
	mood domain.Mood
	pick chain.IntN
}

func (p deezerParser) Parse(body []byte) (domain.Track, error) {
	var resp deezerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Track{}, err
	}
	// Deezer reports quota and query errors with a 200 status.
	if resp.Error != nil {
		return domain.Track{}, fmt.Errorf("api error %s: %s", resp.Error.Type, resp.Error.Message)
	}
	usable := make([]deezerTrack, 0, len(resp.Data))
	for _, t := range resp.Data {
		if strings.TrimSpace(t.Title) != "" {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return domain.Track{}, chain.ErrEmptyResult
	}
	t := usable[p.pick.OrDefault()(len(usable))]
	return domain.Track{
		Title:      t.Title,
		Artist:     t.Artist.Name,
		PreviewURL: t.Preview,
		Duration:   t.Duration,
		Mood:       p.mood,
		Source:     deezerSource,
	}, nil
}
