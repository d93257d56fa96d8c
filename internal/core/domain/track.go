package domain

// Track represents a musical track in the domain layer. AudioURL, PreviewURL
// and Duration depend on the provider and may be empty.
type Track struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Mood       Mood   `json:"mood"`
	Source     string `json:"source"`
	AudioURL   string `json:"audio_url,omitempty"`
	PreviewURL string `json:"preview_url,omitempty"`
	Duration   int    `json:"duration,omitempty"` // seconds
}

// Playable reports whether the track carries any audio reference.
func (t Track) Playable() bool {
	return t.StreamURL() != ""
}

// StreamURL returns the full audio URL if present, otherwise the preview.
func (t Track) StreamURL() string {
	if t.AudioURL != "" {
		return t.AudioURL
	}
	return t.PreviewURL
}
