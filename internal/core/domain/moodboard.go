package domain

// Moodboard is the presentation payload for one request.
type Moodboard struct {
	QuoteText    string   `json:"quote_text"`
	Author       string   `json:"author"`
	GradientSpec string   `json:"gradient_spec"`
	Track        Track    `json:"track"`
	MoodLabel    string   `json:"mood_label"`
	Mood         Mood     `json:"mood"`
	Colors       ColorSet `json:"colors"`
}

// NewMoodboard assembles the payload from the pieces gathered for a request.
func NewMoodboard(q Quote, mood Mood, track Track, colors ColorSet) Moodboard {
	return Moodboard{
		QuoteText:    q.Text,
		Author:       q.Author,
		GradientSpec: colors.Gradient(),
		Track:        track,
		MoodLabel:    mood.Display(),
		Mood:         mood,
		Colors:       colors,
	}
}
