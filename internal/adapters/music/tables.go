package music

import "github.com/ewilliams-labs/moodboard/internal/core/domain"

// jamendoTags maps each mood to the Jamendo tag searched for it.
var jamendoTags = [domain.MoodCount]string{
	domain.Happy:         "happy",
	domain.Motivated:     "energetic",
	domain.Calm:          "chill",
	domain.Energetic:     "upbeat",
	domain.Sad:           "melancholic",
	domain.Inspirational: "uplifting",
}

// deezerQueries maps each mood to a Deezer free-text search.
var deezerQueries = [domain.MoodCount]string{
	domain.Happy:         "happy upbeat",
	domain.Motivated:     "motivation workout",
	domain.Calm:          "ambient chill",
	domain.Energetic:     "electronic dance",
	domain.Sad:           "sad acoustic",
	domain.Inspirational: "inspirational instrumental",
}

var fallbackTitles = [domain.MoodCount]string{
	domain.Happy:         "Happy Vibes",
	domain.Motivated:     "Motivation Station",
	domain.Calm:          "Peaceful Moments",
	domain.Energetic:     "Energy Boost",
	domain.Sad:           "Reflective Melodies",
	domain.Inspirational: "Uplifting Sounds",
}

const (
	fallbackArtist = "Various Artists"
	fallbackSource = "Fallback"
)

// FallbackTrack is the placeholder returned when no provider answers. It
// carries no audio reference.
func FallbackTrack(mood domain.Mood) domain.Track {
	if !mood.Valid() {
		mood = domain.DefaultMood
	}
	return domain.Track{
		Title:  fallbackTitles[mood],
		Artist: fallbackArtist,
		Mood:   mood,
		Source: fallbackSource,
	}
}
