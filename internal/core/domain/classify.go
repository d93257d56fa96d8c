package domain

import "strings"

// moodKeywords lists the literals counted for each mood. Matching is by
// substring, so "love" also hits "lovely" and "glove".
var moodKeywords = [MoodCount][]string{
	Happy:         {"happy", "joy", "love", "success", "achieve", "dream", "hope", "bright", "smile", "celebrate"},
	Motivated:     {"work", "hard", "effort", "determination", "persist", "never give up", "strength", "power"},
	Calm:          {"peace", "calm", "quiet", "meditation", "serene", "tranquil", "gentle", "soft"},
	Energetic:     {"energy", "action", "move", "run", "fast", "quick", "alive", "dynamic"},
	Sad:           {"sad", "pain", "hurt", "difficult", "struggle", "dark", "loss", "grief"},
	Inspirational: {"inspire", "believe", "faith", "courage", "brave", "overcome", "rise", "uplift"},
}

// Scores counts, for each mood, how many of its keywords occur in text.
func Scores(text string) [MoodCount]int {
	lower := strings.ToLower(text)
	var scores [MoodCount]int
	for m, keywords := range moodKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				scores[m]++
			}
		}
	}
	return scores
}

// Classify returns the mood with the highest keyword score. Ties go to the
// mood declared first; text with no hits yields DefaultMood.
func Classify(text string) Mood {
	scores := Scores(text)
	best, bestScore := DefaultMood, 0
	for m, score := range scores {
		if score > bestScore {
			best, bestScore = Mood(m), score
		}
	}
	return best
}
