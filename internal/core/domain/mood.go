package domain

import (
	"fmt"
	"strings"
)

// Mood is the emotional tone derived from a quote. The declaration order is
// significant: it is the iteration order of every per-mood table and the
// tie-break order of the classifier.
type Mood int

const (
	Happy Mood = iota
	Motivated
	Calm
	Energetic
	Sad
	Inspirational

	// MoodCount is the number of known moods. Per-mood tables are sized by it.
	MoodCount = int(Inspirational) + 1
)

// DefaultMood is used whenever no keyword matched.
const DefaultMood = Inspirational

var moodLabels = [MoodCount]string{
	Happy:         "happy",
	Motivated:     "motivated",
	Calm:          "calm",
	Energetic:     "energetic",
	Sad:           "sad",
	Inspirational: "inspirational",
}

// Moods returns every mood in declaration order.
func Moods() []Mood {
	out := make([]Mood, MoodCount)
	for i := range out {
		out[i] = Mood(i)
	}
	return out
}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	return m >= 0 && int(m) < MoodCount
}

// String returns the lower-case label. Out-of-range values render as the
// default mood's label.
func (m Mood) String() string {
	if !m.Valid() {
		return moodLabels[DefaultMood]
	}
	return moodLabels[m]
}

// Display returns the label with its first letter upper-cased, e.g. "Calm".
func (m Mood) Display() string {
	s := m.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m Mood) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mood) UnmarshalText(b []byte) error {
	parsed, err := ParseMood(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMood resolves a label (case-insensitive) to a Mood.
func ParseMood(label string) (Mood, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	for i, l := range moodLabels {
		if l == label {
			return Mood(i), nil
		}
	}
	return DefaultMood, fmt.Errorf("domain: unknown mood %q", label)
}
