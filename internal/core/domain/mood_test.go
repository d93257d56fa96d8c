package domain

import (
	"encoding/json"
	"testing"
)

func TestParseMood(t *testing.T) {
	for _, m := range Moods() {
		got, err := ParseMood(m.String())
		if err != nil {
			t.Fatalf("ParseMood(%q) returned error: %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("ParseMood(%q) = %s, want %s", m.String(), got, m)
		}
	}

	if got, err := ParseMood("  CALM "); err != nil || got != Calm {
		t.Fatalf("expected case-insensitive parse to return calm, got %s (%v)", got, err)
	}

	if _, err := ParseMood("angry"); err == nil {
		t.Fatal("expected error for unknown mood")
	}
}

func TestMood_Display(t *testing.T) {
	tests := map[Mood]string{
		Happy:         "Happy",
		Motivated:     "Motivated",
		Calm:          "Calm",
		Energetic:     "Energetic",
		Sad:           "Sad",
		Inspirational: "Inspirational",
		Mood(42):      "Inspirational",
	}
	for m, want := range tests {
		if got := m.Display(); got != want {
			t.Fatalf("Display() = %q, want %q", got, want)
		}
	}
}

func TestMood_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Mood Mood `json:"mood"`
	}{Mood: Energetic})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"mood":"energetic"}` {
		t.Fatalf("unexpected json: %s", b)
	}

	var decoded struct {
		Mood Mood `json:"mood"`
	}
	if err := json.Unmarshal([]byte(`{"mood":"sad"}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Mood != Sad {
		t.Fatalf("expected sad, got %s", decoded.Mood)
	}
}
