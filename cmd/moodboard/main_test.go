package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewilliams-labs/moodboard/internal/core/domain"
)

func TestClassifyCommand(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"classify", "Never give up, believe in yourself and rise above every struggle"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1+domain.MoodCount)
	assert.Equal(t, "Inspirational", lines[0])
	assert.Contains(t, lines[len(lines)-1], "inspirational")
	assert.Contains(t, lines[len(lines)-1], "2  <")
}

func TestRenderCard_NoColor(t *testing.T) {
	mb := domain.NewMoodboard(
		domain.Quote{Text: "Stay calm", Author: "Someone"},
		domain.Calm,
		domain.Track{Title: "Peaceful Moments", Artist: "Various Artists", Source: "Fallback", Mood: domain.Calm},
		domain.ColorSet{"#FF69B4", "#FFD700", "#00FA9A"},
	)

	card := renderCard(mb, true)

	for _, want := range []string{"Mood: Calm", "Stay calm", "Someone", "Peaceful Moments", "#FF69B4", "#00FA9A"} {
		assert.Contains(t, card, want)
	}
	assert.NotContains(t, card, "\x1b[", "no ANSI escapes expected")
}
