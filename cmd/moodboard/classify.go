package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ewilliams-labs/moodboard/internal/core/domain"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Print the mood detected in a piece of text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		color.NoColor = os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd()))

		out := cmd.OutOrStdout()
		mood := domain.Classify(text)
		fmt.Fprintf(out, "%s\n", mood.Display())
		printScores(out, mood, domain.Scores(text))
		return nil
	},
}

// printScores writes one line per mood, highlighting the winner.
func printScores(w io.Writer, winner domain.Mood, scores [domain.MoodCount]int) {
	green := color.New(color.FgGreen, color.Bold)
	for _, m := range domain.Moods() {
		line := fmt.Sprintf("  %-14s %d", m.String(), scores[m])
		if m == winner {
			line = green.Sprint(line + "  <")
		}
		fmt.Fprintln(w, line)
	}
}
