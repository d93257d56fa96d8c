package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ewilliams-labs/moodboard/internal/config"
	"github.com/ewilliams-labs/moodboard/internal/core/domain"
)

var (
	showJSON    bool
	showNoColor bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Generate one moodboard and print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg, os.Stderr)
		if err != nil {
			return err
		}
		svc, err := newOrchestrator(cfg, logger)
		if err != nil {
			return err
		}

		mb := svc.Generate(cmd.Context())

		out := cmd.OutOrStdout()
		if showJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(mb)
		}
		noColor := showNoColor || os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd()))
		_, err = fmt.Fprintln(out, renderCard(mb, noColor))
		return err
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the payload as JSON")
	showCmd.Flags().BoolVar(&showNoColor, "no-color", false, "disable colored output")
}

// renderCard lays the moodboard out as a bordered terminal card.
func renderCard(mb domain.Moodboard, noColor bool) string {
	color.NoColor = noColor

	bold := color.New(color.Bold)
	gray := color.New(color.FgHiBlack)
	accent := color.New(color.FgMagenta)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", accent.Sprint("Mood: "+mb.MoodLabel))
	fmt.Fprintf(&b, "%s\n", bold.Sprintf("“%s”", mb.QuoteText))
	fmt.Fprintf(&b, "  — %s\n\n", mb.Author)
	fmt.Fprintf(&b, "♫ %s by %s %s", mb.Track.Title, mb.Track.Artist, gray.Sprintf("(%s)", mb.Track.Source))
	if url := mb.Track.StreamURL(); url != "" {
		fmt.Fprintf(&b, "\n  %s", gray.Sprint(url))
	}
	fmt.Fprintf(&b, "\n\n%s", swatches(mb.Colors, noColor))

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Width(64)
	if !noColor {
		style = style.BorderForeground(lipgloss.Color(mb.Colors[0]))
	}
	return style.Render(b.String())
}

func swatches(colors domain.ColorSet, noColor bool) string {
	parts := make([]string, 0, len(colors))
	for _, c := range colors {
		if noColor {
			parts = append(parts, c)
			continue
		}
		chip := lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("   ")
		parts = append(parts, chip+" "+c)
	}
	return strings.Join(parts, "  ")
}
