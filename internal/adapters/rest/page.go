package rest

import (
	"embed"
	"html/template"

	"github.com/ewilliams-labs/moodboard/internal/core/domain"
)

//go:embed templates/mood.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/mood.html"))

type pageView struct {
	domain.Moodboard
	// Background is trusted CSS: every color in it was validated as #RRGGBB.
	Background template.CSS
}

func newPageView(mb domain.Moodboard) pageView {
	return pageView{
		Moodboard:  mb,
		Background: template.CSS(mb.GradientSpec), // #nosec G203 -- built from validated hex colors
	}
}
