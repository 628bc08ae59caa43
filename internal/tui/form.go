package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tripweaver/internal/constants"
	"github.com/julianstephens/tripweaver/internal/models"
	"github.com/julianstephens/tripweaver/internal/request"
)

// NewTripForm creates the preferences form. Every field writes straight into d.
// Numeric fields are not validated here: malformed values are dropped by the
// request builder instead of blocking submission.
func NewTripForm(d *request.Draft) *huh.Form {
	paceOptions := make([]huh.Option[models.Pace], 0, len(models.Paces))
	for _, p := range models.Paces {
		paceOptions = append(paceOptions, huh.NewOption(paceTitle(p), p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Describe your dream trip").
				Description("Write in natural language, e.g. 3 days in New York, love museums and parks, low budget").
				CharLimit(500).
				Value(&d.Query),
			huh.NewSelect[models.DataSource]().
				Title("Data source").
				Options(
					huh.NewOption(constants.SourceLabelOffline, models.DataSourceOffline),
					huh.NewOption("Google Places", models.DataSourceGoogle),
				).
				Value(&d.DataSource),
			huh.NewSelect[models.Pace]().
				Title("Daily pace").
				Options(paceOptions...).
				Value(&d.Pace),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Custom max spots / day (optional)").
				Description("Overrides the pace default, e.g. 5").
				Value(&d.CustomCap),
			huh.NewInput().
				Title("City (optional)").
				Value(&d.City),
			huh.NewInput().
				Title("Days (optional)").
				Value(&d.Days),
			huh.NewConfirm().
				Title("Show LLM explanation").
				Value(&d.ShowExplanation),
		),
	).WithTheme(huh.ThemeDracula())
}

func paceTitle(p models.Pace) string {
	var label string
	switch p {
	case models.PaceRelaxed:
		label = "🧘 Relaxed"
	case models.PacePacked:
		label = "⚡ Packed"
	default:
		label = "🚶 Standard"
	}
	return label + "  " + request.PaceCaption(p)
}
