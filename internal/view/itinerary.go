// Package view projects a TripPlan into display-ready values. It is pure:
// rendering layers read the result and never look at the raw plan.
package view

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/julianstephens/tripweaver/internal/constants"
	"github.com/julianstephens/tripweaver/internal/models"
)

// Options are the presentation toggles that accompany a plan.
type Options struct {
	DataSource      models.DataSource
	Pace            models.Optional[models.Pace]
	ShowExplanation bool
}

type Itinerary struct {
	Title       string
	DayCount    int
	DayLabel    string
	SourceLabel string
	PaceLabel   string
	Days        []Day
	Explanation []string
}

type Day struct {
	Number  int
	Heading string
	Empty   bool
	Places  []PlaceCard
}

type PlaceCard struct {
	Name string
	// Category is the raw label from the service; StyleKey is only for picking a style.
	Category       string
	StyleKey       string
	Description    string
	HasDescription bool
}

// Project derives the itinerary view for plan.
func Project(plan models.TripPlan, opts Options) Itinerary {
	it := Itinerary{
		Title:       plan.City,
		DayCount:    len(plan.Days),
		DayLabel:    DayLabel(len(plan.Days)),
		SourceLabel: SourceLabel(opts.DataSource),
		PaceLabel:   PaceLabel(opts.Pace),
		Days:        make([]Day, 0, len(plan.Days)),
	}
	if strings.TrimSpace(it.Title) == "" {
		it.Title = constants.DefaultTripTitle
	}

	for _, d := range plan.Days {
		day := Day{
			Number:  d.Day,
			Heading: fmt.Sprintf("Day %d", d.Day),
			Empty:   len(d.Places) == 0,
			Places:  make([]PlaceCard, 0, len(d.Places)),
		}
		for _, p := range d.Places {
			desc, _ := p.Description.Get()
			desc = strings.TrimSpace(desc)
			day.Places = append(day.Places, PlaceCard{
				Name:           p.Name,
				Category:       p.Category,
				StyleKey:       StyleKey(p.Category),
				Description:    desc,
				HasDescription: desc != "",
			})
		}
		it.Days = append(it.Days, day)
	}

	if opts.ShowExplanation {
		if text, ok := plan.Explanation.Get(); ok {
			it.Explanation = Paragraphs(text)
		}
	}

	return it
}

// HasExplanation reports whether an explanation block should be shown.
func (it Itinerary) HasExplanation() bool {
	return len(it.Explanation) > 0
}

// Summary is the one-line trip header, e.g. "3 days itinerary • Offline dataset • packed pace".
func (it Itinerary) Summary() string {
	return fmt.Sprintf("%s itinerary • %s • %s", it.DayLabel, it.SourceLabel, it.PaceLabel)
}

// StyleKey lower-cases a category and strips all whitespace.
func StyleKey(category string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(category) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Paragraphs splits text on blank lines, trimming each paragraph and
// dropping empty ones.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func DayLabel(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func SourceLabel(d models.DataSource) string {
	if d == models.DataSourceGoogle {
		return constants.SourceLabelGoogle
	}
	return constants.SourceLabelOffline
}

func PaceLabel(p models.Optional[models.Pace]) string {
	return string(p.OrElse(models.PaceStandard)) + " pace"
}
