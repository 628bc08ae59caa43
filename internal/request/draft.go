package request

import (
	"strconv"

	"github.com/julianstephens/tripweaver/internal/models"
)

// Draft holds every editable form field in one place. Form widgets bind to
// its fields by pointer; Fields projects it for Build.
type Draft struct {
	Query           string
	DataSource      models.DataSource
	Pace            models.Pace
	CustomCap       string
	City            string
	Days            string
	ShowExplanation bool
}

// NewDraft returns a draft with the form's starting values.
func NewDraft(source models.DataSource, showExplanation bool) *Draft {
	if !source.Valid() {
		source = models.DataSourceOffline
	}
	return &Draft{
		DataSource:      source,
		Pace:            models.PaceStandard,
		ShowExplanation: showExplanation,
	}
}

// Fields projects the draft into raw builder input.
func (d *Draft) Fields() Fields {
	return Fields{
		Query:      d.Query,
		Pace:       string(d.Pace),
		CustomCap:  d.CustomCap,
		City:       d.City,
		Days:       d.Days,
		DataSource: string(d.DataSource),
	}
}

// PaceCaption describes the cap a pace implies, e.g. "~4 spots / day".
func PaceCaption(p models.Pace) string {
	n, ok := PaceDefault(p)
	if !ok {
		return ""
	}
	return "~" + strconv.Itoa(n) + " spots / day"
}
