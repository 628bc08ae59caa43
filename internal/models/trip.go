package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Pace is the coarse density preference for a trip
type Pace string

// DataSource selects the catalog the planning service resolves POIs from
type DataSource string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceStandard Pace = "standard"
	PacePacked   Pace = "packed"

	DataSourceOffline DataSource = "offline"
	DataSourceGoogle  DataSource = "google"
)

// Paces lists the known pace values in display order.
var Paces = []Pace{PaceRelaxed, PaceStandard, PacePacked}

// DataSources lists the known data sources in display order.
var DataSources = []DataSource{DataSourceOffline, DataSourceGoogle}

func (p Pace) Valid() bool {
	switch p {
	case PaceRelaxed, PaceStandard, PacePacked:
		return true
	}
	return false
}

func (d DataSource) Valid() bool {
	switch d {
	case DataSourceOffline, DataSourceGoogle:
		return true
	}
	return false
}

// TripRequest is the body of POST /plan.
type TripRequest struct {
	Query           string           `json:"query"`
	Days            Optional[int]    `json:"days,omitzero"`
	City            Optional[string] `json:"city,omitzero"`
	DataSource      DataSource       `json:"data_source"`
	MaxPlacesPerDay Optional[int]    `json:"max_places_per_day,omitzero"`
	Pace            Optional[Pace]   `json:"pace,omitzero"`
}

// Place is a single point of interest in a day.
type Place struct {
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Description Optional[string] `json:"description,omitzero"`
}

// DayPlan groups the places scheduled for one day of the trip.
type DayPlan struct {
	Day    int     `json:"day"`
	Places []Place `json:"places"`
}

// TripPlan is the planning service's response.
type TripPlan struct {
	City        string           `json:"city"`
	Days        []DayPlan        `json:"days"`
	Explanation Optional[string] `json:"explanation,omitzero"`
}

var (
	ErrInvalidDay       = errors.New("day number must be positive")
	ErrDuplicateDay     = errors.New("duplicate day number")
	ErrMissingPlaceName = errors.New("place name is empty")
)

// Validate checks the invariants a plan must satisfy before it is shown.
func (p TripPlan) Validate() error {
	seen := make(map[int]bool, len(p.Days))
	for _, d := range p.Days {
		if d.Day <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidDay, d.Day)
		}
		if seen[d.Day] {
			return fmt.Errorf("%w: %d", ErrDuplicateDay, d.Day)
		}
		seen[d.Day] = true
		for i, pl := range d.Places {
			if strings.TrimSpace(pl.Name) == "" {
				return fmt.Errorf("%w: day %d, place %d", ErrMissingPlaceName, d.Day, i+1)
			}
		}
	}
	return nil
}

// Normalize sorts days ascending and replaces nil place lists with empty ones.
func (p *TripPlan) Normalize() {
	if p.Days == nil {
		p.Days = []DayPlan{}
	}
	for i := range p.Days {
		if p.Days[i].Places == nil {
			p.Days[i].Places = []Place{}
		}
	}
	sort.SliceStable(p.Days, func(i, j int) bool {
		return p.Days[i].Day < p.Days[j].Day
	})
}
