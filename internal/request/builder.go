// Package request turns raw form input into a canonical models.TripRequest.
// Nothing here performs I/O.
package request

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/tripweaver/internal/models"
)

var (
	// ErrEmptyQuery means the submission is declined; callers should not surface it as a failure.
	ErrEmptyQuery = errors.New("query is empty")
	// ErrUnknownPace is a caller error: the pace is not one of the known values.
	ErrUnknownPace = errors.New("unknown pace")
	// ErrUnknownDataSource is a caller error: the data source is not one of the known values.
	ErrUnknownDataSource = errors.New("unknown data source")
)

var paceDefaults = map[models.Pace]int{
	models.PaceRelaxed:  3,
	models.PaceStandard: 4,
	models.PacePacked:   6,
}

// Fields are the raw, loosely-typed values collected from the user.
type Fields struct {
	Query      string
	Pace       string
	CustomCap  string
	City       string
	Days       string
	DataSource string
}

// PaceDefault returns the places-per-day cap implied by a pace.
func PaceDefault(p models.Pace) (int, bool) {
	n, ok := paceDefaults[p]
	return n, ok
}

// Build validates and normalizes f into a TripRequest.
func Build(f Fields) (models.TripRequest, error) {
	query := strings.TrimSpace(f.Query)
	if query == "" {
		return models.TripRequest{}, ErrEmptyQuery
	}

	source := models.DataSourceOffline
	if f.DataSource != "" {
		source = models.DataSource(f.DataSource)
		if !source.Valid() {
			return models.TripRequest{}, fmt.Errorf("%w: %q", ErrUnknownDataSource, f.DataSource)
		}
	}

	pace := models.None[models.Pace]()
	if f.Pace != "" {
		p := models.Pace(f.Pace)
		if !p.Valid() {
			return models.TripRequest{}, fmt.Errorf("%w: %q", ErrUnknownPace, f.Pace)
		}
		pace = models.Some(p)
	}

	req := models.TripRequest{
		Query:           query,
		Days:            parsePositive(f.Days),
		City:            nonBlank(f.City),
		DataSource:      source,
		MaxPlacesPerDay: resolveMaxPlaces(f.CustomCap, pace),
		Pace:            pace,
	}
	return req, nil
}

// resolveMaxPlaces applies the precedence custom override > pace default > absent.
func resolveMaxPlaces(custom string, pace models.Optional[models.Pace]) models.Optional[int] {
	if n := parsePositive(custom); n.Present() {
		return n
	}
	if p, ok := pace.Get(); ok {
		if n, ok := PaceDefault(p); ok {
			return models.Some(n)
		}
	}
	return models.None[int]()
}

// parsePositive parses a base-10 integer. Anything unparsable or not
// positive is treated as not provided.
func parsePositive(s string) models.Optional[int] {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.None[int]()
	}
	n, err := strconv.ParseInt(s, 10, 0)
	if err != nil || n <= 0 {
		return models.None[int]()
	}
	return models.Some(int(n))
}

func nonBlank(s string) models.Optional[string] {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.None[string]()
	}
	return models.Some(s)
}
