package plans

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/tripweaver/internal/cli"
	"github.com/julianstephens/tripweaver/internal/request"
	"github.com/julianstephens/tripweaver/internal/session"
	"github.com/julianstephens/tripweaver/internal/tui/components/itinerary"
	"github.com/julianstephens/tripweaver/internal/view"
)

const renderWidth = 80

type PlanCmd struct {
	Query         []string `arg:"" optional:"" help:"Free-text trip description, e.g. \"3 days in Rome\"."`
	Days          string   `help:"Number of days." placeholder:"N"`
	City          string   `help:"City to plan for."`
	Pace          string   `help:"Trip pace: relaxed, standard or packed." placeholder:"PACE"`
	MaxPerDay     string   `name:"max-per-day" help:"Places per day; overrides the pace default." placeholder:"N"`
	Source        string   `help:"Data source: offline or google. Defaults to the configured source." placeholder:"SOURCE"`
	NoExplanation bool     `name:"no-explanation" help:"Hide the planner's explanation."`
	JSON          bool     `name:"json" help:"Print the raw plan as JSON."`
}

func (c *PlanCmd) fields(ctx *cli.Context) request.Fields {
	source := c.Source
	if source == "" {
		source = string(ctx.Config.DataSource)
	}
	return request.Fields{
		Query:      strings.Join(c.Query, " "),
		Pace:       c.Pace,
		CustomCap:  c.MaxPerDay,
		City:       c.City,
		Days:       c.Days,
		DataSource: source,
	}
}

func (c *PlanCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	f := c.fields(ctx)

	if _, err := request.Build(f); err != nil {
		if errors.Is(err, request.ErrEmptyQuery) {
			fmt.Fprintln(out, "Describe your trip, e.g.: tripweaver plan \"3 days in Rome\" --pace packed")
			return nil
		}
		return err
	}

	ctrl := ctx.NewController()
	defer ctrl.Dispose()

	if !ctrl.Submit(f) {
		return errors.New("plan request was not accepted")
	}
	ctrl.Wait()

	st := ctrl.Current()
	if st.Kind == session.Failed {
		return errors.New(st.Message)
	}

	if c.JSON {
		data, err := json.MarshalIndent(st.Plan, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	req, _ := ctrl.LastRequest()
	it := view.Project(st.Plan, view.Options{
		DataSource:      req.DataSource,
		Pace:            req.Pace,
		ShowExplanation: ctx.Config.ShowExplanation && !c.NoExplanation,
	})
	fmt.Fprint(out, itinerary.Render(it, renderWidth))
	return nil
}
