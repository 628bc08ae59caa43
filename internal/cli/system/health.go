package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/julianstephens/tripweaver/internal/cli"
	"github.com/julianstephens/tripweaver/internal/client"
	"github.com/julianstephens/tripweaver/internal/keyring"
)

// HealthCmd checks that the planning service is reachable.
type HealthCmd struct{}

func (cmd *HealthCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	fmt.Fprintf(out, "Checking planning service at %s...\n\n", ctx.Client.BaseURL())

	hasError := false

	reqCtx, cancel := context.WithTimeout(context.Background(), ctx.Config.Timeout)
	defer cancel()

	if err := ctx.Client.Health(reqCtx); err != nil {
		fmt.Fprintf(out, "❌ Planning service: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", describeHealthError(err))
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Planning service: OK\n")
	}

	// API token is optional, so a missing one only warns
	switch {
	case ctx.Config.APIToken != "":
		fmt.Fprintf(out, "✓ API token: OK (%s)\n", keyring.Mask(ctx.Config.APIToken))
	case keyring.IsAvailable():
		fmt.Fprintf(out, "⚠ API token: none configured\n")
	default:
		fmt.Fprintf(out, "⚠ API token: none configured (OS keyring unavailable)\n")
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Health check failed.")
		return errors.New("planning service is not healthy")
	}
	fmt.Fprintln(out, "Planning service is healthy!")
	return nil
}

func describeHealthError(err error) string {
	var statusErr *client.StatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("service responded with HTTP %d", statusErr.Code)
	case errors.Is(err, client.ErrTransport):
		return fmt.Sprintf("service unreachable (%v)", err)
	default:
		return err.Error()
	}
}
