package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/tripweaver/internal/cli"
	"github.com/julianstephens/tripweaver/internal/keyring"
)

// KeyringSetCmd stores the planning service API token in the OS keyring
type KeyringSetCmd struct {
	Token string `arg:"" help:"API token for the planning service."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetAPIToken(cmd.Token); err != nil {
		return err
	}

	out := ctx.Stdout()
	fmt.Fprintln(out, "✓ API token stored successfully in OS keyring")
	fmt.Fprintln(out, "  Plan requests will now send it as a bearer token")
	return nil
}

// KeyringGetCmd prints the stored token, masked
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	token, err := keyring.GetAPIToken()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API token found in keyring. Use 'tripweaver keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve API token from keyring: %w", err)
	}

	out := ctx.Stdout()
	fmt.Fprintln(out, "API token retrieved from keyring:")
	fmt.Fprintln(out, keyring.Mask(token))
	return nil
}

// KeyringDeleteCmd removes the token from the OS keyring
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIToken(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API token found in keyring")
		}
		return err
	}

	fmt.Fprintln(ctx.Stdout(), "✓ API token deleted from OS keyring")
	return nil
}

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	if !keyring.IsAvailable() {
		fmt.Fprintln(out, "❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}

	fmt.Fprintln(out, "✓ OS keyring is available")
	_, err := keyring.GetAPIToken()
	switch {
	case err == nil:
		fmt.Fprintln(out, "✓ API token is stored in keyring")
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Fprintln(out, "ℹ No API token stored in keyring")
	}
	return nil
}
