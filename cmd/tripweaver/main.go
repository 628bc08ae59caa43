package main

import (
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/tripweaver/internal/cli"
	"github.com/julianstephens/tripweaver/internal/cli/plans"
	"github.com/julianstephens/tripweaver/internal/cli/system"
	"github.com/julianstephens/tripweaver/internal/client"
	"github.com/julianstephens/tripweaver/internal/config"
	"github.com/julianstephens/tripweaver/internal/constants"
	"github.com/julianstephens/tripweaver/internal/errors"
	"github.com/julianstephens/tripweaver/internal/logger"
)

var CLI struct {
	Version   kong.VersionFlag
	APIBase   string        `name:"api-base" help:"Planning service base URL (default ${default_api_base})."`
	Timeout   time.Duration `help:"Plan request timeout, e.g. 30s."`
	Debug     bool          `help:"Enable debug logging."`
	EnvFile   string        `name:"env-file" help:"Optional .env file with TRIPWEAVER_* settings." type:"path" default:"${default_env_file}"`
	ConfigDir string        `name:"config-dir" help:"Directory for logs." default:"${default_config_dir}"`

	Tui     system.TuiCmd    `cmd:"" help:"Launch the interactive trip planner." default:"1"`
	Plan    plans.PlanCmd    `cmd:"" help:"Plan a trip and print the itinerary."`
	Health  system.HealthCmd `cmd:"" help:"Check that the planning service is reachable."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the API token in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored API token (masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the API token from the OS keyring."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage the planning service API token."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal trip planner backed by a remote itinerary service"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":            constants.Version,
			"default_api_base":   constants.DefaultAPIBase,
			"default_env_file":   constants.DefaultEnvFile,
			"default_config_dir": constants.DefaultConfigDir,
		},
	)

	cfg, err := config.Load(CLI.EnvFile, config.Overrides{
		APIBase:   CLI.APIBase,
		Timeout:   CLI.Timeout,
		ConfigDir: CLI.ConfigDir,
		Debug:     CLI.Debug,
	})
	if err != nil {
		errors.Fatal(err)
	}

	// the TUI owns the terminal, so debug output goes to the log file only
	quiet := strings.HasPrefix(ctx.Command(), "tui")
	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.ConfigDir, Quiet: quiet}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}
	logger.Debug("Configuration loaded", "api_base", cfg.APIBase, "timeout", cfg.Timeout, "data_source", cfg.DataSource)

	cfg.APIToken = cfg.ResolveAPIToken()
	appCtx := &cli.Context{
		Config: cfg,
		Client: client.New(cfg.APIBase, client.WithTimeout(cfg.Timeout), client.WithToken(cfg.APIToken)),
	}

	errors.Fatal(ctx.Run(appCtx))
}
