package constants

import "time"

// SessionState represents the current screen of the TUI application
type SessionState int

const (
	AppName            = "tripweaver"
	DefaultKeyringUser = "api-token"
	DefaultConfigDir   = "~/.config/tripweaver"
	DefaultEnvFile     = ".env"
	Version            = "v0.3.0"

	// Planning service defaults
	DefaultAPIBase         = "http://127.0.0.1:8000"
	DefaultTimeout         = 60 * time.Second
	DefaultShowExplanation = true
	PlanPath               = "/plan"
	HealthPath             = "/health"
	HealthStatusOK         = "ok"
	MaxResponseBytes       = 1 << 20
	RequestIDHeader        = "X-Request-ID"

	// Environment variables
	EnvAPIBase         = "TRIPWEAVER_API_BASE"
	EnvTimeout         = "TRIPWEAVER_TIMEOUT"
	EnvDataSource      = "TRIPWEAVER_DATA_SOURCE"
	EnvShowExplanation = "TRIPWEAVER_SHOW_EXPLANATION"
	EnvAPIToken        = "TRIPWEAVER_API_TOKEN"

	// Session States
	StateForm SessionState = iota
	StatePending
	StateItinerary
	StateFailed
)
