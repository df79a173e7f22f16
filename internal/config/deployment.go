package config

import (
	"fmt"
	"strings"
	"time"
)

// DeployTarget names a deployment preset.
type DeployTarget string

const (
	// TargetDevelopment is the local development preset and the default.
	TargetDevelopment DeployTarget = "development"
	// TargetProduction is the production preset. It carries no URLs or
	// identifiers; those must come from another source.
	TargetProduction DeployTarget = "production"
)

const (
	defaultRequestTimeout      = 30 * time.Second
	defaultKeyRefreshInterval  = time.Hour
	defaultHealthCheckInterval = 15 * time.Second
)

// ParseDeployTarget resolves a target name case-insensitively. An empty name
// selects [TargetDevelopment].
func ParseDeployTarget(name string) (DeployTarget, error) {
	switch DeployTarget(strings.ToLower(strings.TrimSpace(name))) {
	case "", TargetDevelopment:
		return TargetDevelopment, nil
	case TargetProduction:
		return TargetProduction, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDeployTarget, name)
	}
}

// preset returns the lowest-priority values for the target.
func (t DeployTarget) preset() *StructuredConfig {
	switch t {
	case TargetProduction:
		return &StructuredConfig{
			DeployTarget: string(TargetProduction),
			Production:   boolPtr(true),
			Server: Server{
				RequestTimeout: defaultRequestTimeout,
			},
			Storage: Storage{
				DB: DB{Driver: DriverPostgres},
			},
			Workers: Workers{
				KeyRefreshInterval:  defaultKeyRefreshInterval,
				HealthCheckInterval: defaultHealthCheckInterval,
			},
		}
	default:
		return &StructuredConfig{
			DeployTarget: string(TargetDevelopment),
			Production:   boolPtr(false),
			APIServerURL: "http://127.0.0.1:5000",
			Auth0: Auth0Settings{
				URL:         "dev-t-4sg5-6.eu",
				Audience:    "drink",
				ClientID:    "f4abwQOHufPxU63932dw2cns9AEc3n7p",
				CallbackURL: "http://localhost:8100",
			},
			Server: Server{
				RequestTimeout: defaultRequestTimeout,
			},
			Storage: Storage{
				DB: DB{Driver: DriverSQLite, DSN: "database.db"},
			},
			Workers: Workers{
				KeyRefreshInterval:  defaultKeyRefreshInterval,
				HealthCheckInterval: defaultHealthCheckInterval,
			},
		}
	}
}

func boolPtr(v bool) *bool {
	return &v
}
