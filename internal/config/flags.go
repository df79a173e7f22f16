package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// optionalBool is a boolean flag that remembers whether it was set.
type optionalBool struct {
	value *bool
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-target deployment target (development, production)
//	-production deployment mode
//	-api-server-url API base URL
//	-auth0-url identity-provider tenant domain prefix
//	-auth0-audience identity-provider API audience
//	-auth0-client-id identity-provider client id
//	-auth0-callback-url redirect target after authentication
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-driver database driver (pgx, sqlite3)
//	-d database DSN
//	-c/-config json file path with configs
//	-key-refresh-interval key set refresh interval (e.g., "1h")
//	-health-check-interval storage health probe interval (e.g., "15s")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var production optionalBool
	var deployTarget string
	var apiServerURL string
	var auth0URL, auth0Audience, auth0ClientID, auth0CallbackURL string
	var requestTimeout time.Duration
	var driver, databaseDSN string
	var jsonConfigPath string
	var keyRefreshInterval, healthCheckInterval time.Duration

	fs := flag.NewFlagSet("coffee-shop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&deployTarget, "target", "", "Deployment target (development, production)")
	fs.Var(&production, "production", "Production deployment mode")
	fs.StringVar(&apiServerURL, "api-server-url", "", "API server base URL")
	fs.StringVar(&auth0URL, "auth0-url", "", "Auth0 tenant domain prefix")
	fs.StringVar(&auth0Audience, "auth0-audience", "", "Auth0 API audience")
	fs.StringVar(&auth0ClientID, "auth0-client-id", "", "Auth0 client id")
	fs.StringVar(&auth0CallbackURL, "auth0-callback-url", "", "Auth0 callback URL")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&driver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&keyRefreshInterval, "key-refresh-interval", 0, "Key set refresh interval (e.g., 1h)")
	fs.DurationVar(&healthCheckInterval, "health-check-interval", 0, "Storage health probe interval (e.g., 15s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		DeployTarget: deployTarget,
		Production:   production.value,
		APIServerURL: apiServerURL,
		Auth0: Auth0Settings{
			URL:         auth0URL,
			Audience:    auth0Audience,
			ClientID:    auth0ClientID,
			CallbackURL: auth0CallbackURL,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Workers: Workers{
			KeyRefreshInterval:  keyRefreshInterval,
			HealthCheckInterval: healthCheckInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func (b *optionalBool) String() string {
	if b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

// IsBoolFlag lets "-production" be passed without a value.
func (b *optionalBool) IsBoolFlag() bool {
	return true
}
