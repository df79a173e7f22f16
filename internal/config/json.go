package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the JSON config file. The
// environment part uses the external field names of [Environment];
// the server-side sections use snake_case keys.
type StructuredJSONConfig struct {
	DeployTarget string `json:"deployTarget"`
	Production   *bool  `json:"production"`
	APIServerURL string `json:"apiServerUrl"`

	Auth0 struct {
		URL         string `json:"url"`
		Audience    string `json:"audience"`
		ClientID    string `json:"clientId"`
		CallbackURL string `json:"callbackURL"`
	} `json:"auth0"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		KeyRefreshInterval  Duration `json:"key_refresh_interval"`
		HealthCheckInterval Duration `json:"health_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		DeployTarget: jsonCfg.DeployTarget,
		Production:   jsonCfg.Production,
		APIServerURL: jsonCfg.APIServerURL,
		Auth0: Auth0Settings{
			URL:         jsonCfg.Auth0.URL,
			Audience:    jsonCfg.Auth0.Audience,
			ClientID:    jsonCfg.Auth0.ClientID,
			CallbackURL: jsonCfg.Auth0.CallbackURL,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			KeyRefreshInterval:  time.Duration(jsonCfg.Workers.KeyRefreshInterval),
			HealthCheckInterval: time.Duration(jsonCfg.Workers.HealthCheckInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
