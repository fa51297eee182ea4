package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the logbook CLI: where the server
// is and which session token to present.
type ClientConfig struct {
	BaseURL        string
	Token          string
	RequestTimeout time.Duration
	Version        string
}

// GetClientConfig builds the CLI configuration from defaults, a .env file,
// environment variables and the JSON file named by CONFIG. Command-line
// flags are left to the CLI's own subcommands.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error building client config: %w", err)
	}

	clientCfg := &ClientConfig{
		BaseURL:        cfg.Adapter.BaseURL,
		Token:          cfg.Adapter.Token,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		Version:        cfg.App.Version,
	}

	return clientCfg, clientCfg.validate()
}
