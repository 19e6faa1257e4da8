package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// DefaultAdapterAddress is the server the client talks to when nothing else
// is configured.
const DefaultAdapterAddress = "localhost:7000"

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	// JSONFilePath is the optional path to a JSON configuration file; the
	// "adapter" section is read from it.
	JSONFilePath string `env:"CONFIG"`
}

// GetClientConfig builds and validates the client configuration.
//
// Sources are merged in order: defaults, environment, flagCfg (values the
// CLI parsed from its own flags, may be nil) and the JSON file. Later non-zero
// fields win.
func GetClientConfig(flagCfg *ClientConfig) (*ClientConfig, error) {
	sources := []*ClientConfig{{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}
	sources = append(sources, envCfg)

	if flagCfg != nil {
		sources = append(sources, flagCfg)
	}

	var jsonPath string
	for _, src := range sources {
		if src.JSONFilePath != "" {
			jsonPath = src.JSONFilePath
		}
	}
	if jsonPath != "" {
		jsonCfg, err := parseClientJSON(jsonPath)
		if err != nil {
			return nil, errors.Join(ErrInvalidAdapterConfigs, err)
		}
		sources = append(sources, jsonCfg)
	}

	clientCfg := new(ClientConfig)
	for _, src := range sources {
		if err := mergo.Merge(clientCfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return clientCfg, clientCfg.validate()
}
