package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		Secret  string `json:"secret"`
		Cipher  string `json:"cipher"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Dir        string `json:"dir"`
		ExportPath string `json:"export_path"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func readJSONConfig(jsonFilePath string) (*StructuredJSONConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &jsonCfg, nil
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonCfg, err := readJSONConfig(jsonFilePath)
	if err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Secret:  jsonCfg.App.Secret,
			Cipher:  jsonCfg.App.Cipher,
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			Dir:        jsonCfg.Storage.Dir,
			ExportPath: jsonCfg.Storage.ExportPath,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}, nil
}

func parseClientJSON(jsonFilePath string) (*ClientConfig, error) {
	jsonCfg, err := readJSONConfig(jsonFilePath)
	if err != nil {
		return nil, err
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
