package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONConfig mirrors [Config] with JSON tags and string-friendly duration
// parsing for the optional configuration file.
type JSONConfig struct {
	App struct {
		Debug   bool   `json:"debug"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		APIPrefix      string   `json:"api_prefix"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN      string `json:"dsn"`
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Name     string `json:"name"`
			User     string `json:"user"`
			Password string `json:"password"`
			Charset  string `json:"charset"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Logs struct {
		Level           string   `json:"level"`
		APIRequests     bool     `json:"api_requests"`
		UsageRecords    bool     `json:"usage_records"`
		RetentionDays   int      `json:"retention_days"`
		CleanupInterval Duration `json:"cleanup_interval"`
	} `json:"logs,omitempty"`

	CORS struct {
		AllowedOrigins string `json:"allowed_origins"`
		AllowedMethods string `json:"allowed_methods"`
		AllowedHeaders string `json:"allowed_headers"`
	} `json:"cors,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		App: App{
			Debug:   jsonCfg.App.Debug,
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			APIPrefix:      jsonCfg.Server.APIPrefix,
		},
		Storage: Storage{
			DB: DB{
				DSN:      jsonCfg.Storage.DB.DSN,
				Host:     jsonCfg.Storage.DB.Host,
				Port:     jsonCfg.Storage.DB.Port,
				Name:     jsonCfg.Storage.DB.Name,
				User:     jsonCfg.Storage.DB.User,
				Password: jsonCfg.Storage.DB.Password,
				Charset:  jsonCfg.Storage.DB.Charset,
			},
		},
		Logs: Logs{
			Level:           jsonCfg.Logs.Level,
			APIRequests:     jsonCfg.Logs.APIRequests,
			UsageRecords:    jsonCfg.Logs.UsageRecords,
			RetentionDays:   jsonCfg.Logs.RetentionDays,
			CleanupInterval: time.Duration(jsonCfg.Logs.CleanupInterval),
		},
		CORS: CORS{
			AllowedOrigins: jsonCfg.CORS.AllowedOrigins,
			AllowedMethods: jsonCfg.CORS.AllowedMethods,
			AllowedHeaders: jsonCfg.CORS.AllowedHeaders,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
