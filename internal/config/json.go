package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		StateSignKey  string   `json:"state_sign_key"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	OAuth struct {
		GoogleClientID     string   `json:"google_client_id"`
		GoogleClientSecret string   `json:"google_client_secret"`
		GoogleRedirectURL  string   `json:"google_redirect_url"`
		GoogleAuthURL      string   `json:"google_auth_url"`
		GoogleTokenURL     string   `json:"google_token_url"`
		GoogleUserInfoURL  string   `json:"google_userinfo_url"`
		RequestTimeout     Duration `json:"request_timeout"`
	} `json:"oauth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	RateLimit struct {
		RPS             float64  `json:"rps"`
		Burst           int      `json:"burst"`
		CleanupInterval Duration `json:"cleanup_interval"`
	} `json:"rate_limit,omitempty"`
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
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			StateSignKey:  jsonCfg.App.StateSignKey,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		OAuth: OAuth{
			GoogleClientID:     jsonCfg.OAuth.GoogleClientID,
			GoogleClientSecret: jsonCfg.OAuth.GoogleClientSecret,
			GoogleRedirectURL:  jsonCfg.OAuth.GoogleRedirectURL,
			GoogleAuthURL:      jsonCfg.OAuth.GoogleAuthURL,
			GoogleTokenURL:     jsonCfg.OAuth.GoogleTokenURL,
			GoogleUserInfoURL:  jsonCfg.OAuth.GoogleUserInfoURL,
			RequestTimeout:     time.Duration(jsonCfg.OAuth.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
		},
		RateLimit: RateLimit{
			RPS:             jsonCfg.RateLimit.RPS,
			Burst:           jsonCfg.RateLimit.Burst,
			CleanupInterval: time.Duration(jsonCfg.RateLimit.CleanupInterval),
		},
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
