package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of the configuration.
type StructuredJSONConfig struct {
	App struct {
		Environment          string   `json:"environment"`
		LogLevel             string   `json:"log_level"`
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		TokenDuration        Duration `json:"token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		PasswordHashCost     int      `json:"password_hash_cost"`
		AdminEmails          []string `json:"admin_emails"`
		DefaultTimezone      string   `json:"default_timezone"`
		Version              string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Cosmic struct {
			BaseURL        string   `json:"base_url"`
			BucketSlug     string   `json:"bucket_slug"`
			ReadKey        string   `json:"read_key"`
			WriteKey       string   `json:"write_key"`
			ObjectType     string   `json:"object_type"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"cosmic,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		CookieName      string   `json:"cookie_name"`
		PagesDir        string   `json:"pages_dir"`
		ProtectedRoutes []string `json:"protected_routes"`
		AuthOnlyRoutes  []string `json:"auth_only_routes"`
		LoginPath       string   `json:"login_path"`
		HomePath        string   `json:"home_path"`
		AuthRateLimit   int      `json:"auth_rate_limit"`
		AuthRateBurst   int      `json:"auth_rate_burst"`

		TrustProxyHeaders bool `json:"trust_proxy_headers"`
	} `json:"server,omitempty"`

	Workers struct {
		HashConcurrency int `json:"hash_concurrency"`
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
		App: App{
			Environment:          jsonCfg.App.Environment,
			LogLevel:             jsonCfg.App.LogLevel,
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			TokenDuration:        time.Duration(jsonCfg.App.TokenDuration),
			RefreshTokenDuration: time.Duration(jsonCfg.App.RefreshTokenDuration),
			PasswordHashCost:     jsonCfg.App.PasswordHashCost,
			AdminEmails:          jsonCfg.App.AdminEmails,
			DefaultTimezone:      jsonCfg.App.DefaultTimezone,
			Version:              jsonCfg.App.Version,
		},
		Storage: Storage{
			Cosmic: Cosmic{
				BaseURL:        jsonCfg.Storage.Cosmic.BaseURL,
				BucketSlug:     jsonCfg.Storage.Cosmic.BucketSlug,
				ReadKey:        jsonCfg.Storage.Cosmic.ReadKey,
				WriteKey:       jsonCfg.Storage.Cosmic.WriteKey,
				ObjectType:     jsonCfg.Storage.Cosmic.ObjectType,
				RequestTimeout: time.Duration(jsonCfg.Storage.Cosmic.RequestTimeout),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			CookieName:      jsonCfg.Server.CookieName,
			PagesDir:        jsonCfg.Server.PagesDir,
			ProtectedRoutes: jsonCfg.Server.ProtectedRoutes,
			AuthOnlyRoutes:  jsonCfg.Server.AuthOnlyRoutes,
			LoginPath:       jsonCfg.Server.LoginPath,
			HomePath:        jsonCfg.Server.HomePath,
			AuthRateLimit:   jsonCfg.Server.AuthRateLimit,
			AuthRateBurst:   jsonCfg.Server.AuthRateBurst,

			TrustProxyHeaders: jsonCfg.Server.TrustProxyHeaders,
		},
		Workers: Workers{
			HashConcurrency: jsonCfg.Workers.HashConcurrency,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s" as well as raw nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
