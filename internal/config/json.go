package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding. Durations
// are accepted as strings ("30s") or as integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		SecretKey          string   `json:"secret_key"`
		TokenIssuer        string   `json:"token_issuer"`
		ResetTokenDuration Duration `json:"reset_token_duration"`
		BaseURL            string   `json:"base_url"`
		Version            string   `json:"version"`
		LogLevel           string   `json:"log_level"`
		AuthRateLimit      int      `json:"auth_rate_limit"`
		AuthRateWindow     Duration `json:"auth_rate_window"`
	} `json:"app,omitempty"`

	Session struct {
		CookieName    string   `json:"cookie_name"`
		Duration      Duration `json:"duration"`
		SecureCookie  bool     `json:"secure_cookie"`
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"session,omitempty"`

	Storage struct {
		DB    DB    `json:"db,omitempty"`
		Redis Redis `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Mail Mail `json:"mail,omitempty"`

	Avatars struct {
		S3Bucket      string   `json:"s3_bucket"`
		S3Region      string   `json:"s3_region"`
		S3Endpoint    string   `json:"s3_endpoint"`
		S3AccessKey   string   `json:"s3_access_key"`
		S3SecretKey   string   `json:"s3_secret_key"`
		PublicBaseURL string   `json:"public_base_url"`
		UploadExpiry  Duration `json:"upload_expiry"`
	} `json:"avatars,omitempty"`
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
			SecretKey:          jsonCfg.App.SecretKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			ResetTokenDuration: time.Duration(jsonCfg.App.ResetTokenDuration),
			BaseURL:            jsonCfg.App.BaseURL,
			Version:            jsonCfg.App.Version,
			LogLevel:           jsonCfg.App.LogLevel,
			AuthRateLimit:      jsonCfg.App.AuthRateLimit,
			AuthRateWindow:     time.Duration(jsonCfg.App.AuthRateWindow),
		},
		Session: Session{
			CookieName:    jsonCfg.Session.CookieName,
			Duration:      time.Duration(jsonCfg.Session.Duration),
			SecureCookie:  jsonCfg.Session.SecureCookie,
			SweepInterval: time.Duration(jsonCfg.Session.SweepInterval),
		},
		Storage: Storage{
			DB:    jsonCfg.Storage.DB,
			Redis: jsonCfg.Storage.Redis,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Mail: jsonCfg.Mail,
		Avatars: Avatars{
			S3Bucket:      jsonCfg.Avatars.S3Bucket,
			S3Region:      jsonCfg.Avatars.S3Region,
			S3Endpoint:    jsonCfg.Avatars.S3Endpoint,
			S3AccessKey:   jsonCfg.Avatars.S3AccessKey,
			S3SecretKey:   jsonCfg.Avatars.S3SecretKey,
			PublicBaseURL: jsonCfg.Avatars.PublicBaseURL,
			UploadExpiry:  time.Duration(jsonCfg.Avatars.UploadExpiry),
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
