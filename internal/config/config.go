package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server       ServerConfig
	DB           DatabaseConfig
	SMS          SMSConfig
	SMTP         SMTPConfig
	Connectivity ConnectivityConfig
	Weather      WeatherConfig
	Logging      LoggingConfig
}

type ServerConfig struct {
	Host      string
	Port      int
	StaticDir string
}

type DatabaseConfig struct {
	Path      string
	LakesCSV  string
	EventsCSV string
}

type SMSConfig struct {
	APIKey   string
	SenderID string
	Route    string
	BaseURL  string
	Timeout  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Enabled reports whether enough SMTP settings are present to attempt email.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Username != ""
}

type ConnectivityConfig struct {
	ProbeURL     string
	ProbeTimeout time.Duration
	Interval     time.Duration
}

type WeatherConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:      getEnv("SERVER_HOST", "localhost"),
			Port:      getEnvInt("SERVER_PORT", 8080),
			StaticDir: getEnv("STATIC_DIR", "./static"),
		},
		DB: DatabaseConfig{
			Path:      getEnv("DB_PATH", "./data/glof-alerts.db"),
			LakesCSV:  getEnv("LAKES_CSV", "./data/lakes.csv"),
			EventsCSV: getEnv("GLOF_EVENTS_CSV", "./data/glof_events.csv"),
		},
		SMS: SMSConfig{
			APIKey:   getEnv("FAST2SMS_API_KEY", ""),
			SenderID: getEnv("FAST2SMS_SENDER_ID", "GLOF"),
			Route:    getEnv("FAST2SMS_ROUTE", "q"),
			BaseURL:  getEnv("FAST2SMS_URL", "https://www.fast2sms.com/dev/bulkV2"),
			Timeout:  getEnvDuration("FAST2SMS_TIMEOUT", 30*time.Second),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
		},
		Connectivity: ConnectivityConfig{
			ProbeURL:     getEnv("CONNECTIVITY_PROBE_URL", "https://www.google.com"),
			ProbeTimeout: getEnvDuration("CONNECTIVITY_PROBE_TIMEOUT", 5*time.Second),
			Interval:     getEnvDuration("CONNECTIVITY_PROBE_INTERVAL", time.Minute),
		},
		Weather: WeatherConfig{
			APIKey:  getEnv("OPENWEATHER_API_KEY", ""),
			BaseURL: getEnv("OPENWEATHER_URL", "https://api.openweathermap.org/data/2.5/weather"),
			Timeout: getEnvDuration("OPENWEATHER_TIMEOUT", 10*time.Second),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.SMS.Timeout < time.Second {
		return fmt.Errorf("SMS timeout must be at least 1 second")
	}
	if c.Connectivity.ProbeTimeout < time.Second {
		return fmt.Errorf("connectivity probe timeout must be at least 1 second")
	}
	if c.Connectivity.Interval < 10*time.Second {
		return fmt.Errorf("connectivity probe interval must be at least 10 seconds")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
