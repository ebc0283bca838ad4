// Package config handles configuration for the Super Dentinho client,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - AdviceBaseURL: base URL of the advice service (also serves the
//     admin CRUD and the image endpoints).
//   - QuizBaseURL: base URL of the quiz service.
//   - TimeBaseURL: base URL of the time service.
//   - TimeZone: IANA zone requested from the time service.
//   - DatabaseDSN: path/DSN of the local SQLite database.
//   - RequestTimeout: per-request timeout for every remote call.
type Config struct {
	AdviceBaseURL  string
	QuizBaseURL    string
	TimeBaseURL    string
	TimeZone       string
	DatabaseDSN    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with the defaults of the hosted services.
func (c *Config) LoadDefaults() {
	c.AdviceBaseURL = "https://api-dentinho-feliz.onrender.com"
	c.QuizBaseURL = "https://api-higiene-bucal-2.onrender.com"
	c.TimeBaseURL = "https://www.timeapi.io/api"
	c.TimeZone = "America/Sao_Paulo"
	c.DatabaseDSN = "dentinho.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
