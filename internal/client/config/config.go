package config

import "time"

// Config holds runtime settings for the fieldassets CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the remote field-service API.
//   - DatabasePath: path of the local SQLite catalog cache. A breaking
//     schema change ships under a new file name instead of a migration.
//   - FetchPacing: minimum spacing between remote calls during a full
//     sync; the backend is bandwidth constrained and is polled politely.
//   - HTTPTimeout: per-request timeout for all API calls.
type Config struct {
	ServerBaseURL string
	DatabasePath  string
	FetchPacing   time.Duration
	HTTPTimeout   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://isletmem.online/asset"
	c.DatabasePath = "assets.db"
	c.FetchPacing = 200 * time.Millisecond
	c.HTTPTimeout = 15 * time.Second
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
