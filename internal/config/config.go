// Package config loads runtime settings for the diary CLI, layering
// defaults, an optional JSON file, and command-line flags. Later sources
// take precedence over earlier ones.
package config

// Config holds runtime settings for the diary CLI.
//
// Fields:
//   - DatabasePath: path of the SQLite file backing the persisted store.
//   - ExportDir: directory diary exports are written into.
type Config struct {
	DatabasePath string
	ExportDir    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "diary.db"
	c.ExportDir = "export"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
