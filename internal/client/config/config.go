// Package config handles configuration for the terminal client.
package config

import (
	"flag"
	"os"

	"github.com/forgeapi/notes/internal/flagx"
)

// Config holds runtime settings for the terminal client.
type Config struct {
	// ServerBaseURL is the base URL of the notes backend, e.g. "http://localhost:8080".
	ServerBaseURL string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
}

// LoadConfig builds a Config from defaults, the NOTES_SERVER environment
// variable, and the -a flag, in that order of precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	if v, ok := os.LookupEnv("NOTES_SERVER"); ok {
		cfg.ServerBaseURL = v
	}

	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "server base URL")
	_ = fs.Parse(args)

	return cfg
}
