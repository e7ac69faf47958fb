package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Config is the survey configuration read from a TOML file.
type Config struct {
	Survey struct {
		// Seed is the seed of the reference world.
		Seed int64
		// Radius is the half side of the surveyed square around the origin.
		Radius int
		// SiteRadius is the half side of the square sampled around each village centre.
		SiteRadius int
		// MaxVariance is the roughest terrain a village is still built on.
		MaxVariance int
		// Build places the accepted villages into the world.
		Build bool
	}
	Themes struct {
		// Builtin registers the themes shipped with the program.
		Builtin bool
		// Files lists TOML theme files registered after the built-in themes.
		Files []string
	}
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	c := Config{}
	c.Survey.Radius = 1024
	c.Survey.SiteRadius = 8
	c.Survey.MaxVariance = 16
	c.Survey.Build = true
	c.Themes.Builtin = true
	return c
}

// readConfig reads the configuration from path, or creates the file with the
// default configuration if it does not yet exist.
func readConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return c, fmt.Errorf("create default config: %w", err)
		}
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
