package seats

import (
	"strconv"

	"seat-ca/internal/seating"
)

// Config controls the seat simulation. When Input is empty a random layout of
// Width x Height is generated from Seed.
type Config struct {
	Input string
	Rule  seating.Rule

	Width       int
	Height      int
	FloorChance float64
	Seed        int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rule:        seating.Adjacent,
		Width:       96,
		Height:      64,
		FloorChance: 0.2,
		Seed:        42,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["input"]; ok {
		c.Input = v
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := seating.ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["floor_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.FloorChance = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
