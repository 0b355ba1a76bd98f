package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Input string
	Rule  string
	Scale int
	TPS   int
	Rate  int
	Seed  int64
	HUD   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "seats", Rule: "adjacent", Scale: 8, TPS: 60, Rate: 8, Seed: 42, HUD: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Input, "input", c.Input, "seat layout file; empty generates a random layout")
	fs.StringVar(&c.Rule, "rule", c.Rule, "neighbor rule (adjacent or visible)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random layouts")
	fs.IntVar(&c.HUD, "hud", c.HUD, "parameter panel width in pixels (0 hides it)")
}

// SimParams converts the flags into the string map sim factories accept.
func (c *Config) SimParams() map[string]string {
	params := map[string]string{
		"rule": c.Rule,
		"seed": strconv.FormatInt(c.Seed, 10),
	}
	if c.Input != "" {
		params["input"] = c.Input
	}
	return params
}
