package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"seat-ca/internal/seating"
)

// Config describes one solver run.
type Config struct {
	// File is the optional YAML run file; it is never read from YAML itself.
	File string `yaml:"-"`

	Input         string   `yaml:"input"`
	Rules         []string `yaml:"rules"`
	MaxIterations int      `yaml:"max_iterations"`
	Workers       int      `yaml:"workers"`
	LogLevel      string   `yaml:"log_level"`
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() *Config {
	c := &Config{MaxIterations: seating.DefaultMaxIterations}
	applyDefaults(c)
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "YAML run file; explicit flags override its values")
	fs.StringVar(&c.Input, "input", c.Input, "seat layout file")
	fs.Var((*ruleList)(&c.Rules), "rules", "comma separated rules to run (adjacent, visible)")
	fs.IntVar(&c.MaxIterations, "max-iterations", c.MaxIterations, "steps allowed before a run is declared non-converging")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per simulation step")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Load reads a YAML run file and fills unset fields with defaults. The input
// may be left to the command line, so only the values present are checked.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Keys missing from the file keep their defaults.
	cfg := *NewConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.File = path
	applyDefaults(&cfg)
	if err := cfg.validateValues(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve merges flag values with the run file named by flags.File. Flags
// that were set explicitly on fs take precedence over the file.
func Resolve(fs *flag.FlagSet, flags *Config) (*Config, error) {
	if flags.File == "" {
		out := *flags
		applyDefaults(&out)
		return &out, out.Validate()
	}
	out, err := Load(flags.File)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			out.Input = flags.Input
		case "rules":
			out.Rules = flags.Rules
		case "max-iterations":
			out.MaxIterations = flags.MaxIterations
		case "workers":
			out.Workers = flags.Workers
		case "log-level":
			out.LogLevel = flags.LogLevel
		}
	})
	applyDefaults(out)
	return out, out.Validate()
}

func applyDefaults(c *Config) {
	if len(c.Rules) == 0 {
		for _, r := range seating.Rules() {
			c.Rules = append(c.Rules, r.String())
		}
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks the values a run cannot start without.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.Join(errors.New("no input file"), c.validateValues())
	}
	return c.validateValues()
}

func (c *Config) validateValues() error {
	var errs []error
	if _, err := c.ParsedRules(); err != nil {
		errs = append(errs, err)
	}
	if c.MaxIterations < 0 {
		errs = append(errs, fmt.Errorf("max_iterations must not be negative, got %d", c.MaxIterations))
	}
	return errors.Join(errs...)
}

// ParsedRules converts Rules into seating rules, dropping duplicates.
func (c *Config) ParsedRules() ([]seating.Rule, error) {
	var out []seating.Rule
	seen := map[seating.Rule]bool{}
	for _, name := range c.Rules {
		r, err := seating.ParseRule(name)
		if err != nil {
			return nil, err
		}
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out, nil
}

// Options returns the simulator options described by c.
func (c *Config) Options() seating.Options {
	return seating.Options{MaxIterations: c.MaxIterations, Workers: c.Workers}
}

type ruleList []string

func (l *ruleList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *ruleList) Set(v string) error {
	*l = nil
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}
