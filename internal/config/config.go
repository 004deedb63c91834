// Package config loads the optional configuration file. Everything has a
// default; installs without a file behave identically to the hosted
// platform.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/techskyline/academy/internal/credential"
	"github.com/techskyline/academy/internal/progress"
)

// Config is the on-disk configuration shape.
type Config struct {
	Awards struct {
		Module *int `yaml:"module"`
		Lab    *int `yaml:"lab"`
		Quiz   *int `yaml:"quiz"`
	} `yaml:"awards"`

	Eligibility struct {
		Policy          string `yaml:"policy"`
		CreditThreshold int    `yaml:"credit_threshold"`
	} `yaml:"eligibility"`
}

// DefaultPath returns the config file location: ACADEMY_CONFIG if set,
// otherwise XDG config dir.
func DefaultPath() (string, error) {
	if p := os.Getenv("ACADEMY_CONFIG"); p != "" {
		return p, nil
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "academy", "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error: it
// yields the zero Config, which resolves to all defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// AwardsTable resolves the xp table, filling unset entries from the
// defaults.
func (c *Config) AwardsTable() progress.Awards {
	awards := progress.DefaultAwards()
	if c.Awards.Module != nil {
		awards[progress.KindModule] = *c.Awards.Module
	}
	if c.Awards.Lab != nil {
		awards[progress.KindLab] = *c.Awards.Lab
	}
	if c.Awards.Quiz != nil {
		awards[progress.KindQuiz] = *c.Awards.Quiz
	}
	return awards
}

// IssuerPolicy resolves the eligibility policy and credit threshold.
func (c *Config) IssuerPolicy() (credential.Policy, int, error) {
	switch c.Eligibility.Policy {
	case "", string(credential.PolicyFullCatalog):
		return credential.PolicyFullCatalog, 0, nil
	case string(credential.PolicyCreditThreshold):
		return credential.PolicyCreditThreshold, c.Eligibility.CreditThreshold, nil
	}
	return "", 0, fmt.Errorf("unknown eligibility policy %q", c.Eligibility.Policy)
}
