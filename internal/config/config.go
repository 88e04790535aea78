package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KostasZigo/commitlint/internal/constants"
)

// Git configures the exec backend.
type Git struct {
	Binary  string        `yaml:"binary,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// Check configures range checking.
type Check struct {
	Jobs int `yaml:"jobs,omitempty"`
}

// Config is the content of .commitlint.yaml.
// It tunes how history is read, never which rules apply.
type Config struct {
	Backend string `yaml:"backend,omitempty"`
	Git     Git    `yaml:"git,omitempty"`
	Check   Check  `yaml:"check,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Backend: constants.BackendExec,
		Git: Git{
			Binary:  constants.DefaultGitBinary,
			Timeout: constants.DefaultTimeout,
		},
		Check: Check{
			Jobs: constants.DefaultJobs,
		},
	}
}

// Load reads the file at path over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected so typos do not go unnoticed.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Backend {
	case constants.BackendExec, constants.BackendGoGit:
	default:
		return fmt.Errorf("backend must be %q or %q, got %q", constants.BackendExec, constants.BackendGoGit, c.Backend)
	}
	if c.Git.Binary == "" {
		return errors.New("git.binary must not be empty")
	}
	if c.Git.Timeout <= 0 {
		return fmt.Errorf("git.timeout must be positive, got %s", c.Git.Timeout)
	}
	if c.Check.Jobs < 1 {
		return fmt.Errorf("check.jobs must be at least 1, got %d", c.Check.Jobs)
	}
	return nil
}
