package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KostasZigo/commitlint/internal/constants"
	"github.com/KostasZigo/commitlint/testutils"
)

func TestParse_EmptyUsesDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
backend: go-git
git:
  timeout: 5s
check:
  jobs: 8
`))
	require.NoError(t, err)

	assert.Equal(t, constants.BackendGoGit, cfg.Backend)
	assert.Equal(t, constants.DefaultGitBinary, cfg.Git.Binary)
	assert.Equal(t, 5*time.Second, cfg.Git.Timeout)
	assert.Equal(t, 8, cfg.Check.Jobs)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown backend", "backend: svn\n"},
		{"zero jobs", "check:\n  jobs: 0\n"},
		{"negative timeout", "git:\n  timeout: -1s\n"},
		{"empty binary", "git:\n  binary: \"\"\n"},
		{"unknown key", "rules:\n  - no-periods\n"},
		{"not yaml", "backend: [exec\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := testutils.CreateTestFile(t, dir, constants.ConfigFileName, []byte("git:\n  binary: /usr/local/bin/git\n"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/git", cfg.Git.Binary)
	assert.Equal(t, constants.BackendExec, cfg.Backend)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}
