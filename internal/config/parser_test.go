package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	vizerrors "github.com/alexisbeaulieu97/searchviz/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "full configuration is parsed",
			contents: `version: "1.0"
settings:
  algorithm: binary
  step_delay: 250ms
  log_level: debug
  unicode: false
history:
  enabled: true
  path: /tmp/searchviz/history.db
  limit: 5
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "binary", cfg.Settings.Algorithm)
				require.Equal(t, 250*time.Millisecond, cfg.Settings.StepDelay.Std())
				require.Equal(t, "debug", cfg.Settings.LogLevel)
				require.False(t, cfg.Settings.Unicode)
				require.Equal(t, "/tmp/searchviz/history.db", cfg.History.Path)
				require.Equal(t, 5, cfg.History.Limit)
			},
		},
		{
			name: "missing keys keep defaults",
			contents: `version: "1.0"
settings:
  algorithm: binary
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				def := Default()
				require.Equal(t, "binary", cfg.Settings.Algorithm)
				require.Equal(t, def.Settings.StepDelay, cfg.Settings.StepDelay)
				require.Equal(t, def.History, cfg.History)
				require.True(t, cfg.Settings.Unicode)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: "version: \"1.0\"\nsettings: [1, 2\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *vizerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name: "bad duration returns parse error",
			contents: `version: "1.0"
settings:
  step_delay: soon
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *vizerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "invalid duration")
			},
		},
		{
			name: "unknown algorithm fails validation",
			contents: `version: "1.0"
settings:
  algorithm: jump
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *vizerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "settings.algorithm", validationErr.Field)
				require.Contains(t, validationErr.Message, "jump")
			},
		},
		{
			name: "excessive delay fails validation",
			contents: `version: "1.0"
settings:
  step_delay: 1m
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *vizerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "settings.step_delay", validationErr.Field)
			},
		},
		{
			name: "enabled history requires a path",
			contents: `version: "1.0"
history:
  enabled: true
  path: ""
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *vizerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "history.path", validationErr.Field)
			},
		},
		{
			name: "bad version fails validation",
			contents: `version: "beta"
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *vizerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *vizerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadWithExplicitPath(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "version: \"1.0\"\nsettings:\n  algorithm: binary\n"))
	require.NoError(t, err)
	require.Equal(t, "binary", cfg.Settings.Algorithm)
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateConfig(Default()))
	require.Error(t, ValidateConfig(nil))
}

func TestExpandPath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/.searchviz/history.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".searchviz", "history.db"), expanded)

	same, err := ExpandPath("/var/lib/history.db")
	require.NoError(t, err)
	require.Equal(t, "/var/lib/history.db", same)

	notHome, err := ExpandPath("~other/history.db")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(notHome, "~other"))
}
