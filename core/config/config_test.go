package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := defaultConfig()
	assert.NotNil(t, cfg)
	assert.Nil(t, cfg.Validate())
	assert.Equal(t, "SHELL_PROMPT", cfg.PromptEnv)
	assert.Equal(t, "shell>", cfg.DefaultPrompt)
	assert.Equal(t, 1, cfg.HistoryBase)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Configuration)
		wantErr string
	}{
		"bad-color": {
			mutate:  func(c *Configuration) { c.Color = "sometimes" },
			wantErr: "color",
		},
		"no-prompt-env": {
			mutate:  func(c *Configuration) { c.PromptEnv = "" },
			wantErr: "prompt_env",
		},
		"zero-max-args": {
			mutate:  func(c *Configuration) { c.MaxArgs = 0 },
			wantErr: "max_args",
		},
		"negative-history-base": {
			mutate:  func(c *Configuration) { c.HistoryBase = -1 },
			wantErr: "history_base",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/labshell/config.yaml", []byte("history_base: 0\ncolor: never\n"), 0644))

	t.Run("file", func(t *testing.T) {
		cfg, err := Load(fs, "/etc/labshell/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.HistoryBase)
		assert.Equal(t, ColorNever, cfg.Color)

		// Unset keys keep their defaults.
		assert.Equal(t, "shell>", cfg.DefaultPrompt)
	})

	t.Run("directory", func(t *testing.T) {
		cfg, err := Load(fs, "/etc/labshell")
		require.NoError(t, err)
		assert.Equal(t, ColorNever, cfg.Color)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Load(fs, "/does/not/exist.yaml")
		assert.Error(t, err)
	})

	t.Run("unknown-field", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/bad/config.yaml", []byte("ssh_port: 22\n"), 0644))
		_, err := Load(fs, "/bad")
		assert.Error(t, err)
	})

	t.Run("invalid-value", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/invalid/config.yaml", []byte("color: purple\n"), 0644))
		_, err := Load(fs, "/invalid/config.yaml")
		assert.Error(t, err)
	})
}

func TestFromEnvironment(t *testing.T) {
	fs := afero.NewMemMapFs()

	t.Run("unset", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")

		cfg, err := FromEnvironment(fs)
		require.NoError(t, err)
		assert.Equal(t, defaultConfig().MaxArgs, cfg.MaxArgs)
	})

	t.Run("set", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/home/user/config.yaml", []byte("max_args: 16\n"), 0644))
		t.Setenv(EnvConfigPath, "/home/user/config.yaml")

		cfg, err := FromEnvironment(fs)
		require.NoError(t, err)
		assert.Equal(t, 16, cfg.MaxArgs)
	})
}

func TestHistoryFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	t.Setenv("HOME", "/home/user")

	cfg := defaultConfig()
	cfg.configFs = fs

	t.Run("in-memory", func(t *testing.T) {
		cfg.HistoryFile = ""
		assert.Equal(t, "", cfg.HistoryPath())
		assert.Nil(t, cfg.PrepareHistoryFile())
	})

	t.Run("home-relative", func(t *testing.T) {
		cfg.HistoryFile = "~/.local/labshell/history"
		assert.Equal(t, filepath.Join("/home/user", ".local/labshell/history"), cfg.HistoryPath())

		assert.Nil(t, cfg.PrepareHistoryFile())
		exists, err := afero.DirExists(fs, "/home/user/.local/labshell")
		assert.Nil(t, err)
		assert.True(t, exists)
	})
}

func TestReadHistory(t *testing.T) {
	fs := afero.NewMemMapFs()
	t.Setenv("HOME", "/home/user")

	cfg := defaultConfig()
	cfg.configFs = fs

	t.Run("in-memory", func(t *testing.T) {
		cfg.HistoryFile = ""
		lines, err := cfg.ReadHistory()
		assert.Nil(t, err)
		assert.Empty(t, lines)
	})

	t.Run("missing", func(t *testing.T) {
		cfg.HistoryFile = "~/.labshell_history"
		lines, err := cfg.ReadHistory()
		assert.Nil(t, err)
		assert.Empty(t, lines)
	})

	t.Run("saved", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/home/user/.labshell_history", []byte("ls -la\n\ncd /tmp\n"), 0600))
		cfg.HistoryFile = "~/.labshell_history"

		lines, err := cfg.ReadHistory()
		assert.Nil(t, err)
		assert.Equal(t, []string{"ls -la", "cd /tmp"}, lines)
	})
}
