package config

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	// ConfigurationName is the file looked up when a directory is given.
	ConfigurationName = "config.yaml"

	// EnvConfigPath optionally points at a configuration file or directory.
	EnvConfigPath = "SHELL_CONFIG"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configFs afero.Fs

	PromptEnv     string `json:"prompt_env" validate:"required"`
	DefaultPrompt string `json:"default_prompt"`

	HistoryBase  int    `json:"history_base" validate:"gte=0"`
	HistoryLimit int    `json:"history_limit" validate:"gte=0"`
	HistoryFile  string `json:"history_file"`

	MaxArgs int    `json:"max_args" validate:"gte=1"`
	Color   string `json:"color" validate:"oneof=always auto never"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// HistoryPath returns the history file with a leading ~/ expanded, or the
// empty string if history isn't persisted.
func (c *Configuration) HistoryPath() string {
	path := c.HistoryFile
	if strings.HasPrefix(path, "~/") {
		if home, ok := os.LookupEnv("HOME"); ok {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}

// PrepareHistoryFile creates the directory holding the history file.
func (c *Configuration) PrepareHistoryFile() error {
	path := c.HistoryPath()
	if path == "" {
		return nil
	}
	return c.fs().MkdirAll(filepath.Dir(path), 0700)
}

// ReadHistory returns the lines saved in the history file, oldest first. A
// missing file holds no history.
func (c *Configuration) ReadHistory() ([]string, error) {
	path := c.HistoryPath()
	if path == "" {
		return nil, nil
	}

	contents, err := afero.ReadFile(c.fs(), path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(contents), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
