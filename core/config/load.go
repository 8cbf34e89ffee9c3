package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from path on fs. Path may name the file or
// the directory containing it. Keys missing from the file keep their default
// values.
func Load(fs afero.Fs, path string) (*Configuration, error) {
	if info, err := fs.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ConfigurationName)
	}

	configContents, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	out := defaultConfig()
	if err := yaml.UnmarshalStrict(configContents, out); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out.configFs = fs
	return out, nil
}

// FromEnvironment loads the file named by EnvConfigPath, or the defaults if
// the variable isn't set.
func FromEnvironment(fs afero.Fs) (*Configuration, error) {
	path, ok := os.LookupEnv(EnvConfigPath)
	if !ok || path == "" {
		out := defaultConfig()
		out.configFs = fs
		return out, nil
	}
	return Load(fs, path)
}
