// Package config loads the optional .repo2md.yaml file from the working
// directory. File values extend the built-in ignore defaults; command-line
// flags always win over both.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// configName is the base name viper resolves against the search path, so
// the file on disk is .repo2md.yaml.
const configName = ".repo2md"

// IgnoreConfig lists additional names and extensions to ignore.
type IgnoreConfig struct {
	Dirs       []string `mapstructure:"dirs"`
	Files      []string `mapstructure:"files"`
	Extensions []string `mapstructure:"extensions"`
}

// FileConfig is the full shape of a .repo2md.yaml file.
type FileConfig struct {
	Ignore    IgnoreConfig `mapstructure:"ignore"`
	Structure string       `mapstructure:"structure"`
	Decode    string       `mapstructure:"decode"`
}

// Load reads the config file from searchDir. A missing file is not an
// error and yields the zero configuration.
func Load(searchDir string) (FileConfig, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(searchDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to read config from %s: %w", searchDir, err)
	}

	var cfg FileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse %s: %w", v.ConfigFileUsed(), err)
	}
	return cfg, nil
}
