/*
Package config manages the TOML config for wordhunt.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordhunt/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Source  SourceConfig  `toml:"source"`
	Wordle  WordleConfig  `toml:"wordle"`
	Keyword KeywordConfig `toml:"keyword"`
	Server  ServerConfig  `toml:"server"`
}

// SourceConfig selects the word list.
type SourceConfig struct {
	Path          string `toml:"path"`
	MinWordLength int    `toml:"min_word_length"`
}

// WordleConfig holds clue synthesis options.
type WordleConfig struct {
	MaxSomewhere int  `toml:"max_somewhere"`
	Color        bool `toml:"color"`
}

// KeywordConfig holds keyword solver options.
type KeywordConfig struct {
	All bool `toml:"all"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxResults int `toml:"max_results"`
}

// GetConfigDir returns the config directory: the user config dir when it
// can be determined, otherwise the executable's dir.
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Debugf("Failed to get user config directory: %v", err)
		return utils.GetExecutableDir()
	}
	return filepath.Join(configDir, "wordhunt"), nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordhunt/config.toml
// 3. Builtin defaults
//
// Unlike the default path, a custom path that cannot be read is an error.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, err := os.Stat(customConfigPath); err != nil {
			return nil, "", err
		}
		config, err := LoadConfig(customConfigPath)
		if err != nil {
			return nil, "", err
		}
		log.Debugf("Loaded config from custom path: %s", customConfigPath)
		return config, customConfigPath, nil
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Debugf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	if !utils.FileExists(defaultPath) {
		return DefaultConfig(), "", nil
	}
	config, err := LoadConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Path:          "",
			MinWordLength: 0,
		},
		Wordle: WordleConfig{
			MaxSomewhere: 6,
			Color:        true,
		},
		Keyword: KeywordConfig{
			All: false,
		},
		Server: ServerConfig{
			MaxResults: 500,
		},
	}
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every key of a broken file that still has the
// right type; the rest keep their defaults.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	sections, err := utils.LoadSections(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if source, ok := sections["source"]; ok {
		source.String("path", &config.Source.Path)
		source.Int("min_word_length", &config.Source.MinWordLength)
	}
	if wordle, ok := sections["wordle"]; ok {
		wordle.Int("max_somewhere", &config.Wordle.MaxSomewhere)
		wordle.Bool("color", &config.Wordle.Color)
	}
	if keyword, ok := sections["keyword"]; ok {
		keyword.Bool("all", &config.Keyword.All)
	}
	if server, ok := sections["server"]; ok {
		server.Int("max_results", &config.Server.MaxResults)
	}
	return config, nil
}

// WriteDefault writes the built-in defaults to path, creating its dir.
func WriteDefault(path string) error {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return SaveConfig(DefaultConfig(), path)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
