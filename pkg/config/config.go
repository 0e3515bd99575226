/*
Package config manages the TOML config of the w3w tools.

Values are resolved in this order, later sources winning:
built-in defaults, the config file, a .env file, then the process environment.
*/
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/what3words/w3w-go-wrapper/internal/utils"
)

const (
	// EnvAPIKey overrides [api].key.
	EnvAPIKey = "W3W_API_KEY"
	// EnvHost overrides [api].host.
	EnvHost = "W3W_HOST"

	appDir   = "w3w"
	fileName = "config.toml"
)

// Config holds the entire config structure
type Config struct {
	API    APIConfig    `toml:"api"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// APIConfig configures the what3words client.
type APIConfig struct {
	Key            string            `toml:"key"`
	Host           string            `toml:"host"`
	TimeoutSeconds int               `toml:"timeout_seconds"`
	Headers        map[string]string `toml:"headers"`
}

// Timeout returns the request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	// MaxInputBytes bounds the text of a single request.
	MaxInputBytes int `toml:"max_input_bytes"`
	// EnableLookups allows the valid and confirm ops to call the API.
	EnableLookups bool `toml:"enable_lookups"`
}

// CliConfig holds interactive mode options.
type CliConfig struct {
	Lookup      bool `toml:"lookup"`
	ShowOffsets bool `toml:"show_offsets"`
	NResults    int  `toml:"n_results"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Host:           "https://api.what3words.com/v3",
			TimeoutSeconds: 30,
			Headers:        map[string]string{},
		},
		Server: ServerConfig{
			MaxInputBytes: 64 * 1024,
			EnableLookups: true,
		},
		CLI: CliConfig{
			Lookup:      false,
			ShowOffsets: false,
			NResults:    3,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. os.UserConfigDir()/w3w
// 2. ~/.config/w3w
// 3. Current executable dir
func GetConfigDir() (string, error) {
	if dir, err := os.UserConfigDir(); err == nil {
		primary := filepath.Join(dir, appDir)
		if result := utils.CheckDirStatus(primary); result.Writable {
			return primary, nil
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		fallback := filepath.Join(home, ".config", appDir)
		if result := utils.CheckDirStatus(fallback); result.Writable {
			return fallback, nil
		}
	} else {
		log.Errorf("Failed to get home directory: %v", err)
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/w3w/config.toml
// 3. Builtin defaults
//
// Environment overrides are applied to whichever config was loaded.
// The returned path is "" when built-in defaults were used.
func LoadConfigWithPriority(customPath string) (*Config, string, error) {
	config, path := loadFile(customPath)
	ApplyEnv(config)
	return config, path, nil
}

func loadFile(customPath string) (*Config, string) {
	if customPath != "" {
		if _, statErr := os.Stat(customPath); statErr == nil {
			config, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return config, customPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), ""
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(path string) (*Config, error) {
	dir := filepath.Dir(path)
	if err := utils.EnsureDir(dir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", dir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(path) {
		config := DefaultConfig()
		if err := SaveConfig(config, path); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", path, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", path)
		return config, nil
	}

	return LoadConfig(path)
}

// LoadConfig loads from a TOML file. A file that fails to decode is
// salvaged section by section; keys that cannot be read keep their defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(path, config); err != nil {
		return tryPartialParse(path)
	}
	return config, nil
}

// tryPartialParse recovers what it can from a file the typed decode rejected.
func tryPartialParse(path string) (*Config, error) {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(path)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", path, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(raw, "api"); ok {
		extractAPIConfig(section, &config.API)
	}
	if section, ok := utils.ExtractSection(raw, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(raw, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractAPIConfig(data map[string]any, api *APIConfig) {
	if val, ok := utils.ExtractString(data, "key"); ok {
		api.Key = val
	}
	if val, ok := utils.ExtractString(data, "host"); ok {
		api.Host = val
	}
	if val, ok := utils.ExtractInt64(data, "timeout_seconds"); ok {
		api.TimeoutSeconds = val
	}
	if val, ok := utils.ExtractStringMap(data, "headers"); ok {
		api.Headers = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_input_bytes"); ok {
		server.MaxInputBytes = val
	}
	if val, ok := utils.ExtractBool(data, "enable_lookups"); ok {
		server.EnableLookups = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "lookup"); ok {
		cli.Lookup = val
	}
	if val, ok := utils.ExtractBool(data, "show_offsets"); ok {
		cli.ShowOffsets = val
	}
	if val, ok := utils.ExtractInt64(data, "n_results"); ok {
		cli.NResults = val
	}
}

// ApplyEnv loads a .env file from the working directory, if any, and lets
// W3W_API_KEY and W3W_HOST override the file values. Variables already set
// in the process environment win over .env.
func ApplyEnv(config *Config) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Failed to read .env: %v", err)
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		config.API.Key = key
	}
	if host := os.Getenv(EnvHost); host != "" {
		config.API.Host = host
	}
}

// RebuildConfigFile force creates a new config.toml at the default path
func RebuildConfigFile() (string, error) {
	path, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return "", err
	}
	return path, SaveConfig(DefaultConfig(), path)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(path string) string {
	if path == "" {
		return "built-in defaults"
	}
	return utils.GetAbsolutePath(path)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, path string) error {
	return utils.SaveTOMLFile(config, path)
}

// SetAPIKey stores key in the config and saves it to path.
func (c *Config) SetAPIKey(path, key string) error {
	c.API.Key = key
	return SaveConfig(c, path)
}
