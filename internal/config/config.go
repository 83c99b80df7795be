package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config represents the main configuration structure for the TeamOps CLI
type Config struct {
	API      APIConfig      `yaml:"api"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// APIConfig contains personnel API connection settings
type APIConfig struct {
	Address string `yaml:"address"`
	// Token is the saved session credential obtained by 'teamops login'.
	Token string `yaml:"token"`
}

// DefaultsConfig contains default values for CLI operations
type DefaultsConfig struct {
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`
	Area         string `yaml:"area"`
}

// DefaultAPIAddress is where the personnel API listens when unconfigured.
const DefaultAPIAddress = "http://localhost:4000"

var (
	cfg        *Config
	configDir  string
	configFile string
)

// Init initializes the configuration system by creating config directory and loading config file
func Init() error {
	home, err := homedir.Dir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir = filepath.Join(home, ".teamops")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile = filepath.Join(configDir, "config.yaml")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	// Set defaults
	viper.SetDefault("defaults.output_format", "table")
	viper.SetDefault("api.address", DefaultAPIAddress)

	// Bind environment variables
	viper.SetEnvPrefix("TEAMOPS")
	viper.AutomaticEnv()

	// Override with environment variables
	if err := viper.BindEnv("api.address", "TEAMOPS_API_ADDR"); err != nil {
		return fmt.Errorf("failed to bind api.address env: %w", err)
	}
	if err := viper.BindEnv("api.token", "TEAMOPS_TOKEN"); err != nil {
		return fmt.Errorf("failed to bind api.token env: %w", err)
	}

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; create default config
		cfg = &Config{
			API: APIConfig{
				Address: DefaultAPIAddress,
			},
			Defaults: DefaultsConfig{
				OutputFormat: "table",
			},
		}
		return SaveConfig()
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration, initializing it if necessary
func GetConfig() *Config {
	if cfg == nil {
		if err := Init(); err != nil {
			// Log the error but continue with default config
			fmt.Printf("Warning: failed to initialize config: %v\n", err)
		}
	}
	return cfg
}

// SaveConfig saves the current configuration to disk
func SaveConfig() error {
	viper.Set("api", cfg.API)
	viper.Set("defaults", cfg.Defaults)

	return viper.WriteConfigAs(configFile)
}

// CatalogPath returns the location of the optional option-catalog override file
func CatalogPath() string {
	if configDir == "" {
		GetConfig()
	}
	return filepath.Join(configDir, "catalog.hcl")
}

// SetAPIAddress updates the personnel API address in configuration and saves it
func SetAPIAddress(address string) error {
	cfg.API.Address = address
	return SaveConfig()
}

// SetToken persists the session token obtained from a successful login
func SetToken(token string) error {
	cfg.API.Token = token
	return SaveConfig()
}

// ClearToken drops the saved session credential, e.g. on logout or a 401
func ClearToken() error {
	cfg.API.Token = ""
	return SaveConfig()
}

// SetOutputFormat updates the default output format in configuration and saves it
func SetOutputFormat(format string) error {
	cfg.Defaults.OutputFormat = format
	return SaveConfig()
}

// SetDefaultArea updates the default area/department in configuration and saves it
func SetDefaultArea(area string) error {
	cfg.Defaults.Area = area
	return SaveConfig()
}
