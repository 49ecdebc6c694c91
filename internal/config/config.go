package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config represents the gluemodel configuration
type Config struct {
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	AWS    AWSConfig    `yaml:"aws" mapstructure:"aws"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// OutputConfig controls how commands render their results
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

// AWSConfig represents the settings used to build the Glue SDK client
type AWSConfig struct {
	Region   string `yaml:"region" mapstructure:"region"`
	Profile  string `yaml:"profile" mapstructure:"profile"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
}

var (
	v        *viper.Viper
	instance *Config
	initOnce sync.Once
	mu       sync.RWMutex
)

// ResetConfig resets the configuration instance (for testing)
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	v = nil
	instance = nil
	initOnce = sync.Once{}
}

// InitConfig initializes the configuration with Viper
func InitConfig() error {
	initOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		v = viper.New()

		v.SetDefault("log.level", "info")
		v.SetDefault("log.format", "text")
		v.SetDefault("output.format", "text")
		v.SetDefault("aws.region", "us-east-1")
		v.SetDefault("aws.profile", "")
		v.SetDefault("aws.endpoint", "")

		v.SetEnvPrefix("GLUEMODEL")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		bindAWSEnvVars()
	})

	return nil
}

// bindAWSEnvVars lets the standard AWS variables act as fallbacks
func bindAWSEnvVars() {
	v.BindEnv("aws.region", "GLUEMODEL_AWS_REGION", "AWS_REGION", "AWS_DEFAULT_REGION")
	v.BindEnv("aws.profile", "GLUEMODEL_AWS_PROFILE", "AWS_PROFILE")
	v.BindEnv("aws.endpoint", "GLUEMODEL_AWS_ENDPOINT", "AWS_ENDPOINT_URL_GLUE")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "text",
		},
		AWS: AWSConfig{
			Region: "us-east-1",
		},
	}
}

// LoadConfig loads configuration from a file. An empty path searches the
// standard locations and tolerates a missing file.
func LoadConfig(configPath string) (*Config, error) {
	if err := InitConfig(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file does not exist: %s", configPath)
			}
			return nil, fmt.Errorf("failed to access config file: %w", err)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".gluemodel")
		v.AddConfigPath("$HOME/.gluemodel")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	instance = cfg
	return cfg, nil
}

// GetConfig returns the current configuration instance
func GetConfig() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		return DefaultConfig()
	}
	return instance
}

// Set overrides a configuration value and refreshes the loaded instance
func Set(key string, value any) error {
	ensureInitialized()
	mu.Lock()
	defer mu.Unlock()
	v.Set(key, value)
	if instance != nil {
		if err := v.Unmarshal(instance); err != nil {
			return fmt.Errorf("failed to apply %s: %w", key, err)
		}
	}
	return nil
}

func ensureInitialized() {
	mu.RLock()
	initialized := v != nil
	mu.RUnlock()

	if !initialized {
		InitConfig()
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	if c.AWS.Region != "" && len(c.AWS.Region) < 3 {
		return fmt.Errorf("invalid AWS region format: %s", c.AWS.Region)
	}

	return nil
}
