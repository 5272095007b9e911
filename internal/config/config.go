package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Host string `yaml:"host" env:"SERVER_HOST"`
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Mongo struct {
		URI            string `yaml:"uri" env:"MONGODB_URI"`
		Database       string `yaml:"database" env:"MONGODB_DATABASE"`
		ConnectTimeout string `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT"`
		SocketTimeout  string `yaml:"socket_timeout" env:"MONGODB_SOCKET_TIMEOUT"`
	} `yaml:"mongo"`

	JWT struct {
		Secret     string `yaml:"secret" env:"JWT_SECRET"`
		Expiration string `yaml:"expiration" env:"JWT_EXPIRES_IN"`
		Issuer     string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; environment variables can carry everything
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Host = "0.0.0.0"
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Mongo.URI = "mongodb://localhost:27017"
	config.Mongo.Database = "collegehub"
	config.Mongo.ConnectTimeout = "5s"
	config.Mongo.SocketTimeout = "45s"

	config.JWT.Expiration = "24h"
	config.JWT.Issuer = "collegehub.api"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Mongo.URI == "" {
		return fmt.Errorf("mongo URI is required")
	}

	if config.Mongo.Database == "" {
		return fmt.Errorf("mongo database name is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.Expiration); err != nil {
		return fmt.Errorf("invalid JWT expiration format: %w", err)
	}

	for _, d := range []string{config.Mongo.ConnectTimeout, config.Mongo.SocketTimeout} {
		if _, err := time.ParseDuration(d); err != nil {
			return fmt.Errorf("invalid mongo timeout format: %w", err)
		}
	}

	return nil
}

// MongoConnectTimeout returns the parsed connection timeout. Validation has
// already guaranteed the value parses.
func (c *Config) MongoConnectTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Mongo.ConnectTimeout)
	return d
}

// MongoSocketTimeout returns the parsed socket timeout.
func (c *Config) MongoSocketTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Mongo.SocketTimeout)
	return d
}

// JWTExpiration returns the parsed token lifetime.
func (c *Config) JWTExpiration() time.Duration {
	d, _ := time.ParseDuration(c.JWT.Expiration)
	return d
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production"
}

// ListenAddr returns the host:port the HTTP server binds to
func (c *Config) ListenAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}
