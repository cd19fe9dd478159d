package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabasesConfig `mapstructure:"database"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Documento DocumentoConfig `mapstructure:"documento"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Hostname     string        `mapstructure:"hostname"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatabasesConfig holds all database configurations
type DatabasesConfig struct {
	Consentimento DatabaseConfig `mapstructure:"consentimento"`
}

// DatabaseConfig holds individual database configuration
type DatabaseConfig struct {
	Hostname        string        `mapstructure:"hostname"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// GetDSN builds the MySQL data source name. parseTime is required because the
// DAOs scan DATETIME columns into time.Time.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
		c.User, c.Password, c.Hostname, c.Port, c.Database)
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DocumentoConfig holds document rendering configuration
type DocumentoConfig struct {
	// StoragePath is where rendered acceptance documents are written.
	StoragePath string `mapstructure:"storage_path"`
	// VersaoTermo is the template version tag stamped on new records.
	VersaoTermo string `mapstructure:"versao_termo"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// AllowsOrigin reports whether CORS is enabled for the given origin. A "*"
// entry allows any origin.
func (c *Config) AllowsOrigin(origin string) bool {
	if !c.CORS.Enabled {
		return false
	}
	for _, allowed := range c.CORS.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

var globalConfig *Config

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("deployment")
		v.SetConfigType("yaml")
		v.AddConfigPath("./repository/conf")            // Production: <binary_dir>/repository/conf/
		v.AddConfigPath("./cmd/server/repository/conf") // Development
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("LGPD_FORM")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	globalConfig = &config
	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Database.Consentimento.Hostname == "" {
		return fmt.Errorf("database hostname is required")
	}
	if config.Database.Consentimento.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if config.Documento.StoragePath == "" {
		return fmt.Errorf("document storage path is required")
	}
	if config.Documento.VersaoTermo == "" {
		config.Documento.VersaoTermo = "1.0"
	}
	return nil
}

// Get returns the loaded global configuration.
func Get() *Config {
	return globalConfig
}

// SetGlobal replaces the global configuration. Intended for tests.
func SetGlobal(cfg *Config) {
	globalConfig = cfg
}
