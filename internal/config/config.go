package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "COURIER"

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Delivery DeliveryConfig `mapstructure:"delivery" yaml:"delivery"`
}

// LoggerConfig drives the zap logger and its optional rotating file sink.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

type ColorConfig struct {
	Debug string `mapstructure:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" yaml:"warn"`
	Error string `mapstructure:"error" yaml:"error"`
	Fatal string `mapstructure:"fatal" yaml:"fatal"`
}

// ServerConfig.MapsDir, when set, is imported into the map store at startup.
// An empty AllowOrigins accepts any CORS origin.
type ServerConfig struct {
	Addr         string   `mapstructure:"addr" yaml:"addr"`
	MapsDir      string   `mapstructure:"maps_dir" yaml:"maps_dir"`
	AllowOrigins []string `mapstructure:"allow_origins" yaml:"allow_origins"`
}

// DatabaseConfig selects the run store. The memory driver ignores DSN.
type DatabaseConfig struct {
	Driver        string `mapstructure:"driver" yaml:"driver"`
	DSN           string `mapstructure:"dsn" yaml:"dsn"`
	MigrationsDir string `mapstructure:"migrations_dir" yaml:"migrations_dir"`
	AutoMigrate   bool   `mapstructure:"auto_migrate" yaml:"auto_migrate"`
}

type DeliveryConfig struct {
	MaxReplans  int    `mapstructure:"max_replans" yaml:"max_replans"`
	MaxSteps    int    `mapstructure:"max_steps" yaml:"max_steps"`
	Seed        int64  `mapstructure:"seed" yaml:"seed"`
	Algorithm   string `mapstructure:"algorithm" yaml:"algorithm"`
	MaxRestarts int    `mapstructure:"max_restarts" yaml:"max_restarts"`
}

func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "courier")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- Server --
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.maps_dir", "")
	v.SetDefault("server.allow_origins", []string{})

	// -- Database --
	v.SetDefault("database.driver", DriverMemory)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.migrations_dir", "")
	v.SetDefault("database.auto_migrate", true)

	// -- Delivery --
	v.SetDefault("delivery.max_replans", 3)
	v.SetDefault("delivery.max_steps", 100)
	v.SetDefault("delivery.seed", 1)
	v.SetDefault("delivery.algorithm", "all")
	v.SetDefault("delivery.max_restarts", 10)
}

func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load layers defaults, the optional config file and COURIER_* environment
// variables, in increasing precedence. An empty file searches ./config.yaml
// and tolerates its absence; an explicit file must exist.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	switch c.Database.Driver {
	case DriverMemory:
	case DriverPostgres, DriverMySQL:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for driver %s", c.Database.Driver)
		}
	default:
		return fmt.Errorf("database.driver must be one of memory, postgres, mysql, got %q", c.Database.Driver)
	}
	if c.Delivery.MaxReplans < 0 {
		return fmt.Errorf("delivery.max_replans must not be negative")
	}
	if c.Delivery.MaxSteps <= 0 {
		return fmt.Errorf("delivery.max_steps must be a positive integer")
	}
	if c.Delivery.MaxRestarts < 0 {
		return fmt.Errorf("delivery.max_restarts must not be negative")
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}
