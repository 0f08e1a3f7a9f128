package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config del servicio. Se carga de un YAML opcional (CONFIG_FILE) y
// después se pisan valores con variables de entorno.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig elige el backend del registro.
// Driver vacío: postgres si hay DSN, si no memoria.
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // memory | postgres | sqlite
	DSN    string `yaml:"dsn"`
}

type SnapshotConfig struct {
	Path           string `yaml:"path"`
	LoadOnStart    bool   `yaml:"load_on_start"`
	SaveOnShutdown bool   `yaml:"save_on_shutdown"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Snapshot: SnapshotConfig{
			Path: "pets.json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			App:    "neighborhood-pets",
		},
	}
}

// Load arma la config: defaults, YAML (si CONFIG_FILE está seteado) y env.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SNAPSHOT_PATH"); v != "" {
		cfg.Snapshot.Path = v
	}
	if v := os.Getenv("SNAPSHOT_LOAD_ON_START"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SNAPSHOT_LOAD_ON_START: %w", err)
		}
		cfg.Snapshot.LoadOnStart = b
	}
	if v := os.Getenv("SNAPSHOT_SAVE_ON_SHUTDOWN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SNAPSHOT_SAVE_ON_SHUTDOWN: %w", err)
		}
		cfg.Snapshot.SaveOnShutdown = b
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("APP_NAME"); v != "" {
		cfg.Logging.App = v
	}
	return nil
}

// Validate normaliza el driver y chequea combinaciones inválidas.
func (c *Config) Validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	if c.Database.Driver == "" {
		if strings.TrimSpace(c.Database.DSN) != "" {
			c.Database.Driver = DriverPostgres
		} else {
			c.Database.Driver = DriverMemory
		}
	}

	switch c.Database.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn required for driver %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}

	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("server.port required")
	}
	if strings.TrimSpace(c.Snapshot.Path) == "" {
		return fmt.Errorf("snapshot.path required")
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}
