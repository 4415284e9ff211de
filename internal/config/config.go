package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"cellkit/internal/logger"
)

// DefaultPath is where commands look for the project configuration.
const DefaultPath = "cellkit.yaml"

type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

type ProjectConfig struct {
	Project  string         `yaml:"project"`
	Version  int            `yaml:"version"`
	LogLevel string         `yaml:"log_level"`
	Database DatabaseConfig `yaml:"database"`
	Sources  []Source       `yaml:"sources"`
	Exclude  []string       `yaml:"exclude"`
	Archive  *ArchiveConfig `yaml:"archive"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// ArchiveConfig selects where rendered markup is published. Driver is "fs"
// (Dir) or "s3" (Bucket, optional Region, Endpoint, Prefix, PathStyle).
type ArchiveConfig struct {
	Driver    string `yaml:"driver"`
	Dir       string `yaml:"dir"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	Prefix    string `yaml:"prefix"`
	PathStyle bool   `yaml:"path_style"`
}

// Source is a named group of directories holding model documents.
type Source struct {
	Name  string   `yaml:"name"`
	Paths []string `yaml:"paths"`
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

// Backend reports which catalog store the DSN selects.
func (c *ProjectConfig) Backend() Backend {
	return backendFor(c.Database.DSN)
}

func backendFor(dsn string) Backend {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return BackendSQLite
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres
	default:
		return ""
	}
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return fmt.Errorf("database dsn is required")
	}
	if backendFor(cfg.Database.DSN) == "" {
		return fmt.Errorf("unsupported database dsn scheme: %s", cfg.Database.DSN)
	}
	if cfg.LogLevel != "" {
		if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
			return fmt.Errorf("unsupported log level: %s", cfg.LogLevel)
		}
	}
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("at least one source is required")
	}

	seen := make(map[string]struct{})
	for i, source := range cfg.Sources {
		if strings.TrimSpace(source.Name) == "" {
			return fmt.Errorf("source %d name is required", i)
		}
		if len(source.Paths) == 0 {
			return fmt.Errorf("source %d paths are required", i)
		}
		key := strings.ToLower(source.Name)
		if _, exists := seen[key]; exists {
			return fmt.Errorf("duplicate source name: %s", source.Name)
		}
		seen[key] = struct{}{}
	}

	if cfg.Archive != nil {
		if err := validateArchive(cfg.Archive); err != nil {
			return err
		}
	}
	return nil
}

func validateArchive(a *ArchiveConfig) error {
	switch a.Driver {
	case "fs":
		if strings.TrimSpace(a.Dir) == "" {
			return fmt.Errorf("archive dir is required for the fs driver")
		}
	case "s3":
		if strings.TrimSpace(a.Bucket) == "" {
			return fmt.Errorf("archive bucket is required for the s3 driver")
		}
	default:
		return fmt.Errorf("unsupported archive driver: %q", a.Driver)
	}
	return nil
}
