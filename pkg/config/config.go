// Package config loads mazegen settings.
//
// Settings come from three layers, later layers winning:
//
//  1. Built-in defaults ([Default])
//  2. A TOML file, by default $XDG_CONFIG_HOME/mazegen/config.toml
//  3. MAZEGEN_* environment variables, optionally read from a .env file
//
// Command-line flags are applied on top by the CLI.
//
// Example config.toml:
//
//	[generate]
//	algorithm = "wilson"
//	columns = 30
//	rows = 15
//	seed = 7
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//	mongo_uri = "mongodb://localhost:27017"
//	request_timeout = "30s"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/render"
)

// AppName names the config and cache directories.
const AppName = "mazegen"

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config holds every setting.
type Config struct {
	Generate GenerateConfig `toml:"generate"`
	Cache    CacheConfig    `toml:"cache"`
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
}

// GenerateConfig holds defaults for generate and analyze.
type GenerateConfig struct {
	Columns   int      `toml:"columns"`
	Rows      int      `toml:"rows"`
	Algorithm string   `toml:"algorithm"`
	Seed      uint64   `toml:"seed"` // 0 uses the pipeline default
	CellSize  int      `toml:"cell_size"`
	Formats   []string `toml:"formats"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	Prefix        string `toml:"prefix"`
}

// ServerConfig configures `mazegen serve`.
type ServerConfig struct {
	Addr            string        `toml:"addr"`
	MongoURI        string        `toml:"mongo_uri"` // empty keeps mazes in memory
	MongoDatabase   string        `toml:"mongo_database"`
	MongoCollection string        `toml:"mongo_collection"`
	RequestTimeout  time.Duration `toml:"request_timeout"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Generate: GenerateConfig{
			Columns:   pipeline.DefaultColumns,
			Rows:      pipeline.DefaultRows,
			Algorithm: string(pipeline.DefaultAlgorithm),
			CellSize:  pipeline.DefaultCellSize,
			Formats:   []string{string(render.FormatSVG)},
		},
		Cache: CacheConfig{
			Backend: CacheFile,
			Dir:     DefaultCacheDir(),
			Prefix:  AppName,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			RequestTimeout: 30 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadOptions says where to read settings from.
type LoadOptions struct {
	// Path is the TOML file. Empty means [DefaultConfigPath], which may be absent.
	Path string
	// EnvFile is a dotenv file. Empty means ".env" in the working directory,
	// which may be absent.
	EnvFile string
}

// Load layers defaults, the TOML file and the environment, then validates.
func Load(opts LoadOptions) (Config, error) {
	cfg := Default()

	path, required := opts.Path, true
	if path == "" {
		path, required = DefaultConfigPath(), false
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) || required {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	env, err := newEnv(opts.EnvFile)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(env); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later and less clearly.
func (c Config) Validate() error {
	if _, err := maze.ParseAlgorithm(c.Generate.Algorithm); err != nil {
		return fmt.Errorf("generate.algorithm: %w", err)
	}
	for _, f := range c.Generate.Formats {
		if _, err := render.ParseFormat(f); err != nil {
			return fmt.Errorf("generate.formats: %w", err)
		}
	}
	switch c.Cache.Backend {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("cache.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("cache.backend: unknown backend %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout must not be negative")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// LogLevel returns the parsed log level, info when unparsable.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// PipelineOptions seeds pipeline options with the generate defaults.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Columns:   c.Generate.Columns,
		Rows:      c.Generate.Rows,
		Algorithm: c.Generate.Algorithm,
		Seed:      c.Generate.Seed,
		CellSize:  c.Generate.CellSize,
		Formats:   append([]string(nil), c.Generate.Formats...),
	}
}

// DefaultCacheDir returns the cache directory using XDG standard (~/.cache/mazegen/).
func DefaultCacheDir() string {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cache", AppName)
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/mazegen/config.toml, or the
// ~/.config equivalent.
func DefaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName, "config.toml")
}
