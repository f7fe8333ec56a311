package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by [Load].
const (
	EnvColumns         = "MAZEGEN_COLUMNS"
	EnvRows            = "MAZEGEN_ROWS"
	EnvAlgorithm       = "MAZEGEN_ALGORITHM"
	EnvSeed            = "MAZEGEN_SEED"
	EnvCellSize        = "MAZEGEN_CELL_SIZE"
	EnvFormats         = "MAZEGEN_FORMATS"
	EnvCacheBackend    = "MAZEGEN_CACHE"
	EnvCacheDir        = "MAZEGEN_CACHE_DIR"
	EnvRedisAddr       = "MAZEGEN_REDIS_ADDR"
	EnvRedisPassword   = "MAZEGEN_REDIS_PASSWORD"
	EnvRedisDB         = "MAZEGEN_REDIS_DB"
	EnvAddr            = "MAZEGEN_ADDR"
	EnvMongoURI        = "MAZEGEN_MONGO_URI"
	EnvMongoDatabase   = "MAZEGEN_MONGO_DATABASE"
	EnvRequestTimeout  = "MAZEGEN_REQUEST_TIMEOUT"
	EnvLogLevel        = "MAZEGEN_LOG_LEVEL"
	defaultEnvFileName = ".env"
)

// env looks variables up in the process environment first, then in the
// dotenv file.
type env struct {
	file map[string]string
}

func newEnv(path string) (env, error) {
	required := path != ""
	if path == "" {
		path = defaultEnvFileName
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return env{}, nil
		}
		return env{}, fmt.Errorf("read env file %s: %w", path, err)
	}
	return env{file: vars}, nil
}

func (e env) lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	v, ok := e.file[key]
	return v, ok
}

func (c *Config) applyEnv(e env) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := e.lookup(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := e.lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s must be an integer: %w", key, err))
				return
			}
			*dst = n
		}
	}

	num(EnvColumns, &c.Generate.Columns)
	num(EnvRows, &c.Generate.Rows)
	str(EnvAlgorithm, &c.Generate.Algorithm)
	if v, ok := e.lookup(EnvSeed); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be an unsigned integer: %w", EnvSeed, err))
		} else {
			c.Generate.Seed = n
		}
	}
	num(EnvCellSize, &c.Generate.CellSize)
	if v, ok := e.lookup(EnvFormats); ok {
		c.Generate.Formats = strings.Split(v, ",")
	}

	str(EnvCacheBackend, &c.Cache.Backend)
	str(EnvCacheDir, &c.Cache.Dir)
	str(EnvRedisAddr, &c.Cache.RedisAddr)
	str(EnvRedisPassword, &c.Cache.RedisPassword)
	num(EnvRedisDB, &c.Cache.RedisDB)

	str(EnvAddr, &c.Server.Addr)
	str(EnvMongoURI, &c.Server.MongoURI)
	str(EnvMongoDatabase, &c.Server.MongoDatabase)
	if v, ok := e.lookup(EnvRequestTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be a duration: %w", EnvRequestTimeout, err))
		} else {
			c.Server.RequestTimeout = d
		}
	}

	str(EnvLogLevel, &c.Log.Level)
	return errors.Join(errs...)
}
