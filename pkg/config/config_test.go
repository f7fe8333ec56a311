package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mazegen/pkg/cache"
	"github.com/matzehuels/mazegen/pkg/store"
)

// isolate points every lookup at an empty temp dir so the developer's own
// config, .env and MAZEGEN_* variables do not leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	for _, key := range []string{
		EnvColumns, EnvRows, EnvAlgorithm, EnvCellSize, EnvFormats, EnvCacheBackend,
		EnvCacheDir, EnvRedisAddr, EnvRedisPassword, EnvRedisDB, EnvAddr, EnvMongoURI,
		EnvMongoDatabase, EnvRequestTimeout, EnvLogLevel,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Chdir(dir)
	return dir
}

func write(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, Default().Generate, cfg.Generate)
	assert.Equal(t, CacheFile, cfg.Cache.Backend)
	assert.Equal(t, filepath.Join(dir, "cache", AppName), cfg.Cache.Dir)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel())
}

func TestLoadTOML(t *testing.T) {
	dir := isolate(t)
	path := write(t, filepath.Join(dir, "mazegen.toml"), `
[generate]
algorithm = "wilson"
columns = 30
seed = 7
formats = ["svg", "ascii"]

[cache]
backend = "none"

[server]
addr = "127.0.0.1:9000"
request_timeout = "5s"

[log]
level = "debug"
`)

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "wilson", cfg.Generate.Algorithm)
	assert.Equal(t, 30, cfg.Generate.Columns)
	assert.Equal(t, uint64(7), cfg.Generate.Seed)
	assert.Equal(t, Default().Generate.Rows, cfg.Generate.Rows, "unset keys keep defaults")
	assert.Equal(t, []string{"svg", "ascii"}, cfg.Generate.Formats)
	assert.Equal(t, CacheNone, cfg.Cache.Backend)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
}

func TestLoadDefaultPath(t *testing.T) {
	dir := isolate(t)
	write(t, filepath.Join(dir, "config", AppName, "config.toml"), "[generate]\nrows = 7\n")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Generate.Rows)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(LoadOptions{Path: filepath.Join(dir, "nope.toml")})
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := write(t, filepath.Join(dir, "c.toml"), "[generate]\nalgorithm = \"wilson\"\n")
	t.Setenv(EnvAlgorithm, "sidewinder")
	t.Setenv(EnvColumns, "12")
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvFormats, "png,pdf")
	t.Setenv(EnvRequestTimeout, "1m")

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "sidewinder", cfg.Generate.Algorithm)
	assert.Equal(t, 12, cfg.Generate.Columns)
	assert.Equal(t, uint64(1234), cfg.Generate.Seed)
	assert.Equal(t, []string{"png", "pdf"}, cfg.Generate.Formats)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	write(t, filepath.Join(dir, ".env"), "MAZEGEN_CACHE=none\nMAZEGEN_ROWS=9\n")
	t.Setenv(EnvRows, "11")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, CacheNone, cfg.Cache.Backend, "read from .env")
	assert.Equal(t, 11, cfg.Generate.Rows, "process environment wins over .env")
}

func TestLoadExplicitEnvFileMustExist(t *testing.T) {
	dir := isolate(t)
	_, err := Load(LoadOptions{EnvFile: filepath.Join(dir, "missing.env")})
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad int", EnvColumns, "ten"},
		{"negative seed", EnvSeed, "-1"},
		{"bad duration", EnvRequestTimeout, "soon"},
		{"bad algorithm", EnvAlgorithm, "prim"},
		{"bad format", EnvFormats, "svg,gif"},
		{"bad backend", EnvCacheBackend, "memcached"},
		{"redis without addr", EnvCacheBackend, "redis"},
		{"bad level", EnvLogLevel, "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load(LoadOptions{})
			assert.Error(t, err)
		})
	}
}

func TestPipelineOptions(t *testing.T) {
	cfg := Default()
	cfg.Generate.Algorithm = "wilson"
	cfg.Generate.Seed = 3
	opts := cfg.PipelineOptions()
	assert.Equal(t, "wilson", opts.Algorithm)
	assert.Equal(t, uint64(3), opts.Seed)
	require.NoError(t, opts.ValidateAndSetDefaults())

	opts.Formats[0] = "png"
	assert.Equal(t, "svg", cfg.Generate.Formats[0], "formats are copied")
}

func TestOpenCacheAndStore(t *testing.T) {
	dir := isolate(t)
	ctx := context.Background()

	cfg := Default()
	cfg.Cache.Dir = filepath.Join(dir, "c")
	c, err := cfg.OpenCache(ctx)
	require.NoError(t, err)
	assert.IsType(t, &cache.FileCache{}, c)
	require.NoError(t, c.Close())

	cfg.Cache.Backend = CacheNone
	c, err = cfg.OpenCache(ctx)
	require.NoError(t, err)
	assert.IsType(t, cache.NullCache{}, c)

	s, err := cfg.OpenStore(ctx)
	require.NoError(t, err)
	assert.IsType(t, &store.MemoryStore{}, s)
}
