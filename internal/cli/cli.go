// Package cli implements the mazegen command-line interface.
//
// # Commands
//
//   - generate: build a maze and write it as ASCII, SVG, PNG, PDF, DOT, tree or JSON
//   - analyze: report distances, dead ends and the longest path of a saved maze
//   - survey: compare average dead ends across every algorithm
//   - tiles: list the 16 wall-code tiles
//   - view: browse a maze in the terminal
//   - serve: run the HTTP API
//   - cache: manage the local cache
//
// # Configuration
//
// Settings come from the TOML file given by --config (or the XDG default),
// a .env file, and MAZEGEN_* variables, in that order. Flags win over all of
// them. --verbose (-v) switches to debug logging.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/buildinfo"
	"github.com/matzehuels/mazegen/pkg/config"
	"github.com/matzehuels/mazegen/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	envFile    string
	verbose    bool
}

// New creates a new CLI instance with a default logger and built-in settings.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Mazegen generates, analyzes and renders perfect mazes",
		Long: `Mazegen builds perfect mazes on rectangular or masked grids with six classic
algorithms, measures them (distances, dead ends, longest path) and renders
them as ASCII, SVG, PNG, PDF or a Graphviz link tree.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/mazegen/config.toml)")
	pf.StringVar(&c.envFile, "env-file", "", "dotenv file (default .env)")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.surveyCommand())
	root.AddCommand(c.tilesCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads settings before any subcommand runs and attaches the
// logger to the command context.
func (c *CLI) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.LoadOptions{Path: c.configPath, EnvFile: c.envFile})
	if err != nil {
		return err
	}
	c.Config = cfg

	level := cfg.LogLevel()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg := c.Config
	if noCache {
		cfg.Cache.Backend = config.CacheNone
	}
	cache, err := cfg.OpenCache(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}
