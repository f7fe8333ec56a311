package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/cache"
	"github.com/matzehuels/mazegen/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local maze and artifact cache",
	}

	cmd.AddCommand(c.cacheStatsCommand())
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// fileCache opens the configured file cache, or reports why there is none.
func (c *CLI) fileCache() (*cache.FileCache, error) {
	if c.Config.Cache.Backend != config.CacheFile {
		return nil, fmt.Errorf("cache backend is %q; only the file cache is managed here", c.Config.Cache.Backend)
	}
	if c.Config.Cache.Dir == "" {
		return nil, fmt.Errorf("no cache directory configured")
	}
	return cache.NewFileCache(c.Config.Cache.Dir)
}

// cacheStatsCommand creates the "cache stats" subcommand.
func (c *CLI) cacheStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cached mazes and artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := c.fileCache()
			if err != nil {
				return err
			}
			usage, err := fc.Usage()
			if err != nil {
				return fmt.Errorf("read cache: %w", err)
			}
			rows := make([][]string, 0, 3)
			for _, k := range append(cache.Kinds(), cache.KindOther) {
				u, ok := usage[k]
				if !ok && k == cache.KindOther {
					continue
				}
				rows = append(rows, []string{string(k), strconv.Itoa(u.Entries), formatBytes(u.Bytes)})
			}
			renderTable(cmd.OutOrStdout(), []string{"Kind", "Entries", "Size"}, rows)
			return nil
		},
	}
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var mazes, artifacts bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached mazes and artifacts",
		Long: `Remove cached entries. Without flags every entry is removed.

Artifacts are cheap to re-render from a cached maze, so --artifacts is the
usual choice after changing render settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := c.fileCache()
			if err != nil {
				return err
			}
			var kinds []cache.Kind
			if mazes {
				kinds = append(kinds, cache.KindMaze)
			}
			if artifacts {
				kinds = append(kinds, cache.KindArtifact)
			}
			n, err := fc.Clear(kinds...)
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			if n == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Removed %d cache entries", n)
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}
	cmd.Flags().BoolVar(&mazes, "mazes", false, "remove generated mazes only")
	cmd.Flags().BoolVar(&artifacts, "artifacts", false, "remove rendered artifacts only")
	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.Config.Cache.Dir)
			return nil
		},
	}
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
