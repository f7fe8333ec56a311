package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/render"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	columns   int
	rows      int
	maskFile  string // mask diagram, "-" for stdin
	algorithm string
	seed      uint64
	formats   string // comma separated
	output    string // file, base path, or "-" for stdout
	cellSize  int
	heatmap   bool
	path      bool
	root      string // "col,row"
	noCache   bool
	refresh   bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and render it",
		Long: `Generate a perfect maze and write it in one or more formats.

Every format is written next to the --output base path, e.g. "-o out -f svg,png"
writes out.svg and out.png. Use "-o -" to print a single format to stdout.

Examples:
  mazegen generate -c 30 -r 20 -a wilson -f ascii -o -
  mazegen generate --mask heart.txt -a hunt-and-kill --heatmap --path -f svg,png
  mazegen generate -f tree -o links`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := c.generateOptions(cmd, &opts)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), cmd.OutOrStdout(), popts, &opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.columns, "columns", "c", 0, "grid width (default from config)")
	f.IntVarP(&opts.rows, "rows", "r", 0, "grid height (default from config)")
	f.StringVarP(&opts.maskFile, "mask", "m", "", "mask diagram file ('.' present, 'x' absent, '-' for stdin)")
	f.StringVarP(&opts.algorithm, "algorithm", "a", "", "algorithm: "+algorithmList())
	f.Uint64VarP(&opts.seed, "seed", "s", 0, "random seed (0 picks the default seed, overrides generate.seed)")
	f.StringVarP(&opts.formats, "format", "f", "", "output format(s): ascii, svg, png, pdf, dot, tree, json (comma-separated)")
	f.StringVarP(&opts.output, "output", "o", "", "output base path, or - for stdout")
	f.IntVar(&opts.cellSize, "cell-size", 0, "cell side in pixels for svg, png and pdf")
	f.BoolVar(&opts.heatmap, "heatmap", false, "shade cells by distance from the root")
	f.BoolVar(&opts.path, "path", false, "overlay the longest path")
	f.StringVar(&opts.root, "root", "", "distance root as col,row (default: middle cell)")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	f.BoolVar(&opts.refresh, "refresh", false, "regenerate even when cached")

	_ = cmd.RegisterFlagCompletionFunc("algorithm", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(maze.Algorithms()))
		for _, a := range maze.Algorithms() {
			names = append(names, a.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// generateOptions layers changed flags over the configured defaults.
func (c *CLI) generateOptions(cmd *cobra.Command, opts *generateOpts) (pipeline.Options, error) {
	popts := c.Config.PipelineOptions()
	popts.Logger = c.Logger
	flags := cmd.Flags()

	mask, err := readMask(opts.maskFile, cmd.InOrStdin())
	if err != nil {
		return popts, err
	}
	if mask != "" {
		popts.Mask = mask
	}
	if flags.Changed("columns") {
		popts.Columns = opts.columns
	}
	if flags.Changed("rows") {
		popts.Rows = opts.rows
	}
	if opts.algorithm != "" {
		popts.Algorithm = opts.algorithm
	}
	if flags.Changed("seed") {
		popts.Seed = opts.seed
	}
	if opts.formats != "" {
		popts.Formats = strings.Split(opts.formats, ",")
	}
	if flags.Changed("cell-size") {
		popts.CellSize = opts.cellSize
	}
	popts.Heatmap = opts.heatmap
	popts.Path = opts.path
	popts.Refresh = opts.refresh
	if popts.Root, err = parseRoot(opts.root); err != nil {
		return popts, err
	}

	if err := popts.ValidateAndSetDefaults(); err != nil {
		return popts, err
	}
	if opts.output == "-" && len(popts.Formats) != 1 {
		return popts, fmt.Errorf("--output - needs exactly one format, got %d", len(popts.Formats))
	}
	return popts, nil
}

func (c *CLI) runGenerate(ctx context.Context, stdout io.Writer, popts pipeline.Options, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	if !render.ConverterAvailable() {
		kept := popts.Formats[:0:0]
		for _, name := range popts.Formats {
			if render.Format(name).NeedsConverter() {
				printWarning("skipping %s: rsvg-convert not found", name)
				continue
			}
			kept = append(kept, name)
		}
		if len(kept) == 0 {
			return fmt.Errorf("no format left to render")
		}
		popts.Formats = kept
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d cells with %s", result.Stats.Cells, result.Meta.Algorithm))

	if opts.output == "-" {
		_, err := stdout.Write(result.Artifacts[popts.Formats[0]])
		return err
	}

	printSuccess("%dx%d maze, %s, seed %d",
		result.Grid.Columns(), result.Grid.Rows(), result.Meta.Algorithm, result.Meta.Seed)
	printStats(result.Stats.Cells, result.Stats.Links, result.CacheInfo.GenerateHit)

	base := basePath(opts.output)
	for _, name := range popts.Formats {
		path := outputPath(base, render.Format(name))
		if err := os.WriteFile(path, result.Artifacts[name], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

func algorithmList() string {
	names := make([]string, 0, len(maze.Algorithms()))
	for _, a := range maze.Algorithms() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}
