package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/pipeline"
)

type surveyOpts struct {
	columns    int
	rows       int
	maskFile   string
	tries      int
	seed       uint64
	algorithms string
	workers    int
	asJSON     bool
}

// surveyCommand creates the survey command comparing algorithms.
func (c *CLI) surveyCommand() *cobra.Command {
	opts := surveyOpts{tries: pipeline.DefaultSurveyTries}

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Compare average dead ends across algorithms",
		Long: `Generate many mazes per algorithm on the same grid and compare their
average number of dead ends and longest path. Results are deterministic for a
given --seed regardless of --workers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sopts, err := c.surveyOptions(cmd, &opts)
			if err != nil {
				return err
			}
			return runSurvey(cmd.Context(), cmd.OutOrStdout(), sopts, opts.asJSON)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.columns, "columns", "c", 0, "grid width (default from config)")
	f.IntVarP(&opts.rows, "rows", "r", 0, "grid height (default from config)")
	f.StringVarP(&opts.maskFile, "mask", "m", "", "mask diagram file ('-' for stdin)")
	f.IntVarP(&opts.tries, "tries", "n", opts.tries, "mazes per algorithm")
	f.Uint64VarP(&opts.seed, "seed", "s", 0, "base seed")
	f.StringVarP(&opts.algorithms, "algorithms", "a", "", "comma-separated subset (default: all)")
	f.IntVarP(&opts.workers, "workers", "w", 0, "parallel workers (default GOMAXPROCS)")
	f.BoolVar(&opts.asJSON, "json", false, "print results as JSON")

	return cmd
}

func (c *CLI) surveyOptions(cmd *cobra.Command, opts *surveyOpts) (pipeline.SurveyOptions, error) {
	sopts := pipeline.SurveyOptions{
		Columns: c.Config.Generate.Columns,
		Rows:    c.Config.Generate.Rows,
		Tries:   opts.tries,
		Seed:    opts.seed,
		Workers: opts.workers,
	}
	if cmd.Flags().Changed("columns") {
		sopts.Columns = opts.columns
	}
	if cmd.Flags().Changed("rows") {
		sopts.Rows = opts.rows
	}
	mask, err := readMask(opts.maskFile, cmd.InOrStdin())
	if err != nil {
		return sopts, err
	}
	sopts.Mask = mask

	for _, name := range strings.Split(opts.algorithms, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		a, err := maze.ParseAlgorithm(name)
		if err != nil {
			return sopts, err
		}
		sopts.Algorithms = append(sopts.Algorithms, a)
	}
	return sopts, nil
}

func runSurvey(ctx context.Context, w io.Writer, opts pipeline.SurveyOptions, asJSON bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %d mazes per algorithm...", opts.Tries))
	spinner.Start()
	results, err := pipeline.Survey(ctx, opts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Surveyed %d algorithms", len(results)))

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Unsupported {
			rows = append(rows, []string{r.Algorithm.String(), uniformMark(r.Algorithm), "unsupported mask", "", "", ""})
			continue
		}
		rows = append(rows, []string{
			r.Algorithm.String(),
			uniformMark(r.Algorithm),
			strconv.FormatFloat(r.AverageDeadEnds, 'f', 1, 64),
			fmt.Sprintf("%.1f%%", 100*r.DeadEndRatio),
			strconv.FormatFloat(r.AverageLongestPath, 'f', 1, 64),
			(r.Duration / time.Duration(max(r.Tries, 1))).Round(time.Microsecond).String(),
		})
	}
	renderTable(w, []string{"Algorithm", "Uniform", "Dead ends", "Ratio", "Longest path", "Per maze"}, rows)
	return nil
}

func uniformMark(a maze.Algorithm) string {
	if a.Uniform() {
		return iconSuccess
	}
	return ""
}
