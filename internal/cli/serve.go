package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/server"
)

type serveOpts struct {
	addr     string
	mongoURI string
	noCache  bool
}

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the maze API. Mazes are archived in MongoDB when a URI is configured
(server.mongo_uri or MAZEGEN_MONGO_URI), in memory otherwise. Rendered
artifacts go through the configured cache backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB URI for the maze archive")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg := c.Config
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if opts.mongoURI != "" {
		cfg.Server.MongoURI = opts.mongoURI
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	st, err := cfg.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	backend := "memory"
	if cfg.Server.MongoURI != "" {
		backend = "mongodb"
	}
	logger.Info("starting server", "addr", cfg.Server.Addr, "store", backend, "cache", cfg.Cache.Backend)

	srv := server.New(server.Options{
		Runner:         runner,
		Store:          st,
		Logger:         logger,
		RequestTimeout: cfg.Server.RequestTimeout,
		Defaults:       cfg.PipelineOptions(),
	})
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}
