package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ironsheep/sobel-edge-filter/internal/imaging"
	"github.com/ironsheep/sobel-edge-filter/internal/pipeline"
	"github.com/ironsheep/sobel-edge-filter/internal/server"
)

// app carries state shared by all subcommands.
type app struct {
	logCfg  logConfig
	log     zerolog.Logger
	save    imaging.SaveOptions
	workers int
	outDir  string

	// logReady is set once log has been built from the flags.
	logReady bool
}

func newRootCmd() *cobra.Command {
	return (&app{}).rootCmd()
}

// rootCmd builds the command tree. Errors are not printed by cobra; the
// caller reports them once through reportError.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sobel-edge",
		Short: "Sobel edge detection with three-level output",
		Long: "sobel-edge converts an image to grayscale, applies the Sobel operator and\n" +
			"writes an edge map whose pixels are black, grey or white depending on\n" +
			"edge strength. The output is 2 pixels smaller than the input in each direction.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(a.logCfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log = log
			a.logReady = true
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.logCfg.Level, "log-level", "", "log level: debug, info, warn, error (default $"+logLevelEnv+" or info)")
	pf.StringVar(&a.logCfg.Format, "log-format", "console", "log format: console or json")

	root.AddCommand(
		a.filterCmd(),
		a.batchCmd(),
		a.serveCmd(),
		versionCmd(),
	)
	return root
}

// reportError logs the error a command returned. Commands that fail before
// the logger exists (bad flags or arguments) get a console logger on w.
func (a *app) reportError(w io.Writer, err error) {
	log := a.log
	if !a.logReady {
		log = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
			With().Timestamp().Logger()
	}
	log.Error().Err(err).Msg("sobel-edge failed")
}

func (a *app) addSaveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.save.Format, "format", "", "output format overriding the file extension (jpg, png, gif, tif, bmp)")
	cmd.Flags().IntVar(&a.save.JPEGQuality, "quality", imaging.DefaultJPEGQuality, "JPEG quality, 1-100")
}

func (a *app) filterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter <input> [output]",
		Short: "Edge-detect a single image",
		Long:  "Edge-detect a single image. Without an output path the result is written to <input>_edges.jpg.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			job := pipeline.Job{Input: args[0]}
			if len(args) == 2 {
				job.Output = args[1]
			}

			runner := pipeline.NewRunner(a.log, pipeline.WithSaveOptions(a.save))
			rep, err := runner.Run(cmd.Context(), job)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rep.Output)
			return nil
		},
	}
	a.addSaveFlags(cmd)
	return cmd
}

func (a *app) batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <input>...",
		Short: "Edge-detect several images concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := a.batchJobs(args)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(a.log, pipeline.WithSaveOptions(a.save))
			reports := runner.RunBatch(cmd.Context(), jobs, a.workers)
			for _, rep := range reports {
				if rep.Err == nil {
					fmt.Fprintln(cmd.OutOrStdout(), rep.Output)
				}
			}

			if failed := pipeline.Failed(reports); len(failed) > 0 {
				return fmt.Errorf("%d of %d images failed", len(failed), len(reports))
			}
			return nil
		},
	}
	a.addSaveFlags(cmd)
	cmd.Flags().IntVarP(&a.workers, "workers", "w", 0, "images processed at once (default: number of CPUs)")
	cmd.Flags().StringVarP(&a.outDir, "out-dir", "o", "", "directory for outputs (default: next to each input)")
	return cmd
}

// batchJobs maps inputs to jobs, placing outputs in a.outDir when set.
func (a *app) batchJobs(inputs []string) ([]pipeline.Job, error) {
	if a.outDir != "" {
		if err := os.MkdirAll(a.outDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	jobs := make([]pipeline.Job, len(inputs))
	for i, in := range inputs {
		jobs[i].Input = in
		if a.outDir != "" {
			jobs[i].Output = filepath.Join(a.outDir, filepath.Base(pipeline.DefaultOutputName(in)))
		}
	}
	return jobs, nil
}

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the edge filter as MCP tools over stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.log.Debug().
				Str("version", Version).
				Str("built", BuildTime).
				Str("commit", GitCommit).
				Msg("starting MCP server")

			srv := server.New(a.log, server.WithVersion(Version), server.WithWorkers(a.workers))
			if err := srv.Run(cmd.Context()); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&a.workers, "workers", "w", 0, "images processed at once by image_sobel_batch (default: number of CPUs)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sobel-edge %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}
