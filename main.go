package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/percona/percona-dllist/bench"
	"github.com/percona/percona-dllist/config"
	"github.com/percona/percona-dllist/errors"
	"github.com/percona/percona-dllist/log"
	"github.com/percona/percona-dllist/metrics"
	"github.com/percona/percona-dllist/sorter"
)

func main() {
	var (
		logLevelFlag string
		logJSON      bool
		logNoColor   bool
	)

	reg := prometheus.NewRegistry()
	metrics.Init(reg)

	rootCmd := &cobra.Command{
		Use:   "dllist",
		Short: "Percona doubly linked list tools",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logLevel, err := zerolog.ParseLevel(logLevelFlag)
			if err != nil {
				log.InitGlobals(0, logJSON, true).Fatal().Msg("Unknown log level")
			}

			lg := log.InitGlobals(logLevel, logJSON || config.ForceLogJSON(), logNoColor)
			ctx := lg.WithContext(context.Background())
			cmd.SetContext(ctx)
		},
	}

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "Log level")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Output log in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logNoColor, "no-color", false, "Disable log color")

	rootCmd.AddCommand(newSortCmd(), newBenchCmd(reg))

	err := rootCmd.Execute()
	if err != nil {
		zerolog.Ctx(context.Background()).Fatal().Err(err).Msg("")
	}
}

func newSortCmd() *cobra.Command {
	var opts sorter.Options

	cmd := &cobra.Command{
		Use:   "sort [FILE]",
		Short: "Stable sort of text lines or Extended JSON documents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin

			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open input")
				}
				defer f.Close()

				in = f
			}

			_, err := sorter.Run(cmd.Context(), in, cmd.OutOrStdout(), opts)

			return err //nolint:wrapcheck
		},
	}

	addSortFlags(cmd.Flags(), &opts)

	return cmd
}

func addSortFlags(fs *pflag.FlagSet, opts *sorter.Options) {
	fs.StringVarP(&opts.Key, "key", "k", "",
		"Dotted field path; input lines are Extended JSON documents ordered by this field")
	fs.BoolVarP(&opts.Numeric, "numeric", "n", false, "Compare lines by numeric value")
	fs.BoolVar(&opts.Ordered, "ordered", false, "Build the list with ordered insertion")
	fs.BoolVarP(&opts.Reverse, "reverse", "r", false, "Write the result in reverse order")
	fs.BoolVarP(&opts.Unique, "unique", "u", false, "Drop elements equal to their predecessor")
	fs.IntVar(&opts.MaxSize, "max-size", config.MaxListSize(),
		"Maximum number of elements held (0 is unlimited)")
}

func newBenchCmd(gatherer prometheus.Gatherer) *cobra.Command {
	var (
		opts         bench.Options
		printMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run list workloads and report timings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			log.Ctx(ctx).Infof("Running %d elements per workload", opts.Size)

			results, err := bench.Run(ctx, opts)
			if err != nil {
				return errors.Wrap(err, "bench")
			}

			err = bench.Report(cmd.OutOrStdout(), results)
			if err != nil {
				return errors.Wrap(err, "report")
			}

			if printMetrics {
				return errors.Wrap(metrics.WriteText(cmd.OutOrStdout(), gatherer), "metrics")
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Size, "size", config.DefaultBenchSize, "Elements per workload")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", config.DefaultBenchSeed, "Input generator seed")
	cmd.Flags().StringSliceVar(&opts.Workloads, "workload", nil,
		"Workloads to run: "+strings.Join(bench.Workloads(), ", "))
	cmd.Flags().BoolVar(&printMetrics, "print-metrics", false,
		"Print collected metrics in the Prometheus text format")

	return cmd
}
