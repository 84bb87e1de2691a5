package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/konard/sonar/capacity"
)

var (
	timeoutSeconds int
	instanceSeed   uint64
)

var runCmd = &cobra.Command{
	Use:   "run [timeout-seconds]",
	Short: "Run the capacity benchmark suite",
	Long: `Runs every tour strategy through the adaptive capacity search and
prints a ranked summary table plus a JSON record array on stdout.

The timeout may be given either as the --timeout flag or as a single
positional argument, both in whole seconds.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBenchmark,
}

func init() {
	runCmd.Flags().IntVar(&timeoutSeconds, "timeout", 30, "Per-probe timeout in seconds")
	runCmd.Flags().Uint64Var(&instanceSeed, "seed", capacity.DefaultSeed, "Instance generation seed")
	rootCmd.AddCommand(runCmd)
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			return fmt.Errorf("invalid timeout %q: want a non-negative integer", args[0])
		}
		timeoutSeconds = v
	}

	cfg := capacity.Config{
		Timeout: time.Duration(timeoutSeconds) * time.Second,
		Seed:    instanceSeed,
	}

	logger.Info("starting benchmark",
		"timeout", cfg.Timeout,
		"seed", cfg.Seed,
		"strategies", len(capacity.DefaultSuite()))

	results := capacity.Run(capacity.DefaultSuite(), cfg, capacity.SlogObserver{Logger: logger})

	if err := capacity.WriteTable(os.Stdout, results, cfg.Timeout); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	fmt.Println("\nJSON Results:")
	if err := capacity.WriteJSON(os.Stdout, results); err != nil {
		return fmt.Errorf("write json: %w", err)
	}

	return nil
}
