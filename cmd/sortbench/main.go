// Package main provides the sortbench CLI: it wires the benchmark library
// to a terminal logger and a results file.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexshd/sortbench"
)

var version = "0.1.0" // set at build time

var rootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "Benchmark and verify in-memory sorting algorithms",
	Long: `sortbench times a catalog of sorting algorithms across input sizes and
data-distribution scenarios, abandoning combinations that hit a time cap or
show super-linear scaling, and writes the trial records to a results file.`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the full benchmark suite",
	RunE:  runBenchmarks,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every algorithm for ordering and non-mutation",
	RunE:  runVerify,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("sortbench v%s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := runCmd.Flags()
	flags.Float64("max-exec-ms", 75, "Abandon a pair once its average trial exceeds this many milliseconds")
	flags.Float64("min-detect-ms", 10, "Noise floor below which the growth trend is not evaluated")
	flags.Float64("quadratic-threshold", 4, "Degradation ratio at or above which a pair is abandoned")
	flags.Int("max-size", 50_000, "Largest array size in the schedule")
	flags.Float64("growth", 2.5, "Geometric growth factor of the size schedule")
	flags.String("out", "results.json", "Results file path")
	flags.String("format", "json", "Results format (json|yaml)")
	flags.String("log-level", "info", "Log level (debug|info|warn|error)")

	for _, name := range []string{
		"max-exec-ms", "min-detect-ms", "quadratic-threshold",
		"max-size", "growth", "out", "format", "log-level",
	} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}
	viper.SetEnvPrefix("SORTBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch viper.GetString("log-level") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

func runBenchmarks(_ *cobra.Command, _ []string) error {
	log := newLogger()

	cfg := sortbench.DefaultConfig()
	cfg.MaxExecutionTime = time.Duration(viper.GetFloat64("max-exec-ms") * float64(time.Millisecond))
	cfg.MinTimeForDetection = time.Duration(viper.GetFloat64("min-detect-ms") * float64(time.Millisecond))
	cfg.QuadraticThreshold = viper.GetFloat64("quadratic-threshold")
	cfg.Sizes = sortbench.SizeSchedule(
		[]int{10, 25, 100, 250},
		500, viper.GetInt("max-size"), viper.GetFloat64("growth"),
	)

	out, err := os.Create(viper.GetString("out"))
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer out.Close()

	var sink sortbench.Sink
	switch format := viper.GetString("format"); format {
	case "json":
		sink = &sortbench.JSONSink{W: out, Indent: true}
	case "yaml":
		sink = &sortbench.YAMLSink{W: out}
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}

	runner := sortbench.NewRunner(cfg, sortbench.DefaultRegistry(), sortbench.DefaultScenarios(), log)
	rs, err := runner.RunAndSave(context.Background(), sink)
	if err != nil {
		return err
	}

	log.Info("results written", "path", viper.GetString("out"), "records", len(rs.Records))
	return nil
}

func runVerify(_ *cobra.Command, _ []string) error {
	log := newLogger()

	errs := sortbench.VerifyAll(
		sortbench.DefaultRegistry(),
		sortbench.DefaultScenarios(),
		sortbench.DefaultVerifyConfig(),
	)
	for _, err := range errs {
		log.Error("verification failed", "error", err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d algorithm(s) failed verification", len(errs))
	}

	log.Info("all algorithms verified",
		"algorithms", sortbench.DefaultRegistry().Len())
	return nil
}
