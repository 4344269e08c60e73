package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"bidscore/internal/configuration"
	"bidscore/internal/journal"
	"bidscore/internal/record"
	"bidscore/internal/score"
	"bidscore/internal/server"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "bidscore",
	Short: "Evaluate bid prices against a configurable benchmark formula",
	Long: `bidscore scores a batch of submitted bid prices against a benchmark
blended from the batch average and a standard reference price. Every price
draws a random scoring configuration, runs through the decimal pipeline
(float rate, tier-adjusted float A, benchmark price, score) and lands in a
ranked, persisted evaluation record.`,
	SilenceUsage: true,
}

var calcCmd = &cobra.Command{
	Use:   "calc <price>...",
	Short: "Run one evaluation over the given bid prices",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCalc,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print all persisted evaluation records",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the evaluation result log",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the evaluation HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "configuration file")
	rootCmd.AddCommand(calcCmd, historyCmd, resetCmd, serveCmd)
}

// prepareLogger configures the global slog logger. Takes a string log level
// (e.g., "debug", "info", "warn", "error") and installs JSON-formatted output
// on os.Stdout. An unrecognized level falls back to Info.
func prepareLogger(level string) {
	var logLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
}

func loadApp() (*configuration.AppConfig, error) {
	config, err := configuration.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	prepareLogger(config.Logger.Level)
	return config, nil
}

// buildEvaluator wires the scoring parameter store into an evaluator. The
// parameter file may be missing; the store falls back to the default standard
// price and an empty configuration list, which only fails once an evaluation
// actually runs.
func buildEvaluator(config *configuration.AppConfig, records record.Repository) *score.Evaluator {
	calcConfig := configuration.LoadCalcConfig(config.Scoring.Config)

	configs := make([]score.Config, 0, len(calcConfig.Configs))
	for _, params := range calcConfig.Configs {
		configs = append(configs, score.NewConfig(params.Name, params.FloatA, params.WeightB, params.FloatC3))
	}

	standardPrice := decimal.NewFromFloat(calcConfig.StandardPrice)
	return score.NewEvaluator(standardPrice, configs, score.RandomSelector{}, records)
}

func runCalc(cmd *cobra.Command, args []string) error {
	prices := make([]float64, 0, len(args))
	for _, arg := range args {
		price, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid price '%s'", arg)
		}
		prices = append(prices, price)
	}

	config, err := loadApp()
	if err != nil {
		return err
	}

	records := record.NewFileRepository(config.Storage.Result)
	evaluator := buildEvaluator(config, records)

	rec, err := evaluator.Calc(prices)
	if err != nil {
		return err
	}

	printRecord(rec)
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	config, err := loadApp()
	if err != nil {
		return err
	}

	log, err := record.NewFileRepository(config.Storage.Result).Load()
	if err != nil {
		return err
	}

	if len(log.Records) == 0 {
		fmt.Println("Result log is empty.")
		return nil
	}

	for i, rec := range log.Records {
		fmt.Printf("Record %d of %d\n", i+1, len(log.Records))
		printRecord(rec)
		fmt.Println()
	}
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	config, err := loadApp()
	if err != nil {
		return err
	}

	if _, err := record.NewFileRepository(config.Storage.Result).Reset(); err != nil {
		return err
	}

	fmt.Println("Result log cleared.")
	return nil
}

// runServe starts the HTTP server and blocks until SIGINT or SIGTERM, then
// shuts the server down gracefully and closes the journal.
func runServe(cmd *cobra.Command, args []string) error {
	config, err := loadApp()
	if err != nil {
		return err
	}

	appCtx, appCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer appCancel()

	records := record.NewFileRepository(config.Storage.Result)
	evaluator := buildEvaluator(config, records)

	var evalJournal journal.Journal = journal.NopJournal{}
	if config.Journal.File != "" {
		evalJournal = journal.NewJSONLJournal(config.Journal.File, config.Journal.Size, config.Journal.Amount)
	}

	srv := server.NewServer(
		config.Server.Address,
		config.Server.Static,
		evaluator,
		records,
		evalJournal,
	)
	go srv.ListenAndServe()
	slog.Info("Server listening " + config.Server.Address)
	<-appCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second*10)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown", "error", err)
	}
	slog.Info("Server stopped")

	evalJournal.Close()
	return nil
}

var percent = decimal.NewFromInt(100)

func printRecord(rec record.Record) {
	fmt.Println("Evaluation result:")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Timestamp:     %s\n", rec.Timestamp)
	fmt.Printf("Average price: %s\n", rec.AvgPrice.StringFixed(2))
	fmt.Println("\nItems (sorted by score, high to low):")
	for _, item := range rec.Items {
		fmt.Printf("    Bid price:       %s\n", item.Price.StringFixed(2))
		fmt.Printf("    Bid float rate:  %s%%\n", item.BidFloatRate.Mul(percent).StringFixed(2))
		fmt.Printf("    Configuration:   %s\n", item.ConfigName)
		fmt.Printf("    Final float A:   %s%%\n", item.FinalFloatA.Mul(percent).StringFixed(2))
		fmt.Printf("    Benchmark price: %s\n", item.BenchmarkPrice.StringFixed(2))
		fmt.Printf("    Score:           %s\n", item.Score.StringFixed(2))
		fmt.Println("    " + strings.Repeat("-", 50))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
