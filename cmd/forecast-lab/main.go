// Package main provides the CLI harness for the forecast evaluation engine.
// It loads prediction records from a JSON file, replays them through one of
// the evaluation protocols and writes the JSON result to stdout or a file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/forecast-lab/internal/backtest"
	"github.com/yourusername/forecast-lab/internal/config"
	"github.com/yourusername/forecast-lab/internal/health"
	"github.com/yourusername/forecast-lab/internal/ingest"
	"github.com/yourusername/forecast-lab/internal/logger"
	"github.com/yourusername/forecast-lab/internal/metrics"
	"github.com/yourusername/forecast-lab/internal/models"
	"github.com/yourusername/forecast-lab/internal/stats"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile  string
	recordsFile string
	outputFile  string
	opsPort     string
	appLogger   *logrus.Logger
	cfg         *config.Config
	engine      *backtest.Engine
	opsServer   *health.Server
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file (optional)")
	rootCmd.PersistentFlags().StringVarP(&recordsFile, "records", "r", "", "Path to records JSON file (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Write result JSON to file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&opsPort, "ops-port", "", "Serve health and Prometheus metrics endpoints on this port during the run")

	rootCmd.AddCommand(rollingCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(intervalCmd)
	rootCmd.AddCommand(confidenceCmd)
	rootCmd.AddCommand(sequentialCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "forecast-lab",
	Short: "Replay forecast records through scoring and calibration protocols",
	Long: `forecast-lab evaluates historical prediction-market forecasts with
proper scoring rules and calibration diagnostics under rolling-window,
split, time-bucketed, confidence-bucketed and sequential protocols.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupEngine(); err != nil {
			return err
		}
		return startOpsServer(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if opsServer != nil {
			_ = opsServer.Shutdown()
		}
	},
}

var rollingCmd = &cobra.Command{
	Use:   "rolling",
	Short: "Run a rolling-window backtest",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords()
		if err != nil {
			return err
		}
		result, err := engine.RunRollingWindow(records, nil)
		if err != nil {
			return err
		}
		ci, err := brierConfidenceInterval(result)
		if err != nil {
			appLogger.WithError(err).Warn("Skipping bootstrap confidence interval")
			return writeResult(result)
		}
		out := struct {
			*backtest.RollingResult
			BrierCI stats.ConfidenceInterval `json:"brier_ci"`
		}{result, ci}
		return writeResult(out)
	},
}

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Evaluate a chronological train/test split",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords()
		if err != nil {
			return err
		}
		train, test := chronologicalSplit(records, cfg.Backtest.TrainFraction)
		result, err := engine.Split(train, test, nil)
		if err != nil {
			return err
		}
		return writeResult(result)
	},
}

var intervalCmd = &cobra.Command{
	Use:   "interval",
	Short: "Score consecutive time buckets",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords()
		if err != nil {
			return err
		}
		buckets, err := engine.ByTimeInterval(records, cfg.Backtest.IntervalDays)
		if err != nil {
			return err
		}
		return writeResult(buckets)
	},
}

var confidenceCmd = &cobra.Command{
	Use:   "confidence",
	Short: "Report accuracy by forecast confidence bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords()
		if err != nil {
			return err
		}
		buckets, err := engine.AccuracyByConfidence(records, cfg.Backtest.ConfidenceBuckets)
		if err != nil {
			return err
		}
		return writeResult(buckets)
	},
}

var sequentialCmd = &cobra.Command{
	Use:   "sequential",
	Short: "Run a sequential (online) evaluation",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords()
		if err != nil {
			return err
		}
		result, err := engine.Sequential(records, nil)
		if err != nil {
			return err
		}
		return writeResult(result)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("forecast-lab %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	if configFile == "" {
		cfg = config.Default()
	} else {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	appLogger = logger.NewLogger(cfg.App.LogLevel)
	return nil
}

func setupEngine() error {
	eng, err := backtest.NewEngine(backtest.Scenario(cfg.Backtest.Scenario), appLogger)
	if err != nil {
		return err
	}
	engine = eng
	return nil
}

// startOpsServer exposes health and metrics endpoints when an ops port is
// requested. The server lives for the duration of the command.
func startOpsServer(ctx context.Context) error {
	if opsPort == "" {
		return nil
	}
	metrics.InitRegistry()
	opsServer = health.NewServer(health.Config{
		ServiceName: "forecast-lab",
		Version:     Version,
		Commit:      GitCommit,
		Port:        opsPort,
		Logger:      appLogger,
	})
	if ctx == nil {
		ctx = context.Background()
	}
	return opsServer.Start(ctx)
}

func loadRecords() ([]models.PredictionRecord, error) {
	path := recordsFile
	if path == "" {
		path = cfg.Input.RecordsPath
	}
	records, _, err := ingest.NewLoader(appLogger).LoadFile(path)
	if err == nil && opsServer != nil {
		opsServer.SetReady(true)
	}
	return records, err
}

// brierConfidenceInterval bootstraps a confidence interval for the mean
// per-window Brier score, using the seed and iteration count from the
// bootstrap config section.
func brierConfidenceInterval(result *backtest.RollingResult) (stats.ConfidenceInterval, error) {
	briers := make([]float64, len(result.Windows))
	for i, w := range result.Windows {
		briers[i] = w.Metrics.BrierScore
	}
	mean := func(values []float64) float64 {
		total := 0.0
		for _, v := range values {
			total += v
		}
		return total / float64(len(values))
	}
	rng := rand.New(rand.NewSource(cfg.Bootstrap.Seed))
	return stats.BootstrapCI(briers, mean, cfg.Bootstrap.Iterations, cfg.Bootstrap.ConfidenceLevel, rng)
}

// chronologicalSplit divides records into a leading train set and trailing
// test set by creation time.
func chronologicalSplit(records []models.PredictionRecord, trainFraction float64) ([]models.PredictionRecord, []models.PredictionRecord) {
	if trainFraction <= 0 || trainFraction >= 1 {
		trainFraction = 0.7
	}
	sorted := append([]models.PredictionRecord{}, records...)
	backtest.SortByCreatedAt(sorted)
	cut := int(float64(len(sorted)) * trainFraction)
	return sorted[:cut], sorted[cut:]
}

func writeResult(result any) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')
	if outputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	appLogger.WithField("path", outputFile).Info("Result written")
	return nil
}
