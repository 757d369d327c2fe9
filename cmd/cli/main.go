package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"delistats/adapters/excel"
	"delistats/adapters/render"
	"delistats/adapters/report"
	"delistats/adapters/rng"
	"delistats/adapters/simulate"
	"delistats/app"
	"delistats/domain/stats"
	"delistats/internal/config"
	"delistats/ports"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	rootCmd := &cobra.Command{
		Use:   "delistats",
		Short: "Inferential statistics over simulated delivery times",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(cfg),
		newBatchCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	var (
		mean, stddev, level, mu0 float64
		sampleSize               int
		seed                     int64
		xlsxFile, htmlFile       string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Simulate a delivery-time sample and run the inference pipeline",
		Long: `Draw a seeded Normal sample, compute descriptive statistics, a
confidence interval for the population mean, and a one-sample two-sided
t-test, then print the results and a histogram of the sample.

Example: delistats analyze --mean 3.5 --stddev 0.5 --n 30 --seed 42 --level 0.95 --mu0 3.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.RunRequest{
				Spec: stats.GeneratorSpec{
					Mean:   mean,
					StdDev: stddev,
					Count:  sampleSize,
					Seed:   seed,
				},
				ConfidenceLevel:  level,
				HypothesizedMean: mu0,
			}
			return runAnalyze(cmd.Context(), cfg, req, xlsxFile, htmlFile)
		},
	}

	cmd.Flags().Float64Var(&mean, "mean", cfg.Simulation.PopulationMean, "Population mean of the simulated delivery times")
	cmd.Flags().Float64Var(&stddev, "stddev", cfg.Simulation.PopulationStdDev, "Population standard deviation (> 0)")
	cmd.Flags().IntVar(&sampleSize, "n", cfg.Simulation.SampleSize, "Sample size (>= 2)")
	cmd.Flags().Int64Var(&seed, "seed", cfg.Simulation.Seed, "Random seed for deterministic sampling")
	cmd.Flags().Float64Var(&level, "level", cfg.Inference.ConfidenceLevel, "Confidence level in (0,1)")
	cmd.Flags().Float64Var(&mu0, "mu0", cfg.Inference.HypothesizedMean, "Hypothesized population mean for the t-test")
	cmd.Flags().StringVar(&xlsxFile, "xlsx", cfg.Report.ExcelFile, "Optional xlsx report output path")
	cmd.Flags().StringVar(&htmlFile, "html", cfg.Report.HTMLFile, "Optional HTML report output path")

	return cmd
}

func newBatchCmd(cfg *config.Config) *cobra.Command {
	var (
		mean, stddev, level, mu0 float64
		sampleSize               int
		seedList                 string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run the analysis across several seeds concurrently",
		Long: `Run the same analysis once per seed. Runs execute concurrently but
each owns an isolated RNG stream, so results are deterministic per seed.

Example: delistats batch --seeds 1,2,3,42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := parseSeeds(seedList)
			if err != nil {
				return err
			}
			base := app.RunRequest{
				Spec: stats.GeneratorSpec{
					Mean:   mean,
					StdDev: stddev,
					Count:  sampleSize,
				},
				ConfidenceLevel:  level,
				HypothesizedMean: mu0,
			}
			return runBatch(cmd.Context(), base, seeds)
		},
	}

	cmd.Flags().Float64Var(&mean, "mean", cfg.Simulation.PopulationMean, "Population mean of the simulated delivery times")
	cmd.Flags().Float64Var(&stddev, "stddev", cfg.Simulation.PopulationStdDev, "Population standard deviation (> 0)")
	cmd.Flags().IntVar(&sampleSize, "n", cfg.Simulation.SampleSize, "Sample size (>= 2)")
	cmd.Flags().Float64Var(&level, "level", cfg.Inference.ConfidenceLevel, "Confidence level in (0,1)")
	cmd.Flags().Float64Var(&mu0, "mu0", cfg.Inference.HypothesizedMean, "Hypothesized population mean for the t-test")
	cmd.Flags().StringVar(&seedList, "seeds", strconv.FormatInt(cfg.Simulation.Seed, 10), "Comma-separated seeds to run")

	return cmd
}

func newService() *app.AnalysisService {
	var rngPort ports.RNGPort = rng.NewAdapter()
	return app.NewAnalysisService(simulate.NewNormalGenerator(rngPort))
}

func runAnalyze(ctx context.Context, cfg *config.Config, req app.RunRequest, xlsxFile, htmlFile string) error {
	result, err := newService().Run(ctx, req)
	if err != nil {
		return err
	}

	printReport(os.Stdout, result)

	var renderer ports.RendererPort = render.NewHistogramRenderer(cfg.Report.HistogramWidth)
	fmt.Println()
	if err := renderer.RenderHistogram(os.Stdout, result.Sample, result.Statistics.Mean); err != nil {
		return err
	}

	type output struct {
		path   string
		writer ports.ReportWriterPort
	}
	var outputs []output
	if xlsxFile != "" {
		outputs = append(outputs, output{xlsxFile, excel.NewReportWriter(xlsxFile)})
	}
	if htmlFile != "" {
		outputs = append(outputs, output{htmlFile, report.NewHTMLWriter(htmlFile)})
	}
	for _, out := range outputs {
		if err := out.writer.Write(ctx, result); err != nil {
			return err
		}
		fmt.Printf("report saved to %s\n", out.path)
	}

	return nil
}

func runBatch(ctx context.Context, base app.RunRequest, seeds []int64) error {
	results, err := app.BatchRun(ctx, newService(), base, seeds)
	if err != nil {
		return err
	}

	fmt.Printf("=== BATCH RESULTS (%d runs) ===\n", len(results))
	for i, result := range results {
		fmt.Printf("%d. seed %d: mean=%.2f stddev=%.2f %.0f%% CI=(%.2f, %.2f) t=%.4f p=%.4f -> %s\n",
			i+1, result.Spec.Seed,
			result.Statistics.Mean, result.Statistics.StdDev,
			result.Interval.Level*100, result.Interval.Lower, result.Interval.Upper,
			result.Test.Statistic, result.Test.PValue, result.Test.Decision())
	}
	return nil
}

func printReport(w io.Writer, result *stats.RunReport) {
	fmt.Fprintf(w, "=== DELIVERY TIME ANALYSIS ===\n")
	fmt.Fprintf(w, "Run ID: %s\n", result.RunID)
	fmt.Fprintf(w, "Sample mean: %.2f\n", result.Statistics.Mean)
	fmt.Fprintf(w, "Sample stddev: %.2f\n", result.Statistics.StdDev)
	fmt.Fprintf(w, "%.0f%% confidence interval: (%.2f, %.2f)\n",
		result.Interval.Level*100, result.Interval.Lower, result.Interval.Upper)
	fmt.Fprintf(w, "t-statistic: %.4f\n", result.Test.Statistic)
	fmt.Fprintf(w, "p-value: %.4f\n", result.Test.PValue)
	fmt.Fprintf(w, "Decision: %s\n", result.Test.Decision())
	for _, warning := range result.Test.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
}

func parseSeeds(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	seeds := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		seed, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", part, err)
		}
		seeds = append(seeds, seed)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seeds supplied")
	}
	return seeds, nil
}
