// Package main is the CLI entry point for LoadLens, the load-test
// latency analysis tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/loadlens/loadlens/internal/app/usecase"
	"github.com/loadlens/loadlens/internal/domain/analysis"
	"github.com/loadlens/loadlens/internal/domain/bucket"
	"github.com/loadlens/loadlens/internal/infra/jtl"
	"github.com/loadlens/loadlens/internal/infra/report"
)

const Version = "1.0.0"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		showHelp()
		os.Exit(1)
	}

	cmd := os.Args[1]

	switch cmd {
	case "version", "-v", "--version":
		fmt.Printf("LoadLens v%s\n", Version)
	case "help", "-h", "--help":
		showHelp()
	case "analyze":
		if err := runAnalyze(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Printf(`LoadLens v%s - Load-Test Latency Analysis Tool

USAGE:
    loadlens <command>

COMMANDS:
    analyze     Aggregate a JMeter JTL result log into latency statistics
    version     Show version information
    help        Show this help message

EXAMPLES:
    # Percentile table grouped by payload bucket and concurrency
    loadlens analyze results.jtl

    # Moments table with the decimal worker ladder and a PNG chart
    loadlens analyze -stat-mode moments -concurrency 1,10,100,1000 -chart latency.png results.jtl
`, Version)
}

func runAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	bucketPolicy := fs.String("bucket-policy", bucket.PolicyNearest.String(), "bucket policy: nearest-standard or range-bucket")
	statMode := fs.String("stat-mode", analysis.StatModePercentiles.String(), "stat mode: percentiles or moments")
	concurrency := fs.String("concurrency", "1,2,4,8,16,32,64,128", "comma-separated concurrency allowlist")
	format := fs.String("format", "markdown", "table format: markdown or csv")
	jsonOut := fs.String("json", "", "write a JSON report to this path")
	chartOut := fs.String("chart", "", "write a PNG latency chart to this path")
	bars := fs.Bool("bars", false, "print a text latency bar chart after the table")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: loadlens analyze [options] <results.jtl>")
	}

	allowlist, err := parseAllowlist(*concurrency)
	if err != nil {
		return err
	}

	cfg := analysis.Config{
		BucketPolicy:         bucket.PolicyName(*bucketPolicy),
		StatMode:             analysis.StatMode(*statMode),
		ConcurrencyAllowlist: allowlist,
	}

	uc, err := usecase.NewAnalysisUseCase(cfg)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	slog.Info("reading results", "file", path)
	rows, err := jtl.ReadFile(path)
	if err != nil {
		return err
	}

	result, err := uc.Run(context.Background(), rows)
	if err != nil {
		return err
	}

	if len(result.Rows) == 0 {
		fmt.Println("No data to report.")
		return nil
	}

	switch *format {
	case "markdown":
		if err := report.NewMarkdownWriter().Write(os.Stdout, result.Rows, cfg.StatMode); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	case "csv":
		if err := report.NewCSVWriter().Write(os.Stdout, result.Rows, cfg.StatMode); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	default:
		return fmt.Errorf("unknown table format: %s", *format)
	}

	if *bars {
		fmt.Println()
		fmt.Print(report.NewChartGenerator().GenerateLatencyBars(result.Rows, cfg.StatMode, 100))
	}

	if *jsonOut != "" {
		meta := report.Meta{
			RunID:       result.RunID,
			GeneratedAt: result.GeneratedAt,
			Duration:    result.Duration,
			Config:      result.Config,
			TotalRows:   result.TotalRows,
			Dropped:     result.Dropped,
			Filtered:    result.Filtered,
			Analyzed:    result.Analyzed,
		}
		content, err := report.NewJSONGenerator().Generate(meta, result.Rows)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*jsonOut, content, 0644); err != nil {
			return fmt.Errorf("write json report: %w", err)
		}
		slog.Info("json report written", "file", *jsonOut)
	}

	if *chartOut != "" {
		if err := report.NewPlotGenerator().GenerateLatencyPlot(result.Rows, cfg.StatMode, uc.Policy().Labels(), *chartOut); err != nil {
			return err
		}
		slog.Info("chart written", "file", *chartOut)
	}

	return nil
}

// parseAllowlist parses a comma-separated list of concurrency levels.
func parseAllowlist(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	levels := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		level, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid concurrency level %q", p)
		}
		levels = append(levels, level)
	}
	return levels, nil
}
