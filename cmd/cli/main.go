package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/config"
	"github.com/shubhh2077/Ledger-Of-Legends/internal/insights"
	"github.com/shubhh2077/Ledger-Of-Legends/internal/logger"
	"github.com/shubhh2077/Ledger-Of-Legends/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "process":
		runProcess(log, cfg)
	case "insights":
		runInsights(log, cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Ledger of Legends CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  process   Normalize, enrich and validate a transaction export")
	fmt.Println("  insights  Process a file and print categorized insights and recommendations")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func runProcess(log zerolog.Logger, cfg config.Config) {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	file := fs.String("file", "", "Path to the export file (.html or .csv)")
	format := fs.String("format", "", "Source format: html or csv (default: from extension)")
	out := fs.String("out", "", "Write the enriched dataset to this path")
	export := fs.String("export", "csv", "Export format for -out: csv or json")
	fs.Parse(os.Args[2:])

	result := processFile(log, cfg, *file, *format)

	printSummary(result)

	if *out != "" {
		if err := writeExport(*out, *export, result); err != nil {
			log.Fatal().Err(err).Msg("Export failed")
		}
		fmt.Printf("Wrote %d rows to %s\n", len(result.Data), *out)
	}
}

func runInsights(log zerolog.Logger, cfg config.Config) {
	fs := flag.NewFlagSet("insights", flag.ExitOnError)
	file := fs.String("file", "", "Path to the export file (.html or .csv)")
	format := fs.String("format", "", "Source format: html or csv (default: from extension)")
	fs.Parse(os.Args[2:])

	result := processFile(log, cfg, *file, *format)

	categorizer := insights.NewCategorizer(cfg.Categories)
	categorized := categorizer.Apply(result.Data)
	summary := insights.Analyze(categorized)
	recs := insights.Recommend(summary, cfg)

	printSummary(result)
	printJSON("Insights", summary)
	printJSON("Recommendations", recs)
}

func processFile(log zerolog.Logger, cfg config.Config, file, format string) *pipeline.ProcessResult {
	if file == "" {
		log.Fatal().Msg("Error: -file is required")
	}

	f, err := os.Open(file)
	if err != nil {
		log.Fatal().Err(err).Msg("Opening input file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > cfg.MaxFileSize {
		log.Fatal().
			Int64("size", info.Size()).
			Int64("limit", cfg.MaxFileSize).
			Msg("Input file exceeds the size limit")
	}

	ctx := logger.WithContext(context.Background(), log)

	log.Info().Str("file", file).Str("format", string(resolveFormat(file, format))).Msg("Processing export")

	result, err := pipeline.Process(ctx, f, resolveFormat(file, format), cfg)
	if err != nil {
		var formatErr *pipeline.FormatError
		var schemaErr *pipeline.SchemaError
		switch {
		case errors.As(err, &formatErr):
			log.Fatal().Msg("No transactions found in the document")
		case errors.As(err, &schemaErr):
			log.Fatal().Str("column", schemaErr.Field).Msg("Input is missing a required column")
		default:
			log.Fatal().Err(err).Msg("Processing failed")
		}
	}

	for _, issue := range result.Issues {
		log.Warn().Msg(issue)
	}
	return result
}

func resolveFormat(file, format string) pipeline.Format {
	switch strings.ToLower(format) {
	case "html":
		return pipeline.FormatHTML
	case "csv":
		return pipeline.FormatCSV
	}
	if strings.EqualFold(filepath.Ext(file), ".html") {
		return pipeline.FormatHTML
	}
	return pipeline.FormatCSV
}

func printSummary(result *pipeline.ProcessResult) {
	fmt.Printf("Run %s\n", result.RunID)
	fmt.Printf("  Transactions: %d\n", result.Summary.TotalTransactions)
	if result.Summary.DateRange != "" {
		fmt.Printf("  Date range:   %s\n", result.Summary.DateRange)
	}
	fmt.Printf("  Total amount: %.2f\n", result.Summary.TotalAmount)
	fmt.Printf("  Duplicates:   %d\n", result.Summary.DuplicateCount)
	if len(result.Issues) > 0 {
		fmt.Printf("  Issues:       %d\n", len(result.Issues))
	}
}

func printJSON(title string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encoding %s: %v\n", title, err)
		return
	}
	fmt.Printf("\n%s:\n%s\n", title, data)
}

func writeExport(path, format string, result *pipeline.ProcessResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(format) {
	case "json":
		return pipeline.WriteJSON(f, result.Data)
	case "csv":
		return pipeline.WriteCSV(f, result.Data)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
