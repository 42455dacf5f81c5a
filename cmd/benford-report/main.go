// Command benford-report runs the Benford's-Law analysis over a workbook
// of journal-entry samples and writes the Markdown and CSV artifacts.
package main

import (
	"flag"
	"log/slog"
	"os"

	"jeaudit/internal/benford"
	"jeaudit/internal/config"
	"jeaudit/internal/exporter"
	"jeaudit/internal/infrastructure"
	"jeaudit/internal/report"
	"jeaudit/internal/workbook"
)

func main() {
	inputPath := flag.String("input", "je_samples.xlsx", "path to the Excel workbook of JE samples")
	outputDir := flag.String("out", "", "output directory for report artifacts (defaults to config reports dir)")
	configPath := flag.String("config", "", "optional YAML configuration file")
	minSample := flag.Int("min-sample", 0, "override the minimum valid-value threshold per column")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *outputDir != "" {
		cfg.Reports.Dir = *outputDir
	}
	if *minSample > 0 {
		cfg.Analysis.MinSampleSize = *minSample
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogger()

	paths := config.NewPaths(cfg.Reports.Dir)
	if err := paths.EnsureDirs(); err != nil {
		logger.Error("Failed to create reports directory", "error", err)
		os.Exit(1)
	}

	logger.Info("Loading workbook", "path", *inputPath)
	wb, err := workbook.Load(*inputPath)
	if err != nil {
		logger.Error("Failed to load workbook", "error", err)
		os.Exit(1)
	}

	analyzer := benford.NewAnalyzer(cfg.Analysis.MinSampleSize, logger)
	data := report.Collect(wb, analyzer)

	logger.Info("Analysis complete",
		"columns_analyzed", data.Summary.ColumnsAnalyzed,
		"columns_skipped", data.Summary.ColumnsSkipped,
		"nonconforming", data.Summary.Nonconforming)

	writer := exporter.NewCSVWriter(paths)
	if err := writer.WriteBenfordArtifacts(data.Outcomes); err != nil {
		logger.Error("Failed to write CSV artifacts", "error", err)
		os.Exit(1)
	}
	if err := writer.WriteStatsArtifact(data.Stats); err != nil {
		logger.Error("Failed to write column statistics", "error", err)
		os.Exit(1)
	}

	if err := report.WriteMarkdown(data, paths.MarkdownReport()); err != nil {
		logger.Error("Failed to write markdown report", "error", err)
		os.Exit(1)
	}

	logger.Info("Report generation complete", "output_dir", paths.ReportsDir)
}
