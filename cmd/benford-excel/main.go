// Command benford-excel runs the Benford's-Law analysis over a workbook
// of journal-entry samples and writes the styled Excel report.
package main

import (
	"flag"
	"log/slog"
	"os"

	"jeaudit/internal/benford"
	"jeaudit/internal/config"
	"jeaudit/internal/infrastructure"
	"jeaudit/internal/report"
	"jeaudit/internal/workbook"
)

func main() {
	inputPath := flag.String("input", "je_samples.xlsx", "path to the Excel workbook of JE samples")
	outputPath := flag.String("output", "", "path for the Excel report (defaults to the config reports dir)")
	configPath := flag.String("config", "", "optional YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
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
	target := paths.ExcelReport()
	if *outputPath != "" {
		target = *outputPath
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
		"columns_skipped", data.Summary.ColumnsSkipped)

	if err := report.WriteExcel(data, target); err != nil {
		logger.Error("Failed to write excel report", "error", err)
		os.Exit(1)
	}

	logger.Info("Report generation complete", "output", target)
}
