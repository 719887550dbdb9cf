package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"

	"regitrend/internal/config"
	"regitrend/internal/grid"
	"regitrend/internal/header"
	"regitrend/internal/infrastructure"
	"regitrend/internal/report"
	"regitrend/pkg/contracts"
	"regitrend/pkg/contracts/domain"
)

func main() {
	workbookPath := flag.String("workbook", "", "path to the quarterly source workbook (.xlsx)")
	reportsFile := flag.String("reports", "", "report definitions YAML (defaults to the built-in table)")
	reportID := flag.String("report", "", "generate a single report by id instead of all")
	year := flag.Int("year", 0, "target year (0 = detect latest period in the workbook)")
	quarter := flag.Int("quarter", 0, "target quarter 1-4 (0 = detect)")
	outDir := flag.String("out", "", "output directory for the record JSON (defaults to config)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetVersionString())
		return
	}

	// A .env file is optional.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	if *workbookPath == "" {
		*workbookPath = cfg.Paths.WorkbookPath
	}
	if *workbookPath == "" {
		logger.Error("No workbook given: pass -workbook or set REGI_PATHS_WORKBOOK_PATH")
		os.Exit(1)
	}
	if *reportsFile == "" {
		*reportsFile = cfg.Paths.ReportsFile
	}
	if *year == 0 {
		*year = cfg.Target.Year
	}
	if *quarter == 0 {
		*quarter = cfg.Target.Quarter
	}
	if *outDir == "" {
		*outDir = cfg.GetOutputDir()
	}

	reports, err := config.LoadReports(*reportsFile)
	if err != nil {
		logger.Error("Failed to load report definitions", "error", err)
		os.Exit(1)
	}
	if *reportID != "" {
		reports = filterReports(reports, *reportID)
		if len(reports) == 0 {
			logger.Error("Unknown report id", "report", *reportID)
			os.Exit(1)
		}
	}

	file, err := excelize.OpenFile(*workbookPath)
	if err != nil {
		logger.Error("Failed to open workbook", "path", *workbookPath, "error", err)
		os.Exit(1)
	}
	defer file.Close()

	target := domain.Period{Year: *year, Quarter: *quarter}
	if !target.Valid() {
		target, err = detectLatestPeriod(file, reports, logger)
		if err != nil {
			logger.Error("Failed to detect target period", "error", err)
			os.Exit(1)
		}
		logger.Info("Target period detected from workbook", "period", target.Label())
	}

	source := report.NewWorkbookSource(file, logger)
	svc := report.NewService(source, logger, cfg.Target.TopCount)

	records, err := svc.GenerateAll(context.Background(), reports, target)
	if err != nil {
		logger.Error("Report generation failed", "error", err)
		os.Exit(1)
	}

	outPath, err := writeRecords(*outDir, target, records)
	if err != nil {
		logger.Error("Failed to write records", "error", err)
		os.Exit(1)
	}

	logger.Info("Reports generated",
		"period", target.Label(),
		"reports", len(records),
		"output", outPath)
}

// detectLatestPeriod scans each report sheet's header block and returns
// the newest period seen anywhere in the workbook.
func detectLatestPeriod(file *excelize.File, reports []config.ReportConfig, logger *slog.Logger) (domain.Period, error) {
	var latest domain.Period
	found := false

	for _, r := range reports {
		sheet, ok := grid.FindSheet(file, r.SheetKeywords, r.ContentKeywords, logger)
		if !ok {
			continue
		}
		g, err := grid.FromWorkbook(file, sheet)
		if err != nil {
			continue
		}
		pr, ok := header.DetectPeriods(g, r.HeaderRows)
		if !ok {
			continue
		}
		if !found || latest.Before(pr.Latest) {
			latest = pr.Latest
			found = true
		}
	}

	if !found {
		return domain.Period{}, fmt.Errorf("no reporting period found in any sheet")
	}
	return latest, nil
}

func filterReports(reports []config.ReportConfig, id string) []config.ReportConfig {
	for _, r := range reports {
		if r.ID == id {
			return []config.ReportConfig{r}
		}
	}
	return nil
}

func writeRecords(outDir string, target domain.Period, records []*domain.ReportRecord) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	name := fmt.Sprintf("records_%dQ%d.json", target.Year, target.Quarter)
	outPath := filepath.Join(outDir, name)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return outPath, nil
}
