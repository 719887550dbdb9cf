// columnscan is a diagnostic tool: it shows which column the resolver
// picks for a period in a given sheet, and which periods the header
// block advertises. Useful when a new workbook edition stops matching.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"

	"regitrend/internal/grid"
	"regitrend/internal/header"
	"regitrend/pkg/contracts/domain"
)

func main() {
	workbookPath := flag.String("workbook", "", "path to the workbook (.xlsx)")
	sheetName := flag.String("sheet", "", "sheet name (empty = first sheet)")
	headerRows := flag.Int("header-rows", 3, "number of header rows")
	year := flag.Int("year", 0, "target year (0 = list detected periods only)")
	quarter := flag.Int("quarter", 0, "target quarter 1-4")
	kindKeywords := flag.String("kind", "", "comma-separated kind keywords the column must contain")
	flag.Parse()

	_ = godotenv.Load()

	if *workbookPath == "" {
		fmt.Fprintln(os.Stderr, "usage: columnscan -workbook report.xlsx [-sheet name] [-year 2025 -quarter 3]")
		os.Exit(2)
	}

	file, err := excelize.OpenFile(*workbookPath)
	if err != nil {
		slog.Error("Failed to open workbook", "path", *workbookPath, "error", err)
		os.Exit(1)
	}
	defer file.Close()

	sheet := *sheetName
	if sheet == "" {
		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			slog.Error("Workbook has no sheets")
			os.Exit(1)
		}
		sheet = sheets[0]
	}

	g, err := grid.FromWorkbook(file, sheet)
	if err != nil {
		slog.Error("Failed to read sheet", "sheet", sheet, "error", err)
		os.Exit(1)
	}

	fmt.Printf("sheet: %s (%d rows x %d cols)\n", sheet, g.Rows(), g.Cols())

	if pr, ok := header.DetectPeriods(g, *headerRows); ok {
		labels := make([]string, len(pr.Periods))
		for i, p := range pr.Periods {
			labels[i] = p.Label()
		}
		fmt.Printf("periods: %s\n", strings.Join(labels, ", "))
		fmt.Printf("latest:  %s\n", pr.Latest.Label())
		if pr.Provisional != nil {
			fmt.Printf("provisional: %s\n", pr.Provisional.Label())
		}
	} else {
		fmt.Println("periods: none detected")
	}

	if *year == 0 || *quarter == 0 {
		return
	}

	opts := header.ResolveOptions{}
	if *kindKeywords != "" {
		opts.RequireKind = true
		opts.KindKeywords = strings.Split(*kindKeywords, ",")
	}

	target := domain.Period{Year: *year, Quarter: *quarter}
	resolver := header.NewResolver(slog.Default())
	match, ok := resolver.Resolve(g, *headerRows, target, opts)
	if !ok {
		fmt.Printf("no column matches %s\n", target.Label())
		os.Exit(1)
	}

	fmt.Printf("column %d matches %s (header text: %q)\n",
		match.ColumnIndex, target.Label(), match.MatchedText)
}
