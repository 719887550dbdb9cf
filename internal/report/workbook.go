// Package report orchestrates one full generation run: locating each
// report's sheet, extracting region and category figures, ranking
// drivers, and rendering the national narrative into a ReportRecord for
// the template layer.
package report

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"regitrend/internal/config"
	apperrors "regitrend/internal/errors"
	"regitrend/internal/grid"
)

// GridSource supplies the materialized sheet grid for a report
// definition.
type GridSource interface {
	GridFor(cfg config.ReportConfig) (grid.Grid, error)
}

// WorkbookSource reads sheets from an open Excel workbook, locating each
// report's sheet by name keywords with a content-keyword fallback.
type WorkbookSource struct {
	file   *excelize.File
	logger *slog.Logger
}

// NewWorkbookSource wraps an open workbook. The caller keeps ownership
// of the file handle.
func NewWorkbookSource(file *excelize.File, logger *slog.Logger) *WorkbookSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookSource{file: file, logger: logger}
}

// GridFor implements GridSource.
func (w *WorkbookSource) GridFor(cfg config.ReportConfig) (grid.Grid, error) {
	sheet, ok := grid.FindSheet(w.file, cfg.SheetKeywords, cfg.ContentKeywords, w.logger)
	if !ok {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("no sheet matches report %s", cfg.ID), nil).
			WithContext("sheet_keywords", cfg.SheetKeywords)
	}
	return grid.FromWorkbook(w.file, sheet)
}
