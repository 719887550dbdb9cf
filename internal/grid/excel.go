package grid

import (
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"regitrend/internal/errors"
)

// FromWorkbook materializes one sheet of an open workbook as a SliceGrid.
// Merged cells come back the way Excel stores them: the label sits in the
// top-left cell of the merge and the spanned cells are empty. The header
// resolver reconstructs the intended labels, not this adapter.
func FromWorkbook(f *excelize.File, sheet string) (SliceGrid, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewParsingError("failed to read sheet", err).
			WithContext("sheet", sheet)
	}
	return NewSliceGrid(rows), nil
}

// FindSheet locates the sheet for a report type. Sheet names drift across
// workbook editions, so it first probes names containing any of
// nameKeywords, then falls back to scanning the first rows of every sheet
// for contentKeywords.
func FindSheet(f *excelize.File, nameKeywords, contentKeywords []string, logger *slog.Logger) (string, bool) {
	if logger == nil {
		logger = slog.Default()
	}

	for _, name := range f.GetSheetList() {
		for _, kw := range nameKeywords {
			if strings.Contains(name, kw) {
				logger.Debug("sheet matched by name", slog.String("sheet", name), slog.String("keyword", kw))
				return name, true
			}
		}
	}

	if len(contentKeywords) == 0 {
		return "", false
	}

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		limit := len(rows)
		if limit > 10 {
			limit = 10
		}
		for _, row := range rows[:limit] {
			rowText := strings.Join(row, " ")
			for _, kw := range contentKeywords {
				if strings.Contains(rowText, kw) {
					logger.Debug("sheet matched by content",
						slog.String("sheet", name), slog.String("keyword", kw))
					return name, true
				}
			}
		}
	}

	return "", false
}
