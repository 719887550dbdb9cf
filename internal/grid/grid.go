// Package grid provides a read-only rectangular view over spreadsheet
// cell values with tolerant out-of-bounds and type-coercion accessors.
// Every core computation consumes the Grid interface; the excelize
// adapter in excel.go is the only place that touches a workbook.
package grid

import (
	"math"
	"strconv"
	"strings"
)

// Grid is a read-only rectangular view of cell values. A cell is a
// number, a string, or nil. Implementations must tolerate out-of-bounds
// coordinates by returning nil.
type Grid interface {
	CellAt(row, col int) any
	Rows() int
	Cols() int
}

// SliceGrid is the plain in-memory Grid used throughout the module.
// Rows may be ragged; CellAt pads with nil.
type SliceGrid [][]any

// NewSliceGrid builds a SliceGrid from string rows, mapping empty
// strings to nil cells. Convenient for tests and the excelize adapter,
// which both deal in string matrices.
func NewSliceGrid(rows [][]string) SliceGrid {
	g := make(SliceGrid, len(rows))
	for i, row := range rows {
		g[i] = make([]any, len(row))
		for j, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			g[i][j] = cell
		}
	}
	return g
}

func (g SliceGrid) CellAt(row, col int) any {
	if row < 0 || row >= len(g) {
		return nil
	}
	if col < 0 || col >= len(g[row]) {
		return nil
	}
	return g[row][col]
}

func (g SliceGrid) Rows() int {
	return len(g)
}

func (g SliceGrid) Cols() int {
	max := 0
	for _, row := range g {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// SafeString coerces a cell value to a trimmed string. Nil cells and
// non-text values without a sensible rendering become "".
func SafeString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

// SafeFloat coerces a cell value to a number. It tolerates thousands
// separators, a literal "-" as missing data, and trailing provisional
// markers ("p"/"P") or footnote asterisks. Unparseable input yields nil,
// never 0 — "no data" must not read as "no change".
func SafeFloat(v any) *float64 {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		return finite(n)
	case int:
		f := float64(n)
		return &f
	case string:
		s := strings.TrimSpace(n)
		if s == "" || s == "-" {
			return nil
		}
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimRight(s, "pP*")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return finite(f)
	default:
		return nil
	}
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// GrowthRate computes the year-over-year percentage change rounded to
// one decimal. Nil when either value is missing or the prior is zero.
func GrowthRate(current, prior *float64) *float64 {
	if current == nil || prior == nil || *prior == 0 {
		return nil
	}
	rate := 100 * (*current - *prior) / *prior
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil
	}
	rounded := Round1(rate)
	return &rounded
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(f float64) float64 {
	return math.Round(f*10) / 10
}
