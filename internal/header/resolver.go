package header

import (
	"log/slog"
	"strings"

	"regitrend/internal/grid"
	"regitrend/pkg/contracts/domain"
)

// ResolveOptions narrows a resolution beyond (year, quarter). When
// RequireKind is set, the column must additionally contain one of
// KindKeywords — used by sheets that interleave index and growth-rate
// columns under the same period label (e.g. "지수" vs "증감률").
type ResolveOptions struct {
	RequireKind  bool
	KindKeywords []string
}

// Resolver locates period columns in merged header blocks. It is
// stateless; the logger only speaks at Debug so the default path stays
// silent.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a resolver. A nil logger falls back to the default.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger}
}

// Resolve finds the leftmost column whose combined header text encodes
// the target period (and kind, when required). The boolean result is the
// not-found signal; resolution never fails with an error, and callers
// own the fallback strategy.
//
// The 2-digit short-year fallback is only attempted when no 4-digit year
// appears anywhere in the header block, so an unrelated "25" can never
// shadow an explicit "2025" elsewhere.
func (r *Resolver) Resolve(g grid.Grid, headerRows int, target domain.Period, opts ResolveOptions) (domain.ColumnMatch, bool) {
	if g == nil || !target.Valid() {
		return domain.ColumnMatch{}, false
	}
	if headerRows < 1 {
		headerRows = 1
	}

	columns := columnTexts(g, headerRows)

	blockHasFullYear := false
	for _, col := range columns {
		if containsAnyFourDigitYear(col.spaced) {
			blockHasFullYear = true
			break
		}
	}

	for i, col := range columns {
		if col.compact == "" {
			continue
		}

		yearOK := containsYear(col.spaced, target.Year)
		if !yearOK && !blockHasFullYear {
			yearOK = containsShortYear(col.spaced, target.Year)
		}
		if !yearOK {
			continue
		}

		if !containsQuarter(col.compact, target.Quarter) {
			continue
		}

		kindOK := true
		if opts.RequireKind {
			kindOK = containsAnyKeyword(col.compact, opts.KindKeywords)
			if !kindOK {
				continue
			}
		}

		r.logger.Debug("resolved period column",
			slog.String("period", target.String()),
			slog.Int("column", i),
			slog.String("header_text", col.spaced))

		return domain.ColumnMatch{
			ColumnIndex: i,
			MatchedText: col.spaced,
			Reasons: domain.MatchReasons{
				Year:    true,
				Quarter: true,
				Kind:    opts.RequireKind && kindOK,
			},
		}, true
	}

	r.logger.Debug("no column matched period",
		slog.String("period", target.String()),
		slog.Int("header_rows", headerRows))
	return domain.ColumnMatch{}, false
}

// columnText carries both normalized forms of a column's combined header:
// compact for quarter/kind substring matching, spaced for year-token
// scanning (and for reporting the matched text).
type columnText struct {
	compact string
	spaced  string
}

// columnTexts reconstructs the intended label of every column and returns
// the normalized forms per column.
//
// Merged cells store their label only in the top-left cell of the merge,
// so two fill passes run before concatenation: a horizontal pass where an
// empty header cell inherits the nearest label to its left (year and kind
// labels spanning several period columns), then a vertical pass down and
// back up within each column (labels spanning several header rows).
func columnTexts(g grid.Grid, headerRows int) []columnText {
	cols := g.Cols()
	if headerRows > g.Rows() {
		headerRows = g.Rows()
	}

	// Header block, short rows padded with "".
	block := make([][]string, headerRows)
	for row := 0; row < headerRows; row++ {
		block[row] = make([]string, cols)
		for col := 0; col < cols; col++ {
			block[row][col] = grid.SafeString(g.CellAt(row, col))
		}
	}

	for row := 0; row < headerRows; row++ {
		for col := 1; col < cols; col++ {
			if block[row][col] == "" {
				block[row][col] = block[row][col-1]
			}
		}
	}
	for col := 0; col < cols; col++ {
		for row := 1; row < headerRows; row++ {
			if block[row][col] == "" {
				block[row][col] = block[row-1][col]
			}
		}
		for row := headerRows - 2; row >= 0; row-- {
			if block[row][col] == "" {
				block[row][col] = block[row+1][col]
			}
		}
	}

	texts := make([]columnText, cols)
	for col := 0; col < cols; col++ {
		var combined strings.Builder
		for row := 0; row < headerRows; row++ {
			if block[row][col] == "" {
				continue
			}
			if combined.Len() > 0 {
				combined.WriteByte(' ')
			}
			combined.WriteString(block[row][col])
		}
		texts[col] = columnText{
			compact: NormalizeHeader(combined.String()),
			spaced:  NormalizeSpaced(combined.String()),
		}
	}
	return texts
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		norm := NormalizeHeader(kw)
		if norm != "" && strings.Contains(text, norm) {
			return true
		}
	}
	return false
}
