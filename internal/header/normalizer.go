// Package header resolves (year, quarter, data-kind) tuples to column
// indices in spreadsheet blocks whose multi-row, partially merged headers
// vary between workbook editions. Instead of trying regex variants one
// after another, it generates the full set of accepted textual encodings
// for a period and tests substring membership against normalized header
// text, which keeps the matching exhaustively testable.
package header

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// NormalizeHeader strips all whitespace (including full-width spaces and
// newlines from wrapped cells) and uppercases ASCII so that "2025 3/4p",
// "2025\n3/4P" and "2025　3/4p" compare equal. Quarter and kind matching
// run against this compact form.
func NormalizeHeader(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// NormalizeSpaced collapses whitespace runs to single spaces instead of
// removing them. Year-token scanning runs against this form: stripping
// the space from "'25 3Q" would merge the digits into "253" and lose the
// 2-digit year token's boundary.
func NormalizeSpaced(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// QuarterEncodings returns the normalized quarter notations accepted for
// a quarter: the statistical-office "N/4" form, the Korean "N분기" form,
// and both Q orders. Year matching is handled separately by token scan.
func QuarterEncodings(quarter int) []string {
	return []string{
		fmt.Sprintf("%d/4", quarter),
		fmt.Sprintf("%d분기", quarter),
		fmt.Sprintf("Q%d", quarter),
		fmt.Sprintf("%dQ", quarter),
	}
}

// digitRuns yields every maximal run of ASCII digits in s as (start, text)
// pairs.
func digitRuns(s string) []string {
	var runs []string
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, s[start:])
	}
	return runs
}

// containsYear reports whether any 4-digit token in s equals year.
// Tokens are maximal digit runs, so "2025" inside "120254" does not match.
func containsYear(s string, year int) bool {
	target := strconv.Itoa(year)
	if len(target) != 4 {
		return false
	}
	for _, run := range digitRuns(s) {
		if len(run) == 4 && run == target {
			return true
		}
	}
	return false
}

// containsShortYear reports whether the 2-digit short year appears as a
// maximal digit run, e.g. the "25" of "'25 3Q". A longer run such as
// "2025" or "253" never matches.
func containsShortYear(s string, year int) bool {
	target := fmt.Sprintf("%02d", year%100)
	for _, run := range digitRuns(s) {
		if len(run) == 2 && run == target {
			return true
		}
	}
	return false
}

// containsAnyFourDigitYear reports whether s carries any 4-digit token in
// the plausible year range. Used to gate the weaker 2-digit fallback.
func containsAnyFourDigitYear(s string) bool {
	for _, run := range digitRuns(s) {
		if len(run) != 4 {
			continue
		}
		n, err := strconv.Atoi(run)
		if err == nil && n >= 1990 && n <= 2100 {
			return true
		}
	}
	return false
}

// containsQuarter reports whether any accepted encoding of the quarter is
// a literal substring of the normalized header text.
func containsQuarter(s string, quarter int) bool {
	for _, enc := range QuarterEncodings(quarter) {
		if strings.Contains(s, enc) {
			return true
		}
	}
	return false
}

// quarterProvisional reports whether any accepted encoding of the quarter
// appears with a trailing provisional marker, e.g. "3/4P", "3QP", "3분기P".
// The input is already uppercased by NormalizeHeader.
func quarterProvisional(s string, quarter int) bool {
	for _, enc := range QuarterEncodings(quarter) {
		if strings.Contains(s, enc+"P") {
			return true
		}
	}
	return false
}
