package header

import (
	"sort"
	"strconv"
	"strings"

	"regitrend/internal/grid"
	"regitrend/pkg/contracts/domain"
)

// PeriodRange summarizes the reporting periods present in a header block.
// Latest is the natural default target when the caller does not name one;
// Provisional is set when the newest quarter carries a "p" marker.
type PeriodRange struct {
	Periods     []domain.Period
	Latest      domain.Period
	Provisional *domain.Period
}

// ParsePeriod extracts a (year, quarter) pair from one header cell,
// accepting the same encodings the resolver matches against. The second
// return is false when the text encodes no period.
func ParsePeriod(text string) (domain.Period, bool) {
	compact := NormalizeHeader(text)
	spaced := NormalizeSpaced(text)
	if compact == "" {
		return domain.Period{}, false
	}

	year := 0
	for _, run := range digitRuns(spaced) {
		if len(run) != 4 {
			continue
		}
		n, err := strconv.Atoi(run)
		if err == nil && n >= 2000 && n <= 2100 {
			year = n
			break
		}
	}
	if year == 0 {
		// Short-year forms like "'25 3Q".
		if idx := strings.IndexByte(spaced, '\''); idx >= 0 && idx+3 <= len(spaced) {
			if n, err := strconv.Atoi(spaced[idx+1 : idx+3]); err == nil {
				year = 2000 + n
			}
		}
	}
	if year == 0 {
		return domain.Period{}, false
	}

	for q := 1; q <= 4; q++ {
		if !containsQuarter(compact, q) {
			continue
		}
		return domain.Period{Year: year, Quarter: q, Provisional: quarterProvisional(compact, q)}, true
	}
	return domain.Period{}, false
}

// DetectPeriods scans every cell of the header block individually and
// collects the distinct periods it finds, sorted chronologically. The
// second return is false when the block encodes no period at all.
func DetectPeriods(g grid.Grid, headerRows int) (PeriodRange, bool) {
	if g == nil {
		return PeriodRange{}, false
	}
	if headerRows < 1 {
		headerRows = 1
	}
	if headerRows > g.Rows() {
		headerRows = g.Rows()
	}

	seen := make(map[domain.Period]bool)
	var provisional *domain.Period
	for row := 0; row < headerRows; row++ {
		for col := 0; col < g.Cols(); col++ {
			text := grid.SafeString(g.CellAt(row, col))
			if text == "" {
				continue
			}
			p, ok := ParsePeriod(text)
			if !ok {
				continue
			}
			if p.Provisional {
				marked := p
				provisional = &marked
			}
			seen[domain.Period{Year: p.Year, Quarter: p.Quarter}] = true
		}
	}
	if len(seen) == 0 {
		return PeriodRange{}, false
	}

	periods := make([]domain.Period, 0, len(seen))
	for p := range seen {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	return PeriodRange{
		Periods:     periods,
		Latest:      periods[len(periods)-1],
		Provisional: provisional,
	}, true
}
