// Package extract reads region rows and category breakdowns out of
// report sheets, resolving period columns through the header package and
// computing year-over-year growth rates at the boundary.
package extract

import (
	"strings"
)

// defaultRegionAliases maps full administrative names (and legacy
// spellings) to the short canonical names used throughout the reports.
var defaultRegionAliases = map[string]string{
	"서울특별시":   "서울",
	"부산광역시":   "부산",
	"대구광역시":   "대구",
	"인천광역시":   "인천",
	"광주광역시":   "광주",
	"대전광역시":   "대전",
	"울산광역시":   "울산",
	"세종특별자치시": "세종",
	"경기도":     "경기",
	"강원특별자치도": "강원",
	"강원도":     "강원",
	"충청북도":    "충북",
	"충청남도":    "충남",
	"전북특별자치도": "전북",
	"전라북도":    "전북",
	"전라남도":    "전남",
	"경상북도":    "경북",
	"경상남도":    "경남",
	"제주특별자치도": "제주",
	"제주도":     "제주",
}

// CanonicalRegions is the default report ordering: the national aggregate
// first, then the 17 first-level divisions.
var CanonicalRegions = []string{
	"전국",
	"서울", "부산", "대구", "인천", "광주", "대전", "울산", "세종",
	"경기", "강원", "충북", "충남", "전북", "전남", "경북", "경남", "제주",
}

// RegionTable resolves raw region cells against an alias map and a fixed
// canonical ordering. Report definitions may override either table; an
// empty override falls back to the built-in one.
type RegionTable struct {
	aliases map[string]string
	index   map[string]int
	size    int
}

// NewRegionTable builds a table from an alias map and an ordered region
// list, substituting the defaults for whichever argument is empty.
func NewRegionTable(aliases map[string]string, order []string) *RegionTable {
	if len(aliases) == 0 {
		aliases = defaultRegionAliases
	}
	if len(order) == 0 {
		order = CanonicalRegions
	}
	index := make(map[string]int, len(order))
	for i, name := range order {
		index[name] = i
	}
	return &RegionTable{aliases: aliases, index: index, size: len(order)}
}

var defaultTable = NewRegionTable(nil, nil)

// Normalize cleans a region cell and maps it to its canonical short name.
// Padded display forms like "전  국" normalize too. The result is the
// cleaned input when no alias applies.
func (t *RegionTable) Normalize(name string) string {
	cleaned := strings.Join(strings.Fields(name), "")
	if cleaned == "" {
		return ""
	}
	if short, ok := t.aliases[cleaned]; ok {
		return short
	}
	return cleaned
}

// IsCanonical reports whether name appears in the table's ordering.
func (t *RegionTable) IsCanonical(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Order returns the canonical position of name, or -1 when name is not a
// report region.
func (t *RegionTable) Order(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

// Size returns the number of regions the table orders.
func (t *RegionTable) Size() int {
	return t.size
}

// NormalizeRegion applies the default table's alias normalization.
func NormalizeRegion(name string) string {
	return defaultTable.Normalize(name)
}

// IsCanonical reports whether name is the national aggregate or one of
// the 17 divisions of the default table.
func IsCanonical(name string) bool {
	return defaultTable.IsCanonical(name)
}

// RegionOrder returns the default-table position of name, or -1 when
// name is not a report region.
func RegionOrder(name string) int {
	return defaultTable.Order(name)
}

// DisplayName returns the space-padded two-character layout used in the
// published tables, e.g. "전 국". Names longer than two characters pass
// through unchanged.
func DisplayName(name string) string {
	runes := []rune(name)
	if len(runes) != 2 {
		return name
	}
	return string(runes[0]) + " " + string(runes[1])
}
