package domain

import (
	"fmt"
)

// Period identifies a quarterly reporting period.
// Provisional marks the newest quarter whose figures may still carry a
// "p" suffix in the source workbook.
type Period struct {
	Year        int  `json:"year" validate:"required,min=2000,max=2100"`
	Quarter     int  `json:"quarter" validate:"required,min=1,max=4"`
	Provisional bool `json:"provisional,omitempty"`
}

// Valid reports whether the period lies in the supported range.
func (p Period) Valid() bool {
	return p.Year >= 2000 && p.Year <= 2100 && p.Quarter >= 1 && p.Quarter <= 4
}

// PriorYear returns the same quarter one year earlier. The provisional flag
// never carries over: only the newest quarter can be preliminary.
func (p Period) PriorYear() Period {
	return Period{Year: p.Year - 1, Quarter: p.Quarter}
}

// Previous returns the immediately preceding quarter.
func (p Period) Previous() Period {
	if p.Quarter == 1 {
		return Period{Year: p.Year - 1, Quarter: 4}
	}
	return Period{Year: p.Year, Quarter: p.Quarter - 1}
}

// Comparable reports whether other is the year-over-year counterpart of p:
// same quarter, years exactly one apart.
func (p Period) Comparable(other Period) bool {
	diff := p.Year - other.Year
	if diff < 0 {
		diff = -diff
	}
	return p.Quarter == other.Quarter && diff == 1
}

// Before reports whether p precedes other chronologically.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Quarter < other.Quarter
}

// Label renders the Korean statistical-office notation, e.g. "2025 3/4"
// or "2025 2/4p" for a provisional quarter.
func (p Period) Label() string {
	if p.Provisional {
		return fmt.Sprintf("%d %d/4p", p.Year, p.Quarter)
	}
	return fmt.Sprintf("%d %d/4", p.Year, p.Quarter)
}

func (p Period) String() string {
	return p.Label()
}
