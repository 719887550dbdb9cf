package domain

// RegionRow holds one region's figures for a single extraction.
//
// PriorValue and GrowthRate are nil when the prior-year column is missing
// or its cell is unparseable. A nil growth rate must never be substituted
// with 0 — "no data" and "no change" are different statements, and the
// template layer renders the former as "N/A".
type RegionRow struct {
	RegionName   string   `json:"region_name" validate:"required"`
	DisplayName  string   `json:"display_name"`
	CurrentValue float64  `json:"current_value"`
	PriorValue   *float64 `json:"prior_value,omitempty"`
	GrowthRate   *float64 `json:"growth_rate,omitempty"`
	// PriorRate is the previous quarter's own year-over-year rate, when
	// the workbook carries both that quarter's column and the one a year
	// before it. It feeds trend reversal detection and is nil otherwise.
	PriorRate *float64 `json:"prior_rate,omitempty"`
}

// Category is a sub-category observation (industry, item group, age band)
// under one region's aggregate row. Weight is expressed as a 0-100
// percentage; 0 means the sheet carried no usable weight and the ranking
// fallback table applies.
type Category struct {
	Name       string  `json:"name" validate:"required"`
	GrowthRate float64 `json:"growth_rate"`
	Weight     float64 `json:"weight" validate:"min=0"`
}

// CategoryContribution is a category scored for narrative ranking.
// Contribution = |growth_rate * weight / 100| with weight as a percentage.
type CategoryContribution struct {
	Name         string  `json:"name"`
	GrowthRate   float64 `json:"growth_rate"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}
