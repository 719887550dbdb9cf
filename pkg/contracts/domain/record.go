package domain

// ReportRecord is the outbound contract handed to the template layer
// (HTML/Word/HWPX), which this module never imports. Fields maps named
// template slots to pre-formatted strings; unresolved data appears as
// "N/A", never as a fabricated number.
type ReportRecord struct {
	ReportID string `json:"report_id"`
	Title    string `json:"title"`
	Period   Period `json:"period"`

	Nation          *RegionRow  `json:"nation,omitempty"`
	NationNarrative string      `json:"nation_narrative"`
	Regions         []RegionRow `json:"regions"`
	TopGainers      []RegionRow `json:"top_gainers"`
	TopLosers       []RegionRow `json:"top_losers"`

	PositiveCategories []CategoryContribution `json:"positive_categories"`
	NegativeCategories []CategoryContribution `json:"negative_categories"`

	Pattern NarrativePattern  `json:"pattern"`
	Fields  map[string]string `json:"fields"`
}
