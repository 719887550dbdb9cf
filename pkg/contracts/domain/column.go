package domain

// MatchReasons records which criteria a resolved column satisfied.
// Kind is only meaningful when a data-kind keyword set was required.
type MatchReasons struct {
	Year    bool `json:"year"`
	Quarter bool `json:"quarter"`
	Kind    bool `json:"kind"`
}

// ColumnMatch is the result of resolving a (year, quarter[, kind]) tuple
// against a merged header block. It is created fresh per resolution call
// and never mutated. Absence of a match is signalled by the resolver's
// second return value, not by a sentinel ColumnMatch.
type ColumnMatch struct {
	ColumnIndex int          `json:"column_index"`
	MatchedText string       `json:"matched_text"`
	Reasons     MatchReasons `json:"match_reasons"`
}
