package domain

// IndicatorKind partitions indicators by the vocabulary their narratives
// use. Volume indicators (production, trade, migration counts) move with
// 증가/감소; price-and-rate indicators (price indices, employment and
// unemployment rates) move with 상승/하락. The two vocabularies never mix
// within one narrative.
type IndicatorKind string

const (
	KindVolume    IndicatorKind = "volume"
	KindPriceRate IndicatorKind = "price_rate"
)

// Valid reports whether k is one of the two closed kinds.
func (k IndicatorKind) Valid() bool {
	return k == KindVolume || k == KindPriceRate
}

// NarrativePattern is the rhetorical shape of a generated sentence.
type NarrativePattern string

const (
	// PatternPlain states the aggregate movement and its main drivers.
	PatternPlain NarrativePattern = "plain"
	// PatternContrastive leads with the counter-direction categories
	// ("...하였으나") before the aggregate direction.
	PatternContrastive NarrativePattern = "contrastive"
	// PatternFlat renders 보합 with no cause clause.
	PatternFlat NarrativePattern = "flat"
	// PatternReversal marks a sign flip against the previous period.
	PatternReversal NarrativePattern = "reversal"
)

// VocabularyPair is the (cause verb, result noun) pair for one direction
// of one indicator kind. CauseVerb is empty for the flat case, where the
// sentence carries no cause clause.
type VocabularyPair struct {
	CauseVerb  string `json:"cause_verb,omitempty"`
	ResultNoun string `json:"result_noun"`
}
