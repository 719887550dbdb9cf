package narrative

import (
	"regitrend/pkg/contracts/domain"
)

// SelectPattern chooses the rhetorical pattern for one narrative. It is
// total: exactly one pattern comes back for any input.
//
// Priority, first match wins: flat when the rate sits inside the 보합
// band; reversal when the prior period moved the other way; contrastive
// when categories moved in both directions; plain otherwise.
func SelectPattern(growthRate float64, priorRate *float64, hasMixedCategories bool) domain.NarrativePattern {
	if growthRate < FlatEpsilon && growthRate > -FlatEpsilon {
		return domain.PatternFlat
	}

	if priorRate != nil {
		p := *priorRate
		if (p > FlatEpsilon || p < -FlatEpsilon) && oppositeSigns(p, growthRate) {
			return domain.PatternReversal
		}
	}

	if hasMixedCategories {
		return domain.PatternContrastive
	}

	return domain.PatternPlain
}

func oppositeSigns(a, b float64) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}
