// Package narrative turns computed growth figures into the Korean
// sentences used by the quarterly regional reports. Vocabulary choice,
// particle selection, pattern selection and contribution ranking each
// live behind a single function so wording is never hand-assembled at
// call sites.
package narrative

import (
	"regitrend/pkg/contracts/domain"
)

// FlatEpsilon is the band inside which a growth rate reads as 보합
// rather than a direction.
const FlatEpsilon = 0.01

// ResolveVocabulary maps an indicator kind and growth rate to its verb
// pair. Volume indicators move with 늘어/줄어 and land on 증가/감소;
// price and rate indicators move with 올라/내려 and land on 상승/하락.
// The two families never mix. Inside the flat band the cause verb is
// empty and the result is 보합.
func ResolveVocabulary(kind domain.IndicatorKind, growthRate float64) domain.VocabularyPair {
	if growthRate < FlatEpsilon && growthRate > -FlatEpsilon {
		return domain.VocabularyPair{ResultNoun: "보합"}
	}

	switch kind {
	case domain.KindPriceRate:
		if growthRate > 0 {
			return domain.VocabularyPair{CauseVerb: "올라", ResultNoun: "상승"}
		}
		return domain.VocabularyPair{CauseVerb: "내려", ResultNoun: "하락"}
	default:
		if growthRate > 0 {
			return domain.VocabularyPair{CauseVerb: "늘어", ResultNoun: "증가"}
		}
		return domain.VocabularyPair{CauseVerb: "줄어", ResultNoun: "감소"}
	}
}
