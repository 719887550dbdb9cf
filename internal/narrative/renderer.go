package narrative

import (
	"math"
	"strconv"
	"strings"

	"regitrend/pkg/contracts/domain"
)

// Render builds the final narrative sentence for one subject. The
// pattern decides the sentence shape; vocabulary always comes from
// ResolveVocabulary so the two word families never leak into each
// other's indicators. Output is plain text; any emphasis is the
// template layer's concern.
func Render(pattern domain.NarrativePattern, subject string, growthRate float64,
	priorRate *float64, mainCategories, contrastCategories []string,
	kind domain.IndicatorKind) string {

	topic := WithParticle(subject, TopicParticle)

	if pattern == domain.PatternFlat {
		return topic + " 전년동분기대비 보합"
	}

	vocab := ResolveVocabulary(kind, growthRate)
	tail := "전년동분기대비 " + FormatRateAbs(growthRate) + "% " + vocab.ResultNoun

	switch pattern {
	case domain.PatternContrastive:
		if len(contrastCategories) == 0 {
			break
		}
		counter := ResolveVocabulary(kind, -growthRate)
		return topic + " " +
			categoryClause(contrastCategories) + " " + counter.ResultNoun + "하였으나, " +
			causeClause(mainCategories, vocab) + tail

	case domain.PatternReversal:
		if priorRate == nil {
			break
		}
		prior := ResolveVocabulary(kind, *priorRate)
		return topic + " 전분기 " + prior.ResultNoun + "하였으나, " +
			causeClause(mainCategories, vocab) + tail
	}

	return topic + " " + causeClause(mainCategories, vocab) + tail
}

// causeClause renders "{categories}{이/가} {cause verb} ", or nothing
// when there are no categories to attribute the movement to.
func causeClause(categories []string, vocab domain.VocabularyPair) string {
	if len(categories) == 0 || vocab.CauseVerb == "" {
		return ""
	}
	return categoryClause(categories) + " " + vocab.CauseVerb + " "
}

// categoryClause joins category names and attaches the subject particle
// chosen by the last name's final syllable.
func categoryClause(categories []string) string {
	joined := strings.Join(categories, ", ")
	return joined + Particle(joined, SubjectParticle)
}

// FormatRateAbs renders the magnitude of a rate with one decimal.
func FormatRateAbs(rate float64) string {
	return strconv.FormatFloat(math.Abs(rate), 'f', 1, 64)
}

// FormatRate renders a nullable rate for table output. Absent data must
// read as "N/A", never as zero.
func FormatRate(rate *float64) string {
	if rate == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*rate, 'f', 1, 64)
}
