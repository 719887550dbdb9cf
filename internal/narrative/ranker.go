package narrative

import (
	"sort"
	"strings"

	"regitrend/pkg/contracts/domain"
)

// Ranking separates the scored categories by direction of movement.
// Both lists are sorted by contribution descending and truncated to the
// requested size.
type Ranking struct {
	Positive []domain.CategoryContribution
	Negative []domain.CategoryContribution
}

// fallbackWeights assigns a rank weight by category-name keyword when
// the sheet carries no usable weight. First matching keyword wins.
var fallbackWeights = []struct {
	keyword string
	weight  float64
}{
	{"반도체", 20},
	{"전자부품", 15},
	{"자동차", 12},
	{"화학", 10},
	{"금융", 10},
	{"도소매", 8},
	{"기계장비", 8},
	{"1차금속", 6},
	{"운수", 6},
	{"식료품", 5},
	{"석유정제", 5},
	{"숙박", 4},
}

// defaultFallbackWeight applies when no keyword matches, keeping a
// weightless category visible without letting it dominate.
const defaultFallbackWeight = 1.0

// RankContributions scores each category as |growth_rate * weight / 100|
// with weight expressed as a 0-100 percentage, and returns the topN
// movers per direction. A missing or zero weight is replaced from the
// fallback table. Categories with a zero growth rate drive neither
// direction and are dropped.
func RankContributions(categories []domain.Category, topN int) Ranking {
	if topN < 0 {
		topN = 0
	}

	var positive, negative []domain.CategoryContribution
	for _, c := range categories {
		if c.GrowthRate == 0 {
			continue
		}

		weight := c.Weight
		if weight <= 0 {
			weight = lookupFallbackWeight(c.Name)
		}

		contribution := c.GrowthRate * weight / 100
		if contribution < 0 {
			contribution = -contribution
		}

		scored := domain.CategoryContribution{
			Name:         c.Name,
			GrowthRate:   c.GrowthRate,
			Weight:       weight,
			Contribution: contribution,
		}
		if c.GrowthRate > 0 {
			positive = append(positive, scored)
		} else {
			negative = append(negative, scored)
		}
	}

	sortByContribution(positive)
	sortByContribution(negative)

	return Ranking{
		Positive: truncate(positive, topN),
		Negative: truncate(negative, topN),
	}
}

// Names returns just the category names of a ranked list, in order.
func Names(ranked []domain.CategoryContribution) []string {
	names := make([]string, len(ranked))
	for i, c := range ranked {
		names[i] = c.Name
	}
	return names
}

func lookupFallbackWeight(name string) float64 {
	for _, fw := range fallbackWeights {
		if strings.Contains(name, fw.keyword) {
			return fw.weight
		}
	}
	return defaultFallbackWeight
}

// sortByContribution orders descending; ties keep input order so the
// ranking is deterministic.
func sortByContribution(list []domain.CategoryContribution) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Contribution > list[j].Contribution
	})
}

func truncate(list []domain.CategoryContribution, n int) []domain.CategoryContribution {
	if len(list) > n {
		return list[:n]
	}
	return list
}
