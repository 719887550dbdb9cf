package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regitrend/pkg/contracts/domain"
)

func TestRankContributions(t *testing.T) {
	categories := []domain.Category{
		{Name: "A", GrowthRate: 10, Weight: 50},
		{Name: "B", GrowthRate: 5, Weight: 300},
		{Name: "C", GrowthRate: 15, Weight: 20},
	}

	ranking := RankContributions(categories, 2)

	require.Len(t, ranking.Positive, 2)
	assert.Equal(t, "B", ranking.Positive[0].Name, "weight dominates a larger rate")
	assert.Equal(t, 15.0, ranking.Positive[0].Contribution)
	assert.Equal(t, "A", ranking.Positive[1].Name)
	assert.Equal(t, 5.0, ranking.Positive[1].Contribution)
	assert.Empty(t, ranking.Negative)
}

func TestRankContributions_Directions(t *testing.T) {
	categories := []domain.Category{
		{Name: "전자부품", GrowthRate: 8, Weight: 20},
		{Name: "화학제품", GrowthRate: -4, Weight: 30},
		{Name: "기계장비", GrowthRate: -10, Weight: 5},
		{Name: "식료품", GrowthRate: 0, Weight: 50},
	}

	ranking := RankContributions(categories, 3)

	require.Len(t, ranking.Positive, 1)
	assert.Equal(t, "전자부품", ranking.Positive[0].Name)

	require.Len(t, ranking.Negative, 2)
	assert.Equal(t, "화학제품", ranking.Negative[0].Name)
	assert.Equal(t, 1.2, ranking.Negative[0].Contribution)
	assert.Equal(t, "기계장비", ranking.Negative[1].Name)

	for _, c := range append(ranking.Positive, ranking.Negative...) {
		assert.NotEqual(t, "식료품", c.Name, "zero growth rate is excluded")
	}
}

func TestRankContributions_FallbackWeights(t *testing.T) {
	t.Run("keyword match", func(t *testing.T) {
		ranking := RankContributions([]domain.Category{
			{Name: "반도체·전자부품", GrowthRate: 2},
			{Name: "이름없는업종", GrowthRate: 2},
		}, 2)

		require.Len(t, ranking.Positive, 2)
		assert.Equal(t, "반도체·전자부품", ranking.Positive[0].Name)
		assert.Equal(t, 20.0, ranking.Positive[0].Weight)
		assert.Equal(t, defaultFallbackWeight, ranking.Positive[1].Weight)
	})

	t.Run("zero weight is never invisible", func(t *testing.T) {
		ranking := RankContributions([]domain.Category{
			{Name: "기타", GrowthRate: 3, Weight: 0},
		}, 1)

		require.Len(t, ranking.Positive, 1)
		assert.Greater(t, ranking.Positive[0].Contribution, 0.0)
	})
}

func TestRankContributions_StableOnTies(t *testing.T) {
	categories := []domain.Category{
		{Name: "첫째", GrowthRate: 2, Weight: 50},
		{Name: "둘째", GrowthRate: 2, Weight: 50},
	}

	first := RankContributions(categories, 2)
	second := RankContributions(categories, 2)

	assert.Equal(t, first, second)
	assert.Equal(t, "첫째", first.Positive[0].Name, "input order breaks ties")
}

func TestRankContributions_Truncation(t *testing.T) {
	categories := []domain.Category{
		{Name: "A", GrowthRate: 1, Weight: 10},
		{Name: "B", GrowthRate: 2, Weight: 10},
		{Name: "C", GrowthRate: 3, Weight: 10},
	}

	ranking := RankContributions(categories, 2)
	assert.Len(t, ranking.Positive, 2)

	ranking = RankContributions(categories, 0)
	assert.Empty(t, ranking.Positive)

	ranking = RankContributions(nil, 2)
	assert.Empty(t, ranking.Positive)
	assert.Empty(t, ranking.Negative)
}

func TestNames(t *testing.T) {
	ranked := []domain.CategoryContribution{
		{Name: "전자부품"},
		{Name: "화학제품"},
	}
	assert.Equal(t, []string{"전자부품", "화학제품"}, Names(ranked))
	assert.Empty(t, Names(nil))
}
