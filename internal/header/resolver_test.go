package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regitrend/internal/grid"
	"regitrend/pkg/contracts/domain"
)

func TestResolver_Resolve_MergedYearFill(t *testing.T) {
	// The year label spans three quarter columns but is stored only once.
	g := grid.NewSliceGrid([][]string{
		{"2025", "", ""},
		{"1/4", "2/4", "3/4"},
	})

	r := NewResolver(nil)
	match, ok := r.Resolve(g, 2, domain.Period{Year: 2025, Quarter: 2}, ResolveOptions{})

	require.True(t, ok)
	assert.Equal(t, 1, match.ColumnIndex)
	assert.True(t, match.Reasons.Year)
	assert.True(t, match.Reasons.Quarter)
}

func TestResolver_Resolve_EncodingVariants(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "space separated", header: "2025 3/4"},
		{name: "dot separated", header: "2025.3/4"},
		{name: "short year with Q", header: "'25 3Q"},
		{name: "korean quarter", header: "2025년 3분기"},
		{name: "Q before digit", header: "2025 Q3"},
		{name: "provisional marker", header: "2025 3/4p"},
		{name: "wrapped cell", header: "2025\n3/4"},
	}

	r := NewResolver(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.NewSliceGrid([][]string{{"시도", tt.header}})

			match, ok := r.Resolve(g, 1, domain.Period{Year: 2025, Quarter: 3}, ResolveOptions{})

			require.True(t, ok)
			assert.Equal(t, 1, match.ColumnIndex)
		})
	}
}

func TestResolver_Resolve_Deterministic(t *testing.T) {
	g := grid.NewSliceGrid([][]string{
		{"", "2024", "2024", "2025", "2025"},
		{"", "2/4", "3/4", "2/4", "3/4"},
	})

	r := NewResolver(nil)
	first, ok1 := r.Resolve(g, 2, domain.Period{Year: 2025, Quarter: 3}, ResolveOptions{})
	second, ok2 := r.Resolve(g, 2, domain.Period{Year: 2025, Quarter: 3}, ResolveOptions{})

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
	assert.Equal(t, 4, first.ColumnIndex)
}

func TestResolver_Resolve_LeftmostWins(t *testing.T) {
	// Regenerated workbooks append duplicate period columns on the right;
	// chronological order means the leftmost duplicate is authoritative.
	g := grid.NewSliceGrid([][]string{
		{"2025 3/4", "2025 3/4"},
	})

	r := NewResolver(nil)
	match, ok := r.Resolve(g, 1, domain.Period{Year: 2025, Quarter: 3}, ResolveOptions{})

	require.True(t, ok)
	assert.Equal(t, 0, match.ColumnIndex)
}

func TestResolver_Resolve_ShortYearGating(t *testing.T) {
	t.Run("short year ignored when a full year exists", func(t *testing.T) {
		// "25 3/4" could be read as '25, but the block carries an explicit
		// 2024 so the weak fallback must not fire.
		g := grid.NewSliceGrid([][]string{
			{"25 3/4", "2024 3/4"},
		})

		r := NewResolver(nil)
		_, ok := r.Resolve(g, 1, domain.Period{Year: 2025, Quarter: 3}, ResolveOptions{})

		assert.False(t, ok)
	})

	t.Run("short year accepted when no full year exists", func(t *testing.T) {
		g := grid.NewSliceGrid([][]string{
			{"'24 3Q", "'25 3Q"},
		})

		r := NewResolver(nil)
		match, ok := r.Resolve(g, 1, domain.Period{Year: 2025, Quarter: 3}, ResolveOptions{})

		require.True(t, ok)
		assert.Equal(t, 1, match.ColumnIndex)
	})
}

func TestResolver_Resolve_KindKeywords(t *testing.T) {
	// Index and growth-rate columns share the same period label.
	g := grid.NewSliceGrid([][]string{
		{"2025 3/4", "2025 3/4"},
		{"지수", "증감률"},
	})
	r := NewResolver(nil)
	target := domain.Period{Year: 2025, Quarter: 3}

	t.Run("kind required", func(t *testing.T) {
		match, ok := r.Resolve(g, 2, target, ResolveOptions{
			RequireKind:  true,
			KindKeywords: []string{"증감률"},
		})

		require.True(t, ok)
		assert.Equal(t, 1, match.ColumnIndex)
		assert.True(t, match.Reasons.Kind)
	})

	t.Run("kind not required takes leftmost", func(t *testing.T) {
		match, ok := r.Resolve(g, 2, target, ResolveOptions{})

		require.True(t, ok)
		assert.Equal(t, 0, match.ColumnIndex)
		assert.False(t, match.Reasons.Kind)
	})

	t.Run("kind required but absent", func(t *testing.T) {
		_, ok := r.Resolve(g, 2, target, ResolveOptions{
			RequireKind:  true,
			KindKeywords: []string{"기여도"},
		})

		assert.False(t, ok)
	})
}

func TestResolver_Resolve_NotFoundIsValue(t *testing.T) {
	tests := []struct {
		name string
		g    grid.Grid
	}{
		{name: "empty grid", g: grid.NewSliceGrid(nil)},
		{name: "no period columns", g: grid.NewSliceGrid([][]string{{"시도", "가중치"}})},
		{name: "wrong year", g: grid.NewSliceGrid([][]string{{"2023 3/4"}})},
		{name: "wrong quarter", g: grid.NewSliceGrid([][]string{{"2025 1/4"}})},
		{name: "year token embedded in longer number", g: grid.NewSliceGrid([][]string{{"120253/4"}})},
	}

	r := NewResolver(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := r.Resolve(tt.g, 1, domain.Period{Year: 2025, Quarter: 3}, ResolveOptions{})
			assert.False(t, ok)
		})
	}
}

func TestResolver_Resolve_HeaderRowsShorterThanRequested(t *testing.T) {
	g := grid.NewSliceGrid([][]string{
		{"2025 3/4"},
	})

	r := NewResolver(nil)
	match, ok := r.Resolve(g, 5, domain.Period{Year: 2025, Quarter: 3}, ResolveOptions{})

	require.True(t, ok)
	assert.Equal(t, 0, match.ColumnIndex)
}

func TestResolver_Resolve_InvalidTarget(t *testing.T) {
	g := grid.NewSliceGrid([][]string{{"2025 3/4"}})
	r := NewResolver(nil)

	_, ok := r.Resolve(g, 1, domain.Period{Year: 2025, Quarter: 5}, ResolveOptions{})
	assert.False(t, ok)

	_, ok = r.Resolve(nil, 1, domain.Period{Year: 2025, Quarter: 3}, ResolveOptions{})
	assert.False(t, ok)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "20253/4P", NormalizeHeader("2025  3/4p"))
	assert.Equal(t, "2025년3분기", NormalizeHeader("2025년 3분기"))
	assert.Equal(t, "'253Q", NormalizeHeader("'25\t3q"))
	assert.Equal(t, "", NormalizeHeader("  \n "))
}
