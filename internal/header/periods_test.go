package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regitrend/internal/grid"
	"regitrend/pkg/contracts/domain"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Period
		ok   bool
	}{
		{name: "standard", text: "2025 3/4", want: domain.Period{Year: 2025, Quarter: 3}, ok: true},
		{name: "provisional", text: "2025 2/4p", want: domain.Period{Year: 2025, Quarter: 2, Provisional: true}, ok: true},
		{name: "dot form", text: "2024.1/4", want: domain.Period{Year: 2024, Quarter: 1}, ok: true},
		{name: "korean", text: "2024년 4분기", want: domain.Period{Year: 2024, Quarter: 4}, ok: true},
		{name: "korean provisional", text: "2025년 3분기p", want: domain.Period{Year: 2025, Quarter: 3, Provisional: true}, ok: true},
		{name: "short year", text: "'23 2Q", want: domain.Period{Year: 2023, Quarter: 2}, ok: true},
		{name: "short year provisional", text: "'25 3Qp", want: domain.Period{Year: 2025, Quarter: 3, Provisional: true}, ok: true},
		{name: "q-first provisional", text: "2025 Q3P", want: domain.Period{Year: 2025, Quarter: 3, Provisional: true}, ok: true},
		{name: "no period", text: "가중치", ok: false},
		{name: "year only", text: "2024", ok: false},
		{name: "empty", text: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePeriod(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDetectPeriods(t *testing.T) {
	g := grid.NewSliceGrid([][]string{
		{"시도", "2024 2/4", "2024 3/4", "2024 4/4", "2025 1/4", "2025 2/4p"},
	})

	pr, ok := DetectPeriods(g, 1)

	require.True(t, ok)
	assert.Len(t, pr.Periods, 5)
	assert.Equal(t, domain.Period{Year: 2024, Quarter: 2}, pr.Periods[0])
	assert.Equal(t, domain.Period{Year: 2025, Quarter: 2}, pr.Latest)
	require.NotNil(t, pr.Provisional)
	assert.Equal(t, 2025, pr.Provisional.Year)
	assert.Equal(t, 2, pr.Provisional.Quarter)
	assert.True(t, pr.Provisional.Provisional)
}

func TestDetectPeriods_NoneFound(t *testing.T) {
	g := grid.NewSliceGrid([][]string{{"시도", "가중치", "산업 이름"}})

	_, ok := DetectPeriods(g, 1)
	assert.False(t, ok)
}
