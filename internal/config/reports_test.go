package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "regitrend/internal/errors"
	"regitrend/pkg/contracts/domain"
)

func TestBuiltin_AllValid(t *testing.T) {
	reports := Builtin()

	require.NoError(t, ValidateReports(reports))
	assert.Len(t, reports, 9)

	for _, r := range reports {
		assert.True(t, r.IndicatorKind().Valid(), "report %s has invalid kind", r.ID)
		assert.Equal(t, "전국", r.Aggregate)
	}
}

func TestValidateReports(t *testing.T) {
	valid := ReportConfig{
		ID:             "mining-production",
		Title:          "광공업생산",
		Subject:        "광공업생산",
		SheetKeywords:  []string{"광공업"},
		HeaderRows:     3,
		RegionColumn:   0,
		CategoryColumn: 1,
		WeightColumn:   2,
		WeightScale:    1,
		Aggregate:      "전국",
		Kind:           string(domain.KindVolume),
	}

	t.Run("valid definition passes", func(t *testing.T) {
		assert.NoError(t, ValidateReports([]ReportConfig{valid}))
	})

	t.Run("empty set rejected", func(t *testing.T) {
		err := ValidateReports(nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		err := ValidateReports([]ReportConfig{valid, valid})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		bad := valid
		bad.Kind = "ratio"
		assert.Error(t, ValidateReports([]ReportConfig{bad}))
	})

	t.Run("missing sheet keywords rejected", func(t *testing.T) {
		bad := valid
		bad.SheetKeywords = nil
		assert.Error(t, ValidateReports([]ReportConfig{bad}))
	})

	t.Run("zero header rows rejected", func(t *testing.T) {
		bad := valid
		bad.HeaderRows = 0
		assert.Error(t, ValidateReports([]ReportConfig{bad}))
	})

	t.Run("region table overrides accepted", func(t *testing.T) {
		custom := valid
		custom.RegionAliases = map[string]string{"수도권역": "수도권"}
		custom.CanonicalRegions = []string{"전국", "수도권"}
		assert.NoError(t, ValidateReports([]ReportConfig{custom}))
	})

	t.Run("blank canonical region rejected", func(t *testing.T) {
		bad := valid
		bad.CanonicalRegions = []string{"전국", ""}
		assert.Error(t, ValidateReports([]ReportConfig{bad}))
	})
}

func TestLoadReports_BuiltinWhenPathEmpty(t *testing.T) {
	reports, err := LoadReports("")

	require.NoError(t, err)
	assert.Equal(t, Builtin(), reports)
}

func TestLoadReports_MissingFile(t *testing.T) {
	_, err := LoadReports("/nonexistent/reports.yaml")

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}

func TestReportConfig_HasCategories(t *testing.T) {
	r := ReportConfig{CategoryColumn: 1}
	assert.True(t, r.HasCategories())

	r.CategoryColumn = -1
	assert.False(t, r.HasCategories())
}
