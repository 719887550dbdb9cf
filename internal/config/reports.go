package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	apperrors "regitrend/internal/errors"
	"regitrend/pkg/contracts/domain"
)

// ReportConfig describes one report sheet: how to find it in the
// workbook, where its header block and data columns sit, and which
// vocabulary family its narrative uses. Column indices are 0-based;
// CategoryColumn and WeightColumn are -1 for sheets without a category
// breakdown. RegionAliases and CanonicalRegions override the built-in
// region tables; empty means the standard 전국 + 17 divisions.
type ReportConfig struct {
	ID               string            `yaml:"id" validate:"required"`
	Title            string            `yaml:"title" validate:"required"`
	Subject          string            `yaml:"subject" validate:"required"`
	SheetKeywords    []string          `yaml:"sheet_keywords" validate:"min=1,dive,required"`
	ContentKeywords  []string          `yaml:"content_keywords"`
	HeaderRows       int               `yaml:"header_rows" validate:"min=1,max=10"`
	RegionColumn     int               `yaml:"region_column" validate:"gte=0"`
	CategoryColumn   int               `yaml:"category_column" validate:"gte=-1"`
	WeightColumn     int               `yaml:"weight_column" validate:"gte=-1"`
	TotalCategory    string            `yaml:"total_category"`
	WeightScale      float64           `yaml:"weight_scale" validate:"gte=0"`
	Aggregate        string            `yaml:"aggregate" validate:"required"`
	RegionAliases    map[string]string `yaml:"region_aliases"`
	CanonicalRegions []string          `yaml:"canonical_regions" validate:"dive,required"`
	Kind             string            `yaml:"kind" validate:"oneof=volume price_rate"`
	KindKeywords     []string          `yaml:"kind_keywords"`
	Unit             string            `yaml:"unit"`
}

// IndicatorKind returns the typed vocabulary family for the report.
func (r ReportConfig) IndicatorKind() domain.IndicatorKind {
	return domain.IndicatorKind(r.Kind)
}

// HasCategories reports whether the sheet carries a category breakdown
// usable for cause attribution.
func (r ReportConfig) HasCategories() bool {
	return r.CategoryColumn >= 0
}

// LoadReports returns the report definitions: the built-in table when
// path is empty, otherwise the YAML file at path. Definitions are
// validated either way.
func LoadReports(path string) ([]ReportConfig, error) {
	if path == "" {
		reports := Builtin()
		if err := ValidateReports(reports); err != nil {
			return nil, err
		}
		return reports, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigError("failed to read reports file", err).
			WithContext("path", path)
	}

	var reports []ReportConfig
	if err := yaml.Unmarshal(data, &reports); err != nil {
		return nil, apperrors.NewConfigError("failed to parse reports file", err).
			WithContext("path", path)
	}

	if err := ValidateReports(reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// ValidateReports checks every definition and rejects duplicate IDs.
func ValidateReports(reports []ReportConfig) error {
	if len(reports) == 0 {
		return apperrors.NewConfigError("no report definitions", nil)
	}

	validate := validator.New()
	seen := make(map[string]bool, len(reports))
	for i, r := range reports {
		if err := validate.Struct(r); err != nil {
			return apperrors.NewConfigError(
				fmt.Sprintf("report definition %d is invalid", i), err).
				WithContext("report_id", r.ID)
		}
		if seen[r.ID] {
			return apperrors.NewConfigError(
				fmt.Sprintf("duplicate report id %q", r.ID), nil)
		}
		seen[r.ID] = true
	}
	return nil
}

// Builtin returns the report definitions for the standard quarterly
// regional-economy workbook.
func Builtin() []ReportConfig {
	return []ReportConfig{
		{
			ID:              "mining-production",
			Title:           "광공업생산",
			Subject:         "광공업생산",
			SheetKeywords:   []string{"광공업"},
			ContentKeywords: []string{"광공업생산지수"},
			HeaderRows:      3,
			RegionColumn:    0,
			CategoryColumn:  1,
			WeightColumn:    2,
			TotalCategory:   "총지수",
			WeightScale:     1,
			Aggregate:       "전국",
			Kind:            string(domain.KindVolume),
			KindKeywords:    []string{"지수"},
			Unit:            "%",
		},
		{
			ID:              "service-production",
			Title:           "서비스업생산",
			Subject:         "서비스업생산",
			SheetKeywords:   []string{"서비스업"},
			ContentKeywords: []string{"서비스업생산지수"},
			HeaderRows:      3,
			RegionColumn:    0,
			CategoryColumn:  1,
			WeightColumn:    2,
			TotalCategory:   "총지수",
			WeightScale:     1,
			Aggregate:       "전국",
			Kind:            string(domain.KindVolume),
			KindKeywords:    []string{"지수"},
			Unit:            "%",
		},
		{
			ID:              "retail-sales",
			Title:           "소비동향",
			Subject:         "소매판매",
			SheetKeywords:   []string{"소비", "소매"},
			ContentKeywords: []string{"소매판매액지수"},
			HeaderRows:      3,
			RegionColumn:    0,
			CategoryColumn:  1,
			WeightColumn:    2,
			TotalCategory:   "총지수",
			WeightScale:     1,
			Aggregate:       "전국",
			Kind:            string(domain.KindVolume),
			KindKeywords:    []string{"지수"},
			Unit:            "%",
		},
		{
			ID:              "exports",
			Title:           "수출",
			Subject:         "수출",
			SheetKeywords:   []string{"수출"},
			ContentKeywords: []string{"수출액"},
			HeaderRows:      2,
			RegionColumn:    0,
			CategoryColumn:  1,
			WeightColumn:    -1,
			TotalCategory:   "총계",
			Aggregate:       "전국",
			Kind:            string(domain.KindVolume),
			Unit:            "백만달러",
		},
		{
			ID:              "imports",
			Title:           "수입",
			Subject:         "수입",
			SheetKeywords:   []string{"수입"},
			ContentKeywords: []string{"수입액"},
			HeaderRows:      2,
			RegionColumn:    0,
			CategoryColumn:  1,
			WeightColumn:    -1,
			TotalCategory:   "총계",
			Aggregate:       "전국",
			Kind:            string(domain.KindVolume),
			Unit:            "백만달러",
		},
		{
			ID:              "consumer-prices",
			Title:           "물가동향",
			Subject:         "소비자물가",
			SheetKeywords:   []string{"물가"},
			ContentKeywords: []string{"소비자물가지수"},
			HeaderRows:      2,
			RegionColumn:    0,
			CategoryColumn:  1,
			WeightColumn:    2,
			TotalCategory:   "총지수",
			WeightScale:     1,
			Aggregate:       "전국",
			Kind:            string(domain.KindPriceRate),
			KindKeywords:    []string{"지수"},
			Unit:            "%",
		},
		{
			ID:              "employment-rate",
			Title:           "고용률",
			Subject:         "고용률",
			SheetKeywords:   []string{"고용"},
			ContentKeywords: []string{"고용률"},
			HeaderRows:      2,
			RegionColumn:    0,
			CategoryColumn:  -1,
			WeightColumn:    -1,
			Aggregate:       "전국",
			Kind:            string(domain.KindPriceRate),
			Unit:            "%",
		},
		{
			ID:              "unemployment-rate",
			Title:           "실업률",
			Subject:         "실업률",
			SheetKeywords:   []string{"실업"},
			ContentKeywords: []string{"실업률"},
			HeaderRows:      2,
			RegionColumn:    0,
			CategoryColumn:  -1,
			WeightColumn:    -1,
			Aggregate:       "전국",
			Kind:            string(domain.KindPriceRate),
			Unit:            "%",
		},
		{
			ID:              "net-migration",
			Title:           "인구이동",
			Subject:         "순유입인구",
			SheetKeywords:   []string{"인구"},
			ContentKeywords: []string{"순이동"},
			HeaderRows:      2,
			RegionColumn:    0,
			CategoryColumn:  -1,
			WeightColumn:    -1,
			Aggregate:       "전국",
			Kind:            string(domain.KindVolume),
			Unit:            "명",
		},
	}
}
