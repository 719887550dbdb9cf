package extract

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"regitrend/internal/config"
	apperrors "regitrend/internal/errors"
	"regitrend/internal/grid"
	"regitrend/internal/header"
	"regitrend/pkg/contracts/domain"
)

// Extractor pulls region rows and category breakdowns out of one report
// sheet. It is stateless apart from its logger.
type Extractor struct {
	resolver *header.Resolver
	logger   *slog.Logger
}

// NewExtractor creates an extractor. A nil logger falls back to the default.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		resolver: header.NewResolver(logger),
		logger:   logger,
	}
}

// Extract returns one row per canonical region for the target period,
// ordered nation-first in the report order. Regions whose current cell
// is missing or unparseable are omitted entirely. Growth rates are
// computed against the same quarter one year earlier and stay nil when
// that column or cell is absent.
func (e *Extractor) Extract(g grid.Grid, cfg config.ReportConfig, target domain.Period) ([]domain.RegionRow, error) {
	if err := validateLayout(g, cfg); err != nil {
		return nil, err
	}

	opts := resolveOptions(cfg)
	current, ok := e.resolver.Resolve(g, cfg.HeaderRows, target, opts)
	if !ok {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("period column %s not found for report %s", target.Label(), cfg.ID), nil)
	}

	priorCol := -1
	if match, ok := e.resolver.Resolve(g, cfg.HeaderRows, target.PriorYear(), opts); ok {
		priorCol = match.ColumnIndex
	} else {
		e.logger.Warn("prior-year column not found, growth rates unavailable",
			slog.String("report", cfg.ID),
			slog.String("period", target.PriorYear().Label()))
	}

	// The previous quarter's own year-over-year rate needs both that
	// quarter's column and the one a year before it.
	prevCol, prevBaseCol := -1, -1
	if match, ok := e.resolver.Resolve(g, cfg.HeaderRows, target.Previous(), opts); ok {
		prevCol = match.ColumnIndex
		if base, ok := e.resolver.Resolve(g, cfg.HeaderRows, target.Previous().PriorYear(), opts); ok {
			prevBaseCol = base.ColumnIndex
		}
	}

	table := TableFor(cfg)
	rows := make([]domain.RegionRow, 0, table.Size())
	seen := make(map[string]bool, table.Size())
	for row := cfg.HeaderRows; row < g.Rows(); row++ {
		name := table.Normalize(grid.SafeString(g.CellAt(row, cfg.RegionColumn)))
		if !table.IsCanonical(name) || seen[name] {
			continue
		}
		if !isTotalRow(g, cfg, row) {
			continue
		}

		cur := grid.SafeFloat(g.CellAt(row, current.ColumnIndex))
		if cur == nil {
			e.logger.Debug("region skipped, current value missing",
				slog.String("report", cfg.ID),
				slog.String("region", name))
			continue
		}

		var prior, prev, prevBase *float64
		if priorCol >= 0 {
			prior = grid.SafeFloat(g.CellAt(row, priorCol))
		}
		if prevCol >= 0 {
			prev = grid.SafeFloat(g.CellAt(row, prevCol))
		}
		if prevBaseCol >= 0 {
			prevBase = grid.SafeFloat(g.CellAt(row, prevBaseCol))
		}

		seen[name] = true
		rows = append(rows, domain.RegionRow{
			RegionName:   name,
			DisplayName:  DisplayName(name),
			CurrentValue: *cur,
			PriorValue:   prior,
			GrowthRate:   grid.GrowthRate(cur, prior),
			PriorRate:    grid.GrowthRate(prev, prevBase),
		})
	}

	if len(rows) == 0 {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("no region rows found for report %s", cfg.ID), nil)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return table.Order(rows[i].RegionName) < table.Order(rows[j].RegionName)
	})
	return rows, nil
}

// ExtractCategories returns the national aggregate's category breakdown
// for the target period, with growth rates computed the same way as
// region rows and weights scaled to 0-100. Sheets without a category
// column yield an empty slice.
func (e *Extractor) ExtractCategories(g grid.Grid, cfg config.ReportConfig, target domain.Period) ([]domain.Category, error) {
	if !cfg.HasCategories() {
		return nil, nil
	}
	if err := validateLayout(g, cfg); err != nil {
		return nil, err
	}

	opts := resolveOptions(cfg)
	current, ok := e.resolver.Resolve(g, cfg.HeaderRows, target, opts)
	if !ok {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("period column %s not found for report %s", target.Label(), cfg.ID), nil)
	}
	priorCol := -1
	if match, ok := e.resolver.Resolve(g, cfg.HeaderRows, target.PriorYear(), opts); ok {
		priorCol = match.ColumnIndex
	}

	table := TableFor(cfg)
	aggregate := table.Normalize(cfg.Aggregate)

	var categories []domain.Category
	inAggregate := false
	for row := cfg.HeaderRows; row < g.Rows(); row++ {
		name := table.Normalize(grid.SafeString(g.CellAt(row, cfg.RegionColumn)))
		if name != "" {
			inAggregate = name == aggregate
		}
		if !inAggregate {
			continue
		}

		category := strings.TrimSpace(grid.SafeString(g.CellAt(row, cfg.CategoryColumn)))
		if category == "" || category == cfg.TotalCategory {
			continue
		}

		cur := grid.SafeFloat(g.CellAt(row, current.ColumnIndex))
		if cur == nil {
			continue
		}
		var prior *float64
		if priorCol >= 0 {
			prior = grid.SafeFloat(g.CellAt(row, priorCol))
		}
		rate := grid.GrowthRate(cur, prior)
		if rate == nil {
			continue
		}

		weight := 0.0
		if cfg.WeightColumn >= 0 {
			if w := grid.SafeFloat(g.CellAt(row, cfg.WeightColumn)); w != nil {
				weight = *w * weightScale(cfg)
			}
		}

		categories = append(categories, domain.Category{
			Name:       category,
			GrowthRate: *rate,
			Weight:     weight,
		})
	}

	return categories, nil
}

// TableFor builds the region table a report definition declares,
// falling back to the built-in aliases and ordering.
func TableFor(cfg config.ReportConfig) *RegionTable {
	return NewRegionTable(cfg.RegionAliases, cfg.CanonicalRegions)
}

// resolveOptions derives the column-matching options from the report
// definition. Kind keywords are only enforced when the sheet declares
// them.
func resolveOptions(cfg config.ReportConfig) header.ResolveOptions {
	return header.ResolveOptions{
		RequireKind:  len(cfg.KindKeywords) > 0,
		KindKeywords: cfg.KindKeywords,
	}
}

// isTotalRow reports whether the row is a region's aggregate row rather
// than a category sub-row. Sheets without categories have totals only.
func isTotalRow(g grid.Grid, cfg config.ReportConfig, row int) bool {
	if !cfg.HasCategories() {
		return true
	}
	category := strings.TrimSpace(grid.SafeString(g.CellAt(row, cfg.CategoryColumn)))
	return category == "" || category == cfg.TotalCategory
}

func weightScale(cfg config.ReportConfig) float64 {
	if cfg.WeightScale == 0 {
		return 1
	}
	return cfg.WeightScale
}

// validateLayout rejects definitions whose column indices cannot fit the
// sheet at all.
func validateLayout(g grid.Grid, cfg config.ReportConfig) error {
	if g == nil || g.Rows() == 0 {
		return apperrors.NewParsingError(
			fmt.Sprintf("sheet for report %s has no rows", cfg.ID), nil)
	}
	cols := g.Cols()
	if cfg.RegionColumn >= cols {
		return apperrors.NewConfigError(
			fmt.Sprintf("region column %d exceeds sheet width %d", cfg.RegionColumn, cols), nil).
			WithContext("report_id", cfg.ID)
	}
	if cfg.CategoryColumn >= cols {
		return apperrors.NewConfigError(
			fmt.Sprintf("category column %d exceeds sheet width %d", cfg.CategoryColumn, cols), nil).
			WithContext("report_id", cfg.ID)
	}
	if cfg.WeightColumn >= cols {
		return apperrors.NewConfigError(
			fmt.Sprintf("weight column %d exceeds sheet width %d", cfg.WeightColumn, cols), nil).
			WithContext("report_id", cfg.ID)
	}
	return nil
}
