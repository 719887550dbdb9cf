package report

import (
	"context"
	"log/slog"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"regitrend/internal/config"
	"regitrend/internal/extract"
	"regitrend/internal/narrative"
	"regitrend/pkg/contracts/domain"
)

// Service generates report records. Generation is pure computation over
// in-memory grids, so records for distinct reports can be built
// concurrently without coordination.
type Service struct {
	source    GridSource
	extractor *extract.Extractor
	logger    *slog.Logger
	topN      int
}

// NewService creates a report service. topN bounds the ranked category
// and region lists; a nil logger falls back to the default.
func NewService(source GridSource, logger *slog.Logger, topN int) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if topN < 1 {
		topN = 2
	}
	return &Service{
		source:    source,
		extractor: extract.NewExtractor(logger),
		logger:    logger,
		topN:      topN,
	}
}

// Generate builds the record for one report and period.
func (s *Service) Generate(ctx context.Context, cfg config.ReportConfig, target domain.Period) (*domain.ReportRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g, err := s.source.GridFor(cfg)
	if err != nil {
		return nil, err
	}

	rows, err := s.extractor.Extract(g, cfg, target)
	if err != nil {
		return nil, err
	}

	categories, err := s.extractor.ExtractCategories(g, cfg, target)
	if err != nil {
		return nil, err
	}
	ranking := narrative.RankContributions(categories, s.topN)

	record := &domain.ReportRecord{
		ReportID:           cfg.ID,
		Title:              cfg.Title,
		Period:             target,
		Regions:            rows,
		PositiveCategories: ranking.Positive,
		NegativeCategories: ranking.Negative,
		Fields:             map[string]string{},
	}

	if nation := findNation(rows, cfg); nation != nil {
		record.Nation = nation
		s.buildNationNarrative(record, cfg, *nation, ranking)
	}

	record.TopGainers, record.TopLosers = rankRegions(rows, cfg, s.topN)
	s.fillFields(record, cfg)

	s.logger.Info("report record generated",
		slog.String("report", cfg.ID),
		slog.String("period", target.Label()),
		slog.Int("regions", len(rows)),
		slog.String("pattern", string(record.Pattern)))

	return record, nil
}

// GenerateAll builds records for every definition concurrently. The
// first failure cancels the remaining work; results keep the input
// order.
func (s *Service) GenerateAll(ctx context.Context, reports []config.ReportConfig, target domain.Period) ([]*domain.ReportRecord, error) {
	records := make([]*domain.ReportRecord, len(reports))

	eg, ctx := errgroup.WithContext(ctx)
	for i, cfg := range reports {
		i, cfg := i, cfg
		eg.Go(func() error {
			record, err := s.Generate(ctx, cfg, target)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// buildNationNarrative selects the pattern and renders the national
// sentence. A nation row without a growth rate produces no narrative at
// all rather than one built on a substituted number.
func (s *Service) buildNationNarrative(record *domain.ReportRecord, cfg config.ReportConfig, nation domain.RegionRow, ranking narrative.Ranking) {
	if nation.GrowthRate == nil {
		s.logger.Warn("nation growth rate unavailable, narrative skipped",
			slog.String("report", cfg.ID))
		return
	}
	rate := *nation.GrowthRate

	mixed := len(ranking.Positive) > 0 && len(ranking.Negative) > 0
	pattern := narrative.SelectPattern(rate, nation.PriorRate, mixed)

	main := narrative.Names(ranking.Positive)
	contrast := narrative.Names(ranking.Negative)
	if rate < 0 {
		main, contrast = contrast, main
	}

	record.Pattern = pattern
	record.NationNarrative = narrative.Render(pattern, cfg.Subject, rate,
		nation.PriorRate, main, contrast, cfg.IndicatorKind())
}

// rankRegions orders the non-aggregate regions by growth rate. Regions
// without a rate join neither list.
func rankRegions(rows []domain.RegionRow, cfg config.ReportConfig, topN int) (gainers, losers []domain.RegionRow) {
	aggregate := extract.TableFor(cfg).Normalize(cfg.Aggregate)

	var rated []domain.RegionRow
	for _, r := range rows {
		if r.RegionName == aggregate || r.GrowthRate == nil {
			continue
		}
		rated = append(rated, r)
	}

	byRateDesc := make([]domain.RegionRow, len(rated))
	copy(byRateDesc, rated)
	sort.SliceStable(byRateDesc, func(i, j int) bool {
		return *byRateDesc[i].GrowthRate > *byRateDesc[j].GrowthRate
	})

	for _, r := range byRateDesc {
		if *r.GrowthRate > 0 && len(gainers) < topN {
			gainers = append(gainers, r)
		}
	}
	for i := len(byRateDesc) - 1; i >= 0; i-- {
		r := byRateDesc[i]
		if *r.GrowthRate < 0 && len(losers) < topN {
			losers = append(losers, r)
		}
	}
	return gainers, losers
}

// fillFields flattens the record into named template slots. Missing data
// renders as "N/A" so the template layer can never mistake absence for
// zero.
func (s *Service) fillFields(record *domain.ReportRecord, cfg config.ReportConfig) {
	f := record.Fields
	f["title"] = cfg.Title
	f["subject"] = cfg.Subject
	f["period"] = record.Period.Label()
	f["unit"] = cfg.Unit
	f["narrative"] = record.NationNarrative

	if record.Nation != nil {
		f["nation_value"] = strconv.FormatFloat(record.Nation.CurrentValue, 'f', 1, 64)
		f["nation_rate"] = narrative.FormatRate(record.Nation.GrowthRate)
	} else {
		f["nation_value"] = "N/A"
		f["nation_rate"] = "N/A"
	}

	for _, r := range record.Regions {
		f["rate_"+r.RegionName] = narrative.FormatRate(r.GrowthRate)
		f["value_"+r.RegionName] = strconv.FormatFloat(r.CurrentValue, 'f', 1, 64)
	}
}

// findNation returns the aggregate row when the extraction produced one.
func findNation(rows []domain.RegionRow, cfg config.ReportConfig) *domain.RegionRow {
	aggregate := extract.TableFor(cfg).Normalize(cfg.Aggregate)
	for i := range rows {
		if rows[i].RegionName == aggregate {
			return &rows[i]
		}
	}
	return nil
}
