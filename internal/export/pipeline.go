package export

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plentyexport/motorradbekleidungnet-export/internal/config"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/itemcache"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/model"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/obs"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/resolve"
)

// facetStrategies holds the precompiled strategy per facet; nil means the
// facet is inactive and resolves to empty without touching the engine.
type facetStrategies struct {
	gender       resolve.Strategy
	color        resolve.Strategy
	size         resolve.Strategy
	material     resolve.Strategy
	drivingStyle resolve.Strategy
}

// Summary reports what one export run did.
type Summary struct {
	Total       int64
	Shards      int
	Rows        int
	Emitted     int
	Filtered    int
	PriceSkips  int
	Failures    int
	BatchErrors int
}

// Pipeline streams variation batches, gates each record, resolves its fields
// and emits one feed row per surviving variation.
type Pipeline struct {
	cfg      config.Config
	producer BatchProducer
	services CoreServices
	filter   Filter
	sink     RecordSink

	attrs      *resolve.AttributeResolver
	props      *resolve.PropertyResolver
	engine     *resolve.Engine
	cache      *itemcache.Cache
	strategies facetStrategies
}

// New wires a Pipeline. It fails only on invalid facet configuration.
func New(cfg config.Config, producer BatchProducer, services CoreServices, filter Filter, sink RecordSink) (*Pipeline, error) {
	attrs := resolve.NewAttributeResolver(services, cfg.Lang)
	props := resolve.NewPropertyResolver(services, cfg.Lang)

	p := &Pipeline{
		cfg:      cfg,
		producer: producer,
		services: services,
		filter:   filter,
		sink:     sink,
		attrs:    attrs,
		props:    props,
		engine:   resolve.NewEngine(attrs, props, services, cfg.Lang),
		cache:    itemcache.New(services, cfg.AvailabilityLabels),
	}

	for _, fc := range []struct {
		cfg  config.FacetConfig
		name string
		dst  *resolve.Strategy
	}{
		{cfg.Gender, "gender", &p.strategies.gender},
		{cfg.Color, "color", &p.strategies.color},
		{cfg.Size, "size", &p.strategies.size},
		{cfg.Material, "material", &p.strategies.material},
		{cfg.DrivingStyle, "driving_style", &p.strategies.drivingStyle},
	} {
		if !fc.cfg.Active {
			continue
		}
		strategy, err := resolve.StrategyFor(fc.cfg)
		if err != nil {
			return nil, fmt.Errorf("facet %s: %w", fc.name, err)
		}
		*fc.dst = strategy
	}
	return p, nil
}

func (p *Pipeline) resolveFacet(v *model.VariationRecord, strategy resolve.Strategy) string {
	if strategy == nil {
		return ""
	}
	return p.engine.ResolveFacet(v, strategy)
}

func (p *Pipeline) resolveFacets(v *model.VariationRecord) facetValues {
	return facetValues{
		gender:       p.resolveFacet(v, p.strategies.gender),
		color:        p.resolveFacet(v, p.strategies.color),
		size:         p.resolveFacet(v, p.strategies.size),
		material:     p.resolveFacet(v, p.strategies.material),
		drivingStyle: p.resolveFacet(v, p.strategies.drivingStyle),
	}
}

// Run consumes the stream until exhaustion or the configured row limit and
// returns the run summary. Per-record problems never abort the run; only a
// broken producer or sink setup is fatal.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	runID := uuid.NewString()
	logger := obs.Logger.With(zap.String("run_id", runID))
	logger.Info("export run starting",
		zap.Int("page_size", p.cfg.PageSize),
		zap.Int("row_limit", p.cfg.RowLimit))

	var summary Summary
	if err := p.sink.WriteHeader(Header()); err != nil {
		return summary, fmt.Errorf("write header: %w", err)
	}

	p.producer.SetPageSize(p.cfg.PageSize)

	limitReached := false
	rows := 0
	haveItem := false
	var previousItemID int64

	for {
		if limitReached {
			break
		}

		batch, err := p.producer.FetchNext(ctx)
		if err != nil {
			return summary, fmt.Errorf("fetch batch: %w", err)
		}
		summary.Shards++

		if summary.Shards == 1 {
			summary.Total = batch.Total
			logger.Info("index result amount", zap.Int64("total", batch.Total))
		}
		if len(batch.Errors) > 0 {
			summary.BatchErrors += len(batch.Errors)
			logger.Error("index shard reported errors",
				zap.Int("failed_shard", summary.Shards),
				zap.Strings("messages", batch.Errors))
		}

		for i := range batch.Documents {
			v := &batch.Documents[i]

			if p.cfg.RowLimit > 0 && rows == p.cfg.RowLimit {
				limitReached = true
				break
			}

			if p.filter.ShouldSkip(v) {
				summary.Filtered++
				continue
			}

			// Non-main variations must carry distinguishing attributes to be
			// worth exporting standalone.
			attributes := p.attrs.NameValueCombination(v)
			if attributes == "" && !v.Variation.IsMain {
				summary.Filtered++
				continue
			}

			if p.cfg.BarcodeOnly && p.services.BarcodeByType(v, p.cfg.BarcodeType) == "" {
				summary.Filtered++
				continue
			}

			valueCombination := p.attrs.ValueCombination(v)
			facets := p.resolveFacets(v)

			if !haveItem || previousItemID != v.Item.ID {
				haveItem = true
				previousItemID = v.Item.ID
				p.cache.Refresh(v)
			}

			outcome := p.buildRow(v, attributes, valueCombination, facets)
			switch {
			case outcome.err != nil:
				summary.Failures++
				logger.Error("row building failed",
					zap.Int64("variation_id", v.ID),
					zap.Error(outcome.err))
			case outcome.skip == skipNoPrice:
				summary.PriceSkips++
				logger.Info("variation not part of export, no price",
					zap.Int64("variation_id", v.ID))
			default:
				if err := p.sink.WriteRow(outcome.row.Record()); err != nil {
					summary.Failures++
					logger.Error("row write failed",
						zap.Int64("variation_id", v.ID),
						zap.Error(err))
				} else {
					summary.Emitted++
				}
			}

			// Routine filter skips do not count against the limit; rows that
			// reached row building do, even when skipped or failed.
			rows++
		}

		if !p.producer.HasMore() {
			break
		}
	}

	summary.Rows = rows
	logger.Info("export run finished",
		zap.Int("shards", summary.Shards),
		zap.Int("rows", summary.Rows),
		zap.Int("emitted", summary.Emitted),
		zap.Int("filtered", summary.Filtered),
		zap.Int("price_skips", summary.PriceSkips),
		zap.Int("failures", summary.Failures))
	return summary, nil
}
