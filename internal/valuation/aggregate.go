package valuation

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
)

// Aggregate runs the per-herd valuation over all active (unsold) herds and
// rolls the results up into a PortfolioSummary. Sold herds never contribute
// to any aggregate figure.
//
// Per-herd valuations are computed in parallel, bounded by the engine's
// worker limit. The pass is cooperatively cancellable: when ctx is done,
// remaining work is abandoned and ctx.Err() is returned.
//
// When no active herds exist, Aggregate returns (nil, nil): absence of data
// is not an error, and a nil summary is distinguishable from a zero-filled
// one.
func (e *Engine) Aggregate(ctx context.Context, herds []model.Herd, prices *PriceTable, today time.Time) (*model.PortfolioSummary, error) {
	active := make([]model.Herd, 0, len(herds))
	for _, h := range herds {
		if !h.IsSold {
			active = append(active, h)
		}
	}
	if len(active) == 0 {
		return nil, nil
	}

	valuations := make([]model.HerdValuation, len(active))

	g, gctx := errgroup.WithContext(ctx)
	limit := e.assumptions.WorkerLimit
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, herd := range active {
		i, herd := i, herd
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pricePerKg, source := prices.Resolve(herd.Category)
			valuations[i] = e.ValueHerd(herd, pricePerKg, source, today)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &model.PortfolioSummary{
		Valuations:    make(map[string]model.HerdValuation, len(active)),
		ValuationDate: today,
	}

	categoryTotals := make(map[string]*model.CategoryBreakdown)
	speciesTotals := make(map[string]*model.SpeciesBreakdown)

	for i, herd := range active {
		v := valuations[i]
		summary.Valuations[herd.ID] = v

		summary.TotalNetWorth += v.NetRealizableValue
		summary.TotalPhysicalValue += v.PhysicalValue
		summary.TotalBreedingAccrual += v.BreedingAccrual
		summary.TotalGrossValue += v.GrossValue
		summary.TotalMortalityDeduction += v.MortalityDeduction
		summary.TotalCostToCarry += v.CostToCarry
		summary.TotalInitialValue += initialValue(herd, v.PricePerKg)

		summary.TotalHeadCount += herd.HeadCount
		if herd.IsIndividual() {
			summary.IndividualCount++
		} else {
			summary.HerdCount++
		}

		cat := categoryTotals[herd.Category]
		if cat == nil {
			cat = &model.CategoryBreakdown{Category: herd.Category}
			categoryTotals[herd.Category] = cat
		}
		cat.TotalValue += v.NetRealizableValue
		cat.HeadCount += herd.HeadCount
		cat.PhysicalValue += v.PhysicalValue
		cat.BreedingAccrual += v.BreedingAccrual

		sp := speciesTotals[herd.Species]
		if sp == nil {
			sp = &model.SpeciesBreakdown{Species: herd.Species}
			speciesTotals[herd.Species] = sp
		}
		sp.TotalValue += v.NetRealizableValue
		sp.HeadCount += herd.HeadCount
		sp.HerdCount++
	}

	summary.UnrealizedGains = summary.TotalNetWorth - summary.TotalInitialValue
	if summary.TotalInitialValue != 0 {
		summary.UnrealizedGainsPercent = summary.UnrealizedGains / summary.TotalInitialValue * 100
	}

	summary.Categories = sortedCategories(categoryTotals)
	summary.Species = sortedSpecies(speciesTotals)

	if len(summary.Categories) > 0 {
		largest := summary.Categories[0]
		summary.LargestCategory = largest.Category
		if summary.TotalNetWorth != 0 {
			summary.LargestCategoryPercent = largest.TotalValue / summary.TotalNetWorth * 100
		}
	}

	return summary, nil
}

// sortedCategories orders breakdowns by value descending, name ascending on
// ties, so the first entry is the largest category.
func sortedCategories(totals map[string]*model.CategoryBreakdown) []model.CategoryBreakdown {
	out := make([]model.CategoryBreakdown, 0, len(totals))
	for _, b := range totals {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalValue != out[j].TotalValue {
			return out[i].TotalValue > out[j].TotalValue
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func sortedSpecies(totals map[string]*model.SpeciesBreakdown) []model.SpeciesBreakdown {
	out := make([]model.SpeciesBreakdown, 0, len(totals))
	for _, b := range totals {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalValue != out[j].TotalValue {
			return out[i].TotalValue > out[j].TotalValue
		}
		return out[i].Species < out[j].Species
	})
	return out
}
