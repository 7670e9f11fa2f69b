package generate

import (
	"math"

	"github.com/gnames/scnet/pkg/config"
	"github.com/gnames/scnet/pkg/dataset"
	"github.com/gnames/scnet/pkg/random"
)

// lineState carries the size a line is set up for.
type lineState struct {
	size int
}

// next keeps the size with probability 1-p and resamples it uniformly
// otherwise. Resampling may land on the same size.
func (s lineState) next(p float64, sizes int, src random.Source) lineState {
	if src.Float(0, 1) <= p {
		return lineState{size: src.Choice(sizes)}
	}
	return s
}

// Capabilities assigns a size to every line for every period. A line
// starts with a random size and switches to a freshly drawn one with
// probability switchRate after each period.
func Capabilities(
	lines []dataset.Line,
	periods []dataset.Period,
	sizes []dataset.Size,
	switchRate float64,
	src random.Source,
) []dataset.Capability {
	if len(sizes) == 0 {
		return nil
	}
	res := make([]dataset.Capability, 0, len(lines)*len(periods))
	for _, l := range lines {
		state := lineState{size: src.Choice(len(sizes))}
		for _, p := range periods {
			res = append(res, dataset.Capability{
				LineID:   l.ID,
				PeriodID: p.ID,
				SizeID:   sizes[state.size].ID,
			})
			state = state.next(switchRate, len(sizes), src)
		}
	}
	return res
}

// BaseRates draws one base production rate per size. The result is
// indexed by size ID.
func BaseRates(
	sizes []dataset.Size,
	bounds config.FloatRange,
	src random.Source,
) []float64 {
	res := make([]float64, len(sizes))
	for i := range sizes {
		res[i] = src.Float(bounds.Min, bounds.Max)
	}
	return res
}

// Rates assigns a production rate to every capability: the base rate
// of its size plus a random offset, rounded half to even.
func Rates(
	caps []dataset.Capability,
	base []float64,
	noise config.FloatRange,
	src random.Source,
) []dataset.Rate {
	res := make([]dataset.Rate, len(caps))
	for i, c := range caps {
		rate := base[c.SizeID] + src.Float(noise.Min, noise.Max)
		res[i] = dataset.Rate{
			LineID:   c.LineID,
			PeriodID: c.PeriodID,
			SizeID:   c.SizeID,
			Rate:     int(math.RoundToEven(rate)),
		}
	}
	return res
}
