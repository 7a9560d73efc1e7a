package keyword

import (
	"math"

	"sellerkit-be/internal/entity"
)

// Research results are mocked until a real data provider is integrated. The
// generator expands a seed into a fixed set of suggestion variants per
// platform; Flipkart volumes are scaled down from the Amazon baseline.

const flipkartVolumeFactor = 0.6

type variant struct {
	suffix      string
	volume      int
	competition entity.Competition
}

var variants = []variant{
	{suffix: "wireless", volume: 45000, competition: entity.CompetitionMedium},
	{suffix: "bluetooth", volume: 32100, competition: entity.CompetitionHigh},
	{suffix: "gaming", volume: 28900, competition: entity.CompetitionLow},
	{suffix: "waterproof", volume: 15600, competition: entity.CompetitionMedium},
	{suffix: "professional", volume: 12300, competition: entity.CompetitionHigh},
}

// Generate builds mock suggestions for the requested platforms. Platforms not
// requested get an empty (non-nil) slice.
func Generate(seedKeyword string, platforms []string) *entity.ResearchResults {
	results := &entity.ResearchResults{
		Amazon:   []entity.KeywordResult{},
		Flipkart: []entity.KeywordResult{},
	}

	requested := make(map[string]bool, len(platforms))
	for _, p := range platforms {
		requested[p] = true
	}

	for _, v := range variants {
		kw := seedKeyword + " " + v.suffix
		if requested["amazon"] {
			results.Amazon = append(results.Amazon, entity.KeywordResult{
				Keyword:     kw,
				Volume:      v.volume,
				Competition: v.competition,
			})
		}
		if requested["flipkart"] {
			results.Flipkart = append(results.Flipkart, entity.KeywordResult{
				Keyword:     kw,
				Volume:      int(math.Round(float64(v.volume) * flipkartVolumeFactor)),
				Competition: v.competition,
			})
		}
	}

	return results
}
