package ruleset

import (
	"math"
	"strings"
)

const (
	DimensionTwistBudget = "twist_budget"
	DimensionDramaBudget = "drama_budget"
	DimensionPlotThreads = "plot_threads"
)

type Influencer struct {
	Title      string   `json:"title" yaml:"title"`
	Format     string   `json:"format" yaml:"format"`
	Weight     float64  `json:"weight" yaml:"weight"`
	Dimensions []string `json:"dimensions" yaml:"dimensions"`
	AvoidTags  []string `json:"avoid_tags,omitempty" yaml:"avoid_tags"`
}

// DeriveProfile nudges the lane default by the weighted influencers. Budgets
// only ever grow, and never past the lane maxima; influencer avoid tags join
// the forbidden set.
func DeriveProfile(lane Lane, influencers []Influencer, tun Tunables) (EngineProfile, error) {
	profile, err := DefaultProfile(lane)
	if err != nil {
		return EngineProfile{}, err
	}
	scale := tun.normalized().WeightScale

	for _, influencer := range influencers {
		bump := budgetBump(influencer.Weight, scale)
		for _, dimension := range influencer.Dimensions {
			switch dimension {
			case DimensionTwistBudget:
				profile.Budgets.TwistCap += bump
			case DimensionDramaBudget:
				profile.Budgets.DramaBudget += bump
			case DimensionPlotThreads:
				profile.Budgets.PlotThreadCap += bump
			}
		}
		for _, tag := range influencer.AvoidTags {
			if strings.TrimSpace(tag) == "" {
				continue
			}
			profile.addForbiddenMove(tag)
		}
	}

	maxima := laneMaxima(lane)
	profile.Budgets.TwistCap = min(profile.Budgets.TwistCap, maxima.twistCap)
	profile.Budgets.DramaBudget = min(profile.Budgets.DramaBudget, maxima.dramaBudget)
	profile.Budgets.PlotThreadCap = min(profile.Budgets.PlotThreadCap, maxima.plotThreadCap)

	return profile, nil
}

// budgetBump maps an influencer weight to a whole-number budget increment.
func budgetBump(weight, scale float64) int {
	if weight <= 0 {
		return 0
	}
	return int(math.Round(weight * scale))
}
