package ruleset

import "sort"

type Budgets struct {
	TwistCap      int `json:"twist_cap" yaml:"twist_cap"`
	DramaBudget   int `json:"drama_budget" yaml:"drama_budget"`
	PlotThreadCap int `json:"plot_thread_cap" yaml:"plot_thread_cap"`
}

type PacingProfile struct {
	QuietBeatsMin    int `json:"quiet_beats_min" yaml:"quiet_beats_min"`
	SubtextScenesMin int `json:"subtext_scenes_min" yaml:"subtext_scenes_min"`
}

type StakesLadder struct {
	NoGlobalBeforePct float64 `json:"no_global_before_pct" yaml:"no_global_before_pct"`
}

type GateThresholds struct {
	MelodramaMax  float64 `json:"melodrama_max" yaml:"melodrama_max"`
	SimilarityMax float64 `json:"similarity_max" yaml:"similarity_max"`
}

type EngineProfile struct {
	Lane           Lane           `json:"lane"`
	Budgets        Budgets        `json:"budgets"`
	ForbiddenMoves []string       `json:"forbidden_moves"`
	Pacing         PacingProfile  `json:"pacing_profile"`
	Stakes         StakesLadder   `json:"stakes_ladder"`
	Thresholds     GateThresholds `json:"gate_thresholds"`
	StoryEngine    StoryEngine    `json:"story_engine"`
	ConflictMode   ConflictMode   `json:"conflict_mode"`
}

func (p EngineProfile) Clone() EngineProfile {
	out := p
	out.ForbiddenMoves = append([]string(nil), p.ForbiddenMoves...)
	return out
}

func (p EngineProfile) HasForbiddenMove(id string) bool {
	for _, move := range p.ForbiddenMoves {
		if move == id {
			return true
		}
	}
	return false
}

// addForbiddenMove keeps the set sorted and duplicate-free.
func (p *EngineProfile) addForbiddenMove(id string) {
	if p.HasForbiddenMove(id) {
		return
	}
	p.ForbiddenMoves = append(p.ForbiddenMoves, id)
	sort.Strings(p.ForbiddenMoves)
}
