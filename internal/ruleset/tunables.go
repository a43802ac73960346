package ruleset

// Tunables centralizes the scoring weights and gate ceilings so none of them
// live as inline literals.
type Tunables struct {
	WeightScale float64 `json:"weight_scale" yaml:"weight_scale"`

	AbsoluteWeight    float64 `json:"absolute_weight" yaml:"absolute_weight"`
	MelodramaWeight   float64 `json:"melodrama_weight" yaml:"melodrama_weight"`
	ExclamationWeight float64 `json:"exclamation_weight" yaml:"exclamation_weight"`
	QuietWeight       float64 `json:"quiet_weight" yaml:"quiet_weight"`
	SubtextWeight     float64 `json:"subtext_weight" yaml:"subtext_weight"`

	TwistCeilingBase      float64 `json:"twist_ceiling_base" yaml:"twist_ceiling_base"`
	TwistCeilingPerCap    float64 `json:"twist_ceiling_per_cap" yaml:"twist_ceiling_per_cap"`
	FinalMelodramaTighten float64 `json:"final_melodrama_tighten" yaml:"final_melodrama_tighten"`
	SubtextMinWords       int     `json:"subtext_min_words" yaml:"subtext_min_words"`
	NuanceFloor           float64 `json:"nuance_floor" yaml:"nuance_floor"`
	RegressionMargin      float64 `json:"regression_margin" yaml:"regression_margin"`
}

func DefaultTunables() Tunables {
	return Tunables{
		WeightScale:           0.5,
		AbsoluteWeight:        6,
		MelodramaWeight:       8,
		ExclamationWeight:     5,
		QuietWeight:           10,
		SubtextWeight:         12,
		TwistCeilingBase:      0.008,
		TwistCeilingPerCap:    0.012,
		FinalMelodramaTighten: 0.85,
		SubtextMinWords:       120,
		NuanceFloor:           0.05,
		RegressionMargin:      0.02,
	}
}

func (t Tunables) normalized() Tunables {
	d := DefaultTunables()

	if t.WeightScale <= 0 || t.WeightScale > 1 {
		t.WeightScale = d.WeightScale
	}
	if t.AbsoluteWeight <= 0 {
		t.AbsoluteWeight = d.AbsoluteWeight
	}
	if t.MelodramaWeight <= 0 {
		t.MelodramaWeight = d.MelodramaWeight
	}
	if t.ExclamationWeight <= 0 {
		t.ExclamationWeight = d.ExclamationWeight
	}
	if t.QuietWeight <= 0 {
		t.QuietWeight = d.QuietWeight
	}
	if t.SubtextWeight <= 0 {
		t.SubtextWeight = d.SubtextWeight
	}
	if t.TwistCeilingBase <= 0 || t.TwistCeilingBase >= 1 {
		t.TwistCeilingBase = d.TwistCeilingBase
	}
	if t.TwistCeilingPerCap <= 0 || t.TwistCeilingPerCap >= 1 {
		t.TwistCeilingPerCap = d.TwistCeilingPerCap
	}
	if t.FinalMelodramaTighten <= 0 || t.FinalMelodramaTighten > 1 {
		t.FinalMelodramaTighten = d.FinalMelodramaTighten
	}
	if t.SubtextMinWords <= 0 {
		t.SubtextMinWords = d.SubtextMinWords
	}
	if t.NuanceFloor <= 0 || t.NuanceFloor >= 1 {
		t.NuanceFloor = d.NuanceFloor
	}
	if t.RegressionMargin <= 0 || t.RegressionMargin >= 1 {
		t.RegressionMargin = d.RegressionMargin
	}

	return t
}
