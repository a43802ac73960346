package ruleset

import "math"

type FailureCode string

const (
	FailForbiddenMove  FailureCode = "FORBIDDEN_MOVE_PRESENT"
	FailTwistOveruse   FailureCode = "TWIST_OVERUSE"
	FailMelodrama      FailureCode = "MELODRAMA"
	FailOvercomplexity FailureCode = "OVERCOMPLEXITY"
	FailSubtextMissing FailureCode = "SUBTEXT_MISSING"
	FailNuanceDeficit  FailureCode = "NUANCE_DEFICIT"
)

type GateResult struct {
	Failures       []FailureCode `json:"failures"`
	MelodramaScore float64       `json:"melodrama_score"`
	NuanceScore    float64       `json:"nuance_score"`
	ForbiddenFound []string      `json:"forbidden_found,omitempty"`
	Regressed      bool          `json:"regressed"`
}

func (r GateResult) Passed() bool {
	return len(r.Failures) == 0
}

// RunGate applies every check independently and collects the failures. A
// final pass tightens the melodrama threshold and adds the nuance check.
// priorScore only flags regressions; it never changes which checks run.
func RunGate(metrics Metrics, text string, profile EngineProfile, priorScore *float64, isFinal bool, tun Tunables) GateResult {
	t := tun.normalized()
	result := GateResult{
		Failures:       make([]FailureCode, 0),
		MelodramaScore: MelodramaScore(metrics, t),
		NuanceScore:    NuanceScore(metrics, t),
	}

	result.ForbiddenFound = DetectForbiddenMoves(text, profile.ForbiddenMoves)
	if len(result.ForbiddenFound) > 0 {
		result.Failures = append(result.Failures, FailForbiddenMove)
	}

	ceiling := t.TwistCeilingBase + t.TwistCeilingPerCap*float64(profile.Budgets.TwistCap)
	if metrics.TwistDensity > ceiling {
		result.Failures = append(result.Failures, FailTwistOveruse)
	}

	melodramaMax := profile.Thresholds.MelodramaMax
	if isFinal {
		melodramaMax *= t.FinalMelodramaTighten
	}
	if result.MelodramaScore > melodramaMax {
		result.Failures = append(result.Failures, FailMelodrama)
	}

	if impliedThreadCount(metrics) > profile.Budgets.PlotThreadCap {
		result.Failures = append(result.Failures, FailOvercomplexity)
	}

	if metrics.WordCount >= t.SubtextMinWords {
		subtextScenes := int(math.Round(metrics.SubtextDensity * float64(metrics.WordCount)))
		if subtextScenes < profile.Pacing.SubtextScenesMin {
			result.Failures = append(result.Failures, FailSubtextMissing)
		}
	}

	if isFinal && profile.Pacing.QuietBeatsMin > 0 && result.NuanceScore < t.NuanceFloor {
		result.Failures = append(result.Failures, FailNuanceDeficit)
	}

	if priorScore != nil && result.MelodramaScore > *priorScore+t.RegressionMargin {
		result.Regressed = true
	}

	return result
}

// impliedThreadCount treats the main line as one thread and every
// thread-switch marker as opening another.
func impliedThreadCount(m Metrics) int {
	return 1 + int(math.Round(m.ThreadDensity*float64(m.WordCount)))
}
