package ruleset

import "math"

type Fingerprint struct {
	Lane           Lane         `json:"lane"`
	StoryEngine    StoryEngine  `json:"story_engine"`
	ConflictMode   ConflictMode `json:"conflict_mode"`
	DominantSignal string       `json:"dominant_signal"`
}

const (
	SignalTwistHeavy = "twist_heavy"
	SignalHighHeat   = "high_heat"
	SignalQuiet      = "quiet"
	SignalNeutral    = "neutral"
)

// signalFloor is the minimum density before a signal can dominate a draft.
const signalFloor = 0.015

// similarityStep is the per-match contribution to similarity risk.
const similarityStep = 0.25

// ComputeFingerprint captures the narrative archetype of one generated unit:
// the profile's lane, engine and mode, plus the draft's dominant signal.
func ComputeFingerprint(text string, profile EngineProfile) Fingerprint {
	return Fingerprint{
		Lane:           profile.Lane,
		StoryEngine:    profile.StoryEngine,
		ConflictMode:   profile.ConflictMode,
		DominantSignal: dominantSignal(ComputeMetrics(text)),
	}
}

// dominantSignal picks the strongest of the twist, heat and quiet densities.
// Ties keep the earlier signal.
func dominantSignal(m Metrics) string {
	signal := SignalNeutral
	strongest := 0.0

	if m.TwistDensity >= signalFloor && m.TwistDensity > strongest {
		signal, strongest = SignalTwistHeavy, m.TwistDensity
	}
	if m.MelodramaDensity >= signalFloor && m.MelodramaDensity > strongest {
		signal, strongest = SignalHighHeat, m.MelodramaDensity
	}
	if m.QuietDensity >= signalFloor && m.QuietDensity > strongest {
		signal = SignalQuiet
	}
	return signal
}

// SimilarityRisk estimates repetition against the caller's recent window.
// Each identical recent fingerprint compounds the risk toward 1.
func SimilarityRisk(fp Fingerprint, recent []Fingerprint) float64 {
	if len(recent) == 0 {
		return 0
	}

	matches := 0
	for _, previous := range recent {
		if previous == fp {
			matches++
		}
	}
	if matches == 0 {
		return 0
	}
	return 1 - math.Pow(1-similarityStep, float64(matches))
}
