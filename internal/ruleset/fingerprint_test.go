package ruleset

import "testing"

func TestComputeFingerprint(t *testing.T) {
	profile, err := DefaultProfile(LaneVerticalDrama)
	if err != nil {
		t.Fatalf("default: %v", err)
	}

	t.Run("captures the profile archetype", func(t *testing.T) {
		fp := ComputeFingerprint("A calm scene by the river.", profile)
		if fp.Lane != LaneVerticalDrama {
			t.Fatalf("expected vertical_drama, got %s", fp.Lane)
		}
		if fp.StoryEngine != EngineEscalatingReversal {
			t.Fatalf("expected escalating_reversal, got %s", fp.StoryEngine)
		}
		if fp.ConflictMode != ModeInterpersonalPower {
			t.Fatalf("expected interpersonal_power, got %s", fp.ConflictMode)
		}
	})

	t.Run("plain text reads neutral", func(t *testing.T) {
		fp := ComputeFingerprint("The river kept moving past the old stone houses.", profile)
		if fp.DominantSignal != SignalNeutral {
			t.Fatalf("expected neutral, got %s", fp.DominantSignal)
		}
	})

	t.Run("twist language dominates", func(t *testing.T) {
		fp := ComputeFingerprint("Suddenly betrayed, suddenly revealed, the twist landed.", profile)
		if fp.DominantSignal != SignalTwistHeavy {
			t.Fatalf("expected twist_heavy, got %s", fp.DominantSignal)
		}
	})

	t.Run("heat dominates a shouting match", func(t *testing.T) {
		fp := ComputeFingerprint("You destroyed us! You ruined it! Such agony!", profile)
		if fp.DominantSignal != SignalHighHeat {
			t.Fatalf("expected high_heat, got %s", fp.DominantSignal)
		}
	})

	t.Run("quiet prose reads quiet", func(t *testing.T) {
		fp := ComputeFingerprint("She pauses. Silence. A quiet breath lingers in the stillness.", profile)
		if fp.DominantSignal != SignalQuiet {
			t.Fatalf("expected quiet, got %s", fp.DominantSignal)
		}
	})
}

func TestSimilarityRisk(t *testing.T) {
	profile, err := DefaultProfile(LaneVerticalDrama)
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	fp := ComputeFingerprint("The river kept moving.", profile)

	t.Run("no history means no risk", func(t *testing.T) {
		if risk := SimilarityRisk(fp, nil); risk != 0 {
			t.Fatalf("expected 0, got %f", risk)
		}
	})

	t.Run("three identical recents push risk past one half", func(t *testing.T) {
		recent := []Fingerprint{fp, fp, fp}
		risk := SimilarityRisk(fp, recent)
		if risk <= 0.5 {
			t.Fatalf("expected risk above 0.5, got %f", risk)
		}
		if risk >= 1 {
			t.Fatalf("expected risk below 1, got %f", risk)
		}
	})

	t.Run("risk never decreases as matches accumulate", func(t *testing.T) {
		previous := 0.0
		recent := make([]Fingerprint, 0, 8)
		for i := 0; i < 8; i++ {
			recent = append(recent, fp)
			risk := SimilarityRisk(fp, recent)
			if risk < previous {
				t.Fatalf("risk fell from %f to %f at %d matches", previous, risk, i+1)
			}
			if risk >= 1 {
				t.Fatalf("risk saturated past 1 at %d matches", i+1)
			}
			previous = risk
		}
	})

	t.Run("different archetypes do not count", func(t *testing.T) {
		other := fp
		other.Lane = LaneShortFilm
		recent := []Fingerprint{other, other, other, other}
		if risk := SimilarityRisk(fp, recent); risk != 0 {
			t.Fatalf("expected 0, got %f", risk)
		}
	})
}
