package ruleset

import "testing"

func TestDetectConflicts(t *testing.T) {
	t.Run("twist cap far above baseline", func(t *testing.T) {
		profile, err := DefaultProfile(LaneFeatureFilm)
		if err != nil {
			t.Fatalf("default: %v", err)
		}
		profile.Budgets.TwistCap = 4

		conflict, ok := conflictByID(DetectConflicts(profile), "twist_vs_restraint")
		if !ok {
			t.Fatalf("expected twist_vs_restraint to fire")
		}
		if conflict.Severity != SeveritySoft {
			t.Fatalf("expected soft severity, got %s", conflict.Severity)
		}
	})

	t.Run("twist cap within the margin stays quiet", func(t *testing.T) {
		profile, err := DefaultProfile(LaneFeatureFilm)
		if err != nil {
			t.Fatalf("default: %v", err)
		}
		profile.Budgets.TwistCap = 2

		if _, ok := conflictByID(DetectConflicts(profile), "twist_vs_restraint"); ok {
			t.Fatalf("expected no twist_vs_restraint within the margin")
		}
	})

	t.Run("global stakes arriving too early", func(t *testing.T) {
		profile, err := DefaultProfile(LaneSeriesDrama)
		if err != nil {
			t.Fatalf("default: %v", err)
		}
		profile.Stakes.NoGlobalBeforePct = 0.1

		conflict, ok := conflictByID(DetectConflicts(profile), "early_global_stakes")
		if !ok {
			t.Fatalf("expected early_global_stakes to fire")
		}
		if conflict.Severity != SeverityHard {
			t.Fatalf("expected hard severity, got %s", conflict.Severity)
		}
	})

	t.Run("missing essential guardrail is hard", func(t *testing.T) {
		profile, err := DefaultProfile(LaneShortFilm)
		if err != nil {
			t.Fatalf("default: %v", err)
		}
		profile.ForbiddenMoves = nil

		conflict, ok := conflictByID(DetectConflicts(profile), "missing_forbidden_"+MoveDeusExMachina)
		if !ok {
			t.Fatalf("expected missing deus_ex_machina conflict")
		}
		if conflict.Severity != SeverityHard {
			t.Fatalf("expected hard severity, got %s", conflict.Severity)
		}
	})

	t.Run("missing lane guardrail severity splits", func(t *testing.T) {
		profile, err := DefaultProfile(LaneFeatureFilm)
		if err != nil {
			t.Fatalf("default: %v", err)
		}
		profile.ForbiddenMoves = []string{MoveDeusExMachina}

		conflicts := DetectConflicts(profile)
		dream, ok := conflictByID(conflicts, "missing_forbidden_"+MoveItWasAllADream)
		if !ok || dream.Severity != SeverityHard {
			t.Fatalf("expected hard missing it_was_all_a_dream, got %v", conflicts)
		}
		twin, ok := conflictByID(conflicts, "missing_forbidden_"+MoveLongLostTwin)
		if !ok || twin.Severity != SeveritySoft {
			t.Fatalf("expected soft missing long_lost_twin, got %v", conflicts)
		}
	})

	t.Run("extra forbidden moves raise nothing", func(t *testing.T) {
		profile, err := DefaultProfile(LaneVerticalDrama)
		if err != nil {
			t.Fatalf("default: %v", err)
		}
		working := profile.Clone()
		working.addForbiddenMove("secret_organization")

		if conflicts := DetectConflicts(working); len(conflicts) != 0 {
			t.Fatalf("expected no conflicts, got %v", conflicts)
		}
	})
}

func conflictByID(conflicts []Conflict, id string) (Conflict, bool) {
	for _, conflict := range conflicts {
		if conflict.ID == id {
			return conflict, true
		}
	}
	return Conflict{}, false
}
