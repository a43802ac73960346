package ruleset

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildRepairInstruction(t *testing.T) {
	t.Run("vertical drama priorities lead with leverage", func(t *testing.T) {
		profile, err := DefaultProfile(LaneVerticalDrama)
		if err != nil {
			t.Fatalf("default: %v", err)
		}
		instruction := BuildRepairInstruction([]FailureCode{FailMelodrama}, profile, nil)
		if !strings.Contains(instruction, "VERTICAL DRAMA PRIORITIES") {
			t.Fatalf("missing header:\n%s", instruction)
		}
		if !strings.Contains(instruction, "leverage") {
			t.Fatalf("missing leverage emphasis:\n%s", instruction)
		}
	})

	t.Run("feature film priorities lead with quiet beats", func(t *testing.T) {
		profile, err := DefaultProfile(LaneFeatureFilm)
		if err != nil {
			t.Fatalf("default: %v", err)
		}
		instruction := BuildRepairInstruction([]FailureCode{FailMelodrama}, profile, nil)
		if !strings.Contains(instruction, "FEATURE FILM PRIORITIES") {
			t.Fatalf("missing header:\n%s", instruction)
		}
		if !strings.Contains(instruction, "quiet beats") {
			t.Fatalf("missing quiet beats emphasis:\n%s", instruction)
		}
	})

	t.Run("every lane has a priorities block", func(t *testing.T) {
		for _, lane := range Lanes() {
			profile, err := DefaultProfile(lane)
			if err != nil {
				t.Fatalf("default for %s: %v", lane, err)
			}
			instruction := BuildRepairInstruction(nil, profile, nil)
			if !strings.Contains(instruction, "PRIORITIES") {
				t.Fatalf("missing priorities for %s:\n%s", lane, instruction)
			}
		}
	})

	t.Run("cites the profile numbers verbatim", func(t *testing.T) {
		profile, err := DefaultProfile(LaneSeriesDrama)
		if err != nil {
			t.Fatalf("default: %v", err)
		}
		instruction := BuildRepairInstruction([]FailureCode{FailOvercomplexity, FailSubtextMissing, FailTwistOveruse}, profile, nil)

		if want := fmt.Sprintf("plot_thread_cap %d", profile.Budgets.PlotThreadCap); !strings.Contains(instruction, want) {
			t.Fatalf("missing %q:\n%s", want, instruction)
		}
		if want := fmt.Sprintf("subtext_scenes_min %d", profile.Pacing.SubtextScenesMin); !strings.Contains(instruction, want) {
			t.Fatalf("missing %q:\n%s", want, instruction)
		}
		if want := fmt.Sprintf("twist_cap %d", profile.Budgets.TwistCap); !strings.Contains(instruction, want) {
			t.Fatalf("missing %q:\n%s", want, instruction)
		}
	})

	t.Run("names forbidden moves in plain words", func(t *testing.T) {
		profile, err := DefaultProfile(LaneFeatureFilm)
		if err != nil {
			t.Fatalf("default: %v", err)
		}
		instruction := BuildRepairInstruction([]FailureCode{FailForbiddenMove}, profile, []string{MoveDeusExMachina, "secret_organization"})
		if !strings.Contains(instruction, `"deus ex machina"`) {
			t.Fatalf("missing humanized deus ex machina:\n%s", instruction)
		}
		if !strings.Contains(instruction, `"secret organization"`) {
			t.Fatalf("missing humanized secret organization:\n%s", instruction)
		}
		if !strings.Contains(instruction, "Remove") {
			t.Fatalf("missing removal instruction:\n%s", instruction)
		}
	})

	t.Run("no failures yields only the priorities", func(t *testing.T) {
		profile, err := DefaultProfile(LaneShortFilm)
		if err != nil {
			t.Fatalf("default: %v", err)
		}
		instruction := BuildRepairInstruction(nil, profile, nil)
		if instruction != lanePriorities(LaneShortFilm) {
			t.Fatalf("expected bare priorities, got:\n%s", instruction)
		}
	})
}
