package ruleset

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApplyOverrides(t *testing.T) {
	base, err := DefaultProfile(LaneFeatureFilm)
	if err != nil {
		t.Fatalf("default: %v", err)
	}

	t.Run("replace sets a budget field", func(t *testing.T) {
		out, err := ApplyOverrides(base, []Override{
			{Op: OpReplace, Path: "/budgets/twist_cap", Value: float64(2)},
		})
		if err != nil {
			t.Fatalf("applying: %v", err)
		}
		if out.Budgets.TwistCap != 2 {
			t.Fatalf("expected twist_cap 2, got %d", out.Budgets.TwistCap)
		}
	})

	t.Run("input profile is never mutated", func(t *testing.T) {
		snapshot := base.Clone()
		_, err := ApplyOverrides(base, []Override{
			{Op: OpReplace, Path: "/budgets/drama_budget", Value: 7},
			{Op: OpAdd, Path: "/forbidden_moves/-", Value: "secret_organization"},
			{Op: OpReplace, Path: "/stakes_ladder/no_global_before_pct", Value: 0.9},
		})
		if err != nil {
			t.Fatalf("applying: %v", err)
		}
		if diff := cmp.Diff(snapshot, base); diff != "" {
			t.Fatalf("input mutated (-before +after):\n%s", diff)
		}
	})

	t.Run("later override wins within a layer", func(t *testing.T) {
		out, err := ApplyOverrides(base, []Override{
			{Op: OpReplace, Path: "/budgets/twist_cap", Value: 2},
			{Op: OpReplace, Path: "/budgets/twist_cap", Value: 3},
		})
		if err != nil {
			t.Fatalf("applying: %v", err)
		}
		if out.Budgets.TwistCap != 3 {
			t.Fatalf("expected twist_cap 3, got %d", out.Budgets.TwistCap)
		}
	})

	t.Run("append adds one forbidden move", func(t *testing.T) {
		out, err := ApplyOverrides(base, []Override{
			{Op: OpAdd, Path: "/forbidden_moves/-", Value: "secret_organization"},
		})
		if err != nil {
			t.Fatalf("applying: %v", err)
		}
		if !out.HasForbiddenMove("secret_organization") {
			t.Fatalf("expected secret_organization, got %v", out.ForbiddenMoves)
		}
		if !out.HasForbiddenMove(MoveDeusExMachina) {
			t.Fatalf("append dropped existing moves: %v", out.ForbiddenMoves)
		}
	})

	t.Run("replace swaps the forbidden set", func(t *testing.T) {
		out, err := ApplyOverrides(base, []Override{
			{Op: OpReplace, Path: "/forbidden_moves", Value: []any{"love_triangle", MoveDeusExMachina}},
		})
		if err != nil {
			t.Fatalf("applying: %v", err)
		}
		want := []string{MoveDeusExMachina, "love_triangle"}
		if diff := cmp.Diff(want, out.ForbiddenMoves); diff != "" {
			t.Fatalf("unexpected forbidden set (-want +got):\n%s", diff)
		}
	})

	t.Run("add unions the forbidden set", func(t *testing.T) {
		out, err := ApplyOverrides(base, []Override{
			{Op: OpAdd, Path: "/forbidden_moves", Value: []any{"love_triangle", MoveDeusExMachina}},
		})
		if err != nil {
			t.Fatalf("applying: %v", err)
		}
		if !out.HasForbiddenMove("love_triangle") || !out.HasForbiddenMove(MoveLongLostTwin) {
			t.Fatalf("expected union, got %v", out.ForbiddenMoves)
		}
	})

	t.Run("story engine replacement is validated", func(t *testing.T) {
		out, err := ApplyOverrides(base, []Override{
			{Op: OpReplace, Path: "/story_engine", Value: string(EnginePressureCooker)},
		})
		if err != nil {
			t.Fatalf("applying: %v", err)
		}
		if out.StoryEngine != EnginePressureCooker {
			t.Fatalf("expected pressure_cooker, got %s", out.StoryEngine)
		}

		_, err = ApplyOverrides(base, []Override{
			{Op: OpReplace, Path: "/story_engine", Value: "soap_spiral"},
		})
		if !errors.Is(err, ErrInvalidOverrideValue) {
			t.Fatalf("expected ErrInvalidOverrideValue, got %v", err)
		}
	})

	t.Run("unknown path", func(t *testing.T) {
		_, err := ApplyOverrides(base, []Override{
			{Op: OpReplace, Path: "/budgets/cliffhanger_cap", Value: 1},
		})
		if !errors.Is(err, ErrUnknownOverridePath) {
			t.Fatalf("expected ErrUnknownOverridePath, got %v", err)
		}
	})

	t.Run("lane is not overridable", func(t *testing.T) {
		_, err := ApplyOverrides(base, []Override{
			{Op: OpReplace, Path: "/lane", Value: string(LaneShortFilm)},
		})
		if !errors.Is(err, ErrUnknownOverridePath) {
			t.Fatalf("expected ErrUnknownOverridePath, got %v", err)
		}
	})

	t.Run("unsupported op", func(t *testing.T) {
		_, err := ApplyOverrides(base, []Override{
			{Op: OverrideOp("remove"), Path: "/budgets/twist_cap", Value: 1},
		})
		if !errors.Is(err, ErrInvalidOverrideOp) {
			t.Fatalf("expected ErrInvalidOverrideOp, got %v", err)
		}
	})

	t.Run("append requires add", func(t *testing.T) {
		_, err := ApplyOverrides(base, []Override{
			{Op: OpReplace, Path: "/forbidden_moves/-", Value: "love_triangle"},
		})
		if !errors.Is(err, ErrInvalidOverrideOp) {
			t.Fatalf("expected ErrInvalidOverrideOp, got %v", err)
		}
	})

	t.Run("value validation", func(t *testing.T) {
		cases := []Override{
			{Op: OpReplace, Path: "/budgets/twist_cap", Value: 1.5},
			{Op: OpReplace, Path: "/budgets/twist_cap", Value: -1},
			{Op: OpReplace, Path: "/budgets/twist_cap", Value: "two"},
			{Op: OpReplace, Path: "/gate_thresholds/melodrama_max", Value: 1.5},
			{Op: OpReplace, Path: "/stakes_ladder/no_global_before_pct", Value: -0.2},
			{Op: OpReplace, Path: "/forbidden_moves", Value: "not_a_list"},
			{Op: OpAdd, Path: "/forbidden_moves/-", Value: 7},
		}
		for _, override := range cases {
			if _, err := ApplyOverrides(base, []Override{override}); !errors.Is(err, ErrInvalidOverrideValue) {
				t.Fatalf("expected ErrInvalidOverrideValue for %s %s %v, got %v", override.Op, override.Path, override.Value, err)
			}
		}
	})
}

func TestMergeRuleset(t *testing.T) {
	base, err := DefaultProfile(LaneVerticalDrama)
	if err != nil {
		t.Fatalf("default: %v", err)
	}

	t.Run("run overrides beat project overrides", func(t *testing.T) {
		project := []Override{{Op: OpReplace, Path: "/budgets/twist_cap", Value: 4}}
		run := []Override{{Op: OpReplace, Path: "/budgets/twist_cap", Value: 5}}

		merged, err := MergeRuleset(base, nil, project, run)
		if err != nil {
			t.Fatalf("merging: %v", err)
		}
		if merged.Budgets.TwistCap != 5 {
			t.Fatalf("expected run value 5, got %d", merged.Budgets.TwistCap)
		}
	})

	t.Run("untouched project paths survive the run layer", func(t *testing.T) {
		project := []Override{
			{Op: OpReplace, Path: "/pacing_profile/quiet_beats_min", Value: 2},
			{Op: OpReplace, Path: "/budgets/twist_cap", Value: 4},
		}
		run := []Override{{Op: OpReplace, Path: "/budgets/twist_cap", Value: 5}}

		merged, err := MergeRuleset(base, nil, project, run)
		if err != nil {
			t.Fatalf("merging: %v", err)
		}
		if merged.Pacing.QuietBeatsMin != 2 {
			t.Fatalf("expected project quiet_beats_min 2, got %d", merged.Pacing.QuietBeatsMin)
		}
	})

	t.Run("derived profile replaces the base floor", func(t *testing.T) {
		derived := base.Clone()
		derived.Budgets.DramaBudget = 9

		merged, err := MergeRuleset(base, &derived, nil, nil)
		if err != nil {
			t.Fatalf("merging: %v", err)
		}
		if merged.Budgets.DramaBudget != 9 {
			t.Fatalf("expected derived drama_budget 9, got %d", merged.Budgets.DramaBudget)
		}
	})

	t.Run("nil derived starts from base", func(t *testing.T) {
		merged, err := MergeRuleset(base, nil, nil, nil)
		if err != nil {
			t.Fatalf("merging: %v", err)
		}
		if diff := cmp.Diff(base, merged); diff != "" {
			t.Fatalf("expected base passthrough (-want +got):\n%s", diff)
		}
	})

	t.Run("layer errors carry context", func(t *testing.T) {
		project := []Override{{Op: OpReplace, Path: "/nope", Value: 1}}
		_, err := MergeRuleset(base, nil, project, nil)
		if !errors.Is(err, ErrUnknownOverridePath) {
			t.Fatalf("expected ErrUnknownOverridePath, got %v", err)
		}
	})
}
