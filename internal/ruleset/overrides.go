package ruleset

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type OverrideOp string

const (
	OpReplace OverrideOp = "replace"
	OpAdd     OverrideOp = "add"
)

type Override struct {
	Op    OverrideOp `json:"op" yaml:"op"`
	Path  string     `json:"path" yaml:"path"`
	Value any        `json:"value" yaml:"value"`
}

// pathSetters maps every known override path to a typed setter, so paths stay
// stringly only at the persistence boundary. The op is forwarded because the
// set-valued paths treat replace and add differently.
var pathSetters = map[string]func(*EngineProfile, OverrideOp, any) error{
	"/budgets/twist_cap": func(p *EngineProfile, _ OverrideOp, v any) error {
		return setCount(&p.Budgets.TwistCap, v)
	},
	"/budgets/drama_budget": func(p *EngineProfile, _ OverrideOp, v any) error {
		return setCount(&p.Budgets.DramaBudget, v)
	},
	"/budgets/plot_thread_cap": func(p *EngineProfile, _ OverrideOp, v any) error {
		return setCount(&p.Budgets.PlotThreadCap, v)
	},
	"/pacing_profile/quiet_beats_min": func(p *EngineProfile, _ OverrideOp, v any) error {
		return setCount(&p.Pacing.QuietBeatsMin, v)
	},
	"/pacing_profile/subtext_scenes_min": func(p *EngineProfile, _ OverrideOp, v any) error {
		return setCount(&p.Pacing.SubtextScenesMin, v)
	},
	"/stakes_ladder/no_global_before_pct": func(p *EngineProfile, _ OverrideOp, v any) error {
		return setFraction(&p.Stakes.NoGlobalBeforePct, v)
	},
	"/gate_thresholds/melodrama_max": func(p *EngineProfile, _ OverrideOp, v any) error {
		return setFraction(&p.Thresholds.MelodramaMax, v)
	},
	"/gate_thresholds/similarity_max": func(p *EngineProfile, _ OverrideOp, v any) error {
		return setFraction(&p.Thresholds.SimilarityMax, v)
	},
	"/forbidden_moves":   setForbiddenMoves,
	"/forbidden_moves/-": appendForbiddenMove,
	"/story_engine":      setStoryEngine,
	"/conflict_mode":     setConflictMode,
}

// ApplyOverrides returns a transformed copy; the input profile is untouched.
func ApplyOverrides(profile EngineProfile, overrides []Override) (EngineProfile, error) {
	out := profile.Clone()
	for _, override := range overrides {
		if override.Op != OpReplace && override.Op != OpAdd {
			return EngineProfile{}, fmt.Errorf("override %q: %w: %q", override.Path, ErrInvalidOverrideOp, override.Op)
		}
		setter, ok := pathSetters[override.Path]
		if !ok {
			return EngineProfile{}, fmt.Errorf("%w: %q", ErrUnknownOverridePath, override.Path)
		}
		if err := setter(&out, override.Op, override.Value); err != nil {
			return EngineProfile{}, fmt.Errorf("override %s %s: %w", override.Op, override.Path, err)
		}
	}
	return out, nil
}

// MergeRuleset layers the ruleset: base, then the derived profile when one
// exists, then project overrides, then run overrides. Later layers win, so a
// path touched by both project and run ends up with the run value.
func MergeRuleset(base EngineProfile, derived *EngineProfile, projectOverrides, runOverrides []Override) (EngineProfile, error) {
	merged := base.Clone()
	if derived != nil {
		merged = derived.Clone()
	}

	var err error
	merged, err = ApplyOverrides(merged, projectOverrides)
	if err != nil {
		return EngineProfile{}, fmt.Errorf("project overrides: %w", err)
	}
	merged, err = ApplyOverrides(merged, runOverrides)
	if err != nil {
		return EngineProfile{}, fmt.Errorf("run overrides: %w", err)
	}
	return merged, nil
}

func setCount(field *int, value any) error {
	n, ok := intValue(value)
	if !ok || n < 0 {
		return fmt.Errorf("%w: want a non-negative integer, got %v", ErrInvalidOverrideValue, value)
	}
	*field = n
	return nil
}

func setFraction(field *float64, value any) error {
	f, ok := floatValue(value)
	if !ok || f < 0 || f > 1 {
		return fmt.Errorf("%w: want a fraction in [0,1], got %v", ErrInvalidOverrideValue, value)
	}
	*field = f
	return nil
}

func setForbiddenMoves(p *EngineProfile, op OverrideOp, value any) error {
	moves, err := stringListValue(value)
	if err != nil {
		return err
	}
	switch op {
	case OpReplace:
		p.ForbiddenMoves = nil
		for _, move := range moves {
			p.addForbiddenMove(move)
		}
	case OpAdd:
		for _, move := range moves {
			p.addForbiddenMove(move)
		}
	}
	return nil
}

func appendForbiddenMove(p *EngineProfile, op OverrideOp, value any) error {
	if op != OpAdd {
		return fmt.Errorf("%w: appending to forbidden_moves requires add", ErrInvalidOverrideOp)
	}
	move, ok := value.(string)
	if !ok || strings.TrimSpace(move) == "" {
		return fmt.Errorf("%w: want a move id string, got %v", ErrInvalidOverrideValue, value)
	}
	p.addForbiddenMove(move)
	return nil
}

func setStoryEngine(p *EngineProfile, _ OverrideOp, value any) error {
	raw, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: want a story engine string, got %v", ErrInvalidOverrideValue, value)
	}
	engine, ok := parseStoryEngine(raw)
	if !ok {
		return fmt.Errorf("%w: unknown story engine %q", ErrInvalidOverrideValue, raw)
	}
	p.StoryEngine = engine
	return nil
}

func setConflictMode(p *EngineProfile, _ OverrideOp, value any) error {
	raw, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: want a conflict mode string, got %v", ErrInvalidOverrideValue, value)
	}
	mode, ok := parseConflictMode(raw)
	if !ok {
		return fmt.Errorf("%w: unknown conflict mode %q", ErrInvalidOverrideValue, raw)
	}
	p.ConflictMode = mode
	return nil
}

// intValue accepts the integral forms JSON and YAML decoding produce.
func intValue(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	}
	return 0, false
}

func floatValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func stringListValue(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if strings.TrimSpace(item) == "" {
				continue
			}
			out = append(out, item)
		}
		sort.Strings(out)
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: move ids must be strings, got %v", ErrInvalidOverrideValue, item)
			}
			if strings.TrimSpace(s) == "" {
				continue
			}
			out = append(out, s)
		}
		sort.Strings(out)
		return out, nil
	}
	return nil, fmt.Errorf("%w: want a list of move ids, got %v", ErrInvalidOverrideValue, value)
}
