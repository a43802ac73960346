package ruleset

import "fmt"

type Severity string

const (
	SeveritySoft Severity = "soft"
	SeverityHard Severity = "hard"
)

type Conflict struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// twistMargin is how far twist_cap may exceed the lane baseline before the
// restraint rule fires.
const twistMargin = 1

// DetectConflicts reports internal contradictions as data; a hard conflict
// is the caller's cue to block publishing, never an error here.
func DetectConflicts(profile EngineProfile) []Conflict {
	conflicts := make([]Conflict, 0)

	if baseline, err := DefaultProfile(profile.Lane); err == nil {
		if profile.Budgets.TwistCap > baseline.Budgets.TwistCap+twistMargin {
			conflicts = append(conflicts, Conflict{
				ID:       "twist_vs_restraint",
				Severity: SeveritySoft,
				Message: fmt.Sprintf("twist_cap %d is more than %d above the %s baseline of %d",
					profile.Budgets.TwistCap, twistMargin, profile.Lane, baseline.Budgets.TwistCap),
			})
		}
	}

	if floor := stakesFloor(profile.Lane); profile.Stakes.NoGlobalBeforePct < floor {
		conflicts = append(conflicts, Conflict{
			ID:       "early_global_stakes",
			Severity: SeverityHard,
			Message: fmt.Sprintf("no_global_before_pct %.2f is below the %s floor of %.2f",
				profile.Stakes.NoGlobalBeforePct, profile.Lane, floor),
		})
	}

	for _, required := range requiredForbidden(profile.Lane) {
		if profile.HasForbiddenMove(required.id) {
			continue
		}
		conflicts = append(conflicts, Conflict{
			ID:       "missing_forbidden_" + required.id,
			Severity: required.severity,
			Message:  fmt.Sprintf("%s must stay in forbidden_moves for %s", required.id, profile.Lane),
		})
	}

	return conflicts
}

// stakesFloor is the earliest point global stakes may enter, per lane.
func stakesFloor(lane Lane) float64 {
	switch lane {
	case LaneFeatureFilm:
		return 0.5
	case LaneVerticalDrama:
		return 0.25
	case LaneSeriesDrama:
		return 0.4
	case LaneShortFilm:
		return 0.5
	}
	return 0
}

type requiredMove struct {
	id       string
	severity Severity
}

// requiredForbidden lists the guardrail moves each lane must keep forbidden.
// Deus ex machina is essential everywhere.
func requiredForbidden(lane Lane) []requiredMove {
	required := []requiredMove{{id: MoveDeusExMachina, severity: SeverityHard}}
	switch lane {
	case LaneFeatureFilm:
		required = append(required,
			requiredMove{id: MoveItWasAllADream, severity: SeverityHard},
			requiredMove{id: MoveLongLostTwin, severity: SeveritySoft})
	case LaneVerticalDrama:
		required = append(required, requiredMove{id: MoveOffscreenVillainDefeat, severity: SeveritySoft})
	case LaneSeriesDrama:
		required = append(required, requiredMove{id: MoveTotalCastReset, severity: SeveritySoft})
	}
	return required
}
