package ruleset

import "fmt"

type Lane string

const (
	LaneFeatureFilm   Lane = "feature_film"
	LaneVerticalDrama Lane = "vertical_drama"
	LaneSeriesDrama   Lane = "series_drama"
	LaneShortFilm     Lane = "short_film"
)

func Lanes() []Lane {
	return []Lane{LaneFeatureFilm, LaneVerticalDrama, LaneSeriesDrama, LaneShortFilm}
}

func ParseLane(value string) (Lane, error) {
	switch Lane(value) {
	case LaneFeatureFilm, LaneVerticalDrama, LaneSeriesDrama, LaneShortFilm:
		return Lane(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLane, value)
}

type StoryEngine string

const (
	EngineCharacterTransformation StoryEngine = "character_transformation"
	EngineEscalatingReversal      StoryEngine = "escalating_reversal"
	EngineEnsembleWeb             StoryEngine = "ensemble_web"
	EnginePressureCooker          StoryEngine = "pressure_cooker"
)

func parseStoryEngine(value string) (StoryEngine, bool) {
	switch StoryEngine(value) {
	case EngineCharacterTransformation, EngineEscalatingReversal, EngineEnsembleWeb, EnginePressureCooker:
		return StoryEngine(value), true
	}
	return "", false
}

type ConflictMode string

const (
	ModeInternalVsExternal ConflictMode = "internal_vs_external"
	ModeInterpersonalPower ConflictMode = "interpersonal_power"
	ModeRelationalWeb      ConflictMode = "relational_web"
	ModeSingleSituation    ConflictMode = "single_situation"
)

func parseConflictMode(value string) (ConflictMode, bool) {
	switch ConflictMode(value) {
	case ModeInternalVsExternal, ModeInterpersonalPower, ModeRelationalWeb, ModeSingleSituation:
		return ConflictMode(value), true
	}
	return "", false
}
