package ruleset

import "fmt"

const (
	MoveDeusExMachina          = "deus_ex_machina"
	MoveItWasAllADream         = "it_was_all_a_dream"
	MoveLongLostTwin           = "long_lost_twin"
	MoveOffscreenVillainDefeat = "offscreen_villain_defeat"
	MoveTotalCastReset         = "total_cast_reset"
)

// DefaultProfile builds a fresh baseline for the lane. The tables here and
// the rules in DetectConflicts are tuned together: every default must come
// back conflict-free.
func DefaultProfile(lane Lane) (EngineProfile, error) {
	switch lane {
	case LaneFeatureFilm:
		return EngineProfile{
			Lane:           LaneFeatureFilm,
			Budgets:        Budgets{TwistCap: 1, DramaBudget: 4, PlotThreadCap: 3},
			ForbiddenMoves: []string{MoveDeusExMachina, MoveItWasAllADream, MoveLongLostTwin},
			Pacing:         PacingProfile{QuietBeatsMin: 3, SubtextScenesMin: 2},
			Stakes:         StakesLadder{NoGlobalBeforePct: 0.6},
			Thresholds:     GateThresholds{MelodramaMax: 0.45, SimilarityMax: 0.6},
			StoryEngine:    EngineCharacterTransformation,
			ConflictMode:   ModeInternalVsExternal,
		}, nil
	case LaneVerticalDrama:
		return EngineProfile{
			Lane:           LaneVerticalDrama,
			Budgets:        Budgets{TwistCap: 3, DramaBudget: 7, PlotThreadCap: 2},
			ForbiddenMoves: []string{MoveDeusExMachina, MoveOffscreenVillainDefeat},
			Pacing:         PacingProfile{QuietBeatsMin: 1, SubtextScenesMin: 1},
			Stakes:         StakesLadder{NoGlobalBeforePct: 0.3},
			Thresholds:     GateThresholds{MelodramaMax: 0.7, SimilarityMax: 0.5},
			StoryEngine:    EngineEscalatingReversal,
			ConflictMode:   ModeInterpersonalPower,
		}, nil
	case LaneSeriesDrama:
		return EngineProfile{
			Lane:           LaneSeriesDrama,
			Budgets:        Budgets{TwistCap: 2, DramaBudget: 5, PlotThreadCap: 5},
			ForbiddenMoves: []string{MoveDeusExMachina, MoveTotalCastReset},
			Pacing:         PacingProfile{QuietBeatsMin: 2, SubtextScenesMin: 2},
			Stakes:         StakesLadder{NoGlobalBeforePct: 0.5},
			Thresholds:     GateThresholds{MelodramaMax: 0.55, SimilarityMax: 0.55},
			StoryEngine:    EngineEnsembleWeb,
			ConflictMode:   ModeRelationalWeb,
		}, nil
	case LaneShortFilm:
		return EngineProfile{
			Lane:           LaneShortFilm,
			Budgets:        Budgets{TwistCap: 1, DramaBudget: 3, PlotThreadCap: 1},
			ForbiddenMoves: []string{MoveDeusExMachina},
			Pacing:         PacingProfile{QuietBeatsMin: 2, SubtextScenesMin: 1},
			Stakes:         StakesLadder{NoGlobalBeforePct: 0.7},
			Thresholds:     GateThresholds{MelodramaMax: 0.4, SimilarityMax: 0.65},
			StoryEngine:    EnginePressureCooker,
			ConflictMode:   ModeSingleSituation,
		}, nil
	}
	return EngineProfile{}, fmt.Errorf("%w: %q", ErrUnknownLane, lane)
}

type budgetMaxima struct {
	twistCap      int
	dramaBudget   int
	plotThreadCap int
}

// laneMaxima caps derived budgets no matter how many influencers pile on.
func laneMaxima(lane Lane) budgetMaxima {
	switch lane {
	case LaneFeatureFilm:
		return budgetMaxima{twistCap: 3, dramaBudget: 8, plotThreadCap: 5}
	case LaneVerticalDrama:
		return budgetMaxima{twistCap: 6, dramaBudget: 10, plotThreadCap: 4}
	case LaneSeriesDrama:
		return budgetMaxima{twistCap: 4, dramaBudget: 8, plotThreadCap: 8}
	case LaneShortFilm:
		return budgetMaxima{twistCap: 2, dramaBudget: 5, plotThreadCap: 2}
	}
	return budgetMaxima{}
}
