package ruleset

import (
	"fmt"
	"strings"
)

// BuildRepairInstruction renders gate failures as a self-contained rewrite
// brief for the drafting model. It always opens with the lane's priorities
// and cites the profile's own numbers so no other context is needed.
func BuildRepairInstruction(failures []FailureCode, profile EngineProfile, forbiddenFound []string) string {
	var b strings.Builder
	b.WriteString(lanePriorities(profile.Lane))

	if len(failures) == 0 {
		return b.String()
	}

	b.WriteString("\n\nFix the following, then rewrite the full draft:\n")
	for _, failure := range failures {
		switch failure {
		case FailForbiddenMove:
			if len(forbiddenFound) == 0 {
				b.WriteString("- Remove every forbidden narrative device the gate flagged.\n")
				continue
			}
			for _, move := range forbiddenFound {
				fmt.Fprintf(&b, "- Remove the %q device entirely; resolve that moment through character action instead.\n", humanizeMove(move))
			}
		case FailTwistOveruse:
			fmt.Fprintf(&b, "- Cut reversals until at most twist_cap %d remain; keep the strongest one.\n", profile.Budgets.TwistCap)
		case FailMelodrama:
			fmt.Fprintf(&b, "- Bring the emotional temperature under the melodrama_max %.2f threshold; swap declarations for behavior.\n", profile.Thresholds.MelodramaMax)
		case FailOvercomplexity:
			fmt.Fprintf(&b, "- Consolidate storylines down to plot_thread_cap %d concurrent threads.\n", profile.Budgets.PlotThreadCap)
		case FailSubtextMissing:
			fmt.Fprintf(&b, "- Rework scenes until at least subtext_scenes_min %d carry meaning beneath the dialogue.\n", profile.Pacing.SubtextScenesMin)
		case FailNuanceDeficit:
			fmt.Fprintf(&b, "- Restore at least %d quiet beats; let silence and small gestures carry weight.\n", profile.Pacing.QuietBeatsMin)
		}
	}
	return b.String()
}

// lanePriorities is the literal header and body pair per lane.
func lanePriorities(lane Lane) string {
	switch lane {
	case LaneFeatureFilm:
		return "FEATURE FILM PRIORITIES\n" +
			"Protect interiority: quiet beats and subtext do the heavy lifting. " +
			"Let transformation land through behavior, hold global stakes back until late, " +
			"and trust the audience with restraint."
	case LaneVerticalDrama:
		return "VERTICAL DRAMA PRIORITIES\n" +
			"Maximize leverage of cliffhangers and stakes reversals: end every beat on a hook, " +
			"shift power between characters fast, and keep confrontation face to face and onscreen."
	case LaneSeriesDrama:
		return "SERIES DRAMA PRIORITIES\n" +
			"Serve the ensemble web: rotate focus across threads without dropping any, " +
			"escalate relational fallout across episodes, and earn every reversal with prior scenes."
	case LaneShortFilm:
		return "SHORT FILM PRIORITIES\n" +
			"One situation under pressure: compress time, strip subplots, " +
			"and land a single resonant turn."
	}
	return "PRIORITIES\nFollow the lane ruleset."
}

func humanizeMove(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}
