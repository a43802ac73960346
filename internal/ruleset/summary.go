package ruleset

import (
	"fmt"
	"strings"
)

// Summary renders a profile for humans: editors reviewing a project setup,
// or a drafting prompt that wants the ruleset in prose.
func Summary(profile EngineProfile) string {
	moves := make([]string, 0, len(profile.ForbiddenMoves))
	for _, move := range profile.ForbiddenMoves {
		moves = append(moves, humanizeMove(move))
	}
	forbidden := "none"
	if len(moves) > 0 {
		forbidden = strings.Join(moves, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Lane: %s\n", profile.Lane)
	fmt.Fprintf(&b, "Story engine: %s\n", profile.StoryEngine)
	fmt.Fprintf(&b, "Conflict mode: %s\n", profile.ConflictMode)
	fmt.Fprintf(&b, "Budgets: %d twist(s), %d drama beats, %d plot threads\n",
		profile.Budgets.TwistCap, profile.Budgets.DramaBudget, profile.Budgets.PlotThreadCap)
	fmt.Fprintf(&b, "Pacing: at least %d quiet beats and %d subtext scenes\n",
		profile.Pacing.QuietBeatsMin, profile.Pacing.SubtextScenesMin)
	fmt.Fprintf(&b, "Stakes: no global stakes before %.0f%% of the story\n",
		profile.Stakes.NoGlobalBeforePct*100)
	fmt.Fprintf(&b, "Gate: melodrama at most %.2f, similarity at most %.2f\n",
		profile.Thresholds.MelodramaMax, profile.Thresholds.SimilarityMax)
	fmt.Fprintf(&b, "Forbidden moves: %s\n", forbidden)
	return b.String()
}
