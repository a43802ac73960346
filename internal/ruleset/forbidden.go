package ruleset

import (
	"regexp"
	"strings"
)

// movePatterns holds the precompiled phrase patterns for every move the lane
// defaults reference. Novel ids from overrides or influencer avoid tags
// compile on the fly.
var movePatterns = map[string]*regexp.Regexp{
	MoveDeusExMachina:          compileMovePattern(MoveDeusExMachina),
	MoveItWasAllADream:         compileMovePattern(MoveItWasAllADream),
	MoveLongLostTwin:           compileMovePattern(MoveLongLostTwin),
	MoveOffscreenVillainDefeat: compileMovePattern(MoveOffscreenVillainDefeat),
	MoveTotalCastReset:         compileMovePattern(MoveTotalCastReset),
}

// compileMovePattern turns a snake_case id into a case-insensitive phrase
// pattern with flexible whitespace between the words.
func compileMovePattern(id string) *regexp.Regexp {
	parts := strings.Split(strings.ToLower(id), "_")
	quoted := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(part))
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(quoted, `\s+`) + `\b`)
}

// DetectForbiddenMoves returns exactly the subset of moveIDs whose phrase
// form appears in text, preserving input order.
func DetectForbiddenMoves(text string, moveIDs []string) []string {
	if strings.TrimSpace(text) == "" || len(moveIDs) == 0 {
		return nil
	}

	var found []string
	seen := make(map[string]struct{}, len(moveIDs))
	for _, id := range moveIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		pattern, ok := movePatterns[id]
		if !ok {
			pattern = compileMovePattern(id)
		}
		if pattern == nil {
			continue
		}
		if pattern.MatchString(text) {
			found = append(found, id)
		}
	}
	return found
}
