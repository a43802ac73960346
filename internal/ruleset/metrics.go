package ruleset

import "strings"

type Metrics struct {
	WordCount          int     `json:"word_count"`
	AbsoluteDensity    float64 `json:"absolute_density"`
	TwistDensity       float64 `json:"twist_density"`
	MelodramaDensity   float64 `json:"melodrama_density"`
	ExclamationDensity float64 `json:"exclamation_density"`
	QuietDensity       float64 `json:"quiet_density"`
	SubtextDensity     float64 `json:"subtext_density"`
	ThreadDensity      float64 `json:"thread_density"`
}

// Signal vocabularies. Matching is per whitespace-delimited word after
// lowercasing and trimming edge punctuation, so densities stay comparable
// across drafts of any length.
var (
	absoluteWords = []string{
		"always", "never", "everyone", "nobody", "everything", "nothing",
		"forever", "completely", "utterly", "impossible",
	}
	twistWords = []string{
		"suddenly", "revealed", "reveals", "shocking", "twist",
		"betrayal", "betrayed", "secretly", "unmasked",
	}
	melodramaWords = []string{
		"destroyed", "ruined", "screamed", "screaming", "hate", "hatred",
		"revenge", "collapse", "collapsed", "sobbing", "agony", "shattered",
	}
	quietWords = []string{
		"quiet", "quietly", "silence", "silent", "pause", "pauses",
		"stillness", "breath", "breathes", "lingers",
	}
	subtextWords = []string{
		"glance", "glances", "unspoken", "unsaid", "beneath",
		"hesitates", "hesitation", "implies", "implied",
	}
	threadWords = []string{"meanwhile", "elsewhere"}
)

var (
	absoluteSet  = wordSet(absoluteWords)
	twistSet     = wordSet(twistWords)
	melodramaSet = wordSet(melodramaWords)
	quietSet     = wordSet(quietWords)
	subtextSet   = wordSet(subtextWords)
	threadSet    = wordSet(threadWords)
)

const edgePunctuation = ".,;:!?\"'()[]{}*_"

// ComputeMetrics turns raw text into rate-normalized signals. Empty or
// all-whitespace text yields the zero value.
func ComputeMetrics(text string) Metrics {
	words := strings.Fields(text)
	if len(words) == 0 {
		return Metrics{}
	}

	var absolute, twist, melodrama, quiet, subtext, thread int
	for _, word := range words {
		normalized := strings.Trim(strings.ToLower(word), edgePunctuation)
		if normalized == "" {
			continue
		}
		if _, ok := absoluteSet[normalized]; ok {
			absolute++
		}
		if _, ok := twistSet[normalized]; ok {
			twist++
		}
		if _, ok := melodramaSet[normalized]; ok {
			melodrama++
		}
		if _, ok := quietSet[normalized]; ok {
			quiet++
		}
		if _, ok := subtextSet[normalized]; ok {
			subtext++
		}
		if _, ok := threadSet[normalized]; ok {
			thread++
		}
	}

	total := float64(len(words))
	return Metrics{
		WordCount:          len(words),
		AbsoluteDensity:    float64(absolute) / total,
		TwistDensity:       float64(twist) / total,
		MelodramaDensity:   float64(melodrama) / total,
		ExclamationDensity: float64(strings.Count(text, "!")) / total,
		QuietDensity:       float64(quiet) / total,
		SubtextDensity:     float64(subtext) / total,
		ThreadDensity:      float64(thread) / total,
	}
}

// MelodramaScore composites the heat signals into [0,1].
func MelodramaScore(m Metrics, tun Tunables) float64 {
	t := tun.normalized()
	return clamp01(t.AbsoluteWeight*m.AbsoluteDensity +
		t.MelodramaWeight*m.MelodramaDensity +
		t.ExclamationWeight*m.ExclamationDensity)
}

// NuanceScore composites the restraint signals into [0,1].
func NuanceScore(m Metrics, tun Tunables) float64 {
	t := tun.normalized()
	return clamp01(t.QuietWeight*m.QuietDensity + t.SubtextWeight*m.SubtextDensity)
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
