package catalog

import (
	"github.com/hbollon/go-edlib"
)

// minSuggestionScore is the Jaro-Winkler similarity below which no hint is offered.
const minSuggestionScore = 0.8

// Suggest returns the candidate closest to input, or false when nothing is close
// enough to be worth a "did you mean" hint. Exact matches are not suggestions.
func Suggest(input string, candidates []string) (string, bool) {
	input = Normalize(input)
	if input == "" {
		return "", false
	}

	best := ""
	var bestScore float32
	for _, candidate := range candidates {
		if candidate == input {
			return "", false
		}
		score, err := edlib.StringsSimilarity(input, candidate, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}

	if best == "" || bestScore < minSuggestionScore {
		return "", false
	}
	return best, true
}
