package color

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ParseError reports a color token that could not be resolved to an RGB triple.
type ParseError struct {
	Token      string
	Suggestion string
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unable to parse color %q (did you mean %q?)", e.Token, e.Suggestion)
	}
	return fmt.Sprintf("unable to parse color %q", e.Token)
}

// closestName returns the registered color name nearest to the given token.
// Fuzzy matching narrows the candidates; levenshtein distance picks the winner.
func closestName(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return ""
	}

	candidates := fuzzy.FindFold(token, Names())
	if len(candidates) == 0 {
		candidates = Names()
	}

	best := ""
	bestDistance := -1
	for _, candidate := range candidates {
		d := levenshtein.Distance(token, candidate)
		if bestDistance == -1 || d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	// A suggestion further than half the token's length away is noise.
	if bestDistance > len(token)/2+1 {
		return ""
	}
	return best
}
