// Package classify scores free text against keyword sets and maps it onto a
// closed set of category codes. Classification is total: every input,
// including the empty string, resolves to a code.
package classify

import "strings"

// KeywordSet associates a category code with the keywords that vote for it.
// Declaration order is significant: score ties resolve to the earliest set.
type KeywordSet struct {
	Code     string
	Keywords []string
}

// PrefixRule maps a text prefix to a category code. Rules are consulted only
// when no keyword scored at all.
type PrefixRule struct {
	Prefix string
	Code   string
}

// Classify scores text against each keyword set and returns the code with
// the strictly highest score. The score of a set is the summed length of its
// keywords present in the upper-cased text, so longer, more specific keywords
// outweigh short false-positive substrings. When every score is zero the
// prefix rules are applied; when those miss too, unknown is returned.
func Classify(text string, sets []KeywordSet, prefixes []PrefixRule, unknown string) string {
	upper := strings.ToUpper(strings.TrimSpace(text))

	best := unknown
	bestScore := 0
	for _, set := range sets {
		score := 0
		for _, kw := range set.Keywords {
			if strings.Contains(upper, strings.ToUpper(kw)) {
				score += len(kw)
			}
		}
		if score > bestScore {
			bestScore = score
			best = set.Code
		}
	}
	if bestScore > 0 {
		return best
	}

	for _, rule := range prefixes {
		if strings.HasPrefix(upper, strings.ToUpper(rule.Prefix)) {
			return rule.Code
		}
	}
	return unknown
}
