package extract

import (
	"regexp"
	"strings"
)

var (
	numberRe    = regexp.MustCompile(`\d+(?:\.\d+)?`)
	yearDigitRe = regexp.MustCompile(`[1-4]`)
	acronymRe   = regexp.MustCompile(`\b((?:BS|AB|BA)[A-Z]{1,4})\b`)
	bachelorRe  = regexp.MustCompile(`(?i)\bBACHELOR OF (SCIENCE|ARTS)(?: IN)?\s+(.+)`)
	alnumRe     = regexp.MustCompile(`[^A-Z0-9]`)
	codeJunkRe  = regexp.MustCompile(`[^A-Z0-9-]`)
)

// subjectAcronyms are tokens kept upper-case when title-casing subject
// names: course acronyms and roman numerals. A plain length test would
// also catch stopwords like TO and OF.
var subjectAcronyms = map[string]struct{}{
	"PE": {}, "GE": {}, "IT": {}, "CS": {}, "NSTP": {}, "RLE": {},
	"I": {}, "II": {}, "III": {}, "IV": {},
}

// titleCase upper-cases the first letter of every word and lower-cases the
// rest, leaving known acronyms alone.
func titleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		if _, ok := subjectAcronyms[w]; ok {
			continue
		}
		lower := strings.ToLower(w)
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}

// cleanSubjectCode upper-cases a code cell and strips everything but
// alphanumerics and hyphens. Codes shorter than two characters are noise.
func cleanSubjectCode(s string) string {
	code := codeJunkRe.ReplaceAllString(strings.ToUpper(strings.TrimSpace(s)), "")
	if len(code) < 2 {
		return ""
	}
	return code
}

// normalizeSemester folds a semester marker onto the closed set
// {"1st Semester", "2nd Semester", "Summer"}; unrecognized input yields "".
func normalizeSemester(s string) string {
	t := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case t == "":
		return ""
	case strings.Contains(t, "SUMMER") || strings.Contains(t, "MIDYEAR"):
		return "Summer"
	case strings.Contains(t, "1") || strings.Contains(t, "FIRST"):
		return "1st Semester"
	case strings.Contains(t, "2") || strings.Contains(t, "SECOND"):
		return "2nd Semester"
	default:
		return ""
	}
}

// yearLevelDigit extracts the first digit 1-4 from a year marker, or "".
func yearLevelDigit(s string) string {
	return yearDigitRe.FindString(s)
}

// firstNumber extracts the first decimal number from a cell, or "".
func firstNumber(s string) string {
	return numberRe.FindString(s)
}

// InferProgramCode derives a short program code from free program text.
// An existing BS/AB/BA acronym wins; else a "Bachelor of Science/Arts in X"
// phrase is reduced to initials of its significant words; else the text is
// stripped to alphanumerics and truncated to ten characters.
func InferProgramCode(text string) string {
	upper := strings.ToUpper(strings.TrimSpace(text))
	if upper == "" {
		return ""
	}
	if m := acronymRe.FindString(upper); m != "" {
		return m
	}
	if m := bachelorRe.FindStringSubmatch(upper); m != nil {
		prefix := "BS"
		if m[1] == "ARTS" {
			prefix = "AB"
		}
		var initials strings.Builder
		for _, w := range strings.Fields(m[2]) {
			if isStopword(w) {
				continue
			}
			w = alnumRe.ReplaceAllString(w, "")
			if w != "" {
				initials.WriteByte(w[0])
			}
		}
		if initials.Len() > 0 {
			return prefix + initials.String()
		}
	}
	stripped := alnumRe.ReplaceAllString(upper, "")
	if len(stripped) > 10 {
		stripped = stripped[:10]
	}
	return stripped
}

func isStopword(w string) bool {
	switch strings.Trim(w, ",.()") {
	case "AND", "THE", "OF", "IN", "WITH":
		return true
	}
	return false
}
