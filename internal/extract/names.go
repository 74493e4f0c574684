package extract

import (
	"path/filepath"
	"regexp"
	"strings"
)

// surnameParticles are tokens that attach to the token after them in Filipino
// and Spanish-derived surnames ("Dela Cruz", "De Leon", "San Jose").
var surnameParticles = map[string]struct{}{
	"DELA": {}, "DELAS": {}, "DELOS": {}, "DE": {}, "DEL": {},
	"SAN": {}, "STA": {}, "SANTA": {}, "VAN": {}, "VON": {}, "DI": {}, "LA": {},
}

// SplitFullName splits a full name into surname, first and middle parts.
// "Surname, First Middle" splits on the comma; otherwise the last token is
// the surname, extended leftward over surname particles, the first token is
// the first name and anything between is the middle name.
func SplitFullName(full string) (surname, first, middle string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", "", ""
	}

	if i := strings.Index(full, ","); i >= 0 {
		surname = strings.TrimSpace(full[:i])
		rest := strings.Fields(strings.TrimSpace(full[i+1:]))
		if len(rest) > 0 {
			first = rest[0]
			middle = strings.Join(rest[1:], " ")
		}
		return surname, first, middle
	}

	tokens := strings.Fields(full)
	switch len(tokens) {
	case 0:
		return "", "", ""
	case 1:
		return "", tokens[0], ""
	}

	start := len(tokens) - 1
	for start > 1 {
		if _, ok := surnameParticles[strings.ToUpper(tokens[start-1])]; !ok {
			break
		}
		start--
	}
	surname = strings.Join(tokens[start:], " ")
	first = tokens[0]
	middle = strings.Join(tokens[1:start], " ")
	return surname, first, middle
}

// jobTitleWords disqualify a text line from being read as a person's name.
var jobTitleWords = []string{
	"RESUME", "CURRICULUM VITAE", "ENGINEER", "DEVELOPER", "TEACHER",
	"PROFESSOR", "INSTRUCTOR", "MANAGER", "ASSISTANT", "OFFICER", "CLERK",
	"STAFF", "NURSE", "ACCOUNTANT", "ADDRESS", "EMAIL", "PHONE", "CONTACT",
	"OBJECTIVE", "EDUCATION", "EXPERIENCE", "SKILLS",
}

var alphaTokenRe = regexp.MustCompile(`^[A-Za-z.'-]+$`)
var properPairRe = regexp.MustCompile(`\b([A-Z][a-z]+)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`)

// NameFromText scans the first lines of extracted document text for a line
// that reads like a person's name: two to four alphabetic tokens, not a job
// title keyword, and not an all-caps header. A second pass relaxes to a
// strict Capitalized Capitalized token match anywhere in those lines.
func NameFromText(text string, maxLines int) (surname, first, middle string, ok bool) {
	if maxLines <= 0 {
		maxLines = 15
	}
	lines := splitLines(text)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	for _, line := range lines {
		if looksLikeName(line) {
			s, f, m := SplitFullName(line)
			return s, f, m, true
		}
	}

	for _, line := range lines {
		if containsJobTitle(line) {
			continue
		}
		if m := properPairRe.FindString(line); m != "" {
			s, f, md := SplitFullName(m)
			return s, f, md, true
		}
	}
	return "", "", "", false
}

func looksLikeName(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || containsJobTitle(line) {
		return false
	}
	tokens := strings.Fields(line)
	if len(tokens) < 2 || len(tokens) > 4 {
		return false
	}
	for _, t := range tokens {
		if !alphaTokenRe.MatchString(t) {
			return false
		}
	}
	// an all-caps line is more likely a section header than a name
	if line == strings.ToUpper(line) {
		return false
	}
	return true
}

func containsJobTitle(line string) bool {
	upper := strings.ToUpper(line)
	for _, w := range jobTitleWords {
		if strings.Contains(upper, w) {
			return true
		}
	}
	return false
}

var letterTokenRe = regexp.MustCompile(`^[A-Za-z]+$`)

// NameFromFilename derives first/last name tokens from a filename by
// splitting on spaces, underscores and hyphens. Non-alphabetic tokens
// (dates, version digits) are discarded. Last-resort fallback.
func NameFromFilename(path string) (surname, first string) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	raw := strings.FieldsFunc(base, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	})
	tokens := raw[:0]
	for _, tok := range raw {
		if letterTokenRe.MatchString(tok) {
			tokens = append(tokens, tok)
		}
	}
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return "", titleCase(tokens[0])
	default:
		return titleCase(tokens[len(tokens)-1]), titleCase(strings.Join(tokens[:len(tokens)-1], " "))
	}
}

// splitLines splits raw document text into trimmed lines, tolerating \r\n.
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		out = append(out, strings.TrimSpace(l))
	}
	return out
}
