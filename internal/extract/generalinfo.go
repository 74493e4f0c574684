package extract

import (
	"path/filepath"
	"regexp"
	"strings"
)

// generalInfoTypes is the ordered filename-keyword table for institutional
// texts; the first containment match wins.
var generalInfoTypes = []struct {
	Keyword string
	Type    string
}{
	{"mission", "mission_vision"},
	{"vision", "mission_vision"},
	{"objective", "objectives"},
	{"history", "history"},
	{"core value", "core_values"},
	{"corevalue", "core_values"},
	{"hymn", "hymn"},
}

var (
	visionHeadRe  = regexp.MustCompile(`(?i)(^VISION\b|\bVISION$)`)
	missionHeadRe = regexp.MustCompile(`(?i)(^MISSION\b|\bMISSION$)`)
	objectiveRe   = regexp.MustCompile(`(?i)\bOBJECTIVES?\b`)
	coreValueRe   = regexp.MustCompile(`(?i)\b(CORE VALUES?|VALUES)\b`)
	numberedRe    = regexp.MustCompile(`^\d+[.)]\s*`)
)

// DetectGeneralInfoType resolves a document type from its filename.
func DetectGeneralInfoType(path string) string {
	name := strings.ToLower(filepath.Base(path))
	var b strings.Builder
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' ' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	normalized := strings.Join(strings.Fields(b.String()), " ")
	for _, t := range generalInfoTypes {
		if strings.Contains(normalized, t.Keyword) {
			return t.Type
		}
	}
	return "general"
}

// ExtractGeneralInfo parses an institutional text document (mission/vision,
// objectives, history, core values, hymn) according to the type detected
// from the filename.
func ExtractGeneralInfo(text, path string) GeneralInfo {
	out := GeneralInfo{Type: DetectGeneralInfoType(path)}
	lines := splitLines(text)

	switch out.Type {
	case "mission_vision":
		out.Mission, out.Vision = parseMissionVision(lines)
	case "objectives":
		out.Objectives = parseObjectives(lines)
	case "core_values":
		out.CoreValues = parseCoreValues(lines)
	default:
		out.Content = strings.TrimSpace(text)
	}
	return out
}

// parseMissionVision scopes capture to the section whose header was seen
// last. Headers match on word boundaries only: a line about "provision of
// quality education" never flips the mode. Non-trivial lines (longer than
// ten characters) accumulate until the other header appears.
func parseMissionVision(lines []string) (mission, vision string) {
	const (
		none = iota
		inMission
		inVision
	)
	mode := none
	var missionParts, visionParts []string

	for _, line := range lines {
		if line == "" {
			continue
		}
		switch {
		case visionHeadRe.MatchString(line):
			mode = inVision
			// inline content after "VISION:" on the same line
			if rest := afterHeader(line, "VISION"); len(rest) > 10 {
				visionParts = append(visionParts, rest)
			}
			continue
		case missionHeadRe.MatchString(line):
			mode = inMission
			if rest := afterHeader(line, "MISSION"); len(rest) > 10 {
				missionParts = append(missionParts, rest)
			}
			continue
		}
		if len(line) <= 10 {
			continue
		}
		switch mode {
		case inMission:
			missionParts = append(missionParts, line)
		case inVision:
			visionParts = append(visionParts, line)
		}
	}
	return strings.Join(missionParts, " "), strings.Join(visionParts, " ")
}

// afterHeader strips a leading header word plus separator from a line.
func afterHeader(line, header string) string {
	upper := strings.ToUpper(line)
	i := strings.Index(upper, header)
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(line[i+len(header):], ":- \t"))
}

// parseObjectives accumulates lines after an OBJECTIVE keyword. A bullet, a
// "N." / "N)" number, or a long capitalized sentence starts a new objective
// and flushes the previous one; other lines continue the current objective.
func parseObjectives(lines []string) []string {
	var out []string
	var current strings.Builder
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			out = append(out, s)
		}
		current.Reset()
	}

	seen := false
	for _, line := range lines {
		if line == "" {
			continue
		}
		if !seen {
			if objectiveRe.MatchString(line) {
				seen = true
			}
			continue
		}
		if startsNewObjective(line) {
			flush()
			line = strings.TrimLeft(line, "-•*· \t")
			line = numberedRe.ReplaceAllString(line, "")
		} else if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(strings.TrimSpace(line))
	}
	flush()
	return out
}

func startsNewObjective(line string) bool {
	switch line[0] {
	case '-', '*':
		return true
	}
	if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "·") {
		return true
	}
	if numberedRe.MatchString(line) {
		return true
	}
	// a long sentence opening with a capital reads as a fresh objective
	first := rune(line[0])
	return first >= 'A' && first <= 'Z' && len(line) > 40
}

// parseCoreValues keeps each line after the CORE VALUES keyword as its own
// entry, verbatim.
func parseCoreValues(lines []string) []string {
	var out []string
	seen := false
	for _, line := range lines {
		if line == "" {
			continue
		}
		if !seen {
			if coreValueRe.MatchString(line) {
				seen = true
			}
			continue
		}
		out = append(out, line)
	}
	return out
}
