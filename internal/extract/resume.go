package extract

import (
	"regexp"
	"strings"
)

// resume line labels; matched at line starts with the scanner boundary rule.
// Longer synonyms come first so "EMAIL ADDRESS:" never strips as "EMAIL".
var resumeLabels = []struct {
	Field  string
	Labels []string
}{
	{"name", []string{"FULL NAME", "NAME"}},
	{"email", []string{"EMAIL ADDRESS", "E-MAIL", "EMAIL"}},
	{"phone", []string{"CONTACT NUMBER", "CONTACT NO", "CELLPHONE", "MOBILE", "PHONE"}},
	{"address", []string{"HOME ADDRESS", "ADDRESS"}},
	{"objective", []string{"CAREER OBJECTIVE", "OBJECTIVE"}},
}

// resume section headers; a matching line switches capture mode.
var resumeSections = map[string][]string{
	"education":  {"EDUCATION", "EDUCATIONAL BACKGROUND", "EDUCATIONAL ATTAINMENT"},
	"experience": {"EXPERIENCE", "WORK EXPERIENCE", "EMPLOYMENT HISTORY", "WORK HISTORY"},
	"skills":     {"SKILLS", "TECHNICAL SKILLS", "KEY SKILLS"},
}

var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
var phoneRe = regexp.MustCompile(`(\+?63|0)\d{9,10}`)

// ExtractResume parses extracted resume/CV text. The name resolves from a
// labeled line, else from the document structure (a proper-case 2-4 token
// line near the top), else from the filename. The second return is false
// only when every fallback missed.
func ExtractResume(text, path string) (ResumeInfo, bool) {
	var out ResumeInfo
	lines := splitLines(text)

	mode := ""
	for _, line := range lines {
		if line == "" {
			mode = ""
			continue
		}
		if section, ok := matchResumeSection(line); ok {
			mode = section
			continue
		}

		if labeled := matchResumeLabel(line); labeled != nil {
			field, value := labeled[0], labeled[1]
			switch field {
			case "name":
				if out.Surname == "" && out.FirstName == "" {
					sur, first, middle := SplitFullName(value)
					out.Surname, out.FirstName, out.MiddleName = sur, first, middle
				}
			case "email":
				setOnce(&out.Email, value)
			case "phone":
				setOnce(&out.ContactNumber, value)
			case "address":
				setOnce(&out.Address, value)
			case "objective":
				setOnce(&out.Objective, value)
			}
			continue
		}

		switch mode {
		case "education":
			out.Education = append(out.Education, line)
		case "experience":
			out.Experience = append(out.Experience, line)
		case "skills":
			out.Skills = append(out.Skills, splitSkills(line)...)
		}
	}

	// unlabeled contact details are still recognizable by shape
	if out.Email == "" {
		setOnce(&out.Email, emailRe.FindString(text))
	}
	if out.ContactNumber == "" {
		setOnce(&out.ContactNumber, phoneRe.FindString(text))
	}

	if out.Surname == "" && out.FirstName == "" {
		if sur, first, middle, ok := NameFromText(text, 15); ok {
			out.Surname, out.FirstName, out.MiddleName = sur, first, middle
		}
	}
	if out.Surname == "" && out.FirstName == "" {
		out.Surname, out.FirstName = NameFromFilename(path)
	}
	if !out.hasName() {
		return ResumeInfo{}, false
	}

	out.Department = inferDepartment("", out.Objective, strings.Join(out.Education, " "))
	return out, true
}

// matchResumeLabel returns [field, value] when the line opens with a known
// label, applying the same boundary rule as the grid scanner.
func matchResumeLabel(line string) []string {
	upper := strings.ToUpper(line)
	for _, group := range resumeLabels {
		field, labels := group.Field, group.Labels
		for _, label := range labels {
			if upper == label {
				continue // a bare label line carries no value
			}
			var rest string
			switch {
			case strings.HasPrefix(upper, label+":"):
				rest = line[len(label)+1:]
			case strings.HasPrefix(upper, label+" "):
				rest = line[len(label)+1:]
			default:
				continue
			}
			rest = strings.TrimSpace(strings.TrimLeft(rest, ": \t"))
			if rest != "" {
				return []string{field, rest}
			}
		}
	}
	return nil
}

// matchResumeSection reports whether the line is a section header.
func matchResumeSection(line string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(strings.TrimRight(line, ":")))
	for section, headers := range resumeSections {
		for _, h := range headers {
			if upper == h {
				return section, true
			}
		}
	}
	return "", false
}

// splitSkills breaks a skills line on commas and semicolons.
func splitSkills(line string) []string {
	parts := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
