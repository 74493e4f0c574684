package extract

import (
	"strconv"
	"strings"

	"github.com/jdelacruz-io/campus-records/internal/classify"
	"github.com/jdelacruz-io/campus-records/internal/grid"
)

// curriculumHeaders maps canonical curriculum columns to header synonyms.
var curriculumHeaders = grid.FieldMap{
	"year_level":     {"YEAR LEVEL", "YR LEVEL", "YEAR"},
	"semester":       {"SEMESTER", "SEM", "TERM"},
	"subject_code":   {"SUBJECT CODE", "COURSE CODE", "SUBJ CODE", "COURSE NO", "CODE"},
	"subject_name":   {"SUBJECT NAME", "DESCRIPTIVE TITLE", "SUBJECT TITLE", "COURSE TITLE", "SUBJECT DESCRIPTION", "DESCRIPTION", "TITLE"},
	"type":           {"TYPE", "CLASSIFICATION", "CATEGORY"},
	"hours_per_week": {"HOURS PER WEEK", "HOURS/WEEK", "LEC HRS", "HOURS", "HRS"},
	"units":          {"NO OF UNITS", "UNITS", "CREDITS", "CREDIT"},
}

// footerKeywords end a data row's usefulness: totals and legend blocks are
// layout, not subjects.
var footerKeywords = []string{"TOTAL", "SUMMARY", "LEGEND", "PREPARED BY", "APPROVED BY", "NOTE:"}

// headerMatchThreshold is the minimum number of distinct canonical columns a
// row must exhibit to be accepted as the table header.
const headerMatchThreshold = 3

// curriculumScanRows bounds the top-down header search.
const curriculumScanRows = 40

// ExtractCurriculum reconstructs a curriculum table from a raw grid. A grid
// without a recognizable header row yields an empty subject list; the caller
// decides whether that makes the document a skip.
func ExtractCurriculum(g grid.Grid) Curriculum {
	var cur Curriculum

	cur.Program, cur.ProgramCode = findProgram(g)
	if cur.Program != "" {
		cur.Department = classify.Department(cur.Program)
	}

	headerRow, cols := findCurriculumHeader(g)
	if headerRow < 0 {
		return cur
	}

	// Row walk with carried state: year and semester update only on explicit
	// marker rows and are inherited by every row in between.
	state := rowState{year: "1", semester: "1st Semester"}
	seen := make(map[string]struct{})
	for row := headerRow + 1; row < g.NumRows(); row++ {
		state = state.advance(g, row, cols)
		if isMarkerRow(g, row) || skipCurriculumRow(g, row, cols) {
			continue
		}
		sub, ok := subjectFromRow(g, row, cols, state)
		if !ok {
			continue
		}
		key := sub.SubjectCode + "|" + sub.YearLevel + "|" + sub.Semester
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		cur.Subjects = append(cur.Subjects, sub)
	}

	cur.Years = groupSubjects(cur.Subjects)
	return cur
}

// rowState is the carried year/semester context of the curriculum walk.
type rowState struct {
	year     string
	semester string
}

// advance updates the carried state when the row carries explicit markers.
// A marker in the mapped column may be as terse as "1st" or "2"; markers
// found by scanning an unmapped row must spell themselves out ("2ND SEM",
// "SECOND YEAR") so stray digits never flip the state.
func (s rowState) advance(g grid.Grid, row int, cols map[string]int) rowState {
	if col, ok := cols["year_level"]; ok {
		if v := g.Cell(row, col); isBareYearMarker(v) {
			s.year = yearDigitOf(v)
		}
	} else if v := scanRowFor(g, row, isWordedYearMarker); v != "" {
		s.year = yearDigitOf(v)
	}

	if col, ok := cols["semester"]; ok {
		v := g.Cell(row, col)
		if len(v) <= 15 {
			if sem := normalizeSemester(v); sem != "" {
				s.semester = sem
			}
		}
	} else if v := scanRowFor(g, row, isSemesterMarker); v != "" {
		if sem := normalizeSemester(v); sem != "" {
			s.semester = sem
		}
	}
	return s
}

// isMarkerRow reports whether every non-empty cell of the row is a year or
// semester marker. Marker rows update the carried state but are never
// subjects themselves.
func isMarkerRow(g grid.Grid, row int) bool {
	nonEmpty := 0
	for col := 0; col < g.RowLen(row); col++ {
		v := g.Cell(row, col)
		if v == "" {
			continue
		}
		nonEmpty++
		if !isWordedYearMarker(v) && !isSemesterMarker(v) && !isBareYearMarker(v) {
			return false
		}
	}
	return nonEmpty > 0
}

// scanRowFor returns the first cell in row accepted by match.
func scanRowFor(g grid.Grid, row int, match func(string) bool) string {
	for col := 0; col < g.RowLen(row); col++ {
		if v := g.Cell(row, col); v != "" && match(v) {
			return v
		}
	}
	return ""
}

// isWordedYearMarker accepts markers that name the year outright.
func isWordedYearMarker(v string) bool {
	t := strings.ToUpper(strings.TrimSpace(v))
	if len(t) > 25 {
		return false
	}
	return (strings.Contains(t, "YEAR") || strings.Contains(t, "YR")) && yearDigitOf(t) != ""
}

// yearDigitOf resolves a year marker to its digit, spelling included.
func yearDigitOf(v string) string {
	if d := yearLevelDigit(v); d != "" {
		return d
	}
	t := strings.ToUpper(v)
	switch {
	case strings.Contains(t, "FIRST"):
		return "1"
	case strings.Contains(t, "SECOND"):
		return "2"
	case strings.Contains(t, "THIRD"):
		return "3"
	case strings.Contains(t, "FOURTH"):
		return "4"
	}
	return ""
}

// isBareYearMarker accepts short markers like "1st", "2", "3rd Yr".
func isBareYearMarker(v string) bool {
	t := strings.ToUpper(strings.TrimSpace(v))
	if t == "" || len(t) > 12 {
		return false
	}
	d := yearDigitOf(t)
	if d == "" {
		return false
	}
	switch t {
	case d, d + "ST", d + "ND", d + "RD", d + "TH":
		return true
	}
	return strings.Contains(t, "YEAR") || strings.Contains(t, "YR")
}

// isSemesterMarker accepts explicit semester markers, not arbitrary cells
// that happen to contain a digit.
func isSemesterMarker(v string) bool {
	t := strings.ToUpper(strings.TrimSpace(v))
	if t == "" || len(t) > 20 {
		return false
	}
	return strings.Contains(t, "SEM") || strings.Contains(t, "SUMMER") ||
		strings.Contains(t, "MIDYEAR") || strings.Contains(t, "FIRST") ||
		strings.Contains(t, "SECOND")
}

// findCurriculumHeader locates the header row and maps canonical fields to
// columns. The first row with at least headerMatchThreshold distinct field
// matches wins, scanning top-down.
func findCurriculumHeader(g grid.Grid) (int, map[string]int) {
	maxRows := min(curriculumScanRows, g.NumRows())
	for row := 0; row < maxRows; row++ {
		cols := mapHeaderColumns(g, row, curriculumHeaders)
		if len(cols) >= headerMatchThreshold {
			return row, cols
		}
	}
	return -1, nil
}

// mapHeaderColumns scores each header cell against each field's synonyms and
// keeps, per field, the best-scoring column. Exact matches outrank substring
// matches and longer synonyms outrank shorter ones.
func mapHeaderColumns(g grid.Grid, row int, fields grid.FieldMap) map[string]int {
	type best struct {
		col   int
		score int
	}
	winners := make(map[string]best)
	for col := 0; col < g.RowLen(row); col++ {
		cell := strings.ToUpper(g.Cell(row, col))
		if cell == "" {
			continue
		}
		for field, synonyms := range fields {
			for _, syn := range synonyms {
				score := 0
				switch {
				case cell == syn:
					score = 2 * len(syn)
				case strings.Contains(cell, syn):
					score = len(syn)
				}
				if score == 0 {
					continue
				}
				if w, ok := winners[field]; !ok || score > w.score {
					winners[field] = best{col: col, score: score}
				}
			}
		}
	}
	cols := make(map[string]int, len(winners))
	for field, w := range winners {
		cols[field] = w.col
	}
	return cols
}

// skipCurriculumRow drops blank rows, footer rows and rows whose subject
// code cell is a bare number above 20 (mis-parsed totals).
func skipCurriculumRow(g grid.Grid, row int, cols map[string]int) bool {
	blank := true
	for col := 0; col < g.RowLen(row); col++ {
		if g.Cell(row, col) != "" {
			blank = false
			break
		}
	}
	if blank {
		return true
	}
	for col := 0; col < g.RowLen(row); col++ {
		upper := strings.ToUpper(g.Cell(row, col))
		for _, kw := range footerKeywords {
			if strings.Contains(upper, kw) {
				return true
			}
		}
	}
	if col, ok := cols["subject_code"]; ok {
		if raw := g.Cell(row, col); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 20 {
				return true
			}
		}
	}
	return false
}

// subjectFromRow builds a subject entry from one data row, applying per-field
// cleaning and defaults. A row with neither code nor name is not a subject.
func subjectFromRow(g grid.Grid, row int, cols map[string]int, state rowState) (Subject, bool) {
	cellFor := func(field string) string {
		col, ok := cols[field]
		if !ok {
			return ""
		}
		return g.Cell(row, col)
	}

	sub := Subject{
		YearLevel:   state.year,
		Semester:    state.semester,
		SubjectCode: cleanSubjectCode(cellFor("subject_code")),
		SubjectName: titleCase(cellFor("subject_name")),
	}
	if sub.SubjectCode == "" && sub.SubjectName == "" {
		return Subject{}, false
	}

	if t := cellFor("type"); t != "" {
		if norm := classify.SubjectType(t); norm != "" {
			sub.Type = norm
		} else {
			sub.Type = titleCase(t)
		}
	} else {
		sub.Type = "Core"
	}
	if u := firstNumber(cellFor("units")); u != "" {
		sub.Units = u
	} else {
		sub.Units = "3"
	}
	if h := firstNumber(cellFor("hours_per_week")); h != "" {
		sub.HoursPerWeek = h
	} else {
		sub.HoursPerWeek = "3"
	}
	return sub, true
}

// groupSubjects folds the flat subject list into year -> semester -> list
// order for reporting. Input order is preserved inside each bucket.
func groupSubjects(subjects []Subject) []YearGroup {
	var years []YearGroup
	yearIdx := make(map[string]int)
	semIdx := make(map[string]int)
	for _, sub := range subjects {
		yi, ok := yearIdx[sub.YearLevel]
		if !ok {
			yi = len(years)
			yearIdx[sub.YearLevel] = yi
			years = append(years, YearGroup{YearLevel: sub.YearLevel})
		}
		semKey := sub.YearLevel + "|" + sub.Semester
		si, ok := semIdx[semKey]
		if !ok {
			si = len(years[yi].Semesters)
			semIdx[semKey] = si
			years[yi].Semesters = append(years[yi].Semesters, SemesterGroup{Semester: sub.Semester})
		}
		years[yi].Semesters[si].Subjects = append(years[yi].Semesters[si].Subjects, sub)
	}
	return years
}

// findProgram looks above and around the table for the program name.
func findProgram(g grid.Grid) (name, code string) {
	maxRows := min(15, g.NumRows())
	for row := 0; row < maxRows; row++ {
		for col := 0; col < g.RowLen(row); col++ {
			cell := g.Cell(row, col)
			upper := strings.ToUpper(cell)
			if strings.Contains(upper, "BACHELOR OF") {
				return strings.TrimSpace(cell), InferProgramCode(cell)
			}
			if m := acronymRe.FindString(upper); m != "" && len(strings.Fields(cell)) <= 3 {
				return strings.TrimSpace(cell), m
			}
		}
	}
	return "", ""
}
