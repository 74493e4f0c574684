package extract

import (
	"strings"

	"github.com/jdelacruz-io/campus-records/internal/grid"
)

// corHeaderFields locate the student block at the top of a Certificate of
// Registration.
var corHeaderFields = grid.FieldMap{
	"student_name": {"STUDENT NAME", "NAME OF STUDENT", "NAME"},
	"student_id":   {"STUDENT NO", "STUDENT NUMBER", "ID NO", "ID NUMBER"},
	"course":       {"COURSE", "PROGRAM", "DEGREE"},
	"year_level":   {"YEAR LEVEL", "YEAR", "YR LEVEL"},
	"section":      {"SECTION"},
	"semester":     {"SEMESTER", "TERM"},
	"school_year":  {"SCHOOL YEAR", "SY", "ACADEMIC YEAR", "AY"},
}

// corTableHeaders map the class schedule table of a COR.
var corTableHeaders = grid.FieldMap{
	"subject_code": {"SUBJECT CODE", "COURSE CODE", "CODE", "SUBJ"},
	"description":  {"DESCRIPTIVE TITLE", "DESCRIPTION", "SUBJECT NAME", "COURSE TITLE", "TITLE"},
	"units":        {"UNITS", "CREDITS"},
	"time":         {"TIME", "SCHEDULE", "SCHED"},
	"day":          {"DAY", "DAYS"},
	"room":         {"ROOM", "RM"},
}

// ExtractCOR parses a Certificate of Registration sheet: the labeled student
// block, then the class table via the same header-mapping machinery the
// curriculum extractor uses.
func ExtractCOR(g grid.Grid) CORSchedule {
	var out CORSchedule

	s := grid.Scanner{Lexicon: grid.NewLexicon(corHeaderFields, corTableHeaders)}
	w := grid.Window{MaxRows: 20, MaxCols: 12}
	out.StudentName = s.FindLabeledValue(g, corHeaderFields["student_name"], w)
	out.StudentID = s.FindLabeledValue(g, corHeaderFields["student_id"], w)
	out.Course = s.FindLabeledValue(g, corHeaderFields["course"], w)
	out.Section = s.FindLabeledValue(g, corHeaderFields["section"], w)
	out.SchoolYear = s.FindLabeledValue(g, corHeaderFields["school_year"], w)
	if y := s.FindLabeledValue(g, corHeaderFields["year_level"], w); y != "" {
		if d := yearDigitOf(y); d != "" {
			out.YearLevel = d
		} else {
			out.YearLevel = y
		}
	}
	if sem := s.FindLabeledValue(g, corHeaderFields["semester"], w); sem != "" {
		if norm := normalizeSemester(sem); norm != "" {
			out.Semester = norm
		} else {
			out.Semester = sem
		}
	}

	headerRow, cols := findCORTable(g)
	if headerRow < 0 {
		return out
	}

	for row := headerRow + 1; row < g.NumRows(); row++ {
		if skipCurriculumRow(g, row, nil) {
			continue
		}
		entry, ok := classFromRow(g, row, cols)
		if !ok {
			continue
		}
		out.Classes = append(out.Classes, entry)
	}
	return out
}

// findCORTable locates the class table header using the curriculum
// threshold rule: at least three recognizable columns, first row wins.
func findCORTable(g grid.Grid) (int, map[string]int) {
	maxRows := min(curriculumScanRows, g.NumRows())
	for row := 0; row < maxRows; row++ {
		cols := mapHeaderColumns(g, row, corTableHeaders)
		if len(cols) >= headerMatchThreshold {
			return row, cols
		}
	}
	return -1, nil
}

// classFromRow builds one schedule entry; a row with neither code nor
// description is layout, not a class.
func classFromRow(g grid.Grid, row int, cols map[string]int) (ClassEntry, bool) {
	cellFor := func(field string) string {
		col, ok := cols[field]
		if !ok {
			return ""
		}
		return g.Cell(row, col)
	}

	entry := ClassEntry{
		SubjectCode: cleanSubjectCode(cellFor("subject_code")),
		Description: titleCase(cellFor("description")),
		Time:        cellFor("time"),
		Day:         normalizeDayList(cellFor("day")),
		Room:        strings.ToUpper(cellFor("room")),
	}
	if entry.SubjectCode == "" && entry.Description == "" {
		return ClassEntry{}, false
	}
	if u := firstNumber(cellFor("units")); u != "" {
		entry.Units = u
	} else {
		entry.Units = "3"
	}
	return entry, true
}

// normalizeDayList expands compact day codes ("MWF", "TTH") into canonical
// day names; anything unrecognized passes through trimmed.
func normalizeDayList(s string) string {
	t := strings.ToUpper(strings.TrimSpace(s))
	if t == "" {
		return ""
	}
	if day := MatchDay(t); day != "" {
		return day
	}
	var days []string
	rest := t
	for rest != "" {
		switch {
		case strings.HasPrefix(rest, "TH"):
			days, rest = append(days, "Thursday"), rest[2:]
		case strings.HasPrefix(rest, "M"):
			days, rest = append(days, "Monday"), rest[1:]
		case strings.HasPrefix(rest, "T"):
			days, rest = append(days, "Tuesday"), rest[1:]
		case strings.HasPrefix(rest, "W"):
			days, rest = append(days, "Wednesday"), rest[1:]
		case strings.HasPrefix(rest, "F"):
			days, rest = append(days, "Friday"), rest[1:]
		case strings.HasPrefix(rest, "S"):
			days, rest = append(days, "Saturday"), rest[1:]
		default:
			return strings.TrimSpace(s)
		}
	}
	return strings.Join(days, "/")
}
