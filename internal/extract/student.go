package extract

import (
	"github.com/jdelacruz-io/campus-records/constants"
	"github.com/jdelacruz-io/campus-records/internal/classify"
	"github.com/jdelacruz-io/campus-records/internal/grid"
)

// studentFields extend the shared person pass with enrollment fields.
var studentFields = grid.FieldMap{
	"student_id": {"STUDENT NO", "STUDENT NUMBER", "STUDENT ID", "ID NUMBER", "ID NO"},
	"course":     {"COURSE", "PROGRAM", "DEGREE"},
	"year_level": {"YEAR LEVEL", "YR LEVEL", "YEAR"},
	"section":    {"SECTION"},
	"guardian":   {"GUARDIAN", "PARENT/GUARDIAN", "NAME OF GUARDIAN"},
}

// ExtractStudent parses a student record sheet. The second return is false
// when neither surname nor first name resolved after all fallbacks.
func ExtractStudent(g grid.Grid) (StudentInfo, bool) {
	s := grid.Scanner{Lexicon: grid.NewLexicon(personFields, studentFields)}

	var out StudentInfo
	out.PersonInfo = extractPerson(g, s)
	if !out.hasName() {
		return StudentInfo{}, false
	}

	find := func(field string) string {
		return s.FindLabeledValue(g, studentFields[field], personWindow)
	}
	out.StudentID = find("student_id")
	out.Course = find("course")
	out.Section = find("section")
	out.Guardian = find("guardian")
	if y := find("year_level"); y != "" {
		if d := yearDigitOf(y); d != "" {
			out.YearLevel = d
		} else {
			out.YearLevel = y
		}
	}

	if out.Course != "" {
		if dept := classify.Department(out.Course); dept != string(constants.DeptUnknown) {
			out.Department = dept
		} else {
			out.Department = classify.StandardizeDepartment(out.Course)
		}
	}
	return out, true
}
