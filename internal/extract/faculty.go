package extract

import (
	"strings"

	"github.com/jdelacruz-io/campus-records/constants"
	"github.com/jdelacruz-io/campus-records/internal/classify"
	"github.com/jdelacruz-io/campus-records/internal/grid"
)

// facultyFields extend the shared person pass with employment fields.
var facultyFields = grid.FieldMap{
	"employee_id":    {"EMPLOYEE NO", "EMPLOYEE NUMBER", "EMPLOYEE ID", "ID NUMBER", "ID NO"},
	"position":       {"POSITION", "DESIGNATION", "RANK", "JOB TITLE"},
	"specialization": {"SPECIALIZATION", "FIELD OF SPECIALIZATION", "AREA OF EXPERTISE", "MAJOR"},
	"education":      {"EDUCATIONAL ATTAINMENT", "HIGHEST EDUCATIONAL ATTAINMENT", "EDUCATION"},
	"department":     {"DEPARTMENT", "COLLEGE", "UNIT"},
}

// ExtractFaculty parses a teaching-staff record sheet. The second return is
// false when no name resolved.
func ExtractFaculty(g grid.Grid) (FacultyInfo, bool) {
	s := grid.Scanner{Lexicon: grid.NewLexicon(personFields, facultyFields)}

	var out FacultyInfo
	out.PersonInfo = extractPerson(g, s)
	if !out.hasName() {
		return FacultyInfo{}, false
	}

	find := func(field string) string {
		return s.FindLabeledValue(g, facultyFields[field], personWindow)
	}
	out.EmployeeID = find("employee_id")
	out.Position = find("position")
	out.Specialization = find("specialization")
	out.Education = find("education")
	rawDept := find("department")

	out.Department = inferDepartment(rawDept, out.Position, out.Specialization)
	return out, true
}

// inferDepartment classifies the concatenated position, specialization and
// department text; when the classifier lands on UNKNOWN the raw department
// string present on the sheet is standardized and used as-is.
func inferDepartment(rawDept string, hints ...string) string {
	text := strings.TrimSpace(strings.Join(append(hints, rawDept), " "))
	if dept := classify.Department(text); dept != string(constants.DeptUnknown) {
		return dept
	}
	if rawDept != "" {
		return classify.StandardizeDepartment(rawDept)
	}
	return ""
}
