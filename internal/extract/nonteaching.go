package extract

import (
	"github.com/jdelacruz-io/campus-records/internal/classify"
	"github.com/jdelacruz-io/campus-records/internal/grid"
)

// nonTeachingFields extend the shared person pass for non-teaching staff.
var nonTeachingFields = grid.FieldMap{
	"employee_id": {"EMPLOYEE NO", "EMPLOYEE NUMBER", "EMPLOYEE ID", "ID NUMBER", "ID NO"},
	"position":    {"POSITION", "DESIGNATION", "JOB TITLE"},
	"office":      {"OFFICE", "OFFICE ASSIGNMENT", "ASSIGNED OFFICE"},
	"department":  {"DEPARTMENT", "UNIT", "DIVISION"},
}

// ExtractNonTeaching parses a non-teaching-staff record sheet. The second
// return is false when no name resolved.
func ExtractNonTeaching(g grid.Grid) (NonTeachingInfo, bool) {
	s := grid.Scanner{Lexicon: grid.NewLexicon(personFields, nonTeachingFields)}

	var out NonTeachingInfo
	out.PersonInfo = extractPerson(g, s)
	if !out.hasName() {
		return NonTeachingInfo{}, false
	}

	find := func(field string) string {
		return s.FindLabeledValue(g, nonTeachingFields[field], personWindow)
	}
	out.EmployeeID = find("employee_id")
	out.Position = find("position")
	out.Office = find("office")
	if dept := find("department"); dept != "" {
		out.Department = classify.StandardizeDepartment(dept)
	} else if out.Office != "" {
		out.Department = classify.StandardizeDepartment(out.Office)
	}
	return out, true
}
