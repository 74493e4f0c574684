package extract

import (
	"github.com/jdelacruz-io/campus-records/constants"
	"github.com/jdelacruz-io/campus-records/internal/classify"
	"github.com/jdelacruz-io/campus-records/internal/grid"
)

// adminFields extend the shared person pass for administrative staff.
var adminFields = grid.FieldMap{
	"position":   {"POSITION", "DESIGNATION", "ROLE", "JOB TITLE"},
	"department": {"DEPARTMENT", "OFFICE", "UNIT", "DIVISION"},
}

// ExtractAdmin parses an administrative-staff sheet, including the family
// block with its positional relation attribution. The second return is false
// when no name resolved.
//
// The stored department is derived from the classified admin type (a board
// member files under BOARD regardless of the sheet's department cell); only
// when classification falls through to the generic bucket is the raw
// department text standardized and used instead.
func ExtractAdmin(g grid.Grid) (AdminInfo, bool) {
	s := grid.Scanner{Lexicon: grid.NewLexicon(personFields, adminFields)}

	var out AdminInfo
	out.PersonInfo = extractPerson(g, s)
	if !out.hasName() {
		return AdminInfo{}, false
	}

	find := func(field string) string {
		return s.FindLabeledValue(g, adminFields[field], personWindow)
	}
	out.Position = find("position")
	rawDept := find("department")

	out.AdminType = classify.AdminType(out.Position)
	switch out.AdminType {
	case string(constants.AdminBoard):
		out.Department = string(constants.AdminBoard)
	case string(constants.AdminSchoolAdmin):
		out.Department = string(constants.AdminSchoolAdmin)
	default:
		if rawDept != "" {
			out.Department = classify.StandardizeDepartment(rawDept)
		}
	}

	out.Father, out.Mother, out.Spouse = extractRelations(g, s)
	return out, true
}
