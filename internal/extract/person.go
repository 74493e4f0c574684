package extract

import (
	"strings"

	"github.com/jdelacruz-io/campus-records/internal/grid"
)

// personFields are the labeled fields shared by every personal-info sheet.
var personFields = grid.FieldMap{
	"full_name":      {"FULL NAME", "COMPLETE NAME", "NAME"},
	"surname":        {"SURNAME", "LAST NAME", "FAMILY NAME"},
	"first_name":     {"FIRST NAME", "GIVEN NAME"},
	"middle_name":    {"MIDDLE NAME", "MIDDLE INITIAL"},
	"birth_date":     {"DATE OF BIRTH", "BIRTHDATE", "BIRTH DATE", "DOB"},
	"birth_place":    {"PLACE OF BIRTH", "BIRTHPLACE"},
	"gender":         {"GENDER", "SEX"},
	"civil_status":   {"CIVIL STATUS", "MARITAL STATUS"},
	"nationality":    {"NATIONALITY", "CITIZENSHIP"},
	"address":        {"HOME ADDRESS", "ADDRESS", "RESIDENCE"},
	"contact_number": {"CONTACT NUMBER", "CONTACT NO", "MOBILE NUMBER", "MOBILE NO", "CELLPHONE", "PHONE"},
	"email":          {"EMAIL ADDRESS", "EMAIL", "E-MAIL"},
}

// personWindow bounds the label pass on personal-info sheets.
var personWindow = grid.Window{MaxRows: 60, MaxCols: 10}

// extractPerson runs the shared label pass. When no split name fields
// resolve, a Full Name label is split on comma (else whitespace, last token
// as surname).
func extractPerson(g grid.Grid, s grid.Scanner) PersonInfo {
	var p PersonInfo
	find := func(field string) string {
		return s.FindLabeledValue(g, personFields[field], personWindow)
	}

	setOnce(&p.Surname, find("surname"))
	setOnce(&p.FirstName, find("first_name"))
	setOnce(&p.MiddleName, find("middle_name"))
	if p.Surname == "" && p.FirstName == "" {
		if full := find("full_name"); full != "" {
			sur, first, middle := SplitFullName(full)
			setOnce(&p.Surname, sur)
			setOnce(&p.FirstName, first)
			setOnce(&p.MiddleName, middle)
		}
	}

	setOnce(&p.BirthDate, find("birth_date"))
	setOnce(&p.BirthPlace, find("birth_place"))
	setOnce(&p.Gender, find("gender"))
	setOnce(&p.CivilStatus, find("civil_status"))
	setOnce(&p.Nationality, find("nationality"))
	setOnce(&p.Address, find("address"))
	setOnce(&p.ContactNumber, find("contact_number"))
	setOnce(&p.Email, find("email"))
	return p
}

// hasName is the validity gate: a sheet that resolves neither surname nor
// first name is not a person record.
func (p PersonInfo) hasName() bool {
	return p.Surname != "" || p.FirstName != ""
}

// relation keywords checked against first-column cells.
var relationKeywords = []struct {
	key  string
	word string
}{
	{"father", "FATHER"},
	{"mother", "MOTHER"},
	{"spouse", "SPOUSE"},
}

var relationDOBLabels = []string{"DATE OF BIRTH", "BIRTHDATE", "BIRTH DATE", "DOB"}
var relationOccLabels = []string{"OCCUPATION", "WORK", "PROFESSION"}

// extractRelations attributes family-member name/DOB/occupation lines.
// Relation name labels carry their own keyword ("FATHER'S NAME"); bare DOB
// and occupation labels are attributed by inspecting the first-column text of
// the one or two rows immediately above for a relation keyword. This is a
// known-fragile layout heuristic and is deliberately not widened.
func extractRelations(g grid.Grid, s grid.Scanner) (father, mother, spouse Relation) {
	pick := func(key string) *Relation {
		switch key {
		case "father":
			return &father
		case "mother":
			return &mother
		default:
			return &spouse
		}
	}

	relationAbove := func(row int) string {
		for back := 1; back <= 2; back++ {
			cell := strings.ToUpper(g.Cell(row-back, 0))
			if cell == "" {
				continue
			}
			for _, rk := range relationKeywords {
				if strings.Contains(cell, rk.word) {
					return rk.key
				}
			}
		}
		return ""
	}

	maxRows := min(personWindow.MaxRows, g.NumRows())
	for row := 0; row < maxRows; row++ {
		cell := g.Cell(row, 0)
		if cell == "" {
			continue
		}
		upper := strings.ToUpper(cell)

		// relation name rows name their relation inline
		for _, rk := range relationKeywords {
			if !strings.Contains(upper, rk.word) {
				continue
			}
			rel := pick(rk.key)
			if v := s.ResolveValueAt(g, row, 0); v != "" && strings.Contains(upper, "NAME") {
				setOnce(&rel.Name, v)
			} else if v != "" && upper == rk.word {
				// a bare "FATHER" block header with an adjacent value
				setOnce(&rel.Name, v)
			}
			break
		}

		// bare DOB / occupation rows belong to the relation named just above
		if matchesAny(cell, relationDOBLabels) {
			if key := relationAbove(row); key != "" {
				setOnce(&pick(key).BirthDate, s.ResolveValueAt(g, row, 0))
			}
		}
		if matchesAny(cell, relationOccLabels) {
			if key := relationAbove(row); key != "" {
				setOnce(&pick(key).Occupation, s.ResolveValueAt(g, row, 0))
			}
		}
	}
	return father, mother, spouse
}

func matchesAny(cell string, labels []string) bool {
	for _, l := range labels {
		if grid.MatchesLabel(cell, l) {
			return true
		}
	}
	return false
}
