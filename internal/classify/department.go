package classify

import (
	"strings"

	"github.com/jdelacruz-io/campus-records/constants"
)

// departmentSets vote academic free text (position, specialization, program
// names) into a department code. Order matters for tie-breaks.
var departmentSets = []KeywordSet{
	{Code: string(constants.DeptCCS), Keywords: []string{
		"COMPUTER", "INFORMATION TECHNOLOGY", "INFORMATION SYSTEM",
		"SOFTWARE", "PROGRAMMING", "DATA SCIENCE", "COMPUTING",
	}},
	{Code: string(constants.DeptCHTM), Keywords: []string{
		"HOSPITALITY", "TOURISM MANAGEMENT", "TOURISM", "HOTEL", "RESTAURANT",
		"CULINARY", "TRAVEL",
	}},
	{Code: string(constants.DeptCBA), Keywords: []string{
		"BUSINESS", "ACCOUNTANCY", "ACCOUNTING", "MANAGEMENT", "MARKETING",
		"FINANCE", "ENTREPRENEUR", "ECONOMICS",
	}},
	{Code: string(constants.DeptCTE), Keywords: []string{
		"EDUCATION", "TEACHING", "ELEMENTARY", "SECONDARY", "PEDAGOGY",
	}},
	{Code: string(constants.DeptCOE), Keywords: []string{
		"ENGINEERING", "CIVIL", "ELECTRICAL", "MECHANICAL", "ELECTRONICS",
	}},
	{Code: string(constants.DeptCON), Keywords: []string{
		"NURSING", "NURSE", "MIDWIFERY", "HEALTH CARE",
	}},
	{Code: string(constants.DeptCAS), Keywords: []string{
		"ARTS", "SCIENCES", "PSYCHOLOGY", "COMMUNICATION", "ENGLISH",
		"MATHEMATICS", "BIOLOGY", "POLITICAL SCIENCE",
	}},
}

// departmentPrefixes back up the keyword sets with program-code prefixes.
var departmentPrefixes = []PrefixRule{
	{Prefix: "CS", Code: string(constants.DeptCCS)},
	{Prefix: "IT", Code: string(constants.DeptCCS)},
	{Prefix: "IS", Code: string(constants.DeptCCS)},
	{Prefix: "BSCS", Code: string(constants.DeptCCS)},
	{Prefix: "BSIT", Code: string(constants.DeptCCS)},
	{Prefix: "HM", Code: string(constants.DeptCHTM)},
	{Prefix: "TM", Code: string(constants.DeptCHTM)},
	{Prefix: "BSBA", Code: string(constants.DeptCBA)},
	{Prefix: "BSA", Code: string(constants.DeptCBA)},
	{Prefix: "BEED", Code: string(constants.DeptCTE)},
	{Prefix: "BSED", Code: string(constants.DeptCTE)},
	{Prefix: "BSN", Code: string(constants.DeptCON)},
	{Prefix: "BSCE", Code: string(constants.DeptCOE)},
	{Prefix: "BSEE", Code: string(constants.DeptCOE)},
	{Prefix: "ENGR", Code: string(constants.DeptCOE)},
}

// Department classifies free text into an academic department code.
func Department(text string) string {
	return Classify(text, departmentSets, departmentPrefixes, string(constants.DeptUnknown))
}

// adminSets vote a position title into an administrative role category.
// The generic ADMIN bucket is the fallback, not a keyword set of its own.
var adminSets = []KeywordSet{
	{Code: string(constants.AdminBoard), Keywords: []string{
		"BOARD OF TRUSTEES", "BOARD OF DIRECTORS", "BOARD MEMBER",
		"TRUSTEE", "REGENT", "CHAIRMAN", "CHAIRPERSON",
	}},
	{Code: string(constants.AdminSchoolAdmin), Keywords: []string{
		"PRESIDENT", "VICE PRESIDENT", "CHANCELLOR", "DEAN", "PRINCIPAL",
		"REGISTRAR", "DIRECTOR", "SCHOOL ADMINISTRATOR", "HEAD",
	}},
}

// AdminType classifies a position title into BOARD, SCHOOL_ADMIN or the
// generic ADMIN bucket.
func AdminType(text string) string {
	return Classify(text, adminSets, nil, string(constants.AdminGeneral))
}

// subjectTypeSets normalize the free-text type column of curriculum tables.
var subjectTypeSets = []KeywordSet{
	{Code: "Major", Keywords: []string{"MAJOR", "PROFESSIONAL"}},
	{Code: "Elective", Keywords: []string{"ELECTIVE"}},
	{Code: "General Education", Keywords: []string{"GENERAL EDUCATION", "GEN ED", "GE"}},
	{Code: "Laboratory", Keywords: []string{"LABORATORY", "LAB"}},
	{Code: "Physical Education", Keywords: []string{"PHYSICAL EDUCATION", "PE", "PATHFIT"}},
	{Code: "NSTP", Keywords: []string{"NSTP", "CWTS", "ROTC"}},
}

// SubjectType normalizes a curriculum type cell; unrecognized values fall
// through to the empty string so callers can apply their passthrough rule.
func SubjectType(text string) string {
	return Classify(text, subjectTypeSets, nil, "")
}

// departmentAliases standardizes free-text department names onto canonical
// codes. First matching key wins; order is significant because several
// entries share substrings.
var departmentAliases = []struct {
	Substr string
	Code   string
}{
	{"COLLEGE OF COMPUTER STUDIES", string(constants.DeptCCS)},
	{"COMPUTER STUDIES", string(constants.DeptCCS)},
	{"INFORMATION TECHNOLOGY", string(constants.DeptCCS)},
	{"COLLEGE OF HOSPITALITY", string(constants.DeptCHTM)},
	{"HOSPITALITY AND TOURISM", string(constants.DeptCHTM)},
	{"TOURISM MANAGEMENT", string(constants.DeptCHTM)},
	{"COLLEGE OF BUSINESS", string(constants.DeptCBA)},
	{"BUSINESS ADMINISTRATION", string(constants.DeptCBA)},
	{"ACCOUNTANCY", string(constants.DeptCBA)},
	{"COLLEGE OF TEACHER EDUCATION", string(constants.DeptCTE)},
	{"TEACHER EDUCATION", string(constants.DeptCTE)},
	{"COLLEGE OF EDUCATION", string(constants.DeptCTE)},
	{"COLLEGE OF ENGINEERING", string(constants.DeptCOE)},
	{"ENGINEERING", string(constants.DeptCOE)},
	{"COLLEGE OF NURSING", string(constants.DeptCON)},
	{"NURSING", string(constants.DeptCON)},
	{"COLLEGE OF ARTS AND SCIENCES", string(constants.DeptCAS)},
	{"ARTS AND SCIENCES", string(constants.DeptCAS)},
	{"LIBERAL ARTS", string(constants.DeptCAS)},
}

// StandardizeDepartment resolves a free-text department name to a canonical
// code, falling through to an upper-cased passthrough when nothing matches.
func StandardizeDepartment(text string) string {
	t := strings.ToUpper(strings.TrimSpace(text))
	if t == "" {
		return ""
	}
	for _, a := range departmentAliases {
		if strings.Contains(t, a.Substr) {
			return a.Code
		}
	}
	return t
}
