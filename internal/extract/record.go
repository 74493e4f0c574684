// Package extract houses the heuristic field extractors that turn raw cell
// grids and raw document text into normalized records. Every extractor is a
// pure function of its inputs: no state survives between documents and
// concurrent calls over different documents are safe.
package extract

import "strings"

// Subject is one curriculum row matched to a header-mapped column set.
// YearLevel and Semester are inherited forward from the most recent explicit
// marker row rather than read per row.
type Subject struct {
	YearLevel    string `json:"year_level" bson:"year_level"`
	Semester     string `json:"semester" bson:"semester"`
	SubjectCode  string `json:"subject_code" bson:"subject_code"`
	SubjectName  string `json:"subject_name" bson:"subject_name"`
	Type         string `json:"type" bson:"type"`
	HoursPerWeek string `json:"hours_per_week" bson:"hours_per_week"`
	Units        string `json:"units" bson:"units"`
}

// SemesterGroup holds the subjects of one semester within a year level.
type SemesterGroup struct {
	Semester string    `json:"semester" bson:"semester"`
	Subjects []Subject `json:"subjects" bson:"subjects"`
}

// YearGroup holds the semester groupings of one year level.
type YearGroup struct {
	YearLevel string          `json:"year_level" bson:"year_level"`
	Semesters []SemesterGroup `json:"semesters" bson:"semesters"`
}

// Curriculum is the normalized payload of a curriculum table.
type Curriculum struct {
	Program     string      `json:"program" bson:"program"`
	ProgramCode string      `json:"program_code" bson:"program_code"`
	Department  string      `json:"department" bson:"department"`
	Subjects    []Subject   `json:"all_subjects" bson:"all_subjects"`
	Years       []YearGroup `json:"years" bson:"years"`
}

// ClassEntry is one row of a Certificate of Registration schedule table.
type ClassEntry struct {
	SubjectCode string `json:"subject_code" bson:"subject_code"`
	Description string `json:"description" bson:"description"`
	Units       string `json:"units" bson:"units"`
	Time        string `json:"time" bson:"time"`
	Day         string `json:"day" bson:"day"`
	Room        string `json:"room" bson:"room"`
}

// CORSchedule is the normalized payload of a Certificate of Registration.
type CORSchedule struct {
	StudentName string       `json:"student_name" bson:"student_name"`
	StudentID   string       `json:"student_id" bson:"student_id"`
	Course      string       `json:"course" bson:"course"`
	YearLevel   string       `json:"year_level" bson:"year_level"`
	Section     string       `json:"section" bson:"section"`
	Semester    string       `json:"semester" bson:"semester"`
	SchoolYear  string       `json:"school_year" bson:"school_year"`
	Classes     []ClassEntry `json:"classes" bson:"classes"`
}

// DutyEntry is one reconstructed cell of a time-by-day duty matrix.
type DutyEntry struct {
	Day        string `json:"day" bson:"day"`
	Time       string `json:"time" bson:"time"`
	Assignment string `json:"assignment" bson:"assignment"`
}

// DayGroup holds the time-sorted duties of a single day.
type DayGroup struct {
	Day     string      `json:"day" bson:"day"`
	Entries []DutyEntry `json:"entries" bson:"entries"`
}

// DutySchedule is the normalized payload of a non-teaching duty schedule.
type DutySchedule struct {
	Name       string      `json:"name" bson:"name"`
	Department string      `json:"department" bson:"department"`
	Position   string      `json:"position" bson:"position"`
	Entries    []DutyEntry `json:"entries" bson:"entries"`
	Days       []DayGroup  `json:"days" bson:"days"`
}

// PersonInfo carries the labeled fields shared by every personal-info
// extractor. Fields resolve at most once; the first hit wins.
type PersonInfo struct {
	Surname       string `json:"surname" bson:"surname"`
	FirstName     string `json:"first_name" bson:"first_name"`
	MiddleName    string `json:"middle_name,omitempty" bson:"middle_name,omitempty"`
	BirthDate     string `json:"birth_date,omitempty" bson:"birth_date,omitempty"`
	BirthPlace    string `json:"birth_place,omitempty" bson:"birth_place,omitempty"`
	Gender        string `json:"gender,omitempty" bson:"gender,omitempty"`
	CivilStatus   string `json:"civil_status,omitempty" bson:"civil_status,omitempty"`
	Nationality   string `json:"nationality,omitempty" bson:"nationality,omitempty"`
	Address       string `json:"address,omitempty" bson:"address,omitempty"`
	ContactNumber string `json:"contact_number,omitempty" bson:"contact_number,omitempty"`
	Email         string `json:"email,omitempty" bson:"email,omitempty"`
}

// FullName renders "First Middle Surname" from the resolved parts.
func (p PersonInfo) FullName() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.FirstName, p.MiddleName, p.Surname} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// StudentInfo is the normalized payload of a student record sheet.
type StudentInfo struct {
	PersonInfo `bson:",inline"`
	StudentID  string `json:"student_id,omitempty" bson:"student_id,omitempty"`
	Course     string `json:"course,omitempty" bson:"course,omitempty"`
	YearLevel  string `json:"year_level,omitempty" bson:"year_level,omitempty"`
	Section    string `json:"section,omitempty" bson:"section,omitempty"`
	Guardian   string `json:"guardian,omitempty" bson:"guardian,omitempty"`
	Department string `json:"department,omitempty" bson:"department,omitempty"`
}

// FacultyInfo is the normalized payload of a teaching-staff record sheet.
type FacultyInfo struct {
	PersonInfo     `bson:",inline"`
	EmployeeID     string `json:"employee_id,omitempty" bson:"employee_id,omitempty"`
	Position       string `json:"position,omitempty" bson:"position,omitempty"`
	Specialization string `json:"specialization,omitempty" bson:"specialization,omitempty"`
	Education      string `json:"education,omitempty" bson:"education,omitempty"`
	Department     string `json:"department,omitempty" bson:"department,omitempty"`
}

// Relation is a named family member with the fields attributed to them by
// the positional disambiguation pass.
type Relation struct {
	Name       string `json:"name,omitempty" bson:"name,omitempty"`
	BirthDate  string `json:"birth_date,omitempty" bson:"birth_date,omitempty"`
	Occupation string `json:"occupation,omitempty" bson:"occupation,omitempty"`
}

// AdminInfo is the normalized payload of an administrative-staff sheet.
type AdminInfo struct {
	PersonInfo `bson:",inline"`
	Position   string   `json:"position,omitempty" bson:"position,omitempty"`
	AdminType  string   `json:"admin_type" bson:"admin_type"`
	Department string   `json:"department,omitempty" bson:"department,omitempty"`
	Father     Relation `json:"father,omitempty" bson:"father,omitempty"`
	Mother     Relation `json:"mother,omitempty" bson:"mother,omitempty"`
	Spouse     Relation `json:"spouse,omitempty" bson:"spouse,omitempty"`
}

// NonTeachingInfo is the normalized payload of a non-teaching-staff sheet.
type NonTeachingInfo struct {
	PersonInfo `bson:",inline"`
	EmployeeID string `json:"employee_id,omitempty" bson:"employee_id,omitempty"`
	Position   string `json:"position,omitempty" bson:"position,omitempty"`
	Office     string `json:"office,omitempty" bson:"office,omitempty"`
	Department string `json:"department,omitempty" bson:"department,omitempty"`
}

// GeneralInfo is the normalized payload of an institutional text document.
type GeneralInfo struct {
	Type       string   `json:"type" bson:"type"`
	Mission    string   `json:"mission,omitempty" bson:"mission,omitempty"`
	Vision     string   `json:"vision,omitempty" bson:"vision,omitempty"`
	Objectives []string `json:"objectives,omitempty" bson:"objectives,omitempty"`
	CoreValues []string `json:"core_values,omitempty" bson:"core_values,omitempty"`
	Content    string   `json:"content,omitempty" bson:"content,omitempty"`
}

// ResumeInfo is the normalized payload of a resume or CV text.
type ResumeInfo struct {
	PersonInfo `bson:",inline"`
	Objective  string   `json:"objective,omitempty" bson:"objective,omitempty"`
	Education  []string `json:"education,omitempty" bson:"education,omitempty"`
	Experience []string `json:"experience,omitempty" bson:"experience,omitempty"`
	Skills     []string `json:"skills,omitempty" bson:"skills,omitempty"`
	Department string   `json:"department,omitempty" bson:"department,omitempty"`
}

// setOnce assigns v to dst only when dst is still empty and v is non-empty.
func setOnce(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}
