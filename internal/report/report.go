// Package report renders extracted records as fixed-width plain text.
// Output is deterministic given the record; column widths and section order
// are part of the contract, so exported reports stay byte-comparable.
package report

import (
	"fmt"
	"strings"

	"github.com/jdelacruz-io/campus-records/internal/extract"
)

const rule = "----------------------------------------------------------------"

// Curriculum renders a curriculum record grouped year -> semester, one
// subject per line: code padded to 12, name padded to 40, units.
func Curriculum(c extract.Curriculum) string {
	var b strings.Builder
	writeHeader(&b, "CURRICULUM")
	writeField(&b, "Program", c.Program)
	writeField(&b, "Program Code", c.ProgramCode)
	writeField(&b, "Department", c.Department)
	writeField(&b, "Subjects", fmt.Sprintf("%d", len(c.Subjects)))

	for _, year := range c.Years {
		for _, sem := range year.Semesters {
			fmt.Fprintf(&b, "\nYear %s - %s\n%s\n", year.YearLevel, sem.Semester, rule)
			for _, sub := range sem.Subjects {
				fmt.Fprintf(&b, "%-12s | %-40s | %s units\n", sub.SubjectCode, sub.SubjectName, sub.Units)
			}
		}
	}
	return b.String()
}

// COR renders a Certificate of Registration schedule.
func COR(c extract.CORSchedule) string {
	var b strings.Builder
	writeHeader(&b, "CERTIFICATE OF REGISTRATION")
	writeField(&b, "Student", c.StudentName)
	writeField(&b, "Student No", c.StudentID)
	writeField(&b, "Course", c.Course)
	writeField(&b, "Year/Section", strings.TrimSuffix(c.YearLevel+"-"+c.Section, "-"))
	writeField(&b, "Semester", c.Semester)
	writeField(&b, "School Year", c.SchoolYear)

	if len(c.Classes) > 0 {
		fmt.Fprintf(&b, "\n%-12s | %-32s | %-5s | %-16s | %-12s | %s\n%s\n",
			"CODE", "DESCRIPTION", "UNITS", "TIME", "DAY", "ROOM", rule)
		for _, cl := range c.Classes {
			fmt.Fprintf(&b, "%-12s | %-32s | %-5s | %-16s | %-12s | %s\n",
				cl.SubjectCode, cl.Description, cl.Units, cl.Time, cl.Day, cl.Room)
		}
	}
	return b.String()
}

// DutySchedule renders a non-teaching duty schedule in day order, each day's
// entries already time-sorted by the extractor.
func DutySchedule(d extract.DutySchedule) string {
	var b strings.Builder
	writeHeader(&b, "DUTY SCHEDULE")
	writeField(&b, "Name", d.Name)
	writeField(&b, "Department", d.Department)
	writeField(&b, "Position", d.Position)

	for _, day := range d.Days {
		fmt.Fprintf(&b, "\n%s\n%s\n", day.Day, rule)
		for _, e := range day.Entries {
			fmt.Fprintf(&b, "%-12s | %s\n", e.Time, e.Assignment)
		}
	}
	return b.String()
}

// Student renders a student personal-info record.
func Student(s extract.StudentInfo) string {
	var b strings.Builder
	writeHeader(&b, "STUDENT RECORD")
	writePerson(&b, s.PersonInfo)
	writeField(&b, "Student No", s.StudentID)
	writeField(&b, "Course", s.Course)
	writeField(&b, "Year Level", s.YearLevel)
	writeField(&b, "Section", s.Section)
	writeField(&b, "Guardian", s.Guardian)
	writeField(&b, "Department", s.Department)
	return b.String()
}

// Faculty renders a teaching-staff record.
func Faculty(f extract.FacultyInfo) string {
	var b strings.Builder
	writeHeader(&b, "TEACHING STAFF RECORD")
	writePerson(&b, f.PersonInfo)
	writeField(&b, "Employee No", f.EmployeeID)
	writeField(&b, "Position", f.Position)
	writeField(&b, "Specialization", f.Specialization)
	writeField(&b, "Education", f.Education)
	writeField(&b, "Department", f.Department)
	return b.String()
}

// Admin renders an administrative-staff record with its family block.
func Admin(a extract.AdminInfo) string {
	var b strings.Builder
	writeHeader(&b, "ADMINISTRATIVE STAFF RECORD")
	writePerson(&b, a.PersonInfo)
	writeField(&b, "Position", a.Position)
	writeField(&b, "Admin Type", a.AdminType)
	writeField(&b, "Department", a.Department)
	writeRelation(&b, "Father", a.Father)
	writeRelation(&b, "Mother", a.Mother)
	writeRelation(&b, "Spouse", a.Spouse)
	return b.String()
}

// NonTeaching renders a non-teaching-staff record.
func NonTeaching(n extract.NonTeachingInfo) string {
	var b strings.Builder
	writeHeader(&b, "NON-TEACHING STAFF RECORD")
	writePerson(&b, n.PersonInfo)
	writeField(&b, "Employee No", n.EmployeeID)
	writeField(&b, "Position", n.Position)
	writeField(&b, "Office", n.Office)
	writeField(&b, "Department", n.Department)
	return b.String()
}

// GeneralInfo renders an institutional text record.
func GeneralInfo(g extract.GeneralInfo) string {
	var b strings.Builder
	writeHeader(&b, "GENERAL INFORMATION")
	writeField(&b, "Type", g.Type)
	if g.Mission != "" {
		fmt.Fprintf(&b, "\nMISSION\n%s\n%s\n", rule, g.Mission)
	}
	if g.Vision != "" {
		fmt.Fprintf(&b, "\nVISION\n%s\n%s\n", rule, g.Vision)
	}
	writeList(&b, "OBJECTIVES", g.Objectives, true)
	writeList(&b, "CORE VALUES", g.CoreValues, false)
	if g.Content != "" {
		fmt.Fprintf(&b, "\n%s\n", g.Content)
	}
	return b.String()
}

// Resume renders a resume record.
func Resume(r extract.ResumeInfo) string {
	var b strings.Builder
	writeHeader(&b, "RESUME")
	writePerson(&b, r.PersonInfo)
	writeField(&b, "Objective", r.Objective)
	writeField(&b, "Department", r.Department)
	writeList(&b, "EDUCATION", r.Education, false)
	writeList(&b, "EXPERIENCE", r.Experience, false)
	writeList(&b, "SKILLS", r.Skills, false)
	return b.String()
}

func writeHeader(b *strings.Builder, title string) {
	fmt.Fprintf(b, "%s\n%s\n", title, rule)
}

// writeField emits "Label................: value"; empty values are omitted
// so reports stay compact and still deterministic.
func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%-16s: %s\n", label, value)
}

func writePerson(b *strings.Builder, p extract.PersonInfo) {
	writeField(b, "Surname", p.Surname)
	writeField(b, "First Name", p.FirstName)
	writeField(b, "Middle Name", p.MiddleName)
	writeField(b, "Birth Date", p.BirthDate)
	writeField(b, "Birth Place", p.BirthPlace)
	writeField(b, "Gender", p.Gender)
	writeField(b, "Civil Status", p.CivilStatus)
	writeField(b, "Nationality", p.Nationality)
	writeField(b, "Address", p.Address)
	writeField(b, "Contact No", p.ContactNumber)
	writeField(b, "Email", p.Email)
}

func writeRelation(b *strings.Builder, label string, r extract.Relation) {
	if r.Name == "" && r.BirthDate == "" && r.Occupation == "" {
		return
	}
	fmt.Fprintf(b, "%-16s: %s | %s | %s\n", label, r.Name, r.BirthDate, r.Occupation)
}

func writeList(b *strings.Builder, title string, items []string, numbered bool) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n%s\n", title, rule)
	for i, item := range items {
		if numbered {
			fmt.Fprintf(b, "%d. %s\n", i+1, item)
		} else {
			fmt.Fprintf(b, "- %s\n", item)
		}
	}
}
