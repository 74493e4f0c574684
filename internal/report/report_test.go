package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdelacruz-io/campus-records/internal/extract"
)

func sampleCurriculum() extract.Curriculum {
	sub := extract.Subject{
		YearLevel: "1", Semester: "1st Semester",
		SubjectCode: "CS101", SubjectName: "Intro To Computing",
		Type: "Major", HoursPerWeek: "3", Units: "3",
	}
	return extract.Curriculum{
		Program:     "BS Computer Science",
		ProgramCode: "BSCS",
		Department:  "CCS",
		Subjects:    []extract.Subject{sub},
		Years: []extract.YearGroup{{
			YearLevel: "1",
			Semesters: []extract.SemesterGroup{{
				Semester: "1st Semester",
				Subjects: []extract.Subject{sub},
			}},
		}},
	}
}

func TestCurriculumReport(t *testing.T) {
	got := Curriculum(sampleCurriculum())

	assert.True(t, strings.HasPrefix(got, "CURRICULUM\n"))
	assert.Contains(t, got, "Program         : BS Computer Science\n")
	assert.Contains(t, got, "Year 1 - 1st Semester\n")
	assert.Contains(t, got, "CS101        | Intro To Computing                       | 3 units\n")
}

func TestCurriculumReportDeterministic(t *testing.T) {
	assert.Equal(t, Curriculum(sampleCurriculum()), Curriculum(sampleCurriculum()))
}

func TestStudentReportOmitsEmptyFields(t *testing.T) {
	var s extract.StudentInfo
	s.Surname = "Dela Cruz"
	s.FirstName = "Juan"
	s.Course = "BSIT"

	got := Student(s)
	assert.Contains(t, got, "Surname         : Dela Cruz\n")
	assert.Contains(t, got, "Course          : BSIT\n")
	assert.NotContains(t, got, "Guardian")
	assert.NotContains(t, got, "Section")
}

func TestDutyScheduleReport(t *testing.T) {
	d := extract.DutySchedule{
		Name: "Pedro Penduko",
		Days: []extract.DayGroup{{
			Day: "Monday",
			Entries: []extract.DutyEntry{
				{Day: "Monday", Time: "8:00 AM", Assignment: "Gate A"},
				{Day: "Monday", Time: "1:00 PM", Assignment: "Gate B"},
			},
		}},
	}
	got := DutySchedule(d)
	assert.Contains(t, got, "\nMonday\n")
	assert.Contains(t, got, "8:00 AM      | Gate A\n")
	assert.Contains(t, got, "1:00 PM      | Gate B\n")
}

func TestAdminReportRelations(t *testing.T) {
	var a extract.AdminInfo
	a.Surname = "Reyes"
	a.FirstName = "Maria"
	a.AdminType = "ADMIN"
	a.Father = extract.Relation{Name: "Jose Reyes", Occupation: "Farmer"}

	got := Admin(a)
	assert.Contains(t, got, "Father          : Jose Reyes |  | Farmer\n")
	assert.NotContains(t, got, "Mother")
	assert.NotContains(t, got, "Spouse")
}

func TestGeneralInfoReport(t *testing.T) {
	g := extract.GeneralInfo{
		Type:       "objectives",
		Objectives: []string{"First objective", "Second objective"},
	}
	got := GeneralInfo(g)
	assert.Contains(t, got, "OBJECTIVES\n")
	assert.Contains(t, got, "1. First objective\n")
	assert.Contains(t, got, "2. Second objective\n")
}

func TestResumeReportLists(t *testing.T) {
	var r extract.ResumeInfo
	r.Surname = "Reyes"
	r.FirstName = "Maria"
	r.Skills = []string{"Java", "SQL"}

	got := Resume(r)
	assert.Contains(t, got, "SKILLS\n")
	assert.Contains(t, got, "- Java\n")
	assert.Contains(t, got, "- SQL\n")
}
