package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelacruz-io/campus-records/internal/grid"
)

func TestExtractStudent(t *testing.T) {
	g := grid.Grid{
		{"STUDENT INFORMATION SHEET"},
		{"SURNAME:", "Dela Cruz"},
		{"FIRST NAME:", "Juan"},
		{"MIDDLE NAME:", "Santos"},
		{"DATE OF BIRTH:", "2004-05-01"},
		{"GENDER:", "Male"},
		{"STUDENT NO:", "2024-00123"},
		{"COURSE:", "BS Computer Science"},
		{"YEAR LEVEL:", "2nd Year"},
		{"GUARDIAN:", "Maria Dela Cruz"},
	}

	s, ok := ExtractStudent(g)
	require.True(t, ok)
	assert.Equal(t, "Dela Cruz", s.Surname)
	assert.Equal(t, "Juan", s.FirstName)
	assert.Equal(t, "Santos", s.MiddleName)
	assert.Equal(t, "2004-05-01", s.BirthDate)
	assert.Equal(t, "Male", s.Gender)
	assert.Equal(t, "2024-00123", s.StudentID)
	assert.Equal(t, "BS Computer Science", s.Course)
	assert.Equal(t, "2", s.YearLevel)
	assert.Equal(t, "Maria Dela Cruz", s.Guardian)
	assert.Equal(t, "CCS", s.Department, "department classified from the course")
	assert.Equal(t, "Juan Santos Dela Cruz", s.FullName())
}

func TestExtractStudentFullNameFallback(t *testing.T) {
	g := grid.Grid{
		{"FULL NAME:", "Dela Cruz, Juan Santos"},
		{"STUDENT NO:", "2024-00123"},
	}
	s, ok := ExtractStudent(g)
	require.True(t, ok)
	assert.Equal(t, "Dela Cruz", s.Surname)
	assert.Equal(t, "Juan", s.FirstName)
	assert.Equal(t, "Santos", s.MiddleName)
}

func TestExtractStudentRequiresName(t *testing.T) {
	g := grid.Grid{
		{"STUDENT NO:", "2024-00123"},
		{"COURSE:", "BSIT"},
	}
	_, ok := ExtractStudent(g)
	assert.False(t, ok, "a sheet without any name is not a student record")
}

func TestExtractFaculty(t *testing.T) {
	g := grid.Grid{
		{"SURNAME:", "Reyes"},
		{"FIRST NAME:", "Maria"},
		{"POSITION:", "Associate Professor"},
		{"SPECIALIZATION:", "Software Engineering"},
		{"DEPARTMENT:", "College of Computer Studies"},
	}
	f, ok := ExtractFaculty(g)
	require.True(t, ok)
	assert.Equal(t, "Reyes", f.Surname)
	assert.Equal(t, "Associate Professor", f.Position)
	assert.Equal(t, "CCS", f.Department)
}

func TestExtractFacultyDepartmentFromSpecialization(t *testing.T) {
	g := grid.Grid{
		{"SURNAME:", "Reyes"},
		{"FIRST NAME:", "Maria"},
		{"SPECIALIZATION:", "Pediatric Nursing"},
	}
	f, ok := ExtractFaculty(g)
	require.True(t, ok)
	assert.Equal(t, "CON", f.Department, "specialization classifies when no department label exists")
}

func TestExtractAdminTypeRouting(t *testing.T) {
	tests := []struct {
		name     string
		position string
		dept     string
		wantType string
		wantDept string
	}{
		{"board member", "Member, Board of Trustees", "College of Computer Studies", "BOARD", "BOARD"},
		{"school admin", "Vice President for Finance", "College of Business Administration", "SCHOOL_ADMIN", "SCHOOL_ADMIN"},
		{"generic admin keeps department", "Office Aide", "College of Computer Studies", "ADMIN", "CCS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.Grid{
				{"SURNAME:", "Reyes"},
				{"FIRST NAME:", "Maria"},
				{"POSITION:", tt.position},
				{"DEPARTMENT:", tt.dept},
			}
			a, ok := ExtractAdmin(g)
			require.True(t, ok)
			assert.Equal(t, tt.wantType, a.AdminType)
			assert.Equal(t, tt.wantDept, a.Department)
		})
	}
}

func TestExtractAdminRelations(t *testing.T) {
	g := grid.Grid{
		{"SURNAME:", "Reyes"},
		{"FIRST NAME:", "Maria"},
		{"POSITION:", "Registrar"},
		{"FATHER'S NAME:", "Jose Reyes"},
		{"DATE OF BIRTH:", "1960-01-15"},
		{"OCCUPATION:", "Farmer"},
		{"MOTHER'S NAME:", "Ana Reyes"},
		{"OCCUPATION:", "Teacher"},
	}
	a, ok := ExtractAdmin(g)
	require.True(t, ok)

	assert.Equal(t, "Jose Reyes", a.Father.Name)
	assert.Equal(t, "1960-01-15", a.Father.BirthDate)
	assert.Equal(t, "Farmer", a.Father.Occupation)
	assert.Equal(t, "Ana Reyes", a.Mother.Name)
	assert.Equal(t, "Teacher", a.Mother.Occupation)
	assert.Equal(t, "", a.Spouse.Name)
}

func TestExtractAdminRelationTooFarAbove(t *testing.T) {
	g := grid.Grid{
		{"SURNAME:", "Reyes"},
		{"FIRST NAME:", "Maria"},
		{"FATHER'S NAME:", "Jose Reyes"},
		{"ADDRESS:", "Dagupan City"},
		{"CONTACT NUMBER:", "09171234567"},
		{"OCCUPATION:", "Farmer"},
	}
	a, ok := ExtractAdmin(g)
	require.True(t, ok)
	assert.Equal(t, "Jose Reyes", a.Father.Name)
	assert.Equal(t, "", a.Father.Occupation,
		"an occupation more than two rows below the relation is not attributed")
}

func TestExtractNonTeaching(t *testing.T) {
	g := grid.Grid{
		{"SURNAME:", "Penduko"},
		{"FIRST NAME:", "Pedro"},
		{"POSITION:", "Security Guard"},
		{"OFFICE:", "Security Office"},
	}
	n, ok := ExtractNonTeaching(g)
	require.True(t, ok)
	assert.Equal(t, "Pedro", n.FirstName)
	assert.Equal(t, "Security Guard", n.Position)
	assert.Equal(t, "SECURITY OFFICE", n.Department, "office standardizes as the department fallback")
}
