package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Juan Santos Dela Cruz
Email Address: juan.delacruz@example.com
Contact Number: 09171234567
Address: Dagupan City, Pangasinan

CAREER OBJECTIVE: To work as a software developer in a dynamic team.

EDUCATIONAL BACKGROUND
BS Information Technology, PHINMA University of Pangasinan
Dagupan City National High School

WORK EXPERIENCE
Intern, MIS Office

SKILLS
Java, Python; SQL
Communication`

func TestExtractResume(t *testing.T) {
	out, ok := ExtractResume(sampleResume, "/docs/resume.pdf")
	require.True(t, ok)

	assert.Equal(t, "Dela Cruz", out.Surname)
	assert.Equal(t, "Juan", out.FirstName)
	assert.Equal(t, "Santos", out.MiddleName)
	assert.Equal(t, "juan.delacruz@example.com", out.Email)
	assert.Equal(t, "09171234567", out.ContactNumber)
	assert.Equal(t, "Dagupan City, Pangasinan", out.Address)
	assert.Equal(t, "To work as a software developer in a dynamic team.", out.Objective)

	assert.Equal(t, []string{
		"BS Information Technology, PHINMA University of Pangasinan",
		"Dagupan City National High School",
	}, out.Education)
	assert.Equal(t, []string{"Intern, MIS Office"}, out.Experience)
	assert.Equal(t, []string{"Java", "Python", "SQL", "Communication"}, out.Skills)

	assert.Equal(t, "CCS", out.Department, "classified from objective and education text")
}

func TestExtractResumeUnlabeledContacts(t *testing.T) {
	text := "Maria Reyes\nreach me at maria.reyes@example.org or 09181234567\n"
	out, ok := ExtractResume(text, "cv.txt")
	require.True(t, ok)
	assert.Equal(t, "maria.reyes@example.org", out.Email)
	assert.Equal(t, "09181234567", out.ContactNumber)
	assert.Equal(t, "Reyes", out.Surname)
}

func TestExtractResumeNameFromFilename(t *testing.T) {
	text := "OBJECTIVE: to obtain a position\n09171234567"
	out, ok := ExtractResume(text, "/in/juan_reyes.pdf")
	require.True(t, ok)
	assert.Equal(t, "Reyes", out.Surname)
	assert.Equal(t, "Juan", out.FirstName)
}

func TestExtractResumeLongLabelWinsOverShort(t *testing.T) {
	out, ok := ExtractResume("Maria Reyes\nEMAIL ADDRESS: a@b.co\n", "x.txt")
	require.True(t, ok)
	assert.Equal(t, "a@b.co", out.Email)
}

func TestExtractResumeNoName(t *testing.T) {
	_, ok := ExtractResume("...", "....txt")
	assert.False(t, ok)
}
