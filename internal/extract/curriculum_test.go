package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelacruz-io/campus-records/internal/grid"
)

func curriculumFixture() grid.Grid {
	return grid.Grid{
		{"BACHELOR OF SCIENCE IN COMPUTER SCIENCE"},
		{},
		{"SUBJECT CODE", "DESCRIPTIVE TITLE", "UNITS", "TYPE"},
		{"FIRST YEAR"},
		{"1ST SEMESTER"},
		{"CS101", "INTRO TO COMPUTING", "3", "Major"},
		{"CS101", "INTRO TO COMPUTING", "3", "Major"}, // duplicated row
		{"CS102", "PROGRAMMING 1", "", ""},
		{"2ND SEMESTER"},
		{"CS103", "DATA STRUCTURES", "3", "Major"},
		{"TOTAL", "", "21"},
		{"SECOND YEAR"},
		{"1ST SEMESTER"},
		{"CS201", "ALGORITHMS", "3", "Major"},
	}
}

func TestExtractCurriculum(t *testing.T) {
	cur := ExtractCurriculum(curriculumFixture())

	assert.Equal(t, "BACHELOR OF SCIENCE IN COMPUTER SCIENCE", cur.Program)
	assert.Equal(t, "BSCS", cur.ProgramCode)
	assert.Equal(t, "CCS", cur.Department)

	require.Len(t, cur.Subjects, 4, "duplicate and footer rows must be dropped")

	first := cur.Subjects[0]
	assert.Equal(t, "1", first.YearLevel)
	assert.Equal(t, "1st Semester", first.Semester)
	assert.Equal(t, "CS101", first.SubjectCode)
	assert.Equal(t, "Intro To Computing", first.SubjectName)
	assert.Equal(t, "3", first.Units)
	assert.Equal(t, "Major", first.Type)

	defaulted := cur.Subjects[1]
	assert.Equal(t, "CS102", defaulted.SubjectCode)
	assert.Equal(t, "3", defaulted.Units, "missing units default")
	assert.Equal(t, "Core", defaulted.Type, "missing type defaults to Core")

	secondSem := cur.Subjects[2]
	assert.Equal(t, "1", secondSem.YearLevel, "year carries across semester change")
	assert.Equal(t, "2nd Semester", secondSem.Semester)

	secondYear := cur.Subjects[3]
	assert.Equal(t, "2", secondYear.YearLevel)
	assert.Equal(t, "1st Semester", secondYear.Semester, "semester resets via explicit marker")
}

func TestExtractCurriculumGrouping(t *testing.T) {
	cur := ExtractCurriculum(curriculumFixture())

	require.Len(t, cur.Years, 2)
	assert.Equal(t, "1", cur.Years[0].YearLevel)
	require.Len(t, cur.Years[0].Semesters, 2)
	assert.Equal(t, "1st Semester", cur.Years[0].Semesters[0].Semester)
	assert.Len(t, cur.Years[0].Semesters[0].Subjects, 2)
	assert.Equal(t, "2nd Semester", cur.Years[0].Semesters[1].Semester)
	assert.Equal(t, "2", cur.Years[1].YearLevel)
}

func TestExtractCurriculumIsIdempotent(t *testing.T) {
	a := ExtractCurriculum(curriculumFixture())
	b := ExtractCurriculum(curriculumFixture())
	assert.Equal(t, a, b)
}

func TestExtractCurriculumHeaderThreshold(t *testing.T) {
	// two recognizable columns are not enough to accept a header row
	g := grid.Grid{
		{"SUBJECT CODE", "UNITS"},
		{"CS101", "3"},
	}
	cur := ExtractCurriculum(g)
	assert.Empty(t, cur.Subjects)

	g = grid.Grid{
		{"SUBJECT CODE", "DESCRIPTIVE TITLE", "UNITS"},
		{"CS101", "INTRO TO COMPUTING", "3"},
	}
	cur = ExtractCurriculum(g)
	require.Len(t, cur.Subjects, 1)
}

func TestExtractCurriculumDefaultsWithoutMarkers(t *testing.T) {
	g := grid.Grid{
		{"SUBJECT CODE", "DESCRIPTIVE TITLE", "UNITS"},
		{"CS101", "INTRO TO COMPUTING", "3"},
	}
	cur := ExtractCurriculum(g)
	require.Len(t, cur.Subjects, 1)
	assert.Equal(t, "1", cur.Subjects[0].YearLevel)
	assert.Equal(t, "1st Semester", cur.Subjects[0].Semester)
}

func TestExtractCurriculumEmptyGrid(t *testing.T) {
	cur := ExtractCurriculum(grid.Grid{})
	assert.Empty(t, cur.Subjects)
	assert.Empty(t, cur.Years)
	assert.Equal(t, "", cur.Program)
}

func TestExtractCurriculumMappedYearColumn(t *testing.T) {
	// with mapped year/semester columns even terse markers advance the state
	g := grid.Grid{
		{"YEAR", "SEM", "SUBJECT CODE", "DESCRIPTIVE TITLE", "UNITS"},
		{"1st", "1st", "CS101", "INTRO TO COMPUTING", "3"},
		{"2nd", "2nd", "CS201", "ALGORITHMS", "3"},
	}
	cur := ExtractCurriculum(g)
	require.Len(t, cur.Subjects, 2)
	assert.Equal(t, "1", cur.Subjects[0].YearLevel)
	assert.Equal(t, "1st Semester", cur.Subjects[0].Semester)
	assert.Equal(t, "2", cur.Subjects[1].YearLevel)
	assert.Equal(t, "2nd Semester", cur.Subjects[1].Semester)
}
