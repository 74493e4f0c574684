package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"INTRODUCTION TO COMPUTING", "Introduction To Computing"},
		{"INTRO TO COMPUTING", "Intro To Computing"},
		{"intro to computing", "Intro To Computing"},
		{"NSTP 1", "NSTP 1"},
		{"  padded   text ", "Padded Text"},
		{"PE 1", "PE 1"},
		{"GE 5 ethics", "GE 5 Ethics"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in), tt.in)
	}
}

func TestCleanSubjectCode(t *testing.T) {
	assert.Equal(t, "CS101", cleanSubjectCode(" cs 101 "))
	assert.Equal(t, "IT-201", cleanSubjectCode("IT-201"))
	assert.Equal(t, "GE5", cleanSubjectCode("GE 5*"))
	assert.Equal(t, "", cleanSubjectCode("x"))
	assert.Equal(t, "", cleanSubjectCode(""))
	assert.Equal(t, "", cleanSubjectCode("#"))
}

func TestNormalizeSemester(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1st Semester", "1st Semester"},
		{"FIRST SEM", "1st Semester"},
		{"2nd sem", "2nd Semester"},
		{"Second Semester", "2nd Semester"},
		{"Summer", "Summer"},
		{"Midyear Term", "Summer"},
		{"", ""},
		{"incoming", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeSemester(tt.in), tt.in)
	}
}

func TestInferProgramCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BSIT", "BSIT"},
		{"BS Information Technology (BSIT)", "BSIT"},
		{"Bachelor of Science in Information Technology", "BSIT"},
		{"Bachelor of Science in Hotel and Restaurant Management", "BSHRM"},
		{"Bachelor of Arts in Communication", "ABC"},
		{"Bachelor of Science in Business Administration", "BSBA"},
		{"Diploma in Midwifery", "DIPLOMAINM"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferProgramCode(tt.in), tt.in)
	}
}

func TestFirstNumber(t *testing.T) {
	assert.Equal(t, "3", firstNumber("3 units"))
	assert.Equal(t, "1.5", firstNumber("1.5"))
	assert.Equal(t, "", firstNumber("none"))
}
