package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectGeneralInfoType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/docs/School Mission and Vision.pdf", "mission_vision"},
		{"/docs/VISION-MISSION.txt", "mission_vision"},
		{"/docs/institutional_objectives.pdf", "objectives"},
		{"/docs/school-history.txt", "history"},
		{"/docs/Core Values 2024.pdf", "core_values"},
		{"/docs/university hymn.txt", "hymn"},
		{"/docs/handbook.pdf", "general"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectGeneralInfoType(tt.path))
		})
	}
}

func TestExtractGeneralInfoMissionVision(t *testing.T) {
	text := `OUR VISION
A leading institution of higher learning in the region.

MISSION
To provide accessible quality education for all.
The provision of scholarships supports this mission.`

	out := ExtractGeneralInfo(text, "mission-vision.txt")
	assert.Equal(t, "mission_vision", out.Type)
	assert.Equal(t, "A leading institution of higher learning in the region.", out.Vision)
	assert.Equal(t,
		"To provide accessible quality education for all. The provision of scholarships supports this mission.",
		out.Mission)
}

func TestMissionVisionWordBoundary(t *testing.T) {
	// "provision" and "television" contain the header words but must not
	// flip the capture mode
	text := `VISION
Quality education through the provision of modern facilities.
MISSION
Broadcast learning via television for remote learners.`

	out := ExtractGeneralInfo(text, "vision_mission.txt")
	assert.Contains(t, out.Vision, "provision of modern facilities")
	assert.NotContains(t, out.Vision, "television")
	assert.Contains(t, out.Mission, "television for remote learners")
}

func TestExtractGeneralInfoInlineHeaders(t *testing.T) {
	text := "VISION: A globally competitive university.\nMISSION: To nurture lifelong learners in the region."
	out := ExtractGeneralInfo(text, "mission.txt")
	assert.Equal(t, "A globally competitive university.", out.Vision)
	assert.Equal(t, "To nurture lifelong learners in the region.", out.Mission)
}

func TestExtractGeneralInfoObjectives(t *testing.T) {
	text := `INSTITUTIONAL OBJECTIVES

1. Produce competent graduates
   equipped for industry.
2) Foster research culture.
- Strengthen community extension programs.
`
	out := ExtractGeneralInfo(text, "objectives.txt")
	assert.Equal(t, "objectives", out.Type)
	require.Len(t, out.Objectives, 3)
	assert.Equal(t, "Produce competent graduates equipped for industry.", out.Objectives[0])
	assert.Equal(t, "Foster research culture.", out.Objectives[1])
	assert.Equal(t, "Strengthen community extension programs.", out.Objectives[2])
}

func TestExtractGeneralInfoCoreValues(t *testing.T) {
	text := "OUR CORE VALUES\nIntegrity\nExcellence\nService"
	out := ExtractGeneralInfo(text, "core values.txt")
	assert.Equal(t, "core_values", out.Type)
	assert.Equal(t, []string{"Integrity", "Excellence", "Service"}, out.CoreValues)
}

func TestExtractGeneralInfoDefaultContent(t *testing.T) {
	text := "  The school was founded in 1946.  "
	out := ExtractGeneralInfo(text, "handbook.txt")
	assert.Equal(t, "general", out.Type)
	assert.Equal(t, "The school was founded in 1946.", out.Content)
	assert.Empty(t, out.Mission)
}

func TestExtractGeneralInfoHistoryKeepsContent(t *testing.T) {
	out := ExtractGeneralInfo("Founded in 1946 as a parochial school.", "school history.txt")
	assert.Equal(t, "history", out.Type)
	assert.Equal(t, "Founded in 1946 as a parochial school.", out.Content)
}
