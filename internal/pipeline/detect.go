package pipeline

import (
	"strings"

	"github.com/jdelacruz-io/campus-records/constants"
	"github.com/jdelacruz-io/campus-records/internal/extract"
	"github.com/jdelacruz-io/campus-records/internal/grid"
)

// nameHints maps filename and sheet-name keywords to a document kind.
// Longer, more specific hints are listed before generic ones so that
// "non-teaching staff schedule" resolves to a duty schedule rather
// than a staff profile.
var nameHints = []struct {
	Keyword string
	Kind    constants.DocKind
	Weight  int
}{
	{"curriculum", constants.KindCurriculum, 6},
	{"prospectus", constants.KindCurriculum, 6},
	{"certificate of registration", constants.KindCOR, 8},
	{"registration", constants.KindCOR, 5},
	{"cor", constants.KindCOR, 4},
	{"duty", constants.KindDutySchedule, 6},
	{"schedule", constants.KindDutySchedule, 4},
	{"student", constants.KindStudent, 5},
	{"enrollee", constants.KindStudent, 5},
	{"faculty", constants.KindFaculty, 5},
	{"teacher", constants.KindFaculty, 5},
	{"instructor", constants.KindFaculty, 5},
	{"non-teaching", constants.KindNonTeaching, 7},
	{"nonteaching", constants.KindNonTeaching, 7},
	{"admin", constants.KindAdmin, 5},
	{"board", constants.KindAdmin, 4},
	{"resume", constants.KindResume, 6},
	{"cv", constants.KindResume, 3},
	{"mission", constants.KindGeneralInfo, 5},
	{"vision", constants.KindGeneralInfo, 5},
	{"history", constants.KindGeneralInfo, 5},
	{"objectives", constants.KindGeneralInfo, 5},
	{"hymn", constants.KindGeneralInfo, 5},
}

const detectProbeRows = 30

// DetectSheetKind classifies a spreadsheet sheet by its name, the
// workbook filename and the shape of its content. Name hints are
// scored first and content probes break ties or fill in when the
// names say nothing. KindUnknown means no signal at all, and the
// record lands in the unclassified collection.
func DetectSheetKind(filename, sheetName string, g grid.Grid) constants.DocKind {
	scores := map[constants.DocKind]int{}

	haystack := strings.ToLower(filename + " " + sheetName)
	for _, h := range nameHints {
		if strings.Contains(haystack, h.Keyword) {
			scores[h.Kind] += h.Weight
		}
	}

	probeGridContent(g, scores)

	best := constants.KindUnknown
	bestScore := 0
	for _, kind := range detectionOrder {
		if scores[kind] > bestScore {
			best = kind
			bestScore = scores[kind]
		}
	}
	return best
}

// detectionOrder fixes the tie-break so detection is deterministic.
var detectionOrder = []constants.DocKind{
	constants.KindCurriculum,
	constants.KindCOR,
	constants.KindDutySchedule,
	constants.KindStudent,
	constants.KindFaculty,
	constants.KindAdmin,
	constants.KindNonTeaching,
	constants.KindGeneralInfo,
	constants.KindResume,
}

// probeGridContent inspects the first rows of the sheet for
// structural markers: a curriculum header row, a duty grid header,
// or labels peculiar to one profile type.
func probeGridContent(g grid.Grid, scores map[constants.DocKind]int) {
	rows := g.NumRows()
	if rows > detectProbeRows {
		rows = detectProbeRows
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < g.RowLen(r); c++ {
			cell := strings.ToUpper(g.Cell(r, c))
			switch {
			case cell == "":
				continue
			case strings.Contains(cell, "SUBJECT CODE") || strings.Contains(cell, "COURSE CODE"):
				scores[constants.KindCurriculum] += 4
			case strings.Contains(cell, "PRE-REQUISITE") || strings.Contains(cell, "PREREQUISITE"):
				scores[constants.KindCurriculum] += 3
			case cell == "TIME" || strings.HasPrefix(cell, "TIME:"):
				scores[constants.KindDutySchedule] += 3
			case strings.Contains(cell, "STUDENT NO") || strings.Contains(cell, "STUDENT NUMBER"):
				scores[constants.KindStudent] += 4
				scores[constants.KindCOR] += 2
			case strings.Contains(cell, "CERTIFICATE OF REGISTRATION"):
				scores[constants.KindCOR] += 8
			case strings.Contains(cell, "GUARDIAN"):
				scores[constants.KindStudent] += 2
			case strings.Contains(cell, "EMPLOYEE NO") || strings.Contains(cell, "EMPLOYEE NUMBER"):
				scores[constants.KindFaculty] += 2
				scores[constants.KindNonTeaching] += 2
			case strings.Contains(cell, "POSITION"):
				scores[constants.KindAdmin]++
				scores[constants.KindNonTeaching]++
			case strings.Contains(cell, "SPECIALIZATION") || strings.Contains(cell, "SUBJECTS HANDLED"):
				scores[constants.KindFaculty] += 3
			case strings.Contains(cell, "OFFICE"):
				scores[constants.KindNonTeaching]++
			}
		}
	}

	// A full day-of-week header row is a strong duty-grid marker.
	for r := 0; r < rows; r++ {
		days := 0
		for c := 0; c < g.RowLen(r); c++ {
			if extract.MatchDay(g.Cell(r, c)) != "" {
				days++
			}
		}
		if days >= 3 {
			scores[constants.KindDutySchedule] += 5
			scores[constants.KindCOR]++
			break
		}
	}
}

// DetectTextKind classifies plain text pulled out of a PDF or a .txt
// file. Only the two text-borne kinds are possible here.
func DetectTextKind(filename, text string) constants.DocKind {
	lower := strings.ToLower(filename)
	for _, h := range nameHints {
		if h.Kind != constants.KindResume && h.Kind != constants.KindGeneralInfo {
			continue
		}
		if strings.Contains(lower, h.Keyword) {
			return h.Kind
		}
	}

	upper := strings.ToUpper(text)
	resumeScore := 0
	for _, marker := range []string{"OBJECTIVE", "WORK EXPERIENCE", "EDUCATIONAL BACKGROUND", "EDUCATION", "SKILLS", "SEMINARS"} {
		if strings.Contains(upper, marker) {
			resumeScore++
		}
	}
	infoScore := 0
	for _, marker := range []string{"MISSION", "VISION", "CORE VALUES", "HYMN", "HISTORY"} {
		if strings.Contains(upper, marker) {
			infoScore++
		}
	}
	if resumeScore >= 2 && resumeScore > infoScore {
		return constants.KindResume
	}
	return constants.KindGeneralInfo
}
