package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jdelacruz-io/campus-records/internal/classify"
	"github.com/jdelacruz-io/campus-records/internal/grid"
)

// staffHeaders locate the staff-info block above a duty schedule grid.
var staffHeaders = grid.FieldMap{
	"name":       {"NAME", "EMPLOYEE NAME", "STAFF NAME", "FULL NAME"},
	"department": {"DEPARTMENT", "OFFICE", "UNIT", "DIVISION"},
	"position":   {"POSITION", "DESIGNATION", "JOB TITLE"},
}

// weekDays in display order; abbreviations fold onto the full name.
var weekDays = []struct {
	Name    string
	Aliases []string
}{
	{"Monday", []string{"MONDAY", "MON"}},
	{"Tuesday", []string{"TUESDAY", "TUE", "TUES"}},
	{"Wednesday", []string{"WEDNESDAY", "WED"}},
	{"Thursday", []string{"THURSDAY", "THU", "THURS"}},
	{"Friday", []string{"FRIDAY", "FRI"}},
	{"Saturday", []string{"SATURDAY", "SAT"}},
	{"Sunday", []string{"SUNDAY", "SUN"}},
}

// minDayColumns is how many recognizable day columns a header row needs, on
// top of a TIME column, to be accepted as the schedule grid header.
const minDayColumns = 3

// ExtractDutySchedule reconstructs a non-teaching duty schedule from a raw
// grid: a staff-info label pass, then an inversion of the time-by-day matrix
// into a flat entry list regrouped into day-ordered, time-sorted buckets.
func ExtractDutySchedule(g grid.Grid) DutySchedule {
	var out DutySchedule

	s := grid.Scanner{Lexicon: grid.NewLexicon(staffHeaders)}
	w := grid.Window{MaxRows: 15, MaxCols: 10}
	out.Name = s.FindLabeledValue(g, staffHeaders["name"], w)
	out.Position = s.FindLabeledValue(g, staffHeaders["position"], w)
	if dept := s.FindLabeledValue(g, staffHeaders["department"], w); dept != "" {
		out.Department = classify.StandardizeDepartment(dept)
	}

	headerRow, timeCol, dayCols := findScheduleHeader(g)
	if headerRow < 0 {
		return out
	}

	// Contiguous data region: the first row with an empty or invalid TIME
	// cell ends it, so trailing notes never read as duties.
	for row := headerRow + 1; row < g.NumRows(); row++ {
		timeCell := g.Cell(row, timeCol)
		if _, ok := parseClockMinutes(timeCell); !ok {
			break
		}
		for _, dc := range dayCols {
			duty := g.Cell(row, dc.col)
			if duty == "" || grid.IsPlaceholder(duty) {
				continue
			}
			out.Entries = append(out.Entries, DutyEntry{
				Day:        dc.day,
				Time:       timeCell,
				Assignment: duty,
			})
		}
	}

	out.Days = groupByDay(out.Entries)
	return out
}

type dayColumn struct {
	day string
	col int
}

// findScheduleHeader looks for a row with a TIME column and at least
// minDayColumns recognizable day columns. The next row starts the data.
func findScheduleHeader(g grid.Grid) (row, timeCol int, days []dayColumn) {
	maxRows := min(30, g.NumRows())
	for r := 0; r < maxRows; r++ {
		tc := -1
		var cols []dayColumn
		for c := 0; c < g.RowLen(r); c++ {
			cell := strings.ToUpper(g.Cell(r, c))
			if cell == "" {
				continue
			}
			if tc < 0 && (cell == "TIME" || strings.HasPrefix(cell, "TIME ") || strings.HasPrefix(cell, "TIME:")) {
				tc = c
				continue
			}
			if day := MatchDay(cell); day != "" {
				cols = append(cols, dayColumn{day: day, col: c})
			}
		}
		if tc >= 0 && len(cols) >= minDayColumns {
			return r, tc, cols
		}
	}
	return -1, -1, nil
}

// MatchDay resolves a header cell to a canonical day name, or "".
func MatchDay(cell string) string {
	cell = strings.ToUpper(strings.TrimSpace(cell))
	for _, d := range weekDays {
		for _, a := range d.Aliases {
			if cell == a || strings.HasPrefix(cell, a+" ") || strings.HasPrefix(cell, a+".") {
				return d.Name
			}
		}
	}
	return ""
}

// groupByDay buckets entries in weekday order, each bucket sorted ascending
// by clock time. The sort is stable so equal times keep source order.
func groupByDay(entries []DutyEntry) []DayGroup {
	var groups []DayGroup
	for _, d := range weekDays {
		var bucket []DutyEntry
		for _, e := range entries {
			if e.Day == d.Name {
				bucket = append(bucket, e)
			}
		}
		if len(bucket) == 0 {
			continue
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			a, _ := parseClockMinutes(bucket[i].Time)
			b, _ := parseClockMinutes(bucket[j].Time)
			return a < b
		})
		groups = append(groups, DayGroup{Day: d.Name, Entries: bucket})
	}
	return groups
}

var clockRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(?:([AP])\.?M\.?)?`)

// parseClockMinutes converts a 12h or 24h clock string to minutes since
// midnight. The minute defaults to 0 when omitted. A time range keeps its
// start ("8:00 AM - 12:00 NN" sorts at 8:00).
func parseClockMinutes(s string) (int, bool) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if t == "" {
		return 0, false
	}
	m := clockRe.FindStringSubmatch(t)
	if m == nil || m[1] == "" {
		return 0, false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 24 {
		return 0, false
	}
	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return 0, false
		}
	}
	switch m[3] {
	case "P":
		if hour < 12 {
			hour += 12
		}
	case "A":
		if hour == 12 {
			hour = 0
		}
	}
	return hour*60 + minute, true
}
