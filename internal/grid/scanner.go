package grid

import "strings"

// FieldMap maps a canonical field name to its ordered label synonyms.
// Synonyms are matched case-insensitively against cell text.
type FieldMap map[string][]string

// Window bounds a scan: labels deep inside unrelated tables are never
// candidates, and short windows keep the scan cheap.
type Window struct {
	MaxRows int // rows scanned from the top; <=0 means 100
	MaxCols int // columns scanned per row; <=0 means 15
}

func (w Window) rows() int {
	if w.MaxRows <= 0 {
		return 100
	}
	return w.MaxRows
}

func (w Window) cols() int {
	if w.MaxCols <= 0 {
		return 15
	}
	return w.MaxCols
}

// Lexicon is the set of every label any extractor field map knows about.
// Membership is used to reject value candidates that are themselves labels.
type Lexicon map[string]struct{}

// NewLexicon builds a lexicon from the labels of one or more field maps.
func NewLexicon(maps ...FieldMap) Lexicon {
	lex := make(Lexicon)
	for _, fm := range maps {
		for _, labels := range fm {
			for _, l := range labels {
				lex[strings.ToUpper(strings.TrimSpace(l))] = struct{}{}
			}
		}
	}
	return lex
}

// Contains reports whether text, upper-cased and trimmed, looks like a known
// label: either equal to one or a "LABEL:" / "LABEL " prefix form of one.
func (lex Lexicon) Contains(text string) bool {
	t := strings.ToUpper(strings.TrimSpace(text))
	if t == "" {
		return false
	}
	if _, ok := lex[t]; ok {
		return true
	}
	for l := range lex {
		if MatchesLabel(t, l) {
			return true
		}
	}
	return false
}

// placeholders are values that never count as resolved field content.
var placeholders = map[string]struct{}{
	"N/A": {}, "NA": {}, "TBA": {}, "TBD": {}, "-": {}, "--": {},
}

// IsPlaceholder reports whether v is a known non-value marker.
func IsPlaceholder(v string) bool {
	_, ok := placeholders[strings.ToUpper(strings.TrimSpace(v))]
	return ok
}

// MatchesLabel reports whether cell text matches a label. The cell matches
// when its upper-cased, trimmed text equals the label, or starts with
// "LABEL:" or "LABEL ". The ordering keeps a label from matching as a bare
// substring inside unrelated prose ("SURNAME" must not hit "OUR SURNAMES").
func MatchesLabel(cell, label string) bool {
	c := strings.ToUpper(strings.TrimSpace(cell))
	l := strings.ToUpper(strings.TrimSpace(label))
	if c == "" || l == "" {
		return false
	}
	if c == l {
		return true
	}
	return strings.HasPrefix(c, l+":") || strings.HasPrefix(c, l+" ")
}

// Scanner locates labeled values inside a grid. It carries only immutable
// configuration, so one Scanner may serve concurrent extractions.
type Scanner struct {
	Lexicon Lexicon
}

// FindLabeledValue scans the window for any of labels and resolves its value:
// same cell after the first ':', else the next few cells to the right, else
// the cell directly below when that cell is not itself a label. Returns ""
// when nothing resolves; malformed or short rows never cause a failure.
func (s Scanner) FindLabeledValue(g Grid, labels []string, w Window) string {
	maxRows := min(w.rows(), g.NumRows())
	for row := 0; row < maxRows; row++ {
		maxCols := min(w.cols(), g.RowLen(row))
		for col := 0; col < maxCols; col++ {
			cell := g.Cell(row, col)
			if cell == "" {
				continue
			}
			for _, label := range labels {
				if !MatchesLabel(cell, label) {
					continue
				}
				if v := s.resolveValue(g, row, col, cell, labels); v != "" {
					return v
				}
			}
		}
	}
	return ""
}

// ResolveValueAt applies the value resolution order to a specific cell that
// the caller already knows is a label. Used by context-sensitive passes that
// cannot go through FindLabeledValue.
func (s Scanner) ResolveValueAt(g Grid, row, col int) string {
	return s.resolveValue(g, row, col, g.Cell(row, col), nil)
}

// resolveValue applies the value resolution order for a matched label cell.
// own holds the field's label synonyms: a candidate that matches one of them
// is the value in its label-prefixed form ("College of Computer Studies"
// under a COLLEGE synonym), not a foreign label.
func (s Scanner) resolveValue(g Grid, row, col int, cell string, own []string) string {
	// (a) value in the same cell, after the first ':'
	if i := strings.Index(cell, ":"); i >= 0 {
		if v := strings.TrimSpace(cell[i+1:]); v != "" && !IsPlaceholder(v) {
			return v
		}
	}

	// (b) next cells to the right, skipping blanks and placeholder noise
	for off := 1; off <= 5; off++ {
		v := g.Cell(row, col+off)
		if v == "" || IsPlaceholder(v) {
			continue
		}
		if len(v) < 2 || s.foreignLabel(v, own) {
			break
		}
		return v
	}

	// (c) the cell directly below, unless it looks like another label
	below := g.Cell(row+1, col)
	if below != "" && !IsPlaceholder(below) && !s.foreignLabel(below, own) {
		return below
	}
	return ""
}

// foreignLabel reports whether v looks like a label of some other field.
func (s Scanner) foreignLabel(v string, own []string) bool {
	if !s.Lexicon.Contains(v) {
		return false
	}
	for _, l := range own {
		if MatchesLabel(v, l) {
			return false
		}
	}
	return true
}
