package constants

import "strings"

// Formats for the source field on extraction outcomes.
const (
	Spreadsheet = "SPREADSHEET"
	PDF         = "PDF"
	Text        = "TXT"
)

// AllowedExtensions holds the default allowed file extensions for ingestion.
var AllowedExtensions = map[string]struct{}{
	"xlsx": {},
	"xlsm": {},
	"xls":  {},
	"pdf":  {},
	"txt":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a source format, or "".
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "xlsx", "xlsm", "xls":
		return Spreadsheet
	case "pdf":
		return PDF
	case "txt":
		return Text
	default:
		return ""
	}
}
