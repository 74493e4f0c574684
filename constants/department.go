package constants

// Department is the closed set of academic department codes.
type Department string

const (
	DeptCCS     Department = "CCS"  // College of Computer Studies
	DeptCHTM    Department = "CHTM" // College of Hospitality and Tourism Management
	DeptCBA     Department = "CBA"  // College of Business Administration
	DeptCTE     Department = "CTE"  // College of Teacher Education
	DeptCOE     Department = "COE"  // College of Engineering
	DeptCON     Department = "CON"  // College of Nursing
	DeptCAS     Department = "CAS"  // College of Arts and Sciences
	DeptUnknown Department = "UNKNOWN"
)

// AdminType is the closed set of administrative role categories.
type AdminType string

const (
	AdminBoard       AdminType = "BOARD"
	AdminSchoolAdmin AdminType = "SCHOOL_ADMIN"
	AdminGeneral     AdminType = "ADMIN"
)

var allDepartments = []Department{
	DeptCCS, DeptCHTM, DeptCBA, DeptCTE, DeptCOE, DeptCON, DeptCAS,
}

// DepartmentCodes returns the academic codes, excluding the UNKNOWN sentinel.
func DepartmentCodes() []string {
	out := make([]string, len(allDepartments))
	for i, d := range allDepartments {
		out[i] = string(d)
	}
	return out
}

// IsDepartment reports whether code is a known academic department code.
func IsDepartment(code string) bool {
	for _, d := range allDepartments {
		if string(d) == code {
			return true
		}
	}
	return false
}
