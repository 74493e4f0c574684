package constants

// DocKind identifies which domain extractor a document is routed to.
type DocKind string

const (
	KindStudent      DocKind = "STUDENT"
	KindFaculty      DocKind = "FACULTY"
	KindAdmin        DocKind = "ADMIN"
	KindNonTeaching  DocKind = "NON_TEACHING"
	KindCurriculum   DocKind = "CURRICULUM"
	KindCOR          DocKind = "COR"
	KindDutySchedule DocKind = "DUTY_SCHEDULE"
	KindGeneralInfo  DocKind = "GENERAL_INFO"
	KindResume       DocKind = "RESUME"
	KindUnknown      DocKind = "UNKNOWN"
)

// AllKinds lists every routable kind, unknown last.
var AllKinds = []DocKind{
	KindStudent,
	KindFaculty,
	KindAdmin,
	KindNonTeaching,
	KindCurriculum,
	KindCOR,
	KindDutySchedule,
	KindGeneralInfo,
	KindResume,
	KindUnknown,
}

// Collections lists every store collection records can land in.
func Collections() []string {
	out := make([]string, 0, len(AllKinds))
	for _, k := range AllKinds {
		out = append(out, k.Collection())
	}
	return out
}

// Collection maps a document kind to the store collection its records land in.
func (k DocKind) Collection() string {
	switch k {
	case KindStudent:
		return "students"
	case KindFaculty:
		return "teaching_staff"
	case KindAdmin:
		return "admins"
	case KindNonTeaching:
		return "non_teaching_staff"
	case KindCurriculum:
		return "curricula"
	case KindCOR:
		return "cor_schedules"
	case KindDutySchedule:
		return "duty_schedules"
	case KindGeneralInfo:
		return "general_info"
	case KindResume:
		return "resumes"
	default:
		return "unclassified"
	}
}
