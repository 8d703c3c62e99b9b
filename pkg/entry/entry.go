package entry

// DateFormat is the layout of entry dates. Dates and months are kept as
// zero-padded ISO strings throughout so that lexical order is chronological
// order; sorting never mixes string and calendar comparison.
const (
	DateFormat  = "2006-01-02"
	MonthFormat = "2006-01"
)

// WorkType is the closed set of entry classifications. The values are the
// Czech labels shown to users and stored as-is.
type WorkType string

const (
	WorkRegular       WorkType = "Běžná práce"
	WorkOvertime      WorkType = "Přesčas"
	WorkVacation      WorkType = "Dovolená"
	WorkSickDay       WorkType = "Nemocenská"
	WorkHoliday       WorkType = "Svátek"
	WorkCareLeave     WorkType = "OČR (Ošetřovné)"
	WorkDoctor        WorkType = "Lékař"
	WorkBusinessTrip  WorkType = "Služební cesta"
	WorkUnpaidLeave   WorkType = "Neplacené volno"
	WorkCompLeave     WorkType = "Náhradní volno"
	WorkOtherObstacle WorkType = "Jiná překážka"
	WorkSixtyPercent  WorkType = "60%"
)

// AllWorkTypes lists every valid work type.
var AllWorkTypes = []WorkType{
	WorkRegular,
	WorkOvertime,
	WorkVacation,
	WorkSickDay,
	WorkHoliday,
	WorkCareLeave,
	WorkDoctor,
	WorkBusinessTrip,
	WorkUnpaidLeave,
	WorkCompLeave,
	WorkOtherObstacle,
	WorkSixtyPercent,
}

// IsProductive reports whether hours of this type are billed to a project.
// Everything else is an absence.
func (t WorkType) IsProductive() bool {
	return t == WorkRegular || t == WorkOvertime || t == WorkBusinessTrip
}

func (t WorkType) Valid() bool {
	for _, wt := range AllWorkTypes {
		if t == wt {
			return true
		}
	}
	return false
}

// Entry is one atomic unit of reported time.
type Entry struct {
	ID         string
	EmployeeID string
	// Date in YYYY-MM-DD format.
	Date        string
	Project     string
	Description string
	Hours       float64
	Type        WorkType
	// AttachmentURL optionally points at an uploaded document.
	AttachmentURL string
}
