package stats

// ProjectHours splits a project's productive hours into the regular and
// strictly-overtime columns. Absences never appear here.
type ProjectHours struct {
	Regular  float64
	Overtime float64
	Total    float64
}

// Summary aggregates an arbitrary entry set. Empty input yields the zero
// value with initialized maps.
type Summary struct {
	TotalHours      float64
	ProductiveHours float64
	OvertimeHours   float64
	// ByProject covers productive entries only.
	ByProject map[string]ProjectHours
	// ByType covers all entries, absences included.
	ByType map[string]float64
	// ByEmployee covers all entries, absences included.
	ByEmployee map[string]float64
}

// WorkFund is the expected monthly hour total, derived purely from the
// weekday count. Public holidays are not subtracted; the fund and the
// validation engine are independent computations.
type WorkFund struct {
	Month       string
	WorkingDays int
	TotalHours  float64
}

// MonthlyReport is the payload served to dashboards and the CSV export.
type MonthlyReport struct {
	Month    string
	Summary  Summary
	Fund     WorkFund
	Progress float64
	// Delta is logged hours minus fund; positive means over the fund.
	Delta float64
}
