// Package validation derives per-day compliance issues from a month of time
// entries. Issues are advisory: they are surfaced to the user and gate the
// submit action, but they are never persisted and never abort a computation.
package validation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/smartwork/smartwork/internal/utils"
	"github.com/smartwork/smartwork/pkg/entry"
	"github.com/smartwork/smartwork/pkg/holiday"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

type IssueType string

const (
	IssueMissingDay  IssueType = "MISSING_DAY"
	IssueLowHours    IssueType = "LOW_HOURS"
	IssueHighHours   IssueType = "HIGH_HOURS"
	IssueWeekendWork IssueType = "WEEKEND_WORK"
	IssueHolidayWork IssueType = "HOLIDAY_WORK"
)

// Issue is one finding for a single calendar date. Recomputed on every call,
// never stored.
type Issue struct {
	// Date in YYYY-MM-DD format.
	Date     string
	Severity Severity
	Message  string
	Type     IssueType
}

// Validator holds the policy constants. Thresholds default to the standard
// 8-hour workday and the 12-hour warning limit but stay overridable.
type Validator struct {
	StandardDayHours float64
	HighHoursLimit   float64
	clock            utils.Clock
}

func NewValidator(standardDayHours, highHoursLimit float64, clock utils.Clock) *Validator {
	return &Validator{
		StandardDayHours: standardDayHours,
		HighHoursLimit:   highHoursLimit,
		clock:            clock,
	}
}

// ValidateMonth walks every calendar day of the month and applies the rules
// in fixed order. Entries must already be filtered to one employee and the
// given month. Output is ordered by day; within a day, by rule order.
func (v *Validator) ValidateMonth(entries []entry.Entry, year int, month time.Month) []Issue {
	issues := []Issue{}

	byDate := make(map[string][]entry.Entry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	today := v.clock.Now()
	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		dateStr := date.Format(entry.DateFormat)

		weekday := date.Weekday()
		isWeekend := weekday == time.Saturday || weekday == time.Sunday
		holidayName, isPublicHoliday := holiday.Name(date)

		dayEntries := byDate[dateStr]
		totalHours := 0.0
		for _, e := range dayEntries {
			totalHours += e.Hours
		}

		// A working day with no entries is an error, unless it is still in
		// the future. Remaining rules are skipped for such a day.
		if !isWeekend && !isPublicHoliday && len(dayEntries) == 0 {
			if !date.After(todayMidnight) {
				issues = append(issues, Issue{
					Date:     dateStr,
					Severity: SeverityError,
					Message:  "Chybí výkaz pro pracovní den.",
					Type:     IssueMissingDay,
				})
			}
			continue
		}

		if !isWeekend && !isPublicHoliday && totalHours > 0 && totalHours < v.StandardDayHours {
			issues = append(issues, Issue{
				Date:     dateStr,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("Podlimitní stav: vykázáno pouze %sh (standard je %sh).",
					formatHours(totalHours), formatHours(v.StandardDayHours)),
				Type: IssueLowHours,
			})
		}

		if totalHours > v.HighHoursLimit {
			issues = append(issues, Issue{
				Date:     dateStr,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Vysoký počet hodin: %sh. Zkontrolujte legislativní limity.", formatHours(totalHours)),
				Type:     IssueHighHours,
			})
		}

		if isWeekend && totalHours > 0 {
			issues = append(issues, Issue{
				Date:     dateStr,
				Severity: SeverityInfo,
				Message:  "Práce o víkendu.",
				Type:     IssueWeekendWork,
			})
		}

		// Work logged on a public holiday warns unless the day carries a
		// dedicated holiday entry. A holiday with no entries is the
		// ordinary case and raises nothing.
		if isPublicHoliday && totalHours > 0 {
			hasHolidayType := false
			for _, e := range dayEntries {
				if e.Type == entry.WorkHoliday {
					hasHolidayType = true
					break
				}
			}
			if !hasHolidayType {
				issues = append(issues, Issue{
					Date:     dateStr,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("Práce ve svátek (%s). Ujistěte se, že jde o schválený přesčas.", holidayName),
					Type:     IssueHolidayWork,
				})
			}
		}
	}

	return issues
}

// ErrorCount returns how many issues carry error severity.
func ErrorCount(issues []Issue) int {
	count := 0
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			count++
		}
	}
	return count
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
