package validation

import (
	"testing"
	"time"

	"github.com/smartwork/smartwork/internal/utils"
	"github.com/smartwork/smartwork/pkg/entry"
	"github.com/stretchr/testify/assert"
)

func newTestValidator(now time.Time) *Validator {
	return NewValidator(8, 12, &utils.MockClock{FixedNow: now})
}

func issuesOfType(issues []Issue, t IssueType) []Issue {
	var out []Issue
	for _, issue := range issues {
		if issue.Type == t {
			out = append(out, issue)
		}
	}
	return out
}

func issuesForDate(issues []Issue, date string) []Issue {
	var out []Issue
	for _, issue := range issues {
		if issue.Date == date {
			out = append(out, issue)
		}
	}
	return out
}

func TestValidateMonth_MissingDays(t *testing.T) {
	// mid-month: 2024-06-14 is a Friday
	v := newTestValidator(time.Date(2024, time.June, 14, 10, 30, 0, 0, time.UTC))

	issues := v.ValidateMonth(nil, 2024, time.June)

	missing := issuesOfType(issues, IssueMissingDay)
	// working days 3-7 and 10-14 (1st/2nd and 8th/9th are weekends)
	assert.Len(t, missing, 10)
	for _, issue := range missing {
		assert.Equal(t, SeverityError, issue.Severity)
		assert.Equal(t, "Chybí výkaz pro pracovní den.", issue.Message)
	}
	// nothing after today
	assert.Empty(t, issuesForDate(issues, "2024-06-17"))
	// today itself is included
	assert.Len(t, issuesForDate(issues, "2024-06-14"), 1)
}

func TestValidateMonth_ExactStandardDayIsClean(t *testing.T) {
	v := newTestValidator(time.Date(2024, time.June, 3, 23, 0, 0, 0, time.UTC))

	issues := v.ValidateMonth([]entry.Entry{
		{Date: "2024-06-03", Project: "Web Redesign", Hours: 8, Type: entry.WorkRegular},
	}, 2024, time.June)

	assert.Empty(t, issuesForDate(issues, "2024-06-03"))
}

func TestValidateMonth_LowHours(t *testing.T) {
	v := newTestValidator(time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC))

	issues := v.ValidateMonth([]entry.Entry{
		{Date: "2024-06-03", Project: "Web Redesign", Hours: 4, Type: entry.WorkRegular},
	}, 2024, time.June)

	day := issuesForDate(issues, "2024-06-03")
	assert.Len(t, day, 1)
	assert.Equal(t, IssueLowHours, day[0].Type)
	assert.Equal(t, SeverityWarning, day[0].Severity)
	assert.Contains(t, day[0].Message, "4")

	// every other working day up to today is missing
	missing := issuesOfType(issues, IssueMissingDay)
	assert.Len(t, missing, 9)
}

func TestValidateMonth_HighHoursAndWeekendStack(t *testing.T) {
	v := newTestValidator(time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC))

	// 2024-06-01 is a Saturday
	issues := v.ValidateMonth([]entry.Entry{
		{Date: "2024-06-01", Project: "Release", Hours: 13, Type: entry.WorkOvertime},
	}, 2024, time.June)

	day := issuesForDate(issues, "2024-06-01")
	assert.Len(t, day, 2)
	// rule order within a day: high hours before weekend info
	assert.Equal(t, IssueHighHours, day[0].Type)
	assert.Contains(t, day[0].Message, "13")
	assert.Equal(t, IssueWeekendWork, day[1].Type)
	assert.Equal(t, SeverityInfo, day[1].Severity)
}

func TestValidateMonth_WeekendWorkInfo(t *testing.T) {
	v := newTestValidator(time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC))

	// 2024-06-08 is a Saturday; no low-hours warning applies on weekends
	issues := v.ValidateMonth([]entry.Entry{
		{Date: "2024-06-08", Project: "Release", Hours: 3, Type: entry.WorkRegular},
	}, 2024, time.June)

	day := issuesForDate(issues, "2024-06-08")
	assert.Len(t, day, 1)
	assert.Equal(t, IssueWeekendWork, day[0].Type)
}

func TestValidateMonth_EmptyHolidayIsFine(t *testing.T) {
	v := newTestValidator(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	// 2024-05-01 is Svátek práce; no entry on it is the expected case
	issues := v.ValidateMonth(nil, 2024, time.May)

	assert.Empty(t, issuesForDate(issues, "2024-05-01"))
	assert.Empty(t, issuesForDate(issues, "2024-05-08"))
	// but ordinary working days are still flagged
	assert.NotEmpty(t, issuesForDate(issues, "2024-05-02"))
}

func TestValidateMonth_HolidayWorkWarns(t *testing.T) {
	v := newTestValidator(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	issues := v.ValidateMonth([]entry.Entry{
		{Date: "2024-05-01", Project: "Web Redesign", Hours: 8, Type: entry.WorkRegular},
	}, 2024, time.May)

	day := issuesForDate(issues, "2024-05-01")
	assert.Len(t, day, 1)
	assert.Equal(t, IssueHolidayWork, day[0].Type)
	assert.Equal(t, SeverityWarning, day[0].Severity)
	assert.Contains(t, day[0].Message, "Svátek práce")
}

func TestValidateMonth_HolidayTypeEntrySilencesWarning(t *testing.T) {
	v := newTestValidator(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	issues := v.ValidateMonth([]entry.Entry{
		{Date: "2024-05-01", Hours: 8, Type: entry.WorkHoliday},
	}, 2024, time.May)

	assert.Empty(t, issuesForDate(issues, "2024-05-01"))
}

func TestValidateMonth_OrderedByDay(t *testing.T) {
	v := newTestValidator(time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC))

	issues := v.ValidateMonth([]entry.Entry{
		{Date: "2024-06-03", Project: "P", Hours: 4, Type: entry.WorkRegular},
	}, 2024, time.June)

	for i := 1; i < len(issues); i++ {
		assert.LessOrEqual(t, issues[i-1].Date, issues[i].Date)
	}
}

func TestValidateMonth_FutureMonthHasNoIssues(t *testing.T) {
	v := newTestValidator(time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC))

	issues := v.ValidateMonth(nil, 2024, time.June)

	assert.Empty(t, issues)
}

func TestErrorCount(t *testing.T) {
	issues := []Issue{
		{Severity: SeverityError},
		{Severity: SeverityWarning},
		{Severity: SeverityError},
		{Severity: SeverityInfo},
	}
	assert.Equal(t, 2, ErrorCount(issues))
}
