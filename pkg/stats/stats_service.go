package stats

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/smartwork/smartwork/pkg/entry"
)

// Summarize aggregates any entry set. It is a pure function; callers decide
// the scope (one employee's month, a project, the whole company).
func Summarize(entries []entry.Entry) Summary {
	summary := Summary{
		ByProject:  map[string]ProjectHours{},
		ByType:     map[string]float64{},
		ByEmployee: map[string]float64{},
	}

	for _, e := range entries {
		summary.TotalHours += e.Hours
		summary.ByType[string(e.Type)] += e.Hours
		summary.ByEmployee[e.EmployeeID] += e.Hours

		if !e.Type.IsProductive() {
			continue
		}
		summary.ProductiveHours += e.Hours

		project := summary.ByProject[e.Project]
		project.Total += e.Hours
		if e.Type == entry.WorkOvertime {
			project.Overtime += e.Hours
			summary.OvertimeHours += e.Hours
		} else {
			project.Regular += e.Hours
		}
		summary.ByProject[e.Project] = project
	}

	return summary
}

// MonthWorkFund counts the weekdays of the month and multiplies by the
// standard day. Independent of logged entries and of public holidays.
func MonthWorkFund(year int, month time.Month, standardDayHours float64) WorkFund {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	workingDays := 0
	for d := 1; d <= daysInMonth; d++ {
		weekday := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Weekday()
		if weekday != time.Saturday && weekday != time.Sunday {
			workingDays++
		}
	}

	return WorkFund{
		Month:       time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(entry.MonthFormat),
		WorkingDays: workingDays,
		TotalHours:  float64(workingDays) * standardDayHours,
	}
}

// Progress returns logged/fund as a fraction. A zero fund yields zero rather
// than NaN.
func Progress(totalHours float64, fund WorkFund) float64 {
	if fund.TotalHours == 0 {
		return 0
	}
	return totalHours / fund.TotalHours
}

// EntriesReader is the read surface needed from the entry service.
type EntriesReader interface {
	ListForMonth(ctx context.Context, month string) ([]entry.Entry, error)
	ListAllForMonth(ctx context.Context, month string) ([]entry.Entry, error)
}

type Service interface {
	// MonthReport builds the viewed employee's report for one month.
	MonthReport(ctx context.Context, month string) (MonthlyReport, error)
	// CompanyReport builds the all-employees report; manager only.
	CompanyReport(ctx context.Context, month string) (MonthlyReport, error)
}

type ServiceImpl struct {
	entries          EntriesReader
	standardDayHours float64
}

func NewService(entries EntriesReader, standardDayHours float64) *ServiceImpl {
	return &ServiceImpl{entries: entries, standardDayHours: standardDayHours}
}

func (s *ServiceImpl) MonthReport(ctx context.Context, month string) (MonthlyReport, error) {
	return s.report(ctx, month, s.entries.ListForMonth)
}

func (s *ServiceImpl) CompanyReport(ctx context.Context, month string) (MonthlyReport, error) {
	return s.report(ctx, month, s.entries.ListAllForMonth)
}

func (s *ServiceImpl) report(
	ctx context.Context,
	month string,
	list func(ctx context.Context, month string) ([]entry.Entry, error),
) (MonthlyReport, error) {
	monthStart, err := time.Parse(entry.MonthFormat, month)
	if err != nil {
		return MonthlyReport{}, fmt.Errorf("invalid month: %q", month)
	}

	entries, err := list(ctx, month)
	if err != nil {
		return MonthlyReport{}, err
	}
	log.Tracef("aggregating %d entries for %s", len(entries), month)

	summary := Summarize(entries)
	fund := MonthWorkFund(monthStart.Year(), monthStart.Month(), s.standardDayHours)

	return MonthlyReport{
		Month:    month,
		Summary:  summary,
		Fund:     fund,
		Progress: Progress(summary.TotalHours, fund),
		Delta:    summary.TotalHours - fund.TotalHours,
	}, nil
}
