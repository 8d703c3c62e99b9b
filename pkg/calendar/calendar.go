package calendar

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	ical "github.com/emersion/go-ical"
	log "github.com/sirupsen/logrus"
	"github.com/smartwork/smartwork/pkg/employee"
	"github.com/smartwork/smartwork/pkg/entry"
)

// Imported drafts carry a placeholder project so they pass the entry
// boundary unedited; the user reassigns it during confirmation.
const defaultProject = "General"

// Importer turns an uploaded iCalendar stream into draft time entries the
// user confirms before they are stored.
type Importer struct {
}

func NewImporter() *Importer {
	return &Importer{}
}

// Import parses the stream and maps every event starting inside the month
// to a draft entry. Durations are rounded to the nearest half hour, with a
// half hour minimum. Malformed events are skipped.
func (i *Importer) Import(ctx context.Context, r io.Reader, month string) ([]entry.Entry, error) {
	employeeID, err := employee.TargetID(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse(entry.MonthFormat, month); err != nil {
		return nil, fmt.Errorf("invalid month: %q", month)
	}

	dec := ical.NewDecoder(r)
	var entries []entry.Entry

	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not parse calendar: %w", err)
		}

		for _, component := range cal.Children {
			if component.Name != ical.CompEvent {
				continue
			}
			event := ical.Event{Component: component}

			start, err := event.DateTimeStart(nil)
			if err != nil {
				log.Debugf("skipping event without start: %v", err)
				continue
			}
			end, err := event.DateTimeEnd(nil)
			if err != nil {
				log.Debugf("skipping event without end: %v", err)
				continue
			}
			if start.Format(entry.MonthFormat) != month {
				continue
			}

			summary, _ := event.Props.Text(ical.PropSummary)
			entries = append(entries, entry.Entry{
				EmployeeID:  employeeID,
				Date:        start.Format(entry.DateFormat),
				Project:     defaultProject,
				Type:        entry.WorkRegular,
				Description: summary,
				Hours:       roundToHalfHour(end.Sub(start)),
			})
		}
	}

	return entries, nil
}

func roundToHalfHour(d time.Duration) float64 {
	hours := math.Round(d.Hours()*2) / 2
	if hours < 0.5 {
		return 0.5
	}
	return hours
}
