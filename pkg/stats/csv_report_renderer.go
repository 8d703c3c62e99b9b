package stats

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type CsvReportRendererImpl struct {
}

func NewCsvReportRenderer() *CsvReportRendererImpl {
	return &CsvReportRendererImpl{}
}

// RenderReport writes the report as CSV: project rows first, then the type
// and employee breakdowns, then the fund totals. Map sections are sorted by
// key so the output is stable.
func (t *CsvReportRendererImpl) RenderReport(report MonthlyReport) (string, error) {

	data := make([][]string, 0, 8+len(report.Summary.ByProject)+len(report.Summary.ByType)+len(report.Summary.ByEmployee))
	data = append(data, []string{"Měsíc", report.Month})
	data = append(data, []string{})

	data = append(data, []string{"Projekt", "Běžné", "Přesčas", "Celkem"})
	for _, project := range sortedKeys(report.Summary.ByProject) {
		hours := report.Summary.ByProject[project]
		data = append(data, []string{
			project,
			hoursToString(hours.Regular),
			hoursToString(hours.Overtime),
			hoursToString(hours.Total),
		})
	}
	data = append(data, []string{})

	data = append(data, []string{"Typ", "Hodiny"})
	for _, workType := range sortedKeys(report.Summary.ByType) {
		data = append(data, []string{workType, hoursToString(report.Summary.ByType[workType])})
	}
	data = append(data, []string{})

	data = append(data, []string{"Zaměstnanec", "Hodiny"})
	for _, employeeID := range sortedKeys(report.Summary.ByEmployee) {
		data = append(data, []string{employeeID, hoursToString(report.Summary.ByEmployee[employeeID])})
	}
	data = append(data, []string{})

	data = append(data, []string{"Celkem vykázáno", hoursToString(report.Summary.TotalHours)})
	data = append(data, []string{"Fond pracovní doby", hoursToString(report.Fund.TotalHours)})
	data = append(data, []string{"Rozdíl", hoursToString(report.Delta)})

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func hoursToString(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
