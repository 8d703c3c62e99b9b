package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReport(t *testing.T) {
	report := MonthlyReport{
		Month: "2024-06",
		Summary: Summary{
			TotalHours:      18,
			ProductiveHours: 10,
			OvertimeHours:   2,
			ByProject: map[string]ProjectHours{
				"Beta": {Regular: 0, Overtime: 2, Total: 2},
				"Alfa": {Regular: 8, Overtime: 0, Total: 8},
			},
			ByType: map[string]float64{
				"Běžná práce": 8,
				"Přesčas":     2,
				"Dovolená":    8,
			},
			ByEmployee: map[string]float64{"emp-1": 18},
		},
		Fund:     WorkFund{Month: "2024-06", WorkingDays: 20, TotalHours: 160},
		Progress: 0.1125,
		Delta:    -142,
	}

	renderer := NewCsvReportRenderer()
	csvReport, err := renderer.RenderReport(report)
	require.NoError(t, err)

	assert.Contains(t, csvReport, "Měsíc,2024-06\n")
	assert.Contains(t, csvReport, "Projekt,Běžné,Přesčas,Celkem\n")
	// projects are sorted by name
	assert.Contains(t, csvReport, "Alfa,8,0,8\nBeta,0,2,2\n")
	assert.Contains(t, csvReport, "Zaměstnanec,Hodiny\nemp-1,18\n")
	assert.Contains(t, csvReport, "Fond pracovní doby,160\n")
	assert.Contains(t, csvReport, "Rozdíl,-142\n")
}
