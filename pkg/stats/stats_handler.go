package stats

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/smartwork/smartwork/pkg/employee"
	"github.com/smartwork/smartwork/pkg/entry"
)

type ProjectHoursDTO struct {
	Regular  float64 `json:"regular"`
	Overtime float64 `json:"overtime"`
	Total    float64 `json:"total"`
}

type SummaryDTO struct {
	TotalHours      float64                    `json:"totalHours"`
	ProductiveHours float64                    `json:"productiveHours"`
	OvertimeHours   float64                    `json:"overtimeHours"`
	ByProject       map[string]ProjectHoursDTO `json:"byProject"`
	ByType          map[string]float64         `json:"byType"`
	ByEmployee      map[string]float64         `json:"byEmployee"`
}

type WorkFundDTO struct {
	Month       string  `json:"month"`
	WorkingDays int     `json:"workingDays"`
	TotalHours  float64 `json:"totalHours"`
}

type MonthlyReportDTO struct {
	Month    string      `json:"month"`
	Summary  SummaryDTO  `json:"summary"`
	Fund     WorkFundDTO `json:"fund"`
	Progress float64     `json:"progress"`
	Delta    float64     `json:"delta"`
}

type ReportRenderer interface {
	RenderReport(report MonthlyReport) (string, error)
}

type Handler struct {
	service  Service
	renderer ReportRenderer
}

func NewHandler(service Service, renderer ReportRenderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// GetReport serves the monthly report as JSON, or as CSV when the client
// asks for text/csv. With ?allEmployees=true a manager gets the whole
// company's report.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	month := mux.Vars(r)["month"]

	var report MonthlyReport
	var err error
	if r.URL.Query().Get("allEmployees") == "true" {
		report, err = h.service.CompanyReport(r.Context(), month)
	} else {
		report, err = h.service.MonthReport(r.Context(), month)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/csv") {
		csvReport, err := h.renderer.RenderReport(report)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=\"vykaz-"+report.Month+".csv\"")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(csvReport))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ReportToDTO(report)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entry.ErrNotManager):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, employee.ErrNoEmployee):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

func ReportToDTO(report MonthlyReport) MonthlyReportDTO {
	byProject := make(map[string]ProjectHoursDTO, len(report.Summary.ByProject))
	for project, hours := range report.Summary.ByProject {
		byProject[project] = ProjectHoursDTO(hours)
	}
	return MonthlyReportDTO{
		Month: report.Month,
		Summary: SummaryDTO{
			TotalHours:      report.Summary.TotalHours,
			ProductiveHours: report.Summary.ProductiveHours,
			OvertimeHours:   report.Summary.OvertimeHours,
			ByProject:       byProject,
			ByType:          report.Summary.ByType,
			ByEmployee:      report.Summary.ByEmployee,
		},
		Fund: WorkFundDTO{
			Month:       report.Fund.Month,
			WorkingDays: report.Fund.WorkingDays,
			TotalHours:  report.Fund.TotalHours,
		},
		Progress: report.Progress,
		Delta:    report.Delta,
	}
}
