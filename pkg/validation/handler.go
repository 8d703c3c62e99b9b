package validation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/smartwork/smartwork/pkg/employee"
)

type IssueDTO struct {
	Date     string `json:"date"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Type     string `json:"type"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetForMonth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	month := mux.Vars(r)["month"]

	issues, err := h.service.ForMonth(r.Context(), month)
	if err != nil {
		if errors.Is(err, employee.ErrNoEmployee) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dtos := make([]IssueDTO, 0, len(issues))
	for _, issue := range issues {
		dtos = append(dtos, IssueToDTO(issue))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func IssueToDTO(issue Issue) IssueDTO {
	return IssueDTO{
		Date:     issue.Date,
		Severity: string(issue.Severity),
		Message:  issue.Message,
		Type:     string(issue.Type),
	}
}
