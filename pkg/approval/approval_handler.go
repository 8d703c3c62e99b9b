package approval

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/smartwork/smartwork/pkg/employee"
	"github.com/smartwork/smartwork/pkg/validation"
)

type MonthStatusDTO struct {
	EmployeeID     string     `json:"employeeId"`
	Month          string     `json:"month"`
	Status         string     `json:"status"`
	ManagerComment string     `json:"managerComment,omitempty"`
	SubmittedAt    *time.Time `json:"submittedAt,omitempty"`
	ApprovedAt     *time.Time `json:"approvedAt,omitempty"`
}

type submitRequest struct {
	Force bool `json:"force"`
}

type rejectRequest struct {
	Comment string `json:"comment"`
}

// validationGateResponse is the 409 body when a submit hits unresolved
// validation errors.
type validationGateResponse struct {
	Error  string                `json:"error"`
	Issues []validation.IssueDTO `json:"issues"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	month := mux.Vars(r)["month"]

	if r.URL.Query().Get("allEmployees") == "true" {
		statuses, err := h.service.ListForMonth(r.Context(), month)
		if err != nil {
			writeError(w, err)
			return
		}
		dtos := make([]MonthStatusDTO, 0, len(statuses))
		for _, status := range statuses {
			dtos = append(dtos, StatusToDTO(status))
		}
		writeJSON(w, http.StatusOK, dtos)
		return
	}

	status, err := h.service.Status(r.Context(), month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusToDTO(status))
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	month := mux.Vars(r)["month"]

	var req submitRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	status, err := h.service.Submit(r.Context(), month, req.Force)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusToDTO(status))
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	status, err := h.service.Approve(r.Context(), vars["employeeId"], vars["month"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusToDTO(status))
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	status, err := h.service.Reject(r.Context(), vars["employeeId"], vars["month"], req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusToDTO(status))
}

func writeError(w http.ResponseWriter, err error) {
	var gate *ValidationGateError
	var transition *InvalidTransitionError
	switch {
	case errors.As(err, &gate):
		issues := make([]validation.IssueDTO, 0, len(gate.Issues))
		for _, issue := range gate.Issues {
			issues = append(issues, validation.IssueToDTO(issue))
		}
		writeJSON(w, http.StatusConflict, validationGateResponse{Error: gate.Error(), Issues: issues})
	case errors.As(err, &transition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotManager):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrCommentRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, employee.ErrNoEmployee):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func StatusToDTO(status MonthStatus) MonthStatusDTO {
	return MonthStatusDTO{
		EmployeeID:     status.EmployeeID,
		Month:          status.Month,
		Status:         string(status.Status),
		ManagerComment: status.ManagerComment,
		SubmittedAt:    status.SubmittedAt,
		ApprovedAt:     status.ApprovedAt,
	}
}
