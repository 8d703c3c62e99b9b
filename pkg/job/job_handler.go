package job

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/smartwork/smartwork/pkg/employee"
)

type JobDTO struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	jobs, err := h.service.GetAll(r.Context(), includeInactive)
	if err != nil {
		writeError(w, err)
		return
	}

	dtos := make([]JobDTO, 0, len(jobs))
	for _, j := range jobs {
		dtos = append(dtos, JobToDTO(j))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto JobDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), DTOToJob(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, JobToDTO(created))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto JobDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	dto.ID = mux.Vars(r)["id"]

	updated, err := h.service.Update(r.Context(), DTOToJob(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, JobToDTO(updated))
}

func (h *Handler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.SetActive(r.Context(), mux.Vars(r)["id"], req.Active); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotManager):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrJobNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
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

func JobToDTO(j Job) JobDTO {
	return JobDTO(j)
}

func DTOToJob(dto JobDTO) Job {
	return Job(dto)
}
