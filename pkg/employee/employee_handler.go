package employee

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type EmployeeDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
	Active bool   `json:"active"`
	HasPin bool   `json:"hasPin"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	includeInactive := r.URL.Query().Has("includeInactive")

	employees, err := h.service.GetAll(r.Context(), includeInactive)
	if err != nil {
		writeError(w, err)
		return
	}

	dtos := make([]EmployeeDTO, 0, len(employees))
	for _, emp := range employees {
		dtos = append(dtos, EmployeeToDTO(emp))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new employee")
	w.Header().Set("Content-Type", "application/json")

	var dto EmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), DTOToEmployee(dto))
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(EmployeeToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	employeeId := mux.Vars(r)["employeeId"]

	var dto EmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == "" || dto.ID != employeeId {
		http.Error(w, "Invalid employee id in request body", http.StatusBadRequest)
		return
	}

	ok, err := h.service.Update(r.Context(), DTOToEmployee(dto))
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		http.Error(w, "Employee not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) SetActive(w http.ResponseWriter, r *http.Request) {
	employeeId := mux.Vars(r)["employeeId"]

	var dto struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := h.service.SetActive(r.Context(), employeeId, dto.Active)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		http.Error(w, "Employee not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetPin(w http.ResponseWriter, r *http.Request) {
	employeeId := mux.Vars(r)["employeeId"]

	var dto struct {
		Pin string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.SetPin(r.Context(), employeeId, dto.Pin); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotManager):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrNoEmployee):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrEmployeeNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func EmployeeToDTO(emp Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:     emp.ID,
		Name:   emp.Name,
		Email:  emp.Email,
		Role:   string(emp.Role),
		Avatar: emp.Avatar,
		Active: emp.Active,
		HasPin: emp.PinHash != "",
	}
}

func DTOToEmployee(dto EmployeeDTO) Employee {
	return Employee{
		ID:     dto.ID,
		Name:   dto.Name,
		Email:  dto.Email,
		Role:   Role(dto.Role),
		Avatar: dto.Avatar,
		Active: dto.Active,
	}
}
