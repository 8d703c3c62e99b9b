package lock

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/smartwork/smartwork/pkg/employee"
)

type GlobalLockDTO struct {
	Month     string `json:"month"`
	Locked    bool   `json:"locked"`
	ToggledBy string `json:"toggledBy,omitempty"`
}

type setLockedRequest struct {
	Locked bool `json:"locked"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetLocked(w http.ResponseWriter, r *http.Request) {
	locks, err := h.service.ListLocked(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	dtos := make([]GlobalLockDTO, 0, len(locks))
	for _, l := range locks {
		dtos = append(dtos, LockToDTO(l))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) SetLocked(w http.ResponseWriter, r *http.Request) {
	month := mux.Vars(r)["month"]

	var req setLockedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	l, err := h.service.SetLocked(r.Context(), month, req.Locked)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LockToDTO(l))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotManager):
		http.Error(w, err.Error(), http.StatusForbidden)
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

func LockToDTO(l GlobalLock) GlobalLockDTO {
	return GlobalLockDTO(l)
}
