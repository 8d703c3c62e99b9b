package entry

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/smartwork/smartwork/pkg/employee"
)

type EntryDTO struct {
	ID            string  `json:"id,omitempty"`
	EmployeeID    string  `json:"employeeId,omitempty"`
	Date          string  `json:"date"`
	Project       string  `json:"project,omitempty"`
	Description   string  `json:"description"`
	Hours         float64 `json:"hours"`
	Type          string  `json:"type"`
	AttachmentURL string  `json:"attachmentUrl,omitempty"`
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

	var entries []Entry
	var err error
	if r.URL.Query().Has("allEmployees") {
		entries, err = h.service.ListAllForMonth(r.Context(), month)
	} else {
		entries, err = h.service.ListForMonth(r.Context(), month)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeEntries(w, http.StatusOK, entries)
}

// GetHistory returns the viewed employee's entries across all months.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entries, err := h.service.ListForEmployee(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeEntries(w, http.StatusOK, entries)
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	log.Debug("Adding time entries")
	w.Header().Set("Content-Type", "application/json")

	var dtos []EntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Add(r.Context(), dtosToEntries(dtos))
	if err != nil {
		writeError(w, err)
		return
	}

	writeEntries(w, http.StatusCreated, created)
}

func (h *Handler) ReplaceDay(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	date := mux.Vars(r)["date"]

	var dtos []EntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := h.service.ReplaceDay(r.Context(), date, dtosToEntries(dtos))
	if err != nil {
		writeError(w, err)
		return
	}

	writeEntries(w, http.StatusOK, stored)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["entryId"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CopyLastDay(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	copied, err := h.service.CopyLastDay(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeEntries(w, http.StatusCreated, copied)
}

func writeEntries(w http.ResponseWriter, status int, entries []Entry) {
	dtos := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, EntryToDTO(e))
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMonthLocked), errors.Is(err, ErrNotManager):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrEntryNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, employee.ErrNoEmployee):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func EntryToDTO(e Entry) EntryDTO {
	return EntryDTO{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		Date:          e.Date,
		Project:       e.Project,
		Description:   e.Description,
		Hours:         e.Hours,
		Type:          string(e.Type),
		AttachmentURL: e.AttachmentURL,
	}
}

func DTOToEntry(dto EntryDTO) Entry {
	return Entry{
		ID:            dto.ID,
		EmployeeID:    dto.EmployeeID,
		Date:          dto.Date,
		Project:       dto.Project,
		Description:   dto.Description,
		Hours:         dto.Hours,
		Type:          WorkType(dto.Type),
		AttachmentURL: dto.AttachmentURL,
	}
}

func dtosToEntries(dtos []EntryDTO) []Entry {
	entries := make([]Entry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, DTOToEntry(dto))
	}
	return entries
}
