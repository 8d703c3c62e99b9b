package calendar

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smartwork/smartwork/pkg/employee"
	"github.com/smartwork/smartwork/pkg/entry"
)

type Handler struct {
	importer *Importer
}

func NewHandler(importer *Importer) *Handler {
	return &Handler{importer: importer}
}

// Import accepts a text/calendar body and returns the proposed draft
// entries. Nothing is stored; the client submits the confirmed set through
// the entries endpoint.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	entries, err := h.importer.Import(r.Context(), r.Body, month)
	if err != nil {
		if errors.Is(err, employee.ErrNoEmployee) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dtos := make([]entry.EntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, entry.EntryToDTO(e))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
