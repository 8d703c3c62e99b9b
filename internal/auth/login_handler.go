package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/smartwork/smartwork/pkg/employee"
)

type loginRequest struct {
	EmployeeID string `json:"employeeId"`
	Pin        string `json:"pin"`
}

type loginResponse struct {
	Token    string               `json:"token"`
	Employee employee.EmployeeDTO `json:"employee"`
}

type LoginHandler struct {
	employees employee.Service
	issuer    *TokenIssuer
}

func NewLoginHandler(employees employee.Service, issuer *TokenIssuer) *LoginHandler {
	return &LoginHandler{employees: employees, issuer: issuer}
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	emp, err := h.employees.VerifyPin(r.Context(), req.EmployeeID, req.Pin)
	if err != nil {
		if errors.Is(err, employee.ErrInvalidPin) || errors.Is(err, employee.ErrEmployeeNotFound) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	token, err := h.issuer.Generate(emp.ID, string(emp.Role))
	if err != nil {
		log.Errorf("could not issue token: %v", err)
		http.Error(w, "Could not issue token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(loginResponse{
		Token:    token,
		Employee: employee.EmployeeToDTO(emp),
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
