package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/smartwork/smartwork/internal/config"
	"github.com/smartwork/smartwork/pkg/employee"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Host},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Employee-Id", "X-Review-Employee-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Resolve the caller's identity and install the review context. Accepts
	// either a bearer token or the trusted X-Employee-Id header set by a
	// fronting proxy.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.URL.Path == "/api/auth/login" {
				next.ServeHTTP(w, req)
				return
			}

			employeeID := employeeIDFromRequest(deps, req)
			ctx := req.Context()

			if employeeID != "" {
				emp, err := deps.EmployeeService.GetByID(ctx, employeeID)
				if err != nil {
					if errors.Is(err, employee.ErrEmployeeNotFound) {
						log.Debugf("employee not found: %s", employeeID)
						http.Error(w, "employee not found", http.StatusForbidden)
						return
					}
					log.Errorf("failed to get employee: %v", err)
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}

				rc := employee.ReviewContext{Employee: emp}
				if reviewID := req.Header.Get("X-Review-Employee-Id"); reviewID != "" && reviewID != emp.ID {
					if !rc.IsManager() {
						http.Error(w, "review mode requires a manager", http.StatusForbidden)
						return
					}
					rc.ViewingID = reviewID
				}
				ctx = employee.WithReview(ctx, rc)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}

func employeeIDFromRequest(deps *Dependencies, req *http.Request) string {
	authorization := req.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authorization, "Bearer "); ok {
		claims, err := deps.TokenIssuer.Validate(token)
		if err != nil {
			log.Debugf("invalid token: %v", err)
			return ""
		}
		return claims.EmployeeID
	}
	return req.Header.Get("X-Employee-Id")
}
