package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

// recoverJSON converts a panicking handler into the same JSON 500 shape every
// other failure uses.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Errorf("[relay] panic in %s %s: %v", r.Method, r.URL.Path, rec)
				respondJSON(w, http.StatusInternalServerError, errorResponse{Error: fmt.Sprint(rec)})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(recoverJSON)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "Not Found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method Not Allowed"})
	})
	r.Post("/update", h.Update)
	// all methods reach the handler; non-POST acts as a liveness probe
	r.HandleFunc("/webhook", h.Webhook)
	return r
}
