package contact

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Toasts carries the author-configured toast copy surfaced on submission
// outcomes.
type Toasts struct {
	Success string
	Error   string
}

// RegisterRoutes mounts the contact endpoints under /api/contact.
func RegisterRoutes(r chi.Router, store *Store, submitter *Submitter, toasts Toasts) {
	r.Route("/api/contact", func(r chi.Router) {
		r.Post("/", handleSubmit(store, submitter, toasts))
		r.Get("/messages", handleListMessages(store))
	})
}

func handleSubmit(store *Store, submitter *Submitter, toasts Toasts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "bad form data", http.StatusBadRequest)
				return
			}
		}

		m := &Message{
			Name:    r.FormValue("name"),
			Email:   r.FormValue("email"),
			Subject: r.FormValue("subject"),
			Body:    r.FormValue("message"),
		}

		// Persist first so the message survives a failed relay.
		if err := store.Create(r.Context(), m); err != nil {
			log.Printf("storing contact message: %v", err)
			writeJSON(w, http.StatusInternalServerError, Result{Status: "error", Message: toasts.Error})
			return
		}

		if err := submitter.Submit(r.Context(), m); err != nil {
			log.Printf("contact submission failed: %v", err)
			writeJSON(w, http.StatusBadGateway, Result{Status: "error", Message: toasts.Error})
			return
		}

		if err := store.MarkRelayed(r.Context(), m.ID); err != nil {
			log.Printf("marking message relayed: %v", err)
		}

		writeJSON(w, http.StatusOK, Result{Status: "ok", Message: toasts.Success})
	}
}

func handleListMessages(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		messages, err := store.List(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if messages == nil {
			messages = []Message{}
		}

		writeJSON(w, http.StatusOK, messages)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
