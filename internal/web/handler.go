// Package web serves the interview as a single-page HTML form.
package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/kalambet/hearback/internal/interview"
)

// Handler renders the interview form and its submission results. It is
// stateless: every request works over the immutable catalog and its own
// response slice, so concurrent requests share nothing mutable.
type Handler struct {
	agent *interview.Agent
	tmpl  *template.Template
}

// NewHandler builds the form-server handler around the given agent.
func NewHandler(agent *interview.Agent) (http.Handler, error) {
	tmpl, err := template.New("pages").Parse(pagesHTML)
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	h := &Handler{agent: agent, tmpl: tmpl}

	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Get("/health", handleHealth)
	r.Get("/", h.handleForm)
	r.Post("/", h.handleSubmit)
	// The wizard treats any non-POST request as a request for the form.
	r.MethodNotAllowed(h.handleForm)
	r.NotFound(h.handleForm)

	return r, nil
}

type formData struct {
	Questions []interview.Question
}

type resultData struct {
	Summary   string
	Responses []interview.Response
}

func (h *Handler) handleForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "form", formData{Questions: h.agent.Questions()})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	// Missing fields default to the empty string, which the engine treats
	// as a valid (unanswered) response.
	responses, err := h.agent.Conduct(func(q interview.Question) (string, error) {
		return r.PostForm.Get(q.Key), nil
	})
	if err != nil {
		http.Error(w, "interview failed", http.StatusInternalServerError)
		return
	}

	h.render(w, "result", resultData{
		Summary:   h.agent.Summarize(responses),
		Responses: responses,
	})
}

// render executes the named template into a buffer first so a template
// error never produces a half-written page.
func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("rendering page", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// requestLogger emits one slog line per request, tagged with a fresh
// request id. Nothing about the submission content is logged.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Info("request",
			"id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
