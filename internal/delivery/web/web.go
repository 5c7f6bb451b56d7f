// Package web serves the single-page invitation tracker client.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"invitationtracker/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler renders the client application.
type Handler struct {
	logger    *slog.Logger
	basePath  string
	templates *template.Template
}

// NewHandler parses the embedded templates. basePath is the prefix the API
// routes are mounted under; empty means the site root.
func NewHandler(logger *slog.Logger, basePath string) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	if basePath != "" && !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimSuffix(basePath, "/")

	return &Handler{
		logger:    logger,
		basePath:  basePath,
		templates: tmpl,
	}, nil
}

// TemplateData is passed to index.html.
type TemplateData struct {
	BasePath  string
	SeedAreas []string
}

// Index serves the client page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := TemplateData{
		BasePath:  h.basePath,
		SeedAreas: domain.SeedAreaNames,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		h.logger.ErrorContext(r.Context(), "render index", "err", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
