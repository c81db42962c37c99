package webui

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/riskibarqy/football-lab/internal/infrastructure/gateway"
	"github.com/riskibarqy/football-lab/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	pageLogin      = "login.html"
	pageRegister   = "register.html"
	pageHome       = "home.html"
	pageTeamStats  = "team_stats.html"
	pagePlayerInfo = "player_info.html"
)

const (
	titleLogin      = "Login Page"
	titleRegister   = "Registration Page"
	titleHome       = "Home Page"
	titleTeamStats  = "Team Stats"
	titlePlayerInfo = "Player Info"
	titleError      = "ERROR"
)

var pageTemplates = []string{
	pageLogin,
	pageRegister,
	pageHome,
	pageTeamStats,
	pagePlayerInfo,
}

// pageData is what every page template receives. Page holds the page's own
// view-model and is nil on a degraded render.
type pageData struct {
	Title  string
	Notice string
	Page   any
}

// Renderer executes the embedded page set. Each page is parsed together with
// the shared base layout.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"currentYear": func() int { return time.Now().Year() },
	}

	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, page := range pageTemplates {
		tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS,
			"templates/base.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, page string, data pageData) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("template %s is not loaded", page)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}

// StaticHandler serves the embedded assets under /resources/.
func StaticHandler() (http.Handler, error) {
	content, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("open static assets: %w", err)
	}
	return http.StripPrefix("/resources/", http.FileServer(http.FS(content))), nil
}

// render buffers the whole page so a template failure never leaves a
// half-written response.
func (h *Handler) render(ctx context.Context, w http.ResponseWriter, page string, data pageData) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if h.renderer == nil {
		h.logger.ErrorContext(ctx, "renderer is not configured", "template", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if err := h.renderer.Render(buf, page, data); err != nil {
		h.logger.ErrorContext(ctx, "render template failed", "template", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.B)
}

// renderDegraded answers a failed request with the page's error state: title
// ERROR, no data, status 200.
func (h *Handler) renderDegraded(ctx context.Context, w http.ResponseWriter, page, msg string, err error, args ...any) {
	args = append(args, "template", page, "error_kind", errorKind(err), "error", err)
	if isInputError(err) {
		h.logger.WarnContext(ctx, msg, args...)
	} else {
		h.logger.ErrorContext(ctx, msg, args...)
	}

	h.render(ctx, w, page, pageData{Title: titleError})
}

// errorKind names the failure category attached to degraded-render logs.
func errorKind(err error) string {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, gateway.ErrUnavailable), errors.Is(err, usecase.ErrDependencyUnavailable):
		return "unavailable"
	case errors.Is(err, gateway.ErrStatement):
		return "statement"
	default:
		return "internal"
	}
}
