package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	logctx "github.com/pribylovaa/personnel-oauth/internal/pkg/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type authorizePage struct {
	ClientID string
	State    string
}

type errorPage struct {
	Title  string
	Reason string
}

type registerResultPage struct {
	Username string
}

// render пишет страницу name со статусом status.
// При ошибке шаблона отдаётся 500 без частично записанного тела.
func render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		logctx.From(r.Context()).Error("template_failed",
			slog.String("template", name),
			slog.String("err", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func renderError(w http.ResponseWriter, r *http.Request, status int, title, reason string) {
	render(w, r, status, "error.html", errorPage{Title: title, Reason: reason})
}
