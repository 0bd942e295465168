package cli

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/iqrbr/iqr/pkg/scoring"
)

func homeViewHandler(tmpl *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := map[string]any{
			"version":   version,
			"commit":    commit,
			"max_score": scoring.MaxScore(),
		}
		if err := tmpl.ExecuteTemplate(w, "home", d); err != nil {
			slog.Error("template render failed", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}
