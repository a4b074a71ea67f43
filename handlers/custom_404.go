package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ZeiZel/self-hosted/i18n"
)

func (s *Server) Custom404Handler(w http.ResponseWriter, r *http.Request) {
	locale := s.localeFromPath(r.URL.Path)

	notFoundHtml, err := s.renderer.NotFound(s.chrome(locale, ""))
	if err != nil {
		slog.Error("error rendering 404 page", "path", r.URL.Path, "error", err)
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(notFoundHtml))
}

// localeFromPath picks the locale from the first segment after the base URL.
func (s *Server) localeFromPath(path string) i18n.Locale {
	rest := strings.TrimPrefix(path, strings.TrimSuffix(s.site.Manifest.BaseURL, "/"))
	rest = strings.TrimPrefix(rest, "/")
	segment, _, _ := strings.Cut(rest, "/")
	locale, _ := s.site.Locales.Parse(segment)
	return locale
}
