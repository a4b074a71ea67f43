package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/ZeiZel/self-hosted/composer"
	"github.com/ZeiZel/self-hosted/i18n"
)

type localeInfo struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	HTMLLang string `json:"html_lang"`
	Default  bool   `json:"default"`
}

func (s *Server) apiRouter() http.Handler {
	router := httprouter.New()
	router.GET("/api/pages/:page", s.PageAPI)
	router.GET("/api/locales", s.LocalesAPI)
	return router
}

// PageAPI returns a composed page as JSON. The locale comes from ?lang= or, failing
// that, the Accept-Language header; unsupported locales get the default bundle.
func (s *Server) PageAPI(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	locale := s.site.Locales.Negotiate(r.Header.Get("Accept-Language"))
	if lang := r.URL.Query().Get("lang"); lang != "" {
		locale = i18n.Locale(lang)
	}

	page, ok := s.site.Composer.ComposePage(composer.PageName(ps.ByName("page")), locale)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown page"})
		return
	}
	w.Header().Set("Content-Language", string(page.Locale))
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) LocalesAPI(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	m := s.site.Manifest
	out := make([]localeInfo, 0, len(m.Locales))
	for _, l := range m.Locales {
		out = append(out, localeInfo{
			Code:     l.Code,
			Label:    l.Label,
			HTMLLang: l.HTMLLang,
			Default:  l.Code == m.DefaultLocale,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("error encoding response", "error", err)
	}
}
