package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/ZeiZel/self-hosted/components"
	"github.com/ZeiZel/self-hosted/composer"
	"github.com/ZeiZel/self-hosted/i18n"
	"github.com/ZeiZel/self-hosted/render"
	"github.com/ZeiZel/self-hosted/site"
	"github.com/ZeiZel/self-hosted/utils"
)

// PageRoute is one concrete page URL: a page in one locale.
type PageRoute struct {
	Page   composer.PageName
	Locale i18n.Locale
	// Path is relative to the base URL and includes the locale prefix, e.g. "/ru/about".
	Path string
	// Href is Path under the base URL.
	Href string
}

type Server struct {
	site     *site.Site
	renderer *render.Renderer
	routes   []PageRoute
	now      func() time.Time
}

func NewServer(s *site.Site) (*Server, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, errors.Wrap(err, "error loading templates")
	}

	srv := &Server{site: s, renderer: renderer, now: time.Now}
	for _, route := range s.Manifest.Routes {
		for _, locale := range s.Locales.Supported() {
			links := srv.links(locale)
			srv.routes = append(srv.routes, PageRoute{
				Page:   composer.PageName(route.Page),
				Locale: locale,
				Path:   links.Prefix(locale) + route.Path,
				Href:   links.Href(route.Path),
			})
		}
	}
	return srv, nil
}

// RegisteredRoutes lists every page URL the router serves.
func (s *Server) RegisteredRoutes() []PageRoute {
	out := make([]PageRoute, len(s.routes))
	copy(out, s.routes)
	return out
}

func (s *Server) SetupRouter() (*mux.Router, error) {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(s.Custom404Handler)

	base := strings.TrimSuffix(s.site.Manifest.BaseURL, "/")
	r := router
	if base != "" {
		r = router.PathPrefix(base).Subrouter()
		r.NotFoundHandler = router.NotFoundHandler
	}

	// Set up static file serving
	r.PathPrefix("/static/").Handler(http.StripPrefix(base+"/static/", http.FileServer(http.Dir(s.site.StaticDir()))))

	// JSON page API
	r.PathPrefix("/api/").Handler(http.StripPrefix(base, s.apiRouter()))

	r.HandleFunc("/go", s.ActivateHandler).Methods("GET")

	var others []string
	for _, l := range s.site.Locales.Supported() {
		if l != s.site.Locales.Default() {
			others = append(others, string(l))
		}
	}
	langPattern := "/{lang:" + strings.Join(others, "|") + "}"

	// Set up routes from manifest, with an optional language prefix
	for _, route := range s.site.Manifest.Routes {
		handler := s.DynamicHandler(composer.PageName(route.Page), route.Path)
		r.HandleFunc(route.Path, handler).Methods("GET")
		if len(others) == 0 {
			continue
		}
		r.HandleFunc(langPattern+route.Path, handler).Methods("GET")
		if route.Path == "/" {
			r.HandleFunc(langPattern, handler).Methods("GET")
		}
	}

	hrefs := make([]string, 0, len(s.routes))
	for _, route := range s.routes {
		hrefs = append(hrefs, route.Href)
	}
	sitemap, err := utils.GenerateSitemapContent(s.site.Manifest.Origin, hrefs, s.now())
	if err != nil {
		return nil, errors.Wrap(err, "error generating sitemap")
	}
	r.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.Write([]byte(sitemap))
	}).Methods("GET")

	return router, nil
}

// pathLocale reads the locale from the {lang} route variable; unprefixed paths are
// in the default locale.
type pathLocale struct {
	r       *http.Request
	locales *i18n.Catalog
}

func (p pathLocale) CurrentLocale() i18n.Locale {
	if lang := mux.Vars(p.r)["lang"]; lang != "" {
		return i18n.Locale(lang)
	}
	return p.locales.Default()
}

func (s *Server) DynamicHandler(page composer.PageName, pagePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := pathLocale{r: r, locales: s.site.Locales}.CurrentLocale()

		composed, ok := s.site.Composer.ComposePage(page, locale)
		if !ok {
			s.Custom404Handler(w, r)
			return
		}

		pageHtml, err := s.renderer.Page(composed, s.chrome(composed.Locale, pagePath))
		if err != nil {
			slog.Error("error rendering page", "page", page, "locale", composed.Locale, "error", err)
			http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Language", string(composed.Locale))
		_, err = w.Write([]byte(pageHtml))
		if err != nil {
			slog.Warn("error writing response", "path", r.URL.Path, "error", err)
		}
	}
}

// RenderPage composes and renders one page outside of a request.
func (s *Server) RenderPage(page composer.PageName, locale i18n.Locale) (string, error) {
	composed, ok := s.site.Composer.ComposePage(page, locale)
	if !ok {
		return "", errors.Errorf("unknown page %q", page)
	}

	pagePath := "/"
	for _, route := range s.site.Manifest.Routes {
		if composer.PageName(route.Page) == page {
			pagePath = route.Path
			break
		}
	}
	return s.renderer.Page(composed, s.chrome(composed.Locale, pagePath))
}

// redirectNavigator performs navigation for activated items with an HTTP redirect.
type redirectNavigator struct {
	w     http.ResponseWriter
	r     *http.Request
	links render.Links
}

func (n redirectNavigator) Navigate(path string) {
	http.Redirect(n.w, n.r, n.links.Href(path), http.StatusFound)
}

// ActivateHandler follows a home page item: /go?section=services&item=2&lang=ru.
// Inert items and unknown positions are not found.
func (s *Server) ActivateHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	locale, _ := s.site.Locales.Parse(q.Get("lang"))
	kind := components.SectionKind(q.Get("section"))
	idx, err := strconv.Atoi(q.Get("item"))
	if err != nil || idx < 0 {
		http.Error(w, "invalid item", http.StatusBadRequest)
		return
	}

	page := s.site.Composer.Compose(locale)
	for _, section := range page.Sections {
		if section.Kind != kind || idx >= len(section.Items) {
			continue
		}
		nav := redirectNavigator{w: w, r: r, links: s.links(page.Locale)}
		if section.Items[idx].Activate(nav) {
			return
		}
	}
	s.Custom404Handler(w, r)
}

func (s *Server) links(locale i18n.Locale) render.Links {
	return render.Links{
		BaseURL: s.site.Manifest.BaseURL,
		Default: s.site.Locales.Default(),
		Locale:  locale,
	}
}

func (s *Server) chrome(locale i18n.Locale, pagePath string) render.Chrome {
	return render.Chrome{
		Manifest: s.site.Manifest,
		Bundle:   s.site.Locales.Resolve(locale),
		Links:    s.links(locale),
		Path:     pagePath,
		Year:     s.now().Year(),
	}
}
