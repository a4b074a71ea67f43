package cmd

import (
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ZeiZel/self-hosted/handlers"
	"github.com/ZeiZel/self-hosted/site"
	"github.com/ZeiZel/self-hosted/utils"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static version of the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := env.PublicDir
		if cmd.Flags().Changed("out") {
			out, _ = cmd.Flags().GetString("out")
		}

		s, err := loadSite()
		if err != nil {
			return err
		}

		slog.Info("building static site", "out", out)
		if err := buildSite(s, out, time.Now()); err != nil {
			return err
		}
		slog.Info("static site generated successfully", "out", out)
		return nil
	},
}

// buildSite renders every page in every locale through the router into out, laid out
// the way the site is served under its base URL.
func buildSite(s *site.Site, out string, now time.Time) error {
	srv, err := handlers.NewServer(s)
	if err != nil {
		return err
	}
	router, err := srv.SetupRouter()
	if err != nil {
		return errors.Wrap(err, "error setting up router")
	}

	if err := os.MkdirAll(out, os.ModePerm); err != nil {
		return errors.Wrap(err, "error creating output directory")
	}

	if err := copyDir(s.StaticDir(), filepath.Join(out, "static")); err != nil {
		return errors.Wrap(err, "error copying static files")
	}

	// Generate static pages
	server := httptest.NewServer(router)
	defer server.Close()

	routes := srv.RegisteredRoutes()
	hrefs := make([]string, 0, len(routes))
	for _, route := range routes {
		target := filepath.Join(out, filepath.FromSlash(strings.TrimPrefix(route.Path, "/")), "index.html")
		if err := generateStaticPage(server, route.Href, target, http.StatusOK); err != nil {
			return errors.Wrapf(err, "error generating static page for %s", route.Href)
		}
		hrefs = append(hrefs, route.Href)
	}

	notFound := strings.TrimSuffix(s.Manifest.BaseURL, "/") + "/404"
	if err := generateStaticPage(server, notFound, filepath.Join(out, "404.html"), http.StatusNotFound); err != nil {
		return errors.Wrap(err, "error generating 404 page")
	}

	// Generate sitemaps
	if err := utils.GenerateSitemaps(out, s.Manifest.Origin, hrefs, now); err != nil {
		return errors.Wrap(err, "error generating sitemap")
	}
	return nil
}

func generateStaticPage(server *httptest.Server, href, filePath string, want int) error {
	resp, err := http.Get(server.URL + href)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return errors.WithStack(err)
	}
	if err := os.WriteFile(filePath, body, 0644); err != nil {
		return errors.WithStack(err)
	}

	slog.Debug("generated page", "href", href, "file", filePath)
	return nil
}

// copyDir copies src into dst. A missing src is not an error.
func copyDir(src, dst string) error {
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(dst, rel)
		if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
			return err
		}
		slog.Debug("copying static file", "src", path, "dst", destPath)
		return copyFile(path, destPath)
	})
}

func copyFile(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, input, 0644)
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("out", "o", "public", "Output directory (overrides PUBLIC_DIR)")
}
