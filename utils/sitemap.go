package utils

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// GenerateSitemaps writes sitemap.xml into dir.
func GenerateSitemaps(dir, origin string, hrefs []string, lastMod time.Time) error {
	xmlOutput, err := GenerateSitemapContent(origin, hrefs, lastMod)
	if err != nil {
		return err
	}

	xmlFile, err := os.Create(filepath.Join(dir, "sitemap.xml"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer xmlFile.Close()

	if _, err := xmlFile.Write([]byte(xml.Header + xmlOutput)); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// GenerateSitemapContent lists hrefs (site paths including the base URL) under origin.
func GenerateSitemapContent(origin string, hrefs []string, lastMod time.Time) (string, error) {
	baseURL := strings.TrimSuffix(origin, "/")
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	seen := make(map[string]struct{}, len(hrefs))
	for _, href := range hrefs {
		if _, dup := seen[href]; dup {
			continue
		}
		seen[href] = struct{}{}

		url := Url{
			Loc:        fmt.Sprintf("%s%s", baseURL, href),
			LastMod:    lastMod.Format("2006-01-02"),
			ChangeFreq: "weekly",
		}
		if strings.HasSuffix(href, "/") {
			url.Priority = "1.0"
		}
		sitemap.Urls = append(sitemap.Urls, url)
	}

	// Generate XML sitemap
	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(xmlOutput), nil
}
