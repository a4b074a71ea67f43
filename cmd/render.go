package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ZeiZel/self-hosted/composer"
	"github.com/ZeiZel/self-hosted/handlers"
	"github.com/ZeiZel/self-hosted/i18n"
	"github.com/ZeiZel/self-hosted/site"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print one composed page",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, _ := cmd.Flags().GetString("lang")
		page, _ := cmd.Flags().GetString("page")
		format, _ := cmd.Flags().GetString("format")

		s, err := loadSite()
		if err != nil {
			return err
		}
		return renderPage(cmd.OutOrStdout(), s, composer.PageName(page), i18n.Locale(lang), format)
	},
}

func renderPage(w io.Writer, s *site.Site, name composer.PageName, locale i18n.Locale, format string) error {
	if locale == "" {
		locale = s.Locales.Default()
	}

	switch format {
	case "html":
		srv, err := handlers.NewServer(s)
		if err != nil {
			return err
		}
		html, err := srv.RenderPage(name, locale)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return errors.WithStack(err)
	case "json", "text":
	default:
		return errors.Errorf("unknown format %q, want text, json or html", format)
	}

	page, ok := s.Composer.ComposePage(name, locale)
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.WithStack(enc.Encode(page))
	}
	return errors.WithStack(writeOutline(w, page))
}

// writeOutline prints the page as an indented plain text outline.
func writeOutline(w io.Writer, page composer.Page) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s/%s]\n", page.Title, page.Name, page.Locale)

	for _, section := range page.Sections {
		fmt.Fprintf(&b, "\n## %s (%s)\n", section.Title, section.Kind)
		if d, ok := section.Description.Get(); ok {
			fmt.Fprintf(&b, "%s\n", d)
		}
		for _, p := range section.Paragraphs {
			fmt.Fprintf(&b, "%s\n", p)
		}
		for _, item := range section.Items {
			line := "  - "
			if icon, ok := item.Icon.Get(); ok {
				line += icon + " "
			}
			line += item.Title
			if category, ok := item.Category.Get(); ok {
				line += " [" + category + "]"
			}
			if d, ok := item.Description.Get(); ok {
				line += ": " + d
			}
			if dest, ok := item.Destination.Get(); ok {
				line += " -> " + dest
			}
			b.WriteString(line + "\n")
		}
		for _, a := range section.Actions {
			fmt.Fprintf(&b, "  * %s -> %s\n", a.Label, a.Destination)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("lang", "l", "", "Locale to compose (default locale when empty)")
	renderCmd.Flags().String("page", string(composer.PageHome), "Page to compose: home or about")
	renderCmd.Flags().StringP("format", "f", "text", "Output format: text, json or html")
}
