package render

import (
	"html/template"

	"github.com/ZeiZel/self-hosted/components"
	"github.com/ZeiZel/self-hosted/config"
	"github.com/ZeiZel/self-hosted/content"
	"github.com/ZeiZel/self-hosted/i18n"
)

// Views flatten optional fields into value/flag pairs that plush can branch on.

type sectionView struct {
	Kind           string
	Title          string
	HasTitle       bool
	Description    template.HTML
	HasDescription bool
	Paragraphs     []template.HTML
	Items          []itemView
	Actions        []actionView
}

type itemView struct {
	Title          string
	Description    template.HTML
	HasDescription bool
	Icon           string
	HasIcon        bool
	Category       string
	HasCategory    bool
	Href           string
	Navigable      bool
	External       bool
}

type actionView struct {
	Label string
	Href  string
	Class string
}

type navView struct {
	Label    string
	Href     string
	Position string
	External bool
}

type footerColumnView struct {
	Title string
	Items []navView
}

type metaView struct {
	Name       string
	Content    string
	IsProperty bool
}

func newSectionView(s components.RenderedSection, links Links) sectionView {
	v := sectionView{
		Kind:     string(s.Kind),
		Title:    s.Title,
		HasTitle: s.Title != "",
		Items:    make([]itemView, 0, len(s.Items)),
	}
	if d, ok := s.Description.Get(); ok {
		v.Description = Inline(d)
		v.HasDescription = true
	}
	for _, p := range s.Paragraphs {
		v.Paragraphs = append(v.Paragraphs, Inline(p))
	}
	for _, item := range s.Items {
		v.Items = append(v.Items, newItemView(item, links))
	}
	for _, a := range s.Actions {
		v.Actions = append(v.Actions, actionView{
			Label: a.Label,
			Href:  links.Href(a.Destination),
			Class: actionClass(s.Kind, a),
		})
	}
	return v
}

func newItemView(item components.RenderedItem, links Links) itemView {
	v := itemView{Title: item.Title}
	if d, ok := item.Description.Get(); ok {
		v.Description = Inline(d)
		v.HasDescription = true
	}
	if icon, ok := item.Icon.Get(); ok {
		v.Icon = icon
		v.HasIcon = true
	}
	if c, ok := item.Category.Get(); ok {
		v.Category = c
		v.HasCategory = true
	}
	if dest, ok := item.Destination.Get(); ok {
		v.Href = links.Href(dest)
		v.Navigable = true
		v.External = content.IsExternal(dest)
	}
	return v
}

func actionClass(kind components.SectionKind, a components.RenderedAction) string {
	switch {
	case kind == components.SectionServices:
		return "button button--outline button--primary"
	case a.Primary:
		return "button button--primary button--lg"
	}
	return "button button--secondary button--lg"
}

func newNavView(item config.NavItem, bundle *i18n.TextBundle, links Links) navView {
	label := item.Label
	if item.LabelKey != "" {
		label = bundle.Text(item.LabelKey)
	}
	v := navView{Label: label, Position: item.Position}
	if item.Href != "" {
		v.Href = item.Href
		v.External = true
	} else {
		v.Href = links.Href(item.To)
	}
	if v.Position == "" {
		v.Position = "left"
	}
	return v
}
