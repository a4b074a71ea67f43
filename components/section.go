package components

import "github.com/ZeiZel/self-hosted/content"

type SectionKind string

const (
	SectionHero       SectionKind = "hero"
	SectionAbout      SectionKind = "about"
	SectionFeatures   SectionKind = "features"
	SectionServices   SectionKind = "services"
	SectionQuickStart SectionKind = "quickstart"
	SectionTechStack  SectionKind = "techstack"
	SectionAuthor     SectionKind = "author"
)

// RenderedSection is one composed page section, ready for a layout host.
type RenderedSection struct {
	Kind        SectionKind              `json:"kind"`
	Title       string                   `json:"title"`
	Description content.Optional[string] `json:"description"`
	Paragraphs  []string                 `json:"paragraphs,omitempty"`
	Items       []RenderedItem           `json:"items"`
	Actions     []RenderedAction         `json:"actions,omitempty"`
}

// RenderedItem is a card, link or tile inside a section.
type RenderedItem struct {
	Title       string                   `json:"title"`
	Description content.Optional[string] `json:"description"`
	Icon        content.Optional[string] `json:"icon"`
	Category    content.Optional[string] `json:"category"`
	Destination content.Optional[string] `json:"destination"`
}

// Navigable reports whether the item is rendered as a link.
func (i RenderedItem) Navigable() bool { return i.Destination.IsSet() }

// Activate hands the item's destination to nav. Inert items do nothing and return false.
func (i RenderedItem) Activate(nav Navigator) bool {
	dest, ok := i.Destination.Get()
	if !ok {
		return false
	}
	nav.Navigate(dest)
	return true
}

// RenderedAction is a localized button such as "Get Started →".
type RenderedAction struct {
	Label       string `json:"label"`
	Destination string `json:"destination"`
	Primary     bool   `json:"primary"`
}

// Navigator is implemented by the host; the core only supplies target paths.
type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Action renders a with an already localized label.
func Action(label string, a content.Action) RenderedAction {
	return RenderedAction{Label: label, Destination: a.Destination, Primary: a.Primary}
}
