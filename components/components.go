package components

import "github.com/ZeiZel/self-hosted/content"

// The components below map descriptor lists to sections. Items keep their input order
// and optional fields stay absent when the descriptor leaves them out.

// ServiceCards renders the service catalog. Services with a category get a label above
// the title; services with a link become navigable cards.
func ServiceCards(title string, services []content.Service) RenderedSection {
	items := make([]RenderedItem, 0, len(services))
	for _, s := range services {
		items = append(items, RenderedItem{
			Title:       s.Title,
			Description: content.Some(s.Description),
			Icon:        s.Icon,
			Category:    s.Category,
			Destination: s.Destination,
		})
	}
	return RenderedSection{Kind: SectionServices, Title: title, Items: items}
}

// TechStack renders technology tiles. Tiles are never navigable.
func TechStack(title string, techs []content.TechItem) RenderedSection {
	items := make([]RenderedItem, 0, len(techs))
	for _, t := range techs {
		items = append(items, RenderedItem{
			Title:       t.Name,
			Description: t.Description,
			Icon:        t.Icon,
		})
	}
	return RenderedSection{Kind: SectionTechStack, Title: title, Items: items}
}

func QuickStartLinks(title string, links []content.QuickStartLink) RenderedSection {
	items := make([]RenderedItem, 0, len(links))
	for _, l := range links {
		items = append(items, RenderedItem{
			Title:       l.Title,
			Description: content.Some(l.Description),
			Icon:        l.Icon,
			Destination: content.Some(l.Destination),
		})
	}
	return RenderedSection{Kind: SectionQuickStart, Title: title, Items: items}
}

func FeatureGrid(title string, features []content.Feature) RenderedSection {
	items := make([]RenderedItem, 0, len(features))
	for _, f := range features {
		items = append(items, RenderedItem{
			Title:       f.Title,
			Description: content.Some(f.Description),
			Icon:        f.Icon,
			Destination: f.Destination,
		})
	}
	return RenderedSection{Kind: SectionFeatures, Title: title, Items: items}
}
