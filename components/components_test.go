package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeiZel/self-hosted/content"
)

func TestServiceCardStorageScenario(t *testing.T) {
	s := ServiceCards("Services Overview", []content.Service{{
		Title:       "Storage",
		Description: "Sync",
		Category:    content.Some("Storage"),
		Destination: content.Some("/docs/services/storage"),
	}})

	require.Len(t, s.Items, 1)
	item := s.Items[0]
	assert.Equal(t, SectionServices, s.Kind)
	assert.Equal(t, "Storage", item.Title)
	assert.Equal(t, content.Some("Sync"), item.Description)
	assert.True(t, item.Navigable())
	assert.Equal(t, content.Some("Storage"), item.Category)
	assert.False(t, item.Icon.IsSet())
}

func TestTechItemNameOnly(t *testing.T) {
	s := TechStack("", []content.TechItem{{Name: "Helm"}})

	require.Len(t, s.Items, 1)
	assert.Equal(t, RenderedItem{Title: "Helm"}, s.Items[0])
	assert.False(t, s.Items[0].Description.IsSet())
	assert.False(t, s.Items[0].Icon.IsSet())
	assert.False(t, s.Items[0].Navigable())
}

func TestDestinationRoundTrip(t *testing.T) {
	paths := []string{"/docs/deployment/docker", "/docs/deployment/kubernetes", "https://github.com/ZeiZel/self-hosted"}

	var links []content.QuickStartLink
	for _, p := range paths {
		links = append(links, content.QuickStartLink{Title: "t", Description: "d", Destination: p})
	}
	s := QuickStartLinks("Quick Start", links)

	require.Len(t, s.Items, len(paths))
	for i, item := range s.Items {
		var got []string
		ok := item.Activate(NavigatorFunc(func(path string) { got = append(got, path) }))
		assert.True(t, ok)
		assert.Equal(t, []string{paths[i]}, got)
	}
}

func TestInertItemDoesNotNavigate(t *testing.T) {
	s := FeatureGrid("Key Features", []content.Feature{{Title: "Production Ready", Description: "Hardened", Icon: content.Some("✅")}})

	called := false
	ok := s.Items[0].Activate(NavigatorFunc(func(string) { called = true }))
	assert.False(t, ok)
	assert.False(t, called)
	assert.Equal(t, content.Some("✅"), s.Items[0].Icon)
}

func TestIconAbsencePreserved(t *testing.T) {
	services := ServiceCards("", []content.Service{
		{Title: "A", Description: "a"},
		{Title: "B", Description: "b", Icon: content.Some("📝")},
	})
	assert.False(t, services.Items[0].Icon.IsSet())
	assert.True(t, services.Items[1].Icon.IsSet())

	links := QuickStartLinks("", []content.QuickStartLink{{Title: "A", Description: "a", Destination: "/a"}})
	assert.False(t, links.Items[0].Icon.IsSet())
}

func TestOrderIsPreserved(t *testing.T) {
	in := []content.TechItem{{Name: "Terraform"}, {Name: "Ansible"}, {Name: "Caddy"}, {Name: "Ansible"}}
	s := TechStack("Technology Stack", in)

	var names []string
	for _, item := range s.Items {
		names = append(names, item.Title)
	}
	assert.Equal(t, []string{"Terraform", "Ansible", "Caddy", "Ansible"}, names)
	assert.Equal(t, "Terraform", in[0].Name)
}

func TestEmptyListsRenderEmptySections(t *testing.T) {
	assert.Empty(t, ServiceCards("x", nil).Items)
	assert.NotNil(t, FeatureGrid("x", nil).Items)
}

func TestAction(t *testing.T) {
	a := Action("Get Started →", content.Action{LabelKey: "hero.getStarted", Destination: "/docs/getting-started/overview", Primary: true})
	assert.Equal(t, RenderedAction{Label: "Get Started →", Destination: "/docs/getting-started/overview", Primary: true}, a)
}
