package content

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/ZeiZel/self-hosted/config"
)

// Catalog holds the descriptor lists of the site in display order.
// It is loaded once and shared read-only.
type Catalog struct {
	Features       []Feature        `yaml:"features"`
	Services       []Service        `yaml:"services"`
	QuickStart     []QuickStartLink `yaml:"quick_start"`
	TechStack      []TechItem       `yaml:"tech_stack"`
	HeroActions    []Action         `yaml:"hero_actions"`
	ServiceActions []Action         `yaml:"service_actions"`
	AboutActions   []Action         `yaml:"about_actions"`
}

type validator interface {
	Validate() error
}

// NewCatalog validates c and returns it by reference.
func NewCatalog(c Catalog) (*Catalog, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports the first entry that breaks its variant's contract,
// e.g. "content: services[2].title: is required".
func (c *Catalog) Validate() error {
	lists := []struct {
		name  string
		items []validator
	}{
		{"features", asValidators(c.Features)},
		{"services", asValidators(c.Services)},
		{"quick_start", asValidators(c.QuickStart)},
		{"tech_stack", asValidators(c.TechStack)},
		{"hero_actions", asValidators(c.HeroActions)},
		{"service_actions", asValidators(c.ServiceActions)},
		{"about_actions", asValidators(c.AboutActions)},
	}
	for _, l := range lists {
		for i, item := range l.items {
			if err := item.Validate(); err != nil {
				return config.WithSource(err, "content", l.name+"["+strconv.Itoa(i)+"]")
			}
		}
	}
	return nil
}

// LabelKeys returns every text bundle key referenced by the catalog's actions.
func (c *Catalog) LabelKeys() []string {
	var keys []string
	for _, list := range [][]Action{c.HeroActions, c.ServiceActions, c.AboutActions} {
		for _, a := range list {
			keys = append(keys, a.LabelKey)
		}
	}
	return keys
}

func asValidators[T validator](items []T) []validator {
	out := make([]validator, len(items))
	for i := range items {
		out[i] = items[i]
	}
	return out
}

// Load reads and validates a content file. Unknown keys are rejected.
func Load(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var c Catalog
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, &config.ConfigurationError{Source: filename, Err: err}
	}

	out, err := NewCatalog(c)
	if err != nil {
		return nil, config.WithSource(err, filename, "")
	}
	return out, nil
}
