package content

import (
	"net/url"
	"strings"

	"github.com/ZeiZel/self-hosted/config"
)

// Service is one entry of the service catalog.
type Service struct {
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	Icon        Optional[string] `yaml:"icon"`
	Category    Optional[string] `yaml:"category"`
	Destination Optional[string] `yaml:"link"`
}

// TechItem is one entry of the technology stack. Only the name is required.
type TechItem struct {
	Name        string           `yaml:"name"`
	Description Optional[string] `yaml:"description"`
	Icon        Optional[string] `yaml:"icon"`
}

// QuickStartLink always points somewhere; quick-start entries without a target make no sense.
type QuickStartLink struct {
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	Destination string           `yaml:"to"`
	Icon        Optional[string] `yaml:"icon"`
}

type Feature struct {
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	Icon        Optional[string] `yaml:"icon"`
	Destination Optional[string] `yaml:"link"`
}

// Action is a localized button: LabelKey is looked up in the text bundle.
type Action struct {
	LabelKey    string `yaml:"label_key"`
	Destination string `yaml:"to"`
	Primary     bool   `yaml:"primary"`
}

func (s Service) Validate() error {
	if err := required("title", s.Title); err != nil {
		return err
	}
	if err := required("description", s.Description); err != nil {
		return err
	}
	if err := optionalText("icon", s.Icon); err != nil {
		return err
	}
	if err := optionalText("category", s.Category); err != nil {
		return err
	}
	return optionalDestination("link", s.Destination)
}

func (t TechItem) Validate() error {
	if err := required("name", t.Name); err != nil {
		return err
	}
	if err := optionalText("description", t.Description); err != nil {
		return err
	}
	return optionalText("icon", t.Icon)
}

func (q QuickStartLink) Validate() error {
	if err := required("title", q.Title); err != nil {
		return err
	}
	if err := required("description", q.Description); err != nil {
		return err
	}
	if err := destination("to", q.Destination); err != nil {
		return err
	}
	return optionalText("icon", q.Icon)
}

func (f Feature) Validate() error {
	if err := required("title", f.Title); err != nil {
		return err
	}
	if err := required("description", f.Description); err != nil {
		return err
	}
	if err := optionalText("icon", f.Icon); err != nil {
		return err
	}
	return optionalDestination("link", f.Destination)
}

func (a Action) Validate() error {
	if err := required("label_key", a.LabelKey); err != nil {
		return err
	}
	return destination("to", a.Destination)
}

func required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return config.Invalid("", field, "is required")
	}
	return nil
}

// optionalText rejects a field that is present but blank.
func optionalText(field string, o Optional[string]) error {
	if v, ok := o.Get(); ok && strings.TrimSpace(v) == "" {
		return config.Invalid("", field, "is set but empty")
	}
	return nil
}

func optionalDestination(field string, o Optional[string]) error {
	if v, ok := o.Get(); ok {
		return destination(field, v)
	}
	return nil
}

// destination accepts site paths ("/docs/intro") and absolute http(s) URLs.
func destination(field, v string) error {
	if err := required(field, v); err != nil {
		return err
	}
	if strings.HasPrefix(v, "/") && !strings.HasPrefix(v, "//") {
		return nil
	}
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return config.Invalid("", field, "%q is neither a site path nor an http(s) URL", v)
	}
	return nil
}

// IsExternal reports whether dest is an absolute URL rather than a site path.
func IsExternal(dest string) bool {
	return strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://")
}
