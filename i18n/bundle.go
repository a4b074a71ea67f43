package i18n

import (
	"sort"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// TextBundle holds every localized string of one locale under dotted keys
// ("hero.title"). It is built once and never modified.
type TextBundle struct {
	locale    Locale
	messages  map[string]string
	localizer *goi18n.Localizer
}

// NewTextBundle copies messages into a new bundle for locale.
func NewTextBundle(locale Locale, messages map[string]string) *TextBundle {
	tag := language.Make(string(locale))
	b := goi18n.NewBundle(tag)

	copied := make(map[string]string, len(messages))
	msgs := make([]*goi18n.Message, 0, len(messages))
	for k, v := range messages {
		copied[k] = v
		msgs = append(msgs, &goi18n.Message{ID: k, Other: v})
	}
	// AddMessages only fails for an undefined tag, which language.Make never yields.
	_ = b.AddMessages(tag, msgs...)

	return &TextBundle{
		locale:    locale,
		messages:  copied,
		localizer: goi18n.NewLocalizer(b, string(locale)),
	}
}

func (b *TextBundle) Locale() Locale { return b.locale }

// T looks key up without any fallback.
func (b *TextBundle) T(key string) (string, bool) {
	v, ok := b.messages[key]
	return v, ok
}

// Text returns the value for key, or key itself when the bundle has none.
func (b *TextBundle) Text(key string) string {
	if v, ok := b.messages[key]; ok {
		return v
	}
	return key
}

// Format executes the message under key as a template with data, e.g.
// "Copyright © {{.Year}}". Missing keys and broken templates yield Text(key).
func (b *TextBundle) Format(key string, data map[string]interface{}) string {
	if _, ok := b.messages[key]; !ok {
		return key
	}
	out, err := b.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return b.Text(key)
	}
	return out
}

func (b *TextBundle) Has(key string) bool {
	_, ok := b.messages[key]
	return ok
}

// Missing returns the keys the bundle does not define, in input order.
func (b *TextBundle) Missing(keys ...string) []string {
	var out []string
	for _, k := range keys {
		if !b.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// Keys returns all defined keys, sorted.
func (b *TextBundle) Keys() []string {
	out := make([]string, 0, len(b.messages))
	for k := range b.messages {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (b *TextBundle) Len() int { return len(b.messages) }
