// Package i18n loads the embedded message catalogs and localizes keys such
// as "FU.ChatApplyDamageNormal" for a locale.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other locale falls back to
const BaseLocale = "en"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds every loaded locale and an x/text catalog built from them
type Bundle struct {
	messages map[string]map[string]string
	builder  *catalog.Builder
	matcher  language.Matcher
	tags     []language.Tag
}

// LoadEmbedded loads the catalogs compiled into the binary
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{messages: make(map[string]map[string]string)}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.addFile(p, file); err != nil {
			return nil, err
		}
	}

	if _, ok := b.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := b.build(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	locale := strings.TrimSpace(file.Locale)
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	if strings.TrimSpace(file.Namespace) == "" {
		return fmt.Errorf("catalog %s: namespace is required", p)
	}

	messages, ok := b.messages[locale]
	if !ok {
		messages = make(map[string]string)
		b.messages[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		messages[key] = value
	}
	return nil
}

func (b *Bundle) build() error {
	base := language.Make(BaseLocale)
	b.builder = catalog.NewBuilder(catalog.Fallback(base))
	b.tags = []language.Tag{base}

	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		if tag != base {
			b.tags = append(b.tags, tag)
		}
		for key, value := range b.messages[locale] {
			if err := b.builder.SetString(tag, key, escapeVerbs(value)); err != nil {
				return fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}
	b.matcher = language.NewMatcher(b.tags)
	return nil
}

// Locales returns the loaded locale identifiers, sorted
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Has reports whether key is defined for locale or the base locale
func (b *Bundle) Has(locale, key string) bool {
	if _, ok := b.messages[b.match(locale)][key]; ok {
		return true
	}
	_, ok := b.messages[BaseLocale][key]
	return ok
}

func (b *Bundle) match(locale string) string {
	tag, _, _ := b.matcher.Match(language.Make(locale))
	for _, t := range b.tags {
		if base, _ := tag.Base(); t == tag || t.String() == base.String() {
			return t.String()
		}
	}
	return BaseLocale
}

// Localize returns the message for key, falling back to the base locale and
// then to the key itself
func (b *Bundle) Localize(locale, key string) string {
	matched := b.match(locale)
	if _, ok := b.messages[matched][key]; !ok {
		if _, ok := b.messages[BaseLocale][key]; !ok {
			return key
		}
		matched = BaseLocale
	}
	tag := language.Make(matched)
	return message.NewPrinter(tag, message.Catalog(b.builder)).Sprintf(key)
}

// Format localizes key and replaces {name} placeholders with params
func (b *Bundle) Format(locale, key string, params map[string]string) string {
	text := b.Localize(locale, key)
	if len(params) == 0 {
		return text
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Localizer is a bundle bound to one locale
type Localizer struct {
	bundle *Bundle
	locale string
}

// For binds the bundle to a locale
func (b *Bundle) For(locale string) *Localizer {
	return &Localizer{bundle: b, locale: locale}
}

// Locale returns the bound locale
func (l *Localizer) Locale() string {
	return l.locale
}

func (l *Localizer) Localize(key string) string {
	return l.bundle.Localize(l.locale, key)
}

func (l *Localizer) Format(key string, params map[string]string) string {
	return l.bundle.Format(l.locale, key, params)
}

func escapeVerbs(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
