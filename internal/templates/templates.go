// Package templates renders the embedded chat message templates
package templates

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

// Template names
const (
	ChatApplyDamage = "chat/chat-apply-damage"
	ChatCheck       = "chat/chat-check"
)

//go:embed chat/*.tmpl
var embeddedFS embed.FS

// Localizer is what templates use to look up messages
type Localizer interface {
	Localize(key string) string
	Format(key string, params map[string]string) string
}

// Renderer renders a named template with a parameter struct
type Renderer interface {
	Render(loc Localizer, name string, data any) (string, error)
}

// ApplyDamageParams feeds chat/chat-apply-damage. Message is the
// localization key describing how the damage landed.
type ApplyDamageParams struct {
	Message string
	Actor   string
	Damage  int
	Type    string
	From    string
}

// CheckTarget is one target line of a rendered check
type CheckTarget struct {
	Name       string
	Difficulty int
	Hit        bool
}

// CheckParams feeds chat/chat-check
type CheckParams struct {
	Name       string
	Summary    string
	Roll       string
	Total      int
	HR         int
	Critical   bool
	Fumble     bool
	Difficulty int
	Targets    []CheckTarget
	Damage     int
	DamageType string
}

type renderer struct {
	root *template.Template
}

// New parses the embedded templates
func New() (Renderer, error) {
	root := template.New("root").Funcs(funcs(nil))
	entries, err := embeddedFS.ReadDir("chat")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	for _, entry := range entries {
		path := "chat/" + entry.Name()
		body, err := embeddedFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", path, err)
		}
		name := strings.TrimSuffix(path, ".tmpl")
		if _, err := root.New(name).Parse(string(body)); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}
	return &renderer{root: root}, nil
}

// Must is New that panics on error
func Must() Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *renderer) Render(loc Localizer, name string, data any) (string, error) {
	if r.root.Lookup(name) == nil {
		return "", fmt.Errorf("template %s not found", name)
	}
	t, err := r.root.Clone()
	if err != nil {
		return "", fmt.Errorf("failed to clone templates: %w", err)
	}
	t.Funcs(funcs(loc))

	var sb strings.Builder
	if err := t.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return strings.TrimSpace(sb.String()), nil
}

func funcs(loc Localizer) template.FuncMap {
	return template.FuncMap{
		"localize": func(key string) string {
			if loc == nil {
				return key
			}
			return loc.Localize(key)
		},
		"format": func(key string, params map[string]string) string {
			if loc == nil {
				return key
			}
			return loc.Format(key, params)
		},
		"params": func(kv ...string) (map[string]string, error) {
			if len(kv)%2 != 0 {
				return nil, fmt.Errorf("params needs key/value pairs")
			}
			out := make(map[string]string, len(kv)/2)
			for i := 0; i < len(kv); i += 2 {
				out[kv[i]] = kv[i+1]
			}
			return out, nil
		},
	}
}
