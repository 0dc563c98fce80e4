// Package render formats query results through Handlebars templates.
package render

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aymerick/raymond"

	"litestore/lib/store"
)

// ResultRenderer renders materialized result rows with Handlebars templates.
type ResultRenderer struct {
	templates map[string]*raymond.Template
	helpers   map[string]any
}

// NewResultRenderer creates a renderer with the default helpers registered.
func NewResultRenderer() *ResultRenderer {
	renderer := &ResultRenderer{
		templates: make(map[string]*raymond.Template),
	}
	renderer.registerHelpers()
	return renderer
}

// Parse registers a template from source under the given name.
func (rr *ResultRenderer) Parse(name, source string) error {
	tmpl, err := raymond.Parse(source)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tmpl.RegisterHelpers(rr.helpers)
	rr.templates[name] = tmpl
	return nil
}

// LoadTemplate registers a template from a .hbs file under the given name.
func (rr *ResultRenderer) LoadTemplate(name, filePath string) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return fmt.Errorf("template file does not exist: %s", filePath)
	}

	tmpl, err := raymond.ParseFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tmpl.RegisterHelpers(rr.helpers)
	rr.templates[name] = tmpl
	return nil
}

// RenderRows executes the named template against a result set. The
// template context exposes "rows" and "count".
func (rr *ResultRenderer) RenderRows(name string, rows []store.Row) (string, error) {
	tmpl, exists := rr.templates[name]
	if !exists {
		return "", fmt.Errorf("template not found: %s", name)
	}

	context := map[string]any{
		"rows":  rows,
		"count": len(rows),
	}

	output, err := tmpl.Exec(context)
	if err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}

	return output, nil
}

// registerHelpers adds the helpers templates can rely on. Helpers are
// registered per template to avoid raymond's global registry, which
// panics on duplicate names.
func (rr *ResultRenderer) registerHelpers() {
	rr.helpers = map[string]any{
		"json": func(data any) string {
			encoded, err := json.Marshal(data)
			if err != nil {
				return fmt.Sprintf("%+v", data)
			}
			return string(encoded)
		},
		"if_null": func(value any, options *raymond.Options) string {
			if value == nil {
				return options.Fn()
			}
			return options.Inverse()
		},
	}
}
