// Package engine wraps a pongo2 template set behind the small surface the
// document assembler needs: load from an fs.FS, cache parsed templates, and
// expose the custom filters the bundled templates rely on.
package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Engine renders named templates from an fs.FS backed pongo2 set.
type Engine struct {
	mu    sync.RWMutex
	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
}

// New builds an Engine over the provided template filesystem.
func New(files fs.FS) (*Engine, error) {
	if files == nil {
		return nil, errors.New("engine: template fs is required")
	}
	registerDefaultFilters()

	return &Engine{
		set:   pongo2.NewSet("embedkit", pongo2.NewFSLoader(files)),
		cache: make(map[string]*pongo2.Template),
	}, nil
}

// Render executes the named template with the given context.
func (e *Engine) Render(name string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("engine: engine is nil")
	}

	tmpl, err := e.template(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context(data), &buf); err != nil {
		return "", fmt.Errorf("engine: execute template %q: %w", name, err)
	}
	return buf.String(), nil
}

func (e *Engine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[name]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[name]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("engine: load template %q: %w", name, err)
	}

	e.cache[name] = tmpl
	return tmpl, nil
}

var filtersOnce sync.Once

func registerDefaultFilters() {
	filtersOnce.Do(func() {
		if !pongo2.FilterExists("json") {
			_ = pongo2.RegisterFilter("json", filterJSON)
		}
	})
}

// filterJSON marshals any context value into compact JSON. The result is
// marked safe so script payloads are not entity-escaped.
func filterJSON(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	data, err := json.Marshal(in.Interface())
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:json", OrigError: err}
	}
	return pongo2.AsSafeValue(string(data)), nil
}
