// Package tmpl renders user supplied Go templates for comments, labels and asset names
package tmpl

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
)

var (
	cache   = map[string]*template.Template{}
	cacheMu sync.RWMutex
)

var funcs = template.FuncMap{
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"trim":  strings.TrimSpace,
}

// Parse compiles text. Parsed templates are cached by text.
func Parse(name, text string) (*template.Template, error) {
	cacheMu.RLock()
	t, ok := cache[text]
	cacheMu.RUnlock()
	if ok {
		return t, nil
	}

	t, err := template.New(name).Funcs(funcs).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse template", goerr.V("name", name))
	}

	cacheMu.Lock()
	cache[text] = t
	cacheMu.Unlock()
	return t, nil
}

// Render executes text with data
func Render(name, text string, data any) (string, error) {
	t, err := Parse(name, text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute template", goerr.V("name", name))
	}
	return buf.String(), nil
}

// RenderAll renders each text and drops results that are empty after trimming
func RenderAll(name string, texts []string, data any) ([]string, error) {
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		s, err := Render(name, text, data)
		if err != nil {
			return nil, err
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
