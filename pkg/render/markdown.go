// Package render turns an extracted catalogue into human-facing documents.
// The markdown renderer targets the documentation-generator consumer; portals
// serialising the records themselves can skip this package entirely.
package render

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-apicatalog/pkg/catalog"
)

//go:embed templates/catalog.md.tpl
var markdownSource string

var (
	markdownOnce sync.Once
	markdownTpl  *pongo2.Template
	markdownErr  error
)

// MarkdownOptions configures the markdown renderer.
type MarkdownOptions struct {
	// Title heads the generated document. Defaults to "API catalogue".
	Title string
}

// Markdown renders the catalogue as a markdown document: one section per
// endpoint with its parameter table and fenced example blocks.
func Markdown(result catalog.Result, options ...MarkdownOptions) (string, error) {
	tpl, err := markdownTemplate()
	if err != nil {
		return "", err
	}

	title := "API catalogue"
	if len(options) > 0 && options[0].Title != "" {
		title = options[0].Title
	}

	out, err := tpl.Execute(pongo2.Context{
		"title":     title,
		"endpoints": result.Endpoints,
	})
	if err != nil {
		return "", fmt.Errorf("render: execute markdown template: %w", err)
	}
	return out, nil
}

// markdownTemplate compiles the embedded template once and caches it for
// every later render.
func markdownTemplate() (*pongo2.Template, error) {
	markdownOnce.Do(func() {
		tpl, err := pongo2.FromString(markdownSource)
		if err != nil {
			markdownErr = fmt.Errorf("render: compile markdown template: %w", err)
			return
		}
		markdownTpl = tpl
	})
	return markdownTpl, markdownErr
}
