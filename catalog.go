// Package apicatalog turns OpenAPI contracts into a flat endpoint catalogue:
// one record per (path, method) pair, annotated with parameters and
// representative request/response JSON examples. Consumers such as developer
// portals, documentation generators, and mock servers read the catalogue
// without re-parsing the raw contract.
package apicatalog

import (
	"context"

	"github.com/goliatone/go-apicatalog/pkg/catalog"
	pkgopenapi "github.com/goliatone/go-apicatalog/pkg/openapi"
)

// Extract loads the contract from the given source and walks it into a
// catalogue. It is the simplest entry point for callers that just want the
// endpoint list. Loading failures are real errors; extraction itself is
// best-effort and reports failures through Result.Outcome.
func Extract(ctx context.Context, src pkgopenapi.Source, options ...catalog.ExtractorOption) (catalog.Result, error) {
	loader := NewLoader()
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return catalog.Result{}, err
	}
	return ExtractFromDocument(ctx, doc, options...), nil
}

// ExtractFromDocument walks a pre-loaded contract, bypassing the loader
// stage.
func ExtractFromDocument(ctx context.Context, doc pkgopenapi.Document, options ...catalog.ExtractorOption) catalog.Result {
	return NewExtractor(options...).Extract(ctx, doc)
}
