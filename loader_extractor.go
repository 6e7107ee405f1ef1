package apicatalog

import (
	internalExtractor "github.com/goliatone/go-apicatalog/internal/openapi/extractor"
	internalLoader "github.com/goliatone/go-apicatalog/internal/openapi/loader"
	"github.com/goliatone/go-apicatalog/pkg/catalog"
	pkgopenapi "github.com/goliatone/go-apicatalog/pkg/openapi"
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewExtractor constructs an extractor backed by the internal implementation.
func NewExtractor(options ...catalog.ExtractorOption) catalog.Extractor {
	cfg := catalog.NewExtractorOptions(options...)
	return internalExtractor.New(cfg)
}
