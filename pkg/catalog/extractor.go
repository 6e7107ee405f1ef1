package catalog

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-apicatalog/pkg/openapi"
)

// Extractor walks a contract document and produces the endpoint catalogue.
// Implementations absorb document-model failures and report them through
// Result.Outcome rather than an error return.
type Extractor interface {
	Extract(ctx context.Context, doc openapi.Document) Result
}

// ExtractorOptions configures an Extractor.
type ExtractorOptions struct {
	// Logger receives extraction diagnostics. Nil falls back to
	// slog.Default().
	Logger *slog.Logger

	// SanitizeText scrubs HTML from summaries and descriptions before
	// records are built. Off by default: the catalogue copies operation text
	// verbatim unless the caller is embedding untrusted contracts.
	SanitizeText bool
}

// ExtractorOption mutates ExtractorOptions during construction.
type ExtractorOption func(*ExtractorOptions)

// WithLogger injects the logger used for extraction diagnostics.
func WithLogger(logger *slog.Logger) ExtractorOption {
	return func(opts *ExtractorOptions) {
		opts.Logger = logger
	}
}

// WithSanitizedText enables HTML sanitisation of operation summaries and
// descriptions.
func WithSanitizedText() ExtractorOption {
	return func(opts *ExtractorOptions) {
		opts.SanitizeText = true
	}
}

// NewExtractorOptions applies ExtractorOption functions and returns the
// resulting configuration. Implementations under internal/openapi call this
// helper to remain consistent.
func NewExtractorOptions(options ...ExtractorOption) ExtractorOptions {
	cfg := ExtractorOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
