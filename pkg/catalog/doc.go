// Package catalog defines the endpoint catalogue produced from an OpenAPI
// contract: one immutable record per (path, method) pair with its parameters
// and representative JSON examples, plus the Extractor contract that builds
// them. The concrete extractor lives under internal/openapi.
package catalog
