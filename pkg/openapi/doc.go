// Package openapi exposes the public contracts for acquiring OpenAPI
// contract documents. Implementations live under internal/openapi so the
// document-model library stays hidden from consumers.
package openapi
