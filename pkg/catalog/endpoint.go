package catalog

// Endpoint describes one operation extracted from a contract. Records are
// built once during extraction and never mutated afterwards; JSON tags match
// what the developer portal consumes.
type Endpoint struct {
	// Method is one of GET, POST, PUT, DELETE, PATCH. HEAD, OPTIONS, and
	// TRACE operations are never catalogued.
	Method string `json:"method"`

	// Path is the route template, possibly containing {param} placeholders.
	Path string `json:"path"`

	// Summary is the operation summary, empty when the contract omits it.
	Summary string `json:"summary"`

	// Description is copied verbatim from the operation.
	Description string `json:"description,omitempty"`

	// Parameters preserves the declaration order from the contract.
	Parameters []Parameter `json:"parameters"`

	// RequestBodyExample holds a JSON example for the application/json
	// request body, empty when the operation declares none.
	RequestBodyExample string `json:"requestBodyExample,omitempty"`

	// ResponseExample holds a JSON example for the first success response
	// (200, 201, 202, 204) carrying application/json content.
	ResponseExample string `json:"responseExample,omitempty"`
}

// Parameter describes a single operation parameter (query, path, header, or
// cookie).
type Parameter struct {
	Name string `json:"name"`

	// In is the parameter location: query, path, header, or cookie.
	In string `json:"in"`

	// Required defaults to false when the contract leaves it unspecified.
	Required bool `json:"required"`

	Description string `json:"description,omitempty"`

	// Type is the schema's declared primitive type, "string" when the
	// parameter carries no schema.
	Type string `json:"type"`

	// Example is the string form of the parameter example, preferring the
	// parameter's own example over the one declared on its schema.
	Example string `json:"example,omitempty"`
}
