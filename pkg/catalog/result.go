package catalog

// Outcome classifies how an extraction pass ended. Extraction is best-effort
// and never fails outright, but callers (and tests) need to tell a genuinely
// empty contract apart from one the document model refused to parse.
type Outcome string

const (
	// OutcomeComplete means the contract parsed and every defined operation
	// was catalogued.
	OutcomeComplete Outcome = "complete"

	// OutcomeEmpty means the contract had no path table; the catalogue is
	// empty by construction, not by failure.
	OutcomeEmpty Outcome = "empty"

	// OutcomeDegraded means the document model reported errors; Endpoints
	// holds whatever was accumulated before the failure.
	OutcomeDegraded Outcome = "degraded"
)

// Result is the product of one extraction pass.
type Result struct {
	// Endpoints lists one record per (path, method) pair, in document order.
	Endpoints []Endpoint

	// Outcome classifies the pass.
	Outcome Outcome

	// Err carries the failure detail for degraded results, nil otherwise.
	Err error
}

// Complete reports whether the pass catalogued the full contract.
func (r Result) Complete() bool {
	return r.Outcome == OutcomeComplete
}

// Degraded reports whether the catalogue is partial due to a parse failure.
func (r Result) Degraded() bool {
	return r.Outcome == OutcomeDegraded
}
