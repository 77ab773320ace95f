package invoices

import "invoice-service-backend/internal/validation"

// Result is the outcome of one invoice mutation. A successful mutation
// that should send the client somewhere carries a Location; a failed one
// carries a Message and, on the permissive validation path, the
// per-field error map. The transport layer decides how to realize the
// navigation (an HTTP redirect, here).
type Result struct {
	Location string
	Message  string
	Errors   validation.FieldErrors
	// Internal marks a store-side failure, as opposed to input the
	// caller can correct.
	Internal bool
}

func (r Result) OK() bool {
	return r.Message == "" && !r.Errors.Any()
}
