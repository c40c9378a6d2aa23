// Package validation contains the request validation pipeline.
//
// Request types declare rules with `validate` struct tags (or a custom
// Validate implementation) and every failure is converted into the
// API's stable error shape before a handler body ever runs.
package validation
