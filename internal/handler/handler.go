// Package handler is the HTTP layer: the entry point for business
// logic after the router.
//
// Handlers bind and validate requests through the validation package,
// call the appropriate service, and shape the JSON response. They hold
// no state between invocations.
package handler
