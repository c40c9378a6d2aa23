// Package errs defines the application error type returned to API
// clients.
//
// Every client-visible failure is funneled into *HTTPError so responses
// always serialize to the same stable shape: {"error": "<message>"}.
// Status codes and field-level detail ride along for the error handler
// and logs but never appear in the body.
package errs
