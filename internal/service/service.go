// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from handlers, applies business rules, and calls the
// repositories. The feedback service also owns the notify-after-commit
// orchestration.
package service
