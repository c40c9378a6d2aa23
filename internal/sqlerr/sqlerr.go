// Package sqlerr translates database driver errors.
//
// It parses cryptic SQLSTATE codes from the postgres driver and
// converts them into client-safe application errors (e.g. a not-null
// violation becomes a 400 with a readable message, anything unknown
// becomes a plain 500).
package sqlerr
