// Package repository handles all interactions with the database.
//
// It contains the raw SQL and methods to fetch, persist, and delete
// records, keeping SQL out of the service layer.
package repository
