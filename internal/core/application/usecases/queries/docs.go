// Package queries holds the read-only use cases. Handlers read straight from
// the database with SQL and return flat response structs; they never load
// aggregates through repositories.
package queries
