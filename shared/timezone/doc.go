// Package timezone centralizes time handling in the configured application
// timezone. Rental date windows and record metadata stamps all go through
// this package so the database and API agree on a single location.
package timezone
