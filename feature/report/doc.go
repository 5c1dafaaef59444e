// Package report renders prune runs for people and for other tools.
//
// A run can be printed as a table (colored when stdout is a terminal),
// encoded as JSON, saved as a plain list of removed locations for a
// follow-up cleanup script, or archived to object storage.
package report
