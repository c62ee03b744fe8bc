// Package export writes generated seed batches to a flat text file, one seed
// per line. The format carries no header or metadata so the file can be
// consumed by shell tooling directly.
package export
