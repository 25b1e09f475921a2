// Package archive implements entry lookup inside an open zip archive.
//
// Locate performs a case-insensitive exact-name scan over all entries and
// extracts the first match into memory. A missing entry is a normal,
// reportable outcome, not a failure; only an unreadable entry stream raises
// an error. The caller owns the zip.Reader and its lifetime.
package archive
