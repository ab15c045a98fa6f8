// Package libdiff compares a document before and after filtering, either as
// a line diff of their encodings or as a JSON merge patch.
package libdiff
