// Package doctype resolves document file types to their automation host.
//
// Each supported extension maps to exactly one host application and the name
// of the host's document collection accessor. Resolution is pure string
// mapping; no file I/O is performed.
package doctype
