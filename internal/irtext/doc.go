// Package irtext serializes IR programs to and from textual program
// documents.
//
// Documents are JSON or YAML renderings of the same structure and are
// validated against an embedded CUE schema before being lowered back
// into IR. Serialization consumes the node taxonomy exclusively through
// the visitor protocol; this package never reaches into graph internals.
//
// The canonical form (NFC-normalized strings, no HTML escaping, fixed
// field order) is the only serialization used for content-addressed
// program identity.
package irtext
