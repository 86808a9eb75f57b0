// Package navigate answers editor navigation queries over a published
// interner snapshot: go-to-definition and go-to-declaration.
//
// A query is a source location, not necessarily aligned to a token
// boundary. The engine finds the innermost recorded span containing
// it, dispatches over the node stored there and walks the definition
// tables; trait-impl headers and trait-implementing functions get
// dedicated fallback scans so navigation bridges concrete impls and
// abstract trait declarations.
//
// Every step reports absence as a plain not-found result. Stale node
// ids, nodes without a recorded location and unsupported node or
// expression kinds all fall into the same bucket; nothing on the query
// path returns an error.
package navigate
