// Package hir defines the resolved semantic representation the
// navigation engine reads: stable ids, the closed set of node and
// expression variants, definition records and the struct/trait
// registries' record types.
//
// The entities here are a vocabulary, not behavior. Elaboration
// produces them once per compilation unit; afterwards they are
// immutable and only looked up by id. Variants are modeled as marker
// interfaces so dispatch sites can type-switch over a closed set
// without virtual methods on the variants themselves.
package hir
