package navigate

import (
	"github.com/anqa-lang/anqa/internal/hir"
	"github.com/anqa-lang/anqa/internal/interner"
	"github.com/anqa-lang/anqa/internal/source"
)

// Resolver answers navigation queries against one interner snapshot.
// It holds no state of its own, a single value serves any number of
// concurrent queries.
type Resolver struct {
	in *interner.Interner
}

// New returns a resolver over the given snapshot.
func New(in *interner.Interner) *Resolver {
	return &Resolver{in: in}
}

// Definition resolves a query location to the definition site of
// whatever the location refers to. The location index is tried first;
// if the node found there does not resolve, the trait-impl and
// trait-method scans run against the original query as fallbacks.
func (r *Resolver) Definition(q source.Location) (source.Location, bool) {
	if id, ok := r.findLocationIndex(q); ok {
		if loc, ok := r.resolveNode(id); ok {
			return loc, true
		}
	}
	if loc, ok := r.traitImplTarget(q); ok {
		return loc, true
	}
	return r.traitMethodDecl(q)
}

// Declaration resolves a query location to the abstract declaration
// behind it. The trait-method scan runs first on the raw query; if it
// misses, the query is resolved through the location index and the
// trait-method scan runs once more on the resolved location. The
// second hop is what lets a query inside a trait-impl body land on
// the trait's own method signature.
func (r *Resolver) Declaration(q source.Location) (source.Location, bool) {
	if loc, ok := r.traitMethodDecl(q); ok {
		return loc, true
	}

	id, ok := r.findLocationIndex(q)
	if !ok {
		return source.Location{}, false
	}
	loc, ok := r.resolveNode(id)
	if !ok {
		return source.Location{}, false
	}

	return r.traitMethodDecl(loc)
}

// findLocationIndex scans the location table for the node whose
// recorded span contains q. When spans nest, the smallest containing
// span wins so the query lands on the most specific construct.
//
// Note: this can be made cheaper than a linear scan by keeping spans
// sorted per file, as long as the smallest-span winner stays the same.
func (r *Resolver) findLocationIndex(q source.Location) (hir.NodeID, bool) {
	var (
		winner    hir.NodeID
		winnerLoc source.Location
		found     bool
	)

	for id, loc := range r.in.Locations() {
		if !loc.Contains(q) {
			continue
		}

		if !found || loc.Span.IsSmaller(winnerLoc.Span) {
			winner = id
			winnerLoc = loc
			found = true
		}
	}

	return winner, found
}

// resolveNode resolves the node stored under id to a location. A
// missing id is a plain miss. Node kinds outside the supported set
// are not navigable.
func (r *Resolver) resolveNode(id hir.NodeID) (source.Location, bool) {
	node, ok := r.in.Node(id)
	if !ok {
		return source.Location{}, false
	}

	switch n := node.(type) {
	case hir.Function:
		return r.resolveNode(n.Body)
	case hir.Expression:
		return r.resolveExpr(n.Expr)
	default:
		return source.Location{}, false
	}
}

// resolveExpr resolves an expression to the location of what it
// refers to. Unsupported expression kinds are a tracked coverage gap
// and report not found.
func (r *Resolver) resolveExpr(expr hir.Expr) (source.Location, bool) {
	switch e := expr.(type) {
	case hir.Ident:
		return r.resolveIdent(e)

	case hir.Constructor:
		st, ok := r.in.Struct(e.Struct)
		if !ok {
			return source.Location{}, false
		}
		return st.Location, true

	case hir.MemberAccess:
		return r.structFieldTarget(e)

	case hir.Call:
		// Arguments are irrelevant, only the callee navigates.
		return r.resolveNode(e.Callee)

	default:
		return source.Location{}, false
	}
}

// resolveIdent resolves a bound identifier by its definition kind.
// Functions navigate to the signature site; locals and globals to the
// binding itself.
func (r *Resolver) resolveIdent(id hir.Ident) (source.Location, bool) {
	def, ok := r.in.Definition(id.Def)
	if !ok {
		return source.Location{}, false
	}

	switch k := def.Kind.(type) {
	case hir.FunctionDef:
		meta, ok := r.in.FunctionMeta(k.Func)
		if !ok {
			return source.Location{}, false
		}
		return meta.Location, true

	case hir.LocalDef, hir.GlobalDef:
		return def.Location, true

	default:
		return source.Location{}, false
	}
}
