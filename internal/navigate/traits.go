package navigate

import "github.com/anqa-lang/anqa/internal/source"

// traitImplTarget resolves a query sitting on the trait name token of
// an `impl Trait for Type` header to the trait's declaration. Impls
// are scanned in stored order and the first span match decides, there
// is no innermost tie-break here.
func (r *Resolver) traitImplTarget(q source.Location) (source.Location, bool) {
	for impl := range r.in.TraitImpls() {
		if impl.File != q.File || !impl.TraitIdent.Contains(q.Span) {
			continue
		}

		tr, ok := r.in.Trait(impl.Trait)
		if !ok {
			return source.Location{}, false
		}

		return tr.Location, true
	}

	return source.Location{}, false
}

// traitMethodDecl resolves a query inside the body of a function
// implementing a trait method to that method's abstract declaration.
//
// The first function (in stored order) whose signature location
// contains the query decides. It must be associated with a trait, and
// the trait's method list is matched by name only; overloaded method
// names are not disambiguated.
func (r *Resolver) traitMethodDecl(q source.Location) (source.Location, bool) {
	for id, meta := range r.in.Functions() {
		if !meta.Location.Contains(q) {
			continue
		}

		traitID, ok := r.in.FunctionTrait(id)
		if !ok {
			return source.Location{}, false
		}

		tr, ok := r.in.Trait(traitID)
		if !ok {
			return source.Location{}, false
		}

		name, ok := r.in.FunctionName(id)
		if !ok {
			return source.Location{}, false
		}

		for _, m := range tr.Methods {
			if m.Name == name {
				return m.Location, true
			}
		}

		return source.Location{}, false
	}

	return source.Location{}, false
}
