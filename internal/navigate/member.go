package navigate

import (
	"github.com/anqa-lang/anqa/internal/hir"
	"github.com/anqa-lang/anqa/internal/source"
)

// structFieldTarget resolves `lhs.field` to the field's declaration.
// The left-hand side must statically be a struct; the field list is
// scanned in declaration order for a textual name match and the
// result is the field-name span in the struct's declaring file.
func (r *Resolver) structFieldTarget(e hir.MemberAccess) (source.Location, bool) {
	ref, ok := r.in.ExprType(e.LHS)
	if !ok {
		return source.Location{}, false
	}

	sref, ok := ref.(hir.StructRef)
	if !ok {
		return source.Location{}, false
	}

	st, ok := r.in.Struct(sref.Struct)
	if !ok {
		return source.Location{}, false
	}

	for _, f := range st.Fields {
		if f.Name == e.Field {
			return source.Location{File: st.Location.File, Span: f.Span}, true
		}
	}

	return source.Location{}, false
}
