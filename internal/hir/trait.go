package hir

import "github.com/anqa-lang/anqa/internal/source"

// TraitMethod is one abstract method signature declared by a trait.
type TraitMethod struct {
	Name     string
	Location source.Location
}

// TraitDef is a trait registry record: the declaration location and
// the ordered method list, in declaration order.
type TraitDef struct {
	Name     string
	Location source.Location
	Methods  []TraitMethod
}

// TraitImpl records one `impl Trait for Type` header. TraitIdent is
// the span of the trait name token inside that header, in File.
type TraitImpl struct {
	File       source.FileID
	TraitIdent source.Span
	Trait      TraitID
}
