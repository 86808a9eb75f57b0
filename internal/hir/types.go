package hir

import "github.com/anqa-lang/anqa/internal/source"

// TypeRef is the static type recorded for an expression node, as far
// as navigation needs to know it. The set is closed.
type TypeRef interface {
	isTypeRef()
}

// StructRef types an expression as a struct instance.
type StructRef struct {
	Struct StructID
}

func (StructRef) isTypeRef() {}

// PrimitiveRef types an expression as a builtin scalar. Field lookup
// through it always fails.
type PrimitiveRef struct {
	Name string
}

func (PrimitiveRef) isTypeRef() {}

// StructField is one field of a struct declaration. Span covers the
// field name token within the declaring file.
type StructField struct {
	Name string
	Span source.Span
}

// StructType is a struct registry record: the declaring location and
// the ordered field list, in declaration order.
type StructType struct {
	Name     string
	Location source.Location
	Fields   []StructField
}
