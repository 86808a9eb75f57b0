package hir

// Node is the base interface implemented by every entry of the node
// store. The set of variants is closed: consumers dispatch with a type
// switch and treat unknown variants as non-navigable.
type Node interface {
	isNode()
}

// Function is a function node. Body addresses the node of its
// representative body expression.
type Function struct {
	ID   FuncID
	Body NodeID
}

func (Function) isNode() {}

// Expression wraps a single resolved expression.
type Expression struct {
	Expr Expr
}

func (Expression) isNode() {}

// Struct is a struct declaration node. Navigation does not descend
// into it; it exists so the store can hold the whole semantic tree.
type Struct struct {
	ID StructID
}

func (Struct) isNode() {}
