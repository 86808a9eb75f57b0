package hir

// Expr marks the closed set of resolved expression variants. Only the
// variants below take part in navigation; everything else is a tracked
// coverage gap that resolves to "not found".
type Expr interface {
	isExpr()
}

// Ident is a bound identifier occurrence referring to its definition
// record.
type Ident struct {
	Def DefID
}

func (Ident) isExpr() {}

// Constructor is a struct literal building a value of Struct.
type Constructor struct {
	Struct StructID
}

func (Constructor) isExpr() {}

// MemberAccess is `lhs.field`. LHS addresses the node of the left-hand
// expression; its static type decides which struct the field is looked
// up in.
type MemberAccess struct {
	LHS   NodeID
	Field string
}

func (MemberAccess) isExpr() {}

// Call is a call expression. Only the callee matters for navigation,
// arguments are ignored.
type Call struct {
	Callee NodeID
}

func (Call) isExpr() {}

// Literal is a constant literal. Not navigable.
type Literal struct{}

func (Literal) isExpr() {}
