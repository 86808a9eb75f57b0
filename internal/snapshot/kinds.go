package snapshot

import "fmt"

// NodeKind names a node variant in the dump.
type NodeKind int

const (
	NodeKindInvalid NodeKind = iota
	NodeKindFunction
	NodeKindExpression
	NodeKindStruct
)

var nodeKindValueMap = map[NodeKind]string{
	NodeKindFunction:   "function",
	NodeKindExpression: "expression",
	NodeKindStruct:     "struct",
}

// ExprKind names an expression variant in the dump.
type ExprKind int

const (
	ExprKindInvalid ExprKind = iota
	ExprKindIdent
	ExprKindConstructor
	ExprKindMemberAccess
	ExprKindCall
	ExprKindLiteral
)

var exprKindValueMap = map[ExprKind]string{
	ExprKindIdent:        "ident",
	ExprKindConstructor:  "constructor",
	ExprKindMemberAccess: "member_access",
	ExprKindCall:         "call",
	ExprKindLiteral:      "literal",
}

// DefKind names a definition kind in the dump.
type DefKind int

const (
	DefKindInvalid DefKind = iota
	DefKindFunction
	DefKindLocal
	DefKindGlobal
	DefKindBuiltin
)

var defKindValueMap = map[DefKind]string{
	DefKindFunction: "function",
	DefKindLocal:    "local",
	DefKindGlobal:   "global",
	DefKindBuiltin:  "builtin",
}

// TypeKind names a static type variant in the dump.
type TypeKind int

const (
	TypeKindInvalid TypeKind = iota
	TypeKindStruct
	TypeKindPrimitive
)

var typeKindValueMap = map[TypeKind]string{
	TypeKindStruct:    "struct",
	TypeKindPrimitive: "primitive",
}

func (k NodeKind) String() string { return kindString(k, nodeKindValueMap) }
func (k ExprKind) String() string { return kindString(k, exprKindValueMap) }
func (k DefKind) String() string  { return kindString(k, defKindValueMap) }
func (k TypeKind) String() string { return kindString(k, typeKindValueMap) }

// MarshalText for dumping with yaml, etc.
func (k NodeKind) MarshalText() ([]byte, error) { return kindMarshal(k, nodeKindValueMap) }
func (k ExprKind) MarshalText() ([]byte, error) { return kindMarshal(k, exprKindValueMap) }
func (k DefKind) MarshalText() ([]byte, error)  { return kindMarshal(k, defKindValueMap) }
func (k TypeKind) MarshalText() ([]byte, error) { return kindMarshal(k, typeKindValueMap) }

// UnmarshalText for setting values from configs, dumps, CLI, etc.
func (k *NodeKind) UnmarshalText(raw []byte) error { return kindUnmarshal(k, raw, nodeKindValueMap, "node kind") }
func (k *ExprKind) UnmarshalText(raw []byte) error { return kindUnmarshal(k, raw, exprKindValueMap, "expression kind") }
func (k *DefKind) UnmarshalText(raw []byte) error  { return kindUnmarshal(k, raw, defKindValueMap, "definition kind") }
func (k *TypeKind) UnmarshalText(raw []byte) error { return kindUnmarshal(k, raw, typeKindValueMap, "type kind") }

func kindString[K ~int](k K, values map[K]string) string {
	v, ok := values[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", int(k))
	}

	return v
}

func kindMarshal[K ~int](k K, values map[K]string) ([]byte, error) {
	v, ok := values[k]
	if !ok {
		return nil, fmt.Errorf("marshal invalid kind %d", int(k))
	}

	return []byte(v), nil
}

func kindUnmarshal[K ~int](k *K, raw []byte, values map[K]string, what string) error {
	text := string(raw)
	for key, v := range values {
		if v == text {
			*k = key
			return nil
		}
	}

	return fmt.Errorf("unknown %s %q", what, text)
}
