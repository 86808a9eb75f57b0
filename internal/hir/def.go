package hir

import "github.com/anqa-lang/anqa/internal/source"

// DefKind classifies what a bound identifier denotes.
type DefKind interface {
	isDefKind()
}

// FunctionDef binds the identifier to a function.
type FunctionDef struct {
	Func FuncID
}

func (FunctionDef) isDefKind() {}

// LocalDef binds the identifier to a local variable or parameter.
type LocalDef struct {
	Local LocalID
}

func (LocalDef) isDefKind() {}

// GlobalDef binds the identifier to a module-level definition.
type GlobalDef struct {
	Global GlobalID
}

func (GlobalDef) isDefKind() {}

// BuiltinDef binds the identifier to a compiler builtin. Builtins have
// no source to navigate to.
type BuiltinDef struct{}

func (BuiltinDef) isDefKind() {}

// Definition is one bound identifier occurrence: what it denotes and
// where the binding itself was introduced. Created during name
// resolution, never mutated afterwards.
type Definition struct {
	Kind     DefKind
	Location source.Location
}

// FuncMeta is per-function metadata. Location is the canonical
// defining location, the signature site.
type FuncMeta struct {
	Name     string
	Location source.Location
}
