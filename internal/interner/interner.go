// Package interner holds the table snapshot the navigation engine
// queries: the node store, the location table and the registries
// produced by elaboration.
//
// The snapshot has two phases. During elaboration the tables are
// append-only; after publication nothing writes, every scan is a pure
// read and concurrent query traffic needs no locking. Tables whose
// scan order is contractual (locations, function metadata, trait
// impls) are kept as slices in insertion order.
package interner

import (
	"iter"

	"github.com/anqa-lang/anqa/internal/hir"
	"github.com/anqa-lang/anqa/internal/source"
)

type locEntry struct {
	node hir.NodeID
	loc  source.Location
}

type funcEntry struct {
	id   hir.FuncID
	meta hir.FuncMeta
}

// Interner is the compilation unit's table snapshot.
type Interner struct {
	nodes       map[hir.NodeID]hir.Node
	locations   []locEntry
	definitions map[hir.DefID]hir.Definition
	funcs       []funcEntry
	funcIndex   map[hir.FuncID]int
	structs     map[hir.StructID]*hir.StructType
	traits      map[hir.TraitID]*hir.TraitDef
	traitImpls  []hir.TraitImpl
	funcTraits  map[hir.FuncID]hir.TraitID
	exprTypes   map[hir.NodeID]hir.TypeRef
}

// New returns an empty interner ready to be filled by elaboration.
func New() *Interner {
	return &Interner{
		nodes:       make(map[hir.NodeID]hir.Node),
		definitions: make(map[hir.DefID]hir.Definition),
		funcIndex:   make(map[hir.FuncID]int),
		structs:     make(map[hir.StructID]*hir.StructType),
		traits:      make(map[hir.TraitID]*hir.TraitDef),
		funcTraits:  make(map[hir.FuncID]hir.TraitID),
		exprTypes:   make(map[hir.NodeID]hir.TypeRef),
	}
}

// PushNode stores a node under its id.
func (in *Interner) PushNode(id hir.NodeID, node hir.Node) {
	in.nodes[id] = node
}

// PushLocation records the source location of a node. Not every node
// gets one; lookups tolerate the gap.
func (in *Interner) PushLocation(id hir.NodeID, loc source.Location) {
	in.locations = append(in.locations, locEntry{node: id, loc: loc})
}

// PushDefinition stores the definition record of a bound identifier.
func (in *Interner) PushDefinition(id hir.DefID, def hir.Definition) {
	in.definitions[id] = def
}

// PushFunction stores function metadata. Insertion order is kept, the
// trait-method scan depends on it.
func (in *Interner) PushFunction(id hir.FuncID, meta hir.FuncMeta) {
	in.funcIndex[id] = len(in.funcs)
	in.funcs = append(in.funcs, funcEntry{id: id, meta: meta})
}

// PushStruct stores a struct registry record.
func (in *Interner) PushStruct(id hir.StructID, st *hir.StructType) {
	in.structs[id] = st
}

// PushTrait stores a trait registry record.
func (in *Interner) PushTrait(id hir.TraitID, tr *hir.TraitDef) {
	in.traits[id] = tr
}

// PushTraitImpl records one impl header, in source order.
func (in *Interner) PushTraitImpl(impl hir.TraitImpl) {
	in.traitImpls = append(in.traitImpls, impl)
}

// SetFunctionTrait associates a function with the trait whose method
// it implements.
func (in *Interner) SetFunctionTrait(fn hir.FuncID, tr hir.TraitID) {
	in.funcTraits[fn] = tr
}

// SetExprType records the static type of an expression node.
func (in *Interner) SetExprType(id hir.NodeID, ref hir.TypeRef) {
	in.exprTypes[id] = ref
}

// Node returns the node stored under id.
func (in *Interner) Node(id hir.NodeID) (hir.Node, bool) {
	n, ok := in.nodes[id]
	return n, ok
}

// Definition returns the definition record of a bound identifier.
func (in *Interner) Definition(id hir.DefID) (hir.Definition, bool) {
	d, ok := in.definitions[id]
	return d, ok
}

// FunctionMeta returns the metadata of a function.
func (in *Interner) FunctionMeta(id hir.FuncID) (hir.FuncMeta, bool) {
	i, ok := in.funcIndex[id]
	if !ok {
		return hir.FuncMeta{}, false
	}
	return in.funcs[i].meta, true
}

// FunctionName returns the textual name of a function.
func (in *Interner) FunctionName(id hir.FuncID) (string, bool) {
	meta, ok := in.FunctionMeta(id)
	if !ok {
		return "", false
	}
	return meta.Name, true
}

// FunctionTrait returns the trait a function implements a method of,
// if any.
func (in *Interner) FunctionTrait(id hir.FuncID) (hir.TraitID, bool) {
	tr, ok := in.funcTraits[id]
	return tr, ok
}

// Struct returns a struct registry record.
func (in *Interner) Struct(id hir.StructID) (*hir.StructType, bool) {
	st, ok := in.structs[id]
	return st, ok
}

// Trait returns a trait registry record.
func (in *Interner) Trait(id hir.TraitID) (*hir.TraitDef, bool) {
	tr, ok := in.traits[id]
	return tr, ok
}

// ExprType returns the recorded static type of an expression node.
func (in *Interner) ExprType(id hir.NodeID) (hir.TypeRef, bool) {
	ref, ok := in.exprTypes[id]
	return ref, ok
}

// Locations yields the location table in insertion order.
func (in *Interner) Locations() iter.Seq2[hir.NodeID, source.Location] {
	return func(yield func(hir.NodeID, source.Location) bool) {
		for _, e := range in.locations {
			if !yield(e.node, e.loc) {
				return
			}
		}
	}
}

// Functions yields function metadata in insertion order.
func (in *Interner) Functions() iter.Seq2[hir.FuncID, hir.FuncMeta] {
	return func(yield func(hir.FuncID, hir.FuncMeta) bool) {
		for _, e := range in.funcs {
			if !yield(e.id, e.meta) {
				return
			}
		}
	}
}

// TraitImpls yields impl records in insertion order.
func (in *Interner) TraitImpls() iter.Seq[hir.TraitImpl] {
	return func(yield func(hir.TraitImpl) bool) {
		for _, impl := range in.traitImpls {
			if !yield(impl) {
				return
			}
		}
	}
}
