package hir

// NodeID addresses an entry in the node store. Ids are assigned once
// during semantic tree construction and stay valid for the lifetime of
// the compilation unit.
type NodeID uint32

// FuncID identifies a function.
type FuncID uint32

// DefID identifies one bound identifier occurrence.
type DefID uint32

// LocalID identifies a local variable or parameter definition.
type LocalID uint32

// GlobalID identifies a module-level definition.
type GlobalID uint32

// StructID identifies a struct type in the struct registry.
type StructID uint32

// TraitID identifies a trait in the trait registry.
type TraitID uint32

// Invalid id constants (zero is sentinel).
const (
	NoNode   NodeID   = 0
	NoFunc   FuncID   = 0
	NoDef    DefID    = 0
	NoLocal  LocalID  = 0
	NoGlobal GlobalID = 0
	NoStruct StructID = 0
	NoTrait  TraitID  = 0
)

// IsValid reports whether the id is valid (non-zero).
func (id NodeID) IsValid() bool   { return id != NoNode }
func (id FuncID) IsValid() bool   { return id != NoFunc }
func (id DefID) IsValid() bool    { return id != NoDef }
func (id LocalID) IsValid() bool  { return id != NoLocal }
func (id GlobalID) IsValid() bool { return id != NoGlobal }
func (id StructID) IsValid() bool { return id != NoStruct }
func (id TraitID) IsValid() bool  { return id != NoTrait }
