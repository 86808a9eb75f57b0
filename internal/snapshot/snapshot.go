// Package snapshot reads and writes the YAML dump of an elaborated
// compilation unit. The dump carries the same tables the interner
// holds in memory, so tools outside the elaboration process (the nav
// CLI, tests) can load a unit and query it.
package snapshot

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/anqa-lang/anqa/internal/source"
)

// Snapshot is the root of the dump.
type Snapshot struct {
	Files       []File       `yaml:"files,omitempty"`
	Nodes       []Node       `yaml:"nodes,omitempty"`
	Definitions []Definition `yaml:"definitions,omitempty"`
	Functions   []Function   `yaml:"functions,omitempty"`
	Structs     []Struct     `yaml:"structs,omitempty"`
	Traits      []Trait      `yaml:"traits,omitempty"`
	Impls       []Impl       `yaml:"impls,omitempty"`
	Types       []ExprType   `yaml:"types,omitempty"`
}

// File maps a file id to its path. The engine itself only ever sees
// ids; paths exist for humans and the CLI.
type File struct {
	ID   uint32 `yaml:"id"`
	Path string `yaml:"path"`
}

// Loc is a serialized source location.
type Loc struct {
	File  uint32 `yaml:"file"`
	Start uint32 `yaml:"start"`
	End   uint32 `yaml:"end"`
}

func (l Loc) location() source.Location {
	return source.New(source.FileID(l.File), l.Start, l.End)
}

// SpanBounds is a serialized span without a file of its own.
type SpanBounds struct {
	Start uint32 `yaml:"start"`
	End   uint32 `yaml:"end"`
}

func (s SpanBounds) span() source.Span {
	return source.Span{Start: s.Start, End: s.End}
}

// Node is one node store entry. Which payload fields apply depends on
// Kind; Location is optional, not every node has a recorded one.
type Node struct {
	ID       uint32   `yaml:"id"`
	Kind     NodeKind `yaml:"kind"`
	Func     uint32   `yaml:"func,omitempty"`
	Body     uint32   `yaml:"body,omitempty"`
	Struct   uint32   `yaml:"struct,omitempty"`
	Expr     *Expr    `yaml:"expr,omitempty"`
	Location *Loc     `yaml:"location,omitempty"`
}

// Expr is the payload of an expression node.
type Expr struct {
	Kind   ExprKind `yaml:"kind"`
	Def    uint32   `yaml:"def,omitempty"`
	Struct uint32   `yaml:"struct,omitempty"`
	LHS    uint32   `yaml:"lhs,omitempty"`
	Field  string   `yaml:"field,omitempty"`
	Callee uint32   `yaml:"callee,omitempty"`
}

// Definition is one bound identifier record.
type Definition struct {
	ID       uint32  `yaml:"id"`
	Kind     DefKind `yaml:"kind"`
	Func     uint32  `yaml:"func,omitempty"`
	Local    uint32  `yaml:"local,omitempty"`
	Global   uint32  `yaml:"global,omitempty"`
	Location Loc     `yaml:"location"`
}

// Function is one function metadata record. Trait, when non-zero,
// names the trait whose method this function implements.
type Function struct {
	ID       uint32 `yaml:"id"`
	Name     string `yaml:"name"`
	Location Loc    `yaml:"location"`
	Trait    uint32 `yaml:"trait,omitempty"`
}

// Field is one struct field: its name token span within the declaring
// file.
type Field struct {
	Name  string `yaml:"name"`
	Start uint32 `yaml:"start"`
	End   uint32 `yaml:"end"`
}

// Struct is one struct registry record.
type Struct struct {
	ID       uint32  `yaml:"id"`
	Name     string  `yaml:"name"`
	Location Loc     `yaml:"location"`
	Fields   []Field `yaml:"fields,omitempty"`
}

// Method is one abstract trait method.
type Method struct {
	Name     string `yaml:"name"`
	Location Loc    `yaml:"location"`
}

// Trait is one trait registry record.
type Trait struct {
	ID       uint32   `yaml:"id"`
	Name     string   `yaml:"name"`
	Location Loc      `yaml:"location"`
	Methods  []Method `yaml:"methods,omitempty"`
}

// Impl is one `impl Trait for Type` header: the span of the trait
// name token and the trait it refers to.
type Impl struct {
	File  uint32     `yaml:"file"`
	Ident SpanBounds `yaml:"ident"`
	Trait uint32     `yaml:"trait"`
}

// ExprType records the static type of one expression node.
type ExprType struct {
	Node   uint32   `yaml:"node"`
	Kind   TypeKind `yaml:"kind"`
	Struct uint32   `yaml:"struct,omitempty"`
	Name   string   `yaml:"name,omitempty"`
}

// Parse decodes a YAML dump.
func Parse(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot yaml: %w", err)
	}

	return &s, nil
}

// Dump encodes the snapshot back to YAML.
func (s *Snapshot) Dump() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot yaml: %w", err)
	}

	return data, nil
}

// FileID returns the id recorded for a file path.
func (s *Snapshot) FileID(path string) (source.FileID, bool) {
	for _, f := range s.Files {
		if f.Path == path {
			return source.FileID(f.ID), true
		}
	}

	return source.NoFile, false
}
