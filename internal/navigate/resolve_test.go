package navigate

import (
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/anqa-lang/anqa/internal/hir"
	"github.com/anqa-lang/anqa/internal/interner"
	"github.com/anqa-lang/anqa/internal/source"
)

const (
	mainFile   source.FileID = 1
	traitsFile source.FileID = 2
)

const (
	pointStruct    hir.StructID = 1
	fieldableTrait hir.TraitID  = 1

	mainFunc    hir.FuncID = 1
	toFieldFunc hir.FuncID = 2
)

// fixture models two files:
//
// traits.an:
//
//	trait Fieldable {            // [0,80)
//	    fn to_field(self) ...    // [20,50)
//	}
//
// main.an:
//
//	struct Point { x, y }        // [0,60), x name at [15,16), y at [30,31)
//	fn main() { ... }            // signature at [100,110)
//	    let p = ...              // binding at [115,118)
//	    p                        // ident node 10 at [120,123)
//	    main                     // ident node 11 at [130,134), call node 17 at [130,136)
//	    p.x                      // member node 12 at [140,145), lhs node 13 at [140,141)
//	    p.z                      // member node 14 at [150,155), lhs node 15 at [150,151)
//	    Point { .. }             // constructor node 16 at [160,170)
//	    42                       // literal node 41 at [180,183)
//	    assert                   // builtin ident node 42 at [190,194)
//	    p.to_field               // ident node 22 at [200,208), bound to the impl function
//	impl Fieldable for Point     // trait ident token at [280,289)
//	    fn to_field(self) ...    // function node 30 at [300,400), body call node 20
//	                             // at [350,360), callee ident node 21 at [350,354)
func fixture() *interner.Interner {
	in := interner.New()

	in.PushTrait(fieldableTrait, &hir.TraitDef{
		Name:     "Fieldable",
		Location: source.New(traitsFile, 0, 80),
		Methods: []hir.TraitMethod{
			{Name: "to_field", Location: source.New(traitsFile, 20, 50)},
		},
	})

	in.PushStruct(pointStruct, &hir.StructType{
		Name:     "Point",
		Location: source.New(mainFile, 0, 60),
		Fields: []hir.StructField{
			{Name: "x", Span: source.Span{Start: 15, End: 16}},
			{Name: "y", Span: source.Span{Start: 30, End: 31}},
		},
	})

	in.PushFunction(mainFunc, hir.FuncMeta{
		Name:     "main",
		Location: source.New(mainFile, 100, 110),
	})
	in.PushFunction(toFieldFunc, hir.FuncMeta{
		Name:     "to_field",
		Location: source.New(mainFile, 300, 400),
	})
	in.SetFunctionTrait(toFieldFunc, fieldableTrait)

	in.PushTraitImpl(hir.TraitImpl{
		File:       mainFile,
		TraitIdent: source.Span{Start: 280, End: 289},
		Trait:      fieldableTrait,
	})

	in.PushDefinition(1, hir.Definition{
		Kind:     hir.LocalDef{Local: 1},
		Location: source.New(mainFile, 115, 118),
	})
	in.PushDefinition(2, hir.Definition{
		Kind:     hir.FunctionDef{Func: mainFunc},
		Location: source.New(mainFile, 130, 134),
	})
	in.PushDefinition(3, hir.Definition{
		Kind:     hir.FunctionDef{Func: mainFunc},
		Location: source.New(mainFile, 350, 354),
	})
	in.PushDefinition(4, hir.Definition{
		Kind:     hir.FunctionDef{Func: toFieldFunc},
		Location: source.New(mainFile, 200, 208),
	})
	in.PushDefinition(5, hir.Definition{
		Kind:     hir.BuiltinDef{},
		Location: source.New(mainFile, 190, 194),
	})

	push := func(id hir.NodeID, node hir.Node, loc source.Location) {
		in.PushNode(id, node)
		in.PushLocation(id, loc)
	}

	push(10, hir.Expression{Expr: hir.Ident{Def: 1}}, source.New(mainFile, 120, 123))
	push(11, hir.Expression{Expr: hir.Ident{Def: 2}}, source.New(mainFile, 130, 134))
	push(17, hir.Expression{Expr: hir.Call{Callee: 11}}, source.New(mainFile, 130, 136))
	push(13, hir.Expression{Expr: hir.Ident{Def: 1}}, source.New(mainFile, 140, 141))
	push(12, hir.Expression{Expr: hir.MemberAccess{LHS: 13, Field: "x"}}, source.New(mainFile, 140, 145))
	push(15, hir.Expression{Expr: hir.Ident{Def: 1}}, source.New(mainFile, 150, 151))
	push(14, hir.Expression{Expr: hir.MemberAccess{LHS: 15, Field: "z"}}, source.New(mainFile, 150, 155))
	push(16, hir.Expression{Expr: hir.Constructor{Struct: pointStruct}}, source.New(mainFile, 160, 170))
	push(41, hir.Expression{Expr: hir.Literal{}}, source.New(mainFile, 180, 183))
	push(42, hir.Expression{Expr: hir.Ident{Def: 5}}, source.New(mainFile, 190, 194))
	push(22, hir.Expression{Expr: hir.Ident{Def: 4}}, source.New(mainFile, 200, 208))
	push(40, hir.Struct{ID: pointStruct}, source.New(mainFile, 0, 60))

	push(30, hir.Function{ID: toFieldFunc, Body: 20}, source.New(mainFile, 300, 400))
	push(21, hir.Expression{Expr: hir.Ident{Def: 3}}, source.New(mainFile, 350, 354))
	push(20, hir.Expression{Expr: hir.Call{Callee: 21}}, source.New(mainFile, 350, 360))

	in.SetExprType(13, hir.StructRef{Struct: pointStruct})
	in.SetExprType(15, hir.StructRef{Struct: pointStruct})
	in.SetExprType(42, hir.PrimitiveRef{Name: "bool"})

	return in
}

func TestFindLocationIndexInnermost(t *testing.T) {
	r := New(fixture())

	// Nodes 20 and 21 nest: [350,360) strictly around [350,354).
	id, ok := r.findLocationIndex(source.New(mainFile, 351, 352))
	if !ok {
		t.Fatal("expected a location index")
	}
	if id != 21 {
		t.Errorf("expected the innermost node 21, got %d", id)
	}

	// Outside every recorded span.
	if id, ok := r.findLocationIndex(source.New(mainFile, 9000, 9001)); ok {
		t.Errorf("expected no match, got node %d", id)
	}
}

func TestDefinition(t *testing.T) {
	tests := []struct {
		name  string
		query source.Location
		want  source.Location
		found bool
	}{
		{
			name:  "local ident resolves to its binding",
			query: source.New(mainFile, 121, 122),
			want:  source.New(mainFile, 115, 118),
			found: true,
		},
		{
			name:  "function ident resolves to the signature site",
			query: source.New(mainFile, 131, 132),
			want:  source.New(mainFile, 100, 110),
			found: true,
		},
		{
			name:  "call resolves through the callee",
			query: source.New(mainFile, 135, 136),
			want:  source.New(mainFile, 100, 110),
			found: true,
		},
		{
			name:  "member access resolves to the field declaration",
			query: source.New(mainFile, 142, 144),
			want:  source.New(mainFile, 15, 16),
			found: true,
		},
		{
			name:  "member access with unknown field",
			query: source.New(mainFile, 152, 154),
			found: false,
		},
		{
			name:  "constructor resolves to the struct declaration",
			query: source.New(mainFile, 165, 166),
			want:  source.New(mainFile, 0, 60),
			found: true,
		},
		{
			name:  "trait name in an impl header resolves to the trait",
			query: source.New(mainFile, 282, 283),
			want:  source.New(traitsFile, 0, 80),
			found: true,
		},
		{
			name:  "literal is not navigable",
			query: source.New(mainFile, 181, 182),
			found: false,
		},
		{
			name:  "builtin ident is not navigable",
			query: source.New(mainFile, 191, 192),
			found: false,
		},
		{
			name:  "struct node is not navigable",
			query: source.New(mainFile, 40, 41),
			found: false,
		},
		{
			name:  "query outside every span",
			query: source.New(mainFile, 9000, 9001),
			found: false,
		},
		{
			name:  "call inside a trait impl body resolves to the concrete callee",
			query: source.New(mainFile, 355, 356),
			want:  source.New(mainFile, 100, 110),
			found: true,
		},
		{
			name:  "ident bound to the trait impl function resolves to the impl",
			query: source.New(mainFile, 201, 202),
			want:  source.New(mainFile, 300, 400),
			found: true,
		},
	}

	r := New(fixture())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Definition(tt.query)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if !tt.found {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				deepequal.SideBySide(t, "location", tt.want, got)
			}
		})
	}
}

func TestDeclaration(t *testing.T) {
	tests := []struct {
		name  string
		query source.Location
		want  source.Location
		found bool
	}{
		{
			name:  "inside a trait method implementation",
			query: source.New(mainFile, 355, 356),
			want:  source.New(traitsFile, 20, 50),
			found: true,
		},
		{
			name:  "ident bound to the trait impl function, second hop",
			query: source.New(mainFile, 201, 202),
			want:  source.New(traitsFile, 20, 50),
			found: true,
		},
		{
			name:  "plain local has no abstract declaration",
			query: source.New(mainFile, 121, 122),
			found: false,
		},
		{
			name:  "query outside every span",
			query: source.New(mainFile, 9000, 9001),
			found: false,
		},
	}

	r := New(fixture())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Declaration(tt.query)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if !tt.found {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				deepequal.SideBySide(t, "location", tt.want, got)
			}
		})
	}
}

// A call to a trait-implemented method: definition lands on the
// concrete impl, declaration on the trait's abstract signature.
func TestDefinitionDeclarationDiverge(t *testing.T) {
	r := New(fixture())
	q := source.New(mainFile, 201, 202)

	def, ok := r.Definition(q)
	if !ok {
		t.Fatal("definition not found")
	}
	if want := source.New(mainFile, 300, 400); def != want {
		t.Errorf("definition = %+v, want %+v", def, want)
	}

	decl, ok := r.Declaration(q)
	if !ok {
		t.Fatal("declaration not found")
	}
	if want := source.New(traitsFile, 20, 50); decl != want {
		t.Errorf("declaration = %+v, want %+v", decl, want)
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	r := New(fixture())
	q := source.New(mainFile, 142, 144)

	first, okFirst := r.Definition(q)
	second, okSecond := r.Definition(q)

	if okFirst != okSecond || first != second {
		t.Errorf("repeated query diverged: (%+v, %v) vs (%+v, %v)", first, okFirst, second, okSecond)
	}
}
