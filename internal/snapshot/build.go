package snapshot

import (
	"errors"
	"fmt"

	"github.com/anqa-lang/anqa/internal/hir"
	"github.com/anqa-lang/anqa/internal/interner"
	"github.com/anqa-lang/anqa/internal/source"
)

// Build populates a fresh interner from the snapshot. Slice-backed
// tables keep the dump's order, which matters: the trait-impl and
// function scans resolve by first match in stored order.
func (s *Snapshot) Build() (*interner.Interner, error) {
	in := interner.New()

	for _, n := range s.Nodes {
		node, err := n.node()
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", n.ID, err)
		}

		in.PushNode(hir.NodeID(n.ID), node)
		if n.Location != nil {
			in.PushLocation(hir.NodeID(n.ID), n.Location.location())
		}
	}

	for _, d := range s.Definitions {
		kind, err := d.kind()
		if err != nil {
			return nil, fmt.Errorf("definition %d: %w", d.ID, err)
		}

		in.PushDefinition(hir.DefID(d.ID), hir.Definition{
			Kind:     kind,
			Location: d.Location.location(),
		})
	}

	for _, f := range s.Functions {
		in.PushFunction(hir.FuncID(f.ID), hir.FuncMeta{
			Name:     f.Name,
			Location: f.Location.location(),
		})
		if f.Trait != 0 {
			in.SetFunctionTrait(hir.FuncID(f.ID), hir.TraitID(f.Trait))
		}
	}

	for _, st := range s.Structs {
		fields := make([]hir.StructField, 0, len(st.Fields))
		for _, f := range st.Fields {
			fields = append(fields, hir.StructField{
				Name: f.Name,
				Span: SpanBounds{Start: f.Start, End: f.End}.span(),
			})
		}

		in.PushStruct(hir.StructID(st.ID), &hir.StructType{
			Name:     st.Name,
			Location: st.Location.location(),
			Fields:   fields,
		})
	}

	for _, tr := range s.Traits {
		methods := make([]hir.TraitMethod, 0, len(tr.Methods))
		for _, m := range tr.Methods {
			methods = append(methods, hir.TraitMethod{
				Name:     m.Name,
				Location: m.Location.location(),
			})
		}

		in.PushTrait(hir.TraitID(tr.ID), &hir.TraitDef{
			Name:     tr.Name,
			Location: tr.Location.location(),
			Methods:  methods,
		})
	}

	for _, impl := range s.Impls {
		in.PushTraitImpl(hir.TraitImpl{
			File:       source.FileID(impl.File),
			TraitIdent: impl.Ident.span(),
			Trait:      hir.TraitID(impl.Trait),
		})
	}

	for i, t := range s.Types {
		ref, err := t.ref()
		if err != nil {
			return nil, fmt.Errorf("type record %d: %w", i, err)
		}

		in.SetExprType(hir.NodeID(t.Node), ref)
	}

	return in, nil
}

func (n Node) node() (hir.Node, error) {
	switch n.Kind {
	case NodeKindFunction:
		return hir.Function{ID: hir.FuncID(n.Func), Body: hir.NodeID(n.Body)}, nil

	case NodeKindExpression:
		if n.Expr == nil {
			return nil, errors.New("expression node carries no expr payload")
		}
		return n.Expr.expr()

	case NodeKindStruct:
		return hir.Struct{ID: hir.StructID(n.Struct)}, nil

	default:
		return nil, fmt.Errorf("unsupported node kind %q", n.Kind)
	}
}

func (e *Expr) expr() (hir.Node, error) {
	var inner hir.Expr

	switch e.Kind {
	case ExprKindIdent:
		inner = hir.Ident{Def: hir.DefID(e.Def)}
	case ExprKindConstructor:
		inner = hir.Constructor{Struct: hir.StructID(e.Struct)}
	case ExprKindMemberAccess:
		inner = hir.MemberAccess{LHS: hir.NodeID(e.LHS), Field: e.Field}
	case ExprKindCall:
		inner = hir.Call{Callee: hir.NodeID(e.Callee)}
	case ExprKindLiteral:
		inner = hir.Literal{}
	default:
		return nil, fmt.Errorf("unsupported expression kind %q", e.Kind)
	}

	return hir.Expression{Expr: inner}, nil
}

func (d Definition) kind() (hir.DefKind, error) {
	switch d.Kind {
	case DefKindFunction:
		return hir.FunctionDef{Func: hir.FuncID(d.Func)}, nil
	case DefKindLocal:
		return hir.LocalDef{Local: hir.LocalID(d.Local)}, nil
	case DefKindGlobal:
		return hir.GlobalDef{Global: hir.GlobalID(d.Global)}, nil
	case DefKindBuiltin:
		return hir.BuiltinDef{}, nil
	default:
		return nil, fmt.Errorf("unsupported definition kind %q", d.Kind)
	}
}

func (t ExprType) ref() (hir.TypeRef, error) {
	switch t.Kind {
	case TypeKindStruct:
		return hir.StructRef{Struct: hir.StructID(t.Struct)}, nil
	case TypeKindPrimitive:
		return hir.PrimitiveRef{Name: t.Name}, nil
	default:
		return nil, fmt.Errorf("unsupported type kind %q", t.Kind)
	}
}
