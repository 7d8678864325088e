package downlevel

import (
	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/token"
)

// VisitProperty lowers shorthand object-literal members (spec.md §4.7)
// after descending into their children. Getter/setter shorthand is left
// alone otherwise: `{get x(){}}` is already ES5, except when the output
// dialect is ES3, which has no getter/setter syntax at all.
func (p *Pass) VisitProperty(n *ast.Property) {
	n.VisitChildrenWith(p.V)

	switch prop := n.Prop.(type) {
	case *ast.PropertyKeyed:
		if prop.Kind == ast.PropertyKindGet || prop.Kind == ast.PropertyKindSet {
			p.checkES3Accessor(prop.Key.Idx0())
			return
		}
		if prop.Kind == ast.PropertyKindMethod {
			prop.Kind = ast.PropertyKindValue
			p.rewrote("shorthand_method")
		}
	case *ast.PropertyShort:
		n.Prop = &ast.PropertyKeyed{
			Key:   identExpr(prop.Name.Idx, prop.Name.Name),
			Value: identExpr(prop.Name.Idx, prop.Name.Name),
			Kind:  ast.PropertyKindValue,
		}
		p.rewrote("shorthand_property")
	}
}

// propKeyName extracts the plain name of a non-computed property key, or
// "" if key isn't a simple identifier or string literal.
func propKeyName(key *ast.Expression) string {
	switch k := key.Expr.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.StringLiteral:
		return k.Value
	}
	return ""
}

// lowerComputedProperties hoists an object literal containing one or more
// computed-key properties into a temp variable, rewriting the literal's
// position into a comma-sequence that builds it up incrementally, per
// spec.md §4.6: `var tmp = {};` is inserted before the enclosing statement
// and `{[k]: v, a: 1}` becomes `(tmp[k] = v, tmp.a = 1, tmp)`, assigning the
// properties in source order.
// A computed-key getter or setter can't be expressed as a plain assignment
// in that sequence, so it is diagnosed instead and the whole literal is
// left unlowered rather than silently turning the accessor into a data
// property holding the function itself.
func (p *Pass) lowerComputedProperties(n *ast.ObjectLiteral) ast.Expr {
	hasComputed := false
	for i := range n.Value {
		pk, ok := n.Value[i].Prop.(*ast.PropertyKeyed)
		if !ok || !pk.Computed {
			continue
		}
		if pk.Kind == ast.PropertyKindGet || pk.Kind == ast.PropertyKindSet {
			p.diag(CannotConvertYet, pk.Key.Idx0(), "computed getter/setter")
			return nil
		}
		hasComputed = true
	}
	if !hasComputed {
		return nil
	}

	pos := n.LeftBrace
	tmp := p.names.compPropName()
	p.hoistBefore(varDecl(pos, token.Var, tmp, &ast.Expression{Expr: &ast.ObjectLiteral{LeftBrace: pos, RightBrace: pos}}))

	var seq ast.Expressions
	for i := range n.Value {
		switch prop := n.Value[i].Prop.(type) {
		case *ast.PropertyKeyed:
			var target *ast.Expression
			if prop.Computed {
				target = computedMember(identExpr(pos, tmp), prop.Key)
			} else if name := propKeyName(prop.Key); name != "" {
				target = member(pos, identExpr(pos, tmp), name)
			} else {
				target = computedMember(identExpr(pos, tmp), prop.Key)
			}
			seq = append(seq, *assign(target, prop.Value))
		case *ast.PropertyShort:
			target := member(pos, identExpr(pos, tmp), prop.Name.Name)
			seq = append(seq, *assign(target, identExpr(pos, prop.Name.Name)))
		}
	}
	seq = append(seq, *identExpr(pos, tmp))

	p.rewrote("computed_property")
	return &ast.SequenceExpression{Sequence: seq}
}
