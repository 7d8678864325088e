package downlevel

import "github.com/t14raptor/go-fast/ast"

// superRewriter replaces `super(...)` and `super.method(...)` /
// `super.prop` inside one already-lowered method body with explicit calls
// against the superclass constructor, since ES5 has no `super` keyword.
// It runs once per method body as part of class lowering, after the
// generic pass has already visited that body for every other rewrite.
type superRewriter struct {
	ast.NoopVisitor
	base   *ast.Expression
	static bool
}

func rewriteSuper(body *ast.BlockStatement, base *ast.Expression, static bool) {
	if body == nil {
		return
	}
	sr := &superRewriter{base: base, static: static}
	sr.V = sr
	body.VisitWith(sr)
}

func (sr *superRewriter) VisitExpression(n *ast.Expression) {
	switch e := n.Expr.(type) {
	case *ast.CallExpression:
		if _, ok := e.Callee.Expr.(*ast.SuperExpression); ok {
			for i := range e.ArgumentList {
				e.ArgumentList[i].VisitWith(sr.V)
			}
			pos := e.Callee.Idx0()
			args := append(ast.Expressions{*identExpr(pos, "this")}, e.ArgumentList...)
			n.Expr = &ast.CallExpression{Callee: member(pos, sr.base, "call"), ArgumentList: args}
			return
		}
		if mem, ok := e.Callee.Expr.(*ast.MemberExpression); ok {
			if _, ok := mem.Object.Expr.(*ast.SuperExpression); ok {
				for i := range e.ArgumentList {
					e.ArgumentList[i].VisitWith(sr.V)
				}
				pos := mem.Object.Idx0()
				recv := sr.base
				if !sr.static {
					recv = member(pos, sr.base, "prototype")
				}
				method := propTarget(pos, recv, mem.Property, false)
				args := append(ast.Expressions{*identExpr(pos, "this")}, e.ArgumentList...)
				n.Expr = &ast.CallExpression{Callee: member(pos, method, "call"), ArgumentList: args}
				return
			}
		}
		n.VisitChildrenWith(sr.V)
	case *ast.MemberExpression:
		if _, ok := e.Object.Expr.(*ast.SuperExpression); ok {
			pos := e.Object.Idx0()
			recv := sr.base
			if !sr.static {
				recv = member(pos, sr.base, "prototype")
			}
			n.Expr = propTarget(pos, recv, e.Property, false).Expr
			return
		}
		n.VisitChildrenWith(sr.V)
	default:
		n.VisitChildrenWith(sr.V)
	}
}
