package downlevel

import (
	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/ast/ext"
	"github.com/t14raptor/go-fast/token"
)

// hasSpread reports whether any element of list is a spread element.
func hasSpread(list ast.Expressions) bool {
	for i := range list {
		if _, ok := list[i].Expr.(*ast.SpreadElement); ok {
			return true
		}
	}
	return false
}

// spreadConcatArgs partitions list into runs of plain elements (each
// wrapped in its own array literal) and spread expressions passed through
// unchanged, then joins the whole sequence with Array.prototype.concat,
// per spec.md §4.4.
func spreadConcatArgs(pos ast.Idx, list ast.Expressions) *ast.Expression {
	var parts []*ast.Expression
	var run []*ast.Expression
	flush := func() {
		if len(run) > 0 {
			parts = append(parts, arrayLit(pos, run...))
			run = nil
		}
	}
	for i := range list {
		if sp, ok := list[i].Expr.(*ast.SpreadElement); ok {
			flush()
			e := sp.Expression
			parts = append(parts, &e)
			continue
		}
		e := list[i]
		run = append(run, &e)
	}
	flush()
	return call(pos, member(pos, arrayLit(pos), "concat"), parts...)
}

// lowerSpreadArray rewrites `[a, ...b, c]` into `[].concat([a], b, [c])`.
func (p *Pass) lowerSpreadArray(n *ast.ArrayLiteral) ast.Expr {
	if !hasSpread(n.Value) {
		return nil
	}
	pos := n.LeftBracket
	p.rewrote("spread_array")
	return spreadConcatArgs(pos, n.Value).Expr
}

// lowerSpreadCall rewrites a call with spread arguments into an .apply
// call, hoisting the receiver into a temporary first when it is not safe
// to evaluate twice (spec.md §4.4).
func (p *Pass) lowerSpreadCall(n *ast.CallExpression, pos ast.Idx) ast.Expr {
	if !hasSpread(n.ArgumentList) {
		return nil
	}
	argsExpr := spreadConcatArgs(pos, n.ArgumentList)

	if mem, ok := n.Callee.Expr.(*ast.MemberExpression); ok {
		var receiver *ast.Expression
		if ext.MayHaveSideEffects(mem.Object) {
			tmp := p.names.spreadArgsName()
			p.hoistBefore(varDecl(pos, token.Var, tmp, mem.Object))
			mem.Object = identExpr(pos, tmp)
			receiver = identExpr(pos, tmp)
		} else {
			// mem.Object stays in the callee; the .apply() argument needs its
			// own node so the two uses don't share a parent.
			dup := *mem.Object
			receiver = &dup
		}
		p.rewrote("spread_call")
		return call(pos, member(pos, n.Callee, "apply"), receiver, argsExpr).Expr
	}

	p.rewrote("spread_call")
	return call(pos, member(pos, n.Callee, "apply"), expr(&ast.NullLiteral{Idx: pos}), argsExpr).Expr
}

// lowerSpreadNew rewrites `new Ctor(...args)` using the bind/apply idiom,
// since `new` cannot itself be invoked with a dynamic argument array:
//
//	new (Function.prototype.bind.apply(Ctor, [].concat([null], args)))()
func (p *Pass) lowerSpreadNew(n *ast.NewExpression, pos ast.Idx) ast.Expr {
	if !hasSpread(n.ArgumentList) {
		return nil
	}
	withNull := append(ast.Expressions{*expr(&ast.NullLiteral{Idx: pos})}, n.ArgumentList...)
	argsExpr := spreadConcatArgs(pos, withNull)

	bind := member(pos, member(pos, identExpr(pos, "Function"), "prototype"), "bind")
	boundCtor := call(pos, member(pos, bind, "apply"), n.Callee, argsExpr)

	p.rewrote("spread_new")
	return &ast.NewExpression{
		New:              pos,
		Callee:           boundCtor,
		LeftParenthesis:  pos,
		RightParenthesis: pos,
	}
}
