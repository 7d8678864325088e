package downlevel

import (
	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/token"
)

// lowerForOf rewrites `for (TARGET of SOURCE) BODY` into an iterator-protocol
// for loop, per spec.md §4.3:
//
//	var $jscomp$iter$N = $jscomp.makeIterator(SOURCE);
//	for (var $jscomp$key$x = $jscomp$iter$N.next(); !$jscomp$key$x.done; $jscomp$key$x = $jscomp$iter$N.next()) {
//	  TARGET = $jscomp$key$x.value;
//	  BODY
//	}
//
// $iter is minted from the pass-wide counter; $key is derived from the
// loop target's own name, not the counter.
func (p *Pass) lowerForOf(n *ast.ForOfStatement) {
	pos := n.For
	varName, declToken, isDecl := forOfTarget(n.Into)
	iterVar := p.names.iterName()
	keyVar := p.names.keyName(varName)

	iterDecl := varDecl(pos, token.Var, iterVar, call(pos, jscompHelper(pos, "makeIterator"), n.Source))
	p.hoistBefore(iterDecl)
	p.needsRuntime = true

	next := func() *ast.Expression {
		return call(pos, member(pos, identExpr(pos, iterVar), "next"))
	}

	init := &ast.ForLoopInitializer{Initializer: &ast.VariableDeclaration{
		Idx:   pos,
		Token: token.Var,
		List: ast.VariableDeclarators{{
			Target:      &ast.BindingTarget{Target: ident(pos, keyVar)},
			Initializer: next(),
		}},
	}}
	test := expr(&ast.UnaryExpression{
		Operator: token.Not,
		Operand:  member(pos, identExpr(pos, keyVar), "done"),
	})
	update := assign(identExpr(pos, keyVar), next())

	var targetAssign ast.Statement
	value := member(pos, identExpr(pos, keyVar), "value")
	if isDecl {
		targetAssign = varDecl(pos, declToken, varName, value)
	} else {
		targetAssign = exprStmt(assign(identExpr(pos, varName), value))
	}

	forStmt := &ast.ForStatement{
		For:         pos,
		Initializer: init,
		Test:        test,
		Update:      update,
		Body:        &ast.Statement{Stmt: prependToBody(n.Body, targetAssign)},
	}
	p.replaceStatement(ast.Statement{Stmt: forStmt})
	p.rewrote("for_of")
}

// forOfTarget extracts the loop variable's name, the declaration token to
// use when rebuilding it (meaningless when isDecl is false) and whether the
// target was introduced by a declaration (`for (let x of ...)`) as opposed
// to an existing binding (`for (x of ...)`).
func forOfTarget(into *ast.ForInto) (name string, tok token.Token, isDecl bool) {
	switch t := into.Into.(type) {
	case *ast.VariableDeclaration:
		decl := t.List[0]
		if id, ok := decl.Target.Target.(*ast.Identifier); ok {
			name = id.Name
		}
		return name, t.Token, true
	case *ast.Expression:
		if id, ok := t.Expr.(*ast.Identifier); ok {
			name = id.Name
		}
		return name, token.Var, false
	}
	return "", token.Var, false
}

// prependToBody inserts stmt at the start of body, reusing body's own
// block if it already is one rather than wrapping it in a second block.
func prependToBody(body *ast.Statement, stmt ast.Statement) *ast.BlockStatement {
	if blk, ok := body.Stmt.(*ast.BlockStatement); ok {
		blk.List = append(ast.Statements{stmt}, blk.List...)
		return blk
	}
	return &ast.BlockStatement{List: ast.Statements{stmt, *body}}
}
