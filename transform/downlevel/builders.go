package downlevel

import (
	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/token"
)

// This file holds small AST-construction helpers shared by the rewriters.
// Every synthesized node is stamped with pos, the source location of the
// node it replaces or is inserted next to, per spec.md §4.8.

func ident(pos ast.Idx, name string) *ast.Identifier {
	return &ast.Identifier{Idx: pos, Name: name}
}

func identExpr(pos ast.Idx, name string) *ast.Expression {
	return &ast.Expression{Expr: ident(pos, name)}
}

func expr(e ast.Expr) *ast.Expression {
	return &ast.Expression{Expr: e}
}

func numberExpr(pos ast.Idx, v float64) *ast.Expression {
	return expr(&ast.NumberLiteral{Idx: pos, Value: v})
}

func boolExpr(pos ast.Idx, v bool) *ast.Expression {
	return expr(&ast.BooleanLiteral{Idx: pos, Value: v})
}

func stringExpr(pos ast.Idx, v string) *ast.Expression {
	return expr(&ast.StringLiteral{Idx: pos, Value: v})
}

// member builds `obj.name`.
func member(pos ast.Idx, obj *ast.Expression, name string) *ast.Expression {
	return expr(&ast.MemberExpression{
		Object:   obj,
		Property: identExpr(pos, name),
	})
}

// computedMember builds `obj[key]`.
func computedMember(obj, key *ast.Expression) *ast.Expression {
	return expr(&ast.MemberExpression{
		Object:   obj,
		Property: key,
	})
}

// call builds `callee(args...)`.
func call(pos ast.Idx, callee *ast.Expression, args ...*ast.Expression) *ast.Expression {
	list := make(ast.Expressions, len(args))
	for i, a := range args {
		list[i] = *a
	}
	return expr(&ast.CallExpression{
		Callee:       callee,
		ArgumentList: list,
	})
}

// assign builds `left = right`.
func assign(left, right *ast.Expression) *ast.Expression {
	return expr(&ast.AssignExpression{
		Operator: token.Assign,
		Left:     left,
		Right:    right,
	})
}

func exprStmt(e *ast.Expression) ast.Statement {
	return ast.Statement{Stmt: &ast.ExpressionStatement{Expression: e}}
}

func block(stmts ...ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{List: ast.Statements(stmts)}
}

// varDecl builds `tok name = init;` (init may be nil).
func varDecl(pos ast.Idx, tok token.Token, name string, init *ast.Expression) ast.Statement {
	return ast.Statement{Stmt: &ast.VariableDeclaration{
		Idx:   pos,
		Token: tok,
		List: ast.VariableDeclarators{{
			Target:      &ast.BindingTarget{Target: ident(pos, name)},
			Initializer: init,
		}},
	}}
}

// arrayLit builds `[elems...]`.
func arrayLit(pos ast.Idx, elems ...*ast.Expression) *ast.Expression {
	vals := make(ast.Expressions, len(elems))
	for i, e := range elems {
		vals[i] = *e
	}
	return expr(&ast.ArrayLiteral{LeftBracket: pos, RightBracket: pos, Value: vals})
}

// jscompHelper builds a reference to the fixed runtime helper qualified
// name "$jscomp.<name>" (spec.md §6: exactly these two qualified names).
func jscompHelper(pos ast.Idx, name string) *ast.Expression {
	return member(pos, identExpr(pos, "$jscomp"), name)
}
