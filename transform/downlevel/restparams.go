package downlevel

import (
	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/token"
)

// restParamRewrite is what restParamStatements produces: pre is spliced
// directly into the function body, ahead of everything already there; inner
// declares the rest binding and must become the first statement of a fresh
// block wrapping the rest of the original body, so the `let` introduced for
// it shadows the renamed parameter only across that nested scope, matching
// spec.md §8 concrete scenario 2.
type restParamRewrite struct {
	pre   ast.Statements
	inner ast.Statement
}

// restParamStatements implements spec.md §4.5. Step 1 mutates the rest
// parameter into a plain trailing parameter (leaving arity and position
// intact for any later pass) rather than deleting it from the signature.
// Step 2's JSDoc type-annotation check has no equivalent here: this AST
// carries no annotation model for parameters to validate, so
// BAD_REST_PARAMETER_ANNOTATION can never be reported (see DESIGN.md).
// Step 3: an empty body needs no extraction, so bodyEmpty short-circuits
// before building it. Step 4 rebuilds:
//
//	var $jscomp$restParams = [];
//	for (var $jscomp$restIndex = N; $jscomp$restIndex < arguments.length; $jscomp$restIndex++) {
//	  $jscomp$restParams[$jscomp$restIndex - N] = arguments[$jscomp$restIndex];
//	}
//	{ let rest = $jscomp$restParams; <original body> }
//
// where N is the positional index of the rest parameter. The caller wraps
// the original body statements around inner to produce the nested block;
// this runs pre-order, before VisitChildrenWith descends into the body, so
// uses of rest inside the body resolve against the let declaration rather
// than the now-plain parameter of the same name.
func (p *Pass) restParamStatements(params *ast.ParameterList, pos ast.Idx, bodyEmpty bool) *restParamRewrite {
	if params.Rest == nil {
		return nil
	}
	name := "$jscomp$restArgs"
	restIdent := ident(pos, name)
	if id, ok := params.Rest.(*ast.Identifier); ok {
		name = id.Name
		restIdent = id
	}
	fixedCount := float64(len(params.List))
	params.List = append(params.List, ast.VariableDeclarator{Target: &ast.BindingTarget{Target: restIdent}})
	params.Rest = nil
	p.rewrote("rest_parameter")

	if bodyEmpty {
		return nil
	}

	restParams := varDecl(pos, token.Var, prefixRestParams, arrayLit(pos))

	index := identExpr(pos, prefixRestIndex)
	loop := &ast.ForStatement{
		For: pos,
		Initializer: &ast.ForLoopInitializer{Initializer: &ast.VariableDeclaration{
			Idx:   pos,
			Token: token.Var,
			List: ast.VariableDeclarators{{
				Target:      &ast.BindingTarget{Target: ident(pos, prefixRestIndex)},
				Initializer: numberExpr(pos, fixedCount),
			}},
		}},
		Test: expr(&ast.BinaryExpression{
			Operator: token.Less,
			Left:     index,
			Right:    member(pos, identExpr(pos, "arguments"), "length"),
		}),
		Update: expr(&ast.UpdateExpression{Operator: token.Increment, Operand: index, Postfix: true}),
		Body: &ast.Statement{Stmt: block(exprStmt(assign(
			computedMember(identExpr(pos, prefixRestParams), expr(&ast.BinaryExpression{
				Operator: token.Minus,
				Left:     index,
				Right:    numberExpr(pos, fixedCount),
			})),
			computedMember(identExpr(pos, "arguments"), index),
		)))},
	}

	restVar := varDecl(pos, token.Let, name, identExpr(pos, prefixRestParams))

	return &restParamRewrite{
		pre:   ast.Statements{restParams, ast.Statement{Stmt: loop}},
		inner: restVar,
	}
}
