// Package downlevel rewrites an ES6-dialect AST in place so that it can be
// printed back out as ES5/ES3-compatible source: classes, for-of loops,
// rest parameters, spread elements, computed property keys and shorthand
// object literal members are all rewritten to constructs that exist in the
// older dialect. The pass never changes program behavior, only the shape
// of the tree it is expressed in.
package downlevel

import (
	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/resolver"
)

// LanguageOut selects the output dialect. ES3 additionally has no
// getter/setter syntax at all, so any accessor property or method is
// diagnosed rather than passed through when this is the target (spec.md
// §4.1).
type LanguageOut int

const (
	ES5 LanguageOut = iota
	ES3
)

// Options configures a single run of the pass.
type Options struct {
	LanguageOut LanguageOut

	// UniqueClassNames mirrors the source compiler's useUnique flag on its
	// class-naming helper. The helper it fed always returned its input
	// unchanged regardless of this flag (see original_source's
	// getUniqueClassName), so this field is accepted and threaded through
	// for API compatibility but does not currently change any output.
	UniqueClassNames bool
}

// Result is what a single Run produces.
type Result struct {
	Diagnostics  *Diagnostics
	NeedsRuntime bool

	// CodeChanged reports whether any rewrite touched the tree (spec.md §6
	// Outputs: "code-changed is reported after every local rewrite"). A
	// second Run over the pass's own output should always leave this false
	// (spec.md §8's idempotency property).
	CodeChanged bool
}

// Pass implements ast.Visitor over the NoopVisitor trampoline: every
// Visit* method it does not override falls through to a plain descent,
// and the handful it does override either rewrite the node in place or
// schedule a statement-list splice for the enclosing VisitStatements call
// to apply (see pendingPre/pendingReplace below).
type Pass struct {
	ast.NoopVisitor

	opts    Options
	sink    *Diagnostics
	names   nameMinter
	metrics *Metrics

	changed      bool
	needsRuntime bool
	funcDepth    int

	// recognizedClasses marks every ClassLiteral that matched one of the
	// three statement shapes lowerClass knows how to rewrite (declaration,
	// single-name var/let/const initializer, simple assignment), set
	// before VisitStatement descends into it. VisitClassLiteral reports
	// CANNOT_CONVERT on anything left out of this set once visited: a
	// class literal appearing anywhere else (e.g. a call argument) has no
	// single rebinding target to rewrite it into (spec.md §4.2 "otherwise").
	recognizedClasses map[*ast.ClassLiteral]bool

	// Scratch used by VisitStatements to let a nested rewrite either
	// insert statements before the one currently being visited
	// (pendingPre) or replace it outright with zero or more statements
	// (pendingReplace, active only when pendingReplaced is true). Both
	// are saved and restored around each nested VisitStatements call so
	// a hoist always lands in the innermost enclosing statement list.
	pendingPre      ast.Statements
	pendingReplace  ast.Statements
	pendingReplaced bool
}

func NewPass(opts Options, sink *Diagnostics, metrics *Metrics) *Pass {
	p := &Pass{opts: opts, sink: sink, metrics: metrics}
	p.V = p
	return p
}

// Run resolves scope information and then runs a single downleveling pass
// over prog, mutating it in place.
func Run(prog *ast.Program, opts Options, metrics *Metrics) *Result {
	resolver.Resolve(prog)
	sink := &Diagnostics{}
	checkClassReassignment(prog, sink, metrics)
	p := NewPass(opts, sink, metrics)
	prog.VisitWith(p)
	return &Result{Diagnostics: sink, NeedsRuntime: p.needsRuntime, CodeChanged: p.changed}
}

func (p *Pass) diag(id ID, pos ast.Idx, args ...any) {
	p.sink.report(id, pos, args...)
	p.metrics.diagnostic(id)
}

// checkES3Accessor diagnoses a getter or setter when the target dialect is
// ES3, which has no accessor syntax to fall back on the way ES5 does.
func (p *Pass) checkES3Accessor(pos ast.Idx) {
	if p.opts.LanguageOut == ES3 {
		p.diag(CannotConvert, pos, "ES5 getters/setters")
	}
}

func (p *Pass) rewrote(construct string) {
	p.changed = true
	p.metrics.rewrite(construct)
}

// hoistBefore schedules stmt to be inserted immediately before the
// statement currently being visited, in the innermost enclosing statement
// list.
func (p *Pass) hoistBefore(stmt ast.Statement) {
	p.pendingPre = append(p.pendingPre, stmt)
}

// replaceStatement schedules the statement currently being visited to be
// replaced by stmts (which may be empty, to delete it).
func (p *Pass) replaceStatement(stmts ...ast.Statement) {
	p.pendingReplace = append(p.pendingReplace, stmts...)
	p.pendingReplaced = true
}

func (p *Pass) VisitStatements(n *ast.Statements) {
	savedPre, savedRepl, savedFlag := p.pendingPre, p.pendingReplace, p.pendingReplaced
	out := make(ast.Statements, 0, len(*n))
	for i := range *n {
		p.pendingPre = nil
		p.pendingReplace = nil
		p.pendingReplaced = false

		stmt := (*n)[i]
		stmt.VisitWith(p.V)

		out = append(out, p.pendingPre...)
		if p.pendingReplaced {
			out = append(out, p.pendingReplace...)
		} else {
			out = append(out, stmt)
		}
	}
	*n = out
	p.pendingPre, p.pendingReplace, p.pendingReplaced = savedPre, savedRepl, savedFlag
}

// VisitStatement descends into a statement's children first, then applies
// any rewrite whose output is still a single statement of a different
// concrete type (for-of becomes a for loop; class-bearing forms are
// handled in classes.go and may call replaceStatement instead).
//
// A class literal matching one of the three recognized shapes is marked
// recognized before the descent so that VisitClassLiteral, reached during
// the descent, doesn't mistake it for an unsupported position.
func (p *Pass) VisitStatement(n *ast.Statement) {
	if cls, ok := classLiteralOf(n.Stmt); ok {
		p.markClassRecognized(cls)
	}

	n.VisitChildrenWith(p.V)

	if s, ok := n.Stmt.(*ast.ForOfStatement); ok {
		p.lowerForOf(s)
	}
	if stmts, ok := p.lowerClassStatement(n.Stmt); ok {
		p.replaceStatement(stmts...)
	}
}

// VisitExpression descends into an expression's children first, then
// applies any rewrite that replaces the expression with a different
// concrete node while keeping it in the same position (spread elements,
// object literals with computed keys).
func (p *Pass) VisitExpression(n *ast.Expression) {
	n.VisitChildrenWith(p.V)

	switch e := n.Expr.(type) {
	case *ast.ArrayLiteral:
		if rep := p.lowerSpreadArray(e); rep != nil {
			n.Expr = rep
		}
	case *ast.CallExpression:
		if rep := p.lowerSpreadCall(e, callPos(e)); rep != nil {
			n.Expr = rep
		}
	case *ast.NewExpression:
		if rep := p.lowerSpreadNew(e, e.New); rep != nil {
			n.Expr = rep
		}
	case *ast.ObjectLiteral:
		if rep := p.lowerComputedProperties(e); rep != nil {
			n.Expr = rep
		}
	}
}

// callPos picks a stable position to stamp synthesized nodes with for a
// call expression, which carries no Idx of its own on the callee side.
func callPos(n *ast.CallExpression) ast.Idx {
	return n.Callee.Idx0()
}

func (p *Pass) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	bodyEmpty := n.Body == nil || len(n.Body.List) == 0
	if rw := p.restParamStatements(&n.ParameterList, n.Function, bodyEmpty); rw != nil {
		inner := append(ast.Statements{rw.inner}, n.Body.List...)
		n.Body.List = append(rw.pre, ast.Statement{Stmt: &ast.BlockStatement{List: inner}})
	}
	p.funcDepth++
	n.VisitChildrenWith(p.V)
	p.funcDepth--
}

func (p *Pass) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {
	bodyEmpty := false
	if blk, ok := n.Body.Body.(*ast.BlockStatement); ok {
		bodyEmpty = len(blk.List) == 0
	}
	if rw := p.restParamStatements(&n.ParameterList, n.Start, bodyEmpty); rw != nil {
		n.Body.Body = arrowBodyWithPrefix(n.Start, n.Body.Body, rw)
	}
	p.funcDepth++
	n.VisitChildrenWith(p.V)
	p.funcDepth--
}

// arrowBodyWithPrefix splices rw's extraction statements ahead of an arrow
// function's body, converting a concise expression body into a block body
// with an explicit return when necessary, and wrapping the original body in
// the nested let-scoped block restParamStatements describes.
func arrowBodyWithPrefix(pos ast.Idx, body ast.Body, rw *restParamRewrite) ast.Body {
	if blk, ok := body.(*ast.BlockStatement); ok {
		inner := append(ast.Statements{rw.inner}, blk.List...)
		blk.List = append(rw.pre, ast.Statement{Stmt: &ast.BlockStatement{List: inner}})
		return blk
	}
	var ret ast.Statement
	if e, ok := body.(*ast.Expression); ok {
		ret = ast.Statement{Stmt: &ast.ReturnStatement{Return: pos, Argument: e}}
	} else {
		ret = ast.Statement{Stmt: &ast.EmptyStatement{Semicolon: pos}}
	}
	inner := &ast.BlockStatement{List: ast.Statements{rw.inner, ret}}
	return &ast.BlockStatement{List: append(rw.pre, ast.Statement{Stmt: inner})}
}
