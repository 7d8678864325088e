package downlevel

import (
	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/token"
)

// checkClassReassignment implements spec.md §4.2's class-reassignment
// check. The rebinding this pass performs for a class declared inside a
// function (`let Name = function(){...}`) only behaves like the original
// `class Name {...}` if nothing else in that function ever reassigns
// Name; flag it instead of silently producing code whose binding can
// be rewritten out from under it. Runs once, directly on the freshly
// resolved tree, before lowering touches anything.
func checkClassReassignment(prog *ast.Program, sink *Diagnostics, metrics *Metrics) {
	c := &classReassignChecker{sink: sink, metrics: metrics, classes: map[ast.Id]bool{}}
	c.V = c

	c.phase = collectClasses
	prog.VisitWith(c)
	if len(c.classes) == 0 {
		return
	}

	c.phase = flagReassignments
	prog.VisitWith(c)
}

type reassignPhase int

const (
	collectClasses reassignPhase = iota
	flagReassignments
)

type classReassignChecker struct {
	ast.NoopVisitor
	sink      *Diagnostics
	metrics   *Metrics
	phase     reassignPhase
	funcDepth int
	classes   map[ast.Id]bool
}

func (c *classReassignChecker) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	c.funcDepth++
	n.VisitChildrenWith(c.V)
	c.funcDepth--
}

func (c *classReassignChecker) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {
	c.funcDepth++
	n.VisitChildrenWith(c.V)
	c.funcDepth--
}

func (c *classReassignChecker) VisitClassDeclaration(n *ast.ClassDeclaration) {
	if c.phase == collectClasses && c.funcDepth > 0 && n.Class.Name != nil {
		c.classes[n.Class.Name.ToId()] = true
	}
	n.VisitChildrenWith(c.V)
}

func (c *classReassignChecker) VisitAssignExpression(n *ast.AssignExpression) {
	if c.phase == flagReassignments && n.Operator == token.Assign {
		if id, ok := n.Left.Expr.(*ast.Identifier); ok && c.classes[id.ToId()] {
			c.sink.report(ClassReassignment, id.Idx)
			c.metrics.diagnostic(ClassReassignment)
		}
	}
	n.VisitChildrenWith(c.V)
}
