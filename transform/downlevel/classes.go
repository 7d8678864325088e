package downlevel

import (
	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/token"
)

// classLiteralOf reports the ClassLiteral held by a statement, for any of
// the three shapes spec.md §4.2 recognizes as convertible: `class Name
// {...}`, a single-name `var`/`let`/`const` initializer, or a simple
// `Qualified.Name = class {...}` assignment (isQualifiedName decides what
// counts as "simple"). It exists so VisitStatement can mark a class literal
// recognized before descending into it; lowerClassStatement re-derives the
// same shape with the extra detail (name, receiver, declaration token) that
// actually lowering it needs.
func classLiteralOf(stmt ast.Stmt) (*ast.ClassLiteral, bool) {
	switch s := stmt.(type) {
	case *ast.ClassDeclaration:
		if s.Class.Name == nil {
			return nil, false
		}
		return s.Class, true

	case *ast.VariableDeclaration:
		if len(s.List) != 1 || s.List[0].Initializer == nil {
			return nil, false
		}
		lit, ok := s.List[0].Initializer.Expr.(*ast.ClassLiteral)
		if !ok {
			return nil, false
		}
		if _, ok := s.List[0].Target.Target.(*ast.Identifier); !ok {
			return nil, false
		}
		return lit, true

	case *ast.ExpressionStatement:
		assignExpr, ok := s.Expression.Expr.(*ast.AssignExpression)
		if !ok || assignExpr.Operator != token.Assign {
			return nil, false
		}
		lit, ok := assignExpr.Right.Expr.(*ast.ClassLiteral)
		if !ok || !isQualifiedName(assignExpr.Left) {
			return nil, false
		}
		return lit, true
	}
	return nil, false
}

func (p *Pass) markClassRecognized(cls *ast.ClassLiteral) {
	if p.recognizedClasses == nil {
		p.recognizedClasses = map[*ast.ClassLiteral]bool{}
	}
	p.recognizedClasses[cls] = true
}

// VisitClassLiteral descends into a class body like any other node, then
// diagnoses any class literal that never matched one of the three
// recognized shapes (see classLiteralOf): it is left exactly as parsed,
// since there is no single rebinding target to rewrite it into.
func (p *Pass) VisitClassLiteral(n *ast.ClassLiteral) {
	n.VisitChildrenWith(p.V)
	if !p.recognizedClasses[n] {
		p.diag(CannotConvert, n.Class, "only declarations or simple assignments")
	}
}

// cloneQualifiedName deep-copies a qualified-name expression. isQualifiedName
// guarantees e is built only from Identifier and MemberExpression nodes, so
// this is enough to give each of several synthesized statements its own
// receiver node instead of sharing one across more than one parent.
func cloneQualifiedName(e *ast.Expression) *ast.Expression {
	switch v := e.Expr.(type) {
	case *ast.Identifier:
		dup := *v
		return expr(&dup)
	case *ast.MemberExpression:
		return expr(&ast.MemberExpression{
			Object:   cloneQualifiedName(v.Object),
			Property: cloneQualifiedName(v.Property),
		})
	default:
		dup := *e
		return &dup
	}
}

// classLowering is what lowerClass produces: ctorExpr is the function
// expression the class's binding should now hold, stmts are the remaining
// top-level statements (inherits call, method/field assignments, accessor
// defineProperties calls) that follow it.
type classLowering struct {
	ctorExpr *ast.Expression
	stmts    ast.Statements
}

// lowerClassStatement lowers stmt's class literal in place if it matches
// one of the three recognized shapes, reporting whether it produced a
// replacement. Each shape keeps spec.md §4.2's distinction between
// "declaration" and "otherwise": a bare `class Name {}` statement becomes a
// new `let Name = function(){...}` binding, while a var/let/const
// initializer or a qualified-name assignment keeps its original statement
// (so its declaration token, or the fact that it was a reassignment rather
// than a declaration, is preserved) and simply swaps the class literal for
// the constructor function expression in place.
func (p *Pass) lowerClassStatement(stmt ast.Stmt) (ast.Statements, bool) {
	switch s := stmt.(type) {
	case *ast.ClassDeclaration:
		if s.Class.Name == nil {
			return nil, false
		}
		pos := s.Class.Class
		name := s.Class.Name.Name
		lowering, ok := p.lowerClass(pos, func() *ast.Expression { return identExpr(pos, name) }, s.Class)
		if !ok {
			return nil, false
		}
		binding := varDecl(pos, token.Let, name, lowering.ctorExpr)
		return append(ast.Statements{binding}, lowering.stmts...), true

	case *ast.VariableDeclaration:
		if len(s.List) != 1 || s.List[0].Initializer == nil {
			return nil, false
		}
		lit, ok := s.List[0].Initializer.Expr.(*ast.ClassLiteral)
		if !ok {
			return nil, false
		}
		id, ok := s.List[0].Target.Target.(*ast.Identifier)
		if !ok {
			return nil, false
		}
		pos := s.Idx
		name := id.Name
		lowering, ok := p.lowerClass(pos, func() *ast.Expression { return identExpr(pos, name) }, lit)
		if !ok {
			return nil, false
		}
		s.List[0].Initializer = lowering.ctorExpr
		return append(ast.Statements{ast.Statement{Stmt: s}}, lowering.stmts...), true

	case *ast.ExpressionStatement:
		assignExpr, ok := s.Expression.Expr.(*ast.AssignExpression)
		if !ok || assignExpr.Operator != token.Assign {
			return nil, false
		}
		lit, ok := assignExpr.Right.Expr.(*ast.ClassLiteral)
		if !ok || !isQualifiedName(assignExpr.Left) {
			return nil, false
		}
		pos := assignExpr.Left.Idx0()
		recv := assignExpr.Left
		lowering, ok := p.lowerClass(pos, func() *ast.Expression { return cloneQualifiedName(recv) }, lit)
		if !ok {
			return nil, false
		}
		assignExpr.Right = lowering.ctorExpr
		return append(ast.Statements{ast.Statement{Stmt: s}}, lowering.stmts...), true
	}
	return nil, false
}

// lowerClass rewrites a class body into the constructor function expression
// and trailing ES5 statements that reconstruct its behavior, per spec.md
// §4.2: an inherits() call when there is a superclass, one assignment per
// instance/static method, a defineProperties call per group of getter/setter
// accessors, and field initializers folded into the constructor (instance
// fields) or assigned after it (static fields). recv is called once per
// statement that needs to reference the class's own binding, so each gets
// its own receiver node. The second return value is false when the class is
// abandoned unlowered because of a diagnosed problem in its body.
func (p *Pass) lowerClass(pos ast.Idx, recv func() *ast.Expression, cls *ast.ClassLiteral) (classLowering, bool) {
	for i := range cls.Body {
		m, ok := cls.Body[i].Element.(*ast.MethodDefinition)
		if ok && m.Computed && (m.Kind == ast.PropertyKindGet || m.Kind == ast.PropertyKindSet) {
			p.diag(CannotConvert, m.Key.Idx0(), "computed getter or setter in class definition")
			return classLowering{}, false
		}
	}

	if cls.SuperClass != nil && !isQualifiedName(cls.SuperClass) {
		p.diag(DynamicExtendsType, cls.Class)
	}

	ctor := extractConstructor(cls)
	ctorFn := &ast.FunctionLiteral{Function: pos, Body: &ast.BlockStatement{}}
	if ctor != nil {
		ctorFn.ParameterList = ctor.Body.ParameterList
		ctorFn.Body = ctor.Body.Body
	} else if cls.SuperClass != nil {
		ctorFn.Body = block(exprStmt(call(pos,
			member(pos, cls.SuperClass, "apply"),
			identExpr(pos, "this"), identExpr(pos, "arguments"))))
	}
	prependFieldInitializers(ctorFn, cls, pos)

	if cls.SuperClass != nil {
		rewriteSuper(ctorFn.Body, cls.SuperClass, false)
		for i := range cls.Body {
			if m, ok := cls.Body[i].Element.(*ast.MethodDefinition); ok && !(!m.Static && isConstructorKey(m.Key)) {
				rewriteSuper(m.Body.Body, cls.SuperClass, m.Static)
			}
		}
	}

	var out ast.Statements

	if cls.SuperClass != nil {
		out = append(out, exprStmt(call(pos, jscompHelper(pos, "inherits"), recv(), cls.SuperClass)))
		p.needsRuntime = true
	}

	var instanceAccessors, staticAccessors []*ast.MethodDefinition
	for i := range cls.Body {
		switch el := cls.Body[i].Element.(type) {
		case *ast.MethodDefinition:
			if !el.Static && isConstructorKey(el.Key) {
				continue
			}
			if el.Kind == ast.PropertyKindGet || el.Kind == ast.PropertyKindSet {
				p.checkES3Accessor(el.Key.Idx0())
				if el.Static {
					staticAccessors = append(staticAccessors, el)
				} else {
					instanceAccessors = append(instanceAccessors, el)
				}
				continue
			}
			target := recv()
			if !el.Static {
				target = member(pos, recv(), "prototype")
			}
			out = append(out, exprStmt(assign(propTarget(pos, target, el.Key, el.Computed), expr(el.Body))))

		case *ast.FieldDefinition:
			if !el.Static {
				continue // folded into the constructor above
			}
			init := el.Initializer
			if init == nil {
				init = identExpr(pos, "undefined")
			}
			out = append(out, exprStmt(assign(propTarget(pos, recv(), el.Key, el.Computed), init)))

		case *ast.ClassStaticBlock:
			out = append(out, ast.Statement{Stmt: el.Block})
		}
	}

	if len(instanceAccessors) > 0 {
		out = append(out, p.defineAccessors(pos, member(pos, recv(), "prototype"), instanceAccessors))
	}
	if len(staticAccessors) > 0 {
		out = append(out, p.defineAccessors(pos, recv(), staticAccessors))
	}

	p.rewrote("class")
	return classLowering{ctorExpr: expr(ctorFn), stmts: out}, true
}

func isConstructorKey(key *ast.Expression) bool {
	id, ok := key.Expr.(*ast.Identifier)
	return ok && id.Name == "constructor"
}

func extractConstructor(cls *ast.ClassLiteral) *ast.MethodDefinition {
	for i := range cls.Body {
		if m, ok := cls.Body[i].Element.(*ast.MethodDefinition); ok && !m.Static && m.Kind == ast.PropertyKindMethod && isConstructorKey(m.Key) {
			return m
		}
	}
	return nil
}

// propTarget builds `recv.key` or `recv[key]` depending on computed and on
// whether key resolves to a plain name.
func propTarget(pos ast.Idx, recv, key *ast.Expression, computed bool) *ast.Expression {
	if !computed {
		if name := propKeyName(key); name != "" {
			return member(pos, recv, name)
		}
	}
	return computedMember(recv, key)
}

func isQualifiedName(e *ast.Expression) bool {
	switch v := e.Expr.(type) {
	case *ast.Identifier:
		return true
	case *ast.MemberExpression:
		return isQualifiedName(v.Object)
	default:
		return false
	}
}

// prependFieldInitializers folds each non-static field into `this.key =
// init;` assignments at the top of the constructor body, inserted after an
// explicit leading super() call when there is one.
func prependFieldInitializers(ctorFn *ast.FunctionLiteral, cls *ast.ClassLiteral, pos ast.Idx) {
	var inits ast.Statements
	for i := range cls.Body {
		fd, ok := cls.Body[i].Element.(*ast.FieldDefinition)
		if !ok || fd.Static {
			continue
		}
		init := fd.Initializer
		if init == nil {
			init = identExpr(pos, "undefined")
		}
		inits = append(inits, exprStmt(assign(propTarget(pos, identExpr(pos, "this"), fd.Key, fd.Computed), init)))
	}
	if len(inits) == 0 {
		return
	}
	if ctorFn.Body == nil {
		ctorFn.Body = &ast.BlockStatement{}
	}
	insertAt := 0
	if len(ctorFn.Body.List) > 0 && isSuperCall(ctorFn.Body.List[0]) {
		insertAt = 1
	}
	body := make(ast.Statements, 0, len(ctorFn.Body.List)+len(inits))
	body = append(body, ctorFn.Body.List[:insertAt]...)
	body = append(body, inits...)
	body = append(body, ctorFn.Body.List[insertAt:]...)
	ctorFn.Body.List = body
}

func isSuperCall(s ast.Statement) bool {
	es, ok := s.Stmt.(*ast.ExpressionStatement)
	if !ok {
		return false
	}
	ce, ok := es.Expression.Expr.(*ast.CallExpression)
	if !ok {
		return false
	}
	_, ok = ce.Callee.Expr.(*ast.SuperExpression)
	return ok
}

// defineAccessors groups get/set MethodDefinitions sharing a key into one
// Object.defineProperties(recv, {...}) call.
func (p *Pass) defineAccessors(pos ast.Idx, recv *ast.Expression, methods []*ast.MethodDefinition) ast.Statement {
	type pair struct{ get, set *ast.MethodDefinition }
	pairs := map[string]*pair{}
	var order []string
	for _, m := range methods {
		name := propKeyName(m.Key)
		if name == "" {
			continue
		}
		pr, ok := pairs[name]
		if !ok {
			pr = &pair{}
			pairs[name] = pr
			order = append(order, name)
		}
		if m.Kind == ast.PropertyKindGet {
			if pr.get != nil {
				p.diag(ConflictingGetterSetterType, m.Key.Idx0(), name)
			}
			pr.get = m
		} else {
			if pr.set != nil {
				p.diag(ConflictingGetterSetterType, m.Key.Idx0(), name)
			}
			pr.set = m
		}
	}

	var props ast.Properties
	for _, name := range order {
		pr := pairs[name]
		var descriptor ast.Properties
		if pr.get != nil {
			descriptor = append(descriptor, ast.Property{Prop: &ast.PropertyKeyed{
				Key: stringExpr(pos, "get"), Value: expr(pr.get.Body), Kind: ast.PropertyKindValue,
			}})
		}
		if pr.set != nil {
			descriptor = append(descriptor, ast.Property{Prop: &ast.PropertyKeyed{
				Key: stringExpr(pos, "set"), Value: expr(pr.set.Body), Kind: ast.PropertyKindValue,
			}})
		}
		descriptor = append(descriptor,
			ast.Property{Prop: &ast.PropertyKeyed{Key: stringExpr(pos, "enumerable"), Value: boolExpr(pos, true), Kind: ast.PropertyKindValue}},
			ast.Property{Prop: &ast.PropertyKeyed{Key: stringExpr(pos, "configurable"), Value: boolExpr(pos, true), Kind: ast.PropertyKindValue}},
		)
		props = append(props, ast.Property{Prop: &ast.PropertyKeyed{
			Key:   stringExpr(pos, name),
			Value: expr(&ast.ObjectLiteral{LeftBrace: pos, RightBrace: pos, Value: descriptor}),
			Kind:  ast.PropertyKindValue,
		}})
	}
	defineObj := expr(&ast.ObjectLiteral{LeftBrace: pos, RightBrace: pos, Value: props})
	return exprStmt(call(pos, member(pos, identExpr(pos, "Object"), "defineProperties"), recv, defineObj))
}
