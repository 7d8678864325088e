package generator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/t14raptor/go-fast/ast"
)

// Generate renders node back into JavaScript source text.
func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		for i := range n.Body {
			gen(s.wrap(n.Body[i].Stmt))
			s.line()
		}
	case *ast.Expression:
		if n != nil {
			gen(s.wrap(n.Expr))
		}
	case *ast.Statement:
		if n != nil {
			gen(s.wrap(n.Stmt))
		}

	// Literals
	case *ast.BooleanLiteral:
		if n.Value {
			s.out.WriteString("true")
		} else {
			s.out.WriteString("false")
		}
	case *ast.NullLiteral:
		s.out.WriteString("null")
	case *ast.NumberLiteral:
		if n.Raw != nil {
			s.out.WriteString(*n.Raw)
		} else {
			s.out.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
		}
	case *ast.RegExpLiteral:
		s.out.WriteString("/")
		s.out.WriteString(n.Pattern)
		s.out.WriteString("/")
		s.out.WriteString(n.Flags)
	case *ast.StringLiteral:
		if n.Raw != nil {
			s.out.WriteString(*n.Raw)
		} else {
			s.out.WriteString(strconv.Quote(n.Value))
		}

	case *ast.Identifier:
		if n != nil {
			s.out.WriteString(n.Name)
		}
	case *ast.PrivateIdentifier:
		s.out.WriteString("#")
		gen(s.wrap(n.Identifier))
	case *ast.ThisExpression:
		s.out.WriteString("this")
	case *ast.SuperExpression:
		s.out.WriteString("super")

	case *ast.ArrayLiteral:
		s.out.WriteString("[")
		for i := range n.Value {
			if n.Value[i].Expr != nil {
				gen(s.wrap(n.Value[i].Expr))
			}
			if i < len(n.Value)-1 {
				s.out.WriteString(", ")
			}
		}
		s.out.WriteString("]")
	case *ast.ArrayPattern:
		s.out.WriteString("[")
		for i := range n.Elements {
			if n.Elements[i].Expr != nil {
				gen(s.wrap(n.Elements[i].Expr))
			}
			if i < len(n.Elements)-1 || n.Rest != nil {
				s.out.WriteString(", ")
			}
		}
		if n.Rest != nil {
			s.out.WriteString("...")
			gen(s.wrap(n.Rest.Expr))
		}
		s.out.WriteString("]")
	case *ast.AssignExpression:
		if _, ok := s.parent.node.(*ast.BinaryExpression); ok {
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		}
		gen(s.wrap(n.Left.Expr))
		s.out.WriteString(" ")
		s.out.WriteString(n.Operator.String())
		s.out.WriteString(" ")
		gen(s.wrap(n.Right.Expr))
	case *ast.InvalidExpression:
	case *ast.BinaryExpression:
		if pn, ok := s.parent.node.(*ast.BinaryExpression); ok {
			operatorPrecedence := n.Operator.Precedence(true)
			parentOperatorPrecedence := pn.Operator.Precedence(true)
			if operatorPrecedence < parentOperatorPrecedence ||
				(operatorPrecedence == parentOperatorPrecedence && pn.Right.Expr == n) {
				s.out.WriteString("(")
				defer s.out.WriteString(")")
			}
		}
		gen(s.wrap(n.Left.Expr))
		s.out.WriteString(" " + n.Operator.String() + " ")
		gen(s.wrap(n.Right.Expr))
	case *ast.CallExpression:
		if _, ok := n.Callee.Expr.(*ast.FunctionLiteral); ok {
			s.out.WriteString("(")
			gen(s.wrap(n.Callee.Expr))
			s.out.WriteString(")")
		} else {
			gen(s.wrap(n.Callee.Expr))
		}
		s.out.WriteString("(")
		for i := range n.ArgumentList {
			gen(s.wrap(n.ArgumentList[i].Expr))
			if i < len(n.ArgumentList)-1 {
				s.out.WriteString(", ")
			}
		}
		s.out.WriteString(")")
	case *ast.ConditionalExpression:
		if _, ok := s.parent.node.(*ast.BinaryExpression); ok {
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		}
		gen(s.wrap(n.Test.Expr))
		s.out.WriteString(" ? ")
		gen(s.wrap(n.Consequent.Expr))
		s.out.WriteString(" : ")
		gen(s.wrap(n.Alternate.Expr))
	case *ast.MemberExpression:
		gen(s.wrap(n.Object.Expr))
		if id, ok := n.Property.Expr.(*ast.Identifier); ok {
			s.out.WriteString(".")
			gen(s.wrap(id))
		} else if st, ok := n.Property.Expr.(*ast.StringLiteral); ok && valid(st.Value) {
			s.out.WriteString(".")
			s.out.WriteString(st.Value)
		} else {
			s.out.WriteString("[")
			gen(s.wrap(n.Property.Expr))
			s.out.WriteString("]")
		}
	case *ast.PrivateDotExpression:
		gen(s.wrap(n.Left.Expr))
		s.out.WriteString(".")
		gen(s.wrap(&n.Identifier))
	case *ast.OptionalChain:
		gen(s.wrap(n.Base.Expr))
	case *ast.Optional:
		s.out.WriteString("?.")
		gen(s.wrap(n.Expr.Expr))
	case *ast.NewExpression:
		s.out.WriteString("new ")
		gen(s.wrap(n.Callee.Expr))
		s.out.WriteString("(")
		for i := range n.ArgumentList {
			gen(s.wrap(n.ArgumentList[i].Expr))
			if i < len(n.ArgumentList)-1 {
				s.out.WriteString(", ")
			}
		}
		s.out.WriteString(")")
	case *ast.SequenceExpression:
		switch s.parent.node.(type) {
		case *ast.BinaryExpression, *ast.ConditionalExpression, *ast.AssignExpression, *ast.CallExpression,
			*ast.NewExpression, *ast.AwaitExpression, *ast.ThrowStatement, *ast.ReturnStatement, *ast.VariableDeclarator:
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		}
		for i := range n.Sequence {
			gen(s.wrap(n.Sequence[i].Expr))
			if i < len(n.Sequence)-1 {
				s.out.WriteString(", ")
			}
		}
	case *ast.SpreadElement:
		s.out.WriteString("...")
		gen(s.wrap(n.Expression.Expr))
	case *ast.UnaryExpression:
		s.out.WriteString(n.Operator.String())
		if len(n.Operator.String()) > 2 {
			s.out.WriteString(" ")
		}
		wrap := false
		switch n.Operand.Expr.(type) {
		case *ast.BinaryExpression, *ast.ConditionalExpression, *ast.AssignExpression, *ast.UnaryExpression:
			wrap = true
		}
		if wrap {
			s.out.WriteString("(")
		}
		gen(s.wrap(n.Operand.Expr))
		if wrap {
			s.out.WriteString(")")
		}
	case *ast.UpdateExpression:
		if !n.Postfix {
			s.out.WriteString(n.Operator.String())
		}
		gen(s.wrap(n.Operand.Expr))
		if n.Postfix {
			s.out.WriteString(n.Operator.String())
		}
	case *ast.YieldExpression:
		s.out.WriteString("yield")
		if n.Delegate {
			s.out.WriteString("*")
		}
		if n.Argument != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Argument.Expr))
		}
	case *ast.AwaitExpression:
		s.out.WriteString("await ")
		gen(s.wrap(n.Argument.Expr))
	case *ast.MetaProperty:
		gen(s.wrap(n.Meta))
		s.out.WriteString(".")
		gen(s.wrap(n.Property))
	case *ast.TemplateLiteral:
		if n.Tag != nil {
			gen(s.wrap(n.Tag.Expr))
		}
		s.out.WriteString("`")
		ei := 0
		for _, el := range n.Elements {
			s.out.WriteString(el.Literal)
			if ei < len(n.Expressions) {
				s.out.WriteString("${")
				gen(s.wrap(n.Expressions[ei].Expr))
				s.out.WriteString("}")
				ei++
			}
		}
		s.out.WriteString("`")

	// Object/class literals
	case *ast.ObjectLiteral:
		s.out.WriteString("{")
		s.indent++
		for i := range n.Value {
			s.lineAndPad()
			gen(s.wrap(&n.Value[i]))
			if i < len(n.Value)-1 {
				s.out.WriteString(",")
			}
		}
		s.indent--
		if len(n.Value) > 0 {
			s.lineAndPad()
		}
		s.out.WriteString("}")
	case *ast.ObjectPattern:
		s.out.WriteString("{")
		for i := range n.Properties {
			gen(s.wrap(&n.Properties[i]))
			if i < len(n.Properties)-1 || n.Rest != nil {
				s.out.WriteString(", ")
			}
		}
		if n.Rest != nil {
			s.out.WriteString("...")
			gen(s.wrap(n.Rest))
		}
		s.out.WriteString("}")
	case *ast.Property:
		if n != nil {
			gen(s.wrap(n.Prop))
		}
	case *ast.PropertyKeyed:
		if n.Kind == ast.PropertyKindGet || n.Kind == ast.PropertyKindSet {
			s.out.WriteString(string(n.Kind))
			s.out.WriteString(" ")
		}
		if n.Computed {
			s.out.WriteString("[")
			gen(s.wrap(n.Key.Expr))
			s.out.WriteString("]")
		} else {
			gen(s.wrap(n.Key.Expr))
		}
		if n.Kind == ast.PropertyKindMethod || n.Kind == ast.PropertyKindGet || n.Kind == ast.PropertyKindSet {
			if fn, ok := n.Value.Expr.(*ast.FunctionLiteral); ok {
				genFunctionSignatureAndBody(s, fn)
				break
			}
		}
		s.out.WriteString(": ")
		gen(s.wrap(n.Value.Expr))
	case *ast.PropertyShort:
		gen(s.wrap(n.Name))
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			gen(s.wrap(n.Initializer.Expr))
		}
	case *ast.ClassLiteral:
		s.out.WriteString("class ")
		if n.Name != nil {
			gen(s.wrap(n.Name))
			s.out.WriteString(" ")
		}
		if n.SuperClass != nil {
			s.out.WriteString("extends ")
			gen(s.wrap(n.SuperClass.Expr))
			s.out.WriteString(" ")
		}
		s.out.WriteString("{")
		s.indent++
		for i := range n.Body {
			s.lineAndPad()
			gen(s.wrap(n.Body[i].Element))
		}
		s.indent--
		if len(n.Body) > 0 {
			s.lineAndPad()
		}
		s.out.WriteString("}")
	case *ast.FieldDefinition:
		if n.Static {
			s.out.WriteString("static ")
		}
		if n.Computed {
			s.out.WriteString("[")
			gen(s.wrap(n.Key.Expr))
			s.out.WriteString("]")
		} else {
			gen(s.wrap(n.Key.Expr))
		}
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			gen(s.wrap(n.Initializer.Expr))
		}
		s.out.WriteString(";")
	case *ast.MethodDefinition:
		if n.Static {
			s.out.WriteString("static ")
		}
		if n.Kind == ast.PropertyKindGet || n.Kind == ast.PropertyKindSet {
			s.out.WriteString(string(n.Kind))
			s.out.WriteString(" ")
		}
		if n.Computed {
			s.out.WriteString("[")
			gen(s.wrap(n.Key.Expr))
			s.out.WriteString("]")
		} else {
			gen(s.wrap(n.Key.Expr))
		}
		genFunctionSignatureAndBody(s, n.Body)
	case *ast.ClassStaticBlock:
		s.out.WriteString("static ")
		gen(s.wrap(n.Block))

	// Functions
	case *ast.FunctionLiteral:
		if n.Async {
			s.out.WriteString("async ")
		}
		s.out.WriteString("function")
		if n.Generator {
			s.out.WriteString("*")
		}
		if n.Name != nil && n.Name.Name != "" {
			s.out.WriteString(" ")
			gen(s.wrap(n.Name))
		}
		genFunctionSignatureAndBody(s, n)
	case *ast.ArrowFunctionLiteral:
		if n.Async {
			s.out.WriteString("async ")
		}
		s.out.WriteString("(")
		for i := range n.ParameterList.List {
			gen(s.wrap(&n.ParameterList.List[i]))
			if i < len(n.ParameterList.List)-1 || n.ParameterList.Rest != nil {
				s.out.WriteString(", ")
			}
		}
		if n.ParameterList.Rest != nil {
			s.out.WriteString("...")
			gen(s.wrap(n.ParameterList.Rest))
		}
		s.out.WriteString(") => ")
		if n.Body != nil {
			gen(s.wrap(n.Body.Body))
		}
	case *ast.VariableDeclarator:
		gen(s.wrap(n.Target))
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			gen(s.wrap(n.Initializer.Expr))
		}
	case *ast.BindingTarget:
		if n != nil {
			gen(s.wrap(n.Target))
		}

	// Statements
	case *ast.BlockStatement:
		s.out.WriteString("{")
		s.indent++
		for i := range n.List {
			s.lineAndPad()
			gen(s.wrap(n.List[i].Stmt))
		}
		s.indent--
		if len(n.List) > 0 {
			s.lineAndPad()
		}
		s.out.WriteString("}")
	case *ast.BadStatement:
	case *ast.BreakStatement:
		s.out.WriteString("break")
		if n.Label != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Label))
		}
		s.out.WriteString(";")
	case *ast.ContinueStatement:
		s.out.WriteString("continue")
		if n.Label != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Label))
		}
		s.out.WriteString(";")
	case *ast.CaseStatement:
		if n.Test != nil {
			s.out.WriteString("case ")
			gen(s.wrap(n.Test.Expr))
			s.out.WriteString(":")
		} else {
			s.out.WriteString("default:")
		}
		s.indent++
		for i := range n.Consequent {
			s.lineAndPad()
			gen(s.wrap(n.Consequent[i].Stmt))
		}
		s.indent--
	case *ast.CatchStatement:
		s.out.WriteString("catch ")
		if n.Parameter != nil {
			s.out.WriteString("(")
			gen(s.wrap(n.Parameter))
			s.out.WriteString(") ")
		}
		gen(s.wrap(n.Body))
	case *ast.ClassDeclaration:
		s.lineAndPad()
		gen(s.wrap(n.Class))
	case *ast.FunctionDeclaration:
		s.lineAndPad()
		gen(s.wrap(n.Function))
	case *ast.DebuggerStatement:
		s.out.WriteString("debugger;")
	case *ast.DoWhileStatement:
		s.out.WriteString("do ")
		gen(s.wrap(n.Body.Stmt))
		s.out.WriteString(" while (")
		gen(s.wrap(n.Test.Expr))
		s.out.WriteString(");")
	case *ast.EmptyStatement:
		s.out.WriteString(";")
	case *ast.ExpressionStatement:
		gen(s.wrap(n.Expression.Expr))
		s.out.WriteString(";")
		if len(n.Comment) > 0 {
			s.out.WriteString(" // " + n.Comment)
		}
	case *ast.ForInStatement:
		s.out.WriteString("for (")
		gen(s.wrap(n.Into.Into))
		s.out.WriteString(" in ")
		gen(s.wrap(n.Source.Expr))
		s.out.WriteString(") ")
		gen(s.wrap(blockify(n.Body)))
	case *ast.ForOfStatement:
		s.out.WriteString("for (")
		gen(s.wrap(n.Into.Into))
		s.out.WriteString(" of ")
		gen(s.wrap(n.Source.Expr))
		s.out.WriteString(") ")
		gen(s.wrap(blockify(n.Body)))
	case *ast.ForStatement:
		s.out.WriteString("for (")
		if n.Initializer != nil {
			gen(s.wrap(n.Initializer.Initializer))
		}
		s.out.WriteString("; ")
		if n.Test != nil {
			gen(s.wrap(n.Test.Expr))
		}
		s.out.WriteString("; ")
		if n.Update != nil {
			gen(s.wrap(n.Update.Expr))
		}
		s.out.WriteString(") ")
		gen(s.wrap(blockify(n.Body)))
	case *ast.IfStatement:
		s.out.WriteString("if (")
		gen(s.wrap(n.Test.Expr))
		s.out.WriteString(") ")
		gen(s.wrap(blockify(n.Consequent)))
		if n.Alternate != nil {
			s.out.WriteString(" else ")
			if _, ok := n.Alternate.Stmt.(*ast.IfStatement); ok {
				gen(s.wrap(n.Alternate.Stmt))
			} else {
				gen(s.wrap(blockify(n.Alternate)))
			}
		}
	case *ast.LabelledStatement:
		gen(s.wrap(n.Label))
		s.out.WriteString(": ")
		gen(s.wrap(n.Statement.Stmt))
	case *ast.ReturnStatement:
		s.out.WriteString("return")
		if n.Argument != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Argument.Expr))
		}
		s.out.WriteString(";")
	case *ast.SwitchStatement:
		s.out.WriteString("switch (")
		gen(s.wrap(n.Discriminant.Expr))
		s.out.WriteString(") {")
		s.indent++
		for i := range n.Body {
			s.lineAndPad()
			gen(s.wrap(&n.Body[i]))
		}
		s.indent--
		if len(n.Body) > 0 {
			s.lineAndPad()
		}
		s.out.WriteString("}")
	case *ast.ThrowStatement:
		s.out.WriteString("throw ")
		gen(s.wrap(n.Argument.Expr))
		s.out.WriteString(";")
	case *ast.TryStatement:
		s.out.WriteString("try ")
		gen(s.wrap(n.Body))
		if n.Catch != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Catch))
		}
		if n.Finally != nil {
			s.out.WriteString(" finally ")
			gen(s.wrap(n.Finally))
		}
	case *ast.VariableDeclaration:
		s.out.WriteString(n.Token.String())
		s.out.WriteString(" ")
		for i := range n.List {
			gen(s.wrap(&n.List[i]))
			if i < len(n.List)-1 {
				s.out.WriteString(", ")
			}
		}
		switch s.parent.node.(type) {
		case *ast.ForStatement, *ast.ForInStatement, *ast.ForOfStatement:
			// A declaration in a loop head takes no semicolon of its own.
		default:
			s.out.WriteString(";")
			if len(n.Comment) > 0 {
				s.out.WriteString(" // " + n.Comment)
			}
		}
	case *ast.WhileStatement:
		s.out.WriteString("while (")
		gen(s.wrap(n.Test.Expr))
		s.out.WriteString(") ")
		gen(s.wrap(blockify(n.Body)))
	case *ast.WithStatement:
		s.out.WriteString("with (")
		gen(s.wrap(n.Object.Expr))
		s.out.WriteString(") ")
		gen(s.wrap(blockify(n.Body)))

	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

// genFunctionSignatureAndBody renders the parameter list and body shared by
// function declarations, expressions and methods.
func genFunctionSignatureAndBody(s *state, n *ast.FunctionLiteral) {
	s.out.WriteString("(")
	for i := range n.ParameterList.List {
		gen(s.wrap(&n.ParameterList.List[i]))
		if i < len(n.ParameterList.List)-1 || n.ParameterList.Rest != nil {
			s.out.WriteString(", ")
		}
	}
	if n.ParameterList.Rest != nil {
		s.out.WriteString("...")
		gen(s.wrap(n.ParameterList.Rest))
	}
	s.out.WriteString(") ")
	gen(s.wrap(n.Body))
}

// blockify wraps a single statement body in a block unless it already is
// one (or an empty statement), matching how the parser represents bare
// single-statement bodies.
func blockify(stmt *ast.Statement) *ast.BlockStatement {
	switch b := stmt.Stmt.(type) {
	case *ast.BlockStatement:
		return b
	case *ast.EmptyStatement:
		return &ast.BlockStatement{List: ast.Statements{}}
	default:
		return &ast.BlockStatement{List: ast.Statements{*stmt}}
	}
}

func valid(str string) bool {
	if str == "" {
		return false
	}
	for i, r := range str {
		if i == 0 && !unicode.IsLetter(r) && r != '_' && r != '$' {
			return false
		}
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
			return false
		}
	}
	return true
}
