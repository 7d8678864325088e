package ast

// VisitableNode is implemented by every node that participates in tree
// traversal, whether a concrete AST node or one of the carrier/slice
// wrapper types (Expression, Statement, Expressions, ...).
type VisitableNode interface {
	Node
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

// Visitor is implemented by every AST pass. Embed NoopVisitor and
// override only the methods a pass cares about.
type Visitor interface {
	VisitProgram(node *Program)

	VisitExpression(node *Expression)
	VisitStatement(node *Statement)
	VisitExpressions(node *Expressions)
	VisitStatements(node *Statements)
	VisitProperty(node *Property)
	VisitProperties(node *Properties)
	VisitClassElement(node *ClassElement)
	VisitClassElements(node *ClassElements)
	VisitBindingTarget(node *BindingTarget)
	VisitBinding(node *VariableDeclarator)
	VisitVariableDeclarators(node *VariableDeclarators)
	VisitCaseStatements(node *CaseStatements)
	VisitParameterList(node *ParameterList)
	VisitConciseBody(node *ConciseBody)
	VisitForLoopInitializer(node *ForLoopInitializer)
	VisitForInto(node *ForInto)

	VisitArrayLiteral(node *ArrayLiteral)
	VisitArrayPattern(node *ArrayPattern)
	VisitAssignExpression(node *AssignExpression)
	VisitAwaitExpression(node *AwaitExpression)
	VisitBinaryExpression(node *BinaryExpression)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitCallExpression(node *CallExpression)
	VisitClassLiteral(node *ClassLiteral)
	VisitConditionalExpression(node *ConditionalExpression)
	VisitArrowFunctionLiteral(node *ArrowFunctionLiteral)
	VisitFunctionLiteral(node *FunctionLiteral)
	VisitIdentifier(node *Identifier)
	VisitInvalidExpression(node *InvalidExpression)
	VisitMemberExpression(node *MemberExpression)
	VisitMetaProperty(node *MetaProperty)
	VisitNewExpression(node *NewExpression)
	VisitNullLiteral(node *NullLiteral)
	VisitNumberLiteral(node *NumberLiteral)
	VisitObjectLiteral(node *ObjectLiteral)
	VisitObjectPattern(node *ObjectPattern)
	VisitOptional(node *Optional)
	VisitOptionalChain(node *OptionalChain)
	VisitPrivateDotExpression(node *PrivateDotExpression)
	VisitPrivateIdentifier(node *PrivateIdentifier)
	VisitPropertyKeyed(node *PropertyKeyed)
	VisitPropertyShort(node *PropertyShort)
	VisitRegExpLiteral(node *RegExpLiteral)
	VisitSequenceExpression(node *SequenceExpression)
	VisitSpreadElement(node *SpreadElement)
	VisitStringLiteral(node *StringLiteral)
	VisitSuperExpression(node *SuperExpression)
	VisitTemplateLiteral(node *TemplateLiteral)
	VisitThisExpression(node *ThisExpression)
	VisitUnaryExpression(node *UnaryExpression)
	VisitUpdateExpression(node *UpdateExpression)
	VisitYieldExpression(node *YieldExpression)

	VisitFieldDefinition(node *FieldDefinition)
	VisitMethodDefinition(node *MethodDefinition)
	VisitClassStaticBlock(node *ClassStaticBlock)

	VisitBadStatement(node *BadStatement)
	VisitBlockStatement(node *BlockStatement)
	VisitBreakStatement(node *BreakStatement)
	VisitCaseStatement(node *CaseStatement)
	VisitCatchStatement(node *CatchStatement)
	VisitClassDeclaration(node *ClassDeclaration)
	VisitContinueStatement(node *ContinueStatement)
	VisitDebuggerStatement(node *DebuggerStatement)
	VisitDoWhileStatement(node *DoWhileStatement)
	VisitEmptyStatement(node *EmptyStatement)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitForInStatement(node *ForInStatement)
	VisitForOfStatement(node *ForOfStatement)
	VisitForStatement(node *ForStatement)
	VisitFunctionDeclaration(node *FunctionDeclaration)
	VisitIfStatement(node *IfStatement)
	VisitLabelledStatement(node *LabelledStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitSwitchStatement(node *SwitchStatement)
	VisitThrowStatement(node *ThrowStatement)
	VisitTryStatement(node *TryStatement)
	VisitVariableDeclaration(node *VariableDeclaration)
	VisitWhileStatement(node *WhileStatement)
	VisitWithStatement(node *WithStatement)
}

// NoopVisitor is an embeddable Visitor that simply descends into every
// node's children. Embedders must set V to themselves so that overridden
// methods are reached during recursive descent: the default methods below
// call node.VisitChildrenWith(nv.V) rather than nv directly, which is what
// lets a descent triggered from inside NoopVisitor dispatch back through
// the embedder's own overrides instead of getting stuck on NoopVisitor's.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(node *Program) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitExpression(node *Expression)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatement(node *Statement)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressions(node *Expressions) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatements(node *Statements)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperty(node *Property)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperties(node *Properties)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassElement(node *ClassElement)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassElements(node *ClassElements) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBindingTarget(node *BindingTarget) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBinding(node *VariableDeclarator)  { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclarators(node *VariableDeclarators) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitCaseStatements(node *CaseStatements) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitParameterList(node *ParameterList)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConciseBody(node *ConciseBody)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForLoopInitializer(node *ForLoopInitializer) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitForInto(node *ForInto) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitArrayLiteral(node *ArrayLiteral)           { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrayPattern(node *ArrayPattern)           { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAssignExpression(node *AssignExpression)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAwaitExpression(node *AwaitExpression)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBinaryExpression(node *BinaryExpression)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBooleanLiteral(node *BooleanLiteral)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCallExpression(node *CallExpression)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassLiteral(node *ClassLiteral)           { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConditionalExpression(node *ConditionalExpression) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitArrowFunctionLiteral(node *ArrowFunctionLiteral) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitFunctionLiteral(node *FunctionLiteral)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIdentifier(node *Identifier)               { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitInvalidExpression(node *InvalidExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMemberExpression(node *MemberExpression)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMetaProperty(node *MetaProperty)           { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNewExpression(node *NewExpression)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNullLiteral(node *NullLiteral)             { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNumberLiteral(node *NumberLiteral)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitObjectLiteral(node *ObjectLiteral)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitObjectPattern(node *ObjectPattern)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitOptional(node *Optional)                   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitOptionalChain(node *OptionalChain)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPrivateDotExpression(node *PrivateDotExpression) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitPrivateIdentifier(node *PrivateIdentifier) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyKeyed(node *PropertyKeyed)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyShort(node *PropertyShort)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitRegExpLiteral(node *RegExpLiteral)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSequenceExpression(node *SequenceExpression) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitSpreadElement(node *SpreadElement)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStringLiteral(node *StringLiteral)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSuperExpression(node *SuperExpression)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTemplateLiteral(node *TemplateLiteral)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThisExpression(node *ThisExpression)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUnaryExpression(node *UnaryExpression)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUpdateExpression(node *UpdateExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitYieldExpression(node *YieldExpression)   { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitFieldDefinition(node *FieldDefinition)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMethodDefinition(node *MethodDefinition) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassStaticBlock(node *ClassStaticBlock) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitBadStatement(node *BadStatement)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBlockStatement(node *BlockStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBreakStatement(node *BreakStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCaseStatement(node *CaseStatement)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCatchStatement(node *CatchStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassDeclaration(node *ClassDeclaration) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitContinueStatement(node *ContinueStatement) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitDebuggerStatement(node *DebuggerStatement) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitDoWhileStatement(node *DoWhileStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitEmptyStatement(node *EmptyStatement)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressionStatement(node *ExpressionStatement) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitForInStatement(node *ForInStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForOfStatement(node *ForOfStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForStatement(node *ForStatement)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionDeclaration(node *FunctionDeclaration) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitIfStatement(node *IfStatement)             { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitLabelledStatement(node *LabelledStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitReturnStatement(node *ReturnStatement)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSwitchStatement(node *SwitchStatement)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThrowStatement(node *ThrowStatement)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTryStatement(node *TryStatement)           { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclaration(node *VariableDeclaration) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitWhileStatement(node *WhileStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitWithStatement(node *WithStatement)   { node.VisitChildrenWith(nv.V) }

// ---- Program ----

func (n *Program) VisitWith(v Visitor)         { v.VisitProgram(n) }
func (n *Program) VisitChildrenWith(v Visitor) { n.Body.VisitWith(v) }

// ---- carrier / slice wrapper types ----

func (n *Expression) VisitWith(v Visitor) { v.VisitExpression(n) }
func (n *Expression) VisitChildrenWith(v Visitor) {
	if n.Expr != nil {
		n.Expr.VisitWith(v)
	}
}

func (n *Statement) VisitWith(v Visitor) { v.VisitStatement(n) }
func (n *Statement) VisitChildrenWith(v Visitor) {
	if n.Stmt != nil {
		n.Stmt.VisitWith(v)
	}
}

func (n *Expressions) VisitWith(v Visitor) { v.VisitExpressions(n) }
func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Statements) VisitWith(v Visitor) { v.VisitStatements(n) }
func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Property) VisitWith(v Visitor) { v.VisitProperty(n) }
func (n *Property) VisitChildrenWith(v Visitor) {
	if n.Prop != nil {
		n.Prop.VisitWith(v)
	}
}

func (n *Properties) VisitWith(v Visitor) { v.VisitProperties(n) }
func (n *Properties) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *ClassElement) VisitWith(v Visitor) { v.VisitClassElement(n) }
func (n *ClassElement) VisitChildrenWith(v Visitor) {
	if n.Element != nil {
		n.Element.VisitWith(v)
	}
}

func (n *ClassElements) VisitWith(v Visitor) { v.VisitClassElements(n) }
func (n *ClassElements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *BindingTarget) VisitWith(v Visitor) { v.VisitBindingTarget(n) }
func (n *BindingTarget) VisitChildrenWith(v Visitor) {
	if n.Target != nil {
		n.Target.VisitWith(v)
	}
}

func (n *VariableDeclarator) VisitWith(v Visitor) { v.VisitBinding(n) }
func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	n.Target.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *VariableDeclarators) VisitWith(v Visitor) { v.VisitVariableDeclarators(n) }
func (n *VariableDeclarators) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *CaseStatements) VisitWith(v Visitor) { v.VisitCaseStatements(n) }
func (n *CaseStatements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *ParameterList) VisitWith(v Visitor) { v.VisitParameterList(n) }
func (n *ParameterList) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *ConciseBody) VisitWith(v Visitor) { v.VisitConciseBody(n) }
func (n *ConciseBody) VisitChildrenWith(v Visitor) {
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *ForLoopInitializer) VisitWith(v Visitor) { v.VisitForLoopInitializer(n) }
func (n *ForLoopInitializer) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *ForInto) VisitWith(v Visitor) { v.VisitForInto(n) }
func (n *ForInto) VisitChildrenWith(v Visitor) {
	if n.Into != nil {
		n.Into.VisitWith(v)
	}
}

// ---- expressions ----

func (n *ArrayLiteral) VisitWith(v Visitor) { v.VisitArrayLiteral(n) }
func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	for i := range n.Value {
		n.Value[i].VisitWith(v)
	}
}

func (n *ArrayPattern) VisitWith(v Visitor) { v.VisitArrayPattern(n) }
func (n *ArrayPattern) VisitChildrenWith(v Visitor) {
	for i := range n.Elements {
		n.Elements[i].VisitWith(v)
	}
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *AssignExpression) VisitWith(v Visitor) { v.VisitAssignExpression(n) }
func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *AwaitExpression) VisitWith(v Visitor) { v.VisitAwaitExpression(n) }
func (n *AwaitExpression) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *BinaryExpression) VisitWith(v Visitor) { v.VisitBinaryExpression(n) }
func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *BooleanLiteral) VisitWith(v Visitor)         { v.VisitBooleanLiteral(n) }
func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}

func (n *CallExpression) VisitWith(v Visitor) { v.VisitCallExpression(n) }
func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	for i := range n.ArgumentList {
		n.ArgumentList[i].VisitWith(v)
	}
}

func (n *ClassLiteral) VisitWith(v Visitor) { v.VisitClassLiteral(n) }
func (n *ClassLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(v)
	}
	for i := range n.Body {
		n.Body[i].VisitWith(v)
	}
}

func (n *ConditionalExpression) VisitWith(v Visitor) { v.VisitConditionalExpression(n) }
func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	n.Alternate.VisitWith(v)
}

func (n *ArrowFunctionLiteral) VisitWith(v Visitor) { v.VisitArrowFunctionLiteral(n) }
func (n *ArrowFunctionLiteral) VisitChildrenWith(v Visitor) {
	for i := range n.ParameterList.List {
		n.ParameterList.List[i].VisitWith(v)
	}
	if n.ParameterList.Rest != nil {
		n.ParameterList.Rest.VisitWith(v)
	}
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *FunctionLiteral) VisitWith(v Visitor) { v.VisitFunctionLiteral(n) }
func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	for i := range n.ParameterList.List {
		n.ParameterList.List[i].VisitWith(v)
	}
	if n.ParameterList.Rest != nil {
		n.ParameterList.Rest.VisitWith(v)
	}
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *Identifier) VisitWith(v Visitor)         { v.VisitIdentifier(n) }
func (n *Identifier) VisitChildrenWith(v Visitor) {}

func (n *InvalidExpression) VisitWith(v Visitor)         { v.VisitInvalidExpression(n) }
func (n *InvalidExpression) VisitChildrenWith(v Visitor) {}

func (n *MemberExpression) VisitWith(v Visitor) { v.VisitMemberExpression(n) }
func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *MetaProperty) VisitWith(v Visitor) { v.VisitMetaProperty(n) }
func (n *MetaProperty) VisitChildrenWith(v Visitor) {
	n.Meta.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *NewExpression) VisitWith(v Visitor) { v.VisitNewExpression(n) }
func (n *NewExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	for i := range n.ArgumentList {
		n.ArgumentList[i].VisitWith(v)
	}
}

func (n *NullLiteral) VisitWith(v Visitor)         { v.VisitNullLiteral(n) }
func (n *NullLiteral) VisitChildrenWith(v Visitor) {}

func (n *NumberLiteral) VisitWith(v Visitor)         { v.VisitNumberLiteral(n) }
func (n *NumberLiteral) VisitChildrenWith(v Visitor) {}

func (n *ObjectLiteral) VisitWith(v Visitor) { v.VisitObjectLiteral(n) }
func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	for i := range n.Value {
		n.Value[i].VisitWith(v)
	}
}

func (n *ObjectPattern) VisitWith(v Visitor) { v.VisitObjectPattern(n) }
func (n *ObjectPattern) VisitChildrenWith(v Visitor) {
	for i := range n.Properties {
		n.Properties[i].VisitWith(v)
	}
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *Optional) VisitWith(v Visitor) { v.VisitOptional(n) }
func (n *Optional) VisitChildrenWith(v Visitor) {
	n.Expr.VisitWith(v)
}

func (n *OptionalChain) VisitWith(v Visitor) { v.VisitOptionalChain(n) }
func (n *OptionalChain) VisitChildrenWith(v Visitor) {
	n.Base.VisitWith(v)
}

func (n *PrivateDotExpression) VisitWith(v Visitor) { v.VisitPrivateDotExpression(n) }
func (n *PrivateDotExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Identifier.VisitWith(v)
}

func (n *PrivateIdentifier) VisitWith(v Visitor) { v.VisitPrivateIdentifier(n) }
func (n *PrivateIdentifier) VisitChildrenWith(v Visitor) {
	n.Identifier.VisitWith(v)
}

func (n *PropertyKeyed) VisitWith(v Visitor) { v.VisitPropertyKeyed(n) }
func (n *PropertyKeyed) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Value.VisitWith(v)
}

func (n *PropertyShort) VisitWith(v Visitor) { v.VisitPropertyShort(n) }
func (n *PropertyShort) VisitChildrenWith(v Visitor) {
	n.Name.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *RegExpLiteral) VisitWith(v Visitor)         { v.VisitRegExpLiteral(n) }
func (n *RegExpLiteral) VisitChildrenWith(v Visitor) {}

func (n *SequenceExpression) VisitWith(v Visitor) { v.VisitSequenceExpression(n) }
func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	for i := range n.Sequence {
		n.Sequence[i].VisitWith(v)
	}
}

func (n *SpreadElement) VisitWith(v Visitor) { v.VisitSpreadElement(n) }
func (n *SpreadElement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *StringLiteral) VisitWith(v Visitor)         { v.VisitStringLiteral(n) }
func (n *StringLiteral) VisitChildrenWith(v Visitor) {}

func (n *SuperExpression) VisitWith(v Visitor)         { v.VisitSuperExpression(n) }
func (n *SuperExpression) VisitChildrenWith(v Visitor) {}

func (n *TemplateLiteral) VisitWith(v Visitor) { v.VisitTemplateLiteral(n) }
func (n *TemplateLiteral) VisitChildrenWith(v Visitor) {
	if n.Tag != nil {
		n.Tag.VisitWith(v)
	}
	for i := range n.Expressions {
		n.Expressions[i].VisitWith(v)
	}
}

func (n *ThisExpression) VisitWith(v Visitor)         { v.VisitThisExpression(n) }
func (n *ThisExpression) VisitChildrenWith(v Visitor) {}

func (n *UnaryExpression) VisitWith(v Visitor) { v.VisitUnaryExpression(n) }
func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *UpdateExpression) VisitWith(v Visitor) { v.VisitUpdateExpression(n) }
func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *YieldExpression) VisitWith(v Visitor) { v.VisitYieldExpression(n) }
func (n *YieldExpression) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

// ---- class elements ----

func (n *FieldDefinition) VisitWith(v Visitor) { v.VisitFieldDefinition(n) }
func (n *FieldDefinition) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *MethodDefinition) VisitWith(v Visitor) { v.VisitMethodDefinition(n) }
func (n *MethodDefinition) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *ClassStaticBlock) VisitWith(v Visitor) { v.VisitClassStaticBlock(n) }
func (n *ClassStaticBlock) VisitChildrenWith(v Visitor) {
	n.Block.VisitWith(v)
}

// ---- statements ----

func (n *BadStatement) VisitWith(v Visitor)         { v.VisitBadStatement(n) }
func (n *BadStatement) VisitChildrenWith(v Visitor) {}

func (n *BlockStatement) VisitWith(v Visitor) { v.VisitBlockStatement(n) }
func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
}

func (n *BreakStatement) VisitWith(v Visitor) { v.VisitBreakStatement(n) }
func (n *BreakStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *CaseStatement) VisitWith(v Visitor) { v.VisitCaseStatement(n) }
func (n *CaseStatement) VisitChildrenWith(v Visitor) {
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	for i := range n.Consequent {
		n.Consequent[i].VisitWith(v)
	}
}

func (n *CatchStatement) VisitWith(v Visitor) { v.VisitCatchStatement(n) }
func (n *CatchStatement) VisitChildrenWith(v Visitor) {
	if n.Parameter != nil {
		n.Parameter.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ClassDeclaration) VisitWith(v Visitor) { v.VisitClassDeclaration(n) }
func (n *ClassDeclaration) VisitChildrenWith(v Visitor) {
	n.Class.VisitWith(v)
}

func (n *ContinueStatement) VisitWith(v Visitor) { v.VisitContinueStatement(n) }
func (n *ContinueStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *DebuggerStatement) VisitWith(v Visitor)         { v.VisitDebuggerStatement(n) }
func (n *DebuggerStatement) VisitChildrenWith(v Visitor) {}

func (n *DoWhileStatement) VisitWith(v Visitor) { v.VisitDoWhileStatement(n) }
func (n *DoWhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *EmptyStatement) VisitWith(v Visitor)         { v.VisitEmptyStatement(n) }
func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitWith(v Visitor) { v.VisitExpressionStatement(n) }
func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *ForInStatement) VisitWith(v Visitor) { v.VisitForInStatement(n) }
func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	n.Into.VisitWith(v)
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForOfStatement) VisitWith(v Visitor) { v.VisitForOfStatement(n) }
func (n *ForOfStatement) VisitChildrenWith(v Visitor) {
	n.Into.VisitWith(v)
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForStatement) VisitWith(v Visitor) { v.VisitForStatement(n) }
func (n *ForStatement) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	if n.Update != nil {
		n.Update.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *FunctionDeclaration) VisitWith(v Visitor) { v.VisitFunctionDeclaration(n) }
func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Function.VisitWith(v)
}

func (n *IfStatement) VisitWith(v Visitor) { v.VisitIfStatement(n) }
func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *LabelledStatement) VisitWith(v Visitor) { v.VisitLabelledStatement(n) }
func (n *LabelledStatement) VisitChildrenWith(v Visitor) {
	n.Label.VisitWith(v)
	n.Statement.VisitWith(v)
}

func (n *ReturnStatement) VisitWith(v Visitor) { v.VisitReturnStatement(n) }
func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *SwitchStatement) VisitWith(v Visitor) { v.VisitSwitchStatement(n) }
func (n *SwitchStatement) VisitChildrenWith(v Visitor) {
	n.Discriminant.VisitWith(v)
	for i := range n.Body {
		n.Body[i].VisitWith(v)
	}
}

func (n *ThrowStatement) VisitWith(v Visitor) { v.VisitThrowStatement(n) }
func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *TryStatement) VisitWith(v Visitor) { v.VisitTryStatement(n) }
func (n *TryStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	if n.Catch != nil {
		n.Catch.VisitWith(v)
	}
	if n.Finally != nil {
		n.Finally.VisitWith(v)
	}
}

func (n *VariableDeclaration) VisitWith(v Visitor) { v.VisitVariableDeclaration(n) }
func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
}

func (n *WhileStatement) VisitWith(v Visitor) { v.VisitWhileStatement(n) }
func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *WithStatement) VisitWith(v Visitor) { v.VisitWithStatement(n) }
func (n *WithStatement) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Body.VisitWith(v)
}
