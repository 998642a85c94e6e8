package js

// IVisitor represents the AST Visitor
// Each INode encountered by `Walk` is passed to `Enter`, children nodes will be ignored if the returned IVisitor is nil
// `Exit` is called after the children of a node have been visited
type IVisitor interface {
	Enter(n INode) IVisitor
	Exit(n INode)
}

// Walk traverses an AST in depth-first order, children are visited in source order
func Walk(v IVisitor, n INode) {
	if isnil(n) {
		return
	}

	w := v.Enter(n)
	if w == nil {
		return
	}
	defer v.Exit(n)

	switch n := n.(type) {
	case *Program:
		walkStmts(w, n.Body)
	case *ExpressionStatement:
		Walk(w, n.Expression)
	case *BlockStatement:
		walkStmts(w, n.Body)
	case *WithStatement:
		Walk(w, n.Object)
		Walk(w, n.Body)
	case *ReturnStatement:
		Walk(w, n.Argument)
	case *LabeledStatement:
		Walk(w, n.Label)
		Walk(w, n.Body)
	case *BreakStatement:
		Walk(w, n.Label)
	case *ContinueStatement:
		Walk(w, n.Label)
	case *IfStatement:
		Walk(w, n.Test)
		Walk(w, n.Consequent)
		Walk(w, n.Alternate)
	case *SwitchStatement:
		Walk(w, n.Discriminant)
		for _, item := range n.Cases {
			Walk(w, item)
		}
	case *SwitchCase:
		Walk(w, n.Test)
		walkStmts(w, n.Consequent)
	case *ThrowStatement:
		Walk(w, n.Argument)
	case *TryStatement:
		Walk(w, n.Block)
		Walk(w, n.Handler)
		Walk(w, n.Finalizer)
	case *CatchClause:
		Walk(w, n.Param)
		Walk(w, n.Body)
	case *WhileStatement:
		Walk(w, n.Test)
		Walk(w, n.Body)
	case *DoWhileStatement:
		Walk(w, n.Body)
		Walk(w, n.Test)
	case *ForStatement:
		Walk(w, n.Init)
		Walk(w, n.Test)
		Walk(w, n.Update)
		Walk(w, n.Body)
	case *ForInStatement:
		Walk(w, n.Left)
		Walk(w, n.Right)
		Walk(w, n.Body)
	case *ForOfStatement:
		Walk(w, n.Left)
		Walk(w, n.Right)
		Walk(w, n.Body)
	case *VariableDeclaration:
		for _, item := range n.Declarations {
			Walk(w, item)
		}
	case *VariableDeclarator:
		Walk(w, n.ID)
		Walk(w, n.Init)
	case *FunctionDeclaration:
		walkFunction(w, &n.Function)
	case *FunctionExpression:
		walkFunction(w, &n.Function)
	case *ArrowFunctionExpression:
		walkFunction(w, &n.Function)
	case *ClassDeclaration:
		walkClass(w, &n.Class)
	case *ClassExpression:
		walkClass(w, &n.Class)
	case *ClassBody:
		walkNodes(w, n.Body)
	case *MethodDefinition:
		Walk(w, n.Key)
		Walk(w, n.Value)
	case *PropertyDefinition:
		Walk(w, n.Key)
		Walk(w, n.Value)
	case *StaticBlock:
		walkStmts(w, n.Body)
	case *ArrayExpression:
		walkExprs(w, n.Elements)
	case *ObjectExpression:
		walkNodes(w, n.Properties)
	case *Property:
		if n.Shorthand {
			// key and value share the same source span
			Walk(w, n.Value)
		} else {
			Walk(w, n.Key)
			Walk(w, n.Value)
		}
	case *TemplateLiteral:
		for i, quasi := range n.Quasis {
			Walk(w, quasi)
			if i < len(n.Expressions) {
				Walk(w, n.Expressions[i])
			}
		}
	case *TaggedTemplateExpression:
		Walk(w, n.Tag)
		Walk(w, n.Quasi)
	case *UnaryExpression:
		Walk(w, n.Argument)
	case *UpdateExpression:
		Walk(w, n.Argument)
	case *BinaryExpression:
		Walk(w, n.Left)
		Walk(w, n.Right)
	case *LogicalExpression:
		Walk(w, n.Left)
		Walk(w, n.Right)
	case *AssignmentExpression:
		Walk(w, n.Left)
		Walk(w, n.Right)
	case *ConditionalExpression:
		Walk(w, n.Test)
		Walk(w, n.Consequent)
		Walk(w, n.Alternate)
	case *CallExpression:
		Walk(w, n.Callee)
		walkExprs(w, n.Arguments)
	case *NewExpression:
		Walk(w, n.Callee)
		walkExprs(w, n.Arguments)
	case *MemberExpression:
		Walk(w, n.Object)
		Walk(w, n.Property)
	case *ChainExpression:
		Walk(w, n.Expression)
	case *SequenceExpression:
		walkExprs(w, n.Expressions)
	case *YieldExpression:
		Walk(w, n.Argument)
	case *AwaitExpression:
		Walk(w, n.Argument)
	case *ImportExpression:
		Walk(w, n.Source)
	case *MetaProperty:
		Walk(w, n.Meta)
		Walk(w, n.Property)
	case *SpreadElement:
		Walk(w, n.Argument)
	case *ParenthesizedExpression:
		Walk(w, n.Expression)
	case *ObjectPattern:
		walkNodes(w, n.Properties)
	case *ArrayPattern:
		for _, item := range n.Elements {
			Walk(w, item)
		}
	case *RestElement:
		Walk(w, n.Argument)
	case *AssignmentPattern:
		Walk(w, n.Left)
		Walk(w, n.Right)
	case *ImportDeclaration:
		walkNodes(w, n.Specifiers)
		Walk(w, n.Source)
	case *ImportSpecifier:
		if !sameSpan(n.Imported, n.Local) {
			Walk(w, n.Imported)
		}
		Walk(w, n.Local)
	case *ImportDefaultSpecifier:
		Walk(w, n.Local)
	case *ImportNamespaceSpecifier:
		Walk(w, n.Local)
	case *ExportNamedDeclaration:
		Walk(w, n.Declaration)
		for _, item := range n.Specifiers {
			Walk(w, item)
		}
		Walk(w, n.Source)
	case *ExportSpecifier:
		Walk(w, n.Local)
		if !sameSpan(n.Local, n.Exported) {
			Walk(w, n.Exported)
		}
	case *ExportDefaultDeclaration:
		Walk(w, n.Declaration)
	case *ExportAllDeclaration:
		Walk(w, n.Exported)
		Walk(w, n.Source)
	}
}

func walkStmts(v IVisitor, list []IStmt) {
	for _, item := range list {
		Walk(v, item)
	}
}

func walkExprs(v IVisitor, list []IExpr) {
	for _, item := range list {
		Walk(v, item)
	}
}

func walkNodes(v IVisitor, list []INode) {
	for _, item := range list {
		Walk(v, item)
	}
}

func walkFunction(v IVisitor, f *Function) {
	Walk(v, f.ID)
	for _, param := range f.Params {
		Walk(v, param)
	}
	Walk(v, f.Body)
}

func walkClass(v IVisitor, c *Class) {
	Walk(v, c.ID)
	Walk(v, c.SuperClass)
	Walk(v, c.Body)
}

// sameSpan returns true for specifiers like `import {a}` whose two names are a single source identifier.
func sameSpan(a, b INode) bool {
	if isnil(a) || isnil(b) {
		return false
	}
	return a.Base().Start == b.Base().Start && a.Base().End == b.Base().End
}

// isnil returns true for nil interfaces and for nil pointers of the node types used in optional fields.
func isnil(n INode) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Identifier:
		return n == nil
	case *BlockStatement:
		return n == nil
	case *CatchClause:
		return n == nil
	case *ClassBody:
		return n == nil
	case *FunctionExpression:
		return n == nil
	case *TemplateLiteral:
		return n == nil
	case *Literal:
		return n == nil
	}
	return false
}
