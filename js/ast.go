package js

import (
	"strings"
)

// Node holds the source span shared by all nodes. Loc is set when locations are enabled, Range when ranges are enabled and SourceFile when a direct source file is given.
type Node struct {
	Start      int
	End        int
	Loc        *SourceLocation
	Range      *[2]int
	SourceFile string
}

// Base returns the node span.
func (n *Node) Base() *Node {
	return n
}

type INode interface {
	Base() *Node
	String() string
}

type IStmt interface {
	INode
	stmtNode()
}

type IExpr interface {
	INode
	exprNode()
}

// IBinding is a binding pattern or an assignment target.
type IBinding interface {
	INode
	bindingNode()
}

func nodeString(n INode) string {
	if n == nil {
		return ""
	}
	return n.String()
}

func stmtsString(list []IStmt) string {
	sb := strings.Builder{}
	for _, item := range list {
		sb.WriteString(" ")
		sb.WriteString(item.String())
	}
	return sb.String()
}

func exprsString(list []IExpr) string {
	ss := make([]string, len(list))
	for i, item := range list {
		ss[i] = nodeString(item) // nil for array holes
	}
	return strings.Join(ss, ", ")
}

func bindingsString(list []IBinding) string {
	ss := make([]string, len(list))
	for i, item := range list {
		ss[i] = nodeString(item)
	}
	return strings.Join(ss, ", ")
}

////////////////////////////////////////////////////////////////

// Program is the root node.
type Program struct {
	Node
	SourceType SourceType
	Body       []IStmt
}

func (n *Program) String() string {
	return strings.TrimPrefix(stmtsString(n.Body), " ")
}

////////////////////////////////////////////////////////////////

type ExpressionStatement struct {
	Node
	Expression IExpr
	Directive  string // raw directive text without quotes for directive prologue entries
}

func (n *ExpressionStatement) String() string {
	return "Stmt(" + n.Expression.String() + ")"
}

type BlockStatement struct {
	Node
	Body []IStmt
}

func (n *BlockStatement) String() string {
	return "Stmt({" + stmtsString(n.Body) + " })"
}

type EmptyStatement struct {
	Node
}

func (n *EmptyStatement) String() string {
	return "Stmt()"
}

type DebuggerStatement struct {
	Node
}

func (n *DebuggerStatement) String() string {
	return "Stmt(debugger)"
}

type WithStatement struct {
	Node
	Object IExpr
	Body   IStmt
}

func (n *WithStatement) String() string {
	return "Stmt(with " + n.Object.String() + " " + n.Body.String() + ")"
}

type ReturnStatement struct {
	Node
	Argument IExpr // can be nil
}

func (n *ReturnStatement) String() string {
	if n.Argument == nil {
		return "Stmt(return)"
	}
	return "Stmt(return " + n.Argument.String() + ")"
}

type LabeledStatement struct {
	Node
	Label *Identifier
	Body  IStmt
}

func (n *LabeledStatement) String() string {
	return "Stmt(" + n.Label.String() + ": " + n.Body.String() + ")"
}

type BreakStatement struct {
	Node
	Label *Identifier // can be nil
}

func (n *BreakStatement) String() string {
	if n.Label == nil {
		return "Stmt(break)"
	}
	return "Stmt(break " + n.Label.String() + ")"
}

type ContinueStatement struct {
	Node
	Label *Identifier // can be nil
}

func (n *ContinueStatement) String() string {
	if n.Label == nil {
		return "Stmt(continue)"
	}
	return "Stmt(continue " + n.Label.String() + ")"
}

type IfStatement struct {
	Node
	Test       IExpr
	Consequent IStmt
	Alternate  IStmt // can be nil
}

func (n *IfStatement) String() string {
	s := "Stmt(if " + n.Test.String() + " " + n.Consequent.String()
	if n.Alternate != nil {
		s += " else " + n.Alternate.String()
	}
	return s + ")"
}

type SwitchStatement struct {
	Node
	Discriminant IExpr
	Cases        []*SwitchCase
}

func (n *SwitchStatement) String() string {
	s := "Stmt(switch " + n.Discriminant.String()
	for _, c := range n.Cases {
		s += " " + c.String()
	}
	return s + ")"
}

type SwitchCase struct {
	Node
	Test       IExpr // nil for default
	Consequent []IStmt
}

func (n *SwitchCase) String() string {
	s := "Clause(default"
	if n.Test != nil {
		s = "Clause(case " + n.Test.String()
	}
	return s + stmtsString(n.Consequent) + ")"
}

type ThrowStatement struct {
	Node
	Argument IExpr
}

func (n *ThrowStatement) String() string {
	return "Stmt(throw " + n.Argument.String() + ")"
}

type TryStatement struct {
	Node
	Block     *BlockStatement
	Handler   *CatchClause    // can be nil
	Finalizer *BlockStatement // can be nil
}

func (n *TryStatement) String() string {
	s := "Stmt(try " + n.Block.String()
	if n.Handler != nil {
		s += " " + n.Handler.String()
	}
	if n.Finalizer != nil {
		s += " finally " + n.Finalizer.String()
	}
	return s + ")"
}

type CatchClause struct {
	Node
	Param IBinding // can be nil
	Body  *BlockStatement
}

func (n *CatchClause) String() string {
	s := "catch"
	if n.Param != nil {
		s += " " + n.Param.String()
	}
	return s + " " + n.Body.String()
}

type WhileStatement struct {
	Node
	Test IExpr
	Body IStmt
}

func (n *WhileStatement) String() string {
	return "Stmt(while " + n.Test.String() + " " + n.Body.String() + ")"
}

type DoWhileStatement struct {
	Node
	Body IStmt
	Test IExpr
}

func (n *DoWhileStatement) String() string {
	return "Stmt(do " + n.Body.String() + " while " + n.Test.String() + ")"
}

type ForStatement struct {
	Node
	Init   INode // VariableDeclaration or IExpr, can be nil
	Test   IExpr // can be nil
	Update IExpr // can be nil
	Body   IStmt
}

func (n *ForStatement) String() string {
	s := "Stmt(for"
	if n.Init != nil {
		s += " " + n.Init.String()
	}
	s += " ;"
	if n.Test != nil {
		s += " " + n.Test.String()
	}
	s += " ;"
	if n.Update != nil {
		s += " " + n.Update.String()
	}
	return s + " " + n.Body.String() + ")"
}

type ForInStatement struct {
	Node
	Left  INode // VariableDeclaration or IBinding
	Right IExpr
	Body  IStmt
}

func (n *ForInStatement) String() string {
	return "Stmt(for " + n.Left.String() + " in " + n.Right.String() + " " + n.Body.String() + ")"
}

type ForOfStatement struct {
	Node
	Await bool
	Left  INode // VariableDeclaration or IBinding
	Right IExpr
	Body  IStmt
}

func (n *ForOfStatement) String() string {
	s := "Stmt(for "
	if n.Await {
		s += "await "
	}
	return s + n.Left.String() + " of " + n.Right.String() + " " + n.Body.String() + ")"
}

type VariableDeclaration struct {
	Node
	Kind         string // var, let or const
	Declarations []*VariableDeclarator
}

func (n *VariableDeclaration) String() string {
	ss := make([]string, len(n.Declarations))
	for i, decl := range n.Declarations {
		ss[i] = decl.String()
	}
	return "Decl(" + n.Kind + " " + strings.Join(ss, ", ") + ")"
}

type VariableDeclarator struct {
	Node
	ID   IBinding
	Init IExpr // can be nil
}

func (n *VariableDeclarator) String() string {
	if n.Init == nil {
		return n.ID.String()
	}
	return n.ID.String() + " = " + n.Init.String()
}

////////////////////////////////////////////////////////////////

// Function holds the fields shared by function declarations, function expressions and arrow functions.
type Function struct {
	ID         *Identifier // can be nil
	Params     []IBinding
	Body       INode // BlockStatement, or IExpr for arrow functions with an expression body
	Generator  bool
	Async      bool
	Expression bool // arrow function with an expression body
}

func (f *Function) signature() string {
	return "(" + bindingsString(f.Params) + ") " + f.Body.String()
}

func (f *Function) String() string {
	s := ""
	if f.Async {
		s += "async "
	}
	s += "function"
	if f.Generator {
		s += "*"
	}
	if f.ID != nil {
		s += " " + f.ID.String()
	}
	return s + f.signature()
}

type FunctionDeclaration struct {
	Node
	Function
}

func (n *FunctionDeclaration) String() string {
	return "Decl(" + n.Function.String() + ")"
}

type FunctionExpression struct {
	Node
	Function
}

func (n *FunctionExpression) String() string {
	return n.Function.String()
}

type ArrowFunctionExpression struct {
	Node
	Function
}

func (n *ArrowFunctionExpression) String() string {
	s := ""
	if n.Async {
		s = "async "
	}
	return "(" + s + "(" + bindingsString(n.Params) + ") => " + n.Body.String() + ")"
}

// Class holds the fields shared by class declarations and class expressions.
type Class struct {
	ID         *Identifier // can be nil
	SuperClass IExpr       // can be nil
	Body       *ClassBody
}

func (c *Class) String() string {
	s := "class"
	if c.ID != nil {
		s += " " + c.ID.String()
	}
	if c.SuperClass != nil {
		s += " extends " + c.SuperClass.String()
	}
	return s + " " + c.Body.String()
}

type ClassDeclaration struct {
	Node
	Class
}

func (n *ClassDeclaration) String() string {
	return "Decl(" + n.Class.String() + ")"
}

type ClassExpression struct {
	Node
	Class
}

func (n *ClassExpression) String() string {
	return "(" + n.Class.String() + ")"
}

type ClassBody struct {
	Node
	Body []INode // MethodDefinition, PropertyDefinition or StaticBlock
}

func (n *ClassBody) String() string {
	s := "{"
	for _, item := range n.Body {
		s += " " + item.String()
	}
	return s + " }"
}

func keyString(key IExpr, computed bool) string {
	if computed {
		return "[" + key.String() + "]"
	}
	return key.String()
}

type MethodDefinition struct {
	Node
	Key      IExpr // also PrivateIdentifier
	Value    *FunctionExpression
	Kind     string // constructor, method, get or set
	Computed bool
	Static   bool
}

func (n *MethodDefinition) String() string {
	s := "Method("
	if n.Static {
		s += "static "
	}
	if n.Kind == "get" || n.Kind == "set" {
		s += n.Kind + " "
	}
	if n.Value.Async {
		s += "async "
	}
	if n.Value.Generator {
		s += "*"
	}
	return s + keyString(n.Key, n.Computed) + n.Value.signature() + ")"
}

type PropertyDefinition struct {
	Node
	Key      IExpr // also PrivateIdentifier
	Value    IExpr // can be nil
	Computed bool
	Static   bool
}

func (n *PropertyDefinition) String() string {
	s := "Field("
	if n.Static {
		s += "static "
	}
	s += keyString(n.Key, n.Computed)
	if n.Value != nil {
		s += " = " + n.Value.String()
	}
	return s + ")"
}

type StaticBlock struct {
	Node
	Body []IStmt
}

func (n *StaticBlock) String() string {
	return "Static({" + stmtsString(n.Body) + " })"
}

////////////////////////////////////////////////////////////////

type Identifier struct {
	Node
	Name string
}

func (n *Identifier) String() string {
	return n.Name
}

type PrivateIdentifier struct {
	Node
	Name string // without #
}

func (n *PrivateIdentifier) String() string {
	return "#" + n.Name
}

// RegExpLiteral is the pattern and flags of a regular expression literal.
type RegExpLiteral struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

// Literal is a string, number, boolean, null, regular expression or BigInt literal. Value is a string, float64, bool, nil or *big.Int; it is nil for regular expressions.
type Literal struct {
	Node
	Value  interface{}
	Raw    string
	Regex  *RegExpLiteral // can be nil
	BigInt string         // digits of a BigInt literal without separators and suffix
}

func (n *Literal) String() string {
	return n.Raw
}

type ThisExpression struct {
	Node
}

func (n *ThisExpression) String() string {
	return "this"
}

type Super struct {
	Node
}

func (n *Super) String() string {
	return "super"
}

type ArrayExpression struct {
	Node
	Elements []IExpr // nil elements are holes
}

func (n *ArrayExpression) String() string {
	return "[" + exprsString(n.Elements) + "]"
}

type ObjectExpression struct {
	Node
	Properties []INode // Property or SpreadElement
}

func (n *ObjectExpression) String() string {
	return "{" + propertiesString(n.Properties) + "}"
}

func propertiesString(list []INode) string {
	ss := make([]string, len(list))
	for i, item := range list {
		ss[i] = item.String()
	}
	return strings.Join(ss, ", ")
}

// Property is a property of an object literal or object pattern. Value is an IExpr, a FunctionExpression for methods, or an IBinding in patterns.
type Property struct {
	Node
	Key       IExpr
	Value     INode
	Kind      string // init, get or set
	Method    bool
	Shorthand bool
	Computed  bool
}

func (n *Property) String() string {
	if n.Shorthand {
		return n.Value.String()
	}
	key := keyString(n.Key, n.Computed)
	if n.Kind == "get" || n.Kind == "set" || n.Method {
		f := n.Value.(*FunctionExpression)
		s := ""
		if n.Kind != "init" {
			s = n.Kind + " "
		}
		if f.Async {
			s += "async "
		}
		if f.Generator {
			s += "*"
		}
		return s + key + f.signature()
	}
	return key + ": " + n.Value.String()
}

type TemplateLiteral struct {
	Node
	Quasis      []*TemplateElement
	Expressions []IExpr
}

func (n *TemplateLiteral) String() string {
	s := "`"
	for i, quasi := range n.Quasis {
		s += quasi.Value.Raw
		if i < len(n.Expressions) {
			s += "${" + n.Expressions[i].String() + "}"
		}
	}
	return s + "`"
}

// TemplateValue is the raw and cooked text of a template element, Cooked is nil for invalid escapes in tagged templates.
type TemplateValue struct {
	Raw    string  `json:"raw"`
	Cooked *string `json:"cooked"`
}

type TemplateElement struct {
	Node
	Value TemplateValue
	Tail  bool
}

func (n *TemplateElement) String() string {
	return n.Value.Raw
}

type TaggedTemplateExpression struct {
	Node
	Tag   IExpr
	Quasi *TemplateLiteral
}

func (n *TaggedTemplateExpression) String() string {
	return n.Tag.String() + n.Quasi.String()
}

type UnaryExpression struct {
	Node
	Operator string
	Prefix   bool
	Argument IExpr
}

func (n *UnaryExpression) String() string {
	if n.Operator == "typeof" || n.Operator == "void" || n.Operator == "delete" {
		return "(" + n.Operator + " " + n.Argument.String() + ")"
	}
	return "(" + n.Operator + n.Argument.String() + ")"
}

type UpdateExpression struct {
	Node
	Operator string
	Prefix   bool
	Argument IExpr
}

func (n *UpdateExpression) String() string {
	if n.Prefix {
		return "(" + n.Operator + n.Argument.String() + ")"
	}
	return "(" + n.Argument.String() + n.Operator + ")"
}

type BinaryExpression struct {
	Node
	Operator string
	Left     IExpr // also PrivateIdentifier for #x in obj
	Right    IExpr
}

func (n *BinaryExpression) String() string {
	return "(" + n.Left.String() + " " + n.Operator + " " + n.Right.String() + ")"
}

type LogicalExpression struct {
	Node
	Operator string
	Left     IExpr
	Right    IExpr
}

func (n *LogicalExpression) String() string {
	return "(" + n.Left.String() + " " + n.Operator + " " + n.Right.String() + ")"
}

type AssignmentExpression struct {
	Node
	Operator string
	Left     IBinding
	Right    IExpr
}

func (n *AssignmentExpression) String() string {
	return "(" + n.Left.String() + " " + n.Operator + " " + n.Right.String() + ")"
}

type ConditionalExpression struct {
	Node
	Test       IExpr
	Consequent IExpr
	Alternate  IExpr
}

func (n *ConditionalExpression) String() string {
	return "(" + n.Test.String() + " ? " + n.Consequent.String() + " : " + n.Alternate.String() + ")"
}

type CallExpression struct {
	Node
	Callee    IExpr // also Super
	Arguments []IExpr
	Optional  bool
}

func (n *CallExpression) String() string {
	s := n.Callee.String()
	if n.Optional {
		s += "?."
	}
	return s + "(" + exprsString(n.Arguments) + ")"
}

type NewExpression struct {
	Node
	Callee    IExpr
	Arguments []IExpr
}

func (n *NewExpression) String() string {
	return "(new " + n.Callee.String() + "(" + exprsString(n.Arguments) + "))"
}

type MemberExpression struct {
	Node
	Object   IExpr // also Super
	Property IExpr // also PrivateIdentifier
	Computed bool
	Optional bool
}

func (n *MemberExpression) String() string {
	s := n.Object.String()
	if n.Computed {
		if n.Optional {
			s += "?."
		}
		return s + "[" + n.Property.String() + "]"
	} else if n.Optional {
		return s + "?." + n.Property.String()
	}
	return s + "." + n.Property.String()
}

type ChainExpression struct {
	Node
	Expression IExpr
}

func (n *ChainExpression) String() string {
	return n.Expression.String()
}

type SequenceExpression struct {
	Node
	Expressions []IExpr
}

func (n *SequenceExpression) String() string {
	return "(" + exprsString(n.Expressions) + ")"
}

type YieldExpression struct {
	Node
	Argument IExpr // can be nil
	Delegate bool
}

func (n *YieldExpression) String() string {
	s := "(yield"
	if n.Delegate {
		s += "*"
	}
	if n.Argument != nil {
		s += " " + n.Argument.String()
	}
	return s + ")"
}

type AwaitExpression struct {
	Node
	Argument IExpr
}

func (n *AwaitExpression) String() string {
	return "(await " + n.Argument.String() + ")"
}

type ImportExpression struct {
	Node
	Source IExpr
}

func (n *ImportExpression) String() string {
	return "import(" + n.Source.String() + ")"
}

type MetaProperty struct {
	Node
	Meta     *Identifier
	Property *Identifier
}

func (n *MetaProperty) String() string {
	return n.Meta.String() + "." + n.Property.String()
}

type SpreadElement struct {
	Node
	Argument IExpr
}

func (n *SpreadElement) String() string {
	return "..." + n.Argument.String()
}

type ParenthesizedExpression struct {
	Node
	Expression IExpr
}

func (n *ParenthesizedExpression) String() string {
	return "(" + n.Expression.String() + ")"
}

////////////////////////////////////////////////////////////////

type ObjectPattern struct {
	Node
	Properties []INode // Property or RestElement
}

func (n *ObjectPattern) String() string {
	return "{" + propertiesString(n.Properties) + "}"
}

type ArrayPattern struct {
	Node
	Elements []IBinding // nil elements are holes
}

func (n *ArrayPattern) String() string {
	return "[" + bindingsString(n.Elements) + "]"
}

type RestElement struct {
	Node
	Argument IBinding
}

func (n *RestElement) String() string {
	return "..." + n.Argument.String()
}

type AssignmentPattern struct {
	Node
	Left  IBinding
	Right IExpr
}

func (n *AssignmentPattern) String() string {
	return n.Left.String() + " = " + n.Right.String()
}

////////////////////////////////////////////////////////////////

type ImportDeclaration struct {
	Node
	Specifiers []INode // ImportSpecifier, ImportDefaultSpecifier or ImportNamespaceSpecifier
	Source     *Literal
}

func (n *ImportDeclaration) String() string {
	s := "Decl(import"
	if len(n.Specifiers) != 0 {
		named := []string{}
		other := []string{}
		for _, spec := range n.Specifiers {
			if _, ok := spec.(*ImportSpecifier); ok {
				named = append(named, spec.String())
			} else {
				other = append(other, spec.String())
			}
		}
		if len(named) != 0 {
			other = append(other, "{"+strings.Join(named, ", ")+"}")
		}
		s += " " + strings.Join(other, ", ") + " from"
	}
	return s + " " + n.Source.String() + ")"
}

type ImportSpecifier struct {
	Node
	Imported IExpr // Identifier or string Literal
	Local    *Identifier
}

func (n *ImportSpecifier) String() string {
	if imported, ok := n.Imported.(*Identifier); ok && imported.Name == n.Local.Name {
		return n.Local.String()
	}
	return n.Imported.String() + " as " + n.Local.String()
}

type ImportDefaultSpecifier struct {
	Node
	Local *Identifier
}

func (n *ImportDefaultSpecifier) String() string {
	return n.Local.String()
}

type ImportNamespaceSpecifier struct {
	Node
	Local *Identifier
}

func (n *ImportNamespaceSpecifier) String() string {
	return "* as " + n.Local.String()
}

type ExportNamedDeclaration struct {
	Node
	Declaration IStmt // can be nil
	Specifiers  []*ExportSpecifier
	Source      *Literal // can be nil
}

func (n *ExportNamedDeclaration) String() string {
	if n.Declaration != nil {
		return "Decl(export " + n.Declaration.String() + ")"
	}
	ss := make([]string, len(n.Specifiers))
	for i, spec := range n.Specifiers {
		ss[i] = spec.String()
	}
	s := "Decl(export {" + strings.Join(ss, ", ") + "}"
	if n.Source != nil {
		s += " from " + n.Source.String()
	}
	return s + ")"
}

type ExportSpecifier struct {
	Node
	Local    IExpr // Identifier or string Literal
	Exported IExpr // Identifier or string Literal
}

func (n *ExportSpecifier) String() string {
	if n.Local.String() == n.Exported.String() {
		return n.Local.String()
	}
	return n.Local.String() + " as " + n.Exported.String()
}

type ExportDefaultDeclaration struct {
	Node
	Declaration INode // FunctionDeclaration, ClassDeclaration or IExpr
}

func (n *ExportDefaultDeclaration) String() string {
	return "Decl(export default " + n.Declaration.String() + ")"
}

type ExportAllDeclaration struct {
	Node
	Exported IExpr // can be nil
	Source   *Literal
}

func (n *ExportAllDeclaration) String() string {
	s := "Decl(export *"
	if n.Exported != nil {
		s += " as " + n.Exported.String()
	}
	return s + " from " + n.Source.String() + ")"
}

////////////////////////////////////////////////////////////////

func (n *ExpressionStatement) stmtNode()      {}
func (n *BlockStatement) stmtNode()           {}
func (n *EmptyStatement) stmtNode()           {}
func (n *DebuggerStatement) stmtNode()        {}
func (n *WithStatement) stmtNode()            {}
func (n *ReturnStatement) stmtNode()          {}
func (n *LabeledStatement) stmtNode()         {}
func (n *BreakStatement) stmtNode()           {}
func (n *ContinueStatement) stmtNode()        {}
func (n *IfStatement) stmtNode()              {}
func (n *SwitchStatement) stmtNode()          {}
func (n *ThrowStatement) stmtNode()           {}
func (n *TryStatement) stmtNode()             {}
func (n *WhileStatement) stmtNode()           {}
func (n *DoWhileStatement) stmtNode()         {}
func (n *ForStatement) stmtNode()             {}
func (n *ForInStatement) stmtNode()           {}
func (n *ForOfStatement) stmtNode()           {}
func (n *VariableDeclaration) stmtNode()      {}
func (n *FunctionDeclaration) stmtNode()      {}
func (n *ClassDeclaration) stmtNode()         {}
func (n *ImportDeclaration) stmtNode()        {}
func (n *ExportNamedDeclaration) stmtNode()   {}
func (n *ExportDefaultDeclaration) stmtNode() {}
func (n *ExportAllDeclaration) stmtNode()     {}

func (n *Identifier) exprNode()               {}
func (n *PrivateIdentifier) exprNode()        {}
func (n *Literal) exprNode()                  {}
func (n *ThisExpression) exprNode()           {}
func (n *Super) exprNode()                    {}
func (n *ArrayExpression) exprNode()          {}
func (n *ObjectExpression) exprNode()         {}
func (n *FunctionExpression) exprNode()       {}
func (n *ArrowFunctionExpression) exprNode()  {}
func (n *ClassExpression) exprNode()          {}
func (n *TemplateLiteral) exprNode()          {}
func (n *TaggedTemplateExpression) exprNode() {}
func (n *UnaryExpression) exprNode()          {}
func (n *UpdateExpression) exprNode()         {}
func (n *BinaryExpression) exprNode()         {}
func (n *LogicalExpression) exprNode()        {}
func (n *AssignmentExpression) exprNode()     {}
func (n *ConditionalExpression) exprNode()    {}
func (n *CallExpression) exprNode()           {}
func (n *NewExpression) exprNode()            {}
func (n *MemberExpression) exprNode()         {}
func (n *ChainExpression) exprNode()          {}
func (n *SequenceExpression) exprNode()       {}
func (n *YieldExpression) exprNode()          {}
func (n *AwaitExpression) exprNode()          {}
func (n *ImportExpression) exprNode()         {}
func (n *MetaProperty) exprNode()             {}
func (n *SpreadElement) exprNode()            {}
func (n *ParenthesizedExpression) exprNode()  {}

// Patterns are expressions before they are converted, so they implement IExpr as well.
func (n *ObjectPattern) exprNode()     {}
func (n *ArrayPattern) exprNode()      {}
func (n *RestElement) exprNode()       {}
func (n *AssignmentPattern) exprNode() {}

func (n *Identifier) bindingNode()              {}
func (n *MemberExpression) bindingNode()        {}
func (n *ParenthesizedExpression) bindingNode() {}
func (n *ObjectPattern) bindingNode()           {}
func (n *ArrayPattern) bindingNode()            {}
func (n *RestElement) bindingNode()             {}
func (n *AssignmentPattern) bindingNode()       {}
