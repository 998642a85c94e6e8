package js

import (
	"math/big"
	"strconv"
	"strings"
)

// function parsing flags
const (
	funcStatement = 1 << iota
	funcHangingStatement
	funcNullableID
)

// binding kinds of checkLVal
const (
	bindNone = iota
	bindVar
	bindLexical
	bindFunction
	bindSimpleCatch
	bindOutside
)

// class parsing modes
const (
	classExpression = iota
	classStatement
	classNullableID
)

func (p *Parser) parseTopLevel() []IStmt {
	body := []IStmt{}
	for p.tok.Type != EOFToken {
		body = append(body, p.parseStatement("", true))
	}
	p.adaptDirectivePrologue(body)
	p.next()
	return body
}

// parseStatement parses a statement. The context is non-empty for the body of if, labeled and loop statements, where declarations are restricted.
func (p *Parser) parseStatement(context string, topLevel bool) IStmt {
	start := p.tok.Start
	tt := p.tok.Type
	kind := ""
	if p.isLet(context) {
		tt = VarToken
		kind = "let"
	}

	switch tt {
	case BreakToken, ContinueToken:
		return p.parseBreakContinueStatement(tt == BreakToken)
	case DebuggerToken:
		p.next()
		p.semicolon()
		n := &DebuggerStatement{}
		p.finish(n, start)
		return n
	case DoToken:
		return p.parseDoStatement()
	case ForToken:
		return p.parseForStatement()
	case FunctionToken:
		if context != "" && (p.strict() || context != "if" && context != "label") && p.has(FeatureBlockScoping) {
			p.fail()
		}
		p.next()
		return p.parseFunctionStatement(start, false, context == "")
	case ClassToken:
		if context != "" {
			p.fail()
		}
		return p.parseClass(classStatement).(IStmt)
	case IfToken:
		return p.parseIfStatement()
	case ReturnToken:
		return p.parseReturnStatement()
	case SwitchToken:
		return p.parseSwitchStatement()
	case ThrowToken:
		return p.parseThrowStatement()
	case TryToken:
		return p.parseTryStatement()
	case ConstToken, VarToken:
		if kind == "" {
			kind = p.tok.Value
		}
		if context != "" && kind != "var" {
			p.fail()
		}
		return p.parseVarStatement(kind)
	case WhileToken:
		return p.parseWhileStatement()
	case WithToken:
		return p.parseWithStatement()
	case OpenBraceToken:
		return p.parseBlock(true, false)
	case SemicolonToken:
		p.next()
		n := &EmptyStatement{}
		p.finish(n, start)
		return n
	case ExportToken, ImportToken:
		if tt == ImportToken && p.has(FeatureDynamicImport) {
			if c := p.peekChar(p.skipSpace(p.tok.End)); c == '(' || c == '.' {
				return p.parseExpressionStatement(start, p.parseExpression(notForInit, nil))
			}
		}
		if !p.cfg.AllowImportExportEverywhere {
			if !topLevel {
				p.raise(p.tok.Start, "'import' and 'export' may only appear at the top level")
			} else if !p.cfg.IsModule() {
				p.raise(p.tok.Start, "'import' and 'export' may appear only with 'sourceType: module'")
			}
		}
		if tt == ImportToken {
			return p.parseImport()
		}
		return p.parseExport()
	}

	if p.isAsyncFunction() {
		if context != "" {
			p.fail()
		}
		p.next()
		p.next()
		return p.parseFunctionStatement(start, true, context == "")
	}

	maybeName := p.tok.Value
	expr := p.parseExpression(notForInit, nil)
	if id, ok := expr.(*Identifier); ok && tt == IdentifierToken && p.eat(ColonToken) {
		return p.parseLabeledStatement(start, maybeName, id, context)
	}
	return p.parseExpressionStatement(start, expr)
}

func (p *Parser) parseBreakContinueStatement(isBreak bool) IStmt {
	start := p.tok.Start
	keyword := p.tok.Value
	p.next()
	var lbl *Identifier
	if p.eat(SemicolonToken) || p.insertSemicolon() {
		// no label
	} else if p.tok.Type != IdentifierToken {
		p.fail()
	} else {
		lbl = p.parseIdent(false)
		p.semicolon()
	}

	// verify that there is a destination to break or continue to
	i := 0
	for ; i < len(p.labels); i++ {
		l := p.labels[i]
		if lbl == nil || l.name == lbl.Name {
			if l.kind != "" && (isBreak || l.kind == "loop") {
				break
			} else if lbl != nil && isBreak {
				break
			}
		}
	}
	if i == len(p.labels) {
		p.raise(start, "Unsyntactic "+keyword)
	}

	if isBreak {
		n := &BreakStatement{Label: lbl}
		p.finish(n, start)
		return n
	}
	n := &ContinueStatement{Label: lbl}
	p.finish(n, start)
	return n
}

func (p *Parser) parseDoStatement() IStmt {
	start := p.tok.Start
	p.next()
	p.labels = append(p.labels, label{kind: "loop", statementStart: -1})
	body := p.parseStatement("do", false)
	p.labels = p.labels[:len(p.labels)-1]
	p.expect(WhileToken)
	test := p.parseParenExpression()
	if p.has(FeatureBlockScoping) {
		p.eat(SemicolonToken)
	} else {
		p.semicolon()
	}
	n := &DoWhileStatement{Body: body, Test: test}
	p.finish(n, start)
	return n
}

func (p *Parser) parseForStatement() IStmt {
	start := p.tok.Start
	p.next()
	awaitAt := -1
	if p.has(FeatureAsyncIteration) && p.canAwait() && p.eatContextual("await") {
		awaitAt = p.prevStart
	}
	p.labels = append(p.labels, label{kind: "loop", statementStart: -1})
	p.enterScope(0)
	p.expect(OpenParenToken)
	if p.tok.Type == SemicolonToken {
		if -1 < awaitAt {
			p.raise(awaitAt, "Unexpected token")
		}
		return p.parseFor(start, nil)
	}

	isLet := p.isLet("")
	if p.tok.Type == VarToken || p.tok.Type == ConstToken || isLet {
		initStart := p.tok.Start
		kind := p.tok.Value
		if isLet {
			kind = "let"
		}
		p.next()
		init := p.parseVar(true, kind)
		p.finish(init, initStart)
		if (p.tok.Type == InToken || p.has(FeatureForOf) && p.isContextual("of")) && len(init.Declarations) == 1 {
			await := false
			if p.has(FeatureAsyncIteration) {
				if p.tok.Type == InToken {
					if -1 < awaitAt {
						p.raise(awaitAt, "Unexpected token")
					}
				} else {
					await = -1 < awaitAt
				}
			}
			return p.parseForIn(start, init, await)
		}
		if -1 < awaitAt {
			p.raise(awaitAt, "Unexpected token")
		}
		return p.parseFor(start, init)
	}

	startsWithLet := p.isContextual("let")
	containsEsc := p.tok.Escaped
	ref := newDestructuringErrors()
	initStart := p.tok.Start
	var init IExpr
	if -1 < awaitAt {
		init = p.parseExprSubscripts(ref, inForAwaitInit)
	} else {
		init = p.parseExpression(inForInit, ref)
	}
	if p.tok.Type == InToken || p.has(FeatureForOf) && p.isContextual("of") {
		isForOf := p.tok.Type != InToken
		await := false
		if -1 < awaitAt {
			if !isForOf {
				p.raise(awaitAt, "Unexpected token")
			}
			await = true
		} else if isForOf && p.has(FeatureAsyncFunctions) {
			if id, ok := init.(*Identifier); ok && id.Start == initStart && !containsEsc && id.Name == "async" {
				p.fail()
			}
		}
		if startsWithLet && isForOf {
			p.raise(initStart, "The left-hand side of a for-of loop may not start with let.")
		}
		left := p.toAssignable(init, false, ref)
		p.checkLValPattern(left, bindNone)
		return p.parseForIn(start, left, await)
	}
	p.checkExpressionErrors(ref, true)
	if -1 < awaitAt {
		p.raise(awaitAt, "Unexpected token")
	}
	return p.parseFor(start, init)
}

func (p *Parser) parseFor(start int, init INode) IStmt {
	n := &ForStatement{Init: init}
	p.expect(SemicolonToken)
	if p.tok.Type != SemicolonToken {
		n.Test = p.parseExpression(notForInit, nil)
	}
	p.expect(SemicolonToken)
	if p.tok.Type != CloseParenToken {
		n.Update = p.parseExpression(notForInit, nil)
	}
	p.expect(CloseParenToken)
	n.Body = p.parseStatement("for", false)
	p.exitScope()
	p.labels = p.labels[:len(p.labels)-1]
	p.finish(n, start)
	return n
}

func (p *Parser) parseForIn(start int, init INode, await bool) IStmt {
	isForIn := p.tok.Type == InToken
	p.next()
	if decl, ok := init.(*VariableDeclaration); ok && decl.Declarations[0].Init != nil {
		_, isIdent := decl.Declarations[0].ID.(*Identifier)
		if !isForIn || !p.has(FeatureAsyncFunctions) || p.strict() || decl.Kind != "var" || !isIdent {
			loop := "for-of"
			if isForIn {
				loop = "for-in"
			}
			p.raise(decl.Start, loop+" loop variable declaration may not have an initializer")
		}
	}
	var right IExpr
	if isForIn {
		right = p.parseExpression(notForInit, nil)
	} else {
		right = p.parseMaybeAssign(notForInit, nil)
	}
	p.expect(CloseParenToken)
	body := p.parseStatement("for", false)
	p.exitScope()
	p.labels = p.labels[:len(p.labels)-1]
	if isForIn {
		n := &ForInStatement{Left: init, Right: right, Body: body}
		p.finish(n, start)
		return n
	}
	n := &ForOfStatement{Await: await, Left: init, Right: right, Body: body}
	p.finish(n, start)
	return n
}

func (p *Parser) parseFunctionStatement(start int, async, declarationPosition bool) IStmt {
	flags := funcStatement
	if !declarationPosition {
		flags |= funcHangingStatement
	}
	return p.parseFunction(start, flags, async, notForInit).(IStmt)
}

func (p *Parser) parseIfStatement() IStmt {
	start := p.tok.Start
	p.next()
	n := &IfStatement{}
	n.Test = p.parseParenExpression()
	n.Consequent = p.parseStatement("if", false)
	if p.eat(ElseToken) {
		n.Alternate = p.parseStatement("if", false)
	}
	p.finish(n, start)
	return n
}

func (p *Parser) parseReturnStatement() IStmt {
	start := p.tok.Start
	if !p.inFunction() && !p.cfg.AllowReturnOutsideFunction {
		p.raise(start, "'return' outside of function")
	}
	p.next()
	n := &ReturnStatement{}
	if !p.eat(SemicolonToken) && !p.insertSemicolon() {
		n.Argument = p.parseExpression(notForInit, nil)
		p.semicolon()
	}
	p.finish(n, start)
	return n
}

func (p *Parser) parseSwitchStatement() IStmt {
	start := p.tok.Start
	p.next()
	n := &SwitchStatement{Cases: []*SwitchCase{}}
	n.Discriminant = p.parseParenExpression()
	p.expect(OpenBraceToken)
	p.labels = append(p.labels, label{kind: "switch", statementStart: -1})
	p.enterScope(0)

	var cur *SwitchCase
	curStart := 0
	sawDefault := false
	for p.tok.Type != CloseBraceToken {
		if p.tok.Type == CaseToken || p.tok.Type == DefaultToken {
			isCase := p.tok.Type == CaseToken
			if cur != nil {
				p.finish(cur, curStart)
			}
			cur = &SwitchCase{Consequent: []IStmt{}}
			curStart = p.tok.Start
			n.Cases = append(n.Cases, cur)
			p.next()
			if isCase {
				cur.Test = p.parseExpression(notForInit, nil)
			} else {
				if sawDefault {
					p.raise(p.prevStart, "Multiple default clauses")
				}
				sawDefault = true
			}
			p.expect(ColonToken)
		} else {
			if cur == nil {
				p.fail()
			}
			cur.Consequent = append(cur.Consequent, p.parseStatement("", false))
		}
	}
	p.exitScope()
	if cur != nil {
		p.finish(cur, curStart)
	}
	p.next() // closing brace
	p.labels = p.labels[:len(p.labels)-1]
	p.finish(n, start)
	return n
}

func (p *Parser) parseThrowStatement() IStmt {
	start := p.tok.Start
	p.next()
	if p.tok.NewlineBefore {
		p.raise(p.prevEnd, "Illegal newline after throw")
	}
	n := &ThrowStatement{}
	n.Argument = p.parseExpression(notForInit, nil)
	p.semicolon()
	p.finish(n, start)
	return n
}

func (p *Parser) parseTryStatement() IStmt {
	start := p.tok.Start
	p.next()
	n := &TryStatement{}
	n.Block = p.parseBlock(true, false)
	if p.tok.Type == CatchToken {
		clauseStart := p.tok.Start
		clause := &CatchClause{}
		p.next()
		if p.eat(OpenParenToken) {
			param := p.parseBindingAtom()
			_, simple := param.(*Identifier)
			if simple {
				p.enterScope(scopeSimpleCatch)
				p.checkLValPattern(param, bindSimpleCatch)
			} else {
				p.enterScope(0)
				p.checkLValPattern(param, bindLexical)
			}
			p.expect(CloseParenToken)
			clause.Param = param
		} else {
			if !p.has(FeatureOptionalCatchBinding) {
				p.fail()
			}
			p.enterScope(0)
		}
		clause.Body = p.parseBlock(false, false)
		p.exitScope()
		p.finish(clause, clauseStart)
		n.Handler = clause
	}
	if p.eat(FinallyToken) {
		n.Finalizer = p.parseBlock(true, false)
	}
	if n.Handler == nil && n.Finalizer == nil {
		p.raise(start, "Missing catch or finally clause")
	}
	p.finish(n, start)
	return n
}

func (p *Parser) parseVarStatement(kind string) IStmt {
	start := p.tok.Start
	p.next()
	n := p.parseVar(false, kind)
	p.semicolon()
	p.finish(n, start)
	return n
}

func (p *Parser) parseWhileStatement() IStmt {
	start := p.tok.Start
	p.next()
	n := &WhileStatement{}
	n.Test = p.parseParenExpression()
	p.labels = append(p.labels, label{kind: "loop", statementStart: -1})
	n.Body = p.parseStatement("while", false)
	p.labels = p.labels[:len(p.labels)-1]
	p.finish(n, start)
	return n
}

func (p *Parser) parseWithStatement() IStmt {
	start := p.tok.Start
	if p.strict() {
		p.raise(start, "'with' in strict mode")
	}
	p.next()
	n := &WithStatement{}
	n.Object = p.parseParenExpression()
	n.Body = p.parseStatement("with", false)
	p.finish(n, start)
	return n
}

func (p *Parser) parseLabeledStatement(start int, name string, expr *Identifier, context string) IStmt {
	for _, l := range p.labels {
		if l.name == name {
			p.raise(expr.Start, "Label '"+name+"' is already declared")
		}
	}
	kind := ""
	if p.tok.Type == DoToken || p.tok.Type == ForToken || p.tok.Type == WhileToken {
		kind = "loop"
	} else if p.tok.Type == SwitchToken {
		kind = "switch"
	}
	for i := len(p.labels) - 1; 0 <= i; i-- {
		if p.labels[i].statementStart != start {
			break
		}
		p.labels[i].statementStart = p.tok.Start
		p.labels[i].kind = kind
	}
	p.labels = append(p.labels, label{name: name, kind: kind, statementStart: p.tok.Start})
	if context == "" {
		context = "label"
	} else if !strings.Contains(context, "label") {
		context += "label"
	}
	body := p.parseStatement(context, false)
	p.labels = p.labels[:len(p.labels)-1]
	n := &LabeledStatement{Label: expr, Body: body}
	p.finish(n, start)
	return n
}

func (p *Parser) parseExpressionStatement(start int, expr IExpr) IStmt {
	p.semicolon()
	n := &ExpressionStatement{Expression: expr}
	p.finish(n, start)
	return n
}

// parseBlock parses a block statement. With exitStrict the strict mode of a function body is left before the closing brace is consumed.
func (p *Parser) parseBlock(newScope, exitStrict bool) *BlockStatement {
	start := p.tok.Start
	n := &BlockStatement{Body: []IStmt{}}
	p.expect(OpenBraceToken)
	if newScope {
		p.enterScope(0)
	}
	for p.tok.Type != CloseBraceToken {
		n.Body = append(n.Body, p.parseStatement("", false))
	}
	if exitStrict {
		p.setStrict(false)
	}
	p.next()
	if newScope {
		p.exitScope()
	}
	p.finish(n, start)
	return n
}

func (p *Parser) parseVar(isFor bool, kind string) *VariableDeclaration {
	n := &VariableDeclaration{Kind: kind}
	mode := notForInit
	if isFor {
		mode = inForInit
	}
	for {
		declStart := p.tok.Start
		decl := &VariableDeclarator{}
		decl.ID = p.parseBindingAtom()
		if kind == "var" {
			p.checkLValPattern(decl.ID, bindVar)
		} else {
			p.checkLValPattern(decl.ID, bindLexical)
		}
		if p.eat(EqToken) {
			decl.Init = p.parseMaybeAssign(mode, nil)
		} else if kind == "const" && !(p.tok.Type == InToken || p.has(FeatureForOf) && p.isContextual("of")) {
			p.fail()
		} else if _, ok := decl.ID.(*Identifier); !ok && !(isFor && (p.tok.Type == InToken || p.isContextual("of"))) {
			p.raise(p.prevEnd, "Complex binding patterns require an initialization value")
		}
		p.finish(decl, declStart)
		n.Declarations = append(n.Declarations, decl)
		if !p.eat(CommaToken) {
			break
		}
	}
	return n
}

////////////////////////////////////////////////////////////////

// parseFunction parses a function declaration or expression after the function keyword, start is the offset of the function or async keyword.
func (p *Parser) parseFunction(start int, flags int, async bool, mode forInit) INode {
	f := Function{}
	if p.has(FeatureAsyncIteration) || p.has(FeatureGenerators) && !async {
		if p.tok.Type == MulToken && flags&funcHangingStatement != 0 {
			p.fail()
		}
		f.Generator = p.eat(MulToken)
	}
	if p.has(FeatureAsyncFunctions) {
		f.Async = async
	}
	if flags&funcStatement != 0 {
		if flags&funcNullableID == 0 || p.tok.Type == IdentifierToken {
			f.ID = p.parseIdent(false)
		}
		if f.ID != nil && flags&funcHangingStatement == 0 {
			binding := bindFunction
			if p.strict() || f.Generator || f.Async {
				binding = bindLexical
				if p.treatFunctionsAsVar() {
					binding = bindVar
				}
			}
			p.checkLValSimple(f.ID, binding)
		}
	}

	oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
	p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0
	p.enterScope(functionFlags(f.Async, f.Generator))
	if flags&funcStatement == 0 && p.tok.Type == IdentifierToken {
		f.ID = p.parseIdent(false)
	}
	p.expect(OpenParenToken)
	f.Params = p.parseBindingList(CloseParenToken, false, p.has(FeatureTrailingCommaParameters))
	p.checkYieldAwaitInDefaultParams()
	p.parseFunctionBody(&f, start, false, false, mode)
	p.yieldPos, p.awaitPos, p.awaitIdentPos = oldYieldPos, oldAwaitPos, oldAwaitIdentPos

	if flags&funcStatement != 0 {
		n := &FunctionDeclaration{Function: f}
		p.finish(n, start)
		return n
	}
	n := &FunctionExpression{Function: f}
	p.finish(n, start)
	return n
}

// parseFunctionBody parses the body of a function whose parameters were parsed, and exits the function scope.
func (p *Parser) parseFunctionBody(f *Function, start int, isArrow, isMethod bool, mode forInit) {
	if isArrow && p.tok.Type != OpenBraceToken {
		f.Body = p.parseMaybeAssign(mode, nil)
		f.Expression = true
		p.checkParams(f)
	} else {
		oldStrict := p.strict()
		useStrict := false
		nonSimple := p.has(FeatureNonSimpleParameters) && !isSimpleParamList(f.Params)
		if !oldStrict || nonSimple {
			useStrict = p.strictDirective(p.tok.End)
			if useStrict && nonSimple {
				p.raise(start, "Illegal 'use strict' directive in function with non-simple parameter list")
			}
		}
		oldLabels := p.labels
		p.labels = nil
		if useStrict {
			p.setStrict(true)
		}
		p.checkParams(f)
		if p.strict() && f.ID != nil {
			p.checkLValSimple(f.ID, bindOutside)
		}
		body := p.parseBlock(false, useStrict && !oldStrict)
		f.Body = body
		f.Expression = false
		p.adaptDirectivePrologue(body.Body)
		p.labels = oldLabels
	}
	p.exitScope()
}

func (p *Parser) checkParams(f *Function) {
	for _, param := range f.Params {
		p.checkLValInnerPattern(param, bindVar)
	}
}

func isSimpleParamList(params []IBinding) bool {
	for _, param := range params {
		if _, ok := param.(*Identifier); !ok {
			return false
		}
	}
	return true
}

// parseMethod parses the parameters and body of an object or class method, starting at the opening parenthesis.
func (p *Parser) parseMethod(generator, async, allowDirectSuper bool) *FunctionExpression {
	start := p.tok.Start
	oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
	f := Function{}
	if p.has(FeatureGenerators) {
		f.Generator = generator
	}
	if p.has(FeatureAsyncFunctions) {
		f.Async = async
	}
	p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0
	flags := functionFlags(async, f.Generator) | scopeSuper
	if allowDirectSuper {
		flags |= scopeDirectSuper
	}
	p.enterScope(flags)
	p.expect(OpenParenToken)
	f.Params = p.parseBindingList(CloseParenToken, false, p.has(FeatureTrailingCommaParameters))
	p.checkYieldAwaitInDefaultParams()
	p.parseFunctionBody(&f, start, false, true, notForInit)
	p.yieldPos, p.awaitPos, p.awaitIdentPos = oldYieldPos, oldAwaitPos, oldAwaitIdentPos

	n := &FunctionExpression{Function: f}
	p.finish(n, start)
	return n
}

// parseArrowExpression parses the body of an arrow function whose parameters were parsed as expressions.
func (p *Parser) parseArrowExpression(start int, params []IExpr, async bool, mode forInit) IExpr {
	oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
	p.enterScope(functionFlags(async, false) | scopeArrow)
	f := Function{}
	if p.has(FeatureAsyncFunctions) {
		f.Async = async
	}
	p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0
	f.Params = p.toAssignableList(params, true)
	p.parseFunctionBody(&f, start, true, false, mode)
	p.yieldPos, p.awaitPos, p.awaitIdentPos = oldYieldPos, oldAwaitPos, oldAwaitIdentPos

	n := &ArrowFunctionExpression{Function: f}
	p.finish(n, start)
	return n
}

func (p *Parser) adaptDirectivePrologue(body []IStmt) {
	if !p.has(FeatureDirectives) {
		return
	}
	for _, stmt := range body {
		n, ok := stmt.(*ExpressionStatement)
		if !ok {
			return
		}
		lit, ok := n.Expression.(*Literal)
		if !ok {
			return
		} else if _, ok := lit.Value.(string); !ok || p.src[n.Start] != '"' && p.src[n.Start] != '\'' {
			return
		}
		n.Directive = lit.Raw[1 : len(lit.Raw)-1]
	}
}

////////////////////////////////////////////////////////////////

// parseClass parses a class declaration or expression, the current token is the class keyword.
func (p *Parser) parseClass(mode int) INode {
	start := p.tok.Start
	p.next()
	oldStrict := p.strict()
	p.setStrict(true)

	c := Class{}
	if p.tok.Type == IdentifierToken {
		c.ID = p.parseIdent(false)
		if mode != classExpression {
			p.checkLValSimple(c.ID, bindLexical)
		}
	} else if mode == classStatement {
		p.fail()
	}
	if p.eat(ExtendsToken) {
		c.SuperClass = p.parseExprSubscripts(nil, notForInit)
	}

	names := &privateNames{declared: map[string]string{}}
	p.privateNames = append(p.privateNames, names)
	bodyStart := p.tok.Start
	body := &ClassBody{Body: []INode{}}
	hadConstructor := false
	p.expect(OpenBraceToken)
	for p.tok.Type != CloseBraceToken {
		element := p.parseClassElement(c.SuperClass != nil)
		if element == nil {
			continue
		}
		body.Body = append(body.Body, element)
		if method, ok := element.(*MethodDefinition); ok && method.Kind == "constructor" {
			if hadConstructor {
				p.raise(method.Start, "Duplicate constructor in the same class")
			}
			hadConstructor = true
		} else if key, ok := classElementKey(element).(*PrivateIdentifier); ok && isPrivateNameConflicted(names.declared, element) {
			p.raise(key.Start, "Identifier '#"+key.Name+"' has already been declared")
		}
	}
	p.setStrict(oldStrict)
	p.next()
	p.finish(body, bodyStart)
	c.Body = body
	p.exitClassBody()

	if mode == classExpression {
		n := &ClassExpression{Class: c}
		p.finish(n, start)
		return n
	}
	n := &ClassDeclaration{Class: c}
	p.finish(n, start)
	return n
}

func classElementKey(element INode) IExpr {
	switch n := element.(type) {
	case *MethodDefinition:
		return n.Key
	case *PropertyDefinition:
		return n.Key
	}
	return nil
}

// isPrivateNameConflicted records a private class element and returns true if its name was declared before, where a getter and setter pair counts as one.
func isPrivateNameConflicted(declared map[string]string, element INode) bool {
	name := classElementKey(element).(*PrivateIdentifier).Name
	curr := declared[name]
	next := "true"
	if method, ok := element.(*MethodDefinition); ok && (method.Kind == "get" || method.Kind == "set") {
		if method.Static {
			next = "s" + method.Kind
		} else {
			next = "i" + method.Kind
		}
	}
	if curr == "iget" && next == "iset" || curr == "iset" && next == "iget" || curr == "sget" && next == "sset" || curr == "sset" && next == "sget" {
		declared[name] = "true"
		return false
	} else if curr == "" {
		declared[name] = next
		return false
	}
	return true
}

func (p *Parser) exitClassBody() {
	names := p.privateNames[len(p.privateNames)-1]
	p.privateNames = p.privateNames[:len(p.privateNames)-1]
	var parent *privateNames
	if 0 < len(p.privateNames) {
		parent = p.privateNames[len(p.privateNames)-1]
	}
	for _, id := range names.used {
		if _, ok := names.declared[id.Name]; !ok {
			if parent != nil {
				parent.used = append(parent.used, id)
			} else {
				p.raise(id.Start, "Private field '#"+id.Name+"' must be declared in an enclosing class")
			}
		}
	}
}

func (p *Parser) isClassElementNameStart() bool {
	switch p.tok.Type {
	case IdentifierToken, PrivateIdentifierToken, NumericToken, BigIntToken, StringToken, OpenBracketToken:
		return true
	}
	return IsKeyword(p.tok.Type)
}

func (p *Parser) parseClassElement(constructorAllowsSuper bool) INode {
	if p.eat(SemicolonToken) {
		return nil
	}
	start := p.tok.Start
	keyName := ""
	generator, async, static := false, false, false
	kind := "method"

	if p.eatContextual("static") {
		if p.has(FeatureClassStaticBlocks) && p.eat(OpenBraceToken) {
			return p.parseClassStaticBlock(start)
		}
		if p.isClassElementNameStart() || p.tok.Type == MulToken {
			static = true
		} else {
			keyName = "static"
		}
	}
	if keyName == "" && p.has(FeatureAsyncFunctions) && p.eatContextual("async") {
		if (p.isClassElementNameStart() || p.tok.Type == MulToken) && !p.canInsertSemicolon() {
			async = true
		} else {
			keyName = "async"
		}
	}
	if keyName == "" && (p.has(FeatureAsyncIteration) || !async) && p.eat(MulToken) {
		generator = true
	}
	if keyName == "" && !async && !generator {
		lastValue := p.tok.Value
		if p.eatContextual("get") || p.eatContextual("set") {
			if p.isClassElementNameStart() {
				kind = lastValue
			} else {
				keyName = lastValue
			}
		}
	}

	var key IExpr
	computed := false
	if keyName != "" {
		id := &Identifier{Name: keyName}
		p.finishAt(id, p.prevStart, p.prevEnd)
		key = id
	} else if p.tok.Type == PrivateIdentifierToken {
		if p.tok.Value == "constructor" {
			p.raise(p.tok.Start, "Classes can't have an element named '#constructor'")
		}
		key = p.parsePrivateIdent()
	} else {
		key, computed = p.parsePropertyName()
	}

	if !p.has(FeatureClassFields) || p.tok.Type == OpenParenToken || kind != "method" || generator || async {
		isConstructor := !static && checkKeyName(key, computed, "constructor")
		if isConstructor && kind != "method" {
			p.raise(key.Base().Start, "Constructor can't have get/set modifier")
		}
		n := &MethodDefinition{Key: key, Kind: kind, Computed: computed, Static: static}
		if isConstructor {
			n.Kind = "constructor"
			if generator {
				p.raise(key.Base().Start, "Constructor can't be a generator")
			} else if async {
				p.raise(key.Base().Start, "Constructor can't be an async method")
			}
		} else if static && checkKeyName(key, computed, "prototype") {
			p.raise(key.Base().Start, "Classes may not have a static property named prototype")
		}
		n.Value = p.parseMethod(generator, async, isConstructor && constructorAllowsSuper)
		if n.Kind == "get" && len(n.Value.Params) != 0 {
			p.raise(n.Value.Start, "getter should have no params")
		} else if n.Kind == "set" && len(n.Value.Params) != 1 {
			p.raise(n.Value.Start, "setter should have exactly one param")
		} else if rest, ok := firstParam(n.Value.Params).(*RestElement); ok && n.Kind == "set" {
			p.raise(rest.Start, "Setter cannot use rest params")
		}
		p.finish(n, start)
		return n
	}

	if checkKeyName(key, computed, "constructor") {
		p.raise(key.Base().Start, "Classes can't have a field named 'constructor'")
	} else if static && checkKeyName(key, computed, "prototype") {
		p.raise(key.Base().Start, "Classes can't have a static field named 'prototype'")
	}
	n := &PropertyDefinition{Key: key, Computed: computed, Static: static}
	if p.eat(EqToken) {
		s := p.currentThisScope()
		inClassFieldInit := s.inClassFieldInit
		s.inClassFieldInit = true
		n.Value = p.parseMaybeAssign(notForInit, nil)
		s.inClassFieldInit = inClassFieldInit
	}
	p.semicolon()
	p.finish(n, start)
	return n
}

func firstParam(params []IBinding) IBinding {
	if len(params) == 0 {
		return nil
	}
	return params[0]
}

// checkKeyName returns true if a non-computed key is the identifier or string name.
func checkKeyName(key IExpr, computed bool, name string) bool {
	if computed {
		return false
	}
	switch key := key.(type) {
	case *Identifier:
		return key.Name == name
	case *Literal:
		s, ok := key.Value.(string)
		return ok && s == name
	}
	return false
}

func (p *Parser) parseClassStaticBlock(start int) INode {
	n := &StaticBlock{Body: []IStmt{}}
	oldLabels := p.labels
	p.labels = nil
	p.enterScope(scopeClassStaticBlock | scopeSuper)
	for p.tok.Type != CloseBraceToken {
		n.Body = append(n.Body, p.parseStatement("", false))
	}
	p.next()
	p.exitScope()
	p.labels = oldLabels
	p.finish(n, start)
	return n
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseExport() IStmt {
	start := p.tok.Start
	p.next()
	if p.eat(MulToken) {
		n := &ExportAllDeclaration{}
		if p.has(FeatureExportNamespaceFrom) && p.eatContextual("as") {
			n.Exported = p.parseModuleExportName()
		}
		p.expectContextual("from")
		n.Source = p.parseModuleSource()
		p.semicolon()
		p.finish(n, start)
		return n
	}

	if p.eat(DefaultToken) {
		n := &ExportDefaultDeclaration{}
		async := p.tok.Type != FunctionToken && p.isAsyncFunction()
		if p.tok.Type == FunctionToken || async {
			fStart := p.tok.Start
			p.next()
			if async {
				p.next()
			}
			n.Declaration = p.parseFunction(fStart, funcStatement|funcNullableID, async, notForInit)
		} else if p.tok.Type == ClassToken {
			n.Declaration = p.parseClass(classNullableID)
		} else {
			n.Declaration = p.parseMaybeAssign(notForInit, nil)
			p.semicolon()
		}
		p.finish(n, start)
		return n
	}

	n := &ExportNamedDeclaration{Specifiers: []*ExportSpecifier{}}
	if p.shouldParseExportStatement() {
		n.Declaration = p.parseStatement("", false)
	} else {
		p.expect(OpenBraceToken)
		first := true
		for !p.eat(CloseBraceToken) {
			if !first {
				p.expect(CommaToken)
				if p.afterTrailingComma(CloseBraceToken, false) {
					break
				}
			}
			first = false
			specStart := p.tok.Start
			spec := &ExportSpecifier{}
			spec.Local = p.parseModuleExportName()
			spec.Exported = spec.Local
			if p.eatContextual("as") {
				spec.Exported = p.parseModuleExportName()
			}
			p.finish(spec, specStart)
			n.Specifiers = append(n.Specifiers, spec)
		}
		if p.eatContextual("from") {
			n.Source = p.parseModuleSource()
		} else {
			for _, spec := range n.Specifiers {
				switch local := spec.Local.(type) {
				case *Identifier:
					p.checkUnreserved(local)
				case *Literal:
					p.raise(local.Start, "A string literal cannot be used as an exported binding without `from`.")
				}
			}
		}
		p.semicolon()
	}
	p.finish(n, start)
	return n
}

func (p *Parser) shouldParseExportStatement() bool {
	switch p.tok.Type {
	case VarToken, ConstToken, ClassToken, FunctionToken:
		return true
	}
	return p.isLet("") || p.isAsyncFunction()
}

func (p *Parser) parseModuleSource() *Literal {
	if p.tok.Type != StringToken {
		p.fail()
	}
	return p.parseLiteral()
}

// parseModuleExportName parses an identifier name, or a string from ES2022.
func (p *Parser) parseModuleExportName() IExpr {
	if p.has(FeatureArbitraryModuleNames) && p.tok.Type == StringToken {
		return p.parseLiteral()
	}
	return p.parseIdent(true)
}

func (p *Parser) parseImport() IStmt {
	start := p.tok.Start
	p.next()
	n := &ImportDeclaration{Specifiers: []INode{}}
	if p.tok.Type == StringToken {
		n.Source = p.parseLiteral()
	} else {
		n.Specifiers = p.parseImportSpecifiers()
		p.expectContextual("from")
		n.Source = p.parseModuleSource()
	}
	p.semicolon()
	p.finish(n, start)
	return n
}

func (p *Parser) parseImportSpecifiers() []INode {
	nodes := []INode{}
	if p.tok.Type == IdentifierToken {
		start := p.tok.Start
		spec := &ImportDefaultSpecifier{Local: p.parseIdent(false)}
		p.checkLValSimple(spec.Local, bindLexical)
		p.finish(spec, start)
		nodes = append(nodes, spec)
		if !p.eat(CommaToken) {
			return nodes
		}
	}
	if p.tok.Type == MulToken {
		start := p.tok.Start
		p.next()
		p.expectContextual("as")
		spec := &ImportNamespaceSpecifier{Local: p.parseIdent(false)}
		p.checkLValSimple(spec.Local, bindLexical)
		p.finish(spec, start)
		return append(nodes, spec)
	}

	p.expect(OpenBraceToken)
	first := true
	for !p.eat(CloseBraceToken) {
		if !first {
			p.expect(CommaToken)
			if p.afterTrailingComma(CloseBraceToken, false) {
				break
			}
		}
		first = false
		start := p.tok.Start
		spec := &ImportSpecifier{}
		spec.Imported = p.parseModuleExportName()
		if p.eatContextual("as") {
			spec.Local = p.parseIdent(false)
		} else if id, ok := spec.Imported.(*Identifier); ok {
			p.checkUnreserved(id)
			local := *id
			spec.Local = &local
		} else {
			p.raise(spec.Imported.Base().Start, "Binding rvalue")
		}
		p.checkLValSimple(spec.Local, bindLexical)
		p.finish(spec, start)
		nodes = append(nodes, spec)
	}
	return nodes
}

////////////////////////////////////////////////////////////////

// literalValue returns the value of the current string, number or BigInt token.
func (p *Parser) literalValue() (interface{}, string) {
	switch p.tok.Type {
	case StringToken:
		return p.tok.Value, ""
	case BigIntToken:
		v, digits := bigIntValue(p.tok.Data)
		if v == nil {
			return nil, digits
		}
		return v, digits
	}
	return numericValue(p.tok.Data), ""
}

func (p *Parser) parseLiteral() *Literal {
	start := p.tok.Start
	value, bigint := p.literalValue()
	n := &Literal{Value: value, Raw: string(p.tok.Data), BigInt: bigint}
	p.next()
	p.finish(n, start)
	return n
}

// propertyKeyName returns the name of an identifier or literal key as used for duplicate checks.
func propertyKeyName(key IExpr) (string, bool) {
	switch key := key.(type) {
	case *Identifier:
		return key.Name, true
	case *Literal:
		switch v := key.Value.(type) {
		case string:
			return v, true
		case float64:
			return strconv.FormatFloat(v, 'g', -1, 64), true
		case *big.Int:
			if v != nil {
				return v.String(), true
			}
		}
	}
	return "", false
}
