package js

import (
	"bytes"
)

// parseExpression parses a comma separated sequence of assignment expressions.
func (p *Parser) parseExpression(mode forInit, ref *destructuringErrors) IExpr {
	start := p.tok.Start
	expr := p.parseMaybeAssign(mode, ref)
	if p.tok.Type == CommaToken {
		n := &SequenceExpression{Expressions: []IExpr{expr}}
		for p.eat(CommaToken) {
			n.Expressions = append(n.Expressions, p.parseMaybeAssign(mode, ref))
		}
		p.finish(n, start)
		return n
	}
	return expr
}

// parseMaybeAssign parses an assignment expression. When ref is given, constructs that are only valid in patterns are recorded in it and not raised, since the expression may turn out to be a pattern.
func (p *Parser) parseMaybeAssign(mode forInit, ref *destructuringErrors) IExpr {
	if p.isContextual("yield") && p.inGenerator() {
		return p.parseYield(mode)
	}

	ownRef := false
	oldParenAssign, oldTrailingComma, oldDoubleProto := -1, -1, -1
	if ref != nil {
		oldParenAssign, oldTrailingComma, oldDoubleProto = ref.parenthesizedAssign, ref.trailingComma, ref.doubleProto
		ref.parenthesizedAssign, ref.trailingComma = -1, -1
	} else {
		ref = newDestructuringErrors()
		ownRef = true
	}

	start := p.tok.Start
	if p.tok.Type == OpenParenToken || p.tok.Type == IdentifierToken {
		p.potentialArrowAt = start
		p.potentialArrowInForAwait = mode == inForAwaitInit
	}
	left := p.parseMaybeConditional(mode, ref)
	if IsAssignment(p.tok.Type) {
		op := string(p.tok.Data)
		isEq := p.tok.Type == EqToken
		var target IBinding
		if isEq {
			target = p.toAssignable(left, false, ref)
		}
		if !ownRef {
			ref.parenthesizedAssign, ref.trailingComma, ref.doubleProto = -1, -1, -1
		}
		if left.Base().Start <= ref.shorthandAssign {
			ref.shorthandAssign = -1 // shorthand default was used correctly
		}
		if isEq {
			p.checkLValPattern(target, bindNone)
		} else {
			p.checkLValSimple(left, bindNone)
			target = left.(IBinding)
		}
		p.next()
		n := &AssignmentExpression{Operator: op, Left: target}
		n.Right = p.parseMaybeAssign(mode, nil)
		if -1 < oldDoubleProto {
			ref.doubleProto = oldDoubleProto
		}
		p.finish(n, start)
		return n
	} else if ownRef {
		p.checkExpressionErrors(ref, true)
	}
	if -1 < oldParenAssign {
		ref.parenthesizedAssign = oldParenAssign
	}
	if -1 < oldTrailingComma {
		ref.trailingComma = oldTrailingComma
	}
	return left
}

func (p *Parser) parseMaybeConditional(mode forInit, ref *destructuringErrors) IExpr {
	start := p.tok.Start
	expr := p.parseExprOps(mode, ref)
	if p.checkExpressionErrors(ref, false) {
		return expr
	}
	if p.eat(QuestionToken) {
		n := &ConditionalExpression{Test: expr}
		n.Consequent = p.parseMaybeAssign(notForInit, nil)
		p.expect(ColonToken)
		n.Alternate = p.parseMaybeAssign(mode, nil)
		p.finish(n, start)
		return n
	}
	return expr
}

func (p *Parser) parseExprOps(mode forInit, ref *destructuringErrors) IExpr {
	start := p.tok.Start
	expr := p.parseMaybeUnary(ref, false, false, mode)
	if p.checkExpressionErrors(ref, false) {
		return expr
	} else if arrow, ok := expr.(*ArrowFunctionExpression); ok && arrow.Start == start {
		return expr
	}
	return p.parseExprOp(expr, start, OpEnd, mode)
}

// parseExprOp parses binary operators with a precedence higher than minPrec by precedence climbing.
func (p *Parser) parseExprOp(left IExpr, leftStart int, minPrec OpPrec, mode forInit) IExpr {
	prec := BinaryPrec(p.tok.Type)
	if prec == OpEnd || mode != notForInit && p.tok.Type == InToken || prec <= minPrec {
		return left
	}
	logical := p.tok.Type == OrToken || p.tok.Type == AndToken
	coalesce := p.tok.Type == NullishToken
	if coalesce {
		// the right-hand side of ?? may not contain && or ||
		prec = OpAnd
	}
	op := string(p.tok.Data)
	p.next()
	rightStart := p.tok.Start
	right := p.parseExprOp(p.parseMaybeUnary(nil, false, false, mode), rightStart, prec, mode)
	n := p.buildBinary(leftStart, left, right, op, logical || coalesce)
	if logical && p.tok.Type == NullishToken || coalesce && (p.tok.Type == OrToken || p.tok.Type == AndToken) {
		p.raise(p.tok.Start, "Logical expressions and coalesce expressions cannot be mixed. Wrap either by parentheses")
	}
	return p.parseExprOp(n, leftStart, minPrec, mode)
}

func (p *Parser) buildBinary(start int, left, right IExpr, op string, logical bool) IExpr {
	if id, ok := right.(*PrivateIdentifier); ok {
		p.raise(id.Start, "Private identifier can only be left side of binary expression")
	}
	if logical {
		n := &LogicalExpression{Operator: op, Left: left, Right: right}
		p.finish(n, start)
		return n
	}
	n := &BinaryExpression{Operator: op, Left: left, Right: right}
	p.finish(n, start)
	return n
}

// parseMaybeUnary parses prefix and postfix operators and exponentiation, which may not follow a unary operator directly.
func (p *Parser) parseMaybeUnary(ref *destructuringErrors, sawUnary, incDec bool, mode forInit) IExpr {
	start := p.tok.Start
	var expr IExpr
	if p.isContextual("await") && p.canAwait() {
		expr = p.parseAwait(mode)
		sawUnary = true
	} else if IsPrefix(p.tok.Type) {
		update := p.tok.Type == IncrToken || p.tok.Type == DecrToken
		op := string(p.tok.Data)
		p.next()
		arg := p.parseMaybeUnary(nil, true, update, mode)
		p.checkExpressionErrors(ref, true)
		if update {
			p.checkLValSimple(arg, bindNone)
		} else if p.strict() && op == "delete" && isLocalVariableAccess(arg) {
			p.raise(start, "Deleting local variable in strict mode")
		} else if op == "delete" && isPrivateFieldAccess(arg) {
			p.raise(start, "Private fields can not be deleted")
		} else {
			sawUnary = true
		}
		if update {
			n := &UpdateExpression{Operator: op, Prefix: true, Argument: arg}
			p.finish(n, start)
			expr = n
		} else {
			n := &UnaryExpression{Operator: op, Prefix: true, Argument: arg}
			p.finish(n, start)
			expr = n
		}
	} else if !sawUnary && p.tok.Type == PrivateIdentifierToken {
		if mode != notForInit || len(p.privateNames) == 0 {
			p.fail()
		}
		expr = p.parsePrivateIdent()
		if p.tok.Type != InToken {
			// only valid as the left-hand side of #x in obj
			p.fail()
		}
	} else {
		expr = p.parseExprSubscripts(ref, mode)
		if p.checkExpressionErrors(ref, false) {
			return expr
		}
		for (p.tok.Type == IncrToken || p.tok.Type == DecrToken) && !p.canInsertSemicolon() {
			p.checkLValSimple(expr, bindNone)
			n := &UpdateExpression{Operator: string(p.tok.Data), Argument: expr}
			p.next()
			p.finish(n, start)
			expr = n
		}
	}

	if !incDec && p.eat(ExpToken) {
		if sawUnary {
			p.raise(p.prevStart, "Unexpected token")
		}
		return p.buildBinary(start, expr, p.parseMaybeUnary(nil, false, false, mode), "**", false)
	}
	return expr
}

func isLocalVariableAccess(n INode) bool {
	switch n := n.(type) {
	case *Identifier:
		return true
	case *ParenthesizedExpression:
		return isLocalVariableAccess(n.Expression)
	}
	return false
}

func isPrivateFieldAccess(n INode) bool {
	switch n := n.(type) {
	case *MemberExpression:
		_, ok := n.Property.(*PrivateIdentifier)
		return ok
	case *ChainExpression:
		return isPrivateFieldAccess(n.Expression)
	case *ParenthesizedExpression:
		return isPrivateFieldAccess(n.Expression)
	}
	return false
}

func (p *Parser) parseExprSubscripts(ref *destructuringErrors, mode forInit) IExpr {
	start := p.tok.Start
	expr := p.parseExprAtom(ref, mode, false)
	if _, ok := expr.(*ArrowFunctionExpression); ok && string(p.src[p.prevStart:p.prevEnd]) != ")" {
		return expr
	}
	result := p.parseSubscripts(expr, start, false, mode)
	if member, ok := result.(*MemberExpression); ok && ref != nil {
		if member.Start <= ref.parenthesizedAssign {
			ref.parenthesizedAssign = -1
		}
		if member.Start <= ref.parenthesizedBind {
			ref.parenthesizedBind = -1
		}
		if member.Start <= ref.trailingComma {
			ref.trailingComma = -1
		}
	}
	return result
}

// parseSubscripts parses member accesses, calls and tagged templates following base. With noCalls the arguments of a new expression are left alone.
func (p *Parser) parseSubscripts(base IExpr, start int, noCalls bool, mode forInit) IExpr {
	maybeAsyncArrow := false
	if id, ok := base.(*Identifier); ok {
		maybeAsyncArrow = p.has(FeatureAsyncFunctions) && id.Name == "async" && p.prevEnd == id.End && !p.canInsertSemicolon() && id.End-id.Start == 5 && p.potentialArrowAt == id.Start
	}
	optionalChained := false
	for {
		element, optional := p.parseSubscript(base, start, noCalls, maybeAsyncArrow, optionalChained, mode)
		if optional {
			optionalChained = true
		}
		if _, isArrow := element.(*ArrowFunctionExpression); element == base || isArrow {
			if optionalChained {
				n := &ChainExpression{Expression: element}
				p.finish(n, start)
				return n
			}
			return element
		}
		base = element
	}
}

func (p *Parser) isTemplateStart() bool {
	return p.tok.Type == TemplateToken || p.tok.Type == TemplateStartToken
}

func (p *Parser) parseSubscript(base IExpr, start int, noCalls, maybeAsyncArrow, optionalChained bool, mode forInit) (IExpr, bool) {
	optionalSupported := p.has(FeatureOptionalChaining)
	optional := optionalSupported && p.eat(OptChainToken)
	if noCalls && optional {
		p.raise(p.prevStart, "Optional chaining cannot appear in the callee of new expressions")
	}

	computed := p.eat(OpenBracketToken)
	if computed || optional && p.tok.Type != OpenParenToken && !p.isTemplateStart() || p.eat(DotToken) {
		n := &MemberExpression{Object: base, Computed: computed, Optional: optional}
		if computed {
			n.Property = p.parseExpression(notForInit, nil)
			p.expect(CloseBracketToken)
		} else if _, isSuper := base.(*Super); p.tok.Type == PrivateIdentifierToken && !isSuper {
			n.Property = p.parsePrivateIdent()
		} else {
			n.Property = p.parseIdent(p.cfg.Reserved != ReservedNever)
		}
		p.finish(n, start)
		return n, optional
	} else if !noCalls && p.eat(OpenParenToken) {
		ref := newDestructuringErrors()
		oldYieldPos, oldAwaitPos, oldAwaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
		p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0
		args := p.parseExprList(CloseParenToken, p.has(FeatureTrailingCommaParameters), false, ref)
		if maybeAsyncArrow && !optional && !p.canInsertSemicolon() && p.eat(ArrowToken) {
			p.checkPatternErrors(ref, false)
			p.checkYieldAwaitInDefaultParams()
			if 0 < p.awaitIdentPos {
				p.raise(p.awaitIdentPos, "Cannot use 'await' as identifier inside an async function")
			}
			p.yieldPos, p.awaitPos, p.awaitIdentPos = oldYieldPos, oldAwaitPos, oldAwaitIdentPos
			return p.parseArrowExpression(start, args, true, mode), false
		}
		p.checkExpressionErrors(ref, true)
		if oldYieldPos != 0 {
			p.yieldPos = oldYieldPos
		}
		if oldAwaitPos != 0 {
			p.awaitPos = oldAwaitPos
		}
		if oldAwaitIdentPos != 0 {
			p.awaitIdentPos = oldAwaitIdentPos
		}
		n := &CallExpression{Callee: base, Arguments: args, Optional: optional}
		p.finish(n, start)
		return n, optional
	} else if p.isTemplateStart() {
		if optional || optionalChained {
			p.raise(p.tok.Start, "Optional chaining cannot appear in the tag of tagged template expressions")
		}
		n := &TaggedTemplateExpression{Tag: base, Quasi: p.parseTemplate(true)}
		p.finish(n, start)
		return n, false
	}
	return base, false
}

// parseExprAtom parses an atomic expression: a literal, identifier, parenthesized or bracketed expression, or an expression starting with a keyword.
func (p *Parser) parseExprAtom(ref *destructuringErrors, mode forInit, forNew bool) IExpr {
	if p.tok.Type == DivToken || p.tok.Type == DivEqToken {
		p.readRegExp()
	}

	start := p.tok.Start
	canBeArrow := p.potentialArrowAt == start
	switch p.tok.Type {
	case SuperToken:
		if !p.allowSuper() {
			p.raise(start, "'super' keyword outside a method")
		}
		p.next()
		if p.tok.Type == OpenParenToken && !p.allowDirectSuper() {
			p.raise(start, "super() call outside constructor of a subclass")
		}
		if p.tok.Type != DotToken && p.tok.Type != OpenBracketToken && p.tok.Type != OpenParenToken {
			p.fail()
		}
		n := &Super{}
		p.finish(n, start)
		return n
	case ThisToken:
		p.next()
		n := &ThisExpression{}
		p.finish(n, start)
		return n
	case IdentifierToken:
		containsEsc := p.tok.Escaped
		id := p.parseIdent(false)
		if p.has(FeatureAsyncFunctions) && !containsEsc && id.Name == "async" && !p.canInsertSemicolon() && p.eat(FunctionToken) {
			return p.parseFunction(start, 0, true, mode).(IExpr)
		}
		if canBeArrow && !p.canInsertSemicolon() {
			if p.eat(ArrowToken) {
				return p.parseArrowExpression(start, []IExpr{id}, false, mode)
			}
			if p.has(FeatureAsyncFunctions) && id.Name == "async" && p.tok.Type == IdentifierToken && !containsEsc && (!p.potentialArrowInForAwait || p.tok.Value != "of" || p.tok.Escaped) {
				id = p.parseIdent(false)
				if p.canInsertSemicolon() || !p.eat(ArrowToken) {
					p.fail()
				}
				return p.parseArrowExpression(start, []IExpr{id}, true, mode)
			}
		}
		return id
	case RegExpToken:
		data := p.tok.Data
		i := bytes.LastIndexByte(data, '/')
		n := &Literal{
			Raw:   string(data),
			Regex: &RegExpLiteral{Pattern: string(data[1:i]), Flags: string(data[i+1:])},
		}
		p.next()
		p.finish(n, start)
		return n
	case NumericToken, BigIntToken, StringToken:
		return p.parseLiteral()
	case NullToken, TrueToken, FalseToken:
		n := &Literal{Raw: string(p.tok.Data)}
		if p.tok.Type != NullToken {
			n.Value = p.tok.Type == TrueToken
		}
		p.next()
		p.finish(n, start)
		return n
	case OpenParenToken:
		expr := p.parseParenAndDistinguishExpression(canBeArrow, mode)
		if ref != nil {
			if ref.parenthesizedAssign < 0 && !isSimpleAssignTarget(expr) {
				ref.parenthesizedAssign = start
			}
			if ref.parenthesizedBind < 0 {
				ref.parenthesizedBind = start
			}
		}
		return expr
	case OpenBracketToken:
		p.next()
		n := &ArrayExpression{Elements: p.parseExprList(CloseBracketToken, true, true, ref)}
		p.finish(n, start)
		return n
	case OpenBraceToken:
		return p.parseObj(false, ref)
	case FunctionToken:
		p.next()
		return p.parseFunction(start, 0, false, notForInit).(IExpr)
	case ClassToken:
		return p.parseClass(classExpression).(IExpr)
	case NewToken:
		return p.parseNew()
	case TemplateToken, TemplateStartToken:
		return p.parseTemplate(false)
	case ImportToken:
		if p.has(FeatureDynamicImport) {
			return p.parseExprImport(forNew)
		}
	}
	p.fail()
	return nil
}

// parseExprImport parses a dynamic import or import.meta.
func (p *Parser) parseExprImport(forNew bool) IExpr {
	start := p.tok.Start
	if p.tok.Escaped {
		p.raise(start, "Escape sequence in keyword import")
	}
	meta := p.parseIdent(true)
	if p.tok.Type == OpenParenToken && !forNew {
		p.next()
		n := &ImportExpression{Source: p.parseMaybeAssign(notForInit, nil)}
		if !p.eat(CloseParenToken) {
			errPos := p.tok.Start
			if p.eat(CommaToken) && p.eat(CloseParenToken) {
				p.raise(errPos, "Trailing comma is not allowed in import()")
			}
			p.raise(errPos, "Unexpected token")
		}
		p.finish(n, start)
		return n
	} else if p.tok.Type == DotToken {
		p.next()
		containsEsc := p.tok.Escaped
		n := &MetaProperty{Meta: meta, Property: p.parseIdent(true)}
		if n.Property.Name != "meta" {
			p.raise(n.Property.Start, "The only valid meta property for import is 'import.meta'")
		}
		if containsEsc {
			p.raise(start, "'import.meta' must not contain escaped characters")
		}
		if !p.cfg.IsModule() && !p.cfg.AllowImportExportEverywhere {
			p.raise(start, "Cannot use 'import.meta' outside a module")
		}
		p.finish(n, start)
		return n
	}
	p.fail()
	return nil
}

func (p *Parser) parseParenExpression() IExpr {
	p.expect(OpenParenToken)
	expr := p.parseExpression(notForInit, nil)
	p.expect(CloseParenToken)
	return expr
}

// parseParenAndDistinguishExpression parses a parenthesized expression or the parameters of an arrow function, which cannot be told apart until the arrow is seen.
func (p *Parser) parseParenAndDistinguishExpression(canBeArrow bool, mode forInit) IExpr {
	start := p.tok.Start
	var val IExpr
	if p.has(FeatureArrowFunctions) {
		allowTrailingComma := p.has(FeatureTrailingCommaParameters)
		p.next()

		innerStart := p.tok.Start
		exprList := []IExpr{}
		first, lastIsComma := true, false
		ref := newDestructuringErrors()
		oldYieldPos, oldAwaitPos := p.yieldPos, p.awaitPos
		spreadStart := -1
		p.yieldPos, p.awaitPos = 0, 0
		// awaitIdentPos is kept to check awaits nested in parameters
		for p.tok.Type != CloseParenToken {
			if first {
				first = false
			} else {
				p.expect(CommaToken)
			}
			if allowTrailingComma && p.afterTrailingComma(CloseParenToken, true) {
				lastIsComma = true
				break
			} else if p.tok.Type == EllipsisToken {
				spreadStart = p.tok.Start
				exprList = append(exprList, p.parseRestBinding())
				if p.tok.Type == CommaToken {
					p.raise(p.tok.Start, "Comma is not permitted after the rest element")
				}
				break
			} else {
				exprList = append(exprList, p.parseMaybeAssign(notForInit, ref))
			}
		}
		innerEnd := p.prevEnd
		p.expect(CloseParenToken)

		if canBeArrow && !p.canInsertSemicolon() && p.eat(ArrowToken) {
			p.checkPatternErrors(ref, false)
			p.checkYieldAwaitInDefaultParams()
			p.yieldPos, p.awaitPos = oldYieldPos, oldAwaitPos
			return p.parseArrowExpression(start, exprList, false, mode)
		}

		if len(exprList) == 0 || lastIsComma {
			p.raise(p.prevStart, "Unexpected token")
		}
		if spreadStart != -1 {
			p.raise(spreadStart, "Unexpected token")
		}
		p.checkExpressionErrors(ref, true)
		if oldYieldPos != 0 {
			p.yieldPos = oldYieldPos
		}
		if oldAwaitPos != 0 {
			p.awaitPos = oldAwaitPos
		}

		if 1 < len(exprList) {
			seq := &SequenceExpression{Expressions: exprList}
			p.finishAt(seq, innerStart, innerEnd)
			val = seq
		} else {
			val = exprList[0]
		}
	} else {
		val = p.parseParenExpression()
	}

	if p.cfg.PreserveParens {
		n := &ParenthesizedExpression{Expression: val}
		p.finish(n, start)
		return n
	}
	return val
}

// parseNew parses a new expression or new.target. The callee is parsed without call arguments, so that the first argument list belongs to new.
func (p *Parser) parseNew() IExpr {
	start := p.tok.Start
	if p.tok.Escaped {
		p.raise(start, "Escape sequence in keyword new")
	}
	meta := p.parseIdent(true)
	if p.has(FeatureNewTarget) && p.eat(DotToken) {
		containsEsc := p.tok.Escaped
		n := &MetaProperty{Meta: meta, Property: p.parseIdent(true)}
		if n.Property.Name != "target" {
			p.raise(n.Property.Start, "The only valid meta property for new is 'new.target'")
		}
		if containsEsc {
			p.raise(start, "'new.target' must not contain escaped characters")
		}
		if !p.allowNewDotTarget() {
			p.raise(start, "'new.target' can only be used in functions and class static block")
		}
		p.finish(n, start)
		return n
	}

	calleeStart := p.tok.Start
	n := &NewExpression{Arguments: []IExpr{}}
	n.Callee = p.parseSubscripts(p.parseExprAtom(nil, notForInit, true), calleeStart, true, notForInit)
	if p.eat(OpenParenToken) {
		n.Arguments = p.parseExprList(CloseParenToken, p.has(FeatureTrailingCommaParameters), false, nil)
	}
	p.finish(n, start)
	return n
}

// parseTemplate parses a template literal, invalid escapes are allowed only in tagged templates where they leave the cooked value undefined.
func (p *Parser) parseTemplate(isTagged bool) *TemplateLiteral {
	start := p.tok.Start
	n := &TemplateLiteral{Expressions: []IExpr{}}
	elem := p.parseTemplateElement(isTagged)
	n.Quasis = []*TemplateElement{elem}
	for !elem.Tail {
		n.Expressions = append(n.Expressions, p.parseExpression(notForInit, nil))
		if p.tok.Type != TemplateMiddleToken && p.tok.Type != TemplateEndToken {
			p.fail()
		}
		elem = p.parseTemplateElement(isTagged)
		n.Quasis = append(n.Quasis, elem)
	}
	p.finish(n, start)
	return n
}

// parseTemplateElement parses the chunk of the current template token, which spans between its delimiters.
func (p *Parser) parseTemplateElement(isTagged bool) *TemplateElement {
	raw := templateRaw(&p.tok)
	start := p.tok.Start + 1
	end := start + len(raw)
	n := &TemplateElement{
		Value: TemplateValue{Raw: normalizeLineEndings(raw)},
		Tail:  p.tok.Type == TemplateToken || p.tok.Type == TemplateEndToken,
	}
	if p.tok.invalid != nil {
		if !isTagged {
			p.raise(start, "Bad escape sequence in untagged template literal")
		}
	} else {
		cooked := p.tok.Value
		n.Value.Cooked = &cooked
	}
	p.next()
	p.finishAt(n, start, end)
	return n
}

// normalizeLineEndings replaces \r\n and \r by \n.
func normalizeLineEndings(b []byte) string {
	if bytes.IndexByte(b, '\r') == -1 {
		return string(b)
	}
	return string(bytes.ReplaceAll(bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n")), []byte("\r"), []byte("\n")))
}

////////////////////////////////////////////////////////////////

// propHash tracks the property names of an object literal for the redefinition checks.
type propHash struct {
	proto bool
	kinds map[string]*propKinds
}

type propKinds struct {
	init, get, set bool
}

// checkPropClash raises a duplicate __proto__ from ES2015, and redefined properties before that.
func (p *Parser) checkPropClash(n INode, hash *propHash, ref *destructuringErrors) {
	prop, ok := n.(*Property)
	if !ok || p.has(FeatureObjectShorthand) && (prop.Computed || prop.Method || prop.Shorthand) {
		return
	}
	name, ok := propertyKeyName(prop.Key)
	if !ok {
		return
	}
	start := prop.Key.Base().Start
	if p.has(FeatureObjectShorthand) {
		if name == "__proto__" && prop.Kind == "init" {
			if hash.proto {
				if ref == nil {
					p.raise(start, "Redefinition of __proto__ property")
				} else if ref.doubleProto < 0 {
					ref.doubleProto = start
				}
			}
			hash.proto = true
		}
		return
	}

	if hash.kinds == nil {
		hash.kinds = map[string]*propKinds{}
	}
	other, ok := hash.kinds[name]
	if ok {
		redefinition := false
		switch prop.Kind {
		case "init":
			redefinition = p.strict() && other.init || other.get || other.set
		case "get":
			redefinition = other.init || other.get
		case "set":
			redefinition = other.init || other.set
		}
		if redefinition {
			p.raise(start, "Redefinition of property")
		}
	} else {
		other = &propKinds{}
		hash.kinds[name] = other
	}
	switch prop.Kind {
	case "init":
		other.init = true
	case "get":
		other.get = true
	case "set":
		other.set = true
	}
}

// parseObj parses an object literal, or an object pattern when isPattern is set.
func (p *Parser) parseObj(isPattern bool, ref *destructuringErrors) IExpr {
	start := p.tok.Start
	props := []INode{}
	hash := &propHash{}
	p.next()
	first := true
	for !p.eat(CloseBraceToken) {
		if !first {
			p.expect(CommaToken)
			if ES5 <= p.cfg.Version && p.afterTrailingComma(CloseBraceToken, false) {
				break
			}
		}
		first = false
		prop := p.parseProperty(isPattern, ref)
		if !isPattern {
			p.checkPropClash(prop, hash, ref)
		}
		props = append(props, prop)
	}
	if isPattern {
		n := &ObjectPattern{Properties: props}
		p.finish(n, start)
		return n
	}
	n := &ObjectExpression{Properties: props}
	p.finish(n, start)
	return n
}

func (p *Parser) parseProperty(isPattern bool, ref *destructuringErrors) INode {
	start := p.tok.Start
	if p.has(FeatureObjectRestSpread) && p.eat(EllipsisToken) {
		if isPattern {
			n := &RestElement{Argument: p.parseIdent(false)}
			if p.tok.Type == CommaToken {
				p.raise(p.tok.Start, "Comma is not permitted after the rest element")
			}
			p.finish(n, start)
			return n
		}
		// parenthesized arguments are not valid rest targets
		if p.tok.Type == OpenParenToken && ref != nil {
			if ref.parenthesizedAssign < 0 {
				ref.parenthesizedAssign = p.tok.Start
			}
			if ref.parenthesizedBind < 0 {
				ref.parenthesizedBind = p.tok.Start
			}
		}
		n := &SpreadElement{Argument: p.parseMaybeAssign(notForInit, ref)}
		if p.tok.Type == CommaToken && ref != nil && ref.trailingComma < 0 {
			ref.trailingComma = p.tok.Start
		}
		p.finish(n, start)
		return n
	}

	prop := &Property{}
	generator, async := false, false
	if p.has(FeatureGenerators) && !isPattern {
		generator = p.eat(MulToken)
	}
	containsEsc := p.tok.Escaped
	prop.Key, prop.Computed = p.parsePropertyName()
	if !isPattern && !containsEsc && p.has(FeatureAsyncFunctions) && !generator && p.isAsyncProp(prop) {
		async = true
		generator = p.has(FeatureAsyncIteration) && p.eat(MulToken)
		prop.Key, prop.Computed = p.parsePropertyName()
	}
	p.parsePropertyValue(prop, start, isPattern, generator, async, containsEsc, ref)
	p.finish(prop, start)
	return prop
}

// isAsyncProp returns true if the key just parsed is an async modifier of a method.
func (p *Parser) isAsyncProp(prop *Property) bool {
	id, ok := prop.Key.(*Identifier)
	if prop.Computed || !ok || id.Name != "async" || p.tok.NewlineBefore {
		return false
	}
	switch p.tok.Type {
	case IdentifierToken, NumericToken, BigIntToken, StringToken, OpenBracketToken:
		return true
	case MulToken:
		return p.has(FeatureAsyncIteration)
	}
	return IsKeyword(p.tok.Type)
}

func (p *Parser) parsePropertyValue(prop *Property, start int, isPattern, generator, async, containsEsc bool, ref *destructuringErrors) {
	if (generator || async) && p.tok.Type == ColonToken {
		p.fail()
	}

	id, isIdent := prop.Key.(*Identifier)
	if p.eat(ColonToken) {
		if isPattern {
			prop.Value = p.parseMaybeDefault(p.tok.Start, nil)
		} else {
			prop.Value = p.parseMaybeAssign(notForInit, ref)
		}
		prop.Kind = "init"
	} else if p.has(FeatureObjectShorthand) && p.tok.Type == OpenParenToken {
		if isPattern {
			p.fail()
		}
		prop.Kind = "init"
		prop.Method = true
		prop.Value = p.parseMethod(generator, async, false)
	} else if !isPattern && !containsEsc && p.has(FeatureGetterSetter) && !prop.Computed && isIdent && (id.Name == "get" || id.Name == "set") && p.tok.Type != CommaToken && p.tok.Type != CloseBraceToken && p.tok.Type != EqToken {
		if generator || async {
			p.fail()
		}
		prop.Kind = id.Name
		prop.Key, prop.Computed = p.parsePropertyName()
		fn := p.parseMethod(false, false, false)
		prop.Value = fn
		if prop.Kind == "get" && len(fn.Params) != 0 {
			p.raise(fn.Start, "getter should have no params")
		} else if prop.Kind == "set" && len(fn.Params) != 1 {
			p.raise(fn.Start, "setter should have exactly one param")
		} else if rest, ok := firstParam(fn.Params).(*RestElement); ok && prop.Kind == "set" {
			p.raise(rest.Start, "Setter cannot use rest params")
		}
	} else if p.has(FeatureObjectShorthand) && !prop.Computed && isIdent {
		if generator || async {
			p.fail()
		}
		p.checkUnreserved(id)
		if id.Name == "await" && p.awaitIdentPos == 0 {
			p.awaitIdentPos = start
		}
		prop.Kind = "init"
		value := *id
		if isPattern {
			prop.Value = p.parseMaybeDefault(start, &value)
		} else if p.tok.Type == EqToken && ref != nil {
			if ref.shorthandAssign < 0 {
				ref.shorthandAssign = p.tok.Start
			}
			prop.Value = p.parseMaybeDefault(start, &value)
		} else {
			prop.Value = &value
		}
		prop.Shorthand = true
	} else {
		p.fail()
	}
}

// parsePropertyName parses the key of a property, method or class element and returns whether it is computed.
func (p *Parser) parsePropertyName() (IExpr, bool) {
	if p.has(FeatureObjectShorthand) && p.eat(OpenBracketToken) {
		key := p.parseMaybeAssign(notForInit, nil)
		p.expect(CloseBracketToken)
		return key, true
	}
	switch p.tok.Type {
	case NumericToken, BigIntToken, StringToken:
		return p.parseLiteral(), false
	}
	return p.parseIdent(p.cfg.Reserved != ReservedNever), false
}

// parseExprList parses a comma separated list up to and including the close token. Holes are nil when allowEmpty is set.
func (p *Parser) parseExprList(close TokenType, allowTrailingComma, allowEmpty bool, ref *destructuringErrors) []IExpr {
	list := []IExpr{}
	first := true
	for !p.eat(close) {
		if !first {
			p.expect(CommaToken)
			if allowTrailingComma && p.afterTrailingComma(close, false) {
				break
			}
		}
		first = false

		var elt IExpr
		if allowEmpty && p.tok.Type == CommaToken {
			elt = nil
		} else if p.tok.Type == EllipsisToken {
			elt = p.parseSpread(ref)
			if ref != nil && p.tok.Type == CommaToken && ref.trailingComma < 0 {
				ref.trailingComma = p.tok.Start
			}
		} else {
			elt = p.parseMaybeAssign(notForInit, ref)
		}
		list = append(list, elt)
	}
	return list
}

func (p *Parser) parseSpread(ref *destructuringErrors) *SpreadElement {
	start := p.tok.Start
	p.next()
	n := &SpreadElement{Argument: p.parseMaybeAssign(notForInit, ref)}
	p.finish(n, start)
	return n
}

////////////////////////////////////////////////////////////////

// checkUnreserved raises if the identifier may not be used as a name in the current context.
func (p *Parser) checkUnreserved(id *Identifier) {
	name := id.Name
	if p.inGenerator() && name == "yield" {
		p.raise(id.Start, "Cannot use 'yield' as identifier inside a generator")
	}
	if p.inAsync() && name == "await" {
		p.raise(id.Start, "Cannot use 'await' as identifier inside an async function")
	}
	if p.currentThisScope().inClassFieldInit && name == "arguments" {
		p.raise(id.Start, "Cannot use 'arguments' in class field initializer")
	}
	if p.inClassStaticBlock() && (name == "arguments" || name == "await") {
		p.raise(id.Start, "Cannot use "+name+" in class static initialization block")
	}
	if _, ok := p.cfg.words.keywords[name]; ok {
		p.raise(id.Start, "Unexpected keyword '"+name+"'")
	}
	if !p.has(FeatureCodePointEscapes) && bytes.IndexByte(p.src[id.Start:id.End], '\\') != -1 {
		return
	}
	if p.cfg.IsReservedWord(name, p.strict()) {
		if !p.inAsync() && name == "await" {
			p.raise(id.Start, "Cannot use keyword 'await' outside an async function")
		}
		p.raise(id.Start, "The keyword '"+name+"' is reserved")
	}
}

// parseIdent parses an identifier. With liberal set keywords are accepted as well and no reserved word checks are done, as for property names.
func (p *Parser) parseIdent(liberal bool) *Identifier {
	if p.tok.Type != IdentifierToken && !IsKeyword(p.tok.Type) {
		p.fail()
	}
	start := p.tok.Start
	n := &Identifier{Name: p.tok.Value}
	p.advance(liberal)
	p.finish(n, start)
	if !liberal {
		p.checkUnreserved(n)
		if n.Name == "await" && p.awaitIdentPos == 0 {
			p.awaitIdentPos = n.Start
		}
	}
	return n
}

// parsePrivateIdent parses a private name and records it to be checked against the declarations of the enclosing classes.
func (p *Parser) parsePrivateIdent() *PrivateIdentifier {
	if p.tok.Type != PrivateIdentifierToken {
		p.fail()
	}
	start := p.tok.Start
	n := &PrivateIdentifier{Name: p.tok.Value}
	p.next()
	p.finish(n, start)
	if len(p.privateNames) == 0 {
		p.raise(n.Start, "Private field '#"+n.Name+"' must be declared in an enclosing class")
	}
	names := p.privateNames[len(p.privateNames)-1]
	names.used = append(names.used, n)
	return n
}

func (p *Parser) parseYield(mode forInit) IExpr {
	if p.yieldPos == 0 {
		p.yieldPos = p.tok.Start
	}
	start := p.tok.Start
	p.next()
	n := &YieldExpression{}
	if p.tok.Type != SemicolonToken && !p.canInsertSemicolon() && (p.tok.Type == MulToken || p.startsExpr()) {
		n.Delegate = p.eat(MulToken)
		n.Argument = p.parseMaybeAssign(mode, nil)
	}
	p.finish(n, start)
	return n
}

func (p *Parser) parseAwait(mode forInit) IExpr {
	if p.awaitPos == 0 {
		p.awaitPos = p.tok.Start
	}
	start := p.tok.Start
	p.next()
	n := &AwaitExpression{Argument: p.parseMaybeUnary(nil, true, false, mode)}
	p.finish(n, start)
	return n
}
