package js

// toAssignable converts an expression that turns out to be the target of an assignment, or the parameters of an arrow function when isBinding is set, into a pattern.
func (p *Parser) toAssignable(n INode, isBinding bool, ref *destructuringErrors) IBinding {
	if !p.has(FeatureDestructuring) {
		p.checkPatternErrors(ref, true)
		if b, ok := n.(IBinding); ok {
			return b
		}
		p.raise(n.Base().Start, "Assigning to rvalue")
	}

	switch n := n.(type) {
	case *Identifier:
		if p.inAsync() && n.Name == "await" {
			p.raise(n.Start, "Cannot use 'await' as identifier inside an async function")
		}
		return n
	case *ObjectPattern, *ArrayPattern, *AssignmentPattern, *RestElement:
		return n.(IBinding)
	case *ObjectExpression:
		p.checkPatternErrors(ref, true)
		pattern := &ObjectPattern{Node: n.Node, Properties: make([]INode, len(n.Properties))}
		for i, prop := range n.Properties {
			switch prop := prop.(type) {
			case *Property:
				if prop.Kind != "init" {
					p.raise(prop.Key.Base().Start, "Object pattern can't contain getter or setter")
				}
				prop.Value = p.toAssignable(prop.Value, isBinding, nil)
				pattern.Properties[i] = prop
			default:
				rest := p.toAssignable(prop, isBinding, nil)
				if rest, ok := rest.(*RestElement); ok {
					switch rest.Argument.(type) {
					case *ArrayPattern, *ObjectPattern:
						p.raise(rest.Argument.Base().Start, "Unexpected token")
					}
				}
				pattern.Properties[i] = rest
			}
		}
		return pattern
	case *ArrayExpression:
		p.checkPatternErrors(ref, true)
		return &ArrayPattern{Node: n.Node, Elements: p.toAssignableList(n.Elements, isBinding)}
	case *SpreadElement:
		arg := p.toAssignable(n.Argument, isBinding, nil)
		if def, ok := arg.(*AssignmentPattern); ok {
			p.raise(def.Start, "Rest elements cannot have a default value")
		}
		return &RestElement{Node: n.Node, Argument: arg}
	case *AssignmentExpression:
		if n.Operator != "=" {
			p.raise(n.Left.Base().End, "Only '=' operator can be used for specifying default value.")
		}
		return &AssignmentPattern{Node: n.Node, Left: p.toAssignable(n.Left, isBinding, nil), Right: n.Right}
	case *ParenthesizedExpression:
		n.Expression = p.toAssignable(n.Expression, isBinding, ref).(IExpr)
		return n
	case *ChainExpression:
		p.raise(n.Start, "Optional chaining cannot appear in left-hand side")
	case *MemberExpression:
		if !isBinding {
			return n
		}
	}
	p.raise(n.Base().Start, "Assigning to rvalue")
	return nil
}

// toAssignableList converts the elements of an array or an arrow parameter list, holes stay nil.
func (p *Parser) toAssignableList(list []IExpr, isBinding bool) []IBinding {
	bindings := make([]IBinding, len(list))
	for i, elt := range list {
		if elt != nil {
			bindings[i] = p.toAssignable(elt, isBinding, nil)
		}
	}
	if 0 < len(bindings) && p.cfg.Version == ES2015 && isBinding {
		// ES2015 only allows a plain identifier after a rest binding
		if rest, ok := bindings[len(bindings)-1].(*RestElement); ok {
			if _, ok := rest.Argument.(*Identifier); !ok {
				p.raise(rest.Argument.Base().Start, "Unexpected token")
			}
		}
	}
	return bindings
}

func (p *Parser) parseRestBinding() *RestElement {
	start := p.tok.Start
	p.next()
	if p.cfg.Version == ES2015 && p.tok.Type != IdentifierToken {
		p.fail()
	}
	n := &RestElement{Argument: p.parseBindingAtom()}
	p.finish(n, start)
	return n
}

// parseBindingAtom parses a binding identifier, or an array or object pattern.
func (p *Parser) parseBindingAtom() IBinding {
	if p.has(FeatureDestructuring) {
		switch p.tok.Type {
		case OpenBracketToken:
			start := p.tok.Start
			p.next()
			n := &ArrayPattern{Elements: p.parseBindingList(CloseBracketToken, true, true)}
			p.finish(n, start)
			return n
		case OpenBraceToken:
			return p.parseObj(true, nil).(IBinding)
		}
	}
	return p.parseIdent(false)
}

// parseBindingList parses binding elements up to and including close.
func (p *Parser) parseBindingList(close TokenType, allowEmpty, allowTrailingComma bool) []IBinding {
	list := []IBinding{}
	first := true
	for !p.eat(close) {
		if first {
			first = false
		} else {
			p.expect(CommaToken)
		}
		if allowEmpty && p.tok.Type == CommaToken {
			list = append(list, nil)
		} else if allowTrailingComma && p.afterTrailingComma(close, false) {
			break
		} else if p.tok.Type == EllipsisToken {
			list = append(list, p.parseRestBinding())
			if p.tok.Type == CommaToken {
				p.raise(p.tok.Start, "Comma is not permitted after the rest element")
			}
			p.expect(close)
			break
		} else {
			list = append(list, p.parseMaybeDefault(p.tok.Start, nil))
		}
	}
	return list
}

// parseMaybeDefault parses an optional default value after a binding, left is parsed first if not given.
func (p *Parser) parseMaybeDefault(start int, left IBinding) IBinding {
	if left == nil {
		left = p.parseBindingAtom()
	}
	if !p.has(FeatureDefaultParameters) || !p.eat(EqToken) {
		return left
	}
	n := &AssignmentPattern{Left: left, Right: p.parseMaybeAssign(notForInit, nil)}
	p.finish(n, start)
	return n
}

////////////////////////////////////////////////////////////////

// checkLValSimple verifies an identifier, member expression or parenthesized target. The binding kind is bindNone for assignments.
func (p *Parser) checkLValSimple(n INode, binding int) {
	isBind := binding != bindNone
	switch n := n.(type) {
	case *Identifier:
		if p.strict() && p.cfg.words.reservedStrictBind[n.Name] {
			if isBind {
				p.raise(n.Start, "Binding "+n.Name+" in strict mode")
			}
			p.raise(n.Start, "Assigning to "+n.Name+" in strict mode")
		}
		if binding == bindLexical && n.Name == "let" {
			p.raise(n.Start, "let is disallowed as a lexically bound name")
		}
		return
	case *ChainExpression:
		p.raise(n.Start, "Optional chaining cannot appear in left-hand side")
	case *MemberExpression:
		if isBind {
			p.raise(n.Start, "Binding member expression")
		}
		return
	case *ParenthesizedExpression:
		if isBind {
			p.raise(n.Start, "Binding parenthesized body")
		}
		p.checkLValSimple(n.Expression, binding)
		return
	}
	if isBind {
		p.raise(n.Base().Start, "Binding rvalue")
	}
	p.raise(n.Base().Start, "Assigning to rvalue")
}

// checkLValPattern verifies all targets of a pattern.
func (p *Parser) checkLValPattern(n INode, binding int) {
	switch n := n.(type) {
	case *ObjectPattern:
		for _, prop := range n.Properties {
			p.checkLValInnerPattern(prop, binding)
		}
	case *ArrayPattern:
		for _, elem := range n.Elements {
			if elem != nil {
				p.checkLValInnerPattern(elem, binding)
			}
		}
	default:
		p.checkLValSimple(n, binding)
	}
}

func (p *Parser) checkLValInnerPattern(n INode, binding int) {
	switch n := n.(type) {
	case *Property:
		p.checkLValInnerPattern(n.Value, binding)
	case *AssignmentPattern:
		p.checkLValPattern(n.Left, binding)
	case *RestElement:
		p.checkLValPattern(n.Argument, binding)
	default:
		p.checkLValPattern(n, binding)
	}
}
