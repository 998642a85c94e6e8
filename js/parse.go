package js

import (
	"github.com/tdewolff/esparse"
)

// scope flags
const (
	scopeTop = 1 << iota
	scopeFunction
	scopeAsync
	scopeGenerator
	scopeArrow
	scopeSimpleCatch
	scopeSuper
	scopeDirectSuper
	scopeClassStaticBlock

	scopeVar = scopeTop | scopeFunction | scopeClassStaticBlock
)

func functionFlags(async, generator bool) int {
	flags := scopeFunction
	if async {
		flags |= scopeAsync
	}
	if generator {
		flags |= scopeGenerator
	}
	return flags
}

type scope struct {
	flags            int
	inClassFieldInit bool
}

type label struct {
	name           string
	kind           string // loop, switch or empty for other statements
	statementStart int
}

// privateNames are the private names declared and used in a class body.
type privateNames struct {
	declared map[string]string
	used     []*PrivateIdentifier
}

// forInit tells whether an expression is the init of a for statement, where the in operator is not allowed.
type forInit int

const (
	notForInit forInit = iota
	inForInit
	inForAwaitInit
)

// destructuringErrors holds the positions of constructs that are only valid in either an expression or a pattern, -1 when absent.
type destructuringErrors struct {
	shorthandAssign     int
	trailingComma       int
	parenthesizedAssign int
	parenthesizedBind   int
	doubleProto         int
}

func newDestructuringErrors() *destructuringErrors {
	return &destructuringErrors{-1, -1, -1, -1, -1}
}

////////////////////////////////////////////////////////////////

// Parser is the state for the parser.
type Parser struct {
	cfg   *Config
	src   []byte
	tz    *Tokenizer
	lines *esparse.LineIndex

	tok       Token
	prevStart int
	prevEnd   int

	scopes       []*scope
	labels       []label
	privateNames []*privateNames

	potentialArrowAt         int
	potentialArrowInForAwait bool
	yieldPos                 int
	awaitPos                 int
	awaitIdentPos            int
}

// Parse parses a program with the given options.
func Parse(src []byte, opts Options) (*Program, error) {
	cfg, err := Resolve(opts)
	if err != nil {
		return nil, err
	}
	return ParseWithConfig(src, cfg, opts.Program)
}

// ParseWithConfig parses a program with a resolved configuration. If program is not nil, the parsed statements are appended to it and program is returned; on error it is left untouched.
func ParseWithConfig(src []byte, cfg *Config, program *Program) (ast *Program, err error) {
	defer recoverBailout(&err)

	p := newParser(src, cfg, 0)
	body := p.parseTopLevel()

	if program == nil {
		program = &Program{}
		p.finishAt(program, 0, p.prevEnd)
	} else {
		program.End = p.prevEnd
		if cfg.Locations {
			if program.Loc == nil {
				program.Loc = p.tz.location(program.Start, p.prevEnd)
			} else {
				program.Loc.End = *p.tz.position(p.prevEnd)
			}
		}
		if cfg.Ranges {
			program.Range = &[2]int{program.Start, p.prevEnd}
		}
	}
	program.SourceType = cfg.SourceType
	program.Body = append(program.Body, body...)
	return program, nil
}

// ParseExpressionAt parses a single expression starting at offset, anything after the expression is ignored.
func ParseExpressionAt(src []byte, offset int, opts Options) (expr IExpr, err error) {
	cfg, err := Resolve(opts)
	if err != nil {
		return nil, err
	}
	defer recoverBailout(&err)

	p := newParser(src, cfg, offset)
	return p.parseExpression(notForInit, nil), nil
}

func newParser(src []byte, cfg *Config, offset int) *Parser {
	tz := NewTokenizer(src, cfg)
	p := &Parser{
		cfg:              cfg,
		src:              src,
		tz:               tz,
		lines:            tz.Lines(),
		potentialArrowAt: -1,
	}
	start := offset
	if offset == 0 && cfg.AllowHashBang && 2 <= len(src) && src[0] == '#' && src[1] == '!' {
		for start < len(src) && esparse.LineTerminatorLen(src[start:]) == 0 {
			start++
		}
	}
	tz.strict = cfg.Strict || p.strictDirective(start)
	if offset != 0 {
		tz.Reset(offset)
	}
	p.enterScope(scopeTop)
	p.tok = p.scan()
	p.prevStart, p.prevEnd = offset, offset
	return p
}

////////////////////////////////////////////////////////////////

func (p *Parser) scan() Token {
	tok, err := p.tz.scan(false)
	if err != nil {
		panic(bailout{err})
	}
	return tok
}

// next consumes the current token.
func (p *Parser) next() {
	p.advance(false)
}

// advance consumes the current token, escaped keywords are allowed when ignoreEscape is set.
func (p *Parser) advance(ignoreEscape bool) {
	if !ignoreEscape && IsKeyword(p.tok.Type) && p.tok.Escaped {
		p.raise(p.tok.Start, "Escape sequence in keyword "+p.tok.Value)
	}
	if p.cfg.OnToken != nil {
		p.callback(p.cfg.OnToken(p.tok))
	}
	p.prevStart, p.prevEnd = p.tok.Start, p.tok.End
	p.tok = p.scan()
}

// readRegExp rereads the current division token as a regular expression.
func (p *Parser) readRegExp() {
	tok, err := p.tz.RegExp(p.tok)
	if err != nil {
		panic(bailout{err})
	}
	p.tok = tok
}

func (p *Parser) callback(err error) {
	if err != nil {
		panic(bailout{err})
	}
}

func (p *Parser) raise(offset int, msg string) {
	panic(bailout{newSyntaxError(p.lines, offset, msg, nil)})
}

// fail raises an unexpected token error at the current token.
func (p *Parser) fail() {
	p.raise(p.tok.Start, "Unexpected token")
}

func (p *Parser) strict() bool {
	return p.tz.strict
}

func (p *Parser) setStrict(strict bool) {
	p.tz.strict = strict
}

func (p *Parser) has(f Feature) bool {
	return hasFeature(p.cfg.Version, f)
}

func (p *Parser) position(offset int) *Position {
	if !p.cfg.Locations {
		return nil
	}
	return p.tz.position(offset)
}

// finish sets the span of a node that ends at the previous token.
func (p *Parser) finish(n INode, start int) {
	p.finishAt(n, start, p.prevEnd)
}

func (p *Parser) finishAt(n INode, start, end int) {
	b := n.Base()
	b.Start, b.End = start, end
	if p.cfg.Locations {
		b.Loc = p.tz.location(start, end)
	}
	if p.cfg.Ranges {
		b.Range = &[2]int{start, end}
	}
	if p.cfg.DirectSourceFile != "" {
		b.SourceFile = p.cfg.DirectSourceFile
	}
}

func (p *Parser) eat(tt TokenType) bool {
	if p.tok.Type == tt {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(tt TokenType) {
	if !p.eat(tt) {
		p.fail()
	}
}

// isContextual returns true if the current token is the unescaped identifier name.
func (p *Parser) isContextual(name string) bool {
	return p.tok.Is(name)
}

func (p *Parser) eatContextual(name string) bool {
	if p.isContextual(name) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expectContextual(name string) {
	if !p.eatContextual(name) {
		p.fail()
	}
}

func (p *Parser) canInsertSemicolon() bool {
	return p.tok.Type == EOFToken || p.tok.Type == CloseBraceToken || p.tok.NewlineBefore
}

func (p *Parser) insertSemicolon() bool {
	if p.canInsertSemicolon() {
		if p.cfg.OnInsertedSemicolon != nil && p.tok.Type != EOFToken {
			p.callback(p.cfg.OnInsertedSemicolon(p.prevEnd, p.position(p.prevEnd)))
		}
		return true
	}
	return false
}

func (p *Parser) semicolon() {
	if !p.eat(SemicolonToken) && !p.insertSemicolon() {
		p.fail()
	}
}

// afterTrailingComma is called after a comma, it returns true if tt follows so the comma was trailing. The closing token is consumed unless notNext is set.
func (p *Parser) afterTrailingComma(tt TokenType, notNext bool) bool {
	if p.tok.Type == tt {
		if p.cfg.OnTrailingComma != nil {
			p.callback(p.cfg.OnTrailingComma(p.prevStart, p.position(p.prevStart)))
		}
		if !notNext {
			p.next()
		}
		return true
	}
	return false
}

// startsExpr returns true if the current token can start an expression.
func (p *Parser) startsExpr() bool {
	switch p.tok.Type {
	case IdentifierToken, PrivateIdentifierToken, NumericToken, BigIntToken, StringToken, RegExpToken, TemplateToken, TemplateStartToken,
		OpenBracketToken, OpenBraceToken, OpenParenToken, DivToken, DivEqToken,
		NotToken, BitNotToken, AddToken, SubToken, IncrToken, DecrToken, TypeofToken, VoidToken, DeleteToken,
		ThisToken, SuperToken, NullToken, TrueToken, FalseToken, FunctionToken, ClassToken, NewToken, ImportToken:
		return true
	}
	return false
}

////////////////////////////////////////////////////////////////

func (p *Parser) enterScope(flags int) {
	p.scopes = append(p.scopes, &scope{flags: flags})
}

func (p *Parser) exitScope() {
	p.scopes = p.scopes[:len(p.scopes)-1]
}

func (p *Parser) currentScope() *scope {
	return p.scopes[len(p.scopes)-1]
}

func (p *Parser) currentVarScope() *scope {
	for i := len(p.scopes) - 1; 0 <= i; i-- {
		if p.scopes[i].flags&scopeVar != 0 {
			return p.scopes[i]
		}
	}
	return p.scopes[0]
}

// currentThisScope is the innermost scope that binds this, which excludes arrow functions.
func (p *Parser) currentThisScope() *scope {
	for i := len(p.scopes) - 1; 0 <= i; i-- {
		if s := p.scopes[i]; s.flags&scopeVar != 0 && s.flags&scopeArrow == 0 {
			return s
		}
	}
	return p.scopes[0]
}

func (p *Parser) inFunction() bool {
	return p.currentVarScope().flags&scopeFunction != 0
}

func (p *Parser) inGenerator() bool {
	s := p.currentVarScope()
	return s.flags&scopeGenerator != 0 && !s.inClassFieldInit
}

func (p *Parser) inAsync() bool {
	s := p.currentVarScope()
	return s.flags&scopeAsync != 0 && !s.inClassFieldInit
}

func (p *Parser) inClassStaticBlock() bool {
	return p.currentVarScope().flags&scopeClassStaticBlock != 0
}

func (p *Parser) canAwait() bool {
	for i := len(p.scopes) - 1; 0 <= i; i-- {
		s := p.scopes[i]
		if s.inClassFieldInit || s.flags&scopeClassStaticBlock != 0 {
			return false
		} else if s.flags&scopeFunction != 0 {
			return s.flags&scopeAsync != 0
		}
	}
	return p.cfg.AllowAwaitOutsideFunction
}

func (p *Parser) allowSuper() bool {
	s := p.currentThisScope()
	return s.flags&scopeSuper != 0 || s.inClassFieldInit || p.cfg.AllowSuperOutsideMethod
}

func (p *Parser) allowDirectSuper() bool {
	return p.currentThisScope().flags&scopeDirectSuper != 0
}

func (p *Parser) allowNewDotTarget() bool {
	s := p.currentThisScope()
	return s.flags&(scopeFunction|scopeClassStaticBlock) != 0 || s.inClassFieldInit
}

// treatFunctionsAsVar returns true if function declarations in the current scope bind like var.
func (p *Parser) treatFunctionsAsVar() bool {
	s := p.currentScope()
	return s.flags&scopeFunction != 0 || !p.cfg.IsModule() && s.flags&scopeTop != 0
}

////////////////////////////////////////////////////////////////

// skipSpace returns the offset after the whitespace and comments that start at offset.
func (p *Parser) skipSpace(offset int) int {
	for offset < len(p.src) {
		c := p.src[offset]
		if c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\n' || c == '\r' {
			offset++
		} else if c == '/' && offset+1 < len(p.src) && p.src[offset+1] == '/' {
			offset += 2
			for offset < len(p.src) && esparse.LineTerminatorLen(p.src[offset:]) == 0 {
				offset++
			}
		} else if c == '/' && offset+1 < len(p.src) && p.src[offset+1] == '*' {
			end := offset + 2
			for end+1 < len(p.src) && !(p.src[end] == '*' && p.src[end+1] == '/') {
				end++
			}
			if len(p.src) <= end+1 {
				return offset
			}
			offset = end + 2
		} else if 0x80 <= c {
			r, n := utf8DecodeRune(p.src[offset:])
			if !isSpaceRune(r) {
				return offset
			}
			offset += n
		} else {
			return offset
		}
	}
	return offset
}

// peekChar returns the byte at offset or zero at the end.
func (p *Parser) peekChar(offset int) byte {
	if offset < len(p.src) {
		return p.src[offset]
	}
	return 0
}

// strictDirective returns true if the directive prologue that starts at offset contains a use strict directive.
func (p *Parser) strictDirective(offset int) bool {
	if !p.has(FeatureDirectives) {
		return false
	}
	for {
		offset = p.skipSpace(offset)
		q := p.peekChar(offset)
		if q != '\'' && q != '"' {
			return false
		}
		end := offset + 1
		for end < len(p.src) && p.src[end] != q {
			if p.src[end] == '\\' {
				end++
			}
			end++
		}
		if len(p.src) <= end {
			return false
		}
		end++ // closing quote
		if string(p.src[offset+1:end-1]) == "use strict" {
			after := p.skipSpace(end)
			next := p.peekChar(after)
			if after == len(p.src) || next == ';' || next == '}' {
				return true
			} else if !esparse.ContainsLineTerminator(p.src[end:after]) {
				return false
			}
			switch next {
			case '(', '`', '.', '[', '+', '-', '/', '*', '%', '<', '>', '=', ',', '?', '^', '&':
				return false
			case '!':
				return p.peekChar(after+1) != '='
			}
			return true
		}
		offset = p.skipSpace(end)
		if p.peekChar(offset) == ';' {
			offset++
		}
	}
}

// isLet returns true if the current let token starts a lexical declaration.
func (p *Parser) isLet(context string) bool {
	if !p.has(FeatureBlockScoping) || !p.isContextual("let") {
		return false
	}
	next := p.skipSpace(p.tok.End)
	c := p.peekChar(next)
	if c == '[' || c == '\\' {
		return true
	} else if context != "" {
		return false
	} else if c == '{' {
		return true
	}
	if r, n := utf8DecodeRune(p.src[next:]); n != 0 && isIdentifierStartRune(r) {
		end := next + n
		for end < len(p.src) {
			r, n := utf8DecodeRune(p.src[end:])
			if !isIdentifierPartRune(r) {
				break
			}
			end += n
		}
		if p.peekChar(end) == '\\' {
			return true
		}
		ident := string(p.src[next:end])
		return ident != "in" && ident != "instanceof"
	}
	return false
}

// isAsyncFunction returns true if the current async token is followed by function on the same line.
func (p *Parser) isAsyncFunction() bool {
	if !p.has(FeatureAsyncFunctions) || !p.isContextual("async") {
		return false
	}
	next := p.skipSpace(p.tok.End)
	if esparse.ContainsLineTerminator(p.src[p.tok.End:next]) || len(p.src) < next+8 || string(p.src[next:next+8]) != "function" {
		return false
	}
	if next+8 == len(p.src) {
		return true
	}
	r, _ := utf8DecodeRune(p.src[next+8:])
	return !isIdentifierPartRune(r) && r != '\\'
}

////////////////////////////////////////////////////////////////

func (p *Parser) checkPatternErrors(ref *destructuringErrors, isAssign bool) {
	if ref == nil {
		return
	}
	if -1 < ref.trailingComma {
		p.raise(ref.trailingComma, "Comma is not permitted after the rest element")
	}
	if isAssign && -1 < ref.parenthesizedAssign {
		p.raise(ref.parenthesizedAssign, "Assigning to rvalue")
	} else if !isAssign && -1 < ref.parenthesizedBind {
		p.raise(ref.parenthesizedBind, "Parenthesized pattern")
	}
}

// checkExpressionErrors raises pattern-only constructs found in an expression. Without andThrow it only reports whether there are any.
func (p *Parser) checkExpressionErrors(ref *destructuringErrors, andThrow bool) bool {
	if ref == nil {
		return false
	} else if !andThrow {
		return 0 <= ref.shorthandAssign || 0 <= ref.doubleProto
	}
	if 0 <= ref.shorthandAssign {
		p.raise(ref.shorthandAssign, "Shorthand property assignments are valid only in destructuring patterns")
	}
	if 0 <= ref.doubleProto {
		p.raise(ref.doubleProto, "Redefinition of __proto__ property")
	}
	return false
}

func (p *Parser) checkYieldAwaitInDefaultParams() {
	if p.yieldPos != 0 && (p.awaitPos == 0 || p.yieldPos < p.awaitPos) {
		p.raise(p.yieldPos, "Yield expression cannot be a default value")
	}
	if p.awaitPos != 0 {
		p.raise(p.awaitPos, "Await expression cannot be a default value")
	}
}

func isSimpleAssignTarget(n INode) bool {
	switch n := n.(type) {
	case *ParenthesizedExpression:
		return isSimpleAssignTarget(n.Expression)
	case *Identifier, *MemberExpression:
		return true
	}
	return false
}
