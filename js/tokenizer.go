package js

import (
	"io"
	"strings"

	"github.com/tdewolff/esparse"
)

// Token is a significant token of the source, whitespace and comments are never returned as tokens.
type Token struct {
	Type          TokenType
	Data          []byte // raw source of the token
	Value         string // name for identifiers and private names, cooked value for strings and template chunks
	Start, End    int
	Loc           *SourceLocation // nil unless locations are enabled
	NewlineBefore bool            // a line terminator precedes the token
	Escaped       bool            // identifier contains a unicode escape

	invalid *escapeError // invalid escape in a template chunk, the cooked value is undefined
}

func (t Token) String() string {
	if t.Type == EOFToken {
		return "EOF"
	}
	return t.Type.String() + "('" + string(t.Data) + "')"
}

// Is returns true if the token is an identifier with the given name and without escapes.
func (t Token) Is(name string) bool {
	return t.Type == IdentifierToken && !t.Escaped && t.Value == name
}

// Tokenizer produces the significant tokens of a source, it is used by the parser and may be used on its own.
type Tokenizer struct {
	cfg   *Config
	src   []byte
	r     *esparse.Input
	l     *Lexer
	lines *esparse.LineIndex
	dec   stringDecoder

	strict      bool
	prev        TokenType // previous token type when used on its own, ErrorToken at the start
	context     []*tokContext
	exprAllowed bool
	eof         bool
}

// Tokenize resolves the options and returns a Tokenizer over src.
func Tokenize(src []byte, opts Options) (*Tokenizer, error) {
	cfg, err := Resolve(opts)
	if err != nil {
		return nil, err
	}
	return NewTokenizer(src, cfg), nil
}

// NewTokenizer returns a Tokenizer over src with a resolved configuration.
func NewTokenizer(src []byte, cfg *Config) *Tokenizer {
	r := esparse.NewInput(src)
	return &Tokenizer{
		cfg:         cfg,
		src:         src,
		r:           r,
		l:           NewLexer(r, cfg),
		lines:       esparse.NewLineIndex(src),
		dec:         stringDecoder{version: cfg.Version},
		strict:      cfg.Strict,
		prev:        ErrorToken,
		context:     []*tokContext{ctxBraceStatement},
		exprAllowed: true,
	}
}

// Next returns the next token. A slash is read as a regular expression when the enclosing brace, parenthesis and function contexts allow an expression at that point. Once the end is reached the EOF token is returned on every call.
func (t *Tokenizer) Next() (Token, error) {
	tok, err := t.scan(t.exprAllowed)
	if err != nil {
		return Token{}, err
	}
	if IsKeyword(tok.Type) && tok.Escaped {
		return Token{}, t.errorf(tok.Start, "Escape sequence in keyword "+tok.Value)
	}
	t.updateContext(t.prev, tok)
	t.prev = tok.Type
	if t.cfg.OnToken != nil && !(tok.Type == EOFToken && t.eof) {
		if err := t.cfg.OnToken(tok); err != nil {
			return Token{}, err
		}
	}
	t.eof = tok.Type == EOFToken
	return tok, nil
}

// Reset restarts tokenizing at offset, a slash at the new position is read as a regular expression.
func (t *Tokenizer) Reset(offset int) {
	t.l.Reset(offset)
	t.prev = ErrorToken
	t.context = []*tokContext{ctxBraceStatement}
	t.exprAllowed = true
	t.eof = false
}

// Lines returns the line index of the source.
func (t *Tokenizer) Lines() *esparse.LineIndex {
	return t.lines
}

func (t *Tokenizer) errorf(offset int, msg string) error {
	return newSyntaxError(t.lines, offset, msg, nil)
}

func (t *Tokenizer) position(offset int) *Position {
	line, col := t.lines.Position(offset)
	return &Position{line, col}
}

func (t *Tokenizer) location(start, end int) *SourceLocation {
	return &SourceLocation{
		Start:  *t.position(start),
		End:    *t.position(end),
		Source: t.cfg.SourceFile,
	}
}

// scan skips whitespace and comments and returns the next significant token.
func (t *Tokenizer) scan(regExp bool) (Token, error) {
	newline := false
	for {
		start := t.l.Offset()
		tt, data := t.l.Next()
		switch tt {
		case ErrorToken:
			if err := t.l.Err(); err != io.EOF {
				lexErr := err.(*LexError)
				return Token{}, newSyntaxError(t.lines, lexErr.Offset, lexErr.Message, lexErr)
			}
			end := len(t.src)
			tok := Token{Type: EOFToken, Start: end, End: end, NewlineBefore: newline}
			if t.cfg.Locations {
				tok.Loc = t.location(end, end)
			}
			return tok, nil
		case WhitespaceToken:
			continue
		case LineTerminatorToken:
			newline = true
			continue
		case SingleLineCommentToken, MultiLineCommentToken:
			if tt == MultiLineCommentToken {
				newline = true
			}
			if err := t.comment(data, start); err != nil {
				return Token{}, err
			}
			continue
		case DivToken, DivEqToken:
			if regExp {
				if tt, data = t.l.RegExp(); tt == ErrorToken {
					lexErr := t.l.Err().(*LexError)
					return Token{}, newSyntaxError(t.lines, lexErr.Offset, lexErr.Message, lexErr)
				}
			}
		}

		tok := Token{
			Type:          tt,
			Data:          data,
			Start:         start,
			End:           start + len(data),
			NewlineBefore: newline,
		}
		if err := t.decode(&tok); err != nil {
			return Token{}, err
		}
		if t.cfg.Locations {
			tok.Loc = t.location(tok.Start, tok.End)
		}
		return tok, nil
	}
}

// RegExp reads the current division token as a regular expression, it must be called directly after the division token was returned.
func (t *Tokenizer) RegExp(div Token) (Token, error) {
	tt, data := t.l.RegExp()
	if tt == ErrorToken {
		lexErr := t.l.Err().(*LexError)
		return Token{}, newSyntaxError(t.lines, lexErr.Offset, lexErr.Message, lexErr)
	}
	tok := Token{
		Type:          tt,
		Data:          data,
		Start:         div.Start,
		End:           div.Start + len(data),
		NewlineBefore: div.NewlineBefore,
	}
	if t.cfg.Locations {
		tok.Loc = t.location(tok.Start, tok.End)
	}
	t.prev = tt
	t.exprAllowed = false
	return tok, nil
}

func (t *Tokenizer) comment(data []byte, start int) error {
	if t.cfg.OnComment == nil {
		return nil
	}
	block := false
	var text []byte
	switch {
	case data[0] == '/' && data[1] == '*':
		block = true
		text = data[2 : len(data)-2]
	case data[0] == '<': // <!--
		text = data[4:]
	case data[0] == '-': // -->
		text = data[3:]
	default: // // and #!
		text = data[2:]
	}
	end := start + len(data)
	var startLoc, endLoc *Position
	if t.cfg.Locations {
		startLoc, endLoc = t.position(start), t.position(end)
	}
	return t.cfg.OnComment(block, string(text), start, end, startLoc, endLoc)
}

// decode fills in the value of identifiers, strings and template chunks and validates number literals.
func (t *Tokenizer) decode(tok *Token) error {
	switch tok.Type {
	case IdentifierToken, PrivateIdentifierToken:
		data := tok.Data
		offset := tok.Start
		if tok.Type == PrivateIdentifierToken {
			data = data[1:]
			offset++
		}
		name, escaped, escErr := decodeIdentifier(data)
		if escErr == nil && escaped && !hasFeature(t.cfg.Version, FeatureCodePointEscapes) && strings.Contains(string(data), "\\u{") {
			escErr = &escapeError{strings.Index(string(data), "\\u{"), "Invalid Unicode escape"}
		}
		if escErr != nil {
			return t.errorf(offset+escErr.offset, escErr.msg)
		}
		tok.Value = name
		tok.Escaped = escaped
		if tok.Type == IdentifierToken {
			if kw, ok := t.cfg.words.keywords[name]; ok {
				tok.Type = kw
			}
		}
	case NumericToken:
		if t.strict && 2 <= len(tok.Data) && tok.Data[0] == '0' && '0' <= tok.Data[1] && tok.Data[1] <= '9' {
			return t.errorf(tok.Start, "Invalid number")
		}
	case StringToken:
		t.dec.strict = t.strict
		t.dec.template = false
		value, escErr := t.dec.decode(tok.Data[1 : len(tok.Data)-1])
		if escErr != nil {
			return t.errorf(tok.Start+1+escErr.offset, escErr.msg)
		}
		tok.Value = value
	case TemplateToken, TemplateStartToken, TemplateMiddleToken, TemplateEndToken:
		raw := templateRaw(tok)
		t.dec.strict = false
		t.dec.template = true
		value, escErr := t.dec.decode(raw)
		if escErr != nil {
			escErr.offset += tok.Start + 1
			if !hasFeature(t.cfg.Version, FeatureTemplateRevision) {
				return t.errorf(escErr.offset, escErr.msg)
			}
			tok.invalid = escErr
		}
		tok.Value = value
	}
	return nil
}

// templateRaw returns the chunk of a template token between its delimiters.
func templateRaw(tok *Token) []byte {
	data := tok.Data[1:]
	if tok.Type == TemplateStartToken || tok.Type == TemplateMiddleToken {
		return data[:len(data)-2]
	}
	return data[:len(data)-1]
}

////////////////////////////////////////////////////////////////

// tokContext is an enclosing syntactic context of the standalone tokenizer.
type tokContext struct {
	token     string
	isExpr    bool
	generator bool
}

var (
	ctxBraceStatement      = &tokContext{token: "{"}
	ctxBraceExpression     = &tokContext{token: "{", isExpr: true}
	ctxBraceTemplate       = &tokContext{token: "${"}
	ctxParenStatement      = &tokContext{token: "("}
	ctxParenExpression     = &tokContext{token: "(", isExpr: true}
	ctxFunctionStatement   = &tokContext{token: "function"}
	ctxFunctionExpression  = &tokContext{token: "function", isExpr: true}
	ctxGeneratorStatement  = &tokContext{token: "function", generator: true}
	ctxGeneratorExpression = &tokContext{token: "function", isExpr: true, generator: true}
)

// beforeExpr returns true if an expression may directly follow a token of type tt.
func beforeExpr(tt TokenType) bool {
	switch tt {
	case OpenBraceToken, OpenParenToken, OpenBracketToken, SemicolonToken, CommaToken, QuestionToken, ColonToken, ArrowToken, EllipsisToken,
		TemplateStartToken, TemplateMiddleToken,
		CaseToken, DefaultToken, DoToken, ElseToken, ReturnToken, ThrowToken, NewToken, ExtendsToken,
		InToken, InstanceofToken, TypeofToken, VoidToken, DeleteToken:
		return true
	case IncrToken, DecrToken:
		return false
	}
	return IsOperator(tt)
}

func (t *Tokenizer) curContext() *tokContext {
	return t.context[len(t.context)-1]
}

func (t *Tokenizer) popContext() *tokContext {
	ctx := t.curContext()
	t.context = t.context[:len(t.context)-1]
	return ctx
}

func (t *Tokenizer) inGeneratorContext() bool {
	for i := len(t.context) - 1; 0 <= i; i-- {
		if t.context[i].token == "function" {
			return t.context[i].generator
		}
	}
	return false
}

// braceIsBlock returns true if an opening brace after prev starts a block rather than an object literal.
func (t *Tokenizer) braceIsBlock(prev TokenType, brace Token) bool {
	parent := t.curContext()
	if parent == ctxFunctionExpression || parent == ctxFunctionStatement {
		return true
	} else if prev == ColonToken && (parent == ctxBraceStatement || parent == ctxBraceExpression) {
		return !parent.isExpr
	} else if prev == ReturnToken || prev == IdentifierToken && t.exprAllowed {
		return brace.NewlineBefore
	}
	switch prev {
	case ErrorToken, ElseToken, SemicolonToken, CloseParenToken, ArrowToken:
		return true
	case OpenBraceToken:
		return parent == ctxBraceStatement
	case VarToken, ConstToken, IdentifierToken:
		return false
	}
	return !t.exprAllowed
}

// updateContext tracks the contexts opened and closed by tok, which follows a token of type prev, and whether an expression may follow it.
func (t *Tokenizer) updateContext(prev TokenType, tok Token) {
	if IsKeyword(tok.Type) && prev == DotToken {
		t.exprAllowed = false
		return
	}

	switch tok.Type {
	case CloseParenToken, CloseBraceToken:
		if len(t.context) == 1 {
			t.exprAllowed = true
			return
		}
		out := t.popContext()
		if out == ctxBraceStatement && t.curContext().token == "function" {
			out = t.popContext()
		}
		t.exprAllowed = !out.isExpr
	case OpenBraceToken:
		if t.braceIsBlock(prev, tok) {
			t.context = append(t.context, ctxBraceStatement)
		} else {
			t.context = append(t.context, ctxBraceExpression)
		}
		t.exprAllowed = true
	case OpenParenToken:
		if prev == IfToken || prev == ForToken || prev == WithToken || prev == WhileToken {
			t.context = append(t.context, ctxParenStatement)
		} else {
			t.context = append(t.context, ctxParenExpression)
		}
		t.exprAllowed = true
	case TemplateStartToken:
		t.context = append(t.context, ctxBraceTemplate)
		t.exprAllowed = true
	case TemplateMiddleToken:
		t.exprAllowed = true
	case TemplateEndToken:
		if 1 < len(t.context) && t.curContext() == ctxBraceTemplate {
			t.popContext()
		}
		t.exprAllowed = false
	case IncrToken, DecrToken:
		// unchanged
	case FunctionToken, ClassToken:
		cur := t.curContext()
		if beforeExpr(prev) && prev != ElseToken &&
			!(prev == SemicolonToken && cur != ctxParenStatement) &&
			!(prev == ReturnToken && tok.NewlineBefore) &&
			!((prev == ColonToken || prev == OpenBraceToken) && cur == ctxBraceStatement) {
			t.context = append(t.context, ctxFunctionExpression)
		} else {
			t.context = append(t.context, ctxFunctionStatement)
		}
		t.exprAllowed = false
	case ColonToken:
		if t.curContext().token == "function" && 1 < len(t.context) {
			t.popContext()
		}
		t.exprAllowed = true
	case MulToken:
		if prev == FunctionToken && t.curContext().token == "function" {
			i := len(t.context) - 1
			if t.context[i] == ctxFunctionExpression {
				t.context[i] = ctxGeneratorExpression
			} else {
				t.context[i] = ctxGeneratorStatement
			}
		}
		t.exprAllowed = true
	case IdentifierToken:
		allowed := false
		if hasFeature(t.cfg.Version, FeatureForOf) && prev != DotToken {
			allowed = tok.Value == "of" && !t.exprAllowed || tok.Value == "yield" && t.inGeneratorContext()
		}
		t.exprAllowed = allowed
	default:
		t.exprAllowed = beforeExpr(tok.Type)
	}
}
