// Package js is an ECMAScript lexer and parser following the specifications at https://tc39.es/ecma262/, producing ESTree shaped syntax trees for ECMAScript 3 up to ECMAScript 2023.
package js

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/tdewolff/esparse"
)

var identifierStart = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Other_ID_Start}
var identifierContinue = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue}

////////////////////////////////////////////////////////////////

// TokenType determines the type of token, eg. a number or a semicolon.
type TokenType uint32

// TokenType values.
const (
	ErrorToken TokenType = iota // extra token when errors occur
	EOFToken
	WhitespaceToken
	LineTerminatorToken    // \r \n \r\n
	SingleLineCommentToken // also block comments without line terminators
	MultiLineCommentToken  // token for comments with line terminators (not just any /*block*/)
	NumericToken
	BigIntToken
	StringToken
	TemplateToken // template without substitutions
	TemplateStartToken
	TemplateMiddleToken
	TemplateEndToken
	RegExpToken
	PrivateIdentifierToken
)

const (
	PunctuatorToken   TokenType = 0x1000 + iota
	OpenBraceToken              // {
	CloseBraceToken             // }
	OpenParenToken              // (
	CloseParenToken             // )
	OpenBracketToken            // [
	CloseBracketToken           // ]
	DotToken                    // .
	SemicolonToken              // ;
	CommaToken                  // ,
	QuestionToken               // ?
	ColonToken                  // :
	ArrowToken                  // =>
	EllipsisToken               // ...
	OptChainToken               // ?.
)

const (
	OperatorToken  TokenType = 0x3000 + iota
	EqToken                  // =
	EqEqToken                // ==
	EqEqEqToken              // ===
	NotToken                 // !
	NotEqToken               // !=
	NotEqEqToken             // !==
	LtToken                  // <
	LtEqToken                // <=
	LtLtToken                // <<
	LtLtEqToken              // <<=
	GtToken                  // >
	GtEqToken                // >=
	GtGtToken                // >>
	GtGtEqToken              // >>=
	GtGtGtToken              // >>>
	GtGtGtEqToken            // >>>=
	AddToken                 // +
	AddEqToken               // +=
	IncrToken                // ++
	SubToken                 // -
	SubEqToken               // -=
	DecrToken                // --
	MulToken                 // *
	MulEqToken               // *=
	ExpToken                 // **
	ExpEqToken               // **=
	DivToken                 // /
	DivEqToken               // /=
	ModToken                 // %
	ModEqToken               // %=
	BitAndToken              // &
	BitOrToken               // |
	BitXorToken              // ^
	BitNotToken              // ~
	BitAndEqToken            // &=
	BitOrEqToken             // |=
	BitXorEqToken            // ^=
	AndToken                 // &&
	OrToken                  // ||
	NullishToken             // ??
	AndEqToken               // &&=
	OrEqToken                // ||=
	NullishEqToken           // ??=
)

// Keyword token types. Contextual words such as let, yield, async, await and static are IdentifierToken.
const (
	IdentifierToken TokenType = 0x4000 + iota
	BreakToken
	CaseToken
	CatchToken
	ClassToken
	ConstToken
	ContinueToken
	DebuggerToken
	DefaultToken
	DeleteToken
	DoToken
	ElseToken
	ExportToken
	ExtendsToken
	FalseToken
	FinallyToken
	ForToken
	FunctionToken
	IfToken
	ImportToken
	InToken
	InstanceofToken
	NewToken
	NullToken
	ReturnToken
	SuperToken
	SwitchToken
	ThisToken
	ThrowToken
	TrueToken
	TryToken
	TypeofToken
	VarToken
	VoidToken
	WhileToken
	WithToken
)

// IsPunctuator returns true for punctuators and operators.
func IsPunctuator(tt TokenType) bool {
	return tt&0x1000 != 0
}

// IsOperator returns true for operators.
func IsOperator(tt TokenType) bool {
	return tt&0x2000 != 0
}

// IsIdentifier returns true for identifiers and keywords.
func IsIdentifier(tt TokenType) bool {
	return tt&0x4000 != 0
}

// IsKeyword returns true for keywords.
func IsKeyword(tt TokenType) bool {
	return tt&0x4000 != 0 && tt != IdentifierToken
}

var tokenNames = map[TokenType]string{
	ErrorToken:             "Error",
	EOFToken:               "EOF",
	WhitespaceToken:        "Whitespace",
	LineTerminatorToken:    "LineTerminator",
	SingleLineCommentToken: "SingleLineComment",
	MultiLineCommentToken:  "MultiLineComment",
	NumericToken:           "Numeric",
	BigIntToken:            "BigInt",
	StringToken:            "String",
	TemplateToken:          "Template",
	TemplateStartToken:     "TemplateStart",
	TemplateMiddleToken:    "TemplateMiddle",
	TemplateEndToken:       "TemplateEnd",
	RegExpToken:            "RegExp",
	PrivateIdentifierToken: "PrivateIdentifier",
	PunctuatorToken:        "Punctuator",
	OpenBraceToken:         "{",
	CloseBraceToken:        "}",
	OpenParenToken:         "(",
	CloseParenToken:        ")",
	OpenBracketToken:       "[",
	CloseBracketToken:      "]",
	DotToken:               ".",
	SemicolonToken:         ";",
	CommaToken:             ",",
	QuestionToken:          "?",
	ColonToken:             ":",
	ArrowToken:             "=>",
	EllipsisToken:          "...",
	OptChainToken:          "?.",
	OperatorToken:          "Operator",
	EqToken:                "=",
	EqEqToken:              "==",
	EqEqEqToken:            "===",
	NotToken:               "!",
	NotEqToken:             "!=",
	NotEqEqToken:           "!==",
	LtToken:                "<",
	LtEqToken:              "<=",
	LtLtToken:              "<<",
	LtLtEqToken:            "<<=",
	GtToken:                ">",
	GtEqToken:              ">=",
	GtGtToken:              ">>",
	GtGtEqToken:            ">>=",
	GtGtGtToken:            ">>>",
	GtGtGtEqToken:          ">>>=",
	AddToken:               "+",
	AddEqToken:             "+=",
	IncrToken:              "++",
	SubToken:               "-",
	SubEqToken:             "-=",
	DecrToken:              "--",
	MulToken:               "*",
	MulEqToken:             "*=",
	ExpToken:               "**",
	ExpEqToken:             "**=",
	DivToken:               "/",
	DivEqToken:             "/=",
	ModToken:               "%",
	ModEqToken:             "%=",
	BitAndToken:            "&",
	BitOrToken:             "|",
	BitXorToken:            "^",
	BitNotToken:            "~",
	BitAndEqToken:          "&=",
	BitOrEqToken:           "|=",
	BitXorEqToken:          "^=",
	AndToken:               "&&",
	OrToken:                "||",
	NullishToken:           "??",
	AndEqToken:             "&&=",
	OrEqToken:              "||=",
	NullishEqToken:         "??=",
	IdentifierToken:        "Identifier",
}

func init() {
	for word, tt := range Keywords {
		tokenNames[tt] = word
	}
}

// String returns the string representation of a TokenType.
func (tt TokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return "Invalid(" + strconv.Itoa(int(tt)) + ")"
}

////////////////////////////////////////////////////////////////

// LexError is a lexical error at an offset into the source. The parser and tokenizer return it wrapped in a SyntaxError.
type LexError struct {
	Offset  int
	Message string
}

func (e *LexError) Error() string {
	return e.Message + " at offset " + strconv.Itoa(e.Offset)
}

// Lexer is the state for the lexer.
type Lexer struct {
	r                  *esparse.Input
	err                *LexError
	version            Version
	module             bool
	hashbang           bool
	prevLineTerminator bool
	level              int
	templateLevels     []int
}

// NewLexer returns a new Lexer over an Input, the grammar is selected by the version, source type and hashbang option of cfg.
func NewLexer(r *esparse.Input, cfg *Config) *Lexer {
	return &Lexer{
		r:                  r,
		version:            cfg.Version,
		module:             cfg.IsModule(),
		hashbang:           cfg.AllowHashBang,
		prevLineTerminator: true,
		templateLevels:     []int{},
	}
}

// Err returns the error encountered during lexing, this is io.EOF at the end of the input.
func (l *Lexer) Err() error {
	if l.err != nil {
		return l.err
	}
	return l.r.Err()
}

// Offset returns the current position in the input stream.
func (l *Lexer) Offset() int {
	return l.r.Offset()
}

// Reset restarts lexing at offset, outside of any template.
func (l *Lexer) Reset(offset int) {
	l.r.Reset(offset)
	l.err = nil
	l.prevLineTerminator = true
	l.level = 0
	l.templateLevels = l.templateLevels[:0]
}

func (l *Lexer) fail(offset int, msg string, a ...interface{}) {
	if 0 < len(a) {
		msg = fmt.Sprintf(msg, a...)
	}
	l.err = &LexError{offset, msg}
}

// RegExp reparses the input stream for a regular expression. It is assumed that we just received DivToken or DivEqToken with Next(). This function will go back and read that as a regular expression.
func (l *Lexer) RegExp() (TokenType, []byte) {
	if 0 < l.r.Offset() && l.r.Peek(-1) == '/' {
		l.r.Move(-1)
	} else if 1 < l.r.Offset() && l.r.Peek(-1) == '=' && l.r.Peek(-2) == '/' {
		l.r.Move(-2)
	} else {
		return ErrorToken, nil
	}
	l.r.Skip() // trick to set start = pos

	if l.consumeRegExpToken() {
		return RegExpToken, l.r.Shift()
	}
	return ErrorToken, nil
}

// Next returns the next Token. It returns ErrorToken when an error was encountered or at the end of the input. Using Err() one can retrieve the error message.
func (l *Lexer) Next() (TokenType, []byte) {
	prevLineTerminator := l.prevLineTerminator
	l.prevLineTerminator = false

	c := l.r.Peek(0)
	switch c {
	case '(':
		l.r.Move(1)
		return OpenParenToken, l.r.Shift()
	case ')':
		l.r.Move(1)
		return CloseParenToken, l.r.Shift()
	case '{':
		l.level++
		l.r.Move(1)
		return OpenBraceToken, l.r.Shift()
	case '}':
		l.level--
		if len(l.templateLevels) != 0 && l.level == l.templateLevels[len(l.templateLevels)-1] {
			if tt := l.consumeTemplateToken(); tt != ErrorToken {
				return tt, l.r.Shift()
			}
			return ErrorToken, nil
		}
		l.r.Move(1)
		return CloseBraceToken, l.r.Shift()
	case ']':
		l.r.Move(1)
		return CloseBracketToken, l.r.Shift()
	case '[':
		l.r.Move(1)
		return OpenBracketToken, l.r.Shift()
	case ';':
		l.r.Move(1)
		return SemicolonToken, l.r.Shift()
	case ',':
		l.r.Move(1)
		return CommaToken, l.r.Shift()
	case ':':
		l.r.Move(1)
		return ColonToken, l.r.Shift()
	case '~':
		l.r.Move(1)
		return BitNotToken, l.r.Shift()
	case '<', '-':
		if l.consumeHTMLLikeCommentToken(prevLineTerminator) {
			l.prevLineTerminator = prevLineTerminator
			return SingleLineCommentToken, l.r.Shift()
		} else if tt := l.consumeOperatorToken(); tt != ErrorToken {
			return tt, l.r.Shift()
		}
	case '>', '=', '!', '+', '*', '%', '&', '|', '^', '?':
		if tt := l.consumeOperatorToken(); tt != ErrorToken {
			return tt, l.r.Shift()
		}
	case '/':
		if tt := l.consumeCommentToken(); tt != ErrorToken {
			if tt == SingleLineCommentToken {
				l.prevLineTerminator = prevLineTerminator
			}
			return tt, l.r.Shift()
		} else if l.err != nil {
			return ErrorToken, nil
		} else if tt := l.consumeOperatorToken(); tt != ErrorToken {
			return tt, l.r.Shift()
		}
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.':
		if tt := l.consumeNumericToken(); tt != ErrorToken {
			return tt, l.r.Shift()
		} else if l.err != nil {
			return ErrorToken, nil
		} else if c == '.' {
			l.r.Move(1)
			if l.r.Peek(0) == '.' && l.r.Peek(1) == '.' && hasFeature(l.version, FeatureSpread) {
				l.r.Move(2)
				return EllipsisToken, l.r.Shift()
			}
			return DotToken, l.r.Shift()
		}
	case '\'', '"':
		if l.consumeStringToken() {
			return StringToken, l.r.Shift()
		}
		return ErrorToken, nil
	case ' ', '\t', '\v', '\f':
		l.r.Move(1)
		for l.consumeWhitespaceByte() || l.consumeWhitespaceRune() {
		}
		l.prevLineTerminator = prevLineTerminator
		return WhitespaceToken, l.r.Shift()
	case '\n', '\r':
		l.r.Move(1)
		for l.consumeLineTerminator() {
		}
		l.prevLineTerminator = true
		return LineTerminatorToken, l.r.Shift()
	case '`':
		if hasFeature(l.version, FeatureTemplates) {
			l.templateLevels = append(l.templateLevels, l.level)
			if tt := l.consumeTemplateToken(); tt != ErrorToken {
				return tt, l.r.Shift()
			}
			return ErrorToken, nil
		}
	case '#':
		if l.hashbang && l.r.Offset() == 0 && l.r.Peek(1) == '!' {
			l.r.Move(2)
			l.consumeSingleLineComment()
			l.prevLineTerminator = prevLineTerminator
			return SingleLineCommentToken, l.r.Shift()
		} else if hasFeature(l.version, FeaturePrivateNames) {
			l.r.Move(1)
			if tt := l.consumeIdentifierToken(); tt != ErrorToken {
				return PrivateIdentifierToken, l.r.Shift()
			} else if l.err != nil {
				return ErrorToken, nil
			}
			l.r.Move(-1)
		}
	default:
		if tt := l.consumeIdentifierToken(); tt != ErrorToken {
			return tt, l.r.Shift()
		} else if l.err != nil {
			return ErrorToken, nil
		} else if c >= 0xC0 {
			if l.consumeWhitespaceByte() || l.consumeWhitespaceRune() {
				for l.consumeWhitespaceByte() || l.consumeWhitespaceRune() {
				}
				l.prevLineTerminator = prevLineTerminator
				return WhitespaceToken, l.r.Shift()
			} else if l.consumeLineTerminator() {
				for l.consumeLineTerminator() {
				}
				l.prevLineTerminator = true
				return LineTerminatorToken, l.r.Shift()
			}
		} else if c == 0 && l.r.EOF() {
			return ErrorToken, nil
		}
	}

	r, n := l.r.PeekRune(0)
	if n == 1 && r < 0x80 {
		l.fail(l.r.Offset(), "Unexpected character '%c'", c)
	} else {
		l.fail(l.r.Offset(), "Unexpected character '%U'", r)
	}
	return ErrorToken, nil
}

////////////////////////////////////////////////////////////////

/*
The following functions follow the specifications at https://tc39.es/ecma262/#sec-ecmascript-language-lexical-grammar
*/

func (l *Lexer) consumeWhitespaceByte() bool {
	c := l.r.Peek(0)
	if c == ' ' || c == '\t' || c == '\v' || c == '\f' {
		l.r.Move(1)
		return true
	}
	return false
}

func (l *Lexer) consumeWhitespaceRune() bool {
	c := l.r.Peek(0)
	if c >= 0xC0 {
		if r, n := l.r.PeekRune(0); r == '\u00A0' || r == '\uFEFF' || unicode.Is(unicode.Zs, r) {
			l.r.Move(n)
			return true
		}
	}
	return false
}

func (l *Lexer) consumeLineTerminator() bool {
	if n := esparse.LineTerminatorLen(l.r.Bytes()[l.r.Offset():]); n != 0 {
		l.r.Move(n)
		return true
	}
	return false
}

func (l *Lexer) isLineTerminator() bool {
	c := l.r.Peek(0)
	return c == '\n' || c == '\r' || c == 0xE2 && l.r.Peek(1) == 0x80 && (l.r.Peek(2) == 0xA8 || l.r.Peek(2) == 0xA9)
}

func (l *Lexer) consumeHexDigit() bool {
	if c := l.r.Peek(0); (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
		l.r.Move(1)
		return true
	}
	return false
}

func (l *Lexer) consumeUnicodeEscape() bool {
	if l.r.Peek(0) != '\\' || l.r.Peek(1) != 'u' {
		return false
	}
	mark := l.r.Pos()
	l.r.Move(2)
	if c := l.r.Peek(0); c == '{' {
		l.r.Move(1)
		if l.consumeHexDigit() {
			for l.consumeHexDigit() {
			}
			if c := l.r.Peek(0); c == '}' {
				l.r.Move(1)
				return true
			}
		}
		l.r.Rewind(mark)
		return false
	} else if !l.consumeHexDigit() || !l.consumeHexDigit() || !l.consumeHexDigit() || !l.consumeHexDigit() {
		l.r.Rewind(mark)
		return false
	}
	return true
}

func (l *Lexer) consumeSingleLineComment() {
	for !l.isLineTerminator() && !l.r.EOF() {
		l.r.Move(1)
	}
}

// isIdentifierStart returns true when an identifier (or escape) starts at the current position.
func (l *Lexer) isIdentifierStart() bool {
	c := l.r.Peek(0)
	if c == '\\' {
		return true
	} else if c < 0xC0 {
		return identifierTable[c] && (c < '0' || c > '9')
	}
	r, _ := l.r.PeekRune(0)
	return unicode.IsOneOf(identifierStart, r)
}

////////////////////////////////////////////////////////////////

func (l *Lexer) consumeHTMLLikeCommentToken(prevLineTerminator bool) bool {
	if l.module {
		return false
	}
	c := l.r.Peek(0)
	if c == '<' && l.r.Peek(1) == '!' && l.r.Peek(2) == '-' && l.r.Peek(3) == '-' {
		// opening HTML-style single line comment
		l.r.Move(4)
		l.consumeSingleLineComment()
		return true
	} else if prevLineTerminator && c == '-' && l.r.Peek(1) == '-' && l.r.Peek(2) == '>' {
		// closing HTML-style single line comment
		// (only if current line didn't contain any meaningful tokens)
		l.r.Move(3)
		l.consumeSingleLineComment()
		return true
	}
	return false
}

func (l *Lexer) consumeCommentToken() TokenType {
	c := l.r.Peek(1)
	if c == '/' {
		// single line comment
		l.r.Move(2)
		l.consumeSingleLineComment()
		return SingleLineCommentToken
	} else if c == '*' {
		// block comment (potentially multiline)
		start := l.r.Offset()
		tt := SingleLineCommentToken
		l.r.Move(2)
		for {
			c := l.r.Peek(0)
			if c == '*' && l.r.Peek(1) == '/' {
				l.r.Move(2)
				break
			} else if l.r.EOF() {
				l.fail(start, "Unterminated comment")
				return ErrorToken
			} else if l.consumeLineTerminator() {
				tt = MultiLineCommentToken
				l.prevLineTerminator = true
			} else {
				l.r.Move(1)
			}
		}
		return tt
	}
	return ErrorToken
}

var opTokens = map[byte]TokenType{
	'=': EqToken,
	'!': NotToken,
	'<': LtToken,
	'>': GtToken,
	'+': AddToken,
	'-': SubToken,
	'*': MulToken,
	'/': DivToken,
	'%': ModToken,
	'&': BitAndToken,
	'|': BitOrToken,
	'^': BitXorToken,
	'?': QuestionToken,
}

var opEqTokens = map[byte]TokenType{
	'=': EqEqToken,
	'!': NotEqToken,
	'<': LtEqToken,
	'>': GtEqToken,
	'+': AddEqToken,
	'-': SubEqToken,
	'*': MulEqToken,
	'/': DivEqToken,
	'%': ModEqToken,
	'&': BitAndEqToken,
	'|': BitOrEqToken,
	'^': BitXorEqToken,
}

var opOpTokens = map[byte]TokenType{
	'+': IncrToken,
	'-': DecrToken,
	'*': ExpToken,
	'&': AndToken,
	'|': OrToken,
	'?': NullishToken,
}

var opOpEqTokens = map[byte]TokenType{
	'*': ExpEqToken,
	'&': AndEqToken,
	'|': OrEqToken,
	'?': NullishEqToken,
}

func (l *Lexer) consumeOperatorToken() TokenType {
	c := l.r.Peek(0)
	l.r.Move(1)
	if c == '?' {
		if l.r.Peek(0) == '.' && (l.r.Peek(1) < '0' || '9' < l.r.Peek(1)) && hasFeature(l.version, FeatureOptionalChaining) {
			l.r.Move(1)
			return OptChainToken
		} else if l.r.Peek(0) != '?' || !hasFeature(l.version, FeatureNullishCoalescing) {
			return QuestionToken
		}
	}
	if l.r.Peek(0) == '=' {
		l.r.Move(1)
		if l.r.Peek(0) == '=' && (c == '!' || c == '=') {
			l.r.Move(1)
			if c == '!' {
				return NotEqEqToken
			}
			return EqEqEqToken
		}
		return opEqTokens[c]
	} else if l.r.Peek(0) == c && (c == '+' || c == '-' || c == '&' || c == '|' || c == '?' || c == '*' && hasFeature(l.version, FeatureExponentiation)) {
		l.r.Move(1)
		if l.r.Peek(0) == '=' && (c == '*' || hasFeature(l.version, FeatureLogicalAssignment)) {
			if tt, ok := opOpEqTokens[c]; ok {
				l.r.Move(1)
				return tt
			}
		}
		return opOpTokens[c]
	} else if c == '=' && l.r.Peek(0) == '>' && hasFeature(l.version, FeatureArrowFunctions) {
		l.r.Move(1)
		return ArrowToken
	} else if c == '<' && l.r.Peek(0) == '<' {
		l.r.Move(1)
		if l.r.Peek(0) == '=' {
			l.r.Move(1)
			return LtLtEqToken
		}
		return LtLtToken
	} else if c == '>' && l.r.Peek(0) == '>' {
		l.r.Move(1)
		if l.r.Peek(0) == '>' {
			l.r.Move(1)
			if l.r.Peek(0) == '=' {
				l.r.Move(1)
				return GtGtGtEqToken
			}
			return GtGtGtToken
		} else if l.r.Peek(0) == '=' {
			l.r.Move(1)
			return GtGtEqToken
		}
		return GtGtToken
	}
	return opTokens[c]
}

// consumeIdentifierToken consumes an identifier name including unicode escapes, keywords are resolved by the tokenizer.
func (l *Lexer) consumeIdentifierToken() TokenType {
	c := l.r.Peek(0)
	if identifierTable[c] && (c < '0' || c > '9') {
		if c >= 0xC0 {
			if r, n := l.r.PeekRune(0); unicode.IsOneOf(identifierStart, r) {
				l.r.Move(n)
			} else {
				return ErrorToken
			}
		} else {
			l.r.Move(1)
		}
	} else if c == '\\' {
		if !l.consumeUnicodeEscape() {
			l.fail(l.r.Offset(), "Expecting Unicode escape sequence \\uXXXX")
			return ErrorToken
		}
	} else {
		return ErrorToken
	}
	for {
		c := l.r.Peek(0)
		if identifierTable[c] {
			if c >= 0xC0 {
				if r, n := l.r.PeekRune(0); r == '\u200C' || r == '\u200D' || unicode.IsOneOf(identifierContinue, r) {
					l.r.Move(n)
				} else {
					break
				}
			} else {
				l.r.Move(1)
			}
		} else if c == '\\' {
			if !l.consumeUnicodeEscape() {
				l.fail(l.r.Offset(), "Expecting Unicode escape sequence \\uXXXX")
				return ErrorToken
			}
		} else {
			break
		}
	}
	return IdentifierToken
}

// consumeDigits consumes digits of the given radix with optional numeric separators, it returns false if no digit was consumed.
func (l *Lexer) consumeDigits(radix int, legacyOctal bool) bool {
	separators := hasFeature(l.version, FeatureNumericSeparators)
	digits := 0
	last := byte(0)
	for {
		c := l.r.Peek(0)
		if c == '_' && separators {
			if legacyOctal {
				l.fail(l.r.Offset(), "Numeric separator is not allowed in legacy octal like literals")
			} else if last == '_' {
				l.fail(l.r.Offset(), "Numeric separator must be exactly one underscore")
			} else if digits == 0 {
				l.fail(l.r.Offset(), "Numeric separator is not allowed at the first of digits")
			}
			if l.err != nil {
				return false
			}
			last = c
			l.r.Move(1)
			continue
		}
		if digitValue(c) >= radix {
			break
		}
		last = c
		digits++
		l.r.Move(1)
	}
	if last == '_' {
		l.fail(l.r.Offset()-1, "Numeric separator is not allowed at the last of digits")
		return false
	}
	return digits != 0
}

func digitValue(c byte) int {
	if '0' <= c && c <= '9' {
		return int(c - '0')
	} else if 'a' <= c && c <= 'z' {
		return int(c-'a') + 10
	} else if 'A' <= c && c <= 'Z' {
		return int(c-'A') + 10
	}
	return 36
}

func (l *Lexer) consumeNumericToken() TokenType {
	// assume to be on 0 1 2 3 4 5 6 7 8 9 .
	start := l.r.Offset()
	mark := l.r.Pos()
	c := l.r.Peek(0)
	if c == '.' {
		if d := l.r.Peek(1); d < '0' || '9' < d {
			return ErrorToken
		}
		l.r.Move(1)
		if !l.consumeDigits(10, false) {
			return ErrorToken
		}
	} else {
		if c == '0' {
			radix := 0
			switch l.r.Peek(1) {
			case 'x', 'X':
				radix = 16
			case 'o', 'O':
				if hasFeature(l.version, FeatureBinaryOctalLiterals) {
					radix = 8
				}
			case 'b', 'B':
				if hasFeature(l.version, FeatureBinaryOctalLiterals) {
					radix = 2
				}
			}
			if radix != 0 {
				l.r.Move(2)
				if !l.consumeDigits(radix, false) {
					if l.err == nil {
						l.fail(start+2, "Expected number in radix %d", radix)
					}
					return ErrorToken
				}
				tt := NumericToken
				if l.r.Peek(0) == 'n' && hasFeature(l.version, FeatureBigInt) {
					l.r.Move(1)
					tt = BigIntToken
				}
				return l.finishNumericToken(tt)
			}
		}
		if !l.consumeDigits(10, c == '0') {
			l.r.Rewind(mark)
			return ErrorToken
		}

		octal := 2 <= l.r.Pos()-mark && c == '0'
		if !octal && l.r.Peek(0) == 'n' && hasFeature(l.version, FeatureBigInt) {
			l.r.Move(1)
			return l.finishNumericToken(BigIntToken)
		} else if octal {
			for _, d := range l.r.Lexeme()[mark:] {
				if d == '8' || d == '9' {
					octal = false // legacy decimal such as 09
					break
				}
			}
			if octal {
				return l.finishNumericToken(NumericToken)
			}
		}
		if l.r.Peek(0) == '.' {
			l.r.Move(1)
			l.consumeDigits(10, false)
			if l.err != nil {
				return ErrorToken
			}
		}
	}
	if c := l.r.Peek(0); c == 'e' || c == 'E' {
		l.r.Move(1)
		if c := l.r.Peek(0); c == '+' || c == '-' {
			l.r.Move(1)
		}
		if !l.consumeDigits(10, false) {
			if l.err == nil {
				l.fail(start, "Invalid number")
			}
			return ErrorToken
		}
	}
	return l.finishNumericToken(NumericToken)
}

func (l *Lexer) finishNumericToken(tt TokenType) TokenType {
	if l.err != nil {
		return ErrorToken
	} else if l.isIdentifierStart() {
		l.fail(l.r.Offset(), "Identifier directly after number")
		return ErrorToken
	}
	return tt
}

func (l *Lexer) consumeStringToken() bool {
	// assume to be on ' or "
	start := l.r.Offset()
	delim := l.r.Peek(0)
	l.r.Move(1)
	for {
		c := l.r.Peek(0)
		if c == delim {
			l.r.Move(1)
			break
		} else if c == '\\' {
			l.r.Move(1)
			if !l.consumeLineTerminator() {
				if _, n := l.r.PeekRune(0); n != 0 {
					l.r.Move(n)
				}
			}
			continue
		} else if c == '\n' || c == '\r' || l.r.EOF() {
			l.fail(start, "Unterminated string constant")
			return false
		} else if l.isLineTerminator() {
			// U+2028 and U+2029 are allowed in strings since ES2019
			if !hasFeature(l.version, FeatureJSONSuperset) {
				l.fail(start, "Unterminated string constant")
				return false
			}
			l.r.Move(3)
			continue
		}
		l.r.Move(1)
	}
	return true
}

// regExpFlags returns the valid regular expression flags for the version.
func regExpFlags(version Version) string {
	flags := "gim"
	if hasFeature(version, FeatureRegExpUnicodeSticky) {
		flags += "uy"
	}
	if hasFeature(version, FeatureRegExpDotAll) {
		flags += "s"
	}
	if hasFeature(version, FeatureRegExpIndices) {
		flags += "d"
	}
	return flags
}

func (l *Lexer) consumeRegExpToken() bool {
	// assume to be on /
	start := l.r.Offset()
	l.r.Move(1)
	inClass := false
	for {
		c := l.r.Peek(0)
		if !inClass && c == '/' {
			l.r.Move(1)
			break
		} else if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '\\' {
			l.r.Move(1)
			if l.isLineTerminator() || l.r.EOF() {
				l.fail(start, "Unterminated regular expression")
				return false
			}
		} else if l.isLineTerminator() || l.r.EOF() {
			l.fail(start, "Unterminated regular expression")
			return false
		}
		l.r.Move(1)
	}

	// flags
	valid := regExpFlags(l.version)
	var seen [128]bool
	for {
		c := l.r.Peek(0)
		if c == '\\' {
			l.fail(l.r.Offset(), "Invalid regular expression flag")
			return false
		} else if !identifierTable[c] {
			break
		} else if c >= 0xC0 {
			if r, _ := l.r.PeekRune(0); r == '\u200C' || r == '\u200D' || unicode.IsOneOf(identifierContinue, r) {
				l.fail(start, "Invalid regular expression flag")
				return false
			}
			break
		}
		validFlag := false
		for i := 0; i < len(valid); i++ {
			if valid[i] == c {
				validFlag = true
			}
		}
		if !validFlag || seen[c] {
			l.fail(start, "Invalid regular expression flag")
			return false
		}
		seen[c] = true
		l.r.Move(1)
	}
	return true
}

func (l *Lexer) consumeTemplateToken() TokenType {
	// assume to be on ` or } when already within template
	start := l.r.Offset()
	continuation := l.r.Peek(0) == '}'
	l.r.Move(1)
	for {
		c := l.r.Peek(0)
		if c == '`' {
			l.templateLevels = l.templateLevels[:len(l.templateLevels)-1]
			l.r.Move(1)
			if continuation {
				return TemplateEndToken
			}
			return TemplateToken
		} else if c == '$' && l.r.Peek(1) == '{' {
			l.level++
			l.r.Move(2)
			if continuation {
				return TemplateMiddleToken
			}
			return TemplateStartToken
		} else if c == '\\' {
			l.r.Move(1)
			if _, n := l.r.PeekRune(0); n != 0 {
				l.r.Move(n)
			}
			continue
		} else if l.r.EOF() {
			l.fail(start, "Unterminated template")
			return ErrorToken
		}
		l.r.Move(1)
	}
}

var identifierTable = [256]bool{
	// ASCII
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, true, false, false, false, // $
	false, false, false, false, false, false, false, false,
	true, true, true, true, true, true, true, true, // 0, 1, 2, 3, 4, 5, 6, 7
	true, true, false, false, false, false, false, false, // 8, 9

	false, true, true, true, true, true, true, true, // A, B, C, D, E, F, G
	true, true, true, true, true, true, true, true, // H, I, J, K, L, M, N, O
	true, true, true, true, true, true, true, true, // P, Q, R, S, T, U, V, W
	true, true, true, false, false, false, false, true, // X, Y, Z, _

	false, true, true, true, true, true, true, true, // a, b, c, d, e, f, g
	true, true, true, true, true, true, true, true, // h, i, j, k, l, m, n, o
	true, true, true, true, true, true, true, true, // p, q, r, s, t, u, v, w
	true, true, true, false, false, false, false, false, // x, y, z

	// non-ASCII
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,

	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
}
