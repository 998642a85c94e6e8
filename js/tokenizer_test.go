package js

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdewolff/test"
)

func tokenize(t *testing.T, src string, opts Options) []Token {
	tz, err := Tokenize([]byte(src), opts)
	require.NoError(t, err)
	tokens := []Token{}
	for {
		tok, err := tz.Next()
		require.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.Type == EOFToken {
			return tokens
		}
	}
}

func TestTokenizer(t *testing.T) {
	var tests = []struct {
		js       string
		version  Version
		expected []TokenType
	}{
		{"a = /b/g; c / d", Latest, []TokenType{IdentifierToken, EqToken, RegExpToken, SemicolonToken, IdentifierToken, DivToken, IdentifierToken, EOFToken}},
		{"(a) / b", Latest, []TokenType{OpenParenToken, IdentifierToken, CloseParenToken, DivToken, IdentifierToken, EOFToken}},
		{"x = a++ / 2", Latest, []TokenType{IdentifierToken, EqToken, IdentifierToken, IncrToken, DivToken, NumericToken, EOFToken}},
		{"return /=/", Latest, []TokenType{ReturnToken, RegExpToken, EOFToken}},
		{"if (x) return", Latest, []TokenType{IfToken, OpenParenToken, IdentifierToken, CloseParenToken, ReturnToken, EOFToken}},
		{"let class", ES5, []TokenType{IdentifierToken, IdentifierToken, EOFToken}},
		{"let class", ES2015, []TokenType{IdentifierToken, ClassToken, EOFToken}},
		{"`a${b}c`", Latest, []TokenType{TemplateStartToken, IdentifierToken, TemplateEndToken, EOFToken}},
		{"/* a */ b // c", Latest, []TokenType{IdentifierToken, EOFToken}},
		{"", Latest, []TokenType{EOFToken}},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			tokens := tokenize(t, tt.js, Options{EcmaVersion: tt.version})
			types := []TokenType{}
			for _, tok := range tokens {
				types = append(types, tok.Type)
			}
			test.T(t, types, tt.expected)
		})
	}
}

func TestTokenizerRegExpContext(t *testing.T) {
	var tests = []struct {
		js       string
		expected []TokenType
	}{
		{"if (a) /'/.test(b)", []TokenType{IfToken, OpenParenToken, IdentifierToken, CloseParenToken, RegExpToken, DotToken, IdentifierToken, OpenParenToken, IdentifierToken, CloseParenToken, EOFToken}},
		{"while (a) /b/g", []TokenType{WhileToken, OpenParenToken, IdentifierToken, CloseParenToken, RegExpToken, EOFToken}},
		{"function f(){}\n/'/.test(b)", []TokenType{FunctionToken, IdentifierToken, OpenParenToken, CloseParenToken, OpenBraceToken, CloseBraceToken, RegExpToken, DotToken, IdentifierToken, OpenParenToken, IdentifierToken, CloseParenToken, EOFToken}},
		{"{}\n/a/", []TokenType{OpenBraceToken, CloseBraceToken, RegExpToken, EOFToken}},
		{"x = {}\n/a/g", []TokenType{IdentifierToken, EqToken, OpenBraceToken, CloseBraceToken, DivToken, IdentifierToken, DivToken, IdentifierToken, EOFToken}},
		{"x = function(){} / 2", []TokenType{IdentifierToken, EqToken, FunctionToken, OpenParenToken, CloseParenToken, OpenBraceToken, CloseBraceToken, DivToken, NumericToken, EOFToken}},
		{"a.if / 2", []TokenType{IdentifierToken, DotToken, IfToken, DivToken, NumericToken, EOFToken}},
		{"function* g() { yield /a/ }", []TokenType{FunctionToken, MulToken, IdentifierToken, OpenParenToken, CloseParenToken, OpenBraceToken, IdentifierToken, RegExpToken, CloseBraceToken, EOFToken}},
		{"for (const a of /b/g) ;", []TokenType{ForToken, OpenParenToken, ConstToken, IdentifierToken, IdentifierToken, RegExpToken, CloseParenToken, SemicolonToken, EOFToken}},
		{"`${a}` / 2", []TokenType{TemplateStartToken, IdentifierToken, TemplateEndToken, DivToken, NumericToken, EOFToken}},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			tokens := tokenize(t, tt.js, Options{EcmaVersion: Latest})
			types := []TokenType{}
			for _, tok := range tokens {
				types = append(types, tok.Type)
			}
			test.T(t, types, tt.expected)
		})
	}
}

func TestTokenValue(t *testing.T) {
	tokens := tokenize(t, "'a\\x41' \\u0061b #p `x\\ty${z}`", Options{EcmaVersion: Latest})
	require.Len(t, tokens, 7)
	test.T(t, tokens[0].Value, "aA")
	test.T(t, tokens[1].Value, "ab")
	test.T(t, tokens[1].Escaped, true)
	test.String(t, string(tokens[1].Data), "\\u0061b")
	test.T(t, tokens[2].Type, PrivateIdentifierToken)
	test.T(t, tokens[2].Value, "p")
	test.T(t, tokens[3].Value, "x\ty")
	test.T(t, tokens[3].Start, 19)
	test.T(t, tokens[4].Value, "z")
	test.T(t, tokens[4].Is("z"), true)
	test.T(t, tokens[1].Is("ab"), false)
}

func TestTokenNewline(t *testing.T) {
	tokens := tokenize(t, "a\nb /*\n*/ c d", Options{})
	require.Len(t, tokens, 5)
	test.T(t, tokens[0].NewlineBefore, false)
	test.T(t, tokens[1].NewlineBefore, true)
	test.T(t, tokens[2].NewlineBefore, true)
	test.T(t, tokens[3].NewlineBefore, false)
}

func TestTokenLocations(t *testing.T) {
	tokens := tokenize(t, "a\n bc", Options{Locations: true, SourceFile: "file.js"})
	require.Len(t, tokens, 3)
	test.T(t, *tokens[1].Loc, SourceLocation{Start: Position{2, 1}, End: Position{2, 3}, Source: "file.js"})
	test.T(t, tokens[2].Start, 5)

	tokens = tokenize(t, "a", Options{})
	test.That(t, tokens[0].Loc == nil, "no location")
}

func TestTokenizerEOF(t *testing.T) {
	n := 0
	tz, err := Tokenize([]byte("a"), Options{
		OnToken: func(Token) error {
			n++
			return nil
		},
	})
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err = tz.Next()
		require.NoError(t, err)
	}
	tok, err := tz.Next()
	require.NoError(t, err)
	test.T(t, tok.Type, EOFToken)
	test.T(t, tok.String(), "EOF")
	test.T(t, n, 2)
}

func TestTokenizerReset(t *testing.T) {
	tz, err := Tokenize([]byte("a / b; /c/"), Options{})
	require.NoError(t, err)
	tz.Reset(7)
	tok, err := tz.Next()
	require.NoError(t, err)
	test.T(t, tok.Type, RegExpToken)
	test.T(t, tok.Start, 7)
	test.String(t, string(tok.Data), "/c/")
}

func TestTokenizerComments(t *testing.T) {
	texts := []string{}
	tz, err := Tokenize([]byte("#!hash\n/*a*/ b //c\n<!--d\n-->e"), Options{
		EcmaVersion: Latest,
		OnComment: func(block bool, text string, start, end int, startLoc, endLoc *Position) error {
			texts = append(texts, text)
			return nil
		},
	})
	require.NoError(t, err)
	for {
		tok, err := tz.Next()
		require.NoError(t, err)
		if tok.Type == EOFToken {
			break
		}
	}
	test.T(t, texts, []string{"hash", "a", "c", "d", "e"})
}

func TestTokenizerError(t *testing.T) {
	var tests = []struct {
		js   string
		opts Options
		err  string
	}{
		{"a = 'abc", Options{}, "Unterminated string constant (1:4)"},
		{"\\u0069f", Options{}, "Escape sequence in keyword if (1:0)"},
		{"a\n  08", Options{EcmaVersion: Latest, SourceType: Module}, "Invalid number (2:2)"},
		{"'\\01'", Options{EcmaVersion: Latest, SourceType: Module}, "Octal literal in strict mode (1:1)"},
		{"`\\01`", Options{EcmaVersion: ES2015}, "Octal literal in template string (1:1)"},
		{"\\u0031", Options{}, "Invalid Unicode escape (1:0)"},
		{"\\u{61}", Options{EcmaVersion: ES5}, "Invalid Unicode escape (1:0)"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			tz, err := Tokenize([]byte(tt.js), tt.opts)
			require.NoError(t, err)
			for {
				var tok Token
				if tok, err = tz.Next(); err != nil || tok.Type == EOFToken {
					break
				}
			}
			require.Error(t, err)
			test.String(t, err.Error(), tt.err)
		})
	}

	tz, _ := Tokenize([]byte("'abc"), Options{})
	_, err := tz.Next()
	var lexErr *LexError
	test.That(t, errors.As(err, &lexErr), "lexical errors wrap a LexError")
	test.T(t, lexErr.Offset, 0)

	_, err = Tokenize(nil, Options{EcmaVersion: 4})
	var cfgErr *ConfigError
	test.That(t, errors.As(err, &cfgErr), "invalid options return a ConfigError")
}

func TestTokenCallbackError(t *testing.T) {
	stop := errors.New("stop")
	tz, err := Tokenize([]byte("a b"), Options{
		OnToken: func(tok Token) error {
			if tok.Start == 2 {
				return stop
			}
			return nil
		},
	})
	require.NoError(t, err)
	_, err = tz.Next()
	require.NoError(t, err)
	_, err = tz.Next()
	test.T(t, err, stop)
}
