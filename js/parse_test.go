package js

import (
	"errors"
	"math/big"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/test"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{"{}", "Stmt({ })"},
		{";", "Stmt()"},
		{"var a = b;", "Decl(var a = b)"},
		{"var a, b = 1", "Decl(var a, b = 1)"},
		{"let [a, b] = [1, 2];", "Decl(let [a, b] = [1, 2])"},
		{"let [, , c] = x;", "Decl(let [, , c] = x)"},
		{"let {a, b: [c]} = x;", "Decl(let {a, b: [c]} = x)"},
		{"const {a = 1, ...b} = x;", "Decl(const {a = 1, ...b} = x)"},
		{"var a = 5 * 4 / 3 ** 2 + (5 - 3);", "Decl(var a = (((5 * 4) / (3 ** 2)) + (5 - 3)))"},
		{"a = b ? c : d", "Stmt((a = (b ? c : d)))"},
		{"a = b = c", "Stmt((a = (b = c)))"},
		{"a += 1, b", "Stmt(((a += 1), b))"},
		{"a ?? (b || c)", "Stmt((a ?? (b || c)))"},
		{"a || b && c", "Stmt((a || (b && c)))"},
		{"a = b ** -c", "Stmt((a = (b ** (-c))))"},
		{"(-a) ** b", "Stmt(((-a) ** b))"},
		{"typeof a === 'b'", "Stmt(((typeof a) === 'b'))"},
		{"!a && -b", "Stmt(((!a) && (-b)))"},
		{"a.b.c = d[e]", "Stmt((a.b.c = d[e]))"},
		{"a?.b.c()", "Stmt(a?.b.c())"},
		{"a?.[b]?.(c)", "Stmt(a?.[b]?.(c))"},
		{"new a.b(c)", "Stmt((new a.b(c)))"},
		{"new a", "Stmt((new a()))"},
		{"f(...a, b)", "Stmt(f(...a, b))"},
		{"import('m').then(f)", "Stmt(import('m').then(f))"},
		{"a\n++b", "Stmt(a) Stmt((++b))"},

		// functions
		{"a => b", "Stmt(((a) => b))"},
		{"(a, b) => {}", "Stmt(((a, b) => Stmt({ })))"},
		{"x = async (a, b) => a + b", "Stmt((x = (async (a, b) => (a + b))))"},
		{"x = function () {}", "Stmt((x = function() Stmt({ })))"},
		{"function* g() { yield* a; yield; }", "Decl(function* g() Stmt({ Stmt((yield* a)) Stmt((yield)) }))"},
		{"async function f() { await x; }", "Decl(async function f() Stmt({ Stmt((await x)) }))"},

		// literals
		{"/ab+c/gi.test(s)", "Stmt(/ab+c/gi.test(s))"},
		{"a / b / c", "Stmt(((a / b) / c))"},
		{"a\n/b/g", "Stmt(((a / b) / g))"},
		{"x = /=/", "Stmt((x = /=/))"},
		{"`a${b}c`", "Stmt(`a${b}c`)"},
		{"tag`a${b}`", "Stmt(tag`a${b}`)"},
		{"[a, , b] = c", "Stmt(([a, , b] = c))"},
		{"({a = 1} = b)", "Stmt(({a = 1} = b))"},
		{"({a, b: c, [d]: e, f() {}, get g() {}, ...h})", "Stmt({a, b: c, [d]: e, f() Stmt({ }), get g() Stmt({ }), ...h})"},
		{"x = {async *gen() {}, async() {}}", "Stmt((x = {async *gen() Stmt({ }), async() Stmt({ })}))"},

		// statements
		{"label: for (;;) break label;", "Stmt(label: Stmt(for ; ; Stmt(break label)))"},
		{"for (var i = 0; i < 1; i++) {}", "Stmt(for Decl(var i = 0) ; (i < 1) ; (i++) Stmt({ }))"},
		{"for (const a of b) ;", "Stmt(for Decl(const a) of b Stmt())"},
		{"for (a in b) {}", "Stmt(for a in b Stmt({ }))"},
		{"if (a) b; else c", "Stmt(if a Stmt(b) else Stmt(c))"},
		{"try {} catch {} finally {}", "Stmt(try Stmt({ }) catch Stmt({ }) finally Stmt({ }))"},
		{"try {} catch (e) {}", "Stmt(try Stmt({ }) catch e Stmt({ }))"},
		{"switch (a) { case 1: b; default: }", "Stmt(switch a Clause(case 1 Stmt(b)) Clause(default))"},
		{"do x; while (y)", "Stmt(do Stmt(x) while y)"},
		{"while (a) b++", "Stmt(while a Stmt((b++)))"},

		// classes
		{"class A extends B { constructor() { super(); } static #x = 1; get y() {} static {} }", "Decl(class A extends B { Method(constructor() Stmt({ Stmt(super()) })) Field(static #x = 1) Method(get y() Stmt({ })) Static({ }) })"},
		{"x = class { #a; has(o) { return #a in o; } }", "Stmt((x = (class { Field(#a) Method(has(o) Stmt({ Stmt(return (#a in o)) })) })))"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			ast, err := Parse([]byte(tt.js), Options{EcmaVersion: Latest})
			if err != nil {
				t.Fatal("error:", err)
			}
			test.String(t, ast.String(), tt.expected)
		})
	}
}

func TestParseModule(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{"import a, {b as c, d} from 'm';", "Decl(import a, {b as c, d} from 'm')"},
		{"import * as ns from 'm'", "Decl(import * as ns from 'm')"},
		{"import 'm'", "Decl(import 'm')"},
		{"export default function () {}", "Decl(export default Decl(function() Stmt({ })))"},
		{"export {a as b, c}; var a, c;", "Decl(export {a as b, c}) Decl(var a, c)"},
		{"export * as ns from 'm'", "Decl(export * as ns from 'm')"},
		{"export const a = 1", "Decl(export Decl(const a = 1))"},
		{"await x", "Stmt((await x))"},
		{"x = import.meta.url", "Stmt((x = import.meta.url))"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			ast, err := Parse([]byte(tt.js), Options{EcmaVersion: Latest, SourceType: Module})
			if err != nil {
				t.Fatal("error:", err)
			}
			test.String(t, ast.String(), tt.expected)
		})
	}
}

func TestParseError(t *testing.T) {
	var tests = []struct {
		js   string
		opts Options
		err  string
	}{
		{"var class = 1;", Options{EcmaVersion: ES5}, "The keyword 'class' is reserved (1:4)"},
		{"return 1;", Options{}, "'return' outside of function (1:0)"},
		{"a ?? b || c", Options{EcmaVersion: Latest}, "Logical expressions and coalesce expressions cannot be mixed. Wrap either by parentheses (1:7)"},
		{"({a = 1})", Options{EcmaVersion: Latest}, "Shorthand property assignments are valid only in destructuring patterns (1:4)"},
		{"`\\unicode`", Options{EcmaVersion: Latest}, "Bad escape sequence in untagged template literal (1:1)"},
		{"'use strict'; with (a) {}", Options{}, "'with' in strict mode (1:14)"},
		{"function f() { 'use strict'; var eval; }", Options{}, "Binding eval in strict mode (1:33)"},
		{"super()", Options{EcmaVersion: Latest}, "'super' keyword outside a method (1:0)"},
		{"new.target", Options{EcmaVersion: Latest}, "'new.target' can only be used in functions and class static block (1:0)"},
		{"import.meta", Options{EcmaVersion: Latest}, "Cannot use 'import.meta' outside a module (1:0)"},
		{"class A { #a; m() { this.#b } }", Options{EcmaVersion: Latest}, "Private field '#b' must be declared in an enclosing class (1:25)"},
		{"let let = 1", Options{EcmaVersion: Latest}, "let is disallowed as a lexically bound name (1:4)"},
		{"a?.b = 1", Options{EcmaVersion: Latest}, "Optional chaining cannot appear in left-hand side (1:0)"},
		{"f() = 1", Options{EcmaVersion: Latest}, "Assigning to rvalue (1:0)"},
		{"({a: 1} = 2)", Options{EcmaVersion: Latest}, "Assigning to rvalue (1:5)"},
		{"[...a, b] = c", Options{EcmaVersion: Latest}, "Comma is not permitted after the rest element (1:5)"},
		{"x = {get a(b) {}}", Options{}, "getter should have no params (1:10)"},
		{"label: label: ;", Options{}, "Label 'label' is already declared (1:7)"},
		{"break;", Options{}, "Unsyntactic break (1:0)"},
		{"for await (x of y);", Options{EcmaVersion: Latest}, "Unexpected token (1:4)"},
		{"({__proto__: a, __proto__: b})", Options{EcmaVersion: Latest}, "Redefinition of __proto__ property (1:16)"},
		{"'use strict'; x = {a: 1, a: 2}", Options{EcmaVersion: ES5}, "Redefinition of property (1:25)"},
		{"x = 08", Options{EcmaVersion: Latest, SourceType: Module}, "Invalid number (1:4)"},
		{"delete x", Options{EcmaVersion: Latest, SourceType: Module}, "Deleting local variable in strict mode (1:0)"},
		{"yield = 1", Options{EcmaVersion: Latest, SourceType: Module}, "The keyword 'yield' is reserved (1:0)"},
		{"#!x\nvar a", Options{EcmaVersion: ES5}, "Unexpected character '#' (1:0)"},
		{"a\nb c", Options{}, "Unexpected token (2:2)"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			ast, err := Parse([]byte(tt.js), tt.opts)
			require.Error(t, err)
			test.That(t, ast == nil, "no tree on error")
			test.String(t, err.Error(), tt.err)

			var syntaxErr *SyntaxError
			test.That(t, errors.As(err, &syntaxErr), "must be a SyntaxError")
		})
	}
}

func TestParseVersionGating(t *testing.T) {
	var tests = []struct {
		js      string
		version Version
		ok      bool
	}{
		{"var class = 1;", ES3, true},
		{"var class = 1;", ES5, false},
		{"let a = 1", ES5, false},
		{"let a = 1", ES2015, true},
		{"async function f() {}", ES2016, false},
		{"async function f() {}", ES2017, true},
		{"({...a})", ES2017, false},
		{"({...a})", ES2018, true},
		{"try {} catch {}", ES2018, false},
		{"try {} catch {}", ES2019, true},
		{"class A { x = 1 }", ES2021, false},
		{"class A { x = 1 }", ES2022, true},
		{"`a`", ES5, false},
		{"`a`", ES2015, true},
	}
	for _, tt := range tests {
		t.Run(tt.version.String()+" "+tt.js, func(t *testing.T) {
			_, err := Parse([]byte(tt.js), Options{EcmaVersion: tt.version})
			test.T(t, err == nil, tt.ok, err)
		})
	}
}

func TestReturnOutsideFunction(t *testing.T) {
	_, err := Parse([]byte("return 1;"), Options{})
	test.That(t, err != nil)

	ast, err := Parse([]byte("return 1;"), Options{AllowReturnOutsideFunction: true})
	require.NoError(t, err)
	test.String(t, ast.String(), "Stmt(return 1)")
}

func TestHashBang(t *testing.T) {
	src := []byte("#!/usr/bin/env node\nvar a = 1;")
	ast, err := Parse(src, Options{EcmaVersion: ES2023})
	require.NoError(t, err)
	require.Len(t, ast.Body, 1)
	_, ok := ast.Body[0].(*VariableDeclaration)
	test.That(t, ok, "variable declaration")

	_, err = Parse(src, Options{EcmaVersion: ES5, AllowHashBang: On})
	require.NoError(t, err)

	_, err = Parse(src, Options{EcmaVersion: ES5})
	test.That(t, err != nil, "hashbang must fail in ES5")
}

func TestInsertedSemicolon(t *testing.T) {
	offsets := []int{}
	opts := Options{
		OnInsertedSemicolon: func(offset int, pos *Position) error {
			offsets = append(offsets, offset)
			test.That(t, pos == nil, "no position without locations")
			return nil
		},
	}
	ast, err := Parse([]byte("a\nb"), opts)
	require.NoError(t, err)
	test.T(t, len(ast.Body), 2)
	test.T(t, offsets, []int{1})
}

func TestTrailingComma(t *testing.T) {
	var tests = []struct {
		js      string
		offsets []int
	}{
		{"f(a, b,)", []int{6}},
		{"[a,]", []int{2}},
		{"({a: 1,})", []int{6}},
		{"function f(a,) {}", []int{12}},
		{"[a, b]", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			offsets := []int{}
			opts := Options{
				EcmaVersion: Latest,
				OnTrailingComma: func(offset int, _ *Position) error {
					offsets = append(offsets, offset)
					return nil
				},
			}
			_, err := Parse([]byte(tt.js), opts)
			require.NoError(t, err)
			test.T(t, offsets, tt.offsets)
		})
	}
}

func TestCallbackError(t *testing.T) {
	stop := errors.New("stop")
	_, err := Parse([]byte("a\nb"), Options{
		OnInsertedSemicolon: func(int, *Position) error {
			return stop
		},
	})
	test.T(t, err, stop)
}

func TestOnToken(t *testing.T) {
	tokens := []string{}
	_, err := Parse([]byte("a + /b/"), Options{
		OnToken: func(tok Token) error {
			tokens = append(tokens, tok.String())
			return nil
		},
	})
	require.NoError(t, err)
	test.T(t, tokens, []string{"Identifier('a')", "+('+')", "RegExp('/b/')", "EOF"})
}

func TestOnComment(t *testing.T) {
	type comment struct {
		block      bool
		text       string
		start, end int
	}
	comments := []comment{}
	_, err := Parse([]byte("a /* b */ // c\n"), Options{
		OnComment: func(block bool, text string, start, end int, _, _ *Position) error {
			comments = append(comments, comment{block, text, start, end})
			return nil
		},
	})
	require.NoError(t, err)
	test.T(t, comments, []comment{{true, " b ", 2, 9}, {false, " c", 10, 14}})
}

func TestMerge(t *testing.T) {
	program, err := Parse([]byte("a;b"), Options{SourceFile: "one.js", Locations: true})
	require.NoError(t, err)
	merged, err := Parse([]byte("c"), Options{Program: program, SourceFile: "two.js", Locations: true})
	require.NoError(t, err)
	test.That(t, merged == program, "same program")
	test.T(t, len(merged.Body), 3)
	test.T(t, merged.Body[0].Base().Loc.Source, "one.js")
	test.T(t, merged.Body[2].Base().Loc.Source, "two.js")
	test.T(t, merged.End, 1)

	// the program is left untouched on error
	_, err = Parse([]byte("d e"), Options{Program: program})
	test.That(t, err != nil)
	test.T(t, len(program.Body), 3)
}

func TestLocationsRanges(t *testing.T) {
	src := []byte("a;\nbc;")
	ast, err := Parse(src, Options{Locations: true})
	require.NoError(t, err)
	n := ast.Body[1].Base()
	test.T(t, *n.Loc, SourceLocation{Start: Position{2, 0}, End: Position{2, 3}})
	test.That(t, n.Range == nil, "no range")

	ast, err = Parse(src, Options{Ranges: true})
	require.NoError(t, err)
	n = ast.Body[1].Base()
	test.T(t, *n.Range, [2]int{3, 6})
	test.That(t, n.Loc == nil, "no location")

	ast, err = Parse(src, Options{DirectSourceFile: "file.js"})
	require.NoError(t, err)
	test.T(t, ast.Body[0].Base().SourceFile, "file.js")
}

func TestParseExpressionAt(t *testing.T) {
	expr, err := ParseExpressionAt([]byte("var x = a + b; c"), 8, Options{EcmaVersion: Latest})
	require.NoError(t, err)
	test.String(t, expr.String(), "(a + b)")
	test.T(t, expr.Base().Start, 8)
	test.T(t, expr.Base().End, 13)

	_, err = ParseExpressionAt([]byte("x = )"), 4, Options{})
	test.That(t, err != nil)
}

func TestPreserveParens(t *testing.T) {
	ast, err := Parse([]byte("(a, b); (c)"), Options{EcmaVersion: Latest, PreserveParens: true})
	require.NoError(t, err)
	test.String(t, ast.String(), "Stmt(((a, b))) Stmt((c))")

	paren := ast.Body[1].(*ExpressionStatement).Expression.(*ParenthesizedExpression)
	test.T(t, paren.Start, 8)
	test.T(t, paren.Expression.Base().Start, 9)

	ast, err = Parse([]byte("(a, b)"), Options{EcmaVersion: Latest})
	require.NoError(t, err)
	seq := ast.Body[0].(*ExpressionStatement).Expression.(*SequenceExpression)
	test.T(t, seq.Start, 1)
	test.T(t, seq.End, 5)
}

func TestDirective(t *testing.T) {
	ast, err := Parse([]byte("'use strict'; \"other\"; a; 'no'"), Options{})
	require.NoError(t, err)
	test.T(t, ast.Body[0].(*ExpressionStatement).Directive, "use strict")
	test.T(t, ast.Body[1].(*ExpressionStatement).Directive, "other")
	test.T(t, ast.Body[3].(*ExpressionStatement).Directive, "")
}

func TestLiteralValue(t *testing.T) {
	var tests = []struct {
		js    string
		value interface{}
	}{
		{"0x10", 16.0},
		{"1.5e1", 15.0},
		{"'a\\nb'", "a\nb"},
		{"true", true},
		{"null", nil},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			expr, err := ParseExpressionAt([]byte(tt.js), 0, Options{EcmaVersion: Latest})
			require.NoError(t, err)
			lit, ok := expr.(*Literal)
			require.True(t, ok, pretty.Sprint(expr))
			test.T(t, lit.Value, tt.value)
			test.T(t, lit.Raw, tt.js)
		})
	}

	expr, err := ParseExpressionAt([]byte("1_000n"), 0, Options{EcmaVersion: Latest})
	require.NoError(t, err)
	lit := expr.(*Literal)
	test.T(t, lit.BigInt, "1000")
	test.T(t, lit.Value.(*big.Int).Int64(), int64(1000))

	expr, err = ParseExpressionAt([]byte("/a[/]b/gu"), 0, Options{EcmaVersion: Latest})
	require.NoError(t, err)
	lit = expr.(*Literal)
	test.T(t, *lit.Regex, RegExpLiteral{Pattern: "a[/]b", Flags: "gu"})
	test.That(t, lit.Value == nil, "regular expressions have no value")
}

func TestTemplateElements(t *testing.T) {
	ast, err := Parse([]byte("tag`\\unicode${a}b\r\nc`"), Options{EcmaVersion: Latest})
	require.NoError(t, err)
	tagged := ast.Body[0].(*ExpressionStatement).Expression.(*TaggedTemplateExpression)
	quasis := tagged.Quasi.Quasis
	require.Len(t, quasis, 2)
	test.T(t, quasis[0].Value.Raw, "\\unicode")
	test.That(t, quasis[0].Value.Cooked == nil, "invalid escape leaves cooked undefined")
	test.T(t, quasis[0].Start, 4)
	test.T(t, quasis[0].End, 12)
	test.T(t, quasis[0].Tail, false)
	test.T(t, quasis[1].Value.Raw, "b\nc")
	test.T(t, quasis[1].Tail, true)
}
