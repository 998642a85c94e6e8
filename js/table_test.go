package js

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdewolff/test"
)

func TestOperators(t *testing.T) {
	test.T(t, BinaryPrec(MulToken), OpMul)
	test.T(t, BinaryPrec(NullishToken), OpOr)
	test.T(t, BinaryPrec(InstanceofToken), OpCompare)
	test.T(t, BinaryPrec(ExpToken), OpEnd)
	test.T(t, BinaryPrec(EqToken), OpEnd)
	test.That(t, BinaryPrec(AddToken) < BinaryPrec(MulToken), "multiplication binds tighter than addition")
	test.That(t, BinaryPrec(OrToken) < BinaryPrec(AndToken), "&& binds tighter than ||")

	test.T(t, IsAssignment(NullishEqToken), true)
	test.T(t, IsAssignment(EqEqToken), false)
	test.T(t, IsPrefix(TypeofToken), true)
	test.T(t, IsPrefix(InToken), false)
	test.T(t, IsKeyword(ForToken), true)
	test.T(t, IsKeyword(IdentifierToken), false)
	test.T(t, IsIdentifier(IdentifierToken), true)
	test.T(t, IsPunctuator(CommaToken), true)
	test.T(t, IsOperator(AddToken), true)
	test.T(t, IsOperator(CommaToken), false)
}

func TestFeatures(t *testing.T) {
	test.T(t, FeatureGetterSetter.Since(), ES5)
	test.T(t, FeatureArrowFunctions.Since(), ES2015)
	test.T(t, FeatureOptionalChaining.Since(), ES2020)
	test.T(t, FeatureHashbang.Since(), ES2023)

	cfg, err := Resolve(Options{EcmaVersion: ES2019})
	require.NoError(t, err)
	test.T(t, cfg.Has(FeatureOptionalCatchBinding), true)
	test.T(t, cfg.Has(FeatureBigInt), false)
}

func TestKeywords(t *testing.T) {
	var tests = []struct {
		word    string
		version Version
		keyword bool
	}{
		{"class", ES5, false},
		{"class", ES2015, true},
		{"import", ES2015, true},
		{"this", ES3, true},
		{"let", Latest, false},
		{"await", Latest, false},
		{"yield", Latest, false},
	}
	for _, tt := range tests {
		t.Run(tt.version.String()+" "+tt.word, func(t *testing.T) {
			test.T(t, IsKeywordIn(tt.word, tt.version), tt.keyword)
		})
	}
}

func TestReservedWords(t *testing.T) {
	var tests = []struct {
		word     string
		opts     Options
		strict   bool
		reserved bool
	}{
		{"abstract", Options{EcmaVersion: ES3}, false, false},
		{"abstract", Options{EcmaVersion: ES3, AllowReserved: ReservedEnforce}, false, true},
		{"class", Options{EcmaVersion: ES5}, false, true},
		{"class", Options{EcmaVersion: ES5, AllowReserved: ReservedAllow}, false, false},
		{"enum", Options{EcmaVersion: ES2015}, false, true},
		{"let", Options{EcmaVersion: ES2015}, false, false},
		{"let", Options{EcmaVersion: ES2015}, true, true},
		{"yield", Options{EcmaVersion: ES2015}, true, true},
		{"eval", Options{EcmaVersion: ES2015}, true, false},
		{"await", Options{EcmaVersion: ES2015}, false, false},
		{"await", Options{EcmaVersion: ES2015, SourceType: Module}, false, true},
		{"await", Options{EcmaVersion: ES2015, SourceType: Module, AllowReserved: ReservedAllow}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.opts.EcmaVersion.String()+" "+tt.word, func(t *testing.T) {
			cfg, err := Resolve(tt.opts)
			require.NoError(t, err)
			test.T(t, cfg.IsReservedWord(tt.word, tt.strict), tt.reserved)
		})
	}
}

func TestWordTableCache(t *testing.T) {
	a := wordTableFor(ES2020, true, ReservedEnforce)
	b := wordTableFor(ES2020, true, ReservedEnforce)
	test.That(t, a == b, "tables are cached")
	test.That(t, a != wordTableFor(ES2020, false, ReservedEnforce), "source type selects the table")
}
