package js

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// OpPrec is the binding power of an operator.
type OpPrec int

// https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Operators/Operator_Precedence
const (
	OpEnd OpPrec = iota // not a binary operator
	OpComma
	OpYield
	OpAssign
	OpCond
	OpOr // || and ??
	OpAnd
	OpBitOr
	OpBitXor
	OpBitAnd
	OpEquals
	OpCompare
	OpShift
	OpAdd
	OpMul
	OpExp
	OpPrefix
	OpPostfix
	OpNew
	OpCall
	OpGroup
)

// BinaryPrec returns the precedence of tt as a binary operator, or OpEnd if it is not one. Exponentiation is parsed with the unary operators and is not included.
func BinaryPrec(tt TokenType) OpPrec {
	switch tt {
	case OrToken, NullishToken:
		return OpOr
	case AndToken:
		return OpAnd
	case BitOrToken:
		return OpBitOr
	case BitXorToken:
		return OpBitXor
	case BitAndToken:
		return OpBitAnd
	case EqEqToken, NotEqToken, EqEqEqToken, NotEqEqToken:
		return OpEquals
	case LtToken, GtToken, LtEqToken, GtEqToken, InstanceofToken, InToken:
		return OpCompare
	case LtLtToken, GtGtToken, GtGtGtToken:
		return OpShift
	case AddToken, SubToken:
		return OpAdd
	case MulToken, DivToken, ModToken:
		return OpMul
	}
	return OpEnd
}

// IsAssignment returns true for = and the compound assignment operators.
func IsAssignment(tt TokenType) bool {
	switch tt {
	case EqToken, AddEqToken, SubEqToken, MulEqToken, DivEqToken, ModEqToken, ExpEqToken, LtLtEqToken, GtGtEqToken, GtGtGtEqToken, BitAndEqToken, BitOrEqToken, BitXorEqToken, AndEqToken, OrEqToken, NullishEqToken:
		return true
	}
	return false
}

// IsPrefix returns true for the unary prefix operators.
func IsPrefix(tt TokenType) bool {
	switch tt {
	case NotToken, BitNotToken, AddToken, SubToken, IncrToken, DecrToken, TypeofToken, VoidToken, DeleteToken:
		return true
	}
	return false
}

////////////////////////////////////////////////////////////////

// Feature is a grammar feature that became available at some version.
type Feature int

// Feature values.
const (
	FeatureGetterSetter Feature = iota
	FeatureDirectives
	FeatureBlockScoping
	FeatureArrowFunctions
	FeatureClasses
	FeatureModules
	FeatureTemplates
	FeatureDestructuring
	FeatureSpread
	FeatureGenerators
	FeatureForOf
	FeatureDefaultParameters
	FeatureObjectShorthand
	FeatureNewTarget
	FeatureBinaryOctalLiterals
	FeatureCodePointEscapes
	FeatureRegExpUnicodeSticky
	FeatureExponentiation
	FeatureNonSimpleParameters
	FeatureAsyncFunctions
	FeatureTrailingCommaParameters
	FeatureAsyncIteration
	FeatureObjectRestSpread
	FeatureTemplateRevision
	FeatureRegExpDotAll
	FeatureOptionalCatchBinding
	FeatureJSONSuperset
	FeatureBigInt
	FeatureOptionalChaining
	FeatureNullishCoalescing
	FeatureDynamicImport
	FeatureImportMeta
	FeatureExportNamespaceFrom
	FeatureNumericSeparators
	FeatureLogicalAssignment
	FeatureClassFields
	FeaturePrivateNames
	FeatureClassStaticBlocks
	FeatureTopLevelAwait
	FeatureArbitraryModuleNames
	FeatureRegExpIndices
	FeatureHashbang
)

var featureVersions = [...]Version{
	FeatureGetterSetter:            ES5,
	FeatureDirectives:              ES5,
	FeatureBlockScoping:            ES2015,
	FeatureArrowFunctions:          ES2015,
	FeatureClasses:                 ES2015,
	FeatureModules:                 ES2015,
	FeatureTemplates:               ES2015,
	FeatureDestructuring:           ES2015,
	FeatureSpread:                  ES2015,
	FeatureGenerators:              ES2015,
	FeatureForOf:                   ES2015,
	FeatureDefaultParameters:       ES2015,
	FeatureObjectShorthand:         ES2015,
	FeatureNewTarget:               ES2015,
	FeatureBinaryOctalLiterals:     ES2015,
	FeatureCodePointEscapes:        ES2015,
	FeatureRegExpUnicodeSticky:     ES2015,
	FeatureExponentiation:          ES2016,
	FeatureNonSimpleParameters:     ES2016,
	FeatureAsyncFunctions:          ES2017,
	FeatureTrailingCommaParameters: ES2017,
	FeatureAsyncIteration:          ES2018,
	FeatureObjectRestSpread:        ES2018,
	FeatureTemplateRevision:        ES2018,
	FeatureRegExpDotAll:            ES2018,
	FeatureOptionalCatchBinding:    ES2019,
	FeatureJSONSuperset:            ES2019,
	FeatureBigInt:                  ES2020,
	FeatureOptionalChaining:        ES2020,
	FeatureNullishCoalescing:       ES2020,
	FeatureDynamicImport:           ES2020,
	FeatureImportMeta:              ES2020,
	FeatureExportNamespaceFrom:     ES2020,
	FeatureNumericSeparators:       ES2021,
	FeatureLogicalAssignment:       ES2021,
	FeatureClassFields:             ES2022,
	FeaturePrivateNames:            ES2022,
	FeatureClassStaticBlocks:       ES2022,
	FeatureTopLevelAwait:           ES2022,
	FeatureArbitraryModuleNames:    ES2022,
	FeatureRegExpIndices:           ES2022,
	FeatureHashbang:                ES2023,
}

// Since returns the first version that supports f.
func (f Feature) Since() Version {
	return featureVersions[f]
}

func hasFeature(v Version, f Feature) bool {
	return featureVersions[f] <= v
}

// Has returns true if the resolved version supports f.
func (c *Config) Has(f Feature) bool {
	return hasFeature(c.Version, f)
}

////////////////////////////////////////////////////////////////

// Keywords maps all keywords to their token type. Which of them are keywords depends on the version, see IsKeywordIn.
var Keywords = map[string]TokenType{
	"break":      BreakToken,
	"case":       CaseToken,
	"catch":      CatchToken,
	"class":      ClassToken,
	"const":      ConstToken,
	"continue":   ContinueToken,
	"debugger":   DebuggerToken,
	"default":    DefaultToken,
	"delete":     DeleteToken,
	"do":         DoToken,
	"else":       ElseToken,
	"export":     ExportToken,
	"extends":    ExtendsToken,
	"false":      FalseToken,
	"finally":    FinallyToken,
	"for":        ForToken,
	"function":   FunctionToken,
	"if":         IfToken,
	"import":     ImportToken,
	"in":         InToken,
	"instanceof": InstanceofToken,
	"new":        NewToken,
	"null":       NullToken,
	"return":     ReturnToken,
	"super":      SuperToken,
	"switch":     SwitchToken,
	"this":       ThisToken,
	"throw":      ThrowToken,
	"true":       TrueToken,
	"try":        TryToken,
	"typeof":     TypeofToken,
	"var":        VarToken,
	"void":       VoidToken,
	"while":      WhileToken,
	"with":       WithToken,
}

const (
	es5Keywords = "break case catch continue debugger default do else finally for function if return switch throw try var while with null true false instanceof typeof void delete new in this"
	es6Keywords = es5Keywords + " const class extends export import super"

	es3Reserved         = "abstract boolean byte char class double enum export extends final float goto implements import int interface long native package private protected public short static super synchronized throws transient volatile"
	es5Reserved         = "class enum extends super const export import"
	es6Reserved         = "enum"
	strictReserved      = "implements interface let package private protected public static yield"
	strictBindReserved  = "eval arguments"
	wordTableCacheSize  = 64
	moduleReservedWords = "await"
)

// wordTable holds the keyword and reserved word sets of one version, source type and reserved word policy.
type wordTable struct {
	keywords           map[string]TokenType
	reserved           map[string]bool // reserved in sloppy mode
	reservedStrict     map[string]bool // reserved in strict mode
	reservedStrictBind map[string]bool // may not be bound in strict mode
}

type wordTableKey struct {
	version  Version
	module   bool
	reserved ReservedPolicy
}

var wordTables *lru.Cache

func init() {
	var err error
	if wordTables, err = lru.New(wordTableCacheSize); err != nil {
		panic(err)
	}
}

// wordTableFor returns the word table for the given version, source type and resolved reserved word policy; tables are built once and cached.
func wordTableFor(version Version, module bool, reserved ReservedPolicy) *wordTable {
	key := wordTableKey{version, module, reserved}
	if t, ok := wordTables.Get(key); ok {
		return t.(*wordTable)
	}
	t := newWordTable(version, module, reserved)
	wordTables.Add(key, t)
	return t
}

func newWordTable(version Version, module bool, reserved ReservedPolicy) *wordTable {
	t := &wordTable{
		keywords: map[string]TokenType{},
	}
	keywords := es5Keywords
	if ES2015 <= version {
		keywords = es6Keywords
	}
	for _, word := range strings.Fields(keywords) {
		t.keywords[word] = Keywords[word]
	}

	words := ""
	if reserved != ReservedAllow {
		if ES2015 <= version {
			words = es6Reserved
		} else if version == ES5 {
			words = es5Reserved
		} else {
			words = es3Reserved
		}
		if module {
			words += " " + moduleReservedWords
		}
	}
	t.reserved = wordSet(words)
	t.reservedStrict = wordSet(words + " " + strictReserved)
	t.reservedStrictBind = wordSet(words + " " + strictReserved + " " + strictBindReserved)
	return t
}

func wordSet(words string) map[string]bool {
	m := map[string]bool{}
	for _, word := range strings.Fields(words) {
		m[word] = true
	}
	return m
}

// IsKeywordIn returns true if word is a keyword in the given version.
func IsKeywordIn(word string, version Version) bool {
	_, ok := wordTableFor(version, false, ReservedEnforce).keywords[word]
	return ok
}

// IsReservedWord returns true if word may not be used as an identifier under the configuration, strict selects the strict mode set.
func (c *Config) IsReservedWord(word string, strict bool) bool {
	if strict {
		return c.words.reservedStrict[word]
	}
	return c.words.reserved[word]
}
