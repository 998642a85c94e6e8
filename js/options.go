package js

import (
	"strconv"
	"strings"
)

// Version is an ECMAScript edition, either by number (3, 5, 6 through 14) or by year (2015 through 2023).
type Version int

// Version values.
const (
	ES3    Version = 3
	ES5    Version = 5
	ES2015 Version = 6
	ES2016 Version = 7
	ES2017 Version = 8
	ES2018 Version = 9
	ES2019 Version = 10
	ES2020 Version = 11
	ES2021 Version = 12
	ES2022 Version = 13
	ES2023 Version = 14
	Latest Version = -1 // the newest supported edition

	latestVersion = ES2023
)

// normalize maps years to edition numbers, it returns 0 for unsupported versions.
func (v Version) normalize() Version {
	if v == Latest {
		return latestVersion
	} else if 2015 <= v && v <= 2015+latestVersion-ES2015 {
		return v - 2015 + ES2015
	} else if v == ES3 || v == ES5 || ES2015 <= v && v <= latestVersion {
		return v
	}
	return 0
}

func (v Version) String() string {
	switch {
	case v == Latest:
		return "latest"
	case v == ES3 || v == ES5:
		return "ES" + strconv.Itoa(int(v))
	case ES2015 <= v && v <= latestVersion:
		return "ES" + strconv.Itoa(int(v-ES2015)+2015)
	case 2015 <= v:
		return "ES" + strconv.Itoa(int(v))
	}
	return "Version(" + strconv.Itoa(int(v)) + ")"
}

// ParseVersion parses "3", "5", "6" to "14", "2015" to "2023" or "latest".
func ParseVersion(s string) (Version, error) {
	if strings.EqualFold(s, "latest") {
		return Latest, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToUpper(s), "ES"))
	if err != nil || n < 0 || Version(n).normalize() == 0 {
		return 0, &ConfigError{"ecmaVersion", "unsupported version " + strconv.Quote(s)}
	}
	return Version(n), nil
}

// SourceType is the goal symbol of the source, either a script or a module.
type SourceType string

// SourceType values.
const (
	Script SourceType = "script"
	Module SourceType = "module"
)

// ParseSourceType parses "script" or "module".
func ParseSourceType(s string) (SourceType, error) {
	switch SourceType(s) {
	case Script, Module:
		return SourceType(s), nil
	}
	return "", &ConfigError{"sourceType", "unknown source type " + strconv.Quote(s)}
}

// ReservedPolicy selects how reserved words are treated.
type ReservedPolicy int

// ReservedPolicy values.
const (
	ReservedDefault ReservedPolicy = iota // allow below ES5, enforce otherwise
	ReservedAllow                         // reserved words may be used as identifiers
	ReservedEnforce                       // reserved words may not be used as identifiers
	ReservedNever                         // as enforce, and reserved words may not be used as property names either
)

// ParseReservedPolicy parses the option values "true", "false" and "never"; the empty string selects the default.
func ParseReservedPolicy(s string) (ReservedPolicy, error) {
	switch s {
	case "":
		return ReservedDefault, nil
	case "true":
		return ReservedAllow, nil
	case "false":
		return ReservedEnforce, nil
	case "never":
		return ReservedNever, nil
	}
	return ReservedDefault, &ConfigError{"allowReserved", "unknown value " + strconv.Quote(s)}
}

// Toggle is a tri-state option whose unset state is derived from the version and source type.
type Toggle int8

// Toggle values.
const (
	Unset Toggle = iota
	On
	Off
)

// Bool returns On for true and Off for false.
func Bool(b bool) Toggle {
	if b {
		return On
	}
	return Off
}

func (t Toggle) resolve(dflt bool) bool {
	if t == Unset {
		return dflt
	}
	return t == On
}

// Position is a line and column pair; the line is 1-based and the column is a 0-based byte offset into the line.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation is the start and end position of a node or token.
type SourceLocation struct {
	Start  Position `json:"start"`
	End    Position `json:"end"`
	Source string   `json:"source,omitempty"`
}

// Options are the parser options as given by the caller, the zero value selects all defaults.
type Options struct {
	EcmaVersion Version
	SourceType  SourceType

	// OnInsertedSemicolon is called with the offset and position after the previous token when a semicolon is inserted automatically.
	OnInsertedSemicolon func(int, *Position) error
	// OnTrailingComma is called with the offset and position of an accepted trailing comma.
	OnTrailingComma func(int, *Position) error

	AllowReserved               ReservedPolicy
	AllowReturnOutsideFunction  bool
	AllowImportExportEverywhere bool
	AllowAwaitOutsideFunction   Toggle
	AllowSuperOutsideMethod     Toggle
	AllowHashBang               Toggle

	Locations bool
	// OnToken is called for every token, including the final EOF token.
	OnToken func(Token) error
	// OnComment is called with block, text, start, end, start position and end position for every comment. Positions are nil unless Locations is set.
	OnComment func(bool, string, int, int, *Position, *Position) error
	Ranges    bool

	// Program is extended with the parsed statements when not nil.
	Program          *Program
	SourceFile       string
	DirectSourceFile string
	PreserveParens   bool
}

// Config is the resolved set of options used by the tokenizer and parser.
// A Config is never modified after Resolve returns it and may be shared between goroutines.
type Config struct {
	Version    Version // between ES3 and ES2023, never Latest
	SourceType SourceType
	Strict     bool // source is strict from the start
	Reserved   ReservedPolicy

	AllowReturnOutsideFunction  bool
	AllowImportExportEverywhere bool
	AllowAwaitOutsideFunction   bool
	AllowSuperOutsideMethod     bool
	AllowHashBang               bool

	Locations        bool
	Ranges           bool
	PreserveParens   bool
	SourceFile       string
	DirectSourceFile string

	OnInsertedSemicolon func(int, *Position) error
	OnTrailingComma     func(int, *Position) error
	OnToken             func(Token) error
	OnComment           func(bool, string, int, int, *Position, *Position) error

	words *wordTable
}

// ConfigError is returned for options that cannot be resolved.
type ConfigError struct {
	Option  string
	Message string
}

func (e *ConfigError) Error() string {
	return "invalid option " + e.Option + ": " + e.Message
}

// Resolve validates the options and derives the defaults that depend on version and source type.
func Resolve(opts Options) (*Config, error) {
	version := ES5
	if opts.EcmaVersion != 0 {
		if version = opts.EcmaVersion.normalize(); version == 0 {
			return nil, &ConfigError{"ecmaVersion", "unsupported version " + strconv.Itoa(int(opts.EcmaVersion))}
		}
	}

	sourceType := opts.SourceType
	if sourceType == "" {
		sourceType = Script
	} else if sourceType != Script && sourceType != Module {
		return nil, &ConfigError{"sourceType", "unknown source type " + strconv.Quote(string(sourceType))}
	}
	module := sourceType == Module
	if module && version < ES2015 {
		return nil, &ConfigError{"sourceType", "modules require ecmaVersion 6 (2015) or later"}
	}

	reserved := opts.AllowReserved
	switch reserved {
	case ReservedDefault:
		if version < ES5 {
			reserved = ReservedAllow
		} else {
			reserved = ReservedEnforce
		}
	case ReservedAllow, ReservedEnforce, ReservedNever:
	default:
		return nil, &ConfigError{"allowReserved", "unknown policy " + strconv.Itoa(int(reserved))}
	}

	return &Config{
		Version:    version,
		SourceType: sourceType,
		Strict:     module,
		Reserved:   reserved,

		AllowReturnOutsideFunction:  opts.AllowReturnOutsideFunction,
		AllowImportExportEverywhere: opts.AllowImportExportEverywhere,
		AllowAwaitOutsideFunction:   opts.AllowAwaitOutsideFunction.resolve(ES2022 <= version && module),
		AllowSuperOutsideMethod:     opts.AllowSuperOutsideMethod.resolve(false),
		AllowHashBang:               opts.AllowHashBang.resolve(ES2023 <= version),

		Locations:        opts.Locations,
		Ranges:           opts.Ranges,
		PreserveParens:   opts.PreserveParens,
		SourceFile:       opts.SourceFile,
		DirectSourceFile: opts.DirectSourceFile,

		OnInsertedSemicolon: opts.OnInsertedSemicolon,
		OnTrailingComma:     opts.OnTrailingComma,
		OnToken:             opts.OnToken,
		OnComment:           opts.OnComment,

		words: wordTableFor(version, module, reserved),
	}, nil
}

// IsModule returns true if the source is parsed as a module.
func (c *Config) IsModule() bool {
	return c.SourceType == Module
}
