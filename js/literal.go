package js

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// escapeError is an invalid escape sequence at an offset relative to the start of the decoded bytes.
type escapeError struct {
	offset int
	msg    string
}

// decodeIdentifier resolves the unicode escapes of an identifier name.
func decodeIdentifier(b []byte) (string, bool, *escapeError) {
	if !strings.Contains(string(b), "\\") {
		return string(b), false, nil
	}
	sb := strings.Builder{}
	first := true
	for i := 0; i < len(b); {
		if b[i] != '\\' {
			r, n := utf8.DecodeRune(b[i:])
			sb.WriteRune(r)
			i += n
			first = false
			continue
		}
		start := i
		i += 2 // \u
		var r rune
		var ok bool
		if i < len(b) && b[i] == '{' {
			end := i + 1
			for end < len(b) && b[end] != '}' {
				end++
			}
			r, ok = hexValue(b[i+1 : end])
			i = end + 1
		} else {
			r, ok = hexValue(b[i : i+4])
			i += 4
		}
		if !ok || unicode.MaxRune < r || first && !isIdentifierStartRune(r) || !first && !isIdentifierPartRune(r) {
			return "", true, &escapeError{start, "Invalid Unicode escape"}
		}
		sb.WriteRune(r)
		first = false
	}
	return sb.String(), true, nil
}

func isIdentifierStartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return r == '$' || r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
	}
	return unicode.IsOneOf(identifierStart, r)
}

func isIdentifierPartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentifierStartRune(r) || '0' <= r && r <= '9'
	}
	return r == '\u200C' || r == '\u200D' || unicode.IsOneOf(identifierContinue, r)
}

// hexValue parses hexadecimal digits, it fails for empty input and values beyond the unicode range.
func hexValue(b []byte) (rune, bool) {
	if len(b) == 0 {
		return 0, false
	}
	r := rune(0)
	for _, c := range b {
		d := digitValue(c)
		if 16 <= d {
			return 0, false
		}
		r = r*16 + rune(d)
		if unicode.MaxRune < r {
			return r, true
		}
	}
	return r, true
}

// stringDecoder decodes the escapes of string literals and template chunks into their cooked value.
type stringDecoder struct {
	version  Version
	strict   bool
	template bool
	units    []uint16
}

func (d *stringDecoder) writeRune(r rune) {
	if 0x10000 <= r {
		r1, r2 := utf16.EncodeRune(r)
		d.units = append(d.units, uint16(r1), uint16(r2))
	} else {
		d.units = append(d.units, uint16(r))
	}
}

// decode returns the cooked value of the contents of a string or template chunk.
// UTF-16 surrogate pairs written as two escapes are combined, lone surrogates become U+FFFD.
func (d *stringDecoder) decode(b []byte) (string, *escapeError) {
	d.units = d.units[:0]
	for i := 0; i < len(b); {
		c := b[i]
		if c == '\r' && d.template {
			d.writeRune('\n')
			i++
			if i < len(b) && b[i] == '\n' {
				i++
			}
			continue
		} else if c != '\\' {
			r, n := utf8.DecodeRune(b[i:])
			d.writeRune(r)
			i += n
			continue
		}

		i++
		if len(b) <= i {
			break
		}
		c = b[i]
		i++
		switch c {
		case 'n':
			d.writeRune('\n')
		case 'r':
			d.writeRune('\r')
		case 't':
			d.writeRune('\t')
		case 'b':
			d.writeRune('\b')
		case 'v':
			d.writeRune('\v')
		case 'f':
			d.writeRune('\f')
		case 'x':
			if len(b) < i+2 {
				return "", &escapeError{i, "Bad character escape sequence"}
			}
			r, ok := hexValue(b[i : i+2])
			if !ok {
				return "", &escapeError{i, "Bad character escape sequence"}
			}
			d.writeRune(r)
			i += 2
		case 'u':
			if i < len(b) && b[i] == '{' {
				end := i + 1
				for end < len(b) && b[end] != '}' {
					end++
				}
				if !hasFeature(d.version, FeatureCodePointEscapes) || len(b) <= end {
					return "", &escapeError{i, "Bad character escape sequence"}
				}
				r, ok := hexValue(b[i+1 : end])
				if !ok {
					return "", &escapeError{i + 1, "Bad character escape sequence"}
				} else if unicode.MaxRune < r {
					return "", &escapeError{i + 1, "Code point out of bounds"}
				}
				d.writeRune(r)
				i = end + 1
			} else {
				if len(b) < i+4 {
					return "", &escapeError{i, "Bad character escape sequence"}
				}
				r, ok := hexValue(b[i : i+4])
				if !ok {
					return "", &escapeError{i, "Bad character escape sequence"}
				}
				d.units = append(d.units, uint16(r))
				i += 4
			}
		case '\r':
			if i < len(b) && b[i] == '\n' {
				i++
			}
		case '\n':
		case '8', '9':
			if d.strict {
				return "", &escapeError{i - 1, "Invalid escape sequence"}
			} else if d.template {
				return "", &escapeError{i - 1, "Invalid escape sequence in template string"}
			}
			d.writeRune(rune(c))
		case '0', '1', '2', '3', '4', '5', '6', '7':
			n := 1
			for n < 3 && i-1+n < len(b) && '0' <= b[i-1+n] && b[i-1+n] <= '7' {
				n++
			}
			octal, _ := strconv.ParseUint(string(b[i-1:i-1+n]), 8, 32)
			if 255 < octal {
				n--
				octal >>= 3
			}
			next := byte(0)
			if i-1+n < len(b) {
				next = b[i-1+n]
			}
			if (n != 1 || c != '0' || next == '8' || next == '9') && (d.strict || d.template) {
				if d.template {
					return "", &escapeError{i - 2, "Octal literal in template string"}
				}
				return "", &escapeError{i - 2, "Octal literal in strict mode"}
			}
			d.writeRune(rune(octal))
			i += n - 1
		default:
			r, n := utf8.DecodeRune(b[i-1:])
			i += n - 1
			if r == '\u2028' || r == '\u2029' {
				continue // line continuation
			}
			d.writeRune(r)
		}
	}
	return string(utf16.Decode(d.units)), nil
}

// numericValue returns the value of a numeric literal.
func numericValue(raw []byte) float64 {
	s := strings.ReplaceAll(string(raw), "_", "")
	if 2 <= len(s) && s[0] == '0' {
		radix := 0
		switch s[1] {
		case 'x', 'X':
			radix = 16
		case 'o', 'O':
			radix = 8
		case 'b', 'B':
			radix = 2
		}
		if radix != 0 {
			return bigFloat(s[2:], radix)
		} else if isLegacyOctal(s) {
			return bigFloat(s[1:], 8)
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeError(err) {
		return math.NaN()
	}
	return f
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

func bigFloat(s string, radix int) float64 {
	i, ok := new(big.Int).SetString(s, radix)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	return f
}

// isLegacyOctal returns true for numbers such as 017, numbers like 08 and 09 are decimal.
func isLegacyOctal(s string) bool {
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || '7' < s[i] {
			return false
		}
	}
	return true
}

// bigIntValue returns the value and the normalized text of a BigInt literal, which is the raw text without the n suffix and separators.
func bigIntValue(raw []byte) (*big.Int, string) {
	s := strings.ReplaceAll(string(raw[:len(raw)-1]), "_", "")
	radix := 10
	digits := s
	if 2 <= len(s) && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			radix, digits = 16, s[2:]
		case 'o', 'O':
			radix, digits = 8, s[2:]
		case 'b', 'B':
			radix, digits = 2, s[2:]
		}
	}
	i, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		return nil, s
	}
	return i, s
}
