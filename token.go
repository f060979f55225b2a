package pretzyl

import (
	"fmt"
	"strconv"
	"strings"
)

// A Reference is a named token, resolved against the Environment on demand.
// Every other value on a stack is a literal and is used as-is.
type Reference struct {
	Name string
}

func (ref Reference) String() string {
	return fmt.Sprintf("Reference(%s)", ref.Name)
}

// quoteRunes is the fixed set of string delimiters.
const quoteRunes = `'"`

// convertToken classifies one raw lexical unit as a literal or a Reference.
// Conversion never fails: anything that is not a recognized literal form is a
// Reference bearing the unit's text.
func convertToken(unit string) interface{} {
	switch unit {
	case "None":
		return nil
	case "True":
		return true
	case "False":
		return false
	}
	if v, ok := parseNumber(unit); ok {
		return v
	}
	if len(unit) > 1 {
		open, close := unit[0], unit[len(unit)-1]
		if open == close && strings.ContainsRune(quoteRunes, rune(open)) {
			// a string literal; quotes stripped, no escape processing
			return unit[1 : len(unit)-1]
		}
	}
	return Reference{unit}
}

// parseNumber tries the numeric grammar in order: leading-zero octal,
// 0x-prefixed hexadecimal, optionally-signed decimal, then floating point.
func parseNumber(unit string) (interface{}, bool) {
	if len(unit) > 1 && unit[0] == '0' && unit[1] != 'x' && unit[1] != 'X' {
		if n, err := strconv.ParseInt(unit, 8, 64); err == nil {
			return int(n), true
		}
	}
	if len(unit) > 2 && unit[0] == '0' && (unit[1] == 'x' || unit[1] == 'X') {
		if n, err := strconv.ParseInt(unit[2:], 16, 64); err == nil {
			return int(n), true
		}
	}
	if n, err := strconv.ParseInt(unit, 10, 64); err == nil {
		return int(n), true
	}
	if f, err := strconv.ParseFloat(unit, 64); err == nil {
		return f, true
	}
	return nil, false
}
