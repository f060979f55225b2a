package pretzyl

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gitlab.com/variadico/lctime"
)

// truncateWords is how many words the truncate operator keeps.
const truncateWords = 25

var tagPattern = regexp.MustCompile(`(?s)<.*?>`)

// DefaultOperators returns a fresh copy of the standard operator set. New
// installs it; hosts can layer their own capabilities over it with
// WithOperators.
func DefaultOperators() map[string]*Op {
	return map[string]*Op{
		// exists tests whether a token is a valid reference to an
		// environment entry. It takes its argument raw: resolving the very
		// reference under test would defeat the point.
		"exists": {Arity: 1, Raw: true, Run: func(p *Pretzyl, args []interface{}) error {
			return p.Push(p.ValidRef(args[0]))
		}},

		">": {Arity: 2, Apply: func(args []interface{}) (interface{}, error) {
			c, err := compareValues(args[0], args[1])
			return c > 0, err
		}},

		"<": {Arity: 2, Apply: func(args []interface{}) (interface{}, error) {
			c, err := compareValues(args[0], args[1])
			return c < 0, err
		}},

		">=": {Arity: 2, Apply: func(args []interface{}) (interface{}, error) {
			c, err := compareValues(args[0], args[1])
			return c >= 0, err
		}},

		"==": {Arity: 2, Apply: func(args []interface{}) (interface{}, error) {
			return equalValues(args[0], args[1]), nil
		}},

		// contains tests whether the second token occurs in the first
		// (collection) token.
		"contains": {Arity: 2, Apply: func(args []interface{}) (interface{}, error) {
			if args[0] == nil {
				return false, nil
			}
			return containsValue(args[0], args[1])
		}},

		"!": {Arity: 1, Apply: func(args []interface{}) (interface{}, error) {
			return !truthy(args[0]), nil
		}},

		"and": andOp(),
		"or":  orOp(),

		// strftime formats a time value with the second token as format, in
		// strftime(3) notation.
		"strftime": {Arity: 2, Apply: func(args []interface{}) (interface{}, error) {
			t, ok := args[0].(time.Time)
			if !ok {
				return nil, fmt.Errorf("strftime: %T is not a time", args[0])
			}
			format, ok := args[1].(string)
			if !ok {
				return nil, fmt.Errorf("strftime: %T is not a format string", args[1])
			}
			return lctime.Strftime(format, t), nil
		}},

		// truncate strips markup tags and keeps the first few words.
		"truncate": {Arity: 1, Apply: func(args []interface{}) (interface{}, error) {
			s, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("truncate: %T is not a string", args[0])
			}
			words := strings.Fields(tagPattern.ReplaceAllString(s, " "))
			if len(words) > truncateWords {
				words = words[:truncateWords]
			}
			return strings.Join(words, " "), nil
		}},

		// pathjoin joins two path segments with '/'; an empty first segment
		// yields the second unchanged, so squashing it over a frame of
		// segments folds them into one path.
		"pathjoin": {Arity: 2, Apply: func(args []interface{}) (interface{}, error) {
			a, aok := args[0].(string)
			b, bok := args[1].(string)
			if !aok || !bok {
				return nil, fmt.Errorf("pathjoin: cannot join %T and %T", args[0], args[1])
			}
			if a == "" {
				return b, nil
			}
			return a + "/" + b, nil
		}},

		// ~ turns a string into a reference bearing that name.
		"~": {Arity: 1, Apply: func(args []interface{}) (interface{}, error) {
			name, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("cannot make a reference out of %T", args[0])
			}
			return Reference{name}, nil
		}},

		"+": {Arity: 2, Apply: func(args []interface{}) (interface{}, error) {
			return addValues(args[0], args[1])
		}},

		"-": {Arity: 2, Apply: func(args []interface{}) (interface{}, error) {
			return subValues(args[0], args[1])
		}},

		"*": {Arity: 2, Apply: func(args []interface{}) (interface{}, error) {
			return mulValues(args[0], args[1])
		}},

		"/": {Arity: 2, Apply: func(args []interface{}) (interface{}, error) {
			return divValues(args[0], args[1])
		}},

		"repeat": repeatOp(),
		"squash": squashOp(),
	}
}

// andOp and orOp short-circuit: both pop raw and resolve the first operand
// alone; the second operand is resolved only when the first leaves the
// outcome open. Resolution can fail or carry host side effects, so an
// operand that cannot change the result must never be touched.

func andOp() *Op {
	return &Op{Arity: 2, Raw: true, Run: func(p *Pretzyl, args []interface{}) error {
		a, err := p.Lookup(args[0])
		if err != nil {
			return err
		}
		if !truthy(a) {
			return p.Push(false)
		}
		b, err := p.Lookup(args[1])
		if err != nil {
			return err
		}
		return p.Push(b)
	}}
}

func orOp() *Op {
	return &Op{Arity: 2, Raw: true, Run: func(p *Pretzyl, args []interface{}) error {
		a, err := p.Lookup(args[0])
		if err != nil {
			return err
		}
		if truthy(a) {
			return p.Push(true)
		}
		b, err := p.Lookup(args[1])
		if err != nil {
			return err
		}
		return p.Push(b)
	}}
}
