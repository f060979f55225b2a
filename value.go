package pretzyl

import (
	"fmt"
	"reflect"
	"strings"
)

// Value coercion helpers shared by the built-in operators. Numbers on the
// stack are int or float64; arithmetic stays in int when both operands are
// ints and promotes to float64 when either is a float.

// truthy reports the truth value of any stack entry: nil, false, zero, the
// empty string and empty collections are false, everything else is true.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case int:
		return t != 0
	case float64:
		return t != 0
	case string:
		return t != ""
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	}
	return true
}

// intValue coerces a numeric entry to an int. Floats qualify only when they
// are whole.
func intValue(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case float64:
		if t == float64(int(t)) {
			return int(t), true
		}
	}
	return 0, false
}

func floatValue(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

// numericPair coerces two entries for arithmetic, reporting whether the
// result should stay integral.
func numericPair(a, b interface{}) (x, y float64, integral, ok bool) {
	x, aok := floatValue(a)
	y, bok := floatValue(b)
	if !aok || !bok {
		return 0, 0, false, false
	}
	_, ai := a.(int)
	_, bi := b.(int)
	return x, y, ai && bi, true
}

func addValues(a, b interface{}) (interface{}, error) {
	if x, y, integral, ok := numericPair(a, b); ok {
		if integral {
			return int(x) + int(y), nil
		}
		return x + y, nil
	}
	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return x + y, nil
		}
	}
	if x, ok := a.([]interface{}); ok {
		if y, ok := b.([]interface{}); ok {
			out := make([]interface{}, 0, len(x)+len(y))
			return append(append(out, x...), y...), nil
		}
	}
	return nil, fmt.Errorf("cannot add %T and %T", a, b)
}

func subValues(a, b interface{}) (interface{}, error) {
	x, y, integral, ok := numericPair(a, b)
	if !ok {
		return nil, fmt.Errorf("cannot subtract %T from %T", b, a)
	}
	if integral {
		return int(x) - int(y), nil
	}
	return x - y, nil
}

func mulValues(a, b interface{}) (interface{}, error) {
	if x, y, integral, ok := numericPair(a, b); ok {
		if integral {
			return int(x) * int(y), nil
		}
		return x * y, nil
	}
	// string repetition, with the count on either side
	if s, ok := a.(string); ok {
		if n, ok := intValue(b); ok && n >= 0 {
			return strings.Repeat(s, n), nil
		}
	}
	if s, ok := b.(string); ok {
		if n, ok := intValue(a); ok && n >= 0 {
			return strings.Repeat(s, n), nil
		}
	}
	return nil, fmt.Errorf("cannot multiply %T by %T", a, b)
}

func divValues(a, b interface{}) (interface{}, error) {
	x, y, integral, ok := numericPair(a, b)
	if !ok {
		return nil, fmt.Errorf("cannot divide %T by %T", a, b)
	}
	if y == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	if integral {
		return int(x) / int(y), nil
	}
	return x / y, nil
}

// compareValues orders two entries: both numeric, or both strings.
func compareValues(a, b interface{}) (int, error) {
	if x, y, _, ok := numericPair(a, b); ok {
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
		return 0, nil
	}
	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), nil
		}
	}
	return 0, fmt.Errorf("cannot order %T and %T", a, b)
}

// equalValues compares for equality; ints and floats of the same magnitude
// are equal, everything else compares structurally.
func equalValues(a, b interface{}) bool {
	if x, y, _, ok := numericPair(a, b); ok {
		return x == y
	}
	return reflect.DeepEqual(a, b)
}

// containsValue reports membership of item in coll: substring for strings,
// element for compound values, key for maps.
func containsValue(coll, item interface{}) (bool, error) {
	switch c := coll.(type) {
	case string:
		s, ok := item.(string)
		if !ok {
			return false, fmt.Errorf("cannot search a string for %T", item)
		}
		return strings.Contains(c, s), nil
	case []interface{}:
		for _, v := range c {
			if equalValues(v, item) {
				return true, nil
			}
		}
		return false, nil
	case map[string]interface{}:
		s, ok := item.(string)
		if !ok {
			return false, fmt.Errorf("cannot search a map for %T", item)
		}
		_, found := c[s]
		return found, nil
	}
	return false, fmt.Errorf("%T is not a collection", coll)
}
