package pretzyl

import "fmt"

// An Environment is the namespace a host supplies for a program to draw
// names from. Get must fail with an error wrapping ErrInvalidReference when
// the name is absent.
//
// The interpreter only reads the Environment during evaluation. Sharing one
// Environment between interpreter instances is fine as long as nobody
// mutates it while an evaluation is running.
type Environment interface {
	Contains(name string) bool
	Get(name string) (interface{}, error)
}

// MapEnv adapts a plain map to the Environment interface.
type MapEnv map[string]interface{}

func (env MapEnv) Contains(name string) bool {
	_, ok := env[name]
	return ok
}

func (env MapEnv) Get(name string) (interface{}, error) {
	v, ok := env[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q not defined", ErrInvalidReference, name)
	}
	return v, nil
}

// asEnvironment adapts a value found in an Environment into a nested
// Environment, for operator sub-path resolution.
func asEnvironment(v interface{}) (Environment, bool) {
	switch sub := v.(type) {
	case Environment:
		return sub, true
	case map[string]interface{}:
		return MapEnv(sub), true
	}
	return nil, false
}

// Lookup resolves a Reference against the Environment; any other value is
// returned unchanged.
func (p *Pretzyl) Lookup(v interface{}) (interface{}, error) {
	ref, ok := v.(Reference)
	if !ok {
		return v, nil
	}
	return p.env.Get(ref.Name)
}

// ValidRef reports whether v is a Reference naming an Environment entry.
func (p *Pretzyl) ValidRef(v interface{}) bool {
	ref, ok := v.(Reference)
	return ok && p.env.Contains(ref.Name)
}

// Env returns the Environment the interpreter was constructed with.
func (p *Pretzyl) Env() Environment { return p.env }
