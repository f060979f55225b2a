package pretzyl

import (
	"github.com/pretzyl-lang/pretzyl/internal/panicerr"
)

// New builds an interpreter around an Environment. The default operator set
// is installed and the default limits apply; options may override any of it.
func New(env Environment, opts ...Option) *Pretzyl {
	p := &Pretzyl{
		env:    env,
		ops:    DefaultOperators(),
		macros: make(map[string]string),
	}
	p.apply(opts...)
	return p
}

// Eval evaluates a program and returns the single value left at the bottom
// of the surviving stack, resolved against the Environment.
func (p *Pretzyl) Eval(program string) (interface{}, error) {
	items, err := p.EvalN(program, 1, true)
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// EvalN evaluates a program and returns count values from the bottom of the
// surviving stack, in bottom-to-top order; pass All for every remaining
// value. With lookup set, returned References are resolved against the
// Environment; otherwise they come back raw.
//
// A panic inside a host capability is recovered and returned as an error
// rather than unwinding into the caller.
func (p *Pretzyl) EvalN(program string, count int, lookup bool) ([]interface{}, error) {
	var items []interface{}
	err := panicerr.Recover("pretzyl", func() (rerr error) {
		items, rerr = p.eval(program, count, lookup)
		return rerr
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func WithStackLimit(limit int) Option            { return stackLimitOption(limit) }
func WithStackDepth(depth int) Option            { return stackDepthOption(depth) }
func WithInfLimit(limit int) Option              { return infLimitOption(limit) }
func WithBrackets(open, close rune) Option       { return bracketsOption{open, close} }
func WithMacros(macros map[string]string) Option { return macrosOption(macros) }
func WithOperators(ops map[string]*Op) Option    { return operatorsOption(ops) }
func WithOperatorPath(path string) Option        { return operatorPathOption(path) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
