package pretzyl

import (
	"errors"
	"fmt"
)

// An Op is a capability: a named unit of behavior a program can dispatch by
// reference. Exactly one of Apply or Run must be set.
//
// Apply is the value-producing shape: it receives the popped arguments and
// returns one value, which the engine pushes. Run is the bare shape: it
// receives the interpreter as well and is solely responsible for any stack
// mutation, including zero or several pushes.
//
// The stack belongs to the evaluation, not the capability: an Op must not
// retain the interpreter or anything popped beyond its own invocation.
type Op struct {
	// Arity is how many entries are popped off the active stack as
	// arguments; All consumes every remaining entry.
	Arity int

	// Raw passes popped References through unresolved. Most operators want
	// resolved values; short-circuiting ones take raw arguments so that an
	// operand they discard is never resolved.
	Raw bool

	// Modifier marks an op that re-runs the previously dispatched op
	// instead of doing fresh work. Modifiers do not become lastop.
	Modifier bool

	Apply func(args []interface{}) (interface{}, error)
	Run   func(p *Pretzyl, args []interface{}) error
}

// dispatch attempts to treat a reference as an operator invocation. A false
// return with nil error means the name does not resolve to a capability and
// the token is the evaluator's to push as plain data.
func (p *Pretzyl) dispatch(ref Reference) (bool, error) {
	op, ok := p.resolveOp(ref.Name)
	if !ok {
		return false, nil
	}
	p.logf("!", "dispatch %v", ref.Name)
	if err := p.invoke(op); err != nil {
		return false, err
	}
	if !op.Modifier {
		p.lastop = op
	}
	return true, nil
}

// resolveOp decides whether a name is bound to a capability. With an
// operator path configured, that sub-namespace is consulted exclusively for
// host-bound capabilities, keeping them from colliding with plain data;
// without one, the environment's top level serves. The built-in registry is
// checked either way. A name that is bound but not to an *Op does not
// dispatch.
func (p *Pretzyl) resolveOp(name string) (*Op, bool) {
	if p.opPath == "" {
		if op, ok := p.ops[name]; ok {
			return op, true
		}
		if v, err := p.env.Get(name); err == nil {
			op, ok := v.(*Op)
			return op, ok
		}
		return nil, false
	}
	if v, err := p.env.Get(p.opPath); err == nil {
		if sub, ok := asEnvironment(v); ok {
			if v, err := sub.Get(name); err == nil {
				op, ok := v.(*Op)
				return op, ok
			}
		}
	}
	op, ok := p.ops[name]
	return op, ok
}

// invoke pops an op's arguments per its declared arity and lookup policy and
// runs it. Underflow and resolution failures propagate as-is; in particular
// an underflow here is what ends a squash loop.
func (p *Pretzyl) invoke(op *Op) error {
	args, err := p.Pop(op.Arity, !op.Raw)
	if err != nil {
		return err
	}
	if op.Apply != nil {
		v, err := op.Apply(args)
		if err != nil {
			return err
		}
		return p.Push(v)
	}
	return op.Run(p, args)
}

// repeatOp is the bounded repeat-by-count modifier. It pops a count N and
// runs the previous operator N-1 more times: the first run already happened
// when that operator was dispatched. Starving the stack mid-count is a real
// failure here, unlike under squash.
func repeatOp() *Op {
	return &Op{Arity: 1, Modifier: true, Run: func(p *Pretzyl, args []interface{}) error {
		if p.lastop == nil {
			return fmt.Errorf("%w: repeat with no operator to repeat", ErrBadProgram)
		}
		n, ok := intValue(args[0])
		if !ok || n <= 0 {
			return fmt.Errorf("%w: repeat needs a positive count, got %v", ErrBadProgram, args[0])
		}
		if n > p.infLimit {
			return fmt.Errorf("%w: repeat count %v exceeds limit %v", ErrIterationOverflow, n, p.infLimit)
		}
		defer p.withLogPrefix("repeat ")()
		for i := 1; i < n; i++ {
			if err := p.invoke(p.lastop); err != nil {
				return err
			}
		}
		return nil
	}}
}

// squashOp is the repeat-until-underflow modifier. It reruns the previous
// operator until that operator starves the stack; the resulting
// ErrStackUnderflow -- and only that kind -- is the expected stopping
// condition, not a failure. The iteration limit is the independent runaway
// guard: an operator that never shrinks the stack trips it.
func squashOp() *Op {
	return &Op{Arity: 0, Modifier: true, Run: func(p *Pretzyl, _ []interface{}) error {
		if p.lastop == nil {
			return fmt.Errorf("%w: squash with no operator to repeat", ErrBadProgram)
		}
		defer p.withLogPrefix("squash ")()
		for i := 0; i < p.infLimit; i++ {
			err := p.invoke(p.lastop)
			if errors.Is(err, ErrStackUnderflow) {
				return nil
			}
			if err != nil {
				return err
			}
		}
		return fmt.Errorf("%w: %v iterations without underflow", ErrIterationOverflow, p.infLimit)
	}}
}
