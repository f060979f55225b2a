package pretzyl

import "errors"

// The failure taxonomy. Every error returned by evaluation wraps exactly one
// of these sentinels, so callers (and the squash modifier, which treats a
// starved stack as its stopping condition) can classify failures with
// errors.Is.
var (
	// ErrStackOverflow: a push would exceed the per-stack entry limit.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow: a pop or peek asked for more entries than the
	// active stack holds.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrRecursionOverflow: an opening bracket would exceed the stack depth
	// limit.
	ErrRecursionOverflow = errors.New("recursion overflow")

	// ErrNesting: a closing bracket with no open bracket to match, or open
	// brackets left unclosed at the end of a program.
	ErrNesting = errors.New("mismatched brackets")

	// ErrIterationOverflow: a modifier loop hit the iteration limit without
	// reaching its expected stopping condition.
	ErrIterationOverflow = errors.New("iteration overflow")

	// ErrInvalidReference: a reference's name is not in the Environment.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrBadProgram: an operator was used in a way that can never succeed,
	// such as a modifier with no prior operator to repeat.
	ErrBadProgram = errors.New("bad program")
)
