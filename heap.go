package pretzyl

import "fmt"

// All may be passed anywhere a count is expected to mean "every remaining
// entry on the active stack".
const All = -1

// A stackHeap is the bounded stack-of-stacks that realizes bracket nesting.
// The last stack is the active one. Nesting depth is a data-structure bound,
// not host call-stack recursion, so deeply bracketed programs fail cleanly
// with ErrRecursionOverflow instead of blowing the goroutine stack.
//
// The heap stores raw entries only; resolving References against the
// Environment is the interpreter's business.
type stackHeap struct {
	stacks     [][]interface{}
	stackLimit int
	stackDepth int
}

func newStackHeap(stackLimit, stackDepth int) *stackHeap {
	return &stackHeap{
		stacks:     make([][]interface{}, 1),
		stackLimit: stackLimit,
		stackDepth: stackDepth,
	}
}

// depth reports how many stacks the heap holds. A finished program must
// leave exactly one.
func (h *stackHeap) depth() int { return len(h.stacks) }

// size reports how many entries the active stack holds.
func (h *stackHeap) size() int { return len(h.stacks[len(h.stacks)-1]) }

func (h *stackHeap) push(v interface{}) error {
	top := len(h.stacks) - 1
	if len(h.stacks[top]) >= h.stackLimit {
		return fmt.Errorf("%w: stack limit %v reached", ErrStackOverflow, h.stackLimit)
	}
	h.stacks[top] = append(h.stacks[top], v)
	return nil
}

// pop removes the top count entries from the active stack, returning them in
// original bottom-to-top order. A count of 0 is a no-op; All drains the
// stack.
func (h *stackHeap) pop(count int) ([]interface{}, error) {
	top := len(h.stacks) - 1
	stack := h.stacks[top]
	if count == All {
		count = len(stack)
	}
	if count <= 0 {
		return nil, nil
	}
	if len(stack) < count {
		return nil, fmt.Errorf("%w: need %v entries, have %v", ErrStackUnderflow, count, len(stack))
	}
	items := make([]interface{}, count)
	copy(items, stack[len(stack)-count:])
	h.stacks[top] = stack[:len(stack)-count]
	return items, nil
}

// peek is pop without removal.
func (h *stackHeap) peek(count int) ([]interface{}, error) {
	top := len(h.stacks) - 1
	stack := h.stacks[top]
	if count == All {
		count = len(stack)
	}
	if count <= 0 {
		return nil, nil
	}
	if len(stack) < count {
		return nil, fmt.Errorf("%w: need %v entries, have %v", ErrStackUnderflow, count, len(stack))
	}
	items := make([]interface{}, count)
	copy(items, stack[len(stack)-count:])
	return items, nil
}

// pushFrame opens a nested evaluation context: a fresh empty stack becomes
// the active one.
func (h *stackHeap) pushFrame() error {
	if len(h.stacks) >= h.stackDepth {
		return fmt.Errorf("%w: stack depth %v reached", ErrRecursionOverflow, h.stackDepth)
	}
	h.stacks = append(h.stacks, nil)
	return nil
}

// popFrame closes the active context, folding its contents onto the stack
// below: a single entry is pushed as-is, several entries are pushed as one
// compound value, an empty frame contributes nothing.
func (h *stackHeap) popFrame() error {
	if len(h.stacks) == 1 {
		return fmt.Errorf("%w: no open bracket to close", ErrNesting)
	}
	frame := h.stacks[len(h.stacks)-1]
	h.stacks = h.stacks[:len(h.stacks)-1]
	switch {
	case len(frame) == 1:
		return h.push(frame[0])
	case len(frame) > 1:
		return h.push([]interface{}(frame))
	}
	return nil
}
