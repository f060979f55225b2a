package pretzyl

import (
	"fmt"
	"strings"
)

// A Pretzyl evaluates programs against a host-supplied Environment. Build
// one with New; it may be reused for any number of evaluations, but holds
// per-evaluation state and so must not be used by overlapping Eval calls.
type Pretzyl struct {
	logging

	env    Environment
	ops    map[string]*Op
	opPath string
	macros map[string]string

	openBracket  rune
	closeBracket rune

	stackLimit int
	stackDepth int
	infLimit   int

	// per-evaluation state, reset at the start of every eval
	heap   *stackHeap
	lastop *Op
}

// eval drives one token stream through the heap and dispatcher. The full
// token sequence is produced up front; evaluation is synchronous and the
// first failure aborts the call with no partial result.
func (p *Pretzyl) eval(program string, count int, lookup bool) ([]interface{}, error) {
	p.heap = newStackHeap(p.stackLimit, p.stackDepth)
	p.lastop = nil
	for _, tok := range p.tokenize(program) {
		if ref, ok := tok.(Reference); ok {
			switch ref.Name {
			case string(p.openBracket):
				p.logf(">", "open frame %v", p.heap.depth()+1)
				if err := p.heap.pushFrame(); err != nil {
					return nil, err
				}
				continue
			case string(p.closeBracket):
				p.logf("<", "close frame %v", p.heap.depth())
				if err := p.heap.popFrame(); err != nil {
					return nil, err
				}
				continue
			default:
				done, err := p.dispatch(ref)
				if err != nil {
					return nil, err
				}
				if done {
					continue
				}
			}
		}
		// a literal, or a reference that names no operator: it goes on the
		// stack, resolution deferred to whoever consumes it
		p.logf(".", "push %v", tok)
		if err := p.heap.push(tok); err != nil {
			return nil, err
		}
	}
	if n := p.heap.depth(); n != 1 {
		return nil, fmt.Errorf("%w: %v brackets left open", ErrNesting, n-1)
	}
	return p.Pop(count, lookup)
}

// Push appends a value to the active stack. It is part of the operator API:
// bare capabilities use it to deliver their results.
func (p *Pretzyl) Push(v interface{}) error {
	return p.heap.push(v)
}

// Pop removes the top count entries from the active stack and returns them
// in original bottom-to-top order. With lookup set, References among them
// are resolved against the Environment. A count of 0 returns nothing; All
// drains the stack.
func (p *Pretzyl) Pop(count int, lookup bool) ([]interface{}, error) {
	items, err := p.heap.pop(count)
	if err != nil || !lookup {
		return items, err
	}
	return p.resolve(items)
}

// Peek is Pop without removal.
func (p *Pretzyl) Peek(count int, lookup bool) ([]interface{}, error) {
	items, err := p.heap.peek(count)
	if err != nil || !lookup {
		return items, err
	}
	return p.resolve(items)
}

func (p *Pretzyl) resolve(items []interface{}) ([]interface{}, error) {
	var err error
	for i, item := range items {
		if items[i], err = p.Lookup(item); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// logging is an injected trace sink: a nil logfn costs nearly nothing, and
// there is no process-wide toggle. The mark column grows to fit the widest
// mark seen so far, keeping interleaved traces scannable.
type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	if logfn == nil {
		return func() {}
	}
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
