/* Package pretzyl implements a small Forth-like stack based expression language.

Pretzyl is meant to be embedded: a host application hands the interpreter an
Environment (a namespace of names to values) and evaluates short textual
programs against it, typically to derive one value from several named ones --
for example building a file path out of configuration entries:

	env := pretzyl.MapEnv{"key": "a7c34bd"}
	p := pretzyl.New(env, pretzyl.WithMacros(map[string]string{
		"pathjoin*": "pathjoin squash",
		"+*":        "+ squash",
	}))
	v, _ := p.Eval("'static' 'css' ('site-' key '.html' +*) pathjoin*")
	// v == "static/css/site-a7c34bd.html"

Program text is broken into words, separated by whitespace and delimited by
quotes [', "] and brackets [(, )]. Evaluation starts with a fresh heap of
stacks containing one empty stack, and takes each word in turn:

  - an opening bracket pushes a new stack onto the heap of stacks
  - a closing bracket removes the top stack, folding its contents onto the
    stack below (one entry as-is, several as a single compound value)
  - a word naming an operator applies that operator to the stack
  - any other word is pushed onto the top stack

Once every word has been evaluated the surviving stack's bottom entries are
returned to the caller.

Words come in two kinds, literals and references. Literals are numbers,
strings, booleans and None. References are names, resolved against the
Environment -- usually just before an operator consumes them, or when the
final result is extracted.

Operators are non-greedy and run once. Two modifier operators re-run the most
recently applied operator: "repeat" runs it a fixed number of additional
times, and "squash" runs it until the stack starves. A macro table can give
such operator chains shorter spellings; expansion is textual, applied once
per word, and never recursive.

The interpreter is bounded everywhere: entries per stack, stacks per heap,
and modifier iterations are all hard limits configurable per instance, so a
malformed or hostile program fails fast instead of running away.

One interpreter instance must not evaluate concurrently with itself; give
each concurrent caller its own instance and share only the Environment and
macro table between them.
*/
package pretzyl
