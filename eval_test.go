package pretzyl

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// testMacros gives the squash/repeat chains the short spellings the example
// programs use.
var testMacros = map[string]string{
	"sum":             "+ squash",
	"prod":            "* squash",
	"mul":             "*",
	"pathjoin-squash": "pathjoin squash",
}

func Test_eval(t *testing.T) {
	env := MapEnv{
		"name":  "Jack",
		"key":   "a7c34bd",
		"width": 640,
	}

	for _, tc := range []struct {
		name    string
		program string
		opts    []Option
		want    interface{}
		wantErr error
	}{
		{name: "literal", program: "True", want: true},
		{name: "arithmetic chain", program: "2 2 2 sum 4 mul", want: 24},
		{name: "nested frame first", program: "(2 2 2 sum) 4 mul", want: 24},
		{name: "inner frame folds to one value", program: "(2 2 sum) 4 prod", want: 16},
		{name: "empty frame folds to nothing", program: "( ) 5", want: 5},
		{name: "squash", program: "2 2 2 2 * squash", want: 16},
		{name: "repeat", program: "'hello [' name ']!' + 2 repeat", want: "hello [Jack]!"},
		{name: "less false", program: "5 4 <", want: false},
		{name: "less true", program: "4 5 <", want: true},
		{name: "invert", program: "5 4 < !", want: true},
		{name: "greater equal", program: "5 4 >=", want: true},
		{name: "toreference", program: "'name' ~", want: "Jack"},
		{name: "environment data", program: "width", want: 640},
		{name: "octal literal", program: "010 8 ==", want: true},
		{name: "hex literal", program: "0x10 16 ==", want: true},
		{name: "float division", program: "5.0 2 /", want: 2.5},
		{name: "int division", program: "7 2 /", want: 3},
		{name: "string contains", program: "'hello' 'ell' contains", want: true},
		{name: "compound contains", program: "('a' 'b') 'b' contains", want: true},
		{name: "compound lacks", program: "('a' 'b') 'c' contains", want: false},
		{name: "exists", program: "name exists", want: true},
		{name: "not exists", program: "sammy exists", want: false},
		{
			name:    "pathjoin round trip",
			program: "'static' 'css' ('site-' key '.html' sum) pathjoin-squash",
			want:    "static/css/site-a7c34bd.html",
		},

		{name: "unbound reference", program: "sammy", wantErr: ErrInvalidReference},
		{name: "too few closes", program: "( ( )", wantErr: ErrNesting},
		{name: "too many closes", program: "( ( ) ) )", wantErr: ErrNesting},
		{name: "operator starves", program: "highlander +", wantErr: ErrStackUnderflow},
		{name: "empty program", program: "", wantErr: ErrStackUnderflow},
		{
			name:    "stack limit",
			program: "0 1 2 3 4 5 6 7 8 9 10",
			opts:    []Option{WithStackLimit(10)},
			wantErr: ErrStackOverflow,
		},
		{
			name:    "stack depth",
			program: "( ( ( ( ( ( ) ) ) ) ) )",
			opts:    []Option{WithStackDepth(5)},
			wantErr: ErrRecursionOverflow,
		},
		{
			name:    "squash never starves",
			program: "0 1 2 3 4 5 6 sum",
			opts:    []Option{WithInfLimit(5)},
			wantErr: ErrIterationOverflow,
		},
		{
			name:    "repeat count beyond limit",
			program: "1 2 + 6 repeat",
			opts:    []Option{WithInfLimit(5)},
			wantErr: ErrIterationOverflow,
		},
		{name: "repeat starves", program: "2 2 + 5 repeat", wantErr: ErrStackUnderflow},
		{name: "repeat count not positive", program: "2 2 + 0 repeat", wantErr: ErrBadProgram},
		{name: "repeat count not numeric", program: "2 2 + 'x' repeat", wantErr: ErrBadProgram},
		{name: "repeat with nothing to repeat", program: "3 repeat", wantErr: ErrBadProgram},
		{name: "squash with nothing to repeat", program: "squash", wantErr: ErrBadProgram},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opts := append([]Option{WithMacros(testMacros)}, tc.opts...)
			p := New(env, opts...)
			v, err := p.Eval(tc.program)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

func Test_eval_heap_balance(t *testing.T) {
	// every balanced program ends with exactly one stack
	p := New(MapEnv{}, WithMacros(testMacros))
	for _, program := range []string{
		"1",
		"(1)",
		"(1 (2 3) 4) 5",
		"( ) ( ) 1",
		"(2 2 2 sum) 4 mul",
	} {
		_, err := p.Eval(program)
		require.NoError(t, err, "program %q", program)
		assert.Equal(t, 1, p.heap.depth(), "program %q", program)
	}
}

func Test_eval_results(t *testing.T) {
	env := MapEnv{"width": 640}
	p := New(env)

	items, err := p.EvalN("1 2 3", All, true)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2, 3}, items, "All drains bottom-to-top")

	items, err = p.EvalN("1 2 3", 2, true)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{2, 3}, items)

	items, err = p.EvalN("width", 1, false)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{Reference{"width"}}, items, "raw results keep references")

	items, err = p.EvalN("1 2 3", 0, true)
	require.NoError(t, err)
	assert.Empty(t, items, "count 0 returns nothing")
}

func Test_eval_strftime(t *testing.T) {
	env := MapEnv{"published": time.Date(2016, time.March, 7, 0, 0, 0, 0, time.UTC)}
	p := New(env)
	v, err := p.Eval("published '%Y-%m-%d' strftime")
	require.NoError(t, err)
	assert.Equal(t, "2016-03-07", v)
}

func Test_eval_truncate(t *testing.T) {
	p := New(MapEnv{})
	v, err := p.Eval("'<p>one <b>two</b> three</p>' truncate")
	require.NoError(t, err)
	assert.Equal(t, "one two three", v)
}

func Test_eval_custom_brackets(t *testing.T) {
	p := New(MapEnv{}, WithMacros(testMacros), WithBrackets('[', ']'))
	v, err := p.Eval("[2 2 2 sum] 4 mul")
	require.NoError(t, err)
	assert.Equal(t, 24, v)
}

func Test_eval_reuse_resets_state(t *testing.T) {
	p := New(MapEnv{}, WithMacros(testMacros))

	_, err := p.Eval("( ( )")
	assert.ErrorIs(t, err, ErrNesting)

	// a fresh evaluation starts with a clean heap and no lastop
	v, err := p.Eval("2 3 +")
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = p.Eval("squash")
	assert.ErrorIs(t, err, ErrBadProgram, "lastop does not leak across evaluations")
}

func Test_eval_trace(t *testing.T) {
	var lines []string
	p := New(MapEnv{}, WithLogf(func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}))

	_, err := p.Eval("(2 3 +)")
	require.NoError(t, err)
	assert.NotEmpty(t, lines, "an injected logfn sees the evaluation")

	lines = nil
	q := New(MapEnv{})
	_, err = q.Eval("(2 3 +)")
	require.NoError(t, err)
	assert.Empty(t, lines, "no logfn, no logging; there is no global toggle")
}

func Test_eval_concurrent_instances(t *testing.T) {
	env := MapEnv{"key": "a7c34bd"}

	var group errgroup.Group
	for i := 0; i < 8; i++ {
		group.Go(func() error {
			p := New(env, WithMacros(testMacros))
			for j := 0; j < 50; j++ {
				v, err := p.Eval("'static' 'css' ('site-' key '.html' sum) pathjoin-squash")
				if err != nil {
					return err
				}
				if v != "static/css/site-a7c34bd.html" {
					return fmt.Errorf("unexpected result %v", v)
				}
			}
			return nil
		})
	}
	require.NoError(t, group.Wait())
}
