//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimizer

import (
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/markkurossi/tacopt/quad"
)

func parse(t *testing.T, data string) []quad.Quadruple {
	t.Helper()
	quads, err := quad.ParseString(data)
	require.NoError(t, err)
	return quads
}

func render(quads []quad.Quadruple) string {
	var sb strings.Builder
	for _, q := range quads {
		sb.WriteString(q.String())
		sb.WriteRune('\n')
	}
	return sb.String()
}

func TestOptimize(t *testing.T) {
	input := parse(t, `
(*, A, B, T1)
(/, 6, 2, T2)
(-, T1, T2, T3)
(=, T3, , X)
(=, 5, , C)
(*, A, B, T4)
(=, 2, , C)
(+, 18, C, T5)
(*, T4, T5, T6)
(=, T6, , Y)
`)
	expected := `(*, A, B, T1)
(=, T1, , T4)
(=, 3, , T2)
(-, T1, T2, T3)
(=, T3, , X)
(=, 2, , C)
(+, 18, C, T5)
(*, T1, T5, T6)
(=, T6, , Y)
`
	result, err := Optimize(input)
	require.NoError(t, err)
	require.Equal(t, expected, render(result),
		"unexpected output:\n%s", spew.Sdump(result))
}

func TestOptimizeCSE(t *testing.T) {
	// Two non-adjacent operations over the same operand values
	// produce exactly one computation; every other affected result
	// name becomes a copy of it.
	input := parse(t, `
(+, A, B, T1)
(*, T1, C, T2)
(+, A, B, T3)
(*, T3, C, T4)
`)
	result, err := Optimize(input)
	require.NoError(t, err)

	var computations int
	for _, q := range result {
		if !q.IsAssign() {
			computations++
		}
	}
	require.Equal(t, 2, computations,
		"repeated computations survived:\n%s", render(result))
}

func TestOptimizeConstantFolding(t *testing.T) {
	// No arithmetic instruction over two literal operands survives.
	input := parse(t, `
(*, 3, 4, T1)
(+, T1, 5, T2)
(-, 10, 4, T3)
(+, T2, T3, T4)
(=, T4, , X)
`)
	result, err := Optimize(input)
	require.NoError(t, err)

	for _, q := range result {
		if q.IsAssign() {
			continue
		}
		literals := isLiteral(q.Arg1) &&
			(len(q.Arg2) == 0 || isLiteral(q.Arg2))
		require.False(t, literals,
			"constant operation survived: %s\n%s", q, render(result))
	}
}

func TestOptimizeDeadValues(t *testing.T) {
	// A value fully superseded before block end never appears in the
	// output.
	input := parse(t, `
(=, 5, , C)
(+, A, A, C)
(=, 2, , C)
`)
	result, err := Optimize(input)
	require.NoError(t, err)
	require.Equal(t, "(=, 2, , C)\n", render(result),
		"dead values survived:\n%s", spew.Sdump(result))
}

// eval executes the quadruples, resolving unbound variable operands
// with the inputs function.
func eval(t *testing.T, quads []quad.Quadruple) map[string]int {
	t.Helper()

	state := make(map[string]int)
	value := func(text string) int {
		if isLiteral(text) {
			v, err := strconv.Atoi(text)
			require.NoError(t, err)
			return v
		}
		v, ok := state[text]
		if !ok {
			// Deterministic stand-in input value.
			for _, b := range []byte(text) {
				v += int(b)
			}
			state[text] = v
		}
		return v
	}
	for _, q := range quads {
		switch q.Op {
		case "=":
			if len(q.Arg1) > 0 {
				state[q.Result] = value(q.Arg1)
			}
		case "+":
			state[q.Result] = value(q.Arg1) + value(q.Arg2)
		case "-":
			state[q.Result] = value(q.Arg1) - value(q.Arg2)
		case "*":
			state[q.Result] = value(q.Arg1) * value(q.Arg2)
		case "/":
			state[q.Result] = value(q.Arg1) / value(q.Arg2)
		default:
			t.Fatalf("cannot interpret %s", q)
		}
	}
	return state
}

func TestOptimizeIdempotent(t *testing.T) {
	input := parse(t, `
(*, A, B, T1)
(/, 6, 2, T2)
(-, T1, T2, T3)
(=, T3, , X)
(=, 5, , C)
(*, A, B, T4)
(=, 2, , C)
(+, 18, C, T5)
(*, T4, T5, T6)
(=, T6, , Y)
`)
	once, err := Optimize(input)
	require.NoError(t, err)

	twice, err := Optimize(once)
	require.NoError(t, err)
	require.LessOrEqual(t, len(twice), len(once))

	ref := eval(t, input)
	for _, result := range [][]quad.Quadruple{once, twice} {
		state := eval(t, result)
		for name, v := range ref {
			require.Equal(t, v, state[name],
				"final value of %s diverged:\n%s", name, render(result))
		}
	}
}
