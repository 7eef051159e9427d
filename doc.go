/*
Package dfa minimizes dense deterministic finite automata.

A DFA is a dense table of states over a reduced byte alphabet (see
ByteClasses). Every state has exactly one transition per alphabet unit, may
report a list of pattern ids (match state) and may be flagged as a quit
state. State 0 is always the dead state.

Minimize computes the coarsest partition of states that cannot be told
apart by any input, using Hopcroft's partition refinement, and rewrites
the DFA in place so that every equivalence class is represented by exactly
one state. State ids change during minimization; anything that refers to
states by id must be built afterwards.

	d := dfa.NewDFA(dfa.SingletonByteClasses())
	s := d.CreateState()
	...
	d.Finish()
	dfa.Minimize(d)
*/
package dfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dfa'
func tracer() tracing.Trace {
	return tracing.Select("dfa")
}

// invariant panics with msg when condition does not hold. It marks
// programming errors, never bad input.
func invariant(condition bool, msg string) {
	if !condition {
		tracer().Errorf("%s", msg)
		panic(msg)
	}
}
