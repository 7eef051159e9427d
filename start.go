package dfa

import (
	"fmt"
	"iter"
)

// StartKind is the look-behind context a search starts in.
type StartKind uint8

const (
	// StartNonWord - previous byte was not a word byte [a-zA-Z0-9_]
	StartNonWord StartKind = iota

	// StartWord - previous byte was a word byte
	StartWord

	// StartText - no previous byte, beginning of input
	StartText

	// StartLineLF - previous byte was \n
	StartLineLF

	// StartLineCR - previous byte was \r
	StartLineCR

	startKindCount
)

// String returns a human-readable representation of the StartKind
func (k StartKind) String() string {
	switch k {
	case StartNonWord:
		return "NonWord"
	case StartWord:
		return "Word"
	case StartText:
		return "Text"
	case StartLineLF:
		return "LineLF"
	case StartLineCR:
		return "LineCR"
	default:
		return "Unknown"
	}
}

// StartConfig selects one entry of a StartTable.
type StartConfig struct {
	Kind     StartKind
	Anchored bool
}

func (c StartConfig) String() string {
	if c.Anchored {
		return fmt.Sprintf("anchored/%s", c.Kind)
	}
	return fmt.Sprintf("unanchored/%s", c.Kind)
}

// DefaultStartConfig is an unanchored search at the beginning of input.
func DefaultStartConfig() StartConfig {
	return StartConfig{Kind: StartText}
}

// AllStartConfigs returns every key of a StartTable, unanchored first.
func AllStartConfigs() []StartConfig {
	configs := make([]StartConfig, 0, int(startKindCount)*2)
	for anchored := 0; anchored < 2; anchored++ {
		for kind := StartKind(0); kind < startKindCount; kind++ {
			configs = append(configs, StartConfig{
				Kind:     kind,
				Anchored: anchored == 1,
			})
		}
	}
	return configs
}

// StartTable holds the start state of every (anchored, StartKind) pair.
// Slots that were never set point at the dead state.
type StartTable struct {
	// states[anchored][kind]
	states [2][startKindCount]StateID
}

// NewStartTable returns a table with every slot on DeadID.
func NewStartTable() *StartTable {
	st := &StartTable{}
	for i := 0; i < 2; i++ {
		for j := 0; j < int(startKindCount); j++ {
			st.states[i][j] = DeadID
		}
	}
	return st
}

// Get returns the start state for cfg.
func (st *StartTable) Get(cfg StartConfig) StateID {
	return st.states[anchoredIndex(cfg.Anchored)][cfg.Kind]
}

// Set stores the start state for cfg.
func (st *StartTable) Set(cfg StartConfig, id StateID) {
	st.states[anchoredIndex(cfg.Anchored)][cfg.Kind] = id
}

// All yields every slot in AllStartConfigs order.
func (st *StartTable) All() iter.Seq2[StartConfig, StateID] {
	return func(yield func(StartConfig, StateID) bool) {
		for _, cfg := range AllStartConfigs() {
			if !yield(cfg, st.Get(cfg)) {
				return
			}
		}
	}
}

// remap rewrites every slot through fn.
func (st *StartTable) remap(fn func(StateID) StateID) {
	for i := range st.states {
		for j := range st.states[i] {
			st.states[i][j] = fn(st.states[i][j])
		}
	}
}

func (st *StartTable) clone() *StartTable {
	c := *st
	return &c
}

func anchoredIndex(anchored bool) int {
	if anchored {
		return 1
	}
	return 0
}
