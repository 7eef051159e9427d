package dfa

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// StateID is a dense, zero-based index into the state table of a DFA.
type StateID uint32

// PatternID identifies a pattern reported by a match state.
type PatternID uint32

// DeadID is the dead state: never a match, never a quit state, and every
// transition leaving it loops back to it. Every DFA has it.
const DeadID StateID = 0

var (
	ErrInvalidState = errors.New("state id out of range")
	ErrInvalidUnit  = errors.New("alphabet unit out of range")
	ErrDeadState    = errors.New("dead state cannot be modified")
	ErrNoPatterns   = errors.New("match state needs at least one pattern id")
	ErrInconsistent = errors.New("inconsistent DFA")
)

// DFA is a dense deterministic automaton. States are created with
// CreateState, and every new state starts with all of its transitions on
// the dead state. Mark a state as a match state with SetMatch, as a quit
// state with SetQuit, wire transitions with SetTransition and register start
// states with SetStart. Call Finish once the DFA is complete; it computes
// the Special summary that Minimize keeps up to date.
type DFA struct {
	classes ByteClasses

	// Number of alphabet units; row s of trans is trans[s*stride:(s+1)*stride].
	stride int

	// Target of every transition, one row per state.
	trans []StateID

	isMatch *bitset.BitSet
	isQuit  *bitset.BitSet

	// Pattern ids of every match state, in the order they were given.
	patterns map[StateID][]PatternID

	starts  *StartTable
	special Special
}

type options struct {
	stateCapacity int
}

// Option configures NewDFA.
type Option func(*options)

// WithStateCapacity preallocates room for n states.
func WithStateCapacity(n int) Option {
	return func(o *options) {
		o.stateCapacity = n
	}
}

// NewDFA returns a DFA over the given alphabet that only has the dead state.
func NewDFA(classes ByteClasses, opts ...Option) *DFA {
	o := &options{stateCapacity: 2}
	for _, fn := range opts {
		fn(o)
	}
	o.stateCapacity = max(o.stateCapacity, 1)

	stride := classes.AlphabetLen()
	d := &DFA{
		classes:  classes,
		stride:   stride,
		trans:    make([]StateID, 0, o.stateCapacity*stride),
		isMatch:  bitset.New(uint(o.stateCapacity)),
		isQuit:   bitset.New(uint(o.stateCapacity)),
		patterns: make(map[StateID][]PatternID),
		starts:   NewStartTable(),
		special:  Special{},
	}
	d.CreateState() // dead
	return d
}

// CreateState adds a state whose transitions all lead to the dead state.
func (d *DFA) CreateState() StateID {
	id := StateID(d.NumStates())
	// the zero value of StateID is DeadID
	d.trans = grow(d.trans, len(d.trans)+d.stride)
	return id
}

// NumStates returns the number of states, the dead state included.
func (d *DFA) NumStates() int {
	return len(d.trans) / d.stride
}

// AlphabetLen returns the number of alphabet units.
func (d *DFA) AlphabetLen() int {
	return d.stride
}

// ByteClasses returns the alphabet of the DFA.
func (d *DFA) ByteClasses() ByteClasses {
	return d.classes
}

func (d *DFA) checkState(id StateID) error {
	if int(id) >= d.NumStates() {
		return fmt.Errorf("state %d of %d: %w", id, d.NumStates(), ErrInvalidState)
	}
	return nil
}

func (d *DFA) checkMutable(id StateID) error {
	if err := d.checkState(id); err != nil {
		return err
	}
	if id == DeadID {
		return ErrDeadState
	}
	return nil
}

// SetTransition points the transition of from on the given alphabet unit at to.
func (d *DFA) SetTransition(from StateID, unit byte, to StateID) error {
	if err := d.checkMutable(from); err != nil {
		return err
	}
	if err := d.checkState(to); err != nil {
		return err
	}
	if int(unit) >= d.stride {
		return fmt.Errorf("unit %d of %d: %w", unit, d.stride, ErrInvalidUnit)
	}
	d.trans[int(from)*d.stride+int(unit)] = to
	return nil
}

// SetByteTransition sets the transition of from on the unit of b.
func (d *DFA) SetByteTransition(from StateID, b byte, to StateID) error {
	return d.SetTransition(from, d.classes.Get(b), to)
}

// SetByteRangeTransition sets the transitions of from on the units of every
// byte in [lo, hi].
func (d *DFA) SetByteRangeTransition(from StateID, lo, hi byte, to StateID) error {
	for b := int(lo); b <= int(hi); b++ {
		if err := d.SetByteTransition(from, byte(b), to); err != nil {
			return err
		}
	}
	return nil
}

// SetMatch makes id a match state reporting the given pattern ids.
func (d *DFA) SetMatch(id StateID, pids ...PatternID) error {
	if err := d.checkMutable(id); err != nil {
		return err
	}
	if len(pids) == 0 {
		return fmt.Errorf("state %d: %w", id, ErrNoPatterns)
	}
	d.isMatch.Set(uint(id))
	d.patterns[id] = slices.Clone(pids)
	return nil
}

// SetQuit flags id as a quit state.
func (d *DFA) SetQuit(id StateID) error {
	if err := d.checkMutable(id); err != nil {
		return err
	}
	d.isQuit.Set(uint(id))
	return nil
}

// SetStart registers id as the start state for cfg.
func (d *DFA) SetStart(cfg StartConfig, id StateID) error {
	if err := d.checkState(id); err != nil {
		return err
	}
	if cfg.Kind >= startKindCount {
		return fmt.Errorf("start kind %d: %w", cfg.Kind, ErrInconsistent)
	}
	d.starts.Set(cfg, id)
	return nil
}

// SetAllStarts registers id as the start state of every configuration.
func (d *DFA) SetAllStarts(id StateID) error {
	for _, cfg := range AllStartConfigs() {
		if err := d.SetStart(cfg, id); err != nil {
			return err
		}
	}
	return nil
}

// Finish recomputes the Special summary from the state flags and the start
// table. Call it after the last modification.
func (d *DFA) Finish() {
	var matches, starts idRange
	for id := range d.eachSet(d.isMatch) {
		matches.add(id)
	}
	for _, id := range d.starts.All() {
		if id != DeadID {
			starts.add(id)
		}
	}
	d.special.MinMatch, d.special.MaxMatch = matches.bounds()
	d.special.MinStart, d.special.MaxStart = starts.bounds()
	d.special.QuitID = DeadID
	if q, ok := d.isQuit.NextSet(0); ok && q < uint(d.NumStates()) {
		d.special.QuitID = StateID(q)
	}
}

// eachSet yields the ids of the bits set in bs that are valid states.
func (d *DFA) eachSet(bs *bitset.BitSet) iter.Seq[StateID] {
	return func(yield func(StateID) bool) {
		n := uint(d.NumStates())
		for i, ok := bs.NextSet(0); ok && i < n; i, ok = bs.NextSet(i + 1) {
			if !yield(StateID(i)) {
				return
			}
		}
	}
}

// NextClass returns the target of id on an alphabet unit.
func (d *DFA) NextClass(id StateID, unit byte) StateID {
	return d.trans[int(id)*d.stride+int(unit)]
}

// Next returns the target of id on byte b.
func (d *DFA) Next(id StateID, b byte) StateID {
	return d.NextClass(id, d.classes.Get(b))
}

// row returns the transition row of id.
func (d *DFA) row(id StateID) []StateID {
	i := int(id) * d.stride
	return d.trans[i : i+d.stride]
}

// IsMatch reports whether id is a match state.
func (d *DFA) IsMatch(id StateID) bool {
	return d.isMatch.Test(uint(id))
}

// IsQuit reports whether id is a quit state.
func (d *DFA) IsQuit(id StateID) bool {
	return d.isQuit.Test(uint(id))
}

// IsDead reports whether id is the dead state.
func (d *DFA) IsDead(id StateID) bool {
	return id == DeadID
}

// MatchPatterns returns the pattern ids of a match state, nil otherwise.
// The slice is owned by the DFA.
func (d *DFA) MatchPatterns(id StateID) []PatternID {
	return d.patterns[id]
}

// PatternMap returns a copy of the match state to pattern ids map.
func (d *DFA) PatternMap() map[StateID][]PatternID {
	m := make(map[StateID][]PatternID, len(d.patterns))
	for id, pids := range d.patterns {
		m[id] = slices.Clone(pids)
	}
	return m
}

// Start returns the start state for cfg.
func (d *DFA) Start(cfg StartConfig) StateID {
	return d.starts.Get(cfg)
}

// Starts returns the start table. It must not be modified.
func (d *DFA) Starts() *StartTable {
	return d.starts
}

// Special returns the summary computed by Finish or updated by Minimize.
func (d *DFA) Special() Special {
	return d.special
}

// Clone returns a deep copy of d.
func (d *DFA) Clone() *DFA {
	return &DFA{
		classes:  d.classes,
		stride:   d.stride,
		trans:    slices.Clone(d.trans),
		isMatch:  d.isMatch.Clone(),
		isQuit:   d.isQuit.Clone(),
		patterns: d.PatternMap(),
		starts:   d.starts.clone(),
		special:  d.special,
	}
}

// Validate checks the structural invariants Minimize relies on.
func (d *DFA) Validate() error {
	n := d.NumStates()
	if n == 0 || len(d.trans)%d.stride != 0 {
		return fmt.Errorf("transition table of %d entries, stride %d: %w", len(d.trans), d.stride, ErrInconsistent)
	}
	for _, to := range d.row(DeadID) {
		if to != DeadID {
			return fmt.Errorf("dead state leaves to %d: %w", to, ErrInconsistent)
		}
	}
	if d.IsMatch(DeadID) || d.IsQuit(DeadID) {
		return fmt.Errorf("dead state is flagged: %w", ErrInconsistent)
	}
	if both := d.isMatch.IntersectionCardinality(d.isQuit); both > 0 {
		return fmt.Errorf("%d states are both match and quit: %w", both, ErrInconsistent)
	}
	for i, to := range d.trans {
		if int(to) >= n {
			return fmt.Errorf("state %d unit %d leaves to %d: %w", i/d.stride, i%d.stride, to, ErrInvalidState)
		}
	}
	for id := StateID(0); int(id) < n; id++ {
		if d.IsMatch(id) != (len(d.patterns[id]) > 0) {
			return fmt.Errorf("state %d match flag disagrees with pattern map: %w", id, ErrInconsistent)
		}
	}
	for id := range d.patterns {
		if int(id) >= n {
			return fmt.Errorf("pattern map key %d: %w", id, ErrInvalidState)
		}
	}
	for cfg, id := range d.starts.All() {
		if int(id) >= n {
			return fmt.Errorf("start %s: %w", cfg, ErrInvalidState)
		}
	}

	// Every flagged id has to be inside its summary range.
	sp := d.special
	for id := range d.eachSet(d.isMatch) {
		if !sp.Matches() || id < sp.MinMatch || id > sp.MaxMatch {
			return fmt.Errorf("match state %d outside %s: %w", id, sp, ErrInconsistent)
		}
	}
	for _, id := range d.starts.All() {
		if id != DeadID && (!sp.Starts() || id < sp.MinStart || id > sp.MaxStart) {
			return fmt.Errorf("start state %d outside %s: %w", id, sp, ErrInconsistent)
		}
	}
	if sp.HasQuit() != (d.isQuit.Count() > 0) || (sp.HasQuit() && !d.IsQuit(sp.QuitID)) {
		return fmt.Errorf("quit id %d: %w", sp.QuitID, ErrInconsistent)
	}
	return nil
}

// String dumps the DFA, one state per line.
func (d *DFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DFA(states=%d, alphabet=%d, %s)\n", d.NumStates(), d.stride, d.special)
	for id := StateID(0); int(id) < d.NumStates(); id++ {
		marker := ' '
		switch {
		case d.IsDead(id):
			marker = 'D'
		case d.IsQuit(id):
			marker = 'Q'
		case d.IsMatch(id):
			marker = '*'
		}
		fmt.Fprintf(&b, "%c%06d: %v", marker, id, d.row(id))
		if pids := d.patterns[id]; len(pids) > 0 {
			fmt.Fprintf(&b, " => %v", pids)
		}
		b.WriteByte('\n')
	}
	for _, cfg := range AllStartConfigs() {
		fmt.Fprintf(&b, "start %s: %d\n", cfg, d.starts.Get(cfg))
	}
	return b.String()
}

// remapState rewrites every transition leaving id through fn.
func (d *DFA) remapState(id StateID, fn func(StateID) StateID) {
	row := d.row(id)
	for i, to := range row {
		row[i] = fn(to)
	}
}

// swapStates exchanges the rows and flags of two states. Transitions
// pointing at either state are left alone.
func (d *DFA) swapStates(a, b StateID) {
	if a == b {
		return
	}
	ra, rb := d.row(a), d.row(b)
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
	swapBits(d.isMatch, uint(a), uint(b))
	swapBits(d.isQuit, uint(a), uint(b))
}

// truncateStates drops every state with an id >= n.
func (d *DFA) truncateStates(n int) {
	d.trans = d.trans[:n*d.stride]
	d.isMatch = d.isMatch.Shrink(uint(n - 1))
	d.isQuit = d.isQuit.Shrink(uint(n - 1))
}

// setPatternMap replaces the match state to pattern ids map.
func (d *DFA) setPatternMap(m map[StateID][]PatternID) {
	d.patterns = m
}

func swapBits(bs *bitset.BitSet, a, b uint) {
	ta, tb := bs.Test(a), bs.Test(b)
	bs.SetTo(a, tb)
	bs.SetTo(b, ta)
}

