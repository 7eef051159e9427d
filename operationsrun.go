package dfa

// Run walks d over the whole input from the start state of cfg and returns
// the pattern ids of the state it ends in. ok is false when the walk ends in
// a non-match state, including when it reaches the dead state early. A walk
// that reaches a quit state stops there and reports quit.
func Run(d *DFA, cfg StartConfig, input []byte) (pids []PatternID, ok, quit bool) {
	state := d.Start(cfg)
	for _, b := range input {
		if state == DeadID {
			return nil, false, false
		}
		if d.IsQuit(state) {
			return nil, false, true
		}
		state = d.Next(state, b)
	}
	if d.IsQuit(state) {
		return nil, false, true
	}
	pids = d.MatchPatterns(state)
	return pids, len(pids) > 0, false
}

// RunString is Run from DefaultStartConfig, reporting only whether s matches.
func RunString(d *DFA, s string) bool {
	_, ok, _ := Run(d, DefaultStartConfig(), []byte(s))
	return ok
}
