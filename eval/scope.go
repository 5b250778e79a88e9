package eval

import "github.com/jingolang/jingo/value"

// scope is a stack of variable frames, deepest (most local) last.
// lookup walks frames innermost-first before the caller falls through
// to the host. A stack of mutable frames avoids wrapping the lookup
// callback for every loop iteration.
type scope []map[string]value.Value

func newScope() scope {
	return scope{make(map[string]value.Value)}
}

func (s *scope) push() {
	*s = append(*s, make(map[string]value.Value))
}

func (s *scope) pop() {
	*s = (*s)[:len(*s)-1]
}

// set binds k to v in the innermost frame.
func (s scope) set(k string, v value.Value) {
	s[len(s)-1][k] = v
}

// lookup searches frames innermost-first; ok is false if no frame
// binds k, in which case the caller should fall through to the host.
func (s scope) lookup(k string) (value.Value, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if v, ok := s[i][k]; ok {
			return v, true
		}
	}
	return nil, false
}

// snapshot copies the frame stack (not the frames themselves) so a
// macro or lambda closure can carry the scope as it existed at
// definition time independent of later pushes/pops on the defining
// state. Because frames are shared by reference, a set() reachable
// through the snapshot is visible to the original stack too; this is
// ordinary lexical-closure sharing, not a deep copy.
func (s scope) snapshot() scope {
	out := make(scope, len(s))
	copy(out, s)
	return out
}
