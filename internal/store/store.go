// Package store implements the per-record field-value store. This package is
// internal and not part of the public API.
//
// Every slot is in one of three states: absent (no entry), scalar, or a
// sequence holding at least one element. A sequence never becomes observable
// with zero elements; removing its last element removes the slot.
package store

// Store maps field names to slots. The zero value is not usable; call New.
type Store struct {
	slots map[string]*slot
}

type slot struct {
	multi  bool
	scalar any
	seq    []any
}

// New returns an empty store.
func New() *Store { return &Store{slots: map[string]*slot{}} }

// Has reports whether name holds a value.
func (s *Store) Has(name string) bool {
	_, ok := s.slots[name]
	return ok
}

// Len returns the number of populated slots.
func (s *Store) Len() int { return len(s.slots) }

// Scalar returns the scalar stored under name.
func (s *Store) Scalar(name string) (any, bool) {
	sl, ok := s.slots[name]
	if !ok || sl.multi {
		return nil, false
	}
	return sl.scalar, true
}

// Seq returns a copy of the sequence stored under name.
func (s *Store) Seq(name string) ([]any, bool) {
	sl, ok := s.slots[name]
	if !ok || !sl.multi {
		return nil, false
	}
	out := make([]any, len(sl.seq))
	copy(out, sl.seq)
	return out, true
}

// SeqLen returns the number of elements stored under name (0 when absent or
// scalar).
func (s *Store) SeqLen(name string) int {
	sl, ok := s.slots[name]
	if !ok || !sl.multi {
		return 0
	}
	return len(sl.seq)
}

// Put stores v as the scalar value of name, replacing any previous value.
func (s *Store) Put(name string, v any) {
	s.slots[name] = &slot{scalar: v}
}

// Append adds vs to the end of the sequence under name, creating it on first
// use. Appending nothing leaves the slot untouched.
func (s *Store) Append(name string, vs ...any) {
	if len(vs) == 0 {
		return
	}
	sl, ok := s.slots[name]
	if !ok || !sl.multi {
		sl = &slot{multi: true}
		s.slots[name] = sl
	}
	sl.seq = append(sl.seq, vs...)
}

// Remove drops the slot under name. It reports whether a value was present.
func (s *Store) Remove(name string) bool {
	if _, ok := s.slots[name]; !ok {
		return false
	}
	delete(s.slots, name)
	return true
}

// RemoveAt drops element i of the sequence under name. When the sequence
// becomes empty the slot is removed. It reports false if there is no sequence
// or i is out of range, in which case nothing changes.
func (s *Store) RemoveAt(name string, i int) bool {
	sl, ok := s.slots[name]
	if !ok || !sl.multi || i < 0 || i >= len(sl.seq) {
		return false
	}
	sl.seq = append(sl.seq[:i:i], sl.seq[i+1:]...)
	if len(sl.seq) == 0 {
		delete(s.slots, name)
	}
	return true
}
