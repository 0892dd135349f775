package md2roff

import "errors"

// MaxListDepth bounds the number of simultaneously open list frames.
const MaxListDepth = 32

// ErrListTooDeep reports list nesting beyond MaxListDepth.
var ErrListTooDeep = errors.New("list nesting too deep")

// ListKind distinguishes bulleted from numbered lists.
type ListKind uint8

const (
	// Unordered is a bulleted list.
	Unordered ListKind = iota
	// Ordered is a numbered list.
	Ordered
)

// ListFrame is one open list level. Counter holds the number the next
// ordered item at this level will carry.
type ListFrame struct {
	Kind    ListKind
	Counter int
}

// ListStack tracks currently open list levels, top last. The zero value
// is an empty stack ready for use.
type ListStack struct {
	frames    []ListFrame
	framesArr [MaxListDepth]ListFrame
}

// Reset empties the stack for a new document.
func (s *ListStack) Reset() {
	s.frames = s.framesArr[:0]
}

// Depth returns the number of open list levels.
func (s *ListStack) Depth() int {
	return len(s.frames)
}

// Push opens a new list level of the given kind. Ordered counters start
// at 1 until seeded from an explicitly written item number.
func (s *ListStack) Push(kind ListKind) error {
	if s.frames == nil {
		s.frames = s.framesArr[:0]
	}
	if len(s.frames) >= MaxListDepth {
		return ErrListTooDeep
	}
	s.frames = append(s.frames, ListFrame{Kind: kind, Counter: 1})
	return nil
}

// Pop closes the innermost list level. Popping an empty stack is a no-op.
func (s *ListStack) Pop() {
	if len(s.frames) == 0 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Top returns the innermost open frame, or nil when no list is open.
func (s *ListStack) Top() *ListFrame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}
