// File: lexer/indent.go
package lexer

// IndentStack records the width each indentation level added on top of
// the previous one. The sum of the entries is the current depth.
type IndentStack struct {
	widths []int
}

// Depth returns the total indentation in columns.
func (s *IndentStack) Depth() int {
	depth := 0
	for _, w := range s.widths {
		depth += w
	}
	return depth
}

// Push opens a level ending at column level. level must exceed Depth.
func (s *IndentStack) Push(level int) {
	s.widths = append(s.widths, level-s.Depth())
}

// Pop closes the innermost level and returns its width.
func (s *IndentStack) Pop() int {
	if len(s.widths) == 0 {
		return 0
	}
	w := s.widths[len(s.widths)-1]
	s.widths = s.widths[:len(s.widths)-1]
	return w
}

// Collapse pops levels while the depth exceeds level. It returns the
// number of levels popped and whether the stack landed exactly on level.
func (s *IndentStack) Collapse(level int) (popped int, exact bool) {
	for s.Depth() > level {
		s.Pop()
		popped++
	}
	return popped, s.Depth() == level
}

// Reset drops every level and returns how many were open.
func (s *IndentStack) Reset() int {
	n := len(s.widths)
	s.widths = s.widths[:0]
	return n
}

// Widths returns a copy of the per-level widths.
func (s *IndentStack) Widths() []int {
	return append([]int(nil), s.widths...)
}
