package ui

import tea "github.com/charmbracelet/bubbletea"

// OverlayStack manages modal overlays layered above the active page. While
// any overlay is present it owns key input; overlays exist only while on the
// stack, so repeated open/close cannot leak handlers or double-register.
type OverlayStack struct {
	stack []View
}

// Push adds an overlay on top of the stack.
func (s *OverlayStack) Push(v View) {
	s.stack = append(s.stack, v)
}

// Pop removes and returns the top overlay. Returns nil if empty.
func (s *OverlayStack) Pop() View {
	if len(s.stack) == 0 {
		return nil
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top
}

// Peek returns the top overlay without removing it. Returns nil if empty.
func (s *OverlayStack) Peek() View {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// Len returns the number of overlays on the stack.
func (s *OverlayStack) Len() int {
	return len(s.stack)
}

// UpdateTop passes msg to the top overlay and stores the returned View.
// Reports false when the stack is empty.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	newView, cmd := s.stack[len(s.stack)-1].Update(msg)
	s.stack[len(s.stack)-1] = newView
	return cmd, true
}
