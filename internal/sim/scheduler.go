package sim

// TickScheduler is a FrameScheduler driven by a host loop that calls Fire once per tick.
// It holds at most one pending frame; scheduling again replaces it.
type TickScheduler struct {
	pending func()
}

func (s *TickScheduler) ScheduleNext(frame func()) {
	s.pending = frame
}

func (s *TickScheduler) CancelPending() {
	s.pending = nil
}

func (s *TickScheduler) Pending() bool {
	return s.pending != nil
}

// Fire runs the pending frame, if any, and reports whether one ran.
// The frame may schedule its successor.
func (s *TickScheduler) Fire() bool {
	f := s.pending
	if f == nil {
		return false
	}
	s.pending = nil
	f()
	return true
}
