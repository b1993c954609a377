package event

// Stream is an ordered, append-only event log.
//
// A Stream is not safe for concurrent use; the engine fills it completely
// before a renderer reads it.
type Stream struct {
	events []Event
}

// NewStream returns an empty Stream.
func NewStream() *Stream {
	return &Stream{}
}

// Emit appends e.
func (s *Stream) Emit(e Event) {
	s.events = append(s.events, e)
}

// Len returns the number of events emitted so far.
func (s *Stream) Len() int { return len(s.events) }

// At returns the i-th event.
//
// Precondition: 0 <= i < Len().
func (s *Stream) At(i int) Event { return s.events[i] }

// Events returns a copy of all events in order.
func (s *Stream) Events() []Event {
	return append([]Event(nil), s.events...)
}

// Lines returns the text of every text event in order.
func (s *Stream) Lines() []string {
	var lines []string
	for _, e := range s.events {
		if e.IsText() {
			lines = append(lines, e.text)
		}
	}
	return lines
}

// TotalPause sums the units of every pause event.
func (s *Stream) TotalPause() int {
	total := 0
	for _, e := range s.events {
		if n, ok := e.Pause(); ok {
			total += n
		}
	}
	return total
}
