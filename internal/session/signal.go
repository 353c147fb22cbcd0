package session

import "sync"

// signal fans an "is authenticated" value out to subscribers.
// Callbacks are invoked on the caller's goroutine with no lock held.
type signal struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(bool)
}

func (s *signal) subscribe(fn func(bool), current bool) func() {
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]func(bool))
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *signal) publish(v bool) {
	s.mu.Lock()
	fns := make([]func(bool), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}
