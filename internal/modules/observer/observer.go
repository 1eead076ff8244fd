package observer

import "sync"

type Observer interface {
	Update(event string, data interface{})
}

type Subject interface {
	Attach(o Observer)
	Notify(event string, data interface{})
}

type Func func(event string, data interface{})

func (f Func) Update(event string, data interface{}) {
	f(event, data)
}

// Subjects is safe for concurrent use. Notify runs observers synchronously
// in attach order on the caller's goroutine.
type Subjects struct {
	mu        sync.RWMutex
	observers []Observer
}

func (s *Subjects) Attach(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

func (s *Subjects) Notify(event string, data interface{}) {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()
	for _, o := range observers {
		o.Update(event, data)
	}
}
