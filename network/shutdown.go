package network

import (
	"sync"
)

// Shutdown is the process-wide stop signal. The first Trigger wins; later
// calls are ignored.
type Shutdown struct {
	once   sync.Once
	ch     chan struct{}
	mu     sync.Mutex
	reason error
}

func NewShutdown() *Shutdown {
	return &Shutdown{ch: make(chan struct{})}
}

// Trigger records reason and closes Done. A nil reason means a clean stop.
func (s *Shutdown) Trigger(reason error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.reason = reason
		s.mu.Unlock()
		close(s.ch)
	})
}

func (s *Shutdown) Done() <-chan struct{} {
	return s.ch
}

// Stopped reports whether Trigger has been called. Non-blocking.
func (s *Shutdown) Stopped() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

func (s *Shutdown) Reason() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}
