package network

// Mailbox is a single-slot channel where the latest value wins. Put never
// blocks and Take never blocks.
type Mailbox[T any] struct {
	ch chan T
}

func NewMailbox[T any]() *Mailbox[T] {
	return &Mailbox[T]{ch: make(chan T, 1)}
}

// Put replaces any unread value with v.
func (m *Mailbox[T]) Put(v T) {
	select { // drain stale, push latest
	case <-m.ch:
	default:
	}
	select {
	case m.ch <- v:
	default:
	}
}

// Take returns the unread value, if any.
func (m *Mailbox[T]) Take() (T, bool) {
	select {
	case v := <-m.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}
