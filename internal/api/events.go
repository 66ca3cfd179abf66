package api

import "sync"

// FailureEvent describes a single normalized request failure.
type FailureEvent struct {
	Err       *Error
	RequestID string
	Path      string
}

// Notifier fans out failure events to subscribers without blocking the
// request path. Subscriber channels are buffered; a slow subscriber loses
// old events rather than stalling transport.
type Notifier struct {
	mu   sync.Mutex
	subs []chan FailureEvent
}

const subscriberBuffer = 16

// Subscribe registers a new subscriber channel.
func (n *Notifier) Subscribe() <-chan FailureEvent {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan FailureEvent, subscriberBuffer)
	n.subs = append(n.subs, ch)
	return ch
}

// Unsubscribe removes a previously subscribed channel and closes it.
func (n *Notifier) Unsubscribe(ch <-chan FailureEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, sub := range n.subs {
		if sub == ch {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

// Publish delivers ev to every subscriber. When a subscriber's buffer is
// full the oldest event is dropped so the newest failure is always seen.
func (n *Notifier) Publish(ev FailureEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, sub := range n.subs {
		select {
		case sub <- ev:
		default:
			select {
			case <-sub:
			default:
			}
			select {
			case sub <- ev:
			default:
			}
		}
	}
}
