package api

import "testing"

func TestNotifier(t *testing.T) {
	t.Run("Delivers To All Subscribers", func(t *testing.T) {
		n := &Notifier{}
		a := n.Subscribe()
		b := n.Subscribe()

		n.Publish(FailureEvent{Err: NetworkError(), Path: "/x"})

		for _, ch := range []<-chan FailureEvent{a, b} {
			select {
			case ev := <-ch:
				if ev.Path != "/x" {
					t.Errorf("expected path /x, got %s", ev.Path)
				}
			default:
				t.Error("expected event on subscriber channel")
			}
		}
	})

	t.Run("Publish Never Blocks On A Full Subscriber", func(t *testing.T) {
		n := &Notifier{}
		ch := n.Subscribe()

		for i := 0; i < subscriberBuffer+5; i++ {
			n.Publish(FailureEvent{Err: &Error{Kind: KindServer, Status: 500 + i}, Path: "/slow"})
		}

		// the buffer holds the most recent events, oldest were dropped
		var last FailureEvent
		count := 0
	drain:
		for {
			select {
			case ev := <-ch:
				last = ev
				count++
			default:
				break drain
			}
		}

		if count != subscriberBuffer {
			t.Errorf("expected a full buffer of %d events, got %d", subscriberBuffer, count)
		}
		if last.Err.Status != 500+subscriberBuffer+4 {
			t.Errorf("expected newest event to survive, got status %d", last.Err.Status)
		}
	})

	t.Run("Unsubscribe Closes The Channel", func(t *testing.T) {
		n := &Notifier{}
		ch := n.Subscribe()
		n.Unsubscribe(ch)

		if _, ok := <-ch; ok {
			t.Error("expected channel to be closed after unsubscribe")
		}

		// publishing after unsubscribe must not panic
		n.Publish(FailureEvent{Err: NetworkError()})
	})
}
