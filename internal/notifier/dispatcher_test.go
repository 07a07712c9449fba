package notifier

import (
	"errors"
	"sync"
	"testing"
)

type fakeSender struct {
	mu     sync.Mutex
	sent   []Email
	sendFn func(Email) error
}

func (s *fakeSender) Send(e Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendFn != nil {
		if err := s.sendFn(e); err != nil {
			return err
		}
	}
	s.sent = append(s.sent, e)
	return nil
}

func (s *fakeSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func TestDispatcher_DeliversQueuedEmails(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, 16, 2)

	d.Notify("a@x.com", "s1", "b1")
	d.Notify("b@x.com", "s2", "b2")
	d.Stop()

	if sender.count() != 2 {
		t.Fatalf("delivered %d emails, want 2", sender.count())
	}
}

func TestDispatcher_SendErrorsAreSwallowed(t *testing.T) {
	sender := &fakeSender{sendFn: func(Email) error { return errors.New("smtp down") }}
	d := NewDispatcher(sender, 16, 1)

	// must neither panic nor block the caller
	d.Notify("a@x.com", "s", "b")
	d.Notify("b@x.com", "s", "b")
	d.Stop()

	if sender.count() != 0 {
		t.Fatalf("delivered %d emails through a failing sender", sender.count())
	}
}

func TestDispatcher_NotifyAfterStopDropsSafely(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, 16, 1)
	d.Stop()

	// a handler still in flight during shutdown must not panic the process
	d.Notify("a@x.com", "s", "b")
	d.Stop()

	if sender.count() != 0 {
		t.Fatalf("delivered %d emails after Stop, want 0", sender.count())
	}
}

func TestDispatcher_FullQueueDropsWithoutBlocking(t *testing.T) {
	block := make(chan struct{})
	sender := &fakeSender{sendFn: func(Email) error { <-block; return nil }}
	d := NewDispatcher(sender, 1, 1)

	// first is picked up by the blocked worker, second fills the queue,
	// the rest must be dropped without blocking this goroutine
	for i := 0; i < 10; i++ {
		d.Notify("a@x.com", "s", "b")
	}
	close(block)
	d.Stop()

	if sender.count() > 2 {
		t.Fatalf("delivered %d emails from a queue of 1, want at most 2", sender.count())
	}
}
