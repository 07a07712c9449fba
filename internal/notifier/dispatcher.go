package notifier

import (
	"log/slog"
	"sync"
)

// Dispatcher queues notification emails and delivers them on worker
// goroutines. Delivery is best-effort: send errors are logged and a full
// queue drops the email rather than blocking the caller. Services enqueue
// only after their own mutation has been persisted, so a failed or dropped
// email can never undo a committed change.
type Dispatcher struct {
	sender Sender
	queue  chan Email
	wg     sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func NewDispatcher(sender Sender, queueSize, workers int) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Email, queueSize),
	}
	if workers < 1 {
		workers = 1
	}
	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.worker()
	}
	return d
}

// Notify enqueues one email without blocking. Calls after Stop drop the
// email instead of panicking on the closed queue.
func (d *Dispatcher) Notify(to, subject, body string) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		slog.Error("dispatcher stopped, dropping email", "to", to, "subject", subject)
		return
	}
	select {
	case d.queue <- Email{To: to, Subject: subject, Body: body}:
	default:
		slog.Error("notification queue full, dropping email", "to", to, "subject", subject)
	}
}

// Stop drains the queue and waits for the workers to finish. It is safe to
// call more than once.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	d.mu.Unlock()

	close(d.queue)
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for e := range d.queue {
		if err := d.sender.Send(e); err != nil {
			slog.Error("failed to send notification email", "to", e.To, "subject", e.Subject, "error", err)
		}
	}
}
