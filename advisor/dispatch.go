package advisor

import (
	"context"
	"sync"
	"time"
)

// Dispatcher runs advisory requests in the background and keeps only the
// newest result. If a session change fires while an older request is still
// in flight, the newer request wins no matter which one finishes first.
// Dispatch never blocks and never surfaces an error: failures collapse to
// the Fallback string.
type Dispatcher struct {
	advisor Advisor
	timeout time.Duration

	mu   sync.Mutex
	seq  uint64 // last dispatched request
	held uint64 // request whose text is currently held
	text string
	wg   sync.WaitGroup
}

func NewDispatcher(a Advisor) *Dispatcher {
	return &Dispatcher{
		advisor: a,
		timeout: 30 * time.Second,
	}
}

// Dispatch fires an advisory request and returns immediately.
func (d *Dispatcher) Dispatch(req Request) {
	d.mu.Lock()
	d.seq++
	seq := d.seq
	d.mu.Unlock()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		text, err := d.advisor.Advise(ctx, req)
		if err != nil || text == "" {
			text = Fallback
		}

		d.mu.Lock()
		if seq > d.held {
			d.held = seq
			d.text = text
		}
		d.mu.Unlock()
	}()
}

// Latest returns the newest advisory text, "" before the first result lands.
func (d *Dispatcher) Latest() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// Wait blocks until all in-flight requests have resolved. Display code never
// needs this; tests and shutdown do.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
