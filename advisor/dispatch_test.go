package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubAdvisor struct {
	fn func(Request) (string, error)
}

func (s *stubAdvisor) Advise(_ context.Context, req Request) (string, error) {
	return s.fn(req)
}

func fixedText(text string, err error) *stubAdvisor {
	return &stubAdvisor{fn: func(Request) (string, error) { return text, err }}
}

func TestDispatcherHoldsResult(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(fixedText("scalp the range", nil))
	assert.Empty(t, d.Latest())

	d.Dispatch(Request{Asset: "XAUUSD"})
	d.Wait()
	assert.Equal(t, "scalp the range", d.Latest())
}

func TestDispatcherErrorFallsBack(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(fixedText("", errors.New("upstream down")))
	d.Dispatch(Request{Asset: "BTCUSD"})
	d.Wait()
	assert.Equal(t, Fallback, d.Latest())
}

func TestDispatcherEmptyTextFallsBack(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(fixedText("", nil))
	d.Dispatch(Request{Asset: "BTCUSD"})
	d.Wait()
	assert.Equal(t, Fallback, d.Latest())
}

// A stale in-flight result must never overwrite the result of a request
// dispatched after it, regardless of completion order.
func TestDispatcherNewestRequestWins(t *testing.T) {
	t.Parallel()

	gate := make(chan struct{})
	stub := &stubAdvisor{fn: func(req Request) (string, error) {
		if req.Asset == "slow" {
			<-gate
			return "stale", nil
		}
		return "fresh", nil
	}}

	d := NewDispatcher(stub)
	d.Dispatch(Request{Asset: "slow"}) // parks on the gate
	d.Dispatch(Request{Asset: "fast"})

	assert.Eventually(t, func() bool { return d.Latest() == "fresh" },
		time.Second, time.Millisecond)

	// Let the older request finish late; its result must be discarded.
	close(gate)
	d.Wait()
	assert.Equal(t, "fresh", d.Latest())
}

func TestNoopAdvisorReportsFailsafe(t *testing.T) {
	t.Parallel()

	text, err := Noop{}.Advise(context.Background(), Request{})
	assert.NoError(t, err)
	assert.Equal(t, failsafe, text)
}
