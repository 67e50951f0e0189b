//go:build !tinygo

package hal

import "time"

const tickDur = time.Millisecond

// hostTime turns elapsed time into millisecond ticks. Runners either follow
// the wall clock (sync) or advance a fixed step per frame (elapse).
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

func (t *hostTime) sync() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		return
	}
	t.elapse(now.Sub(t.last))
	t.last = now
}

func (t *hostTime) elapse(d time.Duration) {
	t.acc += d
	n := uint64(t.acc / tickDur)
	t.acc %= tickDur
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
