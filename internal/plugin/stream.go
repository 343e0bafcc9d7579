package plugin

import (
	"github.com/faiface/beep"
)

// passThrough runs a beep stream through the processor. The samples are not changed;
// the processor only gates them with its active flag and counts them.
type passThrough struct {
	p    *Processor
	ctrl *beep.Ctrl
}

// Stream puts the processor into a beep chain. While the processor is inactive the
// returned streamer plays silence.
func (p *Processor) Stream(src beep.Streamer) beep.Streamer {
	p.mu.Lock()
	defer p.mu.Unlock()
	ctrl := &beep.Ctrl{Streamer: src, Paused: !p.active}
	p.ctrls = append(p.ctrls, ctrl)
	return &passThrough{p: p, ctrl: ctrl}
}

func (t *passThrough) Stream(samples [][2]float64) (int, bool) {
	t.p.mu.Lock()
	defer t.p.mu.Unlock()
	n, ok := t.ctrl.Stream(samples)
	if n > 0 {
		t.p.frames += int64(n)
	}
	return n, ok
}

func (t *passThrough) Err() error { return t.ctrl.Err() }

// Frames is how many frames went through the processor's streams.
func (p *Processor) Frames() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}
