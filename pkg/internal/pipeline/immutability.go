package pipeline

import "sync/atomic"

func (p *Pipeline) freeze() bool {
	return atomic.CompareAndSwapInt32(&p.running, 0, 1)
}

func (p *Pipeline) thaw() {
	atomic.StoreInt32(&p.running, 0)
}

func (p *Pipeline) requireNotRunning(action string) {
	if atomic.LoadInt32(&p.running) == 1 {
		panic("pipeline: " + action + " called during Run")
	}
}
