// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Guarded serializes access to a FIFO for callers that must share one
// instance across goroutines. Operations run under a test-and-set
// spinlock, one at a time; this buys isolation, not parallelism — the
// queue itself remains single-producer single-consumer in spirit, the
// guard just enforces it.
//
// Queue operations hold the lock only for the duration of a few byte
// accesses, so spinning is cheaper than parking.
type Guarded struct {
	f    *FIFO
	lock atomix.Int32
}

// NewGuarded wraps f. Panics if f is nil. The underlying FIFO must not
// be used directly while the guard is in service.
func NewGuarded(f *FIFO) *Guarded {
	if f == nil {
		panic("pfq: nil fifo")
	}
	return &Guarded{f: f}
}

func (g *Guarded) acquire() {
	sw := spin.Wait{}
	for !g.lock.CompareAndSwapAcqRel(0, 1) {
		sw.Once()
	}
}

func (g *Guarded) release() { g.lock.StoreRelease(0) }

// Format locks and delegates to [FIFO.Format].
func (g *Guarded) Format() error {
	g.acquire()
	err := g.f.Format()
	g.release()
	return err
}

// Begin locks and delegates to [FIFO.Begin].
func (g *Guarded) Begin() error {
	g.acquire()
	err := g.f.Begin()
	g.release()
	return err
}

// Push locks and delegates to [FIFO.Push].
func (g *Guarded) Push(data []byte) error {
	g.acquire()
	err := g.f.Push(data)
	g.release()
	return err
}

// Pop locks and delegates to [FIFO.Pop].
func (g *Guarded) Pop(dst []byte) (int, error) {
	g.acquire()
	n, err := g.f.Pop(dst)
	g.release()
	return n, err
}

// Read locks and delegates to [FIFO.Read].
func (g *Guarded) Read(dst []byte) (int, error) {
	g.acquire()
	n, err := g.f.Read(dst)
	g.release()
	return n, err
}

// RestartRead locks and delegates to [FIFO.RestartRead].
func (g *Guarded) RestartRead() {
	g.acquire()
	g.f.RestartRead()
	g.release()
}

// Len locks and delegates to [FIFO.Len].
func (g *Guarded) Len() int {
	g.acquire()
	n := g.f.Len()
	g.release()
	return n
}

// Cap returns the ring size; immutable, so no lock is taken.
func (g *Guarded) Cap() int { return g.f.Cap() }

// Snapshot locks and delegates to [FIFO.Snapshot].
func (g *Guarded) Snapshot() Snapshot {
	g.acquire()
	s := g.f.Snapshot()
	g.release()
	return s
}

// Validate locks and delegates to [FIFO.Validate].
func (g *Guarded) Validate() error {
	g.acquire()
	err := g.f.Validate()
	g.release()
	return err
}
