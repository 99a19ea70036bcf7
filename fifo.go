// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

import "time"

// FIFO is a persistent first-in first-out queue of variable-size binary
// records over a byte-addressable region.
//
// The region's first byte anchors the block chain; the remaining R bytes
// form a ring completely tiled by singly-linked blocks of one header byte
// plus up to DataSizeMax payload bytes. Queue state lives entirely in the
// per-block status bits, so the three cursors below are volatile and are
// reconstructed from a scan by Begin after power loss.
//
// A FIFO is single-owner: one execution context pushes, pops and reads.
// Wrap it in a [Guarded] when several goroutines must share it.
type FIFO struct {
	store Store
	rsize int // ring size: region size minus the anchor byte

	pushP int // first free block, the tail sentinel
	popP  int // oldest used block, the head
	readP int // non-destructive sweep cursor

	commitPeriod uint32
	nextCommit   uint32
	clock        func() uint32
}

// NewFIFO binds a queue instance to the first size bytes of store, with
// commits disabled. Use [New] for the builder when a commit period or a
// custom clock is needed. Panics if store is nil.
//
// The instance is not usable until Format (fresh region) or Begin
// (recover persisted state) succeeds.
func NewFIFO(store Store, size int) *FIFO {
	return New(store, size).Build()
}

func newFIFO(store Store, size int, period uint32, clock func() uint32) *FIFO {
	if store == nil {
		panic("pfq: nil store")
	}
	if clock == nil {
		clock = millis
	}
	f := &FIFO{
		store:        store,
		rsize:        size - 1,
		commitPeriod: period,
		clock:        clock,
	}
	if period > 0 {
		f.nextCommit = clock() + period
	}
	return f
}

// millis is the default commit clock.
func millis() uint32 { return uint32(time.Now().UnixMilli()) }

// Cap returns the ring size in bytes. Each queued record consumes its
// payload length plus one header byte, and one free block always remains
// as the tail separator.
func (f *FIFO) Cap() int { return f.rsize }

// Len returns the number of queued records. Valid after a successful
// Format or Begin.
func (f *FIFO) Len() int {
	n := 0
	p := f.popP
	for i := 0; i < f.rsize && p != f.pushP; i++ {
		p = f.step(p, span(f.readRing(p)))
		n++
	}
	return n
}

// step advances a ring offset by n bytes, wrapping at the ring end.
func (f *FIFO) step(p, n int) int { return (p + n) % f.rsize }

// Ring bytes live at region offset +1; the anchor byte is region offset 0.

func (f *FIFO) readRing(p int) byte       { return f.store.ReadByte(p + 1) }
func (f *FIFO) writeRing(p int, val byte) { f.store.WriteByte(p+1, val) }

func (f *FIFO) readAnchor() int   { return int(f.store.ReadByte(0)) }
func (f *FIFO) writeAnchor(p int) { f.store.WriteByte(0, byte(p)) }

// commitRequest asks the medium for a durability barrier, rate-limited to
// one flush per commit period. With period 0 or a medium that does not
// buffer, it is a no-op and the caller flushes on its own schedule.
func (f *FIFO) commitRequest() {
	fl, ok := f.store.(Flusher)
	if !ok || f.commitPeriod == 0 {
		return
	}
	now := f.clock()
	if now < f.nextCommit {
		return
	}
	fl.Flush()
	f.nextCommit = now + f.commitPeriod
}
