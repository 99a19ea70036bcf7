// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

// Snapshot is a point-in-time view of an instance for diagnostics and
// tests: the persisted anchor, the volatile cursor triple and a copy of
// the ring bytes. Taking a snapshot only reads the medium.
type Snapshot struct {
	BotOffset  int    // persisted anchor: ring offset of the bottommost block
	PushOffset int    // first free block, the tail sentinel
	PopOffset  int    // oldest used block, the head
	ReadOffset int    // non-destructive sweep cursor
	RingSize   int    // ring length R
	Ring       []byte // copy of the ring bytes, headers and payload alike
}

// Snapshot captures the current state. The cursor fields are meaningful
// after a successful Format or Begin.
func (f *FIFO) Snapshot() Snapshot {
	ring := make([]byte, f.rsize)
	for p := range ring {
		ring[p] = f.readRing(p)
	}
	return Snapshot{
		BotOffset:  f.readAnchor(),
		PushOffset: f.pushP,
		PopOffset:  f.popP,
		ReadOffset: f.readP,
		RingSize:   f.rsize,
		Ring:       ring,
	}
}

// Validate walks the persisted chain and checks the structural
// invariants without moving any cursor: the anchor addresses the ring,
// every header is non-zero, the spans tile the ring exactly, and at
// least one free block remains. Returns nil on a healthy region and the
// matching corruption error otherwise.
func (f *FIFO) Validate() error {
	if f.rsize < minRingSize {
		return ErrInvalidFifoBufferSize
	}
	bot := f.readAnchor()
	if bot >= f.rsize {
		return ErrWrongRingBufferSize
	}
	frees := 0
	err := f.walk(bot, func(p int, hdr byte) {
		if headerFree(hdr) {
			frees++
		}
	})
	if err != nil {
		return err
	}
	if frees == 0 {
		return ErrPushBlockNotFree
	}
	return nil
}
