// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

// Format initialises the region with an empty queue: anchor 0 and a ring
// tiled by maximal free blocks, ending with one sized to cover the
// residue. All queued records are logically discarded.
//
// Fails with ErrInvalidFifoBufferSize when the region is smaller than 5
// bytes. Media with an [Attacher] are attached first; attach failures are
// returned as-is.
func (f *FIFO) Format() error {
	if f.rsize < minRingSize {
		return ErrInvalidFifoBufferSize
	}
	if err := attach(f.store); err != nil {
		return err
	}

	f.writeAnchor(0)
	f.pushP, f.popP, f.readP = 0, 0, 0

	p, remaining := 0, f.rsize
	for remaining > BlockSizeMax {
		f.writeRing(p, encodeHeader(true, DataSizeMax))
		p += BlockSizeMax
		remaining -= BlockSizeMax
	}
	f.writeRing(p, encodeHeader(true, remaining-1))

	f.commitRequest()
	return nil
}

// Begin reconstructs the volatile cursors from the persisted region: it
// reads the anchor, walks the block chain once, and places the head, tail
// and read cursors at the status transitions it observes. On a quiescent
// valid region Begin is a no-op for persistent state and idempotent for
// the cursor triple.
//
// Corruption surfaces as ErrInvalidBlockHeader (reserved header byte),
// ErrUnclosedBlockList (chain does not close, or more than one used run),
// ErrWrongRingBufferSize (anchor outside the configured ring), or
// ErrPushBlockNotFree (no free block anywhere).
func (f *FIFO) Begin() error {
	if f.rsize < minRingSize {
		return ErrInvalidFifoBufferSize
	}
	if err := attach(f.store); err != nil {
		return err
	}

	bot := f.readAnchor()
	if bot >= f.rsize {
		return ErrWrongRingBufferSize
	}

	push, pop, read := bot, bot, bot
	var prevFree, botFree bool
	first := true
	freeToUsed, usedToFree := 0, 0

	err := f.walk(bot, func(p int, hdr byte) {
		free := headerFree(hdr)
		if first {
			prevFree, botFree = free, free
			first = false
			return
		}
		if free == prevFree {
			return
		}
		if prevFree {
			pop, read = p, p
			freeToUsed++
		} else {
			push = p
			usedToFree++
		}
		prevFree = free
	})
	if err != nil {
		return err
	}

	// A valid queue has a single used run: one transition of each kind at
	// most. More means interleaved runs the allocator could never produce.
	if freeToUsed > 1 || usedToFree > 1 {
		return ErrUnclosedBlockList
	}
	// No transitions at all: every block has the anchor block's status.
	// All-free is the empty queue; all-used has no tail separator left.
	if freeToUsed == 0 && usedToFree == 0 && !botFree {
		return ErrPushBlockNotFree
	}

	f.pushP, f.popP, f.readP = push, pop, read
	return nil
}

// walk traverses the block chain from the given ring offset, invoking
// visit for every block, until the cumulative span covers the ring
// exactly — which lands the walk back on its starting block.
//
// Fails with ErrInvalidBlockHeader on a zero header and with
// ErrUnclosedBlockList when the spans overshoot the ring size, i.e. the
// chain cannot close onto its start.
func (f *FIFO) walk(from int, visit func(p int, hdr byte)) error {
	total := 0
	p := from
	for {
		hdr := f.readRing(p)
		if hdr == 0 {
			return ErrInvalidBlockHeader
		}
		if visit != nil {
			visit(p, hdr)
		}
		total += span(hdr)
		if total == f.rsize {
			return nil
		}
		if total > f.rsize {
			return ErrUnclosedBlockList
		}
		p = f.step(p, span(hdr))
	}
}
