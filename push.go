// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

// Push appends one record to the queue.
//
// The record occupies len(data)+1 ring bytes. The allocator grows the
// free block under the push cursor by absorbing the free blocks after it
// — their headers are about to be buried under payload, so no rewrite is
// needed — then splits off whatever the record does not consume as a new
// free block. At least one free block always survives as the tail
// separator.
//
// Fails with ErrFifoFull when the free run cannot hold the record, and
// for record lengths outside [1, DataSizeMax], which no block can ever
// represent. Fails with ErrPushBlockNotFree when the push position is not
// a free block, which means the region is corrupted or unformatted.
func (f *FIFO) Push(data []byte) error {
	n := len(data)
	if n == 0 || n > DataSizeMax {
		return ErrFifoFull
	}

	hdr := f.readRing(f.pushP)
	if !headerFree(hdr) {
		return ErrPushBlockNotFree
	}

	// Absorb consecutive free blocks until the run holds header+payload.
	need := n + 1
	runLen := span(hdr)
	for need > runLen {
		q := f.step(f.pushP, runLen)
		if q == f.pushP {
			// The whole ring is free and still too small.
			return ErrFifoFull
		}
		h := f.readRing(q)
		if !headerFree(h) {
			// Ran into the queue head.
			return ErrFifoFull
		}
		runLen += span(h)
	}

	if need == runLen {
		// Exact fit: the block after the run must serve as the tail
		// separator, so it has to exist and be free.
		q := f.step(f.pushP, runLen)
		if q == f.pushP || !headerFree(f.readRing(q)) {
			return ErrFifoFull
		}
	} else {
		// Residual split. Written before the used header so that a crash
		// in between leaves a still-consistent free run.
		f.writeRing(f.step(f.pushP, need), encodeHeader(true, runLen-need-1))
	}

	end := f.pushP + need // one past the payload, pre-wrap
	if end > f.rsize {
		// Wrapping payload: split the copy at the ring end. The landing
		// offset becomes the new bottommost block.
		head := f.rsize - f.pushP - 1
		for i := 0; i < head; i++ {
			f.writeRing(f.pushP+1+i, data[i])
		}
		for i := head; i < n; i++ {
			f.writeRing(i-head, data[i])
		}
		land := end - f.rsize
		f.writeAnchor(land)
		f.writeRing(f.pushP, encodeHeader(false, n))
		f.pushP = land
	} else {
		for i := 0; i < n; i++ {
			f.writeRing(f.pushP+1+i, data[i])
		}
		f.writeRing(f.pushP, encodeHeader(false, n))
		if end == f.rsize {
			// Landed exactly on the ring end: no wrap, but the next
			// block starts at offset 0 and is the new bottommost.
			f.writeAnchor(0)
			f.pushP = 0
		} else {
			f.pushP = end
		}
	}

	f.commitRequest()
	return nil
}
