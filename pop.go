// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

// Pop dequeues the oldest record into dst and returns its length.
//
// The popped block is marked free with its length preserved; merging with
// neighbouring free blocks is deferred to the allocator in Push. When the
// non-destructive read cursor sits on the popped block it is carried
// forward so it never trails the head.
//
// Fails with ErrFifoEmpty when no records are queued and with
// ErrDataBufferSmall when dst is shorter than the record; neither failure
// advances cursors or touches the medium.
func (f *FIFO) Pop(dst []byte) (int, error) {
	if f.popP == f.pushP {
		return 0, ErrFifoEmpty
	}
	n, next, err := f.readRecord(f.popP, dst)
	if err != nil {
		return 0, err
	}
	f.writeRing(f.popP, encodeHeader(true, n))
	f.commitRequest()
	if f.readP == f.popP {
		f.readP = next
	}
	f.popP = next
	return n, nil
}

// Read copies the record under the read cursor into dst, returns its
// length and advances the cursor. The sweep runs from the oldest record
// toward the newest and leaves no trace on the medium: no header changes,
// no wear, and RestartRead rewinds it with a RAM assignment.
//
// Fails with ErrFifoEmpty when the cursor has reached the queue tail and
// with ErrDataBufferSmall when dst is too short; neither failure advances
// the cursor.
func (f *FIFO) Read(dst []byte) (int, error) {
	if f.readP == f.pushP {
		return 0, ErrFifoEmpty
	}
	n, next, err := f.readRecord(f.readP, dst)
	if err != nil {
		return 0, err
	}
	f.readP = next
	return n, nil
}

// RestartRead rewinds the read cursor to the oldest record.
func (f *FIFO) RestartRead() { f.readP = f.popP }

// readRecord copies the payload of the block at ring offset p into dst,
// reassembling a wrapped payload, and returns the payload length and the
// next block's offset.
func (f *FIFO) readRecord(p int, dst []byte) (n, next int, err error) {
	hdr := f.readRing(p)
	if hdr == 0 {
		return 0, 0, ErrInvalidBlockHeader
	}
	n = headerSize(hdr)
	if n > len(dst) {
		return 0, 0, ErrDataBufferSmall
	}
	s := span(hdr)
	if p+s > f.rsize {
		head := f.rsize - p - 1
		for i := 0; i < head; i++ {
			dst[i] = f.readRing(p + 1 + i)
		}
		for i := head; i < n; i++ {
			dst[i] = f.readRing(i - head)
		}
	} else {
		for i := 0; i < n; i++ {
			dst[i] = f.readRing(p + 1 + i)
		}
	}
	return n, f.step(p, s), nil
}
