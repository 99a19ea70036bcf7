// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/pfq"
)

// =============================================================================
// On-Medium Layout
//
// These tests pin the persisted byte layout on a 10-byte region (9-byte
// ring), step by step through format, push, pop and a wrapping push. The
// layout is the portability contract: regions written by one build must
// be readable by any other.
// =============================================================================

// TestLayoutFreshFormat: a 9-byte ring formats to a single free block
// covering the whole ring, anchored at 0.
func TestLayoutFreshFormat(t *testing.T) {
	store := pfq.NewMemStore(10)
	f := pfq.NewFIFO(store, 10)
	require.NoError(t, f.Format())

	s := f.Snapshot()
	require.Equal(t, 0, s.BotOffset)
	require.Equal(t, byte(0x88), s.Ring[0], "one free block with data size 8")
	require.Equal(t, 0, s.PushOffset)
	require.Equal(t, 0, s.PopOffset)
	require.Equal(t, 0, s.ReadOffset)

	_, err := f.Pop(make([]byte, 16))
	require.ErrorIs(t, err, pfq.ErrFifoEmpty)
}

// TestLayoutSinglePushPop: pushing a 2-byte record splits the free block;
// popping flips the used header back to free, length preserved.
func TestLayoutSinglePushPop(t *testing.T) {
	store := pfq.NewMemStore(10)
	f := pfq.NewFIFO(store, 10)
	require.NoError(t, f.Format())

	require.NoError(t, f.Push([]byte{0xAA, 0xBB}))
	s := f.Snapshot()
	require.Equal(t, byte(0x02), s.Ring[0], "used block, data size 2")
	require.Equal(t, byte(0xAA), s.Ring[1])
	require.Equal(t, byte(0xBB), s.Ring[2])
	require.Equal(t, byte(0x85), s.Ring[3], "residual free block, data size 5")
	require.Equal(t, 3, s.PushOffset)
	require.Equal(t, 0, s.PopOffset)

	buf := make([]byte, 16)
	n, err := f.Pop(buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{0xAA, 0xBB}, buf[:n])

	s = f.Snapshot()
	require.Equal(t, byte(0x82), s.Ring[0], "popped block is free, length preserved")
	require.Equal(t, s.PushOffset, s.PopOffset, "queue is empty")
	require.Equal(t, 3, s.PopOffset)
}

// TestLayoutFillToFull: two 3-byte records tile the ring down to a
// 1-byte free separator; any further push fails.
func TestLayoutFillToFull(t *testing.T) {
	store := pfq.NewMemStore(10)
	f := pfq.NewFIFO(store, 10)
	require.NoError(t, f.Format())

	require.NoError(t, f.Push([]byte{1, 2, 3}))
	require.NoError(t, f.Push([]byte{4, 5, 6}))

	s := f.Snapshot()
	require.Equal(t,
		[]byte{0x03, 1, 2, 3, 0x03, 4, 5, 6, 0x80},
		s.Ring)
	require.Equal(t, 8, s.PushOffset)
	require.Equal(t, 0, s.PopOffset)
	require.Equal(t, 2, f.Len())

	require.ErrorIs(t, f.Push([]byte{9}), pfq.ErrFifoFull)
}

// TestLayoutWrapAround: after freeing the head, a push that cannot fit
// before the ring end merges the trailing free block with the freed run
// and wraps its payload; the anchor moves to the landing offset.
func TestLayoutWrapAround(t *testing.T) {
	store := pfq.NewMemStore(10)
	f := pfq.NewFIFO(store, 10)
	require.NoError(t, f.Format())

	require.NoError(t, f.Push([]byte{1, 2, 3}))
	require.NoError(t, f.Push([]byte{4, 5, 6}))

	buf := make([]byte, 8)
	_, err := f.Pop(buf)
	require.NoError(t, err)

	require.NoError(t, f.Push([]byte{7, 8, 9}))

	s := f.Snapshot()
	require.Equal(t, 3, s.BotOffset, "anchor follows the wrapped payload's landing offset")
	require.Equal(t,
		[]byte{7, 8, 9, 0x80, 0x03, 4, 5, 6, 0x03},
		s.Ring)
	require.Equal(t, 3, s.PushOffset)
	require.Equal(t, 4, s.PopOffset)
	require.NoError(t, f.Validate())
}

// TestLayoutExactEndLanding: a payload ending exactly on the ring end is
// not a wrap, but both the push cursor and the anchor move to 0.
func TestLayoutExactEndLanding(t *testing.T) {
	store := pfq.NewMemStore(10)
	f := pfq.NewFIFO(store, 10)
	require.NoError(t, f.Format())

	// Park the push cursor at offset 4, then free the block at 0 so it
	// can serve as the tail separator.
	require.NoError(t, f.Push([]byte{1, 2, 3}))
	buf := make([]byte, 8)
	_, err := f.Pop(buf)
	require.NoError(t, err)

	// The 4-byte record occupies offsets 4..8: header at 4, payload
	// ending exactly on the ring end.
	require.NoError(t, f.Push([]byte{4, 5, 6, 7}))

	s := f.Snapshot()
	require.Equal(t, 0, s.BotOffset)
	require.Equal(t, 0, s.PushOffset, "push cursor wraps to the ring origin")
	require.Equal(t,
		[]byte{0x83, 1, 2, 3, 0x04, 4, 5, 6, 7},
		s.Ring)
	require.Equal(t, 4, s.PopOffset)

	// The separator at 0 still has room for a 1-byte record.
	require.NoError(t, f.Push([]byte{8}))
	s = f.Snapshot()
	require.Equal(t, []byte{0x01, 8, 0x81, 3, 0x04, 4, 5, 6, 7}, s.Ring)

	n, err := f.Pop(buf)
	require.NoError(t, err)
	require.Equal(t, []byte{4, 5, 6, 7}, buf[:n])
	n, err = f.Pop(buf)
	require.NoError(t, err)
	require.Equal(t, []byte{8}, buf[:n])
}
