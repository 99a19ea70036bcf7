// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

const (
	// DataSizeMax is the largest record payload one block can carry.
	DataSizeMax = 127

	// BlockSizeMax is the largest whole-block span: header plus payload.
	BlockSizeMax = DataSizeMax + 1

	// minRingSize is the smallest ring Format accepts (region size 5).
	minRingSize = 4
)

// Block header layout: bit 7 is the status (1 = free, 0 = used),
// bits 6..0 are the payload size. A used block with size 0 would encode
// to 0x00, which is reserved as the invalid header.
const (
	freeBit  = 0x80
	sizeMask = 0x7f
)

// encodeHeader packs a status and payload size into a header byte.
// size must be in [0, DataSizeMax]; callers guarantee the range.
func encodeHeader(free bool, size int) byte {
	b := byte(size & sizeMask)
	if free {
		b |= freeBit
	}
	return b
}

// headerFree reports whether the header byte marks a free block.
func headerFree(b byte) bool { return b&freeBit != 0 }

// headerSize returns the payload size encoded in a header byte.
func headerSize(b byte) int { return int(b & sizeMask) }

// span returns the whole-block length of the block with header b.
func span(b byte) int { return int(b&sizeMask) + 1 }
