// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// Status is the closed result code set of the queue. The numeric values
// are stable and form the ABI contract with embedded callers: a Status
// truncated to its integer code means the same thing on every release.
//
// Status implements error. Operations return nil on success, so
// StatusSuccess only appears when converting an error back to its code
// with StatusOf.
type Status uint8

const (
	// StatusSuccess is the code of a nil error.
	StatusSuccess Status = iota

	// StatusFifoEmpty signals a Pop or Read with no records queued.
	StatusFifoEmpty

	// StatusFifoFull signals a Push the free run cannot hold.
	StatusFifoFull

	// StatusInvalidFifoBufferSize signals a region too small to format.
	StatusInvalidFifoBufferSize

	// StatusInvalidBlockHeader signals the reserved 0x00 header byte.
	StatusInvalidBlockHeader

	// StatusDataBufferSmall signals a destination buffer shorter than
	// the record it would receive.
	StatusDataBufferSmall

	// StatusPushBlockNotFree signals a push position that is not a free
	// block: the region is corrupted or was never formatted.
	StatusPushBlockNotFree

	// StatusUnclosedBlockList signals a chain that does not close back
	// onto the anchor block after exactly one ring of bytes.
	StatusUnclosedBlockList

	// StatusWrongRingBufferSize signals a persisted layout that does not
	// match the configured region size.
	StatusWrongRingBufferSize
)

var statusText = [...]string{
	StatusSuccess:               "pfq: success",
	StatusFifoEmpty:             "pfq: fifo empty",
	StatusFifoFull:              "pfq: fifo full",
	StatusInvalidFifoBufferSize: "pfq: invalid fifo buffer size",
	StatusInvalidBlockHeader:    "pfq: invalid block header",
	StatusDataBufferSmall:       "pfq: data buffer small",
	StatusPushBlockNotFree:      "pfq: push block not free",
	StatusUnclosedBlockList:     "pfq: unclosed block list",
	StatusWrongRingBufferSize:   "pfq: wrong ring buffer size",
}

// Error implements the error interface.
func (s Status) Error() string {
	if int(s) < len(statusText) {
		return statusText[s]
	}
	return "pfq: unknown status"
}

// Is makes the routine backpressure codes match [iox.ErrWouldBlock] under
// errors.Is, for ecosystem consistency: an empty queue on the consumer
// side and a full queue on the producer side are control flow signals,
// not failures.
func (s Status) Is(target error) bool {
	if target == iox.ErrWouldBlock {
		return s == StatusFifoEmpty || s == StatusFifoFull
	}
	return false
}

// Sentinel errors, one per non-success status. Compare with errors.Is.
var (
	ErrFifoEmpty             error = StatusFifoEmpty
	ErrFifoFull              error = StatusFifoFull
	ErrInvalidFifoBufferSize error = StatusInvalidFifoBufferSize
	ErrInvalidBlockHeader    error = StatusInvalidBlockHeader
	ErrDataBufferSmall       error = StatusDataBufferSmall
	ErrPushBlockNotFree      error = StatusPushBlockNotFree
	ErrUnclosedBlockList     error = StatusUnclosedBlockList
	ErrWrongRingBufferSize   error = StatusWrongRingBufferSize
)

// StatusOf extracts the ABI code carried by err. ok is false when err is
// neither nil nor a queue status — for example an adapter attach failure,
// which belongs to the medium rather than to this taxonomy.
func StatusOf(err error) (code Status, ok bool) {
	if err == nil {
		return StatusSuccess, true
	}
	var s Status
	if errors.As(err, &s) {
		return s, true
	}
	return 0, false
}

// IsWouldBlock reports whether err is a routine backpressure signal
// (fifo empty or fifo full). Delegates to [iox.IsWouldBlock] for wrapped
// error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// IsCorruption reports whether err indicates a damaged or unformatted
// region. These errors are not recoverable in place; the usual reaction
// is to Format and accept the loss of queued records.
func IsCorruption(err error) bool {
	return errors.Is(err, ErrInvalidBlockHeader) ||
		errors.Is(err, ErrPushBlockNotFree) ||
		errors.Is(err, ErrUnclosedBlockList) ||
		errors.Is(err, ErrWrongRingBufferSize)
}
