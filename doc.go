// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pfq provides a persistent FIFO queue of variable-size binary
// records over a byte-addressable, wear-limited storage region — on-chip
// EEPROM, emulated-EEPROM flash, or plain RAM.
//
// The queue targets controllers whose storage is hundreds of bytes to a
// few kilobytes and whose erase/write endurance is limited. One producer
// appends records with Push, one consumer dequeues the oldest with Pop,
// and an independent non-destructive cursor sweeps oldest-to-newest with
// Read / RestartRead. The queue survives power loss: Begin reconstructs
// every in-memory cursor from a single scan of the persisted region.
//
// # On-medium layout
//
// A region of N bytes is one anchor byte plus a ring of R = N-1 bytes.
// The ring is completely tiled by a cyclic chain of blocks; each block is
// a header byte plus 0..127 payload bytes:
//
//	region:  [ anchor ][ ring byte 0 ... ring byte R-1 ]
//	block:   [ header ][ payload ... ]
//	header:  bit 7 = status (1 free, 0 used), bits 6..0 = payload size
//
// The header 0x00 (used, size 0) is reserved and marks corruption. The
// anchor stores the ring offset of the bottommost block — the block with
// the lowest header offset, which follows any payload that wraps across
// the ring end — and is the only persistent pointer
// needed to rebuild the chain after reset. Queue state is otherwise
// encoded entirely in the per-block status bits: used blocks form one
// contiguous run (the queue) and at least one free block always remains
// as the tail separator.
//
// Push coalesces consecutive free blocks to make room, splits off the
// unconsumed residue as a new free block, and wraps payloads across the
// ring end. Pop flips the head block to free, keeping its length;
// merging is deferred to the next Push. Read never writes, so sweeping
// costs no wear and RestartRead is a RAM assignment.
//
// # Quick start
//
//	store := pfq.NewMemStore(64)
//	f := pfq.NewFIFO(store, 64)
//
//	if err := f.Begin(); err != nil {
//	    // fresh or damaged region: lay down an empty queue
//	    if err := f.Format(); err != nil {
//	        panic(err)
//	    }
//	}
//
//	f.Push([]byte{0x01, 0x02})
//
//	buf := make([]byte, pfq.DataSizeMax)
//	n, err := f.Pop(buf)
//	if err == nil {
//	    process(buf[:n])
//	}
//
// # Durability
//
// Media that buffer writes in volatile memory (emulated-EEPROM flash)
// implement [Flusher]. Configure a commit period to have the queue issue
// rate-limited flushes after each state-changing operation:
//
//	flash := pfq.NewBufferedStore(backing, 512)
//	f := pfq.New(flash, 512).CommitPeriod(250).Build()
//
// The durability boundary then lags a call site by up to the period; a
// crash in that window rolls back to the last flushed state. A crash
// between the individual byte writes of a Push can leave a torn record,
// which the next Begin reports as corruption — the application decides,
// typically by calling Format.
//
// # Error handling
//
// Every fallible operation returns an explicit error from a closed
// status taxonomy with stable integer codes ([Status]); there is no
// panic-style unwinding past construction. ErrFifoEmpty, ErrFifoFull and
// ErrDataBufferSmall are routine signals the caller acts on; the
// corruption family ([IsCorruption]) means the region needs a Format.
//
// The backpressure signals integrate with the iox vocabulary: they match
// the would-block error of [code.hybscloud.com/iox] under errors.Is, so
// generic retry loops work unchanged:
//
//	backoff := iox.Backoff{}
//	for pfq.IsWouldBlock(f.Push(rec)) {
//	    drainOne(f) // or yield until the consumer catches up
//	    backoff.Wait()
//	}
//
// # Concurrency
//
// A FIFO is single-owner: operations run to completion on the caller's
// context with no internal synchronization, matching the typical embedded
// main loop. Do not call it from interrupt context or from several
// goroutines without guarding; [Guarded] wraps an instance in a spinlock
// when sharing is unavoidable.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic counters and the guard lock,
// and [code.hybscloud.com/spin] for CPU pause instructions while the
// guard spins.
package pfq
