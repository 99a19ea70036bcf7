// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

// Store is the byte-addressable medium a FIFO instance operates on.
//
// The queue only ever issues single-byte accesses: the medium must make
// one-byte writes atomic, and nothing wider. Offsets are region-relative,
// starting at 0, and stay inside the size the instance was built with.
//
// WriteByte must be idempotent with respect to wear: rewriting a byte with
// its current value should not consume an erase cycle. Media that cannot
// elide such writes in hardware should compare-before-write in the
// adapter, as [MemStore] does.
//
// Steady-state reads and writes are assumed infallible; media whose
// failures are detectable should surface them from [Attacher.Attach].
type Store interface {
	// ReadByte returns the byte at the given region offset.
	ReadByte(off int) byte

	// WriteByte stores one byte at the given region offset.
	WriteByte(off int, val byte)
}

// Attacher is implemented by media that need explicit initialisation
// before the region is accessible — the emulated-EEPROM begin call on
// some flash parts, an external bus probe, a file map.
//
// Format and Begin call Attach before touching the region. Attach must be
// idempotent: repeated calls after a successful one are no-ops. A failure
// surfaces as the Format/Begin error, outside the queue's status taxonomy.
type Attacher interface {
	Attach() error
}

// Flusher is implemented by media that buffer writes in volatile memory
// until an explicit durability barrier — emulated-EEPROM flash being the
// common case. The queue issues rate-limited Flush calls after each
// state-changing operation when a commit period is configured; see
// [Builder.CommitPeriod].
type Flusher interface {
	Flush()
}

// attach runs the optional medium initialisation, if the store has one.
func attach(s Store) error {
	if a, ok := s.(Attacher); ok {
		return a.Attach()
	}
	return nil
}
