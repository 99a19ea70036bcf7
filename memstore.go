// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

import "code.hybscloud.com/atomix"

// MemStore is a RAM-backed region, useful for tests, for RAM ring buffers
// that only need the FIFO semantics, and as the backing medium behind a
// [BufferedStore].
//
// Writes are elided when the byte already holds the target value, and the
// store counts both performed and elided writes. The counters are atomic
// so a monitor goroutine can sample wear while the owning context runs
// the queue.
type MemStore struct {
	buf    []byte
	writes atomix.Uint64
	elided atomix.Uint64
}

// NewMemStore creates a zero-filled RAM region of the given size.
// Panics if size <= 0.
func NewMemStore(size int) *MemStore {
	if size <= 0 {
		panic("pfq: store size must be > 0")
	}
	return &MemStore{buf: make([]byte, size)}
}

// ReadByte returns the byte at off.
func (m *MemStore) ReadByte(off int) byte { return m.buf[off] }

// WriteByte stores one byte at off, eliding the write when the byte
// already holds val.
func (m *MemStore) WriteByte(off int, val byte) {
	if m.buf[off] == val {
		m.elided.Add(1)
		return
	}
	m.buf[off] = val
	m.writes.Add(1)
}

// Size returns the region size in bytes.
func (m *MemStore) Size() int { return len(m.buf) }

// Stats returns the number of writes performed and the number elided
// because the byte already held the target value. Safe to call from a
// goroutine other than the queue's owner.
func (m *MemStore) Stats() (writes, elided uint64) {
	return m.writes.Load(), m.elided.Load()
}

// Bytes exposes the underlying region. Intended for persistence plumbing
// and for tests that inject corruption or simulate a power cycle; mutating
// it under a live instance invalidates the instance's cursors.
func (m *MemStore) Bytes() []byte { return m.buf }

// BufferedStore models media that stage writes in a volatile page until
// an explicit durability barrier, the way emulated-EEPROM flash does:
// Attach loads the page from the backing store, writes land in the page,
// and Flush writes the dirty bytes through.
//
// The queue drives Flush via its commit throttle; callers with their own
// durability schedule can invoke Flush directly.
type BufferedStore struct {
	backing  Store
	page     []byte
	dirty    []bool
	attached bool
	flushes  atomix.Uint64
}

// NewBufferedStore creates a deferred-commit adapter of the given size
// over backing. Panics if backing is nil or size <= 0.
func NewBufferedStore(backing Store, size int) *BufferedStore {
	if backing == nil {
		panic("pfq: nil backing store")
	}
	if size <= 0 {
		panic("pfq: store size must be > 0")
	}
	return &BufferedStore{
		backing: backing,
		page:    make([]byte, size),
		dirty:   make([]bool, size),
	}
}

// Attach loads the volatile page from the backing store. Idempotent:
// once attached, further calls are no-ops and staged writes are kept.
func (b *BufferedStore) Attach() error {
	if b.attached {
		return nil
	}
	if err := attach(b.backing); err != nil {
		return err
	}
	for i := range b.page {
		b.page[i] = b.backing.ReadByte(i)
	}
	b.attached = true
	return nil
}

// ReadByte returns the byte at off, from the page once attached.
func (b *BufferedStore) ReadByte(off int) byte {
	if !b.attached {
		return b.backing.ReadByte(off)
	}
	return b.page[off]
}

// WriteByte stages one byte in the page. Before Attach it writes through,
// so the adapter degrades to its backing rather than losing data.
func (b *BufferedStore) WriteByte(off int, val byte) {
	if !b.attached {
		b.backing.WriteByte(off, val)
		return
	}
	if b.page[off] == val {
		return
	}
	b.page[off] = val
	b.dirty[off] = true
}

// Flush writes the staged bytes through to the backing store and clears
// the dirty set.
func (b *BufferedStore) Flush() {
	if !b.attached {
		return
	}
	for i, d := range b.dirty {
		if d {
			b.backing.WriteByte(i, b.page[i])
			b.dirty[i] = false
		}
	}
	b.flushes.Add(1)
}

// Flushes returns the number of Flush calls that ran. Safe to call from
// a goroutine other than the queue's owner.
func (b *BufferedStore) Flushes() uint64 { return b.flushes.Load() }

// Size returns the region size in bytes.
func (b *BufferedStore) Size() int { return len(b.page) }
