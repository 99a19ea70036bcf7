// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

// Builder creates FIFO instances with fluent configuration.
//
// Example:
//
//	// RAM queue, no deferred commit
//	f := pfq.New(pfq.NewMemStore(64), 64).Build()
//
//	// Emulated-EEPROM flash: flush at most every 250ms
//	buffered := pfq.NewBufferedStore(flash, 512)
//	f := pfq.New(buffered, 512).CommitPeriod(250).Build()
type Builder struct {
	store        Store
	size         int
	commitPeriod uint32
	clock        func() uint32
}

// New creates a builder binding the queue to the first size bytes of
// store. Panics if store is nil; an unusable size is reported by
// Format/Begin as ErrInvalidFifoBufferSize, keeping the failure on the
// status surface embedded callers consume.
func New(store Store, size int) *Builder {
	if store == nil {
		panic("pfq: nil store")
	}
	return &Builder{store: store, size: size}
}

// CommitPeriod enables rate-limited durability barriers on media that
// implement [Flusher]: after a state-changing operation, at most one
// Flush per ms milliseconds. 0 (the default) disables queue-driven
// flushing; the caller commits externally.
func (b *Builder) CommitPeriod(ms uint32) *Builder {
	b.commitPeriod = ms
	return b
}

// Clock supplies the monotonic millisecond clock driving the commit
// throttle. Defaults to wall time. Injectable for hosts with their own
// tick source and for tests.
func (b *Builder) Clock(now func() uint32) *Builder {
	b.clock = now
	return b
}

// Build creates the FIFO. The instance is not usable until Format or
// Begin succeeds.
func (b *Builder) Build() *FIFO {
	return newFIFO(b.store, b.size, b.commitPeriod, b.clock)
}
