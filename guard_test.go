// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// The guard's spinlock is built on atomix acquire/release orderings,
// which the race detector cannot track. Excluded from race runs like
// the other atomix-based tests in the ecosystem.

package pfq_test

import (
	"runtime"
	"sync"
	"testing"

	"code.hybscloud.com/pfq"
)

// =============================================================================
// Guarded Wrapper
// =============================================================================

// TestGuardedBasics drives the full surface through the guard.
func TestGuardedBasics(t *testing.T) {
	g := pfq.NewGuarded(pfq.NewFIFO(pfq.NewMemStore(32), 32))
	if err := g.Format(); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if err := g.Push([]byte{1, 2}); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if g.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", g.Len())
	}
	buf := make([]byte, 4)
	if n, err := g.Read(buf); err != nil || n != 2 {
		t.Fatalf("Read: got n=%d err=%v", n, err)
	}
	g.RestartRead()
	if n, err := g.Pop(buf); err != nil || n != 2 {
		t.Fatalf("Pop: got n=%d err=%v", n, err)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := g.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if g.Cap() != 31 {
		t.Fatalf("Cap: got %d, want 31", g.Cap())
	}
}

// TestGuardedConcurrentAccess shares one queue between several producer
// goroutines and one consumer. The guard serializes every operation, so
// records arrive whole and each producer's records keep their order.
func TestGuardedConcurrentAccess(t *testing.T) {
	const producers = 4
	const perProducer = 100

	g := pfq.NewGuarded(pfq.NewFIFO(pfq.NewMemStore(256), 256))
	if err := g.Format(); err != nil {
		t.Fatalf("Format: %v", err)
	}

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func(id byte) {
			defer wg.Done()
			for i := range perProducer {
				rec := []byte{id, byte(i)}
				for g.Push(rec) != nil {
					runtime.Gosched()
				}
			}
		}(byte(p))
	}

	lastSeen := [producers]int{}
	for i := range lastSeen {
		lastSeen[i] = -1
	}
	received := 0
	buf := make([]byte, 4)
	for received < producers*perProducer {
		n, err := g.Pop(buf)
		if err != nil {
			runtime.Gosched()
			continue
		}
		if n != 2 {
			t.Fatalf("record %d: got %d bytes, want 2", received, n)
		}
		id, seq := int(buf[0]), int(buf[1])
		if id >= producers {
			t.Fatalf("record %d: bogus producer id %d", received, id)
		}
		if seq != lastSeen[id]+1 {
			t.Fatalf("producer %d: got seq %d after %d", id, seq, lastSeen[id])
		}
		lastSeen[id] = seq
		received++
	}
	wg.Wait()

	if g.Len() != 0 {
		t.Fatalf("Len after drain: got %d, want 0", g.Len())
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
