package core

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	alice := NewClient("a", 8)

	if _, ok := r.Register("alice", alice); !ok {
		t.Fatal("expected registration to succeed")
	}

	got, ok := r.Lookup("alice")
	if !ok || got != alice {
		t.Fatalf("lookup returned %v, %v", got, ok)
	}
}

func TestRegistryRejectsEmptyUsername(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Register("", NewClient("a", 8)); ok {
		t.Fatal("expected empty username to be rejected")
	}
	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d bindings", r.Len())
	}
}

func TestRegistryLastWriterWins(t *testing.T) {
	r := NewRegistry()
	first := NewClient("a", 8)
	second := NewClient("b", 8)

	r.Register("alice", first)
	prev, ok := r.Register("alice", second)
	if !ok {
		t.Fatal("expected rebind to succeed")
	}
	if prev != first {
		t.Fatalf("expected displaced client %v, got %v", first, prev)
	}

	got, _ := r.Lookup("alice")
	if got != second {
		t.Fatal("lookup should return the most recent binding")
	}

	// The orphaned connection's disconnect must not remove the new binding.
	if _, removed := r.Unregister(first); removed {
		t.Fatal("orphaned client should not own any binding")
	}
	if got, _ := r.Lookup("alice"); got != second {
		t.Fatal("binding lost after orphan unregister")
	}
}

func TestRegistryUnregisterIsIdempotent(t *testing.T) {
	r := NewRegistry()
	alice := NewClient("a", 8)
	r.Register("alice", alice)

	if name, removed := r.Unregister(alice); !removed || name != "alice" {
		t.Fatalf("unregister = %q, %v", name, removed)
	}
	if _, removed := r.Unregister(alice); removed {
		t.Fatal("second unregister should be a no-op")
	}
	if _, removed := r.Unregister(NewClient("never", 8)); removed {
		t.Fatal("unregister of unknown client should be a no-op")
	}
}

func TestRegistrySnapshotMatchesBindings(t *testing.T) {
	r := NewRegistry()
	bob := NewClient("b", 8)
	r.Register("bob", bob)
	r.Register("alice", NewClient("a", 8))
	r.Register("carol", NewClient("c", 8))

	want := []string{"alice", "bob", "carol"}
	if got := r.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("snapshot = %v, want %v", got, want)
	}

	r.Unregister(bob)
	want = []string{"alice", "carol"}
	if got := r.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("snapshot after unregister = %v, want %v", got, want)
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("user%d", n)
			c := NewClient(name, 8)
			r.Register(name, c)
			r.Lookup(name)
			r.Snapshot()
			if n%2 == 0 {
				r.Unregister(c)
			}
		}(i)
	}
	wg.Wait()

	if r.Len() != 25 {
		t.Fatalf("expected 25 bindings, got %d", r.Len())
	}
}
