package core

import (
	"sort"
	"sync"
)

// Registry is the single source of truth for who is online. It maps a
// username to exactly one live client and is the only shared mutable
// state in the system; every access goes through its lock.
type Registry struct {
	mu       sync.RWMutex
	bindings map[string]*Client
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[string]*Client)}
}

// Register binds username to c, overwriting any previous binding
// (last writer wins). It returns the displaced client, if any, and
// whether the binding was accepted. An empty username is rejected.
func (r *Registry) Register(username string, c *Client) (prev *Client, ok bool) {
	if username == "" || c == nil {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev = r.bindings[username]
	if prev == c {
		prev = nil
	}
	r.bindings[username] = c
	return prev, true
}

// Lookup resolves a username to its live client.
func (r *Registry) Lookup(username string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.bindings[username]
	return c, ok
}

// Release removes the binding for username only if it still points to c.
// Used when a client re-registers under a new name.
func (r *Registry) Release(username string, c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bound, ok := r.bindings[username]; ok && bound == c {
		delete(r.bindings, username)
		return true
	}
	return false
}

// Unregister removes whichever binding points to c, if any. A client
// that was never registered, or whose binding was overwritten by a
// later registration, is a no-op; this guards double-disconnect.
func (r *Registry) Unregister(c *Client) (username string, removed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, bound := range r.bindings {
		if bound == c {
			delete(r.bindings, name)
			return name, true
		}
	}
	return "", false
}

// Snapshot returns the current roster, sorted for stable output.
func (r *Registry) Snapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]string, 0, len(r.bindings))
	for name := range r.bindings {
		users = append(users, name)
	}
	sort.Strings(users)
	return users
}

// Clients returns every currently bound client.
func (r *Registry) Clients() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*Client, 0, len(r.bindings))
	for _, c := range r.bindings {
		clients = append(clients, c)
	}
	return clients
}

// Len returns the number of live bindings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}
