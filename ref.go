package flip

import "sync"

// Ref is a reference to a Target, set once the container is mounted and
// cleared when it unmounts. Operations that read through an unset Ref are
// skipped. Thread-safe.
type Ref struct {
	mu      sync.RWMutex
	value   Target
	claimed bool
}

// NewRef creates a new empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

// Set stores the target in this ref.
func (r *Ref) Set(v Target) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = v
}

// Clear unsets the ref.
func (r *Ref) Clear() {
	r.Set(nil)
}

// Get returns the referenced target, or nil if not yet set.
func (r *Ref) Get() Target {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// IsSet returns true if the ref has been set to a non-nil target.
func (r *Ref) IsSet() bool {
	return r.Get() != nil
}

// claim marks the ref as owned by a zone. It returns false if another zone
// already holds it.
func (r *Ref) claim() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.claimed {
		return false
	}
	r.claimed = true
	return true
}

func (r *Ref) unclaim() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claimed = false
}

// RefMap holds keyed references to elements, typically one per list item
// so the element for an item survives a reorder. Thread-safe.
type RefMap[K comparable] struct {
	mu    sync.RWMutex
	elems map[K]*Element
}

// NewRefMap creates a new empty RefMap.
func NewRefMap[K comparable]() *RefMap[K] {
	return &RefMap[K]{elems: make(map[K]*Element)}
}

// Put stores an element with the given key.
func (r *RefMap[K]) Put(key K, el *Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elems[key] = el
}

// Get returns the element for the given key, or nil if not found.
func (r *RefMap[K]) Get(key K) *Element {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.elems[key]
}

// Delete removes the element stored under key.
func (r *RefMap[K]) Delete(key K) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.elems, key)
}

// Retain drops every entry whose key is not in keep.
func (r *RefMap[K]) Retain(keep map[K]bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.elems {
		if !keep[k] {
			delete(r.elems, k)
		}
	}
}

// Len returns the number of elements in this ref map.
func (r *RefMap[K]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.elems)
}
