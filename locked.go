package succtree

import "sync"

// Locked guards a Tree with a single read/write mutex. Queries take the read
// lock, mutations the write lock, so every operation observes a tree with a
// consistent successor chain.
//
// The zero value is a valid, empty tree.
type Locked struct {
	mu   sync.RWMutex
	tree Tree
}

// Insert adds key, see Tree.Insert.
func (l *Locked) Insert(key int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Insert(key)
}

// Delete removes key, see Tree.Delete.
func (l *Locked) Delete(key int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Delete(key)
}

// Contains reports whether key is present.
func (l *Locked) Contains(key int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Contains(key)
}

// Len returns the number of keys.
func (l *Locked) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

// Chain returns a snapshot of the keys in ascending order. Unlike Tree.Keys
// it does not hold the lock while the caller iterates.
func (l *Locked) Chain() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Chain()
}

// Successor returns the smallest key greater than key, see Tree.Successor.
func (l *Locked) Successor(key int) (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Successor(key)
}

// Predecessor returns the greatest key less than key, see Tree.Predecessor.
func (l *Locked) Predecessor(key int) (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Predecessor(key)
}

// View calls f with the tree under the read lock. f must not modify the tree
// and must not retain it.
func (l *Locked) View(f func(*Tree)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f(&l.tree)
}

// Update calls f with the tree under the write lock, for compound mutations.
func (l *Locked) Update(f func(*Tree)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f(&l.tree)
}

// Check validates the tree's invariants, see Tree.Check.
func (l *Locked) Check() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Check()
}
