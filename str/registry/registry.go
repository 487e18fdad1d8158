// Package registry tracks outstanding references to str.String handles in a
// singly linked list keyed by identity: two handles with equal contents but
// different addresses are distinct entries.
//
// The list borrows the handles it references and never locks them, frees
// them, or inspects their contents. It performs no locking of its own
// either; callers mutating a list from more than one goroutine must impose
// external synchronization.
package registry

import (
	"errors"

	"github.com/joshuapare/strkit/str"
)

var (
	// ErrInvalidArgument indicates a nil handle was passed.
	ErrInvalidArgument = errors.New("registry: invalid argument")
	// ErrNotFound indicates no node references the given handle.
	ErrNotFound = errors.New("registry: not found")
)

// node is one list entry: a borrowed handle reference plus forward link.
type node struct {
	handle *str.String
	next   *node
}

// List is a singly linked registry of handle references. The zero value is
// an empty, ready-to-use list. count is exact: incremented on Add,
// decremented on Remove, never used to bound a scan.
type List struct {
	head  *node
	count int
}

// New returns an empty registry.
func New() *List {
	return &List{}
}

// Add appends a node referencing h at the tail of the list. The same handle
// may be added more than once; each Add contributes one node. O(n) via tail
// scan. Fails with ErrInvalidArgument if h is nil.
func (l *List) Add(h *str.String) error {
	if h == nil {
		return ErrInvalidArgument
	}
	n := &node{handle: h}
	if l.head == nil {
		l.head = n
	} else {
		tail := l.head
		for tail.next != nil {
			tail = tail.next
		}
		tail.next = n
	}
	l.count++
	return nil
}

// Remove unlinks the first node (in list order) whose reference equals h by
// identity. The scan runs to the end of the list. Fails with
// ErrInvalidArgument if h is nil and ErrNotFound if no node references h.
func (l *List) Remove(h *str.String) error {
	if h == nil {
		return ErrInvalidArgument
	}
	var prev *node
	for n := l.head; n != nil; n = n.next {
		if n.handle == h {
			if prev == nil {
				l.head = n.next
			} else {
				prev.next = n.next
			}
			n.next = nil
			l.count--
			return nil
		}
		prev = n
	}
	return ErrNotFound
}

// Contains reports whether any node references h by identity.
func (l *List) Contains(h *str.String) bool {
	for n := l.head; n != nil; n = n.next {
		if n.handle == h {
			return true
		}
	}
	return false
}

// Len returns the exact number of nodes in the list.
func (l *List) Len() int {
	return l.count
}
