package str

import (
	"io"
	"math"
	"sync"
)

// MaxStringSize is the process-wide ceiling on content length, in bytes.
// It is set to 95% of the largest representable int so that pathological
// appends and reads fail cleanly before the allocator is asked for an
// absurd size. Append, ReadLine, and AppendLine all enforce it.
const MaxStringSize = math.MaxInt / 100 * 95

// String is a mutable growable string guarded by a per-handle mutex.
//
// The zero value is a usable handle with absent content. Handles returned
// by New behave identically; there is no distinction between heap- and
// stack-resident handles.
//
// data is nil when content is absent and exactly sized otherwise: after any
// mutation, len(data) == cap(data) == logical length.
type String struct {
	mu     sync.Mutex
	data   []byte
	closed bool
}

// New returns a new handle with absent content.
func New() *String {
	return &String{}
}

// Append concatenates text onto the existing content. Appending to absent
// content initializes it, so Append("") leaves the handle present-but-empty.
// Fails with ErrInvalidArgument on a nil or destroyed handle and with
// ErrTooLarge if the combined length would exceed MaxStringSize; on failure
// the content is unchanged.
func (s *String) Append(text string) error {
	if s == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrInvalidArgument
	}
	if len(s.data)+len(text) > MaxStringSize {
		return ErrTooLarge
	}

	buf := make([]byte, len(s.data)+len(text))
	copy(buf, s.data)
	copy(buf[len(s.data):], text)
	s.data = buf
	return nil
}

// Len returns the content length in bytes, 0 for absent content or a nil
// or destroyed handle.
func (s *String) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// IsEmpty reports whether the content is absent or zero-length.
func (s *String) IsEmpty() bool {
	return s.Len() == 0
}

// Bytes returns a borrowed read-only view of the content, or nil when the
// content is absent. The caller must not modify the returned slice and must
// not hold it across the next mutating operation, which may reallocate or
// release the backing array. Use String for a stable copy.
func (s *String) Bytes() []byte {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	return s.data
}

// String returns a copy of the content. Absent content yields "".
func (s *String) String() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.data)
}

// Clear releases the content and returns the handle to the absent state.
// Idempotent; the handle stays usable. A no-op on a destroyed handle.
func (s *String) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.data = nil
}

// Destroy releases the content and closes the handle. Every subsequent
// operation fails with ErrInvalidArgument and accessors report absent
// content. Calling Destroy twice is harmless, but callers should not rely
// on a destroyed handle for anything.
func (s *String) Destroy() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.closed = true
}

// WriteTo writes the content verbatim to w. Absent content is a documented
// no-op, not a failure: it writes nothing and returns a nil error.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	if s == nil {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.data == nil {
		return 0, nil
	}
	n, err := w.Write(s.data)
	return int64(n), err
}
