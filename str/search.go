package str

import "bytes"

// TruncateAfterLast cuts the content immediately after the last occurrence
// of sep, keeping the separator itself, and shrinks the allocation to the
// new exact size. For example, with content "/usr/local/bin" and sep '/',
// the content becomes "/usr/local/".
//
// Fails with ErrInvalidArgument on a nil/destroyed handle or absent/empty
// content, and with ErrNotFound if sep does not occur.
func (s *String) TruncateAfterLast(sep byte) error {
	if s == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(s.data) == 0 {
		return ErrInvalidArgument
	}
	i := bytes.LastIndexByte(s.data, sep)
	if i < 0 {
		return ErrNotFound
	}
	s.data = exact(s.data[:i+1])
	return nil
}

// RemoveFirst excises the first occurrence of needle, shifting the
// remainder left and shrinking the allocation to the new exact size.
//
// Fails with ErrInvalidArgument on a nil/destroyed handle, absent content,
// an empty needle, or a needle longer than the content; with ErrNotFound
// if needle does not occur.
func (s *String) RemoveFirst(needle string) error {
	if s == nil || needle == "" {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.data == nil || len(needle) > len(s.data) {
		return ErrInvalidArgument
	}
	i := bytes.Index(s.data, []byte(needle))
	if i < 0 {
		return ErrNotFound
	}

	buf := make([]byte, len(s.data)-len(needle))
	copy(buf, s.data[:i])
	copy(buf[i:], s.data[i+len(needle):])
	s.data = buf
	return nil
}

// ReplaceFirst rebuilds the content as prefix + newWord + suffix around the
// first occurrence of oldWord. Later occurrences are untouched. newWord may
// be empty, which degenerates to RemoveFirst.
//
// Fails with ErrInvalidArgument on a nil/destroyed handle, absent content,
// or an empty oldWord; with ErrTooLarge if the result would exceed
// MaxStringSize; with ErrNotFound if oldWord does not occur.
func (s *String) ReplaceFirst(oldWord, newWord string) error {
	if s == nil || oldWord == "" {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.data == nil {
		return ErrInvalidArgument
	}
	i := bytes.Index(s.data, []byte(oldWord))
	if i < 0 {
		return ErrNotFound
	}
	size := len(s.data) - len(oldWord) + len(newWord)
	if size > MaxStringSize {
		return ErrTooLarge
	}

	buf := make([]byte, 0, size)
	buf = append(buf, s.data[:i]...)
	buf = append(buf, newWord...)
	buf = append(buf, s.data[i+len(oldWord):]...)
	s.data = buf
	return nil
}

// exact copies b into a minimally-sized allocation. Keeping the buffer
// exactly sized after a shrink is part of the type's contract; re-slicing
// alone would pin the larger backing array.
func exact(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
