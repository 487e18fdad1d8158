package str

import (
	"fmt"
	"io"

	"github.com/joshuapare/strkit/internal/lineio"
)

// ReadLine reads one newline-terminated line from r and stores it as the
// content, newline excluded. The handle must hold no content yet; use
// AppendLine to extend. An empty input line leaves the handle in the
// present-but-empty state, which is distinct from absent.
//
// The read happens while the handle's lock is held, so concurrent
// operations on the same handle block until the line arrives.
//
// Fails with ErrInvalidArgument on a nil/destroyed handle or nil reader,
// with ErrAlreadySet if content is present, and wraps lineio.ErrTooLong or
// io.EOF when the reader yields an over-long line or nothing at all.
func (s *String) ReadLine(r io.Reader) error {
	if s == nil || r == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrInvalidArgument
	}
	if s.data != nil {
		return ErrAlreadySet
	}
	line, err := lineio.ReadLine(r, MaxStringSize)
	if err != nil {
		return fmt.Errorf("str: read line: %w", err)
	}
	s.data = line
	return nil
}

// AppendLine reads one bounded line from r and concatenates it onto the
// existing content. On a handle with absent content it behaves like
// ReadLine. The bound shrinks with the current content so the combined
// length always stays under MaxStringSize.
//
// Fails with ErrInvalidArgument on a nil/destroyed handle or nil reader;
// read failures are wrapped as in ReadLine and leave the content unchanged.
func (s *String) AppendLine(r io.Reader) error {
	if s == nil || r == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrInvalidArgument
	}
	line, err := lineio.ReadLine(r, MaxStringSize-len(s.data))
	if err != nil {
		return fmt.Errorf("str: read line: %w", err)
	}
	if s.data == nil {
		s.data = line
		return nil
	}

	buf := make([]byte, len(s.data)+len(line))
	copy(buf, s.data)
	copy(buf[len(s.data):], line)
	s.data = buf
	return nil
}
