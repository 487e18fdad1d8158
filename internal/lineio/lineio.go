// Package lineio reads single newline-terminated lines from an io.Reader
// under a hard size bound. The staging buffer grows in fixed chunk
// increments, and the result is always handed back as an exactly-sized copy
// so callers can own it without slack capacity.
package lineio

import (
	"errors"
	"io"
)

// chunkSize is the staging buffer growth increment.
const chunkSize = 64

// ErrTooLong indicates the line reached the caller's size bound before a
// newline or EOF. No partial data is returned on this path.
var ErrTooLong = errors.New("lineio: line exceeds size bound")

// ReadLine reads bytes from r until a newline or EOF, excluding the newline
// from the result. The accumulated length is kept strictly below max; once
// storing the next byte would reach it, ReadLine aborts with ErrTooLong.
//
// An empty line (immediate newline) yields an empty, non-nil slice. EOF
// before any byte yields io.EOF. EOF after at least one byte terminates the
// line normally.
func ReadLine(r io.Reader, max int) ([]byte, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReader{r: r}
	}

	buf := make([]byte, 0, chunkSize)
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			if len(buf) == 0 {
				return nil, io.EOF
			}
			break
		}
		if err != nil {
			return nil, err
		}
		if c == '\n' {
			break
		}
		if len(buf)+1 >= max {
			return nil, ErrTooLong
		}
		if len(buf) == cap(buf) {
			grown := make([]byte, len(buf), cap(buf)+chunkSize)
			copy(grown, buf)
			buf = grown
		}
		buf = append(buf, c)
	}

	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

// byteReader adapts a plain io.Reader with single-byte reads so ReadLine
// never consumes bytes past the newline.
type byteReader struct {
	r   io.Reader
	one [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	for {
		n, err := b.r.Read(b.one[:])
		if n > 0 {
			return b.one[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
