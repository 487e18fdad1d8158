package str

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	s := New()
	require.NoError(t, s.ReadLine(strings.NewReader("first line\nsecond line\n")))
	assert.Equal(t, "first line", s.String(), "newline excluded")
}

func TestReadLine_EmptyLine(t *testing.T) {
	s := New()
	require.NoError(t, s.ReadLine(strings.NewReader("\n")))
	assert.True(t, s.IsEmpty())
	assert.NotNil(t, s.Bytes(), "empty line stores empty, non-absent content")
}

func TestReadLine_UnterminatedLastLine(t *testing.T) {
	s := New()
	require.NoError(t, s.ReadLine(strings.NewReader("no newline")))
	assert.Equal(t, "no newline", s.String())
}

func TestReadLine_Failures(t *testing.T) {
	t.Run("already_present", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Append("occupied"))
		assert.ErrorIs(t, s.ReadLine(strings.NewReader("x\n")), ErrAlreadySet)
		assert.Equal(t, "occupied", s.String())
	})
	t.Run("exhausted_reader", func(t *testing.T) {
		s := New()
		err := s.ReadLine(strings.NewReader(""))
		assert.ErrorIs(t, err, io.EOF)
		assert.Nil(t, s.Bytes(), "content stays absent on failure")
	})
	t.Run("nil_reader", func(t *testing.T) {
		assert.ErrorIs(t, New().ReadLine(nil), ErrInvalidArgument)
	})
	t.Run("nil_handle", func(t *testing.T) {
		var s *String
		assert.ErrorIs(t, s.ReadLine(strings.NewReader("x\n")), ErrInvalidArgument)
	})
}

func TestAppendLine(t *testing.T) {
	src := strings.NewReader("hello\n world\n")

	s := New()
	require.NoError(t, s.AppendLine(src), "first line initializes")
	require.NoError(t, s.AppendLine(src), "second line concatenates")
	assert.Equal(t, "hello world", s.String())
}

func TestAppendLine_OntoAppendedContent(t *testing.T) {
	s := New()
	require.NoError(t, s.Append("prefix:"))
	require.NoError(t, s.AppendLine(strings.NewReader("suffix\n")))
	assert.Equal(t, "prefix:suffix", s.String())
}

func TestAppendLine_ExhaustedReader(t *testing.T) {
	s := New()
	require.NoError(t, s.Append("kept"))
	assert.ErrorIs(t, s.AppendLine(strings.NewReader("")), io.EOF)
	assert.Equal(t, "kept", s.String(), "content unchanged on failure")
}

func TestReadLine_DoesNotOverconsume(t *testing.T) {
	// Two handles reading from the same source each get exactly one line.
	src := strings.NewReader("one\ntwo\n")

	a, b := New(), New()
	require.NoError(t, a.ReadLine(src))
	require.NoError(t, b.ReadLine(src))
	assert.Equal(t, "one", a.String())
	assert.Equal(t, "two", b.String())
}

func TestReadLine_DestroyedHandle(t *testing.T) {
	s := New()
	s.Destroy()
	assert.ErrorIs(t, s.ReadLine(strings.NewReader("x\n")), ErrInvalidArgument)
	assert.ErrorIs(t, s.AppendLine(strings.NewReader("x\n")), ErrInvalidArgument)
}
