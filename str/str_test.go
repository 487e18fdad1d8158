package str

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAppend_Concatenates verifies the core append property: appending a
// then b yields a+b with the exact combined length.
func TestAppend_Concatenates(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"two_words", "hello", " world"},
		{"empty_then_text", "", "text"},
		{"text_then_empty", "text", ""},
		{"both_empty", "", ""},
		{"binary_bytes", "a\x00b", "\xffc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			require.NoError(t, s.Append(tt.a))
			require.NoError(t, s.Append(tt.b))

			assert.Equal(t, tt.a+tt.b, s.String())
			assert.Equal(t, len(tt.a)+len(tt.b), s.Len())
		})
	}
}

func TestAppend_EmptyInitializes(t *testing.T) {
	s := New()
	require.True(t, s.IsEmpty())
	require.Nil(t, s.Bytes(), "fresh handle has absent content")

	require.NoError(t, s.Append(""))
	assert.True(t, s.IsEmpty())
	assert.NotNil(t, s.Bytes(), "appending \"\" makes content present but empty")
}

func TestAppend_NilHandle(t *testing.T) {
	var s *String
	assert.ErrorIs(t, s.Append("x"), ErrInvalidArgument)
}

func TestLen_ZeroStates(t *testing.T) {
	var nilHandle *String
	assert.Equal(t, 0, nilHandle.Len())
	assert.True(t, nilHandle.IsEmpty())

	s := New()
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())
}

func TestBytes_BorrowedView(t *testing.T) {
	s := New()
	require.NoError(t, s.Append("abc"))

	view := s.Bytes()
	require.Equal(t, []byte("abc"), view)

	// The view reflects content at the time of the call only; a mutation
	// reallocates and the handle moves on.
	require.NoError(t, s.Append("def"))
	assert.Equal(t, "abcdef", s.String())
}

func TestClear_Idempotent(t *testing.T) {
	s := New()
	require.NoError(t, s.Append("payload"))

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Bytes())

	s.Clear() // second clear is a no-op
	assert.True(t, s.IsEmpty())

	// Handle stays usable after Clear.
	require.NoError(t, s.Append("again"))
	assert.Equal(t, "again", s.String())
}

func TestDestroy_ClosesHandle(t *testing.T) {
	s := New()
	require.NoError(t, s.Append("gone"))

	s.Destroy()

	assert.ErrorIs(t, s.Append("x"), ErrInvalidArgument)
	assert.ErrorIs(t, s.Reverse(), ErrInvalidArgument)
	assert.ErrorIs(t, s.ToUpper(), ErrInvalidArgument)
	assert.Nil(t, s.Bytes())
	assert.Equal(t, 0, s.Len())
}

func TestWriteTo(t *testing.T) {
	s := New()
	require.NoError(t, s.Append("verbatim\x00output"))

	var out bytes.Buffer
	n, err := s.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(s.Len()), n)
	assert.Equal(t, "verbatim\x00output", out.String())
}

func TestWriteTo_AbsentIsNoop(t *testing.T) {
	var out bytes.Buffer

	s := New()
	n, err := s.WriteTo(&out)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, out.Len())

	var nilHandle *String
	n, err = nilHandle.WriteTo(&out)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestLifecycle_Scenario walks the documented end-to-end sequence:
// append, title-case, reverse, destroy.
func TestLifecycle_Scenario(t *testing.T) {
	s := New()

	require.NoError(t, s.Append("hello"))
	require.Equal(t, 5, s.Len())

	require.NoError(t, s.ToTitle())
	require.Equal(t, "Hello", s.String())

	require.NoError(t, s.Reverse())
	require.Equal(t, "olleH", s.String())

	s.Destroy()
	assert.ErrorIs(t, s.Append("x"), ErrInvalidArgument)
}

func TestZeroValue_Usable(t *testing.T) {
	// A locally-declared zero value behaves exactly like New().
	var s String
	require.NoError(t, s.Append("stack"))
	assert.Equal(t, "stack", s.String())
	s.Destroy()
	assert.ErrorIs(t, s.Append("x"), ErrInvalidArgument)
}
