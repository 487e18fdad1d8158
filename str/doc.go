// Package str provides a thread-safe, mutable growable-string handle.
//
// # Overview
//
// A String wraps a heap-allocated byte buffer behind a per-handle mutex.
// Every public operation locks the handle for its duration, so a single
// handle may be shared freely between goroutines: operations on one handle
// are linearized by its lock, and two different handles never contend.
//
// The buffer is kept exactly sized. After any mutation completes, the
// backing allocation holds precisely the logical content and nothing more;
// there is no slack capacity and no cached state besides the bytes
// themselves.
//
// # States
//
// A handle's content is in one of three states:
//
//   - absent: never written, or cleared. Bytes() returns nil, Len() is 0.
//   - empty: present but zero-length (for example, an empty input line).
//   - populated: one or more bytes.
//
// Operations that transform content (Reverse, ToTitle, case conversion,
// word search/replace) require content to be present and fail with
// ErrInvalidArgument otherwise; they never touch uninitialized state.
//
// # Lifecycle
//
//	s := str.New()
//	_ = s.Append("hello world")
//	_ = s.ToTitle()          // "Hello World"
//	_, _ = s.WriteTo(os.Stdout)
//	s.Destroy()              // handle unusable afterwards
//
// Clear returns a handle to the absent state and the handle stays usable.
// Destroy releases the content and closes the handle for good: every later
// operation fails with ErrInvalidArgument.
//
// # Input and output
//
// ReadLine and AppendLine pull one newline-terminated line from a caller
// supplied io.Reader, bounded by MaxStringSize. WriteTo writes the content
// verbatim to a caller-supplied io.Writer. The reader and writer are
// explicit parameters; the package never touches process-global streams.
// Note that a line read blocks while holding the handle's lock, so
// concurrent operations on the same handle wait for the read to finish.
//
// # Byte semantics
//
// All operations treat content as a flat byte sequence. Case conversion and
// title-casing act on ASCII letters only and leave every other byte, ASCII
// or not, untouched. This is not a Unicode-aware text library.
//
// # Related Packages
//
//   - github.com/joshuapare/strkit/str/registry: identity-keyed tracking of
//     outstanding handle references
package str
