package str

// ASCII case lives in bit 5: clearing it uppercases a lowercase letter,
// setting it lowercases an uppercase one.
const caseBit = 1 << 5

// ToUpper converts every ASCII lowercase letter in place. Non-letter and
// non-ASCII bytes are untouched. Requires present (possibly empty) content.
func (s *String) ToUpper() error {
	if s == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.data == nil {
		return ErrInvalidArgument
	}
	for i, c := range s.data {
		if c >= 'a' && c <= 'z' {
			s.data[i] = c &^ caseBit
		}
	}
	return nil
}

// ToLower converts every ASCII uppercase letter in place. Non-letter and
// non-ASCII bytes are untouched. Requires present (possibly empty) content.
func (s *String) ToLower() error {
	if s == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.data == nil {
		return ErrInvalidArgument
	}
	for i, c := range s.data {
		if c >= 'A' && c <= 'Z' {
			s.data[i] = c | caseBit
		}
	}
	return nil
}

// ToTitle uppercases the first alphabetic byte of the content and the first
// alphabetic byte after each space. Every other byte is left exactly as-is;
// in particular, word interiors are NOT lowercased ("hELLO wORLD" becomes
// "HELLO WORLD", not "Hello World"). Requires non-empty content.
func (s *String) ToTitle() error {
	if s == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(s.data) == 0 {
		return ErrInvalidArgument
	}
	atWordStart := true
	for i, c := range s.data {
		switch {
		case atWordStart && c >= 'a' && c <= 'z':
			s.data[i] = c &^ caseBit
			atWordStart = false
		case atWordStart && c >= 'A' && c <= 'Z':
			// Already capitalized; the word start is consumed.
			atWordStart = false
		case c == ' ':
			atWordStart = true
		}
	}
	return nil
}

// Reverse reverses the content in place with a two-pointer swap.
// Requires non-empty content.
func (s *String) Reverse() error {
	if s == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(s.data) == 0 {
		return ErrInvalidArgument
	}
	for head, tail := 0, len(s.data)-1; head < tail; head, tail = head+1, tail-1 {
		s.data[head], s.data[tail] = s.data[tail], s.data[head]
	}
	return nil
}
