package tokenstream

// Cursor walks a token sequence forward. The sequence is never modified.
type Cursor struct {
	tokens []Token
	pos    int
}

func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Done reports whether every token has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.tokens)
}

// Pos returns the index of the current token.
func (c *Cursor) Pos() int {
	return c.pos
}

// Current returns the token under the cursor. It panics when Done.
func (c *Cursor) Current() Token {
	return c.tokens[c.pos]
}

// Next moves past the current token.
func (c *Cursor) Next() {
	if c.pos < len(c.tokens) {
		c.pos++
	}
}

// Enclosed returns the tokens between the current opening token and its
// matching close. For a token that opens nothing it returns nil.
func (c *Cursor) Enclosed() []Token {
	end := MatchingClose(c.tokens, c.pos)
	if end <= c.pos {
		return nil
	}
	return c.tokens[c.pos+1 : end]
}

// Skip moves past the current token and, when it opens a pair, past
// everything up to and including the matching close.
func (c *Cursor) Skip() {
	if c.Done() {
		return
	}
	end := MatchingClose(c.tokens, c.pos)
	if end < c.pos {
		end = c.pos
	}
	c.pos = end + 1
}

// MatchingClose returns the index of the token closing tokens[open]. Nested
// pairs of the same kind are counted, so the close of an inner list never
// ends an outer one. It returns open for tokens that open nothing and
// len(tokens) when the pair is never closed.
func MatchingClose(tokens []Token, open int) int {
	if open < 0 || open >= len(tokens) {
		return open
	}
	openKind := tokens[open].Kind
	closeKind, ok := openKind.Closer()
	if !ok {
		return open
	}

	depth := 1
	for idx := open + 1; idx < len(tokens); idx++ {
		switch tokens[idx].Kind {
		case openKind:
			depth++
		case closeKind:
			depth--
			if depth == 0 {
				return idx
			}
		}
	}
	return len(tokens)
}
