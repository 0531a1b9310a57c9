package tokenstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOptions() Options {
	return Options{Typographer: true, Linkify: true}
}

func backends(t *testing.T) map[Backend]Tokenizer {
	t.Helper()
	out := make(map[Backend]Tokenizer)
	for _, backend := range []Backend{BackendGoldmark, BackendCommonMark} {
		tokenizer, err := New(backend, defaultOptions())
		require.NoError(t, err)
		out[backend] = tokenizer
	}
	return out
}

func findKind(tokens []Token, kind Kind) (Token, bool) {
	for _, tok := range tokens {
		if tok.Kind == kind {
			return tok, true
		}
		if found, ok := findKind(tok.Children, kind); ok {
			return found, true
		}
	}
	return Token{}, false
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	_, err := New("pandoc", defaultOptions())
	assert.Error(t, err)
}

func TestTokenizeHeading(t *testing.T) {
	for name, tokenizer := range backends(t) {
		t.Run(string(name), func(t *testing.T) {
			tokens, err := tokenizer.Tokenize("## Hello *there*")
			require.NoError(t, err)
			require.Len(t, tokens, 3)

			assert.Equal(t, KindHeadingOpen, tokens[0].Kind)
			assert.Equal(t, 2, tokens[0].Level)
			assert.Equal(t, KindInline, tokens[1].Kind)
			assert.Equal(t, "Hello *there*", tokens[1].Content)
			assert.Equal(t, []string{"text", "em_open", "text", "em_close"}, Kinds(tokens[1].Children))
			assert.Equal(t, KindHeadingClose, tokens[2].Kind)
		})
	}
}

func TestTokenizeBlockShapes(t *testing.T) {
	input := "# Title\n\nSome text\nmore\n\n- one\n- two\n  - nested\n\n> quoted\n\n```go\nfmt.Println()\n```\n\n---\n\n| A | B |\n| --- | --- |\n| 1 | 2 |\n"
	want := []string{
		"heading_open", "inline", "heading_close",
		"paragraph_open", "inline", "paragraph_close",
		"bullet_list_open",
		"list_item_open", "paragraph_open", "inline", "paragraph_close", "list_item_close",
		"list_item_open", "paragraph_open", "inline", "paragraph_close",
		"bullet_list_open", "list_item_open", "paragraph_open", "inline", "paragraph_close", "list_item_close", "bullet_list_close",
		"list_item_close",
		"bullet_list_close",
		"blockquote_open", "paragraph_open", "inline", "paragraph_close", "blockquote_close",
		"fence",
		"hr",
		"table_open", "thead_open", "tr_open", "th_open", "inline", "th_close", "th_open", "inline", "th_close", "tr_close", "thead_close",
		"tbody_open", "tr_open", "td_open", "inline", "td_close", "td_open", "inline", "td_close", "tr_close", "tbody_close", "table_close",
	}

	for name, tokenizer := range backends(t) {
		t.Run(string(name), func(t *testing.T) {
			tokens, err := tokenizer.Tokenize(input)
			require.NoError(t, err)
			assert.Equal(t, want, Kinds(tokens))

			fence, ok := findKind(tokens, KindFence)
			require.True(t, ok)
			assert.Equal(t, "go", fence.Language())
			assert.Equal(t, "fmt.Println()\n", fence.Content)
		})
	}
}

func TestTokenizeInlines(t *testing.T) {
	for name, tokenizer := range backends(t) {
		t.Run(string(name), func(t *testing.T) {
			tokens, err := tokenizer.Tokenize("A **b** ~~c~~ `d` [e](https://x.test \"T\") ![alt *text*](img_7.png \"cap\") <span>f</span> end  \ng")
			require.NoError(t, err)
			require.Len(t, tokens, 3)

			inline := tokens[1]
			assert.Equal(t, []string{
				"text", "strong_open", "text", "strong_close",
				"text", "s_open", "text", "s_close",
				"text", "code_inline",
				"text", "link_open", "text", "link_close",
				"text", "image",
				"text", "html_inline", "text", "html_inline",
				"text", "hardbreak", "text",
			}, Kinds(inline.Children))

			link, _ := findKind(tokens, KindLinkOpen)
			assert.Equal(t, "https://x.test", link.Href)
			assert.Equal(t, "T", link.Title)

			image, _ := findKind(tokens, KindImage)
			assert.Equal(t, "img_7.png", image.Src)
			assert.Equal(t, "cap", image.Title)
			assert.Equal(t, "alt text", image.Alt)

			code, _ := findKind(tokens, KindCodeInline)
			assert.Equal(t, "d", code.Content)
		})
	}
}

func TestTokenizeTypographerAndEscapes(t *testing.T) {
	for name, tokenizer := range backends(t) {
		t.Run(string(name), func(t *testing.T) {
			tokens, err := tokenizer.Tokenize(`Wait... a -- b \*not em\* &amp;`)
			require.NoError(t, err)

			text, ok := findKind(tokens, KindText)
			require.True(t, ok)
			assert.Equal(t, "Wait… a – b *not em* &", text.Content)
		})
	}
}

func TestTokenizeHTMLBlock(t *testing.T) {
	for name, tokenizer := range backends(t) {
		t.Run(string(name), func(t *testing.T) {
			tokens, err := tokenizer.Tokenize("<!-- wp:paragraph -->\n<p>x</p>\n<!-- /wp:paragraph -->\n")
			require.NoError(t, err)
			require.NotEmpty(t, tokens)
			assert.Equal(t, KindHTMLBlock, tokens[0].Kind)
			assert.Contains(t, tokens[0].Content, "<!-- wp:paragraph -->")
		})
	}
}

func TestTokenizeCodeContentEndsWithNewline(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		kind     Kind
	}{
		{name: "closed fence", markdown: "```\na\n```", kind: KindFence},
		{name: "unclosed fence", markdown: "```\na", kind: KindFence},
		{name: "unclosed fence with newline", markdown: "```\na\n", kind: KindFence},
		{name: "indented code", markdown: "    a", kind: KindCodeBlock},
	}

	for name, tokenizer := range backends(t) {
		for _, tt := range tests {
			t.Run(string(name)+"/"+tt.name, func(t *testing.T) {
				tokens, err := tokenizer.Tokenize(tt.markdown)
				require.NoError(t, err)
				tok, ok := findKind(tokens, tt.kind)
				require.True(t, ok)
				assert.Equal(t, "a\n", tok.Content)
			})
		}
	}
}

func TestTokenizeOrderedList(t *testing.T) {
	for name, tokenizer := range backends(t) {
		t.Run(string(name), func(t *testing.T) {
			tokens, err := tokenizer.Tokenize("1. a\n2. b\n")
			require.NoError(t, err)
			require.NotEmpty(t, tokens)
			assert.Equal(t, KindOrderedListOpen, tokens[0].Kind)
			assert.Equal(t, KindOrderedListClose, tokens[len(tokens)-1].Kind)
		})
	}
}

func TestMatchingCloseCountsNesting(t *testing.T) {
	tokens := []Token{
		{Kind: KindBulletListOpen},
		{Kind: KindListItemOpen},
		{Kind: KindBulletListOpen},
		{Kind: KindListItemOpen},
		{Kind: KindListItemClose},
		{Kind: KindBulletListClose},
		{Kind: KindListItemClose},
		{Kind: KindBulletListClose},
		{Kind: KindHr},
	}

	assert.Equal(t, 7, MatchingClose(tokens, 0))
	assert.Equal(t, 6, MatchingClose(tokens, 1))
	assert.Equal(t, 5, MatchingClose(tokens, 2))
	assert.Equal(t, 8, MatchingClose(tokens, 8))
	assert.Equal(t, 3, MatchingClose(tokens[:3], 0))
}

func TestCursor(t *testing.T) {
	tokens := []Token{
		{Kind: KindBlockquoteOpen},
		{Kind: KindParagraphOpen},
		{Kind: KindInline, Content: "x"},
		{Kind: KindParagraphClose},
		{Kind: KindBlockquoteClose},
		{Kind: KindHr},
	}

	cur := NewCursor(tokens)
	require.False(t, cur.Done())
	assert.Len(t, cur.Enclosed(), 3)

	cur.Skip()
	assert.Equal(t, 5, cur.Pos())
	assert.Equal(t, KindHr, cur.Current().Kind)
	assert.Nil(t, cur.Enclosed())

	cur.Skip()
	assert.True(t, cur.Done())
}

func TestCursorUnclosedPair(t *testing.T) {
	cur := NewCursor([]Token{{Kind: KindParagraphOpen}, {Kind: KindInline}})
	assert.Len(t, cur.Enclosed(), 1)
	cur.Skip()
	assert.True(t, cur.Done())
}

func TestKindClosers(t *testing.T) {
	closer, ok := KindHeadingOpen.Closer()
	require.True(t, ok)
	assert.Equal(t, KindHeadingClose, closer)
	assert.True(t, KindHeadingClose.IsClose())

	_, ok = KindFence.Closer()
	assert.False(t, ok)
	assert.Equal(t, "paragraph_open", KindParagraphOpen.String())
	assert.Equal(t, "Kind(999)", Kind(999).String())
}
