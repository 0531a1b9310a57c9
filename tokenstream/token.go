// Package tokenstream turns Markdown into a flat sequence of typed tokens:
// block constructs as open/close pairs, inline runs as Inline tokens that
// carry their own children.
package tokenstream

import "fmt"

// Kind identifies a token. Opening kinds pair with exactly one closing kind.
type Kind int

const (
	KindInvalid Kind = iota

	// Block kinds.
	KindHeadingOpen
	KindHeadingClose
	KindParagraphOpen
	KindParagraphClose
	KindBulletListOpen
	KindBulletListClose
	KindOrderedListOpen
	KindOrderedListClose
	KindListItemOpen
	KindListItemClose
	KindBlockquoteOpen
	KindBlockquoteClose
	KindTableOpen
	KindTableClose
	KindTheadOpen
	KindTheadClose
	KindTbodyOpen
	KindTbodyClose
	KindTrOpen
	KindTrClose
	KindThOpen
	KindThClose
	KindTdOpen
	KindTdClose
	KindCodeBlock
	KindFence
	KindHr
	KindHTMLBlock
	KindInline

	// Inline kinds, found only among an Inline token's children.
	KindText
	KindSoftbreak
	KindHardbreak
	KindStrongOpen
	KindStrongClose
	KindEmOpen
	KindEmClose
	KindStrikethroughOpen
	KindStrikethroughClose
	KindLinkOpen
	KindLinkClose
	KindImage
	KindCodeInline
	KindHTMLInline

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:            "invalid",
	KindHeadingOpen:        "heading_open",
	KindHeadingClose:       "heading_close",
	KindParagraphOpen:      "paragraph_open",
	KindParagraphClose:     "paragraph_close",
	KindBulletListOpen:     "bullet_list_open",
	KindBulletListClose:    "bullet_list_close",
	KindOrderedListOpen:    "ordered_list_open",
	KindOrderedListClose:   "ordered_list_close",
	KindListItemOpen:       "list_item_open",
	KindListItemClose:      "list_item_close",
	KindBlockquoteOpen:     "blockquote_open",
	KindBlockquoteClose:    "blockquote_close",
	KindTableOpen:          "table_open",
	KindTableClose:         "table_close",
	KindTheadOpen:          "thead_open",
	KindTheadClose:         "thead_close",
	KindTbodyOpen:          "tbody_open",
	KindTbodyClose:         "tbody_close",
	KindTrOpen:             "tr_open",
	KindTrClose:            "tr_close",
	KindThOpen:             "th_open",
	KindThClose:            "th_close",
	KindTdOpen:             "td_open",
	KindTdClose:            "td_close",
	KindCodeBlock:          "code_block",
	KindFence:              "fence",
	KindHr:                 "hr",
	KindHTMLBlock:          "html_block",
	KindInline:             "inline",
	KindText:               "text",
	KindSoftbreak:          "softbreak",
	KindHardbreak:          "hardbreak",
	KindStrongOpen:         "strong_open",
	KindStrongClose:        "strong_close",
	KindEmOpen:             "em_open",
	KindEmClose:            "em_close",
	KindStrikethroughOpen:  "s_open",
	KindStrikethroughClose: "s_close",
	KindLinkOpen:           "link_open",
	KindLinkClose:          "link_close",
	KindImage:              "image",
	KindCodeInline:         "code_inline",
	KindHTMLInline:         "html_inline",
}

var closers = map[Kind]Kind{
	KindHeadingOpen:       KindHeadingClose,
	KindParagraphOpen:     KindParagraphClose,
	KindBulletListOpen:    KindBulletListClose,
	KindOrderedListOpen:   KindOrderedListClose,
	KindListItemOpen:      KindListItemClose,
	KindBlockquoteOpen:    KindBlockquoteClose,
	KindTableOpen:         KindTableClose,
	KindTheadOpen:         KindTheadClose,
	KindTbodyOpen:         KindTbodyClose,
	KindTrOpen:            KindTrClose,
	KindThOpen:            KindThClose,
	KindTdOpen:            KindTdClose,
	KindStrongOpen:        KindStrongClose,
	KindEmOpen:            KindEmClose,
	KindStrikethroughOpen: KindStrikethroughClose,
	KindLinkOpen:          KindLinkClose,
}

func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Closer returns the kind that closes k, if k opens a pair.
func (k Kind) Closer() (Kind, bool) {
	closer, ok := closers[k]
	return closer, ok
}

// IsClose reports whether k closes a pair.
func (k Kind) IsClose() bool {
	for _, closer := range closers {
		if closer == k {
			return true
		}
	}
	return false
}

// Token is one element of the stream. Only the fields meaningful for its
// Kind are set.
type Token struct {
	Kind Kind

	// Level is the heading level for heading tokens.
	Level int
	// Info is the fence info string for fenced code.
	Info string
	// Content is the literal text of text, code, HTML and inline tokens.
	Content string

	Href  string
	Src   string
	Title string
	Alt   string

	// Children holds the inline tokens of an Inline token.
	Children []Token
}

// Language returns the first word of a fence info string.
func (t Token) Language() string {
	for idx := 0; idx < len(t.Info); idx++ {
		if t.Info[idx] == ' ' || t.Info[idx] == '\t' {
			return t.Info[:idx]
		}
	}
	return t.Info
}

// Kinds lists the kinds of tokens, handy for logging a stream's shape.
func Kinds(tokens []Token) []string {
	names := make([]string, len(tokens))
	for idx, tok := range tokens {
		names[idx] = tok.Kind.String()
	}
	return names
}
