package tokenstream

import (
	"strings"

	"gitlab.com/golang-commonmark/markdown"
)

// CommonMark tokenizes with golang-commonmark, a port of markdown-it whose
// token stream maps one to one onto Token kinds.
type CommonMark struct {
	md *markdown.Markdown
}

func NewCommonMark(opts Options) *CommonMark {
	return &CommonMark{
		md: markdown.New(
			markdown.HTML(true),
			markdown.XHTMLOutput(true),
			markdown.Breaks(true),
			markdown.Tables(true),
			markdown.Linkify(opts.Linkify),
			markdown.Typographer(opts.Typographer),
		),
	}
}

func (c *CommonMark) Tokenize(src string) ([]Token, error) {
	parsed := c.md.Parse([]byte(src))
	tokens := make([]Token, 0, len(parsed))
	for _, tok := range parsed {
		if converted, ok := convertBlockToken(tok); ok {
			tokens = append(tokens, converted)
		}
	}
	return tokens, nil
}

func convertBlockToken(tok markdown.Token) (Token, bool) {
	switch t := tok.(type) {
	case *markdown.HeadingOpen:
		return Token{Kind: KindHeadingOpen, Level: t.HLevel}, true
	case *markdown.HeadingClose:
		return Token{Kind: KindHeadingClose, Level: t.HLevel}, true
	case *markdown.ParagraphOpen:
		return Token{Kind: KindParagraphOpen}, true
	case *markdown.ParagraphClose:
		return Token{Kind: KindParagraphClose}, true
	case *markdown.BulletListOpen:
		return Token{Kind: KindBulletListOpen}, true
	case *markdown.BulletListClose:
		return Token{Kind: KindBulletListClose}, true
	case *markdown.OrderedListOpen:
		return Token{Kind: KindOrderedListOpen}, true
	case *markdown.OrderedListClose:
		return Token{Kind: KindOrderedListClose}, true
	case *markdown.ListItemOpen:
		return Token{Kind: KindListItemOpen}, true
	case *markdown.ListItemClose:
		return Token{Kind: KindListItemClose}, true
	case *markdown.BlockquoteOpen:
		return Token{Kind: KindBlockquoteOpen}, true
	case *markdown.BlockquoteClose:
		return Token{Kind: KindBlockquoteClose}, true
	case *markdown.TableOpen:
		return Token{Kind: KindTableOpen}, true
	case *markdown.TableClose:
		return Token{Kind: KindTableClose}, true
	case *markdown.TheadOpen:
		return Token{Kind: KindTheadOpen}, true
	case *markdown.TheadClose:
		return Token{Kind: KindTheadClose}, true
	case *markdown.TbodyOpen:
		return Token{Kind: KindTbodyOpen}, true
	case *markdown.TbodyClose:
		return Token{Kind: KindTbodyClose}, true
	case *markdown.TrOpen:
		return Token{Kind: KindTrOpen}, true
	case *markdown.TrClose:
		return Token{Kind: KindTrClose}, true
	case *markdown.ThOpen:
		return Token{Kind: KindThOpen}, true
	case *markdown.ThClose:
		return Token{Kind: KindThClose}, true
	case *markdown.TdOpen:
		return Token{Kind: KindTdOpen}, true
	case *markdown.TdClose:
		return Token{Kind: KindTdClose}, true
	case *markdown.CodeBlock:
		return Token{Kind: KindCodeBlock, Content: codeContent(t.Content)}, true
	case *markdown.Fence:
		return Token{Kind: KindFence, Info: strings.TrimSpace(t.Params), Content: codeContent(t.Content)}, true
	case *markdown.Hr:
		return Token{Kind: KindHr}, true
	case *markdown.HTMLBlock:
		return Token{Kind: KindHTMLBlock, Content: t.Content}, true
	case *markdown.Inline:
		return Token{Kind: KindInline, Content: t.Content, Children: convertInlineTokens(t.Children)}, true
	}
	return Token{}, false
}

func convertInlineTokens(children []markdown.Token) []Token {
	out := make([]Token, 0, len(children))
	for _, child := range children {
		switch t := child.(type) {
		case *markdown.Text:
			out = appendText(out, t.Content)
		case *markdown.Softbreak:
			out = append(out, Token{Kind: KindSoftbreak})
		case *markdown.Hardbreak:
			out = append(out, Token{Kind: KindHardbreak})
		case *markdown.StrongOpen:
			out = append(out, Token{Kind: KindStrongOpen})
		case *markdown.StrongClose:
			out = append(out, Token{Kind: KindStrongClose})
		case *markdown.EmphasisOpen:
			out = append(out, Token{Kind: KindEmOpen})
		case *markdown.EmphasisClose:
			out = append(out, Token{Kind: KindEmClose})
		case *markdown.StrikethroughOpen:
			out = append(out, Token{Kind: KindStrikethroughOpen})
		case *markdown.StrikethroughClose:
			out = append(out, Token{Kind: KindStrikethroughClose})
		case *markdown.LinkOpen:
			out = append(out, Token{Kind: KindLinkOpen, Href: t.Href, Title: t.Title})
		case *markdown.LinkClose:
			out = append(out, Token{Kind: KindLinkClose})
		case *markdown.Image:
			out = append(out, Token{
				Kind:  KindImage,
				Src:   t.Src,
				Title: t.Title,
				Alt:   plainText(convertInlineTokens(t.Tokens)),
			})
		case *markdown.CodeInline:
			out = append(out, Token{Kind: KindCodeInline, Content: t.Content})
		case *markdown.HTMLInline:
			out = append(out, Token{Kind: KindHTMLInline, Content: t.Content})
		}
	}
	return out
}
