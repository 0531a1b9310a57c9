package tokenstream

import (
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Goldmark tokenizes with goldmark and flattens its AST into tokens.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark returns a goldmark-backed tokenizer with tables and
// strikethrough always enabled.
func NewGoldmark(opts Options) *Goldmark {
	extensions := []goldmark.Extender{extension.Table, extension.Strikethrough}
	if opts.Linkify {
		extensions = append(extensions, extension.Linkify)
	}
	if opts.Typographer {
		extensions = append(extensions, extension.Typographer)
	}

	return &Goldmark{
		md: goldmark.New(goldmark.WithExtensions(extensions...)),
	}
}

func (g *Goldmark) Tokenize(markdown string) ([]Token, error) {
	source := []byte(markdown)
	root := g.md.Parser().Parse(text.NewReader(source))

	b := &astFlattener{source: source}
	b.blockChildren(root)
	return b.tokens, nil
}

type astFlattener struct {
	source []byte
	tokens []Token
}

func (b *astFlattener) emit(tok Token) {
	b.tokens = append(b.tokens, tok)
}

func (b *astFlattener) blockChildren(parent ast.Node) {
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		b.block(child)
	}
}

func (b *astFlattener) block(node ast.Node) {
	switch n := node.(type) {
	case *ast.Heading:
		b.emit(Token{Kind: KindHeadingOpen, Level: n.Level})
		b.emit(b.inlineToken(n))
		b.emit(Token{Kind: KindHeadingClose, Level: n.Level})
	case *ast.Paragraph:
		b.emit(Token{Kind: KindParagraphOpen})
		b.emit(b.inlineToken(n))
		b.emit(Token{Kind: KindParagraphClose})
	case *ast.TextBlock:
		// Tight list items: emitted as a paragraph, like markdown-it's hidden ones.
		b.emit(Token{Kind: KindParagraphOpen})
		b.emit(b.inlineToken(n))
		b.emit(Token{Kind: KindParagraphClose})
	case *ast.Blockquote:
		b.emit(Token{Kind: KindBlockquoteOpen})
		b.blockChildren(n)
		b.emit(Token{Kind: KindBlockquoteClose})
	case *ast.List:
		openKind, closeKind := KindBulletListOpen, KindBulletListClose
		if n.IsOrdered() {
			openKind, closeKind = KindOrderedListOpen, KindOrderedListClose
		}
		b.emit(Token{Kind: openKind})
		b.blockChildren(n)
		b.emit(Token{Kind: closeKind})
	case *ast.ListItem:
		b.emit(Token{Kind: KindListItemOpen})
		b.blockChildren(n)
		b.emit(Token{Kind: KindListItemClose})
	case *ast.FencedCodeBlock:
		info := ""
		if n.Info != nil {
			info = strings.TrimSpace(b.decode(n.Info.Segment.Value(b.source)))
		}
		b.emit(Token{Kind: KindFence, Info: info, Content: codeContent(b.lines(n.Lines()))})
	case *ast.CodeBlock:
		b.emit(Token{Kind: KindCodeBlock, Content: codeContent(b.lines(n.Lines()))})
	case *ast.ThematicBreak:
		b.emit(Token{Kind: KindHr})
	case *ast.HTMLBlock:
		content := b.lines(n.Lines())
		if n.HasClosure() {
			content += string(n.ClosureLine.Value(b.source))
		}
		b.emit(Token{Kind: KindHTMLBlock, Content: content})
	case *extast.Table:
		b.table(n)
	default:
		b.blockChildren(n)
	}
}

func (b *astFlattener) table(table *extast.Table) {
	b.emit(Token{Kind: KindTableOpen})
	bodyOpen := false
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		switch row.(type) {
		case *extast.TableHeader:
			b.emit(Token{Kind: KindTheadOpen})
			b.tableRow(row, KindThOpen, KindThClose)
			b.emit(Token{Kind: KindTheadClose})
		case *extast.TableRow:
			if !bodyOpen {
				b.emit(Token{Kind: KindTbodyOpen})
				bodyOpen = true
			}
			b.tableRow(row, KindTdOpen, KindTdClose)
		}
	}
	if bodyOpen {
		b.emit(Token{Kind: KindTbodyClose})
	}
	b.emit(Token{Kind: KindTableClose})
}

func (b *astFlattener) tableRow(row ast.Node, cellOpen, cellClose Kind) {
	b.emit(Token{Kind: KindTrOpen})
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		b.emit(Token{Kind: cellOpen})
		b.emit(b.inlineToken(cell))
		b.emit(Token{Kind: cellClose})
	}
	b.emit(Token{Kind: KindTrClose})
}

func (b *astFlattener) inlineToken(parent ast.Node) Token {
	children := b.inlines(parent, nil)
	content := ""
	if lines := parent.Lines(); lines != nil && lines.Len() > 0 {
		content = strings.TrimSpace(b.lines(lines))
	} else {
		content = plainText(children)
	}
	return Token{Kind: KindInline, Content: content, Children: children}
}

func (b *astFlattener) inlines(parent ast.Node, out []Token) []Token {
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		out = b.inline(child, out)
	}
	return out
}

func (b *astFlattener) inline(node ast.Node, out []Token) []Token {
	switch n := node.(type) {
	case *ast.Text:
		value := n.Value(b.source)
		if len(value) > 0 {
			content := string(value)
			if !n.IsRaw() {
				content = b.decode(value)
			}
			out = appendText(out, content)
		}
		if n.HardLineBreak() {
			out = append(out, Token{Kind: KindHardbreak})
		} else if n.SoftLineBreak() {
			out = append(out, Token{Kind: KindSoftbreak})
		}
	case *ast.String:
		content := string(n.Value)
		if n.IsCode() {
			// Typographer substitutions arrive as HTML entities.
			content = html.UnescapeString(content)
		}
		out = appendText(out, content)
	case *ast.Emphasis:
		openKind, closeKind := KindEmOpen, KindEmClose
		if n.Level >= 2 {
			openKind, closeKind = KindStrongOpen, KindStrongClose
		}
		out = append(out, Token{Kind: openKind})
		out = b.inlines(n, out)
		out = append(out, Token{Kind: closeKind})
	case *extast.Strikethrough:
		out = append(out, Token{Kind: KindStrikethroughOpen})
		out = b.inlines(n, out)
		out = append(out, Token{Kind: KindStrikethroughClose})
	case *ast.CodeSpan:
		out = append(out, Token{Kind: KindCodeInline, Content: b.codeSpan(n)})
	case *ast.Link:
		out = append(out, Token{
			Kind:  KindLinkOpen,
			Href:  b.decode(n.Destination),
			Title: b.decode(n.Title),
		})
		out = b.inlines(n, out)
		out = append(out, Token{Kind: KindLinkClose})
	case *ast.AutoLink:
		href := string(n.URL(b.source))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(href), "mailto:") {
			href = "mailto:" + href
		}
		out = append(out, Token{Kind: KindLinkOpen, Href: href})
		out = appendText(out, string(n.Label(b.source)))
		out = append(out, Token{Kind: KindLinkClose})
	case *ast.Image:
		out = append(out, Token{
			Kind:  KindImage,
			Src:   b.decode(n.Destination),
			Title: b.decode(n.Title),
			Alt:   plainText(b.inlines(n, nil)),
		})
	case *ast.RawHTML:
		var sb strings.Builder
		for idx := 0; idx < n.Segments.Len(); idx++ {
			segment := n.Segments.At(idx)
			sb.Write(segment.Value(b.source))
		}
		out = append(out, Token{Kind: KindHTMLInline, Content: sb.String()})
	default:
		out = b.inlines(n, out)
	}
	return out
}

func (b *astFlattener) codeSpan(n *ast.CodeSpan) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			value := c.Value(b.source)
			if len(value) > 0 && value[len(value)-1] == '\n' {
				sb.Write(value[:len(value)-1])
				sb.WriteByte(' ')
				continue
			}
			sb.Write(value)
		case *ast.String:
			sb.Write(c.Value)
		}
	}
	return sb.String()
}

func (b *astFlattener) lines(lines *text.Segments) string {
	var sb strings.Builder
	for idx := 0; idx < lines.Len(); idx++ {
		segment := lines.At(idx)
		sb.Write(segment.Value(b.source))
	}
	return sb.String()
}

// decode resolves backslash escapes and character references the way
// goldmark's HTML writer does before escaping text.
func (b *astFlattener) decode(value []byte) string {
	if len(value) == 0 {
		return ""
	}
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	value = util.ResolveEntityNames(value)
	return string(value)
}

// appendText merges adjacent text runs so the stream does not depend on how
// the parser happened to split them.
func appendText(out []Token, content string) []Token {
	if content == "" {
		return out
	}
	if last := len(out) - 1; last >= 0 && out[last].Kind == KindText {
		out[last].Content += content
		return out
	}
	return append(out, Token{Kind: KindText, Content: content})
}

func plainText(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case KindText, KindCodeInline:
			sb.WriteString(tok.Content)
		case KindSoftbreak, KindHardbreak:
			sb.WriteByte('\n')
		case KindImage:
			sb.WriteString(tok.Alt)
		}
	}
	return sb.String()
}
