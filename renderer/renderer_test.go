package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/markwp/gutenberg"
	"github.com/rgonek/markwp/tokenstream"
)

func renderMarkdown(t *testing.T, markdown string, pretty bool) (string, []gutenberg.Warning) {
	t.Helper()
	tokens, err := tokenstream.NewGoldmark(tokenstream.Options{}).Tokenize(markdown)
	require.NoError(t, err)
	return Render(tokens, Options{Pretty: pretty})
}

func TestRenderBlocks(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "heading",
			markdown: "# Title",
			want:     `<!-- wp:heading {"level":1} --><h1>Title</h1><!-- /wp:heading -->`,
		},
		{
			name:     "paragraph with inline markup",
			markdown: "A **b** *c* ~~d~~ `e<f>` [g](http://x.test?a=1&b=2) <kbd>h</kbd>",
			want: `<!-- wp:paragraph --><p>A <strong>b</strong> <em>c</em> <s>d</s> <code>e&lt;f&gt;</code> ` +
				`<a href="http://x.test?a=1&amp;b=2">g</a> <kbd>h</kbd></p><!-- /wp:paragraph -->`,
		},
		{
			name:     "soft and hard breaks",
			markdown: "one\ntwo  \nthree",
			want:     "<!-- wp:paragraph --><p>one\ntwo<br/>three</p><!-- /wp:paragraph -->",
		},
		{
			name:     "escaped text",
			markdown: `Tom & "Jerry" 's`,
			want:     `<!-- wp:paragraph --><p>Tom &amp; &quot;Jerry&quot; &#39;s</p><!-- /wp:paragraph -->`,
		},
		{
			name:     "bullet list",
			markdown: "- a\n- b",
			want:     `<!-- wp:list --><ul><li>a</li><li>b</li></ul><!-- /wp:list -->`,
		},
		{
			name:     "ordered list",
			markdown: "1. a\n2. b",
			want:     `<!-- wp:list {"ordered":true} --><ol><li>a</li><li>b</li></ol><!-- /wp:list -->`,
		},
		{
			name:     "nested list",
			markdown: "- a\n  1. b\n- c",
			want:     `<!-- wp:list --><ul><li>a<ol><li>b</li></ol></li><li>c</li></ul><!-- /wp:list -->`,
		},
		{
			name:     "quote",
			markdown: "> a\n>\n> b",
			want:     `<!-- wp:quote --><blockquote class="wp-block-quote"><p>a</p><p>b</p></blockquote><!-- /wp:quote -->`,
		},
		{
			name:     "nested quote",
			markdown: "> a\n>\n> > b",
			want:     `<!-- wp:quote --><blockquote class="wp-block-quote"><p>a</p><p>b</p></blockquote><!-- /wp:quote -->`,
		},
		{
			name:     "fenced code with language",
			markdown: "```go run\nx < y\n```",
			want:     "<!-- wp:code --><pre class=\"wp-block-code\"><code class=\"language-go\">x &lt; y\n</code></pre><!-- /wp:code -->",
		},
		{
			name:     "indented code",
			markdown: "    a && b",
			want:     "<!-- wp:code --><pre class=\"wp-block-code\"><code>a &amp;&amp; b\n</code></pre><!-- /wp:code -->",
		},
		{
			name:     "separator",
			markdown: "---",
			want:     `<!-- wp:separator --><hr class="wp-block-separator has-alpha-channel-opacity"/><!-- /wp:separator -->`,
		},
		{
			name:     "table",
			markdown: "| A | B |\n| --- | --- |\n| 1 | **2** |",
			want: `<!-- wp:table --><figure class="wp-block-table"><table>` +
				`<thead><tr><th>A</th><th>B</th></tr></thead>` +
				`<tbody><tr><td>1</td><td><strong>2</strong></td></tr></tbody>` +
				`</table></figure><!-- /wp:table -->`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := renderMarkdown(t, tt.markdown, false)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, warnings)
		})
	}
}

func TestRenderPretty(t *testing.T) {
	got, _ := renderMarkdown(t, "# Title\n\ntext", true)
	assert.Equal(t,
		"<!-- wp:heading {\"level\":1} -->\n<h1>Title</h1>\n<!-- /wp:heading -->\n"+
			"<!-- wp:paragraph -->\n<p>text</p>\n<!-- /wp:paragraph -->\n",
		got)
}

func TestRenderParagraphImageSplit(t *testing.T) {
	got, warnings := renderMarkdown(t, "Some text ![alt](img-42.png) more text", false)
	assert.Empty(t, warnings)
	assert.Equal(t,
		`<!-- wp:paragraph --><p>Some text</p><!-- /wp:paragraph -->`+
			`<!-- wp:image {"url":"img-42.png","id":42,"sizeSlug":"large","alt":"alt"} -->`+
			`<figure class="wp-block-image size-large"><img src="img-42.png" alt="alt" class="wp-image-42"></figure>`+
			`<!-- /wp:image -->`+
			`<!-- wp:paragraph --><p>more text</p><!-- /wp:paragraph -->`,
		got)
}

func TestRenderImageWithCaption(t *testing.T) {
	got, _ := renderMarkdown(t, `![A photo](https://x.test/pic_7.jpg "Cap")`, false)
	assert.Equal(t,
		`<!-- wp:image {"url":"https://x.test/pic_7.jpg","id":7,"sizeSlug":"large","alt":"A photo","caption":"Cap"} -->`+
			`<figure class="wp-block-image size-large"><img src="https://x.test/pic_7.jpg" alt="A photo" class="wp-image-7" title="Cap">`+
			`<figcaption>Cap</figcaption></figure><!-- /wp:image -->`,
		got)
}

func TestRenderImageWithoutID(t *testing.T) {
	got, _ := renderMarkdown(t, "![](logo.svg)", false)
	assert.Equal(t,
		`<!-- wp:image {"url":"logo.svg","sizeSlug":"large"} -->`+
			`<figure class="wp-block-image size-large"><img src="logo.svg" alt=""></figure><!-- /wp:image -->`,
		got)
}

func TestRenderHeadingImagesFollowHeading(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		heading  string
	}{
		{name: "image last", markdown: "## Hi ![x](a.png)", heading: "<h2>Hi</h2>"},
		{name: "image first", markdown: "## ![x](a.png) Hi", heading: "<h2>Hi</h2>"},
		{name: "image only", markdown: "## ![x](a.png)", heading: "<h2></h2>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := renderMarkdown(t, tt.markdown, false)
			assert.Equal(t,
				`<!-- wp:heading {"level":2} -->`+tt.heading+`<!-- /wp:heading -->`+
					`<!-- wp:image {"url":"a.png","sizeSlug":"large","alt":"x"} -->`+
					`<figure class="wp-block-image size-large"><img src="a.png" alt="x"></figure><!-- /wp:image -->`,
				got)
		})
	}
}

func TestRenderListImageInPlace(t *testing.T) {
	got, _ := renderMarkdown(t, "- see ![x](a.png)", false)
	assert.Equal(t,
		`<!-- wp:list --><ul><li>see <!-- wp:image {"url":"a.png","sizeSlug":"large","alt":"x"} -->`+
			`<figure class="wp-block-image size-large"><img src="a.png" alt="x"></figure><!-- /wp:image --></li></ul><!-- /wp:list -->`,
		got)
}

func TestRenderHTMLBlocks(t *testing.T) {
	t.Run("raw html is wrapped", func(t *testing.T) {
		got, _ := renderMarkdown(t, "<div>x</div>\n", false)
		assert.Equal(t, "<!-- wp:html --><div>x</div>\n<!-- /wp:html -->", got)
	})

	t.Run("block comments pass through", func(t *testing.T) {
		tokens := []tokenstream.Token{{Kind: tokenstream.KindHTMLBlock, Content: "<!-- wp:paragraph -->\n<p>x</p>\n<!-- /wp:paragraph -->\n"}}
		got, _ := Render(tokens, Options{})
		assert.Equal(t, tokens[0].Content, got)
	})

	t.Run("protocol markers pass through", func(t *testing.T) {
		tokens := []tokenstream.Token{{Kind: tokenstream.KindHTMLBlock, Content: "<div>[[GUTENBERG:group]]</div>\n"}}
		got, _ := Render(tokens, Options{})
		assert.Equal(t, tokens[0].Content, got)
	})
}

func TestIsBlockMarkup(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"<!-- wp:group -->", true},
		{"  \n<!-- /wp:group -->\n", true},
		{"<!--wp:spacer /-->", true},
		{"<!-- just a comment -->", false},
		{"<p><!-- wp:group --></p>", false},
		{"text <!-- wp:group -->", false},
		{"x [[/GUTENBERG:group]]", true},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isBlockMarkup(tt.raw), tt.raw)
	}
}

func TestSplitParagraph(t *testing.T) {
	img := "<!-- wp:image --><figure></figure><!-- /wp:image -->"

	tests := []struct {
		name    string
		content string
		images  []string
		want    []string
	}{
		{
			name:    "plain text keeps its spacing",
			content: " a ",
			want:    []string{"<!-- wp:paragraph --><p> a </p><!-- /wp:paragraph -->"},
		},
		{
			name:    "blank content renders nothing",
			content: " \n ",
			want:    nil,
		},
		{
			name:    "image only",
			content: imagePlaceholder,
			images:  []string{img},
			want:    []string{img},
		},
		{
			name:    "text around two images",
			content: "a " + imagePlaceholder + " b " + imagePlaceholder,
			images:  []string{img, img},
			want: []string{
				"<!-- wp:paragraph --><p>a</p><!-- /wp:paragraph -->",
				img,
				"<!-- wp:paragraph --><p>b</p><!-- /wp:paragraph -->",
				img,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitParagraph(tt.content, tt.images, false))
		})
	}
}

func TestRenderDropsUnrepresentableTokens(t *testing.T) {
	tokens := []tokenstream.Token{
		{Kind: tokenstream.KindBulletListOpen},
		{Kind: tokenstream.KindListItemOpen},
		{Kind: tokenstream.KindFence, Content: "x\n"},
		{Kind: tokenstream.KindListItemClose},
		{Kind: tokenstream.KindBulletListClose},
	}

	got, warnings := Render(tokens, Options{})
	assert.Equal(t, "<!-- wp:list --><ul><li></li></ul><!-- /wp:list -->", got)
	require.Len(t, warnings, 1)
	assert.Equal(t, gutenberg.WarningDroppedToken, warnings[0].Type)
	assert.Equal(t, "fence", warnings[0].NodeType)
}

func TestRenderStrayTokens(t *testing.T) {
	tokens := []tokenstream.Token{
		{Kind: tokenstream.KindParagraphClose},
		{Kind: tokenstream.KindText, Content: "loose"},
		{Kind: tokenstream.KindInline, Children: []tokenstream.Token{{Kind: tokenstream.KindText, Content: "bare"}}},
	}

	got, warnings := Render(tokens, Options{})
	assert.Equal(t, "<!-- wp:paragraph --><p>bare</p><!-- /wp:paragraph -->", got)
	require.Len(t, warnings, 1)
	assert.Equal(t, "text", warnings[0].NodeType)
}

func TestBackendsRenderAlike(t *testing.T) {
	input := "# Title\n\nSome *text* and `code`.\n\n- one\n- two\n\n> quoted\n\n```sh\nls\n```\n\n---\n\n| A | B |\n| --- | --- |\n| 1 | 2 |\n"

	goldmarkTokens, err := tokenstream.NewGoldmark(tokenstream.Options{}).Tokenize(input)
	require.NoError(t, err)
	commonmarkTokens, err := tokenstream.NewCommonMark(tokenstream.Options{}).Tokenize(input)
	require.NoError(t, err)

	fromGoldmark, _ := Render(goldmarkTokens, Options{})
	fromCommonMark, _ := Render(commonmarkTokens, Options{})
	assert.Equal(t, fromGoldmark, fromCommonMark)
}

func TestImageID(t *testing.T) {
	tests := []struct {
		src    string
		want   int64
		wantOK bool
	}{
		{"img-42.png", 42, true},
		{"photo_123.jpg", 123, true},
		{"https://x.test/wp-content/2024/05/shot-9.webp", 9, true},
		{"17.gif", 17, true},
		{"v2.0.png", 0, true},
		{"logo.svg", 0, false},
		{"archive.tar.gz", 0, false},
	}
	for _, tt := range tests {
		id, ok := imageID(tt.src)
		assert.Equal(t, tt.wantOK, ok, tt.src)
		assert.Equal(t, tt.want, id, tt.src)
	}
}
