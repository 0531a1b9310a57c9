package renderer

import (
	"strings"

	"github.com/rgonek/markwp/tokenstream"
)

var tableTags = map[tokenstream.Kind]string{
	tokenstream.KindTheadOpen:  "<thead>",
	tokenstream.KindTheadClose: "</thead>",
	tokenstream.KindTbodyOpen:  "<tbody>",
	tokenstream.KindTbodyClose: "</tbody>",
	tokenstream.KindTrOpen:     "<tr>",
	tokenstream.KindTrClose:    "</tr>",
	tokenstream.KindThOpen:     "<th>",
	tokenstream.KindThClose:    "</th>",
	tokenstream.KindTdOpen:     "<td>",
	tokenstream.KindTdClose:    "</td>",
}

func (s *state) renderTable(inner []tokenstream.Token) {
	var sb strings.Builder
	sb.WriteString(`<figure class="wp-block-table"><table>`)
	for _, tok := range inner {
		if tag, ok := tableTags[tok.Kind]; ok {
			sb.WriteString(tag)
			continue
		}
		if tok.Kind == tokenstream.KindInline {
			sb.WriteString(s.renderInline(tok.Children, nil))
			continue
		}
		s.drop(tok, "table")
	}
	sb.WriteString("</table></figure>")
	s.block("table", nil, sb.String())
}
