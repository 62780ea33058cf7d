package formatter

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aleister1102/siftview/internal/common"
	"golang.org/x/net/html"
)

const markupIndent = "  "

var (
	errNoElement = errors.New("no element found")

	xmlTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	xmlAttrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
)

// voidElements never take an end tag in HTML.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// markupNode is an element with its children, or a leaf holding a
// pre-rendered text, comment or declaration.
type markupNode struct {
	name     string
	open     string
	close    string
	empty    string
	text     bool
	children []*markupNode
}

func (n *markupNode) isLeaf() bool {
	return n.close == ""
}

func (n *markupNode) render(b *strings.Builder, depth int) {
	indent := strings.Repeat(markupIndent, depth)
	b.WriteString(indent)

	switch {
	case n.isLeaf():
		b.WriteString(n.open)
	case len(n.children) == 0 && n.empty != "":
		b.WriteString(n.empty)
	case len(n.children) == 0:
		b.WriteString(n.open + n.close)
	case len(n.children) == 1 && n.children[0].text:
		b.WriteString(n.open + n.children[0].open + n.close)
	default:
		b.WriteString(n.open)
		b.WriteByte('\n')
		for _, child := range n.children {
			child.render(b, depth+1)
		}
		b.WriteString(indent + n.close)
	}
	b.WriteByte('\n')
}

// markupTree collects nodes while checking that every element is closed by
// its own end tag.
type markupTree struct {
	root     markupNode
	stack    []*markupNode
	elements int
}

func newMarkupTree() *markupTree {
	t := &markupTree{}
	t.stack = []*markupNode{&t.root}
	return t
}

func (t *markupTree) parent() *markupNode {
	return t.stack[len(t.stack)-1]
}

func (t *markupTree) leaf(n *markupNode) {
	p := t.parent()
	p.children = append(p.children, n)
}

func (t *markupTree) open(n *markupNode) {
	t.leaf(n)
	t.stack = append(t.stack, n)
	t.elements++
}

func (t *markupTree) close(name string) error {
	if len(t.stack) == 1 {
		return fmt.Errorf("unexpected end tag </%s>", name)
	}
	if top := t.parent(); top.name != name {
		return fmt.Errorf("element <%s> closed by </%s>", top.name, name)
	}
	t.stack = t.stack[:len(t.stack)-1]
	return nil
}

func (t *markupTree) finish() (string, error) {
	if len(t.stack) > 1 {
		return "", fmt.Errorf("element <%s> is never closed", t.parent().name)
	}
	if t.elements == 0 {
		return "", errNoElement
	}

	var b strings.Builder
	for _, n := range t.root.children {
		n.render(&b, 0)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// FormatMarkup indents XML, or HTML when the input is not well-formed XML,
// two spaces per nesting level with one node per line. Text is trimmed and
// an element holding only text stays on one line.
func FormatMarkup(content string) (string, error) {
	out, xmlErr := formatXML(content)
	if xmlErr == nil {
		return out, nil
	}
	if out, err := formatHTML(content); err == nil {
		return out, nil
	}
	return "", common.NewParseError("xml", xmlErr)
}

func formatXML(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	tree := newMarkupTree()

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			name := qualifiedName(tok.Name)
			var attrs strings.Builder
			for _, attr := range tok.Attr {
				fmt.Fprintf(&attrs, ` %s="%s"`, qualifiedName(attr.Name), xmlAttrEscaper.Replace(attr.Value))
			}
			tree.open(&markupNode{
				name:  name,
				open:  "<" + name + attrs.String() + ">",
				close: "</" + name + ">",
				empty: "<" + name + attrs.String() + "/>",
			})
		case xml.EndElement:
			if err := tree.close(qualifiedName(tok.Name)); err != nil {
				return "", err
			}
		case xml.CharData:
			text := strings.TrimSpace(string(tok))
			if text == "" {
				continue
			}
			if len(tree.stack) == 1 {
				return "", errors.New("text outside of the root element")
			}
			tree.leaf(&markupNode{text: true, open: xmlTextEscaper.Replace(text)})
		case xml.Comment:
			tree.leaf(&markupNode{open: "<!--" + string(tok) + "-->"})
		case xml.ProcInst:
			inst := strings.TrimSpace(string(tok.Inst))
			if inst != "" {
				inst = " " + inst
			}
			tree.leaf(&markupNode{open: "<?" + tok.Target + inst + "?>"})
		case xml.Directive:
			tree.leaf(&markupNode{open: "<!" + string(tok) + ">"})
		}
	}
	return tree.finish()
}

// qualifiedName keeps namespace prefixes as written.
func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func formatHTML(content string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(content))
	tree := newMarkupTree()

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return tree.finish()
			}
			return "", z.Err()
		case html.TextToken:
			// Raw keeps entities as written; it is only valid until Next.
			text := strings.TrimSpace(string(z.Raw()))
			if text != "" {
				tree.leaf(&markupNode{text: true, open: text})
			}
		case html.StartTagToken:
			tok := z.Token()
			if voidElements[tok.Data] {
				tree.leaf(&markupNode{open: tok.String()})
				tree.elements++
				continue
			}
			tree.open(&markupNode{
				name:  tok.Data,
				open:  tok.String(),
				close: "</" + tok.Data + ">",
			})
		case html.SelfClosingTagToken:
			tree.leaf(&markupNode{open: z.Token().String()})
			tree.elements++
		case html.EndTagToken:
			tok := z.Token()
			if voidElements[tok.Data] {
				continue
			}
			if err := tree.close(tok.Data); err != nil {
				return "", err
			}
		case html.CommentToken, html.DoctypeToken:
			tree.leaf(&markupNode{open: z.Token().String()})
		}
	}
}
