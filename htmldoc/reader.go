// Package htmldoc extracts plain text from HTML documents.
//
// Extraction works on the parse tree produced by golang.org/x/net/html; no
// scripts run and no styles are applied. Every block-level element becomes
// one line of text and <br> starts a new line within the block.
package htmldoc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Reader provides access to HTML document content.
type Reader struct {
	doc      *html.Node
	title    string
	metadata map[string]string
	lines    []string
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		doc:      doc,
		metadata: make(map[string]string),
	}

	// Extract title and metadata from head
	reader.extractHead(doc)

	// Extract content from body
	reader.extractBody(doc)

	return reader, nil
}

// extractHead extracts title and meta tags from the head element.
func (r *Reader) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "title":
				r.title = strings.Join(strings.Fields(getTextContent(c)), " ")
			case "meta":
				name, content := getAttr(c, "name"), getAttr(c, "content")
				if name == "" {
					name = getAttr(c, "property")
				}
				if name != "" && content != "" {
					r.metadata[name] = content
				}
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.extractHead(c)
	}
}

// extractBody extracts content from the body element.
func (r *Reader) extractBody(n *html.Node) {
	body := findElement(n, "body")
	if body == nil {
		// No body tag, try to extract from root
		body = n
	}

	b := &blockBuilder{}
	r.traverseNode(body, b, 0)
	r.flush(b)
}

// blockBuilder accumulates the text of the current block, collapsing
// whitespace the way a browser does for normal flow content.
type blockBuilder struct {
	sb        strings.Builder
	collapsed bool
	pre       int // nesting of <pre>
}

func (b *blockBuilder) text(s string) {
	if b.pre > 0 {
		b.sb.WriteString(s)
		b.collapsed = strings.HasSuffix(s, "\n")
		return
	}
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !b.collapsed && b.sb.Len() > 0 {
				b.sb.WriteByte(' ')
			}
			b.collapsed = true
		default:
			b.sb.WriteRune(r)
			b.collapsed = false
		}
	}
}

func (b *blockBuilder) literal(s string) {
	b.sb.WriteString(s)
	b.collapsed = true
}

// flush emits the pending block, one line per embedded line break.
func (r *Reader) flush(b *blockBuilder) {
	for _, line := range strings.Split(b.sb.String(), "\n") {
		line = strings.TrimRight(strings.TrimLeft(line, " "), " ")
		if strings.TrimSpace(line) != "" {
			r.lines = append(r.lines, line)
		}
	}
	b.sb.Reset()
	b.collapsed = false
}

// traverseNode recursively processes DOM nodes. cell is the index of the
// current table cell within its row.
func (r *Reader) traverseNode(n *html.Node, b *blockBuilder, cell int) {
	switch n.Type {
	case html.TextNode:
		b.text(n.Data)
		return
	case html.ElementNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			r.traverseNode(c, b, cell)
		}
		return
	}

	// Skip non-content elements
	if shouldSkipElement(n.Data) {
		return
	}

	switch {
	case n.Data == "br":
		b.literal("\n")
		return
	case n.Data == "td" || n.Data == "th":
		if cell > 0 {
			b.literal("\t")
		}
	case n.Data == "tr":
		r.flush(b)
		i := 0
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			r.traverseNode(c, b, i)
			if c.Data == "td" || c.Data == "th" {
				i++
			}
		}
		r.flush(b)
		return
	case isBlock(n.Data):
		r.flush(b)
		if n.Data == "pre" {
			b.pre++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			r.traverseNode(c, b, cell)
		}
		if n.Data == "pre" {
			b.pre--
		}
		r.flush(b)
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.traverseNode(c, b, cell)
	}
}

// shouldSkipElement returns true if the element should be skipped during content extraction.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "head", "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed", "select", "button":
		return true
	}
	return false
}

// isBlock reports whether an element starts a new line of text.
func isBlock(tagName string) bool {
	switch tagName {
	case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "dl", "dt", "dd",
		"table", "thead", "tbody", "tfoot", "caption",
		"blockquote", "pre", "address", "figure", "figcaption", "hr",
		"article", "section", "main", "header", "footer", "nav", "aside", "form", "fieldset", "legend":
		return true
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// getTextContent extracts all text content from a node and its descendants.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			result.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(result.String())
}

// getAttr returns the value of an attribute, or "".
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// Text returns the document text, one block per line.
func (r *Reader) Text() (string, error) {
	return strings.Join(r.lines, "\n"), nil
}

// Lines returns the extracted lines in document order.
func (r *Reader) Lines() []string {
	return append([]string(nil), r.lines...)
}

// Title returns the content of the <title> element.
func (r *Reader) Title() string {
	return r.title
}

// Meta returns the content of the named <meta> tag.
func (r *Reader) Meta(name string) (string, bool) {
	v, ok := r.metadata[name]
	return v, ok
}
