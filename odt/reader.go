// Package odt extracts plain text from ODT (OpenDocument Text) documents.
//
// Styling is discarded: every text:p and text:h element becomes one line of
// text, in document order. Notes and annotations are skipped.
package odt

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader provides access to ODT document content.
type Reader struct {
	zipReader  *zip.Reader
	meta       *metaXML
	paragraphs []string
}

// Open parses ODT content held in memory.
func Open(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{zipReader: zr}

	if err := r.validate(); err != nil {
		return nil, err
	}

	if err := r.parseContent(); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}

	// Metadata is optional
	r.parseMetadata()

	return r, nil
}

// validate checks the mimetype and that content.xml exists.
func (r *Reader) validate() error {
	data, err := r.getFileContent("mimetype")
	if err != nil {
		return fmt.Errorf("missing required file: mimetype")
	}
	if strings.TrimSpace(string(data)) != mimeType {
		return fmt.Errorf("not an OpenDocument text document: %q", data)
	}
	if r.getFile("content.xml") == nil {
		return fmt.Errorf("missing required file: content.xml")
	}
	return nil
}

// getFile returns a zip.File by name.
func (r *Reader) getFile(name string) *zip.File {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	f := r.getFile(name)
	if f == nil {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseContent streams content.xml and collects paragraph text.
func (r *Reader) parseContent() error {
	f := r.getFile("content.xml")
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	paras, err := parseParagraphs(xml.NewDecoder(rc))
	if err != nil {
		return err
	}
	r.paragraphs = paras
	return nil
}

// paragraphBuilder applies ODF whitespace rules: runs of whitespace in
// character data collapse to one space, leading and trailing spaces are
// dropped, and text:s, text:tab and text:line-break are kept verbatim.
type paragraphBuilder struct {
	sb        strings.Builder
	collapsed bool
}

func (b *paragraphBuilder) reset() {
	b.sb.Reset()
	b.collapsed = true
}

func (b *paragraphBuilder) chars(data []byte) {
	for _, r := range string(data) {
		switch r {
		case ' ', '\t', '\n', '\r':
			if !b.collapsed {
				b.sb.WriteByte(' ')
				b.collapsed = true
			}
		default:
			b.sb.WriteRune(r)
			b.collapsed = false
		}
	}
}

func (b *paragraphBuilder) literal(s string) {
	b.sb.WriteString(s)
	b.collapsed = false
}

func (b *paragraphBuilder) String() string {
	return strings.TrimRight(b.sb.String(), " ")
}

func parseParagraphs(dec *xml.Decoder) ([]string, error) {
	var (
		paras []string
		cur   paragraphBuilder
		depth int // nesting of text:p / text:h
		skip  int // nesting of notes and annotations
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if isSkipped(t.Name) {
				skip++
				continue
			}
			if skip > 0 || t.Name.Space != nsText {
				continue
			}
			switch t.Name.Local {
			case "p", "h":
				if depth == 0 {
					cur.reset()
				}
				depth++
			case "tab":
				cur.literal("\t")
			case "line-break":
				cur.literal("\n")
			case "s":
				cur.literal(strings.Repeat(" ", spaceCount(t)))
			}
		case xml.EndElement:
			if isSkipped(t.Name) {
				skip--
				continue
			}
			if skip > 0 || t.Name.Space != nsText {
				continue
			}
			if t.Name.Local == "p" || t.Name.Local == "h" {
				depth--
				if depth == 0 {
					paras = append(paras, cur.String())
				}
			}
		case xml.CharData:
			if depth > 0 && skip == 0 {
				cur.chars(t)
			}
		}
	}

	return paras, nil
}

func isSkipped(name xml.Name) bool {
	switch {
	case name.Space == nsText && name.Local == "note":
		return true
	case name.Space == nsOffice && name.Local == "annotation":
		return true
	}
	return false
}

// spaceCount returns the text:c attribute of a text:s element (default 1).
func spaceCount(se xml.StartElement) int {
	for _, attr := range se.Attr {
		if attr.Name.Space == nsText && attr.Name.Local == "c" {
			if n, err := strconv.Atoi(attr.Value); err == nil && n > 0 {
				return n
			}
		}
	}
	return 1
}

// parseMetadata parses document metadata.
func (r *Reader) parseMetadata() {
	data, err := r.getFileContent("meta.xml")
	if err != nil {
		return
	}

	r.meta = &metaXML{}
	xml.Unmarshal(data, r.meta)
}

// Text returns the document text, one paragraph per line.
func (r *Reader) Text() string {
	return strings.Join(r.paragraphs, "\n")
}

// Paragraphs returns the text of each paragraph in document order.
func (r *Reader) Paragraphs() []string {
	return append([]string(nil), r.paragraphs...)
}

// Metadata returns the document properties, if present.
func (r *Reader) Metadata() Metadata {
	if r.meta == nil {
		return Metadata{}
	}
	author := r.meta.Meta.Creator
	if author == "" {
		author = r.meta.Meta.InitCreator
	}
	return Metadata{
		Title:   r.meta.Meta.Title,
		Subject: r.meta.Meta.Subject,
		Author:  author,
	}
}
