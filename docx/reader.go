// Package docx extracts plain text from DOCX (Office Open XML) documents.
//
// Styling is discarded: every paragraph becomes one line of text, in
// document order, including paragraphs inside table cells.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader  *zip.Reader
	coreProps  *corePropertiesXML
	paragraphs []string
}

// Open parses DOCX content held in memory.
func Open(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{zipReader: zr}

	if err := r.validate(); err != nil {
		return nil, err
	}

	if err := r.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	// Metadata is optional
	r.parseCoreProperties()

	return r, nil
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	if r.getFile("word/document.xml") == nil {
		return fmt.Errorf("missing required file: word/document.xml")
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

// parseDocument streams word/document.xml and collects paragraph text.
func (r *Reader) parseDocument() error {
	f := r.getFile("word/document.xml")
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

// parseParagraphs walks the token stream. Text inside mc:Choice is skipped
// in favour of the mc:Fallback branch, which every consumer understands.
func parseParagraphs(dec *xml.Decoder) ([]string, error) {
	var (
		paras  []string
		cur    strings.Builder
		depth  int // nesting of w:p
		inText bool
		inTabs bool // w:tabs holds tab stops, not tab characters
		skip   int  // nesting of mc:Choice
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
			if t.Name.Space == nsMC && t.Name.Local == "Choice" {
				skip++
				continue
			}
			if skip > 0 || t.Name.Space != nsW {
				continue
			}
			switch t.Name.Local {
			case "p":
				if depth == 0 {
					cur.Reset()
				}
				depth++
			case "t":
				inText = true
			case "tabs":
				inTabs = true
			case "tab":
				if depth > 0 && !inTabs {
					cur.WriteByte('\t')
				}
			case "br", "cr":
				cur.WriteByte('\n')
			}
		case xml.EndElement:
			if t.Name.Space == nsMC && t.Name.Local == "Choice" {
				skip--
				continue
			}
			if skip > 0 || t.Name.Space != nsW {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "tabs":
				inTabs = false
			case "p":
				depth--
				if depth == 0 {
					paras = append(paras, cur.String())
				}
			}
		case xml.CharData:
			if inText && skip == 0 {
				cur.Write(t)
			}
		}
	}

	return paras, nil
}

// parseCoreProperties parses document metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	r.coreProps = &corePropertiesXML{}
	xml.Unmarshal(data, r.coreProps)
}

// Text returns the document text, one paragraph per line.
func (r *Reader) Text() string {
	return strings.Join(r.paragraphs, "\n")
}

// Paragraphs returns the text of each paragraph in document order. Empty
// paragraphs are kept.
func (r *Reader) Paragraphs() []string {
	return append([]string(nil), r.paragraphs...)
}

// Metadata returns the document properties, if present.
func (r *Reader) Metadata() Metadata {
	if r.coreProps == nil {
		return Metadata{}
	}
	return Metadata{
		Title:   r.coreProps.Title,
		Subject: r.coreProps.Subject,
		Author:  r.coreProps.Creator,
	}
}
