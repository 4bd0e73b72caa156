package odt

import "encoding/xml"

// XML namespaces used in ODT files
const (
	nsOffice = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsText   = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
)

// mimeType is the content of the mimetype entry of a text document.
const mimeType = "application/vnd.oasis.opendocument.text"

// metaXML represents meta.xml.
type metaXML struct {
	XMLName xml.Name `xml:"document-meta"`
	Meta    struct {
		Title       string `xml:"title"`
		Subject     string `xml:"subject"`
		Creator     string `xml:"creator"`
		InitCreator string `xml:"initial-creator"`
	} `xml:"meta"`
}

// Metadata holds the document properties relevant to templates.
type Metadata struct {
	Title   string
	Subject string
	Author  string
}
