package model

import "strings"

// PaperSize is a named page size in points (1" = 72pt).
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

var (
	// A4 is 210mm x 297mm, rounded to whole points.
	A4 = PaperSize{Name: "A4", Width: 595, Height: 842}
	// Letter is 8.5" x 11".
	Letter = PaperSize{Name: "Letter", Width: 612, Height: 792}
)

// PaperByName returns the paper size with the given case-insensitive name.
func PaperByName(name string) (PaperSize, bool) {
	for _, size := range []PaperSize{A4, Letter} {
		if strings.EqualFold(size.Name, name) {
			return size, true
		}
	}
	return PaperSize{}, false
}

// Page is the laid-out content of one document.
type Page struct {
	Size   PaperSize
	Margin float64
	Lines  []Line
	Sheets int // Number of physical sheets the lines occupy (at least 1)
}

// NewPage creates an empty single-sheet page.
func NewPage(size PaperSize, margin float64) *Page {
	return &Page{
		Size:   size,
		Margin: margin,
		Lines:  make([]Line, 0),
		Sheets: 1,
	}
}

// ContentWidth returns the page width minus left and right margins.
func (p *Page) ContentWidth() float64 {
	return p.Size.Width - 2*p.Margin
}

// AddLine appends a line to the page.
func (p *Page) AddLine(line Line) {
	p.Lines = append(p.Lines, line)
	if line.Sheet+1 > p.Sheets {
		p.Sheets = line.Sheet + 1
	}
}

// ExtractText joins the text of all lines with newlines.
func (p *Page) ExtractText() string {
	var sb strings.Builder
	for i, line := range p.Lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(line.Text)
	}
	return sb.String()
}

// LinesByRole returns the lines drawn with the given role.
func (p *Page) LinesByRole(role FontRole) []Line {
	var lines []Line
	for _, line := range p.Lines {
		if line.Role == role {
			lines = append(lines, line)
		}
	}
	return lines
}

// OffPage returns the number of lines whose baseline is outside the sheet.
func (p *Page) OffPage() int {
	n := 0
	for _, line := range p.Lines {
		if !line.OnPage(p.Size.Height) {
			n++
		}
	}
	return n
}
