package htmldoc

import (
	"reflect"
	"strings"
	"testing"
)

func TestOpenReader_SimpleHTML(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>  Test
	Document </title>
	<meta name="author" content="Test Author">
	<meta property="og:title" content="Sunny Villa">
</head>
<body>
	<h1>Main Heading</h1>
	<p>This is a paragraph.</p>
</body>
</html>`

	r, err := OpenReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}

	if r.Title() != "Test Document" {
		t.Errorf("Title() = %q, want 'Test Document'", r.Title())
	}
	if v, ok := r.Meta("author"); !ok || v != "Test Author" {
		t.Errorf("Meta(author) = %q, %v", v, ok)
	}
	if v, _ := r.Meta("og:title"); v != "Sunny Villa" {
		t.Errorf("Meta(og:title) = %q", v)
	}

	text, _ := r.Text()
	if text != "Main Heading\nThis is a paragraph." {
		t.Errorf("Text() = %q", text)
	}
}

func TestOpenReader_InvalidHTML(t *testing.T) {
	// Even malformed HTML should parse (HTML parser is lenient)
	r, err := OpenReader(strings.NewReader(`<html><body><p>unclosed paragraph`))
	if err != nil {
		t.Fatalf("OpenReader() should handle malformed HTML: %v", err)
	}

	text, _ := r.Text()
	if text != "unclosed paragraph" {
		t.Errorf("Text() = %q", text)
	}
}

func TestReader_Lines(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "inline elements join",
			html: `<p>Website: <a href="https://x.example"><b>{{website}}</b></a></p>`,
			want: []string{"Website: {{website}}"},
		},
		{
			name: "whitespace collapses",
			html: "<p>\n   A   bright\n\thome   </p>",
			want: []string{"A bright home"},
		},
		{
			name: "br splits lines",
			html: `<p>Website: {{website}}<br>  Email: {{email}}</p>`,
			want: []string{"Website: {{website}}", "Email: {{email}}"},
		},
		{
			name: "headings and paragraphs",
			html: `<h1>{{title}}</h1><h2>Contact:</h2><p>{{email}}</p>`,
			want: []string{"{{title}}", "Contact:", "{{email}}"},
		},
		{
			name: "list items",
			html: `<ul><li>Three bedrooms</li><li>Lake <em>views</em></li></ul>`,
			want: []string{"Three bedrooms", "Lake views"},
		},
		{
			name: "nested blocks",
			html: `<div>Intro<div><p>Inner</p></div>Outro</div>`,
			want: []string{"Intro", "Inner", "Outro"},
		},
		{
			name: "table rows",
			html: `<table>
  <tr> <th>Field</th> <th>Value</th> </tr>
  <tr> <td>Email</td> <td>{{email}}</td> </tr>
</table>`,
			want: []string{"Field\tValue", "Email\t{{email}}"},
		},
		{
			name: "script and style skipped",
			html: `<style>p{color:red}</style><p>Visible</p><script>var x = "{{title}}";</script><noscript>off</noscript>`,
			want: []string{"Visible"},
		},
		{
			name: "empty blocks dropped",
			html: `<p></p><p>   </p><div><br></div><p>x</p>`,
			want: []string{"x"},
		},
		{
			name: "entities decoded",
			html: `<p>Caf&eacute; &amp; Bar &lt;3&gt;</p>`,
			want: []string{"Café & Bar <3>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := OpenReader(strings.NewReader(tt.html))
			if err != nil {
				t.Fatal(err)
			}
			if got := r.Lines(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReader_Pre(t *testing.T) {
	r, err := OpenReader(strings.NewReader("<pre>Line one\nLine   two</pre><p>after</p>"))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"Line one", "Line   two", "after"}
	if got := r.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
}

func TestReader_NoBody(t *testing.T) {
	r, err := OpenReader(strings.NewReader("Just some text"))
	if err != nil {
		t.Fatal(err)
	}
	text, _ := r.Text()
	if text != "Just some text" {
		t.Errorf("Text() = %q", text)
	}
	if r.Title() != "" {
		t.Errorf("expected no title, got %q", r.Title())
	}
}
