// Package html renders trees as standalone HTML pages styled with
// Tailwind CSS v4 (CDN) and syntax highlighting via goldmark + chroma.
package html

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/sonnes/leafwalk/core"
	"github.com/sonnes/leafwalk/render/json"
	"github.com/sonnes/leafwalk/render/markdown"
	"github.com/sonnes/leafwalk/stat"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
)

// Renderer renders a tree to a standalone HTML page.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// New creates an HTML Renderer with goldmark configured for GFM and syntax highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(), // allow raw HTML in markdown
		),
	)

	tmpl := template.Must(
		template.New("page.html").
			Funcs(funcMap()).
			ParseFS(content, "templates/*.html"),
	)

	return &Renderer{md: md, tmpl: tmpl}
}

// pageData is the top-level template data passed to page.html.
type pageData struct {
	Tree   *core.Tree
	Stats  stat.Stats
	Body   template.HTML // outline bullet list
	Source template.HTML // highlighted JSON source block
}

// Render writes the tree as a complete HTML page to w.
func (r *Renderer) Render(w io.Writer, t *core.Tree) error {
	body, err := r.renderBody(t)
	if err != nil {
		return err
	}
	source, err := r.renderSource(t)
	if err != nil {
		return err
	}

	data := pageData{
		Tree:   t,
		Stats:  stat.Collect(t),
		Body:   body,
		Source: source,
	}
	return r.tmpl.ExecuteTemplate(w, "page.html", data)
}

// renderBody converts the markdown outline to HTML. The tree name is
// dropped so the heading is not repeated under the page header.
func (r *Renderer) renderBody(t *core.Tree) (template.HTML, error) {
	var outline bytes.Buffer
	if err := markdown.New().Render(&outline, &core.Tree{Root: t.Root}); err != nil {
		return "", fmt.Errorf("render outline: %w", err)
	}

	var buf bytes.Buffer
	if err := r.md.Convert(outline.Bytes(), &buf); err != nil {
		return "", fmt.Errorf("convert outline: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// renderSource re-encodes the tree as indented JSON inside a fenced
// block so chroma highlights it.
func (r *Renderer) renderSource(t *core.Tree) (template.HTML, error) {
	var src bytes.Buffer
	if err := json.New().Render(&src, t); err != nil {
		return "", fmt.Errorf("encode source: %w", err)
	}

	fenced := "```json\n" + strings.TrimRight(src.String(), "\n") + "\n```"
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(fenced), &buf); err != nil {
		return "", fmt.Errorf("convert source: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// funcMap returns the helpers available to the page template.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"formatNumber": formatNumber,
		"formatSize":   formatSize,
	}
}

// Format helpers mirrored from stat.

func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
