package export

import (
	"bytes"
	"html/template"
	"io"
	"time"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"go.trai.ch/logshare/internal/core/domain"
)

const highlightClassPrefix = "hl-"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; color: #1f2328; max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
header .meta { color: #656d76; }
h2 { font-size: 1.1rem; margin: 1.5rem 0 .5rem; word-break: break-all; }
h2.level-error, h2.level-critical { color: #cf222e; }
h2.level-warning { color: #9a6700; }
.field { font-size: .9rem; }
.field .label { color: #656d76; }
.section { font-weight: 600; margin-top: .75rem; }
.notice { border-left: 3px solid #d4a72c; background: #fff8c5; padding: .25rem .5rem; margin: .25rem 0; font-size: .9rem; }
.notice.level-error { border-color: #cf222e; background: #ffebe9; }
.body pre { padding: .75rem; overflow-x: auto; font-size: .8rem; border-radius: 6px; }
hr { border: 0; border-top: 1px solid #d0d7de; margin: 1.5rem 0; }
{{.CSS}}
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<p class="meta">Exported {{.Created}}, {{.Count}}</p>
</header>
{{- range .Blocks}}
{{- if eq .Kind "heading"}}
<h2 class="level-{{.Level}}">{{.Text}}</h2>
{{- else if eq .Kind "field"}}
<div class="field"><span class="label">{{.Label}}:</span> {{.Text}}</div>
{{- else if eq .Kind "text"}}
<p{{if .Label}} class="section"{{end}}>{{.Text}}</p>
{{- else if eq .Kind "body"}}
<div class="body">{{.Highlighted}}</div>
{{- else if eq .Kind "notice"}}
<div class="notice level-{{.Level}}">{{if .Label}}<strong>{{.Label}}:</strong> {{end}}{{.Text}}</div>
{{- else if eq .Kind "separator"}}
<hr>
{{- end}}
{{- end}}
</body>
</html>
`))

type htmlPage struct {
	Title   string
	Created string
	Count   string
	CSS     template.CSS
	Blocks  []htmlBlock
}

type htmlBlock struct {
	Kind        string
	Label       string
	Text        string
	Level       string
	Highlighted template.HTML
}

// HTMLEncoder writes a standalone HTML page with syntax highlighted bodies.
type HTMLEncoder struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHTMLEncoder creates an HTMLEncoder using the named chroma style.
// Unknown styles fall back to chroma's default.
func NewHTMLEncoder(theme string) *HTMLEncoder {
	return &HTMLEncoder{
		style: styles.Get(theme),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.ClassPrefix(highlightClassPrefix),
		),
	}
}

// Encode writes doc to w.
func (e *HTMLEncoder) Encode(w io.Writer, doc *domain.Document) error {
	var css bytes.Buffer
	if err := e.formatter.WriteCSS(&css, e.style); err != nil {
		return err
	}

	page := htmlPage{
		Title:   doc.Title,
		Created: doc.CreatedAt.UTC().Format(time.RFC3339),
		Count:   recordCount(doc.Records),
		//nolint:gosec // CSS is generated by chroma from a built-in style
		CSS:    template.CSS(css.String()),
		Blocks: make([]htmlBlock, 0, len(doc.Blocks)),
	}

	for _, block := range doc.Blocks {
		hb := htmlBlock{
			Kind:  string(block.Kind),
			Label: block.Label,
			Text:  block.Text,
			Level: string(block.Level),
		}
		if block.Kind == domain.BlockBody {
			highlighted, err := e.highlight(block.Text, block.Language)
			if err != nil {
				return err
			}
			hb.Highlighted = highlighted
		}
		page.Blocks = append(page.Blocks, hb)
	}

	return pageTemplate.Execute(w, page)
}

func (e *HTMLEncoder) highlight(text, language string) (template.HTML, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := e.formatter.Format(&buf, e.style, iterator); err != nil {
		return "", err
	}
	//nolint:gosec // chroma escapes token values
	return template.HTML(buf.String()), nil
}
