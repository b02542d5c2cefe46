// Package render turns stored records into document blocks.
package render

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"go.trai.ch/logshare/internal/core/domain"
)

const (
	// DefaultTitle is the title of exported documents.
	DefaultTitle = "Logs"

	// DefaultMaxBodyBytes caps the rendered size of a single body.
	DefaultMaxBodyBytes = 512 * 1024
)

// Renderer implements ports.DocumentRenderer.
type Renderer struct {
	title        string
	maxBodyBytes int
	now          func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		r.title = title
	}
}

// WithMaxBodyBytes caps the rendered size of a body. Zero disables the cap.
func WithMaxBodyBytes(n int) Option {
	return func(r *Renderer) {
		r.maxBodyBytes = n
	}
}

// WithClock sets the clock used to stamp finalized documents.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		title:        DefaultTitle,
		maxBodyBytes: DefaultMaxBodyBytes,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderTask appends a network task with its headers and pre-rendered bodies.
func (r *Renderer) RenderTask(b *domain.DocumentBuilder, task *domain.NetworkTask, lookup domain.FragmentLookup) {
	level := domain.LogLevelInfo
	if task.ErrorDescription != "" || task.StatusCode >= http.StatusBadRequest {
		level = domain.LogLevelError
	}

	b.Append(domain.Block{
		Kind:  domain.BlockHeading,
		Text:  task.Method + " " + task.URL,
		Level: level,
	})
	b.Append(field("Date", formatTime(task.CreatedAt)))
	b.Append(field("Status", statusText(task.StatusCode)))
	if task.Duration > 0 {
		b.Append(field("Duration", task.Duration.Round(time.Millisecond).String()))
	}
	if task.ErrorDescription != "" {
		b.Append(domain.Block{
			Kind:  domain.BlockNotice,
			Label: "Error",
			Text:  task.ErrorDescription,
			Level: domain.LogLevelError,
		})
	}

	r.appendSection(b, "Request", task.RequestHeaders, task.RequestBody, lookup)
	r.appendSection(b, "Response", task.ResponseHeaders, task.ResponseBody, lookup)
}

// RenderMessage appends a plain message.
func (r *Renderer) RenderMessage(b *domain.DocumentBuilder, msg *domain.Message) {
	heading := "[" + string(msg.Level) + "]"
	if msg.Label != "" {
		heading += " " + msg.Label
	}
	b.Append(domain.Block{Kind: domain.BlockHeading, Text: heading, Level: msg.Level})
	b.Append(field("Date", formatTime(msg.CreatedAt)))
	b.Append(domain.Block{Kind: domain.BlockText, Text: msg.Text})
	for _, key := range sortedKeys(msg.Metadata) {
		b.Append(field(key, msg.Metadata[key]))
	}
}

// AddSeparator divides two records.
func (r *Renderer) AddSeparator(b *domain.DocumentBuilder) {
	b.AppendSeparator()
}

// Finalize stamps the document with the renderer's title and clock.
func (r *Renderer) Finalize(b *domain.DocumentBuilder) *domain.Document {
	return b.Finalize(r.title, r.now())
}

func (r *Renderer) appendSection(
	b *domain.DocumentBuilder,
	name string,
	headers map[string]string,
	body *domain.BlobRef,
	lookup domain.FragmentLookup,
) {
	if len(headers) == 0 && body == nil {
		return
	}

	b.Append(domain.Block{Kind: domain.BlockText, Label: name, Text: name})
	for _, key := range sortedKeys(headers) {
		b.Append(field(key, headers[key]))
	}
	if body == nil {
		return
	}

	fragment, ok := lookup(body.ID)
	if !ok {
		b.Append(domain.Block{
			Kind:  domain.BlockNotice,
			Label: name + " body",
			Text:  "Body unavailable",
			Level: domain.LogLevelWarning,
		})
		return
	}
	b.Append(fragment...)
}

func field(label, value string) domain.Block {
	return domain.Block{Kind: domain.BlockField, Label: label, Text: value}
}

func statusText(code int) string {
	if code == 0 {
		return "No response"
	}
	if text := http.StatusText(code); text != "" {
		return strconv.Itoa(code) + " " + text
	}
	return strconv.Itoa(code)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.UTC().Format(time.RFC3339)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
