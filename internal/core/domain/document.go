package domain

import "time"

// BlockKind identifies the presentation role of a Block.
type BlockKind string

const (
	// BlockHeading is a record title line.
	BlockHeading BlockKind = "heading"
	// BlockField is a label/value pair.
	BlockField BlockKind = "field"
	// BlockText is free-form prose.
	BlockText BlockKind = "text"
	// BlockBody is body content, rendered verbatim with a language hint.
	BlockBody BlockKind = "body"
	// BlockNotice is an inline error or warning indicator.
	BlockNotice BlockKind = "notice"
	// BlockSeparator divides consecutive records.
	BlockSeparator BlockKind = "separator"
)

// Block is one unit of attributed document content.
type Block struct {
	Kind     BlockKind `json:"kind"`
	Label    string    `json:"label,omitempty"`
	Text     string    `json:"text,omitempty"`
	Language string    `json:"language,omitempty"`
	Level    LogLevel  `json:"level,omitempty"`
}

// Fragment is the rendered representation of one blob.
type Fragment []Block

// FragmentLookup returns the pre-rendered fragment for a blob, if any.
type FragmentLookup func(id BlobID) (Fragment, bool)

// Document is the composite output covering every rendered record.
type Document struct {
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Records   int       `json:"records"`
	Blocks    []Block   `json:"blocks"`
}

// DocumentBuilder accumulates blocks in order.
// Separators never lead, never repeat and never trail the finalized document.
type DocumentBuilder struct {
	blocks  []Block
	records int
}

// NewDocumentBuilder returns an empty builder.
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{}
}

// Append adds blocks to the end of the document.
func (b *DocumentBuilder) Append(blocks ...Block) {
	b.blocks = append(b.blocks, blocks...)
}

// BeginRecord counts one more rendered record.
func (b *DocumentBuilder) BeginRecord() {
	b.records++
}

// AppendSeparator adds a separator unless the document is empty or already ends with one.
func (b *DocumentBuilder) AppendSeparator() {
	if len(b.blocks) == 0 || b.blocks[len(b.blocks)-1].Kind == BlockSeparator {
		return
	}
	b.blocks = append(b.blocks, Block{Kind: BlockSeparator})
}

// Len returns the number of accumulated blocks.
func (b *DocumentBuilder) Len() int {
	return len(b.blocks)
}

// Finalize returns the document and drops a trailing separator.
func (b *DocumentBuilder) Finalize(title string, createdAt time.Time) *Document {
	blocks := b.blocks
	if n := len(blocks); n > 0 && blocks[n-1].Kind == BlockSeparator {
		blocks = blocks[:n-1]
	}
	out := make([]Block, len(blocks))
	copy(out, blocks)
	return &Document{
		Title:     title,
		CreatedAt: createdAt,
		Records:   b.records,
		Blocks:    out,
	}
}

// ExportedItem describes one artifact produced by an output sink.
type ExportedItem struct {
	Path     string
	MimeType string
	Size     int64
}
