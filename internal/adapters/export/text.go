package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"go.trai.ch/logshare/internal/core/domain"
)

const separatorWidth = 60

// TextEncoder writes a document as plain text.
type TextEncoder struct{}

// NewTextEncoder creates a TextEncoder.
func NewTextEncoder() *TextEncoder {
	return &TextEncoder{}
}

// Encode writes doc to w.
func (e *TextEncoder) Encode(w io.Writer, doc *domain.Document) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, doc.Title)
	fmt.Fprintln(bw, strings.Repeat("=", len([]rune(doc.Title))))
	fmt.Fprintf(bw, "Exported %s, %s\n", doc.CreatedAt.UTC().Format(time.RFC3339), recordCount(doc.Records))

	for _, block := range doc.Blocks {
		switch block.Kind {
		case domain.BlockHeading:
			fmt.Fprintln(bw)
			fmt.Fprintln(bw, block.Text)
		case domain.BlockField:
			fmt.Fprintf(bw, "  %s: %s\n", block.Label, block.Text)
		case domain.BlockText:
			fmt.Fprintln(bw, block.Text)
		case domain.BlockBody:
			for _, line := range strings.Split(block.Text, "\n") {
				if line == "" {
					fmt.Fprintln(bw)
					continue
				}
				fmt.Fprintln(bw, "    "+line)
			}
		case domain.BlockNotice:
			if block.Label != "" {
				fmt.Fprintf(bw, "  ! %s: %s\n", block.Label, block.Text)
			} else {
				fmt.Fprintf(bw, "  ! %s\n", block.Text)
			}
		case domain.BlockSeparator:
			fmt.Fprintln(bw)
			fmt.Fprintln(bw, strings.Repeat("-", separatorWidth))
		}
	}

	return bw.Flush()
}

func recordCount(n int) string {
	if n == 1 {
		return "1 record"
	}
	return fmt.Sprintf("%d records", n)
}
