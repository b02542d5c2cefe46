package ports

import "go.trai.ch/logshare/internal/core/domain"

// DocumentRenderer owns the formatting rules of exported documents.
// It is used by the export pipeline in two ways: bodies are rendered independently and
// concurrently into fragments, then records are appended to one builder in order.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type DocumentRenderer interface {
	// RenderBody renders one body. It must be safe for concurrent use.
	// A non-empty decodingErr is rendered as an inline notice rather than failing.
	RenderBody(body []byte, contentType, decodingErr string) domain.Fragment

	// RenderTask appends a network task, taking body fragments from lookup.
	RenderTask(b *domain.DocumentBuilder, task *domain.NetworkTask, lookup domain.FragmentLookup)

	// RenderMessage appends a plain message.
	RenderMessage(b *domain.DocumentBuilder, msg *domain.Message)

	// AddSeparator divides two records.
	AddSeparator(b *domain.DocumentBuilder)

	// Finalize turns the accumulated blocks into a document.
	Finalize(b *domain.DocumentBuilder) *domain.Document
}
