package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/dustin/go-humanize"
	"go.trai.ch/logshare/internal/core/domain"
	"golang.org/x/text/encoding/htmlindex"
)

const plainLanguage = "text"

// RenderBody renders one captured body. It only reads its arguments and the renderer's
// immutable options, so it is safe for concurrent use.
func (r *Renderer) RenderBody(body []byte, contentType, decodingErr string) domain.Fragment {
	var fragment domain.Fragment
	if decodingErr != "" {
		fragment = append(fragment, domain.Block{
			Kind:  domain.BlockNotice,
			Label: "Decoding error",
			Text:  decodingErr,
			Level: domain.LogLevelError,
		})
	}

	if len(body) == 0 {
		return append(fragment, domain.Block{Kind: domain.BlockText, Text: "Empty body"})
	}

	mediaType, params := parseContentType(contentType)

	text, err := decode(body, params["charset"])
	if err != nil {
		fragment = append(fragment, domain.Block{
			Kind:  domain.BlockNotice,
			Label: "Decoding error",
			Text:  err.Error(),
			Level: domain.LogLevelWarning,
		})
		text = body
	}

	if !isTextual(mediaType, text) {
		return append(fragment, domain.Block{
			Kind: domain.BlockText,
			Text: binarySummary(len(body), mediaType),
		})
	}

	language := languageFor(mediaType)
	if language == "json" || (language == plainLanguage && json.Valid(text)) {
		var indented bytes.Buffer
		if err := json.Indent(&indented, text, "", "  "); err == nil {
			text = indented.Bytes()
			language = "json"
		}
	}

	if r.maxBodyBytes > 0 && len(text) > r.maxBodyBytes {
		cut := truncateUTF8(text, r.maxBodyBytes)
		fragment = append(fragment, domain.Block{
			Kind:  domain.BlockNotice,
			Label: "Truncated",
			Text: fmt.Sprintf("showing %s of %s",
				humanize.Bytes(uint64(len(cut))), humanize.Bytes(uint64(len(text)))),
			Level: domain.LogLevelNotice,
		})
		text = cut
	}

	return append(fragment, domain.Block{
		Kind:     domain.BlockBody,
		Text:     string(text),
		Language: language,
	})
}

func parseContentType(contentType string) (string, map[string]string) {
	if contentType == "" {
		return "", nil
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		// Keep whatever precedes the parameters.
		mediaType, _, _ = strings.Cut(contentType, ";")
		return strings.ToLower(strings.TrimSpace(mediaType)), nil
	}
	return mediaType, params
}

// decode converts body from charset to UTF-8.
func decode(body []byte, charset string) ([]byte, error) {
	if charset == "" || strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8") {
		return body, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return nil, fmt.Errorf("invalid %s content: %w", charset, err)
	}
	return out, nil
}

func isTextual(mediaType string, body []byte) bool {
	switch {
	case strings.HasPrefix(mediaType, "text/"),
		strings.HasSuffix(mediaType, "+json"),
		strings.HasSuffix(mediaType, "+xml"),
		strings.Contains(mediaType, "json"),
		strings.Contains(mediaType, "xml"),
		strings.Contains(mediaType, "javascript"),
		strings.Contains(mediaType, "yaml"),
		mediaType == "application/x-www-form-urlencoded",
		mediaType == "application/graphql":
		return true
	case strings.HasPrefix(mediaType, "image/"),
		strings.HasPrefix(mediaType, "audio/"),
		strings.HasPrefix(mediaType, "video/"),
		strings.HasPrefix(mediaType, "font/"):
		return false
	}
	return utf8.Valid(body) && !bytes.ContainsRune(body, 0)
}

func languageFor(mediaType string) string {
	switch {
	case mediaType == "":
		return plainLanguage
	case strings.HasSuffix(mediaType, "+json"):
		return "json"
	case strings.HasSuffix(mediaType, "+xml"):
		return "xml"
	}
	lexer := lexers.MatchMimeType(mediaType)
	if lexer == nil {
		return plainLanguage
	}
	if aliases := lexer.Config().Aliases; len(aliases) > 0 {
		return aliases[0]
	}
	return strings.ToLower(lexer.Config().Name)
}

func binarySummary(size int, mediaType string) string {
	if mediaType == "" {
		mediaType = "unknown type"
	}
	return fmt.Sprintf("Binary content, %s (%s)", humanize.Bytes(uint64(size)), mediaType)
}

func truncateUTF8(b []byte, n int) []byte {
	if n >= len(b) {
		return b
	}
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return b[:n]
}
