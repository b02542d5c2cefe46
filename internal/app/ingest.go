package app

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxIngestLine bounds a single JSONL line, bodies included.
const maxIngestLine = 64 << 20

// ingestNamespace derives stable identifiers for lines that carry none.
var ingestNamespace = uuid.MustParse("6f1c3c2e-8d0b-4a53-9a0e-2f4e5b7c9d10")

// ingestLine is one JSONL entry of an ingest file.
type ingestLine struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Method                string            `json:"method"`
	URL                   string            `json:"url"`
	Status                int               `json:"status"`
	DurationMS            int64             `json:"duration_ms"`
	Error                 string            `json:"error"`
	RequestHeaders        map[string]string `json:"request_headers"`
	ResponseHeaders       map[string]string `json:"response_headers"`
	RequestBody           *string           `json:"request_body"`
	ResponseBody          *string           `json:"response_body"`
	RequestBodyBase64     *string           `json:"request_body_base64"`
	ResponseBodyBase64    *string           `json:"response_body_base64"`
	RequestContentType    string            `json:"request_content_type"`
	ResponseContentType   string            `json:"response_content_type"`
	ResponseDecodingError string            `json:"response_decoding_error"`

	Level    string            `json:"level"`
	Label    string            `json:"label"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata"`
	TaskID   string            `json:"task_id"`
}

// IngestResult summarizes an ingest run.
type IngestResult struct {
	Tasks    int
	Messages int
}

// String describes the result for humans.
func (r IngestResult) String() string {
	return "ingested " + pluralize(r.Tasks, "task") + " and " + pluralize(r.Messages, "message")
}

// Ingest stores every record of a JSONL file. It stops at the first malformed line.
func (a *App) Ingest(ctx context.Context, path string) (IngestResult, error) {
	settings, err := a.loadSettings()
	if err != nil {
		return IngestResult{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return IngestResult{}, zerr.With(zerr.Wrap(err, domain.ErrIngestOpenFailed.Error()), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	db, err := a.opener.Open(ctx, settings)
	if err != nil {
		return IngestResult{}, err
	}
	defer func() {
		_ = db.Close()
	}()

	ing := &ingester{blobs: a.blobs, root: settings.BlobsPath, db: db, now: time.Now}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxIngestLine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return ing.result, err
		}
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		if err := ing.ingest(ctx, lineNo, []byte(raw)); err != nil {
			return ing.result, zerr.With(zerr.With(err, "line", strconv.Itoa(lineNo)), "path", path)
		}
	}
	if err := scanner.Err(); err != nil {
		return ing.result, zerr.With(zerr.Wrap(err, domain.ErrIngestParseFailed.Error()), "path", path)
	}

	return ing.result, nil
}

type ingester struct {
	blobs  ports.BlobStore
	root   string
	db     ports.RecordWriter
	now    func() time.Time
	result IngestResult
}

func (i *ingester) ingest(ctx context.Context, lineNo int, raw []byte) error {
	var line ingestLine
	if err := json.Unmarshal(raw, &line); err != nil {
		return zerr.Wrap(err, domain.ErrIngestParseFailed.Error())
	}

	id := domain.RecordID(line.ID)
	if id == "" {
		id = lineID(lineNo, raw)
	}
	createdAt := line.CreatedAt
	if createdAt.IsZero() {
		createdAt = i.now()
	}

	switch strings.ToLower(line.Kind) {
	case "task":
		return i.ingestTask(ctx, id, createdAt, &line)
	case "message":
		return i.ingestMessage(ctx, id, createdAt, &line)
	default:
		return zerr.With(domain.ErrUnknownRecordKind, "kind", line.Kind)
	}
}

func (i *ingester) ingestTask(ctx context.Context, id domain.RecordID, createdAt time.Time, line *ingestLine) error {
	request, err := i.putBody("request", line.RequestBody, line.RequestBodyBase64, line.RequestContentType, "")
	if err != nil {
		return err
	}
	response, err := i.putBody("response", line.ResponseBody, line.ResponseBodyBase64,
		line.ResponseContentType, line.ResponseDecodingError)
	if err != nil {
		return err
	}

	task := &domain.NetworkTask{
		ID:               id,
		CreatedAt:        createdAt,
		Method:           line.Method,
		URL:              line.URL,
		StatusCode:       line.Status,
		Duration:         time.Duration(line.DurationMS) * time.Millisecond,
		ErrorDescription: line.Error,
		RequestHeaders:   line.RequestHeaders,
		ResponseHeaders:  line.ResponseHeaders,
		RequestBody:      request,
		ResponseBody:     response,
	}
	if err := i.db.PutTask(ctx, task); err != nil {
		return err
	}
	i.result.Tasks++
	return nil
}

func (i *ingester) ingestMessage(ctx context.Context, id domain.RecordID, createdAt time.Time, line *ingestLine) error {
	msg := &domain.Message{
		ID:        id,
		CreatedAt: createdAt,
		Level:     domain.NormalizeLogLevel(strings.ToLower(line.Level)),
		Label:     line.Label,
		Text:      line.Text,
		Metadata:  line.Metadata,
		TaskID:    domain.RecordID(line.TaskID),
	}
	if err := i.db.PutMessage(ctx, msg); err != nil {
		return err
	}
	i.result.Messages++
	return nil
}

// putBody stores a body in the blob store. Absent bodies produce no reference.
// Base64 bodies are stored byte for byte. Text bodies are already UTF-8, so any
// declared charset is replaced.
func (i *ingester) putBody(role string, text, encoded *string, contentType, decodingErr string) (*domain.BlobRef, error) {
	var data []byte
	switch {
	case encoded != nil:
		decoded, err := base64.StdEncoding.DecodeString(*encoded)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrIngestParseFailed.Error()), "field", role+"_body_base64")
		}
		data = decoded
	case text != nil:
		data = []byte(*text)
		contentType = utf8ContentType(contentType)
	default:
		return nil, nil
	}

	id, err := i.blobs.Put(i.root, data)
	if err != nil {
		return nil, err
	}
	return &domain.BlobRef{
		ID:            id,
		Size:          int64(len(data)),
		ContentType:   contentType,
		DecodingError: decodingErr,
	}, nil
}

// utf8ContentType rewrites the charset parameter of contentType to utf-8.
// Content types without a charset are returned unchanged.
func utf8ContentType(contentType string) string {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return contentType
	}
	charset, ok := params["charset"]
	if !ok || strings.EqualFold(charset, "utf-8") {
		return contentType
	}
	params["charset"] = "utf-8"
	return mime.FormatMediaType(mediaType, params)
}

// lineID derives an identifier from a line's position and content, so ingesting the
// same file again replaces its records instead of duplicating them.
func lineID(lineNo int, raw []byte) domain.RecordID {
	name := append([]byte(strconv.Itoa(lineNo)+":"), raw...)
	return domain.RecordID(uuid.NewSHA1(ingestNamespace, name).String())
}
