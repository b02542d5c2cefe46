package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	kindTask    = "task"
	kindMessage = "message"

	roleRequest  = "request"
	roleResponse = "response"
)

const selectRecord = `SELECT id, kind, created_at, method, url, status_code, duration_ms,
    error_description, request_headers, response_headers,
    level, label, text, metadata, task_id
FROM records`

type recordRow struct {
	id               string
	kind             string
	createdAt        int64
	method           sql.NullString
	url              sql.NullString
	statusCode       sql.NullInt64
	durationMS       sql.NullInt64
	errorDescription sql.NullString
	requestHeaders   sql.NullString
	responseHeaders  sql.NullString
	level            sql.NullString
	label            sql.NullString
	text             sql.NullString
	metadata         sql.NullString
	taskID           sql.NullString
}

// Record resolves an identifier. It returns nil, nil for unknown identifiers.
// A message linked to a task that still exists comes back with Message.Task set.
func (s *Store) Record(ctx context.Context, id domain.RecordID) (*domain.Record, error) {
	row, err := s.queryRow(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}

	switch row.kind {
	case kindTask:
		task, err := s.taskFromRow(ctx, row)
		if err != nil {
			return nil, err
		}
		return domain.NewTaskRecord(task), nil

	case kindMessage:
		msg, err := messageFromRow(row)
		if err != nil {
			return nil, err
		}
		if msg.TaskID != "" {
			linked, err := s.queryRow(ctx, msg.TaskID)
			if err != nil {
				return nil, err
			}
			if linked != nil && linked.kind == kindTask {
				if msg.Task, err = s.taskFromRow(ctx, linked); err != nil {
					return nil, err
				}
			}
		}
		return domain.NewMessageRecord(msg), nil

	default:
		return nil, zerr.With(domain.ErrInvariantViolation, "kind", row.kind)
	}
}

// List returns records in creation order.
func (s *Store) List(ctx context.Context, opts ports.ListOptions) ([]*domain.Record, error) {
	ids, err := s.IDs(ctx, opts)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.Record, 0, len(ids))
	for _, id := range ids {
		record, err := s.Record(ctx, id)
		if err != nil {
			return nil, err
		}
		if record != nil {
			records = append(records, record)
		}
	}
	return records, nil
}

// IDs returns record identifiers in creation order.
func (s *Store) IDs(ctx context.Context, opts ports.ListOptions) ([]domain.RecordID, error) {
	query := "SELECT id FROM records ORDER BY created_at, id LIMIT ?"
	if opts.NewestFirst {
		query = "SELECT id FROM records ORDER BY created_at DESC, id DESC LIMIT ?"
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	defer func() {
		_ = rows.Close()
	}()

	var ids []domain.RecordID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
		}
		ids = append(ids, domain.RecordID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return ids, nil
}

// PutTask stores a network task, replacing any record with the same identifier.
func (s *Store) PutTask(ctx context.Context, task *domain.NetworkTask) error {
	requestHeaders, err := encodeMap(task.RequestHeaders)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "record", task.ID.String())
	}
	responseHeaders, err := encodeMap(task.ResponseHeaders)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "record", task.ID.String())
	}

	return s.write(ctx, task.ID, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO records (
                id, kind, created_at, method, url, status_code, duration_ms,
                error_description, request_headers, response_headers
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			task.ID.String(),
			kindTask,
			task.CreatedAt.UnixNano(),
			task.Method,
			task.URL,
			task.StatusCode,
			task.Duration.Milliseconds(),
			nullableString(task.ErrorDescription),
			requestHeaders,
			responseHeaders,
		)
		if err != nil {
			return err
		}
		if err := insertBody(ctx, tx, task.ID, roleRequest, task.RequestBody); err != nil {
			return err
		}
		return insertBody(ctx, tx, task.ID, roleResponse, task.ResponseBody)
	})
}

// PutMessage stores a message, replacing any record with the same identifier.
func (s *Store) PutMessage(ctx context.Context, msg *domain.Message) error {
	metadata, err := encodeMap(msg.Metadata)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "record", msg.ID.String())
	}

	return s.write(ctx, msg.ID, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO records (
                id, kind, created_at, level, label, text, metadata, task_id
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			msg.ID.String(),
			kindMessage,
			msg.CreatedAt.UnixNano(),
			string(msg.Level),
			nullableString(msg.Label),
			msg.Text,
			metadata,
			nullableString(msg.TaskID.String()),
		)
		return err
	})
}

func (s *Store) write(ctx context.Context, id domain.RecordID, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "record", id.String())
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Replacing a record drops its previous bodies.
	if _, err := tx.ExecContext(ctx, "DELETE FROM bodies WHERE record_id = ?", id.String()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "record", id.String())
	}
	if err := fn(tx); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "record", id.String())
	}
	if err := tx.Commit(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "record", id.String())
	}
	return nil
}

func insertBody(ctx context.Context, tx *sql.Tx, id domain.RecordID, role string, ref *domain.BlobRef) error {
	if ref == nil {
		return nil
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO bodies (record_id, role, blob_id, size, content_type, decoding_error)
        VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), role, ref.ID.String(), ref.Size, ref.ContentType, ref.DecodingError,
	)
	return err
}

func (s *Store) queryRow(ctx context.Context, id domain.RecordID) (*recordRow, error) {
	var r recordRow
	err := s.db.QueryRowContext(ctx, selectRecord+" WHERE id = ?", id.String()).Scan(
		&r.id, &r.kind, &r.createdAt, &r.method, &r.url, &r.statusCode, &r.durationMS,
		&r.errorDescription, &r.requestHeaders, &r.responseHeaders,
		&r.level, &r.label, &r.text, &r.metadata, &r.taskID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "record", id.String())
	}
	return &r, nil
}

func (s *Store) taskFromRow(ctx context.Context, r *recordRow) (*domain.NetworkTask, error) {
	task := &domain.NetworkTask{
		ID:               domain.RecordID(r.id),
		CreatedAt:        time.Unix(0, r.createdAt).UTC(),
		Method:           r.method.String,
		URL:              r.url.String,
		StatusCode:       int(r.statusCode.Int64),
		Duration:         time.Duration(r.durationMS.Int64) * time.Millisecond,
		ErrorDescription: r.errorDescription.String,
	}

	var err error
	if task.RequestHeaders, err = decodeMap(r.requestHeaders); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "record", r.id)
	}
	if task.ResponseHeaders, err = decodeMap(r.responseHeaders); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "record", r.id)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT role, blob_id, size, content_type, decoding_error FROM bodies WHERE record_id = ?", r.id)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "record", r.id)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var (
			role string
			ref  domain.BlobRef
			id   string
		)
		if err := rows.Scan(&role, &id, &ref.Size, &ref.ContentType, &ref.DecodingError); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "record", r.id)
		}
		ref.ID = domain.BlobID(id)
		switch role {
		case roleRequest:
			task.RequestBody = &ref
		case roleResponse:
			task.ResponseBody = &ref
		}
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "record", r.id)
	}
	return task, nil
}

func messageFromRow(r *recordRow) (*domain.Message, error) {
	metadata, err := decodeMap(r.metadata)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "record", r.id)
	}
	return &domain.Message{
		ID:        domain.RecordID(r.id),
		CreatedAt: time.Unix(0, r.createdAt).UTC(),
		Level:     domain.NormalizeLogLevel(r.level.String),
		Label:     r.label.String,
		Text:      r.text.String,
		Metadata:  metadata,
		TaskID:    domain.RecordID(r.taskID.String),
	}, nil
}

func encodeMap(m map[string]string) (any, error) {
	if len(m) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func decodeMap(s sql.NullString) (map[string]string, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(s.String), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
