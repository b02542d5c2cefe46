package domain

import "time"

// RecordID is an opaque handle to a record in the log store.
type RecordID string

// String returns the identifier as a string.
func (id RecordID) String() string {
	return string(id)
}

// RecordKind tags the variant held by a Record.
type RecordKind uint8

const (
	// RecordKindNetworkTask marks a record holding a *NetworkTask.
	RecordKindNetworkTask RecordKind = iota + 1
	// RecordKindMessage marks a record holding a *Message.
	RecordKindMessage
)

// String returns the lowercase name of the kind.
func (k RecordKind) String() string {
	switch k {
	case RecordKindNetworkTask:
		return "task"
	case RecordKindMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Record is a closed variant over the two kinds of persisted log entries.
// Exactly one of Task or Message is set, matching Kind.
type Record struct {
	ID      RecordID
	Kind    RecordKind
	Task    *NetworkTask
	Message *Message
}

// NewTaskRecord wraps a network task in a Record.
func NewTaskRecord(task *NetworkTask) *Record {
	return &Record{ID: task.ID, Kind: RecordKindNetworkTask, Task: task}
}

// NewMessageRecord wraps a message in a Record.
func NewMessageRecord(msg *Message) *Record {
	return &Record{ID: msg.ID, Kind: RecordKindMessage, Message: msg}
}

// AssociatedTask returns the network task a record renders as.
// A message delegates to its linked task. It returns nil for a plain message.
func (r *Record) AssociatedTask() *NetworkTask {
	switch r.Kind {
	case RecordKindNetworkTask:
		return r.Task
	case RecordKindMessage:
		if r.Message != nil {
			return r.Message.Task
		}
	}
	return nil
}

// CreatedAt returns the creation time of the wrapped entry.
func (r *Record) CreatedAt() time.Time {
	switch {
	case r.Task != nil:
		return r.Task.CreatedAt
	case r.Message != nil:
		return r.Message.CreatedAt
	default:
		return time.Time{}
	}
}

// NetworkTask is a captured HTTP exchange.
type NetworkTask struct {
	ID               RecordID
	CreatedAt        time.Time
	Method           string
	URL              string
	StatusCode       int
	Duration         time.Duration
	ErrorDescription string
	RequestHeaders   map[string]string
	ResponseHeaders  map[string]string
	RequestBody      *BlobRef
	ResponseBody     *BlobRef
}

// Message is a log line, optionally linked to the network task it describes.
type Message struct {
	ID        RecordID
	CreatedAt time.Time
	Level     LogLevel
	Label     string
	Text      string
	Metadata  map[string]string
	TaskID    RecordID
	// Task is populated by the store when TaskID resolves.
	Task *NetworkTask
}

// LogLevel is the severity of a stored message.
type LogLevel string

const (
	// LogLevelTrace is the most verbose level.
	LogLevelTrace LogLevel = "trace"
	// LogLevelDebug is for diagnostic messages.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the default level.
	LogLevelInfo LogLevel = "info"
	// LogLevelNotice marks noteworthy events.
	LogLevelNotice LogLevel = "notice"
	// LogLevelWarning marks recoverable problems.
	LogLevelWarning LogLevel = "warning"
	// LogLevelError marks failures.
	LogLevelError LogLevel = "error"
	// LogLevelCritical marks failures that need immediate attention.
	LogLevelCritical LogLevel = "critical"
)

// NormalizeLogLevel converts a string to a LogLevel, defaulting to info if unknown.
func NormalizeLogLevel(s string) LogLevel {
	switch l := LogLevel(s); l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelNotice,
		LogLevelWarning, LogLevelError, LogLevelCritical:
		return l
	default:
		return LogLevelInfo
	}
}
