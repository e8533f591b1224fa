package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Possible task status values
const (
	TaskStatusTodo      TaskStatus = "todo"
	TaskStatusOngoing   TaskStatus = "ongoing"
	TaskStatusCompleted TaskStatus = "completed"
)

// TaskStatuses lists every status in the order buckets are reported.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusOngoing, TaskStatusCompleted}

// Document field names shared by the JSON representation and the stores.
const (
	FieldID        = "_id"
	FieldUserEmail = "userEmail"
	FieldStatus    = "status"
)

// Task validation errors
var (
	ErrTaskUserEmailEmpty = errors.New("task user email cannot be empty")
	ErrInvalidTaskStatus  = errors.New("invalid task status")
	ErrTaskFieldsEmpty    = errors.New("task update must contain at least one field")

	// ErrInvalidFieldName marks a field name that both stores would not read
	// back the same way: dotted paths and $-prefixed operators.
	ErrInvalidFieldName = fmt.Errorf("%w: invalid field name", ErrValidation)
)

// IsValid reports whether s is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusOngoing, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// ParseTaskStatus converts a raw value into a TaskStatus.
// Returns ErrInvalidTaskStatus for anything outside the enum.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	status := TaskStatus(raw)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTaskStatus, raw)
	}
	return status, nil
}

// Task is one unit of work owned by a single user.
//
// Besides the identifier, owner and status, a task carries arbitrary
// caller-supplied fields (title, description, deadline, ...) which are
// stored and returned without interpretation.
type Task struct {
	ID        string
	UserEmail string
	Status    TaskStatus
	Fields    map[string]any
}

// Validate checks that the task has an owner, a known status and plain
// top-level field names.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.UserEmail) == "" {
		return ErrTaskUserEmailEmpty
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTaskStatus, t.Status)
	}
	for k := range t.Fields {
		if err := checkFieldName(k); err != nil {
			return err
		}
	}
	return nil
}

func checkFieldName(name string) error {
	if name == "" || strings.HasPrefix(name, "$") || strings.Contains(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidFieldName, name)
	}
	return nil
}

// Document flattens the task into a single map: opaque fields plus the
// reserved owner and status keys. The id is omitted when empty.
func (t *Task) Document() map[string]any {
	doc := make(map[string]any, len(t.Fields)+3)
	for k, v := range t.Fields {
		doc[k] = v
	}
	if t.ID != "" {
		doc[FieldID] = t.ID
	}
	doc[FieldUserEmail] = t.UserEmail
	doc[FieldStatus] = string(t.Status)
	return doc
}

// TaskFromDocument is the inverse of Document. Reserved keys populate the
// typed fields; everything else lands in Fields.
func TaskFromDocument(doc map[string]any) *Task {
	task := &Task{Fields: make(map[string]any, len(doc))}
	for k, v := range doc {
		switch k {
		case FieldID:
			task.ID = fmt.Sprint(v)
		case FieldUserEmail:
			task.UserEmail, _ = v.(string)
		case FieldStatus:
			s, _ := v.(string)
			task.Status = TaskStatus(s)
		default:
			task.Fields[k] = v
		}
	}
	return task
}

// MarshalJSON renders the task as a flat JSON object.
func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Document())
}

// UnmarshalJSON reads a flat JSON object into the task.
func (t *Task) UnmarshalJSON(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("%w: task must be a JSON object", ErrInvalidFormat)
	}
	*t = *TaskFromDocument(doc)
	return nil
}

// SanitizeUpdate prepares a caller-supplied field set for a partial update.
// The id and owner are immutable and silently dropped. A status, when
// present, must be valid.
func SanitizeUpdate(fields map[string]any) (map[string]any, error) {
	clean := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == FieldID || k == FieldUserEmail {
			continue
		}
		if err := checkFieldName(k); err != nil {
			return nil, err
		}
		if k == FieldStatus {
			raw, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: status must be a string", ErrInvalidTaskStatus)
			}
			if _, err := ParseTaskStatus(raw); err != nil {
				return nil, err
			}
		}
		clean[k] = v
	}
	if len(clean) == 0 {
		return nil, ErrTaskFieldsEmpty
	}
	return clean, nil
}
