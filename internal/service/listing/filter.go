package listing

import (
	"fmt"

	"github.com/mdhasanali39/taskQuest-server/internal/domain"
)

// StatusFilter selects which bucket of a listing is paginated.
type StatusFilter int

// Status filter values. FilterNone is the zero value and stands for a request
// that named no filter at all.
const (
	FilterNone StatusFilter = iota
	FilterTodo
	FilterOngoing
	FilterCompleted
	FilterAll
)

// ParseStatusFilter converts the raw taskStatus query value into a filter.
// The empty string yields FilterNone; anything outside the closed set yields
// ErrInvalidStatusFilter.
func ParseStatusFilter(raw string) (StatusFilter, error) {
	switch raw {
	case "":
		return FilterNone, nil
	case string(domain.TaskStatusTodo):
		return FilterTodo, nil
	case string(domain.TaskStatusOngoing):
		return FilterOngoing, nil
	case string(domain.TaskStatusCompleted):
		return FilterCompleted, nil
	case "all":
		return FilterAll, nil
	default:
		return FilterNone, fmt.Errorf("%w: %q", ErrInvalidStatusFilter, raw)
	}
}

// Status returns the concrete status a filter paginates, if any.
func (f StatusFilter) Status() (domain.TaskStatus, bool) {
	switch f {
	case FilterTodo:
		return domain.TaskStatusTodo, true
	case FilterOngoing:
		return domain.TaskStatusOngoing, true
	case FilterCompleted:
		return domain.TaskStatusCompleted, true
	default:
		return "", false
	}
}

func (f StatusFilter) String() string {
	switch f {
	case FilterNone:
		return "none"
	case FilterAll:
		return "all"
	default:
		if s, ok := f.Status(); ok {
			return string(s)
		}
		return fmt.Sprintf("StatusFilter(%d)", int(f))
	}
}
