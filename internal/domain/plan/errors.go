package plan

import "errors"

var (
	// ErrLessonNotFound is returned by read operations for an unknown lesson
	// id. Mutating operations treat unknown ids as a silent no-op instead.
	ErrLessonNotFound = errors.New("lesson not found")
)
