// Package plan owns the canonical ordered lesson sequence of a study plan.
// All mutation funnels through the Store; position in the sequence is the
// study order.
package plan

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mfeldt/etude-mcp/internal/domain/lesson"
	"github.com/mfeldt/etude-mcp/internal/domain/syllabus"
	"github.com/mfeldt/etude-mcp/internal/repository"
)

// Direction selects a neighbor for Move.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

const saveTimeout = 5 * time.Second

// Store is the single writer of one profile's study plan. Operations are
// mutually exclusive; none of them blocks on I/O. After every effective
// mutation a snapshot of the full plan is handed to a flusher goroutine,
// whose outcome the caller does not await.
type Store struct {
	key       string
	snapshots repository.SnapshotRepository
	logger    *slog.Logger

	mu      sync.Mutex
	lessons []lesson.Lesson
	closed  bool

	pending chan []lesson.Lesson
	flushed chan struct{}

	closeOnce sync.Once
}

// NewStore creates a Store seeded with the given lessons and starts its
// flusher. The initial state is not written back until the first mutation.
func NewStore(key string, initial []lesson.Lesson, snapshots repository.SnapshotRepository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		key:       key,
		snapshots: snapshots,
		logger:    logger,
		lessons:   lesson.CloneAll(initial),
		pending:   make(chan []lesson.Lesson, 1),
		flushed:   make(chan struct{}),
	}
	go s.flush()
	return s
}

// Add appends a batch to the end of the plan, preserving batch order.
// An empty batch is a no-op. Returns the number of lessons appended.
func (s *Store) Add(batch []lesson.Lesson) int {
	if len(batch) == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lessons = append(s.lessons, lesson.CloneAll(batch)...)
	s.scheduleSave(lesson.CloneAll(s.lessons))
	return len(batch)
}

// ApplySuggestedOrder replaces the plan with its suggested study order.
// Membership and count are preserved; only positions change.
func (s *Store) ApplySuggestedOrder() []lesson.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lessons = syllabus.SuggestedOrder(s.lessons)
	s.scheduleSave(lesson.CloneAll(s.lessons))
	return lesson.CloneAll(s.lessons)
}

// Move swaps the lesson with its immediate neighbor in the given direction.
// Unknown ids and out-of-bounds moves are a silent no-op.
func (s *Store) Move(id string, dir Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	j := i - 1
	if dir == DirectionDown {
		j = i + 1
	}
	if i < 0 || j < 0 || j >= len(s.lessons) {
		return false
	}
	s.lessons[i], s.lessons[j] = s.lessons[j], s.lessons[i]
	s.scheduleSave(lesson.CloneAll(s.lessons))
	return true
}

// ToggleDone flips the completion flag of the matching lesson.
func (s *Store) ToggleDone(id string) (lesson.Lesson, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return lesson.Lesson{}, false
	}
	s.lessons[i].Done = !s.lessons[i].Done
	out := s.lessons[i].Clone()
	s.scheduleSave(lesson.CloneAll(s.lessons))
	return out, true
}

// SetNotes replaces the notes of the matching lesson.
func (s *Store) SetNotes(id, notes string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.lessons[i].Notes = notes
	s.scheduleSave(lesson.CloneAll(s.lessons))
	return true
}

// Remove deletes the matching lesson from the plan.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.lessons = append(s.lessons[:i], s.lessons[i+1:]...)
	s.scheduleSave(lesson.CloneAll(s.lessons))
	return true
}

// ReplaceAll installs the supplied sequence as the new canonical state,
// verbatim. Ids are taken as-is; this is the import half of the interchange
// round trip.
func (s *Store) ReplaceAll(lessons []lesson.Lesson) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lessons = lesson.CloneAll(lessons)
	s.scheduleSave(lesson.CloneAll(s.lessons))
}

// Snapshot returns a deep copy of the plan suitable for interchange.
// ReplaceAll(Snapshot()) is the identity.
func (s *Store) Snapshot() []lesson.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lesson.CloneAll(s.lessons)
}

// Get returns the lesson with the given id.
func (s *Store) Get(id string) (lesson.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.lessons[i].Clone(), nil
	}
	return lesson.Lesson{}, ErrLessonNotFound
}

// Filter returns the lessons whose title or tags contain the query,
// case-insensitively. An empty query returns the whole plan.
func (s *Store) Filter(query string) []lesson.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]lesson.Lesson, 0, len(s.lessons))
	for _, l := range s.lessons {
		if l.Matches(query) {
			out = append(out, l.Clone())
		}
	}
	return out
}

// Len returns the number of lessons in the plan.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lessons)
}

// Close stops the flusher after draining any pending snapshot. Mutations
// arriving after Close still update memory but are no longer persisted.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.pending)
		<-s.flushed
	})
	return nil
}

// indexOf must be called with the mutex held.
func (s *Store) indexOf(id string) int {
	for i, l := range s.lessons {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// scheduleSave hands a snapshot to the flusher without blocking. Must be
// called with the mutex held so snapshots reach the channel in mutation
// order. A snapshot that has not been picked up yet is superseded: full-state
// writes mean the newest one carries everything the stale one did.
func (s *Store) scheduleSave(snap []lesson.Lesson) {
	if s.closed {
		return
	}
	for {
		select {
		case s.pending <- snap:
			return
		default:
		}
		select {
		case <-s.pending:
		default:
		}
	}
}

func (s *Store) flush() {
	defer close(s.flushed)
	for snap := range s.pending {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		if err := s.snapshots.Save(ctx, s.key, snap); err != nil {
			s.logger.Warn("plan save failed", "key", s.key, "error", err)
		}
		cancel()
	}
}
