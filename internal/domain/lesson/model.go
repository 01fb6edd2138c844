package lesson

import "strings"

// DefaultURL is the reference link used when a pasted line carries no link of
// its own.
const DefaultURL = "https://www.musictheory.net/lessons"

// Lesson is one entry of a study plan. Position in the plan is the study
// order; lessons carry no rank of their own.
type Lesson struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	URL   string   `json:"url"`
	Tags  []string `json:"tags"`
	Notes string   `json:"notes"`
	Done  bool     `json:"done"`
}

// Clone returns a copy that shares no memory with the receiver.
func (l Lesson) Clone() Lesson {
	c := l
	c.Tags = make([]string, len(l.Tags))
	copy(c.Tags, l.Tags)
	return c
}

// Matches reports whether the lesson title or any tag contains the query,
// case-insensitively. An empty query matches everything.
func (l Lesson) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(l.Title), q) {
		return true
	}
	for _, tag := range l.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// CloneAll deep-copies a slice of lessons.
func CloneAll(ls []Lesson) []Lesson {
	out := make([]Lesson, len(ls))
	for i, l := range ls {
		out[i] = l.Clone()
	}
	return out
}
