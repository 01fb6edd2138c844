package syllabus

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mfeldt/etude-mcp/internal/domain/lesson"
)

// SuggestedOrder returns a new sequence sorted by stage, then by title with a
// locale-aware comparison for deterministic tie-breaking. The input is never
// mutated and its lessons are deep-copied into the result.
func SuggestedOrder(ls []lesson.Lesson) []lesson.Lesson {
	type keyed struct {
		stage int
		l     lesson.Lesson
	}

	ks := make([]keyed, len(ls))
	for i, l := range ls {
		ks[i] = keyed{stage: StageIndex(l), l: l.Clone()}
	}

	// Collators are stateful, so each sort gets its own.
	c := collate.New(language.English, collate.Loose)
	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].stage != ks[j].stage {
			return ks[i].stage < ks[j].stage
		}
		return c.CompareString(ks[i].l.Title, ks[j].l.Title) < 0
	})

	out := make([]lesson.Lesson, len(ks))
	for i, k := range ks {
		out[i] = k.l
	}
	return out
}
