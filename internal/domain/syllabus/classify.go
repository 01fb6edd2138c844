package syllabus

import (
	"strings"

	"github.com/mfeldt/etude-mcp/internal/domain/lesson"
)

// StageIndex classifies a lesson into the pedagogical sequence. The first
// stage (in fixed order) owning any keyword found in the lesson's lowercased
// title and tags wins. Unmatched introductory material lands in stage 0;
// anything else unmatched lands in the middle so it is not buried at the end.
// Pure function: identical title and tags always yield the same stage.
func StageIndex(l lesson.Lesson) int {
	hay := haystack(l)
	for i, stage := range Stages {
		for _, kw := range stage.Keywords {
			if strings.Contains(hay, kw) {
				return i
			}
		}
	}
	if strings.Contains(hay, "intro") || strings.Contains(hay, "overview") {
		return 0
	}
	return len(Stages) / 2
}

func haystack(l lesson.Lesson) string {
	parts := make([]string, 0, len(l.Tags)+1)
	parts = append(parts, l.Title)
	parts = append(parts, l.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}
