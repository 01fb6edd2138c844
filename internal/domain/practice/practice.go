// Package practice builds the artifacts handed to external collaborators:
// the instructional study prompt for an assistant and the parameterized
// practice link for a lesson page. It only produces strings; delivery,
// clipboard handling, and page automation are the caller's concern.
package practice

import (
	"fmt"
	"net/url"

	"github.com/mfeldt/etude-mcp/internal/domain/lesson"
)

const promptTemplate = `You are a patient music theory tutor. Teach me the lesson "%s".

Reference material: %s

Walk me through the lesson step by step:
1. Explain the core concept in plain language with short musical examples.
2. Show two or three worked examples, increasing in difficulty.
3. Quiz me with a few exercises and wait for my answers before correcting.
4. Finish with a one-paragraph summary I can keep as review notes.

Keep each step short and check my understanding before moving on.`

// StudyPrompt renders the fixed instructional template for a lesson.
func StudyPrompt(l lesson.Lesson) string {
	return fmt.Sprintf(promptTemplate, l.Title, l.URL)
}

// Link returns the lesson's reference URL with the title carried in a
// "practice" query parameter, for automation snippets that locate matching
// controls on the page. Unparseable URLs fall back to the default reference.
func Link(l lesson.Lesson) string {
	u, err := url.Parse(l.URL)
	if err != nil || u.Scheme == "" {
		u, _ = url.Parse(lesson.DefaultURL)
	}
	q := u.Query()
	q.Set("practice", l.Title)
	u.RawQuery = q.Encode()
	return u.String()
}
