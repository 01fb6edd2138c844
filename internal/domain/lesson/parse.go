package lesson

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Parse turns pasted free-form text into lessons, one per non-blank line.
// It never fails: malformed lines degrade to best-effort records rather than
// aborting the batch.
//
// Each line is split on "|" into up to three fields: title, link, tags.
// A second field that does not look like a link is folded into the tags
// instead, so "Title | beginner | scales" keeps both words as tags. Blank
// titles become "Lesson <n>" (1-based within the batch) and absent links fall
// back to DefaultURL.
func Parse(text string) []Lesson {
	var out []Lesson
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, "|", 3)
		title := strings.TrimSpace(parts[0])
		var link, tagField string
		if len(parts) > 1 {
			link = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			tagField = strings.TrimSpace(parts[2])
		}

		if link != "" && !isLink(link) {
			// Second field is tag content, not a link.
			if tagField == "" {
				tagField = link
			} else {
				tagField = link + "," + tagField
			}
			link = ""
		}

		if title == "" {
			title = fmt.Sprintf("Lesson %d", len(out)+1)
		}
		if link == "" {
			link = DefaultURL
		}

		out = append(out, Lesson{
			ID:    uuid.NewString(),
			Title: title,
			URL:   link,
			Tags:  splitTags(tagField),
		})
	}
	if out == nil {
		return []Lesson{}
	}
	return out
}

// New builds a single lesson outside of a paste batch, applying the same
// defaults Parse applies to a line.
func New(title, url string, tags []string) Lesson {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Lesson 1"
	}
	url = strings.TrimSpace(url)
	if !isLink(url) {
		url = DefaultURL
	}
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return Lesson{
		ID:    uuid.NewString(),
		Title: title,
		URL:   url,
		Tags:  cleaned,
	}
}

func isLink(s string) bool {
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

func splitTags(field string) []string {
	parts := strings.FieldsFunc(field, func(r rune) bool {
		return r == ',' || r == ';'
	})
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
