package mcp

import (
	"github.com/mfeldt/etude-mcp/internal/domain/lesson"
	"github.com/mfeldt/etude-mcp/internal/domain/syllabus"
)

// PlanVersion identifies the interchange document shape produced by
// export_plan and accepted by import_plan.
const PlanVersion = "etude.plan.v1"

// LessonView is a lesson as presented to the assistant: the persisted fields
// plus its 1-based position and the stage it currently classifies into.
// Position and stage are derived on read, never stored.
type LessonView struct {
	Position int      `json:"position"`
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Tags     []string `json:"tags,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Done     bool     `json:"done"`
	Stage    string   `json:"stage"`
}

func viewOf(position int, l lesson.Lesson) LessonView {
	return LessonView{
		Position: position,
		ID:       l.ID,
		Title:    l.Title,
		URL:      l.URL,
		Tags:     l.Tags,
		Notes:    l.Notes,
		Done:     l.Done,
		Stage:    syllabus.StageName(syllabus.StageIndex(l)),
	}
}

func viewsOf(ls []lesson.Lesson) []LessonView {
	out := make([]LessonView, len(ls))
	for i, l := range ls {
		out[i] = viewOf(i+1, l)
	}
	return out
}

type PasteLessonsParams struct {
	Text string `json:"text" jsonschema:"pasted table of contents, one lesson per line: title | url | tags (url and tags optional)"`
}

type PasteLessonsResponse struct {
	Added   int          `json:"added"`
	Lessons []LessonView `json:"lessons"`
}

type AddLessonParams struct {
	Title string   `json:"title" jsonschema:"lesson title"`
	URL   string   `json:"url,omitempty" jsonschema:"reference link (defaults to the lesson index when omitted)"`
	Tags  []string `json:"tags,omitempty" jsonschema:"short topic tags"`
}

type AddLessonResponse struct {
	Lesson LessonView `json:"lesson"`
}

type ListLessonsParams struct {
	Query string `json:"query,omitempty" jsonschema:"substring filter over titles and tags; omit for the full plan"`
}

type ListLessonsResponse struct {
	Lessons []LessonView `json:"lessons"`
	Total   int          `json:"total"`
}

type PlanOverviewParams struct{}

type StageOverview struct {
	Stage  string   `json:"stage"`
	Titles []string `json:"titles"`
	Done   int      `json:"done"`
}

type PlanOverviewResponse struct {
	Total     int             `json:"total"`
	Done      int             `json:"done"`
	Remaining int             `json:"remaining"`
	Stages    []StageOverview `json:"stages,omitempty"`
	Next      *LessonView     `json:"next,omitempty"`
}

type ReorderPlanParams struct{}

type ReorderPlanResponse struct {
	Lessons []LessonView `json:"lessons"`
}

type MoveLessonParams struct {
	ID        string `json:"id" jsonschema:"lesson id"`
	Direction string `json:"direction" jsonschema:"up or down"`
}

type MoveLessonResponse struct {
	Changed bool `json:"changed"`
}

type ToggleDoneParams struct {
	ID string `json:"id" jsonschema:"lesson id"`
}

type ToggleDoneResponse struct {
	Changed bool        `json:"changed"`
	Lesson  *LessonView `json:"lesson,omitempty"`
}

type SetNotesParams struct {
	ID    string `json:"id" jsonschema:"lesson id"`
	Notes string `json:"notes" jsonschema:"replacement note text (empty clears the notes)"`
}

type SetNotesResponse struct {
	Changed bool `json:"changed"`
}

type RemoveLessonParams struct {
	ID string `json:"id" jsonschema:"lesson id"`
}

type RemoveLessonResponse struct {
	Changed bool `json:"changed"`
}

type ExportPlanParams struct{}

// PlanDocument is the interchange document. Importing an exported document
// restores the plan with full fidelity, ids included.
type PlanDocument struct {
	Version string          `json:"version"`
	Lessons []lesson.Lesson `json:"lessons"`
}

type ImportPlanParams struct {
	Lessons []lesson.Lesson `json:"lessons" jsonschema:"lessons from a previously exported plan document"`
}

type ImportPlanResponse struct {
	Imported int `json:"imported"`
}

type StudyPromptParams struct {
	ID string `json:"id" jsonschema:"lesson id"`
}

type StudyPromptResponse struct {
	Prompt string `json:"prompt"`
}

type PracticeLinkParams struct {
	ID string `json:"id" jsonschema:"lesson id"`
}

type PracticeLinkResponse struct {
	URL string `json:"url"`
}
