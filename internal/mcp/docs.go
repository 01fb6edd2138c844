package mcp

import (
	"context"

	"github.com/mfeldt/etude-mcp/internal/domain/practice"
	"github.com/mfeldt/etude-mcp/internal/domain/syllabus"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `etude turns an unstructured table of contents into an ordered, annotatable music-theory study plan.

Core concepts (keep this mental model small):
- Lesson: one plan entry (title, reference link, tags, notes, done flag). Position in the plan is the study order.
- Stage: one step of a fixed pedagogical sequence (fundamentals → … → ear training), used only as a sort key.
- Suggested order: lessons sorted by stage, then title. Heuristic, not a constraint solver.
- The plan is saved automatically after every change; there is nothing to commit.

Rules of engagement (default workflow):
1) Ingest: paste the raw table of contents with paste_lessons (one lesson per line, "title | url | tags"; url and tags optional). Malformed lines never fail, they get defaults.
2) Orient: call plan_overview for counts, the per-stage breakdown, and the next unfinished lesson.
3) Order: call reorder_plan once after ingesting, then fine-tune with move_lesson.
4) Study: toggle_done as lessons finish; keep observations in set_notes.
5) Hand off: study_prompt builds a tutoring prompt for a lesson; practice_link builds its parameterized reference link. Delivery is your concern, not the server's.
6) Interchange: export_plan / import_plan round-trip the whole plan with full fidelity, ids included.

Notes:
- Mutations with an unknown lesson id are silent no-ops; the result carries changed=false rather than an error.
- list_lessons accepts a substring query over titles and tags.

Docs (read on demand):
- etude://docs/index (what to read when)
- etude://docs/workflow (the ingest → order → study loop)
- etude://docs/stages (the pedagogical sequence and how classification works)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "etude://docs/index",
		Name:        "docs_index",
		Title:       "etude docs index",
		Description: "Entry point for agent-facing docs: what exists, what to read, and known limitations.",
		Content: `# etude: Agent Docs Index

This server keeps one study plan per profile and saves it after every change.

## Quick start (no deep docs)

1. ` + "`paste_lessons`" + ` with the raw table of contents.
2. ` + "`plan_overview`" + ` to orient.
3. ` + "`reorder_plan`" + ` to get the suggested pedagogical sequence.
4. ` + "`toggle_done`" + ` / ` + "`set_notes`" + ` while studying.
5. ` + "`study_prompt`" + ` / ` + "`practice_link`" + ` to hand a lesson off.

## Docs (read on demand)

- ` + "`etude://docs/workflow`" + ` — the ingest → order → study loop in detail.
- ` + "`etude://docs/stages`" + ` — the fixed stage sequence and the classification rules.

## Capabilities & intentional limitations

- Ordering is heuristic keyword matching, not a curriculum solver; use ` + "`move_lesson`" + ` to fix misplacements.
- Lesson links are never fetched or validated.
- Saves are best-effort and not awaited; a failed save is logged, never surfaced as a tool error.
`,
	},
	{
		URI:         "etude://docs/workflow",
		Name:        "docs_workflow",
		Title:       "Study plan workflow",
		Description: "The ingest → order → study loop, with the paste format and mutation semantics.",
		Content: `# Study plan workflow

## Paste format

One lesson per line, split on ` + "`|`" + ` into up to three fields:

    title | url | tags

- ` + "`url`" + ` must start with http:// or https://. A second field that does not look like a link is treated as extra tag content instead.
- ` + "`tags`" + ` split on commas or semicolons.
- Blank titles become "Lesson <n>"; absent links fall back to the lesson index.
- Blank lines are skipped; nothing else can make a paste fail.

## Ordering

` + "`reorder_plan`" + ` sorts by stage, then title. It is idempotent and never changes membership. After that, ` + "`move_lesson`" + ` swaps one lesson with its neighbor; moves past either end are no-ops.

## Mutation semantics

- Every mutation saves the whole plan immediately afterwards (fire-and-forget).
- An unknown id makes ` + "`move_lesson`" + `, ` + "`toggle_done`" + `, ` + "`set_notes`" + ` and ` + "`remove_lesson`" + ` return ` + "`changed: false`" + ` and touch nothing. Safe to retry.
- ` + "`import_plan`" + ` replaces the plan wholesale and takes ids verbatim; it does not re-validate uniqueness. Only feed it documents produced by ` + "`export_plan`" + `.
`,
	},
	{
		URI:         "etude://docs/stages",
		Name:        "docs_stages",
		Title:       "Pedagogical stages",
		Description: "The fixed stage sequence used as the sort key, and how lessons classify into it.",
		Content: stagesDoc(),
	},
}

func stagesDoc() string {
	doc := `# Pedagogical stages

Lessons are classified by keyword matching over the lowercased title and tags.
Stages are checked in order; the first stage owning any matching keyword wins,
so a lesson matching several stages lands in the earliest one.

Unmatched lessons containing "intro" or "overview" go to the first stage;
anything else unmatched goes to the middle of the sequence so it is not
buried at the end.

## The sequence

`
	for _, stage := range syllabus.Stages {
		doc += "- " + stage.Name + "\n"
	}
	doc += `
Stage values are derived on every read and never stored on a lesson.
`
	return doc
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}

func registerPrompts(server *sdkmcp.Server, plans PlanOpener) {
	server.AddPrompt(&sdkmcp.Prompt{
		Name:        "study_lesson",
		Description: "Instructional prompt that teaches one lesson from the plan step by step",
		Arguments: []*sdkmcp.PromptArgument{
			{Name: "lesson_id", Description: "id of the lesson to study", Required: true},
		},
	}, func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		profile := getProfileID(ctx)
		if profile == "" {
			profile = "default"
		}

		var lessonID string
		if req != nil && req.Params != nil {
			lessonID = req.Params.Arguments["lesson_id"]
		}

		l, err := plans.Open(ctx, profile).Get(lessonID)
		if err != nil {
			return nil, wrapError(err)
		}

		return &sdkmcp.GetPromptResult{
			Description: "Study prompt for " + l.Title,
			Messages: []*sdkmcp.PromptMessage{{
				Role:    "user",
				Content: &sdkmcp.TextContent{Text: practice.StudyPrompt(l)},
			}},
		}, nil
	})
}
