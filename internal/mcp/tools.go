package mcp

import (
	"context"

	"github.com/mfeldt/etude-mcp/internal/domain/lesson"
	"github.com/mfeldt/etude-mcp/internal/domain/plan"
	"github.com/mfeldt/etude-mcp/internal/domain/practice"
	"github.com/mfeldt/etude-mcp/internal/domain/syllabus"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type toolHandler struct {
	plans PlanOpener
}

// store resolves the caller's plan from the profile the middleware injected.
func (h *toolHandler) store(ctx context.Context) *plan.Store {
	profile := getProfileID(ctx)
	if profile == "" {
		profile = "default"
	}
	return h.plans.Open(ctx, profile)
}

func registerTools(server *sdkmcp.Server, plans PlanOpener) {
	h := &toolHandler{plans: plans}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "paste_lessons",
		Description: "Parse a pasted table of contents into lessons and append them to the study plan. One lesson per line: title | url | tags. Lines never fail; missing fields get defaults.",
	}, h.pasteLessons)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_lesson",
		Description: "Add a single lesson to the end of the study plan",
	}, h.addLesson)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_lessons",
		Description: "List the study plan in order, optionally filtered by a substring over titles and tags",
	}, h.listLessons)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "plan_overview",
		Description: "Summarize the plan: counts, per-stage breakdown, and the next unfinished lesson",
	}, h.planOverview)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "reorder_plan",
		Description: "Reorder the whole plan into the suggested pedagogical sequence (stage, then title). Membership never changes, only positions.",
	}, h.reorderPlan)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "move_lesson",
		Description: "Move a lesson one step up or down. Moving past the first or last position is a no-op.",
	}, h.moveLesson)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_done",
		Description: "Flip a lesson's completion flag",
	}, h.toggleDone)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_notes",
		Description: "Replace the free-text notes of a lesson",
	}, h.setNotes)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_lesson",
		Description: "Delete a lesson from the plan",
	}, h.removeLesson)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_plan",
		Description: "Export the full plan as an interchange document that import_plan restores with full fidelity",
	}, h.exportPlan)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_plan",
		Description: "Replace the whole plan with a previously exported document (ids and order are kept verbatim)",
	}, h.importPlan)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "study_prompt",
		Description: "Build the instructional study prompt for a lesson, ready to hand to a tutoring assistant",
	}, h.studyPrompt)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "practice_link",
		Description: "Build the lesson's reference link with the title carried as a practice query parameter",
	}, h.practiceLink)
}

func (h *toolHandler) pasteLessons(ctx context.Context, req *sdkmcp.CallToolRequest, params PasteLessonsParams) (*sdkmcp.CallToolResult, PasteLessonsResponse, error) {
	s := h.store(ctx)
	batch := lesson.Parse(params.Text)
	s.Add(batch)
	return nil, PasteLessonsResponse{
		Added:   len(batch),
		Lessons: viewsOf(s.Snapshot()),
	}, nil
}

func (h *toolHandler) addLesson(ctx context.Context, req *sdkmcp.CallToolRequest, params AddLessonParams) (*sdkmcp.CallToolResult, AddLessonResponse, error) {
	s := h.store(ctx)
	l := lesson.New(params.Title, params.URL, params.Tags)
	s.Add([]lesson.Lesson{l})
	return nil, AddLessonResponse{Lesson: viewOf(s.Len(), l)}, nil
}

func (h *toolHandler) listLessons(ctx context.Context, req *sdkmcp.CallToolRequest, params ListLessonsParams) (*sdkmcp.CallToolResult, ListLessonsResponse, error) {
	s := h.store(ctx)
	matched := s.Filter(params.Query)
	return nil, ListLessonsResponse{
		Lessons: viewsOf(matched),
		Total:   s.Len(),
	}, nil
}

func (h *toolHandler) planOverview(ctx context.Context, req *sdkmcp.CallToolRequest, _ PlanOverviewParams) (*sdkmcp.CallToolResult, PlanOverviewResponse, error) {
	s := h.store(ctx)
	lessons := s.Snapshot()

	resp := PlanOverviewResponse{Total: len(lessons)}

	byStage := make(map[string]*StageOverview)
	var stageOrder []string
	for i, l := range lessons {
		if l.Done {
			resp.Done++
		} else if resp.Next == nil {
			v := viewOf(i+1, l)
			resp.Next = &v
		}

		name := syllabus.StageName(syllabus.StageIndex(l))
		so, ok := byStage[name]
		if !ok {
			so = &StageOverview{Stage: name}
			byStage[name] = so
			stageOrder = append(stageOrder, name)
		}
		so.Titles = append(so.Titles, l.Title)
		if l.Done {
			so.Done++
		}
	}
	resp.Remaining = resp.Total - resp.Done
	for _, name := range stageOrder {
		resp.Stages = append(resp.Stages, *byStage[name])
	}
	return nil, resp, nil
}

func (h *toolHandler) reorderPlan(ctx context.Context, req *sdkmcp.CallToolRequest, _ ReorderPlanParams) (*sdkmcp.CallToolResult, ReorderPlanResponse, error) {
	s := h.store(ctx)
	return nil, ReorderPlanResponse{Lessons: viewsOf(s.ApplySuggestedOrder())}, nil
}

func (h *toolHandler) moveLesson(ctx context.Context, req *sdkmcp.CallToolRequest, params MoveLessonParams) (*sdkmcp.CallToolResult, MoveLessonResponse, error) {
	dir := plan.Direction(params.Direction)
	if dir != plan.DirectionUp && dir != plan.DirectionDown {
		return nil, MoveLessonResponse{}, &APIError{
			Code:         "INVALID_INPUT",
			Message:      "direction must be up or down",
			RecoveryHint: "Pass direction: \"up\" or \"down\"",
		}
	}
	s := h.store(ctx)
	return nil, MoveLessonResponse{Changed: s.Move(params.ID, dir)}, nil
}

func (h *toolHandler) toggleDone(ctx context.Context, req *sdkmcp.CallToolRequest, params ToggleDoneParams) (*sdkmcp.CallToolResult, ToggleDoneResponse, error) {
	s := h.store(ctx)
	l, changed := s.ToggleDone(params.ID)
	resp := ToggleDoneResponse{Changed: changed}
	if changed {
		v := viewOf(positionOf(s.Snapshot(), l.ID), l)
		resp.Lesson = &v
	}
	return nil, resp, nil
}

// positionOf returns the 1-based position of the lesson in the plan.
func positionOf(ls []lesson.Lesson, id string) int {
	for i, l := range ls {
		if l.ID == id {
			return i + 1
		}
	}
	return 0
}

func (h *toolHandler) setNotes(ctx context.Context, req *sdkmcp.CallToolRequest, params SetNotesParams) (*sdkmcp.CallToolResult, SetNotesResponse, error) {
	s := h.store(ctx)
	return nil, SetNotesResponse{Changed: s.SetNotes(params.ID, params.Notes)}, nil
}

func (h *toolHandler) removeLesson(ctx context.Context, req *sdkmcp.CallToolRequest, params RemoveLessonParams) (*sdkmcp.CallToolResult, RemoveLessonResponse, error) {
	s := h.store(ctx)
	return nil, RemoveLessonResponse{Changed: s.Remove(params.ID)}, nil
}

func (h *toolHandler) exportPlan(ctx context.Context, req *sdkmcp.CallToolRequest, _ ExportPlanParams) (*sdkmcp.CallToolResult, PlanDocument, error) {
	s := h.store(ctx)
	return nil, PlanDocument{
		Version: PlanVersion,
		Lessons: s.Snapshot(),
	}, nil
}

func (h *toolHandler) importPlan(ctx context.Context, req *sdkmcp.CallToolRequest, params ImportPlanParams) (*sdkmcp.CallToolResult, ImportPlanResponse, error) {
	s := h.store(ctx)
	s.ReplaceAll(params.Lessons)
	return nil, ImportPlanResponse{Imported: len(params.Lessons)}, nil
}

func (h *toolHandler) studyPrompt(ctx context.Context, req *sdkmcp.CallToolRequest, params StudyPromptParams) (*sdkmcp.CallToolResult, StudyPromptResponse, error) {
	s := h.store(ctx)
	l, err := s.Get(params.ID)
	if err != nil {
		return nil, StudyPromptResponse{}, wrapError(err)
	}
	return nil, StudyPromptResponse{Prompt: practice.StudyPrompt(l)}, nil
}

func (h *toolHandler) practiceLink(ctx context.Context, req *sdkmcp.CallToolRequest, params PracticeLinkParams) (*sdkmcp.CallToolResult, PracticeLinkResponse, error) {
	s := h.store(ctx)
	l, err := s.Get(params.ID)
	if err != nil {
		return nil, PracticeLinkResponse{}, wrapError(err)
	}
	return nil, PracticeLinkResponse{URL: practice.Link(l)}, nil
}
