// Package ruleengine implements rule-based action item extraction from
// meeting-note text: no model calls, no network, no shared state. Each
// extractor is an ordered chain of named patterns so precedence between
// ambiguous readings stays explicit and testable.
package ruleengine

import "meeting-action-extractor/internal/model"

// Engine holds the compiled rule chains. It is immutable after New and
// safe for concurrent use.
type Engine struct {
	assigneeRules []assigneeRule
	deadlineRules []deadlineRule
	priorityCues  []priorityCue
}

// New compiles all pattern rules and returns a ready engine.
func New() *Engine {
	return &Engine{
		assigneeRules: assigneeRules(),
		deadlineRules: deadlineRules(),
		priorityCues:  priorityCues(),
	}
}

// Extract runs the full pipeline over all segments of the note and returns
// the assembled action items in source order. It is total over all string
// inputs: malformed or empty text yields an empty slice, never an error.
func (e *Engine) Extract(text string) []model.ActionItem {
	segments := SplitSegments(text)

	items := make([]model.ActionItem, 0, len(segments))
	for _, seg := range segments {
		if item, ok := e.ExtractSegment(seg); ok {
			items = append(items, item)
		}
	}
	return items
}

// ExtractSegment runs the per-segment pipeline: assignee, deadline, task
// phrase, priority, assembly. Segments share no extraction state.
func (e *Engine) ExtractSegment(seg Segment) (model.ActionItem, bool) {
	assignee := e.ExtractAssignee(seg)
	deadline := e.ExtractDeadline(seg)

	// Assignee and deadline run independently on the original segment;
	// a true span overlap (a name embedded in a date-like token) leaves
	// the deadline unresolved rather than guessing.
	if assignee != nil && deadline != nil && assignee.Span.Overlaps(deadline.Span) {
		deadline = nil
	}

	if !e.actionLike(seg, assignee, deadline) {
		return model.ActionItem{}, false
	}

	task := e.ExtractTask(seg, assignee, deadline)
	if task == nil {
		return model.ActionItem{}, false
	}

	item := model.ActionItem{
		Task:     task.Text,
		Priority: e.ClassifyPriority(seg),
		Context:  seg.Text,
	}
	if assignee != nil {
		item.Assignee = &assignee.Label
	}
	if deadline != nil {
		item.DueDate = &deadline.Label
	}
	return item, true
}

// actionLike reports whether a segment carries any action signal at all:
// an assignee, a deadline, an urgency cue, or a list bullet. Plain
// narrative sentences ("Thanks everyone for joining") produce no item.
func (e *Engine) actionLike(seg Segment, assignee *AssigneeMatch, deadline *DeadlineMatch) bool {
	if assignee != nil || deadline != nil || seg.Bulleted {
		return true
	}
	for _, cue := range e.priorityCues {
		if cue.re.MatchString(seg.Text) {
			return true
		}
	}
	return false
}
