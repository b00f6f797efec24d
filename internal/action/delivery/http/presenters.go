package http

import (
	"meeting-action-extractor/internal/action"
	"meeting-action-extractor/internal/model"
	"meeting-action-extractor/pkg/format"
)

// --- Request DTOs ---

type extractReq struct {
	Notes        string `json:"notes"`
	Provider     string `json:"provider"      binding:"omitempty,oneof=regex openai ollama"`
	SyncCalendar bool   `json:"sync_calendar"`
}

func (r extractReq) validate() error { return nil }

func (r extractReq) toInput() action.ExtractInput {
	return action.ExtractInput{
		Notes:        r.Notes,
		Provider:     model.Provider(r.Provider),
		SyncCalendar: r.SyncCalendar,
	}
}

// ---

type exportReq struct {
	// Either ready-made items or raw notes to extract first.
	Items    []itemResp `json:"items"`
	Notes    string     `json:"notes"`
	Provider string     `json:"provider" binding:"omitempty,oneof=regex openai ollama"`
	Format   string     `json:"format"   binding:"required"`
}

func (r exportReq) validate() error {
	_, err := format.Parse(r.Format)
	return err
}

func (r exportReq) toItems() []model.ActionItem {
	items := make([]model.ActionItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = model.ActionItem{
			Assignee: item.Assignee,
			Task:     item.Task,
			DueDate:  item.DueDate,
			Priority: model.Priority(item.Priority),
			Context:  item.Context,
		}
	}
	return items
}

// --- Response DTOs ---

type itemResp struct {
	Assignee *string `json:"assignee"`
	Task     string  `json:"task"`
	DueDate  *string `json:"due_date"`
	Priority string  `json:"priority"`
	Context  string  `json:"context"`
}

func newItemResp(item model.ActionItem) itemResp {
	return itemResp{
		Assignee: item.Assignee,
		Task:     item.Task,
		DueDate:  item.DueDate,
		Priority: string(item.Priority),
		Context:  item.Context,
	}
}

type extractResp struct {
	RequestID      string                 `json:"request_id"`
	Provider       string                 `json:"provider"`
	Count          int                    `json:"count"`
	Items          []itemResp             `json:"items"`
	CalendarEvents []action.CalendarEvent `json:"calendar_events,omitempty"`
}

func (h *handler) newExtractResp(requestID string, out action.ExtractOutput) extractResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return extractResp{
		RequestID:      requestID,
		Provider:       string(out.Provider),
		Count:          out.Count,
		Items:          items,
		CalendarEvents: out.CalendarEvents,
	}
}
