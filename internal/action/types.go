package action

import (
	"meeting-action-extractor/internal/model"
	"meeting-action-extractor/pkg/format"
)

// ExtractInput is the input for action item extraction.
type ExtractInput struct {
	Notes        string         // Raw meeting notes text
	Provider     model.Provider // Extraction backend, defaults to regex
	SyncCalendar bool           // Create Google Calendar events for dated items
}

// CalendarEvent represents a calendar event created for an action item.
type CalendarEvent struct {
	Task     string `json:"task"`
	EventID  string `json:"event_id"`
	HtmlLink string `json:"html_link"`
	Due      string `json:"due"` // Resolved due date, YYYY-MM-DD
}

// ExtractOutput is the result of the extraction operation.
type ExtractOutput struct {
	Items          []model.ActionItem
	Count          int
	Provider       model.Provider // Backend that actually produced the items
	CalendarEvents []CalendarEvent
}

// ExportInput is the input for rendering action items.
type ExportInput struct {
	Items  []model.ActionItem
	Format format.Format
}

// ExportOutput is the rendered document.
type ExportOutput struct {
	ContentType string
	Data        []byte
}
