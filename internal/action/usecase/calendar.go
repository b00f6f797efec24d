package usecase

import (
	"context"
	"fmt"
	"time"

	"meeting-action-extractor/internal/action"
	"meeting-action-extractor/internal/model"
	"meeting-action-extractor/pkg/gcalendar"
)

// syncCalendar creates a Google Calendar event for every item that carries
// a resolvable due date. Failures are non-fatal: the extraction result is
// returned either way, items just end up without an event.
func (uc *implUseCase) syncCalendar(ctx context.Context, sc model.Scope, items []model.ActionItem) []action.CalendarEvent {
	if uc.calendar == nil {
		uc.l.Warnf(ctx, "syncCalendar: calendar client not configured, skipping request=%s", sc.RequestID)
		return nil
	}

	now := time.Now()
	events := make([]action.CalendarEvent, 0, len(items))

	for _, item := range items {
		if item.DueDate == nil {
			continue
		}

		due, err := uc.dateMath.Resolve(*item.DueDate, now)
		if err != nil {
			uc.l.Debugf(ctx, "syncCalendar: cannot resolve due date %q: %v", *item.DueDate, err)
			continue
		}

		description := item.Context
		if item.Assignee != nil {
			description = fmt.Sprintf("Assignee: %s\n\n%s", *item.Assignee, item.Context)
		}

		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     item.Task,
			Description: description,
			StartTime:   due,
			EndTime:     uc.dateMath.EndOfDay(due),
			Timezone:    uc.timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "syncCalendar: event creation failed for %q (non-fatal): %v", item.Task, err)
			continue
		}

		events = append(events, action.CalendarEvent{
			Task:     item.Task,
			EventID:  event.ID,
			HtmlLink: event.HtmlLink,
			Due:      due.Format("2006-01-02"),
		})

		uc.l.Infof(ctx, "syncCalendar: created event for %q due=%s", item.Task, due.Format("2006-01-02"))
	}

	return events
}
