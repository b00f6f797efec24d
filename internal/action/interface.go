package action

import (
	"context"

	"meeting-action-extractor/internal/model"
)

// UseCase defines the business logic interface for the action domain.
type UseCase interface {
	// Extract parses meeting notes into structured action items, optionally
	// syncing items that carry a due date to Google Calendar.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// Export renders action items into the requested output format.
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}
