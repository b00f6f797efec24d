package usecase

import (
	"context"
	"fmt"

	"meeting-action-extractor/internal/action"
	"meeting-action-extractor/internal/model"
	"meeting-action-extractor/pkg/format"
)

// Export renders action items into the requested format. Exporting an
// empty item list is valid and yields a document with headers only.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input action.ExportInput) (action.ExportOutput, error) {
	data, err := format.Marshal(input.Items, input.Format)
	if err != nil {
		return action.ExportOutput{}, fmt.Errorf("%w: %v", action.ErrUnknownFormat, err)
	}

	uc.l.Infof(ctx, "Export: request=%s format=%s items=%d bytes=%d", sc.RequestID, input.Format, len(input.Items), len(data))

	return action.ExportOutput{
		ContentType: input.Format.ContentType(),
		Data:        data,
	}, nil
}
