package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-action-extractor/internal/action"
	"meeting-action-extractor/internal/model"
	"meeting-action-extractor/pkg/format"
	"meeting-action-extractor/pkg/response"
)

// Extract godoc
// @Summary     Extract action items from meeting notes
// @Description Parses free-form meeting notes into structured action items. The regex backend is the default; openai and ollama backends degrade to regex on failure.
// @Tags        Actions
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Meeting notes"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/actions/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{RequestID: uuid.NewString()}

	output, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExtractResp(sc.RequestID, output))
}

// Export godoc
// @Summary     Export action items
// @Description Renders action items as JSON, CSV or a Markdown table. Accepts either ready-made items or raw notes, which are extracted first.
// @Tags        Actions
// @Accept      json
// @Produce     json
// @Produce     text/csv
// @Produce     text/markdown
// @Param       body body exportReq true "Items or notes plus output format"
// @Success     200  {string} string "Rendered document"
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/actions/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{RequestID: uuid.NewString()}

	items := req.toItems()
	if len(items) == 0 && req.Notes != "" {
		extractOut, err := h.uc.Extract(ctx, sc, action.ExtractInput{
			Notes:    req.Notes,
			Provider: model.Provider(req.Provider),
		})
		if err != nil {
			h.l.Errorf(ctx, "uc.Extract: %v", err)
			h.respondError(c, err)
			return
		}
		items = extractOut.Items
	}

	f, _ := format.Parse(req.Format) // validated in processExportReq

	output, err := h.uc.Export(ctx, sc, action.ExportInput{
		Items:  items,
		Format: f,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, output.ContentType, output.Data)
}

// respondError picks the response shape for a use case error.
func (h *handler) respondError(c *gin.Context, err error) {
	if isClientError(err) {
		response.Error(c, err, nil)
		return
	}
	response.InternalError(c, err)
}
