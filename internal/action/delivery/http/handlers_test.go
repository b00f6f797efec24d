package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"meeting-action-extractor/internal/action"
	actionhttp "meeting-action-extractor/internal/action/delivery/http"
	"meeting-action-extractor/internal/model"
	"meeting-action-extractor/pkg/format"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	extractOutput action.ExtractOutput
	extractErr    error
	exportOutput  action.ExportOutput
	exportErr     error

	lastExtract action.ExtractInput
	lastExport  action.ExportInput
}

func (m *mockUseCase) Extract(ctx context.Context, sc model.Scope, input action.ExtractInput) (action.ExtractOutput, error) {
	m.lastExtract = input
	return m.extractOutput, m.extractErr
}

func (m *mockUseCase) Export(ctx context.Context, sc model.Scope, input action.ExportInput) (action.ExportOutput, error) {
	m.lastExport = input
	return m.exportOutput, m.exportErr
}

func newServer(muc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := actionhttp.New(&mockLogger{}, muc)

	r := gin.New()
	r.POST("/extract", h.Extract)
	r.POST("/export", h.Export)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExtractHandler(t *testing.T) {
	assignee := "John"
	muc := &mockUseCase{
		extractOutput: action.ExtractOutput{
			Count: 1,
			Items: []model.ActionItem{
				{Assignee: &assignee, Task: "update the guide", Priority: model.PriorityMedium, Context: "ctx"},
			},
			Provider: model.ProviderRegex,
		},
	}
	r := newServer(muc)

	w := postJSON(r, "/extract", `{"notes":"John will update the guide"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			RequestID string `json:"request_id"`
			Provider  string `json:"provider"`
			Count     int    `json:"count"`
			Items     []struct {
				Assignee *string `json:"assignee"`
				Task     string  `json:"task"`
			} `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Data.RequestID == "" {
		t.Errorf("expected a request id")
	}
	if resp.Data.Provider != "regex" || resp.Data.Count != 1 {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
	if len(resp.Data.Items) != 1 || resp.Data.Items[0].Task != "update the guide" {
		t.Errorf("unexpected items: %+v", resp.Data.Items)
	}
}

func TestExtractHandlerBadProvider(t *testing.T) {
	r := newServer(&mockUseCase{})

	w := postJSON(r, "/extract", `{"notes":"x","provider":"gpt-sauce"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestExtractHandlerUseCaseClientError(t *testing.T) {
	muc := &mockUseCase{extractErr: action.ErrUnknownProvider}
	r := newServer(muc)

	w := postJSON(r, "/extract", `{"notes":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestExtractHandlerPassesSyncFlag(t *testing.T) {
	muc := &mockUseCase{}
	r := newServer(muc)

	w := postJSON(r, "/extract", `{"notes":"x","sync_calendar":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !muc.lastExtract.SyncCalendar {
		t.Errorf("sync_calendar flag not propagated")
	}
}

func TestExportHandlerWithItems(t *testing.T) {
	muc := &mockUseCase{
		exportOutput: action.ExportOutput{
			ContentType: "text/csv; charset=utf-8",
			Data:        []byte("assignee,task,due_date,priority,context\n"),
		},
	}
	r := newServer(muc)

	w := postJSON(r, "/export", `{"format":"csv","items":[{"assignee":null,"task":"do it","due_date":null,"priority":"medium","context":"c"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("unexpected content type: %s", ct)
	}
	if muc.lastExport.Format != format.CSV {
		t.Errorf("unexpected format: %s", muc.lastExport.Format)
	}
	if len(muc.lastExport.Items) != 1 || muc.lastExport.Items[0].Task != "do it" {
		t.Errorf("unexpected items: %+v", muc.lastExport.Items)
	}
}

func TestExportHandlerExtractsNotesFirst(t *testing.T) {
	muc := &mockUseCase{
		extractOutput: action.ExtractOutput{
			Count: 1,
			Items: []model.ActionItem{
				{Task: "review the budget", Priority: model.PriorityMedium, Context: "c"},
			},
			Provider: model.ProviderRegex,
		},
		exportOutput: action.ExportOutput{
			ContentType: "text/markdown; charset=utf-8",
			Data:        []byte("# Action Items\n"),
		},
	}
	r := newServer(muc)

	w := postJSON(r, "/export", `{"format":"md","notes":"Sarah should review the budget"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if muc.lastExtract.Notes != "Sarah should review the budget" {
		t.Errorf("notes not extracted before export")
	}
	if len(muc.lastExport.Items) != 1 {
		t.Errorf("extracted items not passed to export: %+v", muc.lastExport.Items)
	}
}

func TestExportHandlerMissingFormat(t *testing.T) {
	r := newServer(&mockUseCase{})

	w := postJSON(r, "/export", `{"notes":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestExportHandlerUnknownFormat(t *testing.T) {
	r := newServer(&mockUseCase{})

	w := postJSON(r, "/export", `{"notes":"x","format":"yaml"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
