package format_test

import (
	"encoding/json"
	"strings"
	"testing"

	"meeting-action-extractor/internal/model"
	"meeting-action-extractor/pkg/format"
)

func sampleItems() []model.ActionItem {
	assignee := "@sarah"
	due := "Friday"
	return []model.ActionItem{
		{
			Assignee: &assignee,
			Task:     "finalize API spec",
			DueDate:  &due,
			Priority: model.PriorityMedium,
			Context:  "@sarah to finalize API spec by Friday",
		},
		{
			Task:     "fix the login bug",
			Priority: model.PriorityHigh,
			Context:  "This is urgent: fix the login bug ASAP",
		},
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    format.Format
		wantErr bool
	}{
		{in: "json", want: format.JSON},
		{in: "csv", want: format.CSV},
		{in: "md", want: format.Markdown},
		{in: "markdown", want: format.Markdown},
		{in: ".csv", want: format.CSV},
		{in: "JSON", want: format.JSON},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := format.Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	out, err := format.Marshal(sampleItems(), format.JSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d records, want 2", len(decoded))
	}

	if decoded[0]["assignee"] != "@sarah" {
		t.Errorf("first assignee: got %v", decoded[0]["assignee"])
	}
	if decoded[1]["assignee"] != nil {
		t.Errorf("absent assignee must serialize as null, got %v", decoded[1]["assignee"])
	}
	if decoded[1]["due_date"] != nil {
		t.Errorf("absent due date must serialize as null, got %v", decoded[1]["due_date"])
	}
}

func TestMarshalCSV(t *testing.T) {
	out, err := format.Marshal(sampleItems(), format.CSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 records:\n%s", len(lines), out)
	}
	if lines[0] != "assignee,task,due_date,priority,context" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "@sarah,finalize API spec,Friday,medium,") {
		t.Errorf("unexpected first record: %s", lines[1])
	}
	if !strings.HasPrefix(lines[2], ",fix the login bug,,high,") {
		t.Errorf("absent fields must be empty cells: %s", lines[2])
	}
}

func TestMarshalMarkdown(t *testing.T) {
	out, err := format.Marshal(sampleItems(), format.Markdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(out)
	if !strings.HasPrefix(text, "# Action Items") {
		t.Errorf("missing title:\n%s", text)
	}
	if !strings.Contains(text, "| @sarah | finalize API spec | Friday | medium |") {
		t.Errorf("missing first row:\n%s", text)
	}
	if !strings.Contains(text, "| N/A | fix the login bug | N/A | high |") {
		t.Errorf("absent fields must render as N/A:\n%s", text)
	}
}

func TestMarshalEmpty(t *testing.T) {
	for _, f := range []format.Format{format.JSON, format.CSV, format.Markdown} {
		out, err := format.Marshal(nil, f)
		if err != nil {
			t.Errorf("format %s: unexpected error %v", f, err)
		}
		if len(out) == 0 {
			t.Errorf("format %s: expected non-empty document for zero items", f)
		}
	}
}
