// Package format serializes extracted action items to the supported
// output documents: a JSON array, CSV with a header row, or a Markdown
// table. Formatting is a pure step downstream of extraction.
package format

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"meeting-action-extractor/internal/model"
)

// Format is an output document format.
type Format string

const (
	JSON     Format = "json"
	CSV      Format = "csv"
	Markdown Format = "md"
)

// Parse maps a user-supplied format name (or file extension) to a Format.
func Parse(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return JSON, nil
	case "csv":
		return CSV, nil
	case "md", "markdown":
		return Markdown, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, csv, or md)", s)
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case CSV:
		return "text/csv; charset=utf-8"
	case Markdown:
		return "text/markdown; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// Marshal renders the action items in the given format.
func Marshal(items []model.ActionItem, f Format) ([]byte, error) {
	switch f {
	case JSON:
		return json.MarshalIndent(items, "", "  ")
	case CSV:
		return marshalCSV(items)
	case Markdown:
		return marshalMarkdown(items), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", f)
	}
}

func marshalCSV(items []model.ActionItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"assignee", "task", "due_date", "priority", "context"}); err != nil {
		return nil, err
	}
	for _, item := range items {
		record := []string{
			deref(item.Assignee),
			item.Task,
			deref(item.DueDate),
			string(item.Priority),
			item.Context,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalMarkdown(items []model.ActionItem) []byte {
	var b strings.Builder
	b.WriteString("# Action Items\n\n")
	b.WriteString("| Assignee | Task | Due Date | Priority |\n")
	b.WriteString("|----------|------|----------|----------|\n")
	for _, item := range items {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			mdCell(deref(item.Assignee)),
			mdCell(item.Task),
			mdCell(deref(item.DueDate)),
			mdCell(string(item.Priority)),
		)
	}
	return []byte(b.String())
}

// mdCell keeps a value from breaking the table layout.
func mdCell(s string) string {
	if s == "" {
		return "N/A"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
