package ruleengine_test

import (
	"testing"

	"meeting-action-extractor/internal/ruleengine"
)

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single line",
			text: "@sarah to finalize API spec by Friday",
			want: []string{"@sarah to finalize API spec by Friday"},
		},
		{
			name: "sentences split on terminators",
			text: "John will update the docs. Mary should review them! Any questions?",
			want: []string{"John will update the docs", "Mary should review them", "Any questions"},
		},
		{
			name: "lines split on newlines",
			text: "first line\nsecond line\n\nthird line",
			want: []string{"first line", "second line", "third line"},
		},
		{
			name: "blank input",
			text: "   ",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "bullets stripped",
			text: "- fix login page\n* update readme\n• ship release",
			want: []string{"fix login page", "update readme", "ship release"},
		},
		{
			name: "whitespace only spans dropped",
			text: "one. . two",
			want: []string{"one", "two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := ruleengine.SplitSegments(tt.text)
			if len(segs) != len(tt.want) {
				t.Fatalf("got %d segments, want %d: %+v", len(segs), len(tt.want), segs)
			}
			for i, seg := range segs {
				if seg.Text != tt.want[i] {
					t.Errorf("segment %d: got %q, want %q", i, seg.Text, tt.want[i])
				}
			}
		})
	}
}

func TestSplitSegmentsOffsets(t *testing.T) {
	text := "  @sarah to ship it by Friday.\n- review PR"
	segs := ruleengine.SplitSegments(text)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}

	for i, seg := range segs {
		if got := text[seg.Start:seg.End]; got != seg.Text {
			t.Errorf("segment %d: offsets [%d,%d) select %q, text is %q", i, seg.Start, seg.End, got, seg.Text)
		}
	}

	if segs[0].Bulleted {
		t.Errorf("segment 0 should not be bulleted")
	}
	if !segs[1].Bulleted {
		t.Errorf("segment 1 should be bulleted")
	}
}

func TestSplitSegmentsIdempotent(t *testing.T) {
	text := "John will update docs by Friday. Mary to review."
	first := ruleengine.SplitSegments(text)
	second := ruleengine.SplitSegments(text)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("segment %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
