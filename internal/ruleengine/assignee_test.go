package ruleengine_test

import (
	"testing"

	"meeting-action-extractor/internal/ruleengine"
)

func seg(text string) ruleengine.Segment {
	return ruleengine.Segment{Text: text, Start: 0, End: len(text)}
}

func TestExtractAssignee(t *testing.T) {
	engine := ruleengine.New()

	tests := []struct {
		name      string
		text      string
		wantLabel string
		wantKind  ruleengine.MatchKind
		wantNil   bool
	}{
		{
			name:      "at mention",
			text:      "@sarah to finalize API spec by Friday",
			wantLabel: "@sarah",
			wantKind:  ruleengine.MatchTaggedMention,
		},
		{
			name:      "at mention with group noun",
			text:      "@dev team to investigate latency issues",
			wantLabel: "@dev team",
			wantKind:  ruleengine.MatchTaggedMention,
		},
		{
			name:      "proper name before will",
			text:      "John will update the documentation by next week",
			wantLabel: "John",
			wantKind:  ruleengine.MatchProperName,
		},
		{
			name:      "two word proper name",
			text:      "Mary Jones should review the design doc",
			wantLabel: "Mary Jones",
			wantKind:  ruleengine.MatchProperName,
		},
		{
			name:      "group reference",
			text:      "the team will review the design tomorrow",
			wantLabel: "the team",
			wantKind:  ruleengine.MatchGroupReference,
		},
		{
			name:      "named group reference",
			text:      "dev team to ship the hotfix",
			wantLabel: "dev team",
			wantKind:  ruleengine.MatchGroupReference,
		},
		{
			name:      "tagged mention wins over proper name",
			text:      "John asked @sarah to send the minutes",
			wantLabel: "@sarah",
			wantKind:  ruleengine.MatchTaggedMention,
		},
		{
			name:      "leftmost mention wins",
			text:      "@sarah and @john to split the work",
			wantLabel: "@sarah",
			wantKind:  ruleengine.MatchTaggedMention,
		},
		{
			name:    "pronoun is not a name",
			text:    "We will revisit this next quarter",
			wantNil: true,
		},
		{
			name:    "capitalized weekday is not a name",
			text:    "Friday will be a holiday",
			wantNil: true,
		},
		{
			name:    "no assignee signal",
			text:    "fix the login bug",
			wantNil: true,
		},
		{
			name:    "capitalized word without action verb",
			text:    "Thanks everyone for joining",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.ExtractAssignee(seg(tt.text))
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected no match, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected match %q, got nil", tt.wantLabel)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("label: got %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("kind: got %q, want %q", got.Kind, tt.wantKind)
			}
			if span := tt.text[got.Span.Start:got.Span.End]; span != got.Label {
				t.Errorf("span selects %q, label is %q", span, got.Label)
			}
		})
	}
}
