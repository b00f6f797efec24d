package ruleengine_test

import (
	"testing"

	"meeting-action-extractor/internal/model"
	"meeting-action-extractor/internal/ruleengine"
)

func TestClassifyPriority(t *testing.T) {
	engine := ruleengine.New()

	tests := []struct {
		name string
		text string
		want model.Priority
	}{
		{name: "urgent", text: "This is urgent: fix the login bug", want: model.PriorityHigh},
		{name: "asap case insensitive", text: "fix the login bug ASAP", want: model.PriorityHigh},
		{name: "critical", text: "critical outage in production", want: model.PriorityHigh},
		{name: "immediately", text: "rotate the keys immediately", want: model.PriorityHigh},
		{name: "when possible", text: "tidy the backlog when possible", want: model.PriorityLow},
		{name: "low priority", text: "low priority: rename the repo", want: model.PriorityLow},
		{name: "eventually", text: "we should eventually migrate to v2", want: model.PriorityLow},
		{name: "default medium", text: "@sarah to finalize API spec by Friday", want: model.PriorityMedium},
		{name: "contradictory cues escalate", text: "urgent but also low priority cleanup", want: model.PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.ClassifyPriority(seg(tt.text)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
