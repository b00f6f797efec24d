package ruleengine

import (
	"regexp"

	"meeting-action-extractor/internal/model"
)

// priorityCue maps a lexical cue pattern to a fixed urgency level. High
// cues are checked before low cues so a segment containing contradictory
// cues escalates rather than de-escalates.
type priorityCue struct {
	re    *regexp.Regexp
	level model.Priority
}

func priorityCues() []priorityCue {
	return []priorityCue{
		{regexp.MustCompile(`(?i)\b(?:urgent(?:ly)?|asap|critical|immediately)\b`), model.PriorityHigh},
		{regexp.MustCompile(`(?i)\b(?:when\s+possible|low\s+priority|eventually)\b`), model.PriorityLow},
	}
}

// ClassifyPriority assigns a priority from lexical cues, defaulting to medium.
func (e *Engine) ClassifyPriority(seg Segment) model.Priority {
	for _, cue := range e.priorityCues {
		if cue.re.MatchString(seg.Text) {
			return cue.level
		}
	}
	return model.PriorityMedium
}
