package ruleengine

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// deadlineConnector matches a dangling "by"/"before"/… left at the end
	// of the text once the deadline span itself is removed.
	deadlineConnector = regexp.MustCompile(`(?i)\b(?:by|before|until|due|on)\s*$`)

	// leadingConnector matches the connector tokens stripped from the
	// front of a task phrase. Multi-word forms come first.
	leadingConnector = regexp.MustCompile(`(?i)^(?:needs\s+to|is\s+going\s+to|to|will|should)\b\s*`)

	// cueStrip matches every priority cue so urgency markers do not leak
	// into the task description.
	cueStrip = regexp.MustCompile(`(?i)\b(?:urgent(?:ly)?|asap|critical|immediately|when\s+possible|low\s+priority|eventually)\b`)

	edgePunct = " \t,.:;-"
)

// ExtractTask isolates the task phrase: the segment text with the assignee
// span, the deadline span (plus its introducing connector), and priority
// cues removed, leading connector tokens stripped, and whitespace
// collapsed. Returns nil when nothing remains, which excludes the segment
// from the output entirely.
func (e *Engine) ExtractTask(seg Segment, assignee *AssigneeMatch, deadline *DeadlineMatch) *TaskPhrase {
	var spans []Span
	if assignee != nil {
		spans = append(spans, assignee.Span)
	}
	if deadline != nil {
		ds := deadline.Span
		if m := deadlineConnector.FindStringIndex(seg.Text[:ds.Start]); m != nil {
			ds.Start = m[0]
		}
		spans = append(spans, ds)
	}

	// Remove spans right to left so earlier offsets stay valid.
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start > spans[j].Start })
	text := seg.Text
	for _, s := range spans {
		text = text[:s.Start] + " " + text[s.End:]
	}

	// "This is urgent: fix the login bug": when the pre-colon prefix only
	// carried an urgency marker, the task lives after the colon.
	if ci := strings.Index(text, ":"); ci >= 0 && cueStrip.MatchString(text[:ci]) {
		text = text[ci+1:]
	}

	text = cueStrip.ReplaceAllString(text, " ")

	for {
		trimmed := strings.TrimLeft(text, edgePunct)
		if m := leadingConnector.FindStringIndex(trimmed); m != nil {
			text = trimmed[m[1]:]
			continue
		}
		text = trimmed
		break
	}

	// A connector left dangling at the end only happens when a deadline
	// span was cut out; a task can legitimately end in "on" otherwise.
	if deadline != nil {
		if m := deadlineConnector.FindStringIndex(text); m != nil {
			text = text[:m[0]]
		}
	}

	text = strings.Join(strings.Fields(text), " ")
	text = strings.Trim(text, edgePunct)
	if text == "" {
		return nil
	}
	return &TaskPhrase{Text: text}
}
