package ruleengine

import "regexp"

// deadlineRule is one named pattern in the deadline vocabulary. Unlike the
// assignee chain, rule order only breaks ties: the winning match is the
// leftmost recognized expression across all rules.
type deadlineRule struct {
	name string
	re   *regexp.Regexp
}

func deadlineRules() []deadlineRule {
	return []deadlineRule{
		{
			name: "relative-term",
			re:   regexp.MustCompile(`(?i)\b(?:next\s+week|this\s+week|end\s+of\s+week|end\s+of\s+day|eod|today|tomorrow)\b`),
		},
		{
			name: "weekday",
			re:   regexp.MustCompile(`(?i)\b(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		},
		{
			// MM/DD numeric date.
			name: "numeric-date",
			re:   regexp.MustCompile(`\b(?:0?[1-9]|1[0-2])/(?:0?[1-9]|[12][0-9]|3[01])\b`),
		},
		{
			// "Month D" with full or abbreviated month name.
			name: "month-day",
			re:   regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+[0-3]?[0-9]\b`),
		},
	}
}

// ExtractDeadline scans a segment for the leftmost recognized deadline
// expression. The label is the literal matched span; resolution to an
// absolute date is deliberately out of scope here. Returns nil on no match.
func (e *Engine) ExtractDeadline(seg Segment) *DeadlineMatch {
	var best *DeadlineMatch
	for _, rule := range e.deadlineRules {
		loc := rule.re.FindStringIndex(seg.Text)
		if loc == nil {
			continue
		}
		if best == nil || loc[0] < best.Span.Start {
			best = &DeadlineMatch{
				Label: seg.Text[loc[0]:loc[1]],
				Span:  Span{Start: loc[0], End: loc[1]},
				Rule:  rule.name,
			}
		}
	}
	return best
}
