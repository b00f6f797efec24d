package ruleengine

import (
	"regexp"
	"strings"
)

// actionVerbs are the modal/intent verbs that signal an upcoming
// obligation when they directly follow a name or group reference.
const actionVerbs = `(?:will|to|should|needs\s+to|is\s+going\s+to)`

// assigneeRule is one named pattern in the assignee rule chain. Rules are
// tried in order; the first rule with any match wins, and within a rule
// only the leftmost candidate is taken.
type assigneeRule struct {
	name  string
	kind  MatchKind
	re    *regexp.Regexp
	group int // submatch index holding the label; 0 means the whole match
}

func assigneeRules() []assigneeRule {
	return []assigneeRule{
		{
			// @name token, optionally extended over a trailing group noun
			// so "@dev team" is captured whole.
			name: "tagged-mention",
			kind: MatchTaggedMention,
			re:   regexp.MustCompile(`@[A-Za-z0-9_][A-Za-z0-9_-]*(?:\s+(?:team|squad|group|crew))?`),
		},
		{
			// Capitalized name (one or two words) directly preceding an
			// action verb: "John will", "Mary Jones should".
			name:  "proper-name",
			kind:  MatchProperName,
			re:    regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+` + actionVerbs + `\b`),
			group: 1,
		},
		{
			// Lowercase group phrase preceding an action verb: "the team
			// will", "dev team to".
			name:  "group-reference",
			kind:  MatchGroupReference,
			re:    regexp.MustCompile(`\b((?:the\s+)?(?:[a-z]+\s+)?(?:team|squad|group))\s+` + actionVerbs + `\b`),
			group: 1,
		},
	}
}

// properNameStopwords are capitalized words that look like names to the
// proper-name pattern but never denote a person: pronouns, sentence
// openers, weekday and month names.
var properNameStopwords = map[string]bool{
	"This": true, "That": true, "These": true, "Those": true, "The": true,
	"It": true, "We": true, "They": true, "He": true, "She": true,
	"You": true, "I": true, "Everyone": true, "Someone": true,
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
	"January": true, "February": true, "March": true, "April": true,
	"May": true, "June": true, "July": true, "August": true,
	"September": true, "October": true, "November": true, "December": true,
}

// ExtractAssignee scans a segment for an assignee signal. It returns nil
// when no rule matches; a single-assignee-per-item policy means only the
// leftmost candidate of the winning rule is taken.
func (e *Engine) ExtractAssignee(seg Segment) *AssigneeMatch {
	for _, rule := range e.assigneeRules {
		for _, idx := range rule.re.FindAllStringSubmatchIndex(seg.Text, -1) {
			start, end := idx[0], idx[1]
			if rule.group > 0 {
				start, end = idx[2*rule.group], idx[2*rule.group+1]
			}
			label := seg.Text[start:end]

			if rule.kind == MatchProperName && properNameStopwords[strings.Fields(label)[0]] {
				continue
			}

			return &AssigneeMatch{
				Label: label,
				Span:  Span{Start: start, End: end},
				Kind:  rule.kind,
			}
		}
	}
	return nil
}
