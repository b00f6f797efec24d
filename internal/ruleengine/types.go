package ruleengine

// Segment is one candidate action-item span: a single sentence or line of
// the source note, trimmed of surrounding whitespace and list bullets.
type Segment struct {
	Text     string // trimmed segment text, used verbatim as item context
	Start    int    // byte offset of Text in the source note
	End      int    // byte offset one past the last byte of Text
	Bulleted bool   // segment was introduced by a list bullet (-, *, •)
}

// Span is a half-open byte range [Start, End) within a Segment's Text.
type Span struct {
	Start int
	End   int
}

// Overlaps reports whether two spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// MatchKind tags which assignee rule produced a match.
type MatchKind string

const (
	MatchTaggedMention  MatchKind = "tagged-mention"
	MatchProperName     MatchKind = "proper-name"
	MatchGroupReference MatchKind = "group-reference"
)

// AssigneeMatch is the result of assignee extraction. A nil *AssigneeMatch
// means no assignee was found, which is a valid outcome.
type AssigneeMatch struct {
	Label string // normalized assignee label, e.g. "@sarah", "John"
	Span  Span
	Kind  MatchKind
}

// DeadlineMatch is the result of deadline extraction. The label is the
// literal matched text; no calendar resolution happens here.
type DeadlineMatch struct {
	Label string // e.g. "Friday", "next week", "03/15"
	Span  Span
	Rule  string // name of the deadline rule that matched
}

// TaskPhrase is the cleaned task description. A nil *TaskPhrase means the
// segment had no residual task text and must be excluded from the output.
type TaskPhrase struct {
	Text string
}
