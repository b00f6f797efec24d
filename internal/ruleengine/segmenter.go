package ruleengine

import "strings"

// sentence terminators; line breaks always end a segment.
const terminators = ".!?;"

// SplitSegments splits raw note text into candidate segments, one per
// sentence or line, in source order. Whitespace-only spans are dropped.
// Calling it twice on the same text yields identical results.
func SplitSegments(text string) []Segment {
	var segments []Segment

	start := 0
	for i := 0; i <= len(text); i++ {
		atEnd := i == len(text)
		if !atEnd && text[i] != '\n' && !strings.ContainsRune(terminators, rune(text[i])) {
			continue
		}
		if seg, ok := trimSegment(text, start, i); ok {
			segments = append(segments, seg)
		}
		start = i + 1
	}

	return segments
}

// trimSegment trims the raw span [start, end) to its non-blank core,
// stripping leading list bullets while keeping offsets into the source.
func trimSegment(text string, start, end int) (Segment, bool) {
	for start < end && isSpace(text[start]) {
		start++
	}

	bulleted := false
	for start < end {
		if text[start] == '-' || text[start] == '*' {
			bulleted = true
			start++
		} else if strings.HasPrefix(text[start:end], "•") {
			bulleted = true
			start += len("•")
		} else {
			break
		}
		for start < end && isSpace(text[start]) {
			start++
		}
	}

	for end > start && isSpace(text[end-1]) {
		end--
	}

	if start >= end {
		return Segment{}, false
	}
	return Segment{Text: text[start:end], Start: start, End: end, Bulleted: bulleted}, true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
