package cheet

import "strings"

const fence = "```"

// Split scans content left to right and partitions it into an ordered
// sequence of text and code segments. It never fails: every input, including
// the empty string and unbalanced fences, yields a valid sequence. Empty
// text spans are never emitted.
//
// A closing fence is a line break immediately followed by three backticks.
// If an opening fence is never closed, the remainder starting at the opening
// fence (backticks and language tag included) is emitted verbatim as a text
// segment and scanning stops.
func Split(content string) []Segment {
	var segments []Segment
	rest := content
	for {
		open := strings.Index(rest, fence)
		if open < 0 {
			if rest != "" {
				segments = append(segments, TextSegment{Content: rest})
			}
			return segments
		}
		if open > 0 {
			segments = append(segments, TextSegment{Content: rest[:open]})
		}

		// The language tag sits between the fence and the end of its line.
		// A fence with no line break after it cannot be closed.
		tagStart := open + len(fence)
		nl := strings.IndexByte(rest[tagStart:], '\n')
		if nl < 0 {
			segments = append(segments, TextSegment{Content: rest[open:]})
			return segments
		}
		language := strings.TrimSpace(rest[tagStart : tagStart+nl])

		// Search from the tag line's own newline so that an empty block
		// ("```\n```") closes immediately.
		bodyNL := tagStart + nl
		end := strings.Index(rest[bodyNL:], "\n"+fence)
		if end < 0 {
			segments = append(segments, TextSegment{Content: rest[open:]})
			return segments
		}

		var body string
		if end > 0 {
			body = rest[bodyNL+1 : bodyNL+end]
		}
		segments = append(segments, CodeSegment{Language: language, Body: body})
		rest = rest[bodyNL+end+1+len(fence):]
	}
}
