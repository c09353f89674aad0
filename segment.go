// Package cheet provides the core pipeline for the cheet cheatsheet viewer:
// splitting raw document text into prose and fenced-code segments, and the
// styling theme shared by the renderers.
package cheet

// Segment is a sealed interface representing one contiguous run of a
// document: either prose text or a fenced code block, in source order.
// Segments are transient values owned by a single render pass.
// The unexported marker method prevents external implementations.
type Segment interface {
	segment()
}

// TextSegment is a run of document text rendered as styled markdown.
type TextSegment struct {
	Content string
}

func (TextSegment) segment() {}

// CodeSegment is a fenced code block. Language is the tag after the opening
// fence, possibly empty. Body is the literal block content with the fence
// markers excluded and the newline before the closing fence stripped.
type CodeSegment struct {
	Language string
	Body     string
}

func (CodeSegment) segment() {}

// Interface compliance checks.
var (
	_ Segment = TextSegment{}
	_ Segment = CodeSegment{}
)
