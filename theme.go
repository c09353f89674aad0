package cheet

// Theme is the fixed styling profile, expressed as semantic ANSI color
// indices (0-15) for prose styling plus the name of the built-in chroma
// style used for fenced code blocks. The terminal's own palette determines
// the actual RGB values of the ANSI indices, so prose automatically matches
// any color scheme; code blocks use the truecolor chroma style directly.
type Theme struct {
	Accent    int    // headings and bold text
	Secondary int    // italic text
	Tertiary  int    // tables
	CodeFg    int    // inline code foreground
	CodeBg    int    // inline code background
	BlockBg   int    // block-level code fallback background
	Muted     int    // language labels, link URLs
	CodeStyle string // chroma style name for fenced code blocks
}

// DefaultTheme returns the profile used by the CLI. It is the only profile;
// styling is not configurable at runtime.
func DefaultTheme() Theme {
	return Theme{
		Accent:    5,
		Secondary: 6,
		Tertiary:  3,
		CodeFg:    7,
		CodeBg:    0,
		BlockBg:   0,
		Muted:     8,
		CodeStyle: "monokai",
	}
}
