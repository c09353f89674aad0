package render_test

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/cheetsheet/cheet"
	"github.com/cheetsheet/cheet/render"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func stripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	return re.ReplaceAllString(s, "")
}

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.ANSI)
	os.Exit(m.Run())
}

func TestDocument(t *testing.T) {
	t.Parallel()

	theme := cheet.DefaultTheme()

	t.Run("empty document produces no output", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", render.Document("", 80, theme))
	})

	t.Run("prose and code appear in source order", func(t *testing.T) {
		t.Parallel()
		out := render.Document("# Title\n\n```bash\necho hello\n```\n\nAfter\n", 80, theme)
		stripped := stripANSI(out)
		title := strings.Index(stripped, "Title")
		code := strings.Index(stripped, "echo hello")
		after := strings.Index(stripped, "After")
		assert.GreaterOrEqual(t, title, 0)
		assert.Greater(t, code, title)
		assert.Greater(t, after, code)
	})

	t.Run("unrecognized language still prints the body", func(t *testing.T) {
		t.Parallel()
		out := render.Document("```not-a-real-lang\nsome opaque text\n```", 80, theme)
		assert.Contains(t, stripANSI(out), "some opaque text")
	})

	t.Run("code block output ends with a terminal reset", func(t *testing.T) {
		t.Parallel()
		out := render.Document("```go\nfmt.Println(1)\n```", 80, theme)
		assert.Contains(t, out, "\x1b[0m")
		assert.True(t, strings.HasSuffix(out, "\x1b[0m\n"))
	})

	t.Run("unclosed fence degrades to literal prose", func(t *testing.T) {
		t.Parallel()
		out := render.Document("before\n```python\nprint(1)\n", 80, theme)
		stripped := stripANSI(out)
		assert.Contains(t, stripped, "before")
		assert.Contains(t, stripped, "python")
		assert.Contains(t, stripped, "print(1)")
	})

	t.Run("whitespace-only prose between blocks adds nothing", func(t *testing.T) {
		t.Parallel()
		out := render.Document("```sh\nls\n```\n\n```sh\npwd\n```", 80, theme)
		stripped := stripANSI(out)
		assert.Contains(t, stripped, "ls")
		assert.Contains(t, stripped, "pwd")
		// Only the blank separation the code renderer itself writes.
		assert.NotContains(t, stripped, "\n\n\n\n")
	})

	t.Run("code-only document", func(t *testing.T) {
		t.Parallel()
		out := render.Document("```bash\necho hi\n```", 80, theme)
		assert.Contains(t, stripANSI(out), "echo hi")
	})

	t.Run("tables render through the prose path", func(t *testing.T) {
		t.Parallel()
		out := render.Document("| key | action |\n| --- | --- |\n| q | quit |\n", 80, theme)
		stripped := stripANSI(out)
		assert.Contains(t, stripped, "key")
		assert.Contains(t, stripped, "quit")
	})
}
