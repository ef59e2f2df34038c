package excerpt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestExtract_DropsNonProseElements(t *testing.T) {
	src := `<html><head><style>p { color: red }</style><script>var x = "<p>no</p>";</script></head>
<body>
<nav><a href="/">Home</a></nav>
<h1>Title</h1>
<h2>Sub</h2>
<p>First paragraph.</p>
<aside>Side note</aside>
<h4>Kept heading</h4>
<p>Second &amp; last.</p>
<footer>Copyright</footer>
</body></html>`

	require.Equal(t, "First paragraph. Kept heading Second & last.", Extract([]byte(src), DefaultBudget))
}

func TestExtract_NestedSkippedElements(t *testing.T) {
	src := "<nav><h2>Menu</h2><ul><li>a</li></ul></nav>\n<p>body</p>"
	require.Equal(t, "body", Extract([]byte(src), DefaultBudget))
}

func TestExtract_LineTooLong_YieldsOnlyEllipsis(t *testing.T) {
	require.Equal(t, "...", Extract([]byte("<h1>Title</h1><p>Hello world</p>"), 5))
	require.Equal(t, "Hello world", Extract([]byte("<h1>Title</h1><p>Hello world</p>"), DefaultBudget))
}

func TestExtract_StopsAtBudget(t *testing.T) {
	src := "<p>Hello</p>\n<p>world</p>\n<p>again</p>"
	require.Equal(t, "Hello world ...", Extract([]byte(src), 12))
	require.Equal(t, "Hello world again", Extract([]byte(src), 15))
}

func TestExtract_CountsCharactersNotBytes(t *testing.T) {
	src := "<p>héllo</p>\n<p>wörld</p>"
	require.Equal(t, "héllo wörld", Extract([]byte(src), 10))
}

func TestExtract_EmptyInput(t *testing.T) {
	require.Equal(t, "", Extract(nil, DefaultBudget))
	require.Equal(t, "", Extract([]byte("<h1>Only a title</h1>"), DefaultBudget))
}

func TestSummarize_NeverExceedsBudget(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("<p>line number ")
		b.WriteString(strings.Repeat("x", i%17))
		b.WriteString("</p>\n")
	}
	text := visibleText([]byte(b.String()))
	for _, budget := range []int{0, 1, 10, 64, DefaultBudget, 1000} {
		chunks, count := summarize(text, budget)
		require.LessOrEqual(t, count, budget, "budget %d", budget)
		require.Equal(t, Ellipsis, chunks[len(chunks)-1], "budget %d", budget)

		kept := 0
		for _, chunk := range chunks[:len(chunks)-1] {
			kept += utf8.RuneCountInString(chunk)
		}
		require.Equal(t, count, kept)
	}
}

func TestSummarize_SplitsOnEveryLineTerminator(t *testing.T) {
	chunks, count := summarize("one\rtwo\r\nthree\vfour\ffive\x1csix\u0085seven eight", 100)
	require.Equal(t, []string{"one", "two", "three", "four", "five", "six", "seven eight"}, chunks)
	require.Equal(t, 33, count)
}

func TestExtract_UnicodeLineSeparators_CutPerLine(t *testing.T) {
	out := Extract([]byte("<p>short line\u2028a second line that will not fit</p>"), 12)
	require.Equal(t, "short line ...", out)
}
