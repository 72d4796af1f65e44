package render_test

import (
	"testing"

	"smartstudy/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_OrderedFragments(t *testing.T) {
	input := "# Title\n- item one\n**Bold**\n\nPlain text"

	fragments := render.Lines(input)
	require.Len(t, fragments, 4)

	assert.Equal(t, render.KindHeading, fragments[0].Kind)
	assert.Equal(t, "<h1>Title</h1>", fragments[0].HTML)

	assert.Equal(t, render.KindListItem, fragments[1].Kind)
	assert.Equal(t, "<li>item one</li>", fragments[1].HTML)

	assert.Equal(t, render.KindBold, fragments[2].Kind)
	assert.Equal(t, "<p><strong>Bold</strong></p>", fragments[2].HTML)

	assert.Equal(t, render.KindParagraph, fragments[3].Kind)
	assert.Equal(t, "<p>Plain text</p>", fragments[3].HTML)
}

func TestLines_HeadingLevels(t *testing.T) {
	fragments := render.Lines("## Second\n### Third\n###### Too deep")
	require.Len(t, fragments, 3)
	assert.Equal(t, "<h2>Second</h2>", fragments[0].HTML)
	assert.Equal(t, "<h3>Third</h3>", fragments[1].HTML)
	// Level is capped
	assert.Equal(t, "<h4>Too deep</h4>", fragments[2].HTML)
}

func TestLines_StarBullets(t *testing.T) {
	fragments := render.Lines("* starred item")
	require.Len(t, fragments, 1)
	assert.Equal(t, render.KindListItem, fragments[0].Kind)
	assert.Equal(t, "<li>starred item</li>", fragments[0].HTML)
}

func TestLines_BlankLinesDropped(t *testing.T) {
	fragments := render.Lines("\n\n  \nonly line\n\n")
	require.Len(t, fragments, 1)
	assert.Equal(t, "<p>only line</p>", fragments[0].HTML)
}

func TestLines_EscapesHTML(t *testing.T) {
	fragments := render.Lines("# <script>alert(1)</script>")
	require.Len(t, fragments, 1)
	assert.Equal(t, "<h1>&lt;script&gt;alert(1)&lt;/script&gt;</h1>", fragments[0].HTML)
}

func TestLines_EmptyInput(t *testing.T) {
	assert.Empty(t, render.Lines(""))
}

func TestHTML_JoinsFragments(t *testing.T) {
	got := render.HTML("# Title\nBody")
	assert.Equal(t, "<h1>Title</h1>\n<p>Body</p>", got)
}
