package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const riskReport = `**RISK ANALYSIS**

---

Key obligations:

* - Tenant pays rent by the 5th
  - Tenant maintains insurance
• Landlord handles structural repairs

The indemnity clause is broad and
may expose the tenant to third-party claims.



Overall risk is moderate.`

func TestCleanStripsDecoration(t *testing.T) {
	got := Clean("**Bold** text\n* item\n----\n\n\n\n\nend")
	assert.Equal(t, "Bold text\nitem\n\nend", got)
}

func TestBlocksClassification(t *testing.T) {
	blocks := Blocks(riskReport)
	require.Len(t, blocks, 5)

	assert.Equal(t, BlockHeading, blocks[0].Kind)
	assert.Equal(t, "RISK ANALYSIS", blocks[0].Text())

	assert.Equal(t, BlockHeading, blocks[1].Kind)
	assert.Equal(t, "Key obligations:", blocks[1].Text())

	assert.Equal(t, BlockBulletList, blocks[2].Kind)
	assert.Equal(t, []string{
		"Tenant pays rent by the 5th",
		"Tenant maintains insurance",
		"Landlord handles structural repairs",
	}, blocks[2].Items())

	assert.Equal(t, BlockParagraph, blocks[3].Kind)
	assert.Equal(t, "The indemnity clause is broad and\nmay expose the tenant to third-party claims.", blocks[3].Text())

	assert.Equal(t, BlockHeading, blocks[4].Kind)
}

func TestBlocksMixedBulletBlockIsParagraph(t *testing.T) {
	blocks := Blocks("- first\nnot a bullet")
	require.Len(t, blocks, 1)
	assert.Equal(t, BlockParagraph, blocks[0].Kind)
}

func TestBlocksSingleBulletIsList(t *testing.T) {
	blocks := Blocks("- only item.")
	require.Len(t, blocks, 1)
	assert.Equal(t, BlockBulletList, blocks[0].Kind)
}

func TestBlocksIdempotentOnCleanedText(t *testing.T) {
	inputs := []string{
		riskReport,
		"* * nested stars\n\n***emphasis***",
		"a\n\n\n\n\n\nb\n---\n-----\nc",
		"",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equalf(t, once, Clean(once), "Clean not idempotent for %q", in)
		assert.Equalf(t, Blocks(in), Blocks(once), "block structure changed for %q", in)
	}
}

func TestHTMLEscapesMarkup(t *testing.T) {
	out := HTML("Notice:\n\n<script>alert(1)</script> & more")

	assert.NotContains(t, out, "<script")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt; &amp; more")
	assert.Contains(t, out, `<h4 class="rl-heading">Notice:</h4>`)
}

func TestHTMLEscapesInsideLists(t *testing.T) {
	out := HTML("- <img src=x onerror=alert(1)>\n- ok")
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, `<ul class="rl-list"><li>&lt;img src=x onerror=alert(1)&gt;</li><li>ok</li></ul>`)
}

func TestHTMLEmptyRendersPlaceholder(t *testing.T) {
	for _, in := range []string{"", "   \n\n ", "---\n\n-----", "**"} {
		assert.Equalf(t, `<p class="rl-empty">No content</p>`, HTML(in), "HTML(%q)", in)
	}
}

func TestFormatterCustomPlaceholderIsEscaped(t *testing.T) {
	f := NewFormatter("<nothing>")
	assert.Equal(t, `<p class="rl-empty">&lt;nothing&gt;</p>`, f.HTML(""))
}

func TestHTMLParagraphKeepsLineBreaks(t *testing.T) {
	out := HTML("line one\nline two")
	assert.True(t, strings.Contains(out, "line one\nline two"), out)
	assert.Contains(t, out, `class="rl-paragraph"`)
}
