package sections

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

func TestParseSingleSection(t *testing.T) {
	md := "**Section 1.\n- Original: \"foo\"\n- Revised: \"bar\"\n**Change:** \"renamed\""

	got := Parse(md)
	require.Equal(t, 1, got.TotalSections)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "Section 1", got.Sections[0].Name)
	assert.Equal(t, []Item{{
		Original:    "foo",
		Revised:     "bar",
		Kind:        KindChange,
		Description: "renamed",
	}}, got.Sections[0].Items)
}

func TestParseWithoutDelimiterIsEmpty(t *testing.T) {
	got, dropped := NewParser("").ParseReport(readFixture(t, "freeform.md"))
	assert.Empty(t, got.Sections)
	assert.NotNil(t, got.Sections)
	assert.Equal(t, 0, got.TotalSections)

	require.Len(t, dropped, 3)
	for _, d := range dropped {
		assert.Equal(t, reasonPreamble, d.Reason)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   \n\n", "**Section", "**Section\n\n**Section  "} {
		got := Parse(in)
		assert.Equalf(t, 0, got.TotalSections, "Parse(%q)", in)
	}
}

func TestParseLeaseReviewSample(t *testing.T) {
	got, dropped := NewParser(DefaultDelimiter).ParseReport(readFixture(t, "lease_review.md"))

	names := make([]string, 0, len(got.Sections))
	for _, s := range got.Sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"Section 1. Parties",
		"Section 4: Rent and Deposit",
		"Section 9. Termination",
		"Section 15. Governing Law",
	}, names)
	assert.Equal(t, 4, got.TotalSections)
	assert.Equal(t, 5, got.ItemCount())

	rent := got.Sections[1].Items
	require.Len(t, rent, 2)
	assert.Equal(t, KindChange, rent[0].Kind)
	assert.Equal(t, "Rent increased and due date moved earlier", rent[0].Description)
	assert.Equal(t, "", rent[1].Original)
	assert.Equal(t, "A late fee of 2% per week applies to overdue rent", rent[1].Revised)
	assert.Equal(t, KindAddition, rent[1].Kind)

	term := got.Sections[2].Items[0]
	assert.Equal(t, KindNone, term.Kind)
	assert.Equal(t, term.Original, term.Revised)

	law := got.Sections[3].Items[0]
	assert.Equal(t, KindShift, law.Kind)
	assert.Equal(t, "Jurisdiction moved to Pune and made exclusive", law.Description)

	require.Len(t, dropped, 1)
	assert.Equal(t, Dropped{
		Section: "Section 12",
		Line:    "Overall the indemnity clause is unchanged.",
		Reason:  reasonUnrecognized,
	}, dropped[0])
}

func TestParseOrphanLinesAreReported(t *testing.T) {
	got, dropped := NewParser("").ParseReport(readFixture(t, "orphans.md"))

	require.Len(t, got.Sections, 1)
	assert.Equal(t, []Item{{Original: "Twelve months", Kind: KindShift, Description: "Term shortened"}}, got.Sections[0].Items)

	require.Len(t, dropped, 2)
	assert.Equal(t, reasonNoItem, dropped[0].Reason)
	assert.Equal(t, `- Revised: "Eleven months"`, dropped[0].Line)
	assert.Equal(t, reasonNoItem, dropped[1].Reason)
}

func TestParseBlankHeadingFallsBackToGeneral(t *testing.T) {
	got := Parse("**Section**\n- Original: \"a\"\n- Revised: \"b\"")
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "General", got.Sections[0].Name)
}

func TestParseNameOnFollowingLine(t *testing.T) {
	c, dropped := NewParser("").ParseReport("**Section\n1. Rent\n- Original: \"a\"\n- Revised: \"b\"")
	assert.Empty(t, dropped)
	require.Len(t, c.Sections, 1)
	assert.Equal(t, "Section 1. Rent", c.Sections[0].Name)
	assert.Equal(t, []Item{{Original: "a", Revised: "b"}}, c.Sections[0].Items)

	c, dropped = NewParser("").ParseReport("**Section**\n\n**4. Deposit.**\n- Original: \"x\"\n- Revised: \"y\"")
	assert.Empty(t, dropped)
	require.Len(t, c.Sections, 1)
	assert.Equal(t, "Section 4. Deposit", c.Sections[0].Name)
}

func TestParseCustomDelimiter(t *testing.T) {
	md := "### Clause 3\n- Original: \"x\"\n**Addition:** \"y\"\n### Clause 4\n- Original: \"z\""
	c, dropped := NewParser("### Clause").ParseReport(md)
	assert.Empty(t, dropped)
	require.Len(t, c.Sections, 2)
	assert.Equal(t, "### Clause 3", c.Sections[0].Name)
	assert.Equal(t, "z", c.Sections[1].Items[0].Original)
}

func TestParseWindowsLineEndings(t *testing.T) {
	got := Parse("**Section 7.**\r\n- Original: \"old\"\r\n- Revised: \"new\"\r\n")
	require.Len(t, got.Sections, 1)
	assert.Equal(t, Item{Original: "old", Revised: "new"}, got.Sections[0].Items[0])
}

func TestComparisonJSONShape(t *testing.T) {
	b, err := json.Marshal(Parse("**Section 1.\n- Original: \"foo\"\n**Addition:** \"bar\""))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"sections": [{"section": "Section 1", "items": [{"original": "foo", "type": "Addition", "description": "bar"}]}],
		"totalSections": 1
	}`, string(b))

	empty, err := json.Marshal(Parse(""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections": [], "totalSections": 0}`, string(empty))
}

func TestChangeKindText(t *testing.T) {
	var k ChangeKind
	require.NoError(t, k.UnmarshalText([]byte("shift")))
	assert.Equal(t, KindShift, k)
	assert.Error(t, k.UnmarshalText([]byte("rename")))
	assert.Equal(t, "ChangeKind(9)", ChangeKind(9).String())
}
