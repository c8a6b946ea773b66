package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redline/internal/sections"
)

const reviewMarkdown = `**Section 1. Rent**
- Original: "Rent is Rs. 40,000"
- Revised: "Rent is Rs. 45,000"
  - **Change:** "Rent increased"

**Section 2. Deposit**
- Original: ""
- Revised: "Deposit is refundable"
  - **Addition:** "New refund clause"

**Section 3. Termination**
- Original: "Either party may terminate"
- Revised: "Either party may terminate"
`

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(Input{
		OldText: "rent is forty thousand per month",
		NewText: "rent is forty five thousand per month",
		Report:  sections.Parse(reviewMarkdown),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModelViewBeforeResize(t *testing.T) {
	m := NewModel(Input{})
	assert.Equal(t, "loading...", m.View())
}

func TestModelViewShowsCounts(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "+1")
	assert.Contains(t, view, "-0")
	assert.Contains(t, view, "sections (3/3)")
}

func TestModelFocusCyclesThroughSections(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, focusOld, m.focus)

	m = press(t, m, "tab")
	assert.Equal(t, focusNew, m.focus)
	m = press(t, m, "tab")
	assert.Equal(t, focusSections, m.focus)
	m = press(t, m, "tab")
	assert.Equal(t, focusOld, m.focus)
}

func TestModelFocusSkipsSectionsWhenEmpty(t *testing.T) {
	m := NewModel(Input{OldText: "a", NewText: "b"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = next.(Model)

	m = press(t, m, "tab", "tab")
	assert.Equal(t, focusOld, m.focus)
}

func TestModelFilterNarrowsSections(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "/")
	require.True(t, m.filterActive)
	m = press(t, m, "d", "e", "p")
	assert.Equal(t, 1, m.filtered.TotalSections)
	assert.Equal(t, "Section 2. Deposit", m.filtered.Sections[0].Name)

	m = press(t, m, "enter")
	assert.False(t, m.filterActive)
	assert.Equal(t, focusSections, m.focus)
	assert.Equal(t, 1, m.filtered.TotalSections)
}

func TestModelFilterEscClears(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "/", "x", "y", "z", "esc")
	assert.False(t, m.filterActive)
	assert.Equal(t, 3, m.filtered.TotalSections)
}

func TestModelCopySendsHTML(t *testing.T) {
	m := newTestModel(t)
	var copied string
	m.copyFn = func(_ context.Context, text string) error {
		copied = text
		return nil
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, clipboardResultMsg{}, msg)
	assert.True(t, strings.HasPrefix(copied, `<div class="rl-result">`), copied)
	assert.Contains(t, copied, `<h3 class="rl-key">Section 1. Rent</h3>`)
	assert.Contains(t, copied, `<p class="rl-value">Rent is Rs. 45,000</p>`)
	assert.NotContains(t, copied, "# Comparison")
	assert.NotContains(t, copied, "## ")

	next, _ = next.Update(msg)
	assert.Equal(t, "copied 3 section(s) as HTML", next.(Model).alertMsg)
}

func TestModelCopyFailureShowsAlert(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(clipboardResultMsg{err: errors.New("no clipboard")})
	assert.Equal(t, "copy failed: no clipboard", next.(Model).alertMsg)
}

func TestModelSyncedScrolling(t *testing.T) {
	m := NewModel(Input{
		OldText: strings.Repeat("old line\n", 200),
		NewText: strings.Repeat("new line\n", 200),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = next.(Model)

	m = press(t, m, "j", "j", "j")
	assert.Equal(t, 3, m.oldView.YOffset)
	assert.Equal(t, 3, m.newView.YOffset)

	m = press(t, m, "s", "j")
	assert.False(t, m.synced)
	assert.Equal(t, 4, m.oldView.YOffset)
	assert.Equal(t, 3, m.newView.YOffset)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelHeaderShowsDroppedLines(t *testing.T) {
	c, dropped := sections.NewParser("").ParseReport("- Original: \"orphan\"\n" + reviewMarkdown + "loose note\n")
	require.Len(t, dropped, 2)

	m := NewModel(Input{Report: c, Dropped: len(dropped)})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	header, _, _ := strings.Cut(ansi.Strip(next.(Model).View()), "\n")
	assert.Contains(t, header, "sections: 3  2 dropped")

	clean := newTestModel(t)
	assert.NotContains(t, ansi.Strip(clean.View()), "dropped")
}
