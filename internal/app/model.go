package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"redline/internal/clipboard"
	"redline/internal/present"
	"redline/internal/pretty"
	"redline/internal/sections"
	"redline/internal/wordfreq"
)

type focusPane int

const (
	focusOld focusPane = iota
	focusNew
	focusSections
)

const alertDuration = 3 * time.Second

type clipboardResultMsg struct {
	err error
}

type alertTickMsg struct{}

// Input is everything the viewer shows.
type Input struct {
	OldName   string
	NewName   string
	OldText   string
	NewText   string
	Report    sections.Comparison
	Dropped   int // report lines the section parser could not place
	DiffOpts  []wordfreq.Option
	Formatter *pretty.Formatter
}

// Model is the Bubble Tea state container for the comparison viewer.
type Model struct {
	keys    KeyMap
	focus   focusPane
	palette present.Palette
	input   Input
	result  wordfreq.Result
	copyFn  func(ctx context.Context, text string) error

	width  int
	height int
	ready  bool

	oldView viewport.Model
	newView viewport.Model
	secView viewport.Model
	synced  bool

	filterInput  textinput.Model
	filterActive bool
	filtered     sections.Comparison

	helpOpen   bool
	alertMsg   string
	alertUntil time.Time
}

func NewModel(in Input) Model {
	if in.Formatter == nil {
		in.Formatter = pretty.NewFormatter("")
	}
	if in.OldName == "" {
		in.OldName = "old"
	}
	if in.NewName == "" {
		in.NewName = "new"
	}

	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "section name"
	filter.CharLimit = 256
	filter.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	filter.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	m := Model{
		keys:        defaultKeyMap(),
		focus:       focusOld,
		palette:     present.NewPalette(os.Stdout, true),
		input:       in,
		result:      wordfreq.Diff(in.OldText, in.NewText, in.DiffOpts...),
		copyFn:      clipboard.CopyText,
		synced:      true,
		filterInput: filter,
		filtered:    in.Report,
		oldView:     viewport.New(1, 1),
		newView:     viewport.New(1, 1),
		secView:     viewport.New(1, 1),
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return alertTickCmd()
}

func (m Model) hasSections() bool {
	return m.input.Report.TotalSections > 0
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizePanes()
		return m, nil

	case clipboardResultMsg:
		if msg.err != nil {
			m.setAlert(fmt.Sprintf("copy failed: %v", msg.err))
		} else {
			m.setAlert(fmt.Sprintf("copied %d section(s) as HTML", m.filtered.TotalSections))
		}
		return m, nil

	case alertTickMsg:
		if m.alertMsg != "" && time.Now().After(m.alertUntil) {
			m.alertMsg = ""
		}
		return m, alertTickCmd()

	case tea.KeyMsg:
		if m.filterActive {
			return m.updateFilter(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpOpen = !m.helpOpen
		return m, nil

	case key.Matches(msg, m.keys.ToggleFocus):
		m.focus++
		if m.focus > focusSections || (m.focus == focusSections && !m.hasSections()) {
			m.focus = focusOld
		}
		return m, nil

	case key.Matches(msg, m.keys.SyncScroll):
		m.synced = !m.synced
		if m.synced {
			m.newView.SetYOffset(m.oldView.YOffset)
			m.setAlert("scrolling synced")
		} else {
			m.setAlert("scrolling independent")
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		if !m.hasSections() {
			m.setAlert("no sections to filter")
			return m, nil
		}
		m.filterActive = true
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.Copy):
		if !m.hasSections() {
			m.setAlert("no sections to copy")
			return m, nil
		}
		return m, m.copySectionsCmd()

	case key.Matches(msg, m.keys.Up):
		m.scroll(-1)
	case key.Matches(msg, m.keys.Down):
		m.scroll(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-max(m.focusedView().Height-1, 1))
	case key.Matches(msg, m.keys.PageDown):
		m.scroll(max(m.focusedView().Height-1, 1))
	case key.Matches(msg, m.keys.Top):
		m.scrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.scrollTo(-1)
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterActive = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.applyFilter()
		return m, nil
	case tea.KeyEnter:
		m.filterActive = false
		m.filterInput.Blur()
		m.focus = focusSections
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *Model) applyFilter() {
	m.filtered = m.input.Report.Filter(m.filterInput.Value())
	m.secView.SetContent(m.sectionsContent(m.secView.Width))
	m.secView.GotoTop()
}

func (m *Model) focusedView() *viewport.Model {
	switch m.focus {
	case focusNew:
		return &m.newView
	case focusSections:
		return &m.secView
	}
	return &m.oldView
}

func (m *Model) scroll(delta int) {
	vp := m.focusedView()
	vp.SetYOffset(vp.YOffset + delta)
	m.syncViews()
}

// scrollTo moves the focused pane to line; a negative line means the end.
func (m *Model) scrollTo(line int) {
	vp := m.focusedView()
	if line < 0 {
		vp.GotoBottom()
	} else {
		vp.SetYOffset(line)
	}
	m.syncViews()
}

func (m *Model) syncViews() {
	if !m.synced {
		return
	}
	switch m.focus {
	case focusOld:
		m.newView.SetYOffset(m.oldView.YOffset)
	case focusNew:
		m.oldView.SetYOffset(m.newView.YOffset)
	}
}

func (m *Model) resizePanes() {
	if !m.ready {
		return
	}
	bodyHeight := max(m.height-2, 2) // header and footer
	oldW, newW := paneWidths(m.width)
	topH, bottomH := paneHeights(bodyHeight, m.hasSections())

	// One line of each pane holds its title.
	m.oldView.Width, m.oldView.Height = oldW, max(topH-1, 1)
	m.newView.Width, m.newView.Height = newW, max(topH-1, 1)
	m.secView.Width, m.secView.Height = max(m.width-borderOverhead, 1), max(bottomH-1, 1)
	m.refreshContent()
}

func (m *Model) refreshContent() {
	oldSpans := wordfreq.Highlight(m.input.OldText, m.result.Removals, m.input.DiffOpts...)
	newSpans := wordfreq.Highlight(m.input.NewText, m.result.Additions, m.input.DiffOpts...)

	m.oldView.SetContent(wrapText(present.Spans(oldSpans, m.palette.Removed), m.oldView.Width))
	m.newView.SetContent(wrapText(present.Spans(newSpans, m.palette.Added), m.newView.Width))
	m.secView.SetContent(m.sectionsContent(m.secView.Width))
}

func wrapText(s string, width int) string {
	if s == "" {
		return ""
	}
	return lipgloss.NewStyle().Width(max(width, 1)).Render(s)
}

func (m Model) sectionsContent(width int) string {
	if m.filtered.TotalSections == 0 {
		return m.palette.Muted.Render("No sections match.")
	}
	var lines []string
	for _, sec := range m.filtered.Sections {
		lines = append(lines, m.palette.Title.Render(sec.Name))
		for _, it := range sec.Items {
			label := it.Kind.String()
			if label == "" {
				label = "Item"
			}
			head := "  " + label
			if it.Description != "" {
				head += ": " + it.Description
			}
			lines = append(lines, head)
			if it.Original != "" {
				lines = append(lines, "    "+m.palette.Removed.Render(it.Original))
			}
			if it.Revised != "" {
				lines = append(lines, "    "+m.palette.Added.Render(it.Revised))
			}
		}
	}
	return wrapText(strings.Join(lines, "\n"), width)
}

func (m Model) copySectionsCmd() tea.Cmd {
	html := m.input.Formatter.TreeHTML(m.filtered.Tree())
	copyFn := m.copyFn
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return clipboardResultMsg{err: copyFn(ctx, html)}
	}
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.helpOpen {
		return m.helpText()
	}

	added, removed := m.result.Counts()
	header := fmt.Sprintf("redline  %s  %s  sections: %d",
		m.palette.Added.Render(fmt.Sprintf("+%d", added)),
		m.palette.Removed.Render(fmt.Sprintf("-%d", removed)),
		m.input.Report.TotalSections)
	if m.input.Dropped > 0 {
		header += "  " + m.palette.Muted.Render(fmt.Sprintf("%d dropped", m.input.Dropped))
	}
	header = ansi.Truncate(header, m.width, "…")

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPane(m.input.OldName, m.oldView, m.focus == focusOld),
		m.renderPane(m.input.NewName, m.newView, m.focus == focusNew),
	)
	body := top
	if m.hasSections() {
		title := fmt.Sprintf("sections (%d/%d)", m.filtered.TotalSections, m.input.Report.TotalSections)
		body = lipgloss.JoinVertical(lipgloss.Left, top, m.renderPane(title, m.secView, m.focus == focusSections))
	}

	footer := m.palette.Muted.Render("tab switch | j/k scroll | / filter | y copy | ? help | q quit")
	switch {
	case m.filterActive:
		footer = m.filterInput.View()
	case m.alertMsg != "":
		footer = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Render(m.alertMsg)
	}
	footer = ansi.Truncate(footer, m.width, "…")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderPane(title string, vp viewport.Model, focused bool) string {
	border := lipgloss.Color("240")
	if focused {
		border = lipgloss.Color("63")
	}
	label := ansi.Truncate(title, max(vp.Width-2, 1), "…")
	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(label),
		vp.View(),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(vp.Width).
		Height(vp.Height + 1).
		MaxHeight(vp.Height + 1 + borderOverhead).
		Render(content)
}

func (m Model) helpText() string {
	lines := []string{"redline viewer", ""}
	for _, b := range m.keys.all() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("  %-8s %s", h.Key, h.Desc))
	}
	lines = append(lines, "", "Removed words are marked in the old pane, added words in the new pane.")
	return strings.Join(lines, "\n")
}

func alertTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return alertTickMsg{} })
}

func (m *Model) setAlert(msg string) {
	m.alertMsg = msg
	m.alertUntil = time.Now().Add(alertDuration)
}
