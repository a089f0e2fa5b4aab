// Package bubbletea provides the terminal UI for reviewing judge verdicts.
package bubbletea

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shirinlakhani/codejudge"
)

// Panel identifies which panel is active.
type Panel int

// Panel constants.
const (
	PanelCode Panel = iota
	PanelResult
)

// Mode identifies the current interaction mode.
type Mode int

// Mode constants.
const (
	ModeReview Mode = iota
	ModeCritique
)

// ReviewModel is the Bubble Tea model for reviewing judge verdicts.
type ReviewModel struct {
	// Data
	cases        []codejudge.ReviewCase
	judgments    map[int]*codejudge.Judgment
	currentIndex int

	// UI Components
	codeViewport     viewport.Model
	resultViewport   viewport.Model
	critiqueTextarea textarea.Model

	// State
	activePanel Panel
	mode        Mode
	ready       bool

	// Rendering
	width, height int
	highlighter   codejudge.Highlighter

	// Persistence
	store      codejudge.JudgmentStore
	outputPath string

	// Export
	clipboard codejudge.Clipboard

	// Keybindings
	keymap ReviewKeyMap
}

// ReviewModelOption configures a ReviewModel.
type ReviewModelOption func(*ReviewModel)

// WithJudgmentStore sets the store for persisting judgments.
func WithJudgmentStore(store codejudge.JudgmentStore, outputPath string) ReviewModelOption {
	return func(m *ReviewModel) {
		m.store = store
		m.outputPath = outputPath
	}
}

// WithExistingJudgments loads previously recorded judgments.
func WithExistingJudgments(judgments []codejudge.Judgment) ReviewModelOption {
	return func(m *ReviewModel) {
		for i := range judgments {
			j := judgments[i]
			m.judgments[j.Index] = &j
		}
	}
}

// WithHighlighter sets the syntax highlighter for the code panel.
func WithHighlighter(h codejudge.Highlighter) ReviewModelOption {
	return func(m *ReviewModel) {
		m.highlighter = h
	}
}

// WithClipboard sets the clipboard used for case export.
func WithClipboard(c codejudge.Clipboard) ReviewModelOption {
	return func(m *ReviewModel) {
		m.clipboard = c
	}
}

// NewReviewModel creates a new ReviewModel with the given cases.
func NewReviewModel(cases []codejudge.ReviewCase, opts ...ReviewModelOption) ReviewModel {
	m := ReviewModel{
		cases:       cases,
		judgments:   make(map[int]*codejudge.Judgment),
		activePanel: PanelCode,
		mode:        ModeReview,
		keymap:      DefaultReviewKeyMap(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Init implements tea.Model.
func (m ReviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == ModeReview {
			return m.handleReviewKeys(msg)
		}
		return m.handleCritiqueKeys(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	}

	// Update the active viewport
	var cmd tea.Cmd
	if m.activePanel == PanelCode {
		m.codeViewport, cmd = m.codeViewport.Update(msg)
	} else {
		m.resultViewport, cmd = m.resultViewport.Update(msg)
	}
	return m, cmd
}

func (m ReviewModel) handleReviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextCase):
		if m.currentIndex < len(m.cases)-1 {
			m.currentIndex++
			m.updateViewportContent()
		}
		return m, nil

	case key.Matches(msg, m.keymap.PrevCase):
		if m.currentIndex > 0 {
			m.currentIndex--
			m.updateViewportContent()
		}
		return m, nil

	case key.Matches(msg, m.keymap.NextUnjudged):
		if idx := m.findNextUnjudged(); idx != -1 && idx != m.currentIndex {
			m.currentIndex = idx
			m.updateViewportContent()
		}
		return m, nil

	case key.Matches(msg, m.keymap.PrevUnjudged):
		if idx := m.findPrevUnjudged(); idx != -1 && idx != m.currentIndex {
			m.currentIndex = idx
			m.updateViewportContent()
		}
		return m, nil

	case key.Matches(msg, m.keymap.CodePanel):
		m.activePanel = PanelCode
		return m, nil

	case key.Matches(msg, m.keymap.ResultPanel):
		m.activePanel = PanelResult
		return m, nil

	case key.Matches(msg, m.keymap.HalfPageUp):
		if m.activePanel == PanelCode {
			m.codeViewport.HalfPageUp()
		} else {
			m.resultViewport.HalfPageUp()
		}
		return m, nil

	case key.Matches(msg, m.keymap.HalfPageDown):
		if m.activePanel == PanelCode {
			m.codeViewport.HalfPageDown()
		} else {
			m.resultViewport.HalfPageDown()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Pass):
		m.recordJudgment(true)
		return m, nil

	case key.Matches(msg, m.keymap.Fail):
		m.recordJudgment(false)
		return m, nil

	case key.Matches(msg, m.keymap.Critique):
		return m.enterCritiqueMode()

	case key.Matches(msg, m.keymap.CopyCase):
		m.copyCurrentCase()
		return m, nil
	}

	return m, nil
}

func (m ReviewModel) handleCritiqueKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ExitCritique):
		return m.exitCritiqueMode()
	}

	// Pass all other keys to textarea
	var cmd tea.Cmd
	m.critiqueTextarea, cmd = m.critiqueTextarea.Update(msg)
	return m, cmd
}

func (m ReviewModel) enterCritiqueMode() (tea.Model, tea.Cmd) {
	if len(m.cases) == 0 {
		return m, nil
	}

	// Initialize textarea with existing critique if any
	ta := textarea.New()
	ta.Placeholder = "Enter detailed critique..."
	ta.ShowLineNumbers = false
	ta.SetWidth(m.width - 4)
	ta.SetHeight(m.height - 6)

	if j := m.judgments[m.currentIndex]; j != nil && j.Critique != "" {
		ta.SetValue(j.Critique)
	}

	ta.Focus()
	m.critiqueTextarea = ta
	m.mode = ModeCritique

	return m, textarea.Blink
}

func (m ReviewModel) exitCritiqueMode() (tea.Model, tea.Cmd) {
	// Save critique to judgment
	if len(m.cases) > 0 {
		critique := m.critiqueTextarea.Value()

		// Get or create judgment
		j := m.judgments[m.currentIndex]
		if j == nil {
			j = &codejudge.Judgment{
				InputID:  m.cases[m.currentIndex].Result.InputID(),
				Index:    m.currentIndex,
				JudgedAt: time.Now(),
			}
			m.judgments[m.currentIndex] = j
		}
		j.Critique = critique
		j.JudgedAt = time.Now()

		m.persistJudgments()
	}

	m.mode = ModeReview
	return m, nil
}

func (m *ReviewModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Reserve: judgment bar (1), status bar (2), panel headers (3)
	usableHeight := msg.Height - 6
	if usableHeight < 2 {
		usableHeight = 2 // Minimum height for tiny terminals
	}
	codeHeight := usableHeight * 50 / 100
	resultHeight := usableHeight - codeHeight

	if !m.ready {
		m.codeViewport = viewport.New(msg.Width, codeHeight)
		m.resultViewport = viewport.New(msg.Width, resultHeight)
		m.updateViewportContent()
		m.ready = true
	} else {
		m.codeViewport.Width = msg.Width
		m.codeViewport.Height = codeHeight
		m.resultViewport.Width = msg.Width
		m.resultViewport.Height = resultHeight
	}

	return m, nil
}

func (m *ReviewModel) updateViewportContent() {
	if len(m.cases) == 0 {
		m.codeViewport.SetContent("No cases loaded")
		m.resultViewport.SetContent("")
		return
	}

	c := m.cases[m.currentIndex]

	code := c.Code
	if code == "" {
		code = "[code not available for this case]"
	} else if m.highlighter != nil {
		code = m.highlighter.Highlight(code)
	}
	m.codeViewport.SetContent(code)
	m.codeViewport.GotoTop()

	var resultContent strings.Builder
	resultContent.WriteString(renderResult(c.Result))

	// Add critique if present (full text, not truncated)
	if j := m.judgments[m.currentIndex]; j != nil && j.Critique != "" {
		resultContent.WriteString("\n\nCRITIQUE:\n")
		resultContent.WriteString(j.Critique)
	}

	m.resultViewport.SetContent(resultContent.String())
	m.resultViewport.GotoTop()
}

// renderResult pretty-prints a verdict for the result panel.
func renderResult(r codejudge.Result) string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", r)
	}
	return string(data)
}

func (m *ReviewModel) recordJudgment(pass bool) {
	if len(m.cases) == 0 {
		return
	}

	// Preserve existing critique when toggling pass/fail
	var critique string
	if existing := m.judgments[m.currentIndex]; existing != nil {
		critique = existing.Critique
	}

	m.judgments[m.currentIndex] = &codejudge.Judgment{
		InputID:  m.cases[m.currentIndex].Result.InputID(),
		Index:    m.currentIndex,
		Judged:   true,
		Pass:     pass,
		Critique: critique,
		JudgedAt: time.Now(),
	}

	m.persistJudgments()
}

func (m *ReviewModel) copyCurrentCase() {
	if m.clipboard == nil || len(m.cases) == 0 {
		return
	}
	data, err := json.MarshalIndent(m.cases[m.currentIndex], "", "  ")
	if err != nil {
		return
	}
	// Best-effort copy - errors don't block the UI
	_ = m.clipboard.Copy(string(data))
}

// isUnjudged returns true if the case at the given index hasn't been judged.
func (m ReviewModel) isUnjudged(idx int) bool {
	if idx < 0 || idx >= len(m.cases) {
		return false
	}
	j := m.judgments[idx]
	return j == nil || !j.Judged
}

// findNextUnjudged returns the index of the next unjudged case, wrapping around.
// Returns -1 if no unjudged cases exist.
func (m ReviewModel) findNextUnjudged() int {
	n := len(m.cases)
	if n == 0 {
		return -1
	}
	for i := 1; i <= n; i++ {
		idx := (m.currentIndex + i) % n
		if m.isUnjudged(idx) {
			return idx
		}
	}
	return -1
}

// findPrevUnjudged returns the index of the previous unjudged case, wrapping around.
// Returns -1 if no unjudged cases exist.
func (m ReviewModel) findPrevUnjudged() int {
	n := len(m.cases)
	if n == 0 {
		return -1
	}
	for i := 1; i <= n; i++ {
		idx := (m.currentIndex - i + n) % n
		if m.isUnjudged(idx) {
			return idx
		}
	}
	return -1
}

func (m *ReviewModel) persistJudgments() {
	if m.store == nil || m.outputPath == "" {
		return
	}
	judgments := make([]codejudge.Judgment, 0, len(m.judgments))
	for _, j := range m.judgments {
		judgments = append(judgments, *j)
	}
	// Sort by index for deterministic output
	sort.Slice(judgments, func(i, k int) bool {
		return judgments[i].Index < judgments[k].Index
	})
	// Best-effort save - errors don't block the UI
	_ = m.store.Save(m.outputPath, judgments)
}

// View implements tea.Model.
func (m ReviewModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Critique mode shows full-screen textarea
	if m.mode == ModeCritique {
		return m.renderCritiqueView()
	}

	var s strings.Builder

	codeHeader := m.renderPanelHeader("CODE", m.activePanel == PanelCode)
	s.WriteString(codeHeader)
	s.WriteString("\n")
	s.WriteString(m.codeViewport.View())
	s.WriteString("\n")

	resultHeader := m.renderPanelHeader("RESULT", m.activePanel == PanelResult)
	s.WriteString(resultHeader)
	s.WriteString("\n")
	s.WriteString(m.resultViewport.View())
	s.WriteString("\n")

	s.WriteString(m.renderJudgmentBar())
	s.WriteString("\n")

	s.WriteString(m.renderStatusBar())

	return s.String()
}

func (m ReviewModel) renderCritiqueView() string {
	var s strings.Builder

	header := lipgloss.NewStyle().Bold(true).Render("CRITIQUE")
	s.WriteString(header)
	s.WriteString("\n\n")
	s.WriteString(m.critiqueTextarea.View())
	s.WriteString("\n\n")
	s.WriteString(lipgloss.NewStyle().Faint(true).Render("[Esc] save and exit"))

	return s.String()
}

func (m ReviewModel) renderPanelHeader(name string, active bool) string {
	style := lipgloss.NewStyle().Bold(true)
	if active {
		return style.Render(fmt.Sprintf("%s [active]", name))
	}
	return style.Render(name)
}

func (m ReviewModel) renderJudgmentBar() string {
	if len(m.cases) == 0 {
		return ""
	}

	j := m.judgments[m.currentIndex]

	passMarker := "○"
	failMarker := "○"
	critique := "[not set]"

	if j != nil {
		if j.Judged {
			if j.Pass {
				passMarker = "●"
			} else {
				failMarker = "●"
			}
		}
		if j.Critique != "" {
			critique = j.Critique
			if len(critique) > 30 {
				critique = critique[:27] + "..."
			}
		}
	}

	return fmt.Sprintf("%s Pass  %s Fail    Critique: %s", passMarker, failMarker, critique)
}

func (m ReviewModel) renderStatusBar() string {
	if len(m.cases) == 0 {
		return "No cases"
	}

	// Count judged cases and build indicator string
	judged := 0
	var indicators []string
	for i := range m.cases {
		j, ok := m.judgments[i]
		if !ok {
			indicators = append(indicators, "○") // unjudged
		} else if !j.Judged {
			// Has a critique but not explicitly passed/failed
			indicators = append(indicators, "●")
		} else {
			judged++
			if j.Pass {
				indicators = append(indicators, "✓")
			} else {
				indicators = append(indicators, "✗")
			}
		}
	}

	caseInfo := fmt.Sprintf("case %d/%d", m.currentIndex+1, len(m.cases))
	id := m.cases[m.currentIndex].Result.InputID()
	progress := fmt.Sprintf("%d/%d reviewed", judged, len(m.cases))
	indicatorBar := strings.Join(indicators, " ")
	help := "[d]code [s]result [p]ass [f]ail [c]ritique [y]ank [u/U]unjudged [q]uit"

	return fmt.Sprintf("%s (%s) │ %s │ %s │ %s", caseInfo, id, progress, indicatorBar, help)
}
