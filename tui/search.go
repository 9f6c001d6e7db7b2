// Package tui provides the Bubble Tea view-state controllers: a search
// screen with scope filters and cursor pagination, and a chat screen over
// the question-answering service. Models are pure state machines driven by
// messages, so tests exercise Update directly without a terminal.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkowalczyk/docdeck"
)

// searchState is the search screen's lifecycle state.
type searchState int

const (
	stateIdle searchState = iota
	stateSearching
	stateShowingResults
	stateShowingError
)

// searchResultMsg carries a completed search back into the model. seq ties
// the completion to the request that started it; a completion whose seq no
// longer matches the model's is a superseded request and is discarded.
type searchResultMsg struct {
	seq    int
	page   *docdeck.SearchPage
	err    error
	append bool
}

// SearchModel is the Bubble Tea model for the search screen.
type SearchModel struct {
	searches docdeck.SearchService

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	state searchState
	query docdeck.SearchQuery

	// results accumulates pages in arrival order; seen dedups documents
	// that appear on more than one page.
	results    []docdeck.SearchResult
	seen       map[string]bool
	nextCursor string
	total      int

	cursor int
	errMsg string
	seq    int
	ready  bool
}

// NewSearchModel creates a search screen over the given service.
func NewSearchModel(searches docdeck.SearchService) SearchModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search documents"
	ti.Focus()

	return SearchModel{
		searches: searches,
		input:    ti,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport: viewport.New(0, 0),
		seen:     make(map[string]bool),
	}
}

// Init starts the input cursor blink.
func (m SearchModel) Init() tea.Cmd { return textinput.Blink }

// SetFolderScope restricts subsequent searches to the folder, clearing any
// document scope, and resets accumulated pages and the selection cursor.
func (m SearchModel) SetFolderScope(folderID string) SearchModel {
	m.query.Scope = m.query.Scope.WithFolder(folderID)
	return m.resetPages()
}

// SetDocumentScope restricts subsequent searches to the document, clearing
// any folder scope, and resets accumulated pages and the selection cursor.
func (m SearchModel) SetDocumentScope(documentID string) SearchModel {
	m.query.Scope = m.query.Scope.WithDocument(documentID)
	return m.resetPages()
}

// ClearScope removes any folder or document restriction.
func (m SearchModel) ClearScope() SearchModel {
	m.query.Scope = docdeck.Scope{}
	return m.resetPages()
}

// Scope returns the scope the next search request will carry.
func (m SearchModel) Scope() docdeck.Scope { return m.query.Scope }

// Results returns the accumulated results in arrival order.
func (m SearchModel) Results() []docdeck.SearchResult { return m.results }

// Selected returns the result under the cursor, or false when empty.
func (m SearchModel) Selected() (docdeck.SearchResult, bool) {
	if len(m.results) == 0 {
		return docdeck.SearchResult{}, false
	}
	return m.results[m.cursor], true
}

// Err returns the current error message, empty when none.
func (m SearchModel) Err() string { return m.errMsg }

// HasMorePages reports whether the backend advertised another page.
func (m SearchModel) HasMorePages() bool { return m.nextCursor != "" }

func (m SearchModel) resetPages() SearchModel {
	m.results = nil
	m.seen = make(map[string]bool)
	m.nextCursor = ""
	m.total = 0
	m.cursor = 0
	return m
}

// Update handles key, window, and completion messages.
func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.viewport.Width = msg.Width
		m.viewport.Height = maxInt(3, msg.Height-6)
		m.viewport.SetContent(m.renderResults())
		return m, nil

	case spinner.TickMsg:
		if m.state != stateSearching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchResultMsg:
		return m.applyResult(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			return m.startSearch(text)
		case "down":
			if m.cursor < len(m.results)-1 {
				m.cursor++
				m.viewport.SetContent(m.renderResults())
			}
			return m, nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
				m.viewport.SetContent(m.renderResults())
			}
			return m, nil
		case "ctrl+n":
			return m.loadNextPage()
		case "ctrl+s":
			if m.query.Mode == docdeck.ModeSemantic {
				m.query.Mode = docdeck.ModeKeyword
			} else {
				m.query.Mode = docdeck.ModeSemantic
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startSearch begins a fresh search, discarding accumulated pages.
func (m SearchModel) startSearch(text string) (tea.Model, tea.Cmd) {
	m = m.resetPages()
	m.query.Text = text
	m.query.Cursor = ""
	m.state = stateSearching
	m.errMsg = ""
	m.seq++

	return m, tea.Batch(m.spinner.Tick, m.fetch(m.query, m.seq, false))
}

// loadNextPage requests the page after the last one received. Results are
// appended, never replacing what is already on screen.
func (m SearchModel) loadNextPage() (tea.Model, tea.Cmd) {
	if m.nextCursor == "" || m.state == stateSearching {
		return m, nil
	}
	query := m.query
	query.Cursor = m.nextCursor
	m.state = stateSearching
	m.seq++

	return m, tea.Batch(m.spinner.Tick, m.fetch(query, m.seq, true))
}

func (m SearchModel) fetch(query docdeck.SearchQuery, seq int, appendPage bool) tea.Cmd {
	return func() tea.Msg {
		page, err := m.searches.Search(context.Background(), query)
		return searchResultMsg{seq: seq, page: page, err: err, append: appendPage}
	}
}

// applyResult merges a completion into the model. Completions from
// superseded requests are dropped so a slow page can never clobber a newer
// search.
func (m SearchModel) applyResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}
	if msg.err != nil {
		m.state = stateShowingError
		m.errMsg = docdeck.UserMessage(msg.err)
		return m, nil
	}

	if !msg.append {
		m = m.resetPagesKeepingQuery()
	}
	for _, r := range msg.page.Results {
		if m.seen[r.DocumentID] {
			continue
		}
		m.seen[r.DocumentID] = true
		m.results = append(m.results, r)
	}
	m.nextCursor = msg.page.NextCursor
	if msg.page.Total > 0 {
		m.total = msg.page.Total
	}
	m.state = stateShowingResults
	m.viewport.SetContent(m.renderResults())
	return m, nil
}

func (m SearchModel) resetPagesKeepingQuery() SearchModel {
	m.results = nil
	m.seen = make(map[string]bool)
	m.nextCursor = ""
	m.cursor = 0
	return m
}

// View renders the search screen.
func (m SearchModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := titleStyle.Render("docdeck search")
	if !m.query.Scope.IsZero() {
		header += "  " + scopeStyle.Render(m.scopeLabel())
	}

	var status string
	switch m.state {
	case stateSearching:
		status = m.spinner.View() + " searching"
	case stateShowingResults:
		status = fmt.Sprintf("%d of %d results", len(m.results), m.total)
		if m.nextCursor != "" {
			status += "  (ctrl+n for more)"
		}
	case stateShowingError:
		status = errorStyle.Render(m.errMsg)
	default:
		status = "type a query and press enter"
	}

	return header + "\n" +
		boxStyle.Render(m.viewport.View()) + "\n" +
		boxStyle.Render(m.input.View()) + "\n" +
		statusStyle.Render(status)
}

func (m SearchModel) scopeLabel() string {
	if m.query.Scope.FolderID != "" {
		return "folder: " + m.query.Scope.FolderID
	}
	return "document: " + m.query.Scope.DocumentID
}

func (m SearchModel) renderResults() string {
	if len(m.results) == 0 {
		return "No results yet."
	}
	var b strings.Builder
	for i, r := range m.results {
		line := fmt.Sprintf("%s  %.2f", r.Title, r.Score)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
		if i == m.cursor && r.Excerpt != "" {
			b.WriteString(excerptStyle.Render("  "+r.Excerpt) + "\n")
		}
	}
	return b.String()
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	scopeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	excerptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
