package tui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/sudotui/internal/config"
	"github.com/jask/sudotui/internal/grid"
	"github.com/jask/sudotui/internal/prefs"
	"github.com/jask/sudotui/internal/service"
	"github.com/jask/sudotui/internal/solver"
	"github.com/jask/sudotui/internal/store"
)

// App ties together views.
type App struct {
	cfg      config.Config
	store    *store.Store
	services Services
	state    appState
	modal    modalState
	current  grid.Grid
	recent   []string
	cursor   int
	input    textinput.Model
	status   string
	message  string
	msgErr   bool
	// editor launch deferred until the save notice is dismissed
	pendingEditorPath string
	lastStats         *solver.Stats
}

type Services struct {
	Solve *service.SolveService
}

type appState string

const (
	viewMenu appState = "menu"
	viewGrid appState = "grid"
)

type modalState string

const (
	modalNone       modalState = ""
	modalExportName modalState = "exportName"
	modalImportName modalState = "importName"
	modalMessage    modalState = "message"
)

var menuItems = []string{"Export Sudoku", "Import & Solve", "Exit"}

func New(cfg config.Config, st *store.Store, services Services) *App {
	in := textinput.New()
	in.CharLimit = 255
	return &App{
		cfg:      cfg,
		store:    st,
		services: services,
		state:    viewMenu,
		input:    in,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadRecent()
}

func (a *App) loadRecent() tea.Cmd {
	return func() tea.Msg {
		names, err := prefs.LoadRecent()
		if err != nil {
			return errMsg{err}
		}
		return recentMsg(names)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.state == viewGrid {
			// any key returns to the menu
			a.state = viewMenu
			return a, nil
		}
		return a.handleMenuKey(m)
	case recentMsg:
		a.recent = []string(m)
	case savedMsg:
		a.pendingEditorPath = m.path
		a.openMessage(fmt.Sprintf("File saved to %s. Opening editor...", m.path), false)
		return a, a.touchRecentCmd(m.name)
	case editorFinishedMsg:
		a.pendingEditorPath = ""
		if m.err != nil {
			a.openMessage("Editor failed: "+m.err.Error(), true)
			return a, nil
		}
		return a, a.reloadCmd(m.path)
	case reloadedMsg:
		a.current = grid.Grid(m)
		a.status = "puzzle reloaded from editor"
	case solveDoneMsg:
		a.current = m.result.Grid
		a.lastStats = &m.result.Stats
		switch m.result.Outcome {
		case solver.Solved:
			a.state = viewGrid
		case solver.TimedOut:
			a.openMessage("Solver timed out! Puzzle may not be solvable.", true)
		default:
			a.openMessage("No solution found!", true)
		}
		return a, a.touchRecentCmd(m.name)
	case messageMsg:
		a.openMessage(m.text, m.isErr)
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewGrid:
		body = a.renderGrid()
	default:
		body = a.renderMenu()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	return body
}

func (a *App) handleMenuKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c", "esc":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(menuItems)-1 {
			a.cursor++
		}
	case "enter":
		switch a.cursor {
		case 0:
			a.openPrompt(modalExportName, "Enter filename (.txt)")
		case 1:
			a.openPrompt(modalImportName, "Enter filename to import")
		default:
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalMessage:
		// any key dismisses the box
		a.modal = modalNone
		a.message = ""
		if a.pendingEditorPath != "" {
			return a, a.editorCmd(a.pendingEditorPath)
		}
		return a, nil
	case modalExportName, modalImportName:
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
			a.input.Blur()
			return a, nil
		case tea.KeyEnter:
			name := strings.TrimSpace(a.input.Value())
			mode := a.modal
			a.modal = modalNone
			a.input.Blur()
			if mode == modalExportName {
				if name == "" {
					name = store.DefaultName()
				}
				return a, a.exportCmd(name)
			}
			if name == "" {
				a.status = "enter a filename"
				return a, nil
			}
			return a, a.importCmd(name)
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(m)
		return a, cmd
	}
	return a, nil
}

func (a *App) openPrompt(mode modalState, prompt string) {
	a.modal = mode
	a.status = ""
	a.input.Prompt = prompt + ": "
	a.input.SetValue("")
	a.input.Focus()
}

func (a *App) openMessage(text string, isErr bool) {
	a.modal = modalMessage
	a.message = text
	a.msgErr = isErr
}

// commands

func (a *App) exportCmd(name string) tea.Cmd {
	g := a.current
	return func() tea.Msg {
		path, err := a.services.Solve.Export(name, g)
		if err != nil {
			return errMsg{err}
		}
		return savedMsg{name: name, path: path}
	}
}

func (a *App) importCmd(name string) tea.Cmd {
	return func() tea.Msg {
		res, err := a.services.Solve.SolveFile(name)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				text := "File not found!"
				if hint, ok := a.store.Suggest(name); ok {
					text += " Did you mean " + hint + "?"
				}
				return messageMsg{text: text, isErr: true}
			}
			return errMsg{err}
		}
		return solveDoneMsg{name: name, result: res}
	}
}

func (a *App) editorCmd(path string) tea.Cmd {
	parts := strings.Fields(a.cfg.Editor.Command)
	if len(parts) == 0 {
		parts = []string{"nano"}
	}
	args := append(parts[1:], path)
	c := exec.Command(parts[0], args...)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	})
}

func (a *App) reloadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		g, err := a.store.Load(path)
		if err != nil {
			return errMsg{err}
		}
		return reloadedMsg(g)
	}
}

func (a *App) touchRecentCmd(name string) tea.Cmd {
	a.recent = prefs.Touch(a.recent, name)
	recent := a.recent
	return func() tea.Msg {
		if err := prefs.SaveRecent(recent); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// messages

type recentMsg []string

type savedMsg struct {
	name string
	path string
}

type editorFinishedMsg struct {
	path string
	err  error
}

type reloadedMsg grid.Grid

type solveDoneMsg struct {
	name   string
	result service.SolveResult
}

type messageMsg struct {
	text  string
	isErr bool
}

type errMsg struct{ error }

// styles
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (a *App) renderMenu() string {
	title := titleStyle.Render("Sudoku Solver - Main Menu")
	out := title + "\n"
	for i, item := range menuItems {
		marker := " "
		if i == a.cursor {
			marker = ">"
		}
		out += fmt.Sprintf("%s %s\n", marker, item)
	}
	if len(a.recent) > 0 {
		out += "\nRecent puzzles:\n"
		for _, n := range a.recent {
			out += "  " + n + "\n"
		}
	}
	out += "\n[enter] Select  [q] Quit"
	if a.lastStats != nil {
		out += fmt.Sprintf("\nLast solve: %d nodes in %v", a.lastStats.Nodes, a.lastStats.Duration.Round(time.Millisecond))
	}
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderGrid() string {
	body := strings.TrimRight(a.current.String(), "\n")
	body += "\n\nPress any key to continue..."
	return boxStyle.Render(body)
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalMessage:
		if a.msgErr {
			return boxStyle.Render(errorStyle.Render(a.message))
		}
		return boxStyle.Render(a.message)
	case modalExportName, modalImportName:
		return boxStyle.Render(a.input.View() + "\n[enter] OK  [esc] Cancel")
	default:
		return ""
	}
}
