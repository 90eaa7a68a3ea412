// Package shellui provides the interactive terminal UI for devcon.
// The UI is split across files:
//   - model.go: types, Init, Update loop, line submission
//   - view.go: rendering
//
// Every submitted line goes through Shell.RunLine; the UI only displays what
// the dispatch produced and never interprets commands itself.
package shellui

import (
	"fmt"
	"strconv"
	"strings"

	"devcon/internal/builtin"
	"devcon/internal/config"
	"devcon/internal/console"
	"devcon/internal/history"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// entryKind classifies transcript entries for styling.
type entryKind int

const (
	entryInput entryKind = iota
	entryOutput
	entryError
	entryMarkdown
)

type entry struct {
	kind entryKind
	text string
}

// ConfigReloadedMsg is sent by the config watcher when the file changes.
// Applying it on the Update goroutine keeps the shell single-threaded.
type ConfigReloadedMsg struct {
	Cfg *config.Config
}

// hostState is the externally-owned storage behind the console variables.
// It lives on the heap and is shared across bubbletea model copies.
type hostState struct {
	prompt    string
	histLimit int
	echoArgs  bool
	quit      bool
	clear     bool
	out       []entry // builtin Printer output for the current dispatch
}

// Printf implements builtin.Printer.
func (h *hostState) Printf(format string, args ...any) {
	h.out = append(h.out, entry{kind: entryOutput, text: fmt.Sprintf(format, args...)})
}

// Markdown implements builtin.Printer.
func (h *hostState) Markdown(md string) {
	h.out = append(h.out, entry{kind: entryMarkdown, text: md})
}

// Model is the bubbletea model for the console UI.
type Model struct {
	shell *console.Shell
	state *hostState
	log   *zap.Logger

	store     *history.Store // nil when history is disabled
	sessionID string

	textinput textinput.Model
	viewport  viewport.Model
	renderer  *glamour.TermRenderer

	transcript []entry
	recall     []string // submitted lines for up/down recall
	recallPos  int      // len(recall) means "not recalling"

	width, height int
	ready         bool
}

// New builds the UI model, the shell behind it, and the variable bindings.
// store may be nil when history is disabled.
func New(cfg *config.Config, log *zap.Logger, level zap.AtomicLevel, store *history.Store) Model {
	state := &hostState{
		prompt:    cfg.Prompt,
		histLimit: cfg.History.Limit,
	}

	sh := console.New()

	opts := builtin.Options{
		Quit:     func() { state.quit = true },
		Clear:    func() { state.clear = true },
		EchoArgs: func() bool { return state.echoArgs },
	}
	if store != nil {
		opts.History = func(n int) ([]string, error) {
			entries, err := store.Recent(n)
			if err != nil {
				return nil, err
			}
			lines := make([]string, len(entries))
			for i, e := range entries {
				lines[i] = e.Line
			}
			return lines, nil
		}
	}
	builtin.RegisterAll(sh, state, opts)
	registerHostVars(sh, state, level)

	ti := textinput.New()
	ti.Prompt = state.prompt
	ti.Placeholder = "type a command, HELP lists them"
	ti.Focus()

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)

	m := Model{
		shell:     sh,
		state:     state,
		log:       log,
		store:     store,
		sessionID: fmt.Sprintf("sess_%s", uuid.NewString()),
		textinput: ti,
		renderer:  renderer,
		recallPos: 0,
	}
	m.transcript = append(m.transcript, entry{kind: entryMarkdown, text: welcome})
	m.seedRecall()
	return m
}

const welcome = "# devcon\n\nType `HELP` for the command list. Commands are case-insensitive.\n"

// registerHostVars binds the console variables to their live storage.
func registerHostVars(sh *console.Shell, state *hostState, level zap.AtomicLevel) {
	sh.RegisterVar("prompt", console.StringVar(
		func() string { return state.prompt },
		func(v string) { state.prompt = v },
	))
	sh.RegisterVar("histlimit", console.IntVar(
		func() int { return state.histLimit },
		func(v int) { state.histLimit = v },
	))
	sh.RegisterVar("echoargs", console.BoolVar(
		func() bool { return state.echoArgs },
		func(v bool) { state.echoArgs = v },
	))
	sh.RegisterVar("loglevel", console.EnumVar(logLevels,
		func() int { return levelIndex(level.Level()) },
		func(v int) { level.SetLevel(indexLevel(v)) },
	))
}

// seedRecall preloads up-arrow recall from persisted history.
func (m *Model) seedRecall() {
	if m.store == nil {
		return
	}
	entries, err := m.store.Recent(m.state.histLimit)
	if err != nil {
		m.log.Warn("failed to seed history recall", zap.Error(err))
		return
	}
	// Recent is newest first; recall wants oldest first.
	for i := len(entries) - 1; i >= 0; i-- {
		m.recall = append(m.recall, entries[i].Line)
	}
	m.recallPos = len(m.recall)
}

// Shell exposes the underlying shell for host wiring and tests.
func (m Model) Shell() *console.Shell { return m.shell }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		inputHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - inputHeight
		}
		m.textinput.Width = msg.Width - len(m.state.prompt) - 1
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit(m.textinput.Value())
		case tea.KeyUp:
			m.recallPrev()
			return m, nil
		case tea.KeyDown:
			m.recallNext()
			return m, nil
		}

	case ConfigReloadedMsg:
		m.applyConfig(msg.Cfg)
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit runs one input line through the shell and folds the results into
// the transcript.
func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	m.textinput.Reset()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.transcript = append(m.transcript, entry{kind: entryInput, text: m.state.prompt + line})
	m.recall = append(m.recall, line)
	m.recallPos = len(m.recall)

	m.state.out = nil
	m.state.clear = false
	m.shell.RunLine(line)

	m.recordHistory(line)

	if m.state.clear {
		m.transcript = nil
	} else {
		m.transcript = append(m.transcript, m.state.out...)
		if m.shell.Failed() {
			m.transcript = append(m.transcript, entry{kind: entryError, text: m.shell.LastError()})
		}
	}
	m.textinput.Prompt = m.state.prompt
	m.refreshViewport()

	if m.state.quit {
		return m, tea.Quit
	}
	return m, nil
}

// recordHistory persists the line and trims to the live HISTLIMIT value.
func (m *Model) recordHistory(line string) {
	if m.store == nil {
		return
	}
	if err := m.store.Append(m.sessionID, line, m.shell.LastError()); err != nil {
		m.log.Warn("failed to append history", zap.Error(err))
		return
	}
	if err := m.store.Trim(m.state.histLimit); err != nil {
		m.log.Warn("failed to trim history", zap.Error(err))
	}
}

// applyConfig pushes reloaded config values through the variable registry,
// so a file edit behaves exactly like a SET command.
func (m *Model) applyConfig(cfg *config.Config) {
	before := m.shell.LastError()
	m.shell.SetVar("prompt", cfg.Prompt)
	m.shell.SetVar("histlimit", strconv.Itoa(cfg.History.Limit))
	m.shell.SetVar("loglevel", strings.ToUpper(cfg.Logging.Level))
	if last := m.shell.LastError(); last != before {
		m.log.Warn("config reload produced a diagnostic", zap.String("diag", last))
	}
	m.textinput.Prompt = m.state.prompt
	m.log.Info("applied reloaded config", zap.String("prompt", cfg.Prompt))
}

func (m *Model) recallPrev() {
	if len(m.recall) == 0 || m.recallPos == 0 {
		return
	}
	m.recallPos--
	m.textinput.SetValue(m.recall[m.recallPos])
	m.textinput.CursorEnd()
}

func (m *Model) recallNext() {
	if m.recallPos >= len(m.recall) {
		return
	}
	m.recallPos++
	if m.recallPos == len(m.recall) {
		m.textinput.SetValue("")
		return
	}
	m.textinput.SetValue(m.recall[m.recallPos])
	m.textinput.CursorEnd()
}
