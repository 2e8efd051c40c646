// Command xjsview is an interactive terminal browser for XJS documents.
//
// It parses the given file with the parser registered for its extension and
// presents the document tree with its attached comments and blank-line
// structure. Containers collapse and expand; a toggleable pane shows the
// program's own log stream.
//
// # Usage
//
//	xjsview [flags] <file.xjs|file.json>
//
// # Keys
//
//	up/k, down/j    move the cursor
//	left/h          collapse the selected container
//	right/l         expand the selected container
//	g, G            jump to the first / last row
//	L               toggle the log pane
//	q, ctrl+c, esc  quit
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	charmlog "charm.land/log/v2"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"go.birchlake.dev/xjs/format"
	"go.birchlake.dev/xjs/log"
)

func main() {
	os.Exit(run0())
}

func run0() int {
	logCfg := log.NewConfig()
	logCfg.RegisterFlags(pflag.CommandLine)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: xjsview [flags] <file.xjs|file.json>\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()

		return 1
	}

	path := pflag.Arg(0)

	// Logs go through a Publisher rather than stderr: the TUI owns the
	// terminal, so the log pane is the only place they can appear.
	pub := log.NewPublisher()
	defer func() { _ = pub.Close() }()

	handler, err := newLogHandler(pub, logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	slog.SetDefault(slog.New(handler))

	doc, err := format.AutoParse(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	cols, rows := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols, rows = w, h
	}

	slog.Info("loaded document", slog.String("path", path))

	m := newModel(buildTree(doc, path), pub.Subscribe(), cols, rows)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

// newLogHandler builds the slog handler feeding the log pane: the charm
// logger for the human-oriented text format, the plain structured handlers
// otherwise.
func newLogHandler(pub *log.Publisher, cfg *log.Config) (slog.Handler, error) {
	logFmt, err := log.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	if logFmt != log.FormatText {
		return cfg.NewHandler(pub)
	}

	lvl, err := charmlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	logger := charmlog.NewWithOptions(pub, charmlog.Options{
		ReportTimestamp: true,
		Level:           lvl,
	})

	return logger, nil
}

// logMsg carries one rendered log entry from the Publisher subscription.
type logMsg string

// logClosedMsg signals that the subscription channel was closed.
type logClosedMsg struct{}

// model is the bubbletea model: a flattened view of the document tree with
// per-node collapse state, plus a bounded backlog of log entries.
type model struct {
	root *node
	sub  *log.Subscription

	rows      []*node
	collapsed map[*node]bool

	cursor  int
	top     int // first visible row
	cols    int
	view    int // rows available for the tree
	height  int
	showLog bool
	logs    []string
}

const logPaneRows = 8

func newModel(root *node, sub *log.Subscription, cols, height int) *model {
	m := &model{
		root:      root,
		sub:       sub,
		collapsed: map[*node]bool{},
		cols:      cols,
		height:    height,
	}

	m.reflow()

	return m
}

func (m *model) Init() tea.Cmd {
	return m.readLog()
}

func (m *model) readLog() tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-m.sub.C()
		if !ok {
			return logClosedMsg{}
		}

		return logMsg(entry)
	}
}

// reflow recomputes the visible row list from the collapse state.
func (m *model) reflow() {
	m.rows = m.rows[:0]
	m.flatten(m.root)

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}

	m.view = m.height - 1 // status line
	if m.showLog {
		m.view -= logPaneRows
	}

	m.clampScroll()
}

func (m *model) flatten(n *node) {
	m.rows = append(m.rows, n)

	if m.collapsed[n] {
		return
	}

	for _, c := range n.children {
		m.flatten(c)
	}
}

func (m *model) clampScroll() {
	if m.view < 1 {
		m.view = 1
	}

	if m.cursor < m.top {
		m.top = m.cursor
	}

	if m.cursor >= m.top+m.view {
		m.top = m.cursor - m.view + 1
	}

	if m.top < 0 {
		m.top = 0
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.height = msg.Height
		m.reflow()

	case logMsg:
		m.logs = append(m.logs, strings.TrimRight(string(msg), "\n"))
		if len(m.logs) > 200 {
			m.logs = m.logs[len(m.logs)-200:]
		}

		return m, m.readLog()

	case logClosedMsg:
		return m, nil
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.sub.Close()

		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case "g":
		m.cursor = 0

	case "G":
		m.cursor = len(m.rows) - 1

	case "left", "h":
		n := m.rows[m.cursor]
		if len(n.children) > 0 && !m.collapsed[n] {
			m.collapsed[n] = true
			m.reflow()
		}

	case "right", "l":
		n := m.rows[m.cursor]
		if m.collapsed[n] {
			delete(m.collapsed, n)
			m.reflow()
		}

	case "L":
		m.showLog = !m.showLog
		m.reflow()
	}

	m.clampScroll()

	return m, nil
}

func (m *model) View() tea.View {
	var b strings.Builder

	end := m.top + m.view
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.top; i < end; i++ {
		b.WriteString(renderRow(m.rows[i], i == m.cursor, m.cols, m.collapsed[m.rows[i]]))
		b.WriteString("\n")
	}

	for i := end - m.top; i < m.view; i++ {
		b.WriteString("\n")
	}

	if m.showLog {
		b.WriteString(renderLogPane(m.logs, m.cols))
	}

	b.WriteString(renderStatus(m.root.label, m.cursor+1, len(m.rows), m.cols))

	v := tea.NewView(b.String())
	v.AltScreen = true

	return v
}
