package main

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"go.birchlake.dev/xjs/document"
	"go.birchlake.dev/xjs/writer"
)

// node is one row of the browsable tree: a document value plus its
// rendered label and child rows.
type node struct {
	label    string
	depth    int
	children []*node
}

// buildTree flattens the parsed document into a node hierarchy using
// [document.Walk]; the walk's depth-first order matches document order, so
// a parent stack is enough to reconstruct nesting.
func buildTree(doc *document.Value, path string) *node {
	var (
		root  *node
		stack []*node
	)

	document.Walk(doc, func(key string, index, depth int, v *document.Value) {
		n := &node{label: nodeLabel(key, index, v), depth: depth}

		if depth == 0 {
			n.label = path + "  " + n.label
			root = n
			stack = []*node{n}

			return
		}

		parent := stack[depth-1]
		parent.children = append(parent.children, n)
		stack = append(stack[:depth], n)
	})

	return root
}

func nodeLabel(key string, index int, v *document.Value) string {
	var b strings.Builder

	switch {
	case key != "":
		b.WriteString(keyStyle.Render(key))
		b.WriteString(": ")
	case index >= 0:
		b.WriteString(keyStyle.Render("[" + strconv.Itoa(index) + "]"))
		b.WriteString(" ")
	}

	b.WriteString(valuePreview(v))

	if n := commentCount(v); n > 0 {
		b.WriteString(triviaStyle.Render(fmt.Sprintf("  // %d comment(s)", n)))
	}

	if blanks := v.Trivia.LinesAbove - 1; blanks > 0 {
		b.WriteString(triviaStyle.Render(fmt.Sprintf("  +%d blank", blanks)))
	}

	return b.String()
}

func valuePreview(v *document.Value) string {
	switch v.Kind() {
	case document.KindObject:
		return kindStyle.Render(fmt.Sprintf("{…} %d members", len(v.Members())))
	case document.KindArray:
		return kindStyle.Render(fmt.Sprintf("[…] %d elements", v.Len()))
	case document.KindString:
		return scalarPreview(strconv.Quote(v.Str()))
	case document.KindNumber:
		return scalarPreview(writer.FormatNumber(v.Number()))
	case document.KindBool:
		if v.Bool() {
			return scalarPreview("true")
		}

		return scalarPreview("false")
	default:
		return scalarPreview("null")
	}
}

func scalarPreview(s string) string {
	const maxPreview = 60

	runes := []rune(s)
	if len(runes) > maxPreview {
		s = string(runes[:maxPreview-1]) + "…"
	}

	return s
}

func commentCount(v *document.Value) int {
	n := 0

	for _, ct := range []document.CommentType{
		document.CommentHeader,
		document.CommentValue,
		document.CommentEOL,
		document.CommentInterior,
		document.CommentFooter,
	} {
		if _, ok := v.Trivia.Comment(ct); ok {
			n++
		}
	}

	return n
}

var (
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	triviaStyle = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("231"))
	statusStyle = lipgloss.NewStyle().Faint(true)
	paneStyle   = lipgloss.NewStyle().Faint(true)
)

func renderRow(n *node, selected bool, cols int, collapsed bool) string {
	glyph := "  "

	switch {
	case collapsed:
		glyph = "▸ "
	case len(n.children) > 0:
		glyph = "▾ "
	}

	line := strings.Repeat("  ", n.depth) + glyph + n.label
	line = truncate(line, cols)

	if selected {
		return cursorStyle.Render(line)
	}

	return line
}

func renderLogPane(logs []string, cols int) string {
	var b strings.Builder

	b.WriteString(paneStyle.Render(truncate("─ logs "+strings.Repeat("─", cols), cols)))
	b.WriteString("\n")

	show := logPaneRows - 1

	start := len(logs) - show
	if start < 0 {
		start = 0
	}

	for i := start; i < len(logs); i++ {
		b.WriteString(truncate(logs[i], cols))
		b.WriteString("\n")
	}

	for i := len(logs) - start; i < show; i++ {
		b.WriteString("\n")
	}

	return b.String()
}

func renderStatus(label string, cur, total, cols int) string {
	status := fmt.Sprintf("%s — %d/%d  j/k move  h/l fold  L logs  q quit", label, cur, total)

	return statusStyle.Render(truncate(status, cols))
}

// truncate cuts s to at most cols printable runes. Styled labels may still
// overflow slightly when ANSI sequences are present; the terminal clips the
// remainder.
func truncate(s string, cols int) string {
	runes := []rune(s)
	if cols > 0 && len(runes) > cols {
		return string(runes[:cols-1]) + "…"
	}

	return s
}
