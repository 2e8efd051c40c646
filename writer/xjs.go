package writer

import (
	"strconv"
	"strings"

	"go.birchlake.dev/xjs/document"
	"go.birchlake.dev/xjs/implicit"
)

// WriteXJS renders v as XJS text under opts: an object root is written
// without its enclosing braces when opts.OmitRootBraces, strings prefer an
// unquoted implicit form when opts.OmitQuotes and eligible, and runs of
// siblings with no line break between them (lines_above == 0) condense
// onto one line when opts.AllowCondense.
func WriteXJS(v *document.Value, opts Options) string {
	w := &xjsWriter{opts: opts}
	w.writeDocument(v)

	return w.out.String()
}

type xjsWriter struct {
	opts Options
	out  strings.Builder
}

func (w *xjsWriter) writeDocument(v *document.Value) {
	if w.opts.OmitRootBraces && v.IsObject() && len(v.Members()) > 0 {
		w.writeOpenRoot(v)

		return
	}

	w.writeHeaderComment(v.Trivia, 0)
	w.writeValue(v, 0)
	w.writeEOLComment(v.Trivia)
	w.writeFooter(v.Trivia)
}

func (w *xjsWriter) writeOpenRoot(obj *document.Value) {
	members := obj.Members()

	if head, ok := obj.Trivia.Comment(document.CommentHeader); ok && w.opts.OutputComments {
		head.WriteTo(&w.out, document.WriteOptions{Indent: w.opts.Indent, EOL: w.opts.EOL})
		w.out.WriteString(w.opts.EOL)

		breaks := w.opts.clampSpacing(members[0].Ref.Peek().Trivia.LinesAbove)
		if breaks <= 0 {
			breaks = 1
		}

		for range breaks {
			w.out.WriteString(w.opts.EOL)
		}
	}

	var prev *document.Value

	for i, m := range members {
		val := m.Ref.Peek()

		if i > 0 {
			w.writeDelimiter(prev, val, 0)
		}

		w.writeMember(m, 0)

		prev = val
	}

	w.writeEOLComment(prev.Trivia)
	w.writeFooter(obj.Trivia)
}

func (w *xjsWriter) writeFooter(t document.Trivia) {
	if !w.opts.OutputComments {
		return
	}

	foot, ok := t.Comment(document.CommentFooter)
	if !ok {
		return
	}

	if !foot.StartsWithNewline() {
		w.out.WriteString(w.opts.EOL)
	}

	foot.WriteTo(&w.out, document.WriteOptions{Indent: w.opts.Indent, EOL: w.opts.EOL})
}

// writeMember writes one object member. The caller has already positioned
// the cursor: delimiter, line breaks, and indentation.
func (w *xjsWriter) writeMember(m *document.Member, depth int) {
	val := m.Ref.Peek()

	w.writeHeaderComment(val.Trivia, depth)
	w.writeKey(m.Key)
	w.out.WriteString(":")
	w.writeValueComment(val, depth)
	w.writeValue(val, depth)
}

// writeElement writes one array element. Cursor positioning is the
// caller's, as with writeMember.
func (w *xjsWriter) writeElement(val *document.Value, depth int) {
	w.writeHeaderComment(val.Trivia, depth)
	w.writeValue(val, depth)
}

// writeDelimiter separates next from the sibling before it: condensed
// (comma + separator, same line) when next's lines_above == 0 and
// condensing is allowed, otherwise a comma, the previous sibling's EOL
// comment, and the clamped line-break run down to a fresh indented line.
// lines_above counts line breaks, so 1 means "on the next line" and 2
// leaves one blank line. With SmartSpacing, a sibling pair where either
// side carries a HEADER comment or a non-empty container value is held
// apart by at least one blank line.
func (w *xjsWriter) writeDelimiter(prev, next *document.Value, depth int) {
	linesAbove := next.Trivia.LinesAbove

	eol, hasEOL := prev.Trivia.Comment(document.CommentEOL)
	showEOL := hasEOL && w.opts.OutputComments

	smart := w.opts.SmartSpacing && (w.smartSpaced(prev) || w.smartSpaced(next))

	w.out.WriteString(",")

	if w.opts.AllowCondense && linesAbove == 0 && !showEOL && !smart {
		w.out.WriteString(w.opts.Separator)

		return
	}

	if showEOL {
		w.out.WriteString(w.opts.Separator)
		eol.WriteTo(&w.out, document.WriteOptions{EOL: w.opts.EOL})
	}

	breaks := w.opts.clampSpacing(linesAbove)
	if breaks < 1 {
		breaks = 1
	}

	if smart && breaks < 2 {
		breaks = 2
	}

	for range breaks {
		w.out.WriteString(w.opts.EOL)
	}

	w.writeIndent(depth)
}

// smartSpaced reports whether v is the kind of member SmartSpacing sets
// off with blank lines: one carrying a HEADER comment or a non-empty
// container value.
func (w *xjsWriter) smartSpaced(v *document.Value) bool {
	if _, ok := v.Trivia.Comment(document.CommentHeader); ok && w.opts.OutputComments {
		return true
	}

	return rendersBlock(v)
}

func (w *xjsWriter) writeHeaderComment(t document.Trivia, depth int) {
	if !w.opts.OutputComments {
		return
	}

	buf, ok := t.Comment(document.CommentHeader)
	if !ok {
		return
	}

	buf.WriteTo(&w.out, document.WriteOptions{Indent: w.opts.Indent, Level: depth, EOL: w.opts.EOL, DedentLast: true})
	w.out.WriteString(w.opts.EOL)
	w.writeIndent(depth)
}

// writeValueComment writes the VALUE comment (if any) between ':' and the
// value. Per the writer's lines_between < 0 default, a comment with no
// explicit lines_between is written inline rather than forced onto its own
// line (see DESIGN.md) unless the comment's own style
// consumes to end of line (line/doc/hash), in which case the value is
// forced onto the next line regardless, since it would otherwise become
// part of the comment text.
func (w *xjsWriter) writeValueComment(val *document.Value, depth int) {
	t := val.Trivia

	buf, ok := t.Comment(document.CommentValue)
	if !ok || !w.opts.OutputComments {
		w.writeValueGap(val, depth)

		return
	}

	if t.LinesBetween > 0 || commentConsumesLine(buf) {
		w.out.WriteString(w.opts.EOL)

		for range max(t.LinesBetween-1, 0) {
			w.out.WriteString(w.opts.EOL)
		}

		w.writeIndent(depth + 1)
		buf.WriteTo(&w.out, document.WriteOptions{Indent: w.opts.Indent, Level: depth + 1, EOL: w.opts.EOL, DedentLast: true})
		w.out.WriteString(w.opts.EOL)
		w.writeIndent(depth + 1)

		return
	}

	w.out.WriteString(w.opts.Separator)
	buf.WriteTo(&w.out, document.WriteOptions{Indent: w.opts.Indent, Level: depth, EOL: w.opts.EOL, DedentLast: true})
	w.writeValueGap(val, depth)
}

// writeValueGap writes whatever sits between a member's ':' (or its VALUE
// comment) and the value itself: nothing before a '''-quoted block (it
// starts with a break of its own), a fresh line at the key's indent before
// a non-empty container when BracesSameLine is off, and the separator
// otherwise.
func (w *xjsWriter) writeValueGap(val *document.Value, depth int) {
	switch {
	case rendersMultiline(val):
	case !w.opts.BracesSameLine && rendersBlock(val):
		w.out.WriteString(w.opts.EOL)
		w.writeIndent(depth)
	default:
		w.out.WriteString(w.opts.Separator)
	}
}

// rendersMultiline reports whether val will be written as a '''-quoted
// block, which starts with a line break of its own and so must not be
// preceded by the usual separator space.
func rendersMultiline(val *document.Value) bool {
	if !val.IsString() {
		return false
	}

	return val.StringKind() == document.StringMulti || strings.Contains(val.Str(), "\n")
}

// rendersBlock reports whether val opens a brace/bracket with content
// behind it, the case BracesSameLine governs.
func rendersBlock(val *document.Value) bool {
	switch {
	case val.IsObject():
		return len(val.Members()) > 0
	case val.IsArray():
		return val.Len() > 0
	default:
		return false
	}
}

func commentConsumesLine(buf *document.CommentBuffer) bool {
	style, ok := buf.LastStyle()
	if !ok {
		return false
	}

	switch style {
	case document.CommentLine, document.CommentLineDoc, document.CommentHash:
		return true
	default:
		return false
	}
}

func (w *xjsWriter) writeEOLComment(t document.Trivia) {
	if !w.opts.OutputComments {
		return
	}

	buf, ok := t.Comment(document.CommentEOL)
	if !ok {
		return
	}

	w.out.WriteString(w.opts.Separator)
	buf.WriteTo(&w.out, document.WriteOptions{EOL: w.opts.EOL})
}

func (w *xjsWriter) writeValue(v *document.Value, depth int) {
	switch v.Kind() {
	case document.KindNull:
		w.out.WriteString("null")
	case document.KindBool:
		if v.Bool() {
			w.out.WriteString("true")
		} else {
			w.out.WriteString("false")
		}
	case document.KindNumber:
		w.out.WriteString(FormatNumber(v.Number()))
	case document.KindString:
		w.writeStringValue(v, depth)
	case document.KindArray, document.KindObject:
		w.writeContainer(v, depth)
	}
}

func (w *xjsWriter) writeContainer(v *document.Value, depth int) {
	isObj := v.IsObject()

	open, closeTok := "[", "]"

	var n int

	if isObj {
		open, closeTok = "{", "}"
		n = len(v.Members())
	} else {
		n = v.Len()
	}

	w.out.WriteString(open)

	if n == 0 {
		w.writeEmptyInterior(v, depth)
		w.out.WriteString(closeTok)

		return
	}

	// An all-void array round-trips as one comma per slot, no spacing:
	// three empty slots are [,,,], which parses back to three voids.
	if !isObj && allVoidElements(v) {
		for range n {
			w.out.WriteString(",")
		}

		w.out.WriteString(closeTok)

		return
	}

	condensed := w.opts.AllowCondense && firstChildLinesAbove(v, isObj) <= 0

	if condensed {
		w.out.WriteString(w.opts.Separator)
	} else {
		breaks := w.opts.clampSpacing(firstChildLinesAbove(v, isObj))
		if breaks < 1 {
			breaks = 1
		}

		for range breaks {
			w.out.WriteString(w.opts.EOL)
		}

		w.writeIndent(depth + 1)
	}

	var prev *document.Value

	if isObj {
		for i, m := range v.Members() {
			val := m.Ref.Peek()

			if i > 0 {
				w.writeDelimiter(prev, val, depth+1)
			}

			w.writeMember(m, depth+1)

			prev = val
		}
	} else {
		for i, ref := range v.Elements() {
			val := ref.Peek()

			if i > 0 {
				w.writeDelimiter(prev, val, depth+1)
			}

			w.writeElement(val, depth+1)

			prev = val
		}
	}

	w.writeEOLComment(prev.Trivia)
	w.writeTrailing(v, depth, condensed)
	w.out.WriteString(closeTok)
}

func (w *xjsWriter) writeEmptyInterior(v *document.Value, depth int) {
	interior, ok := v.Trivia.Comment(document.CommentInterior)
	if !ok || !w.opts.OutputComments {
		return
	}

	w.out.WriteString(w.opts.EOL)
	w.writeIndent(depth + 1)
	interior.WriteTo(&w.out, document.WriteOptions{Indent: w.opts.Indent, Level: depth + 1, EOL: w.opts.EOL, DedentLast: true})
	w.out.WriteString(w.opts.EOL)
	w.writeIndent(depth)
}

// writeTrailing writes a container's closing whitespace: the clamped
// lines_trailing line-break run, the INTERIOR comment (if any), and the
// indentation for the closer. Like lines_above, lines_trailing counts line
// breaks, so 1 puts the closer on the next line with no blank between.
func (w *xjsWriter) writeTrailing(v *document.Value, depth int, condensed bool) {
	interior, hasInterior := v.Trivia.Comment(document.CommentInterior)
	showInterior := hasInterior && w.opts.OutputComments

	if condensed && v.Trivia.LinesTrailing <= 0 && !showInterior {
		w.out.WriteString(w.opts.Separator)

		return
	}

	breaks := w.opts.clampSpacing(v.Trivia.LinesTrailing)
	if breaks < 1 {
		breaks = 1
	}

	for range breaks {
		w.out.WriteString(w.opts.EOL)
	}

	if showInterior {
		w.writeIndent(depth + 1)
		interior.WriteTo(&w.out, document.WriteOptions{Indent: w.opts.Indent, Level: depth + 1, EOL: w.opts.EOL, DedentLast: true})
		w.out.WriteString(w.opts.EOL)
	}

	w.writeIndent(depth)
}

func (w *xjsWriter) writeIndent(depth int) {
	for range depth {
		w.out.WriteString(w.opts.Indent)
	}
}

func (w *xjsWriter) writeKey(key string) {
	if w.opts.OmitQuotes && keyCanBeImplicit(key) {
		w.out.WriteString(implicit.Escape(key, implicit.Key))

		return
	}

	w.out.WriteString(strconv.Quote(key))
}

func (w *xjsWriter) writeStringValue(v *document.Value, depth int) {
	v.PromoteStringKind()

	switch v.StringKind() {
	case document.StringMulti:
		w.writeMultilineString(v.Str(), depth)
	case document.StringSingle:
		w.out.WriteString("'")
		w.out.WriteString(strings.ReplaceAll(v.Str(), "'", `\'`))
		w.out.WriteString("'")
	case document.StringImplicit:
		if v.Str() == "" {
			// A void string: the empty slot between delimiters.
			return
		}

		if w.opts.OmitQuotes && valueCanBeImplicit(v.Str()) {
			w.out.WriteString(implicit.Escape(v.Str(), implicit.Value))

			return
		}

		w.out.WriteString(strconv.Quote(v.Str()))
	default: // StringDouble
		w.out.WriteString(strconv.Quote(v.Str()))
	}
}

// writeMultilineString always starts its own indented block: the opening
// and closing '''s, and every content line, share the depth+1 indent, so a
// later parse dedents by exactly what was added here.
func (w *xjsWriter) writeMultilineString(s string, depth int) {
	indent := strings.Repeat(w.opts.Indent, depth+1)

	w.out.WriteString(w.opts.EOL)
	w.out.WriteString(indent)
	w.out.WriteString("'''")
	w.out.WriteString(w.opts.EOL)

	for _, line := range strings.Split(s, "\n") {
		w.out.WriteString(indent)
		w.out.WriteString(line)
		w.out.WriteString(w.opts.EOL)
	}

	w.out.WriteString(indent)
	w.out.WriteString("'''")
}

func allVoidElements(v *document.Value) bool {
	for _, ref := range v.Elements() {
		el := ref.Peek()
		if !el.IsString() || el.StringKind() != document.StringImplicit || el.Str() != "" {
			return false
		}
	}

	return true
}

func firstChildLinesAbove(v *document.Value, isObj bool) int {
	if isObj {
		return v.Members()[0].Ref.Peek().Trivia.LinesAbove
	}

	return v.Elements()[0].Peek().Trivia.LinesAbove
}

func keyCanBeImplicit(key string) bool {
	if key == "" || startsReserved(key) {
		return false
	}

	return implicit.IsBalanced(key)
}

func valueCanBeImplicit(s string) bool {
	if s == "" || startsReserved(s) {
		return false
	}

	switch s {
	case "true", "false", "null":
		return false
	}

	return implicit.IsBalanced(s)
}

func startsReserved(s string) bool {
	switch s[0] {
	case '{', '}', '[', ']', ',', ':':
		return true
	default:
		return false
	}
}
