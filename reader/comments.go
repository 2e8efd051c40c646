package reader

import "strings"

// ReadLineComment reads a '//' or '///' (doc-style) line comment body. The
// cursor must be positioned just past the leading '//'. It reports whether
// the comment is the '///' doc form (left for the caller to map onto
// document.CommentStyle) and the trimmed body text.
//
// A single leading space right after the slashes is consumed and not part
// of the body; trailing whitespace is always trimmed.
func (r *Reader) ReadLineComment() (doc bool, body string) {
	if r.Current() == '/' {
		doc = true

		_, _ = r.Read()
	}

	r.ReadIf(' ')

	start := r.pos
	r.SkipToNewline()
	body = strings.TrimRight(r.Slice(start, r.pos), " \t")

	return doc, body
}

// ReadHashComment reads a '#' comment body. The cursor must be positioned
// just past the '#'. Extraction rules mirror ReadLineComment.
func (r *Reader) ReadHashComment() string {
	r.ReadIf(' ')

	start := r.pos
	r.SkipToNewline()

	return strings.TrimRight(r.Slice(start, r.pos), " \t")
}

// ReadBlockComment reads a '/* */' or '/** */' block comment body. The
// cursor must be positioned just past the opening delimiter ('/*' or
// '/**', doc indicated by the doc parameter) and ends just past the
// closing '*/'.
//
// A "collapsed" block comment (opener, body, and closer share one line)
// is returned with its body trimmed of surrounding whitespace only. An
// "expanded" block comment (a newline immediately follows the opener) has
// its leading newline dropped, each interior line stripped of a leading
// run of whitespace followed by an optional single '*' and one following
// space, and its final (pre-closer, whitespace-only) line dropped.
func (r *Reader) ReadBlockComment() (string, error) {
	expanded := r.Current() == '\n'
	if expanded {
		_, _ = r.Read()
	}

	start := r.pos

	for {
		switch {
		case r.AtEOF():
			return "", r.Errorf("Unterminated comment")
		case r.Current() == '*' && r.Peek(1) == '/':
			raw := r.Slice(start, r.pos)
			_, _ = r.Read()
			_, _ = r.Read()

			if !expanded {
				return strings.TrimSpace(raw), nil
			}

			return dedentBlockComment(raw), nil
		default:
			_, _ = r.Read()
		}
	}
}

func dedentBlockComment(raw string) string {
	lines := strings.Split(raw, "\n")
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}

	for i, line := range lines {
		lines[i] = stripBlockLinePrefix(line)
	}

	return strings.Join(lines, "\n")
}

// stripBlockLinePrefix removes leading whitespace, then a single '*' and
// the one space following it if present, from one line of an expanded
// block comment.
func stripBlockLinePrefix(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}

	rest := line[i:]
	if strings.HasPrefix(rest, "*") {
		rest = rest[1:]
		rest = strings.TrimPrefix(rest, " ")
	}

	return rest
}
