package reader

import (
	"strings"
	"unicode/utf16"
)

// ReadQuoted reads a single- or double-quoted string body (the cursor must
// be positioned just past the opening quote) up to and including the
// matching closing quote, processing \" \\ \/ \b \f \n \r \t \uXXXX
// escapes. A raw newline before the closing quote is a syntax error.
func (r *Reader) ReadQuoted(quote rune) (string, error) {
	r.StartCapture()

	for {
		switch c := r.Current(); {
		case c == EOF:
			return "", r.Errorf("Unterminated string")
		case c == quote:
			text := r.EndCapture()
			_, _ = r.Read()

			return text, nil
		case c == '\n':
			return "", r.Errorf("Unterminated string")
		case c == '\\':
			r.PauseCapture()
			_, _ = r.Read() // consume backslash

			decoded, err := r.readEscape()
			if err != nil {
				return "", err
			}

			r.appendLiteral(decoded)
			r.StartCapture()
		default:
			_, _ = r.Read()
		}
	}
}

func (r *Reader) readEscape() (string, error) {
	switch c := r.Current(); c {
	case '"', '\\', '/':
		_, _ = r.Read()

		return string(c), nil
	case 'b':
		_, _ = r.Read()

		return "\b", nil
	case 'f':
		_, _ = r.Read()

		return "\f", nil
	case 'n':
		_, _ = r.Read()

		return "\n", nil
	case 'r':
		_, _ = r.Read()

		return "\r", nil
	case 't':
		_, _ = r.Read()

		return "\t", nil
	case 'u':
		_, _ = r.Read()

		return r.readUnicodeEscape()
	default:
		return "", r.Errorf("Invalid escape sequence")
	}
}

func (r *Reader) readUnicodeEscape() (string, error) {
	hi, err := r.readHex4()
	if err != nil {
		return "", err
	}

	if utf16.IsSurrogate(rune(hi)) {
		if lo, ok := r.peekHex4(2); ok && r.Peek(0) == '\\' && r.Peek(1) == 'u' {
			if combined := utf16.DecodeRune(rune(hi), rune(lo)); combined != 0xFFFD {
				_, _ = r.Read()
				_, _ = r.Read()
				_, _ = r.readHex4()

				return string(combined), nil
			}
		}
	}

	return string(rune(hi)), nil
}

func (r *Reader) readHex4() (uint16, error) {
	var v uint16

	for range 4 {
		d, ok := hexDigit(r.Current())
		if !ok {
			return 0, r.Errorf("Invalid hex digit")
		}

		v = v*16 + uint16(d)
		_, _ = r.Read()
	}

	return v, nil
}

// peekHex4 validates and parses 4 hex digits starting offset positions
// ahead, without consuming anything.
func (r *Reader) peekHex4(offset int) (uint16, bool) {
	var v uint16

	for i := range 4 {
		d, ok := hexDigit(r.Peek(offset + i))
		if !ok {
			return 0, false
		}

		v = v*16 + uint16(d)
	}

	return v, true
}

func hexDigit(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// ReadMultilineString reads a '''-quoted string body (the cursor must be
// positioned just past the opening '''), up to and including the matching
// closing '''. No escape processing is performed: triple-quoted strings
// are raw, matching the common host-language convention this format's
// "human-oriented" triple-quote syntax is drawn from.
//
// openColumn is the column of the opening ''' (its first quote rune). If
// the opener is immediately followed by a newline ("expanded" form,
// mirroring the block-comment expanded/collapsed distinction for block comments),
// that newline is dropped, every content line is dedented by up to
// openColumn leading space/tab characters, and the final line is dropped
// when it holds only the indentation preceding the closing '''. Otherwise ("collapsed"
// form, opener and content share a line) the raw body is returned as-is.
func (r *Reader) ReadMultilineString(openColumn int) (string, error) {
	expanded := r.Current() == '\n'
	if expanded {
		_, _ = r.Read()
	}

	start := r.pos

	for {
		switch {
		case r.AtEOF():
			return "", r.Errorf("Unterminated string")
		case r.Current() == quoteSingle && r.Peek(1) == quoteSingle && r.Peek(2) == quoteSingle:
			body := r.Slice(start, r.pos)
			_, _ = r.Read()
			_, _ = r.Read()
			_, _ = r.Read()

			if !expanded {
				return body, nil
			}

			return dedentMultiline(body, openColumn), nil
		default:
			_, _ = r.Read()
		}
	}
}

const quoteSingle = '\''

func dedentMultiline(body string, column int) string {
	lines := strings.Split(body, "\n")
	if len(lines) == 0 {
		return body
	}

	for i, line := range lines {
		lines[i] = dedentLine(line, column)
	}

	// The final element is the indentation preceding the closing '''
	// on its own line, not content, unless the closer shares a content line.
	if strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func dedentLine(line string, column int) string {
	i := 0
	for i < len(line) && i < column && (line[i] == ' ' || line[i] == '\t') {
		i++
	}

	return line[i:]
}
