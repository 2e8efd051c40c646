package reader

import "strconv"

// ReadNumber scans a maximal numeric-looking run starting at the cursor,
// which must be positioned on '-' or a digit. It always consumes the full
// run and returns its raw text; valid reports whether that run forms a
// legal XJS number:
//
//   - a leading '-' is only consumed here when immediately followed by a
//     digit (callers must check that before invoking ReadNumber);
//   - "0" alone or "0.x" are legal, but a leading '0' followed by another
//     digit is not (the whole digit run is still consumed, just marked
//     invalid so the caller can re-classify it as a WORD token);
//   - a trailing 'e'/'E' with no digits after it (with an optional sign)
//     is likewise consumed but marked invalid.
func (r *Reader) ReadNumber() (raw string, value float64, valid bool) {
	start := r.pos
	valid = true

	if r.Current() == '-' {
		_, _ = r.Read()
	}

	if r.Current() == '0' {
		_, _ = r.Read()

		if isDigit(r.Current()) {
			valid = false

			for isDigit(r.Current()) {
				_, _ = r.Read()
			}
		}
	} else {
		for isDigit(r.Current()) {
			_, _ = r.Read()
		}
	}

	if r.Current() == '.' {
		dotPos, dotLine, dotCol := r.pos, r.line, r.column

		_, _ = r.Read()

		if !isDigit(r.Current()) {
			// Not a decimal point after all; back off so '.' is
			// re-tokenized on its own. Safe because '.' is never a
			// newline, so rewinding line/column by one step is exact.
			r.pos, r.line, r.column = dotPos, dotLine, dotCol
		} else {
			for isDigit(r.Current()) {
				_, _ = r.Read()
			}
		}
	}

	if r.Current() == 'e' || r.Current() == 'E' {
		_, _ = r.Read()

		if r.Current() == '+' || r.Current() == '-' {
			_, _ = r.Read()
		}

		if !isDigit(r.Current()) {
			valid = false
		} else {
			for isDigit(r.Current()) {
				_, _ = r.Read()
			}
		}
	}

	raw = r.Slice(start, r.pos)

	if valid {
		value, _ = strconv.ParseFloat(raw, 64)
	}

	return raw, value, valid
}
