package parser

import "unicode/utf8"

// ScanLines is a bufio.SplitFunc that ends a line at \n, \r, \r\n, \v, \f,
// \x1c, \x1d, \x1e, U+0085, U+2028 and U+2029. The terminator is not part of the line.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && !atEOF && !utf8.FullRune(data[i:]) {
			// Incomplete rune at the end of the buffer
			return 0, nil, nil
		}

		switch r {
		case '\r':
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				return i + 1, data[:i], nil
			}
			if !atEOF {
				return 0, nil, nil
			}
			return i + 1, data[:i], nil
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			return i + size, data[:i], nil
		}
		i += size
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
