package counter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// CountLines reads the file at path as UTF-8 text and returns its line count.
// "\n", "\r\n" and a lone "\r" each end a line; trailing text without a
// terminator counts as one more line.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return countLines(path, f)
}

func countLines(path string, r io.Reader) (int, error) {
	br := bufio.NewReader(r)

	var offset int64
	lines := 0
	pending := false
	afterCR := false

	for {
		ch, size, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if ch == utf8.RuneError && size == 1 {
			return 0, &DecodeError{Path: path, Offset: offset}
		}
		offset += int64(size)

		switch ch {
		case '\r':
			lines++
			pending = false
			afterCR = true
			continue
		case '\n':
			if !afterCR {
				lines++
			}
			pending = false
		default:
			pending = true
		}
		afterCR = false
	}

	if pending {
		lines++
	}
	return lines, nil
}
