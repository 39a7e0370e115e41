// internal/app/console/prompt.go
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// lineReader reads whole input lines; every prompt consumes exactly
// one line, so a stray token never bleeds into the next prompt.
type lineReader struct {
	s *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{s: bufio.NewScanner(r)}
}

// line returns the next input line, or io.EOF when input is exhausted.
func (lr *lineReader) line() (string, error) {
	if !lr.s.Scan() {
		if err := lr.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return lr.s.Text(), nil
}

// promptLine prints the label and returns the entered line.
func (s *Session) promptLine(label string) (string, error) {
	fmt.Fprint(s.out, label)
	return s.in.line()
}

// promptInt prints the label and parses the entered line as an
// integer. A blank or non-numeric entry returns ok=false; the caller
// treats it like any other invalid selection.
func (s *Session) promptInt(label string) (n int, ok bool, err error) {
	line, err := s.promptLine(label)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}
