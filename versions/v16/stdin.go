package v16

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/xerrors"
)

// ErrEOF is returned by ReadLn once the underlying reader is exhausted.
var ErrEOF = xerrors.New("EOF has already been reached")

// LineReader reads newline-terminated lines from an io.Reader.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader returns a LineReader for r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// NewStdinReader returns a LineReader for the process standard input.
func NewStdinReader() *LineReader {
	return NewLineReader(os.Stdin)
}

// ReadLine returns the next line without its line terminator. The boolean
// result is false once the reader has been exhausted.
func (lr *LineReader) ReadLine() (string, bool) {
	line, err := lr.readLine()
	if err != nil {
		return "", false
	}
	return line, true
}

// ReadLn returns the next line without its line terminator, or ErrEOF once
// the reader has been exhausted. Other read errors are wrapped and returned.
func (lr *LineReader) ReadLn() (string, error) {
	return lr.readLine()
}

func (lr *LineReader) readLine() (string, error) {
	line, err := lr.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", xerrors.Errorf("unable to read line: %w", err)
		}
		if line == "" {
			return "", ErrEOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
