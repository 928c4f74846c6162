package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the operator a question and returns the trimmed answer.
type Prompter interface {
	Ask(question string) (string, error)
}

// LinePrompter reads one line of input per question.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a prompter reading answers from in and writing questions to out.
func New(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask prints the question and blocks until a line is read.
// Closed input yields an empty answer so callers fall back to their defaults.
func (p *LinePrompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}

	return Clean(line), nil
}

// Clean trims whitespace and one layer of surrounding quotes, which shells
// and file managers add when a path is pasted.
func Clean(answer string) string {
	answer = strings.TrimSpace(answer)
	return strings.Trim(answer, `"'`)
}
