// Package prompt implements the interactive question loop for `canlog setup`.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks questions on w and reads answers from r. Production use
// wires stdin/stderr; tests inject a scripted reader.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// New creates a Prompter.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Ask prints "label [def]: " and returns the trimmed answer. An empty
// answer returns "", leaving default substitution to the caller.
// Interrupted input surfaces the read error; there is no retry.
func (p *Prompter) Ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.w, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.w, "%s: ", label)
	}
	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// StdinIsTerminal reports whether stdin is attached to a terminal.
// Setup refuses to prompt a pipe.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
