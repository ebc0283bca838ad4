package cli

import (
	"bufio"
	"io"
	"strings"
)

// Confirmer asks the user to approve an action before it runs. Destructive
// commands (logout, alarm removal, advice deletion) go through it, so the
// prompting behavior can be swapped out at composition time.
type Confirmer interface {
	Confirm(prompt string) bool
}

// TerminalConfirmer asks the question on the terminal and treats
// "y"/"yes" (case-insensitive) as approval. Anything else, including a
// read error, is a refusal.
type TerminalConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewTerminalConfirmer(reader *bufio.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{reader: reader, out: out}
}

func (c *TerminalConfirmer) Confirm(prompt string) bool {
	answer, err := GetSimpleText(c.reader, prompt+" (y/n)", c.out)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// AutoConfirmer approves everything without asking. Used in scripted runs
// and tests.
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(string) bool { return true }
