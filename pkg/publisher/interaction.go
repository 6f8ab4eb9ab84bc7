package publisher

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var banner = color.New(color.FgGreen, color.Bold)

// Prompter blocks the console on user acknowledgements, so a terminal
// launched just for this tool doesn't vanish with the output.
type Prompter struct {
	Reader io.Reader
	Writer io.Writer
}

// NewPrompter creates a Prompter over the given console streams. Nil
// streams default to stdin and stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}

	if out == nil {
		out = os.Stdout
	}

	return &Prompter{Reader: in, Writer: out}
}

// Banner prints the completion banner.
func (p *Prompter) Banner(msg string) {
	_, _ = banner.Fprintln(p.Writer, msg)
}

// AwaitAck prints msg and blocks until the user presses Enter. A closed
// stdin (EOF) releases the wait too, so redirected runs still terminate.
func (p *Prompter) AwaitAck(msg string) {
	fmt.Fprint(p.Writer, msg)

	reader := bufio.NewReader(p.Reader)
	_, _ = reader.ReadString('\n')
}
