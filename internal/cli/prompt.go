package cli

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// prompter reads answers line by line. Every read returns io.EOF once input
// is exhausted.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	pal palette
}

func newPrompter(in io.Reader, out io.Writer, pal palette) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, pal: pal}
}

// line prints prompt and returns the next line without its line ending.
// Lines have no length limit. A final line without a newline is returned
// as is; the read after it returns io.EOF.
func (p *prompter) line(prompt string) (string, error) {
	p.pal.prompt.Fprint(p.out, prompt)
	s, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// year asks until the answer is a four-digit year.
func (p *prompter) year(prompt string) (int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			p.pal.warn.Fprintln(p.out, "Invalid input. Numbers only.")
			continue
		}
		if n < types.MinPublicationYear || n > types.MaxPublicationYear {
			p.pal.warn.Fprintln(p.out, "Please enter a valid 4-digit year (e.g., 2024).")
			continue
		}
		return n, nil
	}
}

// positiveInt asks until the answer is an integer greater than zero.
func (p *prompter) positiveInt(prompt string) (int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			p.pal.warn.Fprintln(p.out, "Invalid input. Please enter a number.")
			continue
		}
		if n <= 0 {
			p.pal.warn.Fprintln(p.out, "Number must be greater than zero.")
			continue
		}
		return n, nil
	}
}
