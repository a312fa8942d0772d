// Package console is the line-oriented terminal collaborator the order flow talks to.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedNumber is returned by ReadInteger when the line is not an integer.
var ErrMalformedNumber = errors.New("malformed number")

// Prompter reads answers and writes status text, one line at a time.
type Prompter interface {
	ReadLine() (string, error)
	ReadInteger() (int, error)
	WriteLine(line string)
}

type console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) Prompter {
	return &console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine returns the next line without its terminator. Exhausted input yields io.EOF.
func (c *console) ReadLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("read line: %w", err)
		}
		return "", fmt.Errorf("read line: %w", io.EOF)
	}
	return strings.TrimRight(c.scanner.Text(), "\r"), nil
}

func (c *console) ReadInteger() (int, error) {
	line, err := c.ReadLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("read integer %q: %w", line, ErrMalformedNumber)
	}
	return n, nil
}

func (c *console) WriteLine(line string) {
	fmt.Fprintln(c.out, line)
}
