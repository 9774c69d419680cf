// Package prompt reads user answers from a line-oriented console.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrClosed is returned by reads on a closed Prompter.
var ErrClosed = errors.New("prompt closed")

type line struct {
	text string
	err  error
}

// Prompter prints labels and reads one line of input per answer.
// Reads honour context cancellation even while the console blocks.
type Prompter struct {
	out   io.Writer
	quiet bool
	lines chan line

	done      chan struct{}
	closeOnce sync.Once
}

// New creates a Prompter reading from in and printing labels to out.
// With quiet set, labels are not printed.
//
// A background goroutine reads ahead one line at a time. Call Close when done;
// the goroutine then exits after its pending read returns.
func New(in io.Reader, out io.Writer, quiet bool) *Prompter {
	p := &Prompter{
		out:   out,
		quiet: quiet,
		lines: make(chan line),
		done:  make(chan struct{}),
	}
	go p.read(bufio.NewReader(in))
	return p
}

// Close stops delivery of input. Later reads return ErrClosed.
func (p *Prompter) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	return nil
}

// read delivers lines of any length until input ends or the Prompter is closed.
func (p *Prompter) read(r *bufio.Reader) {
	defer close(p.lines)
	for {
		s, err := r.ReadString('\n')
		if s != "" {
			s = strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
			if !p.send(line{text: s}) {
				return
			}
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			p.send(line{err: fmt.Errorf("reading input: %w", err)})
			return
		}
	}
}

func (p *Prompter) send(l line) bool {
	select {
	case p.lines <- l:
		return true
	case <-p.done:
		return false
	}
}

// Line prints label and returns the next line of input without its line ending.
// Returns io.EOF once input is exhausted, or ctx.Err() if ctx ends first.
func (p *Prompter) Line(ctx context.Context, label string) (string, error) {
	select {
	case <-p.done:
		return "", ErrClosed
	default:
	}

	if !p.quiet && label != "" {
		fmt.Fprint(p.out, label)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", ErrClosed
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// Optional is like Line but returns nil for an empty answer.
func (p *Prompter) Optional(ctx context.Context, label string) (*string, error) {
	s, err := p.Line(ctx, label)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	return &s, nil
}
