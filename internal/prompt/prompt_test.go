package prompt_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"tasktrack/internal/prompt"
)

func TestLine(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("first\r\nsecond\n"), &out, false)
	ctx := context.Background()

	got, err := p.Line(ctx, "Name: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "first" {
		t.Errorf("expected %q, got %q", "first", got)
	}

	got, err = p.Line(ctx, "Again: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "second" {
		t.Errorf("expected %q, got %q", "second", got)
	}

	if out.String() != "Name: Again: " {
		t.Errorf("unexpected labels: %q", out.String())
	}

	if _, err := p.Line(ctx, ""); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF at end of input, got %v", err)
	}
	if _, err := p.Line(ctx, ""); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF to repeat, got %v", err)
	}
}

func TestLine_Quiet(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("x\n"), &out, true)

	if _, err := p.Line(context.Background(), "Label: "); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output in quiet mode, got %q", out.String())
	}
}

func TestLine_KeepsInnerWhitespace(t *testing.T) {
	p := prompt.New(strings.NewReader("  padded title \n"), io.Discard, false)

	got, err := p.Line(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if got != "  padded title " {
		t.Errorf("expected line unchanged, got %q", got)
	}
}

func TestOptional(t *testing.T) {
	p := prompt.New(strings.NewReader("\nvalue\n"), io.Discard, false)
	ctx := context.Background()

	got, err := p.Optional(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected nil for empty answer, got %q", *got)
	}

	got, err = p.Optional(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != "value" {
		t.Errorf("expected \"value\", got %v", got)
	}
}

func TestLine_ContextCancelled(t *testing.T) {
	// A pipe with no writer blocks forever, like an idle console.
	r, w := io.Pipe()
	defer w.Close()

	p := prompt.New(r, io.Discard, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Line(ctx, ""); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestLine_ReadError(t *testing.T) {
	p := prompt.New(failingReader{}, io.Discard, false)

	_, err := p.Line(context.Background(), "")
	if err == nil || !strings.Contains(err.Error(), "device gone") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestLine_LongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	p := prompt.New(strings.NewReader(long+"\nnext\n"), io.Discard, false)
	ctx := context.Background()

	got, err := p.Line(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(long) {
		t.Errorf("expected %d bytes, got %d", len(long), len(got))
	}

	got, err = p.Line(ctx, "")
	if err != nil || got != "next" {
		t.Errorf("expected %q, got %q (%v)", "next", got, err)
	}
}

func TestLine_LastLineWithoutNewline(t *testing.T) {
	p := prompt.New(strings.NewReader("a\nb"), io.Discard, false)
	ctx := context.Background()

	for _, want := range []string{"a", "b"} {
		got, err := p.Line(ctx, "")
		if err != nil || got != want {
			t.Errorf("expected %q, got %q (%v)", want, got, err)
		}
	}
	if _, err := p.Line(ctx, ""); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

// labelWriter signals its first write.
type labelWriter struct {
	once    sync.Once
	written chan struct{}
}

func (w *labelWriter) Write(b []byte) (int, error) {
	w.once.Do(func() { close(w.written) })
	return len(b), nil
}

func TestClose(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	out := &labelWriter{written: make(chan struct{})}
	p := prompt.New(r, out, false)

	errc := make(chan error, 1)
	go func() {
		_, err := p.Line(context.Background(), "Waiting: ")
		errc <- err
	}()

	// The label is printed right before Line blocks.
	select {
	case <-out.written:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for label")
	}

	p.Close()
	p.Close()

	select {
	case err := <-errc:
		if !errors.Is(err, prompt.ErrClosed) {
			t.Errorf("expected ErrClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Line did not return after Close")
	}

	if _, err := p.Line(context.Background(), "Again: "); !errors.Is(err, prompt.ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}
