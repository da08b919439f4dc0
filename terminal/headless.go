package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vadiminshakov/factorial/core/tools"
)

// maxLineLength bounds a single input line; longer lines are rejected.
const maxLineLength = 64 * 1024

var errLineTooLong = errors.New("line too long")

type readResult struct {
	text string
	// err is a per-line failure unless fatal is set
	err   error
	fatal bool
}

// RunHeadless serves a line protocol for scripts: each input line is an
// integer, each output line is its factorial or "error: <message>".
// "exit", "quit" or EOF end the session; so does cancelling ctx, even while
// waiting for input.
func RunHeadless(ctx context.Context, r io.Reader, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan readResult)
	go readLines(ctx, r, lines)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var res readResult
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next, ok := <-lines:
			if !ok {
				return nil
			}
			res = next
		}

		if res.fatal {
			return res.err
		}
		if res.err != nil {
			fmt.Fprintf(w, "error: %v\n", res.err)
			continue
		}

		input := strings.TrimSpace(res.text)

		if input == "exit" || input == "quit" {
			return nil
		}

		if input == "" {
			continue
		}

		result, err := tools.Execute("factorial", map[string]interface{}{"n": input})
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}

		fmt.Fprintln(w, result)
	}
}

// readLines feeds out until r is exhausted or ctx is done. A blocked read
// outlives ctx; the goroutine exits once the read returns.
func readLines(ctx context.Context, r io.Reader, out chan<- readResult) {
	defer close(out)

	send := func(res readResult) bool {
		select {
		case out <- res:
			return true
		case <-ctx.Done():
			return false
		}
	}

	br := bufio.NewReaderSize(r, maxLineLength)
	for {
		line, isPrefix, err := br.ReadLine()
		if err != nil {
			if err != io.EOF {
				send(readResult{err: err, fatal: true})
			}
			return
		}

		res := readResult{text: string(line)}
		if isPrefix {
			// discard the rest of the line
			for isPrefix && err == nil {
				_, isPrefix, err = br.ReadLine()
			}
			res = readResult{err: errLineTooLong}
		}

		if !send(res) {
			return
		}

		if err != nil {
			if err != io.EOF {
				send(readResult{err: err, fatal: true})
			}
			return
		}
	}
}
