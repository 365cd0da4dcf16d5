// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import (
	"bufio"
	"context"
	"io"
)

// lineReader is a [CardReader] over a line-oriented stream. Serial RFID
// readers in keyboard-wedge mode emit one UID per line, which also makes
// stdin a drop-in substitute on a development machine.
type lineReader struct {
	lines chan string
	errs  chan error
}

// NewLineReader starts draining r line by line. The background goroutine
// exits when r reaches EOF or fails.
func NewLineReader(r io.Reader) CardReader {
	lr := &lineReader{
		lines: make(chan string),
		errs:  make(chan error, 1),
	}

	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lr.lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			lr.errs <- err
		} else {
			lr.errs <- io.EOF
		}
		close(lr.lines)
	}()

	return lr
}

// ReadUID implements [CardReader].
func (lr *lineReader) ReadUID(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			return "", <-lr.errs
		}
		return line, nil
	}
}
