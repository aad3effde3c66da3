// Package output renders games for people and programs: a text board
// diagram for terminals and a JSON view for HTTP clients.
package output

import (
	"fmt"
	"io"
	"strings"
)

// DefaultLineLength is used when a LineWriter is given no limit.
const DefaultLineLength = 80

// LineWriter writes space separated tokens, breaking lines before they
// exceed a maximum length. The first write error is kept and later writes
// are dropped.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewLineWriter creates a new line writer.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, adding a space separator if needed.
func (o *LineWriter) Write(s string) {
	if s == "" {
		return
	}
	if o.needsSpace {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *LineWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *LineWriter) Err() error {
	return o.err
}

func (o *LineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprint(o.w, s)
}

// WriteMoveLog writes a move log such as "1. e2e4 e7e5 2. g1f3 ", keeping
// each move number on the same line as the move it belongs to.
func WriteMoveLog(w io.Writer, log string, maxLineLength int) error {
	lw := NewLineWriter(w, maxLineLength)
	fields := strings.Fields(log)
	for i := 0; i < len(fields); i++ {
		token := fields[i]
		if strings.HasSuffix(token, ".") && i+1 < len(fields) {
			i++
			token += " " + fields[i]
		}
		lw.Write(token)
	}
	if len(fields) > 0 {
		lw.NewLine()
	}
	return lw.Err()
}

// WriteTokens writes tokens wrapped to maxLineLength and ends the line.
func WriteTokens(w io.Writer, tokens []string, maxLineLength int) error {
	lw := NewLineWriter(w, maxLineLength)
	for _, t := range tokens {
		lw.Write(t)
	}
	lw.NewLine()
	return lw.Err()
}
