// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

// Package emit renders the structured write directives issued by the
// generator into indented Go source text.
package emit

import (
	"fmt"
	"io"
	"strings"
)

// Writer accumulates generated source text. Write errors are sticky: the
// first failure is recorded and every later directive becomes a no-op, so
// callers check Err once after emission.
type Writer struct {
	w      io.Writer
	indent int
	err    error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (e *Writer) Err() error {
	return e.err
}

func (e *Writer) Line(s string) {
	if e.err != nil {
		return
	}
	if s == "" {
		e.writeString("\n")
		return
	}
	if indent := strings.Repeat("\t", e.indent); indent != "" {
		e.writeString(indent)
	}
	e.writeString(s)
	e.writeString("\n")
}

func (e *Writer) Linef(format string, a ...any) {
	if e.err != nil {
		return
	}
	e.Line(fmt.Sprintf(format, a...))
}

// Blank emits an empty separator line.
func (e *Writer) Blank() {
	e.Line("")
}

func (e *Writer) Comment(s string) {
	e.Line("// " + s)
}

func (e *Writer) Commentf(format string, a ...any) {
	e.Comment(fmt.Sprintf(format, a...))
}

// Block emits the opening line, runs body one indent level deeper, then
// closes with "}". Blocks nest arbitrarily.
func (e *Writer) Block(open string, body func()) {
	e.BlockEnd(open, "}", body)
}

func (e *Writer) Blockf(body func(), format string, a ...any) {
	e.Block(fmt.Sprintf(format, a...), body)
}

// BlockEnd is Block with an explicit closing line, for composite literals
// and call chains.
func (e *Writer) BlockEnd(open, close string, body func()) {
	e.Line(open)
	e.indent += 1
	body()
	e.indent -= 1
	e.Line(close)
}

// Switch emits a switch statement. The body runs at the same indent
// level as the opening line, matching gofmt's alignment of case labels
// with the switch keyword; arms are emitted with Case.
func (e *Writer) Switch(open string, body func()) {
	e.Line(open)
	body()
	e.Line("}")
}

func (e *Writer) Switchf(body func(), format string, a ...any) {
	e.Switch(fmt.Sprintf(format, a...), body)
}

// Case emits a switch arm: the label line, then body one level deeper,
// with no closing line.
func (e *Writer) Case(label string, body func()) {
	e.Line(label)
	e.indent += 1
	body()
	e.indent -= 1
}

func (e *Writer) Casef(body func(), format string, a ...any) {
	e.Case(fmt.Sprintf(format, a...), body)
}

func (e *Writer) writeString(s string) {
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = err
	}
}
