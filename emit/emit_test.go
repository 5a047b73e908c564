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

package emit_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gengliqi/pbgen/emit"
	"github.com/gengliqi/pbgen/internal/testutil"
)

func TestLines(t *testing.T) {
	var buf strings.Builder
	w := emit.NewWriter(&buf)
	w.Line("package demo")
	w.Blank()
	w.Linef("const answer = %d", 42)
	testutil.AssertNoError(t, w.Err())
	testutil.ExpectNoDiff(t, "package demo\n\nconst answer = 42\n", buf.String())
}

func TestNestedBlocks(t *testing.T) {
	var buf strings.Builder
	w := emit.NewWriter(&buf)
	w.Block("func add(a, b int) int {", func() {
		w.Block("if a == 0 {", func() {
			w.Line("return b")
		})
		w.Line("return a + b")
	})
	testutil.AssertNoError(t, w.Err())
	want := strings.Join([]string{
		"func add(a, b int) int {",
		"\tif a == 0 {",
		"\t\treturn b",
		"\t}",
		"\treturn a + b",
		"}",
		"",
	}, "\n")
	testutil.ExpectNoDiff(t, want, buf.String())
}

func TestBlockEnd(t *testing.T) {
	var buf strings.Builder
	w := emit.NewWriter(&buf)
	w.BlockEnd("var names = []string{", "}", func() {
		w.Line(`"a",`)
		w.Line(`"b",`)
	})
	testutil.AssertNoError(t, w.Err())
	want := "var names = []string{\n\t\"a\",\n\t\"b\",\n}\n"
	testutil.ExpectNoDiff(t, want, buf.String())
}

func TestSwitchCaseIndent(t *testing.T) {
	var buf strings.Builder
	w := emit.NewWriter(&buf)
	w.Block("func describe(v int) string {", func() {
		w.Switch("switch {", func() {
			w.Case("case v == 0:", func() {
				w.Line(`return "zero"`)
			})
			w.Case("default:", func() {
				w.Line(`return "other"`)
			})
		})
	})
	testutil.AssertNoError(t, w.Err())
	want := strings.Join([]string{
		"func describe(v int) string {",
		"\tswitch {",
		"\tcase v == 0:",
		"\t\treturn \"zero\"",
		"\tdefault:",
		"\t\treturn \"other\"",
		"\t}",
		"}",
		"",
	}, "\n")
	testutil.ExpectNoDiff(t, want, buf.String())
}

func TestComments(t *testing.T) {
	var buf strings.Builder
	w := emit.NewWriter(&buf)
	w.Comment("Answer is always 42.")
	w.Commentf("source: %s", "demo.proto")
	testutil.AssertNoError(t, w.Err())
	testutil.ExpectNoDiff(t, "// Answer is always 42.\n// source: demo.proto\n", buf.String())
}

type failWriter struct {
	err error
}

func (f *failWriter) Write(p []byte) (int, error) {
	return 0, f.err
}

func TestStickyError(t *testing.T) {
	wantErr := errors.New("disk full")
	w := emit.NewWriter(&failWriter{err: wantErr})
	w.Line("first")
	w.Line("second")
	if !errors.Is(w.Err(), wantErr) {
		t.Errorf("Expected %v, got: %v", wantErr, w.Err())
	}
}
