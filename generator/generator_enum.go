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

package generator

import (
	"google.golang.org/protobuf/reflect/protoreflect"
)

// emitEnum writes one enum as a named int32 with value constants, the
// two-way name tables, and a String method that falls back to the raw
// number for values outside the declared set. Values decoded from the
// wire are stored as-is whether or not they are declared.
func (g *generator) emitEnum(ed protoreflect.EnumDescriptor) {
	e := g.body
	goName := enumGoName(ed)
	values := ed.Values()

	e.Linef("type %s int32", goName)
	e.Blank()
	e.BlockEnd("const (", ")", func() {
		for ii := 0; ii < values.Len(); ii++ {
			vd := values.Get(ii)
			e.Linef("%s_%s %s = %d", goName, vd.Name(), goName, vd.Number())
		}
	})
	e.Blank()
	e.BlockEnd("var (", ")", func() {
		e.BlockEnd(goName+"_name = map[int32]string{", "}", func() {
			// With alias values the first declared name wins.
			seen := make(map[protoreflect.EnumNumber]bool)
			for ii := 0; ii < values.Len(); ii++ {
				vd := values.Get(ii)
				if seen[vd.Number()] {
					continue
				}
				seen[vd.Number()] = true
				e.Linef("%d: %q,", vd.Number(), string(vd.Name()))
			}
		})
		e.BlockEnd(goName+"_value = map[string]int32{", "}", func() {
			for ii := 0; ii < values.Len(); ii++ {
				vd := values.Get(ii)
				e.Linef("%q: %d,", string(vd.Name()), vd.Number())
			}
		})
	})
	e.Blank()
	e.Blockf(func() {
		e.Blockf(func() {
			e.Line("return s")
		}, "if s, ok := %s_name[int32(x)]; ok {", goName)
		e.Linef("return %s.Itoa(int(x))", g.use("strconv"))
	}, "func (x %s) String() string {", goName)
	e.Blank()
	e.Blockf(func() {
		e.Linef("return %s.Ptr(x)", g.pbrt())
	}, "func (x %s) Enum() *%s {", goName, goName)
}
