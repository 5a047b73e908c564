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
	"fmt"
)

// External-format serialization. Each opted-in message gets MarshalJSON
// and UnmarshalJSON built around an unexported shadow struct whose
// exported fields mirror the message with JSON tags. When a format guard
// is configured the methods land in a separate file behind the matching
// build tag, so binaries that never name the tag carry no JSON surface.
// Group-typed fields are not serialized.

func (g *generator) emitExternalFormat(m *messageInfo) {
	if guard := m.opts.SerializeFormatGuard; guard != "" {
		g.body = g.guardWriter(guard)
		defer func() { g.body = g.mainWriter() }()
	}
	g.body.Blank()
	g.emitShadowStruct(m)
	g.body.Blank()
	g.emitMarshalJSON(m)
	g.body.Blank()
	g.emitUnmarshalJSON(m)
}

func (m *messageInfo) shadowName() string {
	return "json" + m.goName
}

// shadowFieldType is the shadow struct's field type: reference types
// pass through, value types become pointers so absence survives the
// round trip for presence-tracked fields.
func (f *fieldInfo) shadowFieldType(g *generator) string {
	switch f.kind {
	case fieldKind_REPEATED, fieldKind_MAP:
		return f.goStorageType(g)
	}
	if f.shadowIsRef(g) {
		return f.goElemType(g)
	}
	return "*" + f.goElemType(g)
}

func (f *fieldInfo) shadowIsRef(g *generator) bool {
	if f.isMessageElem() {
		return true
	}
	elem := f.goElemType(g)
	return elem == "[]byte"
}

func (g *generator) emitShadowStruct(m *messageInfo) {
	e := g.body
	e.Blockf(func() {
		for _, f := range m.fields {
			if f.isGroup() {
				continue
			}
			e.Linef("%s %s `json:%q`", f.goName, f.shadowFieldType(g),
				string(f.desc.JSONName())+",omitempty")
		}
	}, "type %s struct {", m.shadowName())
}

func (g *generator) emitMarshalJSON(m *messageInfo) {
	e := g.body
	e.Blockf(func() {
		e.Linef("var j %s", m.shadowName())
		for _, f := range m.fieldsExceptOneof() {
			if f.isGroup() {
				continue
			}
			switch f.kind {
			case fieldKind_REPEATED, fieldKind_MAP:
				e.Linef("j.%s = m.%s", f.goName, f.storeName)
			default:
				g.emitShadowAssign(f, fmt.Sprintf("j.%s", f.goName), "m."+f.storeName)
			}
		}
		for _, o := range m.oneofs {
			members := o.publicMembers()
			if len(members) == 0 {
				continue
			}
			e.Switchf(func() {
				for _, f := range members {
					e.Casef(func() {
						if f.shadowIsRef(g) {
							e.Linef("j.%s = v.%s", f.goName, f.goName)
						} else {
							e.Linef("j.%s = %s.Ptr(v.%s)", f.goName, g.pbrt(), f.goName)
						}
					}, "case *%s:", f.wrapperName())
				}
			}, "switch v := m.%s.(type) {", o.storeName)
		}
		e.Linef("return %s.Marshal(&j)", g.use("github.com/goccy/go-json"))
	}, "func (m *%s) MarshalJSON() ([]byte, error) {", m.goName)
}

// emitShadowAssign copies one singular field into its shadow slot.
func (g *generator) emitShadowAssign(f *fieldInfo, dst, src string) {
	e := g.body
	switch {
	case f.shadowIsRef(g):
		e.Linef("%s = %s", dst, src)
	case f.presencePointer():
		e.Linef("%s = %s", dst, src)
	default:
		e.Blockf(func() {
			e.Linef("%s = %s.Ptr(%s)", dst, g.pbrt(), src)
		}, "if %s {", f.zeroCheckExpr(g, src))
	}
}

func (g *generator) emitUnmarshalJSON(m *messageInfo) {
	e := g.body
	e.Blockf(func() {
		e.Linef("var j %s", m.shadowName())
		e.Blockf(func() {
			e.Line("return err")
		}, "if err := %s.Unmarshal(data, &j); err != nil {", g.use("github.com/goccy/go-json"))
		e.Line("m.Reset()")
		for _, f := range m.fieldsExceptOneof() {
			if f.isGroup() {
				continue
			}
			switch f.kind {
			case fieldKind_REPEATED, fieldKind_MAP:
				e.Linef("m.%s = j.%s", f.storeName, f.goName)
			default:
				g.emitShadowRestore(f, "m."+f.storeName, "j."+f.goName)
			}
		}
		for _, o := range m.oneofs {
			members := o.publicMembers()
			if len(members) == 0 {
				continue
			}
			// First declared member present in the document wins.
			e.Switch("switch {", func() {
				for _, f := range members {
					e.Casef(func() {
						val := "j." + f.goName
						if !f.shadowIsRef(g) {
							val = "*" + val
						}
						e.Linef("m.%s = &%s{%s: %s}", o.storeName, f.wrapperName(), f.goName, val)
					}, "case j.%s != nil:", f.goName)
				}
			})
		}
		e.Line("return nil")
	}, "func (m *%s) UnmarshalJSON(data []byte) error {", m.goName)
}

func (g *generator) emitShadowRestore(f *fieldInfo, dst, src string) {
	e := g.body
	switch {
	case f.shadowIsRef(g):
		e.Linef("%s = %s", dst, src)
	case f.presencePointer():
		e.Linef("%s = %s", dst, src)
	default:
		e.Blockf(func() {
			e.Linef("%s = *%s", dst, src)
		}, "if %s != nil {", src)
	}
}
