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

	"google.golang.org/protobuf/reflect/protoreflect"
)

// This file emits the three wire-facing procedures of a message: the
// decode dispatch loop, the size computation, and the encode sequence.
// The decode loop is a switch over (field number, wire type) pairs; a
// tag that matches no arm, including a known number carrying the wrong
// wire type, falls through to the unknown-field bag.

func (g *generator) emitUnmarshal(m *messageInfo) {
	e := g.body
	pw := g.protowire()

	e.Commentf("Unmarshal merges wire data into %s. Singular scalar fields", m.goName)
	e.Comment("take the last value seen; repeated fields append; map entries")
	e.Comment("overwrite by key. Unrecognized fields are preserved.")
	e.Blockf(func() {
		e.Block("for len(data) > 0 {", func() {
			e.Linef("num, typ, n := %s.ConsumeTag(data)", pw)
			g.emitParseErrCheck("n")
			e.Line("data = data[n:]")
			e.Switch("switch {", func() {
				for _, f := range m.fields {
					g.emitDecodeArms(f)
				}
				e.Case("default:", func() {
					e.Line("n := m.unknownFields.Capture(num, typ, data)")
					g.emitParseErrCheck("n")
					e.Line("data = data[n:]")
				})
			})
		})
		e.Line("return nil")
	}, "func (m *%s) Unmarshal(data []byte) error {", m.goName)
}

func (g *generator) emitParseErrCheck(n string) {
	g.body.Blockf(func() {
		g.body.Linef("return %s.ParseError(%s)", g.pbrt(), n)
	}, "if %s < 0 {", n)
}

// emitConsume emits `v, n := Consume*(buf)` with the error check and the
// buffer advance, binding the raw element value to name v.
func (g *generator) emitConsume(f *fieldInfo, v, buf string) {
	e := g.body
	if f.isGroup() {
		e.Linef("%s, n := %s.ConsumeGroup(%d, %s)", v, g.protowire(), f.number, buf)
	} else {
		e.Linef("%s, n := %s(%s)", v, f.consumeFn(g), buf)
	}
	g.emitParseErrCheck("n")
	e.Linef("%s = %s[n:]", buf, buf)
}

// emitDecodeMessageElem decodes one message (or group body) element from
// raw bytes v into a fresh value named mm.
func (g *generator) emitDecodeMessageElem(f *fieldInfo, mm, v string) {
	e := g.body
	e.Linef("%s := new(%s)", mm, g.messageRef(f.desc.Message()))
	e.Blockf(func() {
		e.Line("return err")
	}, "if err := %s.Unmarshal(%s); err != nil {", mm, v)
}

func (g *generator) emitDecodeArms(f *fieldInfo) {
	e := g.body
	armLabel := "case num == %d && typ == %s:"

	switch f.kind {
	case fieldKind_MAP:
		e.Casef(func() {
			e.Linef("v, n := %s.ConsumeBytes(data)", g.protowire())
			g.emitParseErrCheck("n")
			e.Line("data = data[n:]")
			g.emitDecodeMapEntry(f)
		}, armLabel, f.number, g.protowire()+".BytesType")

	case fieldKind_ONEOF:
		e.Casef(func() {
			g.emitConsume(f, "v", "data")
			if f.isMessageElem() {
				g.emitDecodeMessageElem(f, "mm", "v")
				e.Linef("m.%s = &%s{%s: mm}", f.oneof.storeName, f.wrapperName(), f.goName)
			} else {
				e.Linef("m.%s = &%s{%s: %s}",
					f.oneof.storeName, f.wrapperName(), f.goName,
					f.decodeConvExpr(g, "v"))
			}
		}, armLabel, f.number, f.wireTypeExpr(g))

	case fieldKind_REPEATED:
		e.Casef(func() {
			g.emitConsume(f, "v", "data")
			if f.isMessageElem() {
				g.emitDecodeMessageElem(f, "mm", "v")
				e.Linef("m.%s = append(m.%s, mm)", f.storeName, f.storeName)
			} else {
				e.Linef("m.%s = append(m.%s, %s)",
					f.storeName, f.storeName, f.decodeConvExpr(g, "v"))
			}
		}, armLabel, f.number, f.wireTypeExpr(g))
		if f.packable() {
			// The packed form is accepted whether or not the schema asks
			// for packed encoding.
			e.Casef(func() {
				e.Linef("v, n := %s.ConsumeBytes(data)", g.protowire())
				g.emitParseErrCheck("n")
				e.Line("data = data[n:]")
				e.Block("for len(v) > 0 {", func() {
					g.emitConsume(f, "ev", "v")
					e.Linef("m.%s = append(m.%s, %s)",
						f.storeName, f.storeName, f.decodeConvExpr(g, "ev"))
				})
			}, armLabel, f.number, g.protowire()+".BytesType")
		}

	default: // fieldKind_SINGULAR
		e.Casef(func() {
			g.emitConsume(f, "v", "data")
			if f.isMessageElem() {
				g.emitDecodeMessageElem(f, "mm", "v")
				e.Linef("m.%s = mm", f.storeName)
			} else if f.presencePointer() {
				e.Linef("m.%s = %s.Ptr(%s)", f.storeName, g.pbrt(), f.decodeConvExpr(g, "v"))
			} else {
				e.Linef("m.%s = %s", f.storeName, f.decodeConvExpr(g, "v"))
			}
		}, armLabel, f.number, f.wireTypeExpr(g))
	}
}

// emitDecodeMapEntry decodes one synthetic entry message held in v.
func (g *generator) emitDecodeMapEntry(f *fieldInfo) {
	e := g.body
	pw := g.protowire()
	key, val := f.key, f.val

	e.Linef("var mk %s", key.goElemType(g))
	e.Linef("var mv %s", val.goElemType(g))
	e.Block("for len(v) > 0 {", func() {
		e.Linef("num, typ, n := %s.ConsumeTag(v)", pw)
		g.emitParseErrCheck("n")
		e.Line("v = v[n:]")
		e.Switch("switch {", func() {
			e.Casef(func() {
				g.emitConsume(key, "ev", "v")
				e.Linef("mk = %s", key.decodeConvExpr(g, "ev"))
			}, "case num == 1 && typ == %s:", key.wireTypeExpr(g))
			e.Casef(func() {
				g.emitConsume(val, "ev", "v")
				if val.isMessageElem() {
					g.emitDecodeMessageElem(val, "mm", "ev")
					e.Line("mv = mm")
				} else {
					e.Linef("mv = %s", val.decodeConvExpr(g, "ev"))
				}
			}, "case num == 2 && typ == %s:", val.wireTypeExpr(g))
			e.Case("default:", func() {
				e.Linef("n := %s.ConsumeFieldValue(num, typ, v)", pw)
				g.emitParseErrCheck("n")
				e.Line("v = v[n:]")
			})
		})
	})
	if val.isMessageElem() {
		e.Block("if mv == nil {", func() {
			e.Linef("mv = new(%s)", g.messageRef(val.desc.Message()))
		})
	}
	e.Blockf(func() {
		e.Linef("m.%s = make(map[%s]%s)", f.storeName, key.goElemType(g), val.goElemType(g))
	}, "if m.%s == nil {", f.storeName)
	e.Linef("m.%s[mk] = mv", f.storeName)
}

// emitSize writes the Size method: the pure sum of every present field's
// wire contribution plus the unknown bag, stored into the cached-size
// slot. Nested messages are sized before their parents need the length.
func (g *generator) emitSize(m *messageInfo) {
	e := g.body

	e.Comment("Size computes the encoded byte length and caches the result.")
	e.Comment("It must run, without intervening mutation, before MarshalAppend.")
	e.Blockf(func() {
		e.Line("size := 0")
		for _, f := range m.fieldsExceptOneof() {
			g.emitSizeField(f)
		}
		for _, o := range m.oneofs {
			g.emitSizeOneof(o)
		}
		e.Line("size += m.unknownFields.Size()")
		e.Line("m.cachedSize.Store(size)")
		e.Line("return size")
	}, "func (m *%s) Size() int {", m.goName)
	e.Blank()
	e.Blockf(func() {
		e.Line("return m.cachedSize.Load()")
	}, "func (m *%s) CachedSize() int {", m.goName)
}

func (f *fieldInfo) sizeTagExpr(g *generator) string {
	return fmt.Sprintf("%s.SizeTag(%d)", g.protowire(), f.number)
}

func (g *generator) emitSizeField(f *fieldInfo) {
	e := g.body
	pw := g.protowire()

	switch f.kind {
	case fieldKind_MAP:
		e.Blockf(func() {
			e.Linef("sz := %s.SizeTag(1) + %s + %s.SizeTag(2) + %s",
				pw, f.key.sizeElemExpr(g, "k"), pw, f.val.sizeElemExpr(g, "v"))
			e.Linef("size += %s + %s.SizeBytes(sz)", f.sizeTagExpr(g), pw)
		}, "for k, v := range m.%s {", f.storeName)
	case fieldKind_REPEATED:
		if f.packed() {
			e.Blockf(func() {
				e.Line("sz := 0")
				e.Blockf(func() {
					e.Linef("sz += %s", f.sizeElemExpr(g, "v"))
				}, "for _, v := range m.%s {", f.storeName)
				e.Linef("size += %s + %s.SizeBytes(sz)", f.sizeTagExpr(g), pw)
			}, "if len(m.%s) > 0 {", f.storeName)
		} else {
			e.Blockf(func() {
				if f.isGroup() {
					e.Linef("size += %s", f.sizeElemExpr(g, "v"))
				} else {
					e.Linef("size += %s + %s", f.sizeTagExpr(g), f.sizeElemExpr(g, "v"))
				}
			}, "for _, v := range m.%s {", f.storeName)
		}
	default:
		val := "m." + f.storeName
		if f.presencePointer() {
			val = "*" + val
		}
		e.Blockf(func() {
			if f.isGroup() {
				e.Linef("size += %s", f.sizeElemExpr(g, val))
			} else {
				e.Linef("size += %s + %s", f.sizeTagExpr(g), f.sizeElemExpr(g, val))
			}
		}, "if %s {", f.presentCheckExpr(g, "m"))
	}
}

func (g *generator) emitSizeOneof(o *oneofInfo) {
	e := g.body
	e.Switchf(func() {
		for _, f := range o.members {
			e.Casef(func() {
				val := "v." + f.goName
				if f.isGroup() {
					e.Linef("size += %s", f.sizeElemExpr(g, val))
				} else {
					e.Linef("size += %s + %s", f.sizeTagExpr(g), f.sizeElemExpr(g, val))
				}
			}, "case *%s:", f.wrapperName())
		}
	}, "switch v := m.%s.(type) {", o.storeName)
}

// emitMarshal writes MarshalAppend: declaration-order fields, then each
// oneof's active variant, then the unknown bag verbatim. Length prefixes
// of nested messages come from the preceding Size pass.
func (g *generator) emitMarshal(m *messageInfo) {
	e := g.body

	e.Comment("MarshalAppend encodes the message onto b. Call Size first; nested")
	e.Comment("length prefixes are taken from the cached sizes it computed.")
	e.Blockf(func() {
		for _, f := range m.fieldsExceptOneof() {
			g.emitMarshalField(f)
		}
		for _, o := range m.oneofs {
			g.emitMarshalOneof(o)
		}
		e.Line("b = m.unknownFields.Append(b)")
		e.Line("return b")
	}, "func (m *%s) MarshalAppend(b []byte) []byte {", m.goName)
}

func (g *generator) emitAppendTag(f *fieldInfo) {
	g.body.Linef("b = %s.AppendTag(b, %d, %s)", g.protowire(), f.number, f.wireTypeExpr(g))
}

func (g *generator) emitMarshalField(f *fieldInfo) {
	e := g.body
	pw := g.protowire()

	switch f.kind {
	case fieldKind_MAP:
		// Entries are emitted in sorted key order so equal maps encode to
		// equal bytes. Bool keys are not sortable; false precedes true.
		entry := func() {
			e.Linef("sz := %s.SizeTag(1) + %s + %s.SizeTag(2) + %s",
				pw, f.key.sizeElemExpr(g, "k"), pw, f.val.sizeElemExpr(g, "v"))
			g.emitAppendTag(f)
			e.Linef("b = %s.AppendVarint(b, uint64(sz))", pw)
			e.Linef("b = %s.AppendTag(b, 1, %s)", pw, f.key.wireTypeExpr(g))
			f.key.appendElemStmts(g, "k")
			e.Linef("b = %s.AppendTag(b, 2, %s)", pw, f.val.wireTypeExpr(g))
			f.val.appendElemStmts(g, "v")
		}
		e.Blockf(func() {
			if f.key.desc.Kind() == protoreflect.BoolKind {
				e.Block("for _, k := range [2]bool{false, true} {", func() {
					e.Linef("v, ok := m.%s[k]", f.storeName)
					e.Block("if !ok {", func() {
						e.Line("continue")
					})
					entry()
				})
			} else {
				e.Linef("keys := make([]%s, 0, len(m.%s))", f.key.goElemType(g), f.storeName)
				e.Blockf(func() {
					e.Line("keys = append(keys, k)")
				}, "for k := range m.%s {", f.storeName)
				e.Linef("%s.Sort(keys)", g.use("slices"))
				e.Block("for _, k := range keys {", func() {
					e.Linef("v := m.%s[k]", f.storeName)
					entry()
				})
			}
		}, "if len(m.%s) > 0 {", f.storeName)
	case fieldKind_REPEATED:
		if f.packed() {
			e.Blockf(func() {
				e.Linef("b = %s.AppendTag(b, %d, %s.BytesType)", pw, f.number, pw)
				e.Line("sz := 0")
				e.Blockf(func() {
					e.Linef("sz += %s", f.sizeElemExpr(g, "v"))
				}, "for _, v := range m.%s {", f.storeName)
				e.Linef("b = %s.AppendVarint(b, uint64(sz))", pw)
				e.Blockf(func() {
					f.appendElemStmts(g, "v")
				}, "for _, v := range m.%s {", f.storeName)
			}, "if len(m.%s) > 0 {", f.storeName)
		} else {
			e.Blockf(func() {
				g.emitAppendTag(f)
				f.appendElemStmts(g, "v")
			}, "for _, v := range m.%s {", f.storeName)
		}
	default:
		val := "m." + f.storeName
		if f.presencePointer() {
			val = "*" + val
		}
		e.Blockf(func() {
			g.emitAppendTag(f)
			f.appendElemStmts(g, val)
		}, "if %s {", f.presentCheckExpr(g, "m"))
	}
}

func (g *generator) emitMarshalOneof(o *oneofInfo) {
	e := g.body
	e.Switchf(func() {
		for _, f := range o.members {
			e.Casef(func() {
				g.emitAppendTag(f)
				f.appendElemStmts(g, "v."+f.goName)
			}, "case *%s:", f.wrapperName())
		}
	}, "switch v := m.%s.(type) {", o.storeName)
}
