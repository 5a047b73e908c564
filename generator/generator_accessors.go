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

// Accessor emission. Getters are nil-receiver safe and substitute the
// schema default when the field is unset. Setting a oneof member
// displaces whichever sibling was active. Group-typed fields get no
// accessors.

func (g *generator) emitAccessors(m *messageInfo) {
	for _, f := range m.fields {
		if f.isGroup() {
			continue
		}
		g.body.Blank()
		switch f.kind {
		case fieldKind_ONEOF:
			g.emitOneofMemberAccessors(m, f)
		case fieldKind_MAP:
			g.emitMapAccessors(m, f)
		case fieldKind_REPEATED:
			g.emitRepeatedAccessors(m, f)
		default:
			g.emitSingularAccessors(m, f)
		}
	}
	for _, o := range m.oneofs {
		g.body.Blank()
		g.emitOneofAccessors(m, o)
	}
}

func (g *generator) emitSingularAccessors(m *messageInfo, f *fieldInfo) {
	e := g.body
	elem := f.goElemType(g)

	e.Blockf(func() {
		if f.explicitPresence() {
			e.Blockf(func() {
				if f.presencePointer() {
					e.Linef("return *m.%s", f.storeName)
				} else {
					e.Linef("return m.%s", f.storeName)
				}
			}, "if m != nil && m.%s != nil {", f.storeName)
			e.Linef("return %s", f.defaultLiteral(g))
		} else {
			e.Block("if m != nil {", func() {
				e.Linef("return m.%s", f.storeName)
			})
			e.Linef("return %s", f.zeroLiteral(g))
		}
	}, "func (m *%s) Get%s() %s {", m.goName, f.goName, elem)

	if f.explicitPresence() {
		e.Blank()
		e.Blockf(func() {
			e.Linef("return m != nil && m.%s != nil", f.storeName)
		}, "func (m *%s) Has%s() bool {", m.goName, f.goName)
	}

	e.Blank()
	e.Blockf(func() {
		if f.presencePointer() {
			e.Linef("m.%s = %s.Ptr(v)", f.storeName, g.pbrt())
		} else {
			e.Linef("m.%s = v", f.storeName)
		}
	}, "func (m *%s) Set%s(v %s) {", m.goName, f.goName, elem)

	e.Blank()
	e.Blockf(func() {
		e.Linef("m.%s = %s", f.storeName, f.clearLiteral(g))
	}, "func (m *%s) Clear%s() {", m.goName, f.goName)

	if f.isMessageElem() {
		e.Blank()
		e.Commentf("Mutable%s returns the held message, allocating it if unset.", f.goName)
		e.Blockf(func() {
			e.Blockf(func() {
				e.Linef("m.%s = new(%s)", f.storeName, g.messageRef(f.desc.Message()))
			}, "if m.%s == nil {", f.storeName)
			e.Linef("return m.%s", f.storeName)
		}, "func (m *%s) Mutable%s() %s {", m.goName, f.goName, elem)
	}
}

func (g *generator) emitRepeatedAccessors(m *messageInfo, f *fieldInfo) {
	e := g.body
	typ := f.goStorageType(g)

	e.Blockf(func() {
		e.Block("if m != nil {", func() {
			e.Linef("return m.%s", f.storeName)
		})
		e.Line("return nil")
	}, "func (m *%s) Get%s() %s {", m.goName, f.goName, typ)
	e.Blank()
	e.Blockf(func() {
		e.Linef("m.%s = v", f.storeName)
	}, "func (m *%s) Set%s(v %s) {", m.goName, f.goName, typ)
	e.Blank()
	e.Blockf(func() {
		e.Linef("m.%s = nil", f.storeName)
	}, "func (m *%s) Clear%s() {", m.goName, f.goName)
}

func (g *generator) emitMapAccessors(m *messageInfo, f *fieldInfo) {
	e := g.body
	typ := f.goStorageType(g)

	e.Blockf(func() {
		e.Block("if m != nil {", func() {
			e.Linef("return m.%s", f.storeName)
		})
		e.Line("return nil")
	}, "func (m *%s) Get%s() %s {", m.goName, f.goName, typ)
	e.Blank()
	e.Blockf(func() {
		e.Linef("m.%s = v", f.storeName)
	}, "func (m *%s) Set%s(v %s) {", m.goName, f.goName, typ)
	e.Blank()
	e.Commentf("Mutable%s returns the map, allocating it if nil.", f.goName)
	e.Blockf(func() {
		e.Blockf(func() {
			e.Linef("m.%s = make(%s)", f.storeName, typ)
		}, "if m.%s == nil {", f.storeName)
		e.Linef("return m.%s", f.storeName)
	}, "func (m *%s) Mutable%s() %s {", m.goName, f.goName, typ)
	e.Blank()
	e.Blockf(func() {
		e.Linef("m.%s = nil", f.storeName)
	}, "func (m *%s) Clear%s() {", m.goName, f.goName)
}

func (g *generator) emitOneofMemberAccessors(m *messageInfo, f *fieldInfo) {
	e := g.body
	o := f.oneof
	elem := f.goElemType(g)

	e.Blockf(func() {
		e.Block("if m != nil {", func() {
			e.Blockf(func() {
				e.Linef("return v.%s", f.goName)
			}, "if v, ok := m.%s.(*%s); ok {", o.storeName, f.wrapperName())
		})
		e.Linef("return %s", f.defaultLiteral(g))
	}, "func (m *%s) Get%s() %s {", m.goName, f.goName, elem)

	e.Blank()
	e.Blockf(func() {
		e.Block("if m == nil {", func() {
			e.Line("return false")
		})
		e.Linef("_, ok := m.%s.(*%s)", o.storeName, f.wrapperName())
		e.Line("return ok")
	}, "func (m *%s) Has%s() bool {", m.goName, f.goName)

	e.Blank()
	e.Commentf("Set%s selects this member of the %s oneof, displacing", f.goName, o.desc.Name())
	e.Comment("whichever member was previously active.")
	e.Blockf(func() {
		e.Linef("m.%s = &%s{%s: v}", o.storeName, f.wrapperName(), f.goName)
	}, "func (m *%s) Set%s(v %s) {", m.goName, f.goName, elem)

	e.Blank()
	e.Commentf("Clear%s clears the oneof only when this member is active.", f.goName)
	e.Blockf(func() {
		e.Blockf(func() {
			e.Linef("m.%s = nil", o.storeName)
		}, "if _, ok := m.%s.(*%s); ok {", o.storeName, f.wrapperName())
	}, "func (m *%s) Clear%s() {", m.goName, f.goName)

	if f.isMessageElem() {
		e.Blank()
		e.Commentf("Mutable%s selects this member if needed and returns its message.", f.goName)
		e.Blockf(func() {
			e.Linef("v, ok := m.%s.(*%s)", o.storeName, f.wrapperName())
			e.Block("if !ok {", func() {
				e.Linef("v = &%s{%s: new(%s)}", f.wrapperName(), f.goName, g.messageRef(f.desc.Message()))
				e.Linef("m.%s = v", o.storeName)
			})
			e.Blockf(func() {
				e.Linef("v.%s = new(%s)", f.goName, g.messageRef(f.desc.Message()))
			}, "if v.%s == nil {", f.goName)
			e.Linef("return v.%s", f.goName)
		}, "func (m *%s) Mutable%s() %s {", m.goName, f.goName, elem)
	}
}

func (g *generator) emitOneofAccessors(m *messageInfo, o *oneofInfo) {
	e := g.body
	e.Blockf(func() {
		e.Block("if m != nil {", func() {
			e.Linef("return m.%s", o.storeName)
		})
		e.Line("return nil")
	}, "func (m *%s) Get%s() %s {", m.goName, o.goName, o.ifaceName())
	e.Blank()
	e.Blockf(func() {
		e.Linef("return m != nil && m.%s != nil", o.storeName)
	}, "func (m *%s) Has%s() bool {", m.goName, o.goName)
	e.Blank()
	e.Blockf(func() {
		e.Linef("m.%s = nil", o.storeName)
	}, "func (m *%s) Clear%s() {", m.goName, o.goName)
}
