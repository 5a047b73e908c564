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
	"strconv"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/gengliqi/pbgen/customize"
)

// messageInfo is the fully classified view of one message: its effective
// customization, its fields in declaration order, and its oneof unions.
type messageInfo struct {
	desc   protoreflect.MessageDescriptor
	opts   customize.Customization
	goName string
	fields []*fieldInfo
	oneofs []*oneofInfo
}

func (g *generator) classifyMessage(md protoreflect.MessageDescriptor, base customize.Customization) (*messageInfo, error) {
	opts, unknown := customize.ForMessage(messageOptions(md), base)
	for _, num := range unknown {
		g.warn(warnUnknownOption(num, string(md.FullName())))
	}
	m := &messageInfo{
		desc:   md,
		opts:   opts,
		goName: messageGoName(md),
	}

	oneofs := make(map[protoreflect.FullName]*oneofInfo)
	ods := md.Oneofs()
	for ii := 0; ii < ods.Len(); ii++ {
		od := ods.Get(ii)
		if od.IsSynthetic() {
			continue
		}
		o := g.modelOneof(od, m.goName, opts.ExposeOneof)
		oneofs[od.FullName()] = o
		m.oneofs = append(m.oneofs, o)
	}

	fds := md.Fields()
	for ii := 0; ii < fds.Len(); ii++ {
		f, err := g.classifyField(fds.Get(ii), opts)
		if err != nil {
			return nil, err
		}
		if f.kind == fieldKind_ONEOF {
			o := oneofs[f.desc.ContainingOneof().FullName()]
			f.oneof = o
			o.members = append(o.members, f)
		}
		m.fields = append(m.fields, f)
	}
	return m, nil
}

// fieldsExceptOneof is every field stored directly on the struct, in
// declaration order. Oneof members live behind their union's storage
// field instead.
func (m *messageInfo) fieldsExceptOneof() []*fieldInfo {
	var out []*fieldInfo
	for _, f := range m.fields {
		if f.kind != fieldKind_ONEOF {
			out = append(out, f)
		}
	}
	return out
}

// compileMessage emits the complete Go rendition of one message and
// recurses into its nested declarations. Synthetic map entry messages
// are compiled into their containing field instead.
func (g *generator) compileMessage(md protoreflect.MessageDescriptor, base customize.Customization) error {
	if md.IsMapEntry() {
		return nil
	}
	m, err := g.classifyMessage(md, base)
	if err != nil {
		return err
	}

	g.emitStruct(m)
	for _, o := range m.oneofs {
		g.body.Blank()
		g.emitOneofTypes(o)
	}
	g.body.Blank()
	g.body.Linef("var _ %s.Message = (*%s)(nil)", g.pbrt(), m.goName)
	g.body.Blank()
	g.emitNew(m)
	if m.opts.GenerateAccessors {
		g.emitAccessors(m)
	}
	g.body.Blank()
	g.emitUnmarshal(m)
	g.body.Blank()
	g.emitSize(m)
	g.body.Blank()
	g.emitMarshal(m)
	g.body.Blank()
	g.emitIsInitialized(m)
	g.body.Blank()
	g.emitReset(m)
	g.body.Blank()
	g.emitDefault(m)
	if !m.opts.LiteRuntime {
		g.body.Blank()
		g.emitDescriptor(m)
	}
	g.body.Blank()
	g.emitString(m)
	if m.opts.SerializeWithExternalFormat {
		g.emitExternalFormat(m)
	}

	nested := md.Messages()
	for ii := 0; ii < nested.Len(); ii++ {
		if nested.Get(ii).IsMapEntry() {
			continue
		}
		g.body.Blank()
		if err := g.compileMessage(nested.Get(ii), m.opts); err != nil {
			return err
		}
	}
	enums := md.Enums()
	for ii := 0; ii < enums.Len(); ii++ {
		g.body.Blank()
		g.emitEnum(enums.Get(ii))
	}
	return nil
}

func (g *generator) emitStruct(m *messageInfo) {
	e := g.body
	e.Blockf(func() {
		seen := make(map[string]bool)
		for _, f := range m.fields {
			if f.kind == fieldKind_ONEOF {
				o := f.oneof
				if !seen[o.storeName] {
					seen[o.storeName] = true
					e.Linef("%s %s // oneof %s", o.storeName, o.ifaceName(), o.desc.Name())
				}
				continue
			}
			e.Linef("%s %s // %s", f.storeName, f.goStorageType(g), f.tagComment())
		}
		if len(m.fields) > 0 {
			e.Blank()
		}
		e.Linef("unknownFields %s.UnknownFields", g.pbrt())
		e.Linef("cachedSize    %s.CachedSize", g.pbrt())
	}, "type %s struct {", m.goName)
}

func (g *generator) emitNew(m *messageInfo) {
	e := g.body
	e.Blockf(func() {
		e.Linef("return new(%s)", m.goName)
	}, "func New%s() *%s {", m.goName, m.goName)
}

// emitIsInitialized checks required presence on this message and walks
// every reachable message-typed value except map values.
func (g *generator) emitIsInitialized(m *messageInfo) {
	e := g.body
	e.Blockf(func() {
		for _, f := range m.fieldsExceptOneof() {
			if f.required() {
				e.Blockf(func() {
					e.Line("return false")
				}, "if m.%s == nil {", f.storeName)
			}
		}
		for _, f := range m.fieldsExceptOneof() {
			switch {
			case f.kind == fieldKind_SINGULAR && f.isMessageElem():
				e.Blockf(func() {
					e.Line("return false")
				}, "if m.%s != nil && !m.%s.IsInitialized() {", f.storeName, f.storeName)
			case f.kind == fieldKind_REPEATED && f.isMessageElem():
				e.Blockf(func() {
					e.Blockf(func() {
						e.Line("return false")
					}, "if !v.IsInitialized() {")
				}, "for _, v := range m.%s {", f.storeName)
			}
		}
		for _, o := range m.oneofs {
			var members []*fieldInfo
			for _, f := range o.members {
				if f.isMessageElem() {
					members = append(members, f)
				}
			}
			if len(members) == 0 {
				continue
			}
			e.Switchf(func() {
				for _, f := range members {
					e.Casef(func() {
						e.Blockf(func() {
							e.Line("return false")
						}, "if v.%s != nil && !v.%s.IsInitialized() {", f.goName, f.goName)
					}, "case *%s:", f.wrapperName())
				}
			}, "switch v := m.%s.(type) {", o.storeName)
		}
		e.Line("return true")
	}, "func (m *%s) IsInitialized() bool {", m.goName)
}

func (g *generator) emitReset(m *messageInfo) {
	e := g.body
	e.Blockf(func() {
		for _, f := range m.fieldsExceptOneof() {
			e.Linef("m.%s = %s", f.storeName, f.clearLiteral(g))
		}
		for _, o := range m.oneofs {
			e.Linef("m.%s = nil", o.storeName)
		}
		e.Line("m.unknownFields.Clear()")
		e.Line("m.cachedSize.Store(0)")
	}, "func (m *%s) Reset() {", m.goName)
}

func (f *fieldInfo) clearLiteral(g *generator) string {
	switch f.kind {
	case fieldKind_REPEATED, fieldKind_MAP:
		return "nil"
	}
	if f.presencePointer() {
		return "nil"
	}
	return f.zeroLiteral(g)
}

// emitDefault writes the shared read-only default instance, constructed
// on first use.
func (g *generator) emitDefault(m *messageInfo) {
	e := g.body
	open := fmt.Sprintf("var default%s = %s.OnceValue(func() *%s {", m.goName, g.use("sync"), m.goName)
	e.BlockEnd(open, "})", func() {
		e.Linef("return new(%s)", m.goName)
	})
	e.Blank()
	e.Commentf("Default%s returns the shared empty instance. Read-only.", m.goName)
	e.Blockf(func() {
		e.Linef("return default%s()", m.goName)
	}, "func Default%s() *%s {", m.goName, m.goName)
}

func (g *generator) emitString(m *messageInfo) {
	e := g.body
	e.Blockf(func() {
		e.Block("if m == nil {", func() {
			e.Line(`return ""`)
		})
		e.Linef("p := %s.NewPrinter()", g.pbrt())
		for _, f := range m.fieldsExceptOneof() {
			g.emitStringField(f)
		}
		for _, o := range m.oneofs {
			g.emitStringOneof(o)
		}
		e.Line("return p.String()")
	}, "func (m *%s) String() string {", m.goName)
}

func (g *generator) emitStringField(f *fieldInfo) {
	e := g.body
	if f.isGroup() {
		return
	}
	name := string(f.desc.Name())
	switch f.kind {
	case fieldKind_MAP:
		e.Blockf(func() {
			e.Linef("p.Field(%q, m.%s)", name, f.storeName)
		}, "if len(m.%s) > 0 {", f.storeName)
	case fieldKind_REPEATED:
		e.Blockf(func() {
			e.Linef("p.Field(%q, v)", name)
		}, "for _, v := range m.%s {", f.storeName)
	default:
		val := "m." + f.storeName
		if f.presencePointer() {
			val = "*" + val
		}
		e.Blockf(func() {
			e.Linef("p.Field(%q, %s)", name, val)
		}, "if %s {", f.presentCheckExpr(g, "m"))
	}
}

func (g *generator) emitStringOneof(o *oneofInfo) {
	e := g.body
	members := o.publicMembers()
	if len(members) == 0 {
		return
	}
	e.Switchf(func() {
		for _, f := range members {
			e.Casef(func() {
				e.Linef("p.Field(%q, v.%s)", string(f.desc.Name()), f.goName)
			}, "case *%s:", f.wrapperName())
		}
	}, "switch v := m.%s.(type) {", o.storeName)
}

// emitDescriptor registers the runtime reflection record. Group-typed
// fields are excluded from the accessor list.
func (g *generator) emitDescriptor(m *messageInfo) {
	e := g.body
	rt := g.pbrt()
	varName := unexported(m.goName) + "Descriptor"

	e.BlockEnd(
		"var "+varName+" = "+rt+".LazyDescriptor("+quote(string(m.desc.FullName()))+", func() *"+rt+".MessageDescriptor {",
		"})",
		func() {
			e.BlockEnd("return &"+rt+".MessageDescriptor{", "}", func() {
				e.Linef("FullName: %q,", string(m.desc.FullName()))
				e.Linef("File:     %q,", m.desc.ParentFile().Path())
				e.BlockEnd("Fields: []"+rt+".FieldAccessor{", "},", func() {
					for _, f := range m.fields {
						if f.isGroup() {
							continue
						}
						g.emitFieldAccessorRecord(m, f)
					}
				})
			})
		})
	e.Blank()
	e.Blockf(func() {
		e.Linef("return %s()", varName)
	}, "func (m *%s) Descriptor() *%s.MessageDescriptor {", m.goName, rt)
}

func (g *generator) emitFieldAccessorRecord(m *messageInfo, f *fieldInfo) {
	e := g.body
	cast := "msg.(*" + m.goName + ")"
	e.BlockEnd("{", "},", func() {
		e.Linef("Name: %q,", string(f.desc.Name()))
		if f.kind == fieldKind_ONEOF {
			e.BlockEnd("Has: func(msg any) bool {", "},", func() {
				e.Linef("_, ok := %s.%s.(*%s)", cast, f.oneof.storeName, f.wrapperName())
				e.Line("return ok")
			})
			e.BlockEnd("Get: func(msg any) any {", "},", func() {
				e.Blockf(func() {
					e.Linef("return v.%s", f.goName)
				}, "if v, ok := %s.%s.(*%s); ok {", cast, f.oneof.storeName, f.wrapperName())
				e.Line("return nil")
			})
			e.BlockEnd("Set: func(msg any, v any) {", "},", func() {
				e.Linef("%s.%s = &%s{%s: v.(%s)}",
					cast, f.oneof.storeName, f.wrapperName(), f.goName, f.goElemType(g))
			})
			return
		}
		switch f.kind {
		case fieldKind_MAP:
			e.Linef("Has: func(msg any) bool { return len(%s.%s) > 0 },", cast, f.storeName)
		case fieldKind_REPEATED:
			e.Linef("Has: func(msg any) bool { return len(%s.%s) > 0 },", cast, f.storeName)
		default:
			e.Linef("Has: func(msg any) bool { return %s },", f.presentCheckExpr(g, cast))
		}
		e.Linef("Get: func(msg any) any { return %s.%s },", cast, f.storeName)
		e.Linef("Set: func(msg any, v any) { %s.%s = v.(%s) },", cast, f.storeName, f.goStorageType(g))
	})
}

func quote(s string) string {
	return strconv.Quote(s)
}

func messageOptions(md protoreflect.MessageDescriptor) *descriptorpb.MessageOptions {
	opts, _ := md.Options().(*descriptorpb.MessageOptions)
	return opts
}
