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

// oneofInfo models one oneof declaration as a tagged union: an unexported
// single-method interface plus one wrapper struct per member. Group
// members keep their wrapper (decode needs a variant to install) but the
// wrapper type is unexported, so the public variant surface excludes
// them.
type oneofInfo struct {
	desc      protoreflect.OneofDescriptor
	msgGoName string
	goName    string
	storeName string
	exposed   bool
	members   []*fieldInfo
}

func (g *generator) modelOneof(od protoreflect.OneofDescriptor, msgGoName string, exposed bool) *oneofInfo {
	o := &oneofInfo{
		desc:      od,
		msgGoName: msgGoName,
		goName:    goCamelCase(string(od.Name())),
		exposed:   exposed,
	}
	o.storeName = o.goName
	if !exposed {
		o.storeName = unexported(o.goName)
	}
	return o
}

// ifaceName is the union's type name. The interface itself is always
// unexported; the storage field's exposure is what the expose-oneof
// option controls.
func (o *oneofInfo) ifaceName() string {
	return "is" + o.msgGoName + "_" + o.goName
}

func (o *oneofInfo) tagMethodName() string {
	return o.ifaceName() + "()"
}

// publicMembers are the variants that appear on the public surface.
func (o *oneofInfo) publicMembers() []*fieldInfo {
	var out []*fieldInfo
	for _, f := range o.members {
		if !f.isGroup() {
			out = append(out, f)
		}
	}
	return out
}

// wrapperName is the variant struct holding one member's value.
func (f *fieldInfo) wrapperName() string {
	name := f.oneof.msgGoName + "_" + f.goName
	if f.isGroup() {
		return unexported(name)
	}
	return name
}

// emitOneofTypes writes the union interface and its variant wrappers.
func (g *generator) emitOneofTypes(o *oneofInfo) {
	e := g.body
	e.Blockf(func() {
		e.Linef("%s()", o.ifaceName())
	}, "type %s interface {", o.ifaceName())

	for _, f := range o.members {
		e.Blank()
		e.Blockf(func() {
			e.Linef("%s %s", f.goName, f.goElemType(g))
		}, "type %s struct {", f.wrapperName())
		e.Blank()
		e.Linef("func (*%s) %s() {}", f.wrapperName(), o.ifaceName())
	}
}
