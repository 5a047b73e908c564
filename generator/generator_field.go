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
	"math"
	"strconv"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/gengliqi/pbgen/customize"
)

type fieldKind uint8

const (
	fieldKind_UNKNOWN fieldKind = iota
	fieldKind_SINGULAR
	fieldKind_REPEATED
	fieldKind_MAP
	fieldKind_ONEOF
)

// fieldInfo is the classified view of one field descriptor: its kind, its
// effective customization, and its in-memory storage shape.
type fieldInfo struct {
	desc   protoreflect.FieldDescriptor
	opts   customize.Customization
	kind   fieldKind
	number protowire.Number

	// goName is the exported accessor base name; storeName is the struct
	// field name, lowercased when the field is not exposed.
	goName    string
	storeName string
	exposed   bool

	// oneof is set for fieldKind_ONEOF members by the oneof modeler.
	oneof *oneofInfo

	// key and val describe the synthetic entry fields of a map field.
	key *fieldInfo
	val *fieldInfo
}

func (g *generator) classifyField(fd protoreflect.FieldDescriptor, base customize.Customization) (*fieldInfo, error) {
	if !fd.Kind().IsValid() {
		return nil, errUnsupportedKind(fd.Kind().String(), string(fd.FullName()))
	}
	opts, unknown := customize.ForField(fieldOptions(fd), base)
	for _, num := range unknown {
		g.warn(warnUnknownOption(num, string(fd.FullName())))
	}

	f := &fieldInfo{
		desc:   fd,
		opts:   opts,
		number: protowire.Number(fd.Number()),
		goName: goCamelCase(string(fd.Name())),
	}

	switch {
	case fd.IsMap():
		f.kind = fieldKind_MAP
		entry := fd.Message()
		if entry == nil || fd.MapKey() == nil || fd.MapValue() == nil {
			return nil, errMapEntryShape(string(fd.FullName()))
		}
		key, err := g.classifyField(fd.MapKey(), opts)
		if err != nil {
			return nil, err
		}
		val, err := g.classifyField(fd.MapValue(), opts)
		if err != nil {
			return nil, err
		}
		f.key, f.val = key, val
	case fd.ContainingOneof() != nil && !fd.ContainingOneof().IsSynthetic():
		f.kind = fieldKind_ONEOF
	case fd.IsList():
		f.kind = fieldKind_REPEATED
	default:
		f.kind = fieldKind_SINGULAR
	}

	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		if f.kind != fieldKind_MAP && fd.Message() == nil {
			return nil, errFieldTypeUnresolved(string(fd.FullName()))
		}
	case protoreflect.EnumKind:
		if fd.Enum() == nil {
			return nil, errFieldTypeUnresolved(string(fd.FullName()))
		}
	}
	if fd.Kind() == protoreflect.GroupKind {
		g.warn(warnDeprecatedGroup(string(fd.FullName())))
	}

	// Exposure mirrors the storage rules: implicit-presence singulars and
	// maps are public unless accessors were asked for instead; everything
	// behind a presence flag stays private unless expose-fields is set.
	switch f.kind {
	case fieldKind_MAP:
		f.exposed = true
	case fieldKind_REPEATED:
		f.exposed = opts.ExposeFields
	case fieldKind_SINGULAR:
		f.exposed = opts.ExposeFields || !f.explicitPresence()
	}
	f.storeName = f.goName
	if !f.exposed {
		f.storeName = unexported(f.goName)
	}
	return f, nil
}

func (f *fieldInfo) isGroup() bool {
	return f.desc.Kind() == protoreflect.GroupKind
}

func (f *fieldInfo) isMessageElem() bool {
	k := f.desc.Kind()
	return k == protoreflect.MessageKind || k == protoreflect.GroupKind
}

// explicitPresence reports whether a singular field tracks presence with
// an explicit flag. Message, string, and bytes types always do; numeric
// and bool fields follow the schema's presence discipline.
func (f *fieldInfo) explicitPresence() bool {
	return f.kind == fieldKind_SINGULAR && f.desc.HasPresence()
}

// presencePointer reports whether explicit presence is stored as a pointer.
// Plain bytes fields use the nil slice as their unset sentinel and message
// fields are pointers already.
func (f *fieldInfo) presencePointer() bool {
	if !f.explicitPresence() {
		return false
	}
	switch f.desc.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return false
	case protoreflect.BytesKind:
		return f.opts.BytesAsCustomBuffer
	default:
		return true
	}
}

func (f *fieldInfo) required() bool {
	return f.desc.Cardinality() == protoreflect.Required
}

// goElemType is the Go type of one element of the field, before any
// cardinality or presence wrapping. Total over the wire-format primitive
// set.
func (f *fieldInfo) goElemType(g *generator) string {
	switch f.desc.Kind() {
	case protoreflect.BoolKind:
		return "bool"
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return "int32"
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return "uint32"
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return "int64"
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return "uint64"
	case protoreflect.FloatKind:
		return "float32"
	case protoreflect.DoubleKind:
		return "float64"
	case protoreflect.StringKind:
		if f.opts.StringAsCustomBuffer {
			return g.pbrt() + ".Bytes"
		}
		return "string"
	case protoreflect.BytesKind:
		if f.opts.BytesAsCustomBuffer {
			return g.pbrt() + ".Bytes"
		}
		return "[]byte"
	case protoreflect.EnumKind:
		return g.enumRef(f.desc.Enum())
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return "*" + g.messageRef(f.desc.Message())
	}
	return ""
}

// goStorageType is the declared struct field type.
func (f *fieldInfo) goStorageType(g *generator) string {
	switch f.kind {
	case fieldKind_REPEATED:
		return "[]" + f.goElemType(g)
	case fieldKind_MAP:
		return "map[" + f.key.goElemType(g) + "]" + f.val.goElemType(g)
	default:
		if f.presencePointer() {
			return "*" + f.goElemType(g)
		}
		return f.goElemType(g)
	}
}

func (f *fieldInfo) wireType() protowire.Type {
	switch f.desc.Kind() {
	case protoreflect.Fixed32Kind, protoreflect.Sfixed32Kind, protoreflect.FloatKind:
		return protowire.Fixed32Type
	case protoreflect.Fixed64Kind, protoreflect.Sfixed64Kind, protoreflect.DoubleKind:
		return protowire.Fixed64Type
	case protoreflect.StringKind, protoreflect.BytesKind, protoreflect.MessageKind:
		return protowire.BytesType
	case protoreflect.GroupKind:
		return protowire.StartGroupType
	default:
		return protowire.VarintType
	}
}

func (f *fieldInfo) wireTypeExpr(g *generator) string {
	pw := g.protowire()
	switch f.wireType() {
	case protowire.Fixed32Type:
		return pw + ".Fixed32Type"
	case protowire.Fixed64Type:
		return pw + ".Fixed64Type"
	case protowire.BytesType:
		return pw + ".BytesType"
	case protowire.StartGroupType:
		return pw + ".StartGroupType"
	default:
		return pw + ".VarintType"
	}
}

// packable reports whether repeated elements may use the packed encoding.
func (f *fieldInfo) packable() bool {
	switch f.wireType() {
	case protowire.VarintType, protowire.Fixed32Type, protowire.Fixed64Type:
		return true
	}
	return false
}

func (f *fieldInfo) packed() bool {
	return f.kind == fieldKind_REPEATED && f.packable() && f.desc.IsPacked()
}

// consumeFn names the protowire consume function for one element.
func (f *fieldInfo) consumeFn(g *generator) string {
	pw := g.protowire()
	switch f.wireType() {
	case protowire.Fixed32Type:
		return pw + ".ConsumeFixed32"
	case protowire.Fixed64Type:
		return pw + ".ConsumeFixed64"
	case protowire.BytesType:
		if f.desc.Kind() == protoreflect.StringKind {
			return pw + ".ConsumeString"
		}
		return pw + ".ConsumeBytes"
	default:
		return pw + ".ConsumeVarint"
	}
}

// decodeConvExpr converts the raw consumed value v into storage form.
func (f *fieldInfo) decodeConvExpr(g *generator, v string) string {
	pw := g.protowire()
	switch f.desc.Kind() {
	case protoreflect.BoolKind:
		return pw + ".DecodeBool(" + v + ")"
	case protoreflect.Int32Kind:
		return "int32(" + v + ")"
	case protoreflect.Sint32Kind:
		return "int32(" + pw + ".DecodeZigZag(" + v + "))"
	case protoreflect.Sfixed32Kind:
		return "int32(" + v + ")"
	case protoreflect.Uint32Kind:
		return "uint32(" + v + ")"
	case protoreflect.Fixed32Kind:
		return v
	case protoreflect.Int64Kind:
		return "int64(" + v + ")"
	case protoreflect.Sint64Kind:
		return pw + ".DecodeZigZag(" + v + ")"
	case protoreflect.Sfixed64Kind:
		return "int64(" + v + ")"
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return v
	case protoreflect.FloatKind:
		return g.use("math") + ".Float32frombits(" + v + ")"
	case protoreflect.DoubleKind:
		return g.use("math") + ".Float64frombits(" + v + ")"
	case protoreflect.StringKind:
		if f.opts.StringAsCustomBuffer {
			return g.pbrt() + ".BytesView(" + v + ")"
		}
		return v
	case protoreflect.BytesKind:
		if f.opts.BytesAsCustomBuffer {
			return g.pbrt() + ".BytesOf(" + v + ")"
		}
		return "append([]byte(nil), " + v + "...)"
	case protoreflect.EnumKind:
		return g.enumRef(f.desc.Enum()) + "(" + v + ")"
	}
	return v
}

// appendElemStmts emits the append of one element value (tag already
// appended by the caller).
func (f *fieldInfo) appendElemStmts(g *generator, val string) {
	e := g.body
	pw := g.protowire()
	switch f.desc.Kind() {
	case protoreflect.BoolKind:
		e.Linef("b = %s.AppendVarint(b, %s.EncodeBool(%s))", pw, pw, val)
	case protoreflect.Int32Kind, protoreflect.Int64Kind,
		protoreflect.Uint32Kind, protoreflect.EnumKind:
		e.Linef("b = %s.AppendVarint(b, uint64(%s))", pw, val)
	case protoreflect.Uint64Kind:
		e.Linef("b = %s.AppendVarint(b, %s)", pw, val)
	case protoreflect.Sint32Kind:
		e.Linef("b = %s.AppendZigZag32(b, %s)", g.pbrt(), val)
	case protoreflect.Sint64Kind:
		e.Linef("b = %s.AppendZigZag64(b, %s)", g.pbrt(), val)
	case protoreflect.Fixed32Kind:
		e.Linef("b = %s.AppendFixed32(b, %s)", pw, val)
	case protoreflect.Sfixed32Kind:
		e.Linef("b = %s.AppendFixed32(b, uint32(%s))", pw, val)
	case protoreflect.FloatKind:
		e.Linef("b = %s.AppendFixed32(b, %s.Float32bits(%s))", pw, g.use("math"), val)
	case protoreflect.Fixed64Kind:
		e.Linef("b = %s.AppendFixed64(b, %s)", pw, val)
	case protoreflect.Sfixed64Kind:
		e.Linef("b = %s.AppendFixed64(b, uint64(%s))", pw, val)
	case protoreflect.DoubleKind:
		e.Linef("b = %s.AppendFixed64(b, %s.Float64bits(%s))", pw, g.use("math"), val)
	case protoreflect.StringKind:
		if f.opts.StringAsCustomBuffer {
			e.Linef("b = %s.AppendString(b, %s.View())", pw, val)
		} else {
			e.Linef("b = %s.AppendString(b, %s)", pw, val)
		}
	case protoreflect.BytesKind:
		if f.opts.BytesAsCustomBuffer {
			e.Linef("b = %s.AppendString(b, %s.View())", pw, val)
		} else {
			e.Linef("b = %s.AppendBytes(b, %s)", pw, val)
		}
	case protoreflect.MessageKind:
		e.Linef("b = %s.AppendVarint(b, uint64(%s.CachedSize()))", pw, val)
		e.Linef("b = %s.MarshalAppend(b)", val)
	case protoreflect.GroupKind:
		// The caller appended the start tag; the end tag follows.
		e.Linef("b = %s.MarshalAppend(b)", val)
		e.Linef("b = %s.AppendTag(b, %d, %s.EndGroupType)", pw, f.number, pw)
	}
}

// sizeElemExpr is the encoded byte size of one element value, tag
// excluded. For message elements this calls Size, caching the child's
// length before the parent needs it.
func (f *fieldInfo) sizeElemExpr(g *generator, val string) string {
	pw := g.protowire()
	switch f.desc.Kind() {
	case protoreflect.BoolKind:
		return "1"
	case protoreflect.Int32Kind, protoreflect.Int64Kind,
		protoreflect.Uint32Kind, protoreflect.EnumKind:
		return pw + ".SizeVarint(uint64(" + val + "))"
	case protoreflect.Uint64Kind:
		return pw + ".SizeVarint(" + val + ")"
	case protoreflect.Sint32Kind:
		return g.pbrt() + ".SizeZigZag32(" + val + ")"
	case protoreflect.Sint64Kind:
		return g.pbrt() + ".SizeZigZag64(" + val + ")"
	case protoreflect.Fixed32Kind, protoreflect.Sfixed32Kind, protoreflect.FloatKind:
		return "4"
	case protoreflect.Fixed64Kind, protoreflect.Sfixed64Kind, protoreflect.DoubleKind:
		return "8"
	case protoreflect.StringKind, protoreflect.BytesKind:
		if f.opts.StringAsCustomBuffer && f.desc.Kind() == protoreflect.StringKind ||
			f.opts.BytesAsCustomBuffer && f.desc.Kind() == protoreflect.BytesKind {
			return pw + ".SizeBytes(" + val + ".Len())"
		}
		return pw + ".SizeBytes(len(" + val + "))"
	case protoreflect.MessageKind:
		return pw + ".SizeBytes(" + val + ".Size())"
	case protoreflect.GroupKind:
		return "2*" + pw + ".SizeTag(" + strconv.Itoa(int(f.number)) + ") + " + val + ".Size()"
	}
	return "0"
}

// zeroCheckExpr guards emission of an implicit-presence singular: the
// field is elided when holding its type's zero default.
func (f *fieldInfo) zeroCheckExpr(g *generator, val string) string {
	switch f.desc.Kind() {
	case protoreflect.BoolKind:
		return val
	case protoreflect.StringKind:
		if f.opts.StringAsCustomBuffer {
			return "!" + val + ".IsEmpty()"
		}
		return val + ` != ""`
	case protoreflect.BytesKind:
		if f.opts.BytesAsCustomBuffer {
			return "!" + val + ".IsEmpty()"
		}
		return "len(" + val + ") > 0"
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return val + " != nil"
	default:
		return val + " != 0"
	}
}

// presentCheckExpr guards any per-field operation on a singular field.
func (f *fieldInfo) presentCheckExpr(g *generator, m string) string {
	val := m + "." + f.storeName
	if f.explicitPresence() {
		// Pointer storage, message pointer, or bytes nil-slice sentinel.
		return val + " != nil"
	}
	return f.zeroCheckExpr(g, val)
}

// defaultLiteral renders the value a getter returns when the field is
// unset: the schema's declared default, or the type's zero value.
func (f *fieldInfo) defaultLiteral(g *generator) string {
	fd := f.desc
	if !fd.HasDefault() {
		return f.zeroLiteral(g)
	}
	def := fd.Default()
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return strconv.FormatBool(def.Bool())
	case protoreflect.StringKind:
		if f.opts.StringAsCustomBuffer {
			return g.pbrt() + ".BytesView(" + strconv.Quote(def.String()) + ")"
		}
		return strconv.Quote(def.String())
	case protoreflect.BytesKind:
		if f.opts.BytesAsCustomBuffer {
			return g.pbrt() + ".BytesView(" + strconv.Quote(string(def.Bytes())) + ")"
		}
		return "[]byte(" + strconv.Quote(string(def.Bytes())) + ")"
	case protoreflect.EnumKind:
		ev := fd.DefaultEnumValue()
		return g.enumRef(fd.Enum()) + "_" + string(ev.Name())
	case protoreflect.FloatKind:
		return floatLiteral(g, def.Float(), 32)
	case protoreflect.DoubleKind:
		return floatLiteral(g, def.Float(), 64)
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return "int32(" + strconv.FormatInt(def.Int(), 10) + ")"
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return "int64(" + strconv.FormatInt(def.Int(), 10) + ")"
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return "uint32(" + strconv.FormatUint(def.Uint(), 10) + ")"
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return "uint64(" + strconv.FormatUint(def.Uint(), 10) + ")"
	}
	return f.zeroLiteral(g)
}

func (f *fieldInfo) zeroLiteral(g *generator) string {
	switch f.desc.Kind() {
	case protoreflect.BoolKind:
		return "false"
	case protoreflect.StringKind:
		if f.opts.StringAsCustomBuffer {
			return g.pbrt() + ".Bytes{}"
		}
		return `""`
	case protoreflect.BytesKind:
		if f.opts.BytesAsCustomBuffer {
			return g.pbrt() + ".Bytes{}"
		}
		return "nil"
	case protoreflect.EnumKind:
		return g.enumRef(f.desc.Enum()) + "(0)"
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return "nil"
	default:
		return "0"
	}
}

func floatLiteral(g *generator, v float64, bits int) string {
	switch {
	case math.IsInf(v, 1):
		if bits == 32 {
			return "float32(" + g.use("math") + ".Inf(1))"
		}
		return g.use("math") + ".Inf(1)"
	case math.IsInf(v, -1):
		if bits == 32 {
			return "float32(" + g.use("math") + ".Inf(-1))"
		}
		return g.use("math") + ".Inf(-1)"
	case math.IsNaN(v):
		if bits == 32 {
			return "float32(" + g.use("math") + ".NaN())"
		}
		return g.use("math") + ".NaN()"
	}
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if bits == 32 {
		return "float32(" + s + ")"
	}
	return s
}

func fieldOptions(fd protoreflect.FieldDescriptor) *descriptorpb.FieldOptions {
	opts, _ := fd.Options().(*descriptorpb.FieldOptions)
	return opts
}

func (f *fieldInfo) fullName() string {
	return string(f.desc.FullName())
}

func (f *fieldInfo) tagComment() string {
	return fmt.Sprintf("%s %s = %d", f.desc.Cardinality(), f.desc.Kind(), f.number)
}
