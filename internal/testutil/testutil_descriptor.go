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

package testutil

import (
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Schema fixture builders. Tests assemble FileDescriptorProto values
// with these helpers and resolve them through protodesc, the same path
// production descriptors arrive by.

// FileBuilder accumulates one schema file plus its dependencies.
type FileBuilder struct {
	File *descriptorpb.FileDescriptorProto
	deps []*descriptorpb.FileDescriptorProto
}

func NewFile(path, pkg string) *FileBuilder {
	return &FileBuilder{
		File: &descriptorpb.FileDescriptorProto{
			Name:    proto.String(path),
			Package: proto.String(pkg),
			Syntax:  proto.String("proto2"),
		},
	}
}

func (b *FileBuilder) Syntax(syntax string) *FileBuilder {
	b.File.Syntax = proto.String(syntax)
	return b
}

func (b *FileBuilder) GoPackage(goPackage string) *FileBuilder {
	b.fileOptions().GoPackage = proto.String(goPackage)
	return b
}

func (b *FileBuilder) AddMessage(m *descriptorpb.DescriptorProto) *FileBuilder {
	b.File.MessageType = append(b.File.MessageType, m)
	return b
}

func (b *FileBuilder) AddEnum(e *descriptorpb.EnumDescriptorProto) *FileBuilder {
	b.File.EnumType = append(b.File.EnumType, e)
	return b
}

func (b *FileBuilder) AddDependency(dep *descriptorpb.FileDescriptorProto) *FileBuilder {
	b.File.Dependency = append(b.File.Dependency, dep.GetName())
	b.deps = append(b.deps, dep)
	return b
}

// RawFileOption appends pre-encoded extension bytes to the FileOptions
// unknown-field region, where option resolution reads them from.
func (b *FileBuilder) RawFileOption(raw []byte) *FileBuilder {
	SetRawOption(b.fileOptions(), raw)
	return b
}

func (b *FileBuilder) fileOptions() *descriptorpb.FileOptions {
	if b.File.Options == nil {
		b.File.Options = &descriptorpb.FileOptions{}
	}
	return b.File.Options
}

// Resolve links the file and its dependencies into a descriptor.
func (b *FileBuilder) Resolve(t *testing.T) protoreflect.FileDescriptor {
	t.Helper()
	set := &descriptorpb.FileDescriptorSet{}
	set.File = append(set.File, b.deps...)
	set.File = append(set.File, b.File)
	files, err := protodesc.NewFiles(set)
	if err != nil {
		t.Fatalf("resolving schema fixture: %v", err)
	}
	fd, err := files.FindFileByPath(b.File.GetName())
	if err != nil {
		t.Fatalf("resolving schema fixture: %v", err)
	}
	return fd
}

func Message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name:  proto.String(name),
		Field: fields,
	}
}

func Enum(name string, values ...*descriptorpb.EnumValueDescriptorProto) *descriptorpb.EnumDescriptorProto {
	return &descriptorpb.EnumDescriptorProto{
		Name:  proto.String(name),
		Value: values,
	}
}

func EnumValue(name string, number int32) *descriptorpb.EnumValueDescriptorProto {
	return &descriptorpb.EnumValueDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
	}
}

func Field(name string, number int32, label descriptorpb.FieldDescriptorProto_Label, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  label.Enum(),
		Type:   typ.Enum(),
	}
}

func OptionalField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return Field(name, number, descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL, typ)
}

func RequiredField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return Field(name, number, descriptorpb.FieldDescriptorProto_LABEL_REQUIRED, typ)
}

func RepeatedField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return Field(name, number, descriptorpb.FieldDescriptorProto_LABEL_REPEATED, typ)
}

// TypeName points a message- or enum-typed field at its type by
// fully-qualified name (leading dot included).
func TypeName(f *descriptorpb.FieldDescriptorProto, name string) *descriptorpb.FieldDescriptorProto {
	f.TypeName = proto.String(name)
	return f
}

func DefaultValue(f *descriptorpb.FieldDescriptorProto, def string) *descriptorpb.FieldDescriptorProto {
	f.DefaultValue = proto.String(def)
	return f
}

// BoolOptionBytes encodes one boolean extension field in wire form.
func BoolOptionBytes(num protowire.Number, v bool) []byte {
	b := protowire.AppendTag(nil, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

// StringOptionBytes encodes one string extension field in wire form.
func StringOptionBytes(num protowire.Number, s string) []byte {
	b := protowire.AppendTag(nil, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// SetRawOption appends raw bytes to an options message's unknown-field
// region.
func SetRawOption(opts proto.Message, raw []byte) {
	m := opts.ProtoReflect()
	m.SetUnknown(append(m.GetUnknown(), raw...))
}
