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

// Package customize resolves per-element code generation options.
//
// Options arrive as protobuf extension fields on FileOptions,
// MessageOptions, and FieldOptions. Because pbgen does not register the
// extension types, a decoded descriptor carries them as unknown fields;
// the raw bytes are re-parsed here with protowire. Resolution folds four
// layers in fixed order (compiled-in defaults, file, message, field), each
// layer overriding only the options it explicitly sets. Resolution is
// total and cannot fail.
package customize

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Extension field numbers, shared between the file-scope "*_all" options
// and the message/field scope options.
const (
	fieldExposeOneof                 = 17001
	fieldExposeFields                = 17003
	fieldGenerateAccessors           = 17004
	fieldBytesAsCustomBuffer         = 17011
	fieldStringAsCustomBuffer        = 17012
	fieldSerializeWithExternalFormat = 17030
	fieldSerializeFormatGuard        = 17031
	fieldLiteRuntime                 = 17035
)

// Extension numbers 17000-17999 are reserved for pbgen options. Numbers in
// the range that are not recognized produce a generation warning.
const (
	extensionRangeLo = 17000
	extensionRangeHi = 17999
)

// Customization is the effective option set for one schema element. Every
// option holds a defined value; "unset" does not exist after resolution.
type Customization struct {
	ExposeOneof                 bool
	ExposeFields                bool
	GenerateAccessors           bool
	LiteRuntime                 bool
	BytesAsCustomBuffer         bool
	StringAsCustomBuffer        bool
	SerializeWithExternalFormat bool
	SerializeFormatGuard        string
}

// Defaults is the compiled-in base layer.
func Defaults() Customization {
	return Customization{
		ExposeOneof:       true,
		GenerateAccessors: true,
	}
}

// Layer holds the options one scope explicitly sets. Nil means the option
// passes through unchanged from the parent layer.
type Layer struct {
	ExposeOneof                 *bool
	ExposeFields                *bool
	GenerateAccessors           *bool
	LiteRuntime                 *bool
	BytesAsCustomBuffer         *bool
	StringAsCustomBuffer        *bool
	SerializeWithExternalFormat *bool
	SerializeFormatGuard        *string
}

// Apply folds one layer over a resolved parent customization.
func (c Customization) Apply(layer Layer) Customization {
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setBool(&c.ExposeOneof, layer.ExposeOneof)
	setBool(&c.ExposeFields, layer.ExposeFields)
	setBool(&c.GenerateAccessors, layer.GenerateAccessors)
	setBool(&c.LiteRuntime, layer.LiteRuntime)
	setBool(&c.BytesAsCustomBuffer, layer.BytesAsCustomBuffer)
	setBool(&c.StringAsCustomBuffer, layer.StringAsCustomBuffer)
	setBool(&c.SerializeWithExternalFormat, layer.SerializeWithExternalFormat)
	if layer.SerializeFormatGuard != nil {
		c.SerializeFormatGuard = *layer.SerializeFormatGuard
	}
	return c
}

// ParseLayer extracts a layer from raw unknown-extension bytes. The second
// return value lists extension numbers inside the pbgen range that were
// present but not recognized.
func ParseLayer(raw []byte) (Layer, []int32) {
	var layer Layer
	var unknown []int32
	for len(raw) > 0 {
		num, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			break
		}
		raw = raw[n:]

		if typ == protowire.VarintType {
			v, n := protowire.ConsumeVarint(raw)
			if n < 0 {
				break
			}
			raw = raw[n:]
			if set := layer.boolOption(num); set != nil {
				b := v != 0
				*set = &b
				continue
			}
			if num >= extensionRangeLo && num <= extensionRangeHi {
				unknown = append(unknown, int32(num))
			}
			continue
		}

		if typ == protowire.BytesType && num == fieldSerializeFormatGuard {
			v, n := protowire.ConsumeBytes(raw)
			if n < 0 {
				break
			}
			raw = raw[n:]
			guard := string(v)
			layer.SerializeFormatGuard = &guard
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, raw)
		if n < 0 {
			break
		}
		raw = raw[n:]
		if num >= extensionRangeLo && num <= extensionRangeHi {
			unknown = append(unknown, int32(num))
		}
	}
	return layer, unknown
}

func (layer *Layer) boolOption(num protowire.Number) **bool {
	switch num {
	case fieldExposeOneof:
		return &layer.ExposeOneof
	case fieldExposeFields:
		return &layer.ExposeFields
	case fieldGenerateAccessors:
		return &layer.GenerateAccessors
	case fieldBytesAsCustomBuffer:
		return &layer.BytesAsCustomBuffer
	case fieldStringAsCustomBuffer:
		return &layer.StringAsCustomBuffer
	case fieldSerializeWithExternalFormat:
		return &layer.SerializeWithExternalFormat
	case fieldLiteRuntime:
		return &layer.LiteRuntime
	}
	return nil
}

// ForFile resolves the file-level customization. When the file does not set
// the lite-runtime extension explicitly, `option optimize_for =
// LITE_RUNTIME` selects the lite profile, matching the documented fallback.
func ForFile(opts *descriptorpb.FileOptions, base Customization) (Customization, []int32) {
	var raw []byte
	if opts != nil {
		raw = opts.ProtoReflect().GetUnknown()
	}
	layer, unknown := ParseLayer(raw)
	if layer.LiteRuntime == nil && opts != nil && opts.OptimizeFor != nil {
		lite := opts.GetOptimizeFor() == descriptorpb.FileOptions_LITE_RUNTIME
		layer.LiteRuntime = &lite
	}
	return base.Apply(layer), unknown
}

// ForMessage resolves a message-level customization from its file's result.
func ForMessage(opts *descriptorpb.MessageOptions, base Customization) (Customization, []int32) {
	var raw []byte
	if opts != nil {
		raw = opts.ProtoReflect().GetUnknown()
	}
	layer, unknown := ParseLayer(raw)
	return base.Apply(layer), unknown
}

// ForField resolves a field-level customization from its message's result.
func ForField(opts *descriptorpb.FieldOptions, base Customization) (Customization, []int32) {
	var raw []byte
	if opts != nil {
		raw = opts.ProtoReflect().GetUnknown()
	}
	layer, unknown := ParseLayer(raw)
	return base.Apply(layer), unknown
}
