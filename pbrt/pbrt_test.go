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

package pbrt_test

import (
	"errors"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gengliqi/pbgen/internal/testutil"
	"github.com/gengliqi/pbgen/pbrt"
)

// counter is a minimal hand-rolled message with one varint field, shaped
// like generator output.
type counter struct {
	value uint64

	unknownFields pbrt.UnknownFields
	cachedSize    pbrt.CachedSize
}

var _ pbrt.Message = (*counter)(nil)

func (m *counter) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return pbrt.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return pbrt.ParseError(n)
			}
			data = data[n:]
			m.value = v
		default:
			n := m.unknownFields.Capture(num, typ, data)
			if n < 0 {
				return pbrt.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

func (m *counter) Size() int {
	size := 0
	if m.value != 0 {
		size += protowire.SizeTag(1) + protowire.SizeVarint(m.value)
	}
	size += m.unknownFields.Size()
	m.cachedSize.Store(size)
	return size
}

func (m *counter) MarshalAppend(b []byte) []byte {
	if m.value != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, m.value)
	}
	b = m.unknownFields.Append(b)
	return b
}

func (m *counter) CachedSize() int {
	return m.cachedSize.Load()
}

func (m *counter) IsInitialized() bool {
	return true
}

func (m *counter) Reset() {
	m.value = 0
	m.unknownFields.Clear()
	m.cachedSize.Store(0)
}

func (m *counter) String() string {
	p := pbrt.NewPrinter()
	if m.value != 0 {
		p.Field("value", m.value)
	}
	return p.String()
}

func TestMarshalRoundTrip(t *testing.T) {
	src := &counter{value: 600}
	encoded := pbrt.Marshal(src)
	testutil.ExpectEq(t, src.Size(), len(encoded))

	decoded, err := pbrt.UnmarshalAs[counter](encoded)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, uint64(600), decoded.value)
}

func TestUnmarshalAsError(t *testing.T) {
	_, err := pbrt.UnmarshalAs[counter]([]byte{0x08})
	testutil.AssertError(t, err)
}

func TestParseError(t *testing.T) {
	if !errors.Is(pbrt.ParseError(-1), pbrt.ErrTruncated) {
		t.Error("Expected ErrTruncated for -1")
	}
	if !errors.Is(pbrt.ParseError(-2), pbrt.ErrMalformedTag) {
		t.Error("Expected ErrMalformedTag for -2")
	}
	if !errors.Is(pbrt.ParseError(-4), pbrt.ErrMalformedTag) {
		t.Error("Expected ErrMalformedTag for -4")
	}
	if !errors.Is(pbrt.ParseError(-5), pbrt.ErrMissingGroupEnd) {
		t.Error("Expected ErrMissingGroupEnd for -5")
	}
}

func TestZigZagHelpers(t *testing.T) {
	for _, v := range []int32{0, -1, 1, -2147483648, 2147483647} {
		b := pbrt.AppendZigZag32(nil, v)
		testutil.ExpectEq(t, pbrt.SizeZigZag32(v), len(b))
		raw, n := protowire.ConsumeVarint(b)
		testutil.ExpectEq(t, len(b), n)
		testutil.ExpectEq(t, v, int32(protowire.DecodeZigZag(raw)))
	}
	for _, v := range []int64{0, -1, 1, -9223372036854775808, 9223372036854775807} {
		b := pbrt.AppendZigZag64(nil, v)
		testutil.ExpectEq(t, pbrt.SizeZigZag64(v), len(b))
		raw, n := protowire.ConsumeVarint(b)
		testutil.ExpectEq(t, len(b), n)
		testutil.ExpectEq(t, v, protowire.DecodeZigZag(raw))
	}
}

func TestUnknownFieldsPreserved(t *testing.T) {
	// Field 1 (known), field 9 varint, field 10 bytes: the unknown pair
	// must survive a decode/encode round trip byte for byte.
	var input []byte
	input = protowire.AppendTag(input, 1, protowire.VarintType)
	input = protowire.AppendVarint(input, 7)
	unknownStart := len(input)
	input = protowire.AppendTag(input, 9, protowire.VarintType)
	input = protowire.AppendVarint(input, 300)
	input = protowire.AppendTag(input, 10, protowire.BytesType)
	input = protowire.AppendString(input, "opaque")
	unknown := input[unknownStart:]

	m := &counter{}
	testutil.AssertNoError(t, m.Unmarshal(input))
	testutil.ExpectEq(t, uint64(7), m.value)
	testutil.ExpectBytesEq(t, unknown, m.unknownFields.Bytes())
	testutil.ExpectBytesEq(t, input, pbrt.Marshal(m))
}

func TestUnknownFieldsCaptureGroup(t *testing.T) {
	// An unknown group is captured through its balanced end marker.
	var payload []byte
	payload = protowire.AppendTag(payload, 2, protowire.VarintType)
	payload = protowire.AppendVarint(payload, 5)
	payload = protowire.AppendTag(payload, 4, protowire.EndGroupType)
	payload = append(payload, 0xFF) // trailing data, not part of the group

	var u pbrt.UnknownFields
	n := u.Capture(4, protowire.StartGroupType, payload)
	testutil.ExpectEq(t, len(payload)-1, n)

	want := protowire.AppendTag(nil, 4, protowire.StartGroupType)
	want = append(want, payload[:n]...)
	testutil.ExpectBytesEq(t, want, u.Bytes())
}

func TestUnknownFieldsCaptureTruncated(t *testing.T) {
	var u pbrt.UnknownFields
	n := u.Capture(9, protowire.BytesType, []byte{0x05, 0x01})
	testutil.ExpectTrue(t, n < 0)
	testutil.ExpectEq(t, 0, u.Size())
}

func TestCachedSize(t *testing.T) {
	m := &counter{value: 150}
	testutil.ExpectEq(t, 0, m.CachedSize())
	size := m.Size()
	testutil.ExpectEq(t, size, m.CachedSize())
	m.Reset()
	testutil.ExpectEq(t, 0, m.CachedSize())
}

func TestBytesBuffer(t *testing.T) {
	b := pbrt.BytesOf([]byte("abc"))
	testutil.ExpectEq(t, 3, b.Len())
	testutil.ExpectFalse(t, b.IsEmpty())
	testutil.ExpectEq(t, "abc", b.View())
	testutil.ExpectBytesEq(t, []byte("abc"), b.Bytes())

	var empty pbrt.Bytes
	testutil.ExpectTrue(t, empty.IsEmpty())

	src := []byte("xyz")
	copied := pbrt.BytesOf(src)
	src[0] = '!'
	testutil.ExpectEq(t, "xyz", copied.View())

	var collected []byte
	for _, c := range pbrt.BytesView("hi").Iter() {
		collected = append(collected, c)
	}
	testutil.ExpectBytesEq(t, []byte("hi"), collected)
}

func TestBytesJSON(t *testing.T) {
	b := pbrt.BytesOf([]byte{0x01, 0x02, 0xFF})
	encoded, err := b.MarshalJSON()
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, `"AQL/"`, string(encoded))

	var decoded pbrt.Bytes
	testutil.AssertNoError(t, decoded.UnmarshalJSON(encoded))
	testutil.ExpectEq(t, b.View(), decoded.View())
}

func TestDescriptorRegistry(t *testing.T) {
	built := 0
	get := pbrt.LazyDescriptor("pbrt.test.Counter", func() *pbrt.MessageDescriptor {
		built++
		return &pbrt.MessageDescriptor{
			FullName: "pbrt.test.Counter",
			File:     "counter.proto",
			Fields: []pbrt.FieldAccessor{{
				Name: "value",
				Has:  func(msg any) bool { return msg.(*counter).value != 0 },
				Get:  func(msg any) any { return msg.(*counter).value },
				Set:  func(msg any, v any) { msg.(*counter).value = v.(uint64) },
			}},
		}
	})
	testutil.ExpectEq(t, 0, built)

	desc := get()
	testutil.ExpectEq(t, 1, built)
	testutil.ExpectEq(t, "pbrt.test.Counter", desc.FullName)
	testutil.ExpectEq(t, desc, get())
	testutil.ExpectEq(t, 1, built)

	testutil.ExpectEq(t, desc, pbrt.DescriptorByName("pbrt.test.Counter"))
	if pbrt.DescriptorByName("pbrt.test.Missing") != nil {
		t.Error("Expected nil for unregistered name")
	}

	m := &counter{}
	field := desc.Fields[0]
	testutil.ExpectFalse(t, field.Has(m))
	field.Set(m, uint64(9))
	testutil.ExpectTrue(t, field.Has(m))
	testutil.ExpectEq(t, uint64(9), field.Get(m).(uint64))
}

func TestPrinter(t *testing.T) {
	p := pbrt.NewPrinter()
	p.Field("id", int32(7))
	p.Field("name", "ada")
	p.Field("raw", []byte{0x41})
	p.Field("child", &counter{value: 3})
	testutil.ExpectEq(t, `id: 7 name: "ada" raw: "A" child {value: 3}`, p.String())
}
