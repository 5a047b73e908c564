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

package testpb_test

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gengliqi/pbgen/internal/testpb"
	"github.com/gengliqi/pbgen/internal/testutil"
	"github.com/gengliqi/pbgen/pbrt"
)

func roundTrip[M pbrt.Message](t *testing.T, src M, dst M) {
	t.Helper()
	encoded := pbrt.Marshal(src)
	testutil.ExpectEq(t, src.Size(), len(encoded))
	testutil.AssertNoError(t, dst.Unmarshal(encoded))
	testutil.ExpectBytesEq(t, encoded, pbrt.Marshal(dst))
}

func TestScalarRoundTrip(t *testing.T) {
	src := &testpb.Scalar{
		Count:  -42,
		Ticks:  1 << 60,
		Offset: -1,
		Crc:    0xDEADBEEF,
		Stamp:  1 << 40,
		Ratio:  0.5,
		Mean:   -2.25,
		Ok:     true,
		Name:   "scalar",
		Raw:    []byte{0x00, 0xFF},
		Level:  testpb.Level_LEVEL_ERROR,
	}
	dst := new(testpb.Scalar)
	roundTrip(t, src, dst)

	testutil.ExpectDeepEq(t, src, dst, cmpopts.IgnoreUnexported(testpb.Scalar{}))
	testutil.ExpectEq(t, int32(-42), dst.GetCount())
	testutil.ExpectEq(t, "scalar", dst.GetName())
	testutil.ExpectEq(t, testpb.Level_LEVEL_ERROR, dst.GetLevel())
}

func TestScalarZeroValuesElided(t *testing.T) {
	m := new(testpb.Scalar)
	testutil.ExpectEq(t, 0, m.Size())
	testutil.ExpectEq(t, 0, len(pbrt.Marshal(m)))
}

func TestScalarLastValueWins(t *testing.T) {
	var input []byte
	input = protowire.AppendTag(input, 1, protowire.VarintType)
	input = protowire.AppendVarint(input, 7)
	input = protowire.AppendTag(input, 1, protowire.VarintType)
	input = protowire.AppendVarint(input, 9)

	m := new(testpb.Scalar)
	testutil.AssertNoError(t, m.Unmarshal(input))
	testutil.ExpectEq(t, int32(9), m.Count)
}

func TestScalarWireTypeMismatchPreserved(t *testing.T) {
	// Field 1 is a varint; delivering it length-delimited must not touch
	// Count, and the bytes must survive re-encoding.
	var input []byte
	input = protowire.AppendTag(input, 1, protowire.BytesType)
	input = protowire.AppendBytes(input, []byte("zap"))

	m := new(testpb.Scalar)
	testutil.AssertNoError(t, m.Unmarshal(input))
	testutil.ExpectEq(t, int32(0), m.Count)
	testutil.ExpectBytesEq(t, input, pbrt.Marshal(m))
}

func TestScalarUnknownFieldsPreserved(t *testing.T) {
	var input []byte
	input = protowire.AppendTag(input, 14, protowire.BytesType)
	input = protowire.AppendString(input, "known")
	input = protowire.AppendTag(input, 99, protowire.Fixed64Type)
	input = protowire.AppendFixed64(input, 0xABCD)

	m := new(testpb.Scalar)
	testutil.AssertNoError(t, m.Unmarshal(input))
	testutil.ExpectEq(t, "known", m.Name)
	testutil.ExpectBytesEq(t, input, pbrt.Marshal(m))
}

func TestScalarTruncatedInput(t *testing.T) {
	m := new(testpb.Scalar)
	testutil.AssertError(t, m.Unmarshal([]byte{0x0A}))
}

func TestScalarReset(t *testing.T) {
	m := &testpb.Scalar{Count: 1, Name: "x", Raw: []byte{1}}
	m.Size()
	m.Reset()
	testutil.ExpectEq(t, 0, m.Size())
	testutil.ExpectEq(t, int32(0), m.Count)
	testutil.ExpectEq(t, 0, m.CachedSize())
}

func TestScalarAccessorsNilReceiver(t *testing.T) {
	var m *testpb.Scalar
	testutil.ExpectEq(t, int32(0), m.GetCount())
	testutil.ExpectEq(t, "", m.GetName())
	testutil.ExpectEq(t, "", m.String())
}

func TestScalarString(t *testing.T) {
	m := &testpb.Scalar{Count: 7, Name: "ada", Ok: true}
	testutil.ExpectEq(t, `count: 7 ok: true name: "ada"`, m.String())
}

func TestEnumStrings(t *testing.T) {
	testutil.ExpectEq(t, "LEVEL_DEBUG", testpb.Level_LEVEL_DEBUG.String())
	testutil.ExpectEq(t, "17", testpb.Level(17).String())
	testutil.ExpectEq(t, int32(2), testpb.Level_value["LEVEL_ERROR"])
	testutil.ExpectEq(t, testpb.Level_LEVEL_ERROR, *testpb.Level_LEVEL_ERROR.Enum())
}

func TestUndeclaredEnumValueRoundTrip(t *testing.T) {
	src := &testpb.Scalar{Level: testpb.Level(42)}
	dst := new(testpb.Scalar)
	roundTrip(t, src, dst)
	testutil.ExpectEq(t, testpb.Level(42), dst.Level)
}

func TestPackedRoundTrip(t *testing.T) {
	src := testpb.NewContainer()
	src.SetValues([]int64{0, 1, -1, 1 << 40})
	dst := new(testpb.Container)
	roundTrip(t, src, dst)
	testutil.ExpectSliceEq(t, []int64{0, 1, -1, 1 << 40}, dst.GetValues())
}

func TestPackedFieldAcceptsUnpackedEncoding(t *testing.T) {
	var input []byte
	for _, v := range []int64{3, 5} {
		input = protowire.AppendTag(input, 2, protowire.VarintType)
		input = protowire.AppendVarint(input, uint64(v))
	}
	m := new(testpb.Container)
	testutil.AssertNoError(t, m.Unmarshal(input))
	testutil.ExpectSliceEq(t, []int64{3, 5}, m.GetValues())
}

func TestUnpackedStringsRoundTrip(t *testing.T) {
	src := testpb.NewContainer()
	src.SetNames([]string{"a", "", "c"})
	dst := new(testpb.Container)
	roundTrip(t, src, dst)
	testutil.ExpectSliceEq(t, []string{"a", "", "c"}, dst.GetNames())
}

func TestNestedMessageRoundTrip(t *testing.T) {
	src := testpb.NewContainer()
	src.MutableItem().SetName("inner")
	src.MutableItem().SetCount(5)
	dst := new(testpb.Container)
	roundTrip(t, src, dst)
	testutil.ExpectEq(t, "inner", dst.GetItem().GetName())
	testutil.ExpectEq(t, int32(5), dst.GetItem().GetCount())
}

func TestEmptyNestedMessagePresence(t *testing.T) {
	// An empty but present child still occupies wire bytes, so presence
	// survives the round trip.
	src := testpb.NewContainer()
	src.SetItem(new(testpb.Scalar))
	dst := new(testpb.Container)
	roundTrip(t, src, dst)
	testutil.ExpectTrue(t, dst.HasItem())
}

func TestMapRoundTrip(t *testing.T) {
	src := testpb.NewContainer()
	src.MutableCounts()["a"] = 1
	src.MutableCounts()["b"] = -2
	dst := new(testpb.Container)
	roundTrip(t, src, dst)
	testutil.ExpectEq(t, 2, len(dst.GetCounts()))
	testutil.ExpectEq(t, int64(1), dst.GetCounts()["a"])
	testutil.ExpectEq(t, int64(-2), dst.GetCounts()["b"])
}

func TestMapDeterministicEncoding(t *testing.T) {
	a := testpb.NewContainer()
	for _, k := range []string{"x", "a", "m", "b"} {
		a.MutableCounts()[k] = int64(len(k))
	}
	b := testpb.NewContainer()
	for _, k := range []string{"b", "m", "a", "x"} {
		b.MutableCounts()[k] = int64(len(k))
	}
	testutil.ExpectBytesEq(t, pbrt.Marshal(a), pbrt.Marshal(b))
}

func TestMapMessageValues(t *testing.T) {
	src := testpb.NewContainer()
	src.MutableIndex()[7] = &testpb.Scalar{Name: "seven"}
	dst := new(testpb.Container)
	roundTrip(t, src, dst)
	testutil.ExpectEq(t, "seven", dst.GetIndex()[7].GetName())
	testutil.ExpectDeepEq(t, src.GetIndex(), dst.GetIndex(),
		cmpopts.IgnoreUnexported(testpb.Scalar{}))
}

func TestMapEntryMissingValue(t *testing.T) {
	// An entry with only a key decodes to a fresh empty message, not nil.
	var entry []byte
	entry = protowire.AppendTag(entry, 1, protowire.VarintType)
	entry = protowire.AppendVarint(entry, 3)
	var input []byte
	input = protowire.AppendTag(input, 5, protowire.BytesType)
	input = protowire.AppendBytes(input, entry)

	m := new(testpb.Container)
	testutil.AssertNoError(t, m.Unmarshal(input))
	v, ok := m.GetIndex()[3]
	testutil.ExpectTrue(t, ok)
	if v == nil {
		t.Fatal("Expected allocated map value, got: nil")
	}
}

func TestMapLastEntryWins(t *testing.T) {
	encodeEntry := func(key string, val int64) []byte {
		var entry []byte
		entry = protowire.AppendTag(entry, 1, protowire.BytesType)
		entry = protowire.AppendString(entry, key)
		entry = protowire.AppendTag(entry, 2, protowire.VarintType)
		entry = protowire.AppendVarint(entry, uint64(val))
		var b []byte
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
		return b
	}
	input := append(encodeEntry("k", 1), encodeEntry("k", 2)...)
	m := new(testpb.Container)
	testutil.AssertNoError(t, m.Unmarshal(input))
	testutil.ExpectEq(t, int64(2), m.GetCounts()["k"])
}

func TestOneofExclusivity(t *testing.T) {
	m := testpb.NewContainer()
	m.SetTitle("first")
	testutil.ExpectTrue(t, m.HasTitle())
	m.SetShift(-3)
	testutil.ExpectFalse(t, m.HasTitle())
	testutil.ExpectTrue(t, m.HasShift())
	testutil.ExpectEq(t, int64(-3), m.GetShift())
	testutil.ExpectEq(t, "", m.GetTitle())
}

func TestOneofClearOnlyWhenActive(t *testing.T) {
	m := testpb.NewContainer()
	m.SetShift(1)
	m.ClearTitle()
	testutil.ExpectTrue(t, m.HasShift())
	m.ClearShift()
	testutil.ExpectFalse(t, m.HasChoice())
}

func TestOneofRoundTrip(t *testing.T) {
	src := testpb.NewContainer()
	src.SetNode(&testpb.Scalar{Count: 11})
	dst := new(testpb.Container)
	roundTrip(t, src, dst)
	testutil.ExpectTrue(t, dst.HasNode())
	testutil.ExpectEq(t, int32(11), dst.GetNode().GetCount())
}

func TestOneofLastMemberWins(t *testing.T) {
	// Two different members of the same oneof on the wire: the second
	// displaces the first.
	var input []byte
	input = protowire.AppendTag(input, 10, protowire.BytesType)
	input = protowire.AppendString(input, "gone")
	input = protowire.AppendTag(input, 12, protowire.VarintType)
	input = pbrt.AppendZigZag64(input, 4)

	m := new(testpb.Container)
	testutil.AssertNoError(t, m.Unmarshal(input))
	testutil.ExpectFalse(t, m.HasTitle())
	testutil.ExpectEq(t, int64(4), m.GetShift())
}

func TestContainerString(t *testing.T) {
	m := testpb.NewContainer()
	m.SetNames([]string{"a", "b"})
	m.SetTitle("t")
	testutil.ExpectEq(t, `names: "a" names: "b" title: "t"`, m.String())
}

func TestRequiredFieldTracking(t *testing.T) {
	m := testpb.NewLegacy()
	testutil.ExpectFalse(t, m.IsInitialized())
	m.SetId("job-1")
	testutil.ExpectTrue(t, m.IsInitialized())
}

func TestRequiredFieldRecursion(t *testing.T) {
	m := testpb.NewLegacy()
	m.SetId("root")
	m.MutableChild()
	testutil.ExpectFalse(t, m.IsInitialized())
	m.MutableChild().SetId("leaf")
	testutil.ExpectTrue(t, m.IsInitialized())

	m.SetItems(append(m.GetItems(), testpb.NewLegacy()))
	testutil.ExpectFalse(t, m.IsInitialized())
}

func TestDeclaredDefaults(t *testing.T) {
	m := testpb.NewLegacy()
	testutil.ExpectFalse(t, m.HasRetries())
	testutil.ExpectEq(t, int32(3), m.GetRetries())
	testutil.ExpectEq(t, "fallback", m.GetTag())

	m.SetRetries(0)
	testutil.ExpectTrue(t, m.HasRetries())
	testutil.ExpectEq(t, int32(0), m.GetRetries())
	m.ClearRetries()
	testutil.ExpectEq(t, int32(3), m.GetRetries())
}

func TestExplicitPresenceZeroOnWire(t *testing.T) {
	// A present-but-zero proto2 field still occupies wire bytes.
	src := testpb.NewLegacy()
	src.SetId("")
	src.SetRetries(0)
	dst := new(testpb.Legacy)
	roundTrip(t, src, dst)
	testutil.ExpectTrue(t, dst.HasId())
	testutil.ExpectTrue(t, dst.HasRetries())
	testutil.ExpectEq(t, int32(0), dst.GetRetries())
}

func TestLegacyRoundTrip(t *testing.T) {
	src := testpb.NewLegacy()
	src.SetId("root")
	src.SetRetries(5)
	src.MutableChild().SetId("leaf")
	dst := new(testpb.Legacy)
	roundTrip(t, src, dst)
	testutil.ExpectEq(t, "root", dst.GetId())
	testutil.ExpectEq(t, int32(5), dst.GetRetries())
	testutil.ExpectEq(t, "leaf", dst.GetChild().GetId())
}

func TestDefaultInstanceShared(t *testing.T) {
	a := testpb.DefaultScalar()
	b := testpb.DefaultScalar()
	testutil.ExpectEq(t, a, b)
	testutil.ExpectEq(t, 0, a.Size())
}

func TestDescriptorRegistration(t *testing.T) {
	desc := testpb.NewScalar().Descriptor()
	testutil.ExpectEq(t, "pbgen.test.Scalar", desc.FullName)
	testutil.ExpectEq(t, "testpb.proto", desc.File)
	testutil.ExpectEq(t, desc, pbrt.DescriptorByName("pbgen.test.Scalar"))

	m := &testpb.Scalar{Name: "x"}
	for _, f := range desc.Fields {
		if f.Name != "name" {
			continue
		}
		testutil.ExpectTrue(t, f.Has(m))
		testutil.ExpectEq(t, "x", f.Get(m).(string))
		f.Set(m, "y")
		testutil.ExpectEq(t, "y", m.Name)
	}
}

func TestUnmarshalAsHelper(t *testing.T) {
	src := &testpb.Scalar{Name: "generic"}
	decoded, err := pbrt.UnmarshalAs[testpb.Scalar](pbrt.Marshal(src))
	testutil.ExpectNoError(t, err)
	testutil.ExpectEq(t, "generic", decoded.GetName())
}
