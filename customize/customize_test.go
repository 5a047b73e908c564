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

package customize_test

import (
	"testing"

	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/gengliqi/pbgen/customize"
	"github.com/gengliqi/pbgen/internal/testutil"
)

func TestDefaults(t *testing.T) {
	defaults := customize.Defaults()
	testutil.ExpectTrue(t, defaults.ExposeOneof)
	testutil.ExpectTrue(t, defaults.GenerateAccessors)
	testutil.ExpectFalse(t, defaults.ExposeFields)
	testutil.ExpectFalse(t, defaults.LiteRuntime)
	testutil.ExpectFalse(t, defaults.BytesAsCustomBuffer)
	testutil.ExpectFalse(t, defaults.StringAsCustomBuffer)
	testutil.ExpectFalse(t, defaults.SerializeWithExternalFormat)
	testutil.ExpectEq(t, "", defaults.SerializeFormatGuard)
}

func TestParseLayerBoolOptions(t *testing.T) {
	var raw []byte
	raw = append(raw, testutil.BoolOptionBytes(17003, true)...)
	raw = append(raw, testutil.BoolOptionBytes(17001, false)...)
	layer, unknown := customize.ParseLayer(raw)
	testutil.ExpectEq(t, 0, len(unknown))
	if layer.ExposeFields == nil || !*layer.ExposeFields {
		t.Errorf("Expected ExposeFields=true, got: %v", layer.ExposeFields)
	}
	if layer.ExposeOneof == nil || *layer.ExposeOneof {
		t.Errorf("Expected ExposeOneof=false, got: %v", layer.ExposeOneof)
	}
	if layer.GenerateAccessors != nil {
		t.Errorf("Expected GenerateAccessors unset, got: %v", *layer.GenerateAccessors)
	}
}

func TestParseLayerFormatGuard(t *testing.T) {
	raw := testutil.StringOptionBytes(17031, "pbgen_json")
	layer, unknown := customize.ParseLayer(raw)
	testutil.ExpectEq(t, 0, len(unknown))
	if layer.SerializeFormatGuard == nil {
		t.Fatal("Expected SerializeFormatGuard set, got: nil")
	}
	testutil.ExpectEq(t, "pbgen_json", *layer.SerializeFormatGuard)
}

func TestParseLayerUnknownInRange(t *testing.T) {
	var raw []byte
	raw = append(raw, testutil.BoolOptionBytes(17900, true)...)
	raw = append(raw, testutil.BoolOptionBytes(17001, true)...)
	_, unknown := customize.ParseLayer(raw)
	testutil.ExpectSliceEq(t, []int32{17900}, unknown)
}

func TestParseLayerIgnoresForeignExtensions(t *testing.T) {
	var raw []byte
	raw = append(raw, testutil.BoolOptionBytes(50000, true)...)
	raw = append(raw, testutil.StringOptionBytes(50001, "other")...)
	layer, unknown := customize.ParseLayer(raw)
	testutil.ExpectEq(t, 0, len(unknown))
	if layer.ExposeOneof != nil || layer.SerializeFormatGuard != nil {
		t.Error("Expected empty layer for foreign extensions")
	}
}

func TestApplyOverridesOnlySetOptions(t *testing.T) {
	base := customize.Defaults()
	lite := true
	resolved := base.Apply(customize.Layer{LiteRuntime: &lite})
	testutil.ExpectTrue(t, resolved.LiteRuntime)
	testutil.ExpectTrue(t, resolved.ExposeOneof)
	testutil.ExpectTrue(t, resolved.GenerateAccessors)
}

func TestLayerPrecedence(t *testing.T) {
	fileRaw := testutil.BoolOptionBytes(17003, true)
	msgRaw := testutil.BoolOptionBytes(17003, false)

	fileOpts := &descriptorpb.FileOptions{}
	testutil.SetRawOption(fileOpts, fileRaw)
	fileLevel, _ := customize.ForFile(fileOpts, customize.Defaults())
	testutil.ExpectTrue(t, fileLevel.ExposeFields)

	msgOpts := &descriptorpb.MessageOptions{}
	testutil.SetRawOption(msgOpts, msgRaw)
	msgLevel, _ := customize.ForMessage(msgOpts, fileLevel)
	testutil.ExpectFalse(t, msgLevel.ExposeFields)

	fieldOpts := &descriptorpb.FieldOptions{}
	testutil.SetRawOption(fieldOpts, testutil.BoolOptionBytes(17003, true))
	fieldLevel, _ := customize.ForField(fieldOpts, msgLevel)
	testutil.ExpectTrue(t, fieldLevel.ExposeFields)
}

func TestForFieldInheritsWithoutOptions(t *testing.T) {
	base := customize.Defaults()
	base.BytesAsCustomBuffer = true
	resolved, unknown := customize.ForField(nil, base)
	testutil.ExpectEq(t, 0, len(unknown))
	testutil.ExpectTrue(t, resolved.BytesAsCustomBuffer)
}

func TestForFileLiteFallback(t *testing.T) {
	opts := &descriptorpb.FileOptions{
		OptimizeFor: descriptorpb.FileOptions_LITE_RUNTIME.Enum(),
	}
	resolved, _ := customize.ForFile(opts, customize.Defaults())
	testutil.ExpectTrue(t, resolved.LiteRuntime)
}

func TestForFileExplicitOverridesOptimizeFor(t *testing.T) {
	opts := &descriptorpb.FileOptions{
		OptimizeFor: descriptorpb.FileOptions_LITE_RUNTIME.Enum(),
	}
	testutil.SetRawOption(opts, testutil.BoolOptionBytes(17035, false))
	resolved, _ := customize.ForFile(opts, customize.Defaults())
	testutil.ExpectFalse(t, resolved.LiteRuntime)
}

func TestForFileUnknownOptionReported(t *testing.T) {
	opts := &descriptorpb.FileOptions{}
	testutil.SetRawOption(opts, testutil.BoolOptionBytes(17777, true))
	_, unknown := customize.ForFile(opts, customize.Defaults())
	testutil.ExpectSliceEq(t, []int32{17777}, unknown)
}
