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

package pbrt

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

var (
	// ErrTruncated reports input exhausted in the middle of a field.
	ErrTruncated = errors.New("pbrt: truncated input")

	// ErrMissingGroupEnd reports a group field whose end marker never
	// arrived before the input (or the enclosing group) ended.
	ErrMissingGroupEnd = errors.New("pbrt: group missing end marker")

	// ErrMalformedTag reports an invalid tag or reserved wire type.
	ErrMalformedTag = errors.New("pbrt: malformed tag")
)

// ParseError converts a negative protowire length into a decode error.
// Generated decode loops call this on every negative consume result.
func ParseError(n int) error {
	switch n {
	case -1: // truncated
		return ErrTruncated
	case -2, -4: // bad field number, reserved wire type
		return ErrMalformedTag
	case -5: // group nesting mismatch
		return ErrMissingGroupEnd
	default:
		return fmt.Errorf("pbrt: invalid wire data: %w", protowire.ParseError(n))
	}
}

// SizeZigZag32 returns the encoded size of a sint32 value.
func SizeZigZag32(v int32) int {
	return protowire.SizeVarint(protowire.EncodeZigZag(int64(v)))
}

// SizeZigZag64 returns the encoded size of a sint64 value.
func SizeZigZag64(v int64) int {
	return protowire.SizeVarint(protowire.EncodeZigZag(v))
}

// AppendZigZag32 appends a sint32 value.
func AppendZigZag32(b []byte, v int32) []byte {
	return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(v)))
}

// AppendZigZag64 appends a sint64 value.
func AppendZigZag64(b []byte, v int64) []byte {
	return protowire.AppendVarint(b, protowire.EncodeZigZag(v))
}
