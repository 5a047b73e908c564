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
	"sync/atomic"

	"google.golang.org/protobuf/encoding/protowire"
)

// UnknownFields preserves wire data for field numbers the decoding schema
// does not declare, verbatim, through decode/encode round trips.
type UnknownFields struct {
	raw []byte
}

// Capture consumes one field (tag already consumed by the caller) from
// data, appending the tag and raw payload to the bag. Group payloads are
// consumed through their balanced end marker. Returns the number of bytes
// consumed, or a negative protowire error code.
func (u *UnknownFields) Capture(num protowire.Number, typ protowire.Type, data []byte) int {
	n := protowire.ConsumeFieldValue(num, typ, data)
	if n < 0 {
		return n
	}
	u.raw = protowire.AppendTag(u.raw, num, typ)
	u.raw = append(u.raw, data[:n]...)
	return n
}

// Size is the byte length needed to re-encode the bag verbatim.
func (u *UnknownFields) Size() int {
	return len(u.raw)
}

// Append re-encodes the bag verbatim.
func (u *UnknownFields) Append(b []byte) []byte {
	return append(b, u.raw...)
}

func (u *UnknownFields) Bytes() []byte {
	return u.raw
}

func (u *UnknownFields) Clear() {
	u.raw = nil
}

// CachedSize memoizes the result of the last Size pass. The value is only
// meaningful between a Size call and the MarshalAppend call that consumes
// it; it is never trusted before a Size pass has run.
type CachedSize struct {
	size atomic.Int32
}

func (c *CachedSize) Store(size int) {
	c.size.Store(int32(size))
}

func (c *CachedSize) Load() int {
	return int(c.size.Load())
}
