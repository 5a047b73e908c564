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
	"encoding/base64"
	"iter"
)

// Bytes is an immutable byte buffer, selected as the storage type for
// bytes (and optionally string) fields by the custom-buffer customization.
// Copies of a Bytes value share the underlying storage.
type Bytes struct {
	s string
}

// BytesOf copies b into an immutable buffer.
func BytesOf(b []byte) Bytes {
	return Bytes{string(b)}
}

// BytesView wraps s without copying. The caller must not retain a mutable
// alias of the underlying storage.
func BytesView(s string) Bytes {
	return Bytes{s}
}

func (b Bytes) Len() int {
	return len(b.s)
}

func (b Bytes) IsEmpty() bool {
	return len(b.s) == 0
}

// View returns the buffer contents as an immutable string.
func (b Bytes) View() string {
	return b.s
}

// Bytes copies the buffer contents out.
func (b Bytes) Bytes() []byte {
	return []byte(b.s)
}

func (b Bytes) Iter() iter.Seq2[int, uint8] {
	return func(yield func(int, uint8) bool) {
		for ii := 0; ii < len(b.s); ii++ {
			if !yield(ii, b.s[ii]) {
				return
			}
		}
	}
}

// MarshalJSON renders the buffer as a base64 JSON string, matching the
// protobuf JSON mapping for bytes fields.
func (b Bytes) MarshalJSON() ([]byte, error) {
	enc := base64.StdEncoding.EncodeToString([]byte(b.s))
	out := make([]byte, 0, len(enc)+2)
	out = append(out, '"')
	out = append(out, enc...)
	out = append(out, '"')
	return out, nil
}

func (b *Bytes) UnmarshalJSON(data []byte) error {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	dec, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil {
		return err
	}
	b.s = string(dec)
	return nil
}
