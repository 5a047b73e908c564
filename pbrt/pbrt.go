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

// Package pbrt is the runtime support library imported by pbgen-generated
// code. It supplies the unknown-field bag, the cached-size slot, the
// reflection descriptor registry, and small helpers over protowire. The
// wire-level primitives themselves (varints, zig-zag, tags) come from
// google.golang.org/protobuf/encoding/protowire.
package pbrt

// Message is implemented by every pbgen-generated message type.
//
// The serialization contract is a single Size-then-MarshalAppend pass:
// Size computes and caches the lengths of every nested message, and
// MarshalAppend consumes those cached lengths. Mutating a message between
// the two calls is undefined behavior.
type Message interface {
	Unmarshal(data []byte) error
	Size() int
	MarshalAppend(b []byte) []byte
	CachedSize() int
	IsInitialized() bool
	Reset()
	String() string
}

// Marshal encodes a message into a fresh buffer sized by a Size pass.
func Marshal(m Message) []byte {
	b := make([]byte, 0, m.Size())
	return m.MarshalAppend(b)
}

type messagePtr[T any] interface {
	*T
	Message
}

// UnmarshalAs decodes a fresh message of type T from data.
func UnmarshalAs[T any, PT messagePtr[T]](data []byte) (PT, error) {
	m := PT(new(T))
	if err := m.Unmarshal(data); err != nil {
		return nil, err
	}
	return m, nil
}

// Ptr returns a pointer to v, for populating explicit-presence fields.
func Ptr[T any](v T) *T {
	return &v
}
