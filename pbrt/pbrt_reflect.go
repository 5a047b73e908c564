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
	"sync"
)

// MessageDescriptor is the runtime reflection record for one generated
// message type. Built at most once per process, then read-only.
type MessageDescriptor struct {
	// FullName is the schema-qualified message name ("pkg.Outer.Inner").
	FullName string

	// File is the path of the originating schema file.
	File string

	// Fields lists accessor records in declaration order. Group-typed
	// fields are not listed.
	Fields []FieldAccessor
}

// FieldAccessor describes one field by name plus a getter/setter pair
// operating on an untyped message pointer.
type FieldAccessor struct {
	Name string
	Has  func(msg any) bool
	Get  func(msg any) any
	Set  func(msg any, v any)
}

type descriptorCell struct {
	build func() *MessageDescriptor
	once  sync.Once
	desc  *MessageDescriptor
}

func (c *descriptorCell) get() *MessageDescriptor {
	c.once.Do(func() {
		c.desc = c.build()
		c.build = nil
	})
	return c.desc
}

var descriptorRegistry sync.Map // full name -> *descriptorCell

// LazyDescriptor registers a descriptor builder under its full name and
// returns the memoized accessor. The builder runs on first access, at most
// once; the returned function is safe for concurrent use. Generated code
// calls this from a package-level var initializer, so every linked-in
// message type is discoverable by name without paying construction cost up
// front. Under the lite runtime profile no builder is ever registered.
func LazyDescriptor(fullName string, build func() *MessageDescriptor) func() *MessageDescriptor {
	cell := &descriptorCell{build: build}
	if prev, loaded := descriptorRegistry.LoadOrStore(fullName, cell); loaded {
		return prev.(*descriptorCell).get
	}
	return cell.get
}

// DescriptorByName looks up a registered message descriptor, constructing
// it on first use. Returns nil for unregistered names.
func DescriptorByName(fullName string) *MessageDescriptor {
	cell, ok := descriptorRegistry.Load(fullName)
	if !ok {
		return nil
	}
	return cell.(*descriptorCell).get()
}
